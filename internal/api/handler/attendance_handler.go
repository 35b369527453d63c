package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/swathi2703-blip/Company-Attendance-Project/internal/service"
	"github.com/swathi2703-blip/Company-Attendance-Project/pkg/response"
)

// AttendanceHandler 考勤模块 HTTP 处理器
type AttendanceHandler struct {
	attSvc service.AttendanceService
}

// NewAttendanceHandler 创建 AttendanceHandler
func NewAttendanceHandler(attSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attSvc: attSvc}
}

// CheckIn 签到
// POST /api/v1/attendance/checkin
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	att, err := h.attSvc.CheckIn(c.Request.Context(), employeeID)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyCheckedIn) {
			response.BadRequest(c, 30001, "今日已签到")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, att)
}

// CheckOut 签退
// POST /api/v1/attendance/checkout
func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	att, err := h.attSvc.CheckOut(c.Request.Context(), employeeID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoCheckInFound):
			response.BadRequest(c, 30002, "今日尚未签到")
		case errors.Is(err, service.ErrAlreadyCheckedOut):
			response.BadRequest(c, 30003, "今日已签退")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, att)
}

// ListAttendance 考勤记录列表（按角色裁剪数据范围）
// GET /api/v1/attendance
func (h *AttendanceHandler) ListAttendance(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	atts, err := h.attSvc.List(c.Request.Context(), employeeID, role)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, atts)
}
