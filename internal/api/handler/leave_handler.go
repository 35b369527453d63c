package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/swathi2703-blip/Company-Attendance-Project/internal/dto"
	"github.com/swathi2703-blip/Company-Attendance-Project/internal/service"
	"github.com/swathi2703-blip/Company-Attendance-Project/pkg/response"
)

// LeaveHandler 请假模块 HTTP 处理器
type LeaveHandler struct {
	leaveSvc service.LeaveService
}

// NewLeaveHandler 创建 LeaveHandler
func NewLeaveHandler(leaveSvc service.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveSvc: leaveSvc}
}

// SubmitLeave 提交请假申请
// POST /api/v1/leaves
func (h *LeaveHandler) SubmitLeave(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	var req dto.SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	leave, err := h.leaveSvc.Submit(c.Request.Context(), employeeID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidLeaveRange) {
			response.BadRequest(c, 40001, "结束日期不能早于开始日期")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, leave)
}

// ListLeaves 请假申请列表（按角色裁剪数据范围）
// GET /api/v1/leaves
func (h *LeaveHandler) ListLeaves(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	leaves, err := h.leaveSvc.List(c.Request.Context(), employeeID, role)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, leaves)
}

// DecideLeave 审批请假申请（管理员）
// PUT /api/v1/leaves/:id
func (h *LeaveHandler) DecideLeave(c *gin.Context) {
	adminID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	var req dto.DecideLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	leave, err := h.leaveSvc.Decide(c.Request.Context(), adminID, c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLeaveNotFound):
			response.NotFound(c, 40002, "请假申请不存在")
		case errors.Is(err, service.ErrLeaveFinalized):
			response.Conflict(c, 40003, "该申请已审批，不能重复处理")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, leave)
}
