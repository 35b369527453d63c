package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/swathi2703-blip/Company-Attendance-Project/internal/service"
	"github.com/swathi2703-blip/Company-Attendance-Project/pkg/response"
)

// EmployeeHandler 员工模块 HTTP 处理器
type EmployeeHandler struct {
	empSvc service.EmployeeService
}

// NewEmployeeHandler 创建 EmployeeHandler
func NewEmployeeHandler(empSvc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{empSvc: empSvc}
}

// GetProfile 获取当前员工档案
// GET /api/v1/profile
func (h *EmployeeHandler) GetProfile(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	profile, err := h.empSvc.GetProfile(c.Request.Context(), employeeID)
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			response.NotFound(c, 20001, "员工不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, profile)
}

// ListEmployees 在职员工列表（管理员）
// GET /api/v1/users
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	emps, err := h.empSvc.ListActive(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, emps)
}
