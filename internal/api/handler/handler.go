package handler

import "github.com/swathi2703-blip/Company-Attendance-Project/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth       *AuthHandler
	Employee   *EmployeeHandler
	Attendance *AttendanceHandler
	Leave      *LeaveHandler
	Export     *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Employee:   NewEmployeeHandler(svc.Employee),
		Attendance: NewAttendanceHandler(svc.Attendance),
		Leave:      NewLeaveHandler(svc.Leave),
		Export:     NewExportHandler(svc.Export),
	}
}
