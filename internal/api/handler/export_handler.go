package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/swathi2703-blip/Company-Attendance-Project/internal/service"
	"github.com/swathi2703-blip/Company-Attendance-Project/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportAttendance 导出考勤月报 Excel（管理员）
// GET /api/v1/export/attendance?month=2024-01
func (h *ExportHandler) ExportAttendance(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	buf, filename, err := h.exportSvc.ExportAttendance(c.Request.Context(), month)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExportInvalidMonth):
			response.BadRequest(c, 10001, "月份格式无效，应为 YYYY-MM")
		case errors.Is(err, service.ErrExportNoRecords):
			response.NotFound(c, 30004, "该月份无考勤记录")
		default:
			response.InternalError(c)
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// ExportLeaveCalendar 导出已批准请假日历（管理员）
// GET /api/v1/export/leaves.ics
func (h *ExportHandler) ExportLeaveCalendar(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportLeaveCalendar(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}
