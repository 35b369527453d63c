package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/swathi2703-blip/Company-Attendance-Project/internal/model"
	"github.com/swathi2703-blip/Company-Attendance-Project/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportInvalidMonth = errors.New("月份格式无效，应为 YYYY-MM")
	ErrExportNoRecords    = errors.New("该月份无考勤记录")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 考勤月报导出为 Excel (.xlsx)，供管理员对账
//   - 已批准的请假导出为 iCalendar (.ics)，可订阅到团队日历
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportAttendance 导出某月考勤记录为 Excel，month 形如 2024-01
	ExportAttendance(ctx context.Context, month string) (*bytes.Buffer, string, error)
	// ExportLeaveCalendar 导出已批准请假为 iCalendar
	ExportLeaveCalendar(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportAttendance — 考勤月报 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：单 Sheet，一行一条记录
// 列：工号 | 日期 | 签到 | 签退 | 时长(小时) | 状态 | 备注

func (s *exportService) ExportAttendance(ctx context.Context, month string) (*bytes.Buffer, string, error) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, "", ErrExportInvalidMonth
	}
	last := first.AddDate(0, 1, -1)

	atts, err := s.repo.Attendance.ListByDateRange(ctx, first, last)
	if err != nil {
		s.logger.Error("查询考勤记录失败", zap.Error(err))
		return nil, "", err
	}
	if len(atts) == 0 {
		return nil, "", ErrExportNoRecords
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	headers := []string{"工号", "日期", "签到", "签退", "时长(小时)", "状态", "备注"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, att := range atts {
		checkOut := ""
		if att.CheckOut != nil {
			checkOut = att.CheckOut.Format("15:04:05")
		}
		values := []interface{}{
			att.EmployeeID,
			att.Date.Format("2006-01-02"),
			att.CheckIn.Format("15:04:05"),
			checkOut,
			att.TotalHours,
			att.Status,
			att.Notes,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("生成 Excel 失败", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("attendance-%s.xlsx", month)
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportLeaveCalendar — 已批准请假 iCalendar
// ═══════════════════════════════════════════════════════════
//
// 一条已批准请假对应一个全天 VEVENT，标题"工号 - 假种"；
// DTEND 按 iCalendar 约定为排他日期，取结束日次日

func (s *exportService) ExportLeaveCalendar(ctx context.Context) (*bytes.Buffer, string, error) {
	leaves, err := s.repo.Leave.ListByStatus(ctx, model.LeaveStatusApproved)
	if err != nil {
		s.logger.Error("查询已批准请假失败", zap.Error(err))
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//kronos//leave-calendar//CN")

	for i := range leaves {
		leave := &leaves[i]
		event := cal.AddEvent(leave.LeaveID + "@kronos")
		event.SetSummary(fmt.Sprintf("%s - %s", leave.EmployeeID, leave.LeaveType))
		event.SetDescription(leave.Reason)
		event.SetAllDayStartAt(leave.StartDate)
		event.SetAllDayEndAt(leave.EndDate.AddDate(0, 0, 1))
		if leave.ApprovalDate != nil {
			event.SetDtStampTime(*leave.ApprovalDate)
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	return buf, "approved-leaves.ics", nil
}
