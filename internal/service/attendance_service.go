package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/swathi2703-blip/Company-Attendance-Project/internal/dto"
	"github.com/swathi2703-blip/Company-Attendance-Project/internal/model"
	"github.com/swathi2703-blip/Company-Attendance-Project/internal/repository"
)

// ── 考勤模块业务错误 ──

var (
	ErrAlreadyCheckedIn  = errors.New("今日已签到")
	ErrNoCheckInFound    = errors.New("今日尚未签到")
	ErrAlreadyCheckedOut = errors.New("今日已签退")
)

// AttendanceService 考勤业务接口
// 状态机（按员工按天）：未签到 → 已签到 → 已签退（当日终态）
type AttendanceService interface {
	CheckIn(ctx context.Context, employeeID string) (*dto.AttendanceResponse, error)
	CheckOut(ctx context.Context, employeeID string) (*dto.AttendanceResponse, error)
	List(ctx context.Context, callerID, callerRole string) ([]dto.AttendanceResponse, error)
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time // 测试中可替换
}

// NewAttendanceService 创建 AttendanceService 实例
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, logger: logger, now: time.Now}
}

// today 将当前时刻归零到当日零点，作为考勤去重键
func (s *attendanceService) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// CheckIn 签到
// 当日已有记录（无论是否已签退）即拒绝；并发场景由唯一索引兜底，
// 两个并发签到恰好一条成功，另一条映射为 ErrAlreadyCheckedIn
func (s *attendanceService) CheckIn(ctx context.Context, employeeID string) (*dto.AttendanceResponse, error) {
	today := s.today()

	// 先查后插：常规路径给出友好错误
	if _, err := s.repo.Attendance.GetByEmployeeAndDate(ctx, employeeID, today); err == nil {
		return nil, ErrAlreadyCheckedIn
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询考勤记录失败", zap.Error(err))
		return nil, err
	}

	att := &model.Attendance{
		AttendanceID: uuid.New().String(),
		EmployeeID:   employeeID,
		Date:         today,
		CheckIn:      s.now(),
		Status:       model.AttendanceStatusPresent,
	}

	if err := s.repo.Attendance.Create(ctx, att); err != nil {
		// 并发窗口内的重复插入撞上唯一索引
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyCheckedIn
		}
		s.logger.Error("创建考勤记录失败", zap.Error(err))
		return nil, err
	}

	resp := toAttendanceResponse(att)
	return &resp, nil
}

// CheckOut 签退
// 时长 = 签退 − 签到（小时，保留小数）；时钟回拨导致的负值收敛为 0
func (s *attendanceService) CheckOut(ctx context.Context, employeeID string) (*dto.AttendanceResponse, error) {
	att, err := s.repo.Attendance.GetByEmployeeAndDate(ctx, employeeID, s.today())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoCheckInFound
		}
		s.logger.Error("查询考勤记录失败", zap.Error(err))
		return nil, err
	}

	if att.CheckOut != nil {
		return nil, ErrAlreadyCheckedOut
	}

	checkOut := s.now()
	att.CheckOut = &checkOut
	hours := checkOut.Sub(att.CheckIn).Hours()
	if hours < 0 {
		hours = 0
	}
	att.TotalHours = hours

	if err := s.repo.Attendance.Update(ctx, att); err != nil {
		s.logger.Error("更新考勤记录失败", zap.Error(err))
		return nil, err
	}

	resp := toAttendanceResponse(att)
	return &resp, nil
}

// List 考勤记录列表（按日期倒序）
// 员工只能看到自己的记录，管理员可见全员
func (s *attendanceService) List(ctx context.Context, callerID, callerRole string) ([]dto.AttendanceResponse, error) {
	var (
		atts []model.Attendance
		err  error
	)
	if callerRole == model.RoleAdmin {
		atts, err = s.repo.Attendance.ListAll(ctx)
	} else {
		atts, err = s.repo.Attendance.ListByEmployee(ctx, callerID)
	}
	if err != nil {
		s.logger.Error("查询考勤列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AttendanceResponse, 0, len(atts))
	for i := range atts {
		result = append(result, toAttendanceResponse(&atts[i]))
	}
	return result, nil
}

func toAttendanceResponse(att *model.Attendance) dto.AttendanceResponse {
	return dto.AttendanceResponse{
		AttendanceID: att.AttendanceID,
		EmployeeID:   att.EmployeeID,
		Date:         att.Date.Format("2006-01-02"),
		CheckIn:      att.CheckIn,
		CheckOut:     att.CheckOut,
		TotalHours:   att.TotalHours,
		Status:       att.Status,
		Notes:        att.Notes,
	}
}
