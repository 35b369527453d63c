package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/swathi2703-blip/Company-Attendance-Project/internal/model"
)

// AttendanceRepository 考勤数据访问接口
// Create 依赖 (employee_id, date) 唯一索引：并发重复签到时
// 数据库层保证恰好一次成功，另一次返回 gorm.ErrDuplicatedKey
type AttendanceRepository interface {
	Create(ctx context.Context, att *model.Attendance) error
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*model.Attendance, error)
	Update(ctx context.Context, att *model.Attendance) error
	ListByEmployee(ctx context.Context, employeeID string) ([]model.Attendance, error)
	ListAll(ctx context.Context) ([]model.Attendance, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]model.Attendance, error)
}

// attendanceRepo AttendanceRepository 的 GORM 实现
type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo 创建 AttendanceRepository 实例
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Create(ctx context.Context, att *model.Attendance) error {
	return r.db.WithContext(ctx).Create(att).Error
}

func (r *attendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*model.Attendance, error) {
	var att model.Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND date = ?", employeeID, date.Format("2006-01-02")).
		First(&att).Error
	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *attendanceRepo) Update(ctx context.Context, att *model.Attendance) error {
	return r.db.WithContext(ctx).Save(att).Error
}

func (r *attendanceRepo) ListByEmployee(ctx context.Context, employeeID string) ([]model.Attendance, error) {
	var atts []model.Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("date DESC").
		Find(&atts).Error
	if err != nil {
		return nil, err
	}
	return atts, nil
}

func (r *attendanceRepo) ListAll(ctx context.Context) ([]model.Attendance, error) {
	var atts []model.Attendance
	err := r.db.WithContext(ctx).
		Order("date DESC").
		Find(&atts).Error
	if err != nil {
		return nil, err
	}
	return atts, nil
}

func (r *attendanceRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]model.Attendance, error) {
	var atts []model.Attendance
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("date ASC, employee_id ASC").
		Find(&atts).Error
	if err != nil {
		return nil, err
	}
	return atts, nil
}
