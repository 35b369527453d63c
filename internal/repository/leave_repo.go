package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/swathi2703-blip/Company-Attendance-Project/internal/model"
)

// LeaveRepository 请假数据访问接口
type LeaveRepository interface {
	Create(ctx context.Context, leave *model.Leave) error
	GetByID(ctx context.Context, leaveID string) (*model.Leave, error)
	Update(ctx context.Context, leave *model.Leave) error
	ListByEmployee(ctx context.Context, employeeID string) ([]model.Leave, error)
	ListAll(ctx context.Context) ([]model.Leave, error)
	ListByStatus(ctx context.Context, status string) ([]model.Leave, error)
}

// leaveRepo LeaveRepository 的 GORM 实现
type leaveRepo struct {
	db *gorm.DB
}

// NewLeaveRepo 创建 LeaveRepository 实例
func NewLeaveRepo(db *gorm.DB) LeaveRepository {
	return &leaveRepo{db: db}
}

func (r *leaveRepo) Create(ctx context.Context, leave *model.Leave) error {
	return r.db.WithContext(ctx).Create(leave).Error
}

func (r *leaveRepo) GetByID(ctx context.Context, leaveID string) (*model.Leave, error) {
	var leave model.Leave
	err := r.db.WithContext(ctx).
		Where("leave_id = ?", leaveID).
		First(&leave).Error
	if err != nil {
		return nil, err
	}
	return &leave, nil
}

func (r *leaveRepo) Update(ctx context.Context, leave *model.Leave) error {
	return r.db.WithContext(ctx).Save(leave).Error
}

func (r *leaveRepo) ListByEmployee(ctx context.Context, employeeID string) ([]model.Leave, error) {
	var leaves []model.Leave
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&leaves).Error
	if err != nil {
		return nil, err
	}
	return leaves, nil
}

func (r *leaveRepo) ListAll(ctx context.Context) ([]model.Leave, error) {
	var leaves []model.Leave
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&leaves).Error
	if err != nil {
		return nil, err
	}
	return leaves, nil
}

func (r *leaveRepo) ListByStatus(ctx context.Context, status string) ([]model.Leave, error) {
	var leaves []model.Leave
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("start_date ASC").
		Find(&leaves).Error
	if err != nil {
		return nil, err
	}
	return leaves, nil
}
