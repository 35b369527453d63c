package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/swathi2703-blip/Company-Attendance-Project/internal/dto"
	"github.com/swathi2703-blip/Company-Attendance-Project/internal/model"
	"github.com/swathi2703-blip/Company-Attendance-Project/internal/repository"
)

// EmployeeService 员工业务接口
type EmployeeService interface {
	GetProfile(ctx context.Context, employeeID string) (*dto.ProfileResponse, error)
	ListActive(ctx context.Context) ([]dto.EmployeeResponse, error)
}

type employeeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEmployeeService 创建 EmployeeService 实例
func NewEmployeeService(repo *repository.Repository, logger *zap.Logger) EmployeeService {
	return &employeeService{repo: repo, logger: logger}
}

// GetProfile 查询员工档案（不含密码哈希）
func (s *employeeService) GetProfile(ctx context.Context, employeeID string) (*dto.ProfileResponse, error) {
	emp, err := s.repo.Employee.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	return &dto.ProfileResponse{
		EmployeeID: emp.EmployeeID,
		Name:       emp.Name,
		Role:       emp.Role,
		Email:      emp.Email,
		Department: emp.Department,
		Position:   emp.Position,
		JoinDate:   emp.JoinDate.Format("2006-01-02"),
	}, nil
}

// ListActive 在职员工列表（管理员）
func (s *employeeService) ListActive(ctx context.Context) ([]dto.EmployeeResponse, error) {
	emps, err := s.repo.Employee.ListActive(ctx)
	if err != nil {
		s.logger.Error("查询员工列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.EmployeeResponse, 0, len(emps))
	for i := range emps {
		result = append(result, toEmployeeResponse(&emps[i]))
	}
	return result, nil
}

func toEmployeeResponse(emp *model.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		EmployeeID: emp.EmployeeID,
		Name:       emp.Name,
		Role:       emp.Role,
		Department: emp.Department,
		Position:   emp.Position,
	}
}
