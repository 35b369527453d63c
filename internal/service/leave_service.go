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

// ── 请假模块业务错误 ──

var (
	ErrInvalidLeaveRange = errors.New("结束日期不能早于开始日期")
	ErrLeaveNotFound     = errors.New("请假申请不存在")
	ErrLeaveFinalized    = errors.New("该申请已审批，不能重复处理")
)

// LeaveService 请假业务接口
// 状态机：pending → approved | rejected，两者均为终态，
// 已审批记录不接受二次审批（保留首次审批人与审批时间）
type LeaveService interface {
	Submit(ctx context.Context, employeeID string, req *dto.SubmitLeaveRequest) (*dto.LeaveResponse, error)
	List(ctx context.Context, callerID, callerRole string) ([]dto.LeaveResponse, error)
	Decide(ctx context.Context, adminID, leaveID string, req *dto.DecideLeaveRequest) (*dto.LeaveResponse, error)
}

type leaveService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLeaveService 创建 LeaveService 实例
func NewLeaveService(repo *repository.Repository, logger *zap.Logger) LeaveService {
	return &leaveService{repo: repo, logger: logger}
}

// Submit 提交请假申请
// 总天数为含首尾的自然日数：01-10 ~ 01-13 计 4 天。
// 同一员工的重叠请假申请不做拦截，由管理员在审批时人工把关
func (s *leaveService) Submit(ctx context.Context, employeeID string, req *dto.SubmitLeaveRequest) (*dto.LeaveResponse, error) {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, ErrInvalidLeaveRange
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, ErrInvalidLeaveRange
	}

	if end.Before(start) {
		return nil, ErrInvalidLeaveRange
	}

	totalDays := int(end.Sub(start).Hours()/24) + 1

	leave := &model.Leave{
		LeaveID:    uuid.New().String(),
		EmployeeID: employeeID,
		LeaveType:  req.LeaveType,
		StartDate:  start,
		EndDate:    end,
		TotalDays:  totalDays,
		Reason:     req.Reason,
		Status:     model.LeaveStatusPending,
	}

	if err := s.repo.Leave.Create(ctx, leave); err != nil {
		s.logger.Error("创建请假申请失败", zap.Error(err))
		return nil, err
	}

	resp := toLeaveResponse(leave)
	return &resp, nil
}

// List 请假申请列表（按创建时间倒序）
// 员工只能看到自己的申请，管理员可见全员
func (s *leaveService) List(ctx context.Context, callerID, callerRole string) ([]dto.LeaveResponse, error) {
	var (
		leaves []model.Leave
		err    error
	)
	if callerRole == model.RoleAdmin {
		leaves, err = s.repo.Leave.ListAll(ctx)
	} else {
		leaves, err = s.repo.Leave.ListByEmployee(ctx, callerID)
	}
	if err != nil {
		s.logger.Error("查询请假列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.LeaveResponse, 0, len(leaves))
	for i := range leaves {
		result = append(result, toLeaveResponse(&leaves[i]))
	}
	return result, nil
}

// Decide 审批请假申请（任一管理员可审批任何员工的申请）
// 路由层已限制 admin 角色；此处兜底校验终态，防止覆盖审批历史
func (s *leaveService) Decide(ctx context.Context, adminID, leaveID string, req *dto.DecideLeaveRequest) (*dto.LeaveResponse, error) {
	leave, err := s.repo.Leave.GetByID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeaveNotFound
		}
		s.logger.Error("查询请假申请失败", zap.Error(err))
		return nil, err
	}

	if leave.Status != model.LeaveStatusPending {
		return nil, ErrLeaveFinalized
	}

	now := time.Now()
	leave.Status = req.Status
	leave.ApprovedBy = &adminID
	leave.ApprovalDate = &now
	if req.Comments != "" {
		leave.Comments = req.Comments
	}

	if err := s.repo.Leave.Update(ctx, leave); err != nil {
		s.logger.Error("更新请假申请失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("请假申请已审批",
		zap.String("leave_id", leave.LeaveID),
		zap.String("status", leave.Status),
		zap.String("approved_by", adminID),
	)

	resp := toLeaveResponse(leave)
	return &resp, nil
}

func toLeaveResponse(leave *model.Leave) dto.LeaveResponse {
	return dto.LeaveResponse{
		LeaveID:      leave.LeaveID,
		EmployeeID:   leave.EmployeeID,
		LeaveType:    leave.LeaveType,
		StartDate:    leave.StartDate.Format("2006-01-02"),
		EndDate:      leave.EndDate.Format("2006-01-02"),
		TotalDays:    leave.TotalDays,
		Reason:       leave.Reason,
		Status:       leave.Status,
		ApprovedBy:   leave.ApprovedBy,
		ApprovalDate: leave.ApprovalDate,
		Comments:     leave.Comments,
		CreatedAt:    leave.CreatedAt,
	}
}
