package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/swathi2703-blip/Company-Attendance-Project/config"
	"github.com/swathi2703-blip/Company-Attendance-Project/internal/dto"
	"github.com/swathi2703-blip/Company-Attendance-Project/internal/model"
	"github.com/swathi2703-blip/Company-Attendance-Project/internal/repository"
	"github.com/swathi2703-blip/Company-Attendance-Project/pkg/jwt"
	"github.com/swathi2703-blip/Company-Attendance-Project/pkg/redis"
)

var (
	ErrInvalidCredentials  = errors.New("工号或密码错误")
	ErrEmployeeNotFound    = errors.New("员工不存在")
	ErrInvalidRefreshToken = errors.New("refresh token 无效")
)

// AuthService 认证业务接口
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

// Login 校验 (工号, 密码, 声明角色) 三元组
// 工号与角色必须同时匹配一条在职记录：密码正确但角色不符同样返回 ErrInvalidCredentials，
// 避免向调用方泄露"工号存在但角色不对"这一信息
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// 1. 按工号+角色查询在职员工
	emp, err := s.repo.Employee.GetActiveByIDAndRole(ctx, req.EmployeeID, req.Role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询员工失败", zap.Error(err))
		return nil, err
	}

	// 2. 验证密码 (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(emp)
}

// ResetPassword 自助重置密码
// 仅按工号定位在职员工，不校验旧密码与角色（与前端找回密码流程约定一致）
func (s *authService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	emp, err := s.repo.Employee.GetActiveByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.Error(err))
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return err
	}

	emp.PasswordHash = string(hash)
	if err := s.repo.Employee.Update(ctx, emp); err != nil {
		s.logger.Error("更新密码失败", zap.Error(err))
		return err
	}

	s.logger.Info("密码已重置", zap.String("employee_id", emp.EmployeeID))
	return nil
}

// RefreshToken 以 Refresh Token 换取新 Token 对
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil || claims.TokenType != "refresh" {
		return nil, ErrInvalidRefreshToken
	}

	// 黑名单内的 refresh token 不再接受
	if s.rdb != nil {
		blacklisted, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err == nil && blacklisted {
			return nil, ErrInvalidRefreshToken
		}
	}

	// 重新加载员工，保证离职后 refresh 失效
	emp, err := s.repo.Employee.GetActiveByIDAndRole(ctx, claims.EmployeeID, claims.Role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	return s.issueTokens(emp)
}

// Logout 将当前 Access Token 加入黑名单
// 未配置 Redis 时降级为空操作，Token 在 8 小时后自然过期
func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt))
}

func (s *authService) issueTokens(emp *model.Employee) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(emp.EmployeeID, emp.Role, emp.Name)
	if err != nil {
		s.logger.Error("生成 AccessToken 失败", zap.Error(err))
		return nil, err
	}

	refreshToken, err := s.jwtMgr.GenerateRefreshToken(emp.EmployeeID, emp.Role, emp.Name)
	if err != nil {
		s.logger.Error("生成 RefreshToken 失败", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		User: dto.EmployeeResponse{
			EmployeeID: emp.EmployeeID,
			Name:       emp.Name,
			Role:       emp.Role,
			Department: emp.Department,
			Position:   emp.Position,
		},
	}, nil
}
