package service

import (
	"go.uber.org/zap"

	"github.com/swathi2703-blip/Company-Attendance-Project/config"
	"github.com/swathi2703-blip/Company-Attendance-Project/internal/repository"
	"github.com/swathi2703-blip/Company-Attendance-Project/pkg/jwt"
	"github.com/swathi2703-blip/Company-Attendance-Project/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth       AuthService
	Employee   EmployeeService
	Attendance AttendanceService
	Leave      LeaveService
	Export     ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Employee:   NewEmployeeService(repo, logger),
		Attendance: NewAttendanceService(repo, logger),
		Leave:      NewLeaveService(repo, logger),
		Export:     NewExportService(repo, logger),
	}
}
