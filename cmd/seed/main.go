package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/swathi2703-blip/Company-Attendance-Project/config"
	"github.com/swathi2703-blip/Company-Attendance-Project/internal/model"
	"github.com/swathi2703-blip/Company-Attendance-Project/pkg/database"
	applogger "github.com/swathi2703-blip/Company-Attendance-Project/pkg/logger"
)

// 开发/演示环境数据初始化工具
// 清空现有数据后写入一名管理员、三名员工及示例考勤/请假记录

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	// 清空现有数据（注意外键顺序）
	if err := db.Exec("TRUNCATE attendances, leaves, employees").Error; err != nil {
		logger.Fatal("清空数据失败", zap.Error(err))
	}

	mustHash := func(pwd string) string {
		hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
		if err != nil {
			logger.Fatal("密码哈希失败", zap.Error(err))
		}
		return string(hash)
	}

	employees := []model.Employee{
		{
			EmployeeID:   "ADMIN001",
			PasswordHash: mustHash("admin"),
			Role:         model.RoleAdmin,
			Name:         "System Admin",
			Email:        "admin@kronos.com",
			Department:   "IT",
			Position:     "Administrator",
			JoinDate:     time.Now(),
			IsActive:     true,
		},
		{
			EmployeeID:   "EMP001",
			PasswordHash: mustHash("emp"),
			Role:         model.RoleEmployee,
			Name:         "John Doe",
			Email:        "john@kronos.com",
			Department:   "Engineering",
			Position:     "Software Developer",
			JoinDate:     time.Now(),
			IsActive:     true,
		},
		{
			EmployeeID:   "EMP002",
			PasswordHash: mustHash("emp"),
			Role:         model.RoleEmployee,
			Name:         "Jane Smith",
			Email:        "jane@kronos.com",
			Department:   "HR",
			Position:     "HR Manager",
			JoinDate:     time.Now(),
			IsActive:     true,
		},
		{
			EmployeeID:   "EMP003",
			PasswordHash: mustHash("emp"),
			Role:         model.RoleEmployee,
			Name:         "Bob Johnson",
			Email:        "bob@kronos.com",
			Department:   "Finance",
			Position:     "Accountant",
			JoinDate:     time.Now(),
			IsActive:     true,
		},
	}

	for i := range employees {
		if err := db.Create(&employees[i]).Error; err != nil {
			logger.Fatal("创建员工失败", zap.String("employee_id", employees[i].EmployeeID), zap.Error(err))
		}
	}

	// 示例考勤：EMP001 今日 9:00-17:30（8.5 小时）
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	checkIn := today.Add(9 * time.Hour)
	checkOut := today.Add(17*time.Hour + 30*time.Minute)
	attendance := model.Attendance{
		AttendanceID: "seed-att-001",
		EmployeeID:   "EMP001",
		Date:         today,
		CheckIn:      checkIn,
		CheckOut:     &checkOut,
		TotalHours:   8.5,
		Status:       model.AttendanceStatusPresent,
	}
	if err := db.Create(&attendance).Error; err != nil {
		logger.Fatal("创建考勤记录失败", zap.Error(err))
	}

	// 示例请假：EMP002 下周年假 3 天，待审批
	leaveStart := today.AddDate(0, 0, 7)
	leave := model.Leave{
		LeaveID:    "seed-leave-001",
		EmployeeID: "EMP002",
		LeaveType:  "annual",
		StartDate:  leaveStart,
		EndDate:    leaveStart.AddDate(0, 0, 2),
		TotalDays:  3,
		Reason:     "Family vacation",
		Status:     model.LeaveStatusPending,
	}
	if err := db.Create(&leave).Error; err != nil {
		logger.Fatal("创建请假记录失败", zap.Error(err))
	}

	logger.Info("数据初始化完成",
		zap.Int("employees", len(employees)),
		zap.String("admin", "ADMIN001/admin"),
		zap.String("employee", "EMP001-EMP003/emp"),
	)
}
