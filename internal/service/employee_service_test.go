package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/swathi2703-blip/Company-Attendance-Project/internal/model"
)

func setupTestEmployeeService() (EmployeeService, *mockEmployeeRepo) {
	repo, empRepo, _, _ := newMockRepository()
	return NewEmployeeService(repo, zap.NewNop()), empRepo
}

func TestGetProfile_Success(t *testing.T) {
	svc, empRepo := setupTestEmployeeService()
	empRepo.employees["EMP001"] = &model.Employee{
		EmployeeID: "EMP001",
		Name:       "张三",
		Role:       model.RoleEmployee,
		Email:      "zhangsan@example.com",
		Department: "研发部",
		Position:   "后端工程师",
		JoinDate:   time.Date(2023, 6, 1, 0, 0, 0, 0, time.Local),
		IsActive:   true,
	}

	profile, err := svc.GetProfile(context.Background(), "EMP001")
	if err != nil {
		t.Fatalf("GetProfile 应成功: %v", err)
	}
	if profile.Name != "张三" {
		t.Errorf("期望 Name=张三，实际=%s", profile.Name)
	}
	if profile.JoinDate != "2023-06-01" {
		t.Errorf("期望 JoinDate=2023-06-01，实际=%s", profile.JoinDate)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	svc, _ := setupTestEmployeeService()

	if _, err := svc.GetProfile(context.Background(), "NO_SUCH"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("期望 ErrEmployeeNotFound，实际: %v", err)
	}
}

func TestListActive_ExcludesInactive(t *testing.T) {
	svc, empRepo := setupTestEmployeeService()
	empRepo.employees["EMP001"] = &model.Employee{EmployeeID: "EMP001", Name: "张三", Role: model.RoleEmployee, IsActive: true}
	empRepo.employees["EMP002"] = &model.Employee{EmployeeID: "EMP002", Name: "李四", Role: model.RoleEmployee, IsActive: false}
	empRepo.employees["ADMIN001"] = &model.Employee{EmployeeID: "ADMIN001", Name: "王五", Role: model.RoleAdmin, IsActive: true}

	emps, err := svc.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive 应成功: %v", err)
	}
	if len(emps) != 2 {
		t.Fatalf("期望 2 名在职员工，实际=%d", len(emps))
	}
	for _, e := range emps {
		if e.EmployeeID == "EMP002" {
			t.Error("离职员工不应出现在列表中")
		}
	}
}
