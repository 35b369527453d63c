package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/swathi2703-blip/Company-Attendance-Project/internal/model"
)

// setupTestAttendanceService 返回可控时钟的考勤服务
func setupTestAttendanceService() (*attendanceService, *mockAttendanceRepo, *time.Time) {
	repo, _, attRepo, _ := newMockRepository()
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local)
	svc := &attendanceService{
		repo:   repo,
		logger: zap.NewNop(),
		now:    func() time.Time { return now },
	}
	return svc, attRepo, &now
}

// ── 签到测试 ──

func TestCheckIn_Success(t *testing.T) {
	svc, _, _ := setupTestAttendanceService()

	att, err := svc.CheckIn(context.Background(), "EMP001")
	if err != nil {
		t.Fatalf("CheckIn 应成功: %v", err)
	}
	if att.EmployeeID != "EMP001" {
		t.Errorf("期望 EmployeeID=EMP001，实际=%s", att.EmployeeID)
	}
	if att.Date != "2024-01-15" {
		t.Errorf("期望 Date=2024-01-15，实际=%s", att.Date)
	}
	if att.CheckOut != nil {
		t.Error("签到后 CheckOut 应为空")
	}
	if att.Status != model.AttendanceStatusPresent {
		t.Errorf("期望 Status=present，实际=%s", att.Status)
	}
}

func TestCheckIn_AlreadyCheckedIn(t *testing.T) {
	svc, _, _ := setupTestAttendanceService()

	if _, err := svc.CheckIn(context.Background(), "EMP001"); err != nil {
		t.Fatalf("首次 CheckIn 应成功: %v", err)
	}

	if _, err := svc.CheckIn(context.Background(), "EMP001"); !errors.Is(err, ErrAlreadyCheckedIn) {
		t.Errorf("期望 ErrAlreadyCheckedIn，实际: %v", err)
	}
}

func TestCheckIn_AfterCheckOut_StillRejected(t *testing.T) {
	svc, _, now := setupTestAttendanceService()

	if _, err := svc.CheckIn(context.Background(), "EMP001"); err != nil {
		t.Fatalf("CheckIn 失败: %v", err)
	}
	*now = now.Add(8 * time.Hour)
	if _, err := svc.CheckOut(context.Background(), "EMP001"); err != nil {
		t.Fatalf("CheckOut 失败: %v", err)
	}

	// 已签退当天再签到仍拒绝
	if _, err := svc.CheckIn(context.Background(), "EMP001"); !errors.Is(err, ErrAlreadyCheckedIn) {
		t.Errorf("期望 ErrAlreadyCheckedIn，实际: %v", err)
	}
}

// raceAttendanceRepo 模拟并发窗口：先查后插的查询扑空，插入撞上唯一索引
type raceAttendanceRepo struct {
	*mockAttendanceRepo
}

func (m *raceAttendanceRepo) GetByEmployeeAndDate(_ context.Context, _ string, _ time.Time) (*model.Attendance, error) {
	return nil, gorm.ErrRecordNotFound
}

func TestCheckIn_DuplicateKeyMappedToAlreadyCheckedIn(t *testing.T) {
	svc, attRepo, now := setupTestAttendanceService()
	svc.repo.Attendance = &raceAttendanceRepo{mockAttendanceRepo: attRepo}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	attRepo.records[attKey("EMP001", today)] = &model.Attendance{
		AttendanceID: "existing",
		EmployeeID:   "EMP001",
		Date:         today,
		CheckIn:      *now,
	}

	if _, err := svc.CheckIn(context.Background(), "EMP001"); !errors.Is(err, ErrAlreadyCheckedIn) {
		t.Errorf("唯一索引冲突应映射为 ErrAlreadyCheckedIn，实际: %v", err)
	}
}

// ── 签退测试 ──

func TestCheckOut_Success_EightAndHalfHours(t *testing.T) {
	svc, _, now := setupTestAttendanceService()

	// 9:00 签到，17:30 签退 → 8.5 小时
	if _, err := svc.CheckIn(context.Background(), "EMP001"); err != nil {
		t.Fatalf("CheckIn 失败: %v", err)
	}
	*now = time.Date(2024, 1, 15, 17, 30, 0, 0, time.Local)

	att, err := svc.CheckOut(context.Background(), "EMP001")
	if err != nil {
		t.Fatalf("CheckOut 应成功: %v", err)
	}
	if math.Abs(att.TotalHours-8.5) > 0.05 {
		t.Errorf("期望 TotalHours=8.5，实际=%v", att.TotalHours)
	}
	if att.CheckOut == nil {
		t.Fatal("CheckOut 时间不应为空")
	}
}

func TestCheckOut_NoCheckIn(t *testing.T) {
	svc, _, _ := setupTestAttendanceService()

	if _, err := svc.CheckOut(context.Background(), "EMP001"); !errors.Is(err, ErrNoCheckInFound) {
		t.Errorf("期望 ErrNoCheckInFound，实际: %v", err)
	}
}

func TestCheckOut_AlreadyCheckedOut(t *testing.T) {
	svc, _, now := setupTestAttendanceService()

	if _, err := svc.CheckIn(context.Background(), "EMP001"); err != nil {
		t.Fatalf("CheckIn 失败: %v", err)
	}
	*now = now.Add(time.Hour)
	if _, err := svc.CheckOut(context.Background(), "EMP001"); err != nil {
		t.Fatalf("首次 CheckOut 失败: %v", err)
	}

	if _, err := svc.CheckOut(context.Background(), "EMP001"); !errors.Is(err, ErrAlreadyCheckedOut) {
		t.Errorf("期望 ErrAlreadyCheckedOut，实际: %v", err)
	}
}

func TestCheckOut_ImmediatelyAfterCheckIn(t *testing.T) {
	svc, _, _ := setupTestAttendanceService()

	if _, err := svc.CheckIn(context.Background(), "EMP001"); err != nil {
		t.Fatalf("CheckIn 失败: %v", err)
	}

	// 签到后立即签退合法，时长约 0
	att, err := svc.CheckOut(context.Background(), "EMP001")
	if err != nil {
		t.Fatalf("CheckOut 应成功: %v", err)
	}
	if att.TotalHours != 0 {
		t.Errorf("期望 TotalHours=0，实际=%v", att.TotalHours)
	}
}

func TestCheckOut_ClockSkewClampedToZero(t *testing.T) {
	svc, _, now := setupTestAttendanceService()

	if _, err := svc.CheckIn(context.Background(), "EMP001"); err != nil {
		t.Fatalf("CheckIn 失败: %v", err)
	}

	// 时钟回拨：签退时刻早于签到时刻，时长收敛为 0 而非负数
	*now = now.Add(-30 * time.Minute)
	att, err := svc.CheckOut(context.Background(), "EMP001")
	if err != nil {
		t.Fatalf("CheckOut 应成功: %v", err)
	}
	if att.TotalHours != 0 {
		t.Errorf("时钟回拨时 TotalHours 应为 0，实际=%v", att.TotalHours)
	}
}

// ── 列表测试 ──

func TestListAttendance_RoleScoping(t *testing.T) {
	svc, attRepo, now := setupTestAttendanceService()

	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local)
	for i, empID := range []string{"EMP001", "EMP002"} {
		d := day.AddDate(0, 0, i)
		attRepo.records[attKey(empID, d)] = &model.Attendance{
			AttendanceID: "att-" + empID,
			EmployeeID:   empID,
			Date:         d,
			CheckIn:      *now,
		}
	}

	// 员工只能看到自己的记录
	own, err := svc.List(context.Background(), "EMP001", model.RoleEmployee)
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if len(own) != 1 || own[0].EmployeeID != "EMP001" {
		t.Errorf("员工应只看到自己的 1 条记录，实际=%d 条", len(own))
	}

	// 管理员可见全员
	all, err := svc.List(context.Background(), "ADMIN001", model.RoleAdmin)
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("管理员应看到 2 条记录，实际=%d 条", len(all))
	}
	// 按日期倒序
	if len(all) == 2 && all[0].Date < all[1].Date {
		t.Errorf("记录应按日期倒序，实际: %s, %s", all[0].Date, all[1].Date)
	}
}
