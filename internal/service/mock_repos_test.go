package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/swathi2703-blip/Company-Attendance-Project/internal/model"
	"github.com/swathi2703-blip/Company-Attendance-Project/internal/repository"
)

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	employees map[string]*model.Employee // key: employee_id
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: make(map[string]*model.Employee)}
}

func (m *mockEmployeeRepo) Create(_ context.Context, emp *model.Employee) error {
	m.employees[emp.EmployeeID] = emp
	return nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, employeeID string) (*model.Employee, error) {
	if e, ok := m.employees[employeeID]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) GetActiveByID(_ context.Context, employeeID string) (*model.Employee, error) {
	if e, ok := m.employees[employeeID]; ok && e.IsActive {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) GetActiveByIDAndRole(_ context.Context, employeeID, role string) (*model.Employee, error) {
	if e, ok := m.employees[employeeID]; ok && e.IsActive && e.Role == role {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) Update(_ context.Context, emp *model.Employee) error {
	m.employees[emp.EmployeeID] = emp
	return nil
}

func (m *mockEmployeeRepo) ListActive(_ context.Context) ([]model.Employee, error) {
	var result []model.Employee
	for _, e := range m.employees {
		if e.IsActive {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].EmployeeID < result[j].EmployeeID
	})
	return result, nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	records map[string]*model.Attendance // key: employee_id + ":" + date
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{records: make(map[string]*model.Attendance)}
}

func attKey(employeeID string, date time.Time) string {
	return employeeID + ":" + date.Format("2006-01-02")
}

func (m *mockAttendanceRepo) Create(_ context.Context, att *model.Attendance) error {
	key := attKey(att.EmployeeID, att.Date)
	// 与数据库唯一索引行为一致
	if _, ok := m.records[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	m.records[key] = att
	return nil
}

func (m *mockAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*model.Attendance, error) {
	if a, ok := m.records[attKey(employeeID, date)]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) Update(_ context.Context, att *model.Attendance) error {
	m.records[attKey(att.EmployeeID, att.Date)] = att
	return nil
}

func (m *mockAttendanceRepo) ListByEmployee(_ context.Context, employeeID string) ([]model.Attendance, error) {
	var result []model.Attendance
	for _, a := range m.records {
		if a.EmployeeID == employeeID {
			result = append(result, *a)
		}
	}
	sortAttendanceByDateDesc(result)
	return result, nil
}

func (m *mockAttendanceRepo) ListAll(_ context.Context) ([]model.Attendance, error) {
	var result []model.Attendance
	for _, a := range m.records {
		result = append(result, *a)
	}
	sortAttendanceByDateDesc(result)
	return result, nil
}

func (m *mockAttendanceRepo) ListByDateRange(_ context.Context, from, to time.Time) ([]model.Attendance, error) {
	var result []model.Attendance
	for _, a := range m.records {
		if !a.Date.Before(from) && !a.Date.After(to) {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].EmployeeID < result[j].EmployeeID
	})
	return result, nil
}

func sortAttendanceByDateDesc(atts []model.Attendance) {
	sort.Slice(atts, func(i, j int) bool {
		return atts[i].Date.After(atts[j].Date)
	})
}

// ── Mock LeaveRepository ──

type mockLeaveRepo struct {
	leaves map[string]*model.Leave // key: leave_id
	seq    int
}

func newMockLeaveRepo() *mockLeaveRepo {
	return &mockLeaveRepo{leaves: make(map[string]*model.Leave)}
}

func (m *mockLeaveRepo) Create(_ context.Context, leave *model.Leave) error {
	m.seq++
	if leave.CreatedAt.IsZero() {
		// 保证创建顺序可排序
		leave.CreatedAt = time.Now().Add(time.Duration(m.seq) * time.Millisecond)
	}
	m.leaves[leave.LeaveID] = leave
	return nil
}

func (m *mockLeaveRepo) GetByID(_ context.Context, leaveID string) (*model.Leave, error) {
	if l, ok := m.leaves[leaveID]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLeaveRepo) Update(_ context.Context, leave *model.Leave) error {
	m.leaves[leave.LeaveID] = leave
	return nil
}

func (m *mockLeaveRepo) ListByEmployee(_ context.Context, employeeID string) ([]model.Leave, error) {
	var result []model.Leave
	for _, l := range m.leaves {
		if l.EmployeeID == employeeID {
			result = append(result, *l)
		}
	}
	sortLeavesByCreatedDesc(result)
	return result, nil
}

func (m *mockLeaveRepo) ListAll(_ context.Context) ([]model.Leave, error) {
	var result []model.Leave
	for _, l := range m.leaves {
		result = append(result, *l)
	}
	sortLeavesByCreatedDesc(result)
	return result, nil
}

func (m *mockLeaveRepo) ListByStatus(_ context.Context, status string) ([]model.Leave, error) {
	var result []model.Leave
	for _, l := range m.leaves {
		if l.Status == status {
			result = append(result, *l)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartDate.Before(result[j].StartDate)
	})
	return result, nil
}

func sortLeavesByCreatedDesc(leaves []model.Leave) {
	sort.Slice(leaves, func(i, j int) bool {
		return leaves[i].CreatedAt.After(leaves[j].CreatedAt)
	})
}

// newMockRepository 组装全 mock 的 Repository 聚合
func newMockRepository() (*repository.Repository, *mockEmployeeRepo, *mockAttendanceRepo, *mockLeaveRepo) {
	empRepo := newMockEmployeeRepo()
	attRepo := newMockAttendanceRepo()
	leaveRepo := newMockLeaveRepo()
	repo := &repository.Repository{
		Employee:   empRepo,
		Attendance: attRepo,
		Leave:      leaveRepo,
	}
	return repo, empRepo, attRepo, leaveRepo
}
