package dto

import "time"

// ── 请假模块 DTO ──

// SubmitLeaveRequest 提交请假申请
// 日期使用 YYYY-MM-DD，时间部分在服务层归零
type SubmitLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required,oneof=annual sick maternity paternity emergency"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   binding:"required,datetime=2006-01-02"`
	Reason    string `json:"reason"     binding:"required,max=500"`
}

// DecideLeaveRequest 审批请假申请（管理员）
type DecideLeaveRequest struct {
	Status   string `json:"status"   binding:"required,oneof=approved rejected"`
	Comments string `json:"comments" binding:"omitempty,max=500"`
}

// LeaveResponse 单条请假记录
type LeaveResponse struct {
	LeaveID      string     `json:"leave_id"`
	EmployeeID   string     `json:"employee_id"`
	LeaveType    string     `json:"leave_type"`
	StartDate    string     `json:"start_date"` // YYYY-MM-DD
	EndDate      string     `json:"end_date"`   // YYYY-MM-DD
	TotalDays    int        `json:"total_days"`
	Reason       string     `json:"reason"`
	Status       string     `json:"status"`
	ApprovedBy   *string    `json:"approved_by,omitempty"`
	ApprovalDate *time.Time `json:"approval_date,omitempty"`
	Comments     string     `json:"comments,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
