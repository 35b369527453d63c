package dto

import "time"

// ── 考勤模块 DTO ──

// AttendanceResponse 单条考勤记录
type AttendanceResponse struct {
	AttendanceID string     `json:"attendance_id"`
	EmployeeID   string     `json:"employee_id"`
	Date         string     `json:"date"` // YYYY-MM-DD
	CheckIn      time.Time  `json:"check_in"`
	CheckOut     *time.Time `json:"check_out,omitempty"`
	TotalHours   float64    `json:"total_hours"`
	Status       string     `json:"status"`
	Notes        string     `json:"notes,omitempty"`
}
