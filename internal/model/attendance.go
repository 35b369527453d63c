package model

import "time"

// Attendance 考勤记录表 — 对应 attendances
// 每名员工每天至多一条（uidx_attendances_employee_date）；
// 签到时创建（check_out 为空），签退时更新一次，之后不再变更
type Attendance struct {
	AttendanceID string     `gorm:"type:varchar(36);primaryKey"                  json:"attendance_id"`
	EmployeeID   string     `gorm:"type:varchar(20);not null"                    json:"employee_id"`
	Date         time.Time  `gorm:"type:date;not null"                           json:"date"` // 归零到当日零点，作为去重键
	CheckIn      time.Time  `gorm:"not null"                                     json:"check_in"`
	CheckOut     *time.Time `json:"check_out,omitempty"`
	TotalHours   float64    `gorm:"type:numeric(6,2);not null;default:0"         json:"total_hours"`
	Status       string     `gorm:"type:varchar(20);not null;default:'present'"  json:"status"` // present | absent | late | half-day
	Notes        string     `gorm:"type:varchar(500)"                            json:"notes,omitempty"`
	BaseModel

	// 关联
	Employee *Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID" json:"employee,omitempty"`
}

// TableName 指定表名
func (Attendance) TableName() string { return "attendances" }
