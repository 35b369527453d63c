package model

import "time"

// Leave 请假申请表 — 对应 leaves
// 生命周期 pending → approved | rejected，两者均为终态
type Leave struct {
	LeaveID      string     `gorm:"type:varchar(36);primaryKey"                 json:"leave_id"`
	EmployeeID   string     `gorm:"type:varchar(20);not null"                   json:"employee_id"`
	LeaveType    string     `gorm:"type:varchar(20);not null"                   json:"leave_type"` // annual | sick | maternity | paternity | emergency
	StartDate    time.Time  `gorm:"type:date;not null"                          json:"start_date"`
	EndDate      time.Time  `gorm:"type:date;not null"                          json:"end_date"`
	TotalDays    int        `gorm:"not null"                                    json:"total_days"` // 含首尾的自然日数
	Reason       string     `gorm:"type:varchar(500);not null"                  json:"reason"`
	Status       string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	ApprovedBy   *string    `gorm:"type:varchar(20)"                            json:"approved_by,omitempty"`
	ApprovalDate *time.Time `json:"approval_date,omitempty"`
	Comments     string     `gorm:"type:varchar(500)"                           json:"comments,omitempty"`
	BaseModel

	// 关联
	Employee *Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID" json:"employee,omitempty"`
}

// TableName 指定表名
func (Leave) TableName() string { return "leaves" }
