package model

import "time"

// Employee 员工身份表 — 对应 employees
// 正常运营下只增不删：密码重置仅替换 password_hash，离职仅翻转 is_active
type Employee struct {
	EmployeeID   string    `gorm:"type:varchar(20);primaryKey"                     json:"employee_id"`
	PasswordHash string    `gorm:"type:varchar(255);not null"                      json:"-"`
	Role         string    `gorm:"type:varchar(20);not null;default:'employee'"    json:"role"` // employee | admin
	Name         string    `gorm:"type:varchar(100);not null"                      json:"name"`
	Email        string    `gorm:"type:varchar(255);not null"                      json:"email"`
	Department   string    `gorm:"type:varchar(100);not null"                      json:"department"`
	Position     string    `gorm:"type:varchar(100);not null"                      json:"position"`
	JoinDate     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"              json:"join_date"`
	IsActive     bool      `gorm:"not null;default:true"                           json:"is_active"`
	BaseModel
}

// TableName 指定表名
func (Employee) TableName() string { return "employees" }
