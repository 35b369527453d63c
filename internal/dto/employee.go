package dto

// ── 员工模块 DTO ──

// EmployeeResponse 员工公开信息（脱敏，不含密码哈希）
type EmployeeResponse struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

// ProfileResponse 员工完整档案（GET /profile）
type ProfileResponse struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Position   string `json:"position"`
	JoinDate   string `json:"join_date"`
}
