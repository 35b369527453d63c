package dto

// ── 认证模块 DTO ──

// LoginRequest 登录请求
// 角色随凭据一起声明：员工不能以管理员身份登录，反之亦然
type LoginRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Password   string `json:"password"    binding:"required"`
	Role       string `json:"role"        binding:"required,oneof=employee admin"`
}

// ResetPasswordRequest 自助重置密码请求
type ResetPasswordRequest struct {
	EmployeeID  string `json:"employee_id"  binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=64"`
}

// RefreshTokenRequest 刷新 Token 请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse Token 对响应
type TokenResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	ExpiresIn    int              `json:"expires_in"` // Access Token 有效期（秒）
	User         EmployeeResponse `json:"user"`
}
