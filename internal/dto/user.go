package dto

// ── 사용자 모듈 DTO ──

// CreateUserRequest 사용자 생성 요청
type CreateUserRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"     binding:"required,min=2,max=100"`
	Role     string `json:"role"     binding:"required,oneof=admin staff viewer"`
}

// UpdateUserRequest 사용자 수정 요청
type UpdateUserRequest struct {
	Name *string `json:"name" binding:"omitempty,min=2,max=100"`
	Role *string `json:"role" binding:"omitempty,oneof=admin staff viewer"`
}

// ResetPasswordRequest 비밀번호 초기화 요청 (관리자)
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// UserListRequest 사용자 목록 조회 파라미터
type UserListRequest struct {
	Page     int `form:"page,default=1"      binding:"omitempty,min=1"`
	PageSize int `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

// UserResponse 사용자 응답
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// UserDetailResponse 사용자 상세 응답
type UserDetailResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
