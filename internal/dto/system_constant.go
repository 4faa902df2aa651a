package dto

// ── 시스템 상수 모듈 DTO ──

// UpdateConstantRequest 시스템 상수 수정 요청
type UpdateConstantRequest struct {
	Value string `json:"value" binding:"required"`
}

// ConstantResponse 시스템 상수 응답
type ConstantResponse struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	UpdatedAt   string `json:"updated_at"`
}
