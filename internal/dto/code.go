package dto

// ── 코드 모듈 DTO ──

// CreateCodeGroupRequest 코드 그룹 생성 요청
type CreateCodeGroupRequest struct {
	GroupCode string `json:"group_code" binding:"required,max=50"`
	GroupName string `json:"group_name" binding:"required,max=100"`
}

// UpdateCodeGroupRequest 코드 그룹 수정 요청
type UpdateCodeGroupRequest struct {
	GroupName *string `json:"group_name" binding:"omitempty,max=100"`
}

// CodeGroupResponse 코드 그룹 응답
type CodeGroupResponse struct {
	GroupID   string               `json:"group_id"`
	GroupCode string               `json:"group_code"`
	GroupName string               `json:"group_name"`
	Details   []CodeDetailResponse `json:"details,omitempty"`
}

// CreateCodeDetailRequest 코드 상세 생성 요청
type CreateCodeDetailRequest struct {
	CodeValue string `json:"code_value" binding:"required,max=100"`
	CodeName  string `json:"code_name"  binding:"required,max=100"`
	SortOrder int    `json:"sort_order"`
}

// UpdateCodeDetailRequest 코드 상세 수정 요청
type UpdateCodeDetailRequest struct {
	CodeName  *string `json:"code_name"  binding:"omitempty,max=100"`
	SortOrder *int    `json:"sort_order"`
	IsActive  *bool   `json:"is_active"`
}

// CodeDetailResponse 코드 상세 응답
type CodeDetailResponse struct {
	CodeID    string `json:"code_id"`
	GroupID   string `json:"group_id"`
	CodeValue string `json:"code_value"`
	CodeName  string `json:"code_name"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
}
