package dto

// ── 메뉴 모듈 DTO ──

// CreateMenuRequest 메뉴 생성 요청
type CreateMenuRequest struct {
	Name       string  `json:"name"        binding:"required,max=100"`
	Path       string  `json:"path"        binding:"omitempty,max=200"`
	ScreenPath string  `json:"screen_path" binding:"omitempty,max=200"`
	SortOrder  int     `json:"sort_order"`
	ParentID   *string `json:"parent_id"   binding:"omitempty,uuid"`
}

// UpdateMenuRequest 메뉴 수정 요청
type UpdateMenuRequest struct {
	Name       *string `json:"name"        binding:"omitempty,max=100"`
	Path       *string `json:"path"        binding:"omitempty,max=200"`
	ScreenPath *string `json:"screen_path" binding:"omitempty,max=200"`
	SortOrder  *int    `json:"sort_order"`
	IsActive   *bool   `json:"is_active"`
}

// MenuResponse 메뉴 응답
type MenuResponse struct {
	MenuID     string  `json:"menu_id"`
	Name       string  `json:"name"`
	Path       string  `json:"path,omitempty"`
	ScreenPath string  `json:"screen_path,omitempty"`
	SortOrder  int     `json:"sort_order"`
	ParentID   *string `json:"parent_id,omitempty"`
	IsActive   bool    `json:"is_active"`
}
