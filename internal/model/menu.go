package model

// Menu 메뉴 테이블 — menus
// screen_path는 메뉴가 가리키는 프론트엔드 화면 경로 (별도 screens 테이블 없이 통합)
type Menu struct {
	MenuID     string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"menu_id"`
	Name       string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Path       string  `gorm:"type:varchar(200);not null;default:''"          json:"path"`
	ScreenPath string  `gorm:"type:varchar(200);not null;default:''"          json:"screen_path"`
	SortOrder  int     `gorm:"not null;default:0"                             json:"sort_order"`
	ParentID   *string `gorm:"type:uuid"                                      json:"parent_id,omitempty"`
	IsActive   bool    `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

// TableName 테이블명 지정
func (Menu) TableName() string { return "menus" }
