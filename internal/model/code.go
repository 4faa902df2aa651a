package model

// CodeGroup 코드 그룹 테이블 — code_groups
type CodeGroup struct {
	GroupID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"group_id"`
	GroupCode string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"group_code"`
	GroupName string `gorm:"type:varchar(100);not null"                     json:"group_name"`
	BaseModel
}

// TableName 테이블명 지정
func (CodeGroup) TableName() string { return "code_groups" }

// CodeDetail 코드 상세 테이블 — code_details
// code_value는 그룹 내에서 유일하다 (DB 제약).
type CodeDetail struct {
	CodeID    string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"code_id"`
	GroupID   string `gorm:"type:uuid;not null"                             json:"group_id"`
	CodeValue string `gorm:"type:varchar(100);not null"                     json:"code_value"`
	CodeName  string `gorm:"type:varchar(100);not null"                     json:"code_name"`
	SortOrder int    `gorm:"not null;default:0"                             json:"sort_order"`
	IsActive  bool   `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel

	// 연관
	Group *CodeGroup `gorm:"foreignKey:GroupID;references:GroupID" json:"group,omitempty"`
}

// TableName 테이블명 지정
func (CodeDetail) TableName() string { return "code_details" }
