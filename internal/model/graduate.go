package model

// Graduate 수료자 레코드 — new_comers_graduates 테이블
// 수료 시점의 새가족 레코드 사본. graduate_number는 새가족 번호와 같은 형식이지만
// 수료자 테이블 범위에서 독립적으로 채번된다.
// NewComerID는 약한 참조: 원본 새가족 삭제 시에도 수료자 레코드는 남는다.
type Graduate struct {
	ID             int64        `gorm:"primaryKey;autoIncrement"             json:"id"`
	NewComerID     *int64       `gorm:""                                     json:"new_comer_id,omitempty"`
	GraduateNumber string       `gorm:"type:varchar(20);not null"            json:"graduate_number"`
	Department     string       `gorm:"type:varchar(100);not null"           json:"department"`
	BelieverType   BelieverType `gorm:"type:varchar(20);not null"            json:"believer_type"`
	Year           int          `gorm:"not null"                             json:"year"`
	Name           string       `gorm:"type:varchar(100);not null"           json:"name"`
	Gender         string       `gorm:"type:varchar(10);not null;default:''" json:"gender"`
	MaritalStatus  string       `gorm:"type:varchar(20);not null;default:''" json:"marital_status"`
	BirthDate      string       `gorm:"type:varchar(20);not null;default:''" json:"birth_date"`
	Address        string       `gorm:"type:varchar(500);not null;default:''" json:"address"`
	Phone          string       `gorm:"type:varchar(30);not null;default:''" json:"phone"`
	Teacher        string       `gorm:"type:varchar(100);not null;default:''" json:"teacher"`
	RegisterDate   string       `gorm:"type:varchar(20);not null;default:''" json:"register_date"`
	AffiliationOrg string       `gorm:"type:varchar(100);not null;default:''" json:"affiliation_org"`
	Belong         string       `gorm:"type:varchar(100);not null;default:''" json:"belong"`
	PreviousChurch string       `gorm:"type:varchar(200);not null;default:''" json:"previous_church"`
	Comment        string       `gorm:"type:text;not null;default:''"        json:"comment"`
	GraduationDate string       `gorm:"type:varchar(20);not null;default:''" json:"graduation_date"`
	PrintCount     int          `gorm:"not null;default:0"                   json:"print_count"`
	BaseModel
}

// TableName 테이블명 지정
func (Graduate) TableName() string { return "new_comers_graduates" }
