package model

// NewComerEducation 양육 진행 레코드 — new_comers_education 테이블
// 새가족 레코드와 1:1 (new_comer_id 기준 upsert).
// 주차 필드는 빈 문자열 대신 NULL을 저장해 "아직 미도달"과 "명시적 공란"을 구분한다.
type NewComerEducation struct {
	ID             int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	NewComerID     int64   `gorm:"not null;uniqueIndex"     json:"new_comer_id"`
	Week1Date      *string `gorm:"type:varchar(20)"         json:"week1_date"`
	Week2Date      *string `gorm:"type:varchar(20)"         json:"week2_date"`
	Week3Date      *string `gorm:"type:varchar(20)"         json:"week3_date"`
	Week4Date      *string `gorm:"type:varchar(20)"         json:"week4_date"`
	Week5Date      *string `gorm:"type:varchar(20)"         json:"week5_date"`
	Week6Date      *string `gorm:"type:varchar(20)"         json:"week6_date"`
	Week7Date      *string `gorm:"type:varchar(20)"         json:"week7_date"`
	Week8Date      *string `gorm:"type:varchar(20)"         json:"week8_date"`
	Week1Comment   *string `gorm:"type:text"                json:"week1_comment"`
	Week2Comment   *string `gorm:"type:text"                json:"week2_comment"`
	Week3Comment   *string `gorm:"type:text"                json:"week3_comment"`
	Week4Comment   *string `gorm:"type:text"                json:"week4_comment"`
	Week5Comment   *string `gorm:"type:text"                json:"week5_comment"`
	Week6Comment   *string `gorm:"type:text"                json:"week6_comment"`
	Week7Comment   *string `gorm:"type:text"                json:"week7_comment"`
	Week8Comment   *string `gorm:"type:text"                json:"week8_comment"`
	OverallComment *string `gorm:"type:text"                json:"overall_comment"`
	BaseModel
}

// TableName 테이블명 지정
func (NewComerEducation) TableName() string { return "new_comers_education" }

// WeekDates 주차별 일자 포인터를 순서대로 반환 (달력 생성 등에서 사용)
func (e *NewComerEducation) WeekDates() []*string {
	return []*string{
		e.Week1Date, e.Week2Date, e.Week3Date, e.Week4Date,
		e.Week5Date, e.Week6Date, e.Week7Date, e.Week8Date,
	}
}
