package model

import (
	"fmt"
	"time"
)

// ── 새가족 분류 enum ──

// BelieverType 신자 구분
type BelieverType string

const (
	BelieverTypeNew      BelieverType = "new_believer"      // 초신자 (8주 과정)
	BelieverTypeTransfer BelieverType = "transfer_believer" // 전입신자 (4주 과정)
)

// Valid 알려진 신자 구분인지 확인
func (t BelieverType) Valid() bool {
	return t == BelieverTypeNew || t == BelieverTypeTransfer
}

// EducationWeeks 신자 구분별 양육 과정 주차 수
func (t BelieverType) EducationWeeks() int {
	if t == BelieverTypeTransfer {
		return 4
	}
	return 8
}

// EducationType 양육 진행 상태
type EducationType string

const (
	EducationInProgress   EducationType = "in_progress"
	EducationCompleted    EducationType = "completed"
	EducationDiscontinued EducationType = "discontinued"
)

// TransferStatus 수료자 이관 상태
type TransferStatus string

const (
	TransferPending TransferStatus = "pending"
	TransferSent    TransferStatus = "sent"
)

// FormatNumber 표시 번호 생성: 연도 뒤 2자리 + 3자리 순번 (예: 2025년 7번 → "25-007")
// 순번이 999를 넘으면 자릿수가 늘어나지만 오류로 취급하지 않는다.
func FormatNumber(year, seq int) string {
	return fmt.Sprintf("%02d-%03d", year%100, seq)
}

// EducationEndDate 양육 시작일과 신자 구분으로 종료일 계산.
// 마지막 주차는 시작일 + (주차수-1)*7일이며, 관례상 일요일로 맞춘다.
func EducationEndDate(start time.Time, t BelieverType) time.Time {
	end := start.AddDate(0, 0, (t.EducationWeeks()-1)*7)
	for end.Weekday() != time.Sunday {
		end = end.AddDate(0, 0, 1)
	}
	return end
}

// NewComer 새가족 레코드 — new_comers 테이블
// id는 BIGSERIAL: 번호 재정렬은 생성 순서(id ASC)를 따른다.
type NewComer struct {
	ID                     int64          `gorm:"primaryKey;autoIncrement"            json:"id"`
	Department             string         `gorm:"type:varchar(100);not null"          json:"department"`
	BelieverType           BelieverType   `gorm:"type:varchar(20);not null"           json:"believer_type"`
	Year                   int            `gorm:"not null"                            json:"year"`
	Number                 string         `gorm:"type:varchar(20);not null"           json:"number"`
	Name                   string         `gorm:"type:varchar(100);not null"          json:"name"`
	Gender                 string         `gorm:"type:varchar(10);not null;default:''" json:"gender"`
	MaritalStatus          string         `gorm:"type:varchar(20);not null;default:''" json:"marital_status"`
	BirthDate              string         `gorm:"type:varchar(20);not null;default:''" json:"birth_date"`
	Address                string         `gorm:"type:varchar(500);not null;default:''" json:"address"`
	Phone                  string         `gorm:"type:varchar(30);not null;default:''" json:"phone"`
	Teacher                string         `gorm:"type:varchar(100);not null;default:''" json:"teacher"`
	RegisterDate           string         `gorm:"type:varchar(20);not null;default:''" json:"register_date"`
	AffiliationOrg         string         `gorm:"type:varchar(100);not null;default:''" json:"affiliation_org"`
	Belong                 string         `gorm:"type:varchar(100);not null;default:''" json:"belong"`
	IdentityVerified       bool           `gorm:"not null;default:false"              json:"identity_verified"`
	PreviousChurch         string         `gorm:"type:varchar(200);not null;default:''" json:"previous_church"`
	Comment                string         `gorm:"type:text;not null;default:''"       json:"comment"`
	EducationType          EducationType  `gorm:"type:varchar(20);not null;default:'in_progress'" json:"education_type"`
	EducationStartDate     string         `gorm:"type:varchar(20);not null;default:''" json:"education_start_date"`
	EducationEndDate       string         `gorm:"type:varchar(20);not null;default:''" json:"education_end_date"`
	GraduateTransferStatus TransferStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"graduate_transfer_status"`
	FileID                 *string        `gorm:"type:uuid"                           json:"file_id,omitempty"`
	BaseModel
}

// TableName 테이블명 지정
func (NewComer) TableName() string { return "new_comers" }
