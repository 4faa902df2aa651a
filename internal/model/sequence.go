package model

// ── 번호 채번 범위 ──

// SequenceScope 채번 카운터의 범위 구분
type SequenceScope string

const (
	ScopeNewComers SequenceScope = "newcomers" // 새가족 표시 번호
	ScopeGraduates SequenceScope = "graduates" // 수료자 번호 (독립 채번)
	ScopeFiles     SequenceScope = "files"     // 업로드 파일 일별 순번
)

// NumberSequence 채번 카운터 — number_sequences 테이블
// (scope, department, believer_type, year) 별 마지막 발급 순번.
// 조회-후-삽입 경쟁을 피하기 위해 INSERT .. ON CONFLICT .. RETURNING 으로만 갱신한다.
type NumberSequence struct {
	Scope        SequenceScope `gorm:"type:varchar(20);primaryKey"  json:"scope"`
	Department   string        `gorm:"type:varchar(100);primaryKey" json:"department"`
	BelieverType string        `gorm:"type:varchar(20);primaryKey"  json:"believer_type"`
	Year         int           `gorm:"primaryKey"                   json:"year"`
	LastSeq      int           `gorm:"not null;default:0"           json:"last_seq"`
}

// TableName 테이블명 지정
func (NumberSequence) TableName() string { return "number_sequences" }
