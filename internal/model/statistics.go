package model

import "time"

// YearlyStatistics 연도별 새가족 통계 스냅샷 — yearly_new_family_statistics
// 원본 테이블에서 언제든 재계산 가능한 파생 데이터 (source of truth 아님)
type YearlyStatistics struct {
	ID              int64        `gorm:"primaryKey;autoIncrement"   json:"id"`
	Year            int          `gorm:"not null"                   json:"year"`
	Department      string       `gorm:"type:varchar(100);not null" json:"department"`
	BelieverType    BelieverType `gorm:"type:varchar(20);not null"  json:"believer_type"`
	RegisteredCount int          `gorm:"not null;default:0"         json:"registered_count"`
	CompletedCount  int          `gorm:"not null;default:0"         json:"completed_count"`
	GraduatedCount  int          `gorm:"not null;default:0"         json:"graduated_count"`
	CalculatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"calculated_at"`
}

// TableName 테이블명 지정
func (YearlyStatistics) TableName() string { return "yearly_new_family_statistics" }

// MonthlyAgeStatistics 월별 연령대 통계 스냅샷 — new_comers_monthly_age_statistics
type MonthlyAgeStatistics struct {
	ID           int64        `gorm:"primaryKey;autoIncrement"  json:"id"`
	Year         int          `gorm:"not null"                  json:"year"`
	Month        int          `gorm:"not null"                  json:"month"`
	AgeGroup     string       `gorm:"type:varchar(20);not null" json:"age_group"`
	BelieverType BelieverType `gorm:"type:varchar(20);not null" json:"believer_type"`
	Count        int          `gorm:"not null;default:0"        json:"count"`
	CalculatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"calculated_at"`
}

// TableName 테이블명 지정
func (MonthlyAgeStatistics) TableName() string { return "new_comers_monthly_age_statistics" }
