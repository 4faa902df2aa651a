package repository

import (
	"context"

	"gorm.io/gorm"

	"new-family/internal/model"
)

// StatisticsRepository 통계 스냅샷 데이터 접근 인터페이스
// 스냅샷은 파생 데이터이므로 연도 단위로 전체 교체(delete + insert)한다
type StatisticsRepository interface {
	ReplaceYearly(ctx context.Context, year int, rows []model.YearlyStatistics) error
	ListYearly(ctx context.Context, year int) ([]model.YearlyStatistics, error)
	ReplaceMonthlyAge(ctx context.Context, year int, rows []model.MonthlyAgeStatistics) error
	ListMonthlyAge(ctx context.Context, year int) ([]model.MonthlyAgeStatistics, error)
}

// statisticsRepo StatisticsRepository의 GORM 구현
type statisticsRepo struct {
	db *gorm.DB
}

// NewStatisticsRepo StatisticsRepository 인스턴스 생성
func NewStatisticsRepo(db *gorm.DB) StatisticsRepository {
	return &statisticsRepo{db: db}
}

func (r *statisticsRepo) ReplaceYearly(ctx context.Context, year int, rows []model.YearlyStatistics) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("year = ?", year).
			Delete(&model.YearlyStatistics{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (r *statisticsRepo) ListYearly(ctx context.Context, year int) ([]model.YearlyStatistics, error) {
	var rows []model.YearlyStatistics
	err := r.db.WithContext(ctx).
		Where("year = ?", year).
		Order("department ASC, believer_type ASC").
		Find(&rows).Error
	return rows, err
}

func (r *statisticsRepo) ReplaceMonthlyAge(ctx context.Context, year int, rows []model.MonthlyAgeStatistics) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("year = ?", year).
			Delete(&model.MonthlyAgeStatistics{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (r *statisticsRepo) ListMonthlyAge(ctx context.Context, year int) ([]model.MonthlyAgeStatistics, error) {
	var rows []model.MonthlyAgeStatistics
	err := r.db.WithContext(ctx).
		Where("year = ?", year).
		Order("month ASC, age_group ASC").
		Find(&rows).Error
	return rows, err
}
