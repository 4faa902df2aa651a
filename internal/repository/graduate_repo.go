package repository

import (
	"context"

	"gorm.io/gorm"

	"new-family/internal/model"
)

// GraduateListFilters 수료자 목록 필터
type GraduateListFilters struct {
	Year         int
	Department   string
	BelieverType model.BelieverType
	Name         string
}

// GraduateRepository 수료자 데이터 접근 인터페이스
type GraduateRepository interface {
	Create(ctx context.Context, g *model.Graduate) error
	GetByID(ctx context.Context, id int64) (*model.Graduate, error)
	// GetByNewComerID 원본 새가족 기준 조회 (중복 이관 방지 가드)
	GetByNewComerID(ctx context.Context, newComerID int64) (*model.Graduate, error)
	List(ctx context.Context, filters *GraduateListFilters, offset, limit int) ([]model.Graduate, int64, error)
	Delete(ctx context.Context, id int64) error
	// IncrementPrintCount 수료증 인쇄 횟수 증가, 증가된 값 반환
	IncrementPrintCount(ctx context.Context, id int64) (int, error)
	// ListByYear 통계 재계산용 연도 전체 조회
	ListByYear(ctx context.Context, year int) ([]model.Graduate, error)
}

// graduateRepo GraduateRepository의 GORM 구현
type graduateRepo struct {
	db *gorm.DB
}

// NewGraduateRepo GraduateRepository 인스턴스 생성
func NewGraduateRepo(db *gorm.DB) GraduateRepository {
	return &graduateRepo{db: db}
}

func (r *graduateRepo) Create(ctx context.Context, g *model.Graduate) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *graduateRepo) GetByID(ctx context.Context, id int64) (*model.Graduate, error) {
	var g model.Graduate
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&g).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *graduateRepo) GetByNewComerID(ctx context.Context, newComerID int64) (*model.Graduate, error) {
	var g model.Graduate
	err := r.db.WithContext(ctx).
		Where("new_comer_id = ?", newComerID).
		First(&g).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *graduateRepo) List(ctx context.Context, filters *GraduateListFilters, offset, limit int) ([]model.Graduate, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.Graduate{})

	if filters != nil {
		if filters.Year != 0 {
			db = db.Where("year = ?", filters.Year)
		}
		if filters.Department != "" {
			db = db.Where("department = ?", filters.Department)
		}
		if filters.BelieverType != "" {
			db = db.Where("believer_type = ?", filters.BelieverType)
		}
		if filters.Name != "" {
			db = db.Where("name LIKE ?", "%"+filters.Name+"%")
		}
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.Graduate
	if err := db.Offset(offset).Limit(limit).
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func (r *graduateRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Graduate{}, id).Error
}

func (r *graduateRepo) IncrementPrintCount(ctx context.Context, id int64) (int, error) {
	var count int
	err := r.db.WithContext(ctx).Raw(`
		UPDATE new_comers_graduates
		SET print_count = print_count + 1, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
		RETURNING print_count`, id,
	).Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *graduateRepo) ListByYear(ctx context.Context, year int) ([]model.Graduate, error) {
	var rows []model.Graduate
	err := r.db.WithContext(ctx).
		Where("year = ?", year).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}
