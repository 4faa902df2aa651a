package repository

import (
	"context"

	"gorm.io/gorm"

	"new-family/internal/model"
)

// NewComerListFilters 새가족 목록 필터
type NewComerListFilters struct {
	Year          int
	Department    string
	BelieverType  model.BelieverType
	EducationType model.EducationType
	Name          string // 부분 일치
}

// NewComerRepository 새가족 데이터 접근 인터페이스
type NewComerRepository interface {
	Create(ctx context.Context, nc *model.NewComer) error
	GetByID(ctx context.Context, id int64) (*model.NewComer, error)
	Update(ctx context.Context, nc *model.NewComer) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filters *NewComerListFilters, offset, limit int) ([]model.NewComer, int64, error)
	// ListByScope (year, department, believerType) 범위의 행을 생성 순서(id ASC)로 조회 — 재정렬용
	ListByScope(ctx context.Context, year int, department string, believerType model.BelieverType) ([]model.NewComer, error)
	// UpdateNumber 표시 번호만 갱신 (재정렬 패스에서 사용)
	UpdateNumber(ctx context.Context, id int64, number string) error
	// FindByNameAndBirthDate 중복 확인용 조회
	FindByNameAndBirthDate(ctx context.Context, name, birthDate string) ([]model.NewComer, error)
	// ListByYear 통계 재계산용 연도 전체 조회
	ListByYear(ctx context.Context, year int) ([]model.NewComer, error)
}

// newComerRepo NewComerRepository의 GORM 구현
type newComerRepo struct {
	db *gorm.DB
}

// NewNewComerRepo NewComerRepository 인스턴스 생성
func NewNewComerRepo(db *gorm.DB) NewComerRepository {
	return &newComerRepo{db: db}
}

func (r *newComerRepo) Create(ctx context.Context, nc *model.NewComer) error {
	return r.db.WithContext(ctx).Create(nc).Error
}

func (r *newComerRepo) GetByID(ctx context.Context, id int64) (*model.NewComer, error) {
	var nc model.NewComer
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&nc).Error
	if err != nil {
		return nil, err
	}
	return &nc, nil
}

func (r *newComerRepo) Update(ctx context.Context, nc *model.NewComer) error {
	return r.db.WithContext(ctx).Save(nc).Error
}

func (r *newComerRepo) Delete(ctx context.Context, id int64) error {
	// 양육 기록은 FK ON DELETE CASCADE로 함께 삭제된다
	return r.db.WithContext(ctx).Delete(&model.NewComer{}, id).Error
}

func (r *newComerRepo) List(ctx context.Context, filters *NewComerListFilters, offset, limit int) ([]model.NewComer, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.NewComer{})

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
		if filters.EducationType != "" {
			db = db.Where("education_type = ?", filters.EducationType)
		}
		if filters.Name != "" {
			db = db.Where("name LIKE ?", "%"+filters.Name+"%")
		}
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.NewComer
	if err := db.Offset(offset).Limit(limit).
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func (r *newComerRepo) ListByScope(ctx context.Context, year int, department string, believerType model.BelieverType) ([]model.NewComer, error) {
	var rows []model.NewComer
	err := r.db.WithContext(ctx).
		Where("year = ? AND department = ? AND believer_type = ?", year, department, believerType).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *newComerRepo) UpdateNumber(ctx context.Context, id int64, number string) error {
	return r.db.WithContext(ctx).
		Model(&model.NewComer{}).
		Where("id = ?", id).
		Update("number", number).Error
}

func (r *newComerRepo) FindByNameAndBirthDate(ctx context.Context, name, birthDate string) ([]model.NewComer, error) {
	var rows []model.NewComer
	err := r.db.WithContext(ctx).
		Where("name = ? AND birth_date = ?", name, birthDate).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *newComerRepo) ListByYear(ctx context.Context, year int) ([]model.NewComer, error) {
	var rows []model.NewComer
	err := r.db.WithContext(ctx).
		Where("year = ?", year).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}
