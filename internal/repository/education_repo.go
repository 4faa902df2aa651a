package repository

import (
	"context"

	"gorm.io/gorm"

	"new-family/internal/model"
)

// EducationRepository 양육 기록 데이터 접근 인터페이스
type EducationRepository interface {
	GetByNewComerID(ctx context.Context, newComerID int64) (*model.NewComerEducation, error)
	Create(ctx context.Context, edu *model.NewComerEducation) error
	Update(ctx context.Context, edu *model.NewComerEducation) error
}

// educationRepo EducationRepository의 GORM 구현
type educationRepo struct {
	db *gorm.DB
}

// NewEducationRepo EducationRepository 인스턴스 생성
func NewEducationRepo(db *gorm.DB) EducationRepository {
	return &educationRepo{db: db}
}

func (r *educationRepo) GetByNewComerID(ctx context.Context, newComerID int64) (*model.NewComerEducation, error) {
	var edu model.NewComerEducation
	err := r.db.WithContext(ctx).
		Where("new_comer_id = ?", newComerID).
		First(&edu).Error
	if err != nil {
		return nil, err
	}
	return &edu, nil
}

func (r *educationRepo) Create(ctx context.Context, edu *model.NewComerEducation) error {
	return r.db.WithContext(ctx).Create(edu).Error
}

func (r *educationRepo) Update(ctx context.Context, edu *model.NewComerEducation) error {
	// 주차 필드를 NULL로 되돌릴 수 있어야 하므로 전체 컬럼을 저장한다
	return r.db.WithContext(ctx).
		Model(edu).
		Select("*").
		Omit("id", "new_comer_id", "created_at", "created_by").
		Updates(edu).Error
}
