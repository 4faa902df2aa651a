package repository

import (
	"context"

	"gorm.io/gorm"

	"new-family/internal/model"
)

// SystemConstantRepository 시스템 상수 데이터 접근 인터페이스
type SystemConstantRepository interface {
	Get(ctx context.Context, key string) (*model.SystemConstant, error)
	List(ctx context.Context) ([]model.SystemConstant, error)
	Update(ctx context.Context, constant *model.SystemConstant) error
}

// systemConstantRepo SystemConstantRepository의 GORM 구현
type systemConstantRepo struct {
	db *gorm.DB
}

// NewSystemConstantRepo SystemConstantRepository 인스턴스 생성
func NewSystemConstantRepo(db *gorm.DB) SystemConstantRepository {
	return &systemConstantRepo{db: db}
}

func (r *systemConstantRepo) Get(ctx context.Context, key string) (*model.SystemConstant, error) {
	var constant model.SystemConstant
	err := r.db.WithContext(ctx).
		Where("key = ?", key).
		First(&constant).Error
	if err != nil {
		return nil, err
	}
	return &constant, nil
}

func (r *systemConstantRepo) List(ctx context.Context) ([]model.SystemConstant, error) {
	var constants []model.SystemConstant
	err := r.db.WithContext(ctx).
		Order("key ASC").
		Find(&constants).Error
	return constants, err
}

func (r *systemConstantRepo) Update(ctx context.Context, constant *model.SystemConstant) error {
	return r.db.WithContext(ctx).Save(constant).Error
}
