package repository

import (
	"context"

	"gorm.io/gorm"

	"new-family/internal/model"
)

// MenuRepository 메뉴 데이터 접근 인터페이스
type MenuRepository interface {
	Create(ctx context.Context, menu *model.Menu) error
	GetByID(ctx context.Context, id string) (*model.Menu, error)
	List(ctx context.Context, includeInactive bool) ([]model.Menu, error)
	Update(ctx context.Context, menu *model.Menu) error
	Delete(ctx context.Context, id string) error
}

// menuRepo MenuRepository의 GORM 구현
type menuRepo struct {
	db *gorm.DB
}

// NewMenuRepo MenuRepository 인스턴스 생성
func NewMenuRepo(db *gorm.DB) MenuRepository {
	return &menuRepo{db: db}
}

func (r *menuRepo) Create(ctx context.Context, menu *model.Menu) error {
	return r.db.WithContext(ctx).Create(menu).Error
}

func (r *menuRepo) GetByID(ctx context.Context, id string) (*model.Menu, error) {
	var menu model.Menu
	err := r.db.WithContext(ctx).
		Where("menu_id = ?", id).
		First(&menu).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *menuRepo) List(ctx context.Context, includeInactive bool) ([]model.Menu, error) {
	db := r.db.WithContext(ctx)
	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}
	var menus []model.Menu
	err := db.Order("sort_order ASC, name ASC").Find(&menus).Error
	return menus, err
}

func (r *menuRepo) Update(ctx context.Context, menu *model.Menu) error {
	return r.db.WithContext(ctx).Save(menu).Error
}

func (r *menuRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("menu_id = ?", id).
		Delete(&model.Menu{}).Error
}
