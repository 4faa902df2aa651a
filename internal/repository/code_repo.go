package repository

import (
	"context"

	"gorm.io/gorm"

	"new-family/internal/model"
)

// CodeRepository 코드 그룹/상세 데이터 접근 인터페이스
type CodeRepository interface {
	CreateGroup(ctx context.Context, group *model.CodeGroup) error
	GetGroupByID(ctx context.Context, id string) (*model.CodeGroup, error)
	GetGroupByCode(ctx context.Context, groupCode string) (*model.CodeGroup, error)
	ListGroups(ctx context.Context) ([]model.CodeGroup, error)
	UpdateGroup(ctx context.Context, group *model.CodeGroup) error
	DeleteGroup(ctx context.Context, id string) error

	CreateDetail(ctx context.Context, detail *model.CodeDetail) error
	GetDetailByID(ctx context.Context, id string) (*model.CodeDetail, error)
	// GetDetailByValue 그룹 내 code_value 중복 확인용
	GetDetailByValue(ctx context.Context, groupID, codeValue string) (*model.CodeDetail, error)
	ListDetails(ctx context.Context, groupID string) ([]model.CodeDetail, error)
	UpdateDetail(ctx context.Context, detail *model.CodeDetail) error
	DeleteDetail(ctx context.Context, id string) error
}

// codeRepo CodeRepository의 GORM 구현
type codeRepo struct {
	db *gorm.DB
}

// NewCodeRepo CodeRepository 인스턴스 생성
func NewCodeRepo(db *gorm.DB) CodeRepository {
	return &codeRepo{db: db}
}

func (r *codeRepo) CreateGroup(ctx context.Context, group *model.CodeGroup) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *codeRepo) GetGroupByID(ctx context.Context, id string) (*model.CodeGroup, error) {
	var group model.CodeGroup
	err := r.db.WithContext(ctx).
		Where("group_id = ?", id).
		First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *codeRepo) GetGroupByCode(ctx context.Context, groupCode string) (*model.CodeGroup, error) {
	var group model.CodeGroup
	err := r.db.WithContext(ctx).
		Where("group_code = ?", groupCode).
		First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *codeRepo) ListGroups(ctx context.Context) ([]model.CodeGroup, error) {
	var groups []model.CodeGroup
	err := r.db.WithContext(ctx).
		Order("group_code ASC").
		Find(&groups).Error
	return groups, err
}

func (r *codeRepo) UpdateGroup(ctx context.Context, group *model.CodeGroup) error {
	return r.db.WithContext(ctx).Save(group).Error
}

func (r *codeRepo) DeleteGroup(ctx context.Context, id string) error {
	// 상세는 FK ON DELETE CASCADE로 함께 삭제된다
	return r.db.WithContext(ctx).
		Where("group_id = ?", id).
		Delete(&model.CodeGroup{}).Error
}

func (r *codeRepo) CreateDetail(ctx context.Context, detail *model.CodeDetail) error {
	return r.db.WithContext(ctx).Create(detail).Error
}

func (r *codeRepo) GetDetailByID(ctx context.Context, id string) (*model.CodeDetail, error) {
	var detail model.CodeDetail
	err := r.db.WithContext(ctx).
		Where("code_id = ?", id).
		First(&detail).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *codeRepo) GetDetailByValue(ctx context.Context, groupID, codeValue string) (*model.CodeDetail, error) {
	var detail model.CodeDetail
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND code_value = ?", groupID, codeValue).
		First(&detail).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *codeRepo) ListDetails(ctx context.Context, groupID string) ([]model.CodeDetail, error) {
	var details []model.CodeDetail
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("sort_order ASC, code_value ASC").
		Find(&details).Error
	return details, err
}

func (r *codeRepo) UpdateDetail(ctx context.Context, detail *model.CodeDetail) error {
	return r.db.WithContext(ctx).Save(detail).Error
}

func (r *codeRepo) DeleteDetail(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("code_id = ?", id).
		Delete(&model.CodeDetail{}).Error
}
