package repository

import (
	"context"

	"gorm.io/gorm"

	"new-family/internal/model"
)

// FileRepository 업로드 파일 데이터 접근 인터페이스
type FileRepository interface {
	Create(ctx context.Context, file *model.UploadedFile) error
	GetByID(ctx context.Context, id string) (*model.UploadedFile, error)
	Delete(ctx context.Context, id string) error
}

// fileRepo FileRepository의 GORM 구현
type fileRepo struct {
	db *gorm.DB
}

// NewFileRepo FileRepository 인스턴스 생성
func NewFileRepo(db *gorm.DB) FileRepository {
	return &fileRepo{db: db}
}

func (r *fileRepo) Create(ctx context.Context, file *model.UploadedFile) error {
	return r.db.WithContext(ctx).Create(file).Error
}

func (r *fileRepo) GetByID(ctx context.Context, id string) (*model.UploadedFile, error) {
	var file model.UploadedFile
	err := r.db.WithContext(ctx).
		Where("file_id = ?", id).
		First(&file).Error
	if err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *fileRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("file_id = ?", id).
		Delete(&model.UploadedFile{}).Error
}
