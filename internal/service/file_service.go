package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"new-family/internal/dto"
	"new-family/internal/model"
	"new-family/internal/repository"
)

// ── 파일 모듈 업무 오류 ──

var (
	ErrFileNotFound    = errors.New("파일을 찾을 수 없습니다")
	ErrFileTooLarge    = errors.New("파일 크기가 허용 한도를 초과했습니다")
	ErrFileStoreFailed = errors.New("파일 저장에 실패했습니다")
)

// maxUploadSize 업로드 허용 크기 (10MB)
const maxUploadSize = 10 << 20

// FileService 업로드 파일 업무 인터페이스
//
// 저장 규칙:
//   - 디렉터리: {FILE_ROOT_PATH}/{FILE_UPLOAD_PATH}/{yyyy}/{mm}
//   - 파일명: {yyyymmdd}_{NNN}{확장자} — NNN은 일자별 순번 (채번 카운터 사용)
//   - DB에는 루트 기준 상대 경로만 기록해 루트 이동 시에도 레코드가 유효하다
type FileService interface {
	Upload(ctx context.Context, originalName, contentType string, size int64, src io.Reader, callerID string) (*dto.FileResponse, error)
	// Resolve 파일 메타와 실제 절대 경로 반환 (다운로드용)
	Resolve(ctx context.Context, fileID string) (*dto.FileResponse, string, error)
	Delete(ctx context.Context, fileID string) error
}

type fileService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFileService FileService 인스턴스 생성
func NewFileService(repo *repository.Repository, logger *zap.Logger) FileService {
	return &fileService{repo: repo, logger: logger}
}

// storageRoot 시스템 상수에서 저장 루트와 업로드 하위 경로를 읽는다
func (s *fileService) storageRoot(ctx context.Context) (string, string, error) {
	root, err := s.repo.SystemConstant.Get(ctx, model.ConstFileRootPath)
	if err != nil {
		return "", "", err
	}
	upload, err := s.repo.SystemConstant.Get(ctx, model.ConstFileUploadPath)
	if err != nil {
		return "", "", err
	}
	return root.Value, upload.Value, nil
}

func (s *fileService) Upload(ctx context.Context, originalName, contentType string, size int64, src io.Reader, callerID string) (*dto.FileResponse, error) {
	if size > maxUploadSize {
		return nil, ErrFileTooLarge
	}

	rootPath, uploadPath, err := s.storageRoot(ctx)
	if err != nil {
		s.logger.Error("파일 경로 상수 조회 실패", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	dateKey, _ := strconv.Atoi(now.Format("20060102"))

	// 일자별 순번 채번 — 파일 범위는 부서·신자구분 차원이 없으므로 빈 값
	seq, err := s.repo.Sequence.Next(ctx, model.ScopeFiles, "", "", dateKey)
	if err != nil {
		s.logger.Error("파일 순번 채번 실패", zap.Error(err))
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	savedName := fmt.Sprintf("%s_%03d%s", now.Format("20060102"), seq, ext)
	relDir := filepath.Join(uploadPath, now.Format("2006"), now.Format("01"))
	relativePath := filepath.Join(relDir, savedName)
	absDir := filepath.Join(rootPath, relDir)

	if err := os.MkdirAll(absDir, 0o755); err != nil {
		s.logger.Error("업로드 디렉터리 생성 실패", zap.String("dir", absDir), zap.Error(err))
		return nil, ErrFileStoreFailed
	}

	dst, err := os.Create(filepath.Join(rootPath, relativePath))
	if err != nil {
		s.logger.Error("파일 생성 실패", zap.String("path", relativePath), zap.Error(err))
		return nil, ErrFileStoreFailed
	}
	defer dst.Close()

	// 선언된 size를 믿지 않고 실제 스트림 기준으로 한도를 다시 검사한다.
	// 한도+1바이트까지 읽어야 잘림과 초과를 구분할 수 있다.
	written, err := io.Copy(dst, io.LimitReader(src, maxUploadSize+1))
	if err != nil {
		_ = os.Remove(filepath.Join(rootPath, relativePath))
		s.logger.Error("파일 쓰기 실패", zap.String("path", relativePath), zap.Error(err))
		return nil, ErrFileStoreFailed
	}
	if written > maxUploadSize {
		_ = os.Remove(filepath.Join(rootPath, relativePath))
		return nil, ErrFileTooLarge
	}

	file := &model.UploadedFile{
		OriginalName: originalName,
		SavedName:    savedName,
		RelativePath: relativePath,
		Size:         written,
		ContentType:  contentType,
	}
	file.CreatedBy = &callerID
	file.UpdatedBy = &callerID

	if err := s.repo.File.Create(ctx, file); err != nil {
		// 메타 저장 실패 시 고아 파일을 남기지 않는다
		_ = os.Remove(filepath.Join(rootPath, relativePath))
		s.logger.Error("파일 메타 저장 실패", zap.Error(err))
		return nil, err
	}

	s.logger.Info("파일 업로드 완료",
		zap.String("file_id", file.FileID),
		zap.String("saved_name", savedName),
		zap.Int64("size", written),
	)
	return toFileResponse(file), nil
}

func (s *fileService) Resolve(ctx context.Context, fileID string) (*dto.FileResponse, string, error) {
	file, err := s.repo.File.GetByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrFileNotFound
		}
		return nil, "", err
	}

	rootPath, _, err := s.storageRoot(ctx)
	if err != nil {
		return nil, "", err
	}

	return toFileResponse(file), filepath.Join(rootPath, file.RelativePath), nil
}

func (s *fileService) Delete(ctx context.Context, fileID string) error {
	file, err := s.repo.File.GetByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFileNotFound
		}
		return err
	}

	if err := s.repo.File.Delete(ctx, fileID); err != nil {
		s.logger.Error("파일 메타 삭제 실패", zap.String("file_id", fileID), zap.Error(err))
		return err
	}

	// 실제 파일 삭제는 best effort — 메타가 기준
	if rootPath, _, err := s.storageRoot(ctx); err == nil {
		if err := os.Remove(filepath.Join(rootPath, file.RelativePath)); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("파일 삭제 실패", zap.String("path", file.RelativePath), zap.Error(err))
		}
	}
	return nil
}

// toFileResponse 모델 → 응답 DTO 변환
func toFileResponse(file *model.UploadedFile) *dto.FileResponse {
	return &dto.FileResponse{
		FileID:       file.FileID,
		OriginalName: file.OriginalName,
		SavedName:    file.SavedName,
		RelativePath: file.RelativePath,
		Size:         file.Size,
		ContentType:  file.ContentType,
		CreatedAt:    file.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
