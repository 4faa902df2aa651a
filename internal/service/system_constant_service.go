package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"new-family/internal/dto"
	"new-family/internal/repository"
	"new-family/pkg/redis"
)

// ErrConstantNotFound 시스템 상수 없음 (키는 마이그레이션으로 시드, 런타임 추가 없음)
var ErrConstantNotFound = errors.New("시스템 상수를 찾을 수 없습니다")

// constantsCacheTTL 스냅샷 캐시 TTL. 변경 시 즉시 무효화하므로 길게 잡는다.
const constantsCacheTTL = 12 * time.Hour

// SystemConstantService 시스템 상수 업무 인터페이스
//
// 키 집합은 고정이고 값만 수정 가능하다. 목록 조회는 Redis 스냅샷을 우선 사용하고
// 수정 시 캐시를 무효화한다. Redis가 없으면(nil) DB 직행으로 동작한다.
type SystemConstantService interface {
	List(ctx context.Context) ([]dto.ConstantResponse, error)
	Get(ctx context.Context, key string) (*dto.ConstantResponse, error)
	Update(ctx context.Context, key string, req *dto.UpdateConstantRequest, callerID string) (*dto.ConstantResponse, error)
}

type systemConstantService struct {
	repo   *repository.Repository
	rdb    *redis.Client
	logger *zap.Logger
}

// NewSystemConstantService SystemConstantService 인스턴스 생성. rdb는 nil 허용.
func NewSystemConstantService(repo *repository.Repository, rdb *redis.Client, logger *zap.Logger) SystemConstantService {
	return &systemConstantService{repo: repo, rdb: rdb, logger: logger}
}

func (s *systemConstantService) List(ctx context.Context) ([]dto.ConstantResponse, error) {
	// 캐시 히트면 스냅샷 그대로 반환
	if s.rdb != nil {
		if payload, err := s.rdb.GetConstants(ctx); err == nil && payload != "" {
			var cached []dto.ConstantResponse
			if err := json.Unmarshal([]byte(payload), &cached); err == nil {
				return cached, nil
			}
			// 손상된 스냅샷은 버리고 DB에서 다시 읽는다
			_ = s.rdb.InvalidateConstants(ctx)
		}
	}

	rows, err := s.repo.SystemConstant.List(ctx)
	if err != nil {
		s.logger.Error("시스템 상수 목록 조회 실패", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ConstantResponse, 0, len(rows))
	for i := range rows {
		c := &rows[i]
		result = append(result, dto.ConstantResponse{
			Key:         c.Key,
			Value:       c.Value,
			Description: c.Description,
			UpdatedAt:   c.UpdatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(result); err == nil {
			if err := s.rdb.SetConstants(ctx, string(payload), constantsCacheTTL); err != nil {
				s.logger.Warn("시스템 상수 캐시 저장 실패", zap.Error(err))
			}
		}
	}

	return result, nil
}

func (s *systemConstantService) Get(ctx context.Context, key string) (*dto.ConstantResponse, error) {
	c, err := s.repo.SystemConstant.Get(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConstantNotFound
		}
		s.logger.Error("시스템 상수 조회 실패", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return &dto.ConstantResponse{
		Key:         c.Key,
		Value:       c.Value,
		Description: c.Description,
		UpdatedAt:   c.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}, nil
}

func (s *systemConstantService) Update(ctx context.Context, key string, req *dto.UpdateConstantRequest, callerID string) (*dto.ConstantResponse, error) {
	c, err := s.repo.SystemConstant.Get(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConstantNotFound
		}
		return nil, err
	}

	c.Value = req.Value
	c.UpdatedBy = &callerID
	if err := s.repo.SystemConstant.Update(ctx, c); err != nil {
		s.logger.Error("시스템 상수 수정 실패", zap.String("key", key), zap.Error(err))
		return nil, err
	}

	if s.rdb != nil {
		if err := s.rdb.InvalidateConstants(ctx); err != nil {
			s.logger.Warn("시스템 상수 캐시 무효화 실패", zap.Error(err))
		}
	}

	s.logger.Info("시스템 상수 변경", zap.String("key", key))
	return &dto.ConstantResponse{
		Key:         c.Key,
		Value:       c.Value,
		Description: c.Description,
		UpdatedAt:   c.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}, nil
}
