package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"new-family/internal/dto"
	"new-family/internal/model"
	"new-family/internal/repository"
)

// ── 메뉴 모듈 업무 오류 ──

var (
	ErrMenuNotFound      = errors.New("메뉴를 찾을 수 없습니다")
	ErrMenuParentMissing = errors.New("상위 메뉴를 찾을 수 없습니다")
)

// MenuService 메뉴 업무 인터페이스
type MenuService interface {
	Create(ctx context.Context, req *dto.CreateMenuRequest, callerID string) (*dto.MenuResponse, error)
	GetByID(ctx context.Context, id string) (*dto.MenuResponse, error)
	// List includeInactive=false이면 활성 메뉴만 (일반 사용자 내비게이션용)
	List(ctx context.Context, includeInactive bool) ([]dto.MenuResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateMenuRequest, callerID string) (*dto.MenuResponse, error)
	Delete(ctx context.Context, id string) error
}

type menuService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMenuService MenuService 인스턴스 생성
func NewMenuService(repo *repository.Repository, logger *zap.Logger) MenuService {
	return &menuService{repo: repo, logger: logger}
}

func (s *menuService) Create(ctx context.Context, req *dto.CreateMenuRequest, callerID string) (*dto.MenuResponse, error) {
	if req.ParentID != nil {
		if _, err := s.repo.Menu.GetByID(ctx, *req.ParentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrMenuParentMissing
			}
			return nil, err
		}
	}

	menu := &model.Menu{
		Name:       req.Name,
		Path:       req.Path,
		ScreenPath: req.ScreenPath,
		SortOrder:  req.SortOrder,
		ParentID:   req.ParentID,
		IsActive:   true,
	}
	menu.CreatedBy = &callerID
	menu.UpdatedBy = &callerID

	if err := s.repo.Menu.Create(ctx, menu); err != nil {
		s.logger.Error("메뉴 생성 실패", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}
	return toMenuResponse(menu), nil
}

func (s *menuService) GetByID(ctx context.Context, id string) (*dto.MenuResponse, error) {
	menu, err := s.repo.Menu.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}
	return toMenuResponse(menu), nil
}

func (s *menuService) List(ctx context.Context, includeInactive bool) ([]dto.MenuResponse, error) {
	menus, err := s.repo.Menu.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("메뉴 목록 조회 실패", zap.Error(err))
		return nil, err
	}
	result := make([]dto.MenuResponse, 0, len(menus))
	for i := range menus {
		result = append(result, *toMenuResponse(&menus[i]))
	}
	return result, nil
}

func (s *menuService) Update(ctx context.Context, id string, req *dto.UpdateMenuRequest, callerID string) (*dto.MenuResponse, error) {
	menu, err := s.repo.Menu.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		menu.Name = *req.Name
	}
	if req.Path != nil {
		menu.Path = *req.Path
	}
	if req.ScreenPath != nil {
		menu.ScreenPath = *req.ScreenPath
	}
	if req.SortOrder != nil {
		menu.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		menu.IsActive = *req.IsActive
	}
	menu.UpdatedBy = &callerID

	if err := s.repo.Menu.Update(ctx, menu); err != nil {
		s.logger.Error("메뉴 수정 실패", zap.String("menu_id", id), zap.Error(err))
		return nil, err
	}
	return toMenuResponse(menu), nil
}

func (s *menuService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Menu.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuNotFound
		}
		return err
	}
	if err := s.repo.Menu.Delete(ctx, id); err != nil {
		s.logger.Error("메뉴 삭제 실패", zap.String("menu_id", id), zap.Error(err))
		return err
	}
	return nil
}

// toMenuResponse 모델 → 응답 DTO 변환
func toMenuResponse(menu *model.Menu) *dto.MenuResponse {
	return &dto.MenuResponse{
		MenuID:     menu.MenuID,
		Name:       menu.Name,
		Path:       menu.Path,
		ScreenPath: menu.ScreenPath,
		SortOrder:  menu.SortOrder,
		ParentID:   menu.ParentID,
		IsActive:   menu.IsActive,
	}
}
