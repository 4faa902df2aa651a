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

// ── 코드 모듈 업무 오류 ──

var (
	ErrCodeGroupNotFound  = errors.New("코드 그룹을 찾을 수 없습니다")
	ErrCodeDetailNotFound = errors.New("코드 상세를 찾을 수 없습니다")
	ErrGroupCodeExists    = errors.New("이미 존재하는 그룹 코드입니다")
	ErrCodeValueExists    = errors.New("그룹 내에 이미 존재하는 코드 값입니다")
)

// CodeService 공통 코드 업무 인터페이스
// 부서 등 선택 목록의 값은 코드 그룹/상세로 관리한다.
type CodeService interface {
	CreateGroup(ctx context.Context, req *dto.CreateCodeGroupRequest, callerID string) (*dto.CodeGroupResponse, error)
	GetGroup(ctx context.Context, groupID string) (*dto.CodeGroupResponse, error)
	// GetGroupByCode 그룹 코드 문자열로 조회 (상세 포함) — 화면 선택 목록 로딩용
	GetGroupByCode(ctx context.Context, groupCode string) (*dto.CodeGroupResponse, error)
	ListGroups(ctx context.Context) ([]dto.CodeGroupResponse, error)
	UpdateGroup(ctx context.Context, groupID string, req *dto.UpdateCodeGroupRequest, callerID string) (*dto.CodeGroupResponse, error)
	DeleteGroup(ctx context.Context, groupID string) error

	CreateDetail(ctx context.Context, groupID string, req *dto.CreateCodeDetailRequest, callerID string) (*dto.CodeDetailResponse, error)
	UpdateDetail(ctx context.Context, codeID string, req *dto.UpdateCodeDetailRequest, callerID string) (*dto.CodeDetailResponse, error)
	DeleteDetail(ctx context.Context, codeID string) error
}

type codeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCodeService CodeService 인스턴스 생성
func NewCodeService(repo *repository.Repository, logger *zap.Logger) CodeService {
	return &codeService{repo: repo, logger: logger}
}

// ────────────────────── 그룹 ──────────────────────

func (s *codeService) CreateGroup(ctx context.Context, req *dto.CreateCodeGroupRequest, callerID string) (*dto.CodeGroupResponse, error) {
	if _, err := s.repo.Code.GetGroupByCode(ctx, req.GroupCode); err == nil {
		return nil, ErrGroupCodeExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	group := &model.CodeGroup{
		GroupCode: req.GroupCode,
		GroupName: req.GroupName,
	}
	group.CreatedBy = &callerID
	group.UpdatedBy = &callerID

	if err := s.repo.Code.CreateGroup(ctx, group); err != nil {
		s.logger.Error("코드 그룹 생성 실패", zap.String("group_code", req.GroupCode), zap.Error(err))
		return nil, err
	}
	return toCodeGroupResponse(group, nil), nil
}

func (s *codeService) GetGroup(ctx context.Context, groupID string) (*dto.CodeGroupResponse, error) {
	group, err := s.repo.Code.GetGroupByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCodeGroupNotFound
		}
		return nil, err
	}
	details, err := s.repo.Code.ListDetails(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return toCodeGroupResponse(group, details), nil
}

func (s *codeService) GetGroupByCode(ctx context.Context, groupCode string) (*dto.CodeGroupResponse, error) {
	group, err := s.repo.Code.GetGroupByCode(ctx, groupCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCodeGroupNotFound
		}
		return nil, err
	}
	details, err := s.repo.Code.ListDetails(ctx, group.GroupID)
	if err != nil {
		return nil, err
	}
	return toCodeGroupResponse(group, details), nil
}

func (s *codeService) ListGroups(ctx context.Context) ([]dto.CodeGroupResponse, error) {
	groups, err := s.repo.Code.ListGroups(ctx)
	if err != nil {
		s.logger.Error("코드 그룹 목록 조회 실패", zap.Error(err))
		return nil, err
	}
	result := make([]dto.CodeGroupResponse, 0, len(groups))
	for i := range groups {
		result = append(result, *toCodeGroupResponse(&groups[i], nil))
	}
	return result, nil
}

func (s *codeService) UpdateGroup(ctx context.Context, groupID string, req *dto.UpdateCodeGroupRequest, callerID string) (*dto.CodeGroupResponse, error) {
	group, err := s.repo.Code.GetGroupByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCodeGroupNotFound
		}
		return nil, err
	}

	if req.GroupName != nil {
		group.GroupName = *req.GroupName
	}
	group.UpdatedBy = &callerID

	if err := s.repo.Code.UpdateGroup(ctx, group); err != nil {
		s.logger.Error("코드 그룹 수정 실패", zap.String("group_id", groupID), zap.Error(err))
		return nil, err
	}
	return toCodeGroupResponse(group, nil), nil
}

func (s *codeService) DeleteGroup(ctx context.Context, groupID string) error {
	if _, err := s.repo.Code.GetGroupByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCodeGroupNotFound
		}
		return err
	}
	if err := s.repo.Code.DeleteGroup(ctx, groupID); err != nil {
		s.logger.Error("코드 그룹 삭제 실패", zap.String("group_id", groupID), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── 상세 ──────────────────────

func (s *codeService) CreateDetail(ctx context.Context, groupID string, req *dto.CreateCodeDetailRequest, callerID string) (*dto.CodeDetailResponse, error) {
	if _, err := s.repo.Code.GetGroupByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCodeGroupNotFound
		}
		return nil, err
	}

	// 그룹 내 code_value 중복 방지 (DB 제약과 이중 방어)
	if _, err := s.repo.Code.GetDetailByValue(ctx, groupID, req.CodeValue); err == nil {
		return nil, ErrCodeValueExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	detail := &model.CodeDetail{
		GroupID:   groupID,
		CodeValue: req.CodeValue,
		CodeName:  req.CodeName,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	detail.CreatedBy = &callerID
	detail.UpdatedBy = &callerID

	if err := s.repo.Code.CreateDetail(ctx, detail); err != nil {
		s.logger.Error("코드 상세 생성 실패", zap.String("group_id", groupID), zap.Error(err))
		return nil, err
	}
	return toCodeDetailResponse(detail), nil
}

func (s *codeService) UpdateDetail(ctx context.Context, codeID string, req *dto.UpdateCodeDetailRequest, callerID string) (*dto.CodeDetailResponse, error) {
	detail, err := s.repo.Code.GetDetailByID(ctx, codeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCodeDetailNotFound
		}
		return nil, err
	}

	if req.CodeName != nil {
		detail.CodeName = *req.CodeName
	}
	if req.SortOrder != nil {
		detail.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		detail.IsActive = *req.IsActive
	}
	detail.UpdatedBy = &callerID

	if err := s.repo.Code.UpdateDetail(ctx, detail); err != nil {
		s.logger.Error("코드 상세 수정 실패", zap.String("code_id", codeID), zap.Error(err))
		return nil, err
	}
	return toCodeDetailResponse(detail), nil
}

func (s *codeService) DeleteDetail(ctx context.Context, codeID string) error {
	if _, err := s.repo.Code.GetDetailByID(ctx, codeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCodeDetailNotFound
		}
		return err
	}
	if err := s.repo.Code.DeleteDetail(ctx, codeID); err != nil {
		s.logger.Error("코드 상세 삭제 실패", zap.String("code_id", codeID), zap.Error(err))
		return err
	}
	return nil
}

// ── 변환 헬퍼 ──

func toCodeGroupResponse(group *model.CodeGroup, details []model.CodeDetail) *dto.CodeGroupResponse {
	resp := &dto.CodeGroupResponse{
		GroupID:   group.GroupID,
		GroupCode: group.GroupCode,
		GroupName: group.GroupName,
	}
	for i := range details {
		resp.Details = append(resp.Details, *toCodeDetailResponse(&details[i]))
	}
	return resp
}

func toCodeDetailResponse(detail *model.CodeDetail) *dto.CodeDetailResponse {
	return &dto.CodeDetailResponse{
		CodeID:    detail.CodeID,
		GroupID:   detail.GroupID,
		CodeValue: detail.CodeValue,
		CodeName:  detail.CodeName,
		SortOrder: detail.SortOrder,
		IsActive:  detail.IsActive,
	}
}
