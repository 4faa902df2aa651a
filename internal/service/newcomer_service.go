package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"new-family/internal/dto"
	"new-family/internal/model"
	"new-family/internal/repository"
)

// ── 새가족 모듈 업무 오류 ──

var (
	ErrNewComerNotFound      = errors.New("새가족 레코드를 찾을 수 없습니다")
	ErrInvalidBelieverType   = errors.New("신자 구분이 올바르지 않습니다")
	ErrCompletedNotDeletable = errors.New("수료 완료된 레코드는 삭제할 수 없습니다")
)

// NewComerService 새가족 업무 인터페이스
//
// 설계 설명:
//   - 표시 번호는 (부서, 신자구분, 연도) 범위에서 채번 카운터로 트랜잭션 안에서 발급
//   - 신자 구분·부서 이동 시: 대상 범위 시퀀스에서 새 번호 발급 + 원 범위 잔여 행 재정렬,
//     전부 하나의 트랜잭션으로 처리 (기존의 자기 자신 HTTP 재호출 패턴 제거)
//   - 삭제 시에도 같은 트랜잭션에서 재정렬하여 번호 공백을 닫는다
type NewComerService interface {
	Register(ctx context.Context, believerType model.BelieverType, req *dto.CreateNewComerRequest, callerID string) (*dto.NewComerResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.NewComerResponse, error)
	List(ctx context.Context, believerType model.BelieverType, req *dto.NewComerListRequest) ([]dto.NewComerResponse, int64, error)
	Update(ctx context.Context, id int64, req *dto.UpdateNewComerRequest, callerID string) (*dto.NewComerResponse, error)
	Delete(ctx context.Context, id int64) error
	// ReorderNumbers 수동 재정렬: (연도, 부서, 신자구분) 범위의 번호를 001..N으로 재부여
	ReorderNumbers(ctx context.Context, believerType model.BelieverType, req *dto.ReorderRequest) (*dto.ReorderResponse, error)
	// PreviewNumber 다음 발급될 번호 미리보기 (카운터를 증가시키지 않음)
	PreviewNumber(ctx context.Context, believerType model.BelieverType, req *dto.GenerateNumberRequest) (*dto.GenerateNumberResponse, error)
	// CheckDuplicate 이름+생년월일 기준 중복 등록 확인
	CheckDuplicate(ctx context.Context, req *dto.DuplicateCheckRequest) (*dto.DuplicateCheckResponse, error)
}

type newComerService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewNewComerService NewComerService 인스턴스 생성
func NewNewComerService(repo *repository.Repository, logger *zap.Logger) NewComerService {
	return &newComerService{repo: repo, logger: logger}
}

// ────────────────────── Register ──────────────────────

func (s *newComerService) Register(ctx context.Context, believerType model.BelieverType, req *dto.CreateNewComerRequest, callerID string) (*dto.NewComerResponse, error) {
	if !believerType.Valid() {
		return nil, ErrInvalidBelieverType
	}

	nc := &model.NewComer{
		Department:         req.Department,
		BelieverType:       believerType,
		Year:               req.Year,
		Name:               req.Name,
		Gender:             req.Gender,
		MaritalStatus:      req.MaritalStatus,
		BirthDate:          req.BirthDate,
		Address:            req.Address,
		Phone:              req.Phone,
		Teacher:            req.Teacher,
		RegisterDate:       req.RegisterDate,
		AffiliationOrg:     req.AffiliationOrg,
		Belong:             req.Belong,
		IdentityVerified:   req.IdentityVerified,
		PreviousChurch:     req.PreviousChurch,
		Comment:            req.Comment,
		EducationType:      model.EducationInProgress,
		EducationStartDate: req.EducationStartDate,
		EducationEndDate:   computeEndDate(req.EducationStartDate, believerType),
		GraduateTransferStatus: model.TransferPending,
		FileID:             req.FileID,
	}
	nc.CreatedBy = &callerID
	nc.UpdatedBy = &callerID

	// 채번과 삽입을 한 트랜잭션으로 묶어 동시 등록 시 번호 중복을 막는다
	err := s.repo.Tx.Transaction(ctx, func(r *repository.Repository) error {
		seq, err := r.Sequence.Next(ctx, model.ScopeNewComers, nc.Department, string(believerType), nc.Year)
		if err != nil {
			return err
		}
		nc.Number = model.FormatNumber(nc.Year, seq)
		return r.NewComer.Create(ctx, nc)
	})
	if err != nil {
		s.logger.Error("새가족 등록 실패", zap.Error(err))
		return nil, err
	}

	return toNewComerResponse(nc), nil
}

// ────────────────────── GetByID / List ──────────────────────

func (s *newComerService) GetByID(ctx context.Context, id int64) (*dto.NewComerResponse, error) {
	nc, err := s.repo.NewComer.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewComerNotFound
		}
		s.logger.Error("새가족 조회 실패", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toNewComerResponse(nc), nil
}

func (s *newComerService) List(ctx context.Context, believerType model.BelieverType, req *dto.NewComerListRequest) ([]dto.NewComerResponse, int64, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	filters := &repository.NewComerListFilters{
		Year:          req.Year,
		Department:    req.Department,
		BelieverType:  believerType,
		EducationType: model.EducationType(req.EducationType),
		Name:          req.Name,
	}

	rows, total, err := s.repo.NewComer.List(ctx, filters, (page-1)*pageSize, pageSize)
	if err != nil {
		s.logger.Error("새가족 목록 조회 실패", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.NewComerResponse, 0, len(rows))
	for i := range rows {
		result = append(result, *toNewComerResponse(&rows[i]))
	}
	return result, total, nil
}

// ────────────────────── Update (신자 구분 전환 포함) ──────────────────────

func (s *newComerService) Update(ctx context.Context, id int64, req *dto.UpdateNewComerRequest, callerID string) (*dto.NewComerResponse, error) {
	nc, err := s.repo.NewComer.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewComerNotFound
		}
		s.logger.Error("새가족 조회 실패", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	// 범위 이동 판정: 번호는 (부서, 신자구분, 연도) 범위에서만 유효하므로
	// believer_type뿐 아니라 department 변경도 재채번 대상이다
	oldType := nc.BelieverType
	oldDepartment := nc.Department
	newType := oldType
	if req.BelieverType != nil {
		newType = model.BelieverType(*req.BelieverType)
		if newType != oldType && !newType.Valid() {
			return nil, ErrInvalidBelieverType
		}
	}
	newDepartment := oldDepartment
	if req.Department != nil {
		newDepartment = *req.Department
	}
	typeChanged := newType != oldType
	scopeChanged := typeChanged || newDepartment != oldDepartment

	applyNewComerUpdate(nc, req)
	nc.UpdatedBy = &callerID

	err = s.repo.Tx.Transaction(ctx, func(r *repository.Repository) error {
		if scopeChanged {
			nc.BelieverType = newType
			// 대상 범위 시퀀스에서 새 번호 발급 — 기존 번호와 무관하게 독립 채번
			seq, err := r.Sequence.Next(ctx, model.ScopeNewComers, nc.Department, string(nc.BelieverType), nc.Year)
			if err != nil {
				return err
			}
			nc.Number = model.FormatNumber(nc.Year, seq)
			if typeChanged {
				// 과정 주차 수가 달라지므로 양육 종료일 재계산
				nc.EducationEndDate = computeEndDate(nc.EducationStartDate, nc.BelieverType)
			}
		}

		if err := r.NewComer.Update(ctx, nc); err != nil {
			return err
		}

		if scopeChanged {
			// 원 범위에 남은 행들의 번호 공백을 같은 트랜잭션에서 닫는다
			if _, err := reorderScope(ctx, r, nc.Year, oldDepartment, oldType); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("새가족 수정 실패", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	if scopeChanged {
		s.logger.Info("번호 범위 이동 처리",
			zap.Int64("id", id),
			zap.String("from_department", oldDepartment),
			zap.String("to_department", nc.Department),
			zap.String("from", string(oldType)),
			zap.String("to", string(nc.BelieverType)),
			zap.String("new_number", nc.Number),
		)
	}

	return toNewComerResponse(nc), nil
}

// ────────────────────── Delete ──────────────────────

func (s *newComerService) Delete(ctx context.Context, id int64) error {
	nc, err := s.repo.NewComer.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNewComerNotFound
		}
		return err
	}

	// 수료 완료 레코드는 삭제 불가
	if nc.EducationType == model.EducationCompleted {
		return ErrCompletedNotDeletable
	}

	err = s.repo.Tx.Transaction(ctx, func(r *repository.Repository) error {
		if err := r.NewComer.Delete(ctx, id); err != nil {
			return err
		}
		// 삭제로 생긴 번호 공백을 같은 트랜잭션에서 닫는다
		_, err := reorderScope(ctx, r, nc.Year, nc.Department, nc.BelieverType)
		return err
	})
	if err != nil {
		s.logger.Error("새가족 삭제 실패", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── ReorderNumbers / PreviewNumber ──────────────────────

func (s *newComerService) ReorderNumbers(ctx context.Context, believerType model.BelieverType, req *dto.ReorderRequest) (*dto.ReorderResponse, error) {
	if !believerType.Valid() {
		return nil, ErrInvalidBelieverType
	}

	var updated int
	err := s.repo.Tx.Transaction(ctx, func(r *repository.Repository) error {
		n, err := reorderScope(ctx, r, req.Year, req.Department, believerType)
		updated = n
		return err
	})
	if err != nil {
		s.logger.Error("번호 재정렬 실패",
			zap.Int("year", req.Year),
			zap.String("department", req.Department),
			zap.Error(err))
		return nil, err
	}

	return &dto.ReorderResponse{UpdatedCount: updated}, nil
}

func (s *newComerService) PreviewNumber(ctx context.Context, believerType model.BelieverType, req *dto.GenerateNumberRequest) (*dto.GenerateNumberResponse, error) {
	if !believerType.Valid() {
		return nil, ErrInvalidBelieverType
	}

	seq, err := s.repo.Sequence.Peek(ctx, model.ScopeNewComers, req.Department, string(believerType), req.Year)
	if err != nil {
		s.logger.Error("번호 미리보기 실패", zap.Error(err))
		return nil, err
	}

	return &dto.GenerateNumberResponse{Number: model.FormatNumber(req.Year, seq)}, nil
}

// ────────────────────── CheckDuplicate ──────────────────────

func (s *newComerService) CheckDuplicate(ctx context.Context, req *dto.DuplicateCheckRequest) (*dto.DuplicateCheckResponse, error) {
	rows, err := s.repo.NewComer.FindByNameAndBirthDate(ctx, req.Name, req.BirthDate)
	if err != nil {
		s.logger.Error("중복 확인 실패", zap.Error(err))
		return nil, err
	}

	resp := &dto.DuplicateCheckResponse{Duplicate: len(rows) > 0}
	for i := range rows {
		resp.Matches = append(resp.Matches, *toNewComerResponse(&rows[i]))
	}
	return resp, nil
}

// ── 내부 헬퍼 ──

// reorderScope (연도, 부서, 신자구분) 범위의 번호를 생성 순서(id ASC)대로 001..N으로
// 재부여하고 채번 카운터를 N으로 되돌린다. 반드시 트랜잭션 안에서 호출한다.
// 반환값은 번호가 실제로 바뀐 행 수.
func reorderScope(ctx context.Context, r *repository.Repository, year int, department string, believerType model.BelieverType) (int, error) {
	rows, err := r.NewComer.ListByScope(ctx, year, department, believerType)
	if err != nil {
		return 0, err
	}

	updated := 0
	for i := range rows {
		number := model.FormatNumber(year, i+1)
		if rows[i].Number == number {
			continue
		}
		if err := r.NewComer.UpdateNumber(ctx, rows[i].ID, number); err != nil {
			return updated, err
		}
		updated++
	}

	if err := r.Sequence.Reset(ctx, model.ScopeNewComers, department, string(believerType), year, len(rows)); err != nil {
		return updated, err
	}

	return updated, nil
}

// computeEndDate 양육 시작일 문자열로 종료일을 계산. 시작일이 없거나 형식이 잘못되면 빈 값.
func computeEndDate(startDate string, believerType model.BelieverType) string {
	if startDate == "" {
		return ""
	}
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return ""
	}
	return model.EducationEndDate(start, believerType).Format("2006-01-02")
}

// applyNewComerUpdate 부분 수정 필드 반영 (believer_type 전환은 호출부에서 처리)
func applyNewComerUpdate(nc *model.NewComer, req *dto.UpdateNewComerRequest) {
	if req.Department != nil {
		nc.Department = *req.Department
	}
	if req.Name != nil {
		nc.Name = *req.Name
	}
	if req.Gender != nil {
		nc.Gender = *req.Gender
	}
	if req.MaritalStatus != nil {
		nc.MaritalStatus = *req.MaritalStatus
	}
	if req.BirthDate != nil {
		nc.BirthDate = *req.BirthDate
	}
	if req.Address != nil {
		nc.Address = *req.Address
	}
	if req.Phone != nil {
		nc.Phone = *req.Phone
	}
	if req.Teacher != nil {
		nc.Teacher = *req.Teacher
	}
	if req.RegisterDate != nil {
		nc.RegisterDate = *req.RegisterDate
	}
	if req.AffiliationOrg != nil {
		nc.AffiliationOrg = *req.AffiliationOrg
	}
	if req.Belong != nil {
		nc.Belong = *req.Belong
	}
	if req.IdentityVerified != nil {
		nc.IdentityVerified = *req.IdentityVerified
	}
	if req.PreviousChurch != nil {
		nc.PreviousChurch = *req.PreviousChurch
	}
	if req.Comment != nil {
		nc.Comment = *req.Comment
	}
	if req.EducationType != nil {
		nc.EducationType = model.EducationType(*req.EducationType)
	}
	if req.EducationStartDate != nil {
		nc.EducationStartDate = *req.EducationStartDate
		nc.EducationEndDate = computeEndDate(nc.EducationStartDate, nc.BelieverType)
	}
	if req.FileID != nil {
		nc.FileID = req.FileID
	}
}

// toNewComerResponse 모델 → 응답 DTO 변환
func toNewComerResponse(nc *model.NewComer) *dto.NewComerResponse {
	return &dto.NewComerResponse{
		ID:                     nc.ID,
		Department:             nc.Department,
		BelieverType:           string(nc.BelieverType),
		Year:                   nc.Year,
		Number:                 nc.Number,
		Name:                   nc.Name,
		Gender:                 nc.Gender,
		MaritalStatus:          nc.MaritalStatus,
		BirthDate:              nc.BirthDate,
		Address:                nc.Address,
		Phone:                  nc.Phone,
		Teacher:                nc.Teacher,
		RegisterDate:           nc.RegisterDate,
		AffiliationOrg:         nc.AffiliationOrg,
		Belong:                 nc.Belong,
		IdentityVerified:       nc.IdentityVerified,
		PreviousChurch:         nc.PreviousChurch,
		Comment:                nc.Comment,
		EducationType:          string(nc.EducationType),
		EducationStartDate:     nc.EducationStartDate,
		EducationEndDate:       nc.EducationEndDate,
		GraduateTransferStatus: string(nc.GraduateTransferStatus),
		FileID:                 nc.FileID,
		CreatedAt:              nc.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:              nc.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
