package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"new-family/internal/dto"
	"new-family/internal/model"
	"new-family/internal/repository"
)

// ErrEducationNotFound 양육 기록 없음
var ErrEducationNotFound = errors.New("양육 기록을 찾을 수 없습니다")

// EducationService 양육 기록 업무 인터페이스
//
// 기록은 새가족당 1행이며 new_comer_id 기준 upsert로 관리한다.
// 같은 요청을 두 번 보내도 행이 늘지 않는다.
type EducationService interface {
	Upsert(ctx context.Context, newComerID int64, req *dto.UpsertEducationRequest, callerID string) (*dto.EducationResponse, error)
	GetByNewComerID(ctx context.Context, newComerID int64) (*dto.EducationResponse, error)
	// Calendar 주차별 양육 일정을 iCalendar(.ics)로 내보낸다
	Calendar(ctx context.Context, newComerID int64) (string, string, error)
}

type educationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEducationService EducationService 인스턴스 생성
func NewEducationService(repo *repository.Repository, logger *zap.Logger) EducationService {
	return &educationService{repo: repo, logger: logger}
}

// ────────────────────── Upsert ──────────────────────

func (s *educationService) Upsert(ctx context.Context, newComerID int64, req *dto.UpsertEducationRequest, callerID string) (*dto.EducationResponse, error) {
	// 대상 새가족 존재 확인
	if _, err := s.repo.NewComer.GetByID(ctx, newComerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewComerNotFound
		}
		return nil, err
	}

	edu, err := s.repo.Education.GetByNewComerID(ctx, newComerID)
	switch {
	case err == nil:
		applyEducationFields(edu, req)
		edu.UpdatedBy = &callerID
		if err := s.repo.Education.Update(ctx, edu); err != nil {
			s.logger.Error("양육 기록 갱신 실패", zap.Int64("new_comer_id", newComerID), zap.Error(err))
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		edu = &model.NewComerEducation{NewComerID: newComerID}
		applyEducationFields(edu, req)
		edu.CreatedBy = &callerID
		edu.UpdatedBy = &callerID
		if err := s.repo.Education.Create(ctx, edu); err != nil {
			s.logger.Error("양육 기록 생성 실패", zap.Int64("new_comer_id", newComerID), zap.Error(err))
			return nil, err
		}
	default:
		return nil, err
	}

	return toEducationResponse(edu), nil
}

// ────────────────────── GetByNewComerID ──────────────────────

func (s *educationService) GetByNewComerID(ctx context.Context, newComerID int64) (*dto.EducationResponse, error) {
	edu, err := s.repo.Education.GetByNewComerID(ctx, newComerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEducationNotFound
		}
		s.logger.Error("양육 기록 조회 실패", zap.Int64("new_comer_id", newComerID), zap.Error(err))
		return nil, err
	}
	return toEducationResponse(edu), nil
}

// ────────────────────── Calendar ──────────────────────

func (s *educationService) Calendar(ctx context.Context, newComerID int64) (string, string, error) {
	nc, err := s.repo.NewComer.GetByID(ctx, newComerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrNewComerNotFound
		}
		return "", "", err
	}

	edu, err := s.repo.Education.GetByNewComerID(ctx, newComerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrEducationNotFound
		}
		return "", "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//new-family//education//KO")

	weeks := nc.BelieverType.EducationWeeks()
	for i, datePtr := range edu.WeekDates() {
		if i >= weeks || datePtr == nil || *datePtr == "" {
			continue
		}
		day, err := time.Parse("2006-01-02", *datePtr)
		if err != nil {
			continue
		}
		event := cal.AddEvent(fmt.Sprintf("education-%d-week-%d@new-family", newComerID, i+1))
		event.SetAllDayStartAt(day)
		event.SetAllDayEndAt(day.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("%s %d주차 양육", nc.Name, i+1))
		event.SetDtStampTime(time.Now())
	}

	filename := fmt.Sprintf("education_%s.ics", nc.Number)
	return cal.Serialize(), filename, nil
}

// ── 내부 헬퍼 ──

// nullableStr 빈 문자열을 NULL로 정규화
func nullableStr(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func applyEducationFields(edu *model.NewComerEducation, req *dto.UpsertEducationRequest) {
	edu.Week1Date = nullableStr(req.Week1Date)
	edu.Week2Date = nullableStr(req.Week2Date)
	edu.Week3Date = nullableStr(req.Week3Date)
	edu.Week4Date = nullableStr(req.Week4Date)
	edu.Week5Date = nullableStr(req.Week5Date)
	edu.Week6Date = nullableStr(req.Week6Date)
	edu.Week7Date = nullableStr(req.Week7Date)
	edu.Week8Date = nullableStr(req.Week8Date)
	edu.Week1Comment = nullableStr(req.Week1Comment)
	edu.Week2Comment = nullableStr(req.Week2Comment)
	edu.Week3Comment = nullableStr(req.Week3Comment)
	edu.Week4Comment = nullableStr(req.Week4Comment)
	edu.Week5Comment = nullableStr(req.Week5Comment)
	edu.Week6Comment = nullableStr(req.Week6Comment)
	edu.Week7Comment = nullableStr(req.Week7Comment)
	edu.Week8Comment = nullableStr(req.Week8Comment)
	edu.OverallComment = nullableStr(req.OverallComment)
}

func derefStr(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func toEducationResponse(edu *model.NewComerEducation) *dto.EducationResponse {
	comments := []*string{
		edu.Week1Comment, edu.Week2Comment, edu.Week3Comment, edu.Week4Comment,
		edu.Week5Comment, edu.Week6Comment, edu.Week7Comment, edu.Week8Comment,
	}
	weeks := make([]dto.WeekRecord, 0, 8)
	for i, datePtr := range edu.WeekDates() {
		weeks = append(weeks, dto.WeekRecord{
			Week:    i + 1,
			Date:    derefStr(datePtr),
			Comment: derefStr(comments[i]),
		})
	}
	return &dto.EducationResponse{
		ID:             edu.ID,
		NewComerID:     edu.NewComerID,
		Weeks:          weeks,
		OverallComment: derefStr(edu.OverallComment),
		UpdatedAt:      edu.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
