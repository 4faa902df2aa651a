package service

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"new-family/internal/dto"
	"new-family/internal/model"
)

func TestEducationUpsertCreatesThenUpdates(t *testing.T) {
	repo := newTestRepository()
	ncSvc := NewNewComerService(repo, zap.NewNop())
	eduSvc := NewEducationService(repo, zap.NewNop())
	ctx := context.Background()

	nc := registerNewComer(t, ncSvc, model.BelieverTypeNew, "청년부", "김철수", 2025)

	first, err := eduSvc.Upsert(ctx, nc.ID, &dto.UpsertEducationRequest{
		Week1Date:    "2025-03-02",
		Week1Comment: "첫 모임 참석",
	}, "tester")
	if err != nil {
		t.Fatalf("upsert 실패: %v", err)
	}
	if first.Weeks[0].Date != "2025-03-02" || first.Weeks[0].Comment != "첫 모임 참석" {
		t.Errorf("1주차 기록 불일치: %+v", first.Weeks[0])
	}

	// 같은 새가족으로 두 번째 upsert — 새 행이 아니라 기존 행 갱신
	second, err := eduSvc.Upsert(ctx, nc.ID, &dto.UpsertEducationRequest{
		Week1Date:      "2025-03-02",
		Week2Date:      "2025-03-09",
		OverallComment: "성실히 참석 중",
	}, "tester")
	if err != nil {
		t.Fatalf("upsert 실패: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("upsert가 새 행을 만들었음: %d != %d", second.ID, first.ID)
	}
	if second.Weeks[1].Date != "2025-03-09" {
		t.Errorf("2주차 일자 = %s, 기대 2025-03-09", second.Weeks[1].Date)
	}
	if second.OverallComment != "성실히 참석 중" {
		t.Errorf("종합 의견 = %s", second.OverallComment)
	}
	// 두 번째 요청에서 빠진 코멘트는 NULL로 덮인다
	if second.Weeks[0].Comment != "" {
		t.Errorf("1주차 코멘트가 남아 있음: %s", second.Weeks[0].Comment)
	}
}

func TestEducationUpsertNewComerNotFound(t *testing.T) {
	repo := newTestRepository()
	eduSvc := NewEducationService(repo, zap.NewNop())

	if _, err := eduSvc.Upsert(context.Background(), 999, &dto.UpsertEducationRequest{}, "tester"); err != ErrNewComerNotFound {
		t.Errorf("오류 = %v, 기대 ErrNewComerNotFound", err)
	}
}

func TestEducationGetNotFound(t *testing.T) {
	repo := newTestRepository()
	ncSvc := NewNewComerService(repo, zap.NewNop())
	eduSvc := NewEducationService(repo, zap.NewNop())

	nc := registerNewComer(t, ncSvc, model.BelieverTypeNew, "청년부", "김철수", 2025)

	if _, err := eduSvc.GetByNewComerID(context.Background(), nc.ID); err != ErrEducationNotFound {
		t.Errorf("오류 = %v, 기대 ErrEducationNotFound", err)
	}
}

func TestEducationEmptyDatesNormalizedToNull(t *testing.T) {
	repo := newTestRepository()
	ncSvc := NewNewComerService(repo, zap.NewNop())
	eduSvc := NewEducationService(repo, zap.NewNop())
	ctx := context.Background()

	nc := registerNewComer(t, ncSvc, model.BelieverTypeNew, "청년부", "김철수", 2025)

	if _, err := eduSvc.Upsert(ctx, nc.ID, &dto.UpsertEducationRequest{Week1Date: "2025-03-02"}, "tester"); err != nil {
		t.Fatalf("upsert 실패: %v", err)
	}

	edu, err := repo.Education.GetByNewComerID(ctx, nc.ID)
	if err != nil {
		t.Fatalf("조회 실패: %v", err)
	}
	if edu.Week1Date == nil || *edu.Week1Date != "2025-03-02" {
		t.Errorf("1주차 일자가 저장되지 않음")
	}
	if edu.Week2Date != nil {
		t.Errorf("빈 주차 일자가 NULL이 아님: %v", *edu.Week2Date)
	}
}

func TestEducationCalendarRespectsWeekCount(t *testing.T) {
	repo := newTestRepository()
	ncSvc := NewNewComerService(repo, zap.NewNop())
	eduSvc := NewEducationService(repo, zap.NewNop())
	ctx := context.Background()

	// 전입신자는 4주 과정 — 5주차 이후 일정은 캘린더에 포함되지 않는다
	nc := registerNewComer(t, ncSvc, model.BelieverTypeTransfer, "청년부", "박민수", 2025)
	if _, err := eduSvc.Upsert(ctx, nc.ID, &dto.UpsertEducationRequest{
		Week1Date: "2025-03-02",
		Week2Date: "2025-03-09",
		Week5Date: "2025-03-30",
	}, "tester"); err != nil {
		t.Fatalf("upsert 실패: %v", err)
	}

	serialized, filename, err := eduSvc.Calendar(ctx, nc.ID)
	if err != nil {
		t.Fatalf("캘린더 생성 실패: %v", err)
	}
	if filename != "education_25-001.ics" {
		t.Errorf("파일명 = %s, 기대 education_25-001.ics", filename)
	}
	if got := strings.Count(serialized, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("이벤트 수 = %d, 기대 2", got)
	}
	if !strings.Contains(serialized, "박민수 1주차 양육") {
		t.Errorf("이벤트 요약 누락:\n%s", serialized)
	}
	if strings.Contains(serialized, "5주차") {
		t.Errorf("과정 주차를 넘는 이벤트가 포함됨")
	}
}

func TestEducationCalendarWithoutRecord(t *testing.T) {
	repo := newTestRepository()
	ncSvc := NewNewComerService(repo, zap.NewNop())
	eduSvc := NewEducationService(repo, zap.NewNop())

	nc := registerNewComer(t, ncSvc, model.BelieverTypeNew, "청년부", "김철수", 2025)

	if _, _, err := eduSvc.Calendar(context.Background(), nc.ID); err != ErrEducationNotFound {
		t.Errorf("오류 = %v, 기대 ErrEducationNotFound", err)
	}
}
