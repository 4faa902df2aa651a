package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"new-family/internal/dto"
	"new-family/internal/model"
)

func registerWithDetail(t *testing.T, svc NewComerService, believerType model.BelieverType, dept, name, birthDate, registerDate string, year int) *dto.NewComerResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), believerType, &dto.CreateNewComerRequest{
		Department:   dept,
		Year:         year,
		Name:         name,
		BirthDate:    birthDate,
		RegisterDate: registerDate,
	}, "tester")
	if err != nil {
		t.Fatalf("등록 실패: %v", err)
	}
	return resp
}

func TestStatisticsCalculateYearly(t *testing.T) {
	repo := newTestRepository()
	ncSvc := NewNewComerService(repo, zap.NewNop())
	gSvc := NewGraduateService(repo, zap.NewNop())
	stSvc := NewStatisticsService(repo, zap.NewNop())
	ctx := context.Background()

	a := registerNewComer(t, ncSvc, model.BelieverTypeNew, "청년부", "김철수", 2025)
	registerNewComer(t, ncSvc, model.BelieverTypeNew, "청년부", "이영희", 2025)
	registerNewComer(t, ncSvc, model.BelieverTypeTransfer, "장년부", "박민수", 2025)

	if _, err := gSvc.Promote(ctx, a.ID, &dto.PromoteRequest{GraduationDate: "2025-04-20"}, "tester"); err != nil {
		t.Fatalf("수료 처리 실패: %v", err)
	}

	rows, err := stSvc.CalculateYearly(ctx, 2025)
	if err != nil {
		t.Fatalf("연도별 통계 계산 실패: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("통계 행 수 = %d, 기대 2", len(rows))
	}

	// 부서명 오름차순 정렬: 장년부 < 청년부
	if rows[0].Department != "장년부" || rows[0].RegisteredCount != 1 || rows[0].GraduatedCount != 0 {
		t.Errorf("장년부 행 불일치: %+v", rows[0])
	}
	if rows[1].Department != "청년부" || rows[1].RegisteredCount != 2 {
		t.Errorf("청년부 등록 수 불일치: %+v", rows[1])
	}
	if rows[1].CompletedCount != 1 || rows[1].GraduatedCount != 1 {
		t.Errorf("청년부 수료 수 불일치: %+v", rows[1])
	}

	// 스냅샷 조회는 저장된 행을 그대로 돌려준다
	listed, err := stSvc.ListYearly(ctx, 2025)
	if err != nil {
		t.Fatalf("통계 조회 실패: %v", err)
	}
	if len(listed) != 2 {
		t.Errorf("저장된 행 수 = %d, 기대 2", len(listed))
	}
}

func TestStatisticsAgeGroup(t *testing.T) {
	cases := []struct {
		birthDate string
		want      string
	}{
		{"2010-05-01", "10대 이하"},
		{"1998-05-01", "20대"},
		{"1990-05-01", "30대"},
		{"1980-05-01", "40대"},
		{"1970-05-01", "50대"},
		{"1950-05-01", "60대 이상"},
		{"", "미상"},
		{"생일모름", "미상"},
		{"2030-01-01", "미상"},
	}
	for _, tc := range cases {
		if got := ageGroup(tc.birthDate, 2025); got != tc.want {
			t.Errorf("ageGroup(%q, 2025) = %s, 기대 %s", tc.birthDate, got, tc.want)
		}
	}
}

func TestStatisticsCalculateMonthlyAge(t *testing.T) {
	repo := newTestRepository()
	ncSvc := NewNewComerService(repo, zap.NewNop())
	stSvc := NewStatisticsService(repo, zap.NewNop())
	ctx := context.Background()

	registerWithDetail(t, ncSvc, model.BelieverTypeNew, "청년부", "김철수", "1998-05-01", "2025-03-02", 2025)
	registerWithDetail(t, ncSvc, model.BelieverTypeNew, "청년부", "이영희", "1997-01-10", "2025-03-09", 2025)
	registerWithDetail(t, ncSvc, model.BelieverTypeNew, "청년부", "박민수", "1990-07-20", "2025-04-06", 2025)
	// 등록일이 없으면 월별 집계에서 제외된다
	registerWithDetail(t, ncSvc, model.BelieverTypeNew, "청년부", "최지은", "1995-01-01", "", 2025)

	rows, err := stSvc.CalculateMonthlyAge(ctx, 2025)
	if err != nil {
		t.Fatalf("월별 연령대 통계 계산 실패: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("통계 행 수 = %d, 기대 2", len(rows))
	}
	if rows[0].Month != 3 || rows[0].AgeGroup != "20대" || rows[0].Count != 2 {
		t.Errorf("3월 20대 행 불일치: %+v", rows[0])
	}
	if rows[1].Month != 4 || rows[1].AgeGroup != "30대" || rows[1].Count != 1 {
		t.Errorf("4월 30대 행 불일치: %+v", rows[1])
	}
}

func TestStatisticsDashboard(t *testing.T) {
	repo := newTestRepository()
	ncSvc := NewNewComerService(repo, zap.NewNop())
	gSvc := NewGraduateService(repo, zap.NewNop())
	stSvc := NewStatisticsService(repo, zap.NewNop())
	ctx := context.Background()

	a := registerWithDetail(t, ncSvc, model.BelieverTypeNew, "청년부", "김철수", "1998-05-01", "2025-03-02", 2025)
	registerWithDetail(t, ncSvc, model.BelieverTypeNew, "청년부", "이영희", "1997-01-10", "2025-03-09", 2025)
	registerWithDetail(t, ncSvc, model.BelieverTypeTransfer, "장년부", "박민수", "1980-07-20", "2025-04-06", 2025)

	if _, err := gSvc.Promote(ctx, a.ID, &dto.PromoteRequest{GraduationDate: "2025-04-20"}, "tester"); err != nil {
		t.Fatalf("수료 처리 실패: %v", err)
	}

	dash, err := stSvc.Dashboard(ctx, 2025)
	if err != nil {
		t.Fatalf("대시보드 집계 실패: %v", err)
	}
	if dash.TotalRegistered != 3 || dash.TotalNewBeliever != 2 || dash.TotalTransfer != 1 || dash.TotalGraduated != 1 {
		t.Errorf("합계 불일치: %+v", dash)
	}
	if len(dash.ByMonth) != 12 {
		t.Fatalf("월별 집계는 12행이어야 함: %d", len(dash.ByMonth))
	}
	if dash.ByMonth[2].Count != 2 || dash.ByMonth[3].Count != 1 {
		t.Errorf("3월/4월 집계 불일치: %+v", dash.ByMonth)
	}
	if len(dash.ByDepartment) != 2 || dash.ByDepartment[0].Department != "장년부" {
		t.Errorf("부서 집계 불일치: %+v", dash.ByDepartment)
	}
	// 수료 처리된 1명은 completed, 나머지는 in_progress
	if dash.ByEducation[0].EducationType != "in_progress" || dash.ByEducation[0].Count != 2 {
		t.Errorf("양육 상태 집계 불일치: %+v", dash.ByEducation)
	}
	if dash.ByEducation[1].EducationType != "completed" || dash.ByEducation[1].Count != 1 {
		t.Errorf("수료 집계 불일치: %+v", dash.ByEducation)
	}
}
