package service

import (
	"context"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"new-family/internal/dto"
	"new-family/internal/model"
	"new-family/internal/repository"
)

// StatisticsService 통계 업무 인터페이스
//
// 스냅샷은 원본 테이블에서 전량 재계산한다. 증분 갱신은 재정렬·전환·삭제
// 경로마다 보정 로직이 필요해 오히려 어긋나기 쉬우므로 채택하지 않았다.
type StatisticsService interface {
	// CalculateYearly 연도별 (부서, 신자구분) 스냅샷 재계산 + 교체
	CalculateYearly(ctx context.Context, year int) ([]dto.YearlyStatisticsResponse, error)
	ListYearly(ctx context.Context, year int) ([]dto.YearlyStatisticsResponse, error)
	// CalculateMonthlyAge 월별 연령대 스냅샷 재계산 + 교체
	CalculateMonthlyAge(ctx context.Context, year int) ([]dto.MonthlyAgeStatisticsResponse, error)
	ListMonthlyAge(ctx context.Context, year int) ([]dto.MonthlyAgeStatisticsResponse, error)
	// Dashboard 연도 대시보드 집계 (스냅샷이 아닌 원본 즉시 집계)
	Dashboard(ctx context.Context, year int) (*dto.DashboardResponse, error)
}

type statisticsService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStatisticsService StatisticsService 인스턴스 생성
func NewStatisticsService(repo *repository.Repository, logger *zap.Logger) StatisticsService {
	return &statisticsService{repo: repo, logger: logger}
}

// ────────────────────── 연도별 통계 ──────────────────────

func (s *statisticsService) CalculateYearly(ctx context.Context, year int) ([]dto.YearlyStatisticsResponse, error) {
	newComers, err := s.repo.NewComer.ListByYear(ctx, year)
	if err != nil {
		s.logger.Error("통계 원본 조회 실패", zap.Int("year", year), zap.Error(err))
		return nil, err
	}
	graduates, err := s.repo.Graduate.ListByYear(ctx, year)
	if err != nil {
		s.logger.Error("수료자 원본 조회 실패", zap.Int("year", year), zap.Error(err))
		return nil, err
	}

	type key struct {
		department   string
		believerType model.BelieverType
	}
	acc := make(map[key]*model.YearlyStatistics)
	get := func(k key) *model.YearlyStatistics {
		if st, ok := acc[k]; ok {
			return st
		}
		st := &model.YearlyStatistics{
			Year:         year,
			Department:   k.department,
			BelieverType: k.believerType,
			CalculatedAt: time.Now(),
		}
		acc[k] = st
		return st
	}

	for i := range newComers {
		nc := &newComers[i]
		st := get(key{nc.Department, nc.BelieverType})
		st.RegisteredCount++
		if nc.EducationType == model.EducationCompleted {
			st.CompletedCount++
		}
	}
	for i := range graduates {
		g := &graduates[i]
		get(key{g.Department, g.BelieverType}).GraduatedCount++
	}

	rows := make([]model.YearlyStatistics, 0, len(acc))
	for _, st := range acc {
		rows = append(rows, *st)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Department != rows[j].Department {
			return rows[i].Department < rows[j].Department
		}
		return rows[i].BelieverType < rows[j].BelieverType
	})

	if err := s.repo.Statistics.ReplaceYearly(ctx, year, rows); err != nil {
		s.logger.Error("연도별 통계 저장 실패", zap.Int("year", year), zap.Error(err))
		return nil, err
	}

	s.logger.Info("연도별 통계 재계산 완료", zap.Int("year", year), zap.Int("rows", len(rows)))
	return toYearlyResponses(rows), nil
}

func (s *statisticsService) ListYearly(ctx context.Context, year int) ([]dto.YearlyStatisticsResponse, error) {
	rows, err := s.repo.Statistics.ListYearly(ctx, year)
	if err != nil {
		s.logger.Error("연도별 통계 조회 실패", zap.Int("year", year), zap.Error(err))
		return nil, err
	}
	return toYearlyResponses(rows), nil
}

// ────────────────────── 월별 연령대 통계 ──────────────────────

// ageGroup 생년월일 문자열("YYYY-MM-DD")로 기준 연도의 연령대를 구한다.
// 파싱 불가능하면 "미상"으로 집계한다.
func ageGroup(birthDate string, year int) string {
	if len(birthDate) < 4 {
		return "미상"
	}
	birthYear, err := strconv.Atoi(birthDate[:4])
	if err != nil || birthYear < 1900 || birthYear > year {
		return "미상"
	}
	age := year - birthYear
	switch {
	case age < 20:
		return "10대 이하"
	case age < 30:
		return "20대"
	case age < 40:
		return "30대"
	case age < 50:
		return "40대"
	case age < 60:
		return "50대"
	default:
		return "60대 이상"
	}
}

// registerMonth 등록일 문자열("YYYY-MM-DD")의 월. 파싱 불가 시 0.
func registerMonth(registerDate string) int {
	if len(registerDate) < 7 {
		return 0
	}
	month, err := strconv.Atoi(registerDate[5:7])
	if err != nil || month < 1 || month > 12 {
		return 0
	}
	return month
}

func (s *statisticsService) CalculateMonthlyAge(ctx context.Context, year int) ([]dto.MonthlyAgeStatisticsResponse, error) {
	newComers, err := s.repo.NewComer.ListByYear(ctx, year)
	if err != nil {
		s.logger.Error("통계 원본 조회 실패", zap.Int("year", year), zap.Error(err))
		return nil, err
	}

	type key struct {
		month        int
		ageGroup     string
		believerType model.BelieverType
	}
	acc := make(map[key]int)
	for i := range newComers {
		nc := &newComers[i]
		month := registerMonth(nc.RegisterDate)
		if month == 0 {
			continue
		}
		acc[key{month, ageGroup(nc.BirthDate, year), nc.BelieverType}]++
	}

	rows := make([]model.MonthlyAgeStatistics, 0, len(acc))
	now := time.Now()
	for k, count := range acc {
		rows = append(rows, model.MonthlyAgeStatistics{
			Year:         year,
			Month:        k.month,
			AgeGroup:     k.ageGroup,
			BelieverType: k.believerType,
			Count:        count,
			CalculatedAt: now,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Month != rows[j].Month {
			return rows[i].Month < rows[j].Month
		}
		if rows[i].AgeGroup != rows[j].AgeGroup {
			return rows[i].AgeGroup < rows[j].AgeGroup
		}
		return rows[i].BelieverType < rows[j].BelieverType
	})

	if err := s.repo.Statistics.ReplaceMonthlyAge(ctx, year, rows); err != nil {
		s.logger.Error("월별 연령대 통계 저장 실패", zap.Int("year", year), zap.Error(err))
		return nil, err
	}

	s.logger.Info("월별 연령대 통계 재계산 완료", zap.Int("year", year), zap.Int("rows", len(rows)))
	return toMonthlyAgeResponses(rows), nil
}

func (s *statisticsService) ListMonthlyAge(ctx context.Context, year int) ([]dto.MonthlyAgeStatisticsResponse, error) {
	rows, err := s.repo.Statistics.ListMonthlyAge(ctx, year)
	if err != nil {
		s.logger.Error("월별 연령대 통계 조회 실패", zap.Int("year", year), zap.Error(err))
		return nil, err
	}
	return toMonthlyAgeResponses(rows), nil
}

// ────────────────────── Dashboard ──────────────────────

func (s *statisticsService) Dashboard(ctx context.Context, year int) (*dto.DashboardResponse, error) {
	newComers, err := s.repo.NewComer.ListByYear(ctx, year)
	if err != nil {
		s.logger.Error("대시보드 원본 조회 실패", zap.Int("year", year), zap.Error(err))
		return nil, err
	}
	graduates, err := s.repo.Graduate.ListByYear(ctx, year)
	if err != nil {
		s.logger.Error("대시보드 수료자 조회 실패", zap.Int("year", year), zap.Error(err))
		return nil, err
	}

	resp := &dto.DashboardResponse{
		Year:            year,
		TotalRegistered: len(newComers),
		TotalGraduated:  len(graduates),
	}

	byMonth := make(map[int]int)
	byDepartment := make(map[string]int)
	byEducation := make(map[string]int)
	for i := range newComers {
		nc := &newComers[i]
		if nc.BelieverType == model.BelieverTypeTransfer {
			resp.TotalTransfer++
		} else {
			resp.TotalNewBeliever++
		}
		if month := registerMonth(nc.RegisterDate); month != 0 {
			byMonth[month]++
		}
		byDepartment[nc.Department]++
		byEducation[string(nc.EducationType)]++
	}

	for month := 1; month <= 12; month++ {
		resp.ByMonth = append(resp.ByMonth, dto.MonthlyCount{Month: month, Count: byMonth[month]})
	}

	departments := make([]string, 0, len(byDepartment))
	for d := range byDepartment {
		departments = append(departments, d)
	}
	sort.Strings(departments)
	for _, d := range departments {
		resp.ByDepartment = append(resp.ByDepartment, dto.DepartmentCount{Department: d, Count: byDepartment[d]})
	}

	for _, t := range []model.EducationType{model.EducationInProgress, model.EducationCompleted, model.EducationDiscontinued} {
		resp.ByEducation = append(resp.ByEducation, dto.EducationStatusCount{
			EducationType: string(t),
			Count:         byEducation[string(t)],
		})
	}

	return resp, nil
}

// ── 변환 헬퍼 ──

func toYearlyResponses(rows []model.YearlyStatistics) []dto.YearlyStatisticsResponse {
	result := make([]dto.YearlyStatisticsResponse, 0, len(rows))
	for i := range rows {
		st := &rows[i]
		result = append(result, dto.YearlyStatisticsResponse{
			Year:            st.Year,
			Department:      st.Department,
			BelieverType:    string(st.BelieverType),
			RegisteredCount: st.RegisteredCount,
			CompletedCount:  st.CompletedCount,
			GraduatedCount:  st.GraduatedCount,
			CalculatedAt:    st.CalculatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}
	return result
}

func toMonthlyAgeResponses(rows []model.MonthlyAgeStatistics) []dto.MonthlyAgeStatisticsResponse {
	result := make([]dto.MonthlyAgeStatisticsResponse, 0, len(rows))
	for i := range rows {
		st := &rows[i]
		result = append(result, dto.MonthlyAgeStatisticsResponse{
			Year:         st.Year,
			Month:        st.Month,
			AgeGroup:     st.AgeGroup,
			BelieverType: string(st.BelieverType),
			Count:        st.Count,
			CalculatedAt: st.CalculatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}
	return result
}
