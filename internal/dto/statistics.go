package dto

// ── 통계 모듈 DTO ──

// StatisticsCalculateRequest 통계 재계산 요청
type StatisticsCalculateRequest struct {
	Year int `json:"year" binding:"required,min=2000,max=2100"`
}

// YearlyStatisticsResponse 연도별 통계 응답
type YearlyStatisticsResponse struct {
	Year            int    `json:"year"`
	Department      string `json:"department"`
	BelieverType    string `json:"believer_type"`
	RegisteredCount int    `json:"registered_count"`
	CompletedCount  int    `json:"completed_count"`
	GraduatedCount  int    `json:"graduated_count"`
	CalculatedAt    string `json:"calculated_at"`
}

// MonthlyAgeStatisticsResponse 월별 연령대 통계 응답
type MonthlyAgeStatisticsResponse struct {
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	AgeGroup     string `json:"age_group"`
	BelieverType string `json:"believer_type"`
	Count        int    `json:"count"`
	CalculatedAt string `json:"calculated_at"`
}

// MonthlyCount 월별 등록 건수
type MonthlyCount struct {
	Month int `json:"month"`
	Count int `json:"count"`
}

// DepartmentCount 부서별 등록 건수
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

// EducationStatusCount 양육 상태별 건수
type EducationStatusCount struct {
	EducationType string `json:"education_type"`
	Count         int    `json:"count"`
}

// DashboardResponse 대시보드 집계 응답
type DashboardResponse struct {
	Year             int                    `json:"year"`
	TotalRegistered  int                    `json:"total_registered"`
	TotalNewBeliever int                    `json:"total_new_believer"`
	TotalTransfer    int                    `json:"total_transfer"`
	TotalGraduated   int                    `json:"total_graduated"`
	ByMonth          []MonthlyCount         `json:"by_month"`
	ByDepartment     []DepartmentCount      `json:"by_department"`
	ByEducation      []EducationStatusCount `json:"by_education"`
}
