package dto

// ── 양육 모듈 DTO ──

// UpsertEducationRequest 양육 기록 upsert 요청
// 빈 문자열 주차 필드는 저장 전에 NULL로 정규화된다.
// 신자 구분별 주차 수(8/4)와의 정합성 검증은 하지 않는다 — 호출 측(UI) 책임.
type UpsertEducationRequest struct {
	Week1Date      string `json:"week1_date"`
	Week2Date      string `json:"week2_date"`
	Week3Date      string `json:"week3_date"`
	Week4Date      string `json:"week4_date"`
	Week5Date      string `json:"week5_date"`
	Week6Date      string `json:"week6_date"`
	Week7Date      string `json:"week7_date"`
	Week8Date      string `json:"week8_date"`
	Week1Comment   string `json:"week1_comment"`
	Week2Comment   string `json:"week2_comment"`
	Week3Comment   string `json:"week3_comment"`
	Week4Comment   string `json:"week4_comment"`
	Week5Comment   string `json:"week5_comment"`
	Week6Comment   string `json:"week6_comment"`
	Week7Comment   string `json:"week7_comment"`
	Week8Comment   string `json:"week8_comment"`
	OverallComment string `json:"overall_comment"`
}

// WeekRecord 주차별 기록
type WeekRecord struct {
	Week    int    `json:"week"`
	Date    string `json:"date,omitempty"`
	Comment string `json:"comment,omitempty"`
}

// EducationResponse 양육 기록 응답
type EducationResponse struct {
	ID             int64        `json:"id"`
	NewComerID     int64        `json:"new_comer_id"`
	Weeks          []WeekRecord `json:"weeks"`
	OverallComment string       `json:"overall_comment,omitempty"`
	UpdatedAt      string       `json:"updated_at"`
}
