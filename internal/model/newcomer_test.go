package model

import (
	"testing"
	"time"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		year int
		seq  int
		want string
	}{
		{2025, 1, "25-001"},
		{2025, 7, "25-007"},
		{2025, 999, "25-999"},
		{2025, 1000, "25-1000"}, // 999 초과 시 자릿수 증가는 오류가 아님
		{2003, 12, "03-012"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.year, tc.seq); got != tc.want {
			t.Errorf("FormatNumber(%d,%d)=%s, 기대값 %s", tc.year, tc.seq, got, tc.want)
		}
	}
}

func TestBelieverType_EducationWeeks(t *testing.T) {
	if got := BelieverTypeNew.EducationWeeks(); got != 8 {
		t.Errorf("초신자 과정 기대값 8주, 실제 %d", got)
	}
	if got := BelieverTypeTransfer.EducationWeeks(); got != 4 {
		t.Errorf("전입신자 과정 기대값 4주, 실제 %d", got)
	}
}

func TestEducationEndDate_SundayAligned(t *testing.T) {
	// 2025-03-02는 일요일. 초신자 8주 과정 → 7주 후인 2025-04-20 (일요일)
	start := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	end := EducationEndDate(start, BelieverTypeNew)
	if end.Weekday() != time.Sunday {
		t.Errorf("종료일은 일요일이어야 함, 실제 %s", end.Weekday())
	}
	if got := end.Format("2006-01-02"); got != "2025-04-20" {
		t.Errorf("종료일 기대값 2025-04-20, 실제 %s", got)
	}

	// 일요일이 아닌 시작일은 다음 일요일로 보정된다
	start = time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC) // 수요일
	end = EducationEndDate(start, BelieverTypeTransfer)
	if end.Weekday() != time.Sunday {
		t.Errorf("종료일은 일요일이어야 함, 실제 %s", end.Weekday())
	}
}

func TestBelieverType_Valid(t *testing.T) {
	if !BelieverTypeNew.Valid() || !BelieverTypeTransfer.Valid() {
		t.Error("정의된 신자 구분은 Valid여야 함")
	}
	if BelieverType("unknown").Valid() {
		t.Error("알 수 없는 신자 구분은 Valid가 아니어야 함")
	}
}
