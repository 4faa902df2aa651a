package service

import (
	"context"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"new-family/internal/dto"
	"new-family/internal/model"
)

func TestExportNewComers(t *testing.T) {
	repo := newTestRepository()
	ncSvc := NewNewComerService(repo, zap.NewNop())
	exSvc := NewExportService(repo, zap.NewNop())
	ctx := context.Background()

	registerNewComer(t, ncSvc, model.BelieverTypeNew, "청년부", "김철수", 2025)
	registerNewComer(t, ncSvc, model.BelieverTypeNew, "청년부", "이영희", 2025)
	registerNewComer(t, ncSvc, model.BelieverTypeTransfer, "청년부", "박민수", 2025)

	buf, filename, err := exSvc.ExportNewComers(ctx, model.BelieverTypeNew, &dto.NewComerListRequest{Year: 2025})
	if err != nil {
		t.Fatalf("내보내기 실패: %v", err)
	}
	if filename != "초신자 명단_2025.xlsx" {
		t.Errorf("파일명 = %s", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("생성된 파일 열기 실패: %v", err)
	}
	defer f.Close()

	title, err := f.GetCellValue("명단", "A1")
	if err != nil {
		t.Fatalf("셀 읽기 실패: %v", err)
	}
	if title != "2025년 초신자 명단" {
		t.Errorf("제목 = %s, 기대 2025년 초신자 명단", title)
	}

	header, _ := f.GetCellValue("명단", "A2")
	if header != "번호" {
		t.Errorf("머리글 = %s, 기대 번호", header)
	}

	rows, err := f.GetRows("명단")
	if err != nil {
		t.Fatalf("행 읽기 실패: %v", err)
	}
	// 제목 + 머리글 + 초신자 2명 (전입신자는 제외)
	if len(rows) != 4 {
		t.Fatalf("행 수 = %d, 기대 4", len(rows))
	}

	// 목록은 최신순(id DESC)이므로 최근 등록자가 먼저 나온다
	name, _ := f.GetCellValue("명단", "C3")
	if name != "이영희" {
		t.Errorf("첫 데이터 행 이름 = %s, 기대 이영희", name)
	}
	status, _ := f.GetCellValue("명단", "J3")
	if status != "진행 중" {
		t.Errorf("양육 상태 표기 = %s, 기대 진행 중", status)
	}
}

func TestExportNewComersEmpty(t *testing.T) {
	repo := newTestRepository()
	exSvc := NewExportService(repo, zap.NewNop())

	if _, _, err := exSvc.ExportNewComers(context.Background(), model.BelieverTypeNew, &dto.NewComerListRequest{Year: 2025}); err != ErrExportNoRows {
		t.Errorf("오류 = %v, 기대 ErrExportNoRows", err)
	}
}

func TestExportNewComersInvalidType(t *testing.T) {
	repo := newTestRepository()
	exSvc := NewExportService(repo, zap.NewNop())

	if _, _, err := exSvc.ExportNewComers(context.Background(), model.BelieverType("unknown"), &dto.NewComerListRequest{Year: 2025}); err != ErrInvalidBelieverType {
		t.Errorf("오류 = %v, 기대 ErrInvalidBelieverType", err)
	}
}

func TestExportGraduates(t *testing.T) {
	repo := newTestRepository()
	ncSvc := NewNewComerService(repo, zap.NewNop())
	gSvc := NewGraduateService(repo, zap.NewNop())
	exSvc := NewExportService(repo, zap.NewNop())
	ctx := context.Background()

	nc := registerNewComer(t, ncSvc, model.BelieverTypeTransfer, "청년부", "박민수", 2025)
	if _, err := gSvc.Promote(ctx, nc.ID, &dto.PromoteRequest{GraduationDate: "2025-03-23"}, "tester"); err != nil {
		t.Fatalf("수료 처리 실패: %v", err)
	}

	buf, filename, err := exSvc.ExportGraduates(ctx, &dto.GraduateListRequest{Year: 2025})
	if err != nil {
		t.Fatalf("내보내기 실패: %v", err)
	}
	if filename != "수료자_명단_2025.xlsx" {
		t.Errorf("파일명 = %s", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("생성된 파일 열기 실패: %v", err)
	}
	defer f.Close()

	number, _ := f.GetCellValue("명단", "A3")
	if number != "25-001" {
		t.Errorf("수료번호 = %s, 기대 25-001", number)
	}
	typeLabel, _ := f.GetCellValue("명단", "C3")
	if typeLabel != "전입신자" {
		t.Errorf("신자 구분 표기 = %s, 기대 전입신자", typeLabel)
	}
	date, _ := f.GetCellValue("명단", "I3")
	if date != "2025-03-23" {
		t.Errorf("수료일 = %s, 기대 2025-03-23", date)
	}
}
