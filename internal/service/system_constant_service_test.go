package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"new-family/internal/dto"
	"new-family/internal/model"
)

func TestSystemConstantListAndGet(t *testing.T) {
	repo := newTestRepository()
	svc := NewSystemConstantService(repo, nil, zap.NewNop())
	ctx := context.Background()

	constants := repo.SystemConstant.(*mockSystemConstantRepo)
	constants.set(model.ConstCertificateChurch, "은혜교회")
	constants.set(model.ConstCertificatePastor, "김목사")

	rows, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("목록 조회 실패: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("상수 수 = %d, 기대 2", len(rows))
	}

	got, err := svc.Get(ctx, model.ConstCertificateChurch)
	if err != nil {
		t.Fatalf("조회 실패: %v", err)
	}
	if got.Value != "은혜교회" {
		t.Errorf("값 = %s, 기대 은혜교회", got.Value)
	}
}

func TestSystemConstantUpdate(t *testing.T) {
	repo := newTestRepository()
	svc := NewSystemConstantService(repo, nil, zap.NewNop())
	ctx := context.Background()

	constants := repo.SystemConstant.(*mockSystemConstantRepo)
	constants.set(model.ConstCertificateChurch, "은혜교회")

	updated, err := svc.Update(ctx, model.ConstCertificateChurch, &dto.UpdateConstantRequest{Value: "사랑교회"}, "tester")
	if err != nil {
		t.Fatalf("수정 실패: %v", err)
	}
	if updated.Value != "사랑교회" {
		t.Errorf("값 = %s, 기대 사랑교회", updated.Value)
	}

	// 키 집합은 고정 — 없는 키는 수정 불가
	if _, err := svc.Update(ctx, "UNKNOWN_KEY", &dto.UpdateConstantRequest{Value: "x"}, "tester"); err != ErrConstantNotFound {
		t.Errorf("오류 = %v, 기대 ErrConstantNotFound", err)
	}
}

func TestSystemConstantGetNotFound(t *testing.T) {
	repo := newTestRepository()
	svc := NewSystemConstantService(repo, nil, zap.NewNop())

	if _, err := svc.Get(context.Background(), "UNKNOWN_KEY"); err != ErrConstantNotFound {
		t.Errorf("오류 = %v, 기대 ErrConstantNotFound", err)
	}
}
