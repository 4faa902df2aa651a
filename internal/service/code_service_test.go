package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"new-family/internal/dto"
)

func createGroup(t *testing.T, svc CodeService, code, name string) *dto.CodeGroupResponse {
	t.Helper()
	group, err := svc.CreateGroup(context.Background(), &dto.CreateCodeGroupRequest{
		GroupCode: code,
		GroupName: name,
	}, "tester")
	if err != nil {
		t.Fatalf("그룹 생성 실패: %v", err)
	}
	return group
}

func TestCodeGroupCreateAndGetByCode(t *testing.T) {
	repo := newTestRepository()
	svc := NewCodeService(repo, zap.NewNop())
	ctx := context.Background()

	group := createGroup(t, svc, "DEPARTMENT", "부서")

	for i, v := range []struct{ value, name string }{
		{"youth", "청년부"},
		{"adult", "장년부"},
	} {
		if _, err := svc.CreateDetail(ctx, group.GroupID, &dto.CreateCodeDetailRequest{
			CodeValue: v.value,
			CodeName:  v.name,
			SortOrder: i,
		}, "tester"); err != nil {
			t.Fatalf("상세 생성 실패: %v", err)
		}
	}

	got, err := svc.GetGroupByCode(ctx, "DEPARTMENT")
	if err != nil {
		t.Fatalf("코드 조회 실패: %v", err)
	}
	if got.GroupName != "부서" || len(got.Details) != 2 {
		t.Errorf("그룹 = %s, 상세 %d건, 기대 부서/2건", got.GroupName, len(got.Details))
	}
	if got.Details[0].CodeValue != "youth" {
		t.Errorf("정렬 순서 불일치: %+v", got.Details)
	}
}

func TestCodeGroupDuplicateCode(t *testing.T) {
	repo := newTestRepository()
	svc := NewCodeService(repo, zap.NewNop())

	createGroup(t, svc, "DEPARTMENT", "부서")

	if _, err := svc.CreateGroup(context.Background(), &dto.CreateCodeGroupRequest{
		GroupCode: "DEPARTMENT",
		GroupName: "부서2",
	}, "tester"); err != ErrGroupCodeExists {
		t.Errorf("오류 = %v, 기대 ErrGroupCodeExists", err)
	}
}

func TestCodeDetailDuplicateValue(t *testing.T) {
	repo := newTestRepository()
	svc := NewCodeService(repo, zap.NewNop())
	ctx := context.Background()

	group := createGroup(t, svc, "DEPARTMENT", "부서")

	if _, err := svc.CreateDetail(ctx, group.GroupID, &dto.CreateCodeDetailRequest{
		CodeValue: "youth", CodeName: "청년부",
	}, "tester"); err != nil {
		t.Fatalf("상세 생성 실패: %v", err)
	}
	if _, err := svc.CreateDetail(ctx, group.GroupID, &dto.CreateCodeDetailRequest{
		CodeValue: "youth", CodeName: "청년부 중복",
	}, "tester"); err != ErrCodeValueExists {
		t.Errorf("오류 = %v, 기대 ErrCodeValueExists", err)
	}

	// 다른 그룹에서는 같은 code_value 허용
	other := createGroup(t, svc, "BELONG", "소속")
	if _, err := svc.CreateDetail(ctx, other.GroupID, &dto.CreateCodeDetailRequest{
		CodeValue: "youth", CodeName: "청년",
	}, "tester"); err != nil {
		t.Errorf("타 그룹 동일 값 생성 실패: %v", err)
	}
}

func TestCodeDetailUpdate(t *testing.T) {
	repo := newTestRepository()
	svc := NewCodeService(repo, zap.NewNop())
	ctx := context.Background()

	group := createGroup(t, svc, "DEPARTMENT", "부서")
	detail, err := svc.CreateDetail(ctx, group.GroupID, &dto.CreateCodeDetailRequest{
		CodeValue: "youth", CodeName: "청년부",
	}, "tester")
	if err != nil {
		t.Fatalf("상세 생성 실패: %v", err)
	}

	newName := "청년1부"
	inactive := false
	updated, err := svc.UpdateDetail(ctx, detail.CodeID, &dto.UpdateCodeDetailRequest{
		CodeName: &newName,
		IsActive: &inactive,
	}, "tester")
	if err != nil {
		t.Fatalf("상세 수정 실패: %v", err)
	}
	if updated.CodeName != "청년1부" || updated.IsActive {
		t.Errorf("수정 결과 불일치: %+v", updated)
	}
}

func TestCodeGroupDeleteCascadesDetails(t *testing.T) {
	repo := newTestRepository()
	svc := NewCodeService(repo, zap.NewNop())
	ctx := context.Background()

	group := createGroup(t, svc, "DEPARTMENT", "부서")
	detail, err := svc.CreateDetail(ctx, group.GroupID, &dto.CreateCodeDetailRequest{
		CodeValue: "youth", CodeName: "청년부",
	}, "tester")
	if err != nil {
		t.Fatalf("상세 생성 실패: %v", err)
	}

	if err := svc.DeleteGroup(ctx, group.GroupID); err != nil {
		t.Fatalf("그룹 삭제 실패: %v", err)
	}
	if _, err := svc.GetGroup(ctx, group.GroupID); err != ErrCodeGroupNotFound {
		t.Errorf("오류 = %v, 기대 ErrCodeGroupNotFound", err)
	}
	if err := svc.DeleteDetail(ctx, detail.CodeID); err != ErrCodeDetailNotFound {
		t.Errorf("상세도 함께 삭제되어야 함: %v", err)
	}
}

func TestCodeGroupNotFound(t *testing.T) {
	repo := newTestRepository()
	svc := NewCodeService(repo, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.GetGroupByCode(ctx, "MISSING"); err != ErrCodeGroupNotFound {
		t.Errorf("오류 = %v, 기대 ErrCodeGroupNotFound", err)
	}
	if _, err := svc.CreateDetail(ctx, "missing-id", &dto.CreateCodeDetailRequest{
		CodeValue: "x", CodeName: "x",
	}, "tester"); err != ErrCodeGroupNotFound {
		t.Errorf("오류 = %v, 기대 ErrCodeGroupNotFound", err)
	}
}
