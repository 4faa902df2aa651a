package service

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"new-family/internal/dto"
	"new-family/internal/model"
)

func TestUserCreate(t *testing.T) {
	repo := newTestRepository()
	svc := NewUserService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateUserRequest{
		Email:    "staff@example.com",
		Password: "password123",
		Name:     "김간사",
		Role:     model.RoleStaff,
	}, "admin-1")
	if err != nil {
		t.Fatalf("생성 실패: %v", err)
	}
	if created.Email != "staff@example.com" || created.Role != model.RoleStaff {
		t.Errorf("생성 결과 불일치: %+v", created)
	}

	// 비밀번호는 평문이 아니라 bcrypt 해시로 저장된다
	stored, err := repo.User.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("조회 실패: %v", err)
	}
	if stored.PasswordHash == "password123" {
		t.Errorf("비밀번호가 평문으로 저장됨")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")); err != nil {
		t.Errorf("해시 검증 실패: %v", err)
	}
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	repo := newTestRepository()
	svc := NewUserService(repo, zap.NewNop())
	ctx := context.Background()

	req := &dto.CreateUserRequest{
		Email:    "staff@example.com",
		Password: "password123",
		Name:     "김간사",
		Role:     model.RoleStaff,
	}
	if _, err := svc.Create(ctx, req, "admin-1"); err != nil {
		t.Fatalf("생성 실패: %v", err)
	}
	if _, err := svc.Create(ctx, req, "admin-1"); err != ErrEmailExists {
		t.Errorf("오류 = %v, 기대 ErrEmailExists", err)
	}
}

func TestUserUpdateRole(t *testing.T) {
	repo := newTestRepository()
	svc := NewUserService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateUserRequest{
		Email: "viewer@example.com", Password: "password123", Name: "박조회", Role: model.RoleViewer,
	}, "admin-1")
	if err != nil {
		t.Fatalf("생성 실패: %v", err)
	}

	newRole := model.RoleStaff
	updated, err := svc.Update(ctx, created.ID, &dto.UpdateUserRequest{Role: &newRole}, "admin-1")
	if err != nil {
		t.Fatalf("수정 실패: %v", err)
	}
	if updated.Role != model.RoleStaff {
		t.Errorf("역할 = %s, 기대 staff", updated.Role)
	}
}

func TestUserListPagination(t *testing.T) {
	repo := newTestRepository()
	svc := NewUserService(repo, zap.NewNop())
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		if _, err := svc.Create(ctx, &dto.CreateUserRequest{
			Email: email, Password: "password123", Name: "사용자", Role: model.RoleViewer,
		}, "admin-1"); err != nil {
			t.Fatalf("생성 실패: %v", err)
		}
	}

	rows, total, err := svc.List(ctx, &dto.UserListRequest{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("목록 조회 실패: %v", err)
	}
	if total != 3 || len(rows) != 1 {
		t.Errorf("페이지 결과 = %d건(총 %d), 기대 1건(총 3)", len(rows), total)
	}
}

func TestUserDeleteAndResetPassword(t *testing.T) {
	repo := newTestRepository()
	svc := NewUserService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateUserRequest{
		Email: "staff@example.com", Password: "password123", Name: "김간사", Role: model.RoleStaff,
	}, "admin-1")
	if err != nil {
		t.Fatalf("생성 실패: %v", err)
	}

	if err := svc.ResetPassword(ctx, created.ID, &dto.ResetPasswordRequest{NewPassword: "resetpass123"}, "admin-1"); err != nil {
		t.Fatalf("초기화 실패: %v", err)
	}
	stored, _ := repo.User.GetByID(ctx, created.ID)
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("resetpass123")); err != nil {
		t.Errorf("초기화된 비밀번호 검증 실패: %v", err)
	}

	if err := svc.Delete(ctx, created.ID, "admin-1"); err != nil {
		t.Fatalf("삭제 실패: %v", err)
	}
	if _, err := svc.GetByID(ctx, created.ID); err != ErrUserNotFound {
		t.Errorf("삭제 후 조회 오류 = %v, 기대 ErrUserNotFound", err)
	}
	if err := svc.ResetPassword(ctx, "missing-id", &dto.ResetPasswordRequest{NewPassword: "resetpass123"}, "admin-1"); err != ErrUserNotFound {
		t.Errorf("오류 = %v, 기대 ErrUserNotFound", err)
	}
}
