package service

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"new-family/internal/model"
)

func newFileTestService(t *testing.T) (FileService, string) {
	t.Helper()
	repo := newTestRepository()
	constants := repo.SystemConstant.(*mockSystemConstantRepo)
	root := t.TempDir()
	constants.set(model.ConstFileRootPath, root)
	constants.set(model.ConstFileUploadPath, "uploads")
	return NewFileService(repo, zap.NewNop()), root
}

func TestFileUploadAndResolve(t *testing.T) {
	svc, _ := newFileTestService(t)
	ctx := context.Background()

	content := "등록 카드 스캔본"
	resp, err := svc.Upload(ctx, "등록카드.pdf", "application/pdf", int64(len(content)), strings.NewReader(content), "tester")
	if err != nil {
		t.Fatalf("업로드 실패: %v", err)
	}
	if resp.OriginalName != "등록카드.pdf" {
		t.Errorf("원본 파일명 = %s", resp.OriginalName)
	}
	if !strings.HasSuffix(resp.SavedName, "_001.pdf") {
		t.Errorf("저장 파일명 = %s, 기대 접미사 _001.pdf", resp.SavedName)
	}
	if !strings.HasPrefix(resp.RelativePath, "uploads/") {
		t.Errorf("상대 경로 = %s, 기대 uploads/ 하위", resp.RelativePath)
	}

	meta, absPath, err := svc.Resolve(ctx, resp.FileID)
	if err != nil {
		t.Fatalf("경로 해석 실패: %v", err)
	}
	if meta.FileID != resp.FileID {
		t.Errorf("메타 불일치: %+v", meta)
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		t.Fatalf("저장된 파일 읽기 실패: %v", err)
	}
	if string(data) != content {
		t.Errorf("파일 내용 불일치: %q", data)
	}
}

func TestFileUploadSequencePerDay(t *testing.T) {
	svc, _ := newFileTestService(t)
	ctx := context.Background()

	first, err := svc.Upload(ctx, "a.jpg", "image/jpeg", 1, strings.NewReader("a"), "tester")
	if err != nil {
		t.Fatalf("업로드 실패: %v", err)
	}
	second, err := svc.Upload(ctx, "b.jpg", "image/jpeg", 1, strings.NewReader("b"), "tester")
	if err != nil {
		t.Fatalf("업로드 실패: %v", err)
	}
	if !strings.HasSuffix(first.SavedName, "_001.jpg") || !strings.HasSuffix(second.SavedName, "_002.jpg") {
		t.Errorf("일자별 순번 불일치: %s, %s", first.SavedName, second.SavedName)
	}
}

func TestFileUploadTooLarge(t *testing.T) {
	svc, _ := newFileTestService(t)

	_, err := svc.Upload(context.Background(), "big.zip", "application/zip", maxUploadSize+1, strings.NewReader(""), "tester")
	if err != ErrFileTooLarge {
		t.Errorf("오류 = %v, 기대 ErrFileTooLarge", err)
	}
}

func TestFileUploadStreamExceedsLimit(t *testing.T) {
	svc, root := newFileTestService(t)

	// 선언 크기는 작게 속이고 실제 스트림은 한도를 초과하는 경우
	oversized := strings.NewReader(strings.Repeat("a", maxUploadSize+1))
	_, err := svc.Upload(context.Background(), "big.zip", "application/zip", 10, oversized, "tester")
	if err != ErrFileTooLarge {
		t.Fatalf("오류 = %v, 기대 ErrFileTooLarge", err)
	}

	// 잘린 파일이 남아 있으면 안 된다
	var leftover []string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			leftover = append(leftover, path)
		}
		return nil
	})
	if len(leftover) != 0 {
		t.Errorf("잘린 파일이 남아 있음: %v", leftover)
	}
}

func TestFileDelete(t *testing.T) {
	svc, _ := newFileTestService(t)
	ctx := context.Background()

	resp, err := svc.Upload(ctx, "temp.txt", "text/plain", 4, strings.NewReader("temp"), "tester")
	if err != nil {
		t.Fatalf("업로드 실패: %v", err)
	}

	_, absPath, err := svc.Resolve(ctx, resp.FileID)
	if err != nil {
		t.Fatalf("경로 해석 실패: %v", err)
	}

	if err := svc.Delete(ctx, resp.FileID); err != nil {
		t.Fatalf("삭제 실패: %v", err)
	}
	if _, _, err := svc.Resolve(ctx, resp.FileID); err != ErrFileNotFound {
		t.Errorf("삭제 후 조회 오류 = %v, 기대 ErrFileNotFound", err)
	}
	if _, err := os.Stat(absPath); !os.IsNotExist(err) {
		t.Errorf("실제 파일이 남아 있음: %s", absPath)
	}

	if err := svc.Delete(ctx, "missing-id"); err != ErrFileNotFound {
		t.Errorf("오류 = %v, 기대 ErrFileNotFound", err)
	}
}
