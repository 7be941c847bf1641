package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var (
	ErrNotImage     = errors.New("이미지 파일만 업로드할 수 있습니다")
	ErrFileTooLarge = errors.New("업로드 파일이 너무 큽니다")
)

// 허용 이미지 형식 → 저장 확장자
var allowedImages = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ImageStore 프로필 이미지를 로컬 디스크에 보관한다
// 저장된 파일은 공개 정적 경로(/uploads) 아래에서 파일명으로 참조된다
type ImageStore struct {
	dir      string
	maxBytes int64
}

// NewImageStore 디렉터리가 없으면 만든다
func NewImageStore(dir string, maxBytes int64) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("업로드 디렉터리 생성 실패: %w", err)
	}
	return &ImageStore{dir: dir, maxBytes: maxBytes}, nil
}

// Dir 저장 디렉터리
func (s *ImageStore) Dir() string { return s.dir }

// Save 내용 기반으로 형식을 확인하고 생성된 파일명을 돌려준다
func (s *ImageStore) Save(fh *multipart.FileHeader) (string, error) {
	if s.maxBytes > 0 && fh.Size > s.maxBytes {
		return "", ErrFileTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("업로드 파일 열기 실패: %w", err)
	}
	defer src.Close()

	mt, err := mimetype.DetectReader(src)
	if err != nil {
		return "", fmt.Errorf("파일 형식 판별 실패: %w", err)
	}
	ext, ok := allowedImages[mt.String()]
	if !ok {
		return "", ErrNotImage
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("업로드 파일 되감기 실패: %w", err)
	}

	name := strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + uuid.NewString()[:8] + ext
	dst, err := os.OpenFile(filepath.Join(s.dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("저장 파일 생성 실패: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("이미지 저장 실패: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("이미지 저장 실패: %w", err)
	}
	return name, nil
}

// Remove 저장된 파일 삭제 (없으면 무시)
func (s *ImageStore) Remove(name string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
