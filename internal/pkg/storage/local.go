package storage

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// LocalStorage persists uploaded files under a directory on disk and serves
// them back by relative URL.
type LocalStorage struct {
	baseDir string
	baseURL string
}

func NewLocalStorage(baseDir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStorage{baseDir: baseDir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// SaveAvatar stores the uploaded image and returns its public URL.
func (s *LocalStorage) SaveAvatar(ctx *fiber.Ctx, file *multipart.FileHeader, userId uuid.UUID) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
	default:
		return "", fmt.Errorf("unsupported image type %q", ext)
	}

	name := fmt.Sprintf("avatar-%s%s", userId, ext)
	dest := filepath.Join(s.baseDir, name)

	if err := ctx.SaveFile(file, dest); err != nil {
		return "", fmt.Errorf("failed to save avatar: %w", err)
	}

	return fmt.Sprintf("%s/uploads/%s", s.baseURL, name), nil
}

// Dir returns the directory files are stored in, for static serving.
func (s *LocalStorage) Dir() string {
	return s.baseDir
}
