package uploads

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
)

type Kind string

const (
	KindImage    Kind = "images"
	KindDocument Kind = "documents"
)

// URLPrefix 是上传文件对外的访问前缀
const URLPrefix = "/uploads/"

var allowedExtensions = map[Kind][]string{
	KindImage:    {".jpg", ".jpeg", ".png", ".webp"},
	KindDocument: {".pdf"},
}

var (
	ErrInvalidType = errors.New("file type not allowed")
	ErrTooLarge    = errors.New("file too large")
)

type Store struct {
	dir     string
	maxSize int64
}

func New(dir string, maxSize int64) (*Store, error) {
	for kind := range allowedExtensions {
		if err := os.MkdirAll(filepath.Join(dir, string(kind)), 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir: %w", err)
		}
	}

	return &Store{
		dir:     dir,
		maxSize: maxSize,
	}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save 检查扩展名和大小，以随机文件名保存，返回对外访问路径
func (s *Store) Save(fh *multipart.FileHeader, kind Kind) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !extensionAllowed(kind, ext) {
		return "", fmt.Errorf("%w: %q for %s", ErrInvalidType, ext, kind)
	}
	if fh.Size > s.maxSize {
		return "", fmt.Errorf("%w: %d > %d bytes", ErrTooLarge, fh.Size, s.maxSize)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	filename := uuid.NewString() + ext
	fullPath := filepath.Join(s.dir, string(kind), filename)

	dst, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}

	// 多读一个字节，用来发现 header 里没有如实报告大小的情况
	written, err := io.Copy(dst, io.LimitReader(src, s.maxSize+1))
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err == nil && written > s.maxSize {
		err = fmt.Errorf("%w: more than %d bytes", ErrTooLarge, s.maxSize)
	}
	if err != nil {
		_ = os.Remove(fullPath)
		return "", fmt.Errorf("save upload: %w", err)
	}

	return URLPrefix + path.Join(string(kind), filename), nil
}

// Delete 只处理本服务保存的文件，外部链接和不存在的文件直接忽略
func (s *Store) Delete(url string) error {
	if !strings.HasPrefix(url, URLPrefix) {
		return nil
	}

	// 只接受 <kind>/<filename> 形式
	rel := strings.TrimPrefix(path.Clean("/"+strings.TrimPrefix(url, URLPrefix)), "/")
	kind, name, ok := strings.Cut(rel, "/")
	if !ok || name == "" || strings.Contains(name, "/") || allowedExtensions[Kind(kind)] == nil {
		return nil
	}

	if err := os.Remove(filepath.Join(s.dir, kind, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete upload: %w", err)
	}

	return nil
}

func extensionAllowed(kind Kind, ext string) bool {
	for _, allowed := range allowedExtensions[kind] {
		if ext == allowed {
			return true
		}
	}
	return false
}
