package credstore

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ecmarket/shopclient/pkg/logger"
)

// FileStore persists the credential in a single file, the durable-storage
// analog of a browser's named localStorage slot. When the filesystem is
// unavailable the store degrades to an in-memory shadow value and keeps
// serving callers without error; the session is then simply lost on
// restart.
type FileStore struct {
	path string
	log  *slog.Logger

	mu       sync.Mutex
	shadow   string
	degraded bool
}

// FileStoreOption configures a FileStore.
type FileStoreOption func(*FileStore)

// WithFileStoreLogger sets the logger used to report storage degradation.
func WithFileStoreLogger(log *slog.Logger) FileStoreOption {
	return func(s *FileStore) {
		if log != nil {
			s.log = log
		}
	}
}

// NewFileStore creates a store writing to path. The parent directory is
// created lazily on the first Set.
func NewFileStore(path string, opts ...FileStoreOption) *FileStore {
	s := &FileStore{
		path: path,
		log:  logger.NewDiscard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *FileStore) Get(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.degraded {
		if s.shadow == "" {
			return "", ErrNoCredential
		}
		return s.shadow, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoCredential
		}
		s.degrade("read", err)
		if s.shadow == "" {
			return "", ErrNoCredential
		}
		return s.shadow, nil
	}

	credential := strings.TrimSpace(string(data))
	if credential == "" {
		return "", ErrNoCredential
	}
	return credential, nil
}

func (s *FileStore) Set(ctx context.Context, credential string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shadow = credential
	if s.degraded {
		return nil
	}

	if err := s.write(credential); err != nil {
		s.degrade("write", err)
	}
	return nil
}

func (s *FileStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shadow = ""
	if s.degraded {
		return nil
	}

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.degrade("clear", err)
	}
	return nil
}

// write replaces the slot atomically so a crash mid-write never leaves a
// truncated credential behind.
func (s *FileStore) write(credential string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(credential); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, s.path)
}

// degrade switches the store to memory-only mode. Callers must hold s.mu.
func (s *FileStore) degrade(op string, err error) {
	s.degraded = true
	s.log.Warn("credential storage unavailable, continuing in memory only",
		slog.String("op", op),
		slog.String("path", s.path),
		logger.Error(err),
	)
}
