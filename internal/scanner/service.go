package scanner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gofrs/flock"

	"plugvault/internal/logging"
	"plugvault/internal/plugin"
)

// ErrScanInFlight is returned when a scan is requested while one is already
// running; callers must not issue overlapping scans.
var ErrScanInFlight = errors.New("a scan is already in flight")

// Service owns the published catalog and serializes scans. Exactly one scan
// may be in flight at a time, enforced in-process by a flag and across
// processes by a lock file. The catalog is published by replacement: callers
// of Current observe either the previous complete catalog or the new one,
// never an intermediate state.
type Service struct {
	scanner  *Scanner
	lockPath string
	logger   *slog.Logger

	mu       sync.Mutex
	scanning bool
	current  *plugin.Catalog
}

// NewService wraps a scanner with single-flight scheduling and catalog
// publication. lockPath may be empty to disable cross-process locking.
func NewService(scanner *Scanner, lockPath string, logger *slog.Logger) *Service {
	return &Service{
		scanner:  scanner,
		lockPath: lockPath,
		logger:   logging.NewComponentLogger(logger, "scan-service"),
	}
}

// Current returns the most recently published catalog, or nil before the
// first scan completes.
func (s *Service) Current() *plugin.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Scan runs a full scan on a background goroutine and publishes the result.
// The calling goroutine blocks until the catalog is published or ctx is
// cancelled; a concurrent call fails with ErrScanInFlight.
func (s *Service) Scan(ctx context.Context) (*plugin.Catalog, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}

	release, err := s.acquireLock()
	if err != nil {
		s.end()
		return nil, err
	}

	type result struct {
		catalog *plugin.Catalog
		err     error
	}
	done := make(chan result, 1)
	go func() {
		catalog, err := s.scanner.Scan(ctx)
		done <- result{catalog, err}
	}()

	res := <-done
	release()
	s.end()
	if res.err != nil {
		return nil, res.err
	}

	s.mu.Lock()
	s.current = res.catalog
	s.mu.Unlock()
	return res.catalog, nil
}

// Refresh discards the published catalog and runs a brand-new scan. There is
// no mid-scan cancellation: an in-flight scan still owns the replace
// transaction, so Refresh fails with ErrScanInFlight instead of racing it.
func (s *Service) Refresh(ctx context.Context) (*plugin.Catalog, error) {
	s.mu.Lock()
	if s.scanning {
		s.mu.Unlock()
		return nil, ErrScanInFlight
	}
	s.current = nil
	s.mu.Unlock()
	return s.Scan(ctx)
}

// SetSelected toggles selection on a record of the currently published
// catalog. Selection is UI state and only ever edited on the stable,
// published snapshot.
func (s *Service) SetSelected(name string, selected bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return errors.New("no catalog published yet")
	}
	rec, ok := s.current.Find(name)
	if !ok {
		return fmt.Errorf("no plugin named %q", name)
	}
	rec.Selected = selected
	return nil
}

func (s *Service) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scanning {
		return ErrScanInFlight
	}
	s.scanning = true
	return nil
}

func (s *Service) end() {
	s.mu.Lock()
	s.scanning = false
	s.mu.Unlock()
}

// acquireLock takes the cross-process scan lock. Failure to acquire means
// another plugvault process is scanning.
func (s *Service) acquireLock() (func(), error) {
	if s.lockPath == "" {
		return func() {}, nil
	}
	lock := flock.New(s.lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire scan lock %s: %w", s.lockPath, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: lock %s held by another process", ErrScanInFlight, s.lockPath)
	}
	return func() {
		if err := lock.Unlock(); err != nil {
			s.logger.Warn("release scan lock", logging.Error(err))
		}
	}, nil
}
