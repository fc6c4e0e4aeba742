package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// RotationConfig bounds the size and retention of log files.
type RotationConfig struct {
	MaxSizeMB  int  // Rotate once the file would grow past this size
	MaxBackups int  // Rotated files to keep (0 = unlimited)
	MaxAgeDays int  // Remove rotated files older than this (0 = never)
	Compress   bool // Gzip rotated files
}

// DefaultRotationConfig returns the rotation used when none is configured.
func DefaultRotationConfig() RotationConfig {
	return RotationConfig{
		MaxSizeMB:  10,
		MaxBackups: 5,
		MaxAgeDays: 14,
		Compress:   true,
	}
}

// LogRotator is an io.Writer over a size-rotated log file.
type LogRotator struct {
	mu       sync.Mutex
	dir      string
	name     string
	cfg      RotationConfig
	file     *os.File
	size     int64
	now      func() time.Time
	warnings io.Writer
}

// NewLogRotator opens dir/name for appending.
func NewLogRotator(dir, name string, cfg RotationConfig) (*LogRotator, error) {
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = DefaultRotationConfig().MaxSizeMB
	}

	r := &LogRotator{
		dir:      dir,
		name:     name,
		cfg:      cfg,
		now:      time.Now,
		warnings: os.Stderr,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the active log file path.
func (r *LogRotator) Path() string {
	return filepath.Join(r.dir, r.name)
}

func (r *LogRotator) maxBytes() int64 {
	return int64(r.cfg.MaxSizeMB) * 1024 * 1024
}

func (r *LogRotator) open() error {
	if info, err := os.Stat(r.Path()); err == nil {
		r.size = info.Size()
	} else {
		r.size = 0
	}

	file, err := os.OpenFile(r.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	r.file = file
	return nil
}

func (r *LogRotator) warnf(format string, args ...any) {
	fmt.Fprintf(r.warnings, "warning: "+format+"\n", args...)
}

// Write implements io.Writer.
func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}

	if r.size > 0 && r.size+int64(len(p)) > r.maxBytes() {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if err := r.file.Close(); err != nil {
		r.warnf("failed to close log file: %v", err)
	}
	r.file = nil

	backup := r.Path() + "." + r.now().Format("2006-01-02-15-04-05.000")
	if err := os.Rename(r.Path(), backup); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	if r.cfg.Compress {
		if err := gzipFile(backup); err != nil {
			r.warnf("failed to compress %s: %v", backup, err)
		} else if err := os.Remove(backup); err != nil {
			r.warnf("failed to remove %s: %v", backup, err)
		}
	}

	r.prune()
	return r.open()
}

func gzipFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	zw := gzip.NewWriter(out)
	if _, err = io.Copy(zw, in); err != nil {
		_ = zw.Close()
		return err
	}
	return zw.Close()
}

// prune enforces MaxAgeDays and MaxBackups on rotated files.
func (r *LogRotator) prune() {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return
	}

	var backups []os.FileInfo
	cutoff := r.now().Add(-time.Duration(r.cfg.MaxAgeDays) * 24 * time.Hour)

	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), r.name+".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if r.cfg.MaxAgeDays > 0 && info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(r.dir, e.Name())); err != nil {
				r.warnf("failed to remove old log file: %v", err)
			}
			continue
		}
		backups = append(backups, info)
	}

	if r.cfg.MaxBackups <= 0 || len(backups) <= r.cfg.MaxBackups {
		return
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].ModTime().Before(backups[j].ModTime())
	})
	for _, info := range backups[:len(backups)-r.cfg.MaxBackups] {
		if err := os.Remove(filepath.Join(r.dir, info.Name())); err != nil {
			r.warnf("failed to remove excess backup file: %v", err)
		}
	}
}

// Close closes the active file.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
