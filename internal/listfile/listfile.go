package listfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/readlater-labs/readlater/internal/logger"
	"github.com/readlater-labs/readlater/internal/readlater"
)

// Permission constants.
const (
	FilePermSecure os.FileMode = 0600
	DirPermSecure  os.FileMode = 0700
)

// Load reads and parses the list at path. A missing file is an empty list.
func Load(path string) (*readlater.List, error) {
	text, err := Read(path)
	if err != nil {
		return nil, err
	}
	list, err := readlater.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing list %s: %w", path, err)
	}
	logger.Debug("loaded list", "path", path, "links", list.Len())
	return list, nil
}

// Read returns the raw text of the list at path, or "" when it doesn't exist.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("list file does not exist yet", "path", path)
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading list %s: %w", path, err)
	}
	return string(data), nil
}

// Save serializes list and atomically replaces the file at path.
func Save(path string, list *readlater.List) error {
	text := list.String()
	if text != "" {
		text += "\n"
	}
	if err := WriteAtomic(path, []byte(text)); err != nil {
		return err
	}
	logger.Info("saved list", "path", path, "links", list.Len())
	return nil
}

// WriteAtomic writes data to a temporary file beside path and renames it
// into place. An existing file keeps its permissions; a new one is created
// 0600. If path is a symlink its target is replaced, not the link.
func WriteAtomic(path string, data []byte) error {
	target, perm, err := resolveTarget(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, DirPermSecure); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()
	renamed := false
	defer func() {
		if !renamed {
			if err := os.Remove(tmpPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
				logger.Warn("could not remove temp file", "path", tmpPath, "err", err)
			}
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmpPath, err)
	}
	if err := chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, target); err != nil {
		return fmt.Errorf("replacing %s: %w", target, err)
	}
	renamed = true
	return nil
}

// resolveTarget follows symlinks and returns the file to replace along with
// the permissions the new file should carry.
func resolveTarget(path string) (string, os.FileMode, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return path, FilePermSecure, nil
	}
	if err != nil {
		return "", 0, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", 0, fmt.Errorf("list path %s is a directory", path)
	}
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", 0, fmt.Errorf("resolving %s: %w", path, err)
	}
	return target, info.Mode().Perm(), nil
}

// chmod is a no-op on Windows, which has no Unix permission bits.
func chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}
