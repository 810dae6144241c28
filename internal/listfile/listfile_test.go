package listfile

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/readlater-labs/readlater/internal/readlater"
)

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	list, err := Load(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if list.Len() != 0 {
		t.Errorf("Len() = %d, want 0", list.Len())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list")
	list := readlater.New()
	list.Put(readlater.LinkEntry{URL: "https://b.com", Title: "B"})
	list.Put(readlater.LinkEntry{URL: "https://a.com", Title: "A", Tags: []string{"x"}})

	if err := Save(path, list); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved list: %v", err)
	}
	want := "url: https://a.com\ntitle: A\ntags: x\n---\nurl: https://b.com\ntitle: B\n"
	if string(data) != want {
		t.Errorf("file content = %q, want %q", data, want)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !loaded.Equal(list) {
		t.Error("loaded list differs from saved list")
	}
}

func TestSave_EmptyListWritesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list")
	if err := Save(path, readlater.New()); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	data, _ := os.ReadFile(path)
	if len(data) != 0 {
		t.Errorf("file content = %q, want empty", data)
	}
}

func TestLoad_ParseErrorLeavesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list")
	orig := "url: https://a.com\n---\ntitle: B\n"
	if err := os.WriteFile(path, []byte(orig), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	var pe *readlater.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Load error = %v, want *readlater.ParseError", err)
	}
	if pe.Record != 1 {
		t.Errorf("Record = %d, want 1", pe.Record)
	}
	data, _ := os.ReadFile(path)
	if string(data) != orig {
		t.Errorf("file modified after failed load: %q", data)
	}
}

func TestWriteAtomic_Permissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits not supported on Windows")
	}
	dir := t.TempDir()

	fresh := filepath.Join(dir, "fresh")
	if err := WriteAtomic(fresh, []byte("x")); err != nil {
		t.Fatalf("WriteAtomic error: %v", err)
	}
	assertPerm(t, fresh, FilePermSecure)

	existing := filepath.Join(dir, "existing")
	if err := os.WriteFile(existing, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(existing, 0644); err != nil {
		t.Fatal(err)
	}
	if err := WriteAtomic(existing, []byte("new")); err != nil {
		t.Fatalf("WriteAtomic error: %v", err)
	}
	assertPerm(t, existing, 0644)
	data, _ := os.ReadFile(existing)
	if string(data) != "new" {
		t.Errorf("content = %q, want %q", data, "new")
	}
}

func TestWriteAtomic_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list")
	for i := 0; i < 3; i++ {
		if err := WriteAtomic(path, []byte("x")); err != nil {
			t.Fatalf("WriteAtomic error: %v", err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory contains %v, want only the list", names)
	}
}

func TestWriteAtomic_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "list")
	if err := WriteAtomic(path, []byte("x")); err != nil {
		t.Fatalf("WriteAtomic error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file at %s: %v", path, err)
	}
}

func TestWriteAtomic_FollowsSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on Windows")
	}
	dir := t.TempDir()
	target := filepath.Join(dir, "real")
	link := filepath.Join(dir, "link")
	if err := os.WriteFile(target, []byte("old"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	if err := WriteAtomic(link, []byte("new")); err != nil {
		t.Fatalf("WriteAtomic error: %v", err)
	}

	info, err := os.Lstat(link)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Error("symlink was replaced by a regular file")
	}
	data, _ := os.ReadFile(target)
	if string(data) != "new" {
		t.Errorf("target content = %q, want %q", data, "new")
	}
}

func TestWriteAtomic_DirectoryPath(t *testing.T) {
	if err := WriteAtomic(t.TempDir(), []byte("x")); err == nil {
		t.Error("expected error writing over a directory")
	}
}

func assertPerm(t *testing.T, path string, want os.FileMode) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if got := info.Mode().Perm(); got != want {
		t.Errorf("%s mode = %o, want %o", filepath.Base(path), got, want)
	}
}
