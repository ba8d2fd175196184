package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGitInitializer(t *testing.T) {
	dir := t.TempDir()

	created, err := GitInitializer{}.Init(dir)
	if err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if !created {
		t.Error("created = false, want true")
	}
	if info, err := os.Stat(filepath.Join(dir, ".git")); err != nil || !info.IsDir() {
		t.Fatal("expected .git directory")
	}

	created, err = GitInitializer{}.Init(dir)
	if err != nil {
		t.Fatalf("second Init error: %v", err)
	}
	if created {
		t.Error("existing repository must be reported as not created")
	}
}
