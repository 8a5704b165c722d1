package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/cronut/pkg/cache"
)

func TestClearCache(t *testing.T) {
	dir := t.TempDir()
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	for _, key := range []string{"a", "b"} {
		if err := fc.Set(ctx, key, []byte(key), time.Hour); err != nil {
			t.Fatal(err)
		}
	}

	var out bytes.Buffer
	c := &CLI{Out: &out}
	if err := c.clearCache(dir); err != nil {
		t.Fatalf("clearCache() error: %v", err)
	}
	if !strings.Contains(out.String(), "Cleared 2 cached entries") {
		t.Errorf("output = %q", out.String())
	}
	if _, ok, _ := fc.Get(ctx, "a"); ok {
		t.Error("entries should be removed")
	}
}

func TestClearCacheMissingDir(t *testing.T) {
	var out bytes.Buffer
	c := &CLI{Out: &out}
	if err := c.clearCache(filepath.Join(t.TempDir(), "missing")); err != nil {
		t.Fatalf("clearCache() error: %v", err)
	}
	if !strings.Contains(out.String(), "Cache is empty") {
		t.Errorf("output = %q", out.String())
	}
}

func TestCachePathCommand(t *testing.T) {
	out, err := runCLI(t, "cache", "path")
	if err != nil {
		t.Fatalf("cache path error: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), appName) {
		t.Errorf("cache path = %q, should end with %q", out, appName)
	}
}
