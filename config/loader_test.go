package config

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"webtest-go/core/errs"
)

func writeEnvFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadReadsSelectedEnvironment(t *testing.T) {
	dir := t.TempDir()
	writeEnvFile(t, dir, "qa.yaml", "browser: chrome\nheadless: true\ndriver_port: 9515\n")
	writeEnvFile(t, dir, "dev.yaml", "browser: firefox\n")
	t.Setenv(EnvVar, "dev")

	set, err := NewLoader(dir, nil).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := set.Get(KeyBrowser); got != "firefox" {
		t.Errorf("browser = %q, want %q", got, "firefox")
	}
}

func TestLoadDefaultsToQA(t *testing.T) {
	dir := t.TempDir()
	writeEnvFile(t, dir, "qa.yaml", "browser: chrome\nheadless: true\n")
	t.Setenv(EnvVar, "")

	set, err := NewLoader(dir, nil).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := set.Get(KeyBrowser); got != "chrome" {
		t.Errorf("browser = %q, want %q", got, "chrome")
	}
	if !set.Bool(KeyHeadless) {
		t.Error("headless = false, want true (bare YAML bool must stringify)")
	}
}

func TestLoadInvalidEnvironment(t *testing.T) {
	t.Setenv(EnvVar, "production")

	_, err := NewLoader(t.TempDir(), nil).Load()
	if !errors.Is(err, errs.ErrConfig) {
		t.Fatalf("Load() error = %v, want ErrConfig", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv(EnvVar, "qa")

	_, err := NewLoader(t.TempDir(), nil).Load()
	if !errors.Is(err, errs.ErrConfig) {
		t.Fatalf("Load() error = %v, want ErrConfig", err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeEnvFile(t, dir, "qa.yaml", "browser: [unclosed\n")
	t.Setenv(EnvVar, "qa")

	_, err := NewLoader(dir, nil).Load()
	if !errors.Is(err, errs.ErrConfig) {
		t.Fatalf("Load() error = %v, want ErrConfig", err)
	}
}

func TestLoadCachesAcrossCalls(t *testing.T) {
	dir := t.TempDir()
	writeEnvFile(t, dir, "qa.yaml", "browser: chrome\n")
	t.Setenv(EnvVar, "qa")

	loader := NewLoader(dir, nil)
	first, err := loader.Load()
	if err != nil {
		t.Fatalf("first Load() error: %v", err)
	}

	// Remove the file; a second Load must not touch disk again.
	if err := os.Remove(filepath.Join(dir, "qa.yaml")); err != nil {
		t.Fatal(err)
	}

	second, err := loader.Load()
	if err != nil {
		t.Fatalf("second Load() error: %v", err)
	}
	if first != second {
		t.Error("second Load() returned a different Set, want identical cached instance")
	}
}

func TestLoadConcurrentFirstCall(t *testing.T) {
	dir := t.TempDir()
	writeEnvFile(t, dir, "qa.yaml", "browser: chrome\n")
	t.Setenv(EnvVar, "qa")

	loader := NewLoader(dir, nil)

	const goroutines = 16
	sets := make([]*Set, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			set, err := loader.Load()
			if err != nil {
				t.Errorf("Load() error: %v", err)
				return
			}
			sets[i] = set
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if sets[i] != sets[0] {
			t.Fatalf("goroutine %d observed a different Set", i)
		}
	}
}
