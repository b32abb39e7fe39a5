package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"webtest-go/core/errs"
)

// EnvVar is the process environment variable that selects which
// configuration file to load.
const EnvVar = "WEBTEST_ENV"

// DefaultEnv is used when EnvVar is unset.
const DefaultEnv = "qa"

// DefaultDir is the directory searched for environment files when the
// Loader is constructed without an explicit directory.
const DefaultDir = "configs"

// envFiles maps supported environment names to their file names. The
// production environment keeps the historical plain name.
var envFiles = map[string]string{
	"qa":    "qa.yaml",
	"dev":   "dev.yaml",
	"stage": "stage.yaml",
	"uat":   "uat.yaml",
	"prod":  "config.yaml",
}

// Loader reads and caches one environment-selected Set. Construct it once
// at process entry and pass it down; Load is idempotent and the first
// population is serialized, so concurrent callers all observe the same Set.
type Loader struct {
	dir    string
	logger *slog.Logger

	once sync.Once
	set  *Set
	err  error
}

// NewLoader creates a loader reading environment files from dir. An empty
// dir falls back to DefaultDir. A nil logger falls back to slog.Default().
func NewLoader(dir string, logger *slog.Logger) *Loader {
	if dir == "" {
		dir = DefaultDir
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{dir: dir, logger: logger}
}

// Load returns the cached Set, reading it from disk on the first call.
// The environment name comes from EnvVar (default DefaultEnv); an
// unsupported name or an unreadable file yields a configuration error.
// The outcome of the first call, success or failure, is sticky.
func (l *Loader) Load() (*Set, error) {
	l.once.Do(func() {
		l.set, l.err = l.read()
	})
	return l.set, l.err
}

func (l *Loader) read() (*Set, error) {
	env := strings.ToLower(strings.TrimSpace(os.Getenv(EnvVar)))
	if env == "" {
		env = DefaultEnv
	}

	file, ok := envFiles[env]
	if !ok {
		l.logger.Error("invalid environment name", "env", env)
		return nil, errs.Config("invalid environment name: %s", env)
	}

	path := filepath.Join(l.dir, file)
	l.logger.Info("loading configuration", "env", env, "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		l.logger.Error("failed to read configuration file", "path", path, "error", err)
		return nil, fmt.Errorf("%w: reading %s: %v", errs.ErrConfig, path, err)
	}

	// Values are flat but may be written as bare YAML scalars (true, 4444),
	// so decode loosely and stringify.
	raw := make(map[string]any)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		l.logger.Error("failed to parse configuration file", "path", path, "error", err)
		return nil, fmt.Errorf("%w: parsing %s: %v", errs.ErrConfig, path, err)
	}

	values := make(map[string]string, len(raw))
	for k, v := range raw {
		if v == nil {
			values[k] = ""
			continue
		}
		values[k] = fmt.Sprint(v)
	}

	return &Set{values: values}, nil
}
