// Package config loads environment-specific framework settings. A Set is a
// flat string-keyed map read from a YAML file; exactly one Set is active per
// Loader lifetime, selected by the WEBTEST_ENV environment variable.
package config

import (
	"strconv"
	"strings"
	"time"
)

// Recognized configuration keys.
const (
	KeyBrowser            = "browser"
	KeyHeadless           = "headless"
	KeyIncognito          = "incognito"
	KeyRemote             = "remote"
	KeyHubURL             = "hubUrl"
	KeyURL                = "url"
	KeyBrowserVersion     = "browser_version"
	KeyWindowSize         = "window_size"
	KeyAdvancedMode       = "advanced_mode"
	KeyDisableGPU         = "disable_gpu"
	KeyDisableExtensions  = "disable_extensions"
	KeyNoSandbox          = "no_sandbox"
	KeyIgnoreSSLErrors    = "ignore_ssl_errors"
	KeyDisableWebSecurity = "disable_web_security"
	KeyUserAgent          = "user_agent"
	KeyProxyServer        = "proxy_server"
	KeyVerboseLogging     = "enable_verbose_logging"
	KeyPerformanceLogging = "enable_performance_logging"
	KeyMobileEmulation    = "mobile_emulation"
	KeyScreenResolution   = "screen_resolution"
	KeyEnableVideo        = "enable_video"
	KeyTestName           = "test_name"
	KeyDriverPath         = "driver_path"
	KeyDriverPort         = "driver_port"
	KeySafariDriverURL    = "safari_driver_url"
	KeyDefaultTimeout     = "default_timeout"
)

// Set is an immutable flat map of configuration settings. It is populated
// once by a Loader and safe for concurrent reads thereafter.
type Set struct {
	values map[string]string
}

// NewSet builds a Set from the given values. Intended for tests and for
// callers that assemble configuration programmatically.
func NewSet(values map[string]string) *Set {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &Set{values: copied}
}

// Get returns the value for key, or "" if unset.
func (s *Set) Get(key string) string {
	return s.values[key]
}

// GetDefault returns the value for key, or def if unset or blank.
func (s *Set) GetDefault(key, def string) string {
	if v, ok := s.values[key]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

// Has reports whether key is present, even if blank.
func (s *Set) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Bool returns the value for key parsed as a boolean. Unset, blank or
// unparsable values yield false.
func (s *Set) Bool(key string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(s.values[key]))
	if err != nil {
		return false
	}
	return v
}

// Int returns the value for key parsed as an integer, or def when unset
// or unparsable.
func (s *Set) Int(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s.values[key]))
	if err != nil {
		return def
	}
	return v
}

// Duration returns the value for key parsed as a time.Duration
// (e.g. "10s"), or def when unset or unparsable.
func (s *Set) Duration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(s.values[key]))
	if err != nil {
		return def
	}
	return v
}

// Len returns the number of settings in the set.
func (s *Set) Len() int { return len(s.values) }
