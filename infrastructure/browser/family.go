// Package browser provides browser session infrastructure: capability
// building per browser family, local and remote (grid) session creation,
// and a registry of live sessions keyed by execution context.
package browser

import (
	"strings"

	"webtest-go/core/errs"
)

// Family identifies a supported browser family.
type Family int

const (
	// FamilyChrome is Google Chrome / Chromium driven by chromedriver.
	FamilyChrome Family = iota
	// FamilyFirefox is Mozilla Firefox driven by geckodriver.
	FamilyFirefox
	// FamilyEdge is Microsoft Edge driven by msedgedriver.
	FamilyEdge
	// FamilySafari is Apple Safari driven by safaridriver.
	FamilySafari
)

// String returns the canonical lowercase name of the family.
func (f Family) String() string {
	switch f {
	case FamilyChrome:
		return "chrome"
	case FamilyFirefox:
		return "firefox"
	case FamilyEdge:
		return "edge"
	case FamilySafari:
		return "safari"
	default:
		return "unknown"
	}
}

// ParseFamily resolves a configured browser name to a Family. Matching is
// case-insensitive and ignores surrounding whitespace; an unsupported name
// yields a browser error.
func ParseFamily(name string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "chrome":
		return FamilyChrome, nil
	case "firefox":
		return FamilyFirefox, nil
	case "edge":
		return FamilyEdge, nil
	case "safari":
		return FamilySafari, nil
	default:
		return 0, errs.Browser("unsupported browser: %q", name)
	}
}

// SupportsHeadless reports whether the family can run without a visible
// window. Safari has no headless mode; a configured headless flag is
// silently skipped for it.
func (f Family) SupportsHeadless() bool {
	return f != FamilySafari
}
