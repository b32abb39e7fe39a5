package browser

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/tebeka/selenium"

	"webtest-go/config"
)

// OptionsProvider builds the capability descriptor for one browser family.
// Implementations are pure functions of the configuration set: they never
// return errors, and flags the family cannot represent are skipped with a
// debug log. One provider exists per Family; dispatch is keyed on the
// enumeration, not on runtime type inspection.
type OptionsProvider interface {
	// Family returns the browser family the provider serves.
	Family() Family

	// Capabilities builds a fresh descriptor from cfg. A non-nil headless
	// pointer overrides the configured headless flag.
	Capabilities(cfg *config.Set, headless *bool) selenium.Capabilities
}

// ProviderFor returns the options provider for the given family.
// A nil logger falls back to slog.Default().
func ProviderFor(family Family, logger *slog.Logger) OptionsProvider {
	if logger == nil {
		logger = slog.Default()
	}
	switch family {
	case FamilyFirefox:
		return &firefoxProvider{logger: logger}
	case FamilyEdge:
		return &edgeProvider{logger: logger}
	case FamilySafari:
		return &safariProvider{logger: logger}
	default:
		return &chromeProvider{logger: logger}
	}
}

// resolveHeadless applies the optional override on top of the configured
// headless flag.
func resolveHeadless(cfg *config.Set, override *bool) bool {
	if override != nil {
		return *override
	}
	return cfg.Bool(config.KeyHeadless)
}

// applyRemoteTier adds the grid routing capabilities shared by every family:
// browser identity plus selenoid session hints (resolution, VNC, video,
// session name).
func applyRemoteTier(cfg *config.Set, caps selenium.Capabilities, browserName string) {
	caps["browserName"] = browserName
	caps["browserVersion"] = cfg.GetDefault(config.KeyBrowserVersion, "latest")
	caps["selenoid:options"] = map[string]interface{}{
		"screenResolution": cfg.GetDefault(config.KeyScreenResolution, "1280x1024x24"),
		"enableVNC":        true,
		"enableVideo":      cfg.Bool(config.KeyEnableVideo),
		"name":             cfg.GetDefault(config.KeyTestName, "default_test"),
	}
}

// manualProxy builds a manual proxy configuration routing both HTTP and TLS
// traffic through server.
func manualProxy(server string) selenium.Proxy {
	return selenium.Proxy{
		Type: selenium.Manual,
		HTTP: server,
		SSL:  server,
	}
}

// parseWindowSize parses a "width,height" setting.
func parseWindowSize(value string) (width, height int, err error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("window size %q is not in \"width,height\" form", value)
	}
	width, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("window size %q: bad width: %v", value, err)
	}
	height, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("window size %q: bad height: %v", value, err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("window size %q: dimensions must be positive", value)
	}
	return width, height, nil
}
