package browser

import (
	"fmt"
	"log/slog"

	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/firefox"
	sellog "github.com/tebeka/selenium/log"

	"webtest-go/config"
)

// firefoxProvider builds capability descriptors for Firefox. Chromium-only
// switches (sandboxing, GPU, web security, mobile emulation) have no
// geckodriver equivalent and are skipped.
type firefoxProvider struct {
	logger *slog.Logger
}

func (p *firefoxProvider) Family() Family { return FamilyFirefox }

func (p *firefoxProvider) Capabilities(cfg *config.Set, headless *bool) selenium.Capabilities {
	caps := selenium.Capabilities{}
	opts := firefox.Capabilities{}

	if resolveHeadless(cfg, headless) {
		opts.Args = append(opts.Args, "-headless")
	}
	if cfg.Bool(config.KeyIncognito) {
		opts.Args = append(opts.Args, "-private")
	}

	if cfg.Bool(config.KeyAdvancedMode) {
		p.applyAdvanced(cfg, caps, &opts)
	}

	caps.AddFirefox(opts)

	if cfg.Bool(config.KeyRemote) {
		applyRemoteTier(cfg, caps, "firefox")
	}
	return caps
}

func (p *firefoxProvider) applyAdvanced(cfg *config.Set, caps selenium.Capabilities, opts *firefox.Capabilities) {
	for _, key := range []string{
		config.KeyDisableGPU,
		config.KeyDisableExtensions,
		config.KeyNoSandbox,
		config.KeyDisableWebSecurity,
	} {
		if cfg.Bool(key) {
			p.logger.Debug("flag not representable for firefox, skipping", "key", key)
		}
	}

	if size := cfg.Get(config.KeyWindowSize); size != "" {
		if w, h, err := parseWindowSize(size); err == nil {
			opts.Args = append(opts.Args, fmt.Sprintf("--width=%d", w), fmt.Sprintf("--height=%d", h))
		} else {
			p.logger.Debug("skipping malformed window size", "value", size, "error", err)
		}
	}
	if cfg.Bool(config.KeyIgnoreSSLErrors) {
		caps["acceptInsecureCerts"] = true
	}
	if ua := cfg.Get(config.KeyUserAgent); ua != "" {
		if opts.Prefs == nil {
			opts.Prefs = make(map[string]interface{})
		}
		opts.Prefs["general.useragent.override"] = ua
	}
	if proxy := cfg.Get(config.KeyProxyServer); proxy != "" {
		caps.AddProxy(manualProxy(proxy))
	}
	if cfg.Bool(config.KeyVerboseLogging) {
		opts.Log = &firefox.Log{Level: firefox.Trace}
	}
	if cfg.Bool(config.KeyPerformanceLogging) {
		caps.SetLogLevel(sellog.Performance, sellog.All)
	}
	if device := cfg.Get(config.KeyMobileEmulation); device != "" {
		p.logger.Debug("mobile emulation not representable for firefox, skipping", "device", device)
	}
}
