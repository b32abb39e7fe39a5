package browser

import (
	"fmt"
	"log/slog"

	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
	sellog "github.com/tebeka/selenium/log"

	"webtest-go/config"
)

// chromeProvider builds capability descriptors for Chrome.
type chromeProvider struct {
	logger *slog.Logger
}

func (p *chromeProvider) Family() Family { return FamilyChrome }

func (p *chromeProvider) Capabilities(cfg *config.Set, headless *bool) selenium.Capabilities {
	caps := selenium.Capabilities{}
	opts := chrome.Capabilities{}

	// Baseline tier.
	if resolveHeadless(cfg, headless) {
		opts.Args = append(opts.Args, "--headless=new")
	}
	if cfg.Bool(config.KeyIncognito) {
		opts.Args = append(opts.Args, "--incognito")
	}

	if cfg.Bool(config.KeyAdvancedMode) {
		p.applyAdvanced(cfg, caps, &opts)
	}

	caps.AddChrome(opts)

	if cfg.Bool(config.KeyRemote) {
		applyRemoteTier(cfg, caps, "chrome")
	}
	return caps
}

func (p *chromeProvider) applyAdvanced(cfg *config.Set, caps selenium.Capabilities, opts *chrome.Capabilities) {
	if cfg.Bool(config.KeyDisableGPU) {
		opts.Args = append(opts.Args, "--disable-gpu")
	}
	if cfg.Bool(config.KeyDisableExtensions) {
		opts.Args = append(opts.Args, "--disable-extensions")
	}
	if cfg.Bool(config.KeyNoSandbox) {
		opts.Args = append(opts.Args, "--no-sandbox")
	}
	if size := cfg.Get(config.KeyWindowSize); size != "" {
		if w, h, err := parseWindowSize(size); err == nil {
			opts.Args = append(opts.Args, fmt.Sprintf("--window-size=%d,%d", w, h))
		} else {
			p.logger.Debug("skipping malformed window size", "value", size, "error", err)
		}
	}
	if cfg.Bool(config.KeyIgnoreSSLErrors) {
		caps["acceptInsecureCerts"] = true
		opts.Args = append(opts.Args, "--ignore-certificate-errors")
	}
	if cfg.Bool(config.KeyDisableWebSecurity) {
		opts.Args = append(opts.Args, "--disable-web-security")
	}
	if ua := cfg.Get(config.KeyUserAgent); ua != "" {
		opts.Args = append(opts.Args, "--user-agent="+ua)
	}
	if proxy := cfg.Get(config.KeyProxyServer); proxy != "" {
		caps.AddProxy(manualProxy(proxy))
	}
	if cfg.Bool(config.KeyVerboseLogging) {
		caps.SetLogLevel(sellog.Browser, sellog.All)
		opts.Args = append(opts.Args, "--enable-logging", "--v=1")
	}
	if cfg.Bool(config.KeyPerformanceLogging) {
		caps.SetLogLevel(sellog.Performance, sellog.All)
	}
	if device := cfg.Get(config.KeyMobileEmulation); device != "" {
		opts.MobileEmulation = &chrome.MobileEmulation{DeviceName: device}
	}
}
