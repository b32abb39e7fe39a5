package browser

import (
	"log/slog"

	"github.com/tebeka/selenium"

	"webtest-go/config"
)

// safariProvider builds capability descriptors for Safari. safaridriver
// exposes far fewer launch knobs than the Chromium drivers: no headless
// mode, no custom arguments, no proxy or user agent override. Whatever the
// configuration asks for beyond the safari: vendor capabilities is skipped.
type safariProvider struct {
	logger *slog.Logger
}

func (p *safariProvider) Family() Family { return FamilySafari }

func (p *safariProvider) Capabilities(cfg *config.Set, headless *bool) selenium.Capabilities {
	caps := selenium.Capabilities{}

	if resolveHeadless(cfg, headless) {
		p.logger.Debug("headless not representable for safari, skipping")
	}
	if cfg.Bool(config.KeyIncognito) {
		caps["safari:usePrivateBrowsing"] = true
	}

	if cfg.Bool(config.KeyAdvancedMode) {
		p.applyAdvanced(cfg, caps)
	}

	if cfg.Bool(config.KeyRemote) {
		applyRemoteTier(cfg, caps, "safari")
	}
	return caps
}

func (p *safariProvider) applyAdvanced(cfg *config.Set, caps selenium.Capabilities) {
	for _, key := range []string{
		config.KeyDisableGPU,
		config.KeyDisableExtensions,
		config.KeyNoSandbox,
		config.KeyDisableWebSecurity,
		config.KeyPerformanceLogging,
	} {
		if cfg.Bool(key) {
			p.logger.Debug("flag not representable for safari, skipping", "key", key)
		}
	}
	for _, key := range []string{
		config.KeyWindowSize,
		config.KeyUserAgent,
		config.KeyProxyServer,
		config.KeyMobileEmulation,
	} {
		if cfg.Get(key) != "" {
			p.logger.Debug("flag not representable for safari, skipping", "key", key)
		}
	}

	if cfg.Bool(config.KeyIgnoreSSLErrors) {
		caps["safari:ignoreFraudWarning"] = true
	}
	if cfg.Bool(config.KeyVerboseLogging) {
		caps["safari:diagnose"] = true
	}
}
