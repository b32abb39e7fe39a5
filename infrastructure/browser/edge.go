package browser

import (
	"fmt"
	"log/slog"

	"github.com/tebeka/selenium"
	sellog "github.com/tebeka/selenium/log"

	"webtest-go/config"
)

// edgeOptionsKey is the vendor capability key msedgedriver reads launch
// options from. The automation library has no dedicated Edge package, so
// the options map is assembled by hand; Edge is Chromium-based and accepts
// the same argument set as Chrome.
const edgeOptionsKey = "ms:edgeOptions"

// edgeProvider builds capability descriptors for Microsoft Edge.
type edgeProvider struct {
	logger *slog.Logger
}

func (p *edgeProvider) Family() Family { return FamilyEdge }

func (p *edgeProvider) Capabilities(cfg *config.Set, headless *bool) selenium.Capabilities {
	caps := selenium.Capabilities{}
	edgeOpts := make(map[string]interface{})
	var args []string

	if resolveHeadless(cfg, headless) {
		args = append(args, "--headless=new")
	}
	if cfg.Bool(config.KeyIncognito) {
		args = append(args, "--inprivate")
	}

	if cfg.Bool(config.KeyAdvancedMode) {
		args = p.applyAdvanced(cfg, caps, edgeOpts, args)
	}

	if len(args) > 0 {
		edgeOpts["args"] = args
	}
	if len(edgeOpts) > 0 {
		caps[edgeOptionsKey] = edgeOpts
	}

	if cfg.Bool(config.KeyRemote) {
		applyRemoteTier(cfg, caps, "MicrosoftEdge")
	}
	return caps
}

func (p *edgeProvider) applyAdvanced(cfg *config.Set, caps selenium.Capabilities, edgeOpts map[string]interface{}, args []string) []string {
	if cfg.Bool(config.KeyDisableGPU) {
		args = append(args, "--disable-gpu")
	}
	if cfg.Bool(config.KeyDisableExtensions) {
		args = append(args, "--disable-extensions")
	}
	if cfg.Bool(config.KeyNoSandbox) {
		args = append(args, "--no-sandbox")
	}
	if size := cfg.Get(config.KeyWindowSize); size != "" {
		if w, h, err := parseWindowSize(size); err == nil {
			args = append(args, fmt.Sprintf("--window-size=%d,%d", w, h))
		} else {
			p.logger.Debug("skipping malformed window size", "value", size, "error", err)
		}
	}
	if cfg.Bool(config.KeyIgnoreSSLErrors) {
		caps["acceptInsecureCerts"] = true
		args = append(args, "--ignore-certificate-errors")
	}
	if cfg.Bool(config.KeyDisableWebSecurity) {
		args = append(args, "--disable-web-security")
	}
	if ua := cfg.Get(config.KeyUserAgent); ua != "" {
		args = append(args, "--user-agent="+ua)
	}
	if proxy := cfg.Get(config.KeyProxyServer); proxy != "" {
		caps.AddProxy(manualProxy(proxy))
	}
	if cfg.Bool(config.KeyVerboseLogging) {
		caps.SetLogLevel(sellog.Browser, sellog.All)
	}
	if cfg.Bool(config.KeyPerformanceLogging) {
		caps.SetLogLevel(sellog.Performance, sellog.All)
	}
	if device := cfg.Get(config.KeyMobileEmulation); device != "" {
		edgeOpts["mobileEmulation"] = map[string]interface{}{"deviceName": device}
	}
	return args
}
