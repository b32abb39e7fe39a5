package browser

import (
	"log/slog"
	"net/url"

	"github.com/tebeka/selenium"

	"webtest-go/config"
	"webtest-go/core/errs"
)

// Connector opens a WebDriver session against a running endpoint.
// Injectable so factory behavior is testable without a browser.
type Connector func(caps selenium.Capabilities, urlPrefix string) (selenium.WebDriver, error)

// Factory creates driver sessions from configuration: it resolves the
// browser family, builds the capability descriptor, then launches a local
// driver service or connects to a remote grid.
type Factory struct {
	cfg          *config.Set
	logger       *slog.Logger
	connect      Connector
	startService ServiceStarter
}

// FactoryOption customizes a Factory.
type FactoryOption func(*Factory)

// WithConnector replaces the session connector.
func WithConnector(c Connector) FactoryOption {
	return func(f *Factory) { f.connect = c }
}

// WithServiceStarter replaces the local driver service launcher.
func WithServiceStarter(s ServiceStarter) FactoryOption {
	return func(f *Factory) { f.startService = s }
}

// NewFactory creates a factory over the given configuration set. A nil
// logger falls back to slog.Default().
func NewFactory(cfg *config.Set, logger *slog.Logger, opts ...FactoryOption) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	f := &Factory{
		cfg:          cfg,
		logger:       logger,
		connect:      selenium.NewRemote,
		startService: StartDriverService,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create builds a new session: capability descriptor, local service or grid
// connection, cookie reset, window normalization and, when a start URL is
// configured, initial navigation. Any failure leaves no session behind.
func (f *Factory) Create() (*Session, error) {
	family, err := ParseFamily(f.cfg.GetDefault(config.KeyBrowser, "chrome"))
	if err != nil {
		f.logger.Error("invalid browser name in configuration", "browser", f.cfg.Get(config.KeyBrowser))
		return nil, err
	}

	remote := f.cfg.Bool(config.KeyRemote)
	f.logger.Info("creating session", "browser", family.String(), "remote", remote)

	caps := ProviderFor(family, f.logger).Capabilities(f.cfg, nil)

	var (
		wd  selenium.WebDriver
		svc Service
	)
	if remote {
		wd, err = f.connectRemote(family, caps)
	} else {
		wd, svc, err = f.connectLocal(family, caps)
	}
	if err != nil {
		return nil, err
	}

	session := &Session{
		wd:     wd,
		svc:    svc,
		family: family,
		cfg:    f.cfg,
		logger: f.logger,
	}

	if err := f.prepare(session); err != nil {
		// Roll back so the caller's context stays in the absent state.
		_ = session.Quit()
		return nil, err
	}
	return session, nil
}

func (f *Factory) connectRemote(family Family, caps selenium.Capabilities) (selenium.WebDriver, error) {
	hub := f.cfg.Get(config.KeyHubURL)
	if hub == "" {
		f.logger.Error("remote execution selected but no hub URL configured")
		return nil, errs.Browser("remote execution selected but no hub URL configured")
	}
	parsed, err := url.Parse(hub)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		f.logger.Error("invalid grid hub URL", "hubUrl", hub)
		return nil, errs.Browser("invalid grid hub URL: %q", hub)
	}

	f.logger.Info("connecting to grid", "hubUrl", hub, "browser", family.String())
	wd, err := f.connect(caps, hub)
	if err != nil {
		return nil, errs.Browser("creating remote session at %s: %v", hub, err)
	}
	return wd, nil
}

func (f *Factory) connectLocal(family Family, caps selenium.Capabilities) (selenium.WebDriver, Service, error) {
	svc, endpoint, err := f.startService(family, f.cfg)
	if err != nil {
		return nil, nil, errs.Browser("starting %s driver service: %v", family.String(), err)
	}

	f.logger.Info("connecting to local driver", "endpoint", endpoint, "browser", family.String())
	wd, err := f.connect(caps, endpoint)
	if err != nil {
		if svc != nil {
			_ = svc.Stop()
		}
		return nil, nil, errs.Browser("creating local %s session: %v", family.String(), err)
	}
	return wd, svc, nil
}

// prepare normalizes a freshly connected session: cookies cleared, window
// sized, start URL loaded when configured.
func (f *Factory) prepare(s *Session) error {
	if err := s.wd.DeleteAllCookies(); err != nil {
		return errs.Browser("clearing cookies: %v", err)
	}

	f.normalizeWindow(s)

	if f.cfg.Has(config.KeyURL) {
		if err := s.NavigateToStart(); err != nil {
			return err
		}
	}
	return nil
}

// normalizeWindow applies an explicit window size only when advanced mode
// and a well-formed window_size setting are both present; anything else
// maximizes. A malformed setting is a warning, not a failure.
func (f *Factory) normalizeWindow(s *Session) {
	size := f.cfg.Get(config.KeyWindowSize)
	if f.cfg.Bool(config.KeyAdvancedMode) && size != "" {
		w, h, err := parseWindowSize(size)
		if err == nil {
			if resizeErr := s.wd.ResizeWindow("", w, h); resizeErr == nil {
				return
			}
			f.logger.Warn("window resize failed, maximizing instead", "window_size", size)
		} else {
			f.logger.Warn("invalid window_size, maximizing instead", "window_size", size, "error", err)
		}
	}
	if err := s.wd.MaximizeWindow(""); err != nil {
		f.logger.Warn("window maximize failed", "error", err)
	}
}
