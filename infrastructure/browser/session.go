package browser

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/tebeka/selenium"

	"webtest-go/config"
	"webtest-go/core/errs"
)

// Session is a live driver handle: one browser process or grid session,
// owned exclusively by the execution context that created it. Created by a
// Factory, destroyed by Quit; there are no intermediate states.
type Session struct {
	wd     selenium.WebDriver
	svc    Service // nil for remote and attached-safari sessions
	family Family
	cfg    *config.Set
	logger *slog.Logger

	mu   sync.Mutex
	dead bool
}

// Driver exposes the underlying automation library handle for operations
// the session does not wrap.
func (s *Session) Driver() selenium.WebDriver { return s.wd }

// Family returns the browser family the session runs.
func (s *Session) Family() Family { return s.family }

// Navigate loads the given URL. A blank URL is a browser error.
func (s *Session) Navigate(url string) error {
	if strings.TrimSpace(url) == "" {
		s.logger.Error("no URL specified")
		return errs.Browser("no URL specified")
	}
	s.logger.Info("navigating", "url", url)
	if err := s.wd.Get(url); err != nil {
		return errs.Browser("navigating to %s: %v", url, err)
	}
	return nil
}

// NavigateToStart loads the start URL from configuration. A missing or
// blank url setting is a browser error.
func (s *Session) NavigateToStart() error {
	return s.Navigate(s.cfg.Get(config.KeyURL))
}

// Title returns the current page title.
func (s *Session) Title() (string, error) {
	return s.wd.Title()
}

// CurrentURL returns the URL of the current page.
func (s *Session) CurrentURL() (string, error) {
	return s.wd.CurrentURL()
}

// Screenshot captures the current page as PNG bytes. Persisting them is
// the caller's concern.
func (s *Session) Screenshot() ([]byte, error) {
	data, err := s.wd.Screenshot()
	if err != nil {
		return nil, errs.Browser("capturing screenshot: %v", err)
	}
	return data, nil
}

// Quit releases the browser session and, for local sessions, stops the
// driver service. Safe to call more than once.
func (s *Session) Quit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dead {
		return nil
	}
	s.dead = true

	s.logger.Info("quitting session", "browser", s.family.String())
	err := s.wd.Quit()
	if s.svc != nil {
		if stopErr := s.svc.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
	}
	return err
}
