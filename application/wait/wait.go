// Package wait parameterizes "poll until a predicate holds or a timeout
// expires" over the predicates tests need: element presence and visibility,
// clickability, alerts, frames, window counts, document readiness, and
// title/URL matching. Most predicates hard-fail with a typed timeout error;
// the title/URL variants soft-fail by returning the last observed value so
// the caller can assert on it (see navigation.go).
package wait

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tebeka/selenium"

	"webtest-go/core/errs"
	"webtest-go/core/locator"
)

const (
	// DefaultTimeout bounds a wait when the caller does not override it.
	DefaultTimeout = 10 * time.Second
	// DefaultInterval is the pause between predicate evaluations.
	DefaultInterval = 500 * time.Millisecond
)

// Waiter polls a driver until a predicate holds. The zero value is not
// usable; construct with New. Waiter values are cheap to copy; WithTimeout
// and WithInterval return adjusted copies so a shared Waiter is never
// mutated.
type Waiter struct {
	wd       selenium.WebDriver
	logger   *slog.Logger
	timeout  time.Duration
	interval time.Duration
}

// New creates a Waiter with the default timeout and interval.
// A nil logger falls back to slog.Default().
func New(wd selenium.WebDriver, logger *slog.Logger) *Waiter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Waiter{
		wd:       wd,
		logger:   logger,
		timeout:  DefaultTimeout,
		interval: DefaultInterval,
	}
}

// WithTimeout returns a copy of the waiter using the given timeout.
// Non-positive values keep the default.
func (w *Waiter) WithTimeout(d time.Duration) *Waiter {
	c := *w
	if d > 0 {
		c.timeout = d
	}
	return &c
}

// WithInterval returns a copy of the waiter using the given poll interval.
// Non-positive values keep the default.
func (w *Waiter) WithInterval(d time.Duration) *Waiter {
	c := *w
	if d > 0 {
		c.interval = d
	}
	return &c
}

// Timeout returns the waiter's timeout.
func (w *Waiter) Timeout() time.Duration { return w.timeout }

// poll evaluates cond until it returns true, the timeout expires, or ctx is
// cancelled. The predicate's last error becomes the timeout cause.
func (w *Waiter) poll(ctx context.Context, awaiting string, cond func() (bool, error)) error {
	deadline := time.Now().Add(w.timeout)
	var lastErr error
	for {
		ok, err := cond()
		if ok {
			return nil
		}
		lastErr = err

		if !time.Now().Before(deadline) {
			w.logger.Debug("wait expired", "awaiting", awaiting, "timeout", w.timeout)
			return errs.Timeout(awaiting, w.timeout, lastErr)
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: awaiting %s: %v", errs.ErrWaitCancelled, awaiting, ctx.Err())
		case <-time.After(w.interval):
		}
	}
}

// ForPresent waits until an element matching loc is attached to the page
// structure, visible or not.
func (w *Waiter) ForPresent(ctx context.Context, loc locator.Locator) (selenium.WebElement, error) {
	var found selenium.WebElement
	err := w.poll(ctx, fmt.Sprintf("element %s present", loc), func() (bool, error) {
		el, err := w.wd.FindElement(loc.By, loc.Value)
		if err != nil {
			return false, err
		}
		found = el
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// ForVisible waits until an element matching loc is rendered visible.
func (w *Waiter) ForVisible(ctx context.Context, loc locator.Locator) (selenium.WebElement, error) {
	var found selenium.WebElement
	err := w.poll(ctx, fmt.Sprintf("element %s visible", loc), func() (bool, error) {
		el, err := w.wd.FindElement(loc.By, loc.Value)
		if err != nil {
			return false, err
		}
		visible, err := el.IsDisplayed()
		if err != nil {
			return false, err
		}
		if !visible {
			return false, nil
		}
		found = el
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// ForAllVisible waits until loc matches at least one element and every
// match is rendered visible.
func (w *Waiter) ForAllVisible(ctx context.Context, loc locator.Locator) ([]selenium.WebElement, error) {
	var found []selenium.WebElement
	err := w.poll(ctx, fmt.Sprintf("all elements %s visible", loc), func() (bool, error) {
		els, err := w.wd.FindElements(loc.By, loc.Value)
		if err != nil {
			return false, err
		}
		if len(els) == 0 {
			return false, nil
		}
		for _, el := range els {
			visible, err := el.IsDisplayed()
			if err != nil || !visible {
				return false, err
			}
		}
		found = els
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// ForClickable waits until an element matching loc is visible and enabled.
func (w *Waiter) ForClickable(ctx context.Context, loc locator.Locator) (selenium.WebElement, error) {
	var found selenium.WebElement
	err := w.poll(ctx, fmt.Sprintf("element %s clickable", loc), func() (bool, error) {
		el, err := w.wd.FindElement(loc.By, loc.Value)
		if err != nil {
			return false, err
		}
		visible, err := el.IsDisplayed()
		if err != nil || !visible {
			return false, err
		}
		enabled, err := el.IsEnabled()
		if err != nil || !enabled {
			return false, err
		}
		found = el
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// ForWindowCount waits until the browser has exactly n open windows.
func (w *Waiter) ForWindowCount(ctx context.Context, n int) error {
	return w.poll(ctx, fmt.Sprintf("%d windows", n), func() (bool, error) {
		handles, err := w.wd.WindowHandles()
		if err != nil {
			return false, err
		}
		return len(handles) == n, nil
	})
}

// ForPageLoaded waits until document.readyState reports complete.
func (w *Waiter) ForPageLoaded(ctx context.Context) error {
	return w.poll(ctx, "document ready", func() (bool, error) {
		state, err := w.wd.ExecuteScript("return document.readyState", nil)
		if err != nil {
			return false, err
		}
		s, ok := state.(string)
		return ok && s == "complete", nil
	})
}
