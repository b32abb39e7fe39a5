package wait

import (
	"context"
	"fmt"
	"strings"
	"time"

	"webtest-go/core/errs"
)

// softPoll evaluates observe/satisfied until the predicate holds or the
// timeout expires. On expiry it returns the last observed value and no
// error; assertions over the unsatisfied value are the caller's job. This
// soft-fail policy is specific to the title/URL predicates and must not be
// unified with the hard-fail poll.
func (w *Waiter) softPoll(ctx context.Context, awaiting string, observe func() (string, error), satisfied func(string) bool) (string, error) {
	deadline := time.Now().Add(w.timeout)
	var last string
	for {
		current, err := observe()
		if err == nil {
			last = current
			if satisfied(current) {
				return current, nil
			}
		}

		if !time.Now().Before(deadline) {
			w.logger.Warn("wait expired, returning last observed value", "awaiting", awaiting, "observed", last)
			return last, nil
		}
		select {
		case <-ctx.Done():
			return last, fmt.Errorf("%w: awaiting %s: %v", errs.ErrWaitCancelled, awaiting, ctx.Err())
		case <-time.After(w.interval):
		}
	}
}

// ForTitleContains waits until the page title contains fragment, returning
// the title. On timeout it returns the last observed title instead of an
// error.
func (w *Waiter) ForTitleContains(ctx context.Context, fragment string) (string, error) {
	return w.softPoll(ctx, fmt.Sprintf("title containing %q", fragment),
		w.wd.Title,
		func(t string) bool { return strings.Contains(t, fragment) })
}

// ForTitleIs waits until the page title equals want, returning the title.
// On timeout it returns the last observed title instead of an error.
func (w *Waiter) ForTitleIs(ctx context.Context, want string) (string, error) {
	return w.softPoll(ctx, fmt.Sprintf("title %q", want),
		w.wd.Title,
		func(t string) bool { return t == want })
}

// ForURLContains waits until the current URL contains fragment, returning
// the URL. On timeout it returns the last observed URL instead of an error.
func (w *Waiter) ForURLContains(ctx context.Context, fragment string) (string, error) {
	return w.softPoll(ctx, fmt.Sprintf("URL containing %q", fragment),
		w.wd.CurrentURL,
		func(u string) bool { return strings.Contains(u, fragment) })
}

// ForURLIs waits until the current URL equals want, returning the URL.
// On timeout it returns the last observed URL instead of an error.
func (w *Waiter) ForURLIs(ctx context.Context, want string) (string, error) {
	return w.softPoll(ctx, fmt.Sprintf("URL %q", want),
		w.wd.CurrentURL,
		func(u string) bool { return u == want })
}
