// Package element wraps "find element, wait until a condition holds, then
// act" into single calls: click, type, read, dropdown selection, drag and
// drop, and hover-chain menu traversal. Every operation takes a locator and
// an optional timeout; failures carry the locator and cause as a typed
// element or wait-timeout error. Only IsDisplayed is best-effort.
package element

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/tebeka/selenium"

	"webtest-go/application/wait"
	"webtest-go/core/errs"
	"webtest-go/core/locator"
)

// DefaultTimeout bounds an operation when the caller does not pass one.
const DefaultTimeout = 10 * time.Second

// Interactor performs element interactions against one driver handle.
type Interactor struct {
	wd     selenium.WebDriver
	waiter *wait.Waiter
	logger *slog.Logger
}

// New creates an Interactor for the given driver. A nil logger falls back
// to slog.Default().
func New(wd selenium.WebDriver, logger *slog.Logger) *Interactor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Interactor{
		wd:     wd,
		waiter: wait.New(wd, logger),
		logger: logger,
	}
}

// pick resolves the optional timeout argument.
func pick(timeout []time.Duration) time.Duration {
	if len(timeout) > 0 && timeout[0] > 0 {
		return timeout[0]
	}
	return DefaultTimeout
}

// classify distinguishes "never found" from "found but condition never
// held": when a wait expires and the locator currently matches nothing, the
// caller gets an element error; otherwise the timeout error stands.
func (i *Interactor) classify(op string, loc locator.Locator, err error) error {
	if !errors.Is(err, errs.ErrWaitTimeout) {
		return err
	}
	els, findErr := i.wd.FindElements(loc.By, loc.Value)
	if findErr != nil || len(els) == 0 {
		return errs.Element(op, loc.String(), err)
	}
	return err
}

// Click waits until the element is clickable, then clicks it.
func (i *Interactor) Click(ctx context.Context, loc locator.Locator, timeout ...time.Duration) error {
	el, err := i.waiter.WithTimeout(pick(timeout)).ForClickable(ctx, loc)
	if err != nil {
		return i.classify("click", loc, err)
	}
	if err := el.Click(); err != nil {
		return errs.Element("click", loc.String(), err)
	}
	return nil
}

// Type waits until the element is visible, clears it, and types text.
func (i *Interactor) Type(ctx context.Context, loc locator.Locator, text string, timeout ...time.Duration) error {
	el, err := i.waiter.WithTimeout(pick(timeout)).ForVisible(ctx, loc)
	if err != nil {
		return i.classify("type", loc, err)
	}
	if err := el.Clear(); err != nil {
		return errs.Element("clear", loc.String(), err)
	}
	if err := el.SendKeys(text); err != nil {
		return errs.Element("type", loc.String(), err)
	}
	return nil
}

// Text waits until the element is visible and returns its rendered text.
func (i *Interactor) Text(ctx context.Context, loc locator.Locator, timeout ...time.Duration) (string, error) {
	el, err := i.waiter.WithTimeout(pick(timeout)).ForVisible(ctx, loc)
	if err != nil {
		return "", i.classify("read text", loc, err)
	}
	text, err := el.Text()
	if err != nil {
		return "", errs.Element("read text", loc.String(), err)
	}
	return text, nil
}

// Attribute waits until the element is visible and returns the named
// attribute. ok is false when the attribute is not set on the element.
func (i *Interactor) Attribute(ctx context.Context, loc locator.Locator, name string, timeout ...time.Duration) (value string, ok bool, err error) {
	el, err := i.waiter.WithTimeout(pick(timeout)).ForVisible(ctx, loc)
	if err != nil {
		return "", false, i.classify("read attribute", loc, err)
	}
	value, err = el.GetAttribute(name)
	if err != nil {
		// The wire protocol reports an unset attribute as a null value,
		// which the library surfaces as an error on a healthy element.
		return "", false, nil
	}
	return value, true, nil
}

// IsDisplayed reports whether the element exists and is rendered visible.
// Best-effort: a locator with zero matches yields false, never an error.
func (i *Interactor) IsDisplayed(loc locator.Locator) bool {
	el, err := i.wd.FindElement(loc.By, loc.Value)
	if err != nil {
		return false
	}
	visible, err := el.IsDisplayed()
	if err != nil {
		return false
	}
	return visible
}

// Count returns the number of elements matching loc.
func (i *Interactor) Count(loc locator.Locator) (int, error) {
	els, err := i.wd.FindElements(loc.By, loc.Value)
	if err != nil {
		return 0, errs.Element("count", loc.String(), err)
	}
	return len(els), nil
}

// TextList waits until every match is visible and returns their texts,
// skipping empty ones.
func (i *Interactor) TextList(ctx context.Context, loc locator.Locator, timeout ...time.Duration) ([]string, error) {
	els, err := i.waiter.WithTimeout(pick(timeout)).ForAllVisible(ctx, loc)
	if err != nil {
		return nil, i.classify("read text list", loc, err)
	}
	texts := make([]string, 0, len(els))
	for _, el := range els {
		text, err := el.Text()
		if err != nil {
			return nil, errs.Element("read text list", loc.String(), err)
		}
		if text != "" {
			texts = append(texts, text)
		}
	}
	return texts, nil
}

// AttributeList waits until every match is visible and returns the named
// attribute of each, skipping elements where it is unset.
func (i *Interactor) AttributeList(ctx context.Context, loc locator.Locator, name string, timeout ...time.Duration) ([]string, error) {
	els, err := i.waiter.WithTimeout(pick(timeout)).ForAllVisible(ctx, loc)
	if err != nil {
		return nil, i.classify("read attribute list", loc, err)
	}
	values := make([]string, 0, len(els))
	for _, el := range els {
		value, err := el.GetAttribute(name)
		if err != nil {
			continue
		}
		values = append(values, value)
	}
	return values, nil
}

// Waiter exposes the interactor's waiter for callers composing their own
// conditions.
func (i *Interactor) Waiter() *wait.Waiter { return i.waiter }
