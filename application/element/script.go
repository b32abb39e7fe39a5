package element

import (
	"context"
	"fmt"
	"time"

	"webtest-go/core/errs"
	"webtest-go/core/locator"
)

// Script-backed conveniences for cases where native interaction is not
// enough: elements behind sticky headers, overlays that eat native clicks,
// whole-page text extraction.

// ScrollIntoView scrolls the page until the element is inside the viewport.
func (i *Interactor) ScrollIntoView(ctx context.Context, loc locator.Locator, timeout ...time.Duration) error {
	el, err := i.waiter.WithTimeout(pick(timeout)).ForPresent(ctx, loc)
	if err != nil {
		return i.classify("scroll into view", loc, err)
	}
	if _, err := i.wd.ExecuteScript("arguments[0].scrollIntoView(true);", []interface{}{el}); err != nil {
		return errs.Element("scroll into view", loc.String(), err)
	}
	return nil
}

// ScrollToTop scrolls the page back to the origin.
func (i *Interactor) ScrollToTop() error {
	_, err := i.wd.ExecuteScript("window.scrollTo(0, 0);", nil)
	return err
}

// ScrollBy scrolls the page vertically by the given number of pixels.
func (i *Interactor) ScrollBy(pixels int) error {
	_, err := i.wd.ExecuteScript(fmt.Sprintf("window.scrollBy(0, %d);", pixels), nil)
	return err
}

// ClickViaScript waits for the element and clicks it through script,
// bypassing pointer interception.
func (i *Interactor) ClickViaScript(ctx context.Context, loc locator.Locator, timeout ...time.Duration) error {
	el, err := i.waiter.WithTimeout(pick(timeout)).ForPresent(ctx, loc)
	if err != nil {
		return i.classify("click", loc, err)
	}
	if _, err := i.wd.ExecuteScript("arguments[0].click();", []interface{}{el}); err != nil {
		return errs.Element("click", loc.String(), err)
	}
	return nil
}

// PageText returns the rendered text of the whole document body.
func (i *Interactor) PageText() (string, error) {
	result, err := i.wd.ExecuteScript("return document.documentElement.innerText;", nil)
	if err != nil {
		return "", err
	}
	text, ok := result.(string)
	if !ok {
		return "", fmt.Errorf("page text: unexpected result type %T", result)
	}
	return text, nil
}

// TitleViaScript reads the document title through script, for pages where
// the driver-level title lags behind a script-driven update.
func (i *Interactor) TitleViaScript() (string, error) {
	result, err := i.wd.ExecuteScript("return document.title;", nil)
	if err != nil {
		return "", err
	}
	title, ok := result.(string)
	if !ok {
		return "", fmt.Errorf("title: unexpected result type %T", result)
	}
	return title, nil
}

// Refresh reloads the current page through script.
func (i *Interactor) Refresh() error {
	_, err := i.wd.ExecuteScript("history.go(0);", nil)
	return err
}
