package element

import (
	"context"
	"fmt"
	"time"

	"webtest-go/core/errs"
	"webtest-go/core/locator"
)

// Hover waits for the element and moves the pointer over it.
func (i *Interactor) Hover(ctx context.Context, loc locator.Locator, timeout ...time.Duration) error {
	el, err := i.waiter.WithTimeout(pick(timeout)).ForVisible(ctx, loc)
	if err != nil {
		return i.classify("hover", loc, err)
	}
	if err := el.MoveTo(0, 0); err != nil {
		return errs.Element("hover", loc.String(), err)
	}
	return nil
}

// DragAndDrop waits for both elements, then drags source onto target with
// pointer press, move and release.
func (i *Interactor) DragAndDrop(ctx context.Context, source, target locator.Locator, timeout ...time.Duration) error {
	w := i.waiter.WithTimeout(pick(timeout))

	src, err := w.ForVisible(ctx, source)
	if err != nil {
		return i.classify("drag", source, err)
	}
	dst, err := w.ForVisible(ctx, target)
	if err != nil {
		return i.classify("drop", target, err)
	}

	if err := src.MoveTo(0, 0); err != nil {
		return errs.Element("drag", source.String(), err)
	}
	if err := i.wd.ButtonDown(); err != nil {
		return errs.Element("drag", source.String(), err)
	}
	if err := dst.MoveTo(0, 0); err != nil {
		_ = i.wd.ButtonUp()
		return errs.Element("drop", target.String(), err)
	}
	if err := i.wd.ButtonUp(); err != nil {
		return errs.Element("drop", target.String(), err)
	}
	return nil
}

// HoverThroughMenu traverses a nested menu: every level but the last is
// hovered to reveal the next, and the last is clicked. Each level may wait
// up to the given timeout.
func (i *Interactor) HoverThroughMenu(ctx context.Context, levels []locator.Locator, timeout ...time.Duration) error {
	if len(levels) < 2 {
		return fmt.Errorf("menu traversal needs at least 2 levels, got %d", len(levels))
	}
	for _, loc := range levels[:len(levels)-1] {
		if err := i.Hover(ctx, loc, timeout...); err != nil {
			return err
		}
	}
	return i.Click(ctx, levels[len(levels)-1], timeout...)
}

// ClickThroughMenu traverses a nested menu by clicking every level in
// order. Each level may wait up to the given timeout.
func (i *Interactor) ClickThroughMenu(ctx context.Context, levels []locator.Locator, timeout ...time.Duration) error {
	if len(levels) < 2 {
		return fmt.Errorf("menu traversal needs at least 2 levels, got %d", len(levels))
	}
	for _, loc := range levels {
		if err := i.Click(ctx, loc, timeout...); err != nil {
			return err
		}
	}
	return nil
}

// TypeSlow types text one key at a time with a pause between keys, for
// inputs that debounce or autocomplete on keystrokes.
func (i *Interactor) TypeSlow(ctx context.Context, loc locator.Locator, text string, pause time.Duration, timeout ...time.Duration) error {
	el, err := i.waiter.WithTimeout(pick(timeout)).ForVisible(ctx, loc)
	if err != nil {
		return i.classify("type", loc, err)
	}
	if err := el.Clear(); err != nil {
		return errs.Element("clear", loc.String(), err)
	}
	for _, r := range text {
		if err := el.SendKeys(string(r)); err != nil {
			return errs.Element("type", loc.String(), err)
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: typing into %s: %v", errs.ErrWaitCancelled, loc, ctx.Err())
		case <-time.After(pause):
		}
	}
	return nil
}

// SearchAndSelect types a query into a search field, waits for the
// suggestion list, and clicks the suggestion whose text equals value.
func (i *Interactor) SearchAndSelect(ctx context.Context, field locator.Locator, query string, suggestions locator.Locator, value string, timeout ...time.Duration) error {
	if err := i.Type(ctx, field, query, timeout...); err != nil {
		return err
	}
	els, err := i.waiter.WithTimeout(pick(timeout)).ForAllVisible(ctx, suggestions)
	if err != nil {
		return i.classify("search suggestions", suggestions, err)
	}
	for _, el := range els {
		text, err := el.Text()
		if err != nil {
			continue
		}
		if text == value {
			if err := el.Click(); err != nil {
				return errs.Element("select suggestion", suggestions.String(), err)
			}
			return nil
		}
	}
	return errs.Element("select suggestion", suggestions.String(), fmt.Errorf("no suggestion with text %q", value))
}
