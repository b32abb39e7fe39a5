package wait

import (
	"context"
	"fmt"

	"github.com/tebeka/selenium"

	"webtest-go/core/locator"
)

// ForFrame waits until the frame matching loc is available, then switches
// the driver into it.
func (w *Waiter) ForFrame(ctx context.Context, loc locator.Locator) error {
	return w.poll(ctx, fmt.Sprintf("frame %s available", loc), func() (bool, error) {
		el, err := w.wd.FindElement(loc.By, loc.Value)
		if err != nil {
			return false, err
		}
		if err := w.wd.SwitchFrame(el); err != nil {
			return false, err
		}
		return true, nil
	})
}

// ForFrameByIndex waits until at least index+1 frames exist on the page,
// then switches into the index-th one (iframe elements in document order).
func (w *Waiter) ForFrameByIndex(ctx context.Context, index int) error {
	if index < 0 {
		return fmt.Errorf("frame index must not be negative: %d", index)
	}
	return w.poll(ctx, fmt.Sprintf("frame index %d available", index), func() (bool, error) {
		frames, err := w.wd.FindElements(selenium.ByTagName, "iframe")
		if err != nil {
			return false, err
		}
		if index >= len(frames) {
			return false, nil
		}
		if err := w.wd.SwitchFrame(frames[index]); err != nil {
			return false, err
		}
		return true, nil
	})
}

// ForFrameByID waits until the frame with the given element id is
// available, then switches into it.
func (w *Waiter) ForFrameByID(ctx context.Context, id string) error {
	return w.poll(ctx, fmt.Sprintf("frame %q available", id), func() (bool, error) {
		if err := w.wd.SwitchFrame(id); err != nil {
			return false, err
		}
		return true, nil
	})
}

// SwitchToTop leaves any frame and returns to the top-level browsing
// context.
func (w *Waiter) SwitchToTop() error {
	return w.wd.SwitchFrame(nil)
}
