package wait

import (
	"context"
)

// ForAlert waits until a javascript alert, confirm or prompt is present
// and returns its text.
func (w *Waiter) ForAlert(ctx context.Context) (string, error) {
	var text string
	err := w.poll(ctx, "alert present", func() (bool, error) {
		t, err := w.wd.AlertText()
		if err != nil {
			return false, err
		}
		text = t
		return true, nil
	})
	if err != nil {
		return "", err
	}
	return text, nil
}

// AcceptAlert waits for an alert and accepts it.
func (w *Waiter) AcceptAlert(ctx context.Context) error {
	if _, err := w.ForAlert(ctx); err != nil {
		return err
	}
	return w.wd.AcceptAlert()
}

// DismissAlert waits for an alert and dismisses it.
func (w *Waiter) DismissAlert(ctx context.Context) error {
	if _, err := w.ForAlert(ctx); err != nil {
		return err
	}
	return w.wd.DismissAlert()
}

// AlertSendKeys waits for a prompt, types text into it and accepts it.
func (w *Waiter) AlertSendKeys(ctx context.Context, text string) error {
	if _, err := w.ForAlert(ctx); err != nil {
		return err
	}
	if err := w.wd.SetAlertText(text); err != nil {
		return err
	}
	return w.wd.AcceptAlert()
}
