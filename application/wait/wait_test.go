package wait

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tebeka/selenium"

	"webtest-go/core/errs"
	"webtest-go/core/locator"
)

// fakeElement implements the element surface the waiter inspects.
type fakeElement struct {
	selenium.WebElement

	displayed bool
	enabled   bool
}

func (e *fakeElement) IsDisplayed() (bool, error) { return e.displayed, nil }
func (e *fakeElement) IsEnabled() (bool, error)   { return e.enabled, nil }

// fakeDriver scripts driver answers per poll attempt. Counters are atomic so
// cancellation tests may inspect them from the test goroutine.
type fakeDriver struct {
	selenium.WebDriver

	findCalls atomic.Int64

	// findAfter: FindElement fails until this many calls have been made.
	findAfter int64
	element   *fakeElement

	windowHandles []string
	readyState    string

	titles    []string
	titleIdx  int
	urls      []string
	urlIdx    int
	alertText string
	alertErr  error

	accepted  bool
	dismissed bool
	alertSet  string
}

func (d *fakeDriver) FindElement(by, value string) (selenium.WebElement, error) {
	n := d.findCalls.Add(1)
	if n <= d.findAfter {
		return nil, fmt.Errorf("no such element: %s=%s", by, value)
	}
	return d.element, nil
}

func (d *fakeDriver) FindElements(by, value string) ([]selenium.WebElement, error) {
	if d.element == nil {
		return nil, nil
	}
	return []selenium.WebElement{d.element}, nil
}

func (d *fakeDriver) WindowHandles() ([]string, error) {
	return d.windowHandles, nil
}

func (d *fakeDriver) ExecuteScript(script string, args []interface{}) (interface{}, error) {
	return d.readyState, nil
}

func (d *fakeDriver) Title() (string, error) {
	if d.titleIdx < len(d.titles) {
		t := d.titles[d.titleIdx]
		d.titleIdx++
		return t, nil
	}
	if len(d.titles) == 0 {
		return "", nil
	}
	return d.titles[len(d.titles)-1], nil
}

func (d *fakeDriver) CurrentURL() (string, error) {
	if d.urlIdx < len(d.urls) {
		u := d.urls[d.urlIdx]
		d.urlIdx++
		return u, nil
	}
	if len(d.urls) == 0 {
		return "", nil
	}
	return d.urls[len(d.urls)-1], nil
}

func (d *fakeDriver) AlertText() (string, error) {
	if d.alertErr != nil {
		return "", d.alertErr
	}
	return d.alertText, nil
}

func (d *fakeDriver) AcceptAlert() error             { d.accepted = true; return nil }
func (d *fakeDriver) DismissAlert() error            { d.dismissed = true; return nil }
func (d *fakeDriver) SetAlertText(text string) error { d.alertSet = text; return nil }

// fastWaiter keeps test polling tight.
func fastWaiter(d *fakeDriver) *Waiter {
	return New(d, nil).WithTimeout(200 * time.Millisecond).WithInterval(10 * time.Millisecond)
}

func TestForPresentEventually(t *testing.T) {
	d := &fakeDriver{findAfter: 3, element: &fakeElement{displayed: true, enabled: true}}
	el, err := fastWaiter(d).ForPresent(context.Background(), locator.ID("login"))
	if err != nil {
		t.Fatalf("ForPresent() error: %v", err)
	}
	if el != d.element {
		t.Error("ForPresent() returned a different element than the driver produced")
	}
	if calls := d.findCalls.Load(); calls != 4 {
		t.Errorf("FindElement called %d times, want 4", calls)
	}
}

func TestForPresentTimeout(t *testing.T) {
	d := &fakeDriver{findAfter: 1 << 30}
	start := time.Now()
	_, err := fastWaiter(d).ForPresent(context.Background(), locator.ID("missing"))
	elapsed := time.Since(start)

	if !errors.Is(err, errs.ErrWaitTimeout) {
		t.Fatalf("ForPresent() error = %v, want ErrWaitTimeout", err)
	}
	var te *errs.TimeoutError
	if !errors.As(err, &te) {
		t.Fatalf("ForPresent() error %T, want *errs.TimeoutError", err)
	}
	if te.Timeout != 200*time.Millisecond {
		t.Errorf("TimeoutError.Timeout = %v, want 200ms", te.Timeout)
	}
	if te.Err == nil {
		t.Error("TimeoutError carries no cause from the last attempt")
	}
	if elapsed < 200*time.Millisecond || elapsed > 2*time.Second {
		t.Errorf("wait took %v, want roughly the configured 200ms", elapsed)
	}
}

func TestForVisibleHiddenElement(t *testing.T) {
	d := &fakeDriver{element: &fakeElement{displayed: false}}
	_, err := fastWaiter(d).ForVisible(context.Background(), locator.CSS(".spinner"))
	if !errors.Is(err, errs.ErrWaitTimeout) {
		t.Fatalf("ForVisible() error = %v, want ErrWaitTimeout for a hidden element", err)
	}
}

func TestForClickable(t *testing.T) {
	t.Run("visible and enabled", func(t *testing.T) {
		d := &fakeDriver{element: &fakeElement{displayed: true, enabled: true}}
		if _, err := fastWaiter(d).ForClickable(context.Background(), locator.ID("submit")); err != nil {
			t.Fatalf("ForClickable() error: %v", err)
		}
	})
	t.Run("disabled", func(t *testing.T) {
		d := &fakeDriver{element: &fakeElement{displayed: true, enabled: false}}
		_, err := fastWaiter(d).ForClickable(context.Background(), locator.ID("submit"))
		if !errors.Is(err, errs.ErrWaitTimeout) {
			t.Fatalf("ForClickable() error = %v, want ErrWaitTimeout for a disabled element", err)
		}
	})
}

func TestForAllVisible(t *testing.T) {
	d := &fakeDriver{element: &fakeElement{displayed: true, enabled: true}}
	els, err := fastWaiter(d).ForAllVisible(context.Background(), locator.CSS(".row"))
	if err != nil {
		t.Fatalf("ForAllVisible() error: %v", err)
	}
	if len(els) != 1 {
		t.Errorf("ForAllVisible() returned %d elements, want 1", len(els))
	}
}

func TestCancellationIsNotTimeout(t *testing.T) {
	d := &fakeDriver{findAfter: 1 << 30}
	ctx, cancel := context.WithCancel(context.Background())
	w := New(d, nil).WithTimeout(time.Minute).WithInterval(10 * time.Millisecond)

	done := make(chan error, 1)
	go func() {
		_, err := w.ForPresent(ctx, locator.ID("missing"))
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, errs.ErrWaitCancelled) {
			t.Fatalf("ForPresent() error = %v, want ErrWaitCancelled", err)
		}
		if errors.Is(err, errs.ErrWaitTimeout) {
			t.Error("cancellation must not satisfy ErrWaitTimeout")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("wait did not observe cancellation")
	}
}

func TestForWindowCount(t *testing.T) {
	d := &fakeDriver{windowHandles: []string{"a", "b"}}
	w := fastWaiter(d)

	if err := w.ForWindowCount(context.Background(), 2); err != nil {
		t.Fatalf("ForWindowCount(2) error: %v", err)
	}
	if err := w.ForWindowCount(context.Background(), 3); !errors.Is(err, errs.ErrWaitTimeout) {
		t.Fatalf("ForWindowCount(3) error = %v, want ErrWaitTimeout", err)
	}
}

func TestForPageLoaded(t *testing.T) {
	d := &fakeDriver{readyState: "complete"}
	if err := fastWaiter(d).ForPageLoaded(context.Background()); err != nil {
		t.Fatalf("ForPageLoaded() error: %v", err)
	}

	d = &fakeDriver{readyState: "loading"}
	if err := fastWaiter(d).ForPageLoaded(context.Background()); !errors.Is(err, errs.ErrWaitTimeout) {
		t.Fatalf("ForPageLoaded() error = %v, want ErrWaitTimeout while loading", err)
	}
}

func TestTitleWaitsSoftFail(t *testing.T) {
	t.Run("satisfied", func(t *testing.T) {
		d := &fakeDriver{titles: []string{"Loading...", "Loading...", "Dashboard - Acme"}}
		got, err := fastWaiter(d).ForTitleContains(context.Background(), "Dashboard")
		if err != nil {
			t.Fatalf("ForTitleContains() error: %v", err)
		}
		if got != "Dashboard - Acme" {
			t.Errorf("ForTitleContains() = %q, want the matching title", got)
		}
	})
	t.Run("never satisfied returns last observed", func(t *testing.T) {
		d := &fakeDriver{titles: []string{"Loading..."}}
		got, err := fastWaiter(d).ForTitleContains(context.Background(), "Dashboard")
		if err != nil {
			t.Fatalf("ForTitleContains() must not error on expiry, got: %v", err)
		}
		if got != "Loading..." {
			t.Errorf("ForTitleContains() = %q, want last observed title", got)
		}
	})
	t.Run("exact match", func(t *testing.T) {
		d := &fakeDriver{titles: []string{"Welcome"}}
		got, err := fastWaiter(d).ForTitleIs(context.Background(), "Welcome")
		if err != nil || got != "Welcome" {
			t.Fatalf("ForTitleIs() = %q, %v; want Welcome, nil", got, err)
		}
	})
}

func TestURLWaitsSoftFail(t *testing.T) {
	d := &fakeDriver{urls: []string{"https://acme.test/login", "https://acme.test/home"}}
	got, err := fastWaiter(d).ForURLContains(context.Background(), "/home")
	if err != nil {
		t.Fatalf("ForURLContains() error: %v", err)
	}
	if got != "https://acme.test/home" {
		t.Errorf("ForURLContains() = %q, want the matching URL", got)
	}

	d = &fakeDriver{urls: []string{"https://acme.test/login"}}
	got, err = fastWaiter(d).ForURLIs(context.Background(), "https://acme.test/home")
	if err != nil {
		t.Fatalf("ForURLIs() must not error on expiry, got: %v", err)
	}
	if got != "https://acme.test/login" {
		t.Errorf("ForURLIs() = %q, want last observed URL", got)
	}
}

func TestAlerts(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		d := &fakeDriver{alertText: "Are you sure?"}
		text, err := fastWaiter(d).ForAlert(context.Background())
		if err != nil {
			t.Fatalf("ForAlert() error: %v", err)
		}
		if text != "Are you sure?" {
			t.Errorf("ForAlert() = %q, want alert text", text)
		}
	})
	t.Run("accept", func(t *testing.T) {
		d := &fakeDriver{alertText: "ok?"}
		if err := fastWaiter(d).AcceptAlert(context.Background()); err != nil {
			t.Fatalf("AcceptAlert() error: %v", err)
		}
		if !d.accepted {
			t.Error("alert was not accepted")
		}
	})
	t.Run("dismiss", func(t *testing.T) {
		d := &fakeDriver{alertText: "ok?"}
		if err := fastWaiter(d).DismissAlert(context.Background()); err != nil {
			t.Fatalf("DismissAlert() error: %v", err)
		}
		if !d.dismissed {
			t.Error("alert was not dismissed")
		}
	})
	t.Run("send keys", func(t *testing.T) {
		d := &fakeDriver{alertText: "name?"}
		if err := fastWaiter(d).AlertSendKeys(context.Background(), "jane"); err != nil {
			t.Fatalf("AlertSendKeys() error: %v", err)
		}
		if d.alertSet != "jane" || !d.accepted {
			t.Errorf("prompt got %q accepted=%v, want jane accepted", d.alertSet, d.accepted)
		}
	})
	t.Run("no alert", func(t *testing.T) {
		d := &fakeDriver{alertErr: fmt.Errorf("no such alert")}
		if _, err := fastWaiter(d).ForAlert(context.Background()); !errors.Is(err, errs.ErrWaitTimeout) {
			t.Fatalf("ForAlert() error = %v, want ErrWaitTimeout", err)
		}
	})
}

func TestWithTimeoutDoesNotMutate(t *testing.T) {
	base := New(&fakeDriver{}, nil)
	derived := base.WithTimeout(time.Second)
	if base.Timeout() != DefaultTimeout {
		t.Errorf("base timeout changed to %v", base.Timeout())
	}
	if derived.Timeout() != time.Second {
		t.Errorf("derived timeout = %v, want 1s", derived.Timeout())
	}
}
