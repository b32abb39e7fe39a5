package element

import (
	"context"
	"strings"
	"testing"

	"webtest-go/core/locator"
)

func TestScrollIntoView(t *testing.T) {
	el := visibleElement()
	d := &fakeDriver{elements: map[string][]*fakeElement{"footer": {el}}}

	if err := newInteractor(d).ScrollIntoView(context.Background(), locator.ID("footer")); err != nil {
		t.Fatalf("ScrollIntoView() error: %v", err)
	}
	if len(d.scripts) != 1 || !strings.Contains(d.scripts[0], "scrollIntoView") {
		t.Errorf("executed %v, want a scrollIntoView call", d.scripts)
	}
}

func TestScrollHelpers(t *testing.T) {
	d := &fakeDriver{}
	i := newInteractor(d)

	if err := i.ScrollToTop(); err != nil {
		t.Fatalf("ScrollToTop() error: %v", err)
	}
	if err := i.ScrollBy(400); err != nil {
		t.Fatalf("ScrollBy() error: %v", err)
	}
	if len(d.scripts) != 2 {
		t.Fatalf("executed %d scripts, want 2", len(d.scripts))
	}
	if !strings.Contains(d.scripts[0], "scrollTo(0, 0)") {
		t.Errorf("first script %q, want a scrollTo call", d.scripts[0])
	}
	if !strings.Contains(d.scripts[1], "scrollBy(0, 400)") {
		t.Errorf("second script %q, want a scrollBy call", d.scripts[1])
	}
}

func TestClickViaScript(t *testing.T) {
	el := &fakeElement{displayed: false} // hidden element still reachable via script
	d := &fakeDriver{elements: map[string][]*fakeElement{"overlay-btn": {el}}}

	if err := newInteractor(d).ClickViaScript(context.Background(), locator.ID("overlay-btn")); err != nil {
		t.Fatalf("ClickViaScript() error: %v", err)
	}
	if len(d.scripts) != 1 || !strings.Contains(d.scripts[0], "click()") {
		t.Errorf("executed %v, want a scripted click", d.scripts)
	}
}

func TestPageText(t *testing.T) {
	d := &scriptResultDriver{result: "Terms and Conditions"}
	text, err := newInteractor(d).PageText()
	if err != nil {
		t.Fatalf("PageText() error: %v", err)
	}
	if text != "Terms and Conditions" {
		t.Errorf("PageText() = %q, want the script result", text)
	}

	d = &scriptResultDriver{result: 42}
	if _, err := newInteractor(d).PageText(); err == nil {
		t.Error("PageText() with a non-string result succeeded, want an error")
	}
}

func TestTitleViaScript(t *testing.T) {
	d := &scriptResultDriver{result: "Checkout"}
	title, err := newInteractor(d).TitleViaScript()
	if err != nil {
		t.Fatalf("TitleViaScript() error: %v", err)
	}
	if title != "Checkout" {
		t.Errorf("TitleViaScript() = %q, want the script result", title)
	}
}

func TestRefresh(t *testing.T) {
	d := &fakeDriver{}
	if err := newInteractor(d).Refresh(); err != nil {
		t.Fatalf("Refresh() error: %v", err)
	}
	if len(d.scripts) != 1 || !strings.Contains(d.scripts[0], "history.go(0)") {
		t.Errorf("executed %v, want a history reload", d.scripts)
	}
}

// scriptResultDriver returns a fixed value from script execution.
type scriptResultDriver struct {
	fakeDriver

	result interface{}
}

func (d *scriptResultDriver) ExecuteScript(script string, args []interface{}) (interface{}, error) {
	return d.result, nil
}
