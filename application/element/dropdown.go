package element

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tebeka/selenium"

	"webtest-go/core/errs"
	"webtest-go/core/locator"
)

// selectControl waits for the element and verifies it is a native <select>
// control. Anything else is an element error.
func (i *Interactor) selectControl(ctx context.Context, loc locator.Locator, timeout []time.Duration) (selenium.WebElement, error) {
	el, err := i.waiter.WithTimeout(pick(timeout)).ForVisible(ctx, loc)
	if err != nil {
		return nil, i.classify("select", loc, err)
	}
	tag, err := el.TagName()
	if err != nil {
		return nil, errs.Element("select", loc.String(), err)
	}
	if !strings.EqualFold(tag, "select") {
		return nil, errs.Element("select", loc.String(), fmt.Errorf("element is a <%s>, not a <select> control", tag))
	}
	return el, nil
}

func (i *Interactor) options(el selenium.WebElement, loc locator.Locator) ([]selenium.WebElement, error) {
	opts, err := el.FindElements(selenium.ByTagName, "option")
	if err != nil {
		return nil, errs.Element("list options", loc.String(), err)
	}
	return opts, nil
}

// SelectByIndex selects the index-th option of a <select> control.
func (i *Interactor) SelectByIndex(ctx context.Context, loc locator.Locator, index int, timeout ...time.Duration) error {
	el, err := i.selectControl(ctx, loc, timeout)
	if err != nil {
		return err
	}
	opts, err := i.options(el, loc)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(opts) {
		return errs.Element("select by index", loc.String(), fmt.Errorf("index %d out of range, control has %d options", index, len(opts)))
	}
	if err := opts[index].Click(); err != nil {
		return errs.Element("select by index", loc.String(), err)
	}
	return nil
}

// SelectByVisibleText selects the option whose rendered text equals text.
func (i *Interactor) SelectByVisibleText(ctx context.Context, loc locator.Locator, text string, timeout ...time.Duration) error {
	el, err := i.selectControl(ctx, loc, timeout)
	if err != nil {
		return err
	}
	opts, err := i.options(el, loc)
	if err != nil {
		return err
	}
	for _, opt := range opts {
		optText, err := opt.Text()
		if err != nil {
			continue
		}
		if optText == text {
			if err := opt.Click(); err != nil {
				return errs.Element("select by text", loc.String(), err)
			}
			return nil
		}
	}
	return errs.Element("select by text", loc.String(), fmt.Errorf("no option with text %q", text))
}

// SelectByValue selects the option whose value attribute equals value.
func (i *Interactor) SelectByValue(ctx context.Context, loc locator.Locator, value string, timeout ...time.Duration) error {
	el, err := i.selectControl(ctx, loc, timeout)
	if err != nil {
		return err
	}
	opts, err := i.options(el, loc)
	if err != nil {
		return err
	}
	for _, opt := range opts {
		optValue, err := opt.GetAttribute("value")
		if err != nil {
			continue
		}
		if optValue == value {
			if err := opt.Click(); err != nil {
				return errs.Element("select by value", loc.String(), err)
			}
			return nil
		}
	}
	return errs.Element("select by value", loc.String(), fmt.Errorf("no option with value %q", value))
}

// Options returns the rendered text of every option in a <select> control.
func (i *Interactor) Options(ctx context.Context, loc locator.Locator, timeout ...time.Duration) ([]string, error) {
	el, err := i.selectControl(ctx, loc, timeout)
	if err != nil {
		return nil, err
	}
	opts, err := i.options(el, loc)
	if err != nil {
		return nil, err
	}
	texts := make([]string, 0, len(opts))
	for _, opt := range opts {
		text, err := opt.Text()
		if err != nil {
			continue
		}
		texts = append(texts, text)
	}
	return texts, nil
}

// OptionCount returns the number of options in a <select> control.
func (i *Interactor) OptionCount(ctx context.Context, loc locator.Locator, timeout ...time.Duration) (int, error) {
	el, err := i.selectControl(ctx, loc, timeout)
	if err != nil {
		return 0, err
	}
	opts, err := i.options(el, loc)
	if err != nil {
		return 0, err
	}
	return len(opts), nil
}
