// Package locator defines how page elements are found. A Locator is a
// stateless, reusable pair of strategy and value; it carries no lifecycle
// and can be shared freely between goroutines.
package locator

import "github.com/tebeka/selenium"

// Locator describes how to find an element on a page.
type Locator struct {
	// By is the lookup strategy, one of the WebDriver strategy names.
	By string
	// Value is the strategy-specific selector text.
	Value string
}

// ID locates by element id.
func ID(value string) Locator { return Locator{By: selenium.ByID, Value: value} }

// Name locates by the name attribute.
func Name(value string) Locator { return Locator{By: selenium.ByName, Value: value} }

// CSS locates by CSS selector.
func CSS(value string) Locator { return Locator{By: selenium.ByCSSSelector, Value: value} }

// XPath locates by XPath expression.
func XPath(value string) Locator { return Locator{By: selenium.ByXPATH, Value: value} }

// LinkText locates an anchor by its exact text.
func LinkText(value string) Locator { return Locator{By: selenium.ByLinkText, Value: value} }

// PartialLinkText locates an anchor by a text fragment.
func PartialLinkText(value string) Locator {
	return Locator{By: selenium.ByPartialLinkText, Value: value}
}

// ClassName locates by CSS class name.
func ClassName(value string) Locator { return Locator{By: selenium.ByClassName, Value: value} }

// TagName locates by tag name.
func TagName(value string) Locator { return Locator{By: selenium.ByTagName, Value: value} }

// String renders the locator as "by=value" for logs and error messages.
func (l Locator) String() string { return l.By + "=" + l.Value }

// IsZero reports whether the locator is empty.
func (l Locator) IsZero() bool { return l.By == "" && l.Value == "" }
