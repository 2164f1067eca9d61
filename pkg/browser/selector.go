package browser

import "fmt"

type selectorKind int

const (
	kindCSS selectorKind = iota
	kindXPath
)

// By locates elements on a page.
type By struct {
	kind  selectorKind
	value string
}

// CSS selects by CSS selector.
func CSS(selector string) By { return By{kind: kindCSS, value: selector} }

// XPath selects by XPath expression.
func XPath(expr string) By { return By{kind: kindXPath, value: expr} }

// ID selects the element with the given id attribute.
func ID(id string) By { return CSS("#" + id) }

// ClassName selects elements carrying a single class name.
func ClassName(name string) By { return CSS("." + name) }

func (b By) String() string {
	switch b.kind {
	case kindXPath:
		return fmt.Sprintf("xpath(%s)", b.value)
	default:
		return fmt.Sprintf("css(%s)", b.value)
	}
}
