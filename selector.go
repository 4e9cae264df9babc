package cssinline

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// compileSelector compiles a comma separated selector list.
func compileSelector(selectorList string) (cascadia.Selector, error) {
	return cascadia.Compile(strings.TrimSpace(selectorList))
}

// Select returns the descendants of root which match at least one selector
// of the comma separated selectorList. The elements are in document order and
// each element is returned once, even if it matches several selectors of the
// list.
func Select(root *html.Node, selectorList string) ([]*html.Node, error) {
	sel, err := compileSelector(selectorList)
	if err != nil {
		return nil, err
	}
	return cascadia.QueryAll(root, sel), nil
}
