package cssinline

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func parseForTest(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func ids(nodes []*html.Node) string {
	ret := []string{}
	for _, n := range nodes {
		for _, a := range n.Attr {
			if a.Key == "id" {
				ret = append(ret, a.Val)
			}
		}
	}
	return strings.Join(ret, ",")
}

func TestSelectDocumentOrder(t *testing.T) {
	doc := parseForTest(t, `<div id="a"><p id="b" class="x"></p></div><p id="c"></p><span id="d" class="x"></span>`)
	nodes, err := Select(doc, ".x, p")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := ids(nodes), "b,c,d"; got != want {
		t.Errorf("Select(.x, p) = %s, want %s", got, want)
	}
}

func TestSelectCombinators(t *testing.T) {
	doc := parseForTest(t, `<div id="a"><p id="b"></p><p id="c" lang="en"></p></div><p id="d"></p>`)
	testdata := []struct {
		selector string
		want     string
	}{
		{"div > p", "b,c"},
		{"div p + p", "c"},
		{"#b ~ p", "c"},
		{"p[lang]", "c"},
		{"p:last-child", "c,d"},
		{" div ", "a"},
		{"table", ""},
	}
	for _, td := range testdata {
		nodes, err := Select(doc, td.selector)
		if err != nil {
			t.Errorf("Select(%q): %v", td.selector, err)
			continue
		}
		if got := ids(nodes); got != td.want {
			t.Errorf("Select(%q) = %q, want %q", td.selector, got, td.want)
		}
	}
}

func TestSelectSubtree(t *testing.T) {
	doc := parseForTest(t, `<div id="a"><p id="b"></p></div><p id="c"></p>`)
	div, err := Select(doc, "div")
	if err != nil || len(div) != 1 {
		t.Fatalf("cannot find div: %v", err)
	}
	nodes, err := Select(div[0], "p")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := ids(nodes), "b"; got != want {
		t.Errorf("Select(div, p) = %s, want %s", got, want)
	}
}

func TestSelectInvalid(t *testing.T) {
	doc := parseForTest(t, `<p></p>`)
	for _, sel := range []string{"", "p:no-such-class", "p::after", "p[", "/* c */ p"} {
		if _, err := Select(doc, sel); err == nil {
			t.Errorf("Select(%q): expected an error", sel)
		}
	}
}
