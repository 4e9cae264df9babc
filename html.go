package cssinline

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// document is the HTML tree an inliner works on. The tree is mutated in
// place; nodes are stable pointers so that removing a subtree does not
// invalidate nodes collected earlier.
type document struct {
	doc *goquery.Document
}

// parseDocument reads the HTML text. The parser is lenient and builds a tree
// for any input, closing and re-parenting elements the way a browser does.
func parseDocument(htmltext string) (*document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmltext))
	if err != nil {
		return nil, err
	}
	return &document{doc: doc}, nil
}

func (d *document) root() *html.Node {
	return d.doc.Nodes[0]
}

// styleElements returns all style elements of the document in document
// order.
func (d *document) styleElements() ([]*html.Node, error) {
	sel, err := compileSelector("style")
	if err != nil {
		return nil, err
	}
	return d.doc.FindMatcher(sel).Nodes, nil
}

// setAttribute sets the attribute on all nodes, replacing an existing value.
func (d *document) setAttribute(nodes []*html.Node, name, value string) {
	if len(nodes) == 0 {
		return
	}
	d.doc.FindNodes(nodes...).SetAttr(name, value)
}

// detach removes the node and its subtree from the tree.
func (d *document) detach(n *html.Node) {
	d.doc.FindNodes(n).Remove()
}

// serialize writes the document to w.
func (d *document) serialize(w io.Writer) error {
	return goquery.Render(w, d.doc.Selection)
}

// textContent returns the text of a raw text element such as <style>. The
// second return value is false if the element has no text child.
func textContent(n *html.Node) (string, bool) {
	if c := n.FirstChild; c != nil && c.Type == html.TextNode {
		return c.Data, true
	}
	return "", false
}
