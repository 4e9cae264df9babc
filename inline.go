package cssinline

import (
	"bytes"
	"io"

	"golang.org/x/net/html"
)

// Options configure an Inliner.
type Options struct {
	// RemoveStyleTags removes the style elements from the document once
	// their rules have been applied.
	RemoveStyleTags bool
}

// DefaultOptions returns the options used by Inline.
func DefaultOptions() Options {
	return Options{}
}

// WithRemoveStyleTags returns a copy of the options with RemoveStyleTags set.
func (o Options) WithRemoveStyleTags(remove bool) Options {
	o.RemoveStyleTags = remove
	return o
}

// Build returns an Inliner using these options.
func (o Options) Build() *Inliner {
	return NewInliner(o)
}

// Inliner applies the style elements of HTML documents to the elements they
// select. An Inliner holds no state besides its options and can be used from
// several goroutines.
type Inliner struct {
	options Options
}

// NewInliner returns an Inliner with the given options.
func NewInliner(options Options) *Inliner {
	return &Inliner{options: options}
}

// Options returns the options of the inliner.
func (in *Inliner) Options() Options {
	return in.options
}

// Inline inlines the CSS of htmltext with the default options and returns the
// resulting HTML.
func Inline(htmltext string) (string, error) {
	return NewInliner(DefaultOptions()).Inline(htmltext)
}

// Inline moves the rules of all style elements in htmltext into style
// attributes and returns the serialized document.
func (in *Inliner) Inline(htmltext string) (string, error) {
	var buf bytes.Buffer
	if err := in.InlineTo(htmltext, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// InlineTo is like Inline but writes the document to w. Nothing is written
// if the CSS of a style element cannot be parsed. A failing writer results
// in an *IOError.
func (in *Inliner) InlineTo(htmltext string, w io.Writer) error {
	doc, err := parseDocument(htmltext)
	if err != nil {
		return &ParseError{Kind: Unknown, Message: err.Error()}
	}
	styles, err := doc.styleElements()
	if err != nil {
		tracer().Errorf("cannot locate style elements: %v", err)
		return &ParseError{Kind: Unknown, Message: Unknown.message("")}
	}
	tracer().Debugf("found %d style elements", len(styles))
	for _, style := range styles {
		if css, ok := textContent(style); ok {
			if err = doc.applyCSS(css); err != nil {
				return err
			}
		}
		if in.options.RemoveStyleTags {
			doc.detach(style)
		}
	}
	if err = doc.serialize(w); err != nil {
		return &IOError{Err: err}
	}
	return nil
}

// applyCSS parses the stylesheet and sets the style attribute of every
// element selected by a rule. Rules with a selector that cannot be compiled
// are skipped.
func (d *document) applyCSS(css string) error {
	rules, err := ParseStylesheet(css)
	if err != nil {
		return err
	}
	for _, rule := range rules {
		var matches []*html.Node
		if matches, err = Select(d.root(), rule.Selector); err != nil {
			tracer().Debugf("skipping rule %q: %v", rule.Selector, err)
			continue
		}
		tracer().Debugf("rule %q matches %d elements", rule.Selector, len(matches))
		d.setAttribute(matches, "style", rule.Block)
	}
	return nil
}
