// Package cssinline moves the CSS rules of an HTML document's style elements
// into style attributes of the elements they select.
//
// This package can be used to prepare HTML for e-mail clients and other
// consumers that ignore embedded stylesheets. Every rule's declaration block
// is copied verbatim into the style attribute of each matching element. Rules
// are applied in source order and a later rule replaces the style attribute
// set by an earlier one; there is no cascade and no merging of declarations.
// At-rules are rejected.
//
// Tracing goes to the schuko tracer with key "cssinline".
package cssinline

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cssinline'.
func tracer() tracing.Trace {
	return tracing.Select("cssinline")
}
