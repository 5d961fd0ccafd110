package dom

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
)

// voidTags are the elements that never have children: their start tag is
// also their end tag. Render uses this table to avoid writing a closing
// tag for them; the tree constructor (package tree) uses its own copy to
// decide when to pop them immediately.
var voidTags = map[string]bool{
	"link": true,
	"meta": true,
	"base": true,
}

// Render writes a best-effort HTML-shaped serialization of n to w. It is a
// debug/test complement to the read-only query surface: the core parser
// never calls it and nothing in this package depends on its output being
// stable wire format. Text is escaped with golang.org/x/net/html.EscapeString.
func Render(w io.Writer, n Node) error {
	switch v := n.(type) {
	case *Document:
		for _, child := range v.Children {
			if err := Render(w, child); err != nil {
				return err
			}
		}
		return nil
	case *Element:
		return renderElement(w, v)
	case *Text:
		_, err := io.WriteString(w, html.EscapeString(v.Data))
		return err
	default:
		return fmt.Errorf("dom: Render: unknown node type %T", n)
	}
}

func renderElement(w io.Writer, e *Element) error {
	if _, err := fmt.Fprintf(w, "<%s", e.Tag); err != nil {
		return err
	}
	for name, value := range e.Attrs {
		if _, err := fmt.Fprintf(w, ` %s="%s"`, name, html.EscapeString(value)); err != nil {
			return err
		}
	}
	if voidTags[e.Tag] {
		_, err := io.WriteString(w, ">")
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	for _, child := range e.Children {
		if err := Render(w, child); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "</%s>", e.Tag)
	return err
}
