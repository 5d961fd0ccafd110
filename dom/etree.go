package dom

import "github.com/beevik/etree"

// ToEtree converts the parsed tree into a github.com/beevik/etree document,
// giving callers interop with the broader Go XML tooling ecosystem (for
// serialization, diffing, or XPath-style lookups) without reimplementing
// any of it here. Elements become etree.Elements with their attributes
// copied verbatim; Text nodes become etree.CharData.
func (d *Document) ToEtree() *etree.Document {
	out := etree.NewDocument()
	for _, child := range d.Children {
		if e, ok := child.(*Element); ok {
			appendEtree(&out.Element, e)
		}
	}
	return out
}

func appendEtree(parent *etree.Element, e *Element) {
	el := parent.CreateElement(e.Tag)
	for name, value := range e.Attrs {
		el.CreateAttr(name, value)
	}
	for _, child := range e.Children {
		switch c := child.(type) {
		case *Element:
			appendEtree(el, c)
		case *Text:
			el.CreateText(c.Data)
		}
	}
}
