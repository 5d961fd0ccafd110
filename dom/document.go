package dom

// GetElementsByTagName performs a pre-order traversal from the document
// node and returns every Element whose Tag equals name. Lookup is
// case-sensitive against the stored lowercase tag; callers are expected to
// pass a lowercase name.
func (d *Document) GetElementsByTagName(name string) []*Element {
	var out []*Element
	walk(d, func(e *Element) {
		if e.Tag == name {
			out = append(out, e)
		}
	})
	return out
}

// GetTextContent concatenates, in document order, the payload of every
// Text node in the subtree rooted at n.
func GetTextContent(n Node) string {
	var b []byte
	walkText(n, func(s string) { b = append(b, s...) })
	return string(b)
}

// Census counts every element tag in the subtree rooted at n, pre-order.
func Census(n Node) map[string]int {
	counts := make(map[string]int)
	walk(n, func(e *Element) { counts[e.Tag]++ })
	return counts
}

// walk visits every Element in the subtree rooted at n, in pre-order.
func walk(n Node, visit func(*Element)) {
	if c, ok := n.(Container); ok {
		for _, child := range c.childNodes() {
			if e, ok := child.(*Element); ok {
				visit(e)
			}
			walk(child, visit)
		}
	}
}

func walkText(n Node, visit func(string)) {
	switch v := n.(type) {
	case *Text:
		visit(v.Data)
	case Container:
		for _, child := range v.childNodes() {
			walkText(child, visit)
		}
	}
}
