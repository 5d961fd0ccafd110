package dom

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// selectEnv is the evaluation environment exposed to Select expressions.
// Field names are chosen to read naturally in an expr.Compile string, e.g.
// `tag == "a" && attr["href"] != ""`.
type selectEnv struct {
	Tag  string            `expr:"tag"`
	Attr map[string]string `expr:"attr"`
	Text string            `expr:"text"`
}

// Select is a richer complement to GetElementsByTagName: it pre-order
// walks the tree and collects every Element for which exprStr, compiled
// once against selectEnv and evaluated per element, returns true. It is
// built on github.com/expr-lang/expr.
func (d *Document) Select(exprStr string) ([]*Element, error) {
	program, err := expr.Compile(exprStr, expr.Env(selectEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile select expression %q: %w", exprStr, err)
	}

	var out []*Element
	var walkErr error
	walk(d, func(e *Element) {
		if walkErr != nil {
			return
		}
		env := selectEnv{
			Tag:  e.Tag,
			Attr: e.Attrs,
			Text: GetTextContent(e),
		}
		result, err := expr.Run(program, env)
		if err != nil {
			walkErr = fmt.Errorf("evaluate select expression %q on <%s>: %w", exprStr, e.Tag, err)
			return
		}
		if match, _ := result.(bool); match {
			out = append(out, e)
		}
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return out, nil
}
