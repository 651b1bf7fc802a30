package core

import "fmt"

// Compiled is a composite content tree with every embedded widget replaced by
// a Ref placeholder.
type Compiled struct {
	Content Term
	Widgets []Widget
}

// IDs returns the nested widget ids in tree order.
func (c Compiled) IDs() []string {
	out := make([]string, 0, len(c.Widgets))
	for _, w := range c.Widgets {
		out = append(out, w.WidgetID())
	}
	return out
}

// Compile walks content collecting embedded widgets. A widget id may occur
// once per tree; embedding the same widget twice reports ErrDuplicateID.
func Compile(content Term) (Compiled, error) {
	c := Compiled{}
	seen := map[string]bool{}
	out, err := compileTerm(content, &c, seen)
	if err != nil {
		return Compiled{}, err
	}
	c.Content = out
	return c, nil
}

func compileTerm(t Term, c *Compiled, seen map[string]bool) (Term, error) {
	args := make([]any, 0, len(t.Args))
	for _, a := range t.Args {
		switch v := a.(type) {
		case Widget:
			id := defaultID(v)
			if seen[id] {
				return Term{}, fmt.Errorf("%w: %q", ErrDuplicateID, id)
			}
			seen[id] = true
			c.Widgets = append(c.Widgets, v)
			args = append(args, Ref(id))
		case Term:
			nested, err := compileTerm(v, c, seen)
			if err != nil {
				return Term{}, err
			}
			args = append(args, nested)
		default:
			args = append(args, a)
		}
	}
	return Term{Name: t.Name, Args: args}, nil
}

// Expand replaces every Ref in content with the primitive term of the
// matching definition. Unknown refs are left in place for the host to report.
func Expand(content Term, defs []Definition) Term {
	byID := make(map[string]Definition, len(defs))
	for _, d := range defs {
		byID[d.ID] = d
	}
	return expandTerm(content, byID)
}

func expandTerm(t Term, defs map[string]Definition) Term {
	if t.Name == RefName {
		id, _ := t.ID()
		if d, ok := defs[id]; ok {
			return d.Term()
		}
		return t
	}
	args := make([]any, 0, len(t.Args))
	for _, a := range t.Args {
		if nested, ok := a.(Term); ok {
			args = append(args, expandTerm(nested, defs))
			continue
		}
		args = append(args, a)
	}
	return Term{Name: t.Name, Args: args}
}
