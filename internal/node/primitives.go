package node

// Tuple is a fixed-arity ordered sequence of heterogeneous children. Its
// arity is fixed at construction; children are visited in declared order.
type Tuple struct {
	Primitive
	items []Node
}

// NewTuple builds a tuple over the given children.
func NewTuple(items ...Node) *Tuple {
	return &Tuple{items: items}
}

// Len reports the tuple's arity.
func (t *Tuple) Len() int { return len(t.items) }

// VisitChildren visits the tuple's children in declared order.
func (t *Tuple) VisitChildren(visit func(Node)) {
	for _, c := range t.items {
		if c != nil {
			visit(c)
		}
	}
}

// BranchTag identifies which branch of an Either is active.
type BranchTag uint8

const (
	First BranchTag = iota
	Second
)

// Either holds exactly one of two branches, selected at construction.
// Only the active branch is ever visited; the inactive branch contributes
// nothing to any pass.
type Either struct {
	Primitive
	Tag   BranchTag
	Left  Node
	Right Node
}

// If selects then when cond is true and otherwise else, producing an
// Either tagged accordingly.
func If(cond bool, then, otherwise Node) *Either {
	e := &Either{Left: then, Right: otherwise}
	if !cond {
		e.Tag = Second
	}
	return e
}

// Active returns the selected branch.
func (e *Either) Active() Node {
	if e.Tag == First {
		return e.Left
	}
	return e.Right
}

// VisitChildren visits only the active branch.
func (e *Either) VisitChildren(visit func(Node)) {
	if c := e.Active(); c != nil {
		visit(c)
	}
}

// Option holds zero or one child.
type Option struct {
	Primitive
	Child Node
}

// When yields child when cond is true and an empty Option otherwise.
func When(cond bool, child Node) *Option {
	if !cond {
		return &Option{}
	}
	return &Option{Child: child}
}

// VisitChildren visits the child when present.
func (o *Option) VisitChildren(visit func(Node)) {
	if o.Child != nil {
		visit(o.Child)
	}
}

// Group is a materialized ordered list of homogeneous children.
type Group struct {
	Primitive
	Children []Node
}

// NewGroup builds a group over the given children.
func NewGroup(children ...Node) *Group {
	return &Group{Children: children}
}

// VisitChildren visits the children in list order.
func (g *Group) VisitChildren(visit func(Node)) {
	for _, c := range g.Children {
		if c != nil {
			visit(c)
		}
	}
}

// ForEach lazily maps an ordered data slice to child nodes through a pure
// transform. Children are produced on each visitation, in source order;
// iteration order always equals the slice order.
type ForEach[T any] struct {
	Primitive
	Data   []T
	Render func(T) Node
}

// Each builds a ForEach over data.
func Each[T any](data []T, render func(T) Node) *ForEach[T] {
	return &ForEach[T]{Data: data, Render: render}
}

// VisitChildren maps and visits each data item in source order.
func (f *ForEach[T]) VisitChildren(visit func(Node)) {
	for _, d := range f.Data {
		if c := f.Render(d); c != nil {
			visit(c)
		}
	}
}

// Text is a leaf holding plain text. The markup renderer escapes its
// content for the element-text context.
type Text struct {
	Primitive
	Content string
}

// NewText builds a text leaf.
func NewText(s string) *Text { return &Text{Content: s} }

// VisitChildren is a no-op; text is terminal.
func (*Text) VisitChildren(func(Node)) {}

// Raw is a leaf emitted verbatim, without escaping. Reserved for
// framework-generated markup; never feed it user input.
type Raw struct {
	Primitive
	Content string
}

// NewRaw builds a raw-markup leaf.
func NewRaw(s string) *Raw { return &Raw{Content: s} }

// VisitChildren is a no-op; raw markup is terminal.
func (*Raw) VisitChildren(func(Node)) {}
