package mockfx

// Tree organizes test payloads into a finite hierarchy: a Case leaf, a Group
// of subtrees executed in order, or a Label that contributes one context-name
// segment while its subtree runs. The payload type is free; the runner in
// this package uses Tree[Step].
type Tree[U any] struct {
	kind nodeKind
	leaf U
	name string
	kids []Tree[U]
}

type nodeKind int

const (
	nodeCase nodeKind = iota
	nodeGroup
	nodeLabel
)

// Case wraps one payload as a leaf.
func Case[U any](payload U) Tree[U] {
	return Tree[U]{kind: nodeCase, leaf: payload}
}

// Group sequences subtrees; children execute in the order given.
func Group[U any](children ...Tree[U]) Tree[U] {
	return Tree[U]{kind: nodeGroup, kids: children}
}

// Label names a subtree. Nested labels concatenate into a path visible to
// every leaf underneath; the ambient path reverts once the subtree finishes.
func Label[U any](name string, child Tree[U]) Tree[U] {
	return Tree[U]{kind: nodeLabel, name: name, kids: []Tree[U]{child}}
}

// Walk visits every leaf in order, passing the label path leading to it.
// The path is built afresh for each label push, so visitors may retain it
// and repeated traversals never observe stale context.
func Walk[U any](tr Tree[U], visit func(path []string, payload U)) {
	walk(tr, nil, visit)
}

func walk[U any](tr Tree[U], path []string, visit func(path []string, payload U)) {
	switch tr.kind {
	case nodeCase:
		visit(path, tr.leaf)
	case nodeGroup:
		for _, kid := range tr.kids {
			walk(kid, path, visit)
		}
	case nodeLabel:
		child := make([]string, len(path)+1)
		copy(child, path)
		child[len(path)] = tr.name
		walk(tr.kids[0], child, visit)
	}
}
