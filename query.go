package roster

import (
	"github.com/TheBitDrifter/mask"
)

type Operation int

const (
	OpAnd Operation = iota
	OpOr
	OpNot
)

type compositeNode struct {
	op       Operation
	children []QueryNode
	groups   []string
}

type query struct {
	root QueryNode
}

func newQuery() Query {
	return &query{}
}

func newCompositeNode(op Operation, groups []string) *compositeNode {
	return &compositeNode{
		op:       op,
		children: make([]QueryNode, 0),
		groups:   groups,
	}
}

func (n *compositeNode) Evaluate(m mask.Mask, idx Index) bool {
	// Build mask at evaluation time; groups with no query bit cannot be
	// held by any entity mask.
	var nodeMask mask.Mask
	unregistered := false
	for _, group := range n.groups {
		bit, ok := idx.BitFor(group)
		if !ok {
			unregistered = true
			continue
		}
		nodeMask.Mark(bit)
	}

	switch n.op {
	case OpAnd:
		if unregistered || !m.ContainsAll(nodeMask) {
			return false
		}
		for _, child := range n.children {
			if !child.Evaluate(m, idx) {
				return false
			}
		}
		return true

	case OpOr:
		if m.ContainsAny(nodeMask) {
			return true
		}
		for _, child := range n.children {
			if child.Evaluate(m, idx) {
				return true
			}
		}
		return false

	case OpNot:
		if len(n.children) == 0 {
			return m.ContainsNone(nodeMask)
		}
		for _, child := range n.children {
			if child.Evaluate(m, idx) {
				return false
			}
		}
		return !m.ContainsAny(nodeMask)
	}
	return false
}

func (q *query) And(items ...interface{}) QueryNode {
	groups, children := q.processItems(items...)
	node := newCompositeNode(OpAnd, groups)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) Or(items ...interface{}) QueryNode {
	groups, children := q.processItems(items...)
	node := newCompositeNode(OpOr, groups)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) Not(items ...interface{}) QueryNode {
	groups, children := q.processItems(items...)
	node := newCompositeNode(OpNot, groups)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) processItems(items ...interface{}) ([]string, []QueryNode) {
	groups := make([]string, 0)
	children := make([]QueryNode, 0)

	for _, item := range items {
		switch v := item.(type) {
		case string:
			groups = append(groups, v)
		case []string:
			groups = append(groups, v...)
		case QueryNode:
			children = append(children, v)
		}
	}

	return groups, children
}

func (q *query) Evaluate(m mask.Mask, idx Index) bool {
	if q.root == nil {
		return false
	}
	return q.root.Evaluate(m, idx)
}
