// SPDX-License-Identifier: MPL-2.0

package divatree

import (
	"strconv"
	"strings"
)

const (
	// Separator splits a line into its key and value.
	Separator = "="
	// PathSeparator splits a key into path segments.
	PathSeparator = "."
	// CommentMarker starts a line that Parse ignores.
	CommentMarker = "#"
	// LengthKey is the child name that bounds the size of an array branch.
	LengthKey = "length"

	// maxListIndex caps array indices so a stray large index cannot force a huge allocation.
	maxListIndex = 1 << 16
)

// Node is one element of a parsed divatree document. A node is either a leaf
// holding a raw value or a branch holding named children in first-seen order.
type Node struct {
	name     string
	value    string
	leaf     bool
	children []*Node
	index    map[string]*Node
}

func newBranch(name string) *Node {
	return &Node{name: name, index: make(map[string]*Node)}
}

// Name returns the path segment naming this node. The root has an empty name.
func (n *Node) Name() string { return n.name }

// IsLeaf reports whether the node holds a value rather than children.
func (n *Node) IsLeaf() bool { return n.leaf }

// Value returns the raw value of a leaf node, or "" for a branch.
func (n *Node) Value() string { return n.value }

// Len returns the number of direct children.
func (n *Node) Len() int { return len(n.children) }

// Children returns the direct children in first-seen order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Child returns the direct child with the given name.
func (n *Node) Child(name string) (*Node, bool) {
	if n.leaf {
		return nil, false
	}
	c, ok := n.index[name]
	return c, ok
}

// Lookup walks a dotted path from this node.
func (n *Node) Lookup(path string) (*Node, bool) {
	cur := n
	for _, seg := range strings.Split(path, PathSeparator) {
		next, ok := cur.Child(seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Interface converts the node into plain Go values: a leaf becomes its raw
// string and a branch becomes a map[string]any keyed by child name.
func (n *Node) Interface() any {
	if n.leaf {
		return n.value
	}
	m := make(map[string]any, len(n.children))
	for _, c := range n.children {
		m[c.name] = c.Interface()
	}
	return m
}

// Parse builds a tree from divatree text. Blank lines and lines starting
// with CommentMarker are ignored. When the same path appears twice the later
// value replaces the earlier one. Any line that cannot be placed into the
// tree fails the whole document.
func Parse(text string) (*Node, error) {
	root, _, err := parse(text, false)
	return root, err
}

// parseEntries is Parse for documents made of independent top-level entries.
// A line that conflicts with another line below a top-level entry marks that
// entry broken instead of failing the document. The first conflict of each
// entry is kept, keyed by entry name. Lines without a separator, an empty
// first segment or a conflict at the root are still fatal.
func parseEntries(text string) (*Node, map[string]*SyntaxError, error) {
	return parse(text, true)
}

func parse(text string, isolate bool) (*Node, map[string]*SyntaxError, error) {
	root := newBranch("")
	var broken map[string]*SyntaxError
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, CommentMarker) {
			continue
		}
		key, value, ok := strings.Cut(line, Separator)
		if !ok {
			return nil, nil, &SyntaxError{Line: i + 1, Reason: "missing " + strconv.Quote(Separator)}
		}
		ins := root.insert(key, value)
		if ins == nil {
			continue
		}
		syn := &SyntaxError{Line: i + 1, Key: key, Reason: ins.reason}
		if !isolate || ins.depth == 0 {
			return nil, nil, syn
		}
		entry, _, _ := strings.Cut(key, PathSeparator)
		if broken == nil {
			broken = make(map[string]*SyntaxError)
		}
		if _, seen := broken[entry]; !seen {
			broken[entry] = syn
		}
	}
	return root, broken, nil
}

// insertError reports why a key could not be inserted and the index of the
// path segment where insertion stopped.
type insertError struct {
	depth  int
	reason string
}

func (n *Node) insert(key, value string) *insertError {
	if key == "" {
		return &insertError{reason: "empty key"}
	}
	segments := strings.Split(key, PathSeparator)
	cur := n
	for i, seg := range segments {
		if seg == "" {
			return &insertError{depth: i, reason: "empty path segment"}
		}
		last := i == len(segments)-1
		child, exists := cur.index[seg]
		switch {
		case !exists && last:
			child = &Node{name: seg, value: value, leaf: true}
			cur.add(child)
		case !exists:
			child = newBranch(seg)
			cur.add(child)
		case last && !child.leaf:
			return &insertError{depth: i, reason: "path is already a branch"}
		case last:
			child.value = value
		case child.leaf:
			return &insertError{depth: i, reason: "path " + strings.Join(segments[:i+1], PathSeparator) + " already holds a value"}
		}
		cur = child
	}
	return nil
}

func (n *Node) add(child *Node) {
	n.children = append(n.children, child)
	n.index[child.name] = child
}

// listIndex reports whether name is an array index segment.
func listIndex(name string) (int, bool) {
	if name == "" || len(name) > 6 {
		return 0, false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return 0, false
		}
	}
	idx, err := strconv.Atoi(name)
	if err != nil || idx >= maxListIndex {
		return 0, false
	}
	return idx, true
}

// listFromBranch orders the indexed children of a branch into a slice.
// Missing indices are nil. A valid LengthKey child truncates the result.
func listFromBranch(m map[string]any) []any {
	size := 0
	for name := range m {
		if idx, ok := listIndex(name); ok && idx+1 > size {
			size = idx + 1
		}
	}
	if raw, ok := m[LengthKey].(string); ok {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 && n < size {
			size = n
		}
	}
	out := make([]any, size)
	for name, v := range m {
		if idx, ok := listIndex(name); ok && idx < size {
			out[idx] = v
		}
	}
	return out
}
