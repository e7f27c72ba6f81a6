package ir

import (
	"sort"
	"strings"
)

// Sort returns a copy of node with mapping keys ordered by the
// case-insensitive, quote-stripped form of the key. With recursive set,
// nested mappings are sorted all the way down. Non-mapping nodes are
// returned unchanged.
func Sort(node *Node, recursive bool) *Node {
	if node == nil || node.Type != MappingType {
		return node
	}
	res := &Node{
		Type:    MappingType,
		Comment: node.Comment,
		Fields:  make([]string, len(node.Fields)),
		Values:  make([]*Node, len(node.Values)),
	}
	// Fields and Values move together, so sort an index permutation.
	perm := make([]int, len(node.Fields))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool {
		return SortKey(node.Fields[perm[i]]) < SortKey(node.Fields[perm[j]])
	})
	for i, p := range perm {
		res.Fields[i] = node.Fields[p]
		v := node.Values[p]
		if recursive {
			v = Sort(v, true)
		}
		res.Values[i] = v
	}
	return res
}

// SortKey is the comparison form of a mapping key: surrounding quotes
// stripped, lower-cased.
func SortKey(key string) string {
	if len(key) >= 2 {
		switch key[0] {
		case '"', '\'':
			if key[len(key)-1] == key[0] {
				key = key[1 : len(key)-1]
			}
		}
	}
	return strings.ToLower(key)
}
