// Package ir defines the in-memory representation of a translation
// document: an order-preserving tree of mappings with scalar and null
// leaves.
package ir

// Node is a document value. A mapping keeps its entries in two parallel
// slices so that insertion order survives every transformation; Fields
// and Values are index-aligned.
type Node struct {
	Type   Type
	Scalar string

	Fields []string
	Values []*Node

	// Comment holds the comment lines written above this node's entry,
	// verbatim. Nil when the entry carries no comment.
	Comment []string
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromScalar(v string) *Node {
	return &Node{Type: ScalarType, Scalar: v}
}

func NewMapping() *Node {
	return &Node{Type: MappingType}
}

// Set binds key to value. A duplicate key overwrites the existing value
// in place, keeping the key's original position.
func (y *Node) Set(key string, value *Node) *Node {
	y.Type = MappingType
	for i, f := range y.Fields {
		if f == key {
			y.Values[i] = value
			return y
		}
	}
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, value)
	return y
}

func (y *Node) Get(key string) (*Node, bool) {
	if y == nil || y.Type != MappingType {
		return nil, false
	}
	for i, f := range y.Fields {
		if f == key {
			return y.Values[i], true
		}
	}
	return nil, false
}

func (y *Node) Len() int {
	return len(y.Fields)
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:   y.Type,
		Scalar: y.Scalar,
	}
	if y.Comment != nil {
		res.Comment = append([]string(nil), y.Comment...)
	}
	if y.Type != MappingType {
		return res
	}
	res.Fields = append([]string(nil), y.Fields...)
	res.Values = make([]*Node, len(y.Values))
	for i, v := range y.Values {
		res.Values[i] = v.Clone()
	}
	return res
}
