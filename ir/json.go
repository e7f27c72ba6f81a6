package ir

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON renders the node as JSON with mapping entries in tree
// order. Comments do not survive the conversion.
func (y *Node) MarshalJSON() ([]byte, error) {
	switch y.Type {
	case NullType:
		return []byte("null"), nil
	case ScalarType:
		return json.Marshal(y.Scalar)
	case MappingType:
		buf := bytes.NewBuffer(nil)
		buf.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			fd, err := json.Marshal(f)
			if err != nil {
				return nil, err
			}
			buf.Write(fd)
			buf.WriteByte(':')
			vd, err := y.Values[i].MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(vd)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	default:
		return nil, errUnknownType
	}
}
