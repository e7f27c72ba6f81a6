package encode

type Option func(*encState)

// IndentUnit sets the spaces per nesting level, default 2.
func IndentUnit(n int) Option {
	return func(es *encState) {
		if n > 0 {
			es.unit = n
		}
	}
}

// Depth starts encoding at the given nesting level.
func Depth(n int) Option {
	return func(es *encState) { es.depth = n }
}

// EncodeComments controls whether attached comment lines are written
// back. On by default.
func EncodeComments(v bool) Option {
	return func(es *encState) { es.comments = v }
}

// EncodeColors enables colored terminal output.
func EncodeColors(c *Colors) Option {
	return func(es *encState) { es.color = c }
}
