package normalize

import "github.com/locyaml/locyaml/token"

type opts struct {
	unit int
}

type Option func(*opts)

// IndentUnit sets the spaces per nesting level, default 2.
func IndentUnit(n int) Option {
	return func(o *opts) {
		if n > 0 {
			o.unit = n
		}
	}
}

func getOpts(options []Option) *opts {
	o := &opts{unit: token.DefaultIndentUnit}
	for _, f := range options {
		f(o)
	}
	return o
}
