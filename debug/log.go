package debug

import (
	"fmt"
	"os"

	"github.com/locyaml/locyaml/encode"
	"github.com/locyaml/locyaml/ir"
)

// Logf writes a debug line to stderr, rendering *ir.Node arguments in
// canonical text form.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			s, err := encode.String(x)
			if err != nil {
				args[i] = fmt.Sprintf("[raw node] %v", x)
				continue
			}
			args[i] = s
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
