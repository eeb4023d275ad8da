// Command gosh is an interactive, typed shell: a small functional
// expression language over files, lists, and functions, whose results
// are rendered by a type-directed display engine rather than printed as
// flat text.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fedjmike/gosh/cmd"
)

func main() {
	env := cmd.NewEnv()

	switch len(os.Args) {
	case 1:
		if err := env.Loop(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

	case 2:
		env.EvalAndDisplay(context.Background(), os.Args[1], false)

	default:
		env.EvalAndDisplay(context.Background(), strings.Join(os.Args[1:], " "), false)
	}
}
