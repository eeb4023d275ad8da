// Package cmd implements gosh's command-line entry points and REPL loop.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/fedjmike/gosh/display"
	"github.com/fedjmike/gosh/lang"
	"github.com/fedjmike/gosh/types"
)

var promptStyle = color.New(color.FgYellow)

// replCommand is one ":name" meta-command.
type replCommand struct {
	name    string
	handler func(env *Env, input string)
}

var replCommands = []replCommand{
	{"cd", (*Env).replCD},
	{"ast", (*Env).replAST},
	{"type", (*Env).replType},
}

// Env captures the state a REPL or one-shot invocation needs: the
// long-lived session (symbol table, type pool, diagnostic sink — see
// lang.Session) and the working directory gosh's ":cd" tracks
// independently of the process's real one. WorkDir is shown in the
// prompt and is the base for relative ":cd" targets; ":cd" does not
// change the process's working directory, so File values used elsewhere
// (size, display) resolve relative paths against the process's own.
type Env struct {
	Session *lang.Session
	WorkDir string
}

// NewEnv creates an Env with a fresh Session rooted at the process's
// actual working directory.
func NewEnv() *Env {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return &Env{Session: lang.NewSession(), WorkDir: wd}
}

// EvalAndDisplay runs text through the session pipeline and, if
// evaluation ran, renders the result to stdout via the display engine.
// This is gosh's non-meta-command REPL path and also the one-shot CLI
// path.
func (e *Env) EvalAndDisplay(ctx context.Context, text string, interactive bool) {
	val, tree, ran := e.Session.Eval(ctx, text)
	if !ran {
		return
	}

	var p display.Printer
	if interactive {
		p = display.NewTerminalPrinter(os.Stdout)
	} else {
		p = display.NewBatchPrinter(os.Stdout)
	}
	defer p.Close()

	display.Display(ctx, p, val, tree.Dt())
}

// replCD implements ":cd expr": expr must evaluate to a File naming a
// directory, and WorkDir becomes that directory (a relative name is
// joined onto the current WorkDir). Only WorkDir changes: func.go's
// builtins and the display engine use os.Stat directly on whatever
// string a File carries, so this updates the prompt and the base for
// later relative ":cd" targets, not where other File values resolve.
func (e *Env) replCD(input string) {
	val, tree, ran := e.Session.Eval(context.Background(), input)
	if !ran || types.KindOf(tree.Dt()) == types.Invalid {
		return
	}
	if types.KindOf(tree.Dt()) != types.File {
		fmt.Printf(":cd requires a File argument, given %s\n", tree.Dt())
		return
	}
	if val.Kind() != lang.FileValue {
		return
	}

	newWD := val.Filename()
	if !filepath.IsAbs(newWD) {
		newWD = filepath.Join(e.WorkDir, newWD)
	}
	info, err := os.Stat(newWD)
	if err != nil || !info.IsDir() {
		fmt.Printf("Unable to enter directory %q\n", val.Filename())
		return
	}
	e.WorkDir = newWD
}

// replAST implements ":ast expr": print the parsed (and analyzed, so
// far as analysis succeeds) tree.
func (e *Env) replAST(input string) {
	_, tree, _ := e.Session.Eval(context.Background(), input)
	fmt.Println(tree.String())
}

// replType implements ":type expr": print just the inferred type,
// suppressing output if the expression had any error.
func (e *Env) replType(input string) {
	_, tree, ran := e.Session.Eval(context.Background(), input)
	if ran {
		fmt.Println(tree.Dt())
	}
}

// replCmd dispatches a ":name rest" line (name already stripped of its
// leading ':') to the matching replCommand, or reports an unknown
// command.
func (e *Env) replCmd(input string) {
	name, rest := input, ""
	if i := strings.IndexByte(input, ' '); i >= 0 {
		name, rest = input[:i], input[i+1:]
	}
	if name == "" {
		fmt.Println("No command name given")
		return
	}
	for _, cmd := range replCommands {
		if cmd.name == name {
			cmd.handler(e, rest)
			return
		}
	}
	fmt.Printf("No command named %q\n", ":"+name)
}

// contractHome replaces a leading $HOME in wd with "~", tilde-contracting
// the prompt path.
func contractHome(wd, home string) string {
	if home == "" {
		return wd
	}
	if wd == home {
		return "~"
	}
	if strings.HasPrefix(wd, home+string(filepath.Separator)) {
		return "~" + wd[len(home):]
	}
	return wd
}

func historyPath(home string) string {
	if home == "" {
		return ".gosh_history"
	}
	return filepath.Join(home, ".gosh_history")
}

// Loop runs gosh's interactive REPL until ":exit", EOF or an interrupt,
// and then returns nil. It returns an error only if the line editor
// cannot be set up.
func (e *Env) Loop() error {
	home, _ := os.UserHomeDir()

	rl, err := readline.NewEx(&readline.Config{
		HistoryFile: historyPath(home),
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		prompt := promptStyle.Sprintf("{%s} $ ", contractHome(e.WorkDir, home))
		rl.SetPrompt(prompt)

		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ":exit" {
			return nil
		}

		if strings.HasPrefix(line, ":") {
			e.replCmd(line[1:])
		} else {
			e.EvalAndDisplay(context.Background(), line, true)
		}
	}
}
