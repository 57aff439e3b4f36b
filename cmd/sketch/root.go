/*
File    : sketch/cmd/sketch/root.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package main is the entry point for the sketch interpreter CLI. It
// wires the lex/parse/evaluate pipeline (packages lexer, parser, eval,
// builtin) to the filesystem and reports results the way the teacher's
// own main/main.go does: fatih/color for human-facing success/error
// lines. Flag parsing moves from the teacher's hand-rolled os.Args
// switch to spf13/cobra + spf13/pflag (see SPEC_FULL.md §6.1/§10), the
// CLI-flag stack the retrieval pack's own multi-command binaries use.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/builtin"
	"github.com/akashmaji946/go-mix/debug"
	"github.com/akashmaji946/go-mix/eval"
	"github.com/akashmaji946/go-mix/lexer"
	"github.com/akashmaji946/go-mix/parser"
	"github.com/akashmaji946/go-mix/sketcherr"
	"github.com/akashmaji946/go-mix/values"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
)

// dbg, when set, makes Run dump tokens.txt/ast.txt (SPEC_FULL.md §6.4)
// and raises the diagnostic logger to debug level.
var dbg bool

// log is the structured diagnostic logger (SPEC_FULL.md §6.1 "Logging").
// It writes pipeline-stage breadcrumbs to stderr and is silent at the
// default Info level unless --dbg lowers it to Debug.
var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: false}).
	Level(zerolog.InfoLevel).
	With().Timestamp().Logger()

// NewRootCmd builds the `sketch <file> [--dbg]` command, the single
// command this CLI exposes (SPEC_FULL.md §6.1). Argless invocation falls
// through to cobra's own usage output and exits 0, matching spec.md
// §6.1's "no file argument: print a usage line and exit 0".
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sketch [file]",
		Short: "sketch - a natural-language scripting interpreter",
		Long: `sketch runs a .sk source file through the lex -> parse -> evaluate
pipeline: prepare/sketch/loop/while/if-elif-else/brush/prep/finished.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Usage()
			}
			return runFile(args[0])
		},
	}
	cmd.PersistentFlags().BoolVar(&dbg, "dbg", false, "dump tokens.txt/ast.txt and emit debug-level diagnostics")
	return cmd
}

// runFile implements the full file-mode pipeline: read, lex, parse,
// (optionally dump), evaluate, report.
func runFile(fileName string) error {
	if dbg {
		log = log.Level(zerolog.DebugLevel)
	}

	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", fileName, err)
		return err
	}

	lex := lexer.NewLexer(string(source))
	tokens, lexErr := lex.ConsumeTokens()
	if lexErr != nil {
		redColor.Fprintf(os.Stderr, "%s\n", lexErr)
		return lexErr
	}
	log.Debug().Int("tokens", len(tokens)).Msg("lexed")

	if dbg {
		if err := dumpTokens(tokens); err != nil {
			return err
		}
	}

	p := parser.New(string(source))
	stmts, parseErrs := p.Parse()
	if len(parseErrs) > 0 {
		for _, e := range parseErrs {
			redColor.Fprintf(os.Stderr, "%s\n", e)
		}
		return parseErrs[0]
	}
	log.Debug().Int("statements", len(stmts)).Msg("parsed")

	if dbg {
		if err := dumpAST(stmts); err != nil {
			return err
		}
	}

	ev := eval.New(os.Stdout, bufio.NewReader(os.Stdin))
	builtin.Register(ev.Global, ev.Writer, ev.Reader)

	result, runErr := ev.Run(stmts)
	if runErr != nil {
		sourceErr := toSourceError(runErr)
		redColor.Fprintf(os.Stderr, "%s\n", sourceErr)
		return sourceErr
	}
	log.Debug().Msg("evaluation complete")

	if result != nil && result.Kind() != "None" {
		yellowColor.Fprintf(os.Stdout, "%s\n", result.Inspect())
	}
	return nil
}

// toSourceError converts the evaluator's terminal error into a reportable
// *sketcherr.SourceError, pulling Line/Column from the underlying
// *values.Error sentinel when present so the message keeps its source
// position instead of collapsing to a bare string at this boundary.
func toSourceError(err error) error {
	if valErr, ok := err.(*values.Error); ok {
		return sketcherr.NewRuntime(valErr.Line, valErr.Column, "%s", valErr.Message)
	}
	return err
}

func dumpTokens(tokens []lexer.Token) error {
	data, err := debug.Tokens(tokens)
	if err != nil {
		return fmt.Errorf("encoding tokens.txt: %w", err)
	}
	return os.WriteFile("tokens.txt", data, 0o644)
}

func dumpAST(stmts []ast.Node) error {
	data, err := debug.AST(stmts)
	if err != nil {
		return fmt.Errorf("encoding ast.txt: %w", err)
	}
	return os.WriteFile("ast.txt", data, 0o644)
}
