package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/finchlang/finch-cc/pkg/ast"
	"github.com/finchlang/finch-cc/pkg/parser"
)

var version = "0.1.0"

const (
	historyFile = ".finchcc_history"
	promptMain  = "==> "
	promptCont  = "... "
)

// Output options
var (
	format  string
	outPath string
	dSource bool
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	rootCmd.SetArgs(os.Args[1:])
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "finch-cc [file]",
		Short: "finch-cc parses a restricted C dialect into a tagged AST",
		Long: `finch-cc is the front end of a small C-dialect translator. It
parses a source file in a single pass and dumps the abstract syntax
tree as a tagged-record document, one mapping per node with its kind,
position and attributes.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cmd.Help()
				return nil
			}
			return doParse(args[0], out, errOut)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.Flags().StringVar(&format, "format", "yaml", "AST output format (yaml or json)")
	rootCmd.Flags().StringVarP(&outPath, "output", "o", "", "Write output to file instead of stdout")
	rootCmd.Flags().BoolVar(&dSource, "dsource", false, "Dump the pretty-printed source instead of the AST")

	rootCmd.AddCommand(newReplCmd(out, errOut))
	return rootCmd
}

func doParse(filename string, out, errOut io.Writer) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(errOut, "finch-cc: %v\n", err)
		return err
	}

	prog, err := parser.New(string(content)).Parse()
	if err != nil {
		fmt.Fprintf(errOut, "finch-cc: %s: %v\n", filename, err)
		return err
	}

	w := out
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			fmt.Fprintf(errOut, "finch-cc: %v\n", err)
			return err
		}
		defer f.Close()
		w = f
	}

	if dSource {
		ast.NewPrinter(w).PrintProgram(prog)
		return nil
	}
	return writeAST(w, prog)
}

// writeAST marshals the tagged-record form of the program
func writeAST(w io.Writer, prog *ast.Program) error {
	record := ast.Record(prog)
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(record); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(record)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func newReplCmd(out, errOut io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively parse snippets and dump their AST",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(out, errOut)
		},
	}
}

func runRepl(out, errOut io.Writer) error {
	fmt.Fprintf(out, "finch-cc %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.\n", version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Fprintln(out)
			return nil
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" {
			return nil
		}

		prog, err := parser.New(code).Parse()
		if err != nil {
			fmt.Fprintln(errOut, err)
			continue
		}
		if err := writeAST(out, prog); err != nil {
			return err
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}
}

// readByParseProbe reads lines until the accumulated input parses or
// fails with an error that more input cannot fix.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		_, perr := parser.New(src).Parse()
		if perr == nil {
			return src, true
		}
		if parser.IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}
