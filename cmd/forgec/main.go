// Command forgec drives the parser front-end over a single file for one of
// the three dialects, printing diagnostics and an AST summary. It exists to
// exercise the parser end-to-end; it performs no semantic analysis, no
// codegen, and no build orchestration (spec §1 Non-goals).
//
// Grounded on the teacher's cmd/ layout: a thin main that wires flags to the
// library package and leaves all real work to internal/.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/forgelang/forge-parser/internal/ast"
	"github.com/forgelang/forge-parser/internal/parser"
)

func main() {
	dialect := flag.String("dialect", "forge", "source dialect: forge, suflae, or cake")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: forgec -dialect=<forge|suflae|cake> <file>")
		os.Exit(2)
	}

	path := flag.Arg(0)
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "forgec: %v\n", err)
		os.Exit(1)
	}

	p, err := newParser(*dialect, path, string(src))
	if err != nil {
		fmt.Fprintf(os.Stderr, "forgec: %v\n", err)
		os.Exit(2)
	}

	program := p.Parse()

	for _, w := range p.Diagnostics().GetWarnings() {
		fmt.Fprintln(os.Stderr, w.String())
	}
	for _, e := range p.Diagnostics().Errors() {
		fmt.Fprintln(os.Stderr, e.Error())
	}

	summary := &declarationCounter{}
	program.Accept(summary)
	fmt.Printf("%s: %d declarations, %d errors, %d warnings\n",
		path, summary.count, len(p.Diagnostics().Errors()), len(p.Diagnostics().GetWarnings()))

	if p.Diagnostics().HasErrors() {
		os.Exit(1)
	}
}

func newParser(dialect, file, src string) (*parser.Parser, error) {
	switch dialect {
	case "forge":
		return parser.NewForgeParser(file, src), nil
	case "suflae":
		return parser.NewSuflaeParser(file, src), nil
	case "cake":
		return parser.NewCakeParser(file, src), nil
	default:
		return nil, fmt.Errorf("unknown dialect %q", dialect)
	}
}

// declarationCounter is a minimal Visitor used only to print a one-line
// summary; it does not walk into member/statement bodies.
type declarationCounter struct {
	ast.BaseVisitor
	count int
}

func (d *declarationCounter) VisitProgram(n *ast.Program) {
	d.count = len(n.Declarations)
}
