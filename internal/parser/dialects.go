// C11: the three dialect entry points (spec §4.9). Each is a thin
// constructor wiring lexer.New + config.DescriptorFor + New; all parsing
// logic above this point is dialect-agnostic and driven entirely by the
// Descriptor value threaded through the Parser.
package parser

import (
	"github.com/forgelang/forge-parser/internal/config"
	"github.com/forgelang/forge-parser/internal/lexer"
)

// NewForgeParser tokenizes src under the Forge dialect (brace-delimited,
// modern keywords) and returns a ready-to-Parse Parser.
func NewForgeParser(file, src string) *Parser {
	return newDialectParser(file, src, config.Forge)
}

// NewSuflaeParser tokenizes src under the Suflae dialect (indentation-
// delimited, modern keywords).
func NewSuflaeParser(file, src string) *Parser {
	return newDialectParser(file, src, config.Suflae)
}

// NewCakeParser tokenizes src under the Cake dialect (indentation-delimited,
// legacy keywords: recipe/chimera/step, display(...) sugar).
func NewCakeParser(file, src string) *Parser {
	return newDialectParser(file, src, config.CakeLang)
}

func newDialectParser(file, src string, name config.DialectName) *Parser {
	descriptor := config.DescriptorFor(name)
	lx := lexer.New(file, src, descriptor.BlockStyle == config.IndentDelimited)
	tokens := lx.Tokenize()
	return New(file, descriptor, tokens)
}
