package instance

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/pkazanov/spinglass/ising"
)

// instanceLexer tokenizes the line-oriented DIMACS-style format. Comment
// lines are blanked before lexing (see stripComments), so a format word
// like "cnf" is an ordinary Ident here; EOL stays a real token so the
// grammar can keep line boundaries.
var instanceLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "EOL", Pattern: `\n`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
})

// instanceFile is the grammar root: a sequence of lines.
type instanceFile struct {
	Lines []*instLine `parser:"@@*"`
}

// instLine is one physical line: a header, a triple, or nothing (blank or
// comment-only), always terminated by EOL.
type instLine struct {
	Header *headerLine `parser:"( @@"`
	Triple *tripleLine `parser:"| @@ )? EOL"`
}

// headerLine is the 'p' line: "p <format> <node count> [extras...]".
// The reference reader takes the third whitespace field as the node count
// and ignores anything after it (DIMACS files append the triple count).
type headerLine struct {
	Format  string  `parser:"\"p\" @Ident"`
	NodeQty int     `parser:"@Int"`
	Extra   []int64 `parser:"@Int*"`
}

// tripleLine is one weight triple: two node indices and a weight.
type tripleLine struct {
	A      int   `parser:"@Int"`
	B      int   `parser:"@Int"`
	Weight int64 `parser:"@Int"`
}

var parser = participle.MustBuild[instanceFile](
	participle.Lexer(instanceLexer),
	participle.Elide("Whitespace"),
)

// stripComments blanks every line whose first non-blank character is 'c',
// keeping the newline so line boundaries survive for the grammar. Comment
// detection looks only at the line start — the reference reader tests the
// first character of each stripped line — so a 'c'-initial word later in a
// line, like the format field of "p cnf 4 2", is never mistaken for one.
func stripComments(src string) string {
	lines := strings.Split(src, "\n")
	for i, l := range lines {
		if t := strings.TrimSpace(l); t != "" && t[0] == 'c' {
			lines[i] = ""
		}
	}
	return strings.Join(lines, "\n")
}

// Parse reads a problem instance from src.
//
// Returns ErrNoHeader when no 'p' line is present, or a wrapped parse error
// when a line violates the grammar. Triples pass through unvalidated; range
// errors belong to ising.NewModel.
func Parse(src string) (*Instance, error) {
	src = stripComments(src)
	// The grammar anchors every line on EOL, so the last line needs one.
	if !strings.HasSuffix(src, "\n") {
		src += "\n"
	}

	file, err := parser.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("instance: parse: %w", err)
	}

	inst := &Instance{}
	sawHeader := false
	for _, line := range file.Lines {
		switch {
		case line.Header != nil:
			// Several headers are legal; the last one wins.
			inst.NodeQty = line.Header.NodeQty
			sawHeader = true
		case line.Triple != nil:
			inst.Weights = append(inst.Weights, ising.Edge{
				A:      line.Triple.A,
				B:      line.Triple.B,
				Weight: line.Triple.Weight,
			})
		}
	}
	if !sawHeader {
		return nil, ErrNoHeader
	}

	return inst, nil
}

// ParseFile reads and parses the problem instance at path.
func ParseFile(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("instance: read %s: %w", path, err)
	}
	return Parse(string(data))
}
