// Package translator turns a restricted C++-style subset into Python
// source text.
//
// Source text passes through Lex, Parse, and Generate in that order. The
// pass is strictly linear with no feedback edges, and every invocation
// builds fresh lexer, parser, and environment state, so any number of
// translations may run concurrently.
package translator

// Header is the provenance line prefixed to every written output file.
const Header = "# Translated from C++ (subset) to Python"

// Translate runs the whole pipeline over one source text and returns the
// rendered Python body plus any advisory diagnostics. A syntax error
// abandons the parse: the body comes back empty alongside the error, and
// the caller decides whether a header-only output file is still worth
// writing. Generation itself fails only under Options.Strict.
func Translate(src string, opts Options) (string, []Diagnostic, error) {
	tokens, diags := Lex(src)

	prog, err := Parse(tokens, src)
	if err != nil {
		return "", diags, err
	}

	body, genDiags, err := Generate(prog, opts)
	diags = append(diags, genDiags...)
	if err != nil {
		return body, diags, err
	}
	return body, diags, nil
}

// Output assembles the full contents of an output file: the provenance
// header, the rendered body, and a trailing newline.
func Output(body string) string {
	return Header + "\n" + body + "\n"
}
