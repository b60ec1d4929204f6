package shell

import (
	"strconv"
	"strings"

	"github.com/anmitsu/go-shlex"
	"github.com/josephlewis42/structsh/core/ast"
	"github.com/josephlewis42/structsh/core/diag"
)

// Invocation is one stage of a pipeline: a command name and the expressions
// written after it.
type Invocation struct {
	Name     string
	NameSpan ast.Span
	Args     []ast.Expression
}

// Pipeline is a line split on |.
type Pipeline []Invocation

type lexeme struct {
	text string
	span ast.Span
}

// Parse turns a line into a pipeline. An empty line is an empty pipeline.
func Parse(line string) (Pipeline, error) {
	lexemes, err := lex(line)
	if err != nil {
		return nil, err
	}

	var out Pipeline
	for _, stage := range splitStages(lexemes) {
		if len(stage.lexemes) == 0 {
			return nil, diag.At(diag.Syntax, stage.pipe, "syntax error near unexpected token `|'")
		}

		inv, err := parseInvocation(stage.lexemes)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}

	return out, nil
}

// lex splits the line like a shell would, keeping quotes, and locates every
// word in the source.
func lex(line string) ([]lexeme, error) {
	words, err := shlex.Split(line, false)
	if err != nil {
		return nil, diag.At(diag.Syntax, ast.Span{Start: 0, End: len(line)}, "syntax error: %v", err)
	}

	var out []lexeme
	offset := 0
	for _, word := range words {
		start := offset
		if i := strings.Index(line[offset:], word); i >= 0 {
			start += i
		}
		offset = start + len(word)

		out = append(out, splitBrackets(lexeme{text: word, span: ast.Span{Start: start, End: offset}})...)
	}
	return out, nil
}

// splitBrackets peels braces, parens and pipes off the edges of a word so
// {size > 10} lexes the same as { size > 10 }.
func splitBrackets(word lexeme) []lexeme {
	var head, tail []lexeme
	text, start, end := word.text, word.span.Start, word.span.End

	for len(text) > 1 && strings.ContainsRune("{(|", rune(text[0])) {
		head = append(head, lexeme{text: text[:1], span: ast.Span{Start: start, End: start + 1}})
		text, start = text[1:], start+1
	}

	if !isQuoted(text) {
		for len(text) > 1 && strings.ContainsRune("})|", rune(text[len(text)-1])) {
			last := len(text) - 1
			tail = append([]lexeme{{text: text[last:], span: ast.Span{Start: end - 1, End: end}}}, tail...)
			text, end = text[:last], end-1
		}
	}

	out := append(head, lexeme{text: text, span: ast.Span{Start: start, End: end}})
	return append(out, tail...)
}

type stage struct {
	lexemes []lexeme
	// pipe is the separator that ended the stage.
	pipe ast.Span
}

func splitStages(lexemes []lexeme) []stage {
	if len(lexemes) == 0 {
		return nil
	}

	var out []stage
	var current []lexeme
	depth := 0
	for _, lx := range lexemes {
		switch lx.text {
		case "{", "(":
			depth++
		case "}", ")":
			depth--
		case "|":
			if depth == 0 {
				out = append(out, stage{lexemes: current, pipe: lx.span})
				current = nil
				continue
			}
		}
		current = append(current, lx)
	}

	last := lexemes[len(lexemes)-1].span
	return append(out, stage{lexemes: current, pipe: last})
}

func parseInvocation(lexemes []lexeme) (Invocation, error) {
	name := lexemes[0]
	if strings.ContainsAny(name.text[:1], "{}()") {
		return Invocation{}, diag.At(diag.Syntax, name.span, "expected a command name, found %s", name.text)
	}

	args, err := parseExpressions(lexemes[1:])
	if err != nil {
		return Invocation{}, err
	}

	text := name.text
	if isQuoted(text) {
		text = text[1 : len(text)-1]
	}
	return Invocation{Name: text, NameSpan: name.span, Args: args}, nil
}

// ParseExpressions parses the words of a single command's arguments.
func ParseExpressions(line string) ([]ast.Expression, error) {
	lexemes, err := lex(line)
	if err != nil {
		return nil, err
	}
	return parseExpressions(lexemes)
}

func parseExpressions(lexemes []lexeme) ([]ast.Expression, error) {
	p := &parser{lexemes: lexemes}

	var out []ast.Expression
	for !p.done() {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		out = append(out, expr)
	}
	return out, nil
}

type parser struct {
	lexemes []lexeme
	pos     int
}

func (p *parser) done() bool {
	return p.pos >= len(p.lexemes)
}

// expression parses term (op term)*, grouping to the left.
func (p *parser) expression() (ast.Expression, error) {
	left, err := p.term()
	if err != nil {
		return ast.Expression{}, err
	}

	for p.pos+1 < len(p.lexemes) {
		op, ok := ast.ParseOperator(p.lexemes[p.pos].text)
		if !ok {
			break
		}
		p.pos++

		right, err := p.term()
		if err != nil {
			return ast.Expression{}, err
		}
		left = ast.BinaryOf(left, op, right)
	}

	return left, nil
}

func (p *parser) term() (ast.Expression, error) {
	lx := p.lexemes[p.pos]
	p.pos++

	switch lx.text {
	case "{":
		body, span, err := p.group(lx, "{", "}")
		if err != nil {
			return ast.Expression{}, err
		}
		return ast.Expression{Raw: &ast.Block{Body: body}, Span: span}, nil

	case "(":
		inner, span, err := p.group(lx, "(", ")")
		if err != nil {
			return ast.Expression{}, err
		}
		return ast.Expression{Raw: &ast.Parens{Inner: inner}, Span: span}, nil

	case "}", ")", "|":
		return ast.Expression{}, diag.At(diag.Syntax, lx.span, "syntax error near unexpected token `%s'", lx.text)
	}

	return classify(lx.text, lx.span), nil
}

// group parses the single expression between open and its matching close.
func (p *parser) group(open lexeme, openText, closeText string) (ast.Expression, ast.Span, error) {
	depth := 1
	for i := p.pos; i < len(p.lexemes); i++ {
		switch p.lexemes[i].text {
		case openText:
			depth++
		case closeText:
			depth--
		}
		if depth > 0 {
			continue
		}

		inner := p.lexemes[p.pos:i]
		span := open.span.Merge(p.lexemes[i].span)
		p.pos = i + 1

		exprs, err := parseExpressions(inner)
		if err != nil {
			return ast.Expression{}, span, err
		}
		if len(exprs) != 1 {
			return ast.Expression{}, span, diag.At(diag.Syntax, span, "expected one expression between %s and %s, found %d", openText, closeText, len(exprs))
		}
		return exprs[0], span, nil
	}

	return ast.Expression{}, open.span, diag.At(diag.Syntax, open.span, "unclosed %s", openText)
}

func classify(word string, span ast.Span) ast.Expression {
	var raw ast.RawExpression

	switch {
	case len(word) > 2 && strings.HasPrefix(word, "--"):
		raw = &ast.Flag{Name: word[2:]}
	case isQuoted(word):
		raw = &ast.Leaf{Kind: ast.LeafString, Text: word[1 : len(word)-1]}
	case word == "true" || word == "false":
		raw = &ast.Leaf{Kind: ast.LeafBoolean, Bool: word == "true"}
	default:
		if n, err := strconv.ParseInt(word, 10, 64); err == nil {
			raw = &ast.Leaf{Kind: ast.LeafInt, Int: n}
		} else if n, unit, ok := ast.SplitUnit(word); ok {
			raw = &ast.Leaf{Kind: ast.LeafUnit, Int: n, Unit: unit}
		} else {
			return reference(word, span)
		}
	}

	return ast.Expression{Raw: raw, Span: span}
}

// reference classifies variables ($x, it), member paths ($it.size, a.b) and
// plain bare words.
func reference(word string, span ast.Span) ast.Expression {
	bare := ast.Expression{Raw: &ast.Leaf{Kind: ast.LeafBare, Text: word}, Span: span}

	name := strings.TrimPrefix(word, "$")
	isVar := name != word || name == "it" || strings.HasPrefix(name, "it.")

	segments := strings.Split(name, ".")
	for _, s := range segments {
		if s == "" {
			return bare
		}
	}

	headEnd := span.Start + len(word) - len(name) + len(segments[0])
	headSpan := ast.Span{Start: span.Start, End: headEnd}

	var head ast.Expression
	switch {
	case isVar:
		head = ast.Expression{Raw: &ast.Variable{Name: segments[0]}, Span: headSpan}
	case len(segments) > 1 && isIdent(segments[0]):
		head = ast.Expression{Raw: &ast.Leaf{Kind: ast.LeafBare, Text: segments[0]}, Span: headSpan}
	default:
		return bare
	}

	if len(segments) == 1 {
		return head
	}
	return ast.Expression{Raw: &ast.Path{Head: head, Members: segments[1:]}, Span: span}
}

func isIdent(s string) bool {
	for i, r := range s {
		letter := r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
		digit := r == '-' || ('0' <= r && r <= '9')
		if !letter && (i == 0 || !digit) {
			return false
		}
	}
	return s != ""
}

func isQuoted(word string) bool {
	if len(word) < 2 {
		return false
	}
	first := word[0]
	return (first == '"' || first == '\'') && word[len(word)-1] == first
}
