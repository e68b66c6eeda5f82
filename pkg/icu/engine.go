package icu

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/dmitrymomot/polyglot/pkg/langtag"
)

// Engine renders an ICU-style message template for a locale. The default
// engine implements a practical subset of the ICU message syntax on top of
// golang.org/x/text; callers with different needs can inject their own via
// WithEngine.
type Engine interface {
	Render(lang *langtag.Tag, template string, params Params, formats *Formats) (string, error)
}

type textEngine struct{}

// DefaultEngine returns the built-in golang.org/x/text based engine.
//
// Supported syntax: plain arguments {name}, formatted arguments
// {name, number[, preset]}, {name, date[, preset-or-layout]},
// {name, time[, preset-or-layout]}, branching {name, plural, ...} with =N
// exact matches and # for the count, and {name, select, ...}. Apostrophe
// quoting follows ICU: '' is a literal apostrophe, '...' quotes syntax
// characters.
func DefaultEngine() Engine { return textEngine{} }

func (textEngine) Render(lang *langtag.Tag, template string, params Params, formats *Formats) (string, error) {
	nodes, err := parseTemplate(template)
	if err != nil {
		return "", err
	}
	if formats == nil {
		formats = defaultFormats
	}
	locale := language.Make(lang.String())
	ev := &evaluator{
		locale:  locale,
		printer: message.NewPrinter(locale),
		params:  params,
		formats: formats,
	}
	var sb strings.Builder
	if err := ev.render(&sb, nodes, nil); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Template AST.

type node any

type textNode string

type hashNode struct{}

type argNode struct {
	name     string
	kind     string // "", number, date, time, plural, select
	style    string
	branches []branch
}

type branch struct {
	selector string
	body     []node
}

type parser struct {
	src []rune
	pos int
}

func parseTemplate(template string) ([]node, error) {
	p := &parser{src: []rune(template)}
	nodes, err := p.message(false, false)
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.src) {
		return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidTemplate, string(p.src[p.pos]), p.pos)
	}
	return nodes, nil
}

// message parses nodes until end of input or, when nested, an unconsumed '}'.
// inPlural turns bare '#' into the count placeholder.
func (p *parser) message(nested, inPlural bool) ([]node, error) {
	var nodes []node
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			nodes = append(nodes, textNode(text.String()))
			text.Reset()
		}
	}

	for p.pos < len(p.src) {
		ch := p.src[p.pos]
		switch {
		case ch == '}' && nested:
			flush()
			return nodes, nil
		case ch == '{':
			flush()
			arg, err := p.argument(inPlural)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, arg)
		case ch == '#' && inPlural:
			flush()
			nodes = append(nodes, hashNode{})
			p.pos++
		case ch == '\'':
			p.quoted(&text)
		default:
			text.WriteRune(ch)
			p.pos++
		}
	}
	if nested {
		return nil, fmt.Errorf("%w: unbalanced braces", ErrInvalidTemplate)
	}
	flush()
	return nodes, nil
}

// quoted consumes an ICU apostrophe sequence starting at p.pos.
func (p *parser) quoted(text *strings.Builder) {
	p.pos++ // opening apostrophe
	if p.pos < len(p.src) && p.src[p.pos] == '\'' {
		text.WriteRune('\'')
		p.pos++
		return
	}
	for p.pos < len(p.src) {
		if p.src[p.pos] == '\'' {
			p.pos++
			return
		}
		text.WriteRune(p.src[p.pos])
		p.pos++
	}
}

func (p *parser) argument(inPlural bool) (node, error) {
	p.pos++ // '{'
	name := strings.TrimSpace(p.token())
	if name == "" {
		return nil, fmt.Errorf("%w: empty argument name", ErrInvalidTemplate)
	}

	if p.pos >= len(p.src) {
		return nil, fmt.Errorf("%w: unterminated argument %q", ErrInvalidTemplate, name)
	}
	if p.src[p.pos] == '}' {
		p.pos++
		return argNode{name: name}, nil
	}

	// ','
	p.pos++
	kind := strings.TrimSpace(p.token())
	switch kind {
	case "number", "date", "time":
		arg := argNode{name: name, kind: kind}
		if p.pos < len(p.src) && p.src[p.pos] == ',' {
			p.pos++
			arg.style = strings.TrimSpace(p.token())
		}
		if p.pos >= len(p.src) || p.src[p.pos] != '}' {
			return nil, fmt.Errorf("%w: unterminated argument %q", ErrInvalidTemplate, name)
		}
		p.pos++
		return arg, nil
	case "plural", "select":
		if p.pos >= len(p.src) || p.src[p.pos] != ',' {
			return nil, fmt.Errorf("%w: %s argument %q has no branches", ErrInvalidTemplate, kind, name)
		}
		p.pos++
		branches, err := p.branchList(kind == "plural" || inPlural && kind == "select")
		if err != nil {
			return nil, err
		}
		if len(branches) == 0 {
			return nil, fmt.Errorf("%w: %s argument %q has no branches", ErrInvalidTemplate, kind, name)
		}
		return argNode{name: name, kind: kind, branches: branches}, nil
	default:
		return nil, fmt.Errorf("%w: unknown argument type %q", ErrInvalidTemplate, kind)
	}
}

func (p *parser) branchList(inPlural bool) ([]branch, error) {
	var branches []branch
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, fmt.Errorf("%w: unbalanced braces", ErrInvalidTemplate)
		}
		if p.src[p.pos] == '}' {
			p.pos++
			return branches, nil
		}

		selector := p.selector()
		if selector == "" {
			return nil, fmt.Errorf("%w: missing branch selector", ErrInvalidTemplate)
		}
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] != '{' {
			return nil, fmt.Errorf("%w: branch %q has no message", ErrInvalidTemplate, selector)
		}
		p.pos++
		body, err := p.message(true, inPlural)
		if err != nil {
			return nil, err
		}
		p.pos++ // closing '}' of the branch
		branches = append(branches, branch{selector: selector, body: body})
	}
}

// token reads up to the next ',', '{' or '}' without consuming it.
func (p *parser) token() string {
	start := p.pos
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ',', '{', '}':
			return string(p.src[start:p.pos])
		}
		p.pos++
	}
	return string(p.src[start:p.pos])
}

func (p *parser) selector() string {
	start := p.pos
	for p.pos < len(p.src) {
		ch := p.src[p.pos]
		if ch == ' ' || ch == '\t' || ch == '\n' || ch == '{' || ch == '}' {
			break
		}
		p.pos++
	}
	return string(p.src[start:p.pos])
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// Evaluation.

type evaluator struct {
	locale  language.Tag
	printer *message.Printer
	params  Params
	formats *Formats
}

// render writes nodes to sb. count is the active plural operand, non-nil
// inside plural branches where '#' is valid.
func (ev *evaluator) render(sb *strings.Builder, nodes []node, count *float64) error {
	for _, n := range nodes {
		switch n := n.(type) {
		case textNode:
			sb.WriteString(string(n))
		case hashNode:
			if count != nil {
				sb.WriteString(ev.printer.Sprint(number.Decimal(*count)))
			}
		case argNode:
			if err := ev.argument(sb, n, count); err != nil {
				return err
			}
		}
	}
	return nil
}

func (ev *evaluator) argument(sb *strings.Builder, arg argNode, count *float64) error {
	value, ok := ev.params[arg.name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrMissingArgument, arg.name)
	}

	switch arg.kind {
	case "":
		ev.plain(sb, value)
		return nil
	case "number":
		return ev.number(sb, arg, value)
	case "date", "time":
		return ev.datetime(sb, arg, value)
	case "plural":
		return ev.plural(sb, arg, value)
	case "select":
		return ev.selectBranch(sb, arg, value, count)
	default:
		return fmt.Errorf("%w: unknown argument type %q", ErrInvalidTemplate, arg.kind)
	}
}

func (ev *evaluator) plain(sb *strings.Builder, value any) {
	if n, ok := toFloat(value); ok {
		sb.WriteString(ev.printer.Sprint(number.Decimal(n)))
		return
	}
	sb.WriteString(fmt.Sprint(value))
}

func (ev *evaluator) number(sb *strings.Builder, arg argNode, value any) error {
	n, ok := toFloat(value)
	if !ok {
		return fmt.Errorf("%w: argument %q is not numeric", ErrInvalidTemplate, arg.name)
	}

	preset := NumberFormat{Style: StyleDecimal}
	if arg.style != "" {
		if p, ok := ev.formats.number(arg.style); ok {
			preset = p
		} else {
			preset.Style = arg.style
		}
	}

	var opts []number.Option
	if preset.MaxFractionDigits > 0 {
		opts = append(opts, number.MaxFractionDigits(preset.MaxFractionDigits))
	}
	if preset.MinFractionDigits > 0 {
		opts = append(opts, number.MinFractionDigits(preset.MinFractionDigits))
	}

	switch preset.Style {
	case StyleInteger:
		opts = append(opts, number.MaxFractionDigits(0))
		sb.WriteString(ev.printer.Sprint(number.Decimal(n, opts...)))
	case StylePercent:
		sb.WriteString(ev.printer.Sprint(number.Percent(n, opts...)))
	case StyleCurrency:
		unit, err := currency.ParseISO(preset.Currency)
		if err != nil {
			return fmt.Errorf("%w: bad currency %q for %q", ErrInvalidTemplate, preset.Currency, arg.name)
		}
		sb.WriteString(ev.printer.Sprintf("%v", currency.Symbol(unit.Amount(n))))
	default:
		sb.WriteString(ev.printer.Sprint(number.Decimal(n, opts...)))
	}
	return nil
}

func (ev *evaluator) datetime(sb *strings.Builder, arg argNode, value any) error {
	t, ok := value.(time.Time)
	if !ok {
		return fmt.Errorf("%w: argument %q is not a time.Time", ErrInvalidTemplate, arg.name)
	}

	style := arg.style
	if style == "" {
		style = "medium"
	}

	var layout string
	var found bool
	if arg.kind == "date" {
		layout, found = ev.formats.date(style)
	} else {
		layout, found = ev.formats.timeLayout(style)
	}
	if !found {
		if strings.ContainsAny(style, "0123456789") {
			// Unknown preset that looks like a Go layout; use it directly.
			layout = style
		} else {
			layout = defaultLayout(arg.kind, style)
		}
	}

	sb.WriteString(t.Format(layout))
	return nil
}

func (ev *evaluator) plural(sb *strings.Builder, arg argNode, value any) error {
	n, ok := toFloat(value)
	if !ok {
		return fmt.Errorf("%w: argument %q is not numeric", ErrInvalidTemplate, arg.name)
	}

	// Exact matches take precedence over plural categories.
	exact := "=" + strconv.FormatFloat(n, 'f', -1, 64)
	category := pluralCategory(ev.locale, n)

	var other *branch
	for i := range arg.branches {
		b := &arg.branches[i]
		switch b.selector {
		case exact:
			return ev.render(sb, b.body, &n)
		case "other":
			other = b
		}
	}
	for i := range arg.branches {
		b := &arg.branches[i]
		if b.selector == category {
			return ev.render(sb, b.body, &n)
		}
	}
	if other == nil {
		return fmt.Errorf("%w: plural argument %q has no other branch", ErrInvalidTemplate, arg.name)
	}
	return ev.render(sb, other.body, &n)
}

func (ev *evaluator) selectBranch(sb *strings.Builder, arg argNode, value any, count *float64) error {
	key := fmt.Sprint(value)

	var other *branch
	for i := range arg.branches {
		b := &arg.branches[i]
		switch b.selector {
		case key:
			return ev.render(sb, b.body, count)
		case "other":
			other = b
		}
	}
	if other == nil {
		return fmt.Errorf("%w: key %q", ErrNoMatchingSelection, key)
	}
	return ev.render(sb, other.body, count)
}

// pluralCategory classifies n per the locale's CLDR cardinal plural rules.
func pluralCategory(locale language.Tag, n float64) string {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")

	i, _ := strconv.Atoi(intPart)
	v := len(frac)
	f := 0
	if frac != "" {
		f, _ = strconv.Atoi(frac)
	}
	trimmed := strings.TrimRight(frac, "0")
	w := len(trimmed)
	t := 0
	if trimmed != "" {
		t, _ = strconv.Atoi(trimmed)
	}

	switch plural.Cardinal.MatchPlural(locale, i, v, w, f, t) {
	case plural.Zero:
		return "zero"
	case plural.One:
		return "one"
	case plural.Two:
		return "two"
	case plural.Few:
		return "few"
	case plural.Many:
		return "many"
	default:
		return "other"
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
