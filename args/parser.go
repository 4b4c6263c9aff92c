// Package args parses command-line flags against a fixed flag table,
// keeping every parsed string in a caller-supplied arena.
package args

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/pavanmanishd/arena/v2"
)

var (
	// ErrExpectedInput is returned when a flag that takes input is the last argument.
	ErrExpectedInput = errors.New("expected input")
	// ErrFlagAsInput is returned when a flag's input is itself a known flag.
	ErrFlagAsInput = errors.New("expected input, but found flag")
)

// Flag describes one accepted flag.
type Flag struct {
	Literal      string `mapstructure:"literal"`
	ExpectsInput bool   `mapstructure:"expects_input"`
}

// DefaultFlags is the flag table used when none is configured.
var DefaultFlags = []Flag{
	{Literal: "-h"},
	{Literal: "--help"},
	{Literal: "-a", ExpectsInput: true},
	{Literal: "-add", ExpectsInput: true},
}

// Arg is one parsed flag. Its strings are owned by the arena passed to Parse.
type Arg struct {
	Literal  string
	Input    string
	HasInput bool
}

// Result is the outcome of Parse. Args lives in the arena and is valid
// until the arena is reset or freed.
type Result struct {
	Args    []Arg
	Unknown []string
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for parse diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(p *Parser) {
		p.logger = l
	}
}

// Parser matches arguments against a flag table.
type Parser struct {
	flags  []Flag
	logger *log.Logger
}

// NewParser returns a Parser for flags. A nil or empty table selects DefaultFlags.
func NewParser(flags []Flag, opts ...Option) *Parser {
	if len(flags) == 0 {
		flags = DefaultFlags
	}
	p := &Parser{
		flags:  flags,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Flags returns the parser's flag table.
func (p *Parser) Flags() []Flag {
	return p.flags
}

func (p *Parser) lookup(s string) (Flag, bool) {
	for _, f := range p.flags {
		if f.Literal == s {
			return f, true
		}
	}
	return Flag{}, false
}

// IsValid reports whether s is a flag in the table.
func (p *Parser) IsValid(s string) bool {
	_, ok := p.lookup(s)
	return ok
}

// Parse matches argv[1:] against the flag table. Matched flags and their
// inputs are duplicated into a; arguments that match nothing are collected
// in Result.Unknown and parsing continues.
func (p *Parser) Parse(a *arena.Arena, argv []string) (Result, error) {
	var res Result
	if len(argv) == 0 {
		return res, nil
	}

	out := arena.AllocSliceZeroed[Arg](a, len(argv))
	n := 0
	for i := 1; i < len(argv); i++ {
		literal := argv[i]
		f, ok := p.lookup(literal)
		if !ok {
			p.logger.Debug("unknown arg", "arg", literal)
			res.Unknown = append(res.Unknown, literal)
			continue
		}

		if !f.ExpectsInput {
			out[n] = Arg{Literal: a.DupString(literal)}
			n++
			continue
		}

		if i+1 >= len(argv) {
			return Result{}, errors.WithMessagef(ErrExpectedInput, "%s", literal)
		}
		input := argv[i+1]
		if p.IsValid(input) {
			return Result{}, errors.WithMessagef(ErrFlagAsInput, "%s %s", literal, input)
		}
		out[n] = Arg{
			Literal:  a.DupString(literal),
			Input:    a.DupString(input),
			HasInput: true,
		}
		n++
		i++
	}

	res.Args = out[:n]
	p.logger.Debug("parsed args", "flags", n, "unknown", len(res.Unknown), "arena_usage", a.TotalUsage())
	return res, nil
}
