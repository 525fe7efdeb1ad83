package shell

import (
	"strings"
)

// DefaultDelimiters are the bytes that separate tokens on a command line.
const DefaultDelimiters = " \t\r\n\a"

// DefaultParser splits a line on a fixed set of single-byte delimiters.
// Quotes and backslashes are ordinary token characters.
type DefaultParser struct {
	delimiters string
}

func NewDefaultParser() *DefaultParser {
	return NewParser(DefaultDelimiters)
}

// NewParser returns a parser splitting on the given ASCII delimiters.
func NewParser(delimiters string) *DefaultParser {
	d := &DefaultParser{
		delimiters: delimiters,
	}

	return d
}

type parseState int

const (
	stateDelimiter parseState = iota
	stateToken
)

func (p *DefaultParser) isDelimiter(ch byte) bool {
	return strings.IndexByte(p.delimiters, ch) >= 0
}

// Parse returns the tokens of line in order of appearance. Each token is a
// substring of line, so no bytes are copied.
func (p *DefaultParser) Parse(line string) []string {
	args := []string{}

	currState := stateDelimiter
	start := 0

	for i := 0; i < len(line); i++ {
		switch currState {
		case stateDelimiter:
			if !p.isDelimiter(line[i]) {
				start = i
				currState = stateToken
			}

		case stateToken:
			if p.isDelimiter(line[i]) {
				args = append(args, line[start:i])
				currState = stateDelimiter
			}
		}
	}

	if currState == stateToken {
		args = append(args, line[start:])
	}

	return args
}
