package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"git.lost.host/meutraa/keys/internal/game"
)

var (
	ErrFormat      = errors.New("malformed chart")
	ErrUnsupported = errors.New("unsupported chart format")
)

type Parser interface {
	// Parse reads one chart definition, which may hold several charts.
	Parse(r io.Reader) ([]*game.Chart, error)
}

// Parsers returns the parser for each known chart file extension.
func Parsers() map[string]Parser {
	return map[string]Parser{
		".json": &JSONParser{},
		".yaml": &YAMLParser{},
		".yml":  &YAMLParser{},
		".sm":   &SMParser{},
	}
}

// Extensions lists the chart file extensions without the leading dot.
func Extensions() []string {
	return []string{"json", "yaml", "yml", "sm"}
}

func ParseFile(file string) ([]*game.Chart, error) {
	p, ok := Parsers()[strings.ToLower(filepath.Ext(file))]
	if !ok {
		return nil, fmt.Errorf("%v: %w", file, ErrUnsupported)
	}
	f, err := os.Open(file)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	charts, err := p.Parse(f)
	if nil != err {
		return nil, fmt.Errorf("%v: %w", file, err)
	}
	return charts, nil
}

func validate(charts ...*game.Chart) ([]*game.Chart, error) {
	for _, c := range charts {
		if err := c.Validate(); nil != err {
			return nil, fmt.Errorf("%w: %w", ErrFormat, err)
		}
	}
	return charts, nil
}
