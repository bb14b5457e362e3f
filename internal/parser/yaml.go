package parser

import (
	"fmt"
	"io"

	"git.lost.host/meutraa/keys/internal/game"
	"gopkg.in/yaml.v3"
)

type YAMLParser struct{}

func (p *YAMLParser) Parse(r io.Reader) ([]*game.Chart, error) {
	var chart game.Chart
	if err := yaml.NewDecoder(r).Decode(&chart); nil != err {
		return nil, fmt.Errorf("%w: invalid yaml: %w", ErrFormat, err)
	}
	return validate(&chart)
}
