package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"git.lost.host/meutraa/keys/internal/game"
)

type JSONParser struct{}

func (p *JSONParser) Parse(r io.Reader) ([]*game.Chart, error) {
	var chart game.Chart
	if err := json.NewDecoder(r).Decode(&chart); nil != err {
		return nil, fmt.Errorf("%w: invalid json: %w", ErrFormat, err)
	}
	return validate(&chart)
}
