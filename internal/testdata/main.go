package testdata

import (
	_ "embed"
	"encoding/json"

	"git.lost.host/meutraa/keys/internal/game"
)

//go:embed chart.json
var data []byte

// JSON is the raw fixture chart definition.
func JSON() []byte {
	return data
}

func GetChart() (*game.Chart, error) {
	var chart game.Chart
	if err := json.Unmarshal(data, &chart); nil != err {
		return nil, err
	}
	chart.Filename = "fixture"
	return &chart, nil
}
