package config

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/keys/internal/input"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	DisplayWindow   = "window"
	DisplayTerminal = "terminal"

	// Window tick rate bounds, derived from the frame period
	minTPS = 60
	maxTPS = 1000
)

type Config struct {
	Directory   string
	Resources   string
	Display     string
	Keys        input.KeyMap
	Offset      time.Duration
	FramePeriod time.Duration
	Hold        time.Duration
	Device      string
	Log         string
	List        bool
	Mute        bool
}

// TPS is the window tick rate matching the frame period.
func (c *Config) TPS() int {
	if c.FramePeriod <= 0 {
		return maxTPS
	}
	return max(minTPS, min(maxTPS, int(time.Second/c.FramePeriod)))
}

func Parse(args []string) (*Config, error) {
	c := &Config{}
	var keys string

	app := kingpin.New("keys", "Four lane rhythm game.")
	app.Version("0.3.0")
	app.Arg("songs", "Chart catalog directory").Default("songs").ExistingDirVar(&c.Directory)
	app.Flag("resources", "Hit sound and grade badge directory").Default("res").Short('R').StringVar(&c.Resources)
	app.Flag("display", "Where to draw frames").Default(DisplayWindow).Short('D').EnumVar(&c.Display, DisplayWindow, DisplayTerminal)
	app.Flag("keys", "Keys for the four lanes").Default(input.DefaultKeys).Short('k').StringVar(&keys)
	app.Flag("offset", "Global offset").Default("0ms").Short('o').DurationVar(&c.Offset)
	app.Flag("frame-period", "Render frame period").Default("1ms").Short('p').DurationVar(&c.FramePeriod)
	app.Flag("hold", "How long a terminal key press stays held").Default("120ms").Short('H').DurationVar(&c.Hold)
	app.Flag("device", "Keyboard evdev device, for held keys in the terminal").StringVar(&c.Device)
	app.Flag("log", "Log file, --log=- for stderr").Default("keys.log").StringVar(&c.Log)
	app.Flag("list", "Print the chart catalog and exit").Short('l').BoolVar(&c.List)
	app.Flag("mute", "Play without an audio device").BoolVar(&c.Mute)

	if _, err := app.Parse(args); nil != err {
		return nil, err
	}

	km, err := input.ParseKeys(keys)
	if nil != err {
		return nil, err
	}
	c.Keys = km

	if c.FramePeriod <= 0 {
		return nil, fmt.Errorf("frame period must be positive, got %v", c.FramePeriod)
	}
	return c, nil
}
