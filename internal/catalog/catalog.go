package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"git.lost.host/meutraa/keys/internal/game"
	"git.lost.host/meutraa/keys/internal/parser"
	"github.com/bmatcuk/doublestar/v4"
)

var ErrNoAudio = errors.New("no audio file for chart")

// Audio file extensions, in order of preference
var audioExtensions = []string{"ogg", "mp3", "wav", "flac"}

func pattern(extensions []string) string {
	return "*/*.{" + strings.Join(extensions, ",") + "}"
}

// Load reads every chart below dir. Each directory in dir is one unit
// holding chart files and the audio they play over.
func Load(dir string) ([]*game.Chart, error) {
	fsys := os.DirFS(dir)

	audio, err := doublestar.Glob(fsys, pattern(audioExtensions))
	if nil != err {
		return nil, fmt.Errorf("unable to search %v for audio: %w", dir, err)
	}
	audioFiles := map[string]string{}
	sort.SliceStable(audio, func(i, j int) bool {
		return rank(audio[i]) < rank(audio[j])
	})
	for _, a := range audio {
		unit := path.Dir(a)
		if _, ok := audioFiles[unit]; !ok {
			audioFiles[unit] = a
		}
	}

	files, err := doublestar.Glob(fsys, pattern(parser.Extensions()))
	if nil != err {
		return nil, fmt.Errorf("unable to search %v for charts: %w", dir, err)
	}
	sort.Strings(files)

	charts := []*game.Chart{}
	for _, file := range files {
		unit := path.Dir(file)
		a, ok := audioFiles[unit]
		if !ok {
			return nil, fmt.Errorf("%v: %w", unit, ErrNoAudio)
		}

		cs, err := parser.ParseFile(filepath.Join(dir, filepath.FromSlash(file)))
		if nil != err {
			return nil, err
		}
		for _, c := range cs {
			c.Filename = unit
			c.Audio = filepath.Join(dir, filepath.FromSlash(a))
			charts = append(charts, c)
		}
		slog.Debug("loaded chart file", "file", file, "charts", len(cs))
	}

	return charts, nil
}

func rank(file string) int {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(file)), ".")
	for i, e := range audioExtensions {
		if e == ext {
			return i
		}
	}
	return len(audioExtensions)
}
