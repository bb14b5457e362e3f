package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"git.lost.host/meutraa/keys/internal/game"
)

// Badges holds the image drawn for each grade on the end screen.
type Badges map[game.Grade]image.Image

// LoadBadges reads <dir>/<grade>.png for every grade. Missing files are
// left out, unreadable images are an error.
func LoadBadges(dir string) (Badges, error) {
	badges := Badges{}
	for _, g := range game.Grades {
		file := filepath.Join(dir, string(g)+".png")
		f, err := os.Open(file)
		if errors.Is(err, os.ErrNotExist) {
			continue
		} else if nil != err {
			return nil, err
		}
		img, err := png.Decode(f)
		f.Close()
		if nil != err {
			return nil, fmt.Errorf("unable to decode grade badge %v: %w", file, err)
		}
		badges[g] = img
	}
	return badges, nil
}
