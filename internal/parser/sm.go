package parser

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"git.lost.host/meutraa/keys/internal/game"
)

// StepMania charts only for the four panel layout
const stepsType = "dance-single"

// Time after the last note before the session ends, in ms
const tail = 5000

type SMParser struct{}

type bpm struct {
	StartingBeat float64
	Value        float64
}

type difficulty struct {
	Name    string
	Section string
}

func (p *SMParser) getSecondsPerRow(rates []bpm, currentBeat float64, beatsPerRow float64) float64 {
	sel := rates[0].Value
	for _, rate := range rates {
		if currentBeat >= rate.StartingBeat {
			sel = rate.Value
		} else {
			break
		}
	}
	return beatsPerRow * 60.0 / sel
}

// tag returns the value of a #NAME:value; header field.
func tag(meta, name string) (string, bool) {
	for _, field := range strings.Split(meta, "#") {
		field = strings.TrimSpace(field)
		if !strings.HasPrefix(field, name+":") {
			continue
		}
		value := strings.TrimPrefix(field, name+":")
		value = strings.TrimSuffix(value, ";")
		return strings.TrimSpace(value), true
	}
	return "", false
}

func (p *SMParser) parseBPMs(meta string) ([]bpm, error) {
	value, ok := tag(meta, "BPMS")
	if !ok || value == "" {
		return nil, fmt.Errorf("%w: missing #BPMS", ErrFormat)
	}
	value = strings.ReplaceAll(value, "\n", "")
	rates := []bpm{}
	for _, pair := range strings.Split(value, ",") {
		as := strings.Split(pair, "=")
		if len(as) != 2 {
			return nil, fmt.Errorf("%w: bpm %q", ErrFormat, pair)
		}
		sb, err := strconv.ParseFloat(strings.TrimSpace(as[0]), 64)
		if nil != err {
			return nil, fmt.Errorf("%w: bpm beat: %w", ErrFormat, err)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(as[1]), 64)
		if nil != err {
			return nil, fmt.Errorf("%w: bpm value: %w", ErrFormat, err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("%w: bpm %v", ErrFormat, v)
		}
		rates = append(rates, bpm{StartingBeat: sb, Value: v})
	}
	return rates, nil
}

func (p *SMParser) difficulties(sections []string) ([]difficulty, error) {
	difficulties := []difficulty{}
	for _, section := range sections {
		// type, description, difficulty, meter, radar values, then the rows
		lines := strings.SplitN(section, "\n", 7)
		if len(lines) < 7 {
			return nil, fmt.Errorf("%w: short #NOTES header", ErrFormat)
		}
		chartType := strings.TrimSuffix(strings.TrimSpace(lines[1]), ":")
		if chartType != stepsType {
			continue
		}
		difficulties = append(difficulties, difficulty{
			Name:    strings.TrimSuffix(strings.TrimSpace(lines[3]), ":"),
			Section: lines[6],
		})
	}
	return difficulties, nil
}

// measures splits a note section into rows per measure, dropping comments.
func measures(section string) [][]string {
	blocks := [][]string{{}}
	for _, l := range strings.Split(section, "\n") {
		if i := strings.Index(l, "//"); i >= 0 {
			l = l[:i]
		}
		l = strings.TrimSpace(l)
		switch {
		case l == "":
		case strings.HasPrefix(l, ","):
			blocks = append(blocks, []string{})
		case strings.HasPrefix(l, ";"):
			return blocks
		case len(l) == game.Lanes:
			blocks[len(blocks)-1] = append(blocks[len(blocks)-1], l)
		}
	}
	return blocks
}

// 0 – No note
// 1 – Normal note
// 2 – Hold head
// 3 – Hold/Roll tail
// 4 – Roll head
// M – Mine (or other negative note)
// K – Automatic keysound
// L – Lift note
// F – Fake note
func isTap(c byte) bool {
	return c == '1' || c == '2' || c == '4'
}

func (p *SMParser) Parse(r io.Reader) ([]*game.Chart, error) {
	data, err := io.ReadAll(r)
	if nil != err {
		return nil, err
	}

	str := strings.ReplaceAll(string(data), "\r", "")
	sections := strings.Split(str, "#NOTES:")
	meta := sections[0]

	difficulties, err := p.difficulties(sections[1:])
	if nil != err {
		return nil, err
	}

	offset := 0.0
	if value, ok := tag(meta, "OFFSET"); ok && value != "" {
		offs, err := strconv.ParseFloat(value, 64)
		if nil != err {
			return nil, fmt.Errorf("%w: offset: %w", ErrFormat, err)
		}
		offset = -offs
	}

	rates, err := p.parseBPMs(meta)
	if nil != err {
		return nil, err
	}

	title, _ := tag(meta, "TITLE")
	artist, _ := tag(meta, "ARTIST")

	charts := []*game.Chart{}
	for _, difficulty := range difficulties {
		// Start time of first row
		seconds := offset
		currentBeat := 0.0
		notes := []game.Note{}

		for _, rows := range measures(difficulty.Section) {
			if len(rows) == 0 {
				continue
			}
			// Beat count is 4 per measure
			beatsPerRow := 4.0 / float64(len(rows)) // 1/4, 1/8, 1/16, 1/24 etc

			for _, row := range rows {
				ms := math.Round(seconds * 1000)
				for i := 0; i < game.Lanes; i++ {
					if isTap(row[i]) && ms >= 0 {
						notes = append(notes, game.Note{Time: uint32(ms), Key: i})
					}
				}
				seconds += p.getSecondsPerRow(rates, currentBeat, beatsPerRow)
				currentBeat += beatsPerRow
			}
		}

		var last uint32
		for _, n := range notes {
			if n.Time > last {
				last = n.Time
			}
		}

		name := title
		if difficulty.Name != "" {
			name = fmt.Sprintf("%v [%v]", title, difficulty.Name)
		}
		charts = append(charts, &game.Chart{
			Title:    name,
			Artist:   artist,
			BPM:      uint16(math.Round(math.Min(rates[0].Value, math.MaxUint16))),
			Duration: last + tail,
			Notes:    notes,
		})
	}

	return validate(charts...)
}
