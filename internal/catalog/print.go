package catalog

import (
	"fmt"
	"io"
	"time"

	"git.lost.host/meutraa/keys/internal/game"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#81a2be"))
	indexStyle  = lipgloss.NewStyle().Width(4).Align(lipgloss.Right).Foreground(lipgloss.Color("#b294bb"))
	titleStyle  = lipgloss.NewStyle().Width(36).Foreground(lipgloss.Color("#c5c8c6"))
	artistStyle = lipgloss.NewStyle().Width(24).Foreground(lipgloss.Color("#969896"))
	numStyle    = lipgloss.NewStyle().Width(8).Align(lipgloss.Right)
)

func row(idx, title, artist, bpm, notes, length string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		indexStyle.Render(idx), " ",
		titleStyle.Render(title),
		artistStyle.Render(artist),
		numStyle.Render(bpm),
		numStyle.Render(notes),
		numStyle.Render(length),
	)
}

// Print writes one line per chart in selection order.
func Print(w io.Writer, charts []*game.Chart) error {
	if len(charts) == 0 {
		_, err := fmt.Fprintln(w, "no charts found")
		return err
	}
	if _, err := fmt.Fprintln(w, headerStyle.Render(row("#", "title", "artist", "bpm", "notes", "length"))); nil != err {
		return err
	}
	for i, c := range charts {
		length := (time.Duration(c.Duration) * time.Millisecond).Round(time.Second)
		line := row(
			fmt.Sprint(i),
			c.Title,
			c.Artist,
			fmt.Sprint(c.BPM),
			fmt.Sprint(len(c.Notes)),
			length.String(),
		)
		if _, err := fmt.Fprintln(w, line); nil != err {
			return err
		}
	}
	return nil
}
