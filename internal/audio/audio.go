package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

var ErrFormat = errors.New("unsupported audio format")

type Player interface {
	// Play starts a song in the background.
	Play(file string) error
	// Hit triggers one hit cue, overlapping any cue still playing.
	Hit()
	// Stop silences everything.
	Stop()
}

func decode(file string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, beep.Format{}, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch strings.ToLower(filepath.Ext(file)) {
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("%v: %w", file, ErrFormat)
	}
	if nil != err {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("unable to decode %v: %w", file, err)
	}
	return streamer, format, nil
}

// LoadCue decodes a short sample fully into memory.
func LoadCue(file string) (*beep.Buffer, error) {
	streamer, format, err := decode(file)
	if nil != err {
		return nil, err
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	return buffer, nil
}

// Speaker plays through the default output device.
type Speaker struct {
	cue *beep.Buffer

	mu   sync.Mutex
	song beep.StreamSeekCloser
}

// NewSpeaker opens the output device at the cue's sample rate.
func NewSpeaker(hitsound string) (*Speaker, error) {
	cue, err := LoadCue(hitsound)
	if nil != err {
		return nil, err
	}
	rate := cue.Format().SampleRate
	if err := speaker.Init(rate, rate.N(time.Second/60)); nil != err {
		return nil, fmt.Errorf("unable to open audio device: %w", err)
	}
	return &Speaker{cue: cue}, nil
}

func (s *Speaker) Play(file string) error {
	streamer, format, err := decode(file)
	if nil != err {
		return err
	}

	s.Stop()
	s.mu.Lock()
	s.song = streamer
	s.mu.Unlock()

	var stream beep.Streamer = streamer
	if rate := s.cue.Format().SampleRate; format.SampleRate != rate {
		stream = beep.Resample(4, format.SampleRate, rate, streamer)
	}
	speaker.Play(stream)
	return nil
}

func (s *Speaker) Hit() {
	speaker.Play(s.cue.Streamer(0, s.cue.Len()))
}

func (s *Speaker) Stop() {
	speaker.Clear()
	s.mu.Lock()
	s.closeSong()
	s.mu.Unlock()
}

func (s *Speaker) closeSong() {
	if nil != s.song {
		s.song.Close()
		s.song = nil
	}
}

// Silent discards everything, for --mute.
type Silent struct{}

func (Silent) Play(file string) error { return nil }
func (Silent) Hit() {}
func (Silent) Stop() {}
