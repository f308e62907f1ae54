package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

const (
	noteLength = 80 * time.Millisecond
	noteGap    = 20 * time.Millisecond
)

// chord is played one note per cleared line.
var chord = []float64{523.25, 659.25, 783.99, 1046.50}

// Manager plays game sound effects through the system speaker. Until Initialize succeeds every
// method is a no-op, so the game runs the same without an audio device.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewManager() *Manager {
	return &Manager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// PlayLineClear plays a rising arpeggio with one note per cleared line.
func (m *Manager) PlayLineClear(lines int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	if s := LineClearTone(sampleRate, lines); s != nil {
		speaker.Lock()
		m.mixer.Add(s)
		speaker.Unlock()
	}
}

// PlayGameOver plays a low falling pair of notes.
func (m *Manager) PlayGameOver() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	s := tones(sampleRate, []float64{220, 164.81}, 3*noteLength)
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// Cleanup stops all sounds and closes the speaker.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	m.initialized = false
}

// LineClearTone returns the arpeggio for clearing lines at once, or nil if lines is not positive.
func LineClearTone(sr beep.SampleRate, lines int) beep.Streamer {
	if lines <= 0 {
		return nil
	}
	return tones(sr, chord[:min(lines, len(chord))], noteLength)
}

func tones(sr beep.SampleRate, freqs []float64, length time.Duration) beep.Streamer {
	var notes []beep.Streamer
	for _, f := range freqs {
		sine, err := generators.SineTone(sr, f)
		if err != nil {
			continue
		}
		notes = append(notes, beep.Take(sr.N(length), sine), beep.Silence(sr.N(noteGap)))
	}
	return beep.Seq(notes...)
}
