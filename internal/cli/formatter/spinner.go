package formatter

import (
	"fmt"
	"io"
	"sync"
	"time"
)

const spinnerInterval = 80 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner keeps a status line alive on a terminal while a model call is in
// flight. After the first second the line also shows the elapsed wait.
type Spinner struct {
	w       io.Writer
	message string
	started time.Time

	once sync.Once
	quit chan struct{}
	done chan struct{}
}

func NewSpinner(w io.Writer, message string) *Spinner {
	return &Spinner{
		w:       w,
		message: message,
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start draws frames until Stop is called.
func (s *Spinner) Start() {
	s.started = time.Now()
	go s.run()
}

func (s *Spinner) run() {
	defer close(s.done)
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-s.quit:
			fmt.Fprint(s.w, "\r\033[K")
			return
		case <-ticker.C:
			fmt.Fprint(s.w, s.line(frame, time.Since(s.started)))
		}
	}
}

// line renders one frame, e.g. "⠹ Generating plan... 3s".
func (s *Spinner) line(frame int, waited time.Duration) string {
	glyph := StylePurple.Render(spinnerFrames[frame%len(spinnerFrames)])
	status := s.message
	if waited >= time.Second {
		status += fmt.Sprintf(" %ds", int(waited/time.Second))
	}
	return fmt.Sprintf("\r  %s %s", glyph, Dim(status))
}

// Stop clears the status line and waits for the drawing goroutine. Extra
// calls are no-ops.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		close(s.quit)
		<-s.done
	})
}

// StartSpinner starts a spinner on w and returns its Stop.
func StartSpinner(w io.Writer, message string) func() {
	s := NewSpinner(w, message)
	s.Start()
	return s.Stop
}
