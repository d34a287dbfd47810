package ui

import (
	"fmt"
	"io"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner shows progress while generate waits on the provider. Roadmap calls
// take tens of seconds, so it also shows the elapsed time. It writes to its
// own writer (stderr) so piped JSON or YAML on stdout stays clean.
type Spinner struct {
	out     io.Writer
	message string
	delay   time.Duration

	mu     sync.Mutex
	active bool
	stop   chan struct{}
	wg     sync.WaitGroup
}

func NewSpinner(out io.Writer, message string) *Spinner {
	return &Spinner{out: out, message: message, delay: 100 * time.Millisecond}
}

// Start is a no-op while the spinner is already running.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return
	}
	s.active = true
	s.stop = make(chan struct{})

	s.wg.Add(1)
	go s.run(s.stop, time.Now())
}

func (s *Spinner) run(stop <-chan struct{}, started time.Time) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.delay)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-stop:
			return
		case <-ticker.C:
			elapsed := time.Since(started).Truncate(time.Second)
			fmt.Fprintf(s.out, "\r%s %s %s",
				StylePrimary.Render(spinnerFrames[frame%len(spinnerFrames)]),
				s.message,
				StyleSubtle.Render(elapsed.String()))
		}
	}
}

// Stop halts the spinner and clears its line. Safe to call twice.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	close(s.stop)
	s.mu.Unlock()

	s.wg.Wait()
	fmt.Fprint(s.out, "\r\033[K")
}
