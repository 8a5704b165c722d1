package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

const (
	spinnerInterval = 80 * time.Millisecond
	// showElapsedAfter is when the spinner starts printing elapsed time,
	// which only matters for slow rasterization.
	showElapsedAfter = time.Second
)

var spinnerFrames = []string{"◜", "◝", "◞", "◟"}

// Spinner animates a status line on w until stopped or until its context
// ends.
type Spinner struct {
	w       io.Writer
	message string
	start   time.Time

	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once

	mu    sync.Mutex
	width int // widest line written, for clearing
}

func newSpinner(ctx context.Context, w io.Writer, message string) *Spinner {
	ctx, cancel := context.WithCancel(ctx)
	return &Spinner{
		w:       w,
		message: message,
		ctx:     ctx,
		cancel:  cancel,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Start runs the animation in a goroutine.
func (s *Spinner) Start() {
	s.start = time.Now()
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		for frame := 0; ; frame++ {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-s.done:
				return
			case now := <-ticker.C:
				s.draw(frame, now.Sub(s.start))
			}
		}
	}()
}

func (s *Spinner) draw(frame int, elapsed time.Duration) {
	text := s.message
	if elapsed >= showElapsedAfter {
		text += fmt.Sprintf(" (%.1fs)", elapsed.Seconds())
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = max(s.width, len(text)+2)
	fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(spinnerFrames[frame%len(spinnerFrames)]), StyleDim.Render(text))
}

// Stop ends the animation and clears the line. Repeated calls are no-ops
// apart from clearing.
func (s *Spinner) Stop() {
	s.once.Do(func() { close(s.done) })
	<-s.stopped
	s.cancel()
	s.clearLine()
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width == 0 {
		return
	}
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width))
	s.width = 0
}

// Cancelled reports whether the context ended before Stop was called.
func (s *Spinner) Cancelled() bool {
	select {
	case <-s.done:
		return false
	default:
		return s.ctx.Err() != nil
	}
}
