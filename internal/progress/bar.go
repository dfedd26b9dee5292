// Package progress draws a text progress bar for long training runs.
package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

const (
	barWidth = 30

	// Redraw intervals. Logs and pipes get far fewer frames than a terminal.
	terminalThrottle = 65 * time.Millisecond
	logThrottle      = time.Second
)

// Bar is a progress bar counting up to a fixed total.
//
// The first and last positions are always drawn; positions in between are
// throttled by time, more tightly on a terminal than on a log or pipe.
type Bar struct {
	pb          *progressbar.ProgressBar
	out         io.Writer
	total       int
	n           int
	interactive bool
}

// New creates a bar writing to out. Out is treated as interactive only
// when it is an *os.File attached to a terminal.
func New(out io.Writer, total int, desc string) *Bar {
	interactive := false
	if f, ok := out.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}
	return newBar(out, total, desc, interactive)
}

func newBar(out io.Writer, total int, desc string, interactive bool) *Bar {
	throttle := logThrottle
	if interactive {
		throttle = terminalThrottle
	}
	pb := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSetWidth(barWidth),
		progressbar.OptionShowCount(),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetPredictTime(interactive),
		progressbar.OptionThrottle(throttle),
		// The library refuses a zero max; an empty run has nothing to show.
		progressbar.OptionSetVisibility(total > 0),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(out) }),
	)
	return &Bar{pb: pb, out: out, total: total, interactive: interactive}
}

// Inc advances the bar by one.
func (b *Bar) Inc() {
	b.Set(b.n + 1)
}

// Set moves the bar to n, clamped to [0, total].
func (b *Bar) Set(n int) {
	b.n = max(0, min(n, b.total))
	_ = b.pb.Set(b.n)
}

// Observe matches the training loop's per-epoch callback signature.
func (b *Bar) Observe(epoch, _ int) {
	b.Set(epoch)
}

// Finish fills the bar and ends its line.
func (b *Bar) Finish() {
	_ = b.pb.Finish()
}

// Count returns the current position.
func (b *Bar) Count() int {
	return b.n
}
