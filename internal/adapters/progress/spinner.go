package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"

	"github.com/hailam/largefile/internal/ports"
)

// SpinnerReporter shows a terminal spinner with a "chunk i/n" suffix.
// The spinner library stays silent when the writer is not a terminal.
type SpinnerReporter struct {
	s *spinner.Spinner
}

func NewSpinner(w io.Writer) *SpinnerReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	return &SpinnerReporter{s: s}
}

func (r *SpinnerReporter) Start(total int64) {
	r.setSuffix(fmt.Sprintf(" writing %d chunks", total))
	r.s.Start()
}

func (r *SpinnerReporter) Advance(done, total int64) {
	r.setSuffix(fmt.Sprintf(" chunk %d/%d", done, total))
}

func (r *SpinnerReporter) Stop() {
	r.s.Stop()
}

// Suffix returns the text currently shown next to the spinner.
func (r *SpinnerReporter) Suffix() string {
	r.s.Lock()
	defer r.s.Unlock()
	return r.s.Suffix
}

func (r *SpinnerReporter) setSuffix(suffix string) {
	r.s.Lock()
	r.s.Suffix = suffix
	r.s.Unlock()
}

type noop struct{}

// Noop returns a reporter that discards all progress.
func Noop() ports.ProgressReporter { return noop{} }

func (noop) Start(int64)          {}
func (noop) Advance(int64, int64) {}
func (noop) Stop()                {}
