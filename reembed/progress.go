package reembed

import (
	"fmt"
	"io"
	"time"
)

// Summary describes a finished or aborted re-embedding run.
type Summary struct {
	Total      int
	Embedded   int
	Failed     int
	Batches    int
	Dimensions int
	Elapsed    time.Duration
}

// Remaining is the number of schemes neither embedded nor failed. Schemes
// added during the run can push the processed count past Total.
func (s Summary) Remaining() int {
	return max(s.Total-s.Embedded-s.Failed, 0)
}

// Rate is the number of schemes embedded per second.
func (s Summary) Rate() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Embedded) / s.Elapsed.Seconds()
}

// ProgressTracker reports batch outcomes of a re-embedding run. Output is
// one carriage-return line, refreshed once at least reportInterval schemes
// have been embedded since the previous line. Runs process batches
// sequentially, so the tracker is not safe for concurrent use.
type ProgressTracker struct {
	writer         io.Writer
	reportInterval int
	lastReported   int
	start          time.Time
	summary        Summary
}

// NewProgressTracker starts tracking a run over total schemes.
func NewProgressTracker(writer io.Writer, total, reportInterval int) *ProgressTracker {
	if writer == nil {
		writer = io.Discard
	}
	if reportInterval < 1 {
		reportInterval = 1
	}
	return &ProgressTracker{
		writer:         writer,
		reportInterval: reportInterval,
		start:          time.Now(),
		summary:        Summary{Total: total},
	}
}

// BatchEmbedded records a batch of size schemes stored with vectors of dims
// dimensions.
func (p *ProgressTracker) BatchEmbedded(size, dims int) {
	p.summary.Batches++
	p.summary.Embedded += size
	p.summary.Dimensions = dims

	if p.summary.Embedded-p.lastReported >= p.reportInterval {
		p.report()
		p.lastReported = p.summary.Embedded
	}
}

// BatchFailed records a batch of size schemes that could not be embedded.
// Schemes that follow it are left as remaining.
func (p *ProgressTracker) BatchFailed(size int, err error) {
	p.summary.Batches++
	p.summary.Failed += size
	p.report()
	fmt.Fprintf(p.writer, "\nBatch %d failed (%d schemes): %v\n", p.summary.Batches, size, err)
}

// Finish writes the final progress line and returns the run summary.
func (p *ProgressTracker) Finish() Summary {
	if p.summary.Embedded != p.lastReported || p.summary.Total == 0 {
		p.report()
	}
	fmt.Fprintln(p.writer)
	return p.Summary()
}

// Summary returns the counts so far.
func (p *ProgressTracker) Summary() Summary {
	s := p.summary
	s.Elapsed = time.Since(p.start)
	return s
}

func (p *ProgressTracker) report() {
	s := p.Summary()
	percentage := 0.0
	if s.Total > 0 {
		percentage = float64(s.Embedded) / float64(s.Total) * 100.0
	}
	fmt.Fprintf(p.writer, "\rProgress: %d/%d schemes embedded (%.1f%%), %d failed, %d batches - %.1f schemes/s",
		s.Embedded, s.Total, percentage, s.Failed, s.Batches, s.Rate())
}
