package cmdutil

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

// Progress is a task counter on a terminal bar. The zero value and a
// disabled Progress do nothing.
type Progress struct {
	bar *pb.ProgressBar
}

// NewProgress starts a bar over total tasks on dst when enabled.
func NewProgress(dst io.Writer, total int, enabled bool) *Progress {
	if !enabled || total <= 0 {
		return &Progress{}
	}
	bar := pb.Full.New(total)
	bar.SetWriter(dst)
	bar.Start()
	return &Progress{bar: bar}
}

func (p *Progress) Increment() {
	if p.bar != nil {
		p.bar.Increment()
	}
}

func (p *Progress) Finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}
