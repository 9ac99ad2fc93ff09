package cmd

import (
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/squadcheck/pkg/integrity"
)

// progress shows the number of finished checks on STDERR.
type progress struct {
	bar *pb.ProgressBar
}

func newProgress(total int) *progress {
	bar := pb.Full.New(total)
	bar.SetWriter(os.Stderr)
	bar.Set("prefix", "Checks ")
	bar.Set(pb.CleanOnFinish, true)
	bar.Start()
	return &progress{bar: bar}
}

func (p *progress) update(res integrity.Result) {
	p.bar.Set("prefix", res.Name+" ")
	p.bar.Increment()
}

// finish removes the bar from the terminal. It is safe to call on nil.
func (p *progress) finish() {
	if p == nil {
		return
	}
	p.bar.Finish()
}
