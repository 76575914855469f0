package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// scanProgressReporter implements search.ProgressReporter with a progress
// bar on stderr, so piped match output stays clean.
type scanProgressReporter struct {
	bar *progressbar.ProgressBar
}

func newScanProgressReporter() *scanProgressReporter {
	return &scanProgressReporter{}
}

func (r *scanProgressReporter) OnScanStart(totalFiles int) {
	if totalFiles < 2 {
		return
	}
	r.bar = progressbar.NewOptions(totalFiles,
		progressbar.OptionSetDescription("Scanning files"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *scanProgressReporter) OnFileScanned(path string) {
	if r.bar != nil {
		r.bar.Add(1)
	}
}

func (r *scanProgressReporter) OnScanComplete(matchedFiles int) {
	if r.bar != nil {
		r.bar.Finish()
		r.bar = nil
	}
	if matchedFiles == 0 {
		fmt.Fprintln(os.Stderr, "no matches")
	}
}
