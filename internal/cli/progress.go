package cli

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/schollz/progressbar/v3"
)

// ProgressReporter receives directory-outline progress events.
type ProgressReporter interface {
	OnDiscoveryComplete(files int)
	OnFileProcessed(fileName string)
	OnComplete(processed, failed int)
}

// noOpProgressReporter discards all events.
type noOpProgressReporter struct{}

func (noOpProgressReporter) OnDiscoveryComplete(int) {}
func (noOpProgressReporter) OnFileProcessed(string)  {}
func (noOpProgressReporter) OnComplete(int, int)     {}

// CLIProgressReporter draws a progress bar on w (normally stderr).
type CLIProgressReporter struct {
	w         io.Writer
	fileBar   *progressbar.ProgressBar
	startTime time.Time
}

// NewCLIProgressReporter creates a new CLI progress reporter.
func NewCLIProgressReporter(w io.Writer) *CLIProgressReporter {
	return &CLIProgressReporter{
		w:         w,
		startTime: time.Now(),
	}
}

func (c *CLIProgressReporter) OnDiscoveryComplete(files int) {
	log.Printf("Outlining %d Python files\n", files)

	c.fileBar = progressbar.NewOptions(files,
		progressbar.OptionSetWriter(c.w),
		progressbar.OptionSetDescription("Outlining files"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(c.w)
		}),
	)
}

func (c *CLIProgressReporter) OnFileProcessed(fileName string) {
	if c.fileBar != nil {
		c.fileBar.Add(1)
	}
}

func (c *CLIProgressReporter) OnComplete(processed, failed int) {
	if c.fileBar != nil {
		c.fileBar.Finish()
	}
	log.Printf("Outlined %d files (%d failed) in %s\n", processed, failed, time.Since(c.startTime).Round(time.Millisecond))
}
