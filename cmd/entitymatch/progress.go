package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

func isInteractive(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// newByteProgressBar tracks a download. In non-interactive output the bar
// is silent; structured logs still record the outcome.
func newByteProgressBar(w io.Writer, description string) *progressbar.ProgressBar {
	if !isInteractive(w) {
		return progressbar.DefaultBytesSilent(-1, description)
	}
	return progressbar.NewOptions64(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowBytes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

// newCountProgressBar tracks record-by-record enrichment.
func newCountProgressBar(w io.Writer, total int, description string) *progressbar.ProgressBar {
	if !isInteractive(w) {
		return progressbar.DefaultSilent(int64(total), description)
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionClearOnFinish(),
	)
}
