// Package ui styles the decorative messages printed around a run.
// Result lines are never styled.
package ui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorError   = lipgloss.Color("196") // Red
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

var (
	BannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Banner formats the start and end markers of a run.
type Banner struct {
	Styled bool
}

func (b Banner) render(style lipgloss.Style, s string) string {
	if !b.Styled {
		return s
	}
	return style.Render(s)
}

// Start is printed before the first script line is read.
func (b Banner) Start(jobID int64) string {
	return b.render(BannerStyle, fmt.Sprintf("~~~ starting main for jobId: %d", jobID))
}

// End is printed once the run finished, with the runtime in seconds.
func (b Banner) End(elapsed time.Duration) string {
	return b.render(BannerStyle, "~~~ ending main. Total runtime: "+strconv.FormatFloat(elapsed.Seconds(), 'f', -1, 64)+"s")
}

// Failure formats a fatal run error.
func (b Banner) Failure(err error) string {
	return b.render(ErrorStyle, err.Error())
}

// Saved reports where the output file was written.
func (b Banner) Saved(path string) string {
	return b.render(SuccessStyle, "✓ Output saved to "+path)
}

// Summary formats the per-run statistics.
func (b Banner) Summary(s string) string {
	return b.render(MutedStyle, s)
}
