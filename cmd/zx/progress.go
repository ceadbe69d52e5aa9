package main

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"

	"github.com/zen-explorer/zen-explorer/internal/messages"
	"github.com/zen-explorer/zen-explorer/internal/terminal"
)

const maxBarWidth = 40

var progressEnabled = terminal.IsTerminal

// updateProgress renders per-theme progress for batch updates on a terminal.
// A nil *updateProgress is valid and renders nothing.
type updateProgress struct {
	bar *progressbar.ProgressBar
}

func startProgress(w io.Writer, total int) *updateProgress {
	if total < 2 || !progressEnabled(w) {
		return nil
	}
	width := terminal.Width(w) / 2
	if width > maxBarWidth {
		width = maxBarWidth
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(messages.UpdateProgressDescription),
		progressbar.OptionSetWidth(width),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	return &updateProgress{bar: bar}
}

func (p *updateProgress) step(themeID string) {
	if p == nil {
		return
	}
	p.bar.Describe(fmt.Sprintf(messages.UpdateProgressThemeFmt, themeID))
	_ = p.bar.Add(1)
}

func (p *updateProgress) finish() {
	if p == nil {
		return
	}
	_ = p.bar.Finish()
}
