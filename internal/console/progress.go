//
// Copyright 2026 The RakeEngine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package console renders download progress on a terminal.
package console

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const (
	barWidth       = 30
	redrawInterval = 100 * time.Millisecond
)

var labelStyle = lipgloss.NewStyle().Bold(true)

// Bar is a single-line progress indicator redrawn in place with a carriage
// return. When the total is unknown it only counts bytes.
type Bar struct {
	w        io.Writer
	label    string
	bar      progress.Model
	interval time.Duration
	now      func() time.Time

	start    time.Time
	lastDraw time.Time
	drawn    bool
	width    int
}

// NewBar returns a Bar writing to w, prefixed with label.
func NewBar(w io.Writer, label string) *Bar {
	return &Bar{
		w:        w,
		label:    label,
		bar:      progress.New(progress.WithDefaultGradient(), progress.WithWidth(barWidth)),
		interval: redrawInterval,
		now:      time.Now,
	}
}

// Report updates the indicator. Redraws are throttled, except for the one
// that completes a download of known size.
func (b *Bar) Report(current, total int64) {
	now := b.now()
	if b.start.IsZero() {
		b.start = now
	}
	finished := total > 0 && current >= total
	if b.drawn && !finished && now.Sub(b.lastDraw) < b.interval {
		return
	}
	b.lastDraw = now
	b.draw(b.render(current, total, now))
}

// Done terminates the indicator line.
func (b *Bar) Done() {
	if b.drawn {
		fmt.Fprintln(b.w)
	}
}

func (b *Bar) render(current, total int64, now time.Time) string {
	var sb strings.Builder
	sb.WriteString(labelStyle.Render(b.label))
	sb.WriteString(" ")
	if total > 0 {
		sb.WriteString(b.bar.ViewAs(float64(current) / float64(total)))
		fmt.Fprintf(&sb, " %s / %s", FormatBytes(current), FormatBytes(total))
	} else {
		sb.WriteString(FormatBytes(current))
	}
	if elapsed := now.Sub(b.start).Seconds(); elapsed > 0 {
		fmt.Fprintf(&sb, " %s/s", FormatBytes(int64(float64(current)/elapsed)))
	}
	return sb.String()
}

func (b *Bar) draw(line string) {
	width := lipgloss.Width(line)
	pad := ""
	if width < b.width {
		pad = strings.Repeat(" ", b.width-width)
	}
	b.width = width
	b.drawn = true
	fmt.Fprintf(b.w, "\r%s%s", line, pad)
}

// FormatBytes returns a human readable size using binary multiples.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
