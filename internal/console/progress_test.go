//
// Copyright 2026 The RakeEngine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestBar(buf *bytes.Buffer) (*Bar, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)}
	b := NewBar(buf, "tool.zip")
	b.now = clock.now
	return b, clock
}

func TestFormatBytes(t *testing.T) {
	require.Equal(t, "0 B", FormatBytes(0))
	require.Equal(t, "512 B", FormatBytes(512))
	require.Equal(t, "1.00 KB", FormatBytes(1024))
	require.Equal(t, "1.50 MB", FormatBytes(1536*1024))
	require.Equal(t, "2.00 GB", FormatBytes(2<<30))
}

func TestBarKnownTotal(t *testing.T) {
	var buf bytes.Buffer
	b, clock := newTestBar(&buf)

	b.Report(512, 1024)
	clock.t = clock.t.Add(time.Second)
	b.Report(1024, 1024)
	b.Done()

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "\r"))
	require.Contains(t, out, "tool.zip")
	require.Contains(t, out, "512 B / 1.00 KB")
	require.Contains(t, out, "1.00 KB / 1.00 KB")
	require.Contains(t, out, "1.00 KB/s")
	require.True(t, strings.HasSuffix(out, "\n"))
}

func TestBarUnknownTotal(t *testing.T) {
	var buf bytes.Buffer
	b, clock := newTestBar(&buf)

	b.Report(2048, -1)
	clock.t = clock.t.Add(time.Second)
	b.Report(4096, -1)

	out := buf.String()
	require.Contains(t, out, "2.00 KB")
	require.Contains(t, out, "4.00 KB")
	require.NotContains(t, out, " / ")
}

func TestBarThrottlesRedraws(t *testing.T) {
	var buf bytes.Buffer
	b, clock := newTestBar(&buf)

	b.Report(100, 1000)
	b.Report(200, 1000)
	b.Report(300, 1000)
	require.Equal(t, 1, strings.Count(buf.String(), "\r"))

	clock.t = clock.t.Add(redrawInterval)
	b.Report(400, 1000)
	require.Equal(t, 2, strings.Count(buf.String(), "\r"))

	// The final report is always drawn.
	b.Report(1000, 1000)
	require.Equal(t, 3, strings.Count(buf.String(), "\r"))
}

func TestBarDoneWithoutReports(t *testing.T) {
	var buf bytes.Buffer
	b, _ := newTestBar(&buf)
	b.Done()
	require.Empty(t, buf.String())
}
