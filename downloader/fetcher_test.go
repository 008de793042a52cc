//
// Copyright 2026 The RakeEngine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package downloader

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingReporter struct {
	reports []int64
	totals  []int64
	done    bool
}

func (r *recordingReporter) Report(current, total int64) {
	r.reports = append(r.reports, current)
	r.totals = append(r.totals, total)
}

func (r *recordingReporter) Done() { r.done = true }

func TestFetchScenario(t *testing.T) {
	body := payload(1024)
	srv := serve(t, body)
	dir := filepath.Join(t.TempDir(), "downloads")

	var out bytes.Buffer
	f := NewFetcher(dir, Config{}, &out)
	summary, err := f.Fetch(context.Background(), []string{srv.URL + "/archive/tool.zip"})
	require.NoError(t, err)

	dest := filepath.Join(dir, "tool.zip")
	require.Equal(t, []string{dest}, summary.Downloaded)
	require.Empty(t, summary.Failed)
	require.Equal(t, "Downloaded "+dest+"\n", out.String())

	info, err := os.Stat(dest)
	require.NoError(t, err)
	require.Equal(t, int64(1024), info.Size())
}

func TestFetchContinuesAfterStatusFailure(t *testing.T) {
	body := payload(2048)
	srv := serve(t, body)
	dir := t.TempDir()

	urls := []string{
		srv.URL + "/first.zip",
		srv.URL + "/missing.zip",
		srv.URL + "/sdk/third.exe",
	}
	var out bytes.Buffer
	summary, err := NewFetcher(dir, Config{}, &out).Fetch(context.Background(), urls)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Equal(t, []string{
		"Downloaded " + filepath.Join(dir, "first.zip"),
		"Failed to download " + srv.URL + "/missing.zip, status code: 404",
		"Downloaded " + filepath.Join(dir, "third.exe"),
	}, lines)
	require.Equal(t, []Failure{{URL: srv.URL + "/missing.zip", StatusCode: http.StatusNotFound}}, summary.Failed)
	require.Len(t, summary.Downloaded, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		info, err := e.Info()
		require.NoError(t, err)
		require.Equal(t, int64(len(body)), info.Size())
	}
	require.NoFileExists(t, filepath.Join(dir, "missing.zip"))
}

func TestFetchCreatesDirectoryIdempotently(t *testing.T) {
	srv := serve(t, payload(10))
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, os.MkdirAll(dir, 0755))

	_, err := NewFetcher(dir, Config{}, &bytes.Buffer{}).Fetch(context.Background(), []string{srv.URL + "/x.bin"})
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, "x.bin"))
}

func TestFetchTransportErrorStopsBatch(t *testing.T) {
	srv := serve(t, payload(10))
	dead := httptest.NewServer(http.NotFoundHandler())
	deadURL := dead.URL
	dead.Close()
	dir := t.TempDir()

	var out bytes.Buffer
	summary, err := NewFetcher(dir, Config{}, &out).Fetch(context.Background(), []string{
		srv.URL + "/one.bin",
		deadURL + "/two.bin",
		srv.URL + "/three.bin",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), deadURL+"/two.bin")
	require.Equal(t, []string{filepath.Join(dir, "one.bin")}, summary.Downloaded)
	require.NoFileExists(t, filepath.Join(dir, "three.bin"))
}

func TestFetchBadFileNameStopsBatch(t *testing.T) {
	srv := serve(t, payload(10))
	for _, u := range []string{srv.URL + "/", srv.URL + "/files/", srv.URL + "/a/.."} {
		dir := filepath.Join(t.TempDir(), "downloads")
		_, err := NewFetcher(dir, Config{}, &bytes.Buffer{}).Fetch(context.Background(), []string{u, srv.URL + "/next.bin"})
		require.Error(t, err, u)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Empty(t, entries, u)
	}
}

func TestFetchReportsProgress(t *testing.T) {
	body := payload(2*DefaultChunkSize + 1)
	srv := serve(t, body)

	var reporters []*recordingReporter
	f := NewFetcher(t.TempDir(), Config{}, &bytes.Buffer{})
	f.Progress = func(task Task) ProgressReporter {
		r := &recordingReporter{}
		reporters = append(reporters, r)
		return r
	}
	_, err := f.Fetch(context.Background(), []string{srv.URL + "/a.bin", srv.URL + "/b.bin"})
	require.NoError(t, err)

	require.Len(t, reporters, 2)
	for _, r := range reporters {
		require.True(t, r.done)
		require.Equal(t, int64(len(body)), r.reports[len(r.reports)-1])
		require.Equal(t, int64(len(body)), r.totals[0])
	}
}

func TestFetchCanceledContext(t *testing.T) {
	srv := serve(t, payload(10))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := NewFetcher(t.TempDir(), Config{}, &bytes.Buffer{}).Fetch(ctx, []string{srv.URL + "/a.bin"})
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, summary.Downloaded)
}
