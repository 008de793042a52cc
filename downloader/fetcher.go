//
// Copyright 2026 The RakeEngine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/duke-git/lancet/v2/fileutil"
)

// ProgressReporter renders the progress of one download.
type ProgressReporter interface {
	Report(current, total int64)
	Done()
}

// Failure describes a URL that the server refused to serve.
type Failure struct {
	URL        string
	StatusCode int
}

// Summary is the outcome of a batch.
type Summary struct {
	// Downloaded holds the paths of the written files, in list order.
	Downloaded []string
	Failed     []Failure
}

// Fetcher downloads a list of URLs, one at a time, into Dir.
type Fetcher struct {
	Dir    string
	Config Config
	Stdout io.Writer
	// Progress, if set, returns the reporter used for each download.
	Progress func(task Task) ProgressReporter
}

// NewFetcher returns a Fetcher writing files to dir and status lines to stdout.
func NewFetcher(dir string, config Config, stdout io.Writer) *Fetcher {
	return &Fetcher{
		Dir:    dir,
		Config: config,
		Stdout: stdout,
	}
}

// Fetch downloads every url in order. A non-200 response prints a failure
// line and the next url is tried; any other error stops the batch and is
// returned together with the partial summary.
func (f *Fetcher) Fetch(ctx context.Context, urls []string) (Summary, error) {
	var summary Summary
	logger := log.FromContext(ctx)

	if err := fileutil.CreateDir(f.Dir); err != nil {
		return summary, fmt.Errorf("creating download directory %s: %w", f.Dir, err)
	}

	for _, u := range urls {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		task := Task{URL: u}
		dest, err := f.fetchOne(ctx, task)
		var statusErr *StatusError
		switch {
		case errors.As(err, &statusErr):
			fmt.Fprintf(f.Stdout, "Failed to download %s, status code: %d\n", task.URL, statusErr.StatusCode)
			summary.Failed = append(summary.Failed, Failure{URL: task.URL, StatusCode: statusErr.StatusCode})
		case err != nil:
			return summary, fmt.Errorf("downloading %s: %w", task.URL, err)
		default:
			fmt.Fprintf(f.Stdout, "Downloaded %s\n", dest)
			summary.Downloaded = append(summary.Downloaded, dest)
		}
	}

	logger.Debug("Batch finished", "downloaded", len(summary.Downloaded), "failed", len(summary.Failed))
	return summary, nil
}

func (f *Fetcher) fetchOne(ctx context.Context, task Task) (string, error) {
	logger := log.FromContext(ctx)

	name, err := task.FileName()
	if err != nil {
		return "", err
	}
	dest := filepath.Join(f.Dir, name)

	config := f.Config
	var reporter ProgressReporter
	if f.Progress != nil {
		reporter = f.Progress(task)
		next := config.Progress
		config.Progress = func(current, size int64) {
			reporter.Report(current, size)
			if next != nil {
				next(current, size)
			}
		}
	}

	logger.Debug("Requesting", "url", task.URL, "file", dest)
	d, err := DownloadWithConfigAndContext(ctx, dest, task.URL, config)
	if err != nil {
		return "", err
	}
	logger.Debug("Receiving", "url", task.URL, "size", d.Size())

	err = d.Run()
	if reporter != nil {
		reporter.Done()
	}
	if err != nil {
		return "", err
	}
	logger.Debug("Saved", "file", dest, "bytes", d.Completed())
	return dest, nil
}
