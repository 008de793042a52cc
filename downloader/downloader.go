//
// Copyright 2018 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package downloader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// StatusError is returned when the server answers with a status other
// than 200 OK. No output file is created in that case.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("downloading %s: unexpected status code %d", e.URL, e.StatusCode)
}

// Downloader is a streaming downloader for a single URL
type Downloader struct {
	URL       string
	Resp      *http.Response
	out       *os.File
	chunkSize int
	progress  ProgressFunc
	completed int64
	size      int64
	err       error
}

// Close the download
func (d *Downloader) Close() error {
	err1 := d.out.Close()
	err2 := d.Resp.Body.Close()
	if err1 != nil {
		return fmt.Errorf("closing output file: %w", err1)
	}
	if err2 != nil {
		return fmt.Errorf("closing input stream: %w", err2)
	}
	return nil
}

// Size return the size of the download (or -1 if the server doesn't provide it)
func (d *Downloader) Size() int64 {
	return d.size
}

// Run copies the response body to the output file one chunk at a time and
// reports progress after each chunk. The output file and the response body
// are closed when Run returns.
func (d *Downloader) Run() error {
	in := d.Resp.Body
	buff := make([]byte, d.chunkSize)
	for {
		n, err := in.Read(buff)
		if n > 0 {
			if _, werr := d.out.Write(buff[:n]); werr != nil {
				d.err = fmt.Errorf("writing %s: %w", d.out.Name(), werr)
				break
			}
			d.completed += int64(n)
			if d.progress != nil {
				d.progress(d.completed, d.size)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			d.err = fmt.Errorf("reading %s: %w", d.URL, err)
			break
		}
	}
	if err := d.Close(); err != nil && d.err == nil {
		d.err = err
	}
	return d.Error()
}

// Error returns the error during download or nil if no errors happened
func (d *Downloader) Error() error {
	return d.err
}

// Completed returns the bytes written so far
func (d *Downloader) Completed() int64 {
	return d.completed
}

// Download returns a downloader that will download the specified url
// in the specified file. The file is overwritten if it already exists.
func Download(file string, reqURL string) (*Downloader, error) {
	return DownloadWithConfig(file, reqURL, GetDefaultConfig())
}

// DownloadWithConfig applies an additional configuration to the http client and
// returns a downloader that will download the specified url in the specified file.
func DownloadWithConfig(file string, reqURL string, config Config) (*Downloader, error) {
	return DownloadWithConfigAndContext(context.Background(), file, reqURL, config)
}

// DownloadWithConfigAndContext applies an additional configuration to the http client and
// returns a downloader that will download the specified url in the specified file.
// The GET request is performed immediately; the output file is created only if
// the server answers 200 OK and the AcceptFunc, if any, accepts the response.
// An existing file is truncated.
func DownloadWithConfigAndContext(ctx context.Context, file string, reqURL string, config Config) (*Downloader, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("setting up HTTP request: %w", err)
	}
	for k, v := range config.ExtraHeaders {
		req.Header.Set(k, v)
	}
	resp, err := config.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		discard(resp)
		return nil, &StatusError{URL: reqURL, StatusCode: resp.StatusCode}
	}
	if config.AcceptFunc != nil {
		if err := config.AcceptFunc(resp); err != nil {
			discard(resp)
			return nil, err
		}
	}

	f, err := os.OpenFile(file, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("opening %s for writing: %w", file, err)
	}

	return &Downloader{
		URL:       reqURL,
		Resp:      resp,
		out:       f,
		chunkSize: config.chunkSize(),
		progress:  config.Progress,
		size:      resp.ContentLength, // -1 if server doesn't send Content-Length
	}, nil
}

func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
