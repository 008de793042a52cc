//
// Copyright 2018 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package downloader

import (
	"net/http"
	"sync"
)

// DefaultChunkSize is the number of bytes read from the response body
// before each write and progress update.
const DefaultChunkSize = 8192

// ProgressFunc receives the bytes written so far and the declared size of
// the download, or -1 if the server did not send a Content-Length.
type ProgressFunc func(current, size int64)

// Config contains the configuration for the downloader
type Config struct {
	// HttpClient to use to perform HTTP requests
	HttpClient http.Client
	// ExtraHeaders to add to the HTTP requests.
	ExtraHeaders map[string]string
	// AcceptFunc is an optional function that will be called with the
	// response of a successful GET request, before the output file is
	// created. If the function returns an error, the download is aborted.
	AcceptFunc func(resp *http.Response) error
	// ChunkSize is the size of each read from the response body.
	// If set to 0, DefaultChunkSize is used.
	ChunkSize int
	// Progress is called after every chunk written to disk.
	Progress ProgressFunc
}

func (c Config) chunkSize() int {
	if c.ChunkSize <= 0 {
		return DefaultChunkSize
	}
	return c.ChunkSize
}

var defaultConfig Config = Config{}
var defaultConfigLock sync.Mutex

// SetDefaultConfig sets the configuration that will be used by the Download
// function.
func SetDefaultConfig(newConfig Config) {
	defaultConfigLock.Lock()
	defer defaultConfigLock.Unlock()
	defaultConfig = newConfig
}

// GetDefaultConfig returns a copy of the default configuration. The default
// configuration can be changed using the SetDefaultConfig function.
func GetDefaultConfig() Config {
	defaultConfigLock.Lock()
	defer defaultConfigLock.Unlock()

	// deep copy struct
	return defaultConfig
}
