//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package downloader fetches remote archives to local files with chunked
// streaming and progress reporting.
//
// A Downloader transfers a single URL. A Fetcher runs a list of URLs one
// after the other into a destination directory. The two failure paths of a
// batch are deliberately different: a response with a non-200 status is
// reported on the console and the batch moves on to the next URL, while any
// transport or filesystem error aborts the batch and is returned to the
// caller.
package downloader
