//
// Copyright 2026 The RakeEngine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package downloader

import (
	"fmt"
	"net/url"
	"path"
)

// Task is a single entry of a download batch.
type Task struct {
	URL string
}

// FileName returns the last segment of the URL path, used as the name of
// the downloaded file. Query string and fragment are not part of the name.
// A path ending with a slash has an empty last segment and is rejected.
func (t Task) FileName() (string, error) {
	u, err := url.Parse(t.URL)
	if err != nil {
		return "", fmt.Errorf("parsing url %q: %w", t.URL, err)
	}
	_, name := path.Split(u.Path)
	if name == "" || name == "." || name == ".." {
		return "", fmt.Errorf("no file name in url %q", t.URL)
	}
	return name, nil
}
