//
// Copyright 2026 The RakeEngine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package metadata generates the build provenance header of the engine:
// project name, version and the build instant in local time and UTC.
//
// The header is rewritten from scratch on every run. Its directory is
// expected to exist; unlike the downloader, no failure is recovered here.
package metadata
