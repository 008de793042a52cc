//
// Copyright 2026 The RakeEngine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package metadata

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Emitter writes the metadata header for one project.
type Emitter struct {
	ProjectName    string
	ProjectVersion string
	// Output is the header path. Its directory must already exist.
	Output   string
	Provider Provider
	Stdout   io.Writer
}

// NewEmitter returns an Emitter using the system clock and timezone.
func NewEmitter(name, version, output string, stdout io.Writer) *Emitter {
	return &Emitter{
		ProjectName:    name,
		ProjectVersion: version,
		Output:         output,
		Provider:       SystemProvider{},
		Stdout:         stdout,
	}
}

// Emit captures the current instant and overwrites Output with the header.
// Missing directories are not created and write errors are returned as is.
func (e *Emitter) Emit(ctx context.Context) (Record, error) {
	logger := log.FromContext(ctx)

	rec := NewRecord(e.ProjectName, e.ProjectVersion, e.Provider.Now(), e.Provider.ZoneName())
	logger.Debug("Build metadata",
		"local", rec.LocalDate+" "+rec.LocalTime,
		"utc", rec.UTCDate+" "+rec.UTCTime,
		"zone", rec.LocalTimezone)

	if err := os.WriteFile(e.Output, rec.Header(), 0644); err != nil {
		return rec, fmt.Errorf("writing metadata header: %w", err)
	}
	fmt.Fprintf(e.Stdout, "Metadata header file '%s' generated successfully.\n", e.Output)
	return rec, nil
}
