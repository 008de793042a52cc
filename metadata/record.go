//
// Copyright 2026 The RakeEngine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package metadata

import (
	"fmt"
	"strings"
	"time"
)

// Layouts of the date and time fields.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Record holds the values written to the metadata header.
type Record struct {
	ProjectName    string
	ProjectVersion string
	LocalDate      string
	LocalTime      string
	LocalTimezone  string
	UTCDate        string
	UTCTime        string
}

// NewRecord derives the date and time fields from now, in its own location
// for the local fields and in UTC for the others.
func NewRecord(name, version string, now time.Time, zone string) Record {
	utc := now.UTC()
	return Record{
		ProjectName:    name,
		ProjectVersion: version,
		LocalDate:      now.Format(DateLayout),
		LocalTime:      now.Format(TimeLayout),
		LocalTimezone:  zone,
		UTCDate:        utc.Format(DateLayout),
		UTCTime:        utc.Format(TimeLayout),
	}
}

var cEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`)

// Header renders the record as a C/C++ header.
func (r Record) Header() []byte {
	var sb strings.Builder
	sb.WriteString("#pragma once\n\n")
	for _, d := range []struct{ name, value string }{
		{"PROJECT_NAME", r.ProjectName},
		{"PROJECT_VERSION", r.ProjectVersion},
		{"LOCAL_BUILD_DATE", r.LocalDate},
		{"LOCAL_BUILD_TIME", r.LocalTime},
		{"GMT_BUILD_DATE", r.UTCDate},
		{"GMT_BUILD_TIME", r.UTCTime},
	} {
		fmt.Fprintf(&sb, "#define %s \"%s\"\n", d.name, cEscaper.Replace(d.value))
	}
	fmt.Fprintf(&sb, "\n// Metadata generated in local timezone: %s\n", strings.ReplaceAll(r.LocalTimezone, "\n", " "))
	sb.WriteString("// Good work fellow programmer!\n")
	return []byte(sb.String())
}
