//
// Copyright 2026 The RakeEngine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package metadata

import (
	"time"

	"github.com/thlib/go-timezone-local/tzlocal"
)

// Provider supplies the build instant and the name of the local timezone.
type Provider interface {
	Now() time.Time
	ZoneName() string
}

// SystemProvider reads the wall clock and the host timezone configuration.
type SystemProvider struct{}

// Now returns the current local time.
func (SystemProvider) Now() time.Time { return time.Now() }

// ZoneName returns the IANA name of the local timezone (TZ, /etc/localtime
// or the Windows registry), otherwise the name or abbreviation of time.Local.
func (SystemProvider) ZoneName() string {
	return zoneName(time.Local, tzlocal.RuntimeTZ, time.Now())
}

// zoneName trusts the name returned by lookup only if it loads and matches
// the offset of loc at instant, so that the label never names a zone other
// than the one the local fields were computed in. An unloadable TZ makes the
// runtime fall back to UTC, and the label follows.
func zoneName(loc *time.Location, lookup func() (string, error), instant time.Time) string {
	if name, err := lookup(); err == nil && name != "" {
		if named, err := time.LoadLocation(name); err == nil && sameOffset(named, loc, instant) {
			return name
		}
	}
	if name := loc.String(); name != "Local" && name != "" {
		return name
	}
	abbr, _ := instant.In(loc).Zone()
	return abbr
}

func sameOffset(a, b *time.Location, instant time.Time) bool {
	_, offA := instant.In(a).Zone()
	_, offB := instant.In(b).Zone()
	return offA == offB
}

// FixedProvider always reports the same instant and zone name.
type FixedProvider struct {
	Instant time.Time
	Zone    string
}

func (p FixedProvider) Now() time.Time   { return p.Instant }
func (p FixedProvider) ZoneName() string { return p.Zone }
