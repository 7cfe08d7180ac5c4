// Package versioning derives cache validation tokens (ETags) from a
// per-store mutation counter.
//
// A token changes whenever the counter moves or the requested scope
// differs. Clients that present a stale or absent token always get a full
// response.
package versioning

import (
	"strconv"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// Counter counts successful mutations of one store. It starts at zero,
// only moves forward and is never reset while the process runs.
type Counter struct {
	value atomic.Uint64
}

// Bump records one successful mutation and returns the new version
func (c *Counter) Bump() uint64 {
	return c.value.Add(1)
}

// Current returns the current version
func (c *Counter) Current() uint64 {
	return c.value.Load()
}

// BuildToken derives the validation token for a scope at a version. It is a
// pure function of its inputs.
func BuildToken(version uint64, scope string) string {
	buf := make([]byte, 0, 40)
	buf = append(buf, '"', 'v')
	buf = strconv.AppendUint(buf, version, 10)
	buf = append(buf, '-')
	buf = strconv.AppendUint(buf, xxhash.Sum64String(scope), 16)
	buf = append(buf, '"')
	return string(buf)
}

// IsCurrent reports whether a client supplied token still matches. An empty
// supplied token never matches.
func IsCurrent(supplied, expected string) bool {
	return supplied != "" && supplied == expected
}
