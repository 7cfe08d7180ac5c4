// Package services orchestrates the stores for the transport layer: it
// validates commands, derives cache tokens for reads and records metrics.
package services

import (
	"github.com/IbuprofenLover/brewing-stand/application/ports"
	"github.com/IbuprofenLover/brewing-stand/application/queries"
	"github.com/IbuprofenLover/brewing-stand/domain/versioning"
)

// conditional builds the read result for a value observed at version. load
// is only called when the client token is stale.
func conditional[T any](metrics ports.Metrics, resource string, version uint64, scope, ifNoneMatch string, load func() T) queries.Result[T] {
	etag := versioning.BuildToken(version, scope)
	if versioning.IsCurrent(ifNoneMatch, etag) {
		metrics.RecordNotModified(resource)
		return queries.Result[T]{ETag: etag, NotModified: true}
	}
	return queries.Result[T]{Value: load(), ETag: etag}
}
