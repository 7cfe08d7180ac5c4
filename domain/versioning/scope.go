package versioning

import (
	"net/url"
	"strconv"
)

// EntityScope names a single resource, e.g. "coffee:Espresso".
func EntityScope(kind, id string) string {
	return kind + ":" + id
}

// CollectionScope names a filtered collection. Parameters are sorted by key
// so equal filters always render the same scope. Unset parameters are left
// out, which keeps "origin unset" apart from "origin empty".
func CollectionScope(collection string, params map[string]*string) string {
	values := url.Values{}
	for k, v := range params {
		if v != nil {
			values.Set(k, *v)
		}
	}
	return collection + "?" + values.Encode()
}

// IntParam renders an optional integer for CollectionScope
func IntParam(v *int) *string {
	if v == nil {
		return nil
	}
	s := strconv.Itoa(*v)
	return &s
}
