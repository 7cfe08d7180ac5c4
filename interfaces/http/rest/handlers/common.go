package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/IbuprofenLover/brewing-stand/application/queries"
	"github.com/IbuprofenLover/brewing-stand/pkg/errors"
)

const (
	// CacheControl forces clients to revalidate every cached read
	CacheControl = "private, max-age=0, must-revalidate"

	maxBodyBytes = 1 << 20
)

// base carries what every handler needs to answer a request
type base struct {
	errHandler *errors.ErrorHandler
	logger     *zap.Logger
}

func (h base) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h base) respondError(w http.ResponseWriter, r *http.Request, err error) {
	h.errHandler.Handle(w, r, err)
}

// decodeJSON reads a bounded JSON body. Anything unparsable is a client error.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.NewValidationError("invalid request body").
			WithCode("MALFORMED_BODY").
			WithCause(err)
	}
	return nil
}

// respondConditional writes a read result with its validators. A current
// client token gets 304 and no body.
func respondConditional[T any](h base, w http.ResponseWriter, result queries.Result[T]) {
	w.Header().Set("ETag", result.ETag)
	w.Header().Set("Cache-Control", CacheControl)
	if result.NotModified {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	h.respondJSON(w, http.StatusOK, result.Value)
}

// optionalQuery distinguishes an absent parameter (nil) from an empty one
func optionalQuery(r *http.Request, key string) *string {
	values, ok := r.URL.Query()[key]
	if !ok || len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}

// pathParam returns a decoded path parameter. chi matches on the raw path
// when the request carries escaped characters.
func pathParam(r *http.Request, key string) string {
	value := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return value
	}
	if unescaped, err := url.PathUnescape(value); err == nil {
		return unescaped
	}
	return value
}
