package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/IbuprofenLover/brewing-stand/application/queries"
	"github.com/IbuprofenLover/brewing-stand/pkg/errors"
)

func TestOptionalQuery(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/coffees?origin=&aroma=fruity", nil)

	assert.Nil(t, optionalQuery(r, "type"))
	require.NotNil(t, optionalQuery(r, "origin"))
	assert.Equal(t, "", *optionalQuery(r, "origin"))
	assert.Equal(t, "fruity", *optionalQuery(r, "aroma"))
}

func TestPathParamDecodesRawPath(t *testing.T) {
	router := chi.NewRouter()
	var got string
	router.Get("/coffees/{name}", func(w http.ResponseWriter, r *http.Request) {
		got = pathParam(r, "name")
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/coffees/Caf%C3%A9%2FCr%C3%A8me", nil))
	assert.Equal(t, "Café/Crème", got)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/coffees/House%20Blend", nil))
	assert.Equal(t, "House Blend", got)
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Rating int `json:"rating"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"rating":"five"}`))
	err := decodeJSON(httptest.NewRecorder(), r, &dst)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Equal(t, "MALFORMED_BODY", errors.GetAppError(err).Code)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"rating":5}`))
	require.NoError(t, decodeJSON(httptest.NewRecorder(), r, &dst))
	assert.Equal(t, 5, dst.Rating)
}

func TestRespondConditional(t *testing.T) {
	h := base{errHandler: errors.NewErrorHandler(zap.NewNop(), false), logger: zap.NewNop()}

	rec := httptest.NewRecorder()
	respondConditional(h, rec, queries.Result[[]string]{Value: []string{"a"}, ETag: `"v1-abc"`})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"v1-abc"`, rec.Header().Get("ETag"))
	assert.Equal(t, CacheControl, rec.Header().Get("Cache-Control"))
	assert.JSONEq(t, `["a"]`, rec.Body.String())

	rec = httptest.NewRecorder()
	respondConditional(h, rec, queries.Result[[]string]{ETag: `"v1-abc"`, NotModified: true})
	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Empty(t, rec.Header().Get("Content-Type"))
}

func TestRespondErrorUsesHandler(t *testing.T) {
	h := base{errHandler: errors.NewErrorHandler(zap.NewNop(), false), logger: zap.NewNop()}

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.Background())
	h.respondError(rec, r, errors.NewConflictError("taken"))
	assert.Equal(t, http.StatusConflict, rec.Code)
}
