package di

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IbuprofenLover/brewing-stand/infrastructure/config"
)

func TestInitializeContainer(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "error"

	container, err := InitializeContainer(cfg)
	require.NoError(t, err)
	require.NoError(t, container.SeedCatalog())

	assert.Equal(t, 10, container.CoffeeStore.Len())
	assert.Equal(t, 10, container.CoffeeService.Count())

	rec := httptest.NewRecorder()
	container.Router.Setup().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 10, body["coffees"])
	assert.EqualValues(t, 0, body["reviews"])
}

func TestSeedCatalogDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.SeedData = false

	container, err := InitializeContainer(cfg)
	require.NoError(t, err)
	require.NoError(t, container.SeedCatalog())
	assert.Zero(t, container.CoffeeStore.Len())
}

func TestProvideLoggerRejectsUnknownLevel(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "chatty"

	_, err := ProvideLogger(cfg)
	assert.Error(t, err)
}
