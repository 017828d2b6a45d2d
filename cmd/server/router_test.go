package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tenantry/contacts-api/internal/config"
)

func newHealthzApp(t *testing.T) (*application, func()) {
	t.Helper()

	db, _, err := sqlmock.New()
	require.NoError(t, err)

	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	app, err := newApplication(&config.Config{}, log, db)
	require.NoError(t, err)

	return app, func() { _ = db.Close() }
}

func getHealthz(t *testing.T, app *application) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	app.setupRouter().ServeHTTP(rr, req)
	return rr
}

func TestHealthzReportsHealthyDatabase(t *testing.T) {
	t.Parallel()

	app, closeDB := newHealthzApp(t)
	defer closeDB()

	rr := getHealthz(t, app)
	assert.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Data string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "OK", body.Data)
}

func TestHealthzReportsUnusableDatabase(t *testing.T) {
	t.Parallel()

	app, closeDB := newHealthzApp(t)
	closeDB()

	rr := getHealthz(t, app)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	var body struct {
		Errors string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Database unavailable", body.Errors)
}
