package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/tj/assert"

	"github.com/katiamach/heatrisk-calendars/internal/config"
	"github.com/katiamach/heatrisk-calendars/internal/model"
	"github.com/katiamach/heatrisk-calendars/internal/repository"
	"github.com/katiamach/heatrisk-calendars/internal/service"
	"github.com/katiamach/heatrisk-calendars/internal/transport/rest/handler"
)

type staticSource struct {
	stations []*model.Station
	err      error
}

func (s staticSource) GetStations(context.Context) ([]*model.Station, error) {
	return s.stations, s.err
}

func newTestRouter(t *testing.T, origin string) http.Handler {
	t.Helper()

	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "A1_2020.png"), []byte("\x89PNG"), 0o600)
	assert.Nil(t, err)

	stations := []*model.Station{
		{ID: "A1", Name: "Alpha", State: "CA", Years: []int{2020, 2021}},
		{ID: "B1", Name: "Beta", State: "NY", Years: []int{2022}},
	}

	return NewRouter(handler.NewWeatherServer(service.New(stations)), dir, origin)
}

func TestRouter(t *testing.T) {
	router := newTestRouter(t, "")

	cases := []struct {
		name           string
		method         string
		target         string
		expectedStatus int
	}{
		{name: "page", method: http.MethodGet, target: "/", expectedStatus: http.StatusOK},
		{name: "states", method: http.MethodGet, target: "/api/states", expectedStatus: http.StatusOK},
		{name: "stations", method: http.MethodGet, target: "/api/stations?state=CA", expectedStatus: http.StatusOK},
		{name: "years", method: http.MethodGet, target: "/api/years?station=A1", expectedStatus: http.StatusOK},
		{name: "display", method: http.MethodGet, target: "/api/display?station=A1&year=avg", expectedStatus: http.StatusOK},
		{name: "view", method: http.MethodGet, target: "/api/view?changed=state&state=NY", expectedStatus: http.StatusOK},
		{name: "bad view", method: http.MethodGet, target: "/api/view?changed=colour", expectedStatus: http.StatusBadRequest},
		{name: "image", method: http.MethodGet, target: "/img/A1_2020.png", expectedStatus: http.StatusOK},
		{name: "missing image", method: http.MethodGet, target: "/img/A1_2026.png", expectedStatus: http.StatusNotFound},
		{name: "wrong method", method: http.MethodPost, target: "/api/states", expectedStatus: http.StatusMethodNotAllowed},
		{name: "unknown route", method: http.MethodGet, target: "/api/nope", expectedStatus: http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tc.method, tc.target, nil)

			router.ServeHTTP(w, r)

			assert.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

func TestRouterViewCascade(t *testing.T) {
	router := newTestRouter(t, "")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/view?state=NY&station=A1&year=2020&changed=state", nil)

	router.ServeHTTP(w, r)

	var view model.View
	assert.Nil(t, json.NewDecoder(w.Body).Decode(&view))
	assert.Equal(t, model.Selection{State: "NY", StationID: "B1", Year: "2022"}, view.Selection)
	assert.Equal(t, "img/B1_2022.png", view.Display.ImagePath)
}

func TestRouterCORS(t *testing.T) {
	router := newTestRouter(t, "https://example.org")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/states", nil)
	r.Header.Set("Origin", "https://example.org")

	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://example.org", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestFetchStations(t *testing.T) {
	ctx := context.Background()
	stations := []*model.Station{{ID: "A1"}}

	cases := []struct {
		name        string
		source      staticSource
		expected    []*model.Station
		expectedErr bool
	}{
		{name: "ok", source: staticSource{stations: stations}, expected: stations},
		{name: "absent manifest", source: staticSource{err: fmt.Errorf("wrapped: %w", repository.ErrManifestNotFound)}},
		{name: "empty collection", source: staticSource{err: repository.ErrNoStations}},
		{name: "broken source", source: staticSource{err: errors.New("bad manifest")}, expectedErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := fetchStations(ctx, tc.source)
			if tc.expectedErr {
				assert.NotNil(t, err)
				return
			}

			assert.Nil(t, err)
			assert.Equal(t, tc.expected, res)
		})
	}
}

func TestLoadStationsFromManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stations.js")
	err := os.WriteFile(path, []byte(`window.HEATRISK_STATIONS = [
  { id: "A1", name: "Alpha", state: "CA", years: [2020] },
];`), 0o600)
	assert.Nil(t, err)

	cfg := config.Config{Stations: config.StationsConfig{Source: config.SourceManifest, Manifest: path, Charset: "utf-8"}}

	stations, err := loadStations(context.Background(), cfg)
	assert.Nil(t, err)
	assert.Equal(t, []*model.Station{{ID: "A1", Name: "Alpha", State: "CA", Years: []int{2020}}}, stations)

	cfg.Stations.Manifest = filepath.Join(t.TempDir(), "stations.js")
	stations, err = loadStations(context.Background(), cfg)
	assert.Nil(t, err)
	assert.Nil(t, stations)
}

func TestRunAPIStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	cfg := config.Config{
		Server:   config.ServerConfig{Port: "0"},
		Stations: config.StationsConfig{Source: config.SourceManifest, Manifest: filepath.Join(t.TempDir(), "stations.js")},
		Images:   config.ImagesConfig{Dir: t.TempDir()},
	}

	done := make(chan error, 1)
	go func() {
		done <- RunAPI(ctx, cfg)
	}()

	cancel()
	assert.Nil(t, <-done)
}
