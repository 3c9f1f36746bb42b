package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/katiamach/heatrisk-calendars/internal/config"
	"github.com/katiamach/heatrisk-calendars/internal/logger"
	"github.com/katiamach/heatrisk-calendars/internal/model"
	"github.com/katiamach/heatrisk-calendars/internal/repository"
	"github.com/katiamach/heatrisk-calendars/internal/service"
	"github.com/katiamach/heatrisk-calendars/internal/transport/rest/handler"
)

const shutdownTimeout = 5 * time.Second

// StationSource provides the station list the selector is built from.
type StationSource interface {
	GetStations(ctx context.Context) ([]*model.Station, error)
}

// RunAPI runs the calendar selector API until ctx is cancelled.
func RunAPI(ctx context.Context, cfg config.Config) error {
	stations, err := loadStations(ctx, cfg)
	if err != nil {
		return err
	}

	logger.Info(fmt.Sprintf("Loaded %d stations from %s source", len(stations), cfg.Stations.Source))

	server := handler.NewWeatherServer(service.New(stations))

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           NewRouter(server, cfg.Images.Dir, cfg.Server.Origin),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("Starting heatrisk calendars api at port %s", cfg.Server.Port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down heatrisk calendars api")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// NewRouter wires the selector routes, the image directory and the middleware chain.
func NewRouter(server *handler.WeatherServer, imagesDir, origin string) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", server.GetPageHandler).Methods("GET")

	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/states", server.GetStatesHandler).Methods("GET")
	apiRouter.HandleFunc("/stations", server.GetStationsHandler).Methods("GET")
	apiRouter.HandleFunc("/years", server.GetYearsHandler).Methods("GET")
	apiRouter.HandleFunc("/display", server.GetDisplayHandler).Methods("GET")
	apiRouter.HandleFunc("/view", server.GetViewHandler).Methods("GET")

	images := http.StripPrefix("/"+service.ImageDir+"/", http.FileServer(http.Dir(imagesDir)))
	r.PathPrefix("/" + service.ImageDir + "/").Handler(images).Methods("GET")

	var h http.Handler = r
	if origin != "" {
		h = handlers.CORS(setupCorsOptions(origin)...)(h)
	}
	h = handlers.LoggingHandler(logger.Writer(), h)
	h = handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{}))(h)

	return h
}

// loadStations reads the configured source. An absent manifest is an empty list.
func loadStations(ctx context.Context, cfg config.Config) ([]*model.Station, error) {
	var source StationSource

	switch cfg.Stations.Source {
	case config.SourceMongo:
		repo, err := repository.New(ctx, repository.MongoConfig{
			URI:        cfg.Mongo.URI,
			Database:   cfg.Mongo.Database,
			Collection: cfg.Mongo.Collection,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Error(err)
			}
		}()
		source = repo
	default:
		source = repository.NewManifestSource(cfg.Stations.Manifest, cfg.Stations.Charset)
	}

	return fetchStations(ctx, source)
}

func fetchStations(ctx context.Context, source StationSource) ([]*model.Station, error) {
	stations, err := source.GetStations(ctx)
	if errors.Is(err, repository.ErrManifestNotFound) || errors.Is(err, repository.ErrNoStations) {
		logger.Warn(fmt.Sprintf("No stations available, serving placeholder page: %v", err))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load stations: %w", err)
	}

	return stations, nil
}

type recoveryLogger struct{}

func (recoveryLogger) Println(v ...interface{}) {
	logger.Error(fmt.Errorf("recovered from panic: %v", fmt.Sprint(v...)))
}
