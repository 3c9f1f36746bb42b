package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/katiamach/heatrisk-calendars/internal/logger"
	"github.com/katiamach/heatrisk-calendars/internal/model"
)

//go:generate mockgen -source=handlers.go -destination=mock/mock.go Selector

// Selector provides the cascading selection methods.
type Selector interface {
	States() []string
	FilteredStations(state string) []*model.Station
	YearOptions(stationID, state string) []model.Option
	Display(stationID, yearToken string) model.Display
	Initial() model.Selection
	Apply(sel model.Selection, control model.Control, value string) (model.Selection, error)
	Render(sel model.Selection) *model.View
}

// WeatherServer is a server for the calendar selector.
type WeatherServer struct {
	selector Selector
}

// NewWeatherServer creates new WeatherServer.
func NewWeatherServer(selector Selector) *WeatherServer {
	return &WeatherServer{selector}
}

// selectionRequest is a selection read from the query, plus the control that changed, if any.
type selectionRequest struct {
	selection model.Selection
	changed   model.Control
	initial   bool
}

// GetStatesHandler handles the state list request.
func (s *WeatherServer) GetStatesHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.selector.States())
}

// GetStationsHandler handles the filtered station list request.
func (s *WeatherServer) GetStationsHandler(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")

	respond(w, http.StatusOK, s.selector.FilteredStations(state))
}

// GetYearsHandler handles the year options request.
func (s *WeatherServer) GetYearsHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	years := s.selector.YearOptions(params.Get("station"), params.Get("state"))
	if years == nil {
		years = []model.Option{}
	}

	respond(w, http.StatusOK, years)
}

// GetDisplayHandler handles the image and caption request.
func (s *WeatherServer) GetDisplayHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	respond(w, http.StatusOK, s.selector.Display(params.Get("station"), params.Get("year")))
}

// GetViewHandler handles the full view request.
func (s *WeatherServer) GetViewHandler(w http.ResponseWriter, r *http.Request) {
	view, err := s.resolveView(r.URL.Query())
	if err != nil {
		logger.Error(err)
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	respond(w, http.StatusOK, view)
}

// GetPageHandler renders the selector page.
func (s *WeatherServer) GetPageHandler(w http.ResponseWriter, r *http.Request) {
	view, err := s.resolveView(r.URL.Query())
	if err != nil {
		logger.Error(err)
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	page, err := renderPage(view)
	if err != nil {
		logger.Error(fmt.Errorf("failed to render page: %v", err))
		respondErr(w, http.StatusInternalServerError, err)
		return
	}

	respondHTML(w, http.StatusOK, page)
}

func (s *WeatherServer) resolveView(params url.Values) (*model.View, error) {
	req, err := validateQueryParams(params)
	if err != nil {
		return nil, err
	}

	sel := req.selection
	switch {
	case req.initial:
		sel = s.selector.Initial()
	case req.changed != "":
		sel, err = s.selector.Apply(sel, req.changed, changedValue(req))
		if err != nil {
			return nil, fmt.Errorf("failed to apply %s change: %w", req.changed, err)
		}
	}

	return s.selector.Render(sel), nil
}

func validateQueryParams(params url.Values) (*selectionRequest, error) {
	req := &selectionRequest{
		selection: model.Selection{
			State:     params.Get("state"),
			StationID: params.Get("station"),
			Year:      params.Get("year"),
		},
	}

	changed := model.Control(params.Get("changed"))
	switch changed {
	case "":
		req.initial = !params.Has("state") && !params.Has("station") && !params.Has("year")
	case model.ControlState, model.ControlStation, model.ControlYear:
		if !params.Has(string(changed)) {
			return nil, fmt.Errorf("%s parameter not provided in query", changed)
		}
		req.changed = changed
	default:
		return nil, errors.New("invalid changed parameter, expected state, station or year")
	}

	return req, nil
}

func changedValue(req *selectionRequest) string {
	switch req.changed {
	case model.ControlState:
		return req.selection.State
	case model.ControlStation:
		return req.selection.StationID
	default:
		return req.selection.Year
	}
}
