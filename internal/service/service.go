// Package service derives the cascading state, station and year choices from a station list.
package service

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/katiamach/heatrisk-calendars/internal/model"
)

// AllStates is the state filter that matches every station.
const AllStates = "ALL"

// AverageToken is the year token of the synthetic average view.
const AverageToken = "avg"

// AverageYear is the year the average calendar is rendered onto.
const AverageYear = 2026

// ImageDir is the path prefix of the generated calendar images.
const ImageDir = "img"

// Placeholder texts shown when there are no stations.
const (
	NoStationsMessage = "No stations yet — run the generator."
	NoStationsHint    = "Run python3 src/generate_calendars.py to generate stations.js and images."
)

const allStatesLabel = "All states"

// CalendarService provides the selector functionality over a fixed station list.
type CalendarService struct {
	stations []*model.Station
	byID     map[string]*model.Station
}

// New creates new CalendarService. The list is not copied and must not be modified afterwards.
func New(stations []*model.Station) *CalendarService {
	byID := make(map[string]*model.Station, len(stations))
	for _, st := range stations {
		// first record wins, like a linear search would
		if _, ok := byID[st.ID]; !ok {
			byID[st.ID] = st
		}
	}

	return &CalendarService{
		stations: stations,
		byID:     byID,
	}
}

// Empty reports whether there are no stations to select from.
func (cs *CalendarService) Empty() bool {
	return len(cs.stations) == 0
}

// States returns AllStates followed by the distinct non-empty state codes in ascending order.
func (cs *CalendarService) States() []string {
	seen := make(map[string]struct{})
	codes := make([]string, 0)

	for _, st := range cs.stations {
		if st.State == "" {
			continue
		}
		if _, ok := seen[st.State]; ok {
			continue
		}
		seen[st.State] = struct{}{}
		codes = append(codes, st.State)
	}

	sort.Strings(codes)

	return append([]string{AllStates}, codes...)
}

// FilteredStations returns stations in the given state sorted by display name.
func (cs *CalendarService) FilteredStations(state string) []*model.Station {
	if state == "" {
		state = AllStates
	}

	filtered := make([]*model.Station, 0, len(cs.stations))
	for _, st := range cs.stations {
		if state == AllStates || st.State == state {
			filtered = append(filtered, st)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return sortKey(filtered[i]) < sortKey(filtered[j])
	})

	return filtered
}

// YearOptions returns the declared years of the station followed by the average entry.
// An unknown station id falls back to the first station of the filtered list.
func (cs *CalendarService) YearOptions(stationID, state string) []model.Option {
	st := cs.resolveStation(stationID, state)
	if st == nil {
		return nil
	}

	options := make([]model.Option, 0, len(st.Years)+1)
	for _, y := range st.Years {
		year := strconv.Itoa(y)
		options = append(options, model.Option{Value: year, Label: year})
	}

	return append(options, model.Option{
		Value: AverageToken,
		Label: fmt.Sprintf("Average (%d)", AverageYear),
	})
}

// Display computes the image path and caption for a station and year token.
func (cs *CalendarService) Display(stationID, yearToken string) model.Display {
	year := yearToken
	if yearToken == AverageToken {
		year = strconv.Itoa(AverageYear)
	}

	// the caption keeps the raw token, "avg" included
	caption := fmt.Sprintf("%s — %s", stationID, yearToken)
	if st, ok := cs.byID[stationID]; ok {
		caption = fmt.Sprintf("%s (%s) — %s", st.Name, stationID, yearToken)
	}

	return model.Display{
		ImagePath: fmt.Sprintf("%s/%s_%s.png", ImageDir, stationID, year),
		Caption:   caption,
	}
}

func (cs *CalendarService) resolveStation(stationID, state string) *model.Station {
	if st, ok := cs.byID[stationID]; ok {
		return st
	}

	filtered := cs.FilteredStations(state)
	if len(filtered) == 0 {
		return nil
	}

	return filtered[0]
}

func sortKey(st *model.Station) string {
	if st.Name != "" {
		return st.Name
	}

	return st.ID
}

func stationLabel(st *model.Station) string {
	return fmt.Sprintf("%s (%s)", st.Name, st.ID)
}

func stateLabel(code string) string {
	if code == AllStates {
		return allStatesLabel
	}

	return code
}
