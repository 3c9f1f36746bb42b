package service

import (
	"errors"

	"github.com/katiamach/heatrisk-calendars/internal/model"
)

// ErrUnknownControl is returned for a change event on a selector that does not exist.
var ErrUnknownControl = errors.New("unknown control, expected state, station or year")

// Initial returns the selection shown on first load.
func (cs *CalendarService) Initial() model.Selection {
	return cs.selectState(AllStates)
}

// Apply returns the selection after the given control changed to value.
// Every selector downstream of the changed one is reset to its first entry.
func (cs *CalendarService) Apply(sel model.Selection, control model.Control, value string) (model.Selection, error) {
	switch control {
	case model.ControlState:
		return cs.selectState(value), nil
	case model.ControlStation:
		return cs.selectStation(sel.State, value), nil
	case model.ControlYear:
		sel.Year = value
		return sel, nil
	default:
		return sel, ErrUnknownControl
	}
}

func (cs *CalendarService) selectState(state string) model.Selection {
	var stationID string

	filtered := cs.FilteredStations(state)
	if len(filtered) > 0 {
		stationID = filtered[0].ID
	}

	return cs.selectStation(state, stationID)
}

func (cs *CalendarService) selectStation(state, stationID string) model.Selection {
	sel := model.Selection{State: state, StationID: stationID}

	years := cs.YearOptions(stationID, state)
	if len(years) > 0 {
		sel.Year = years[0].Value
	}

	return sel
}

// Render projects a selection onto the option lists and the display.
// A value missing from its rebuilt list is replaced by the first entry, as a select control would.
func (cs *CalendarService) Render(sel model.Selection) *model.View {
	if cs.Empty() {
		return &model.View{
			Empty:       true,
			Placeholder: NoStationsMessage,
			Display:     model.Display{Caption: NoStationsHint},
		}
	}

	states := cs.States()
	stateOptions := make([]model.Option, 0, len(states))
	for _, code := range states {
		stateOptions = append(stateOptions, model.Option{Value: code, Label: stateLabel(code)})
	}
	sel.State = pick(stateOptions, sel.State)

	filtered := cs.FilteredStations(sel.State)
	stationOptions := make([]model.Option, 0, len(filtered))
	for _, st := range filtered {
		stationOptions = append(stationOptions, model.Option{Value: st.ID, Label: stationLabel(st)})
	}
	sel.StationID = pick(stationOptions, sel.StationID)

	years := cs.YearOptions(sel.StationID, sel.State)
	sel.Year = pick(years, sel.Year)

	return &model.View{
		States:    stateOptions,
		Stations:  stationOptions,
		Years:     years,
		Selection: sel,
		Display:   cs.Display(sel.StationID, sel.Year),
	}
}

// pick returns value if it is one of the options, else the first option's value.
func pick(options []model.Option, value string) string {
	for _, o := range options {
		if o.Value == value {
			return value
		}
	}

	if len(options) == 0 {
		return ""
	}

	return options[0].Value
}
