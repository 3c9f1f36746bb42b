// Package model holds the station records and selection types shared by the service and transport layers.
package model

// Station is one monitoring station listed in the generator manifest.
type Station struct {
	ID    string `json:"id" yaml:"id" bson:"id"`
	Name  string `json:"name" yaml:"name" bson:"name"`
	State string `json:"state" yaml:"state" bson:"state"`
	Years []int  `json:"years" yaml:"years" bson:"years"`
}

// Selection is the current value of the three selectors.
type Selection struct {
	State     string `json:"state"`
	StationID string `json:"station"`
	Year      string `json:"year"`
}

// Option is a single dropdown entry.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Display is the image reference and caption derived from a selection.
type Display struct {
	ImagePath string `json:"image"`
	Caption   string `json:"caption"`
}

// Control names the selector that changed.
type Control string

// Selectors.
const (
	ControlState   Control = "state"
	ControlStation Control = "station"
	ControlYear    Control = "year"
)

// View is a selection projected onto everything the page shows.
type View struct {
	Empty       bool      `json:"empty"`
	Placeholder string    `json:"placeholder,omitempty"`
	States      []Option  `json:"states"`
	Stations    []Option  `json:"stations"`
	Years       []Option  `json:"years"`
	Selection   Selection `json:"selection"`
	Display     Display   `json:"display"`
}
