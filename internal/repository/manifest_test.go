package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tj/assert"

	"github.com/katiamach/heatrisk-calendars/internal/model"
)

// Shape written by generate_calendars.py.
const generatorManifest = `window.HEATRISK_STATIONS = [
  { id: "USW00023174", name: "LOS ANGELES INTL AP", state: "CA", years: [2020, 2021, 2022] },
  { id: "USW00094728", name: "NEW YORK CNTRL PK TWR", state: "NY", years: [2023] },
  { id: "USC00000001", name: "", state: "", years: [2019] },
];`

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, data, 0o600)
	assert.Nil(t, err)

	return path
}

func TestLoadManifest(t *testing.T) {
	expected := []*model.Station{
		{ID: "USW00023174", Name: "LOS ANGELES INTL AP", State: "CA", Years: []int{2020, 2021, 2022}},
		{ID: "USW00094728", Name: "NEW YORK CNTRL PK TWR", State: "NY", Years: []int{2023}},
		{ID: "USC00000001", Name: "", State: "", Years: []int{2019}},
	}

	cases := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "generator script",
			file:    "stations.js",
			content: generatorManifest,
		},
		{
			name: "json",
			file: "stations.json",
			content: `[
				{"id": "USW00023174", "name": "LOS ANGELES INTL AP", "state": "CA", "years": [2020, 2021, 2022]},
				{"id": "USW00094728", "name": "NEW YORK CNTRL PK TWR", "state": "NY", "years": [2023]},
				{"id": "USC00000001", "name": "", "state": "", "years": [2019]}
			]`,
		},
		{
			name: "yaml",
			file: "stations.yml",
			content: `- id: USW00023174
  name: LOS ANGELES INTL AP
  state: CA
  years: [2020, 2021, 2022]
- id: USW00094728
  name: NEW YORK CNTRL PK TWR
  state: NY
  years: [2023]
- id: USC00000001
  name: ""
  state: ""
  years: [2019]
`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, tc.file, []byte(tc.content))

			stations, err := LoadManifest(path, "utf-8")
			assert.Nil(t, err)
			assert.Equal(t, expected, stations)
		})
	}
}

func TestLoadManifestScriptVariants(t *testing.T) {
	cases := []struct {
		name     string
		content  string
		expected []*model.Station
	}{
		{
			name:     "empty generator output",
			content:  "window.HEATRISK_STATIONS = [\n];",
			expected: []*model.Station{},
		},
		{
			name:    "const declaration without trailing semicolon",
			content: `const STATIONS = [{ id: "A1", name: "Alpha: North, Inc.", state: "CA", years: [2020] }]`,
			expected: []*model.Station{
				{ID: "A1", Name: "Alpha: North, Inc.", State: "CA", Years: []int{2020}},
			},
		},
		{
			name:    "byte order mark",
			content: "\xef\xbb\xbfwindow.HEATRISK_STATIONS = [{ id: \"B1\", name: \"Beta\", state: \"NY\", years: [] }];",
			expected: []*model.Station{
				{ID: "B1", Name: "Beta", State: "NY", Years: []int{}},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "stations.js", []byte(tc.content))

			stations, err := LoadManifest(path, "")
			assert.Nil(t, err)
			assert.Equal(t, tc.expected, stations)
		})
	}
}

func TestLoadManifestCharset(t *testing.T) {
	// "Zürich" in ISO-8859-15
	content := append([]byte(`[{"id": "CH1", "name": "Z`), 0xfc)
	content = append(content, []byte(`rich", "state": "ZH", "years": [2021]}]`)...)
	path := writeFile(t, "stations.json", content)

	stations, err := LoadManifest(path, "iso-8859-15")
	assert.Nil(t, err)
	assert.Len(t, stations, 1)
	assert.Equal(t, "Zürich", stations[0].Name)
}

func TestLoadManifestErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadManifest(filepath.Join(dir, "stations.js"), "")
	assert.True(t, errors.Is(err, ErrManifestNotFound))

	_, err = LoadManifest(filepath.Join(dir, "stations.csv"), "")
	assert.True(t, errors.Is(err, ErrUnsupportedManifest))

	path := writeFile(t, "stations.js", []byte(`[{ id: "A1" }]`))
	_, err = LoadManifest(path, "")
	assert.NotNil(t, err)

	path = writeFile(t, "stations.json", []byte(`{"id": "A1"}`))
	_, err = LoadManifest(path, "")
	assert.NotNil(t, err)

	path = writeFile(t, "stations.json", []byte(`[]`))
	_, err = LoadManifest(path, "klingon")
	assert.NotNil(t, err)
}

func TestManifestSource(t *testing.T) {
	path := writeFile(t, "stations.js", []byte(generatorManifest))
	source := NewManifestSource(path, "utf-8")

	stations, err := source.GetStations(context.Background())
	assert.Nil(t, err)
	assert.Len(t, stations, 3)
	assert.Equal(t, "USW00023174", stations[0].ID)
}
