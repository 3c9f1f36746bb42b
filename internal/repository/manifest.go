package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/katiamach/heatrisk-calendars/internal/model"
)

// Manifest errors.
var (
	ErrManifestNotFound    = errors.New("stations manifest does not exist")
	ErrUnsupportedManifest = errors.New("unsupported stations manifest format, expected .js, .json, .yaml or .yml")
)

// matches the `window.HEATRISK_STATIONS =` assignment written by the generator
var scriptAssignmentRegExp = regexp.MustCompile(`^\s*(?:(?:var|let|const)\s+)?[A-Za-z_$][\w$.]*\s*=\s*`)

// ManifestSource reads stations from a manifest file on every call.
type ManifestSource struct {
	path    string
	charset string
}

// NewManifestSource creates new ManifestSource.
func NewManifestSource(path, charset string) *ManifestSource {
	return &ManifestSource{path: path, charset: charset}
}

// GetStations loads the manifest.
func (ms *ManifestSource) GetStations(_ context.Context) ([]*model.Station, error) {
	return LoadManifest(ms.path, ms.charset)
}

// LoadManifest reads a stations manifest, picking the decoder by file extension.
// The file content is decoded from charset first; an empty charset means utf-8.
func LoadManifest(path, charset string) ([]*model.Station, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var decode func([]byte) ([]*model.Station, error)
	switch ext {
	case ".js":
		decode = decodeScript
	case ".json":
		decode = decodeJSON
	case ".yaml", ".yml":
		decode = decodeYAML
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedManifest, path)
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()

	reader, err := charsetReader(f, charset)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	stations, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", path, err)
	}

	return stations, nil
}

func charsetReader(r io.Reader, charset string) (io.Reader, error) {
	if charset == "" {
		return r, nil
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("unknown manifest charset %q: %w", charset, err)
	}

	return transform.NewReader(r, enc.NewDecoder()), nil
}

// decodeScript parses the generator's stations.js. Its object literals with bare keys
// are valid YAML flow mappings, so after dropping the assignment the array is YAML.
func decodeScript(data []byte) ([]*model.Station, error) {
	body := bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	loc := scriptAssignmentRegExp.FindIndex(body)
	if loc == nil {
		return nil, errors.New("stations assignment not found")
	}

	body = bytes.TrimSpace(body[loc[1]:])
	body = bytes.TrimSuffix(body, []byte(";"))

	return decodeYAML(body)
}

func decodeJSON(data []byte) ([]*model.Station, error) {
	var stations []*model.Station
	if err := json.Unmarshal(data, &stations); err != nil {
		return nil, err
	}

	return compact(stations), nil
}

func decodeYAML(data []byte) ([]*model.Station, error) {
	var stations []*model.Station
	if err := yaml.Unmarshal(data, &stations); err != nil {
		return nil, err
	}

	return compact(stations), nil
}

// compact drops null entries.
func compact(stations []*model.Station) []*model.Station {
	out := make([]*model.Station, 0, len(stations))
	for _, st := range stations {
		if st != nil {
			out = append(out, st)
		}
	}

	return out
}
