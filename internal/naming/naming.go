// Package naming looks up human-readable names for colours in a dataset of
// name/hex pairs, falling back to the nearest entry by RGB distance.
package naming

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/jmylchreest/harmonia/internal/colour"
)

// ErrNotFound is returned when no entry matches, either because the dataset
// is empty or because nearest matching was not requested.
var ErrNotFound = errors.New("colour name not found")

// Entry is one named colour, in the shape used by color-name-list
// (e.g. {"name": "Radioactive Lilypad", "hex": "#66dd00"}).
type Entry struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Match is the result of a lookup. Exact matches carry only the name; nearest
// matches also carry the matched entry's hex and its distance from the query.
type Match struct {
	Name     string  `json:"name"`
	Value    string  `json:"value,omitempty"`
	Distance float64 `json:"distance,omitempty"`
	Exact    bool    `json:"exact"`
}

type namedColour struct {
	name string
	hex  string
	rgb  colour.RGB
}

// Dataset is an immutable, indexed set of named colours.
type Dataset struct {
	colours []namedColour
	byHex   map[string]string
}

// New builds a Dataset. Every hex value is normalised; when two entries share
// a hex value the first one wins exact lookups.
func New(entries []Entry) (*Dataset, error) {
	d := &Dataset{
		colours: make([]namedColour, 0, len(entries)),
		byHex:   make(map[string]string, len(entries)),
	}
	for i, e := range entries {
		rgb, err := colour.NormalizeRGB(colour.Hex(e.Hex))
		if err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i, e.Name, err)
		}
		hex := colourHex(rgb)
		d.colours = append(d.colours, namedColour{name: e.Name, hex: hex, rgb: rgb})
		if _, exists := d.byHex[hex]; !exists {
			d.byHex[hex] = e.Name
		}
	}
	return d, nil
}

// LoadJSON reads a JSON array of entries, at most MaxDatasetSize bytes.
func LoadJSON(r io.Reader) (*Dataset, error) {
	var entries []Entry
	if err := json.NewDecoder(newLimitedReader(r, MaxDatasetSize)).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode colour names: %w", err)
	}
	return New(entries)
}

// LoadFile reads a JSON dataset from path.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path) // #nosec G304 -- path is a user-supplied dataset
	if err != nil {
		return nil, fmt.Errorf("failed to open colour names: %w", err)
	}
	defer f.Close()
	return LoadJSON(f)
}

// Len returns the number of entries.
func (d *Dataset) Len() int {
	return len(d.colours)
}

// Lookup names the colour in. An exact hex match returns just the name. If
// there is none and nearest is true, the entry closest by Euclidean RGB
// distance is returned with the distance rounded to 4 decimal places.
func (d *Dataset) Lookup(in colour.Input, nearest bool) (Match, error) {
	rgb, err := colour.NormalizeRGB(in)
	if err != nil {
		return Match{}, err
	}

	if name, ok := d.byHex[colourHex(rgb)]; ok {
		return Match{Name: name, Exact: true}, nil
	}
	if !nearest || len(d.colours) == 0 {
		return Match{}, ErrNotFound
	}

	best := 0
	bestDist := math.MaxFloat64
	for i, c := range d.colours {
		if dist := distance(rgb, c.rgb); dist < bestDist {
			best, bestDist = i, dist
		}
	}

	return Match{
		Name:     d.colours[best].name,
		Value:    d.colours[best].hex,
		Distance: math.Round(bestDist*1e4) / 1e4,
	}, nil
}

// distance is the plain Euclidean distance between two colours in RGB space.
func distance(a, b colour.RGB) float64 {
	dr := float64(a.R - b.R)
	dg := float64(a.G - b.G)
	db := float64(a.B - b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// colourHex formats a validated colour; it cannot fail.
func colourHex(rgb colour.RGB) string {
	hex, _ := colour.RGBToHex(rgb)
	return hex
}
