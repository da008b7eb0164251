// Package palette reads color palettes stored as text, one "R, G, B" record per line.
package palette

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Size is the number of entries a complete palette has
const Size = 256

// Separator splits the components of a record
const Separator = ", "

// Record is one palette entry. The components are kept as the text found in the input.
type Record struct {
	R string
	G string
	B string
}

// Palette holds the records in input order
type Palette []Record

// FormatError is returned for a line that does not hold exactly three components
type FormatError struct {
	Line int
	Text string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: expected 3 components separated by %q, got %q", e.Line, Separator, e.Text)
}

// RangeError is returned when a component is not an 8-bit unsigned integer
type RangeError struct {
	Component string
	Value     string
	Err       error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("component %s: %q is not a decimal integer in 0..255", e.Component, e.Value)
}

func (e *RangeError) Unwrap() error {
	return e.Err
}

func parseRecord(line string) (Record, bool) {
	tokens := strings.Split(strings.TrimSpace(line), Separator)
	if len(tokens) != 3 {
		return Record{}, false
	}
	return Record{
		R: strings.TrimSpace(tokens[0]),
		G: strings.TrimSpace(tokens[1]),
		B: strings.TrimSpace(tokens[2]),
	}, true
}

// Parse reads one record per line from r
func Parse(r io.Reader) (Palette, error) {
	var p Palette
	scanner := bufio.NewScanner(r)
	n := 1
	for ; scanner.Scan(); n++ {
		rec, ok := parseRecord(scanner.Text())
		if !ok {
			return nil, &FormatError{Line: n, Text: scanner.Text()}
		}
		p = append(p, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", n, err)
	}
	return p, nil
}

// ReadFile parses the palette stored in the file at path
func ReadFile(path string) (Palette, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	p, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// component parses value as it will be read by a C compiler. Leading zeros
// are rejected since C reads those as octal.
func component(name, value string) (float64, error) {
	v, err := strconv.ParseUint(value, 10, 8)
	if err != nil {
		return 0, &RangeError{Component: name, Value: value, Err: err}
	}
	if strconv.FormatUint(v, 10) != value {
		return 0, &RangeError{Component: name, Value: value}
	}
	return float64(v) / 255, nil
}

// Color converts the record to a color, failing unless every component is in 0..255.
func (rec Record) Color() (colorful.Color, error) {
	r, err := component("R", rec.R)
	if err != nil {
		return colorful.Color{}, err
	}
	g, err := component("G", rec.G)
	if err != nil {
		return colorful.Color{}, err
	}
	b, err := component("B", rec.B)
	if err != nil {
		return colorful.Color{}, err
	}
	return colorful.Color{R: r, G: g, B: b}, nil
}

// Validate checks that p has exactly Size entries and that all of them are valid colors.
func (p Palette) Validate() error {
	for i, rec := range p {
		if _, err := rec.Color(); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	if len(p) != Size {
		return fmt.Errorf("palette has %d entries, want %d", len(p), Size)
	}
	return nil
}

// Lookup returns the color at index, the way a renderer maps palette indices
// to RGB when drawing from the generated table. Indices outside the palette and entries
// that are not valid colors give black.
func (p Palette) Lookup(index int) colorful.Color {
	if index < 0 || index >= len(p) {
		return colorful.Color{}
	}
	c, err := p[index].Color()
	if err != nil {
		return colorful.Color{}
	}
	return c
}
