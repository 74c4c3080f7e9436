package chart

import (
	"errors"
	"fmt"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("chart: unknown output format")

// Format is an output image format.
type Format int

const (
	FormatPNG Format = iota
	FormatSVG
)

// ParseFormat parses "png" or "svg", ignoring case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Ext returns the file extension without a leading dot.
func (f Format) Ext() string {
	if f == FormatSVG {
		return "svg"
	}
	return "png"
}

// String implements fmt.Stringer.
func (f Format) String() string { return f.Ext() }

func (f Format) provider() gochart.RendererProvider {
	if f == FormatSVG {
		return gochart.SVG
	}
	return gochart.PNG
}
