package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/aqbifzl/rscheck/pkg/checker"
)

// Format names an output format.
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// Formats lists the accepted format names.
var Formats = []Format{FormatText, FormatJSON, FormatMsgpack}

// ParseFormat maps a user supplied name to a Format.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want text, json or msgpack)", name)
}

// New returns the reporter for format writing to w.
// color only affects the text format.
func New(format Format, w io.Writer, color bool) (checker.Reporter, error) {
	switch format {
	case FormatText, "":
		return NewTextReporter(w, color), nil
	case FormatJSON:
		return NewJSONReporter(w), nil
	case FormatMsgpack:
		return NewMsgpackReporter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
