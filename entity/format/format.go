package format

import "fmt"

// Format selects the rendered output of an analysis run.
type Format int8

const (
	HTML Format = iota
	Csv
	JSON
)

func UnmarshalText(text string) (Format, error) {
	switch text {
	case "html":
		return HTML, nil
	case "csv":
		return Csv, nil
	case "json":
		return JSON, nil
	default:
		return 0, fmt.Errorf("invalid format: %q", text)
	}
}
