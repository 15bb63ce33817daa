package mode

import "fmt"

// Mode selects how measurement input is laid out: one "fringe displacement"
// pair per line, or two parallel whitespace-separated columns.
type Mode uint8

const (
	Pairs Mode = iota
	Columns
)

func UnmarshalText(text string) (Mode, error) {
	switch text {
	case "pairs":
		return Pairs, nil
	case "columns":
		return Columns, nil
	default:
		return 0, fmt.Errorf("invalid mode: %q", text)
	}
}
