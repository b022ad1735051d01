package game

import (
	"fmt"
	"strings"
)

// Variant selects the rule set. It is fixed for the lifetime of a game.
type Variant int

const (
	Normal Variant = iota
	Brazilian
)

func (v Variant) String() string {
	switch v {
	case Brazilian:
		return "brazilian"
	default:
		return "normal"
	}
}

func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal", "":
		return Normal, nil
	case "brazilian":
		return Brazilian, nil
	default:
		return Normal, fmt.Errorf("unknown game variant %q", s)
	}
}

// flyingKings reports whether kings slide and capture along whole diagonals
func (v Variant) flyingKings() bool {
	return v == Brazilian
}

// menCaptureBackward reports whether uncrowned pieces may capture behind them
func (v Variant) menCaptureBackward() bool {
	return v == Brazilian
}

func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
