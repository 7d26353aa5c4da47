package config

import "github.com/riordanpawley/memento-mori/internal/domain"

// Overrides holds raw command-line values; nil means the flag was not given
type Overrides struct {
	Color     *string
	Birthdate *string
}

// Decision records what happened to one override
type Decision int

const (
	NotGiven Decision = iota
	Accepted
	Ignored
)

func (d Decision) String() string {
	switch d {
	case Accepted:
		return "accepted"
	case Ignored:
		return "ignored"
	default:
		return "not given"
	}
}

// Applied reports the decision taken for each override
type Applied struct {
	Color     Decision
	Birthdate Decision
}

// ApplyOverrides merges valid overrides into cfg. Invalid values are ignored
// and leave the corresponding field untouched.
func ApplyOverrides(cfg Config, o Overrides) (Config, Applied) {
	var applied Applied

	if o.Color != nil {
		if domain.IsValidColor(*o.Color) {
			cfg.Color = *o.Color
			applied.Color = Accepted
		} else {
			applied.Color = Ignored
		}
	}

	if o.Birthdate != nil {
		if domain.IsValidBirthdate(*o.Birthdate) {
			cfg = cfg.WithBirthdate(*o.Birthdate)
			applied.Birthdate = Accepted
		} else {
			applied.Birthdate = Ignored
		}
	}

	return cfg, applied
}
