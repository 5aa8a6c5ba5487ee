package bank

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSex is returned by ParseSex for unrecognised input.
var ErrUnknownSex = errors.New("unknown sex")

// Sex is the respondent's sex. Female and Male are its only values; the
// zero value is Female.
type Sex struct {
	male bool
}

var (
	Female = Sex{}
	Male   = Sex{male: true}
)

// Sexes returns both respondent sexes, Female first.
func Sexes() []Sex {
	return []Sex{Female, Male}
}

// String returns "female" or "male".
func (s Sex) String() string {
	if s.male {
		return "male"
	}
	return "female"
}

// Label returns the single-character Chinese label used in the UI.
func (s Sex) Label() string {
	if s.male {
		return "男"
	}
	return "女"
}

// Other returns the opposite sex.
func (s Sex) Other() Sex {
	return Sex{male: !s.male}
}

// MarshalText encodes the sex as "female" or "male".
func (s Sex) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts anything ParseSex accepts.
func (s *Sex) UnmarshalText(text []byte) error {
	parsed, err := ParseSex(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSex parses a respondent sex. There is no "unspecified" result:
// callers without a value must choose a default themselves.
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "female", "f", "女":
		return Female, nil
	case "male", "m", "男":
		return Male, nil
	default:
		return Sex{}, fmt.Errorf("%w: %q (want female or male)", ErrUnknownSex, s)
	}
}

// Constraint restricts a question to respondents of one sex.
type Constraint int

const (
	Any        Constraint = iota // asked of every respondent
	FemaleOnly                   // substituted for its MaleOnly pair
	MaleOnly
)

// Admits reports whether a respondent of sex s is asked a question with
// constraint c.
func (c Constraint) Admits(s Sex) bool {
	switch c {
	case Any:
		return true
	case FemaleOnly:
		return s == Female
	case MaleOnly:
		return s == Male
	default:
		return false
	}
}

// String returns "any", "female-only" or "male-only".
func (c Constraint) String() string {
	switch c {
	case Any:
		return "any"
	case FemaleOnly:
		return "female-only"
	case MaleOnly:
		return "male-only"
	default:
		return fmt.Sprintf("constraint(%d)", int(c))
	}
}
