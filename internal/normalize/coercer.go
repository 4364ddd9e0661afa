package normalize

import (
	"errors"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/baxromumarov/goalie-stats/internal/goalie"
)

// PlayerNameColumn is the identity column every loaded row must carry.
const PlayerNameColumn = "player_name"

// Coercer converts percentage strings to fractions and cleans player names.
type Coercer struct {
	fields []string
}

func NewCoercer(percentageFields []string) *Coercer {
	return &Coercer{fields: slices.Clone(percentageFields)}
}

// Coerce returns a copy of row with every configured percentage field that
// ends in % divided by 100 ("87.3%" -> "0.873"). Values without a trailing %
// are left alone, so coercing twice is the same as coercing once. The player
// name loses any leading rank number; a row left without a name fails with
// ErrMissingPlayerName.
func (c *Coercer) Coerce(row Row) (Row, error) {
	out := row.Clone()
	if out == nil {
		out = Row{}
	}

	for _, f := range c.fields {
		v, ok := out[f]
		if !ok {
			continue
		}
		s := strings.TrimSpace(v)
		if !strings.HasSuffix(s, "%") {
			continue
		}
		frac, err := parsePercent(strings.TrimSuffix(s, "%"))
		if err != nil {
			return nil, &UnitError{Field: f, Value: v, Err: err}
		}
		out[f] = frac
	}

	name := CleanPlayerName(out[PlayerNameColumn])
	if name == "" {
		return nil, ErrMissingPlayerName
	}
	out[PlayerNameColumn] = name
	return out, nil
}

// CleanPlayerName strips a rank number glued to the front of a name
// ("123John Doe" -> "John Doe"). Null tokens clean to "".
func CleanPlayerName(s string) string {
	if goalie.IsNull(s) {
		return ""
	}
	s = strings.TrimLeftFunc(strings.TrimSpace(s), unicode.IsDigit)
	return strings.TrimSpace(s)
}

func parsePercent(num string) (string, error) {
	num = strings.ReplaceAll(strings.TrimSpace(num), ",", "")
	if num == "" {
		return "", errors.New("no number before %")
	}
	// Shifting the exponent keeps the result the closest double to the
	// decimal value, so "87.3" gives exactly 0.873.
	f, err := strconv.ParseFloat(num+"e-2", 64)
	if err != nil {
		g, gerr := strconv.ParseFloat(num, 64)
		if gerr != nil {
			return "", err
		}
		f = g / 100
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", errors.New("not a finite number")
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}
