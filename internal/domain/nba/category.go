package nba

import (
	"fmt"
	"strings"
)

// Category selects the statistic players are ranked by.
type Category string

// Ranking categories offered by the explorer.
const (
	Points   Category = "points"
	Rebounds Category = "rebounds"
	Assists  Category = "assists"
)

// Categories lists the ranking categories in display order.
var Categories = []Category{Points, Rebounds, Assists}

// ParseCategory accepts a category name in any case. The upstream field name
// totReb is accepted for rebounds.
func ParseCategory(raw string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "points", "pts":
		return Points, nil
	case "rebounds", "reb", "totreb":
		return Rebounds, nil
	case "assists", "ast":
		return Assists, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, raw)
}

// Label is the title-case display name.
func (c Category) Label() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// Value extracts the category's number from a box score line.
func (c Category) Value(s PlayerGameStat) int {
	switch c {
	case Rebounds:
		return s.Rebounds
	case Assists:
		return s.Assists
	default:
		return s.Points
	}
}
