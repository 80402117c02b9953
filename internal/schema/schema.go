// Package schema defines the canonical column layouts for every supported
// statistic category. The registry is the contract between the raw stats
// pages and the normalizer: raw tables are positional, the registry says
// what each position means and how to coerce it.
//
// The column lists are calibration data for the upstream page layout and
// must be reproduced exactly; changing them breaks every downstream
// consumer of the canonical records.
package schema

import "fmt"

// Category identifies one of the six supported team-statistic groupings.
type Category string

const (
	GameStats     Category = "GAME_STATS"
	Scoring       Category = "SCORING"
	TeamPassing   Category = "TEAM_PASSING"
	Rushing       Category = "RUSHING"
	TeamReceiving Category = "TEAM_RECEIVING"
	OffensiveLine Category = "OFFENSIVE_LINE"
)

// Categories lists every supported category in display order.
var Categories = []Category{
	GameStats, Scoring, TeamPassing, Rushing, TeamReceiving, OffensiveLine,
}

// Role is the perspective a category is fetched for.
type Role string

const (
	Offense Role = "offense"
	Defense Role = "defense"
)

// SeasonType distinguishes regular season from playoffs.
type SeasonType string

const (
	RegularSeason SeasonType = "REG"
	Postseason    SeasonType = "POST"
)

// Transform is the per-column coercion rule applied by the normalizer.
type Transform string

const (
	// Identity keeps the cell as a string.
	Identity Transform = "identity"
	// Numeric strips thousands separators and parses a float64.
	Numeric Transform = "numeric"
	// Percentage parses a whole-number percentage and scales to [0,1].
	Percentage Transform = "percentage"
	// DurationMMSS parses "MM:SS" into total fractional minutes.
	DurationMMSS Transform = "duration_mm_ss"
	// CommaNumeric marks the designated yards columns that arrive
	// thousands-separator formatted (e.g. "1,234").
	CommaNumeric Transform = "comma_stripped_numeric"
)

// ColumnSpec binds a canonical column name to its transform. Position is
// its index in the per-category slice.
type ColumnSpec struct {
	Name      string
	Transform Transform
}

// UnknownCategoryError is returned when a lookup names a category outside
// the six supported ones.
type UnknownCategoryError struct {
	Category Category
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown stat category %q", string(e.Category))
}

// UnknownRoleError is returned when a category has no column list for the
// requested role.
type UnknownRoleError struct {
	Category Category
	Role     Role
}

func (e *UnknownRoleError) Error() string {
	return fmt.Sprintf("category %q has no %q variant", string(e.Category), string(e.Role))
}

// Lookup resolves the ordered column specs for a (category, role) pair.
func Lookup(category Category, role Role) ([]ColumnSpec, error) {
	variants, ok := registry[category]
	if !ok {
		return nil, &UnknownCategoryError{Category: category}
	}
	specs, ok := variants[role]
	if !ok {
		return nil, &UnknownRoleError{Category: category, Role: role}
	}
	return specs, nil
}

// ColumnNames returns the canonical column names for a (category, role)
// pair, in schema order.
func ColumnNames(category Category, role Role) ([]string, error) {
	specs, err := Lookup(category, role)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Name
	}
	return names, nil
}

// ParseCategory maps a request string (canonical name or URL slug) to a
// Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if s == string(c) || s == Slug(c) {
			return c, nil
		}
	}
	return "", &UnknownCategoryError{Category: Category(s)}
}

// Slug returns the URL path segment for a category on the stats site.
func Slug(c Category) string {
	return slugs[c]
}

var slugs = map[Category]string{
	GameStats:     "game-stats",
	Scoring:       "scoring",
	TeamPassing:   "passing",
	Rushing:       "rushing",
	TeamReceiving: "receiving",
	OffensiveLine: "offensive-line",
}
