// Package extract infers structured game facts from free-form blog prose.
//
// No structured data source exists for this blog, so everything here is
// heuristic: ordered pattern cascades with early termination and sentinel
// values ("Unknown") instead of errors. The cascade order is a deliberate
// tie-break policy and must not be reordered.
package extract

import "strings"

const (
	// OwnTeam is the team this blog covers.
	OwnTeam = "Spurs"
	// OwnCity is the team's city.
	OwnCity = "San Antonio"

	// Unknown is the sentinel for facts that could not be recovered.
	Unknown = "Unknown"
)

// NBATeams is the canonical registry of official team names, in alphabetical
// order. Substring lookups resolve to the first registry-order match.
var NBATeams = []string{
	"76ers",
	"Bucks",
	"Bulls",
	"Cavaliers",
	"Celtics",
	"Clippers",
	"Grizzlies",
	"Hawks",
	"Heat",
	"Hornets",
	"Jazz",
	"Kings",
	"Knicks",
	"Lakers",
	"Magic",
	"Mavericks",
	"Nets",
	"Nuggets",
	"Pacers",
	"Pelicans",
	"Pistons",
	"Raptors",
	"Rockets",
	"Spurs",
	"Suns",
	"Thunder",
	"Timberwolves",
	"Trail Blazers",
	"Warriors",
	"Wizards",
}

// TeamCity maps a city to its team(s). Los Angeles is the only city with two
// teams; its list order decides the default when nothing disambiguates.
type TeamCity struct {
	City  string
	Teams []string
}

// TeamCities is the city lookup table, ordered to keep scans deterministic.
var TeamCities = []TeamCity{
	{"Philadelphia", []string{"76ers"}},
	{"Milwaukee", []string{"Bucks"}},
	{"Chicago", []string{"Bulls"}},
	{"Cleveland", []string{"Cavaliers"}},
	{"Boston", []string{"Celtics"}},
	{"Los Angeles", []string{"Clippers", "Lakers"}},
	{"Memphis", []string{"Grizzlies"}},
	{"Atlanta", []string{"Hawks"}},
	{"Miami", []string{"Heat"}},
	{"Charlotte", []string{"Hornets"}},
	{"Utah", []string{"Jazz"}},
	{"Sacramento", []string{"Kings"}},
	{"New York", []string{"Knicks"}},
	{"Orlando", []string{"Magic"}},
	{"Dallas", []string{"Mavericks"}},
	{"Brooklyn", []string{"Nets"}},
	{"Denver", []string{"Nuggets"}},
	{"Indiana", []string{"Pacers"}},
	{"New Orleans", []string{"Pelicans"}},
	{"Detroit", []string{"Pistons"}},
	{"Toronto", []string{"Raptors"}},
	{"Houston", []string{"Rockets"}},
	{"San Antonio", []string{"Spurs"}},
	{"Phoenix", []string{"Suns"}},
	{"Oklahoma City", []string{"Thunder"}},
	{"Minnesota", []string{"Timberwolves"}},
	{"Portland", []string{"Trail Blazers"}},
	{"Golden State", []string{"Warriors"}},
	{"Washington", []string{"Wizards"}},
}

// NormalizeTeam maps a raw extracted token to a canonical team name.
//
// Resolution order: exact case-insensitive team name, team name contained in
// the token, exact city name, city name contained in the token. A city with
// multiple teams resolves to the first team in its list. Unresolvable tokens
// come back unchanged; the empty token comes back as Unknown.
func NormalizeTeam(raw string) string {
	if raw == "" {
		return Unknown
	}

	lower := strings.ToLower(raw)
	for _, team := range NBATeams {
		teamLower := strings.ToLower(team)
		if teamLower == lower || strings.Contains(lower, teamLower) {
			return team
		}
	}

	for _, tc := range TeamCities {
		cityLower := strings.ToLower(tc.City)
		if cityLower == lower || strings.Contains(lower, cityLower) {
			return tc.Teams[0]
		}
	}

	return raw
}

// containsFold reports whether substr occurs in s, ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// countFold counts non-overlapping occurrences of substr in s, ignoring case.
func countFold(s, substr string) int {
	return strings.Count(strings.ToLower(s), strings.ToLower(substr))
}
