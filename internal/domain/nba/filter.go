package nba

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Display limits for leader tables.
const (
	DefaultLeaders = 5
	MaxLeaders     = 15
)

// Season range used when the seasons endpoint is unavailable.
const (
	FirstDefaultSeason = 2001
	LastDefaultSeason  = 2023
)

// dayLayout matches the date prefix of upstream's start timestamps.
const dayLayout = "2006-01-02"

// FranchiseTeams keeps only NBA franchises, preserving order.
func FranchiseTeams(teams []Team) []Team {
	out := make([]Team, 0, len(teams))
	for _, t := range teams {
		if t.NBAFranchise {
			out = append(out, t)
		}
	}
	return out
}

// FindTeam resolves a team by numeric ID or by name, nickname or code,
// ignoring case.
func FindTeam(teams []Team, query string) (Team, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return Team{}, fmt.Errorf("%w: empty team", ErrTeamNotFound)
	}
	if id, err := strconv.Atoi(q); err == nil {
		for _, t := range teams {
			if t.ID == id {
				return t, nil
			}
		}
		return Team{}, fmt.Errorf("%w: id %d", ErrTeamNotFound, id)
	}
	for _, t := range teams {
		if strings.EqualFold(t.Name, q) || strings.EqualFold(t.Nickname, q) || strings.EqualFold(t.Code, q) {
			return t, nil
		}
	}
	return Team{}, fmt.Errorf("%w: %q", ErrTeamNotFound, q)
}

// GamesOnDate keeps the games whose start timestamp falls on day.
func GamesOnDate(games []Game, day time.Time) []Game {
	prefix := day.Format(dayLayout)
	var out []Game
	for _, g := range games {
		if strings.HasPrefix(g.Start, prefix) {
			out = append(out, g)
		}
	}
	return out
}

// ParseDay parses a YYYY-MM-DD date.
func ParseDay(raw string) (time.Time, error) {
	day, err := time.Parse(dayLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidOption, raw)
	}
	return day, nil
}

// TeamLocation returns the team's arena when it has coordinates.
func TeamLocation(t Team) (Arena, error) {
	if t.Arena == nil || t.Arena.Latitude == 0 || t.Arena.Longitude == 0 {
		return Arena{}, fmt.Errorf("%w: %s", ErrNoLocation, t.Name)
	}
	return *t.Arena, nil
}

// Leaders sums category per player across stats and returns the top n.
// Ties are ordered by last name, then player ID.
func Leaders(stats []PlayerGameStat, category Category, n int) ([]Leader, error) {
	if n < 1 || n > MaxLeaders {
		return nil, fmt.Errorf("%w: leader count %d outside [1, %d]", ErrInvalidOption, n, MaxLeaders)
	}
	if len(stats) == 0 {
		return nil, ErrNoData
	}

	index := make(map[int]int)
	var leaders []Leader
	for _, s := range stats {
		i, ok := index[s.PlayerID]
		if !ok {
			i = len(leaders)
			index[s.PlayerID] = i
			leaders = append(leaders, Leader{PlayerID: s.PlayerID, FirstName: s.FirstName, LastName: s.LastName})
		}
		leaders[i].Games++
		leaders[i].Total += category.Value(s)
	}
	for i := range leaders {
		leaders[i].PerGame = float64(leaders[i].Total) / float64(leaders[i].Games)
	}

	slices.SortStableFunc(leaders, func(a, b Leader) int {
		return cmp.Or(
			cmp.Compare(b.Total, a.Total),
			cmp.Compare(a.LastName, b.LastName),
			cmp.Compare(a.PlayerID, b.PlayerID),
		)
	})
	return leaders[:min(n, len(leaders))], nil
}

// SortSeasonsDesc returns the seasons newest first without duplicates.
func SortSeasonsDesc(seasons []int) []int {
	out := slices.Clone(seasons)
	slices.Sort(out)
	out = slices.Compact(out)
	slices.Reverse(out)
	return out
}

// DefaultSeasons is the fallback season list, newest first.
func DefaultSeasons() []int {
	out := make([]int, 0, LastDefaultSeason-FirstDefaultSeason+1)
	for y := LastDefaultSeason; y >= FirstDefaultSeason; y-- {
		out = append(out, y)
	}
	return out
}
