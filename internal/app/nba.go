package service

import (
	"context"
	"errors"
	"time"

	"github.com/okian/explorer/internal/adapters/nbaapi"
	"github.com/okian/explorer/internal/domain/memo"
	"github.com/okian/explorer/internal/domain/nba"
	"github.com/okian/explorer/pkg/logger"
	"github.com/okian/explorer/pkg/metrics"
)

const keyTeams = "nba/teams"

// TeamGames is a team's games for a season, optionally narrowed to one day.
type TeamGames struct {
	Team   nba.Team   `json:"team"`
	Season int        `json:"season"`
	Date   string     `json:"date,omitempty"`
	Games  []nba.Game `json:"games"`
}

// TeamArena is a team's home venue.
type TeamArena struct {
	Team  nba.Team  `json:"team"`
	Arena nba.Arena `json:"arena"`
}

// TeamLeaders is a team's top players in one statistic.
type TeamLeaders struct {
	Team     nba.Team     `json:"team"`
	Season   int          `json:"season"`
	Category nba.Category `json:"category"`
	Leaders  []nba.Leader `json:"leaders"`
}

// Seasons is the season picker. Fallback is set when the list came from the
// built-in range because upstream could not provide one.
type Seasons struct {
	Seasons  []int `json:"seasons"`
	Fallback bool  `json:"fallback"`
}

// Teams lists the NBA franchises.
func (s *Session) Teams(ctx context.Context) ([]nba.Team, error) {
	all, err := s.allTeams(ctx)
	if err != nil {
		return nil, err
	}
	teams := nba.FranchiseTeams(all)
	if len(teams) == 0 {
		return nil, nba.ErrNoData
	}
	return teams, nil
}

// allTeams is memoized for the session; every team lookup needs it.
func (s *Session) allTeams(ctx context.Context) ([]nba.Team, error) {
	teams, hit, err := memo.Do(ctx, s.cache, keyTeams, s.nba.Teams)
	if hit {
		metrics.RecordCacheHit("teams")
	} else {
		metrics.RecordCacheMiss("teams")
	}
	return teams, err
}

func (s *Session) team(ctx context.Context, query string) (nba.Team, error) {
	teams, err := s.allTeams(ctx)
	if err != nil {
		return nba.Team{}, err
	}
	return nba.FindTeam(teams, query)
}

// TeamGames lists a team's games for a season. With a date only that day's
// games are returned.
func (s *Session) TeamGames(ctx context.Context, q GamesQuery) (TeamGames, error) {
	if err := s.svc.validateQuery(q); err != nil {
		return TeamGames{}, err
	}
	var day time.Time
	if q.Date != "" {
		d, err := nba.ParseDay(q.Date)
		if err != nil {
			return TeamGames{}, invalid(err)
		}
		day = d
	}

	team, err := s.team(ctx, q.Team)
	if err != nil {
		return TeamGames{}, err
	}
	season := s.svc.season(q.Season)
	games, err := s.nba.Games(ctx, season, team.ID)
	if err != nil {
		return TeamGames{}, err
	}

	out := TeamGames{Team: team, Season: season, Date: q.Date, Games: games}
	if !day.IsZero() {
		out.Games = nba.GamesOnDate(games, day)
	}
	if len(out.Games) == 0 {
		return out, nba.ErrNoData
	}
	return out, nil
}

// TeamLocation returns a team's arena coordinates.
func (s *Session) TeamLocation(ctx context.Context, q TeamQuery) (TeamArena, error) {
	if err := s.svc.validateQuery(q); err != nil {
		return TeamArena{}, err
	}
	team, err := s.team(ctx, q.Team)
	if err != nil {
		return TeamArena{}, err
	}
	arena, err := nba.TeamLocation(team)
	if err != nil {
		return TeamArena{Team: team}, err
	}
	return TeamArena{Team: team, Arena: arena}, nil
}

// TeamLeaders ranks a team's players by summing their per-game statistics
// for the season.
func (s *Session) TeamLeaders(ctx context.Context, q LeadersQuery) (TeamLeaders, error) {
	if err := s.svc.validateQuery(q); err != nil {
		return TeamLeaders{}, err
	}
	category, err := nba.ParseCategory(q.Category)
	if err != nil {
		return TeamLeaders{}, invalid(err)
	}
	limit := q.Limit
	if limit == 0 {
		limit = nba.DefaultLeaders
	}

	team, err := s.team(ctx, q.Team)
	if err != nil {
		return TeamLeaders{}, err
	}
	season := s.svc.season(q.Season)
	stats, err := s.nba.PlayerStatistics(ctx, nbaapi.StatFilter{TeamID: team.ID, Season: season})
	if err != nil {
		return TeamLeaders{}, err
	}
	// Team box scores include opponents' lines on some plans.
	own := stats[:0:0]
	for _, st := range stats {
		if st.TeamID == 0 || st.TeamID == team.ID {
			own = append(own, st)
		}
	}

	leaders, err := nba.Leaders(own, category, limit)
	if err != nil {
		return TeamLeaders{}, err
	}
	return TeamLeaders{Team: team, Season: season, Category: category, Leaders: leaders}, nil
}

// Standings lists standard-league standings for a season.
func (s *Session) Standings(ctx context.Context, q StandingsQuery) ([]nba.Standing, error) {
	if err := s.svc.validateQuery(q); err != nil {
		return nil, err
	}
	rows, err := s.nba.Standings(ctx, s.svc.season(q.Season))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nba.ErrNoData
	}
	return rows, nil
}

// Seasons lists the known seasons newest first, falling back to the built-in
// range when upstream cannot answer.
func (s *Session) Seasons(ctx context.Context) (Seasons, error) {
	seasons, err := s.nba.Seasons(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return Seasons{}, err
		}
		s.logger.Warn(ctx, "could not fetch available seasons, using default range", logger.Error(err))
		return Seasons{Seasons: nba.DefaultSeasons(), Fallback: true}, nil
	}
	if len(seasons) == 0 {
		return Seasons{Seasons: nba.DefaultSeasons(), Fallback: true}, nil
	}
	return Seasons{Seasons: nba.SortSeasonsDesc(seasons)}, nil
}

// SearchPlayers finds players by name, or lists a team's roster for a season.
func (s *Session) SearchPlayers(ctx context.Context, q PlayerQuery) ([]nba.Player, error) {
	if err := s.svc.validateQuery(q); err != nil {
		return nil, err
	}
	filter := nbaapi.PlayerFilter{Search: q.Search, Season: q.Season}
	if q.Team != "" {
		team, err := s.team(ctx, q.Team)
		if err != nil {
			return nil, err
		}
		filter.TeamID = team.ID
		filter.Season = s.svc.season(q.Season)
	}
	players, err := s.nba.Players(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return nil, nba.ErrNoData
	}
	return players, nil
}

// PlayerStatistics lists a player's per-game statistics for a season.
func (s *Session) PlayerStatistics(ctx context.Context, q PlayerStatsQuery) ([]nba.PlayerGameStat, error) {
	if err := s.svc.validateQuery(q); err != nil {
		return nil, err
	}
	stats, err := s.nba.PlayerStatistics(ctx, nbaapi.StatFilter{PlayerID: q.PlayerID, Season: s.svc.season(q.Season)})
	if err != nil {
		return nil, err
	}
	if len(stats) == 0 {
		return nil, nba.ErrNoData
	}
	return stats, nil
}
