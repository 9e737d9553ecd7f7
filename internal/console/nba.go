package console

import (
	"context"
	"fmt"
	"strconv"

	service "github.com/okian/explorer/internal/app"
	"github.com/okian/explorer/internal/domain/nba"
)

func (r *Registry) registerNBACommands() {
	r.Register(&Command{
		Name:        "teams",
		ShortName:   "t",
		Group:       "NBA",
		Description: "List NBA franchises",
		Usage:       "teams",
		Handler:     r.teamsHandler,
	})
	r.Register(&Command{
		Name:        "games",
		ShortName:   "g",
		Group:       "NBA",
		Description: "List a team's games",
		Usage:       "games <team> [season] [date=YYYY-MM-DD]",
		Handler:     r.gamesHandler,
	})
	r.Register(&Command{
		Name:        "arena",
		ShortName:   "a",
		Group:       "NBA",
		Description: "Show a team's arena location",
		Usage:       "arena <team>",
		Handler:     r.arenaHandler,
	})
	r.Register(&Command{
		Name:        "leaders",
		Group:       "NBA",
		Description: "Rank a team's players by season totals",
		Usage:       "leaders <team> [season] [category=points|rebounds|assists] [limit=5]",
		Handler:     r.leadersHandler,
	})
	r.Register(&Command{
		Name:        "standings",
		ShortName:   "st",
		Group:       "NBA",
		Description: "Show league standings",
		Usage:       "standings [season]",
		Handler:     r.standingsHandler,
	})
	r.Register(&Command{
		Name:        "seasons",
		Group:       "NBA",
		Description: "List known seasons",
		Usage:       "seasons",
		Handler:     r.seasonsHandler,
	})
	r.Register(&Command{
		Name:        "players",
		ShortName:   "pl",
		Group:       "NBA",
		Description: "Search players or list a roster",
		Usage:       "players <search> | players team=<team> [season=2023]",
		Handler:     r.playersHandler,
	})
	r.Register(&Command{
		Name:        "playerstats",
		ShortName:   "ps",
		Group:       "NBA",
		Description: "Show a player's per-game statistics",
		Usage:       "playerstats <player-id> [season]",
		Handler:     r.playerStatsHandler,
	})
}

func team(a args) (string, error) {
	t := a.str("team", 0)
	if t == "" {
		return "", fmt.Errorf("%w: team required", ErrUsage)
	}
	return t, nil
}

func (r *Registry) teamsHandler(ctx context.Context, _ args) error {
	s, err := r.current(ctx)
	if err != nil {
		return err
	}
	teams, err := s.Teams(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(teams))
	for _, t := range teams {
		rows = append(rows, []string{strconv.Itoa(t.ID), t.Code, t.Name, t.City, t.Conference})
	}
	r.p.table([]string{"ID", "Code", "Name", "City", "Conference"}, rows)
	return nil
}

func (r *Registry) gamesHandler(ctx context.Context, a args) error {
	t, err := team(a)
	if err != nil {
		return err
	}
	season, err := a.num("season", 1)
	if err != nil {
		return err
	}
	s, err := r.current(ctx)
	if err != nil {
		return err
	}
	res, err := s.TeamGames(ctx, service.GamesQuery{Team: t, Season: season, Date: a.str("date", 2)})
	if err != nil {
		return err
	}
	r.p.title(fmt.Sprintf("%s games, %d season", res.Team.Name, res.Season))
	rows := make([][]string, 0, len(res.Games))
	for _, g := range res.Games {
		rows = append(rows, []string{
			g.Start, g.Visitors.Code, strconv.Itoa(g.Visitors.Points),
			g.Home.Code, strconv.Itoa(g.Home.Points), g.Status,
		})
	}
	r.p.table([]string{"Start", "Visitors", "Pts", "Home", "Pts", "Status"}, rows)
	return nil
}

func (r *Registry) arenaHandler(ctx context.Context, a args) error {
	t, err := team(a)
	if err != nil {
		return err
	}
	s, err := r.current(ctx)
	if err != nil {
		return err
	}
	res, err := s.TeamLocation(ctx, service.TeamQuery{Team: t})
	if err != nil {
		return err
	}
	r.p.title(res.Team.Name)
	r.p.table([]string{"Arena", "City", "Lat", "Lon"}, [][]string{{
		res.Arena.Name, res.Arena.City,
		strconv.FormatFloat(res.Arena.Latitude, 'f', 4, 64),
		strconv.FormatFloat(res.Arena.Longitude, 'f', 4, 64),
	}})
	return nil
}

func (r *Registry) leadersHandler(ctx context.Context, a args) error {
	t, err := team(a)
	if err != nil {
		return err
	}
	season, err := a.num("season", 1)
	if err != nil {
		return err
	}
	limit, err := a.num("limit", 3)
	if err != nil {
		return err
	}
	s, err := r.current(ctx)
	if err != nil {
		return err
	}
	res, err := s.TeamLeaders(ctx, service.LeadersQuery{
		Team: t, Season: season, Category: a.str("category", 2), Limit: limit,
	})
	if err != nil {
		return err
	}
	r.p.title(fmt.Sprintf("%s %s leaders, %d season", res.Team.Name, res.Category.Label(), res.Season))
	rows := make([][]string, 0, len(res.Leaders))
	for i, l := range res.Leaders {
		rows = append(rows, []string{
			strconv.Itoa(i + 1), l.FirstName + " " + l.LastName, strconv.Itoa(l.Games),
			strconv.Itoa(l.Total), strconv.FormatFloat(l.PerGame, 'f', 1, 64),
		})
	}
	r.p.table([]string{"#", "Player", "Games", "Total", "Per game"}, rows)
	return nil
}

func (r *Registry) standingsHandler(ctx context.Context, a args) error {
	season, err := a.num("season", 0)
	if err != nil {
		return err
	}
	s, err := r.current(ctx)
	if err != nil {
		return err
	}
	standings, err := s.Standings(ctx, service.StandingsQuery{Season: season})
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(standings))
	for _, st := range standings {
		rows = append(rows, []string{
			st.TeamName, st.Conference, strconv.Itoa(st.ConferenceRank),
			strconv.Itoa(st.Wins), strconv.Itoa(st.Losses), st.WinPercentage, st.GamesBehind,
		})
	}
	r.p.table([]string{"Team", "Conference", "Rank", "W", "L", "Pct", "GB"}, rows)
	return nil
}

func (r *Registry) seasonsHandler(ctx context.Context, _ args) error {
	s, err := r.current(ctx)
	if err != nil {
		return err
	}
	res, err := s.Seasons(ctx)
	if err != nil {
		return err
	}
	if res.Fallback {
		r.p.note("Upstream seasons unavailable, showing defaults")
	}
	rows := make([][]string, 0, len(res.Seasons))
	for _, season := range res.Seasons {
		rows = append(rows, []string{strconv.Itoa(season)})
	}
	r.p.table([]string{"Season"}, rows)
	return nil
}

func (r *Registry) playersHandler(ctx context.Context, a args) error {
	season, err := a.num("season", -1)
	if err != nil {
		return err
	}
	q := service.PlayerQuery{Search: a.str("search", 0), Team: a.opts["team"], Season: season}
	if q.Search == "" && q.Team == "" {
		return fmt.Errorf("%w: search text or team required", ErrUsage)
	}
	s, err := r.current(ctx)
	if err != nil {
		return err
	}
	players, err := s.SearchPlayers(ctx, q)
	if err != nil {
		return err
	}
	r.p.table([]string{"ID", "Name", "Position", "Jersey", "College"}, playerRows(players))
	return nil
}

func playerRows(players []nba.Player) [][]string {
	rows := make([][]string, 0, len(players))
	for _, p := range players {
		jersey := ""
		if p.Jersey > 0 {
			jersey = strconv.Itoa(p.Jersey)
		}
		rows = append(rows, []string{strconv.Itoa(p.ID), p.FullName(), p.Position, jersey, p.College})
	}
	return rows
}

func (r *Registry) playerStatsHandler(ctx context.Context, a args) error {
	id, err := a.num("id", 0)
	if err != nil {
		return err
	}
	if id == 0 {
		return fmt.Errorf("%w: player id required", ErrUsage)
	}
	season, err := a.num("season", 1)
	if err != nil {
		return err
	}
	s, err := r.current(ctx)
	if err != nil {
		return err
	}
	lines, err := s.PlayerStatistics(ctx, service.PlayerStatsQuery{PlayerID: id, Season: season})
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []string{
			strconv.Itoa(l.GameID), l.TeamCode, l.Minutes,
			strconv.Itoa(l.Points), strconv.Itoa(l.Rebounds), strconv.Itoa(l.Assists),
		})
	}
	r.p.table([]string{"Game", "Team", "Min", "Pts", "Reb", "Ast"}, rows)
	return nil
}
