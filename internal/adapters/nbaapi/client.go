// Package nbaapi adapts the API-NBA service (via RapidAPI) to the nba domain.
package nbaapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/okian/explorer/internal/adapters/upstream"
	"github.com/okian/explorer/internal/domain/nba"
)

// APIName labels API-NBA traffic in logs and metrics.
const APIName = "nba"

// Defaults for the RapidAPI-hosted service.
const (
	DefaultBaseURL = "https://api-nba-v1.p.rapidapi.com"
	DefaultHost    = "api-nba-v1.p.rapidapi.com"
)

// RapidAPI authentication headers.
const (
	headerKey  = "x-rapidapi-key"
	headerHost = "x-rapidapi-host"
)

// standardLeague restricts standings to the regular NBA league.
const standardLeague = "standard"

// Client issues API-NBA requests.
type Client struct {
	http *upstream.Client
}

// New builds a client. apiKey and host are sent on every request.
func New(baseURL, host, apiKey string, opts ...upstream.Option) (*Client, error) {
	opts = append([]upstream.Option{
		upstream.WithHeader(headerKey, apiKey),
		upstream.WithHeader(headerHost, host),
	}, opts...)
	hc, err := upstream.New(APIName, baseURL, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

// PlayerFilter narrows a player search. Zero fields are left out.
type PlayerFilter struct {
	Search string
	TeamID int
	Season int
}

// StatFilter selects box score lines by player or by team.
type StatFilter struct {
	PlayerID int
	TeamID   int
	Season   int
}

// envelope is the wrapper API-NBA puts around every result.
type envelope struct {
	Response json.RawMessage `json:"response"`
	Errors   json.RawMessage `json:"errors"`
}

// Teams lists every team.
func (c *Client) Teams(ctx context.Context) ([]nba.Team, error) {
	var dto []teamDTO
	if err := c.get(ctx, "teams", nil, &dto); err != nil {
		return nil, err
	}
	return mapAll(dto, teamDTO.team), nil
}

// Games lists a team's games for a season.
func (c *Client) Games(ctx context.Context, season, teamID int) ([]nba.Game, error) {
	q := url.Values{}
	q.Set("season", strconv.Itoa(season))
	q.Set("team", strconv.Itoa(teamID))
	var dto []gameDTO
	if err := c.get(ctx, "games", q, &dto); err != nil {
		return nil, err
	}
	return mapAll(dto, gameDTO.game), nil
}

// Players searches players.
func (c *Client) Players(ctx context.Context, f PlayerFilter) ([]nba.Player, error) {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.TeamID > 0 {
		q.Set("team", strconv.Itoa(f.TeamID))
	}
	if f.Season > 0 {
		q.Set("season", strconv.Itoa(f.Season))
	}
	var dto []playerDTO
	if err := c.get(ctx, "players", q, &dto); err != nil {
		return nil, err
	}
	return mapAll(dto, playerDTO.player), nil
}

// PlayerStatistics lists per-game statistics.
func (c *Client) PlayerStatistics(ctx context.Context, f StatFilter) ([]nba.PlayerGameStat, error) {
	q := url.Values{}
	if f.PlayerID > 0 {
		q.Set("id", strconv.Itoa(f.PlayerID))
	}
	if f.TeamID > 0 {
		q.Set("team", strconv.Itoa(f.TeamID))
	}
	q.Set("season", strconv.Itoa(f.Season))
	var dto []statDTO
	if err := c.get(ctx, "players/statistics", q, &dto); err != nil {
		return nil, err
	}
	return mapAll(dto, statDTO.stat), nil
}

// Standings lists standard-league standings for a season.
func (c *Client) Standings(ctx context.Context, season int) ([]nba.Standing, error) {
	q := url.Values{}
	q.Set("season", strconv.Itoa(season))
	q.Set("league", standardLeague)
	var dto []standingDTO
	if err := c.get(ctx, "standings", q, &dto); err != nil {
		return nil, err
	}
	return mapAll(dto, standingDTO.standing), nil
}

// Seasons lists the seasons the service knows about, as returned.
func (c *Client) Seasons(ctx context.Context) ([]int, error) {
	var seasons []int
	if err := c.get(ctx, "seasons", nil, &seasons); err != nil {
		return nil, err
	}
	return seasons, nil
}

// get unwraps the response envelope into out.
func (c *Client) get(ctx context.Context, endpoint string, q url.Values, out any) error {
	var env envelope
	if err := c.http.GetJSON(ctx, endpoint, endpoint, q, &env); err != nil {
		return err
	}
	if len(env.Response) == 0 || bytes.Equal(env.Response, []byte("null")) {
		return fmt.Errorf("%w: %s response has no data: %s", nba.ErrNoData, endpoint, errorsText(env.Errors))
	}
	if err := json.Unmarshal(env.Response, out); err != nil {
		return fmt.Errorf("%w: %s: %w", upstream.ErrMalformed, endpoint, err)
	}
	return nil
}

func errorsText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "none reported"
	}
	return string(raw)
}
