// Package nba holds the NBA explorer's records and the filtering and ranking
// applied to API-NBA results before display.
package nba

// Team is one club as listed by the teams endpoint.
type Team struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Nickname     string `json:"nickname"`
	Code         string `json:"code"`
	City         string `json:"city"`
	Logo         string `json:"logo,omitempty"`
	NBAFranchise bool   `json:"nba_franchise"`
	AllStar      bool   `json:"all_star"`
	Conference   string `json:"conference,omitempty"`
	Division     string `json:"division,omitempty"`
	Arena        *Arena `json:"arena,omitempty"`
}

// Arena is a team's home venue. Coordinates are zero when upstream omits them.
type Arena struct {
	Name      string  `json:"name,omitempty"`
	City      string  `json:"city,omitempty"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// GameTeam is one side of a game.
type GameTeam struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Points int    `json:"points"`
}

// Game is a scheduled or played game. Start keeps upstream's ISO-8601
// timestamp verbatim.
type Game struct {
	ID       int      `json:"id"`
	Season   int      `json:"season"`
	Start    string   `json:"start"`
	Status   string   `json:"status"`
	Arena    string   `json:"arena,omitempty"`
	City     string   `json:"city,omitempty"`
	Home     GameTeam `json:"home"`
	Visitors GameTeam `json:"visitors"`
}

// Player is a roster or search result entry.
type Player struct {
	ID        int     `json:"id"`
	FirstName string  `json:"firstname"`
	LastName  string  `json:"lastname"`
	BirthDate string  `json:"birth_date,omitempty"`
	Country   string  `json:"country,omitempty"`
	College   string  `json:"college,omitempty"`
	HeightM   float64 `json:"height_m,omitempty"`
	WeightKg  float64 `json:"weight_kg,omitempty"`
	Jersey    int     `json:"jersey,omitempty"`
	Position  string  `json:"position,omitempty"`
	Active    bool    `json:"active"`
}

// FullName is "First Last" with missing parts dropped.
func (p Player) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// PlayerGameStat is one player's box score line for one game.
type PlayerGameStat struct {
	PlayerID  int    `json:"player_id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	TeamID    int    `json:"team_id"`
	TeamCode  string `json:"team_code,omitempty"`
	GameID    int    `json:"game_id"`
	Position  string `json:"position,omitempty"`
	Minutes   string `json:"minutes,omitempty"`
	Points    int    `json:"points"`
	Rebounds  int    `json:"rebounds"`
	Assists   int    `json:"assists"`
	Steals    int    `json:"steals"`
	Blocks    int    `json:"blocks"`
	Turnovers int    `json:"turnovers"`
}

// Standing is a team's record for one season.
type Standing struct {
	Season         int    `json:"season"`
	TeamID         int    `json:"team_id"`
	TeamName       string `json:"team_name"`
	TeamCode       string `json:"team_code"`
	Conference     string `json:"conference"`
	ConferenceRank int    `json:"conference_rank"`
	Division       string `json:"division"`
	DivisionRank   int    `json:"division_rank"`
	Wins           int    `json:"wins"`
	Losses         int    `json:"losses"`
	WinPercentage  string `json:"win_percentage"`
	GamesBehind    string `json:"games_behind,omitempty"`
	Streak         int    `json:"streak"`
	WinStreak      bool   `json:"win_streak"`
}

// Leader is a player's summed total for one statistic.
type Leader struct {
	PlayerID  int     `json:"player_id"`
	FirstName string  `json:"firstname"`
	LastName  string  `json:"lastname"`
	Games     int     `json:"games"`
	Total     int     `json:"total"`
	PerGame   float64 `json:"per_game"`
}
