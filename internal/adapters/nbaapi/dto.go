package nbaapi

import (
	"strconv"
	"strings"

	"github.com/okian/explorer/internal/domain/nba"
)

// flexFloat accepts numbers and numeric strings; API-NBA uses both.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

type teamRefDTO struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	Code     string `json:"code"`
}

type teamDTO struct {
	teamRefDTO
	City         string `json:"city"`
	Logo         string `json:"logo"`
	AllStar      bool   `json:"allStar"`
	NBAFranchise bool   `json:"nbaFranchise"`
	Leagues      struct {
		Standard struct {
			Conference string `json:"conference"`
			Division   string `json:"division"`
		} `json:"standard"`
	} `json:"leagues"`
	Arena *struct {
		Name      string    `json:"name"`
		City      string    `json:"city"`
		Latitude  flexFloat `json:"latitude"`
		Longitude flexFloat `json:"longitude"`
	} `json:"arena"`
}

func (d teamDTO) team() nba.Team {
	t := nba.Team{
		ID:           d.ID,
		Name:         d.Name,
		Nickname:     d.Nickname,
		Code:         d.Code,
		City:         d.City,
		Logo:         d.Logo,
		NBAFranchise: d.NBAFranchise,
		AllStar:      d.AllStar,
		Conference:   d.Leagues.Standard.Conference,
		Division:     d.Leagues.Standard.Division,
	}
	if d.Arena != nil {
		t.Arena = &nba.Arena{
			Name:      d.Arena.Name,
			City:      d.Arena.City,
			Latitude:  float64(d.Arena.Latitude),
			Longitude: float64(d.Arena.Longitude),
		}
	}
	return t
}

type gameDTO struct {
	ID     int `json:"id"`
	Season int `json:"season"`
	Date   struct {
		Start string `json:"start"`
	} `json:"date"`
	Status struct {
		Long string `json:"long"`
	} `json:"status"`
	Arena struct {
		Name string `json:"name"`
		City string `json:"city"`
	} `json:"arena"`
	Teams struct {
		Visitors teamRefDTO `json:"visitors"`
		Home     teamRefDTO `json:"home"`
	} `json:"teams"`
	Scores struct {
		Visitors struct {
			Points int `json:"points"`
		} `json:"visitors"`
		Home struct {
			Points int `json:"points"`
		} `json:"home"`
	} `json:"scores"`
}

func (d gameDTO) game() nba.Game {
	return nba.Game{
		ID:     d.ID,
		Season: d.Season,
		Start:  d.Date.Start,
		Status: d.Status.Long,
		Arena:  d.Arena.Name,
		City:   d.Arena.City,
		Home: nba.GameTeam{
			ID: d.Teams.Home.ID, Name: d.Teams.Home.Name, Code: d.Teams.Home.Code,
			Points: d.Scores.Home.Points,
		},
		Visitors: nba.GameTeam{
			ID: d.Teams.Visitors.ID, Name: d.Teams.Visitors.Name, Code: d.Teams.Visitors.Code,
			Points: d.Scores.Visitors.Points,
		},
	}
}

type playerDTO struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Birth     struct {
		Date    string `json:"date"`
		Country string `json:"country"`
	} `json:"birth"`
	College string `json:"college"`
	Height  struct {
		Meters flexFloat `json:"meters"`
	} `json:"height"`
	Weight struct {
		Kilograms flexFloat `json:"kilograms"`
	} `json:"weight"`
	Leagues struct {
		Standard struct {
			Jersey int    `json:"jersey"`
			Active bool   `json:"active"`
			Pos    string `json:"pos"`
		} `json:"standard"`
	} `json:"leagues"`
}

func (d playerDTO) player() nba.Player {
	return nba.Player{
		ID:        d.ID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		BirthDate: d.Birth.Date,
		Country:   d.Birth.Country,
		College:   d.College,
		HeightM:   float64(d.Height.Meters),
		WeightKg:  float64(d.Weight.Kilograms),
		Jersey:    d.Leagues.Standard.Jersey,
		Position:  d.Leagues.Standard.Pos,
		Active:    d.Leagues.Standard.Active,
	}
}

type statDTO struct {
	Player struct {
		ID        int    `json:"id"`
		FirstName string `json:"firstname"`
		LastName  string `json:"lastname"`
	} `json:"player"`
	Team teamRefDTO `json:"team"`
	Game struct {
		ID int `json:"id"`
	} `json:"game"`
	Points    int    `json:"points"`
	Pos       string `json:"pos"`
	Min       string `json:"min"`
	TotReb    int    `json:"totReb"`
	Assists   int    `json:"assists"`
	Steals    int    `json:"steals"`
	Blocks    int    `json:"blocks"`
	Turnovers int    `json:"turnovers"`
}

func (d statDTO) stat() nba.PlayerGameStat {
	return nba.PlayerGameStat{
		PlayerID:  d.Player.ID,
		FirstName: d.Player.FirstName,
		LastName:  d.Player.LastName,
		TeamID:    d.Team.ID,
		TeamCode:  d.Team.Code,
		GameID:    d.Game.ID,
		Position:  d.Pos,
		Minutes:   d.Min,
		Points:    d.Points,
		Rebounds:  d.TotReb,
		Assists:   d.Assists,
		Steals:    d.Steals,
		Blocks:    d.Blocks,
		Turnovers: d.Turnovers,
	}
}

type recordDTO struct {
	Name        string `json:"name"`
	Rank        int    `json:"rank"`
	Win         int    `json:"win"`
	Loss        int    `json:"loss"`
	GamesBehind string `json:"gamesBehind"`
}

type standingDTO struct {
	Season     int        `json:"season"`
	Team       teamRefDTO `json:"team"`
	Conference recordDTO  `json:"conference"`
	Division   recordDTO  `json:"division"`
	Win        struct {
		Total      int    `json:"total"`
		Percentage string `json:"percentage"`
	} `json:"win"`
	Loss struct {
		Total int `json:"total"`
	} `json:"loss"`
	GamesBehind string `json:"gamesBehind"`
	Streak      int    `json:"streak"`
	WinStreak   bool   `json:"winStreak"`
}

func (d standingDTO) standing() nba.Standing {
	return nba.Standing{
		Season:         d.Season,
		TeamID:         d.Team.ID,
		TeamName:       d.Team.Name,
		TeamCode:       d.Team.Code,
		Conference:     d.Conference.Name,
		ConferenceRank: d.Conference.Rank,
		Division:       d.Division.Name,
		DivisionRank:   d.Division.Rank,
		Wins:           d.Win.Total,
		Losses:         d.Loss.Total,
		WinPercentage:  d.Win.Percentage,
		GamesBehind:    d.GamesBehind,
		Streak:         d.Streak,
		WinStreak:      d.WinStreak,
	}
}

// mapAll converts every DTO with fn.
func mapAll[D, T any](in []D, fn func(D) T) []T {
	out := make([]T, 0, len(in))
	for _, d := range in {
		out = append(out, fn(d))
	}
	return out
}
