package nba_test

import (
	"errors"
	"testing"
	"time"

	"github.com/okian/explorer/internal/domain/nba"
	. "github.com/smartystreets/goconvey/convey"
)

func sampleTeams() []nba.Team {
	return []nba.Team{
		{ID: 1, Name: "Atlanta Hawks", Nickname: "Hawks", Code: "ATL", NBAFranchise: true,
			Arena: &nba.Arena{Name: "State Farm Arena", Latitude: 33.757, Longitude: -84.396}},
		{ID: 3, Name: "Team Lebron", Nickname: "Lebron", Code: "LBN", NBAFranchise: false},
		{ID: 10, Name: "Boston Celtics", Nickname: "Celtics", Code: "BOS", NBAFranchise: true},
	}
}

func TestTeams(t *testing.T) {
	Convey("Given teams including an all-star squad", t, func() {
		teams := sampleTeams()

		Convey("When keeping franchises", func() {
			out := nba.FranchiseTeams(teams)

			Convey("Then non-franchise teams should be dropped in order", func() {
				So(out, ShouldHaveLength, 2)
				So(out[0].Code, ShouldEqual, "ATL")
				So(out[1].Code, ShouldEqual, "BOS")
			})
		})

		Convey("When finding teams", func() {
			byName, err := nba.FindTeam(teams, "boston celtics")
			So(err, ShouldBeNil)
			So(byName.ID, ShouldEqual, 10)

			byCode, err := nba.FindTeam(teams, "atl")
			So(err, ShouldBeNil)
			So(byCode.ID, ShouldEqual, 1)

			byID, err := nba.FindTeam(teams, "10")
			So(err, ShouldBeNil)
			So(byID.Name, ShouldEqual, "Boston Celtics")

			_, err = nba.FindTeam(teams, "Seattle SuperSonics")
			So(errors.Is(err, nba.ErrTeamNotFound), ShouldBeTrue)

			_, err = nba.FindTeam(teams, "99")
			So(errors.Is(err, nba.ErrTeamNotFound), ShouldBeTrue)
		})

		Convey("When locating teams", func() {
			arena, err := nba.TeamLocation(teams[0])
			So(err, ShouldBeNil)
			So(arena.Name, ShouldEqual, "State Farm Arena")

			_, err = nba.TeamLocation(teams[2])
			So(errors.Is(err, nba.ErrNoLocation), ShouldBeTrue)
		})
	})
}

func TestGamesOnDate(t *testing.T) {
	Convey("Given a season of games", t, func() {
		games := []nba.Game{
			{ID: 1, Start: "2023-10-25T23:30:00.000Z"},
			{ID: 2, Start: "2023-10-27T00:00:00.000Z"},
			{ID: 3, Start: "2023-10-25T02:00:00.000Z"},
		}

		Convey("When filtering by a day with games", func() {
			day, err := nba.ParseDay("2023-10-25")
			So(err, ShouldBeNil)
			out := nba.GamesOnDate(games, day)

			Convey("Then only that day's games come back", func() {
				So(out, ShouldHaveLength, 2)
				So(out[0].ID, ShouldEqual, 1)
				So(out[1].ID, ShouldEqual, 3)
			})
		})

		Convey("When filtering by a day without games", func() {
			So(nba.GamesOnDate(games, time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)), ShouldBeEmpty)
		})

		Convey("When the date is malformed", func() {
			_, err := nba.ParseDay("25/10/2023")
			So(errors.Is(err, nba.ErrInvalidOption), ShouldBeTrue)
		})
	})
}

func TestLeaders(t *testing.T) {
	Convey("Given box score lines for several players", t, func() {
		stats := []nba.PlayerGameStat{
			{PlayerID: 1, FirstName: "Trae", LastName: "Young", Points: 30, Assists: 12, Rebounds: 3},
			{PlayerID: 2, FirstName: "Dejounte", LastName: "Murray", Points: 20, Assists: 5, Rebounds: 6},
			{PlayerID: 1, FirstName: "Trae", LastName: "Young", Points: 24, Assists: 10, Rebounds: 2},
			{PlayerID: 3, FirstName: "Clint", LastName: "Capela", Points: 14, Assists: 1, Rebounds: 15},
			{PlayerID: 4, FirstName: "Onyeka", LastName: "Okongwu", Points: 14, Assists: 1, Rebounds: 9},
			{PlayerID: 2, FirstName: "Dejounte", LastName: "Murray", Points: 20, Assists: 4, Rebounds: 5},
		}

		Convey("When ranking by points", func() {
			out, err := nba.Leaders(stats, nba.Points, 5)

			Convey("Then totals should be summed per player and sorted", func() {
				So(err, ShouldBeNil)
				So(out, ShouldHaveLength, 4)
				So(out[0].LastName, ShouldEqual, "Young")
				So(out[0].Total, ShouldEqual, 54)
				So(out[0].Games, ShouldEqual, 2)
				So(out[0].PerGame, ShouldAlmostEqual, 27.0)
				So(out[1].LastName, ShouldEqual, "Murray")
			})

			Convey("Then ties should be ordered by last name", func() {
				So(out[2].LastName, ShouldEqual, "Capela")
				So(out[3].LastName, ShouldEqual, "Okongwu")
			})
		})

		Convey("When ranking by rebounds with a limit", func() {
			out, err := nba.Leaders(stats, nba.Rebounds, 1)
			So(err, ShouldBeNil)
			So(out, ShouldHaveLength, 1)
			So(out[0].LastName, ShouldEqual, "Capela")
		})

		Convey("When the limit is out of range", func() {
			for _, n := range []int{0, 16} {
				_, err := nba.Leaders(stats, nba.Points, n)
				So(errors.Is(err, nba.ErrInvalidOption), ShouldBeTrue)
			}
		})

		Convey("When there are no stats", func() {
			_, err := nba.Leaders(nil, nba.Assists, 5)
			So(errors.Is(err, nba.ErrNoData), ShouldBeTrue)
		})
	})

	Convey("Given category names", t, func() {
		c, err := nba.ParseCategory("Rebounds")
		So(err, ShouldBeNil)
		So(c, ShouldEqual, nba.Rebounds)
		So(c.Label(), ShouldEqual, "Rebounds")

		c, err = nba.ParseCategory("totReb")
		So(err, ShouldBeNil)
		So(c, ShouldEqual, nba.Rebounds)

		c, err = nba.ParseCategory("")
		So(err, ShouldBeNil)
		So(c, ShouldEqual, nba.Points)

		_, err = nba.ParseCategory("steals")
		So(errors.Is(err, nba.ErrUnknownCategory), ShouldBeTrue)
	})
}

func TestSeasons(t *testing.T) {
	Convey("Given the fallback season list", t, func() {
		seasons := nba.DefaultSeasons()

		Convey("Then it should run from 2023 down to 2001", func() {
			So(seasons, ShouldHaveLength, 23)
			So(seasons[0], ShouldEqual, 2023)
			So(seasons[len(seasons)-1], ShouldEqual, 2001)
		})
	})

	Convey("Given seasons from upstream", t, func() {
		in := []int{2015, 2021, 2016, 2021}
		out := nba.SortSeasonsDesc(in)

		Convey("Then they should be newest first without duplicates", func() {
			So(out, ShouldResemble, []int{2021, 2016, 2015})
			So(in, ShouldResemble, []int{2015, 2021, 2016, 2021})
		})
	})
}
