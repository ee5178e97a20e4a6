package usecase

import (
	"github.com/riskibarqy/hoops-almanac/internal/domain/identity"
	"github.com/riskibarqy/hoops-almanac/internal/domain/program"
	"github.com/riskibarqy/hoops-almanac/internal/domain/season"
)

const (
	pidAnn  = "p_0000000001"
	pidBeth = "p_0000000002"
)

func testPrograms() []program.Program {
	return program.Defaults("data/gwbb", "data/lwbb")
}

func testIndex() identity.Index {
	idx := identity.NewIndex()
	idx.People[pidAnn] = identity.Person{Display: "Ann Able", Roles: []string{identity.RolePlayer}}
	idx.People[pidBeth] = identity.Person{Display: "Beth Best", Roles: []string{identity.RolePlayer}}
	idx.ByAlias["ABLANN2021"] = pidAnn
	idx.ByAlias["BESBET2022"] = pidBeth
	idx.Meta.NextPID = 3
	return idx
}

func statRow(raw, gameID string, pts, reb int) season.StatRow {
	return season.StatRow{RawPlayerID: raw, GameID: gameID, Points: pts, Rebounds: reb, TwoPM: pts / 2, TwoPA: pts}
}

func testSeasons() []season.Record {
	return []season.Record{
		{
			Program: program.CodeGWBB,
			YearEnd: 2020,
			Roster: []season.RosterEntry{
				{RawID: "ABLANN2021", Name: "Ann Able", GradYear: 2021},
				{RawID: "BESBET2022", Name: "Beth Best", GradYear: 2022},
			},
			GameStats: []season.StatRow{
				statRow("ABLANN2021", "g-20200110-H-rival", 12, 4),
				statRow("BESBET2022", "g-20200110-H-rival", 6, 10),
				statRow("ZZZZZZ1999", "g-20200110-H-rival", 30, 0),
			},
		},
		{
			Program: program.CodeLWBB,
			YearEnd: 2019,
			Roster: []season.RosterEntry{
				{RawID: "ABLANN2021", Name: "Ann Able", GradYear: 2021},
			},
		},
	}
}
