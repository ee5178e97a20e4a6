package career

import (
	"sort"

	"github.com/riskibarqy/hoops-almanac/internal/domain/identity"
	"github.com/riskibarqy/hoops-almanac/internal/domain/program"
	"github.com/riskibarqy/hoops-almanac/internal/domain/season"
)

// Resolver maps a raw identifier to a canonical person id.
type Resolver interface {
	Resolve(raw string) identity.Result
}

// Aggregate folds one program's season records into per-player careers.
// Rows whose player is not on that season's roster are dropped and counted.
func Aggregate(records []season.Record, resolver Resolver, prog program.Program) Result {
	ordered := make([]season.Record, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].YearEnd < ordered[j].YearEnd
	})

	summary := Summary{Program: prog.Code, Seasons: len(ordered)}
	careers := make(map[string]*Career)
	aliases := make(map[string]map[string]struct{})

	for _, rec := range ordered {
		rosterOrder := make([]string, 0, len(rec.Roster))
		rostered := make(map[string]struct{}, len(rec.Roster))
		entries := make(map[string][]season.RosterEntry, len(rec.Roster))
		for _, entry := range rec.Roster {
			res := resolver.Resolve(entry.RawID)
			if !res.OK() {
				summary.RosterSkipped++
				continue
			}
			if _, seen := rostered[res.ID]; seen {
				summary.RosterDuplicates++
			} else {
				rostered[res.ID] = struct{}{}
				rosterOrder = append(rosterOrder, res.ID)
			}
			entries[res.ID] = append(entries[res.ID], entry)
			noteAlias(aliases, res.ID, res.Raw)
		}

		lines := make(map[string][]GameLine)
		for _, row := range rec.GameStats {
			summary.Rows++
			res := resolver.Resolve(row.RawPlayerID)
			switch res.Status {
			case identity.StatusEmpty:
				summary.EmptyIDRows++
				continue
			case identity.StatusUnmapped:
				summary.UnmappedRows++
				continue
			}
			if _, ok := rostered[res.ID]; !ok {
				summary.RowsWithoutRoster++
				continue
			}
			summary.RowsKept++
			lines[res.ID] = append(lines[res.ID], newGameLine(row))
			noteAlias(aliases, res.ID, res.Raw)
		}

		for _, pid := range rosterOrder {
			c, ok := careers[pid]
			if !ok {
				c = &Career{PlayerID: pid}
				careers[pid] = c
			}
			for _, entry := range entries[pid] {
				c.absorb(entry)
			}

			c.Participation = append(c.Participation, Participation{
				SportCode:     prog.Code,
				SeasonYearEnd: rec.YearEnd,
				Level:         program.LevelVarsity,
				Role:          program.RoleAthlete,
			})

			games := lines[pid]
			if len(games) == 0 {
				if !prog.IncludeRosterOnlySeasons {
					continue
				}
				summary.RosterOnlySeasons++
			}
			c.Seasons = append(c.Seasons, newSeason(prog.Code, rec.YearEnd, games))
		}
	}

	for pid, c := range careers {
		c.Aliases = sortedKeys(aliases[pid])
		c.finalize()
	}
	summary.Careers = len(careers)

	return Result{Careers: careers, Summary: summary}
}

func newSeason(code program.Code, year int, games []GameLine) Season {
	s := Season{
		SportCode:     code,
		SeasonYearEnd: year,
		Level:         program.LevelVarsity,
		OnRoster:      true,
		GamesPlayed:   len(games),
		GameStats:     make([]GameLine, 0, len(games)),
	}
	for _, g := range games {
		s.Totals.addLine(g)
		s.GameStats = append(s.GameStats, g)
	}
	s.Totals.derive()
	return s
}

// Merge folds other into c. Both must share a player id; it is used to combine the
// per-program careers of one person into a single artifact.
func (c *Career) Merge(other *Career) {
	if other == nil || other == c {
		return
	}
	c.absorbProfile(other.profile())
	seen := make(map[string]struct{}, len(c.Aliases)+len(other.Aliases))
	for _, a := range c.Aliases {
		seen[a] = struct{}{}
	}
	for _, a := range other.Aliases {
		seen[a] = struct{}{}
	}
	c.Aliases = sortedKeys(seen)
	c.Participation = append(c.Participation, other.Participation...)
	c.Seasons = append(c.Seasons, other.Seasons...)
	c.finalize()
}

// finalize sorts the season lists and recomputes career totals and best games.
func (c *Career) finalize() {
	sort.SliceStable(c.Participation, func(i, j int) bool {
		a, b := c.Participation[i], c.Participation[j]
		if a.SeasonYearEnd != b.SeasonYearEnd {
			return a.SeasonYearEnd < b.SeasonYearEnd
		}
		return a.SportCode < b.SportCode
	})
	sort.SliceStable(c.Seasons, func(i, j int) bool {
		a, b := c.Seasons[i], c.Seasons[j]
		if a.SeasonYearEnd != b.SeasonYearEnd {
			return a.SeasonYearEnd < b.SeasonYearEnd
		}
		return a.SportCode < b.SportCode
	})

	c.Totals = Totals{}
	var pts, reb BestGame
	for _, s := range c.Seasons {
		c.Totals.addTotals(s.Totals)
		for _, g := range s.GameStats {
			pts.observe(g.Pts)
			reb.observe(g.Reb)
		}
	}
	c.Totals.derive()
	c.BestGames = BestGames{Points: pts.orNil(), Rebounds: reb.orNil()}

	if c.Name == "" {
		c.Name = c.PlayerID
	}
	if c.Aliases == nil {
		c.Aliases = []string{}
	}
}

func (b *BestGame) observe(v int) {
	switch {
	case v <= 0:
	case v > b.Value:
		b.Value, b.Count = v, 1
	case v == b.Value:
		b.Count++
	}
}

func (b BestGame) orNil() *BestGame {
	if b.Value <= 0 {
		return nil
	}
	return &b
}

// profile is the identity portion of a career.
type profile struct {
	IDBase, IDSuffix, Jersey, First, Last, Name, Position, Grade, GradeFull string
	GradYear                                                                int
}

func (c *Career) profile() profile {
	p := profile{
		IDBase: c.IDBase, IDSuffix: c.IDSuffix, Jersey: c.Jersey,
		First: c.First, Last: c.Last, Name: c.Name,
		Position: c.Position, Grade: c.Grade, GradeFull: c.GradeFull,
	}
	if c.GradYear != nil {
		p.GradYear = *c.GradYear
	}
	if p.Name == c.PlayerID {
		p.Name = ""
	}
	return p
}

func (c *Career) absorb(e season.RosterEntry) {
	c.absorbProfile(profile{
		IDBase: e.IDBase, IDSuffix: e.IDSuffix, Jersey: e.Jersey,
		First: e.First, Last: e.Last, Name: e.FullName(),
		Position: e.Position, Grade: e.Grade, GradeFull: e.GradeFull,
		GradYear: e.GradYear,
	})
}

// absorbProfile fills blank identity fields from p. A candidate that knows the graduation
// year replaces one that does not.
func (c *Career) absorbProfile(p profile) {
	if c.Name == c.PlayerID {
		c.Name = ""
	}
	replace := c.GradYear == nil && p.GradYear > 0
	set := func(dst *string, v string) {
		if v == "" {
			return
		}
		if replace || *dst == "" {
			*dst = v
		}
	}
	set(&c.IDBase, p.IDBase)
	set(&c.IDSuffix, p.IDSuffix)
	set(&c.Jersey, p.Jersey)
	set(&c.First, p.First)
	set(&c.Last, p.Last)
	set(&c.Name, p.Name)
	set(&c.Position, p.Position)
	set(&c.Grade, p.Grade)
	set(&c.GradeFull, p.GradeFull)
	if replace {
		gy := p.GradYear
		c.GradYear = &gy
	}
}

func noteAlias(aliases map[string]map[string]struct{}, pid, raw string) {
	if raw == "" || raw == pid {
		return
	}
	set, ok := aliases[pid]
	if !ok {
		set = make(map[string]struct{})
		aliases[pid] = set
	}
	set[raw] = struct{}{}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
