package season

import (
	"math"
	"strconv"
	"strings"

	"github.com/riskibarqy/hoops-almanac/internal/domain/identity"
	"github.com/riskibarqy/hoops-almanac/internal/domain/program"
)

// Recognised spellings per canonical field. This is the only place field-name fallbacks live.
var (
	rosterKeys    = []string{"roster", "players", "teamRoster"}
	gameStatsKeys = []string{"gameStats", "stats"}
	scheduleKeys  = []string{"schedule"}

	gameIDKeys    = []string{"gameId", "gameID", "GameID", "GameId", "GameID_Base", "gameIdBase"}
	idBaseKeys    = []string{"playerIDBase", "playerIdBase", "PlayerID_Base"}
	idSuffixKeys  = []string{"playerIDSuffix", "playerIdSuffix", "PlayerID_Suffix"}
	jerseyKeys    = []string{"jersey", "Jersey"}
	firstKeys     = []string{"first", "firstName", "FirstName"}
	lastKeys      = []string{"last", "lastName", "LastName"}
	nameKeys      = []string{"name", "Name", "playerName", "PlayerName", "fullName", "FullName"}
	positionKeys  = []string{"pos", "position", "Position"}
	gradeKeys     = []string{"grade", "Grade"}
	gradeFullKeys = []string{"gradeFull", "GradeFull"}
	gradYearKeys  = []string{"gradYear", "GraduationYear", "gradyear", "grad"}

	twoPMKeys   = []string{"twoPM", "2PM"}
	twoPAKeys   = []string{"twoPA", "2PA"}
	threePMKeys = []string{"threePM", "3PM"}
	threePAKeys = []string{"threePA", "3PA"}
	ftMKeys     = []string{"ftM", "FTM"}
	ftAKeys     = []string{"ftA", "FTA"}
	ptsKeys     = []string{"pts", "Pts", "PTS"}
	rebKeys     = []string{"reb", "Reb", "REB"}
	tenPlusKeys = []string{"tenPlus", "tenPlusPoints"}
	ddKeys      = []string{"doubleDouble", "doubleDoubles", "dd"}

	dateKeys     = []string{"date", "Date", "dateISO"}
	opponentKeys = []string{"opponent", "Opponent"}
	siteKeys     = []string{"site", "Site", "homeAway"}
	outcomeKeys  = []string{"outcome", "Outcome"}
	notesKeys    = []string{"notes", "Notes"}
	pfKeys       = []string{"pointsFor", "Points for", "PF"}
	paKeys       = []string{"pointsAgainst", "Points Against", "PA"}
)

// Normalize maps a decoded season document onto Record. The document may carry its fields at
// the top level or nested under "season"; an explicit seasonYear overrides the file-name year.
func Normalize(code program.Code, fileYear int, sourceFile string, doc map[string]any) Record {
	body := doc
	if nested, ok := doc["season"].(map[string]any); ok {
		body = nested
	}

	year := fileYear
	if y := intValue(pick(body, "seasonYear")); y > 0 {
		year = y
	} else if y := intValue(pick(doc, "seasonYear")); y > 0 {
		year = y
	}

	rec := Record{
		Program:    code,
		YearEnd:    year,
		SourceFile: sourceFile,
	}
	for _, row := range objects(pickArray(body, rosterKeys)) {
		rec.Roster = append(rec.Roster, NormalizeRosterEntry(row))
	}
	for _, row := range objects(pickArray(body, scheduleKeys)) {
		rec.Schedule = append(rec.Schedule, NormalizeScheduleEntry(row))
	}
	for _, row := range objects(pickArray(body, gameStatsKeys)) {
		rec.GameStats = append(rec.GameStats, NormalizeStatRow(row))
	}
	return rec
}

func NormalizeRosterEntry(row map[string]any) RosterEntry {
	entry := RosterEntry{
		RawID:     identity.ExtractRawID(row),
		IDBase:    stringValue(pick(row, idBaseKeys...)),
		IDSuffix:  stringValue(pick(row, idSuffixKeys...)),
		Jersey:    stringValue(pick(row, jerseyKeys...)),
		First:     stringValue(pick(row, firstKeys...)),
		Last:      stringValue(pick(row, lastKeys...)),
		Name:      stringValue(pick(row, nameKeys...)),
		Position:  stringValue(pick(row, positionKeys...)),
		Grade:     stringValue(pick(row, gradeKeys...)),
		GradeFull: stringValue(pick(row, gradeFullKeys...)),
		GradYear:  intValue(pick(row, gradYearKeys...)),
	}
	if entry.Name == "" && entry.First != "" && entry.Last != "" {
		entry.Name = entry.First + " " + entry.Last
	}
	return entry
}

func NormalizeStatRow(row map[string]any) StatRow {
	return StatRow{
		RawPlayerID:  identity.ExtractRawID(row),
		GameID:       stringValue(pick(row, gameIDKeys...)),
		Jersey:       stringValue(pick(row, jerseyKeys...)),
		PlayerName:   stringValue(pick(row, "playerName", "PlayerName")),
		TwoPM:        intValue(pick(row, twoPMKeys...)),
		TwoPA:        intValue(pick(row, twoPAKeys...)),
		ThreePM:      intValue(pick(row, threePMKeys...)),
		ThreePA:      intValue(pick(row, threePAKeys...)),
		FTM:          intValue(pick(row, ftMKeys...)),
		FTA:          intValue(pick(row, ftAKeys...)),
		Points:       intValue(pick(row, ptsKeys...)),
		Rebounds:     intValue(pick(row, rebKeys...)),
		TenPlus:      flagValue(pick(row, tenPlusKeys...)),
		DoubleDouble: flagValue(pick(row, ddKeys...)),
	}
}

func NormalizeScheduleEntry(row map[string]any) ScheduleEntry {
	return ScheduleEntry{
		GameID:        stringValue(pick(row, gameIDKeys...)),
		Date:          stringValue(pick(row, dateKeys...)),
		Opponent:      stringValue(pick(row, opponentKeys...)),
		Site:          stringValue(pick(row, siteKeys...)),
		Outcome:       stringValue(pick(row, outcomeKeys...)),
		Notes:         stringValue(pick(row, notesKeys...)),
		PointsFor:     optionalInt(pick(row, pfKeys...)),
		PointsAgainst: optionalInt(pick(row, paKeys...)),
	}
}

// pick returns the first value among keys that is neither missing, null nor an empty string.
func pick(row map[string]any, keys ...string) any {
	for _, key := range keys {
		v, ok := row[key]
		if !ok || v == nil {
			continue
		}
		if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
			continue
		}
		return v
	}
	return nil
}

func pickArray(row map[string]any, keys []string) []any {
	for _, key := range keys {
		if arr, ok := row[key].([]any); ok {
			return arr
		}
	}
	return nil
}

func objects(items []any) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}

func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return identity.RawString(v)
}

// number parses decoded JSON scalars; anything non-numeric or non-finite reports ok=false.
func number(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func intValue(v any) int {
	f, ok := number(v)
	if !ok {
		return 0
	}
	return int(math.Round(f))
}

func optionalInt(v any) *int {
	f, ok := number(v)
	if !ok {
		return nil
	}
	n := int(math.Round(f))
	return &n
}

func flagValue(v any) *bool {
	var out bool
	switch t := v.(type) {
	case nil:
		return nil
	case bool:
		out = t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "1", "yes", "y":
			out = true
		case "false", "0", "no", "n":
			out = false
		default:
			return nil
		}
	default:
		f, ok := number(v)
		if !ok {
			return nil
		}
		out = f == 1
	}
	return &out
}
