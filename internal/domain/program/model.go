package program

import (
	"fmt"
	"strings"
)

// Code identifies one of the basketball programs covered by the almanac.
type Code string

const (
	CodeGWBB Code = "GWBB"
	CodeLWBB Code = "LWBB"
)

const (
	LevelVarsity = "V"
	RoleAthlete  = "athlete"
)

// Program describes where a program's season files live and how its seasons are folded.
type Program struct {
	Code    Code
	Name    string
	DataDir string
	// IncludeRosterOnlySeasons keeps seasons where the player was rostered but has no box-score rows.
	IncludeRosterOnlySeasons bool
}

var AllCodes = map[Code]struct{}{
	CodeGWBB: {},
	CodeLWBB: {},
}

// Defaults returns both programs rooted at the given data directories.
func Defaults(gwbbDir, lwbbDir string) []Program {
	return []Program{
		{
			Code:    CodeGWBB,
			Name:    "Girls Varsity Basketball",
			DataDir: gwbbDir,
		},
		{
			Code:                     CodeLWBB,
			Name:                     "Lady Waves Basketball",
			DataDir:                  lwbbDir,
			IncludeRosterOnlySeasons: true,
		},
	}
}

func ParseCode(raw string) (Code, error) {
	code := Code(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := AllCodes[code]; !ok {
		return "", fmt.Errorf("unknown program %q: valid values are %s, %s", raw, CodeGWBB, CodeLWBB)
	}
	return code, nil
}

func (c Code) Slug() string {
	return strings.ToLower(string(c))
}

// Find returns the program with the given code.
func Find(programs []Program, code Code) (Program, bool) {
	for _, p := range programs {
		if p.Code == code {
			return p, true
		}
	}
	return Program{}, false
}
