package season

import (
	"regexp"
	"strings"
)

var gameDatePattern = regexp.MustCompile(`-(\d{8})-`)

// GameInfo is what can be read back out of a composite game id such as
// GWBB2025-20250110-H-Central.
type GameInfo struct {
	Date     string
	Site     string
	Opponent string
}

func ParseGameID(gameID string) GameInfo {
	var info GameInfo
	if gameID == "" {
		return info
	}

	if m := gameDatePattern.FindStringSubmatch(gameID); m != nil {
		info.Date = m[1][0:4] + "-" + m[1][4:6] + "-" + m[1][6:8]
	}
	switch {
	case strings.Contains(gameID, "-H-"):
		info.Site = "vs"
	case strings.Contains(gameID, "-A-"):
		info.Site = "@"
	}
	if parts := strings.Split(gameID, "-"); len(parts) >= 4 {
		info.Opponent = strings.Join(parts[3:], "-")
	}
	return info
}
