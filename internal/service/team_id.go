package service

import "strings"

var teamIDReplacer = strings.NewReplacer(
	".", "_",
	"$", "_",
	"#", "_",
	"[", "_",
	"]", "_",
	"/", "_",
)

// SanitizeTeamID turns a team name into the storage key of its submission:
// trimmed, lower-cased, with path-structuring characters replaced by "_".
func SanitizeTeamID(teamName string) string {
	return teamIDReplacer.Replace(strings.ToLower(strings.TrimSpace(teamName)))
}
