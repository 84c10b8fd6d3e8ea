package report

import "strings"

// Position groups used throughout the pipeline.
const (
	PosGuard   = "G"
	PosForward = "F"
	PosCenter  = "C"
	PosUnknown = "UNK"
)

// NormalizePosition collapses a raw position label into a coarse group.
// Guard wins over forward, forward over center, so a combo label like
// "G-F" classifies as a guard everywhere in the pipeline. Anything
// unclassifiable comes back as PosUnknown and gets filtered downstream.
func NormalizePosition(raw string) string {
	p := strings.ToUpper(strings.TrimSpace(raw))
	switch {
	case strings.Contains(p, "G"):
		return PosGuard
	case strings.Contains(p, "F"):
		return PosForward
	case strings.Contains(p, "C"):
		return PosCenter
	default:
		return PosUnknown
	}
}

// ParseOpponent extracts the opponent abbreviation from a matchup string.
// Both formats ("BOS vs. LAL" and "BOS @ LAL") put the opponent last once
// "vs." is normalized to "vs". Callers guarantee at least two tokens.
func ParseOpponent(matchup string) string {
	parts := strings.Fields(strings.ReplaceAll(matchup, "vs.", "vs"))
	return parts[len(parts)-1]
}
