// Package reward computes the position-based payout of a finished race.
package reward

// multiplierPct is the share of typed characters paid out per position.
// Positions past the table use the last entry.
var multiplierPct = []int{100, 50, 33, 25}

// Multiplier returns the payout multiplier for a finishing position.
func Multiplier(position int) float64 {
	if position <= 0 {
		return 0
	}
	return float64(pct(position)) / 100
}

// Amount returns max(1, floor(charactersTyped * multiplier(position))).
// Participants without a position earn nothing.
func Amount(charactersTyped, position int) int {
	if position <= 0 {
		return 0
	}
	amount := charactersTyped * pct(position) / 100
	return max(1, amount)
}

func pct(position int) int {
	idx := min(position, len(multiplierPct)) - 1
	return multiplierPct[idx]
}
