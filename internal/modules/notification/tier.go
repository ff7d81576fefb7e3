// README: Reminder tiers and their minutes-to-departure windows.
package notification

// Tier is one of the three fixed reminder windows before departure.
type Tier string

const (
	TierOneHour        Tier = "1_hour"
	TierThirtyMinutes  Tier = "30_minutes"
	TierFifteenMinutes Tier = "15_minutes"
)

// window is inclusive on both ends, in minutes before departure. The windows
// are ±5 minutes wide to tolerate irregular polling cadence and must stay
// pairwise disjoint: a booking matches at most one tier per pass.
type window struct {
	tier     Tier
	min, max int
}

var windows = []window{
	{TierOneHour, 55, 65},
	{TierThirtyMinutes, 25, 35},
	{TierFifteenMinutes, 10, 20},
}

// ClassifyMinutes maps minutes-to-departure to a tier. The second return is
// false when the value falls outside every window (too early, between
// windows, or already departed).
func ClassifyMinutes(m int) (Tier, bool) {
	for _, w := range windows {
		if m >= w.min && m <= w.max {
			return w.tier, true
		}
	}
	return "", false
}
