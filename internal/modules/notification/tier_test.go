// README: Tier window classification tests.
package notification

import "testing"

func TestClassifyMinutes_Boundaries(t *testing.T) {
	cases := []struct {
		minutes int
		tier    Tier
		ok      bool
	}{
		{65, TierOneHour, true},
		{60, TierOneHour, true},
		{55, TierOneHour, true},
		{35, TierThirtyMinutes, true},
		{30, TierThirtyMinutes, true},
		{25, TierThirtyMinutes, true},
		{20, TierFifteenMinutes, true},
		{15, TierFifteenMinutes, true},
		{10, TierFifteenMinutes, true},

		{120, "", false}, // too early
		{66, "", false},
		{54, "", false}, // between 1h and 30min windows
		{36, "", false},
		{24, "", false}, // between 30min and 15min windows
		{21, "", false},
		{9, "", false}, // too close to departure
		{0, "", false},
		{-5, "", false}, // already departed
	}
	for _, c := range cases {
		tier, ok := ClassifyMinutes(c.minutes)
		if ok != c.ok || tier != c.tier {
			t.Errorf("ClassifyMinutes(%d) = (%q, %v), want (%q, %v)",
				c.minutes, tier, ok, c.tier, c.ok)
		}
	}
}

func TestClassifyMinutes_WindowsDisjoint(t *testing.T) {
	// No minute value may fall into two windows; scan the full plausible range.
	for m := -120; m <= 240; m++ {
		matches := 0
		for _, w := range windows {
			if m >= w.min && m <= w.max {
				matches++
			}
		}
		if matches > 1 {
			t.Fatalf("minute %d matches %d windows", m, matches)
		}
	}
}
