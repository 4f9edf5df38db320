package dashboard

import (
	"math"

	"github.com/rewardplus/loyalty-console/pkg/loyalty"
)

// band is the [floor, ceiling) points range a tier covers. The top tier
// has no ceiling.
type band struct {
	floor   int64
	ceiling int64
	top     bool
}

var tierBands = map[loyalty.Tier]band{
	loyalty.TierBronze:   {floor: 0, ceiling: 1000},
	loyalty.TierSilver:   {floor: 1000, ceiling: 5000},
	loyalty.TierGold:     {floor: 5000, ceiling: 10000},
	loyalty.TierPlatinum: {floor: 10000, ceiling: 25000},
	loyalty.TierDiamond:  {floor: 25000, top: true},
}

// TierProgress is the derived position of a balance inside its tier's
// points band. RemainingToNext is absent once the top tier is reached.
type TierProgress struct {
	Tier            loyalty.Tier `json:"tier"`
	Percent         float64      `json:"percent"`
	MaxReached      bool         `json:"maxReached"`
	NextTier        loyalty.Tier `json:"nextTier,omitempty"`
	RemainingToNext *int64       `json:"remainingToNext,omitempty"`
}

// ProgressFor derives tier progress from a server-asserted (balance, tier)
// pair. The tier is never re-derived from the balance; a balance outside
// its tier's band clamps to the [0,100] range. Unknown or missing tiers
// fall back to the lowest band.
func ProgressFor(balance int64, tier loyalty.Tier) TierProgress {
	b, ok := tierBands[tier]
	if !ok {
		tier = loyalty.TierBronze
		b = tierBands[tier]
	}

	if b.top {
		return TierProgress{Tier: tier, Percent: 100, MaxReached: true}
	}

	percent := float64(balance-b.floor) / float64(b.ceiling-b.floor) * 100
	percent = math.Max(0, math.Min(100, percent))

	remaining := b.ceiling - balance
	if remaining < 0 {
		remaining = 0
	}

	return TierProgress{
		Tier:            tier,
		Percent:         percent,
		NextTier:        nextTier(tier),
		RemainingToNext: &remaining,
	}
}

func nextTier(tier loyalty.Tier) loyalty.Tier {
	for i, t := range loyalty.Tiers {
		if t == tier && i+1 < len(loyalty.Tiers) {
			return loyalty.Tiers[i+1]
		}
	}
	return ""
}
