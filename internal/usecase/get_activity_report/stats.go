package get_activity_report

import (
	"sort"
	"time"

	"github.com/nadipos/jadwal-service/internal/domain"
)

// groupedTotals carries the per-mode aggregates in raw duration form;
// conversion to hours happens only at the response boundary.
type groupedTotals struct {
	OnlineCount     int
	OfflineCount    int
	OnlineDuration  time.Duration
	OfflineDuration time.Duration
}

// Total is the grand total: the online and offline buckets combined.
func (g groupedTotals) Total() time.Duration {
	return g.OnlineDuration + g.OfflineDuration
}

// filterByStatus keeps records whose status exactly equals the target.
// The match is case-sensitive on purpose: status labels drive whether a
// record counts as confirmed, and near-variants must not slip in.
func filterByStatus(records []*domain.Schedule, status string) []*domain.Schedule {
	kept := make([]*domain.Schedule, 0, len(records))
	for _, r := range records {
		if r.Status == status {
			kept = append(kept, r)
		}
	}
	return kept
}

// computeGroupedTotals accumulates counts and durations per delivery mode.
// Bucketing matches the raw stored tipe_outlet exactly against "Online" and
// "Offline" - unlike duration resolution, which normalizes case. A record
// with any other casing lands in neither bucket.
func computeGroupedTotals(records []*domain.Schedule) groupedTotals {
	var g groupedTotals

	for _, r := range records {
		d := r.Duration()

		switch r.DeliveryMode {
		case domain.ModeOnline:
			g.OnlineCount++
			g.OnlineDuration += d
		case domain.ModeOffline:
			g.OfflineCount++
			g.OfflineDuration += d
		}
	}

	return g
}

// computeTierDistribution counts occurrences per raw subscription-tier
// string, bucketing empty tiers under "Unknown". The result is sorted by
// count descending; ties keep first-encountered order.
func computeTierDistribution(records []*domain.Schedule) []TierCount {
	indexByTier := make(map[string]int, len(records))
	distribution := make([]TierCount, 0)

	for _, r := range records {
		tier := r.SubscriptionTier
		if tier == "" {
			tier = domain.TierUnknownLabel
		}

		if i, ok := indexByTier[tier]; ok {
			distribution[i].Count++
			continue
		}

		indexByTier[tier] = len(distribution)
		distribution = append(distribution, TierCount{Tier: tier, Count: 1})
	}

	sort.SliceStable(distribution, func(i, j int) bool {
		return distribution[i].Count > distribution[j].Count
	})

	return distribution
}
