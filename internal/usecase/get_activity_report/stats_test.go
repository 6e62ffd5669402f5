package get_activity_report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadipos/jadwal-service/internal/domain"
)

func schedule(tier, mode, status string) *domain.Schedule {
	return &domain.Schedule{
		SubscriptionTier: tier,
		DeliveryMode:     mode,
		InstallDate:      time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local),
		InstallTime:      "10:00",
		Status:           status,
	}
}

func TestFilterByStatus_ExactMatch(t *testing.T) {
	records := []*domain.Schedule{
		schedule("starter", "Online", "Fix Schedule"),
		schedule("starter", "Online", "fix schedule"),
		schedule("starter", "Online", "terjadwal"),
		schedule("starter", "Online", "Fix Schedule "),
	}

	kept := filterByStatus(records, "Fix Schedule")
	require.Len(t, kept, 1)
	assert.Same(t, records[0], kept[0])
}

func TestComputeGroupedTotals(t *testing.T) {
	records := []*domain.Schedule{
		schedule("starter", "Online", "Fix Schedule"),       // 2h online
		schedule("prime", "Offline", "Fix Schedule"),        // 3.5h offline
		schedule("starter basic", "Online", "Fix Schedule"), // 1h online
	}

	g := computeGroupedTotals(records)
	assert.Equal(t, 2, g.OnlineCount)
	assert.Equal(t, 1, g.OfflineCount)
	assert.Equal(t, 3*time.Hour, g.OnlineDuration)
	assert.Equal(t, 3*time.Hour+30*time.Minute, g.OfflineDuration)
	assert.Equal(t, g.OnlineDuration+g.OfflineDuration, g.Total())
}

func TestComputeGroupedTotals_RawModeMatching(t *testing.T) {
	// Grouping matches the stored casing exactly, unlike duration
	// resolution: "online" (lower case) lands in neither bucket.
	records := []*domain.Schedule{
		schedule("starter", "online", "Fix Schedule"),
		schedule("starter", "ONLINE", "Fix Schedule"),
		schedule("starter", "Hybrid", "Fix Schedule"),
	}

	g := computeGroupedTotals(records)
	assert.Equal(t, 0, g.OnlineCount)
	assert.Equal(t, 0, g.OfflineCount)
	assert.Equal(t, time.Duration(0), g.Total())
}

func TestComputeGroupedTotals_Empty(t *testing.T) {
	g := computeGroupedTotals(nil)
	assert.Equal(t, 0, g.OnlineCount)
	assert.Equal(t, 0, g.OfflineCount)
	assert.Equal(t, time.Duration(0), g.Total())
}

func TestComputeTierDistribution(t *testing.T) {
	records := []*domain.Schedule{
		schedule("starter", "Online", "Fix Schedule"),
		schedule("prime", "Online", "Fix Schedule"),
		schedule("starter", "Online", "Fix Schedule"),
		schedule("", "Online", "Fix Schedule"),
	}

	dist := computeTierDistribution(records)
	require.Len(t, dist, 3)
	assert.Equal(t, TierCount{Tier: "starter", Count: 2}, dist[0])
	// Tie between "prime" and "Unknown" keeps first-encountered order.
	assert.Equal(t, TierCount{Tier: "prime", Count: 1}, dist[1])
	assert.Equal(t, TierCount{Tier: domain.TierUnknownLabel, Count: 1}, dist[2])
}

func TestComputeTierDistribution_RawTierStrings(t *testing.T) {
	// Distribution keys are the raw stored strings: "Starter" and
	// "starter" are separate entries even though both resolve to the same
	// duration.
	records := []*domain.Schedule{
		schedule("Starter", "Online", "Fix Schedule"),
		schedule("starter", "Online", "Fix Schedule"),
	}

	dist := computeTierDistribution(records)
	require.Len(t, dist, 2)
	assert.Equal(t, "Starter", dist[0].Tier)
	assert.Equal(t, "starter", dist[1].Tier)
}

func TestComputeTierDistribution_SumsToFilteredCount(t *testing.T) {
	records := []*domain.Schedule{
		schedule("starter", "Online", "Fix Schedule"),
		schedule("prime", "Offline", "Fix Schedule"),
		schedule("advance", "Online", "Fix Schedule"),
		schedule("starter", "Online", "terjadwal"),
	}

	filtered := filterByStatus(records, "Fix Schedule")
	dist := computeTierDistribution(filtered)

	sum := 0
	for _, tc := range dist {
		sum += tc.Count
	}
	assert.Equal(t, len(filtered), sum)
}

func TestAggregation_Idempotent(t *testing.T) {
	records := []*domain.Schedule{
		schedule("starter", "Online", "Fix Schedule"),
		schedule("prime", "Offline", "Fix Schedule"),
		schedule("", "Hybrid", "Fix Schedule"),
	}

	first := computeGroupedTotals(filterByStatus(records, "Fix Schedule"))
	firstDist := computeTierDistribution(filterByStatus(records, "Fix Schedule"))
	second := computeGroupedTotals(filterByStatus(records, "Fix Schedule"))
	secondDist := computeTierDistribution(filterByStatus(records, "Fix Schedule"))

	assert.Equal(t, first, second)
	assert.Equal(t, firstDist, secondDist)

	// Input must not have been mutated.
	assert.Equal(t, "starter", records[0].SubscriptionTier)
	assert.Equal(t, "Hybrid", records[2].DeliveryMode)
}

func TestEndToEndScenario(t *testing.T) {
	// Three records: two confirmed, one still pending. The pending one must
	// be excluded from every statistic.
	records := []*domain.Schedule{
		schedule("starter", "Online", "Fix Schedule"),
		schedule("prime", "Offline", "Fix Schedule"),
		schedule("starter", "Online", "terjadwal"),
	}

	filtered := filterByStatus(records, "Fix Schedule")
	require.Len(t, filtered, 2)

	g := computeGroupedTotals(filtered)
	assert.Equal(t, 1, g.OnlineCount)
	assert.Equal(t, 1, g.OfflineCount)
	assert.Equal(t, 2.0, domain.DurationHours(g.OnlineDuration))
	assert.Equal(t, 3.5, domain.DurationHours(g.OfflineDuration))
	assert.Equal(t, 5.5, domain.DurationHours(g.Total()))

	dist := computeTierDistribution(filtered)
	require.Len(t, dist, 2)
	assert.Equal(t, TierCount{Tier: "starter", Count: 1}, dist[0])
	assert.Equal(t, TierCount{Tier: "prime", Count: 1}, dist[1])
}
