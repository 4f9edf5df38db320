package dashboard

import (
	"fmt"
	"sort"

	"github.com/rewardplus/loyalty-console/pkg/loyalty"
)

// ActivityType tags a merged feed entry with its source collection.
type ActivityType string

const (
	ActivityTransaction ActivityType = "Transaction"
	ActivityRedemption  ActivityType = "Redemption"
)

// activityFeedLimit caps the merged feed served to the manager view.
const activityFeedLimit = 5

// ActivityEvent is a unified feed entry synthesized from a transaction
// or redemption record. It is derived, never server-native.
type ActivityEvent struct {
	Type     ActivityType      `json:"type"`
	Customer string            `json:"customer"`
	Time     loyalty.Timestamp `json:"time"`
	Detail   string            `json:"detail"`
}

// MergeActivity combines recent transactions and redemptions into one
// feed sorted newest first and truncated to the most recent five.
func MergeActivity(transactions []loyalty.Transaction, redemptions []loyalty.Redemption) []ActivityEvent {
	events := make([]ActivityEvent, 0, len(transactions)+len(redemptions))

	for _, tx := range transactions {
		events = append(events, ActivityEvent{
			Type:     ActivityTransaction,
			Customer: tx.CustomerName,
			Time:     tx.Date,
			Detail:   fmt.Sprintf("Spent $%s (+%d pts)", tx.Amount.StringFixed(2), tx.PointsEarned),
		})
	}
	for _, r := range redemptions {
		events = append(events, ActivityEvent{
			Type:     ActivityRedemption,
			Customer: r.CustomerName,
			Time:     r.Date,
			Detail:   fmt.Sprintf("Redeemed %s", r.RewardName),
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time.After(events[j].Time.Time)
	})

	if len(events) > activityFeedLimit {
		events = events[:activityFeedLimit]
	}
	return events
}
