package dashboard

import (
	"fmt"
	"testing"
	"time"

	"github.com/rewardplus/loyalty-console/pkg/loyalty"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stamp(t *testing.T, raw string) loyalty.Timestamp {
	t.Helper()
	parsed, err := time.Parse("2006-01-02T15:04", raw)
	require.NoError(t, err)
	return loyalty.Timestamp{Time: parsed}
}

func TestMergeActivityOrdersNewestFirst(t *testing.T) {
	transactions := []loyalty.Transaction{{
		CustomerName: "Alice Nguyen",
		Amount:       decimal.NewFromFloat(42.50),
		PointsEarned: 42,
		Date:         stamp(t, "2024-01-20T10:00"),
	}}
	redemptions := []loyalty.Redemption{{
		CustomerName: "Bob Reyes",
		RewardName:   "$25 Gift Card",
		Date:         stamp(t, "2024-01-21T09:00"),
	}}

	feed := MergeActivity(transactions, redemptions)

	require.Len(t, feed, 2)
	assert.Equal(t, ActivityRedemption, feed[0].Type)
	assert.Equal(t, "Redeemed $25 Gift Card", feed[0].Detail)
	assert.Equal(t, ActivityTransaction, feed[1].Type)
	assert.Equal(t, "Spent $42.50 (+42 pts)", feed[1].Detail)
	for _, event := range feed {
		assert.NotEmpty(t, event.Detail)
	}
}

func TestMergeActivityTruncatesToFive(t *testing.T) {
	var transactions []loyalty.Transaction
	for i := 0; i < 4; i++ {
		transactions = append(transactions, loyalty.Transaction{
			CustomerName: "Alice Nguyen",
			Amount:       decimal.NewFromInt(int64(i + 1)),
			Date:         stamp(t, fmt.Sprintf("2024-01-%02dT10:00", i+1)),
		})
	}
	var redemptions []loyalty.Redemption
	for i := 0; i < 4; i++ {
		redemptions = append(redemptions, loyalty.Redemption{
			CustomerName: "Bob Reyes",
			RewardName:   "Free Coffee",
			Date:         stamp(t, fmt.Sprintf("2024-01-%02dT09:00", i+10)),
		})
	}

	feed := MergeActivity(transactions, redemptions)

	require.Len(t, feed, 5)
	// The four redemptions are newest; the fifth slot falls to the
	// latest transaction.
	for i := 0; i < 4; i++ {
		assert.Equal(t, ActivityRedemption, feed[i].Type)
	}
	assert.Equal(t, ActivityTransaction, feed[4].Type)
	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i].Time.After(feed[i-1].Time.Time))
	}
}

func TestMergeActivityEmptyInputs(t *testing.T) {
	assert.Empty(t, MergeActivity(nil, nil))
}
