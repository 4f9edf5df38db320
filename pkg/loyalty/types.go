package loyalty

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Tier is the ordinal loyalty level asserted by the server. The console
// never re-derives it from a balance.
type Tier string

const (
	TierBronze   Tier = "BRONZE"
	TierSilver   Tier = "SILVER"
	TierGold     Tier = "GOLD"
	TierPlatinum Tier = "PLATINUM"
	TierDiamond  Tier = "DIAMOND"
)

// Tiers lists the levels in ascending order.
var Tiers = []Tier{TierBronze, TierSilver, TierGold, TierPlatinum, TierDiamond}

// PromotionStatus values served by the promotion endpoints.
const (
	PromotionDraft     = "DRAFT"
	PromotionScheduled = "SCHEDULED"
	PromotionActive    = "ACTIVE"
	PromotionPaused    = "PAUSED"
	PromotionExpired   = "EXPIRED"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Timestamp tolerates the wire formats the API emits for date-time
// fields: RFC3339, LocalDateTime without zone, and bare dates.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp %q", raw)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339))
}

// Customer is the enrolled member record.
type Customer struct {
	ID           int64  `json:"id"`
	CustomerCode string `json:"customerCode"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	DateOfBirth  string `json:"dateOfBirth"`
	Status       string `json:"status"`
	Tier         Tier   `json:"tier"`
	Balance      int64  `json:"currentPointsBalance"`
}

// PointsSummary is the per-customer points account.
type PointsSummary struct {
	CustomerID       int64  `json:"customerId"`
	CustomerName     string `json:"customerName"`
	CurrentBalance   int64  `json:"currentBalance"`
	LifetimePoints   int64  `json:"lifetimePoints"`
	AvailableBalance int64  `json:"availableBalance"`
	Tier             Tier   `json:"tier"`
}

// Transaction is a loyalty ledger purchase record. Two API generations
// serve it with different field names; decoding applies a fixed
// precedence per field:
//
//	description  over  type
//	amount       over  transactionAmount
//	pointsEarned over  points
//	transactionDate over date
type Transaction struct {
	ID              int64           `json:"id"`
	TransactionCode string          `json:"transactionCode"`
	CustomerID      int64           `json:"customerId"`
	CustomerName    string          `json:"customerName"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	PointsEarned    int64           `json:"pointsEarned"`
	Date            Timestamp       `json:"transactionDate"`
	Status          string          `json:"status"`
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID                int64            `json:"id"`
		TransactionCode   string           `json:"transactionCode"`
		CustomerID        int64            `json:"customerId"`
		CustomerName      string           `json:"customerName"`
		Description       string           `json:"description"`
		Type              string           `json:"type"`
		Amount            *decimal.Decimal `json:"amount"`
		TransactionAmount *decimal.Decimal `json:"transactionAmount"`
		PointsEarned      *int64           `json:"pointsEarned"`
		Points            *int64           `json:"points"`
		TransactionDate   Timestamp        `json:"transactionDate"`
		Date              Timestamp        `json:"date"`
		Status            string           `json:"status"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	t.ID = raw.ID
	t.TransactionCode = raw.TransactionCode
	t.CustomerID = raw.CustomerID
	t.CustomerName = raw.CustomerName
	t.Description = firstNonEmpty(raw.Description, raw.Type)
	t.Amount = firstDecimal(raw.Amount, raw.TransactionAmount)
	t.PointsEarned = firstInt64(raw.PointsEarned, raw.Points)
	t.Date = firstTimestamp(raw.TransactionDate, raw.Date)
	t.Status = raw.Status
	return nil
}

// Reward is a redeemable catalog entry. Field precedence:
//
//	rewardType     over  category
//	pointsRequired over  points
type Reward struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	PointsRequired int64  `json:"pointsRequired"`
	Status         string `json:"status"`
}

func (r *Reward) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID             int64  `json:"id"`
		Name           string `json:"name"`
		Description    string `json:"description"`
		RewardType     string `json:"rewardType"`
		Category       string `json:"category"`
		PointsRequired *int64 `json:"pointsRequired"`
		Points         *int64 `json:"points"`
		Status         string `json:"status"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.ID = raw.ID
	r.Name = raw.Name
	r.Description = raw.Description
	r.Category = firstNonEmpty(raw.RewardType, raw.Category)
	r.PointsRequired = firstInt64(raw.PointsRequired, raw.Points)
	r.Status = raw.Status
	return nil
}

// Redemption records an exchange of points for a reward. Field
// precedence: redemptionDate over createdAt.
type Redemption struct {
	ID             int64     `json:"id"`
	RedemptionCode string    `json:"redemptionCode"`
	CustomerID     int64     `json:"customerId"`
	CustomerName   string    `json:"customerName"`
	RewardID       int64     `json:"rewardId"`
	RewardName     string    `json:"rewardName"`
	PointsRedeemed int64     `json:"pointsRedeemed"`
	Date           Timestamp `json:"redemptionDate"`
	Status         string    `json:"status"`
}

func (r *Redemption) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID             int64     `json:"id"`
		RedemptionCode string    `json:"redemptionCode"`
		CustomerID     int64     `json:"customerId"`
		CustomerName   string    `json:"customerName"`
		RewardID       int64     `json:"rewardId"`
		RewardName     string    `json:"rewardName"`
		PointsRedeemed int64     `json:"pointsRedeemed"`
		RedemptionDate Timestamp `json:"redemptionDate"`
		CreatedAt      Timestamp `json:"createdAt"`
		Status         string    `json:"status"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.ID = raw.ID
	r.RedemptionCode = raw.RedemptionCode
	r.CustomerID = raw.CustomerID
	r.CustomerName = raw.CustomerName
	r.RewardID = raw.RewardID
	r.RewardName = raw.RewardName
	r.PointsRedeemed = raw.PointsRedeemed
	r.Date = firstTimestamp(raw.RedemptionDate, raw.CreatedAt)
	r.Status = raw.Status
	return nil
}

// Promotion is a marketing campaign record.
type Promotion struct {
	ID                    int64           `json:"id"`
	Name                  string          `json:"name"`
	Description           string          `json:"description"`
	PromotionCode         string          `json:"promotionCode"`
	Type                  string          `json:"promotionType"`
	Status                string          `json:"status"`
	StartDate             Timestamp       `json:"startDate"`
	EndDate               Timestamp       `json:"endDate"`
	BonusPointsMultiplier decimal.Decimal `json:"bonusPointsMultiplier"`
	UsageLimit            int             `json:"usageLimit"`
	UsageCount            int             `json:"usageCount"`
}

// AnalyticsSummary is the program-wide rollup served to managers.
type AnalyticsSummary struct {
	TotalCustomers      int64           `json:"totalCustomers"`
	ActiveCustomers     int64           `json:"activeCustomers"`
	SuspendedCustomers  int64           `json:"suspendedCustomers"`
	TierDistribution    map[Tier]int64  `json:"tierDistribution"`
	TotalTransactions   int64           `json:"totalTransactions"`
	MonthlyRevenue      decimal.Decimal `json:"monthlyRevenue"`
	TotalRevenue        decimal.Decimal `json:"totalRevenue"`
	TotalPointsRedeemed int64           `json:"totalPointsRedeemed"`
	TotalRewards        int64           `json:"totalRewards"`
	ActiveRewards       int64           `json:"activeRewards"`
	ActivePromotions    int64           `json:"activePromotions"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func firstInt64(values ...*int64) int64 {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return 0
}

func firstDecimal(values ...*decimal.Decimal) decimal.Decimal {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return decimal.Zero
}

func firstTimestamp(values ...Timestamp) Timestamp {
	for _, v := range values {
		if !v.IsZero() {
			return v
		}
	}
	return Timestamp{}
}
