package loyalty

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

const resourcePromotions = "promotions"

// CreatePromotionParams is the campaign form forwarded to the API.
type CreatePromotionParams struct {
	Name                  string           `json:"name"`
	Description           string           `json:"description,omitempty"`
	Type                  string           `json:"promotionType"`
	Status                string           `json:"status"`
	StartDate             string           `json:"startDate"`
	EndDate               string           `json:"endDate"`
	BonusPointsMultiplier *decimal.Decimal `json:"bonusPointsMultiplier,omitempty"`
	UsageLimit            int              `json:"usageLimit"`
}

// ActivePromotions fetches all currently running campaigns.
func (c *Client) ActivePromotions(ctx context.Context) ([]Promotion, error) {
	env, err := c.get(ctx, resourcePromotions, "active", "/v1/promotions/active", nil)
	if err != nil {
		return nil, err
	}

	var promotions []Promotion
	if err := decodeListInto(env.Data, &promotions); err != nil {
		return nil, err
	}
	return promotions, nil
}

// CreatePromotion registers a new campaign. Server state changes;
// callers re-fetch the promotion list afterward.
func (c *Client) CreatePromotion(ctx context.Context, params CreatePromotionParams) (*Promotion, error) {
	env, err := c.post(ctx, resourcePromotions, "create", "/v1/promotions", nil, params)
	if err != nil {
		return nil, err
	}

	var promotion Promotion
	if err := decodeObjectInto(env.Data, &promotion); err != nil {
		return nil, err
	}
	return &promotion, nil
}

// CustomerPromotions fetches the campaigns a customer qualifies for.
func (c *Client) CustomerPromotions(ctx context.Context, customerID int64) ([]Promotion, error) {
	env, err := c.get(ctx, resourcePromotions, "for_customer", fmt.Sprintf("/v1/promotions/customer/%d", customerID), nil)
	if err != nil {
		return nil, err
	}

	var promotions []Promotion
	if err := decodeListInto(env.Data, &promotions); err != nil {
		return nil, err
	}
	return promotions, nil
}
