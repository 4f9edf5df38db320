package loyalty

import (
	"context"
	"net/url"
	"strconv"
)

const resourceRewards = "rewards"

// ActiveRewards fetches the full active reward catalog.
func (c *Client) ActiveRewards(ctx context.Context) ([]Reward, error) {
	env, err := c.get(ctx, resourceRewards, "active", "/v1/rewards/active", nil)
	if err != nil {
		return nil, err
	}

	var rewards []Reward
	if err := decodeListInto(env.Data, &rewards); err != nil {
		return nil, err
	}
	return rewards, nil
}

// AvailableRewards fetches rewards currently open for redemption.
func (c *Client) AvailableRewards(ctx context.Context) ([]Reward, error) {
	env, err := c.get(ctx, resourceRewards, "available", "/v1/rewards/available", nil)
	if err != nil {
		return nil, err
	}

	var rewards []Reward
	if err := decodeListInto(env.Data, &rewards); err != nil {
		return nil, err
	}
	return rewards, nil
}

// RedeemReward exchanges a customer's points for a reward. Server state
// changes; callers re-fetch the points summary afterward.
func (c *Client) RedeemReward(ctx context.Context, customerID, rewardID int64) (*Redemption, error) {
	query := url.Values{}
	query.Set("customerId", strconv.FormatInt(customerID, 10))
	query.Set("rewardId", strconv.FormatInt(rewardID, 10))

	env, err := c.post(ctx, resourceRewards, "redeem", "/v1/rewards/redeem", query, nil)
	if err != nil {
		return nil, err
	}

	var redemption Redemption
	if err := decodeObjectInto(env.Data, &redemption); err != nil {
		return nil, err
	}
	return &redemption, nil
}

// RecentRedemptions fetches the program-wide most recent redemptions.
func (c *Client) RecentRedemptions(ctx context.Context, limit int) ([]Redemption, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	env, err := c.get(ctx, resourceRewards, "recent_redemptions", "/v1/rewards/redemptions/recent", query)
	if err != nil {
		return nil, err
	}

	var redemptions []Redemption
	if err := decodeListInto(env.Data, &redemptions); err != nil {
		return nil, err
	}
	return redemptions, nil
}
