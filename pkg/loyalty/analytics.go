package loyalty

import "context"

const resourceAnalytics = "analytics"

// Summary fetches the program rollup for the manager dashboard.
func (c *Client) Summary(ctx context.Context) (*AnalyticsSummary, error) {
	env, err := c.get(ctx, resourceAnalytics, "summary", "/v1/analytics/summary", nil)
	if err != nil {
		return nil, err
	}

	var summary AnalyticsSummary
	if err := decodeObjectInto(env.Data, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// CustomerActivity fetches the customer activity report. The report
// shape varies by backend version, so it passes through untyped.
func (c *Client) CustomerActivity(ctx context.Context) (map[string]any, error) {
	return c.report(ctx, "customers", "/v1/analytics/customers")
}

// RedemptionTrends fetches the redemption trend report.
func (c *Client) RedemptionTrends(ctx context.Context) (map[string]any, error) {
	return c.report(ctx, "redemptions", "/v1/analytics/redemptions")
}

// SalesAnalytics fetches the sales performance report.
func (c *Client) SalesAnalytics(ctx context.Context) (map[string]any, error) {
	return c.report(ctx, "sales", "/v1/analytics/sales")
}

func (c *Client) report(ctx context.Context, op, path string) (map[string]any, error) {
	env, err := c.get(ctx, resourceAnalytics, op, path, nil)
	if err != nil {
		return nil, err
	}

	var report map[string]any
	if err := decodeObjectInto(env.Data, &report); err != nil {
		return nil, err
	}
	return report, nil
}
