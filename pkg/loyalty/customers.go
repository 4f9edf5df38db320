package loyalty

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

const resourceCustomers = "customers"

// EnrollCustomerParams is the enrollment form forwarded to the API.
// The client performs no validation of its own: invalid input is sent
// through and the server's rejection is surfaced unchanged.
type EnrollCustomerParams struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	DateOfBirth string `json:"dateOfBirth"`
}

// ListCustomers fetches one page of enrolled customers.
func (c *Client) ListCustomers(ctx context.Context, page, size int) ([]Customer, *Pagination, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	env, err := c.get(ctx, resourceCustomers, "list", "/v1/customers", query)
	if err != nil {
		return nil, nil, err
	}

	var customers []Customer
	if err := decodeListInto(env.Data, &customers); err != nil {
		return nil, nil, err
	}
	return customers, env.Pagination, nil
}

// GetCustomer fetches a single customer by ID.
func (c *Client) GetCustomer(ctx context.Context, id int64) (*Customer, error) {
	env, err := c.get(ctx, resourceCustomers, "get", fmt.Sprintf("/v1/customers/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var customer Customer
	if err := decodeObjectInto(env.Data, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// EnrollCustomer creates a new member. Callers re-fetch lists afterward;
// there is no local cache to invalidate.
func (c *Client) EnrollCustomer(ctx context.Context, params EnrollCustomerParams) (*Customer, error) {
	env, err := c.post(ctx, resourceCustomers, "enroll", "/v1/customers/enroll", nil, params)
	if err != nil {
		return nil, err
	}

	var customer Customer
	if err := decodeObjectInto(env.Data, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetPointsSummary fetches the points account for a customer.
func (c *Client) GetPointsSummary(ctx context.Context, id int64) (*PointsSummary, error) {
	env, err := c.get(ctx, resourceCustomers, "points", fmt.Sprintf("/v1/customers/%d/points", id), nil)
	if err != nil {
		return nil, err
	}

	var summary PointsSummary
	if err := decodeObjectInto(env.Data, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// SearchCustomers looks up customers by free-text query.
func (c *Client) SearchCustomers(ctx context.Context, text string) ([]Customer, error) {
	query := url.Values{}
	query.Set("query", text)

	env, err := c.get(ctx, resourceCustomers, "search", "/v1/customers/search", query)
	if err != nil {
		return nil, err
	}

	var customers []Customer
	if err := decodeListInto(env.Data, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}
