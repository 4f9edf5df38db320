package loyalty

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

const resourceTransactions = "transactions"

// CreateTransactionParams is the purchase record posted for a customer.
type CreateTransactionParams struct {
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description,omitempty"`
	TransactionCode string          `json:"transactionCode"`
}

// ListCustomerTransactions fetches one page of a customer's ledger.
func (c *Client) ListCustomerTransactions(ctx context.Context, customerID int64, page, size int) ([]Transaction, *Pagination, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	env, err := c.get(ctx, resourceTransactions, "list", fmt.Sprintf("/v1/transactions/customer/%d", customerID), query)
	if err != nil {
		return nil, nil, err
	}

	var transactions []Transaction
	if err := decodeListInto(env.Data, &transactions); err != nil {
		return nil, nil, err
	}
	return transactions, env.Pagination, nil
}

// CreateTransaction records a purchase against a customer account.
// Server state changes; callers re-fetch afterward.
func (c *Client) CreateTransaction(ctx context.Context, customerID int64, params CreateTransactionParams) (*Transaction, error) {
	query := url.Values{}
	query.Set("customerId", strconv.FormatInt(customerID, 10))

	env, err := c.post(ctx, resourceTransactions, "create", "/v1/transactions", query, params)
	if err != nil {
		return nil, err
	}

	var transaction Transaction
	if err := decodeObjectInto(env.Data, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

// RecentTransactions fetches the program-wide most recent purchases.
func (c *Client) RecentTransactions(ctx context.Context, limit int) ([]Transaction, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	env, err := c.get(ctx, resourceTransactions, "recent", "/v1/transactions/recent", query)
	if err != nil {
		return nil, err
	}

	var transactions []Transaction
	if err := decodeListInto(env.Data, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}
