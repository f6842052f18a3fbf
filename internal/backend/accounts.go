package backend

import (
	"context"
	"net/url"

	"itapay-admin/internal/models"
)

type accountClient struct {
	c *Client
}

func (ac *accountClient) List(ctx context.Context, customerID string) ([]models.Account, error) {
	var query url.Values
	if customerID != "" {
		query = url.Values{"customerId": {customerID}}
	}

	var accounts []models.Account
	if err := ac.c.get(ctx, "/accounts", query, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (ac *accountClient) Get(ctx context.Context, id string) (*models.Account, error) {
	var account models.Account
	if err := ac.c.get(ctx, "/accounts/"+url.PathEscape(id), nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (ac *accountClient) GetBalance(ctx context.Context, id string) (*models.AccountBalance, error) {
	var balance models.AccountBalance
	if err := ac.c.get(ctx, "/accounts/"+url.PathEscape(id)+"/balance", nil, &balance); err != nil {
		return nil, err
	}
	if balance.AccountID == "" {
		balance.AccountID = id
	}
	return &balance, nil
}
