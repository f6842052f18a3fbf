package backend

import (
	"context"
	"net/http"
	"net/url"

	"itapay-admin/internal/models"
)

type customerClient struct {
	c *Client
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

func (cc *customerClient) List(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := cc.c.get(ctx, "/customers", nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (cc *customerClient) Get(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	if err := cc.c.get(ctx, "/customers/"+url.PathEscape(id), nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (cc *customerClient) UpdateStatus(ctx context.Context, id string, status models.CustomerStatus) (*models.Customer, error) {
	req, err := cc.c.buildRequest(
		ctx,
		http.MethodPatch,
		"/customers/"+url.PathEscape(id)+"/status",
		nil,
		statusUpdateRequest{Status: string(status)},
	)
	if err != nil {
		return nil, err
	}

	var customer models.Customer
	if err := cc.c.do(req, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}
