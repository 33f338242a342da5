package fossoapi

import (
	"context"
	"log/slog"
	"net/http"

	"fosso/internal/core/domain/model/kernel"
	"fosso/internal/core/domain/model/order"
	"fosso/internal/pkg/errs"
)

// CustomerClient implements ports.CustomerClient via the customer service HTTP API.
type CustomerClient struct {
	baseClient
}

// addressResponse mirrors a saved address in the customer service JSON payload.
type addressResponse struct {
	AddressID    string `json:"addressId"`
	AddressType  string `json:"addressType"`
	PhoneNumber  string `json:"phoneNumber"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
}

// NewCustomerClient creates a customer service client with the default timeout.
func NewCustomerClient(baseURL string, logger *slog.Logger) (*CustomerClient, error) {
	base, err := newBaseClient(baseURL, logger)
	if err != nil {
		return nil, err
	}
	return &CustomerClient{baseClient: base}, nil
}

// GetAddress resolves one of the customer's saved addresses by id.
func (c *CustomerClient) GetAddress(ctx context.Context, customerID kernel.UUID, addressID string) (*order.Address, error) {
	resp, err := c.do(ctx, http.MethodGet,
		[]string{"/api/v1/customers/", customerID.String(), "/addresses/", addressID}, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var data addressResponse
		if err := decodeJSON(resp, &data); err != nil {
			return nil, err
		}
		address := &order.Address{
			AddressID:    data.AddressID,
			AddressType:  data.AddressType,
			PhoneNumber:  data.PhoneNumber,
			AddressLine1: data.AddressLine1,
			AddressLine2: data.AddressLine2,
			City:         data.City,
			State:        data.State,
			PostalCode:   data.PostalCode,
			Country:      data.Country,
		}
		if err := address.Validate(); err != nil {
			return nil, err
		}
		return address, nil
	case http.StatusNotFound:
		return nil, errs.NewObjectNotFoundError("address", addressID)
	default:
		return nil, c.unexpectedStatus("get address", resp)
	}
}
