// README: Safety-transfer function client; invocation contract only.
package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// TransferRequest is the payload the safety-transfer function expects when a
// female passenger books a ride.
type TransferRequest struct {
	BookingID              string `json:"bookingId"`
	PassengerGender        string `json:"passengerGender"`
	PassengerAge           int    `json:"passengerAge"`
	RouteFrom              string `json:"routeFrom"`
	RouteTo                string `json:"routeTo"`
	DepartureDate          string `json:"departureDate"`
	DepartureTime          string `json:"departureTime"`
	PreferredSeat          string `json:"preferredSeat"`
	OriginalVehicleBrand   string `json:"originalVehicleBrand"`
	OriginalVehicleSegment string `json:"originalVehicleSegment"`
}

// TransferOffer is the optional reassignment the function proposes.
type TransferOffer struct {
	RideID  string `json:"rideId"`
	Message string `json:"message"`
}

type transferResponse struct {
	TransferRequest *TransferOffer `json:"transferRequest"`
}

// SafetyTransfer invokes the external safety-transfer function for eligible
// bookings. Its internals are out of scope; only this contract is ours.
type SafetyTransfer interface {
	Request(ctx context.Context, req TransferRequest) (*TransferOffer, error)
}

type SafetyClient struct {
	url    string
	client *http.Client
}

func NewSafetyClient(url string) *SafetyClient {
	return &SafetyClient{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *SafetyClient) Request(ctx context.Context, req TransferRequest) (*TransferOffer, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("safety transfer returned %d", resp.StatusCode)
	}
	var out transferResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.TransferRequest, nil
}
