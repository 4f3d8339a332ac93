package http

import (
	"time"

	"salesorders/internal/core/application/usecases/queries"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddressRequest carries shipment address fields of a create or change request.
type AddressRequest struct {
	RecipientName   string `json:"recipientName"`
	CompanyName     string `json:"companyName,omitempty"`
	PhoneNumber     string `json:"phoneNumber"`
	StreetLine1     string `json:"streetLine1"`
	StreetLine2     string `json:"streetLine2,omitempty"`
	City            string `json:"city"`
	StateOrProvince string `json:"stateOrProvince"`
	PostalCode      string `json:"postalCode"`
	Country         string `json:"country"`
	Landmark        string `json:"landmark,omitempty"`
}

// RecurrenceRequest carries the recurrence schedule of a create or change request.
type RecurrenceRequest struct {
	Installments        int `json:"installments"`
	GapInDays           int `json:"gapInDays"`
	RequestedOffsetDays int `json:"requestedOffsetDays"`
}

// ItemRequest carries one requested order line.
type ItemRequest struct {
	ID             string `json:"id"`
	VendorID       string `json:"vendorId"`
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	Quantity       int64  `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	DiscountBps    int    `json:"discountBps"`
}

// CreateOrderRequest is the body of POST /api/v1/internal/sales-orders.
type CreateOrderRequest struct {
	ID               string             `json:"id"`
	CustomerID       string             `json:"customerId"`
	CustomerName     string             `json:"customerName"`
	DeliverySpeed    string             `json:"deliverySpeed"`
	Recurrent        bool               `json:"recurrent"`
	Address          AddressRequest     `json:"address"`
	Recurrence       *RecurrenceRequest `json:"recurrence,omitempty"`
	Items            []ItemRequest      `json:"items"`
	ApprovalRequired bool               `json:"approvalRequired"`
	CreditBlock      bool               `json:"creditBlock"`
	FraudHold        bool               `json:"fraudHold"`
}

// TransactionRequest names an order-scoped transaction to run.
type TransactionRequest struct {
	Transaction string `json:"transaction"`
}

// ItemTransactionRequest names an item-scoped transaction and its target items.
type ItemTransactionRequest struct {
	Transaction string   `json:"transaction"`
	ItemIDs     []string `json:"itemIds"`
}

// CancelItemsRequest lists the items to cancel.
type CancelItemsRequest struct {
	ItemIDs []string `json:"itemIds"`
}

// BackorderLineRequest is one item and the quantity that could not be fulfilled.
type BackorderLineRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int64  `json:"quantity"`
}

// BackorderRequest lists the items to move to backorder.
type BackorderRequest struct {
	Lines []BackorderLineRequest `json:"lines"`
}

// RestartRequest is the body of the restart endpoints.
type RestartRequest struct {
	CancelInvoice bool `json:"cancelInvoice"`
}

// AddItemsRequest lists the lines to append to an order.
type AddItemsRequest struct {
	Items []ItemRequest `json:"items"`
}

// ChangeDeliverySpeedRequest is the body of PUT .../delivery-speed.
type ChangeDeliverySpeedRequest struct {
	DeliverySpeed string `json:"deliverySpeed"`
}

// StatusResponseBody is one status record of an order or item.
type StatusResponseBody struct {
	StatusID  string    `json:"statusId"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BackorderResponseBody is the backorder detail of a backordered item.
type BackorderResponseBody struct {
	Quantity int64 `json:"quantity"`
}

// ItemResponseBody is one order line with its status records.
type ItemResponseBody struct {
	ID             string                 `json:"id"`
	VendorID       string                 `json:"vendorId"`
	ProductID      string                 `json:"productId"`
	Name           string                 `json:"name"`
	Quantity       int64                  `json:"quantity"`
	UnitPriceCents int64                  `json:"unitPriceCents"`
	DiscountBps    int                    `json:"discountBps"`
	TransitActive  bool                   `json:"transitActive"`
	Statuses       []StatusResponseBody   `json:"statuses"`
	Backorder      *BackorderResponseBody `json:"backorder,omitempty"`
}

// OrderResponseBody is the full read model of one order.
type OrderResponseBody struct {
	ID            string               `json:"id"`
	CustomerID    string               `json:"customerId"`
	CustomerName  string               `json:"customerName"`
	CreatedAt     time.Time            `json:"createdAt"`
	DeliverySpeed string               `json:"deliverySpeed"`
	Recurrent     bool                 `json:"recurrent"`
	Address       AddressRequest       `json:"address"`
	Recurrence    *RecurrenceRequest   `json:"recurrence,omitempty"`
	Statuses      []StatusResponseBody `json:"statuses"`
	Items         []ItemResponseBody   `json:"items"`
}

func toOrderResponse(r queries.GetOrderQueryResponse) OrderResponseBody {
	body := OrderResponseBody{
		ID:            r.ID.String(),
		CustomerID:    r.CustomerID.String(),
		CustomerName:  r.CustomerName,
		CreatedAt:     r.CreatedAt,
		DeliverySpeed: r.DeliverySpeed,
		Recurrent:     r.Recurrent,
		Address: AddressRequest{
			RecipientName:   r.Address.RecipientName,
			CompanyName:     r.Address.CompanyName,
			PhoneNumber:     r.Address.PhoneNumber,
			StreetLine1:     r.Address.StreetLine1,
			StreetLine2:     r.Address.StreetLine2,
			City:            r.Address.City,
			StateOrProvince: r.Address.StateOrProvince,
			PostalCode:      r.Address.PostalCode,
			Country:         r.Address.Country,
			Landmark:        r.Address.Landmark,
		},
		Statuses: toStatusBodies(r.Statuses),
	}

	if r.Recurrence != nil {
		body.Recurrence = &RecurrenceRequest{
			Installments:        r.Recurrence.Installments,
			GapInDays:           r.Recurrence.GapInDays,
			RequestedOffsetDays: r.Recurrence.RequestedOffsetDays,
		}
	}

	body.Items = make([]ItemResponseBody, 0, len(r.Items))
	for _, item := range r.Items {
		line := ItemResponseBody{
			ID:             item.ID.String(),
			VendorID:       item.VendorID.String(),
			ProductID:      item.ProductID.String(),
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
			DiscountBps:    item.DiscountBps,
			TransitActive:  item.TransitActive,
			Statuses:       toStatusBodies(item.Statuses),
		}
		if item.Backorder != nil {
			line.Backorder = &BackorderResponseBody{Quantity: item.Backorder.Quantity}
		}
		body.Items = append(body.Items, line)
	}

	return body
}

func toStatusBodies(statuses []queries.StatusResponse) []StatusResponseBody {
	bodies := make([]StatusResponseBody, 0, len(statuses))
	for _, s := range statuses {
		bodies = append(bodies, StatusResponseBody{
			StatusID:  s.StatusID,
			Active:    s.Active,
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
		})
	}
	return bodies
}
