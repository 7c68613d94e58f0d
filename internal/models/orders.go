package models

import "time"

// PlaceOrderRequest represents an order submission
// @Description	Order submission: selection plus contact details
type PlaceOrderRequest struct {
	MealSelectionRequest
	ContactEmail string                `json:"contact_email,omitempty" validate:"omitempty,email"`
	CustomerID   string                `json:"customer_id,omitempty"`
	Override     *AdminOverrideRequest `json:"admin_override,omitempty"`
}

// PlaceOrderResponse represents a placed order
// @Description	Placed order with its subscription and price
type PlaceOrderResponse struct {
	OrderID      string                  `json:"order_id"`
	Subscription *SubscriptionResponse   `json:"subscription"`
	Deliveries   []DeliveryResponse      `json:"deliveries"`
	Price        *PriceBreakdownResponse `json:"price"`
}

// OrderResponse represents a stored order
// @Description	Stored order with a short-lived document link
type OrderResponse struct {
	OrderID        string    `json:"order_id"`
	SubscriptionID string    `json:"subscription_id"`
	CustomerID     string    `json:"customer_id"`
	PlanID         string    `json:"plan_id"`
	FinalTotal     float64   `json:"final_total"`
	DocumentURL    string    `json:"document_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
