package models

// MealSelectionRequest describes what the customer wants to order
// @Description	Meal selection to be priced
type MealSelectionRequest struct {
	PlanID           string   `json:"plan_id" validate:"required"`
	IncludeBreakfast bool     `json:"include_breakfast"`
	MainMeals        int      `json:"main_meals" validate:"min=0,max=10"`
	Snacks           int      `json:"snacks" validate:"min=0,max=10"`
	Days             []string `json:"days" validate:"required,min=1,dive,datetime=2006-01-02"`
	DurationWeeks    int      `json:"duration_weeks" validate:"required,oneof=1 2 4"`
	PromoCode        string   `json:"promo_code,omitempty" validate:"max=64"`
}

// AdminOverrideRequest is an operator price adjustment
// @Description	Admin override: either a percent or a replacement price
type AdminOverrideRequest struct {
	Percent *float64 `json:"percent,omitempty" validate:"omitempty,min=0,max=100"`
	Price   *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	Reason  string   `json:"reason" validate:"required,max=500"`
}

// QuoteRequest represents a pricing request
// @Description	Pricing request with optional admin override
type QuoteRequest struct {
	MealSelectionRequest
	Override *AdminOverrideRequest `json:"admin_override,omitempty"`
}

// DiscountResponse is one applied discount layer
type DiscountResponse struct {
	Kind    string  `json:"kind"`
	Percent float64 `json:"percent"`
	Amount  float64 `json:"amount"`
	Reason  string  `json:"reason,omitempty"`
}

// PriceBreakdownResponse represents an itemized price
// @Description	Itemized price of a meal selection
type PriceBreakdownResponse struct {
	PlanID           string             `json:"plan_id"`
	PricePerDay      float64            `json:"price_per_day"`
	PricePerWeek     *float64           `json:"price_per_week,omitempty"`
	ItemsPerDay      int                `json:"items_per_day"`
	SelectedDays     int                `json:"selected_days"`
	TotalItems       int                `json:"total_items"`
	TotalWeeks       int                `json:"total_weeks"`
	Subtotal         float64            `json:"subtotal"`
	VolumeDiscount   float64            `json:"volume_discount"`
	DurationDiscount float64            `json:"duration_discount"`
	SeasonalDiscount float64            `json:"seasonal_discount"`
	AdminDiscount    float64            `json:"admin_discount"`
	Discounts        []DiscountResponse `json:"discounts"`
	TotalDiscount    float64            `json:"total_discount"`
	FinalTotal       float64            `json:"final_total"`
	WeeklyPrice      float64            `json:"weekly_price"`
}
