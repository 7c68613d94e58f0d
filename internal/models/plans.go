package models

// PlanResponse describes a meal plan in the catalog
type PlanResponse struct {
	PlanID      string  `json:"plan_id"`
	Name        string  `json:"name"`
	BaseRate    float64 `json:"base_rate"`
	Multiplier  float64 `json:"multiplier"`
	PricePerDay float64 `json:"price_per_day"`
}
