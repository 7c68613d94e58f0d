package models

// ValidateDaysRequest represents a calendar validation request
// @Description	Selected delivery days and subscription duration
type ValidateDaysRequest struct {
	Days          []string `json:"days" validate:"dive,datetime=2006-01-02"`
	DurationWeeks int      `json:"duration_weeks" validate:"required"`
}

// DayError is one broken calendar rule
type DayError struct {
	Code    string `json:"code"`
	Week    int    `json:"week,omitempty"`
	Message string `json:"message"`
}

// ValidateDaysResponse lists the broken rules; empty when the selection is valid
// @Description	Calendar validation result
type ValidateDaysResponse struct {
	Valid  bool       `json:"valid"`
	Errors []DayError `json:"errors"`
}

// HorizonResponse is the range of selectable dates
// @Description	Selectable date window for a duration
type HorizonResponse struct {
	DurationWeeks int    `json:"duration_weeks"`
	From          string `json:"from"`
	To            string `json:"to"`
}
