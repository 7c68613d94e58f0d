package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderForm struct {
	Email     string   `json:"contact_email" validate:"required,email"`
	MainMeals int      `json:"main_meals" validate:"oneof=1 2"`
	Days      []string `json:"days" validate:"min=3,dive,datetime=2006-01-02"`
	PromoCode string   `json:"promo_code" validate:"max=8"`
}

func TestStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		form := orderForm{
			Email:     "client@example.com",
			MainMeals: 2,
			Days:      []string{"2026-10-19", "2026-10-20", "2026-10-21"},
			PromoCode: "WELCOME",
		}
		assert.NoError(t, Struct(form))
	})

	t.Run("field errors use json names", func(t *testing.T) {
		form := orderForm{
			Email:     "not-an-email",
			MainMeals: 3,
			Days:      []string{"2026-10-19"},
			PromoCode: "WELCOME10-EXTRA",
		}

		err := Struct(form)

		var errs Errors
		require.ErrorAs(t, err, &errs)
		fields := make(map[string]string, len(errs))
		for _, e := range errs {
			fields[e.Field] = e.Message
		}
		assert.Equal(t, "is not a valid email address", fields["contact_email"])
		assert.Equal(t, "must be one of: 1 2", fields["main_meals"])
		assert.Equal(t, "must be at least 3", fields["days"])
		assert.Equal(t, "must be at most 8", fields["promo_code"])
	})
}

func TestValidatePromoCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"normalized", "  ramadan15 ", "RAMADAN15", false},
		{"with dash", "spring-5", "SPRING-5", false},
		{"too short", "ab", "", true},
		{"sql fragment", "'; DROP TABLE", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidatePromoCode(tt.input, "promo_code")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
