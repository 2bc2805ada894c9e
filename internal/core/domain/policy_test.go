package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/voyadesk/travel_desk_app/internal/core/domain"
)

func TestRuleParameters_Number(t *testing.T) {
	tests := []struct {
		name   string
		params domain.RuleParameters
		key    string
		want   decimal.Decimal
		wantOK bool
	}{
		{
			name:   "float64 from JSON decoding",
			params: domain.RuleParameters{"days": float64(7)},
			key:    "days",
			want:   decimal.NewFromInt(7),
			wantOK: true,
		},
		{
			name:   "int value",
			params: domain.RuleParameters{"days": 3},
			key:    "days",
			want:   decimal.NewFromInt(3),
			wantOK: true,
		},
		{
			name:   "numeric string",
			params: domain.RuleParameters{"max_distance": "150.5"},
			key:    "max_distance",
			want:   decimal.NewFromFloat(150.5),
			wantOK: true,
		},
		{
			name:   "non-numeric string",
			params: domain.RuleParameters{"days": "soon"},
			key:    "days",
			wantOK: false,
		},
		{
			name:   "missing key",
			params: domain.RuleParameters{"days": float64(7)},
			key:    "hours",
			wantOK: false,
		},
		{
			name:   "nil value",
			params: domain.RuleParameters{"days": nil},
			key:    "days",
			wantOK: false,
		},
		{
			name:   "bool is not numeric",
			params: domain.RuleParameters{"days": true},
			key:    "days",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.params.Number(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
			}
		})
	}
}

func TestRuleParameters_Int(t *testing.T) {
	params := domain.RuleParameters{"hours": float64(36.9)}

	got, ok := params.Int("hours")
	assert.True(t, ok)
	assert.Equal(t, 36, got, "fractional values truncate")

	_, ok = params.Int("days")
	assert.False(t, ok)
}
