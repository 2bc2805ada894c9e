package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/voyadesk/travel_desk_app/internal/core/domain"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestDAIncidentalRate_EffectiveOn(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	openEnded := domain.DAIncidentalRate{EffectiveFrom: from}
	assert.True(t, openEnded.EffectiveOn(from))
	assert.True(t, openEnded.EffectiveOn(from.AddDate(5, 0, 0)))
	assert.False(t, openEnded.EffectiveOn(from.AddDate(0, 0, -1)))

	bounded := domain.DAIncidentalRate{EffectiveFrom: from, EffectiveTo: timePtr(to)}
	assert.True(t, bounded.EffectiveOn(to))
	assert.False(t, bounded.EffectiveOn(to.AddDate(0, 0, 1)))
}

func TestConveyanceRate_EffectiveOn(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	rate := domain.ConveyanceRate{EffectiveFrom: from, EffectiveTo: timePtr(to)}
	assert.True(t, rate.EffectiveOn(from))
	assert.True(t, rate.EffectiveOn(from.AddDate(0, 3, 0)))
	assert.False(t, rate.EffectiveOn(to.AddDate(0, 0, 1)))
	assert.False(t, rate.EffectiveOn(from.AddDate(0, 0, -1)))
}
