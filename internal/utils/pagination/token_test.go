package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	departure := time.Date(2026, 3, 14, 9, 30, 0, 123456789, time.UTC)
	createdAt := time.Date(2026, 1, 2, 11, 0, 0, 0, time.UTC)

	token := EncodeToken(departure, createdAt)
	require.NotEmpty(t, token)

	gotDeparture, gotCreatedAt, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, departure.Equal(gotDeparture))
	assert.True(t, createdAt.Equal(gotCreatedAt))
}

func TestDecodeToken_InvalidBase64(t *testing.T) {
	_, _, err := DecodeToken("not-base64!!!")
	assert.Error(t, err)
}

func TestDecodeToken_MissingSeparator(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("2026-03-14T09:30:00Z"))
	_, _, err := DecodeToken(token)
	assert.Error(t, err)
}

func TestDecodeToken_BadTimestamp(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("yesterday|tomorrow"))
	_, _, err := DecodeToken(token)
	assert.Error(t, err)
}
