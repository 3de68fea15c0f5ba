package trigger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMessage(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		cmd, err := decodeMessage([]byte(`{"watchListToken":"wl-1","ldhName":"EXAMPLE.com","updatedAt":"2024-01-01T00:00:00Z"}`))
		require.NoError(t, err)
		assert.Equal(t, "wl-1", cmd.WatchListToken)
		assert.Equal(t, "example.com", cmd.LDHName)
		assert.True(t, cmd.UpdatedAt.Equal(jan1))
	})

	cases := map[string]string{
		"not json":          `not json`,
		"missing token":     `{"ldhName":"example.com","updatedAt":"2024-01-01T00:00:00Z"}`,
		"missing ldh name":  `{"watchListToken":"wl-1","updatedAt":"2024-01-01T00:00:00Z"}`,
		"missing timestamp": `{"watchListToken":"wl-1","ldhName":"example.com"}`,
		"bad timestamp":     `{"watchListToken":"wl-1","ldhName":"example.com","updatedAt":"yesterday"}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := decodeMessage([]byte(payload))
			assert.Error(t, err)
		})
	}
}

func TestHandleMessageSkipsMalformedPayload(t *testing.T) {
	m := NewMessageHandler(nil, nil)
	err := m.HandleMessage(context.Background(), nil, []byte(`{}`))
	assert.ErrorIs(t, err, ErrSkipped)
}
