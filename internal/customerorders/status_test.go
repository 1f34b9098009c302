package customerorders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"pending", "Confirmed", " SHIPPED ", "delivered", "cancelled"} {
		status, ok := ParseStatus(valid)
		require.True(t, ok, valid)
		assert.NotEmpty(t, status)
	}

	for _, invalid := range []string{"", "received", "archived", "pendin"} {
		_, ok := ParseStatus(invalid)
		assert.False(t, ok, invalid)
	}
}
