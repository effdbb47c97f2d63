package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	for _, d := range Dialects {
		require.NoError(t, Validate(d))
	}
	err := Validate("oracle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"oracle"`)
	assert.Equal(t, MySQL, Dialects[0])
}
