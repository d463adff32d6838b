package types

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCalculationResponse(t *testing.T) {
	resp := NewCalculationResponse("divide", "/", 7, -2, -3)

	require.NotNil(t, resp.Result)
	assert.Equal(t, int64(-3), *resp.Result)
	assert.False(t, resp.Failed())
	assert.Equal(t, "7 / -2 = -3", resp.Summary)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestNewFailedCalculationResponse(t *testing.T) {
	resp := NewFailedCalculationResponse("divide", "/", 1, 0, errors.New("division by zero"))

	assert.Nil(t, resp.Result)
	assert.True(t, resp.Failed())
	assert.Equal(t, "division by zero", resp.Error)
	assert.Equal(t, "1 / 0 failed: division by zero", resp.Summary)
}

func TestCalculationResponseJSON(t *testing.T) {
	ok := NewCalculationResponse("add", "+", 2, -2, 0)
	data, err := json.Marshal(ok)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))
	// A zero result is still present.
	assert.Contains(t, fields, "result")
	assert.NotContains(t, fields, "error")
	assert.NotContains(t, fields, "id")

	failed := NewFailedCalculationResponse("divide", "/", 1, 0, errors.New("division by zero"))
	data, err = json.Marshal(failed)
	require.NoError(t, err)

	fields = nil
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.NotContains(t, fields, "result")
	assert.Equal(t, "division by zero", fields["error"])
}
