package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Date
	}{
		{"date only", "2024-03-01", NewDate(2024, time.March, 1)},
		{"rfc3339 timestamp truncated", "2024-03-01T10:30:00Z", NewDate(2024, time.March, 1)},
		{"timestamp without zone truncated", "2024-03-01T10:30:00", NewDate(2024, time.March, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
		})
	}
}

func TestParseDateInvalid(t *testing.T) {
	_, err := ParseDate("01/03/2024")
	assert.Error(t, err)

	_, err = ParseDate("not-a-date")
	assert.Error(t, err)
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.March, 1)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-01"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-01T23:59:59Z"`), &parsed))
	assert.True(t, parsed.Equal(d))
}

func TestDateJSONNull(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `null`, string(data))
}

func TestDateOrdering(t *testing.T) {
	earlier := NewDate(2024, time.January, 1)
	later := NewDate(2024, time.June, 30)

	assert.True(t, earlier.Before(later))
	assert.True(t, later.After(earlier))
	assert.False(t, earlier.After(later))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, time.March, 1, 14, 0, 0, 0, time.UTC)))
	assert.True(t, d.Equal(NewDate(2024, time.March, 1)))

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	require.NoError(t, d.Scan("2024-05-10"))
	assert.True(t, d.Equal(NewDate(2024, time.May, 10)))

	assert.Error(t, d.Scan(42))
}

func TestDateValue(t *testing.T) {
	v, err := NewDate(2024, time.March, 1).Value()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
