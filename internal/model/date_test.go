package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", d.String())
	assert.False(t, d.IsZero())
}

func TestParseDate_RejectsLooseFormats(t *testing.T) {
	for _, s := range []string{"", "2024/03/01", "03-01-2024", "2024-3-1", "2024-03-01T00:00:00", "yesterday"} {
		_, err := ParseDate(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestDate_AddDays(t *testing.T) {
	d := MustDate("2024-03-31")
	assert.Equal(t, "2024-04-01", d.AddDays(1).String())
	assert.Equal(t, "2024-03-30", d.AddDays(-1).String())
	assert.Equal(t, "2024-03-31", d.AddDays(1).AddDays(-1).String())
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := MustDate("2024-12-31")
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-12-31"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, d.Equal(back))
}

func TestDate_UnmarshalRejectsInvalid(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &d))
}
