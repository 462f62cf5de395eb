package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	c, ok := ByName("json")
	require.True(t, ok)
	assert.Equal(t, "json", c.Name())

	_, ok = ByName("msgpack")
	assert.False(t, ok)
}

func TestJSONRoundTrip(t *testing.T) {
	doc := map[string]string{"2023-12-25": "CABXYZPONMLK"}

	data, err := Default.Marshal(doc)
	require.NoError(t, err)

	got := map[string]string{}
	require.NoError(t, Default.Unmarshal(data, &got))
	assert.Equal(t, doc, got)
}

func TestMustMarshal(t *testing.T) {
	data := MustMarshal(nil, map[string]int{"a": 1})
	assert.JSONEq(t, `{"a":1}`, string(data))

	assert.Panics(t, func() {
		MustMarshal(JSON{}, func() {})
	})
}
