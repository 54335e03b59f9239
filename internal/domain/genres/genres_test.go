package genres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListValue(t *testing.T) {
	v, err := List{"Jazz", "Reggae"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["Jazz","Reggae"]`, v)
}

func TestListValueNilIsEmptyList(t *testing.T) {
	var l List
	v, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, `[]`, v, "nil must never reach the store as NULL")
}

func TestListScan(t *testing.T) {
	tests := []struct {
		name string
		src  interface{}
		want List
	}{
		{name: "bytes", src: []byte(`["Jazz","Reggae"]`), want: List{"Jazz", "Reggae"}},
		{name: "string", src: `["Folk"]`, want: List{"Folk"}},
		{name: "nil column", src: nil, want: List{}},
		{name: "empty bytes", src: []byte(``), want: List{}},
		{name: "empty json array", src: `[]`, want: List{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l List
			require.NoError(t, l.Scan(tt.src))
			assert.Equal(t, tt.want, l)
			assert.NotNil(t, l)
		})
	}
}

func TestListScanRejectsOtherTypes(t *testing.T) {
	var l List
	assert.Error(t, l.Scan(42))
}

func TestListRoundTripPreservesOrder(t *testing.T) {
	orig := List{"Reggae", "Jazz", "Blues"}
	v, err := orig.Value()
	require.NoError(t, err)

	var got List
	require.NoError(t, got.Scan(v))
	assert.Equal(t, orig, got)
}
