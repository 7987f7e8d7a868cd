package cricapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *int64
	}{
		{"json number", float64(42), ptr(int64(42))},
		{"numeric string", "1413", ptr(int64(1413))},
		{"padded string", " 7 ", ptr(int64(7))},
		{"truncates float", float64(44.9), ptr(int64(44))},
		{"decimal string", "44.5", nil},
		{"junk string", "DNB", nil},
		{"empty string", "", nil},
		{"nil", nil, nil},
		{"bool", true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AsInt(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestAsFloat(t *testing.T) {
	assert.Nil(t, AsFloat(nil))
	assert.Nil(t, AsFloat(""))
	assert.Nil(t, AsFloat("54-2"))

	got := AsFloat("55.37")
	require.NotNil(t, got)
	assert.InDelta(t, 55.37, *got, 1e-9)

	got = AsFloat(float64(6))
	require.NotNil(t, got)
	assert.InDelta(t, 6.0, *got, 1e-9)
}

func TestAsString(t *testing.T) {
	assert.Nil(t, AsString(nil))

	assert.Equal(t, "c Smith b Starc", *AsString("c Smith b Starc"))
	assert.Equal(t, "128", *AsString(float64(128)), "whole numbers have no decimal point")
	assert.Equal(t, "18.4", *AsString(float64(18.4)))
	assert.Equal(t, "true", *AsString(true))
	assert.Equal(t, "Pavilion End, Nursery End", *AsString([]any{"Pavilion End", "Nursery End"}))
}

func TestEpochMillis(t *testing.T) {
	assert.Nil(t, EpochMillis(nil), "absent timestamp is null, not epoch zero")
	assert.Nil(t, EpochMillis(float64(0)))
	assert.Nil(t, EpochMillis("0"))
	assert.Nil(t, EpochMillis("not-a-number"))

	got := EpochMillis("1700000000000")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC), *got)

	got = EpochMillis(float64(1700000000000))
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC), *got)
}

func ptr[T any](v T) *T { return &v }
