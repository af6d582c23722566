package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCode_RoundTrip(t *testing.T) {
	for _, l := range All() {
		t.Run(l.String(), func(t *testing.T) {
			got, err := FromCode(l.String())
			require.NoError(t, err)
			assert.Equal(t, l, got)
		})
	}
}

func TestFromCode_Unknown(t *testing.T) {
	tests := []string{"", "xx", "EN", "english", "en-US"}
	for _, code := range tests {
		t.Run(code, func(t *testing.T) {
			_, err := FromCode(code)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "unknown language code")
		})
	}
}

func TestAll_StableOrder(t *testing.T) {
	want := []Language{DE, EN, ES, FR, JA, KO}
	assert.Equal(t, want, All())
	assert.Equal(t, All(), All())
}

func TestIsValid(t *testing.T) {
	for _, l := range All() {
		assert.True(t, l.IsValid(), l)
	}
	assert.False(t, Language("xx").IsValid())
	assert.False(t, Language("").IsValid())
}

func TestFullName(t *testing.T) {
	tests := []struct {
		lang Language
		want string
	}{
		{DE, "German"},
		{EN, "English"},
		{ES, "Spanish"},
		{FR, "French"},
		{JA, "Japanese"},
		{KO, "Korean"},
	}
	for _, tt := range tests {
		t.Run(tt.lang.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.lang.FullName())
		})
	}
}
