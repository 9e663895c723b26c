package passindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    Method
		wantErr bool
	}{
		{"grid", MethodGrid, false},
		{"Place", MethodPlace, false},
		{" custom ", MethodCustom, false},
		{"border", Method{}, true},
		{"", Method{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMethod(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMethod_Defaults(t *testing.T) {
	var zero Method
	assert.Equal(t, "grid", zero.Name())
	assert.True(t, zero.HasDefaults())
	assert.False(t, zero.supplied())

	assert.True(t, MethodPlace.IsPlace())
	assert.False(t, MethodCustom.HasDefaults())

	custom := CustomMethod(func(Recording, *Options) error { return nil })
	assert.Equal(t, "custom", custom.Name())
	assert.Equal(t, "custom(func)", custom.String())
	assert.Equal(t, MethodCustom, custom.withoutFunc())
	assert.NoError(t, custom.validate())
}
