package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType(t *testing.T) {
	tests := []struct {
		ct    CompressionType
		name  string
		valid bool
	}{
		{CompressionNone, "None", true},
		{CompressionZstd, "Zstd", true},
		{CompressionS2, "S2", true},
		{CompressionLZ4, "LZ4", true},
		{CompressionType(0), "Unknown", false},
		{CompressionType(0x5), "Unknown", false},
	}

	for _, tt := range tests {
		require.Equal(t, tt.name, tt.ct.String())
		require.Equal(t, tt.valid, tt.ct.Valid())
	}
}
