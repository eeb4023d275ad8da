package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSizeBytes(t *testing.T) {
	assert.Equal(t, "0.00 bytes", FormatSize(0))
	assert.Equal(t, "512 bytes", FormatSize(512))
}

func TestFormatSizeStaysInUnitAtExactBoundary(t *testing.T) {
	// size == 1024*magnitude exactly still satisfies "scaled value <= 1024",
	// so it stays in the smaller unit rather than rolling over.
	assert.Equal(t, "1024 bytes", FormatSize(1024))
}

func TestFormatSizeKB(t *testing.T) {
	assert.Equal(t, "1.50 kB", FormatSize(1536))
}

func TestFormatSizeDigitsByMagnitudeThreshold(t *testing.T) {
	assert.Equal(t, "99.9 kB", FormatSize(102297))
	assert.Equal(t, "977 kB", FormatSize(1000000))
}

func TestFormatSizeTBCapsHighestUnit(t *testing.T) {
	huge := int64(1024) * 1024 * 1024 * 1024 * 1024 * 5
	assert.Contains(t, FormatSize(huge), "TB")
}
