package display

import "fmt"

// sizeUnits are the binary (1024-based) magnitude labels, smallest to
// largest: conventional kB/MB/GB/TB labels despite the underlying
// scaling being base-1024.
var sizeUnits = [...]string{"bytes", "kB", "MB", "GB", "TB"}

// FormatSize renders a byte count as a human string, e.g. "512 bytes",
// "3.40 kB", "120 MB": the largest unit such that the scaled value is
// <= 1024, with 0 decimals at >= 100, 1 decimal at >= 10, else 2.
func FormatSize(size int64) string {
	magnitude := int64(1)
	orderOfMag := 0

	for size > 1024*magnitude && orderOfMag < len(sizeUnits)-1 {
		magnitude *= 1024
		orderOfMag++
	}

	relative := float64(size) / float64(magnitude)

	digits := 2
	switch {
	case relative >= 100:
		digits = 0
	case relative >= 10:
		digits = 1
	}

	return fmt.Sprintf("%.*f %s", digits, relative, sizeUnits[orderOfMag])
}
