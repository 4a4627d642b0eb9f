package workspace

import (
	"fmt"
	"math"
)

// FormatConfidence renders a [0,1] confidence score as a rounded percentage,
// e.g. 0.873 -> "87%".
func FormatConfidence(score float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(score*100)))
}

// FormatProcessingTime renders a duration in seconds with two decimals,
// e.g. 1.234 -> "1.23s".
func FormatProcessingTime(seconds float64) string {
	return fmt.Sprintf("%.2fs", seconds)
}
