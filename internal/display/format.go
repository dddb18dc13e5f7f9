package display

import (
	"fmt"
)

// FormatMegabytes renders a byte count as megabytes with two decimals,
// e.g. "700.00 MB". This is the fixed format of the sheet's File Size row.
func FormatMegabytes(bytes int64) string {
	return fmt.Sprintf("%.2f MB", float64(bytes)/1024/1024)
}

// FormatDuration renders whole seconds as zero-padded "HH:MM:SS". The hour
// field widens past two digits for durations of 100 hours or more.
func FormatDuration(seconds int64) string {
	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatFrameRate renders a frame rate with two decimals, e.g. "23.98".
func FormatFrameRate(fps float64) string {
	return fmt.Sprintf("%.2f", fps)
}
