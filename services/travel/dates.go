package travel

import "time"

// StayNights computes the nights between two YYYY-MM-DD dates,
// defaulting to 1 when the dates are absent or inverted.
func StayNights(checkIn, checkOut string) int {
	in, err1 := time.Parse("2006-01-02", checkIn)
	out, err2 := time.Parse("2006-01-02", checkOut)
	if err1 != nil || err2 != nil {
		return 1
	}
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}
