package booking

const (
	basePricePerPassenger = 99.0
	bookingFee            = 25.0
)

// computeTotalPrice derives the reservation total from whatever price
// components the caller supplied. When both the flight price and the seat
// price are known the total is their sum; when only one is known that one
// stands alone; when neither is known a deterministic estimate is used so
// the reservation never persists without a usable total.
func computeTotalPrice(flightPrice, seatPrice *float64, seatCount int) float64 {
	switch {
	case flightPrice != nil && seatPrice != nil:
		return *flightPrice + *seatPrice
	case flightPrice != nil:
		return *flightPrice
	case seatPrice != nil:
		return *seatPrice
	default:
		return estimateReservationPrice(seatCount)
	}
}

// estimateReservationPrice is the fallback when no price components were
// captured during the conversation. The estimate is deliberately simple
// and always non-negative.
func estimateReservationPrice(seatCount int) float64 {
	if seatCount < 1 {
		seatCount = 1
	}
	return basePricePerPassenger*float64(seatCount) + bookingFee
}
