package types

import (
	"cosmossdk.io/math"
)

var secondsPerHour = math.NewInt(SecondsPerHour)

// CalculateReward returns floor(elapsed * rate / 3600): rate is in reward base units per
// asset per hour and accrues linearly per second. The product is computed on arbitrary
// precision integers so it cannot overflow; the division truncates toward zero. A negative
// elapsed time (clock skew) earns nothing.
func CalculateReward(elapsed int64, rate uint64) math.Int {
	if elapsed <= 0 || rate == 0 {
		return math.ZeroInt()
	}
	return math.NewInt(elapsed).Mul(math.NewIntFromUint64(rate)).Quo(secondsPerHour)
}
