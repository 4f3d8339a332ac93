package order

import (
	"fmt"

	"salesorders/internal/pkg/errs"
)

// DeliverySpeed is the requested shipping service level for an order.
type DeliverySpeed int

const (
	// SpeedUnknown represents an invalid or undefined delivery speed.
	// This value (0) helps catch uninitialized DeliverySpeed values.
	SpeedUnknown DeliverySpeed = iota

	// SpeedNormal is the default service level.
	SpeedNormal

	// SpeedExpress is expedited shipping.
	SpeedExpress

	// SpeedSameDay is same-day delivery.
	SpeedSameDay
)

func getDeliverySpeedStrings() map[DeliverySpeed]string {
	return map[DeliverySpeed]string{
		SpeedUnknown: "Unknown",
		SpeedNormal:  "Normal",
		SpeedExpress: "Express",
		SpeedSameDay: "SameDay",
	}
}

func getValidDeliverySpeedStrings() map[DeliverySpeed]string {
	//nolint:exhaustive // SpeedUnknown is intentionally excluded as it's invalid
	return map[DeliverySpeed]string{
		SpeedNormal:  "Normal",
		SpeedExpress: "Express",
		SpeedSameDay: "SameDay",
	}
}

// Validate checks if the DeliverySpeed value is one of the defined service levels.
func (s DeliverySpeed) Validate() error {
	if _, ok := getValidDeliverySpeedStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("delivery speed is invalid",
			fmt.Errorf("%d is not a valid delivery speed", s))
	}
	return nil
}

// String returns the human-readable name of the delivery speed.
// Implements fmt.Stringer and is safe to call on any value, including invalid ones.
func (s DeliverySpeed) String() string {
	if str, ok := getDeliverySpeedStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// DeliverySpeedFromString parses a service level name as it appears on the
// wire. Unknown names fail with a validation error.
func DeliverySpeedFromString(s string) (DeliverySpeed, error) {
	for speed, name := range getValidDeliverySpeedStrings() {
		if name == s {
			return speed, nil
		}
	}
	return SpeedUnknown, errs.NewValueIsInvalidErrorWithCause("delivery speed is invalid",
		fmt.Errorf("%q is not a valid delivery speed", s))
}
