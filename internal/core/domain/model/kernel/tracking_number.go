package kernel

import (
	"fmt"
	"strings"

	"fosso/internal/pkg/errs"

	"github.com/google/uuid"
)

// trackingNumberPrefix is the fixed prefix of every order tracking number.
const trackingNumberPrefix = "SHP"

// trackingNumberHexLength is the number of hexadecimal characters following the prefix.
const trackingNumberHexLength = 8

// ErrTrackingNumberIsNotConstructed indicates that a TrackingNumber was not created
// through GenerateTrackingNumber or TrackingNumberFromString.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking number must be created via GenerateTrackingNumber or TrackingNumberFromString",
)

// TrackingNumber is a value object representing the externally visible,
// human-readable order identifier. It is distinct from the internal order UUID
// and is the identifier customers use to look up their orders.
//
// The format is "SHP" followed by 8 uppercase hexadecimal characters, derived
// from a fresh random 128-bit identifier. No uniqueness probe is performed at
// generation time; the persistence layer enforces uniqueness with an index.
//
// Example usage:
//
//	tn := kernel.GenerateTrackingNumber()
//	fmt.Println(tn.String()) // e.g., "SHP550E8400"
type TrackingNumber struct {
	value string
}

// GenerateTrackingNumber produces a new tracking number from a fresh random UUID.
// The first 8 hexadecimal characters of the UUID are uppercased and prefixed
// with "SHP".
func GenerateTrackingNumber() TrackingNumber {
	raw := uuid.New().String()
	return TrackingNumber{
		value: trackingNumberPrefix + strings.ToUpper(raw[:trackingNumberHexLength]),
	}
}

// TrackingNumberFromString parses a tracking number from its string representation.
// Returns an error if the string does not match the "SHP" + 8 uppercase
// hexadecimal characters format. This function is used when reconstructing
// orders from persistence or parsing customer-facing lookups.
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	if !strings.HasPrefix(s, trackingNumberPrefix) ||
		len(s) != len(trackingNumberPrefix)+trackingNumberHexLength {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"tracking number",
			fmt.Errorf("%q does not match the SHP######## format", s),
		)
	}

	for _, c := range s[len(trackingNumberPrefix):] {
		if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
			return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
				"tracking number",
				fmt.Errorf("%q contains a non-hexadecimal character", s),
			)
		}
	}

	return TrackingNumber{value: s}, nil
}

// String returns the tracking number in its customer-facing form.
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual compares two tracking numbers for equality.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate checks that the tracking number was properly constructed.
// Returns ErrTrackingNumberIsNotConstructed for a zero value.
func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return ErrTrackingNumberIsNotConstructed
	}
	return nil
}
