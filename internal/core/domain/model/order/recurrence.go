package order

import (
	"errors"

	"salesorders/internal/pkg/errs"
	"salesorders/internal/pkg/guard"
)

// ErrRecurrenceSpecIsNotConstructed is returned when a RecurrenceSpec was not
// created through the NewRecurrenceSpec constructor.
var ErrRecurrenceSpecIsNotConstructed = errors.New(
	"RecurrenceSpec must be created via NewRecurrenceSpec constructor",
)

// RecurrenceSpec describes how a recurrent order repeats: how many
// installments are placed, how many days lie between them, and an optional
// requested offset for the first one. Exactly one spec is owned by each
// recurrent order and updates replace it wholesale.
type RecurrenceSpec struct {
	installments        int
	gapInDays           int
	requestedOffsetDays int

	guard guard.ConstructorGuard
}

// NewRecurrenceSpec creates a validated recurrence spec. Installments and the
// gap must be positive; the requested offset must not be negative.
func NewRecurrenceSpec(installments, gapInDays, requestedOffsetDays int) (RecurrenceSpec, error) {
	spec := RecurrenceSpec{
		installments:        installments,
		gapInDays:           gapInDays,
		requestedOffsetDays: requestedOffsetDays,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requirePositive("installments", installments),
		requirePositive("gap in days", gapInDays),
		requireNonNegative("requested offset in days", requestedOffsetDays),
	); err != nil {
		return RecurrenceSpec{}, err
	}

	return spec, nil
}

// RestoreRecurrenceSpec reconstructs a spec from persistence without
// re-running range validation.
func RestoreRecurrenceSpec(installments, gapInDays, requestedOffsetDays int) RecurrenceSpec {
	return RecurrenceSpec{
		installments:        installments,
		gapInDays:           gapInDays,
		requestedOffsetDays: requestedOffsetDays,

		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the spec was created through the constructor.
func (s RecurrenceSpec) Validate() error {
	return s.guard.Validate(ErrRecurrenceSpecIsNotConstructed)
}

// Installments returns the number of recurring installments.
func (s RecurrenceSpec) Installments() int { return s.installments }

// GapInDays returns the number of days between installments.
func (s RecurrenceSpec) GapInDays() int { return s.gapInDays }

// RequestedOffsetDays returns the requested offset for the first installment.
func (s RecurrenceSpec) RequestedOffsetDays() int { return s.requestedOffsetDays }

func requirePositive(name string, value int) error {
	if value <= 0 {
		return errs.NewValueIsOutOfRangeError(name, value, 1, "unbounded")
	}
	return nil
}

func requireNonNegative(name string, value int) error {
	if value < 0 {
		return errs.NewValueIsOutOfRangeError(name, value, 0, "unbounded")
	}
	return nil
}
