package transform

import (
	"fmt"

	"github.com/rgehrsitz/itrgo/internal/domain"
)

// InputTransform is a what-if edit of a taxpayer snapshot, e.g. "claim the
// full 80C limit". Transforms are composable and never modify their input.
type InputTransform interface {
	// Apply returns a new snapshot with the edit made.
	Apply(base domain.TaxpayerInput) (domain.TaxpayerInput, error)

	// Name returns a short identifier, e.g. "fill_deduction".
	Name() string

	// Description returns a human-readable description of the edit.
	Description() string

	// Validate checks the transform parameters against base without applying.
	Validate(base domain.TaxpayerInput) error
}

// ApplyTransforms applies transforms in order, each receiving the output of
// the previous one.
func ApplyTransforms(base domain.TaxpayerInput, transforms []InputTransform) (domain.TaxpayerInput, error) {
	current := clone(base)

	for i, transform := range transforms {
		if transform == nil {
			return domain.TaxpayerInput{}, fmt.Errorf("transform at index %d is nil", i)
		}

		if err := transform.Validate(current); err != nil {
			return domain.TaxpayerInput{}, fmt.Errorf("transform %s validation failed: %w", transform.Name(), err)
		}

		next, err := transform.Apply(current)
		if err != nil {
			return domain.TaxpayerInput{}, fmt.Errorf("transform %s failed: %w", transform.Name(), err)
		}
		current = next
	}

	return current, nil
}

// clone copies a snapshot so the copy shares no slices with the original.
func clone(in domain.TaxpayerInput) domain.TaxpayerInput {
	out := in
	out.Deductions = in.Deductions.WithDonations(in.Deductions.ChapterVIA.Donations)
	return out
}

// TransformError represents an error that occurred during transformation.
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError creates a new TransformError.
func NewTransformError(transformName, operation, reason string, err error) error {
	return &TransformError{
		TransformName: transformName,
		Operation:     operation,
		Reason:        reason,
		Err:           err,
	}
}
