package invoice

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Top-level messages reported back to the form after a submission settles.
const (
	// MsgUpdateSucceeded confirms a persisted update.
	MsgUpdateSucceeded = "Invoice updated successfully!"
	// MsgUpdateFailedValidation accompanies per-field validation messages.
	MsgUpdateFailedValidation = "Failed to update invoice due to validation errors."
)

// Store persists invoice mutations.
type Store interface {
	UpdateInvoice(ctx context.Context, id string, fields ValidatedFields) error
}

// Confirmation reports a successful update.
type Confirmation struct {
	Message string
}

// ValidationError carries the accumulated field errors of a rejected
// submission. No mutation is performed when it is returned.
type ValidationError struct {
	Errors FieldErrors
}

// Error returns the top-level failure message.
func (e *ValidationError) Error() string {
	return MsgUpdateFailedValidation
}

// Service validates and applies invoice updates.
type Service struct {
	store  Store
	tracer trace.Tracer
}

// NewService creates an invoice update service.
func NewService(store Store) *Service {
	return &Service{
		store:  store,
		tracer: otel.Tracer("atelier.page/invoice"),
	}
}

// Update validates the submitted fields and persists them.
//
// All field checks run before any mutation; a rejected submission returns
// *ValidationError and leaves the stored invoice untouched. Storage faults
// after validation passes surface as plain errors for the caller to convert
// into a generic failure.
func (s *Service) Update(ctx context.Context, invoiceID string, fields SubmitFields) (Confirmation, error) {
	ctx, span := s.tracer.Start(ctx, "invoice.update",
		trace.WithAttributes(attribute.String("invoice.id", invoiceID)),
	)
	defer span.End()

	if s == nil || s.store == nil {
		return Confirmation{}, fmt.Errorf("invoice store is not configured")
	}
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return Confirmation{}, fmt.Errorf("invoice id is required")
	}

	validated, errs := ValidateSubmit(fields)
	if !errs.Empty() {
		span.SetStatus(codes.Error, "validation failed")
		span.SetAttributes(attribute.StringSlice("invoice.invalid_fields", errs.Fields()))
		return Confirmation{}, &ValidationError{Errors: errs}
	}

	if err := s.store.UpdateInvoice(ctx, invoiceID, validated); err != nil {
		span.SetStatus(codes.Error, "store update failed")
		span.RecordError(err)
		return Confirmation{}, fmt.Errorf("update invoice %s: %w", invoiceID, err)
	}

	return Confirmation{Message: MsgUpdateSucceeded}, nil
}
