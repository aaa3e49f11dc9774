package invoice

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type fakeStore struct {
	updates []ValidatedFields
	ids     []string
	err     error
}

func (f *fakeStore) UpdateInvoice(_ context.Context, id string, fields ValidatedFields) error {
	if f.err != nil {
		return f.err
	}
	f.ids = append(f.ids, id)
	f.updates = append(f.updates, fields)
	return nil
}

func TestUpdateSuccess(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	conf, err := svc.Update(context.Background(), "inv-1", SubmitFields{
		CustomerID: "c1",
		Amount:     "25.50",
		Status:     "paid",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if conf.Message != MsgUpdateSucceeded {
		t.Fatalf("Message = %q, want %q", conf.Message, MsgUpdateSucceeded)
	}
	if len(store.updates) != 1 {
		t.Fatalf("updates = %d, want 1", len(store.updates))
	}
	if store.ids[0] != "inv-1" {
		t.Fatalf("id = %q, want %q", store.ids[0], "inv-1")
	}
	if store.updates[0].AmountCents != 2550 {
		t.Fatalf("AmountCents = %d, want 2550", store.updates[0].AmountCents)
	}
}

func TestUpdateValidationFailureSkipsMutation(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	_, err := svc.Update(context.Background(), "inv-1", SubmitFields{
		CustomerID: "default",
		Amount:     "10",
		Status:     "pending",
	})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if verr.Error() != MsgUpdateFailedValidation {
		t.Fatalf("Error() = %q, want %q", verr.Error(), MsgUpdateFailedValidation)
	}
	if verr.Errors.Messages(FieldCustomerID) == nil {
		t.Fatal("expected customerId errors")
	}
	if len(store.updates) != 0 {
		t.Fatalf("expected no mutation, got %d", len(store.updates))
	}
}

func TestUpdateReportsAllInvalidFields(t *testing.T) {
	svc := NewService(&fakeStore{})

	_, err := svc.Update(context.Background(), "inv-1", SubmitFields{
		CustomerID: "c1",
		Amount:     "-5",
		Status:     "bogus",
	})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if verr.Errors.Messages(FieldAmount) == nil || verr.Errors.Messages(FieldStatus) == nil {
		t.Fatalf("expected amount and status errors, got fields %v", verr.Errors.Fields())
	}
}

func TestUpdateStoreFailure(t *testing.T) {
	store := &fakeStore{err: fmt.Errorf("disk full")}
	svc := NewService(store)

	_, err := svc.Update(context.Background(), "inv-1", SubmitFields{
		CustomerID: "c1",
		Amount:     "10",
		Status:     "pending",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		t.Fatal("store failure must not be a validation error")
	}
}

func TestUpdateEmptyInvoiceID(t *testing.T) {
	svc := NewService(&fakeStore{})
	if _, err := svc.Update(context.Background(), "  ", SubmitFields{
		CustomerID: "c1",
		Amount:     "10",
		Status:     "pending",
	}); err == nil {
		t.Fatal("expected error for empty invoice id")
	}
}
