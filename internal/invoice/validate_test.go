package invoice

import (
	"reflect"
	"testing"
)

func TestValidateSubmitAccepted(t *testing.T) {
	validated, errs := ValidateSubmit(SubmitFields{
		CustomerID: "c1",
		Amount:     "25.50",
		Status:     "paid",
	})
	if !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs.Fields())
	}
	if validated.CustomerID != "c1" {
		t.Fatalf("CustomerID = %q, want %q", validated.CustomerID, "c1")
	}
	if validated.AmountCents != 2550 {
		t.Fatalf("AmountCents = %d, want 2550", validated.AmountCents)
	}
	if validated.Status != StatusPaid {
		t.Fatalf("Status = %q, want %q", validated.Status, StatusPaid)
	}
}

func TestValidateSubmitDefaultCustomer(t *testing.T) {
	_, errs := ValidateSubmit(SubmitFields{
		CustomerID: "default",
		Amount:     "10",
		Status:     "pending",
	})
	got := errs.Messages(FieldCustomerID)
	if len(got) == 0 {
		t.Fatal("expected customerId errors")
	}
	if got[0] != "Please select a customer." {
		t.Fatalf("message = %q", got[0])
	}
	if errs.Messages(FieldAmount) != nil || errs.Messages(FieldStatus) != nil {
		t.Fatal("expected only customerId errors")
	}
}

func TestValidateSubmitZeroAmount(t *testing.T) {
	_, errs := ValidateSubmit(SubmitFields{
		CustomerID: "c1",
		Amount:     "0",
		Status:     "pending",
	})
	got := errs.Messages(FieldAmount)
	if len(got) == 0 {
		t.Fatal("expected amount errors")
	}
	if got[0] != "Please enter an amount greater than $0." {
		t.Fatalf("message = %q", got[0])
	}
}

func TestValidateSubmitAccumulatesErrors(t *testing.T) {
	// All checks run: a negative amount and a bogus status are both
	// reported in one pass.
	_, errs := ValidateSubmit(SubmitFields{
		CustomerID: "c1",
		Amount:     "-5",
		Status:     "bogus",
	})
	if errs.Messages(FieldAmount) == nil {
		t.Fatal("expected amount errors")
	}
	if errs.Messages(FieldStatus) == nil {
		t.Fatal("expected status errors")
	}
	if errs.Messages(FieldCustomerID) != nil {
		t.Fatal("did not expect customerId errors")
	}
	want := []string{FieldAmount, FieldStatus}
	if got := errs.Fields(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Fields() = %v, want %v", got, want)
	}
}

func TestValidateSubmitAllFieldsInvalid(t *testing.T) {
	_, errs := ValidateSubmit(SubmitFields{
		CustomerID: "",
		Amount:     "not-a-number",
		Status:     "",
	})
	want := []string{FieldCustomerID, FieldAmount, FieldStatus}
	if got := errs.Fields(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Fields() = %v, want %v", got, want)
	}
}

func TestParseAmountCents(t *testing.T) {
	cases := []struct {
		raw   string
		cents int64
		ok    bool
	}{
		{"25.50", 2550, true},
		{"10", 1000, true},
		{"0.01", 1, true},
		{" 3.999 ", 400, true},
		{"0", 0, false},
		{"-5", 0, false},
		{"", 0, false},
		{"ten", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			cents, ok := parseAmountCents(tc.raw)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if cents != tc.cents {
				t.Fatalf("cents = %d, want %d", cents, tc.cents)
			}
		})
	}
}

func TestFieldErrorsPreserveOrder(t *testing.T) {
	var errs FieldErrors
	errs.Add(FieldStatus, "first")
	errs.Add(FieldAmount, "second")
	errs.Add(FieldStatus, "third")

	if got := errs.Fields(); !reflect.DeepEqual(got, []string{FieldStatus, FieldAmount}) {
		t.Fatalf("Fields() = %v", got)
	}
	if got := errs.Messages(FieldStatus); !reflect.DeepEqual(got, []string{"first", "third"}) {
		t.Fatalf("Messages(status) = %v", got)
	}
}

func TestParseStatus(t *testing.T) {
	if _, ok := ParseStatus("pending"); !ok {
		t.Fatal("pending should parse")
	}
	if _, ok := ParseStatus("paid"); !ok {
		t.Fatal("paid should parse")
	}
	for _, raw := range []string{"", "PAID", "bogus", "pending "} {
		if _, ok := ParseStatus(raw); ok {
			t.Fatalf("%q should not parse", raw)
		}
	}
}
