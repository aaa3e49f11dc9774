package invoice

import (
	"math"
	"strconv"
	"strings"
)

// Validation messages shown next to the edit-invoice form fields.
const (
	msgSelectCustomer = "Please select a customer."
	msgAmountTooLow   = "Please enter an amount greater than $0."
	msgInvalidStatus  = "Please set a valid invoice status."
)

// defaultCustomerOption is the placeholder value of the customer select.
const defaultCustomerOption = "default"

// ValidatedFields are submission values that passed validation, with the
// displayed dollar amount converted to cents.
type ValidatedFields struct {
	CustomerID  string
	AmountCents int64
	Status      Status
}

// ValidateSubmit checks all submitted fields. Every check runs so one
// attempt can report multiple problems at once.
func ValidateSubmit(fields SubmitFields) (ValidatedFields, FieldErrors) {
	var errs FieldErrors
	var validated ValidatedFields

	customerID := strings.TrimSpace(fields.CustomerID)
	if customerID == "" || customerID == defaultCustomerOption {
		errs.Add(FieldCustomerID, msgSelectCustomer)
	} else {
		validated.CustomerID = customerID
	}

	cents, ok := parseAmountCents(fields.Amount)
	if !ok {
		errs.Add(FieldAmount, msgAmountTooLow)
	} else {
		validated.AmountCents = cents
	}

	status, ok := ParseStatus(fields.Status)
	if !ok {
		errs.Add(FieldStatus, msgInvalidStatus)
	} else {
		validated.Status = status
	}

	if !errs.Empty() {
		return ValidatedFields{}, errs
	}
	return validated, errs
}

// parseAmountCents parses a displayed dollar amount into cents. Amounts must
// be positive.
func parseAmountCents(raw string) (int64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	if value <= 0 {
		return 0, false
	}
	return int64(math.Round(value * 100)), true
}
