// Package invoice holds the invoice domain model, field validation and the
// update operation behind the edit-invoice form.
package invoice

// Status is the payment state of an invoice.
type Status string

const (
	// StatusPending marks an invoice awaiting payment.
	StatusPending Status = "pending"
	// StatusPaid marks a settled invoice.
	StatusPaid Status = "paid"
)

// ParseStatus validates a raw status value.
func ParseStatus(raw string) (Status, bool) {
	switch Status(raw) {
	case StatusPending:
		return StatusPending, true
	case StatusPaid:
		return StatusPaid, true
	default:
		return "", false
	}
}

// Invoice is a stored invoice record. Amounts are kept in cents; the UI
// displays dollars.
type Invoice struct {
	ID         string
	CustomerID string
	AmountCents int64
	Status     Status
}

// Customer is a selectable invoice customer.
type Customer struct {
	ID   string
	Name string
}

// Listing is an invoice joined with its customer name for display.
type Listing struct {
	Invoice      Invoice
	CustomerName string
}

// SubmitFields are the raw values posted from the edit-invoice form.
type SubmitFields struct {
	CustomerID string
	Amount     string
	Status     string
}

// Field names used to scope validation messages to form inputs.
const (
	FieldCustomerID = "customerId"
	FieldAmount     = "amount"
	FieldStatus     = "status"
)

// FieldErrors maps field names to ordered validation messages. Order is
// insertion order and is preserved for display.
type FieldErrors struct {
	entries []fieldEntry
}

type fieldEntry struct {
	field    string
	messages []string
}

// Add appends a message to the named field.
func (e *FieldErrors) Add(field, message string) {
	for i := range e.entries {
		if e.entries[i].field == field {
			e.entries[i].messages = append(e.entries[i].messages, message)
			return
		}
	}
	e.entries = append(e.entries, fieldEntry{field: field, messages: []string{message}})
}

// Empty reports whether no messages have been recorded.
func (e FieldErrors) Empty() bool {
	return len(e.entries) == 0
}

// Fields returns the field names in reporting order.
func (e FieldErrors) Fields() []string {
	fields := make([]string, 0, len(e.entries))
	for _, entry := range e.entries {
		fields = append(fields, entry.field)
	}
	return fields
}

// Messages returns the ordered messages recorded for a field.
func (e FieldErrors) Messages(field string) []string {
	for _, entry := range e.entries {
		if entry.field == field {
			return entry.messages
		}
	}
	return nil
}

// FormState is the settled outcome of one submission attempt, replaced
// wholesale each time. When Errors is non-empty, Message describes the
// failure; when OK is set, Message describes success. An operation failure
// after validation passes yields OK false with no field errors.
type FormState struct {
	OK      bool
	Message string
	Errors  FieldErrors
}
