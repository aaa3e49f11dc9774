package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/msantanna/atelier.page/internal/invoice"
)

// EditInvoiceParams feeds the edit-invoice form.
type EditInvoiceParams struct {
	InvoiceID string
	// Draft holds the values the inputs render with: the stored invoice on
	// first load, the visitor's last submission afterwards so a failed
	// attempt loses nothing.
	Draft     invoice.SubmitFields
	Customers []invoice.Customer
	// State is the settled outcome of the last submission; zero on first
	// load.
	State invoice.FormState
}

// EditInvoicePage renders the edit form with per-field validation messages
// and a banner for the settled outcome.
func EditInvoicePage(params EditInvoiceParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<section><h1>Edit Invoice</h1><form method="post" action="/dashboard/invoices/%s/edit">`,
			templ.EscapeString(params.InvoiceID),
		); err != nil {
			return err
		}

		if err := writeCustomerSelect(w, params); err != nil {
			return err
		}
		if err := writeFieldErrors(w, "customer-error", params.State.Errors.Messages(invoice.FieldCustomerID)); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w,
			`<label for="amount">Choose an amount</label>`+
				`<input id="amount" name="amount" type="number" step="0.01" value="%s" `+
				`placeholder="Enter USD amount" aria-describedby="amount-error">`,
			templ.EscapeString(params.Draft.Amount),
		); err != nil {
			return err
		}
		if err := writeFieldErrors(w, "amount-error", params.State.Errors.Messages(invoice.FieldAmount)); err != nil {
			return err
		}

		if err := writeStatusRadios(w, params.Draft.Status); err != nil {
			return err
		}
		if err := writeFieldErrors(w, "status-error", params.State.Errors.Messages(invoice.FieldStatus)); err != nil {
			return err
		}

		if err := writeBanner(w, params.State); err != nil {
			return err
		}

		_, err := io.WriteString(w,
			`<p><a href="/dashboard/invoices">Cancel</a> `+
				`<button type="submit">Update Invoice</button></p></form></section>`)
		return err
	})
}

func writeCustomerSelect(w io.Writer, params EditInvoiceParams) error {
	if _, err := io.WriteString(w,
		`<label for="customer">Choose customer</label>`+
			`<select id="customer" name="customerId" aria-describedby="customer-error">`+
			`<option value="default" disabled`); err != nil {
		return err
	}
	if params.Draft.CustomerID == "" || params.Draft.CustomerID == "default" {
		if _, err := io.WriteString(w, ` selected`); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, `>Select a customer</option>`); err != nil {
		return err
	}
	for _, customer := range params.Customers {
		selected := ""
		if customer.ID == params.Draft.CustomerID {
			selected = ` selected`
		}
		if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`,
			templ.EscapeString(customer.ID), selected, templ.EscapeString(customer.Name),
		); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</select>`)
	return err
}

func writeStatusRadios(w io.Writer, current string) error {
	if _, err := io.WriteString(w, `<fieldset><legend>Set the invoice status</legend>`); err != nil {
		return err
	}
	for _, status := range []invoice.Status{invoice.StatusPending, invoice.StatusPaid} {
		checked := ""
		if string(status) == current {
			checked = ` checked`
		}
		if _, err := fmt.Fprintf(w,
			`<label><input type="radio" name="status" value="%s"%s> %s</label>`,
			templ.EscapeString(string(status)), checked, templ.EscapeString(statusLabel(status)),
		); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</fieldset>`)
	return err
}

func statusLabel(status invoice.Status) string {
	switch status {
	case invoice.StatusPaid:
		return "Paid"
	default:
		return "Pending"
	}
}

func writeFieldErrors(w io.Writer, describedBy string, messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, `<div id="%s" class="field-error" aria-live="polite">`,
		templ.EscapeString(describedBy)); err != nil {
		return err
	}
	for _, message := range messages {
		if _, err := fmt.Fprintf(w, `<p>%s</p>`, templ.EscapeString(message)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</div>`)
	return err
}

// writeBanner renders the settled outcome: failure styling whenever the
// state is not a success, success styling otherwise.
func writeBanner(w io.Writer, state invoice.FormState) error {
	if state.Message == "" {
		return nil
	}
	class := "banner banner-failure"
	if state.OK {
		class = "banner banner-success"
	}
	_, err := fmt.Fprintf(w, `<div class="%s" aria-live="polite"><p>%s</p></div>`,
		class, templ.EscapeString(state.Message))
	return err
}
