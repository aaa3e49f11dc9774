package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// DashboardParams feeds the dashboard overview.
type DashboardParams struct {
	UserName     string
	InvoiceCount int
	PendingCents int64
	PaidCents    int64
}

// DashboardPage renders the signed-in overview.
func DashboardPage(params DashboardParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `
<section>
  <h1>Dashboard</h1>
  <p>Welcome back, %s.</p>
  <table>
    <tr><th>Invoices</th><td>%d</td></tr>
    <tr><th>Pending</th><td>%s</td></tr>
    <tr><th>Collected</th><td>%s</td></tr>
  </table>
  <p><a href="/dashboard/invoices">Manage invoices</a></p>
</section>`,
			templ.EscapeString(params.UserName),
			params.InvoiceCount,
			templ.EscapeString(FormatAmount(params.PendingCents)),
			templ.EscapeString(FormatAmount(params.PaidCents)),
		)
		return err
	})
}

// InvoiceRow is one line of the invoice list.
type InvoiceRow struct {
	ID           string
	CustomerName string
	AmountCents  int64
	Status       string
}

// InvoicesPage renders the invoice list with edit links.
func InvoicesPage(rows []InvoiceRow) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `
<section>
  <h1>Invoices</h1>
  <table>
    <tr><th>Customer</th><th>Amount</th><th>Status</th><th></th></tr>`); err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%s</td><td><span class="status-%s">%s</span></td>`+
					`<td><a href="/dashboard/invoices/%s/edit">Edit</a></td></tr>`,
				templ.EscapeString(row.CustomerName),
				templ.EscapeString(FormatAmount(row.AmountCents)),
				templ.EscapeString(row.Status),
				templ.EscapeString(row.Status),
				templ.EscapeString(row.ID),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</table></section>`)
		return err
	})
}
