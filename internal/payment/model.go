package payment

import (
	"fmt"
	"net/http"
	"time"

	"github.com/nekogravitycat/hotel-backend/internal/invoice"
	"github.com/nekogravitycat/hotel-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "payment not found")
	ErrInvoiceNotFound = apperror.New(http.StatusNotFound, "invoice not found")
	ErrMethodRequired  = apperror.New(http.StatusBadRequest, "payment method is required")
)

// Payment records that an invoice was settled. It does not check the amount,
// guard against paying twice, or change the invoice.
type Payment struct {
	ID        string
	Method    string
	PaidOn    time.Time // UTC midnight
	CreatedAt time.Time

	invoice *invoice.Invoice
}

func (p *Payment) Invoice() *invoice.Invoice { return p.invoice }

func (p *Payment) String() string {
	return fmt.Sprintf("Payment %s made on %s via %s for %s",
		p.ID, p.PaidOn.Format(time.DateOnly), p.Method, p.invoice)
}

type Filter struct {
	InvoiceID string
	Page      int
	PageSize  int
}
