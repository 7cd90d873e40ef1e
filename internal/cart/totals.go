package cart

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/willowmart/storefront/internal/errx"
	"github.com/willowmart/storefront/internal/model"
)

// Summary holds the aggregates derived from a joined cart. Money fields are
// decimal strings with two fractional digits; the same cart always produces
// the same values to the cent.
type Summary struct {
	Count    int    `json:"count"`
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

// Summarize computes count, subtotal, tax, and total for the given lines.
// Tax is subtotal times taxRate, rounded to cents; total is subtotal plus
// tax. A product price that fails to parse as a decimal is an integrity
// error, since prices are validated fixture data.
func Summarize(lines []model.CartLine, taxRate decimal.Decimal) (Summary, error) {
	count := 0
	subtotal := decimal.Zero
	for _, ln := range lines {
		price, err := decimal.NewFromString(ln.Product.Price)
		if err != nil {
			err = fmt.Errorf("product %s has unparseable price %q: %w", ln.Product.ID, ln.Product.Price, err)
			return Summary{}, errx.Integrity(err, "cart integrity violation")
		}
		count += ln.Quantity
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(ln.Quantity))))
	}
	tax := subtotal.Mul(taxRate).Round(2)
	total := subtotal.Add(tax)
	return Summary{
		Count:    count,
		Subtotal: subtotal.StringFixed(2),
		Tax:      tax.StringFixed(2),
		Total:    total.StringFixed(2),
	}, nil
}
