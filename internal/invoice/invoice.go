// Package invoice computes GST invoices for orders. Catalogue prices are
// tax-inclusive, so the tax is backed out of the order total.
package invoice

import (
	"strings"
	"time"

	"github.com/coolbreeze/storefront/internal/config"
	"github.com/coolbreeze/storefront/internal/models"
	"github.com/coolbreeze/storefront/internal/utils"
)

const numberPrefix = "INV-"

// Number derives the invoice number from the order number.
func Number(orderNumber string) string {
	return numberPrefix + orderNumber
}

// Build lays out the invoice for order. The buyer is taken from the shipping
// address and contact details on the order.
func Build(order *models.Order, seller *config.Invoice, date time.Time) *models.Invoice {
	inv := &models.Invoice{
		Number:      Number(order.OrderNumber),
		OrderNumber: order.OrderNumber,
		Date:        date,
		Seller: models.InvoiceParty{
			Name:    seller.SellerName,
			Address: seller.SellerAddress,
			GSTIN:   seller.GSTIN,
			Email:   seller.SupportEmail,
		},
		Buyer:         buyer(order),
		TaxRate:       seller.TaxRate,
		PaymentMethod: order.PaymentMethod,
		SupportEmail:  seller.SupportEmail,
		Lines:         make([]models.InvoiceLine, 0, len(order.Items)),
	}

	for _, item := range order.Items {
		amount := utils.RoundMoney(item.Amount())

		inv.Lines = append(inv.Lines, models.InvoiceLine{
			Description: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      amount,
		})

		inv.Subtotal += amount
	}

	inv.Subtotal = utils.RoundMoney(inv.Subtotal)
	inv.GrandTotal = utils.RoundMoney(order.TotalAmount)

	inv.TaxableValue, inv.CGST, inv.SGST = SplitTax(inv.GrandTotal, seller.TaxRate)
	inv.AmountInWords = AmountInWords(inv.GrandTotal)

	return inv
}

// SplitTax backs the taxable value out of a tax-inclusive total and splits
// the tax equally into CGST and SGST. taxable + cgst + sgst == total.
func SplitTax(total, rate float64) (taxable, cgst, sgst float64) {
	if rate <= 0 {
		return utils.RoundMoney(total), 0, 0
	}

	taxable = utils.RoundMoney(total / (1 + rate))
	tax := utils.RoundMoney(total - taxable)
	cgst = utils.RoundMoney(tax / 2)
	sgst = utils.RoundMoney(tax - cgst)

	return taxable, cgst, sgst
}

func buyer(order *models.Order) models.InvoiceParty {
	party := models.InvoiceParty{Email: order.ContactEmail, Phone: order.ContactPhone}

	if addr := order.ShippingAddress; addr != nil {
		party.Name = addr.Name

		parts := []string{addr.Street, addr.City, addr.State, addr.PostalCode, addr.Country}

		nonEmpty := parts[:0]
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				nonEmpty = append(nonEmpty, p)
			}
		}

		party.Address = strings.Join(nonEmpty, ", ")
	}

	return party
}
