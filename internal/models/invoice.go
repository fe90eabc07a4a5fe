package models

import "time"

type InvoiceParty struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	GSTIN   string `json:"gstin,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

type InvoiceLine struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity" validate:"required,min=1"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
	Amount      float64 `json:"amount"`
}

type Invoice struct {
	Number        string        `json:"number"`
	OrderNumber   string        `json:"order_number"`
	Date          time.Time     `json:"date"`
	Seller        InvoiceParty  `json:"seller"`
	Buyer         InvoiceParty  `json:"buyer"`
	Lines         []InvoiceLine `json:"lines"`
	Subtotal      float64       `json:"subtotal"`
	TaxRate       float64       `json:"tax_rate"`
	TaxableValue  float64       `json:"taxable_value"`
	CGST          float64       `json:"cgst"`
	SGST          float64       `json:"sgst"`
	GrandTotal    float64       `json:"grand_total"`
	AmountInWords string        `json:"amount_in_words"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	SupportEmail  string        `json:"support_email,omitempty"`
}
