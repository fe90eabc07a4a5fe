// Package templates renders the transactional emails and the invoice from
// embedded html/template files.
package templates

import (
	"bytes"
	"embed"
	"encoding/base64"
	"fmt"
	"html"
	"html/template"
	"regexp"
	"strings"
	"time"

	"github.com/coolbreeze/storefront/internal/models"
	"github.com/coolbreeze/storefront/internal/utils"
	"github.com/microcosm-cc/bluemonday"
	"github.com/skip2/go-qrcode"
)

//go:embed html/*.html
var files embed.FS

// Rendered is one email ready to hand to a sender.
type Rendered struct {
	Subject string
	HTML    string
	Text    string
}

type OrderConfirmation struct {
	CustomerName string
	Order        *models.Order
	SiteURL      string
	SupportEmail string
}

type WarrantyRegistered struct {
	CustomerName string
	Warranty     *models.Warranty
	LookupURL    string
	QRCode       template.URL
}

type WarrantyReminder struct {
	CustomerName string
	Warranty     *models.Warranty
	DaysLeft     int
	LookupURL    string
}

// ComplaintNotice feeds both the acknowledgement and the resolution email.
type ComplaintNotice struct {
	CustomerName string
	Complaint    *models.Complaint
	SupportEmail string
}

var funcs = template.FuncMap{
	"inr":  utils.FormatINR,
	"date": func(t time.Time) string { return t.Format("02 Jan 2006") },
	"inc":  func(i int) int { return i + 1 },
	"halfPercent": func(rate float64) string {
		return strings.TrimSuffix(strings.TrimSuffix(fmt.Sprintf("%.2f", rate*50), "0"), ".0") + "%"
	},
	"paymentMethod": func(m models.PaymentMethod) string {
		if m == models.PaymentMethodOnline {
			return "Paid online"
		}

		return "Cash on delivery"
	},
	"category": func(c models.ComplaintCategory) string {
		return strings.ReplaceAll(string(c), "_", " ")
	},
}

var registry = mustParse(
	models.TemplateOrderConfirmation,
	models.TemplateWarrantyRegistered,
	models.TemplateWarrantyReminder,
	models.TemplateComplaintAcknowledgement,
	models.TemplateComplaintResolved,
	models.TemplateInvoice,
)

func mustParse(names ...string) map[string]*template.Template {
	layout := template.Must(template.New("layout").Funcs(funcs).ParseFS(files, "html/layout.html"))

	set := make(map[string]*template.Template, len(names))

	for _, name := range names {
		page := template.Must(layout.Clone())
		set[name] = template.Must(page.ParseFS(files, "html/"+name+".html"))
	}

	return set
}

// Names lists the templates that can be rendered.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	return names
}

// Render executes the named template with data and derives the plain text
// alternative from the HTML.
func Render(name string, data any) (*Rendered, error) {
	tmpl, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown template %q", name)
	}

	var subject, body bytes.Buffer

	if err := tmpl.ExecuteTemplate(&subject, "subject", data); err != nil {
		return nil, fmt.Errorf("failed to render %s subject: %w", name, err)
	}

	if err := tmpl.ExecuteTemplate(&body, "layout", data); err != nil {
		return nil, fmt.Errorf("failed to render %s body: %w", name, err)
	}

	return &Rendered{
		Subject: html.UnescapeString(strings.TrimSpace(subject.String())),
		HTML:    body.String(),
		Text:    PlainText(body.String()),
	}, nil
}

var (
	textPolicy = bluemonday.StrictPolicy()
	blankLines = regexp.MustCompile(`\n\s*\n+`)
	spaceRuns  = regexp.MustCompile(`[ \t]+`)
	cellEnds   = regexp.MustCompile(`(?i)</t[dh]\s*>`)
	rowEnds    = regexp.MustCompile(`(?i)(</tr\s*>|<br\s*/?>)\n?`)
)

// PlainText strips markup for the text/plain part of an email. Table cells
// are separated by a space and rows by a newline.
func PlainText(markup string) string {
	markup = cellEnds.ReplaceAllString(markup, "$0 ")
	markup = rowEnds.ReplaceAllString(markup, "${1}\n")

	text := html.UnescapeString(textPolicy.Sanitize(markup))
	text = spaceRuns.ReplaceAllString(text, " ")
	text = blankLines.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// QRCodeDataURI encodes content as a PNG QR code for inline use in an <img>.
func QRCodeDataURI(content string, size int) (template.URL, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR code: %w", err)
	}

	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png)), nil
}
