// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/gamevault-backend/internal/config"
	"github.com/your-org/gamevault-backend/internal/domain/order"
)

// Service handles PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateInvoice generates a PDF invoice for an order
func (s *Service) GenerateInvoice(o *order.Order) (*bytes.Buffer, error) {
	data := InvoiceData{
		InvoiceNumber: fmt.Sprintf("INV-%s", o.ID),
		InvoiceDate:   o.CreatedAt.Format("January 2, 2006"),
		GeneratedAt:   time.Now().Format("January 2, 2006"),
		Order:         o,
		StoreName:     s.config.App.Name,
	}

	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// generateHTML generates HTML content from template
func (s *Service) generateHTML(data InvoiceData) (string, error) {
	tmpl := template.Must(template.New("invoice").Parse(invoiceTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// InvoiceData represents the data passed to the invoice template
type InvoiceData struct {
	InvoiceNumber string       `json:"invoice_number"`
	InvoiceDate   string       `json:"invoice_date"`
	GeneratedAt   string       `json:"generated_at"`
	Order         *order.Order `json:"order"`
	StoreName     string       `json:"store_name"`
}

// Invoice HTML template
const invoiceTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Invoice {{.InvoiceNumber}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 0;
            padding: 20px;
            color: #333;
        }
        .header {
            display: flex;
            justify-content: space-between;
            margin-bottom: 30px;
            border-bottom: 2px solid #eee;
            padding-bottom: 20px;
        }
        .invoice-title {
            font-size: 28px;
            font-weight: bold;
            color: #ff4500;
            margin-bottom: 10px;
        }
        table.items {
            width: 100%;
            border-collapse: collapse;
            margin-bottom: 30px;
        }
        table.items th {
            text-align: left;
            border-bottom: 2px solid #333;
            padding: 8px 4px;
        }
        table.items td {
            border-bottom: 1px solid #eee;
            padding: 8px 4px;
        }
        .totals {
            text-align: right;
            font-size: 16px;
        }
        .totals .grand {
            font-size: 20px;
            font-weight: bold;
        }
        .address {
            margin-bottom: 30px;
        }
    </style>
</head>
<body>
    <div class="header">
        <div>
            <div class="invoice-title">{{.StoreName}}</div>
            <div>Invoice {{.InvoiceNumber}}</div>
        </div>
        <div>
            <div>Order date: {{.InvoiceDate}}</div>
            <div>Generated: {{.GeneratedAt}}</div>
        </div>
    </div>

    <div class="address">
        <strong>Ship to:</strong><br>
        {{.Order.ShippingAddress.FullName}}<br>
        {{.Order.ShippingAddress.Address}}<br>
        {{.Order.ShippingAddress.City}}, {{.Order.ShippingAddress.State}} {{.Order.ShippingAddress.ZipCode}}<br>
        {{.Order.ShippingAddress.Email}}
    </div>

    <table class="items">
        <tr>
            <th>Title</th>
            <th>Condition</th>
            <th>Qty</th>
            <th>Price</th>
        </tr>
        {{range .Order.Items}}
        <tr>
            <td>{{.Title}}</td>
            <td>{{.Condition}}</td>
            <td>{{.Quantity}}</td>
            <td>${{printf "%.2f" .Price}}</td>
        </tr>
        {{end}}
    </table>

    <div class="totals">
        <div>Payment method: {{.Order.PaymentMethod}} ({{.Order.PaymentStatus}})</div>
        <div>Shipping: FREE</div>
        <div class="grand">Total (incl. tax): ${{printf "%.2f" .Order.Total}}</div>
    </div>
</body>
</html>
`
