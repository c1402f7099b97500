package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"configurator-service/internal/catalog"
	"configurator-service/internal/database/minio"
	"configurator-service/internal/models"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

const documentURLExpiry = 24 * time.Hour

// DocumentService renders invoices and contracts as PDFs and stores them in
// MinIO. Every monetary figure on a document comes from the calculator,
// re-derived against the exchange rate frozen into the order; documents
// never do their own arithmetic.
type DocumentService struct {
	storage *minio.MinioClient
	calc    *PriceCalculator
	prose   *RecommendationService
}

func NewDocumentService(storage *minio.MinioClient, calc *PriceCalculator, prose *RecommendationService) *DocumentService {
	return &DocumentService{
		storage: storage,
		calc:    calc,
		prose:   prose,
	}
}

// GenerateInvoice renders the order's invoice, uploads it and returns a
// presigned download URL.
func (s *DocumentService) GenerateInvoice(ctx context.Context, order *models.Order) (*models.DocumentResponse, error) {
	price := s.calc.Calculate(order.ServiceType, order.PackageID, order.Customizations, order.ExchangeRate)

	doc := newPDFBuilder()
	doc.heading("Byte&Berry Invoice")
	doc.line(fmt.Sprintf("Invoice #: %s", invoiceNumber(order)))
	doc.line(fmt.Sprintf("Date: %s", order.CreatedAt.Format("02 Jan 2006")))
	doc.line(fmt.Sprintf("Due Date: %s", order.CreatedAt.Add(30*24*time.Hour).Format("02 Jan 2006")))
	doc.space()

	doc.subheading("Service Details")
	s.writeServiceDetails(doc, order)
	doc.space()

	doc.subheading("Itemized Billing")
	doc.line(fmt.Sprintf("%s - %s", s.prose.InvoiceDescription(ctx, *order), formatZMW(price.Breakdown.Base.ZMW)))
	for _, addOn := range order.Customizations.AddOns {
		a, ok := catalog.GetAddOn(addOn)
		if !ok {
			continue
		}
		amount, _ := a.PriceZMW.Operative()
		doc.line(fmt.Sprintf("%s - %s", featureLabel(addOn), formatZMW(amount)))
	}
	if price.Breakdown.Hosting.ZMW > 0 {
		doc.line(fmt.Sprintf("Hosting & Maintenance (monthly) - %s", formatZMW(price.Breakdown.Hosting.ZMW)))
	}
	doc.space()

	doc.subheading("Total")
	doc.line(fmt.Sprintf("Total: %s (≈$%.2f)", formatZMW(price.TotalZMW), price.TotalUSD))
	doc.line(fmt.Sprintf("Exchange rate applied: 1 USD = %.2f ZMW", price.ExchangeRate))

	return s.store(ctx, doc, minio.Storage.Invoices, fmt.Sprintf("%s.pdf", invoiceNumber(order)))
}

// GenerateContract renders the order's service agreement, uploads it and
// returns a presigned download URL.
func (s *DocumentService) GenerateContract(ctx context.Context, order *models.Order) (*models.DocumentResponse, error) {
	price := s.calc.Calculate(order.ServiceType, order.PackageID, order.Customizations, order.ExchangeRate)

	doc := newPDFBuilder()
	doc.heading("Byte&Berry Service Agreement")
	doc.line(fmt.Sprintf("Generated on: %s", order.CreatedAt.Format("02 Jan 2006")))
	doc.space()

	doc.subheading("Service Details")
	s.writeServiceDetails(doc, order)
	doc.space()

	doc.subheading("Investment Summary")
	doc.line(fmt.Sprintf("Base: %s (≈$%.2f)", formatZMW(price.Breakdown.Base.ZMW), price.Breakdown.Base.USD))
	doc.line(fmt.Sprintf("Add-ons: %s (≈$%.2f)", formatZMW(price.Breakdown.AddOns.ZMW), price.Breakdown.AddOns.USD))
	doc.line(fmt.Sprintf("Hosting: %s (≈$%.2f)", formatZMW(price.Breakdown.Hosting.ZMW), price.Breakdown.Hosting.USD))
	doc.line(fmt.Sprintf("Total: %s (≈$%.2f)", formatZMW(price.TotalZMW), price.TotalUSD))
	doc.space()

	doc.subheading("Terms & Conditions")
	doc.paragraph(s.prose.ContractTerms(ctx, *order))
	doc.space()

	doc.line("Client signature: ______________________    Date: ____________")
	doc.line("Provider signature: ____________________    Date: ____________")

	objectName := fmt.Sprintf("AGR-%s.pdf", shortID(order))
	return s.store(ctx, doc, minio.Storage.Contracts, objectName)
}

func (s *DocumentService) writeServiceDetails(doc *pdfBuilder, order *models.Order) {
	doc.line(fmt.Sprintf("Service: %s", order.ServiceType.DisplayName()))
	if order.PackageID != "" {
		packageName := order.PackageID
		if pkg, ok := catalog.GetPackage(order.ServiceType, order.PackageID); ok {
			packageName = pkg.Name
		}
		doc.line(fmt.Sprintf("Package: %s", packageName))
	}
	if order.Customizations.Pages != nil {
		doc.line(fmt.Sprintf("Pages: %d", *order.Customizations.Pages))
	}
	if order.Customizations.Platform != "" {
		doc.line(fmt.Sprintf("Platform: %s", order.Customizations.Platform.DisplayName()))
	}
	if order.Customizations.NumberOfUsers != nil {
		doc.line(fmt.Sprintf("Users: %d", *order.Customizations.NumberOfUsers))
	}
	if len(order.Customizations.Modules) > 0 {
		labels := make([]string, 0, len(order.Customizations.Modules))
		for _, m := range order.Customizations.Modules {
			labels = append(labels, featureLabel(m))
		}
		doc.line(fmt.Sprintf("Modules: %s", strings.Join(labels, ", ")))
	}
	if order.ProjectDescription != "" {
		doc.paragraph("Project Description: " + order.ProjectDescription)
	}
}

func (s *DocumentService) store(ctx context.Context, doc *pdfBuilder, bucket, objectName string) (*models.DocumentResponse, error) {
	pdfData, err := doc.render()
	if err != nil {
		return nil, err
	}
	if err := s.storage.UploadBytes(ctx, bucket, objectName, pdfData, "application/pdf"); err != nil {
		return nil, err
	}
	downloadURL, err := s.storage.GetPresignedURL(ctx, bucket, objectName, documentURLExpiry)
	if err != nil {
		return nil, err
	}
	return &models.DocumentResponse{
		ObjectName:  objectName,
		DownloadURL: downloadURL,
	}, nil
}

func invoiceNumber(order *models.Order) string {
	return "INV-" + shortID(order)
}

func shortID(order *models.Order) string {
	id := strings.ReplaceAll(order.ID.String(), "-", "")
	return strings.ToUpper(id[len(id)-8:])
}

// pdfBuilder accumulates positioned text lines and renders them through
// pdfcpu's create-from-JSON API. A4 pages, upper-left origin, simple
// top-down cursor with pagination.
type pdfBuilder struct {
	pages   []pdfPageContent
	current pdfPageContent
	cursorY float64
}

const (
	pdfPageHeight  = 842.0
	pdfMargin      = 48.0
	pdfBodySize    = 10
	pdfHeadingSize = 20
	pdfSubSize     = 13
	pdfLineStep    = 16.0
	pdfWrapWidth   = 92
)

type pdfFontSpec struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type pdfTextSpec struct {
	Value    string      `json:"value"`
	Position []float64   `json:"position"`
	Font     pdfFontSpec `json:"font"`
}

type pdfPageContent struct {
	Text []pdfTextSpec `json:"text"`
}

type pdfPageSpec struct {
	Content pdfPageContent `json:"content"`
}

type pdfDocSpec struct {
	Paper  string                 `json:"paper"`
	Origin string                 `json:"origin"`
	Pages  map[string]pdfPageSpec `json:"pages"`
}

func newPDFBuilder() *pdfBuilder {
	return &pdfBuilder{cursorY: pdfMargin}
}

func (b *pdfBuilder) write(value string, size int) {
	if b.cursorY > pdfPageHeight-pdfMargin {
		b.pages = append(b.pages, b.current)
		b.current = pdfPageContent{}
		b.cursorY = pdfMargin
	}
	b.current.Text = append(b.current.Text, pdfTextSpec{
		Value:    value,
		Position: []float64{pdfMargin, b.cursorY},
		Font:     pdfFontSpec{Name: "Helvetica", Size: size},
	})
	b.cursorY += pdfLineStep
}

func (b *pdfBuilder) heading(value string) {
	b.write(value, pdfHeadingSize)
	b.cursorY += pdfLineStep
}

func (b *pdfBuilder) subheading(value string) {
	b.write(value, pdfSubSize)
}

func (b *pdfBuilder) line(value string) {
	b.write(value, pdfBodySize)
}

func (b *pdfBuilder) space() {
	b.cursorY += pdfLineStep / 2
}

// paragraph wraps long text at a fixed column, one write per line.
func (b *pdfBuilder) paragraph(value string) {
	for _, raw := range strings.Split(value, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			b.space()
			continue
		}
		for _, wrapped := range wrapText(line, pdfWrapWidth) {
			b.line(wrapped)
		}
	}
}

func (b *pdfBuilder) render() ([]byte, error) {
	pages := append(b.pages, b.current)
	spec := pdfDocSpec{
		Paper:  "A4",
		Origin: "upperLeft",
		Pages:  make(map[string]pdfPageSpec, len(pages)),
	}
	for i, page := range pages {
		spec.Pages[fmt.Sprintf("%d", i+1)] = pdfPageSpec{Content: page}
	}

	specJSON, err := json.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to encode PDF spec: %w", err)
	}

	var buf bytes.Buffer
	if err := api.Create(nil, bytes.NewReader(specJSON), &buf, nil); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}
