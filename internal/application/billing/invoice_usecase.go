package billing

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/swiftcourier/billing-api/internal/application/dto"
	"github.com/swiftcourier/billing-api/internal/domain"
	"github.com/swiftcourier/billing-api/internal/domain/entity"
	"github.com/swiftcourier/billing-api/internal/domain/invoicing"
	"github.com/swiftcourier/billing-api/internal/domain/repository"
)

// maxNumberAttempts bounds the retry loop when two concurrent creates race
// for the same generated invoice number (unique constraint + regenerate).
const maxNumberAttempts = 3

const dateLayout = "2006-01-02"

// InvoiceUseCase create/read/update/delete for invoices and their items.
type InvoiceUseCase struct {
	txRunner     BillingTxRunner
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
}

// NewInvoiceUseCase builds the use case.
func NewInvoiceUseCase(
	txRunner BillingTxRunner,
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:     txRunner,
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
	}
}

// Create stores a new invoice with its items in one transaction. The number
// is generated from the latest invoice when the request leaves it blank; a
// lost generation race (unique violation) regenerates and retries.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	customer, err := uc.resolveCustomer(in)
	if err != nil {
		return nil, err
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	gstType, err := normalizeGSTType(in.GSTType)
	if err != nil {
		return nil, err
	}

	requestedNo := strings.TrimSpace(in.InvoiceNo)
	now := time.Now()
	invoiceDate := now
	if d := parseDate(in.InvoiceDate); d != nil {
		invoiceDate = *d
	}

	var inv *entity.Invoice
	var items []*entity.InvoiceItem
	for attempt := 1; ; attempt++ {
		inv = &entity.Invoice{
			InvoiceNo:         requestedNo,
			InvoiceDate:       invoiceDate,
			CustomerID:        customer.ID,
			CustomerName:      customer.Name,
			FromDate:          parseDate(in.FromDate),
			ToDate:            parseDate(in.ToDate),
			FuelPercentage:    in.FuelPercentage,
			GSTType:           gstType,
			GSTRate:           in.GSTRate,
			AdditionalCharges: in.AdditionalCharges,
			Remarks:           in.Remarks,
			PaymentStatus:     entity.PaymentStatusUnpaid,
			CreatedAt:         now,
		}
		items = items[:0]

		err = uc.txRunner.RunBilling(ctx, func(_ repository.CustomerRepository, invoiceRepo repository.InvoiceRepository) error {
			if inv.InvoiceNo == "" {
				last, err := invoiceRepo.GetLast()
				if err != nil {
					return err
				}
				lastNo, fallbackID := "", int64(1)
				if last != nil {
					lastNo, fallbackID = last.InvoiceNo, last.ID+1
				}
				inv.InvoiceNo = invoicing.NextInvoiceNo(lastNo, fallbackID)
			}
			if err := invoiceRepo.Create(inv); err != nil {
				return err
			}
			for _, it := range in.Items {
				item := itemFromRequest(inv.ID, it)
				if err := invoiceRepo.CreateItem(item); err != nil {
					return err
				}
				items = append(items, item)
			}
			return nil
		})
		if err == nil {
			break
		}
		// Only a generated number is worth retrying; an explicit duplicate
		// is the caller's conflict.
		if errors.Is(err, domain.ErrDuplicate) && requestedNo == "" && attempt < maxNumberAttempts {
			continue
		}
		return nil, err
	}
	return toInvoiceResponse(inv, items), nil
}

// Get returns one invoice with items and computed totals.
func (uc *InvoiceUseCase) Get(ctx context.Context, id int64) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.ItemsByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, items), nil
}

// List returns a page of invoices, newest first, each with its totals (the
// register screen shows the bill amount per row).
func (uc *InvoiceUseCase) List(ctx context.Context, q string, page dto.PageRequest) (*dto.InvoiceListResponse, error) {
	page.DefaultPage()
	list, err := uc.invoiceRepo.List(q, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.invoiceRepo.Count(q)
	if err != nil {
		return nil, err
	}
	out := &dto.InvoiceListResponse{
		Invoices: make([]*dto.InvoiceResponse, 0, len(list)),
		Page:     dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, inv := range list {
		items, err := uc.invoiceRepo.ItemsByInvoiceID(inv.ID)
		if err != nil {
			return nil, err
		}
		out.Invoices = append(out.Invoices, toInvoiceResponse(inv, items))
	}
	return out, nil
}

// Update rewrites the header and replaces the whole item set in one
// transaction. The invoice number is kept unless the request sets one.
func (uc *InvoiceUseCase) Update(ctx context.Context, id int64, in dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	existing, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.resolveCustomer(in)
	if err != nil {
		return nil, err
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	gstType, err := normalizeGSTType(in.GSTType)
	if err != nil {
		return nil, err
	}

	inv := &entity.Invoice{
		ID:                id,
		InvoiceNo:         existing.InvoiceNo,
		InvoiceDate:       existing.InvoiceDate,
		CustomerID:        customer.ID,
		CustomerName:      customer.Name,
		FromDate:          parseDate(in.FromDate),
		ToDate:            parseDate(in.ToDate),
		FuelPercentage:    in.FuelPercentage,
		GSTType:           gstType,
		GSTRate:           in.GSTRate,
		AdditionalCharges: in.AdditionalCharges,
		Remarks:           in.Remarks,
		PaymentStatus:     existing.PaymentStatus,
		CreatedAt:         existing.CreatedAt,
	}
	if no := strings.TrimSpace(in.InvoiceNo); no != "" {
		inv.InvoiceNo = no
	}
	if d := parseDate(in.InvoiceDate); d != nil {
		inv.InvoiceDate = *d
	}

	var items []*entity.InvoiceItem
	err = uc.txRunner.RunBilling(ctx, func(_ repository.CustomerRepository, invoiceRepo repository.InvoiceRepository) error {
		if err := invoiceRepo.Update(inv); err != nil {
			return err
		}
		if err := invoiceRepo.DeleteItems(id); err != nil {
			return err
		}
		for _, it := range in.Items {
			item := itemFromRequest(id, it)
			if err := invoiceRepo.CreateItem(item); err != nil {
				return err
			}
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, items), nil
}

// Delete removes the invoice; its items go with it.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id int64) error {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	return uc.invoiceRepo.Delete(id)
}

// SetPaymentStatus is the only mutation path for payment_status.
func (uc *InvoiceUseCase) SetPaymentStatus(ctx context.Context, id int64, status string) error {
	switch strings.TrimSpace(status) {
	case entity.PaymentStatusPaid, entity.PaymentStatusUnpaid:
	default:
		return domain.ErrInvalidInput
	}
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	return uc.invoiceRepo.UpdatePaymentStatus(id, strings.TrimSpace(status))
}

// resolveCustomer finds the billed customer by ID (not found -> 404
// semantics) or by exact name (a stale name on the form is the caller's
// mistake -> invalid input).
func (uc *InvoiceUseCase) resolveCustomer(in dto.SaveInvoiceRequest) (*entity.Customer, error) {
	if in.CustomerID > 0 {
		customer, err := uc.customerRepo.GetByID(in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
		return customer, nil
	}
	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrInvalidInput
	}
	return customer, nil
}

// normalizeGSTType validates the closed regime set; blank means no GST.
func normalizeGSTType(s string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return entity.GSTTypeNone, nil
	case entity.GSTTypeIGST:
		return entity.GSTTypeIGST, nil
	case entity.GSTTypeCGST:
		return entity.GSTTypeCGST, nil
	case entity.GSTTypeNone:
		return entity.GSTTypeNone, nil
	default:
		return "", domain.ErrInvalidInput
	}
}

func itemFromRequest(invoiceID int64, in dto.InvoiceItemRequest) *entity.InvoiceItem {
	return &entity.InvoiceItem{
		InvoiceID:   invoiceID,
		Date:        parseDate(in.Date),
		AWBNo:       strings.TrimSpace(in.AWBNo),
		Destination: strings.TrimSpace(in.Destination),
		Weight:      strings.TrimSpace(in.Weight),
		Amount:      in.Amount,
	}
}

// parseDate reads YYYY-MM-DD; anything unparseable degrades to absent.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &d
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func toInvoiceResponse(inv *entity.Invoice, items []*entity.InvoiceItem) *dto.InvoiceResponse {
	totals := invoicing.Calculate(items, inv)
	resp := &dto.InvoiceResponse{
		ID:                inv.ID,
		InvoiceNo:         inv.InvoiceNo,
		InvoiceDate:       inv.InvoiceDate.Format(dateLayout),
		CustomerID:        inv.CustomerID,
		CustomerName:      inv.CustomerName,
		FromDate:          formatDate(inv.FromDate),
		ToDate:            formatDate(inv.ToDate),
		FuelPercentage:    inv.FuelPercentage,
		GSTType:           inv.GSTType,
		GSTRate:           inv.GSTRate,
		AdditionalCharges: inv.AdditionalCharges,
		Remarks:           inv.Remarks,
		PaymentStatus:     inv.PaymentStatus,
		Items:             make([]dto.InvoiceItemResponse, 0, len(items)),
		Totals: dto.InvoiceTotals{
			Subtotal:          totals.Subtotal,
			FuelCharge:        totals.FuelCharge,
			AdditionalCharges: totals.AdditionalCharges,
			TaxBase:           totals.TaxBase,
			IGST:              totals.IGST,
			CGST:              totals.CGST,
			SGST:              totals.SGST,
			IGSTRate:          totals.IGSTRate,
			CGSTRate:          totals.CGSTRate,
			SGSTRate:          totals.SGSTRate,
			BillAmount:        totals.BillAmount,
		},
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:          item.ID,
			Date:        formatDate(item.Date),
			AWBNo:       item.AWBNo,
			Destination: item.Destination,
			Weight:      item.Weight,
			Amount:      item.Amount,
		})
	}
	return resp
}
