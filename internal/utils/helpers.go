package utils

import (
	"github.com/hackybara/expense-tracker/constants"
	"github.com/hackybara/expense-tracker/gen/ent"
	"github.com/hackybara/expense-tracker/internal/entity"
)

func ToOrganization(o *ent.Organization) *entity.Organization {
	return &entity.Organization{
		ID:        o.ID,
		Name:      o.Name,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func ToUser(u *ent.User) *entity.User {
	return &entity.User{
		ID:             u.ID,
		OrganizationID: u.OrganizationID,
		Name:           u.Name,
		Email:          u.Email,
		IsSystem:       u.IsSystem,
		CreatedAt:      u.CreatedAt,
	}
}

func ToVendor(v *ent.Vendor) *entity.Vendor {
	return &entity.Vendor{
		ID:             v.ID,
		OrganizationID: v.OrganizationID,
		Name:           v.Name,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func ToCategory(c *ent.Category) *entity.Category {
	return &entity.Category{
		ID:             c.ID,
		OrganizationID: c.OrganizationID,
		Name:           c.Name,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func ToDocument(d *ent.Document) *entity.Document {
	return &entity.Document{
		ID:             d.ID,
		OrganizationID: d.OrganizationID,
		UploadedBy:     d.UploadedBy,
		Name:           d.Name,
		DocumentURL:    d.DocumentURL,
		DocType:        d.DocType,
		CreatedAt:      d.CreatedAt,
	}
}

func ToOCRResult(r *ent.OCRResult) *entity.OCRResult {
	return &entity.OCRResult{
		ID:             r.ID,
		OrganizationID: r.OrganizationID,
		DocumentID:     r.DocumentID,
		VendorID:       r.VendorID,
		Results:        r.Results,
		TotalAmount:    r.TotalAmount,
		Currency:       r.Currency,
		InvoiceDate:    r.InvoiceDate,
		InvoiceNumber:  r.InvoiceNumber,
		CreatedAt:      r.CreatedAt,
	}
}

// ToTransaction maps an ent row, pulling vendor and category names off the
// loaded edges when present.
func ToTransaction(t *ent.Transaction) *entity.Transaction {
	out := &entity.Transaction{
		ID:             t.ID,
		OrganizationID: t.OrganizationID,
		OCRResultID:    t.OcrResultID,
		VendorID:       t.VendorID,
		CategoryID:     t.CategoryID,
		Description:    t.Description,
		Amount:         t.Amount,
		Currency:       t.Currency,
		InvoiceDate:    t.InvoiceDate,
		TxType:         constants.TxType(t.TxType),
		CreatedAt:      t.CreatedAt,
	}
	if t.Edges.Vendor != nil {
		out.VendorName = t.Edges.Vendor.Name
	}
	if t.Edges.Category != nil {
		out.CategoryName = t.Edges.Category.Name
	}
	return out
}

func ToForecast(f *ent.Forecast) *entity.Forecast {
	return &entity.Forecast{
		ID:             f.ID,
		OrganizationID: f.OrganizationID,
		Horizon:        f.Horizon,
		Granularity:    f.Granularity,
		Series:         f.Series,
		ComputedAt:     f.ComputedAt,
	}
}
