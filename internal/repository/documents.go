package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hackybara/expense-tracker/gen/ent"
	"github.com/hackybara/expense-tracker/internal/entity"
	"github.com/hackybara/expense-tracker/internal/utils"
)

// CreateDocumentRequest carries everything needed to persist a document row.
type CreateDocumentRequest struct {
	OrganizationID uuid.UUID
	UploadedBy     uuid.UUID
	Name           string
	DocumentURL    *string
	DocType        string
}

// CreateOCRResultRequest persists the cleaned OCR text and parsed fields for
// a document.
type CreateOCRResultRequest struct {
	OrganizationID uuid.UUID
	DocumentID     uuid.UUID
	VendorID       *uuid.UUID
	Results        string
	TotalAmount    float64
	Currency       string
	InvoiceDate    *time.Time
	InvoiceNumber  *string
}

type DocumentRepository interface {
	CreateDocument(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error)
	CreateOCRResult(ctx context.Context, req *CreateOCRResultRequest) (*entity.OCRResult, error)
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{client: client, logger: logger}
}

func (r *documentRepository) CreateDocument(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error) {
	create := r.client.Document.Create().
		SetOrganizationID(req.OrganizationID).
		SetUploadedBy(req.UploadedBy).
		SetName(req.Name)
	if req.DocumentURL != nil {
		create = create.SetDocumentURL(*req.DocumentURL)
	}
	if req.DocType != "" {
		create = create.SetDocType(req.DocType)
	}

	doc, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "organization_id", req.OrganizationID, "error", err)
		return nil, err
	}
	return utils.ToDocument(doc), nil
}

func (r *documentRepository) CreateOCRResult(ctx context.Context, req *CreateOCRResultRequest) (*entity.OCRResult, error) {
	create := r.client.OCRResult.Create().
		SetOrganizationID(req.OrganizationID).
		SetDocumentID(req.DocumentID).
		SetResults(req.Results).
		SetTotalAmount(req.TotalAmount).
		SetCurrency(req.Currency)
	if req.VendorID != nil {
		create = create.SetVendorID(*req.VendorID)
	}
	if req.InvoiceDate != nil {
		create = create.SetInvoiceDate(*req.InvoiceDate)
	}
	if req.InvoiceNumber != nil {
		create = create.SetInvoiceNumber(*req.InvoiceNumber)
	}

	res, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create ocr result", "document_id", req.DocumentID, "error", err)
		return nil, err
	}
	return utils.ToOCRResult(res), nil
}
