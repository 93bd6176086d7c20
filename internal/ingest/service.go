// Package ingest runs the pipeline that turns a piece of OCR text into a
// stored transaction: normalize, parse, classify, persist.
package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hackybara/expense-tracker/constants"
	"github.com/hackybara/expense-tracker/internal/common"
	"github.com/hackybara/expense-tracker/internal/entity"
	"github.com/hackybara/expense-tracker/internal/ocr"
	"github.com/hackybara/expense-tracker/internal/parse"
	"github.com/hackybara/expense-tracker/internal/repository"
	"github.com/hackybara/expense-tracker/internal/storage"
)

// Classifier assigns a category to receipt text; it always answers.
type Classifier interface {
	Classify(ctx context.Context, text string) constants.Category
}

// Request is one document to ingest. Text is the OCR output; RawDocument,
// when present, is the original file saved to blob storage. A nil UserID is
// attributed to the organization's system user when anonymous ingestion is
// allowed.
type Request struct {
	OrganizationID uuid.UUID
	UserID         *uuid.UUID
	Filename       string
	Text           string
	RawDocument    []byte
	Description    string
	TxType         constants.TxType
}

// Result reports everything the pipeline produced.
type Result struct {
	Document    *entity.Document
	OCRResult   *entity.OCRResult
	Transaction *entity.Transaction
	Category    constants.Category
	Fields      entity.ParsedFields
}

type Service struct {
	users      repository.UserRepository
	vendors    repository.VendorRepository
	categories repository.CategoryRepository
	documents  repository.DocumentRepository
	txs        repository.TransactionRepository
	classifier Classifier
	blobs      storage.BlobStore // optional
	cfg        common.IngestConfig
	logger     *slog.Logger
}

func NewService(
	users repository.UserRepository,
	vendors repository.VendorRepository,
	categories repository.CategoryRepository,
	documents repository.DocumentRepository,
	txs repository.TransactionRepository,
	classifier Classifier,
	blobs storage.BlobStore,
	cfg common.IngestConfig,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		users:      users,
		vendors:    vendors,
		categories: categories,
		documents:  documents,
		txs:        txs,
		classifier: classifier,
		blobs:      blobs,
		cfg:        cfg,
		logger:     logger,
	}
}

// IngestText runs the full pipeline. Parsing and classification never fail
// the request; only invalid input and persistence errors do.
func (s *Service) IngestText(ctx context.Context, req *Request) (*Result, error) {
	start := time.Now()
	if req.OrganizationID == uuid.Nil {
		return nil, common.InvalidInput("organization id is required")
	}
	if req.Text == "" {
		return nil, common.InvalidInput("document text is required")
	}
	txType := req.TxType
	if txType == "" {
		txType = constants.TxTypeExpense
	}
	if txType != constants.TxTypeExpense && txType != constants.TxTypeIncome {
		return nil, common.InvalidInput("unknown transaction type")
	}
	filename := req.Filename
	if filename == "" {
		filename = "document.txt"
	}

	uploader, err := s.resolveUploader(ctx, req)
	if err != nil {
		return nil, err
	}

	normalized := ocr.Normalize(req.Text)
	fields := parse.Extract(normalized, s.cfg.FallbackCurrency)
	category := s.classifier.Classify(ctx, normalized)

	s.logger.Info("ingest.parsed",
		"req_id", common.RequestIDFromContext(ctx),
		"organization_id", req.OrganizationID,
		"vendor", fields.Vendor,
		"amount", fields.TotalAmount,
		"currency", fields.Currency,
		"category", string(category),
	)

	catRow, err := s.categories.GetOrCreate(ctx, req.OrganizationID, string(category))
	if err != nil {
		return nil, common.Database("resolve category", err)
	}

	// Vendor upsert is skipped entirely when no vendor was recognized.
	var vendorID *uuid.UUID
	if fields.Vendor != "" {
		v, err := s.vendors.GetOrCreate(ctx, req.OrganizationID, fields.Vendor)
		if err != nil {
			return nil, common.Database("resolve vendor", err)
		}
		vendorID = &v.ID
	}

	docURL, err := s.saveBlob(ctx, req, filename)
	if err != nil {
		return nil, common.Storage("save document blob", err)
	}

	doc, err := s.documents.CreateDocument(ctx, &repository.CreateDocumentRequest{
		OrganizationID: req.OrganizationID,
		UploadedBy:     uploader.ID,
		Name:           filename,
		DocumentURL:    docURL,
		DocType:        constants.DocTypeReceipt,
	})
	if err != nil {
		return nil, common.Database("create document", err)
	}

	var invoiceDate *time.Time
	if fields.InvoiceDate != "" {
		if d, err := time.Parse("2006-01-02", fields.InvoiceDate); err == nil {
			invoiceDate = &d
		}
	}
	var invoiceNumber *string
	if fields.InvoiceNumber != "" {
		invoiceNumber = &fields.InvoiceNumber
	}

	ocrRow, err := s.documents.CreateOCRResult(ctx, &repository.CreateOCRResultRequest{
		OrganizationID: req.OrganizationID,
		DocumentID:     doc.ID,
		VendorID:       vendorID,
		Results:        ocr.CleanForStorage(req.Text, s.cfg.MaxTextLength),
		TotalAmount:    fields.TotalAmount,
		Currency:       fields.Currency,
		InvoiceDate:    invoiceDate,
		InvoiceNumber:  invoiceNumber,
	})
	if err != nil {
		return nil, common.Database("create ocr result", err)
	}

	description := req.Description
	if description == "" {
		description = fields.Vendor
	}
	tx, err := s.txs.Insert(ctx, &repository.CreateTransactionRequest{
		OrganizationID: req.OrganizationID,
		OCRResultID:    &ocrRow.ID,
		VendorID:       vendorID,
		CategoryID:     catRow.ID,
		Description:    description,
		Amount:         fields.TotalAmount,
		Currency:       fields.Currency,
		InvoiceDate:    invoiceDate,
		TxType:         txType,
	})
	if err != nil {
		return nil, common.Database("insert transaction", err)
	}
	tx.CategoryName = catRow.Name
	tx.VendorName = fields.Vendor

	s.logger.Info("ingest.done",
		"req_id", common.RequestIDFromContext(ctx),
		"organization_id", req.OrganizationID,
		"transaction_id", tx.ID,
		"document_id", doc.ID,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	return &Result{
		Document:    doc,
		OCRResult:   ocrRow,
		Transaction: tx,
		Category:    category,
		Fields:      fields,
	}, nil
}

func (s *Service) resolveUploader(ctx context.Context, req *Request) (*entity.User, error) {
	if req.UserID != nil {
		u, err := s.users.Get(ctx, *req.UserID)
		if err != nil {
			return nil, common.NotFound("uploader not found", err)
		}
		if u.OrganizationID != req.OrganizationID {
			return nil, common.InvalidInput("uploader belongs to another organization")
		}
		return u, nil
	}
	if !s.cfg.AllowAnonymous {
		return nil, common.InvalidInput("user id is required")
	}
	u, err := s.users.EnsureSystemUser(ctx, req.OrganizationID)
	if err != nil {
		return nil, common.Database("ensure system user", err)
	}
	return u, nil
}

// saveBlob uploads the original document when a store is configured and a
// blob was supplied. A supplied blob that cannot be stored fails the whole
// ingestion; a document row without its blob reference would be a lie.
func (s *Service) saveBlob(ctx context.Context, req *Request, filename string) (*string, error) {
	if s.blobs == nil || len(req.RawDocument) == 0 {
		return nil, nil
	}
	objectName := req.OrganizationID.String() + "/" + uuid.New().String() + "-" + filename
	uri, err := s.blobs.Save(ctx, objectName, constants.ContentTypeFor(filename), req.RawDocument)
	if err != nil {
		s.logger.Error("ingest.blob_upload_failed", "organization_id", req.OrganizationID, "error", err)
		return nil, err
	}
	return &uri, nil
}
