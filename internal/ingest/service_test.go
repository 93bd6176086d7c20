package ingest

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hackybara/expense-tracker/constants"
	"github.com/hackybara/expense-tracker/internal/common"
	"github.com/hackybara/expense-tracker/internal/entity"
	"github.com/hackybara/expense-tracker/internal/repository"
	"github.com/hackybara/expense-tracker/internal/storage"
)

type fakeUsers struct {
	byID   map[uuid.UUID]*entity.User
	system map[uuid.UUID]*entity.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[uuid.UUID]*entity.User{}, system: map[uuid.UUID]*entity.User{}}
}

func (f *fakeUsers) Get(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (f *fakeUsers) EnsureSystemUser(_ context.Context, orgID uuid.UUID) (*entity.User, error) {
	if u, ok := f.system[orgID]; ok {
		return u, nil
	}
	u := &entity.User{ID: uuid.New(), OrganizationID: orgID, Name: "System", IsSystem: true}
	f.system[orgID] = u
	f.byID[u.ID] = u
	return u, nil
}

type fakeVendors struct {
	created []string
}

func (f *fakeVendors) GetOrCreate(_ context.Context, orgID uuid.UUID, name string) (*entity.Vendor, error) {
	f.created = append(f.created, name)
	return &entity.Vendor{ID: uuid.New(), OrganizationID: orgID, Name: name}, nil
}

func (f *fakeVendors) List(context.Context, uuid.UUID) ([]*entity.Vendor, error) { return nil, nil }

type fakeCategories struct {
	created []string
}

func (f *fakeCategories) GetOrCreate(_ context.Context, orgID uuid.UUID, name string) (*entity.Category, error) {
	f.created = append(f.created, name)
	return &entity.Category{ID: uuid.New(), OrganizationID: orgID, Name: name}, nil
}

func (f *fakeCategories) List(context.Context, uuid.UUID) ([]*entity.Category, error) {
	return nil, nil
}

type fakeDocuments struct {
	docs []*repository.CreateDocumentRequest
	ocrs []*repository.CreateOCRResultRequest
}

func (f *fakeDocuments) CreateDocument(_ context.Context, req *repository.CreateDocumentRequest) (*entity.Document, error) {
	f.docs = append(f.docs, req)
	return &entity.Document{
		ID:             uuid.New(),
		OrganizationID: req.OrganizationID,
		UploadedBy:     req.UploadedBy,
		Name:           req.Name,
		DocumentURL:    req.DocumentURL,
		DocType:        req.DocType,
	}, nil
}

func (f *fakeDocuments) CreateOCRResult(_ context.Context, req *repository.CreateOCRResultRequest) (*entity.OCRResult, error) {
	f.ocrs = append(f.ocrs, req)
	return &entity.OCRResult{
		ID:             uuid.New(),
		OrganizationID: req.OrganizationID,
		DocumentID:     req.DocumentID,
		VendorID:       req.VendorID,
		Results:        req.Results,
		TotalAmount:    req.TotalAmount,
		Currency:       req.Currency,
		InvoiceDate:    req.InvoiceDate,
		InvoiceNumber:  req.InvoiceNumber,
	}, nil
}

type fakeTxs struct {
	inserted  []*repository.CreateTransactionRequest
	insertErr error
}

func (f *fakeTxs) Insert(_ context.Context, req *repository.CreateTransactionRequest) (*entity.Transaction, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = append(f.inserted, req)
	return &entity.Transaction{
		ID:             uuid.New(),
		OrganizationID: req.OrganizationID,
		OCRResultID:    req.OCRResultID,
		VendorID:       req.VendorID,
		CategoryID:     req.CategoryID,
		Description:    req.Description,
		Amount:         req.Amount,
		Currency:       req.Currency,
		InvoiceDate:    req.InvoiceDate,
		TxType:         req.TxType,
		CreatedAt:      time.Now(),
	}, nil
}

func (f *fakeTxs) List(context.Context, *repository.ListTransactionsRequest) ([]*entity.Transaction, int, error) {
	return nil, 0, nil
}

func (f *fakeTxs) ListAllForOrg(context.Context, uuid.UUID) ([]*entity.Transaction, error) {
	return nil, nil
}

type fixedClassifier struct{ cat constants.Category }

func (c fixedClassifier) Classify(context.Context, string) constants.Category { return c.cat }

type fakeBlobs struct {
	saved map[string][]byte
	err   error
}

func (f *fakeBlobs) Save(_ context.Context, objectName, _ string, data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.saved == nil {
		f.saved = map[string][]byte{}
	}
	f.saved[objectName] = data
	return "gs://test-bucket/" + objectName, nil
}

func (f *fakeBlobs) Fetch(context.Context, string) ([]byte, error) { return nil, nil }

func newTestService(users *fakeUsers, vendors *fakeVendors, cats *fakeCategories, docs *fakeDocuments, txs *fakeTxs, blobs *fakeBlobs, allowAnonymous bool) *Service {
	cfg := common.IngestConfig{
		FallbackCurrency: "MYR",
		MaxTextLength:    3500,
		AllowAnonymous:   allowAnonymous,
	}
	var store storage.BlobStore
	if blobs != nil {
		store = blobs
	}
	return NewService(users, vendors, cats, docs, txs, fixedClassifier{constants.FoodAndBeverage}, store, cfg, slog.New(slog.DiscardHandler))
}

const receiptText = "STARBUCKS COFFEE\nKL Sentral\nDate: 2024-01-15\nReceipt #R5512\nLatte 15.90\nTOTAL RM 124.50"

func TestIngestTextFullPipeline(t *testing.T) {
	users := newFakeUsers()
	vendors := &fakeVendors{}
	cats := &fakeCategories{}
	docs := &fakeDocuments{}
	txs := &fakeTxs{}
	svc := newTestService(users, vendors, cats, docs, txs, nil, true)

	orgID := uuid.New()
	res, err := svc.IngestText(context.Background(), &Request{
		OrganizationID: orgID,
		Filename:       "receipt.jpg",
		Text:           receiptText,
	})
	if err != nil {
		t.Fatalf("IngestText: %v", err)
	}

	if res.Transaction.Amount != 124.50 {
		t.Errorf("amount = %v, want 124.50", res.Transaction.Amount)
	}
	if res.Transaction.Currency != "MYR" {
		t.Errorf("currency = %q, want MYR", res.Transaction.Currency)
	}
	if res.Transaction.TxType != constants.TxTypeExpense {
		t.Errorf("tx type = %q, want expense", res.Transaction.TxType)
	}
	if res.Category != constants.FoodAndBeverage {
		t.Errorf("category = %q", res.Category)
	}
	if res.Transaction.InvoiceDate == nil || res.Transaction.InvoiceDate.Format("2006-01-02") != "2024-01-15" {
		t.Errorf("invoice date = %v", res.Transaction.InvoiceDate)
	}
	if len(vendors.created) != 1 || vendors.created[0] != "STARBUCKS COFFEE" {
		t.Errorf("vendors created = %v", vendors.created)
	}
	if len(cats.created) != 1 || cats.created[0] != "Food & Beverage" {
		t.Errorf("categories created = %v", cats.created)
	}
	if len(docs.ocrs) != 1 {
		t.Fatalf("ocr rows = %d", len(docs.ocrs))
	}
	if docs.ocrs[0].InvoiceNumber == nil || *docs.ocrs[0].InvoiceNumber != "R5512" {
		t.Errorf("invoice number = %v", docs.ocrs[0].InvoiceNumber)
	}
	// Stored text is flattened to one line.
	for _, r := range docs.ocrs[0].Results {
		if r == '\n' {
			t.Errorf("stored text kept newlines: %q", docs.ocrs[0].Results)
			break
		}
	}
	// Anonymous ingest attributed to the lazily created system user.
	if len(users.system) != 1 {
		t.Errorf("system users = %d, want 1", len(users.system))
	}
	if docs.docs[0].UploadedBy != users.system[orgID].ID {
		t.Errorf("document not attributed to system user")
	}
}

func TestIngestTextValidation(t *testing.T) {
	svc := newTestService(newFakeUsers(), &fakeVendors{}, &fakeCategories{}, &fakeDocuments{}, &fakeTxs{}, nil, true)

	tests := []struct {
		name string
		req  *Request
	}{
		{"missing org", &Request{Text: receiptText}},
		{"missing text", &Request{OrganizationID: uuid.New()}},
		{"bad tx type", &Request{OrganizationID: uuid.New(), Text: receiptText, TxType: "transfer"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.IngestText(context.Background(), tt.req)
			if !errors.Is(err, common.ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestIngestTextAnonymousDisallowed(t *testing.T) {
	svc := newTestService(newFakeUsers(), &fakeVendors{}, &fakeCategories{}, &fakeDocuments{}, &fakeTxs{}, nil, false)
	_, err := svc.IngestText(context.Background(), &Request{OrganizationID: uuid.New(), Text: receiptText})
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestIngestTextKnownUploader(t *testing.T) {
	users := newFakeUsers()
	orgID := uuid.New()
	u := &entity.User{ID: uuid.New(), OrganizationID: orgID, Name: "Aina"}
	users.byID[u.ID] = u

	docs := &fakeDocuments{}
	svc := newTestService(users, &fakeVendors{}, &fakeCategories{}, docs, &fakeTxs{}, nil, false)

	_, err := svc.IngestText(context.Background(), &Request{
		OrganizationID: orgID,
		UserID:         &u.ID,
		Text:           receiptText,
	})
	if err != nil {
		t.Fatalf("IngestText: %v", err)
	}
	if docs.docs[0].UploadedBy != u.ID {
		t.Errorf("uploaded_by = %v, want %v", docs.docs[0].UploadedBy, u.ID)
	}

	// Uploader from another org is rejected.
	stranger := &entity.User{ID: uuid.New(), OrganizationID: uuid.New()}
	users.byID[stranger.ID] = stranger
	_, err = svc.IngestText(context.Background(), &Request{
		OrganizationID: orgID,
		UserID:         &stranger.ID,
		Text:           receiptText,
	})
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("cross-org uploader: err = %v, want ErrInvalidInput", err)
	}
}

func TestIngestTextBlobUpload(t *testing.T) {
	blobs := &fakeBlobs{}
	docs := &fakeDocuments{}
	svc := newTestService(newFakeUsers(), &fakeVendors{}, &fakeCategories{}, docs, &fakeTxs{}, blobs, true)

	_, err := svc.IngestText(context.Background(), &Request{
		OrganizationID: uuid.New(),
		Filename:       "receipt.pdf",
		Text:           receiptText,
		RawDocument:    []byte("%PDF-1.4"),
	})
	if err != nil {
		t.Fatalf("IngestText: %v", err)
	}
	if docs.docs[0].DocumentURL == nil {
		t.Fatal("document_url not set after upload")
	}
	if len(blobs.saved) != 1 {
		t.Errorf("blobs saved = %d, want 1", len(blobs.saved))
	}
}

func TestIngestTextBlobFailureAborts(t *testing.T) {
	blobs := &fakeBlobs{err: errors.New("bucket gone")}
	docs := &fakeDocuments{}
	txs := &fakeTxs{}
	svc := newTestService(newFakeUsers(), &fakeVendors{}, &fakeCategories{}, docs, txs, blobs, true)

	_, err := svc.IngestText(context.Background(), &Request{
		OrganizationID: uuid.New(),
		Filename:       "receipt.pdf",
		Text:           receiptText,
		RawDocument:    []byte("%PDF-1.4"),
	})
	if !errors.Is(err, common.ErrStorage) {
		t.Fatalf("IngestText error = %v, want ErrStorage", err)
	}
	if len(docs.docs) != 0 {
		t.Error("no document row should be written when the blob upload fails")
	}
	if len(txs.inserted) != 0 {
		t.Error("no transaction should be inserted when the blob upload fails")
	}
}

func TestIngestTextNoVendorSkipsUpsert(t *testing.T) {
	vendors := &fakeVendors{}
	docs := &fakeDocuments{}
	svc := newTestService(newFakeUsers(), vendors, &fakeCategories{}, docs, &fakeTxs{}, nil, true)

	// All lines are rejected by the vendor filters.
	_, err := svc.IngestText(context.Background(), &Request{
		OrganizationID: uuid.New(),
		Text:           "TOTAL 12.00\n123456\nThank You",
	})
	if err != nil {
		t.Fatalf("IngestText: %v", err)
	}
	if len(vendors.created) != 0 {
		t.Errorf("vendor upsert ran for unknown vendor: %v", vendors.created)
	}
	if docs.ocrs[0].VendorID != nil {
		t.Error("ocr row has vendor id without a vendor")
	}
}
