package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hackybara/expense-tracker/constants"
	expensev1 "github.com/hackybara/expense-tracker/gen/proto/expense/v1"
	"github.com/hackybara/expense-tracker/internal/common"
	"github.com/hackybara/expense-tracker/internal/ingest"
)

type IngestionServer struct {
	expensev1.UnimplementedIngestionServiceServer
	svc    *ingest.Service
	logger *slog.Logger
}

func NewIngestionServer(svc *ingest.Service, logger *slog.Logger) *IngestionServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &IngestionServer{svc: svc, logger: logger}
}

func (s *IngestionServer) IngestDocument(ctx context.Context, req *expensev1.IngestDocumentRequest) (*expensev1.IngestDocumentResponse, error) {
	orgID, err := parseOrgID(req.GetOrganizationId())
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.GetText()) == "" {
		return nil, status.Error(codes.InvalidArgument, "text is required")
	}

	var userID *uuid.UUID
	if raw := strings.TrimSpace(req.GetUserId()); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "user_id must be a UUID")
		}
		userID = &id
	}

	res, err := s.svc.IngestText(ctx, &ingest.Request{
		OrganizationID: orgID,
		UserID:         userID,
		Filename:       req.GetFilename(),
		Text:           req.GetText(),
		RawDocument:    req.GetRawDocument(),
		Description:    req.GetDescription(),
		TxType:         constants.TxType(req.GetTxType()),
	})
	if err != nil {
		if !errors.Is(err, common.ErrInvalidInput) && !errors.Is(err, common.ErrNotFound) {
			s.logger.Error("ingest failed", "organization_id", orgID, "error", err)
		}
		return nil, common.GRPCStatus(err)
	}

	resp := &expensev1.IngestDocumentResponse{
		Transaction: toPBTransaction(res.Transaction),
		DocumentId:  res.Document.ID.String(),
		Fields: &expensev1.ParsedFields{
			Vendor:        res.Fields.Vendor,
			InvoiceDate:   res.Fields.InvoiceDate,
			InvoiceNumber: res.Fields.InvoiceNumber,
			TotalAmount:   res.Fields.TotalAmount,
			Currency:      res.Fields.Currency,
		},
	}
	if res.Document.DocumentURL != nil {
		resp.DocumentUrl = *res.Document.DocumentURL
	}
	return resp, nil
}
