package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	expensev1 "github.com/hackybara/expense-tracker/gen/proto/expense/v1"
	"github.com/hackybara/expense-tracker/internal/export"
	"github.com/hackybara/expense-tracker/internal/report"
	"github.com/hackybara/expense-tracker/internal/repository"
)

type TransactionsServer struct {
	expensev1.UnimplementedTransactionsServiceServer
	txs      repository.TransactionRepository
	exporter *export.Service
	logger   *slog.Logger
	now      func() time.Time
}

func NewTransactionsServer(txs repository.TransactionRepository, exporter *export.Service, logger *slog.Logger) *TransactionsServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransactionsServer{txs: txs, exporter: exporter, logger: logger, now: time.Now}
}

func (s *TransactionsServer) ListTransactions(ctx context.Context, req *expensev1.ListTransactionsRequest) (*expensev1.ListTransactionsResponse, error) {
	orgID, err := parseOrgID(req.GetOrganizationId())
	if err != nil {
		return nil, err
	}

	fromDate, toDate, err := parseDateRange(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	txs, total, err := s.txs.List(ctx, &repository.ListTransactionsRequest{
		OrganizationID: orgID,
		Category:       req.GetCategory(),
		Vendor:         req.GetVendor(),
		FromDate:       fromDate,
		ToDate:         toDate,
		Limit:          int(req.GetLimit()),
		Offset:         int(req.GetOffset()),
	})
	if err != nil {
		s.logger.Error("list transactions failed", "organization_id", orgID, "error", err)
		return nil, status.Error(codes.Internal, "list transactions failed")
	}

	out := make([]*expensev1.Transaction, 0, len(txs))
	for _, t := range txs {
		out = append(out, toPBTransaction(t))
	}
	return &expensev1.ListTransactionsResponse{Transactions: out, Total: int32(total)}, nil
}

func (s *TransactionsServer) GetSummary(ctx context.Context, req *expensev1.GetSummaryRequest) (*expensev1.GetSummaryResponse, error) {
	orgID, err := parseOrgID(req.GetOrganizationId())
	if err != nil {
		return nil, err
	}

	txs, err := s.txs.ListAllForOrg(ctx, orgID)
	if err != nil {
		s.logger.Error("summary query failed", "organization_id", orgID, "error", err)
		return nil, status.Error(codes.Internal, "summary failed")
	}

	summary := report.BuildSummary(txs, s.now())
	byCat := make([]*expensev1.CategoryTotal, 0, len(summary.ByCategory90d))
	for _, ct := range summary.ByCategory90d {
		byCat = append(byCat, &expensev1.CategoryTotal{Category: ct.Category, Total: ct.Total})
	}
	return &expensev1.GetSummaryResponse{
		TotalExpense:  summary.KPIs.TotalExpense,
		ReceiptCount:  int32(summary.KPIs.ReceiptCount),
		AvgPerReceipt: summary.KPIs.AvgPerReceipt,
		TopCategory: &expensev1.CategoryTotal{
			Category: summary.KPIs.TopCategory.Name,
			Total:    summary.KPIs.TopCategory.Total,
		},
		SpendingByCategory: byCat,
	}, nil
}

func (s *TransactionsServer) GetMonthlyReport(ctx context.Context, req *expensev1.GetMonthlyReportRequest) (*expensev1.GetMonthlyReportResponse, error) {
	orgID, err := parseOrgID(req.GetOrganizationId())
	if err != nil {
		return nil, err
	}

	txs, err := s.txs.ListAllForOrg(ctx, orgID)
	if err != nil {
		s.logger.Error("monthly report query failed", "organization_id", orgID, "error", err)
		return nil, status.Error(codes.Internal, "monthly report failed")
	}

	rows, err := report.MonthlyReport(txs, int(req.GetYear()))
	if err != nil {
		if errors.Is(err, report.ErrYearOutOfRange) {
			return nil, status.Errorf(codes.InvalidArgument, "year must be between %d and %d", report.MinReportYear, report.MaxReportYear)
		}
		return nil, status.Error(codes.Internal, "monthly report failed")
	}

	out := make([]*expensev1.MonthlyReportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, &expensev1.MonthlyReportRow{
			Month:    r.Month.Format("2006-01"),
			Category: r.Category,
			Total:    r.Total,
		})
	}
	return &expensev1.GetMonthlyReportResponse{Rows: out}, nil
}

func (s *TransactionsServer) ExportMonthlyReport(ctx context.Context, req *expensev1.ExportMonthlyReportRequest) (*expensev1.ExportMonthlyReportResponse, error) {
	orgID, err := parseOrgID(req.GetOrganizationId())
	if err != nil {
		return nil, err
	}

	data, err := s.exporter.ExportMonthlyReportXLSX(ctx, orgID, int(req.GetYear()))
	if err != nil {
		if errors.Is(err, report.ErrYearOutOfRange) {
			return nil, status.Errorf(codes.InvalidArgument, "year must be between %d and %d", report.MinReportYear, report.MaxReportYear)
		}
		s.logger.Error("export failed", "organization_id", orgID, "error", err)
		return nil, status.Error(codes.Internal, "export failed")
	}

	return &expensev1.ExportMonthlyReportResponse{
		Xlsx:     data,
		Filename: fmt.Sprintf("expense-report-%d.xlsx", req.GetYear()),
	}, nil
}
