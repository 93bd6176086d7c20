package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/hackybara/expense-tracker/constants"
	"github.com/hackybara/expense-tracker/gen/ent"
	"github.com/hackybara/expense-tracker/gen/ent/category"
	"github.com/hackybara/expense-tracker/gen/ent/vendor"
	"github.com/hackybara/expense-tracker/internal/entity"
)

func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	if err := client.Schema.Create(context.Background()); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func seedOrg(t *testing.T, client *ent.Client) uuid.UUID {
	t.Helper()
	org, err := client.Organization.Create().SetName("acme").Save(context.Background())
	if err != nil {
		t.Fatalf("seed org: %v", err)
	}
	return org.ID
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestCategoryGetOrCreate(t *testing.T) {
	client := openTestClient(t)
	orgID := seedOrg(t, client)
	repo := NewCategoryRepository(client, testLogger())
	ctx := context.Background()

	first, err := repo.GetOrCreate(ctx, orgID, "Food & Beverage")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	second, err := repo.GetOrCreate(ctx, orgID, "Food & Beverage")
	if err != nil {
		t.Fatalf("GetOrCreate again: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("same name produced two ids: %s vs %s", first.ID, second.ID)
	}

	otherOrg := seedOrg(t, client)
	other, err := repo.GetOrCreate(ctx, otherOrg, "Food & Beverage")
	if err != nil {
		t.Fatalf("GetOrCreate other org: %v", err)
	}
	if other.ID == first.ID {
		t.Error("categories must be scoped per organization")
	}
}

func TestVendorGetOrCreate(t *testing.T) {
	client := openTestClient(t)
	orgID := seedOrg(t, client)
	repo := NewVendorRepository(client, testLogger())
	ctx := context.Background()

	v1, err := repo.GetOrCreate(ctx, orgID, "Starbucks")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	v2, err := repo.GetOrCreate(ctx, orgID, "Starbucks")
	if err != nil {
		t.Fatalf("GetOrCreate again: %v", err)
	}
	if v1.ID != v2.ID {
		t.Errorf("same vendor produced two ids")
	}
}

func TestEnsureSystemUser(t *testing.T) {
	client := openTestClient(t)
	orgID := seedOrg(t, client)
	repo := NewUserRepository(client, testLogger())
	ctx := context.Background()

	u1, err := repo.EnsureSystemUser(ctx, orgID)
	if err != nil {
		t.Fatalf("EnsureSystemUser: %v", err)
	}
	if !u1.IsSystem {
		t.Error("system user not flagged")
	}
	if want := fmt.Sprintf("system@%s.local", orgID); u1.Email != want {
		t.Errorf("Email = %q, want %q", u1.Email, want)
	}
	u2, err := repo.EnsureSystemUser(ctx, orgID)
	if err != nil {
		t.Fatalf("EnsureSystemUser again: %v", err)
	}
	if u1.ID != u2.ID {
		t.Error("system user not reused")
	}
}

func insertTx(t *testing.T, repo TransactionRepository, orgID, catID uuid.UUID, vendorID *uuid.UUID, amount float64, invoiceDate *time.Time) *entity.Transaction {
	t.Helper()
	tx, err := repo.Insert(context.Background(), &CreateTransactionRequest{
		OrganizationID: orgID,
		VendorID:       vendorID,
		CategoryID:     catID,
		Description:    "test",
		Amount:         amount,
		Currency:       "MYR",
		InvoiceDate:    invoiceDate,
		TxType:         constants.TxTypeExpense,
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	return tx
}

func TestTransactionListFiltersAndPagination(t *testing.T) {
	client := openTestClient(t)
	orgID := seedOrg(t, client)
	logger := testLogger()
	cats := NewCategoryRepository(client, logger)
	vendors := NewVendorRepository(client, logger)
	txRepo := NewTransactionRepository(client, logger)
	ctx := context.Background()

	fnb, _ := cats.GetOrCreate(ctx, orgID, "Food & Beverage")
	util, _ := cats.GetOrCreate(ctx, orgID, "Utilities")
	sbux, _ := vendors.GetOrCreate(ctx, orgID, "Starbucks")

	d1 := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)
	insertTx(t, txRepo, orgID, fnb.ID, &sbux.ID, 15.90, &d1)
	insertTx(t, txRepo, orgID, util.ID, nil, 200, &d2)
	insertTx(t, txRepo, orgID, fnb.ID, &sbux.ID, 42, nil) // effective date = today

	txs, total, err := txRepo.List(ctx, &ListTransactionsRequest{OrganizationID: orgID})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 || len(txs) != 3 {
		t.Fatalf("total = %d, rows = %d, want 3/3", total, len(txs))
	}
	// Newest effective date first: the dateless row was created now.
	if txs[0].InvoiceDate != nil {
		t.Errorf("expected the dateless (newest) transaction first, got %+v", txs[0])
	}
	if txs[0].CategoryName != "Food & Beverage" {
		t.Errorf("category edge not joined: %+v", txs[0])
	}

	txs, total, err = txRepo.List(ctx, &ListTransactionsRequest{OrganizationID: orgID, Category: "food"})
	if err != nil {
		t.Fatalf("List by category: %v", err)
	}
	if total != 2 || len(txs) != 2 {
		t.Errorf("category filter: total = %d, rows = %d, want 2/2", total, len(txs))
	}

	txs, total, err = txRepo.List(ctx, &ListTransactionsRequest{OrganizationID: orgID, Vendor: "star"})
	if err != nil {
		t.Fatalf("List by vendor: %v", err)
	}
	if total != 2 {
		t.Errorf("vendor filter: total = %d, want 2", total)
	}
	for _, tx := range txs {
		if tx.VendorName != "Starbucks" {
			t.Errorf("vendor filter leaked %+v", tx)
		}
	}

	txs, total, err = txRepo.List(ctx, &ListTransactionsRequest{OrganizationID: orgID, Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("List paginated: %v", err)
	}
	if total != 3 || len(txs) != 1 {
		t.Errorf("pagination: total = %d, rows = %d, want 3/1", total, len(txs))
	}

	// Limit above the cap is clamped, not rejected.
	if _, _, err := txRepo.List(ctx, &ListTransactionsRequest{OrganizationID: orgID, Limit: 10_000}); err != nil {
		t.Errorf("oversized limit: %v", err)
	}

	// Inclusive effective-date range; the dateless row falls outside it.
	from := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.January, 31, 23, 59, 59, 0, time.UTC)
	txs, total, err = txRepo.List(ctx, &ListTransactionsRequest{OrganizationID: orgID, FromDate: &from, ToDate: &to})
	if err != nil {
		t.Fatalf("List by date range: %v", err)
	}
	if total != 1 || len(txs) != 1 {
		t.Fatalf("date range: total = %d, rows = %d, want 1/1", total, len(txs))
	}
	if txs[0].InvoiceDate == nil || !txs[0].InvoiceDate.Equal(d1) {
		t.Errorf("date range returned the wrong row: %+v", txs[0])
	}

	// A bound landing on the invoice date itself is included.
	txs, _, err = txRepo.List(ctx, &ListTransactionsRequest{OrganizationID: orgID, FromDate: &d2, ToDate: &d2})
	if err != nil {
		t.Fatalf("List by single-day range: %v", err)
	}
	if len(txs) != 1 || txs[0].CategoryName != "Utilities" {
		t.Errorf("single-day range: got %+v", txs)
	}
}

func TestForecastCache(t *testing.T) {
	client := openTestClient(t)
	orgID := seedOrg(t, client)
	repo := NewForecastRepository(client, testLogger())
	ctx := context.Background()

	got, err := repo.Latest(ctx, orgID, 24*time.Hour)
	if err != nil {
		t.Fatalf("Latest on empty: %v", err)
	}
	if got != nil {
		t.Fatalf("expected cold cache, got %+v", got)
	}

	net := 100.0
	fresh := &entity.Forecast{
		OrganizationID: orgID,
		Horizon:        8,
		Granularity:    "week",
		Series: []entity.ForecastPoint{
			{Period: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), ObservedNet: &net},
		},
		ComputedAt: time.Now(),
	}
	if _, err := repo.Save(ctx, fresh); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err = repo.Latest(ctx, orgID, 24*time.Hour)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if got == nil || len(got.Series) != 1 {
		t.Fatalf("cache miss after save: %+v", got)
	}
	if got.Series[0].ObservedNet == nil || *got.Series[0].ObservedNet != 100 {
		t.Errorf("series did not round-trip: %+v", got.Series[0])
	}

	stale := &entity.Forecast{
		OrganizationID: seedOrg(t, client),
		Horizon:        8,
		Granularity:    "week",
		Series:         []entity.ForecastPoint{},
		ComputedAt:     time.Now().Add(-25 * time.Hour),
	}
	if _, err := repo.Save(ctx, stale); err != nil {
		t.Fatalf("Save stale: %v", err)
	}
	got, err = repo.Latest(ctx, stale.OrganizationID, 24*time.Hour)
	if err != nil {
		t.Fatalf("Latest stale: %v", err)
	}
	if got != nil {
		t.Errorf("stale forecast served from cache: %+v", got)
	}
}

func TestCategoryGetOrCreateLosesInsertRace(t *testing.T) {
	client := openTestClient(t)
	orgID := seedOrg(t, client)
	repo := NewCategoryRepository(client, testLogger())
	ctx := context.Background()

	// The first insert fails as if another writer got there first; that
	// writer's row is in place before the re-lookup runs.
	var creates int32
	client.Category.Use(func(next ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(ctx context.Context, m ent.Mutation) (ent.Value, error) {
			if m.Op().Is(ent.OpCreate) && atomic.AddInt32(&creates, 1) == 1 {
				if _, err := client.Category.Create().SetOrganizationID(orgID).SetName("Travel").Save(ctx); err != nil {
					return nil, err
				}
				return nil, errors.New("duplicate key value violates unique constraint")
			}
			return next.Mutate(ctx, m)
		})
	})

	got, err := repo.GetOrCreate(ctx, orgID, "Travel")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if got.Name != "Travel" {
		t.Errorf("Name = %q, want Travel", got.Name)
	}
	n, err := client.Category.Query().Where(category.OrganizationID(orgID), category.Name("Travel")).Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("row count = %d, want 1 (the winner's row)", n)
	}
}

func TestCategoryGetOrCreateRetriesTransientFailure(t *testing.T) {
	client := openTestClient(t)
	orgID := seedOrg(t, client)
	repo := NewCategoryRepository(client, testLogger())
	ctx := context.Background()

	// The first insert fails with no competing row, so the re-lookup comes
	// up empty and the fresh-id retry must land.
	var creates int32
	client.Category.Use(func(next ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(ctx context.Context, m ent.Mutation) (ent.Value, error) {
			if m.Op().Is(ent.OpCreate) && atomic.AddInt32(&creates, 1) == 1 {
				return nil, errors.New("connection reset by peer")
			}
			return next.Mutate(ctx, m)
		})
	})

	got, err := repo.GetOrCreate(ctx, orgID, "Travel")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if got.Name != "Travel" {
		t.Errorf("Name = %q, want Travel", got.Name)
	}
	if n := atomic.LoadInt32(&creates); n != 2 {
		t.Errorf("create attempts = %d, want 2", n)
	}
}

func TestVendorGetOrCreateLosesInsertRace(t *testing.T) {
	client := openTestClient(t)
	orgID := seedOrg(t, client)
	repo := NewVendorRepository(client, testLogger())
	ctx := context.Background()

	var creates int32
	client.Vendor.Use(func(next ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(ctx context.Context, m ent.Mutation) (ent.Value, error) {
			if m.Op().Is(ent.OpCreate) && atomic.AddInt32(&creates, 1) == 1 {
				if _, err := client.Vendor.Create().SetOrganizationID(orgID).SetName("Grab").Save(ctx); err != nil {
					return nil, err
				}
				return nil, errors.New("duplicate key value violates unique constraint")
			}
			return next.Mutate(ctx, m)
		})
	})

	got, err := repo.GetOrCreate(ctx, orgID, "Grab")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	winner, err := client.Vendor.Query().Where(vendor.OrganizationID(orgID), vendor.Name("Grab")).Only(ctx)
	if err != nil {
		t.Fatalf("winner lookup: %v", err)
	}
	if got.ID != winner.ID {
		t.Errorf("returned id %s, want the winner's %s", got.ID, winner.ID)
	}
}

func TestCategoryGetOrCreateConcurrent(t *testing.T) {
	client := openTestClient(t)
	orgID := seedOrg(t, client)
	repo := NewCategoryRepository(client, testLogger())
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.GetOrCreate(ctx, orgID, "Healthcare")
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("call %d: %v", i, err)
		}
	}
	// Duplicates from the fresh-id retry are tolerated; zero rows are not.
	n, err := client.Category.Query().Where(category.OrganizationID(orgID), category.Name("Healthcare")).Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n < 1 {
		t.Errorf("no category row created")
	}
}
