package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	domainerror "github.com/finance-ledger/backend/internal/domain/error"
)

func TestTransactionRepositoryCreate(t *testing.T) {
	db := openTestDB(t)
	seedUser(t, db, 1)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	t.Run("assigns sequential identifiers", func(t *testing.T) {
		first := newTransaction(t, 1, "First", "10.00", "Misc", utcDate(2024, time.March, 1))
		if err := repo.Create(ctx, first); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.ID == 0 {
			t.Fatal("expected an assigned identifier")
		}

		second := newTransaction(t, 1, "Second", "20.00", "Misc", utcDate(2024, time.March, 2))
		if err := repo.Create(ctx, second); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.ID <= first.ID {
			t.Errorf("expected identifier greater than %d, got %d", first.ID, second.ID)
		}
	})
}

func TestTransactionRepositoryFindByID(t *testing.T) {
	db := openTestDB(t)
	seedUser(t, db, 1)
	seedUser(t, db, 2)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	created := newTransaction(t, 1, "Groceries", "-50.25", "Food", utcDate(2024, time.January, 10))
	if err := repo.Create(ctx, created); err != nil {
		t.Fatalf("failed to create: %v", err)
	}

	t.Run("round-trips all fields", func(t *testing.T) {
		found, err := repo.FindByID(ctx, created.ID, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Title != "Groceries" || found.Category != "Food" {
			t.Errorf("unexpected fields: %+v", found)
		}
		if !found.Amount.Equal(mustDecimal(t, "-50.25")) {
			t.Errorf("expected -50.25, got %s", found.Amount)
		}
		if !found.Date.Equal(utcDate(2024, time.January, 10)) {
			t.Errorf("expected 2024-01-10, got %v", found.Date)
		}
	})

	t.Run("unknown identifier is not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 9999, 1)
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("another owner's transaction is not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, created.ID, 2)
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}

func TestTransactionRepositoryFindAllByUser(t *testing.T) {
	db := openTestDB(t)
	seedUser(t, db, 1)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	dates := []time.Time{
		utcDate(2024, time.January, 15),
		utcDate(2024, time.February, 1),
		utcDate(2024, time.February, 1),
		utcDate(2024, time.January, 10),
	}
	for i, d := range dates {
		if err := repo.Create(ctx, newTransaction(t, 1, "T", "1.00", "Misc", d)); err != nil {
			t.Fatalf("failed to create row %d: %v", i, err)
		}
	}

	transactions, err := repo.FindAllByUser(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(transactions) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(transactions))
	}
	for i := 1; i < len(transactions); i++ {
		prev, curr := transactions[i-1], transactions[i]
		if prev.Date.Before(curr.Date) {
			t.Errorf("dates out of order at %d: %v then %v", i, prev.Date, curr.Date)
		}
		if prev.Date.Equal(curr.Date) && prev.ID < curr.ID {
			t.Errorf("identifiers out of order at %d: %d then %d", i, prev.ID, curr.ID)
		}
	}
}

func TestTransactionRepositoryUpdate(t *testing.T) {
	db := openTestDB(t)
	seedUser(t, db, 1)
	seedUser(t, db, 2)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	created := newTransaction(t, 1, "Fuel", "-30.00", "Gas", utcDate(2024, time.January, 15))
	if err := repo.Create(ctx, created); err != nil {
		t.Fatalf("failed to create: %v", err)
	}

	t.Run("persists changed fields", func(t *testing.T) {
		created.Title = "Diesel"
		created.Amount = mustDecimal(t, "-35.50")
		if err := repo.Update(ctx, created); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, created.ID, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Title != "Diesel" || !found.Amount.Equal(mustDecimal(t, "-35.50")) {
			t.Errorf("update not persisted: %+v", found)
		}
	})

	t.Run("refuses another owner's transaction", func(t *testing.T) {
		stolen := *created
		stolen.UserID = 2
		err := repo.Update(ctx, &stolen)
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}

func TestTransactionRepositoryDelete(t *testing.T) {
	db := openTestDB(t)
	seedUser(t, db, 1)
	seedUser(t, db, 2)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	created := newTransaction(t, 1, "Snacks", "-5.00", "Food", utcDate(2024, time.February, 2))
	if err := repo.Create(ctx, created); err != nil {
		t.Fatalf("failed to create: %v", err)
	}

	t.Run("refuses another owner's transaction", func(t *testing.T) {
		err := repo.Delete(ctx, created.ID, 2)
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("removes the row", func(t *testing.T) {
		if err := repo.Delete(ctx, created.ID, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := repo.FindByID(ctx, created.ID, 1)
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound after delete, got %v", err)
		}
	})

	t.Run("deleting twice reports not found", func(t *testing.T) {
		err := repo.Delete(ctx, created.ID, 1)
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}
