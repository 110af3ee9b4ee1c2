// Package report contains the ledger aggregation use cases.
package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
	"github.com/finance-ledger/backend/internal/domain/valueobject"
)

// memoryLedger is the in-memory reference implementation of the ledger store
// contract: it evaluates compiled predicates directly and returns rows in an
// order the use cases must not rely on.
type memoryLedger struct {
	transactions []*entity.Transaction
	err          error
}

func (m *memoryLedger) Scan(_ context.Context, predicates []valueobject.Predicate) ([]*entity.Transaction, error) {
	if m.err != nil {
		return nil, m.err
	}
	var matched []*entity.Transaction
	for _, t := range m.transactions {
		if valueobject.MatchesAll(predicates, t) {
			matched = append(matched, t)
		}
	}
	// Reverse insertion order so ordering guarantees provably come from the
	// use cases, not from the store.
	for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
		matched[i], matched[j] = matched[j], matched[i]
	}
	return matched, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func amt(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func txn(t *testing.T, id, userID int64, title, amount, category string, date time.Time) *entity.Transaction {
	t.Helper()
	return &entity.Transaction{
		ID:       id,
		UserID:   userID,
		Title:    title,
		Amount:   amt(t, amount),
		Category: category,
		Date:     date,
	}
}

// seededLedger builds the fixture shared by most tests: user 1 owns five
// transactions across three categories and four dates; user 2 owns one that
// must never leak into user 1's aggregates.
func seededLedger(t *testing.T) *memoryLedger {
	t.Helper()
	return &memoryLedger{transactions: []*entity.Transaction{
		txn(t, 1, 1, "Groceries", "-50.00", "Food", day(2024, time.January, 10)),
		txn(t, 2, 1, "Fuel", "-30.00", "Gas", day(2024, time.January, 15)),
		txn(t, 3, 1, "Salary", "2500.00", "Income", day(2024, time.January, 31)),
		txn(t, 4, 1, "Restaurant", "-20.00", "Food", day(2024, time.February, 1)),
		txn(t, 5, 1, "Snacks", "-50.00", "Food", day(2024, time.February, 1)),
		txn(t, 6, 2, "Other user", "999.00", "Food", day(2024, time.January, 10)),
	}}
}

func TestSumTotal(t *testing.T) {
	ledger := seededLedger(t)
	uc := NewSumTotalUseCase(ledger)

	t.Run("unfiltered scope sums the whole ledger of the owner", func(t *testing.T) {
		total, err := uc.Execute(context.Background(), Scope{UserID: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.Equal(amt(t, "2350.00")) {
			t.Errorf("expected 2350.00, got %s", total)
		}
	})

	t.Run("empty scope yields exact zero, not absent", func(t *testing.T) {
		total, err := uc.Execute(context.Background(), Scope{UserID: 99})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.Equal(decimal.Zero) {
			t.Errorf("expected zero, got %s", total)
		}
	})

	t.Run("inverted date range yields zero, not an error", func(t *testing.T) {
		from := day(2024, time.June, 1)
		to := day(2024, time.January, 1)
		total, err := uc.Execute(context.Background(), Scope{
			UserID: 1,
			Filter: &valueobject.TransactionFilter{DateFrom: &from, DateTo: &to},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.IsZero() {
			t.Errorf("expected zero for inverted range, got %s", total)
		}
	})

	t.Run("store failure propagates", func(t *testing.T) {
		scanErr := errors.New("connection refused")
		broken := &memoryLedger{err: scanErr}
		_, err := NewSumTotalUseCase(broken).Execute(context.Background(), Scope{UserID: 1})
		if !errors.Is(err, scanErr) {
			t.Errorf("expected wrapped scan error, got %v", err)
		}
	})

	t.Run("identical calls on an unchanged ledger agree", func(t *testing.T) {
		first, err := uc.Execute(context.Background(), Scope{UserID: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Execute(context.Background(), Scope{UserID: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !first.Equal(second) {
			t.Errorf("expected identical totals, got %s and %s", first, second)
		}
	})
}

func TestSumByCategory(t *testing.T) {
	ledger := seededLedger(t)
	uc := NewSumByCategoryUseCase(ledger)

	t.Run("orders by sum descending", func(t *testing.T) {
		totals, err := uc.Execute(context.Background(), Scope{UserID: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(totals) != 3 {
			t.Fatalf("expected 3 categories, got %d", len(totals))
		}
		want := []CategoryTotal{
			{Category: "Income", Sum: amt(t, "2500.00")},
			{Category: "Gas", Sum: amt(t, "-30.00")},
			{Category: "Food", Sum: amt(t, "-120.00")},
		}
		for i, w := range want {
			if totals[i].Category != w.Category || !totals[i].Sum.Equal(w.Sum) {
				t.Errorf("position %d: expected %s=%s, got %s=%s",
					i, w.Category, w.Sum, totals[i].Category, totals[i].Sum)
			}
		}
	})

	t.Run("equal sums break ties alphabetically", func(t *testing.T) {
		tied := &memoryLedger{transactions: []*entity.Transaction{
			txn(t, 1, 1, "Fuel", "25.00", "Gas", day(2024, time.March, 1)),
			txn(t, 2, 1, "Lunch", "25.00", "Food", day(2024, time.March, 2)),
		}}
		totals, err := NewSumByCategoryUseCase(tied).Execute(context.Background(), Scope{UserID: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(totals) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(totals))
		}
		if totals[0].Category != "Food" || totals[1].Category != "Gas" {
			t.Errorf("expected Food before Gas on equal sums, got %s then %s",
				totals[0].Category, totals[1].Category)
		}
	})

	t.Run("category sums add up to the scalar total", func(t *testing.T) {
		minAmt := amt(t, "-60.00")
		filter := &valueobject.TransactionFilter{MinAmount: &minAmt}
		scope := Scope{UserID: 1, Filter: filter}

		totals, err := uc.Execute(context.Background(), scope)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		grand, err := NewSumTotalUseCase(ledger).Execute(context.Background(), scope)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		acc := decimal.Zero
		for _, ct := range totals {
			acc = acc.Add(ct.Sum)
		}
		if !acc.Equal(grand) {
			t.Errorf("category sums %s disagree with total %s", acc, grand)
		}
	})

	t.Run("empty scope yields empty sequence", func(t *testing.T) {
		totals, err := uc.Execute(context.Background(), Scope{UserID: 99})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(totals) != 0 {
			t.Errorf("expected no categories, got %d", len(totals))
		}
	})
}

func TestSumByDate(t *testing.T) {
	ledger := seededLedger(t)
	uc := NewSumByDateUseCase(ledger)

	t.Run("orders by date ascending with one entry per date", func(t *testing.T) {
		totals, err := uc.Execute(context.Background(), Scope{UserID: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(totals) != 4 {
			t.Fatalf("expected 4 dates, got %d", len(totals))
		}
		for i := 1; i < len(totals); i++ {
			if !totals[i-1].Date.Before(totals[i].Date) {
				t.Errorf("dates out of order at %d: %v then %v", i, totals[i-1].Date, totals[i].Date)
			}
		}
		// Feb 1 groups two rows into one entry.
		last := totals[len(totals)-1]
		if !last.Date.Equal(day(2024, time.February, 1)) || !last.Sum.Equal(amt(t, "-70.00")) {
			t.Errorf("expected 2024-02-01=-70.00, got %v=%s", last.Date, last.Sum)
		}
	})

	t.Run("date sums add up to the scalar total", func(t *testing.T) {
		totals, err := uc.Execute(context.Background(), Scope{UserID: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		grand, err := NewSumTotalUseCase(ledger).Execute(context.Background(), Scope{UserID: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		acc := decimal.Zero
		for _, dt := range totals {
			acc = acc.Add(dt.Sum)
		}
		if !acc.Equal(grand) {
			t.Errorf("date sums %s disagree with total %s", acc, grand)
		}
	})
}

func TestDistinctCategories(t *testing.T) {
	ledger := seededLedger(t)
	uc := NewDistinctCategoriesUseCase(ledger)

	t.Run("returns sorted unique categories", func(t *testing.T) {
		categories, err := uc.Execute(context.Background(), Scope{UserID: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"Food", "Gas", "Income"}
		if len(categories) != len(want) {
			t.Fatalf("expected %v, got %v", want, categories)
		}
		for i := range want {
			if categories[i] != want[i] {
				t.Errorf("position %d: expected %s, got %s", i, want[i], categories[i])
			}
		}
	})

	t.Run("empty scope yields empty sequence", func(t *testing.T) {
		categories, err := uc.Execute(context.Background(), Scope{UserID: 99})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(categories) != 0 {
			t.Errorf("expected no categories, got %v", categories)
		}
	})
}

func TestCountTransactions(t *testing.T) {
	ledger := seededLedger(t)
	uc := NewCountTransactionsUseCase(ledger)

	t.Run("counts matching rows", func(t *testing.T) {
		count, err := uc.Execute(context.Background(), Scope{UserID: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 5 {
			t.Errorf("expected 5, got %d", count)
		}
	})

	t.Run("filtered count matches the filtered scan", func(t *testing.T) {
		count, err := uc.Execute(context.Background(), Scope{
			UserID: 1,
			Filter: &valueobject.TransactionFilter{Category: "Food"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 3 {
			t.Errorf("expected 3, got %d", count)
		}
	})

	t.Run("empty scope counts zero", func(t *testing.T) {
		count, err := uc.Execute(context.Background(), Scope{UserID: 99})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 0 {
			t.Errorf("expected 0, got %d", count)
		}
	})
}

func TestLatestTransaction(t *testing.T) {
	ledger := seededLedger(t)
	uc := NewLatestTransactionUseCase(ledger)

	t.Run("greatest identifier wins", func(t *testing.T) {
		latest, err := uc.Execute(context.Background(), Scope{UserID: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if latest == nil || latest.ID != 5 {
			t.Fatalf("expected transaction 5, got %+v", latest)
		}
	})

	t.Run("same-date entries resolve to the later insert", func(t *testing.T) {
		latest, err := uc.Execute(context.Background(), Scope{
			UserID: 1,
			Filter: &valueobject.TransactionFilter{Category: "Food"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// IDs 4 and 5 share 2024-02-01; 5 was inserted later.
		if latest == nil || latest.ID != 5 {
			t.Fatalf("expected transaction 5, got %+v", latest)
		}
	})

	t.Run("empty scope yields nil without error", func(t *testing.T) {
		latest, err := uc.Execute(context.Background(), Scope{UserID: 99})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if latest != nil {
			t.Errorf("expected nil, got %+v", latest)
		}
	})
}

func TestFilterSemantics(t *testing.T) {
	ledger := seededLedger(t)
	uc := NewSumTotalUseCase(ledger)

	t.Run("empty-string category behaves as unset", func(t *testing.T) {
		withEmpty, err := uc.Execute(context.Background(), Scope{
			UserID: 1,
			Filter: &valueobject.TransactionFilter{Category: ""},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		unset, err := uc.Execute(context.Background(), Scope{UserID: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !withEmpty.Equal(unset) {
			t.Errorf("empty-string category gave %s, unset gave %s", withEmpty, unset)
		}
	})

	t.Run("amount bounds are inclusive", func(t *testing.T) {
		minAmt := amt(t, "-50.00")
		maxAmt := amt(t, "-50.00")
		count, err := NewCountTransactionsUseCase(ledger).Execute(context.Background(), Scope{
			UserID: 1,
			Filter: &valueobject.TransactionFilter{MinAmount: &minAmt, MaxAmount: &maxAmt},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 2 {
			t.Errorf("expected the two -50.00 rows, got %d", count)
		}
	})
}

func TestMonthlyTotal(t *testing.T) {
	ledger := &memoryLedger{transactions: []*entity.Transaction{
		txn(t, 1, 1, "January edge", "10.00", "Misc", day(2024, time.January, 31)),
		txn(t, 2, 1, "February edge", "10.00", "Misc", day(2024, time.February, 1)),
	}}
	uc := NewMonthlyTotalUseCase(ledger)

	t.Run("month boundaries split adjacent days", func(t *testing.T) {
		january, err := uc.Execute(context.Background(), MonthlyTotalInput{UserID: 1, Month: 1, Year: 2024})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !january.Equal(amt(t, "10.00")) {
			t.Errorf("expected 10.00 for January, got %s", january)
		}

		february, err := uc.Execute(context.Background(), MonthlyTotalInput{UserID: 1, Month: 2, Year: 2024})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !february.Equal(amt(t, "10.00")) {
			t.Errorf("expected 10.00 for February, got %s", february)
		}
	})

	t.Run("empty month yields exact zero", func(t *testing.T) {
		total, err := uc.Execute(context.Background(), MonthlyTotalInput{UserID: 1, Month: 6, Year: 2024})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.IsZero() {
			t.Errorf("expected zero, got %s", total)
		}
	})

	invalid := []struct {
		name    string
		input   MonthlyTotalInput
		code    domainerror.ReportErrorCode
		wrapped error
	}{
		{"month zero", MonthlyTotalInput{UserID: 1, Month: 0, Year: 2024}, domainerror.ErrCodeInvalidMonth, domainerror.ErrInvalidMonth},
		{"month thirteen", MonthlyTotalInput{UserID: 1, Month: 13, Year: 2024}, domainerror.ErrCodeInvalidMonth, domainerror.ErrInvalidMonth},
		{"year zero", MonthlyTotalInput{UserID: 1, Month: 1, Year: 0}, domainerror.ErrCodeInvalidYear, domainerror.ErrInvalidYear},
		{"negative year", MonthlyTotalInput{UserID: 1, Month: 1, Year: -3}, domainerror.ErrCodeInvalidYear, domainerror.ErrInvalidYear},
	}
	for _, tt := range invalid {
		t.Run(tt.name+" is rejected before the store", func(t *testing.T) {
			broken := &memoryLedger{err: errors.New("store must not be reached")}
			_, err := NewMonthlyTotalUseCase(broken).Execute(context.Background(), tt.input)

			var reportErr *domainerror.ReportError
			if !errors.As(err, &reportErr) {
				t.Fatalf("expected ReportError, got %v", err)
			}
			if reportErr.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, reportErr.Code)
			}
			if !errors.Is(err, tt.wrapped) {
				t.Errorf("expected %v in the chain, got %v", tt.wrapped, err)
			}
		})
	}

	t.Run("december window stays inside the year", func(t *testing.T) {
		yearEnd := &memoryLedger{transactions: []*entity.Transaction{
			txn(t, 1, 1, "NYE", "5.00", "Misc", day(2023, time.December, 31)),
			txn(t, 2, 1, "NYD", "7.00", "Misc", day(2024, time.January, 1)),
		}}
		total, err := NewMonthlyTotalUseCase(yearEnd).Execute(context.Background(), MonthlyTotalInput{UserID: 1, Month: 12, Year: 2023})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.Equal(amt(t, "5.00")) {
			t.Errorf("expected 5.00, got %s", total)
		}
	})
}
