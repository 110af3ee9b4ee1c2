package steps

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/domain/entity"
	"github.com/finance-ledger/backend/internal/integration/persistence"
	"github.com/finance-ledger/backend/internal/integration/persistence/model"
)

// registerSeedSteps registers database seeding steps.
func registerSeedSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^user (\d+) exists$`, userExists)
	ctx.Step(`^user (\d+) has the following transactions:$`, userHasTheFollowingTransactions)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
}

func userExists(ctx context.Context, id int64) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	user := &entity.User{
		ID:           id,
		Name:         fmt.Sprintf("User %d", id),
		Email:        fmt.Sprintf("user-%d@example.com", id),
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}
	return persistence.NewUserRepository(tc.db.DbConn).Create(ctx, user)
}

func userHasTheFollowingTransactions(ctx context.Context, userID int64, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if len(table.Rows) < 2 {
		return fmt.Errorf("transaction table needs a header row and at least one data row")
	}

	columns := make(map[string]int)
	for i, cell := range table.Rows[0].Cells {
		columns[cell.Value] = i
	}
	cell := func(row int, name string) (string, error) {
		idx, ok := columns[name]
		if !ok {
			return "", fmt.Errorf("transaction table is missing column %q", name)
		}
		return table.Rows[row].Cells[idx].Value, nil
	}

	for row := 1; row < len(table.Rows); row++ {
		title, err := cell(row, "title")
		if err != nil {
			return err
		}
		amountStr, err := cell(row, "amount")
		if err != nil {
			return err
		}
		category, err := cell(row, "category")
		if err != nil {
			return err
		}
		dateStr, err := cell(row, "date")
		if err != nil {
			return err
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return fmt.Errorf("row %d: bad amount %q: %w", row, amountStr, err)
		}
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return fmt.Errorf("row %d: bad date %q: %w", row, dateStr, err)
		}

		transaction := model.TransactionModel{
			UserID:   userID,
			Title:    title,
			Amount:   amount,
			Category: category,
			Date:     date.UTC(),
		}
		if err := tc.db.DbConn.Create(&transaction).Error; err != nil {
			return fmt.Errorf("row %d: failed to seed transaction: %w", row, err)
		}
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	return sendRequest(ctx, method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	return sendRequest(ctx, method, endpoint, bytes.NewBufferString(body.Content))
}

func sendRequest(ctx context.Context, method, endpoint string, body io.Reader) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	req, err := http.NewRequest(method, tc.server.URL+endpoint, body)
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := tc.server.Client().Do(req)
	if err != nil {
		return ctx, fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return ctx, fmt.Errorf("failed to read response body: %w", err)
	}

	return SetTestContext(ctx, tc), nil
}
