// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/application/usecase/transaction"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction CRUD endpoints.
type TransactionController struct {
	createTransactionUseCase *transaction.CreateTransactionUseCase
	getTransactionUseCase    *transaction.GetTransactionUseCase
	listTransactionsUseCase  *transaction.ListTransactionsUseCase
	updateTransactionUseCase *transaction.UpdateTransactionUseCase
	deleteTransactionUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createTransactionUseCase *transaction.CreateTransactionUseCase,
	getTransactionUseCase *transaction.GetTransactionUseCase,
	listTransactionsUseCase *transaction.ListTransactionsUseCase,
	updateTransactionUseCase *transaction.UpdateTransactionUseCase,
	deleteTransactionUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		createTransactionUseCase: createTransactionUseCase,
		getTransactionUseCase:    getTransactionUseCase,
		listTransactionsUseCase:  listTransactionsUseCase,
		updateTransactionUseCase: updateTransactionUseCase,
		deleteTransactionUseCase: deleteTransactionUseCase,
	}
}

// parseBody validates and converts the request body fields.
func parseBody(ctx *gin.Context) (title string, amount decimal.Decimal, category, description string, date time.Time, ok bool) {
	var req dto.TransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		respondBadAmount(ctx)
		return
	}
	date, err = time.Parse(dateLayout, req.Date)
	if err != nil {
		respondBadDate(ctx)
		return
	}
	return req.Title, amount, req.Category, req.Description, date, true
}

// Create handles POST /users/:userID/transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}
	title, amount, category, description, date, ok := parseBody(ctx)
	if !ok {
		return
	}

	created, err := c.createTransactionUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		UserID:      userID,
		Title:       title,
		Amount:      amount,
		Category:    category,
		Date:        date,
		Description: description,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(created))
}

// Get handles GET /users/:userID/transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}
	id, ok := c.parseTransactionID(ctx)
	if !ok {
		return
	}

	found, err := c.getTransactionUseCase.Execute(ctx.Request.Context(), id, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(found))
}

// List handles GET /users/:userID/transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}

	transactions, err := c.listTransactionsUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"transactions": dto.ToTransactionListResponse(transactions)})
}

// Update handles PUT /users/:userID/transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}
	id, ok := c.parseTransactionID(ctx)
	if !ok {
		return
	}
	title, amount, category, description, date, ok := parseBody(ctx)
	if !ok {
		return
	}

	updated, err := c.updateTransactionUseCase.Execute(ctx.Request.Context(), transaction.UpdateTransactionInput{
		ID:          id,
		UserID:      userID,
		Title:       title,
		Amount:      amount,
		Category:    category,
		Date:        date,
		Description: description,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(updated))
}

// Delete handles DELETE /users/:userID/transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}
	id, ok := c.parseTransactionID(ctx)
	if !ok {
		return
	}

	if err := c.deleteTransactionUseCase.Execute(ctx.Request.Context(), id, userID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *TransactionController) parseTransactionID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction id",
			Code:  string(domainerror.ErrCodeTransactionNotFound),
		})
		return 0, false
	}
	return id, true
}
