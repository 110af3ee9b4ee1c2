// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainerror "github.com/finance-ledger/backend/internal/domain/error"
	"github.com/finance-ledger/backend/internal/domain/valueobject"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/dto"
)

const dateLayout = "2006-01-02"

// parseUserID extracts the owner identifier from the request path.
func parseUserID(ctx *gin.Context) (int64, bool) {
	userID, err := strconv.ParseInt(ctx.Param("userID"), 10, 64)
	if err != nil || userID <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user id",
			Code:  string(domainerror.ErrCodeInvalidTransactionOwner),
		})
		return 0, false
	}
	return userID, true
}

// parseFilter reads the optional report filter from query parameters.
// Absent parameters stay unset; a present but malformed parameter aborts the
// request with a 400.
func parseFilter(ctx *gin.Context) (*valueobject.TransactionFilter, bool) {
	filter := &valueobject.TransactionFilter{
		Category: ctx.Query("category"),
	}

	if s := ctx.Query("from"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			respondBadDate(ctx)
			return nil, false
		}
		filter.DateFrom = &t
	}
	if s := ctx.Query("to"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			respondBadDate(ctx)
			return nil, false
		}
		filter.DateTo = &t
	}
	if s := ctx.Query("min_amount"); s != "" {
		d, err := decimal.NewFromString(s)
		if err != nil {
			respondBadAmount(ctx)
			return nil, false
		}
		filter.MinAmount = &d
	}
	if s := ctx.Query("max_amount"); s != "" {
		d, err := decimal.NewFromString(s)
		if err != nil {
			respondBadAmount(ctx)
			return nil, false
		}
		filter.MaxAmount = &d
	}

	if filter.IsEmpty() {
		return nil, true
	}
	return filter, true
}

func respondBadDate(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid date format, expected YYYY-MM-DD",
		Code:  string(domainerror.ErrCodeInvalidDateFormat),
	})
}

func respondBadAmount(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid amount format, expected a decimal number",
		Code:  string(domainerror.ErrCodeInvalidAmountFormat),
	})
}

// respondError maps domain errors to HTTP responses.
func respondError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	var transactionErr *domainerror.TransactionError
	if errors.As(err, &transactionErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: transactionErr.Message,
			Code:  string(transactionErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrTransactionNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Transaction not found",
			Code:  string(domainerror.ErrCodeTransactionNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
		Code:  string(domainerror.ErrCodeReportInternalError),
	})
}
