// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finance-ledger/backend/internal/application/usecase/report"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/dto"
)

// ReportController handles report and dashboard endpoints.
type ReportController struct {
	sumTotalUseCase           *report.SumTotalUseCase
	sumByCategoryUseCase      *report.SumByCategoryUseCase
	sumByDateUseCase          *report.SumByDateUseCase
	distinctCategoriesUseCase *report.DistinctCategoriesUseCase
	countTransactionsUseCase  *report.CountTransactionsUseCase
	latestTransactionUseCase  *report.LatestTransactionUseCase
	monthlyTotalUseCase       *report.MonthlyTotalUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	sumTotalUseCase *report.SumTotalUseCase,
	sumByCategoryUseCase *report.SumByCategoryUseCase,
	sumByDateUseCase *report.SumByDateUseCase,
	distinctCategoriesUseCase *report.DistinctCategoriesUseCase,
	countTransactionsUseCase *report.CountTransactionsUseCase,
	latestTransactionUseCase *report.LatestTransactionUseCase,
	monthlyTotalUseCase *report.MonthlyTotalUseCase,
) *ReportController {
	return &ReportController{
		sumTotalUseCase:           sumTotalUseCase,
		sumByCategoryUseCase:      sumByCategoryUseCase,
		sumByDateUseCase:          sumByDateUseCase,
		distinctCategoriesUseCase: distinctCategoriesUseCase,
		countTransactionsUseCase:  countTransactionsUseCase,
		latestTransactionUseCase:  latestTransactionUseCase,
		monthlyTotalUseCase:       monthlyTotalUseCase,
	}
}

// GetTotal handles GET /users/:userID/reports/total requests.
func (c *ReportController) GetTotal(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}
	filter, ok := parseFilter(ctx)
	if !ok {
		return
	}

	total, err := c.sumTotalUseCase.Execute(ctx.Request.Context(), report.Scope{UserID: userID, Filter: filter})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTotalResponse(total))
}

// GetByCategory handles GET /users/:userID/reports/by-category requests.
func (c *ReportController) GetByCategory(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}
	filter, ok := parseFilter(ctx)
	if !ok {
		return
	}

	totals, err := c.sumByCategoryUseCase.Execute(ctx.Request.Context(), report.Scope{UserID: userID, Filter: filter})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"categories": dto.ToCategoryTotalsResponse(totals)})
}

// GetByDate handles GET /users/:userID/reports/by-date requests.
func (c *ReportController) GetByDate(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}
	filter, ok := parseFilter(ctx)
	if !ok {
		return
	}

	totals, err := c.sumByDateUseCase.Execute(ctx.Request.Context(), report.Scope{UserID: userID, Filter: filter})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"dates": dto.ToDateTotalsResponse(totals)})
}

// GetCategories handles GET /users/:userID/reports/categories requests.
func (c *ReportController) GetCategories(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}
	filter, ok := parseFilter(ctx)
	if !ok {
		return
	}

	categories, err := c.distinctCategoriesUseCase.Execute(ctx.Request.Context(), report.Scope{UserID: userID, Filter: filter})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CategoriesResponse{Categories: categories})
}

// GetCount handles GET /users/:userID/reports/count requests.
func (c *ReportController) GetCount(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}
	filter, ok := parseFilter(ctx)
	if !ok {
		return
	}

	count, err := c.countTransactionsUseCase.Execute(ctx.Request.Context(), report.Scope{UserID: userID, Filter: filter})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

// GetLatest handles GET /users/:userID/reports/latest requests.
func (c *ReportController) GetLatest(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}
	filter, ok := parseFilter(ctx)
	if !ok {
		return
	}

	latest, err := c.latestTransactionUseCase.Execute(ctx.Request.Context(), report.Scope{UserID: userID, Filter: filter})
	if err != nil {
		respondError(ctx, err)
		return
	}
	if latest == nil {
		// An empty ledger is not an error; there is just nothing to show.
		ctx.JSON(http.StatusOK, gin.H{"transaction": nil})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"transaction": dto.ToTransactionResponse(latest)})
}

// GetMonthlyTotal handles GET /users/:userID/reports/monthly-total requests.
func (c *ReportController) GetMonthlyTotal(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}

	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "month must be between 1 and 12",
			Code:  string(domainerror.ErrCodeInvalidMonth),
		})
		return
	}
	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "year must be positive",
			Code:  string(domainerror.ErrCodeInvalidYear),
		})
		return
	}

	total, err := c.monthlyTotalUseCase.Execute(ctx.Request.Context(), report.MonthlyTotalInput{
		UserID: userID,
		Month:  month,
		Year:   year,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTotalResponse(total))
}
