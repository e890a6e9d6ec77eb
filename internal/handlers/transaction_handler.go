package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "treasury/internal/errors"
	"treasury/internal/models"
	"treasury/internal/pagination"
	"treasury/internal/services"
)

// TransactionHandler handles the transaction ledger.
type TransactionHandler struct {
	ledgerService services.LedgerServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledgerService services.LedgerServicer) *TransactionHandler {
	return &TransactionHandler{ledgerService: ledgerService}
}

// CreateTransactionRequest represents the request payload for creating a
// transaction. Type is ignored by the income/expense shortcuts.
type CreateTransactionRequest struct {
	Type        string          `json:"type" binding:"omitempty,transaction_type"`
	Amount      json.RawMessage `json:"amount" swaggertype:"number"`
	Description string          `json:"description" binding:"max=500"`
}

// TransactionResponse wraps a single transaction.
type TransactionResponse struct {
	Transaction models.Transaction `json:"transaction"`
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Record a transaction
// @Description Record an income or expense stamped with the current time
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} TransactionResponse "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Not logged in"
// @Failure     403 {object} ErrorResponse "Missing ADD_TRANSACTION"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	h.create(c, "")
}

// CreateIncome records an income
// @Summary     Record an income
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Amount and description"
// @Success     201 {object} TransactionResponse "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions/income [post]
func (h *TransactionHandler) CreateIncome(c *gin.Context) {
	h.create(c, models.TransactionTypeIncome)
}

// CreateExpense records an expense
// @Summary     Record an expense
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Amount and description"
// @Success     201 {object} TransactionResponse "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions/expense [post]
func (h *TransactionHandler) CreateExpense(c *gin.Context) {
	h.create(c, models.TransactionTypeExpense)
}

func (h *TransactionHandler) create(c *gin.Context, fixedType models.TransactionType) {
	user, err := getCurrentUser(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	txType := fixedType
	if txType == "" {
		parsed, ok := models.ParseTransactionType(req.Type)
		if !ok {
			respondWithError(c, apperrors.ErrInvalidTransactionType)
			return
		}
		txType = parsed
	}

	amount, err := parseOptionalDecimal(req.Amount, "amount")
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.ledgerService.RecordTransaction(user, txType, amount, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Transaction: *tx})
}

// ListTransactions handles the ledger listing
// @Summary     List transactions
// @Description Ledger sorted newest first, optionally filtered by type
// @Tags        transactions
// @Produce     json
// @Param       type      query string false "ALL, INCOME or EXPENSE"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Transactions"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var q listTransactionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	c.JSON(http.StatusOK, h.ledgerService.ListTransactions(q.filter(), q.PageRequest))
}

type listTransactionsQuery struct {
	pagination.PageRequest
	Type string `form:"type" binding:"omitempty,type_filter"`
}

func (q listTransactionsQuery) filter() services.TransactionFilter {
	var filter services.TransactionFilter
	if strings.EqualFold(q.Type, "all") {
		return filter
	}
	if txType, ok := models.ParseTransactionType(q.Type); ok {
		filter.Type = txType
	}
	return filter
}

// GetTransactionByID handles the retrieval of a specific transaction
// @Summary     Get transaction by ID
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} TransactionResponse "Transaction details"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	tx, err := h.ledgerService.GetTransaction(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Transaction: *tx})
}
