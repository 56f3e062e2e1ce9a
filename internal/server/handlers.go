package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecm-digital/bankingapp-sub000/internal/analysis"
	"github.com/ecm-digital/bankingapp-sub000/internal/app"
	"github.com/ecm-digital/bankingapp-sub000/internal/apperrors"
	"github.com/ecm-digital/bankingapp-sub000/internal/domain"
	"github.com/ecm-digital/bankingapp-sub000/internal/mockapi"
	"github.com/ecm-digital/bankingapp-sub000/internal/store"
)

// Handlers exposes the portal operations as HTTP endpoints. Every error is
// normalized to the UI taxonomy before it goes on the wire.
type Handlers struct {
	logger   *slog.Logger
	state    *app.State
	analyzer *analysis.Client
}

// NewHandlers constructs a Handlers instance.
func NewHandlers(logger *slog.Logger, state *app.State, analyzer *analysis.Client) *Handlers {
	return &Handlers{
		logger:   logger,
		state:    state,
		analyzer: analyzer,
	}
}

func (h *Handlers) health(c *gin.Context) {
	status := h.state.Health()
	code := http.StatusOK
	if !status.Healthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}

// --- Auth ---

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, mockapi.NewError(http.StatusBadRequest, mockapi.CodeMissingID, "invalid login payload"))
		return
	}

	employee, err := h.state.Auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *Handlers) logout(c *gin.Context) {
	h.state.Auth.Logout()
	c.Status(http.StatusNoContent)
}

func (h *Handlers) session(c *gin.Context) {
	employee, ok := h.state.Auth.Current()
	if !ok {
		respondError(c, mockapi.NewError(http.StatusUnauthorized, mockapi.CodeInvalidCredentials, "no employee is signed in"))
		return
	}
	c.JSON(http.StatusOK, employee)
}

// --- Customers ---

func (h *Handlers) listCustomers(c *gin.Context) {
	if err := h.state.Customers.Fetch(c.Request.Context(), c.Query("search")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.state.Customers.Customers()})
}

func (h *Handlers) getCustomer(c *gin.Context) {
	customer, err := h.state.CustomerDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

type addNoteRequest struct {
	EmployeeID string `json:"employeeId"`
	Text       string `json:"text"`
}

func (h *Handlers) addCustomerNote(c *gin.Context) {
	var req addNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, mockapi.NewError(http.StatusBadRequest, mockapi.CodeMissingID, "invalid note payload"))
		return
	}

	note, err := h.state.Customers.AddNote(c.Request.Context(), c.Param("id"), req.EmployeeID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (h *Handlers) analyzeCustomer(c *gin.Context) {
	customer, err := h.state.CustomerDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	result := h.analyzer.AnalyzeCustomer(c.Request.Context(), customer, h.recentTransactions(customer.ID, 5))
	c.JSON(http.StatusOK, result)
}

// recentTransactions pulls the newest held transactions for one customer.
func (h *Handlers) recentTransactions(customerID string, limit int) []domain.Transaction {
	var recent []domain.Transaction
	for _, tx := range h.state.Transactions.Transactions() {
		if tx.CustomerID != customerID {
			continue
		}
		recent = append(recent, tx)
		if len(recent) >= limit {
			break
		}
	}
	return recent
}

// --- Transactions ---

func (h *Handlers) listTransactions(c *gin.Context) {
	if err := h.state.Transactions.Fetch(c.Request.Context(), c.Query("customerId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.state.Transactions.Transactions()})
}

type createTransactionRequest struct {
	Type          string  `json:"type"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	FromAccountID string  `json:"fromAccountId"`
	ToAccountID   string  `json:"toAccountId"`
	Category      string  `json:"category"`
	Title         string  `json:"title"`
	CustomerID    string  `json:"customerId"`
	EmployeeID    string  `json:"employeeId"`
}

func (h *Handlers) createTransaction(c *gin.Context) {
	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, mockapi.NewError(http.StatusBadRequest, mockapi.CodeInvalidAmount, "invalid transaction payload"))
		return
	}

	tx, err := h.state.SubmitTransaction(c.Request.Context(), mockapi.CreateTransactionInput{
		Type:          domain.TransactionType(req.Type),
		Amount:        req.Amount,
		Currency:      req.Currency,
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Category:      req.Category,
		Title:         req.Title,
		CustomerID:    req.CustomerID,
		EmployeeID:    req.EmployeeID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tx)
}

// --- Queue ---

func (h *Handlers) listQueue(c *gin.Context) {
	if err := h.state.Queue.Fetch(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	payload := gin.H{
		"items":        h.state.Queue.Items(),
		"waitingCount": h.state.Queue.WaitingCount(),
	}
	if serving, ok := h.state.Queue.CurrentlyServing(); ok {
		payload["currentlyServing"] = serving
	}
	c.JSON(http.StatusOK, payload)
}

type addQueueItemRequest struct {
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	ServiceType  string `json:"serviceType"`
	Priority     string `json:"priority"`
}

func (h *Handlers) addQueueItem(c *gin.Context) {
	var req addQueueItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, mockapi.NewError(http.StatusBadRequest, mockapi.CodeMissingID, "invalid queue payload"))
		return
	}

	item, err := h.state.AddWalkIn(c.Request.Context(), mockapi.AddQueueItemInput{
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		ServiceType:  domain.ServiceType(req.ServiceType),
		Priority:     domain.Priority(req.Priority),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handlers) callNext(c *gin.Context) {
	item, err := h.state.CallNextCustomer(c.Request.Context())
	if err != nil {
		if errors.Is(err, store.ErrQueueEmpty) {
			err = mockapi.NewError(http.StatusConflict, mockapi.CodeQueueEmpty, err.Error())
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handlers) completeCurrent(c *gin.Context) {
	h.state.Queue.CompleteCurrent()
	c.Status(http.StatusNoContent)
}

// --- Products ---

func (h *Handlers) listProducts(c *gin.Context) {
	category := domain.ProductCategory(c.Query("category"))
	if err := h.state.Products.Fetch(c.Request.Context(), category); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.state.Products.Products()})
}

// --- Cards ---

func (h *Handlers) listCards(c *gin.Context) {
	if err := h.state.Cards.Fetch(c.Request.Context(), c.Query("customerId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.state.Cards.Cards()})
}

type setCardStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handlers) setCardStatus(c *gin.Context) {
	var req setCardStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		respondError(c, mockapi.NewError(http.StatusBadRequest, mockapi.CodeInvalidCardStatus, "card status is required"))
		return
	}

	card, err := h.state.ChangeCardStatus(c.Request.Context(), c.Param("id"), domain.CardStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// --- Loans ---

func (h *Handlers) listLoans(c *gin.Context) {
	if err := h.state.Loans.Fetch(c.Request.Context(), c.Query("customerId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.state.Loans.Loans()})
}

type calculateLoanRequest struct {
	Principal     float64 `json:"principal"`
	AnnualRatePct float64 `json:"annualRatePct"`
	TermMonths    int     `json:"termMonths"`
}

func (h *Handlers) calculateLoan(c *gin.Context) {
	var req calculateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, mockapi.NewError(http.StatusBadRequest, mockapi.CodeInvalidAmount, "invalid calculator payload"))
		return
	}

	result, err := h.state.Loans.Calculate(c.Request.Context(), req.Principal, req.AnnualRatePct, req.TermMonths)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// --- Scenarios ---

type loadScenarioRequest struct {
	Scenario string `json:"scenario"`
}

func (h *Handlers) loadScenario(c *gin.Context) {
	var req loadScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, mockapi.NewError(http.StatusBadRequest, mockapi.CodeMissingID, "invalid scenario payload"))
		return
	}

	scenario := app.Scenario(req.Scenario)
	switch scenario {
	case app.ScenarioStandard, app.ScenarioBusyBranch, app.ScenarioQuietDay:
	default:
		respondError(c, mockapi.NewError(http.StatusBadRequest, mockapi.CodeMissingID, "unknown scenario"))
		return
	}

	if err := h.state.LoadScenario(c.Request.Context(), scenario); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"scenario": scenario})
}

// respondError maps any error onto the closed taxonomy and writes it with the
// status the taxonomy assigned.
func respondError(c *gin.Context, err error) {
	normalized := apperrors.Normalize(err)
	c.JSON(normalized.Status, gin.H{"error": normalized})
}
