package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancedash/profit-engine/internal/api/metrics"
	"github.com/freelancedash/profit-engine/internal/core/domain"
	"github.com/freelancedash/profit-engine/internal/core/ports"
)

// EntryHandler handles raw time/income log operations.
type EntryHandler struct {
	service ports.EntryService
}

func NewEntryHandler(service ports.EntryService) *EntryHandler {
	return &EntryHandler{service: service}
}

// --- Request types (field names are the mobile client's contract) ---

type addTimeRequest struct {
	Client string  `json:"Client" validate:"required"`
	Hours  float64 `json:"Hours" validate:"gte=0"`
	Type   string  `json:"Type" validate:"required,oneof=Billable Admin Other"`
}

type addIncomeRequest struct {
	Client string  `json:"Client" validate:"required"`
	Amount float64 `json:"Amount"`
}

type updateLogRequest struct {
	Type  string `json:"type"`
	ID    int64  `json:"id"`
	Field string `json:"field"`
	Value any    `json:"value"`
}

type statusResponse struct {
	Status string `json:"status"`
}

// AddTime handles POST /add-time.
//
// @Summary      Log a block of work
// @Tags         entries
// @Accept       json
// @Produce      json
// @Param        x-access-token  header    string          true  "Session token"
// @Param        body            body      addTimeRequest  true  "Time entry"
// @Success      200             {object}  statusResponse
// @Failure      400             {object}  map[string]string
// @Failure      401             {object}  messageResponse
// @Router       /add-time [post]
func (h *EntryHandler) AddTime(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req addTimeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.service.AddTime(c.Request().Context(), userID, ports.AddTimeInput{
		Client:   req.Client,
		Hours:    req.Hours,
		Category: req.Type,
	}); err != nil {
		return err
	}

	metrics.EntriesCreatedTotal.WithLabelValues("time").Inc()
	return c.JSON(http.StatusOK, statusResponse{Status: "success"})
}

// AddIncome handles POST /add-income.
//
// @Summary      Log a payment received
// @Tags         entries
// @Accept       json
// @Produce      json
// @Param        x-access-token  header    string            true  "Session token"
// @Param        body            body      addIncomeRequest  true  "Income entry"
// @Success      200             {object}  statusResponse
// @Failure      400             {object}  map[string]string
// @Failure      401             {object}  messageResponse
// @Router       /add-income [post]
func (h *EntryHandler) AddIncome(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req addIncomeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.service.AddIncome(c.Request().Context(), userID, ports.AddIncomeInput{
		Client: req.Client,
		Amount: req.Amount,
	}); err != nil {
		return err
	}

	metrics.EntriesCreatedTotal.WithLabelValues("income").Inc()
	return c.JSON(http.StatusOK, statusResponse{Status: "success"})
}

// ClientHistory handles GET /client-history?client=<name>.
//
// @Summary      Raw rows for one client, newest first
// @Tags         entries
// @Produce      json
// @Param        x-access-token  header    string  true  "Session token"
// @Param        client          query     string  true  "Client name"
// @Success      200             {object}  ports.ClientHistory
// @Failure      401             {object}  messageResponse
// @Router       /client-history [get]
func (h *EntryHandler) ClientHistory(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	history, err := h.service.ClientHistory(c.Request().Context(), userID, c.QueryParam("client"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, history)
}

// UpdateLog handles POST /update-log. Only whitelisted fields are
// updatable; a miss on the id/owner pair answers 403 without revealing
// whether the row exists.
//
// @Summary      Update one field of an owned log row
// @Tags         entries
// @Accept       json
// @Produce      json
// @Param        x-access-token  header    string            true  "Session token"
// @Param        body            body      updateLogRequest  true  "Record type, id, field, value"
// @Success      200             {object}  statusResponse
// @Failure      400             {object}  map[string]string
// @Failure      403             {object}  map[string]string
// @Router       /update-log [post]
func (h *EntryHandler) UpdateLog(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateLogRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	err = h.service.UpdateLog(c.Request().Context(), userID, ports.UpdateLogInput{
		RecordType: req.Type,
		ID:         req.ID,
		Field:      req.Field,
		Value:      req.Value,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidUpdate):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, domain.ErrEntryNotFound):
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Update failed or unauthorized"})
		}
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{Status: "updated"})
}
