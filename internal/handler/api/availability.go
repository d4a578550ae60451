package api

import (
	"errors"
	"net/http"

	reqdto "club-rental-api/internal/handler/dto/request"
	resdto "club-rental-api/internal/handler/dto/response"
	"club-rental-api/internal/handler/httperr"
	"club-rental-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityUseCase usecase.AvailabilityUseCase
}

func NewAvailabilityHandler(availabilityUseCase usecase.AvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUseCase: availabilityUseCase,
	}
}

// @Summary Check availability
// @Description Check whether a rental window and item list fit within stock limits
// @Tags availability
// @Accept json
// @Produce json
// @Param request body reqdto.CheckAvailabilityRequest true "Raw rental window and items"
// @Success 200 {object} resdto.CheckAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /availability/check [post]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	var req reqdto.CheckAvailabilityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Missing or invalid fields")
		return
	}

	params := usecase.CheckParams{
		RentalDate: req.RentalDate,
		ReturnDate: req.ReturnDate,
		Items:      req.Items,
	}

	decision, err := h.availabilityUseCase.Check(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidTimeWindow):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rental window")
		case errors.Is(err, usecase.ErrInvalidItems):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item list")
		case errors.Is(err, usecase.ErrStoreUnavailable):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Rental request store unavailable")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDecision(decision))
}

// @Summary Remaining stock calendar
// @Description Per-day remaining stock for every item, over a month or an explicit date range
// @Tags availability
// @Produce json
// @Param month query string false "Month as YYYY-MM (default: current month)"
// @Param start query string false "Range start as YYYY-MM-DD"
// @Param end query string false "Range end as YYYY-MM-DD, exclusive"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /availability/calendar [get]
func (h *AvailabilityHandler) Calendar(c *gin.Context) {
	params := usecase.CalendarParams{
		Month: c.Query("month"),
		Start: c.Query("start"),
		End:   c.Query("end"),
	}

	summaries, err := h.availabilityUseCase.Calendar(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid calendar range")
		case errors.Is(err, usecase.ErrStoreUnavailable):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Rental request store unavailable")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDaySummaries(summaries))
}
