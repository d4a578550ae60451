package api

import (
	"errors"
	"net/http"

	reqdto "club-rental-api/internal/handler/dto/request"
	resdto "club-rental-api/internal/handler/dto/response"
	"club-rental-api/internal/handler/httperr"
	"club-rental-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RentalHandler struct {
	rentalUseCase usecase.RentalUseCase
}

func NewRentalHandler(rentalUseCase usecase.RentalUseCase) *RentalHandler {
	return &RentalHandler{
		rentalUseCase: rentalUseCase,
	}
}

// @Summary Submit rental request
// @Description Submit a rental request; availability is re-checked and the request stored as pending in one serialized step
// @Tags rentals
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitRentalRequest true "Rental request"
// @Success 201 {object} resdto.SubmitRentalResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} resdto.SubmitRentalResponse
// @Failure 500 {object} httperr.Response
// @Router /rentals [post]
func (h *RentalHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitRentalRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Missing or invalid fields")
		return
	}

	result, err := h.rentalUseCase.Submit(c.Request.Context(), req.ToParams())
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

	if !result.Accepted {
		c.JSON(http.StatusConflict, resdto.FromSubmitResult(result))
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSubmitResult(result))
}

// @Summary Get rental request
// @Description Get one rental request by ID with its normalized status, window and items
// @Tags rentals
// @Produce json
// @Param id path string true "Rental request ID"
// @Success 200 {object} resdto.RentalResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rentals/{id} [get]
func (h *RentalHandler) Get(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rental request ID format")
		return
	}

	rm, err := h.rentalUseCase.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRentalNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Rental request not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalRM(rm))
}
