//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"club-rental-api/internal/domain/availability"
	"club-rental-api/internal/handler/api"
	resdto "club-rental-api/internal/handler/dto/response"
	"club-rental-api/internal/usecase"
	"club-rental-api/internal/usecase/readmodel"
	"club-rental-api/tests/common/builder"
	"club-rental-api/tests/common/httptest"
	"club-rental-api/tests/common/testutil"
	usecasemock "club-rental-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RentalHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockUseCase    *usecasemock.MockRentalUseCase
	handler        *api.RentalHandler
	capturedErrors []*gin.Error
}

func (s *RentalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockRentalUseCase(s.mockCtrl)
	s.handler = api.NewRentalHandler(s.mockUseCase)

	// Capture the error stack so tests can assert the cause reaches logging
	s.router.Use(func(c *gin.Context) {
		c.Next()
		s.capturedErrors = c.Errors
	})
	s.router.POST("/api/rentals", s.handler.Submit)
	s.router.GET("/api/rentals/:id", s.handler.Get)
}

func (s *RentalHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRentalHandlerSuite(t *testing.T) {
	suite.Run(t, new(RentalHandlerTestSuite))
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *RentalHandlerTestSuite) TestSubmit() {
	url := "/api/rentals"
	reqBody := builder.NewRentalBuilder().BuildSubmitRequestDTO()

	acceptedResult := &usecase.SubmitResult{
		Accepted: true,
		Rental: &readmodel.RentalRM{
			ID:        uuid.New(),
			Status:    "pending",
			Requester: "홍길동",
			Window:    "[2025-08-19T00:00:00+09:00,2025-08-21T00:00:00+09:00)",
			Items:     []readmodel.ItemRM{{Name: "천막", Qty: 2}},
			CreatedAt: time.Now(),
		},
		Decision: availability.Decision{Available: true, Conflicts: []availability.Conflict{}},
	}

	s.Run("success: returns 201 Created and the stored request", func() {
		s.mockUseCase.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(acceptedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.SubmitRentalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.True(body.OK)
		s.True(body.Available)
		s.Require().NotNil(body.Rental)
		s.Equal(acceptedResult.Rental.ID, body.Rental.ID)
		s.Equal("pending", body.Rental.Status)
	})

	s.Run("conflict: returns 409 with per-item conflicts", func() {
		rejected := &usecase.SubmitResult{
			Accepted: false,
			Decision: availability.Decision{
				Available: false,
				Conflicts: []availability.Conflict{
					{Item: "천막", Limit: 5, Reserved: 5, Requested: 2, Available: 0},
				},
			},
		}
		s.mockUseCase.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(rejected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		s.Equal(http.StatusConflict, rec.Code)
		var body resdto.SubmitRentalResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.False(body.OK)
		s.NotEmpty(body.Error)
		s.Require().Len(body.Conflicts, 1)
		s.Equal("천막", body.Conflicts[0].Item)
		s.Nil(body.Rental)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing requester", mutate: testutil.Field("requester", nil)},
			{name: "missing rentalDate", mutate: testutil.Field("rentalDate", nil)},
			{name: "missing returnDate", mutate: testutil.Field("returnDate", nil)},
			{name: "missing items", mutate: testutil.Field("items", nil)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
		}{
			{name: "invalid window", usecaseError: usecase.ErrInvalidTimeWindow, expectedStatus: http.StatusBadRequest},
			{name: "invalid items", usecaseError: usecase.ErrInvalidItems, expectedStatus: http.StatusBadRequest},
			{name: "store unavailable", usecaseError: usecase.ErrStoreUnavailable, expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().Submit(gomock.Any(), gomock.Any()).
					Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")

				s.Require().NotEmpty(s.capturedErrors)
				s.ErrorIs(s.capturedErrors[len(s.capturedErrors)-1].Err, tc.usecaseError)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *RentalHandlerTestSuite) TestGet() {
	rentalID := uuid.New()

	s.Run("success: returns 200 with the normalized request", func() {
		rm := &readmodel.RentalRM{
			ID:        rentalID,
			Status:    "approved",
			Requester: "홍길동",
			Window:    "[2025-08-19T00:00:00+09:00,2025-08-21T00:00:00+09:00)",
			Items:     []readmodel.ItemRM{{Name: "천막", Qty: 2}},
			CreatedAt: time.Now(),
		}
		s.mockUseCase.EXPECT().Get(gomock.Any(), rentalID).Return(rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rentals/"+rentalID.String(), nil)

		var body resdto.RentalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(rentalID, body.ID)
		s.Equal("approved", body.Status)
		s.Require().Len(body.Items, 1)
		s.Equal("천막", body.Items[0].Name)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rentals/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid rental request ID")
	})

	s.Run("error: 404 when the request does not exist", func() {
		s.mockUseCase.EXPECT().Get(gomock.Any(), rentalID).
			Return(nil, usecase.ErrRentalNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rentals/"+rentalID.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Rental request not found")
	})
}
