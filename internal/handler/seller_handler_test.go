package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bynara/MeliProductDetail/internal/model"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSellerHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	seller := &model.Seller{
		ID:   1,
		Name: "Apple Store",
		RatingInfo: &model.RatingSummary{
			ReviewsCount:  2,
			RatingsCount:  model.RatingHistogram{0, 0, 1, 0, 1},
			AverageRating: 4,
		},
	}

	tests := []struct {
		name           string
		sellerID       string
		mockReturn     *model.Seller
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{name: "Success", sellerID: "1", mockReturn: seller, expectedStatus: http.StatusOK, expectService: true},
		{name: "Not found", sellerID: "9", mockError: &model.NotFoundError{Table: "sellers", ID: 9}, expectedStatus: http.StatusNotFound, expectService: true},
		{name: "Invalid ID", sellerID: "1.5", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockSellerService)
			handler := NewSellerHandler(mockService, logger)

			if tt.expectService {
				mockService.On("GetByID", mock.Anything, mock.AnythingOfType("int")).Return(tt.mockReturn, tt.mockError)
			}

			req := withURLParams(httptest.NewRequest(http.MethodGet, "/sellers/"+tt.sellerID, nil), map[string]string{"id": tt.sellerID})
			w := httptest.NewRecorder()

			handler.GetByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var body map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				rating := body["rating_info"].(map[string]any)
				assert.Equal(t, float64(2), rating["reviews_count"])
				assert.Equal(t, map[string]any{"5": float64(1), "4": float64(0), "3": float64(1), "2": float64(0), "1": float64(0)}, rating["ratings_count"])
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestSellerHandler_List(t *testing.T) {
	mockService := new(MockSellerService)
	handler := NewSellerHandler(mockService, zerolog.Nop())
	mockService.On("List", mock.Anything).Return([]model.Seller{{ID: 1, Name: "Apple Store"}}, nil)

	w := httptest.NewRecorder()
	handler.List(w, httptest.NewRequest(http.MethodGet, "/sellers/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "rating_info")
	mockService.AssertExpectations(t)
}
