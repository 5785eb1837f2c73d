package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/catalog-app/catalog/models"
	"github.com/stretchr/testify/assert"
)

func TestHandleGetItem(t *testing.T) {
	unpriced := models.Item{ID: 9, Name: "Item9"}
	allMockItems := []models.Item{
		newTestItem(1, "Cat1", 111),
		newTestItem(4, "Cat1", 444),
		unpriced,
	}

	testCases := []struct {
		name               string
		pathID             string
		mockRepoSetup      func() *MockItemRepo
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
		checkRepoCalls     func(t *testing.T, repo *MockItemRepo)
	}{
		{
			name:   "Success",
			pathID: "4",
			mockRepoSetup: func() *MockItemRepo {
				return &MockItemRepo{SourceItems: allMockItems}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp ItemDetailResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, uint(4), resp.ID)
				assert.Equal(t, "Item4", resp.Name)
				assert.Equal(t, "Item4 description", *resp.Description)
				assert.Equal(t, "444", *resp.Price)
				assert.Equal(t, 444.0, *resp.PriceValue)
				assert.Equal(t, []string{"Cat1"}, resp.Categories)
			},
			checkRepoCalls: func(t *testing.T, repo *MockItemRepo) {
				assert.Equal(t, uint(4), repo.lastCalledID)
			},
		},
		{
			name:   "Item without price or categories",
			pathID: "9",
			mockRepoSetup: func() *MockItemRepo {
				return &MockItemRepo{SourceItems: allMockItems}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp map[string]any
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Nil(t, resp["price"])
				assert.Nil(t, resp["price_value"])
				assert.Nil(t, resp["description"])
				assert.Equal(t, []any{}, resp["categories"])
			},
		},
		{
			name:   "Item not found",
			pathID: "99",
			mockRepoSetup: func() *MockItemRepo {
				return &MockItemRepo{SourceItems: allMockItems}
			},
			expectedStatusCode: http.StatusNotFound,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				err := json.NewDecoder(rec.Body).Decode(&errResp)
				assert.NoError(t, err)
				assert.Equal(t, "item not found", errResp["error"])
			},
		},
		{
			name:   "Invalid id",
			pathID: "0",
			mockRepoSetup: func() *MockItemRepo {
				return &MockItemRepo{SourceItems: allMockItems}
			},
			expectedStatusCode: http.StatusBadRequest,
			checkRepoCalls: func(t *testing.T, repo *MockItemRepo) {
				assert.Zero(t, repo.lastCalledID, "GetItemByID should not be called with an invalid id")
			},
		},
		{
			name:   "Repository error",
			pathID: "1",
			mockRepoSetup: func() *MockItemRepo {
				return &MockItemRepo{Err: errors.New("db down")}
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := tc.mockRepoSetup()
			handler := NewCatalogHandler(mockRepo)
			req := httptest.NewRequest("GET", "/items/"+tc.pathID, nil)
			req.SetPathValue("id", tc.pathID)
			rec := httptest.NewRecorder()

			handler.HandleGetItem(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
			if tc.checkRepoCalls != nil {
				tc.checkRepoCalls(t, mockRepo)
			}
		})
	}
}
