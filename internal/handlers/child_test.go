package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/mundo-divertido/internal/middlewares"
	"github.com/sbilibin2017/mundo-divertido/internal/models"
	"github.com/stretchr/testify/assert"
)

func withIdentity(r *http.Request, identity models.Identity) *http.Request {
	return r.WithContext(middlewares.WithIdentity(r.Context(), identity, "sid"))
}

func TestGetChildHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockChildGetter(ctrl)
	created := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	parent := models.Authenticated{UserID: 1, IsParent: true}

	tests := []struct {
		name         string
		identity     models.Identity
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name:     "parent child",
			identity: parent,
			mockSetup: func() {
				mockSvc.EXPECT().GetChild(gomock.Any(), parent).
					Return(&models.Child{ID: 2, Name: "Ana", Avatar: "cat", ParentID: 1, TimeLimit: 30, CreatedAt: created}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":2,"name":"Ana","avatar":"cat","parentId":1,"timeLimit":30,"createdAt":"2024-01-15T09:30:00Z"}`,
		},
		{
			name:     "guest child has no parent or creation time",
			identity: models.Guest{},
			mockSetup: func() {
				child := models.GuestChild()
				mockSvc.EXPECT().GetChild(gomock.Any(), models.Guest{}).Return(&child, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":0,"name":"Visitante","avatar":"heart","timeLimit":30}`,
		},
		{
			name:     "no child yet",
			identity: parent,
			mockSetup: func() {
				mockSvc.EXPECT().GetChild(gomock.Any(), parent).Return(nil, models.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := withIdentity(httptest.NewRequest(http.MethodGet, "/api/child", nil), tt.identity)
			w := httptest.NewRecorder()

			NewGetChildHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestCreateChildHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockChildCreator(ctrl)
	created := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	parent := models.Authenticated{UserID: 1, IsParent: true}

	tests := []struct {
		name         string
		identity     models.Identity
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name:      "success",
			identity:  parent,
			inputBody: CreateChildRequest{Name: "Ana", Avatar: "cat", TimeLimit: 30},
			mockSetup: func() {
				mockSvc.EXPECT().
					CreateChild(gomock.Any(), parent, models.ChildInput{Name: "Ana", Avatar: "cat", TimeLimit: 30}).
					Return(&models.Child{ID: 1, Name: "Ana", Avatar: "cat", ParentID: 1, TimeLimit: 30, CreatedAt: created}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":1,"name":"Ana","avatar":"cat","parentId":1,"timeLimit":30,"createdAt":"2024-01-15T09:30:00Z"}`,
		},
		{
			name:         "invalid JSON",
			identity:     parent,
			inputBody:    "{",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid request body"}`,
		},
		{
			name:      "guest rejected",
			identity:  models.Guest{},
			inputBody: CreateChildRequest{Name: "Ana"},
			mockSetup: func() {
				mockSvc.EXPECT().
					CreateChild(gomock.Any(), models.Guest{}, gomock.Any()).
					Return(nil, models.ErrUnauthenticated)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"error":"Not authenticated"}`,
		},
		{
			name:      "invalid avatar",
			identity:  parent,
			inputBody: CreateChildRequest{Name: "Ana", Avatar: "dragon"},
			mockSetup: func() {
				verr := models.NewValidationError()
				verr.Add("avatar", "must be one of cat, dog, heart")
				mockSvc.EXPECT().CreateChild(gomock.Any(), parent, gomock.Any()).Return(nil, verr)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid request","fields":{"avatar":"must be one of cat, dog, heart"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/child", encodeBody(t, tt.inputBody)), tt.identity)
			w := httptest.NewRecorder()

			NewCreateChildHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestUpdateChildHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockChildUpdater(ctrl)
	created := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	user := models.Authenticated{UserID: 1}
	timeLimit := 60

	router := chi.NewRouter()
	router.Put("/api/child/{id}", NewUpdateChildHandler(mockSvc))

	tests := []struct {
		name         string
		path         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name:      "partial update",
			path:      "/api/child/2",
			inputBody: `{"timeLimit":60}`,
			mockSetup: func() {
				mockSvc.EXPECT().
					UpdateChild(gomock.Any(), user, int64(2), models.ChildUpdate{TimeLimit: &timeLimit}).
					Return(&models.Child{ID: 2, Name: "Ana", Avatar: "cat", ParentID: 1, TimeLimit: 60, CreatedAt: created}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":2,"name":"Ana","avatar":"cat","parentId":1,"timeLimit":60,"createdAt":"2024-01-15T09:30:00Z"}`,
		},
		{
			name:      "unknown id",
			path:      "/api/child/99",
			inputBody: `{"name":"Bia"}`,
			mockSetup: func() {
				mockSvc.EXPECT().UpdateChild(gomock.Any(), user, int64(99), gomock.Any()).Return(nil, models.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Not found"}`,
		},
		{
			name:         "non-numeric id",
			path:         "/api/child/abc",
			inputBody:    `{"name":"Bia"}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid request","fields":{"id":"must be an integer"}}`,
		},
		{
			name:      "store failure",
			path:      "/api/child/2",
			inputBody: `{"avatar":"dog"}`,
			mockSetup: func() {
				mockSvc.EXPECT().UpdateChild(gomock.Any(), user, int64(2), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := withIdentity(httptest.NewRequest(http.MethodPut, tt.path, encodeBody(t, tt.inputBody)), user)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
