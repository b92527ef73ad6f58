package book

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_CreateFromForm(t *testing.T) {
	service, repository := newTestService(stubCatalog{})
	router := NewHandler(service).Routes()

	form := url.Values{
		FieldTitle:     {"Uncle Vanya"},
		FieldAuthorIDs: {"1", "2"},
		FieldISBN:      {"9780140447"},
	}
	request := httptest.NewRequest(http.MethodPost, "/create", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, ListLocation, recorder.Header().Get("Location"))
	require.Len(t, repository.books, 1)
	assert.Equal(t, []int{1, 2}, repository.books[1].AuthorIDs)
}

func TestHandler_WritesOnMissingBook(t *testing.T) {
	service, _ := newTestService(stubCatalog{})
	router := NewHandler(service).Routes()

	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{"Update", http.MethodPut, "/12", `{"title":"X"}`},
		{"Update alias", http.MethodPost, "/12/update", `{"title":"X"}`},
		{"Delete", http.MethodDelete, "/12", ""},
		{"Delete alias", http.MethodPost, "/12/delete", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			request.Header.Set("Content-Type", "application/json")

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusNotFound, recorder.Code)
		})
	}
}

func TestHandler_InvalidISBN(t *testing.T) {
	service, repository := newTestService(stubCatalog{})
	router := NewHandler(service).Routes()

	request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"Ivanov","isbn":"12345678901234567890"}`))
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"field":"isbn"`)
	assert.Empty(t, repository.books)
}

func TestHandler_DetailAndPaging(t *testing.T) {
	service, _ := newTestService(stubCatalog{})
	router := NewHandler(service).Routes()

	request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"Ivanov","author_ids":[1]}`))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(httptest.NewRecorder(), request)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/1", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"display_authors":"Chekhov"`)
	assert.Contains(t, recorder.Body.String(), `"instances":[]`)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/?page=2", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_CreateRejectsOtherVerbs(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			service, _ := newTestService(stubCatalog{})
			router := NewHandler(service).Routes()

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(method, "/create", nil))

			assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
		})
	}
}
