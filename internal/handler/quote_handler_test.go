package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/evergreenlawns/evergreen-backend/internal/models"
	"github.com/evergreenlawns/evergreen-backend/internal/repository"
	"github.com/evergreenlawns/evergreen-backend/internal/service"
	"github.com/evergreenlawns/evergreen-backend/pkg/utils"
)

type stubMailer struct {
	failCustomer bool
	failOwner    bool
}

func (m *stubMailer) SendQuoteConfirmation(quote *models.QuoteRequest) error {
	if m.failCustomer {
		return assert.AnError
	}
	return nil
}

func (m *stubMailer) SendQuoteAlert(quote *models.QuoteRequest) error {
	if m.failOwner {
		return assert.AnError
	}
	return nil
}

func newQuoteApp(t *testing.T, mailer service.Mailer) *fiber.App {
	t.Helper()

	quoteRepo, err := repository.NewQuoteRepository(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	quotes := service.NewQuoteService(quoteRepo, mailer, zap.NewNop())
	h := NewQuoteHandler(quotes, utils.NewValidator())

	app := fiber.New()
	api := app.Group("/api")
	api.Get("/quotes", h.GetQuotes)
	api.Post("/quotes", h.CreateQuote)
	api.Patch("/quotes/:id", h.UpdateQuote)
	api.Delete("/quotes/:id", h.DeleteQuote)

	return app
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

const validSubmission = `{
	"name": "Pat Jones",
	"phone": "555-0101",
	"email": "pat@example.com",
	"address": "12 Meadow Lane",
	"propertySize": "medium",
	"services": ["mowing", "edging"],
	"message": "Backyard only"
}`

func TestQuotes_CreateForcesNewStatus(t *testing.T) {
	app := newQuoteApp(t, &stubMailer{})

	// A caller-supplied status must be ignored.
	body := strings.Replace(validSubmission, `"name"`, `"status": "completed", "name"`, 1)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/quotes", body), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	created := decodeJSON[models.QuoteCreateResponse](t, resp)
	assert.True(t, created.Success)
	assert.Equal(t, models.QuoteStatusNew, created.Quote.Status)
	assert.NotEmpty(t, created.Quote.ID)
	assert.True(t, created.EmailSent.Customer)
	assert.True(t, created.EmailSent.Owner)
}

func TestQuotes_CreateReportsEmailFailures(t *testing.T) {
	app := newQuoteApp(t, &stubMailer{failCustomer: true})

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/quotes", validSubmission), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	created := decodeJSON[models.QuoteCreateResponse](t, resp)
	assert.True(t, created.Success)
	assert.False(t, created.EmailSent.Customer)
	assert.True(t, created.EmailSent.Owner)
}

func TestQuotes_CreateValidation(t *testing.T) {
	app := newQuoteApp(t, &stubMailer{})

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"phone":"555-0101","email":"pat@example.com","address":"12 Meadow Lane"}`},
		{"bad email", `{"name":"Pat","phone":"555-0101","email":"not-an-email","address":"12 Meadow Lane"}`},
		{"bad property size", `{"name":"Pat","phone":"555-0101","email":"pat@example.com","address":"12 Meadow Lane","propertySize":"enormous"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(jsonRequest(http.MethodPost, "/api/quotes", tc.body), -1)
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			body := decodeJSON[models.Response](t, resp)
			assert.False(t, body.Success)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestQuotes_PatchChangesOnlySuppliedFields(t *testing.T) {
	app := newQuoteApp(t, &stubMailer{})

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/quotes", validSubmission), -1)
	require.NoError(t, err)
	created := decodeJSON[models.QuoteCreateResponse](t, resp)

	resp, err = app.Test(jsonRequest(http.MethodPatch, "/api/quotes/"+created.Quote.ID, `{"notes":"left voicemail"}`), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodPatch, "/api/quotes/"+created.Quote.ID, `{"status":"completed"}`), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	updated := decodeJSON[models.QuoteUpdateResponse](t, resp)
	assert.Equal(t, models.QuoteStatusCompleted, updated.Quote.Status)
	assert.Equal(t, "left voicemail", updated.Quote.Notes)
	assert.Equal(t, created.Quote.Name, updated.Quote.Name)
	assert.Equal(t, created.Quote.Services, updated.Quote.Services)
}

func TestQuotes_PatchValidatesStatus(t *testing.T) {
	app := newQuoteApp(t, &stubMailer{})

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/quotes", validSubmission), -1)
	require.NoError(t, err)
	created := decodeJSON[models.QuoteCreateResponse](t, resp)

	resp, err = app.Test(jsonRequest(http.MethodPatch, "/api/quotes/"+created.Quote.ID, `{"status":"archived"}`), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestQuotes_PatchUnknownID(t *testing.T) {
	app := newQuoteApp(t, &stubMailer{})

	resp, err := app.Test(jsonRequest(http.MethodPatch, "/api/quotes/12345", `{"status":"contacted"}`), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeJSON[models.Response](t, resp)
	assert.Equal(t, "Quote not found", body.Message)
}

func TestQuotes_ListAndDelete(t *testing.T) {
	app := newQuoteApp(t, &stubMailer{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/quotes", nil), -1)
	require.NoError(t, err)
	listed := decodeJSON[models.QuoteListResponse](t, resp)
	assert.True(t, listed.Success)
	assert.Empty(t, listed.Quotes)

	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/quotes", validSubmission), -1)
	require.NoError(t, err)
	created := decodeJSON[models.QuoteCreateResponse](t, resp)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/quotes/"+created.Quote.ID, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/quotes/"+created.Quote.ID, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/quotes", nil), -1)
	require.NoError(t, err)
	listed = decodeJSON[models.QuoteListResponse](t, resp)
	assert.Empty(t, listed.Quotes)
}
