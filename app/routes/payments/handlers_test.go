package payments

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	// nil connection: these tests only exercise paths that reject the
	// request before any store call.
	SetupPaymentsRoutes(app, nil)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]interface{}) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	payload := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	return resp.StatusCode, payload
}

func TestRecordPaymentAPIMissingFields(t *testing.T) {
	app := newTestApp()

	status, payload := doJSON(t, app, "POST", "/api/payments/", `{}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, payload["success"])
	assert.ElementsMatch(t, []interface{}{"student_id", "amount"}, payload["missingFields"])
}

func TestRecordPaymentAPIRejectsMalformedStudentID(t *testing.T) {
	app := newTestApp()

	status, payload := doJSON(t, app, "POST", "/api/payments/",
		`{"student_id":"not-a-uuid","amount":100}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, payload["error"], "valid UUID")
}

func TestGetPaymentsAPIRejectsMalformedStudentIDFilter(t *testing.T) {
	app := newTestApp()

	status, payload := doJSON(t, app, "GET", "/api/payments/?student_id=42", "")

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, payload["error"], "valid UUID")
}

func TestGetPaymentByIDAPIRejectsMalformedID(t *testing.T) {
	app := newTestApp()

	status, payload := doJSON(t, app, "GET", "/api/payments/123", "")

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, payload["error"], "Expected UUID")
}
