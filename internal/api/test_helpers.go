package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/studyquest/internal/store"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	handler := NewHandler(store.NewStores(), "test-secret-key", time.UTC, false)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func jsonRequest(t *testing.T, app *fiber.App, method string, path string, authCookie string, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response) map[string]any {
	t.Helper()
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read body failed: %v", err)
	}

	payload := map[string]any{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decode body %q failed: %v", string(raw), err)
	}
	return payload
}

// registerTestUser signs a fresh user up and returns the auth cookie to send
// on subsequent requests.
func registerTestUser(t *testing.T, app *fiber.App, username string, password string) string {
	t.Helper()

	response := jsonRequest(t, app, http.MethodPost, "/api/auth/register", "",
		`{"username":"`+username+`","password":"`+password+`"}`)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register expected status 201, got %d", response.StatusCode)
	}
	response.Body.Close()

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}
	t.Fatalf("register did not set auth cookie")
	return ""
}

func formatID(id float64) string {
	return strconv.FormatUint(uint64(id), 10)
}
