package order

import (
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func makeAppWithOrderHandler(h *Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			id, err := strconv.Atoi(v)
			if err == nil {
				claims := jwt.MapClaims{"user_id": id}
				tok := &jwt.Token{Claims: claims}
				c.Locals("user", tok)
			}
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	// tests exercise the handlers; the admin guard lives in main wiring
	h.RegisterAdminRoutes(app)
	return app
}

func doJSON(app *fiber.App, method, path, body, userID string) (int, string) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	res, _ := app.Test(req)
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(b)
}

func TestPlaceOrder_Success(t *testing.T) {
	s, _ := newTestService()
	app := makeAppWithOrderHandler(NewHandler(s))

	body := `{"name":"Asha","phone":"555-0100","address":"12 Main St","cart":[{"productId":5,"quantity":2,"price":10}]}`
	code, resBody := doJSON(app, "POST", "/api/orders", body, "1")
	if code != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", code, resBody)
	}
	if !strings.Contains(resBody, "orderId") {
		t.Fatalf("expected orderId in response, got %s", resBody)
	}
}

func TestPlaceOrder_MissingFields(t *testing.T) {
	s, _ := newTestService()
	app := makeAppWithOrderHandler(NewHandler(s))

	code, _ := doJSON(app, "POST", "/api/orders", `{"name":"Asha","cart":[]}`, "1")
	if code != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestPlaceOrder_Unauthenticated(t *testing.T) {
	s, _ := newTestService()
	app := makeAppWithOrderHandler(NewHandler(s))

	body := `{"name":"Asha","phone":"555-0100","address":"12 Main St","cart":[{"productId":5,"quantity":2,"price":10}]}`
	code, _ := doJSON(app, "POST", "/api/orders", body, "")
	if code != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestGetMyOrders_Empty(t *testing.T) {
	s, _ := newTestService()
	app := makeAppWithOrderHandler(NewHandler(s))

	code, body := doJSON(app, "GET", "/api/orders/my", "", "2")
	if code != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if strings.TrimSpace(body) != "[]" {
		t.Fatalf("expected empty array, got %s", body)
	}
}

func TestUpdateStatus_UnknownOrder(t *testing.T) {
	s, _ := newTestService()
	app := makeAppWithOrderHandler(NewHandler(s))

	code, _ := doJSON(app, "PUT", "/api/orders/9999/status", `{"status":"Shipped"}`, "1")
	if code != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	s, _ := newTestService()
	id, err := s.Place(1, validShipping(), "", []Item{{ProductID: 5, Quantity: 1, Price: 1}}, "")
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	app := makeAppWithOrderHandler(NewHandler(s))

	code, _ := doJSON(app, "PUT", "/api/orders/"+strconv.Itoa(id)+"/status", `{"status":"Delivered"}`, "1")
	if code != fiber.StatusConflict {
		t.Fatalf("expected 409, got %d", code)
	}
}

func TestUpdateStatus_Success(t *testing.T) {
	s, _ := newTestService()
	id, err := s.Place(1, validShipping(), "", []Item{{ProductID: 5, Quantity: 1, Price: 1}}, "")
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	app := makeAppWithOrderHandler(NewHandler(s))

	code, body := doJSON(app, "PUT", "/api/orders/"+strconv.Itoa(id)+"/status", `{"status":"Processing"}`, "1")
	if code != fiber.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", code, body)
	}
	if !strings.Contains(body, "Processing") {
		t.Fatalf("expected confirmation naming the new status, got %s", body)
	}
}

func TestUpdateStatus_MissingStatus(t *testing.T) {
	s, _ := newTestService()
	app := makeAppWithOrderHandler(NewHandler(s))

	code, _ := doJSON(app, "PUT", "/api/orders/1/status", `{}`, "1")
	if code != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}
