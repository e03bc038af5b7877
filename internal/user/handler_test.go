package user

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func makeGuardedApp() *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role := c.Get("X-Role"); role != "" {
			claims := jwt.MapClaims{"user_id": 1, "role": role}
			c.Locals("user", &jwt.Token{Claims: claims})
		}
		return c.Next()
	})
	admin := app.Group("", RequireAdmin)
	admin.Get("/api/admin/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func getWithRole(app *fiber.App, path, role string) int {
	req := httptest.NewRequest("GET", path, nil)
	if role != "" {
		req.Header.Set("X-Role", role)
	}
	res, _ := app.Test(req)
	return res.StatusCode
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	app := makeGuardedApp()

	if code := getWithRole(app, "/api/admin/ping", RoleAdmin); code != fiber.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", code)
	}
}

func TestRequireAdmin_RejectsNonAdminRole(t *testing.T) {
	app := makeGuardedApp()

	if code := getWithRole(app, "/api/admin/ping", RoleUser); code != fiber.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", code)
	}
}

func TestRequireAdmin_RejectsMissingToken(t *testing.T) {
	app := makeGuardedApp()

	if code := getWithRole(app, "/api/admin/ping", ""); code != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", code)
	}
}

func TestSignToken_UsesInjectedSecret(t *testing.T) {
	h := NewHandler(NewService(NewInMemoryRepository(nil)), "sekrit")

	signed, err := h.signToken(User{ID: 7, Email: "asha@example.com", Role: RoleUser})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	parsed, err := jwt.Parse(signed, func(*jwt.Token) (interface{}, error) {
		return []byte("sekrit"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("expected the token to verify with the injected secret, got %v", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("unexpected claims type %T", parsed.Claims)
	}
	if id, _ := claims["user_id"].(float64); int(id) != 7 {
		t.Fatalf("expected user_id 7 in claims, got %v", claims["user_id"])
	}

	if _, err := jwt.Parse(signed, func(*jwt.Token) (interface{}, error) {
		return []byte("other"), nil
	}); err == nil {
		t.Fatal("expected verification with a different secret to fail")
	}
}
