package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"go-eventcrm/internal/common/models"
	"go-eventcrm/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// actorEcho returns the actor id the way services resolve it when
// writing audit entries.
func actorEcho(c *fiber.Ctx) error {
	actorID, _ := c.UserContext().Value(models.UserIDKey).(string)
	return c.SendString(actorID)
}

func TestAuthMiddlewareCarriesActorIntoUserContext(t *testing.T) {
	utils.SetSecret("test-secret")
	userID := primitive.NewObjectID()

	token, err := utils.GenerateToken(userID, "leyla@example.com", nil)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	app := fiber.New()
	app.Get("/", AuthMiddleware(false), actorEcho)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != userID.Hex() {
		t.Errorf("actor id = %q, want %q", body, userID.Hex())
	}
}

func TestAuthMiddlewareSkipAuthUsesDevActor(t *testing.T) {
	app := fiber.New()
	app.Get("/", AuthMiddleware(true), actorEcho)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if string(body) != "dev-admin-id" {
		t.Errorf("actor id = %q, want %q", body, "dev-admin-id")
	}
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	app := fiber.New()
	app.Get("/", AuthMiddleware(false), actorEcho)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}
