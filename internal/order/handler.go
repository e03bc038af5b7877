package order

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/DevaseeshKumar/Store/internal/user"
)

// Handler delegates order operations to the order service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app fiber.Router) {
	app.Post("/api/orders", h.placeOrder)
	app.Get("/api/orders/my", h.getMyOrders)
}

// RegisterAdminRoutes expects the router to already carry the admin guard.
func (h *Handler) RegisterAdminRoutes(app fiber.Router) {
	app.Get("/api/orders/all", h.getAllOrders)
	app.Put("/api/orders/:orderId<[0-9]+>/status", h.updateStatus)
}

type placeOrderRequest struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	PaymentMode    string `json:"paymentMode"`
	Cart           []Item `json:"cart"`
	IdempotencyKey string `json:"idempotencyKey"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) placeOrder(c *fiber.Ctx) error {
	payload := new(placeOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	shipping := Shipping{Name: payload.Name, Phone: payload.Phone, Address: payload.Address}
	orderID, err := h.service.Place(userID, shipping, payload.PaymentMode, payload.Cart, payload.IdempotencyKey)
	if err != nil {
		switch err {
		case ErrMissingFields:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing required fields"})
		case ErrInvalidIdempotencyKey:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order placed successfully",
		"orderId": orderID,
	})
}

func (h *Handler) getMyOrders(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	views, err := h.service.ListForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch orders"})
	}
	return c.JSON(views)
}

func (h *Handler) getAllOrders(c *fiber.Ctx) error {
	views, err := h.service.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch orders"})
	}
	return c.JSON(views)
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	orderID, err := strconv.Atoi(c.Params("orderId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order id"})
	}

	payload := new(updateStatusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Order ID and status are required"})
	}

	applied, err := h.service.Transition(orderID, payload.Status)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Order not found"})
		case ErrInvalidTransition:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "invalid status transition"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update order status"})
		}
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Order #%d updated to '%s' successfully", orderID, applied),
	})
}
