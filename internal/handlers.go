package internal

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/ZEBDA1/McHess/internal/model"
)

type Handlers struct {
	Service     IService
	paypalEmail string
	jwtSecret   string
	logger      *zap.SugaredLogger
}

func NewHandlers(Service IService, paypalEmail, jwtSecret string, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{Service: Service, paypalEmail: paypalEmail, jwtSecret: jwtSecret, logger: logger}
}

func (h *Handlers) Login(c *fiber.Ctx) error {
	var i struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on login request: %s", err.Error())
		return c.SendStatus(fiber.StatusBadRequest)
	}

	t, err := h.Service.Login(i.Login, i.Password)
	if err != nil {
		h.logger.Errorf("Error on login request: %s", err.Error())
		if errors.Is(err, ErrInvalidCredentials) {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": t})
}

// AdminRequired gates every admin route on the presence of a valid session
// token; absence sends the caller back to login.
func (h *Handlers) AdminRequired(c *fiber.Ctx) error {
	token := c.Cookies("token")
	if auth := c.Get(fiber.HeaderAuthorization); auth != "" {
		token = strings.TrimPrefix(auth, "Bearer ")
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.jwtSecret), nil
	})
	if err != nil || claims["role"] != "admin" {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	return c.Next()
}

func (h *Handlers) GetConfig(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"paypal_email": h.paypalEmail})
}

func (h *Handlers) GetPacks(c *fiber.Ctx) error {
	packs, err := h.Service.GetPacks(c.Context())
	if err != nil {
		h.logger.Errorf("Error on get packs request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	if packs == nil {
		packs = []model.Pack{}
	}
	return c.Status(fiber.StatusOK).JSON(packs)
}

func (h *Handlers) GetPack(c *fiber.Ctx) error {
	pack, err := h.Service.GetPack(c.Context(), c.Params("id"))
	if err != nil {
		h.logger.Errorf("Error on get pack request: %s", err.Error())
		if errors.Is(err, ErrPackNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(pack)
}

func (h *Handlers) CreateOrder(c *fiber.Ctx) error {
	var i model.OrderInput

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on create order request: %s", err.Error())
		RecordOrderOperation("create", false)
		return c.SendStatus(fiber.StatusBadRequest)
	}

	order, err := h.Service.CreateOrder(c.Context(), i)
	if err != nil {
		h.logger.Errorf("Error on create order request: %s", err.Error())
		RecordOrderOperation("create", false)
		if errors.Is(err, ErrEmptyCustomerEmail) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		if errors.Is(err, ErrPackNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	RecordOrderOperation("create", true)
	return c.Status(fiber.StatusCreated).JSON(model.OrderCreated{OrderID: order.ID, Amount: order.Amount})
}

func (h *Handlers) GetOrdersByEmail(c *fiber.Ctx) error {
	orders, err := h.Service.GetOrdersByEmail(c.Context(), c.Params("email"))
	if err != nil {
		h.logger.Errorf("Error on get orders by email request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	if orders == nil {
		orders = []model.Order{}
	}
	return c.Status(fiber.StatusOK).JSON(orders)
}

func (h *Handlers) GetOrders(c *fiber.Ctx) error {
	orders, err := h.Service.GetOrders(c.Context())
	if err != nil {
		if errors.Is(err, ErrNoRecords) {
			return c.SendStatus(fiber.StatusNoContent)
		}
		h.logger.Errorf("Error on get orders request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(orders)
}

func (h *Handlers) UpdateOrderStatus(c *fiber.Ctx) error {
	var i model.StatusInput

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on update order status request: %s", err.Error())
		RecordOrderOperation("transition", false)
		return c.SendStatus(fiber.StatusBadRequest)
	}

	err := h.Service.SetOrderStatus(c.Context(), c.Params("id"), i.Status)
	if err != nil {
		h.logger.Errorf("Error on update order status request: %s", err.Error())
		RecordOrderOperation("transition", false)
		return h.transitionError(c, err)
	}

	RecordOrderOperation("transition", true)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "order status updated"})
}

func (h *Handlers) DeliverOrder(c *fiber.Ctx) error {
	var i model.DeliverInput

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on deliver order request: %s", err.Error())
		RecordOrderOperation("deliver", false)
		return c.SendStatus(fiber.StatusBadRequest)
	}

	err := h.Service.Deliver(c.Context(), c.Params("id"), i.DeliveryInfo)
	if err != nil {
		h.logger.Errorf("Error on deliver order request: %s", err.Error())
		RecordOrderOperation("deliver", false)
		return h.transitionError(c, err)
	}

	RecordOrderOperation("deliver", true)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "order delivered"})
}

func (h *Handlers) UpdatePack(c *fiber.Ctx) error {
	var i model.PackInput

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on update pack request: %s", err.Error())
		RecordOrderOperation("pack_update", false)
		return c.SendStatus(fiber.StatusBadRequest)
	}

	pack, err := h.Service.UpdatePack(c.Context(), c.Params("id"), i)
	if err != nil {
		h.logger.Errorf("Error on update pack request: %s", err.Error())
		RecordOrderOperation("pack_update", false)
		if errors.Is(err, ErrPackNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		if isPackValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	RecordOrderOperation("pack_update", true)
	return c.Status(fiber.StatusOK).JSON(pack)
}

func (h *Handlers) transitionError(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrEmptyDeliveryInfo) || errors.Is(err, ErrInvalidStatus) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if errors.Is(err, ErrOrderNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if errors.Is(err, ErrOrderFinalized) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusInternalServerError)
}

func isPackValidation(err error) bool {
	return errors.Is(err, ErrEmptyPackName) ||
		errors.Is(err, ErrEmptyPackDescription) ||
		errors.Is(err, ErrInvalidPointsRange) ||
		errors.Is(err, ErrInvalidPrice)
}
