package controllers

import (
	"errors"

	"go-storefront/src/controllers/models"
	"go-storefront/src/services/catalog"
	"go-storefront/src/services/order/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type OrderController struct {
	orderService domain.OrderService
	catalogStore catalog.Store
}

func NewOrderController(orderService domain.OrderService, catalogStore catalog.Store) *OrderController {
	return &OrderController{
		orderService: orderService,
		catalogStore: catalogStore,
	}
}

func (c *OrderController) Route(app *fiber.App) {
	api := app.Group("/api/v1/orders")
	api.Post("/checkout", c.Checkout)
	api.Get("/:id", c.GetOrder)
}

// Checkout godoc
// @Summary      Submit a checkout
// @Description  Validates the checkout form, creates an order and returns it with its simulated transaction status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        checkout  body  models.CheckoutRequest  true  "Checkout payload"
// @Success      201  {object}  domain.Order
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/v1/orders/checkout [post]
func (c *OrderController) Checkout(ctx *fiber.Ctx) error {
	var request models.CheckoutRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	if fieldErrors := request.Validate(); len(fieldErrors) > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fieldErrors,
		})
	}

	variant, err := c.catalogStore.GetVariantByID(ctx.Context(), request.VariantID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if variant == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Variant not found"})
	}

	// Pricing is server-authoritative: subtotal = unit price x quantity,
	// total = subtotal (no tax or shipping modeled).
	subtotal := variant.Price.Mul(decimal.NewFromInt(int64(request.Quantity)))

	order, err := c.orderService.CreateOrder(ctx.Context(), domain.CreateOrderInput{
		Customer: domain.Customer{
			FullName: request.Customer.FullName,
			Email:    request.Customer.Email,
			Phone:    request.Customer.Phone,
			Address:  request.Customer.Address,
			City:     request.Customer.City,
			State:    request.Customer.State,
			ZipCode:  request.Customer.ZipCode,
		},
		Payment: domain.PaymentInfo{
			CardNumber: request.Payment.CardNumber,
			ExpiryDate: request.Payment.ExpiryDate,
			CVV:        request.Payment.CVV,
		},
		VariantID: request.VariantID,
		Quantity:  request.Quantity,
		Subtotal:  subtotal,
		Total:     subtotal,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrVariantNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Variant not found"})
		case errors.Is(err, catalog.ErrInsufficientInventory):
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Insufficient inventory for requested quantity"})
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return ctx.Status(fiber.StatusCreated).JSON(order)
}

// GetOrder godoc
// @Summary      Get order by ID
// @Description  Retrieves a created order for the confirmation page
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  domain.Order
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/v1/orders/{id} [get]
func (c *OrderController) GetOrder(ctx *fiber.Ctx) error {
	orderID := ctx.Params("id")
	order, err := c.orderService.GetOrderByID(ctx.Context(), orderID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if order == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}
	return ctx.JSON(order)
}
