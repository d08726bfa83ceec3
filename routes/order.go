package routes

import (
	"errors"
	"fmt"

	"customers/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func (h *Handler) createOrder(c *fiber.Ctx) error {
	order := new(models.Order)
	if err := c.BodyParser(order); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := validate.Struct(order); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": err.Error(),
		})
	}

	if err := h.orderSvc.Create(c.UserContext(), order); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create order",
		})
	}

	h.hub.Publish("order", "created", order.ID)
	c.Location(fmt.Sprintf("/api/order/%d", order.ID))
	return c.Status(fiber.StatusCreated).JSON(order)
}

func (h *Handler) getAllOrders(c *fiber.Ctx) error {
	orders, err := h.orders.FindAll(c.UserContext(), true)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get orders",
		})
	}
	return c.JSON(orders)
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id parameter",
		})
	}

	order, err := h.orders.FindByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Order not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get order",
		})
	}
	return c.JSON(order)
}

// getLatestOrders serves GET /api/order/latestOrder: one order per customer,
// the one with the maximum orderDate.
func (h *Handler) getLatestOrders(c *fiber.Ctx) error {
	orders, err := h.orderSvc.LatestPerCustomer(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get latest orders",
		})
	}
	return c.JSON(orders)
}

func (h *Handler) updateOrder(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id parameter",
		})
	}

	order := new(models.Order)
	if err := c.BodyParser(order); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if order.ID != id {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Order id does not match the path",
		})
	}

	if err := validate.Struct(order); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": err.Error(),
		})
	}

	if err := h.orderSvc.Update(c.UserContext(), id, order); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Order not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update order",
		})
	}

	h.hub.Publish("order", "updated", id)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) deleteOrder(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id parameter",
		})
	}

	if err := h.orders.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Order not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete order",
		})
	}

	h.hub.Publish("order", "deleted", id)
	return c.SendStatus(fiber.StatusNoContent)
}
