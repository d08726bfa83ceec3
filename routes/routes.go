package routes

import (
	"customers/repository"
	"customers/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validate = validator.New()

// Handler carries the per-entity gateways and domain services the resource
// handlers dispatch to.
type Handler struct {
	customers  repository.CustomerRepository
	categories repository.CategoryRepository
	products   repository.ProductRepository
	orders     repository.OrderRepository
	productSvc *services.ProductService
	orderSvc   *services.OrderService
	hub        *EventHub
}

// SetupRoutes wires the resource handlers and the change feed onto the app.
// The returned hub lives for the life of the app; callers that tear the app
// down should Close it.
func SetupRoutes(app *fiber.App, database *gorm.DB) *EventHub {
	products := repository.NewGormProductRepository(database)
	orders := repository.NewGormOrderRepository(database)
	h := &Handler{
		customers:  repository.NewGormCustomerRepository(database),
		categories: repository.NewGormCategoryRepository(database),
		products:   products,
		orders:     orders,
		productSvc: services.NewProductService(products),
		orderSvc:   services.NewOrderService(orders),
		hub:        NewEventHub(),
	}

	// Change feed for the frontend tables
	app.Get("/ws", h.hub.Handler())

	api := app.Group("/api")

	// Customer routes
	customers := api.Group("/customer")
	customers.Post("/", h.createCustomer)
	customers.Get("/", h.getAllCustomers)
	customers.Get("/:id", h.getCustomer)
	customers.Put("/:id", h.updateCustomer)
	customers.Delete("/:id", h.deleteCustomer)

	// Product routes; /paged must be registered before /:id
	productGroup := api.Group("/product")
	productGroup.Get("/paged", h.getPagedProducts)
	productGroup.Post("/", h.createProduct)
	productGroup.Get("/", h.getAllProducts)
	productGroup.Get("/:id", h.getProduct)
	productGroup.Put("/:id", h.updateProduct)
	productGroup.Delete("/:id", h.deleteProduct)

	// Product category routes
	categories := api.Group("/productcategory")
	categories.Post("/", h.createCategory)
	categories.Get("/", h.getAllCategories)
	categories.Get("/:id", h.getCategory)
	categories.Put("/:id", h.updateCategory)
	categories.Delete("/:id", h.deleteCategory)

	// Order routes; /latestOrder must be registered before /:id
	orderGroup := api.Group("/order")
	orderGroup.Get("/latestOrder", h.getLatestOrders)
	orderGroup.Post("/", h.createOrder)
	orderGroup.Get("/", h.getAllOrders)
	orderGroup.Get("/:id", h.getOrder)
	orderGroup.Put("/:id", h.updateOrder)
	orderGroup.Delete("/:id", h.deleteOrder)

	return h.hub
}

func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}
