package handlers

import (
	"fmt"
	"strconv"

	"pasar/internal/middleware"
	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.CatalogService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the product routes. Reading the catalog is public.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, g Guards) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/featured", h.HandleFeaturedProducts)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Post("/", g.user(h.HandleCreateProduct, models.RoleSeller, models.RoleAdmin)...)
	productRoutes.Put("/:id", g.user(h.HandleUpdateProduct, models.RoleSeller, models.RoleAdmin)...)
	productRoutes.Delete("/:id", g.user(h.HandleDeleteProduct, models.RoleSeller, models.RoleAdmin)...)

	router.Get("/seller/products", g.user(h.HandleSellerProducts, models.RoleSeller, models.RoleAdmin)...)
}

// CreateProductRequest is the body of POST /products.
type CreateProductRequest struct {
	Name           string            `json:"name" validate:"required,max=255"`
	Description    string            `json:"description" validate:"required"`
	Price          decimal.Decimal   `json:"price"`
	OriginalPrice  *decimal.Decimal  `json:"original_price"`
	CategoryID     *uint             `json:"category_id"`
	SellerID       *uint             `json:"seller_id"`
	Images         []string          `json:"images" validate:"required,min=1,dive,required"`
	Stock          int               `json:"stock" validate:"gte=0"`
	Tags           []string          `json:"tags" validate:"omitempty,dive,required"`
	Specifications map[string]string `json:"specifications"`
	IsFeatured     bool              `json:"is_featured"`
}

func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	filter, err := productFilterFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid query parameters",
			"error":   err.Error(),
		})
	}
	products, err := h.service.ListProducts(filter)
	if err != nil {
		return respondError(c, err, "Failed to fetch products")
	}
	return c.JSON(products)
}

func (h *ProductHandler) HandleFeaturedProducts(c *fiber.Ctx) error {
	products, err := h.service.ListFeaturedProducts()
	if err != nil {
		return respondError(c, err, "Failed to fetch featured products")
	}
	return c.JSON(products)
}

func (h *ProductHandler) HandleSellerProducts(c *fiber.Ctx) error {
	products, err := h.service.ListSellerProducts(middleware.CurrentUser(c).ID)
	if err != nil {
		return respondError(c, err, "Failed to fetch seller products")
	}
	return c.JSON(products)
}

func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, "Invalid product ID")
	}
	product, err := h.service.GetProduct(id)
	if err != nil {
		return respondError(c, err, "Product not found")
	}
	return c.JSON(product)
}

func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}
	if !req.Price.IsPositive() {
		return fieldInvalid(c, "price", "Field 'price' must be greater than zero")
	}

	product := &models.Product{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		OriginalPrice:  req.OriginalPrice,
		CategoryID:     req.CategoryID,
		SellerID:       req.SellerID,
		Images:         req.Images,
		Stock:          req.Stock,
		Tags:           req.Tags,
		Specifications: req.Specifications,
		IsFeatured:     req.IsFeatured,
	}
	if err := h.service.CreateProduct(middleware.CurrentUser(c), product); err != nil {
		return respondError(c, err, "Failed to create product")
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, "Invalid product ID")
	}
	var patch models.ProductPatch
	if err := c.BodyParser(&patch); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(patch); err != nil {
		return validationFailed(c, err)
	}
	if patch.Price != nil && !patch.Price.IsPositive() {
		return fieldInvalid(c, "price", "Field 'price' must be greater than zero")
	}

	product, err := h.service.UpdateProduct(middleware.CurrentUser(c), id, patch)
	if err != nil {
		return respondError(c, err, "Failed to update product")
	}
	return c.JSON(product)
}

func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, "Invalid product ID")
	}
	purge := c.QueryBool("purge", false)
	if err := h.service.DeleteProduct(middleware.CurrentUser(c), id, purge); err != nil {
		return respondError(c, err, "Failed to delete product")
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Product %d deleted successfully", id),
	})
}

// productFilterFromQuery reads the listing filter. Both snake_case and
// camelCase parameter names are accepted.
func productFilterFromQuery(c *fiber.Ctx) (repositories.ProductFilter, error) {
	var filter repositories.ProductFilter
	var err error

	if filter.CategoryID, err = queryID(c, "category_id", "categoryId"); err != nil {
		return filter, err
	}
	if filter.SellerID, err = queryID(c, "seller_id", "sellerId"); err != nil {
		return filter, err
	}
	if filter.MinPrice, err = queryDecimal(c, "min_price", "minPrice"); err != nil {
		return filter, err
	}
	if filter.MaxPrice, err = queryDecimal(c, "max_price", "maxPrice"); err != nil {
		return filter, err
	}
	if filter.Limit, err = queryInt(c, "limit"); err != nil {
		return filter, err
	}
	if filter.Offset, err = queryInt(c, "offset"); err != nil {
		return filter, err
	}
	filter.Search = query(c, "search")
	filter.SortBy = query(c, "sort_by", "sortBy")
	return filter, nil
}

func query(c *fiber.Ctx, names ...string) string {
	for _, name := range names {
		if v := c.Query(name); v != "" {
			return v
		}
	}
	return ""
}

func queryID(c *fiber.Ctx, names ...string) (*uint, error) {
	raw := query(c, names...)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return nil, fmt.Errorf("%s must be a positive integer", names[0])
	}
	id := uint(v)
	return &id, nil
}

func queryDecimal(c *fiber.Ctx, names ...string) (*decimal.Decimal, error) {
	raw := query(c, names...)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", names[0])
	}
	return &d, nil
}

func queryInt(c *fiber.Ctx, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", name)
	}
	return v, nil
}
