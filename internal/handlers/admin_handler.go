package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"sneakerhub/internal/models"
	"sneakerhub/internal/services"
	"sneakerhub/pkg/imagestore"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminHandler struct {
	productService services.ProductService
	orderService   services.OrderService
	reportService  services.ReportService
	images         *imagestore.Store
}

func NewAdminHandler(productService services.ProductService, orderService services.OrderService, reportService services.ReportService, images *imagestore.Store) *AdminHandler {
	return &AdminHandler{
		productService: productService,
		orderService:   orderService,
		reportService:  reportService,
		images:         images,
	}
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.reportService.DashboardStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) Users(c *gin.Context) {
	summaries, err := h.reportService.CustomerSummaries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, summaries)
}

func (h *AdminHandler) Orders(c *gin.Context) {
	rows, err := h.orderService.AdminList()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AdminHandler) OrderDetails(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order id"})
		return
	}

	detail, err := h.orderService.AdminGet(uint(orderID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch order details"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order id"})
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	previous, err := h.orderService.UpdateStatus(uint(orderID), req.Status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid status value. Must be one of: " + strings.Join(models.OrderStatuses, ", "),
			})
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update order status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Order status updated successfully",
		"status":         req.Status,
		"previousStatus": previous,
	})
}

func (h *AdminHandler) Products(c *gin.Context) {
	products, err := h.productService.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *AdminHandler) CreateProduct(c *gin.Context) {
	name := c.PostForm("name")
	description := c.PostForm("description")
	brand := c.PostForm("brand")
	priceStr := c.PostForm("price")
	stockStr := c.PostForm("stock")

	if name == "" || priceStr == "" || stockStr == "" || brand == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, price, stock, and brand are required."})
		return
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid price"})
		return
	}
	stock, err := strconv.Atoi(stockStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid stock"})
		return
	}

	var imageURL string
	if file, err := c.FormFile("image"); err == nil {
		imageURL, err = h.images.Save(file)
		if err != nil {
			h.respondImageError(c, err)
			return
		}
	}

	product := &models.Product{
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		Brand:       brand,
		ImageURL:    imageURL,
	}
	if err := h.productService.Create(product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Product added successfully",
		"productId": product.ID,
		"image_url": product.ImageURL,
	})
}

func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
		return
	}

	product, err := h.productService.GetByID(uint(productID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	if v := c.PostForm("name"); v != "" {
		product.Name = v
	}
	if v := c.PostForm("description"); v != "" {
		product.Description = v
	}
	if v := c.PostForm("brand"); v != "" {
		product.Brand = v
	}
	if v := c.PostForm("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid price"})
			return
		}
		product.Price = price
	}
	if v := c.PostForm("stock"); v != "" {
		stock, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid stock"})
			return
		}
		product.Stock = stock
	}

	// A replacement image retires the old file.
	if file, err := c.FormFile("image"); err == nil {
		imageURL, err := h.images.Save(file)
		if err != nil {
			h.respondImageError(c, err)
			return
		}
		h.images.Remove(product.ImageURL)
		product.ImageURL = imageURL
	}

	if err := h.productService.Update(product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Product updated successfully",
		"image_url": product.ImageURL,
	})
}

func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
		return
	}

	product, err := h.productService.GetByID(uint(productID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	if err := h.productService.Delete(product.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	h.images.Remove(product.ImageURL)

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func (h *AdminHandler) respondImageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, imagestore.ErrUnsupportedType):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Only image files are allowed!"})
	case errors.Is(err, imagestore.ErrFileTooLarge):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Image exceeds the 5MB size limit"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store image"})
	}
}
