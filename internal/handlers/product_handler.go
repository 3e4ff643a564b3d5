package handlers

import (
	"net/http"

	"sneakerhub/internal/services"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List is the public storefront catalog: only products with stock.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.ListInStock()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}
