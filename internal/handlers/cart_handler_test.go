package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"sneakerhub/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCartFlow(t *testing.T) {
	env := setupEnv(t)
	user, token := env.createUser(t, "shopper@example.com", "user")

	shoe := env.createProduct(t, "Ultraboost 22", 180, 4)

	t.Run("add to cart", func(t *testing.T) {
		recorder := env.request(t, http.MethodPost, "/cart", gin.H{
			"product_id": shoe.ID,
			"quantity":   2,
		}, token)
		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Equal(t, "Product added to cart successfully", decodeBody(t, recorder)["message"])
	})

	t.Run("list joins product fields", func(t *testing.T) {
		recorder := env.request(t, http.MethodGet, "/cart", nil, token)
		assert.Equal(t, http.StatusOK, recorder.Code)

		var lines []map[string]interface{}
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &lines))
		assert.Len(t, lines, 1)
		assert.Equal(t, "Ultraboost 22", lines[0]["name"])
		assert.Equal(t, float64(2), lines[0]["quantity"])
	})

	t.Run("reject add beyond stock", func(t *testing.T) {
		recorder := env.request(t, http.MethodPost, "/cart", gin.H{
			"product_id": shoe.ID,
			"quantity":   5,
		}, token)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "Not enough stock available", decodeBody(t, recorder)["message"])
	})

	t.Run("reject unknown product", func(t *testing.T) {
		recorder := env.request(t, http.MethodPost, "/cart", gin.H{
			"product_id": 9999,
			"quantity":   1,
		}, token)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "Product not found", decodeBody(t, recorder)["message"])
	})

	t.Run("update quantity", func(t *testing.T) {
		recorder := env.request(t, http.MethodPut, fmt.Sprintf("/cart/%d", shoe.ID), gin.H{
			"quantity": 3,
		}, token)
		assert.Equal(t, http.StatusOK, recorder.Code)

		var item models.CartItem
		assert.NoError(t, env.db.Where("user_id = ? AND product_id = ?", user.ID, shoe.ID).First(&item).Error)
		assert.Equal(t, 3, item.Quantity)
	})

	t.Run("zero quantity removes the line", func(t *testing.T) {
		recorder := env.request(t, http.MethodPut, fmt.Sprintf("/cart/%d", shoe.ID), gin.H{
			"quantity": 0,
		}, token)
		assert.Equal(t, http.StatusOK, recorder.Code)

		var count int64
		env.db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&count)
		assert.Equal(t, int64(0), count)
	})
}

func TestOwnerScopedCart(t *testing.T) {
	env := setupEnv(t)
	user, token := env.createUser(t, "shopper@example.com", "user")
	other, _ := env.createUser(t, "other@example.com", "user")

	shoe := env.createProduct(t, "Old Skool", 65, 10)
	env.addToCart(t, user.ID, shoe.ID, 2)

	t.Run("owner sees items and total", func(t *testing.T) {
		recorder := env.request(t, http.MethodGet, fmt.Sprintf("/cart/%d", user.ID), nil, token)
		assert.Equal(t, http.StatusOK, recorder.Code)

		body := decodeBody(t, recorder)
		assert.Equal(t, 130.0, body["total"])
		assert.Len(t, body["items"], 1)
	})

	t.Run("another user's cart is off limits", func(t *testing.T) {
		recorder := env.request(t, http.MethodGet, fmt.Sprintf("/cart/%d", other.ID), nil, token)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}
