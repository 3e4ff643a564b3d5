package handlers

import (
	"errors"
	"net/http"

	"sneakerhub/internal/middleware"
	"sneakerhub/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProfileHandler struct {
	userService  services.UserService
	orderService services.OrderService
	cartService  services.CartService
}

func NewProfileHandler(userService services.UserService, orderService services.OrderService, cartService services.CartService) *ProfileHandler {
	return &ProfileHandler{userService: userService, orderService: orderService, cartService: cartService}
}

func (h *ProfileHandler) Current(c *gin.Context) {
	user, err := h.userService.GetByID(middleware.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get user information"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Current user information retrieved successfully",
		"user":    user,
	})
}

func (h *ProfileHandler) Get(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	user, err := h.userService.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	stats, err := h.orderService.StatsForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"fname":      user.FirstName,
		"lname":      user.LastName,
		"email":      user.Email,
		"phone":      user.Phone,
		"role":       user.Role,
		"created_at": user.CreatedAt,
		"orderStats": stats,
	})
}

func (h *ProfileHandler) Update(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var req struct {
		FirstName string `json:"fname"`
		LastName  string `json:"lname"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	current, err := h.userService.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update profile"})
		return
	}
	previous := *current

	if req.FirstName == "" || req.LastName == "" || req.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":     "First name, last name, and phone are required.",
			"currentInfo": previous,
		})
		return
	}

	updated, err := h.userService.UpdateProfile(userID, req.FirstName, req.LastName, req.Email, req.Phone)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message":     "Email is already in use.",
				"currentInfo": previous,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Profile updated successfully",
		"previousInfo": previous,
		"updatedInfo":  updated,
	})
}

func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	err := h.userService.ChangePassword(middleware.CurrentUserID(c), req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Current password is incorrect."})
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

// Orders serves the owner-scoped order history route.
func (h *ProfileHandler) Orders(c *gin.Context) {
	history, err := h.orderService.HistoryByUser(middleware.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, history)
}

// Cart serves the owner-scoped cart route.
func (h *ProfileHandler) Cart(c *gin.Context) {
	lines, total, err := h.cartService.GetCart(middleware.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items": lines,
		"total": total,
	})
}
