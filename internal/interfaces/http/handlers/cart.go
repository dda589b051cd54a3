// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/gamevault-backend/internal/config"
	"github.com/your-org/gamevault-backend/internal/domain/cart"
	"github.com/your-org/gamevault-backend/internal/domain/catalog"
	"github.com/your-org/gamevault-backend/internal/infrastructure/storage"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
	repo        *catalog.Repository
	config      *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(store storage.Store, cfg *config.Config) *CartHandler {
	return &CartHandler{
		cartService: cart.NewService(store),
		repo:        catalog.NewRepository(store),
		config:      cfg,
	}
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	GameID int64 `json:"gameId" binding:"required"`
}

// UpdateCartItemRequest represents a quantity change. The pointer lets an
// explicit zero through validation; zero removes the line.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	lines, err := h.cartService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cart"})
		return
	}

	h.respondWithCart(c, "Cart retrieved successfully", lines)
}

// AddToCart handles POST /cart/items. The catalog record is snapshotted into
// the line as it stands right now; later catalog edits won't touch it.
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	games, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return
	}

	var game *catalog.Game
	for i := range games {
		if games[i].ID == req.GameID {
			game = &games[i]
			break
		}
	}
	if game == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	lines, err := h.cartService.Add(c.Request.Context(), *game)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
		return
	}

	h.respondWithCart(c, "Item added to cart successfully", lines)
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	lines, err := h.cartService.SetQuantity(c.Request.Context(), id, *req.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
		return
	}

	h.respondWithCart(c, "Cart item updated successfully", lines)
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		return
	}

	lines, err := h.cartService.Remove(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
		return
	}

	h.respondWithCart(c, "Cart item removed successfully", lines)
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.cartService.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}

// GetCartCount handles GET /cart/count, backing the cart badge.
func (h *CartHandler) GetCartCount(c *gin.Context) {
	count, err := h.cartService.ItemCount(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count cart items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data":    gin.H{"count": count},
	})
}

func (h *CartHandler) respondWithCart(c *gin.Context, message string, lines []cart.Line) {
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data": gin.H{
			"items":  lines,
			"totals": cart.CalculateTotals(lines),
		},
	})
}
