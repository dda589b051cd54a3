// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/gamevault-backend/internal/config"
	"github.com/your-org/gamevault-backend/internal/domain/catalog"
	"github.com/your-org/gamevault-backend/internal/infrastructure/storage"
	"github.com/your-org/gamevault-backend/internal/interfaces/http/middleware"
)

// CatalogHandler handles game listing endpoints
type CatalogHandler struct {
	repo   *catalog.Repository
	config *config.Config
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(store storage.Store, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{
		repo:   catalog.NewRepository(store),
		config: cfg,
	}
}

// GameListRequest represents catalog query parameters. Absent page defaults
// to 1, which is how a filter change resets pagination.
type GameListRequest struct {
	Search     string `form:"search"`
	Category   string `form:"category"`
	Platform   string `form:"platform"`
	Condition  string `form:"condition"`
	PriceRange string `form:"price_range"`
	SortBy     string `form:"sort"`
	Page       int    `form:"page,default=1"`
}

// CreateGameRequest represents a new listing
type CreateGameRequest struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" binding:"required"`
	OriginalPrice float64  `json:"originalPrice"`
	Discount      int      `json:"discount"`
	Image         string   `json:"image"`
	Category      string   `json:"category" binding:"required"`
	Platforms     []string `json:"platforms" binding:"required,min=1"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	Condition     string   `json:"condition" binding:"required"`
	Seller        string   `json:"seller"` // defaults to the authenticated username
}

// GetGames handles GET /games
func (h *CatalogHandler) GetGames(c *gin.Context) {
	var req GameListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	games, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return
	}

	result := catalog.Query(games, catalog.QueryParams{
		Search:     req.Search,
		Category:   req.Category,
		Platform:   req.Platform,
		Condition:  req.Condition,
		PriceRange: req.PriceRange,
		SortBy:     req.SortBy,
		Page:       req.Page,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Games retrieved successfully",
		"data":    result,
	})
}

// GetGame handles GET /games/:id
func (h *CatalogHandler) GetGame(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		return
	}

	games, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return
	}

	for _, game := range games {
		if game.ID == id {
			c.JSON(http.StatusOK, gin.H{
				"message": "Game retrieved successfully",
				"data":    game,
			})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
}

// GetFilters handles GET /games/filters
func (h *CatalogHandler) GetFilters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Filters retrieved successfully",
		"data": gin.H{
			"categories":  catalog.Categories,
			"platforms":   catalog.Platforms,
			"conditions":  catalog.Conditions,
			"priceRanges": catalog.PriceRanges,
			"sentinels": gin.H{
				"category":   catalog.AllCategories,
				"platform":   catalog.AllPlatforms,
				"condition":  catalog.AllConditions,
				"priceRange": catalog.AllPrices,
			},
		},
	})
}

// SuggestDiscount handles GET /games/discount-suggestion. It backs the
// listing form's price-blur helper; the stored discount stays whatever the
// seller submits.
func (h *CatalogHandler) SuggestDiscount(c *gin.Context) {
	price, err1 := strconv.ParseFloat(c.Query("price"), 64)
	originalPrice, err2 := strconv.ParseFloat(c.Query("original_price"), 64)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price and original_price are required numbers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Discount suggestion calculated",
		"data": gin.H{
			"discount": catalog.SuggestedDiscount(price, originalPrice),
		},
	})
}

// CreateGame handles POST /games. A listing without an explicit seller is
// attributed to the authenticated user.
func (h *CatalogHandler) CreateGame(c *gin.Context) {
	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if req.Seller == "" {
		if username, ok := middleware.GetUsernameFromContext(c); ok {
			req.Seller = username
		}
	}
	if req.Seller == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Seller is required"})
		return
	}

	game, err := h.repo.Add(c.Request.Context(), catalog.Game{
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Discount:      req.Discount,
		Image:         req.Image,
		Category:      req.Category,
		Platforms:     req.Platforms,
		Rating:        req.Rating,
		ReviewCount:   req.ReviewCount,
		Condition:     req.Condition,
		Seller:        req.Seller,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create listing"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Listing created successfully",
		"data":    game,
	})
}

// UpdateGame handles PUT /games/:id
func (h *CatalogHandler) UpdateGame(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		return
	}

	var req catalog.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	game, err := h.repo.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update listing"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Listing updated successfully",
		"data":    game,
	})
}

// DeleteGame handles DELETE /games/:id
func (h *CatalogHandler) DeleteGame(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		return
	}

	remaining, err := h.repo.Remove(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete listing"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Listing deleted successfully",
		"data":    remaining,
	})
}

func parseGameID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return 0, false
	}
	return id, true
}
