// internal/domain/catalog/query.go
package catalog

import (
	"sort"
	"strings"
)

// PageSize is the fixed number of listings per catalog page.
const PageSize = 9

// Sentinel filter values meaning "no filtering on this dimension".
const (
	AllCategories = "All Categories"
	AllPlatforms  = "All"
	AllConditions = "All Conditions"
	AllPrices     = "All Prices"
)

// Price band labels. The boundaries are deliberately asymmetric: 20 belongs
// to the middle band, 40 to the lower of its neighbours, 60 likewise.
const (
	PriceUnder20 = "Under $20"
	Price20To40  = "$20 - $40"
	Price40To60  = "$40 - $60"
	PriceOver60  = "Over $60"
)

// Sort modes.
const (
	SortFeatured  = "featured" // insertion order, the default
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// QueryParams are the catalog filter/sort/page parameters. Zero values mean
// "no constraint" for every field; Page below 1 is treated as page 1.
type QueryParams struct {
	Search     string
	Category   string
	Platform   string
	Condition  string
	PriceRange string
	SortBy     string
	Page       int
}

// QueryResult is one page of the filtered, ordered catalog.
type QueryResult struct {
	Items      []Game `json:"items"`
	TotalCount int    `json:"totalCount"`
	TotalPages int    `json:"totalPages"`
	Page       int    `json:"page"`
}

// Query applies the filter, sort and pagination stages to items and returns
// the visible page. It never mutates its input.
func Query(items []Game, params QueryParams) QueryResult {
	filtered := make([]Game, 0, len(items))
	for _, game := range items {
		if matches(game, params) {
			filtered = append(filtered, game)
		}
	}

	applySort(filtered, params.SortBy)

	page := params.Page
	if page < 1 {
		page = 1
	}

	totalCount := len(filtered)
	totalPages := (totalCount + PageSize - 1) / PageSize

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > totalCount {
		start = totalCount
	}
	if end > totalCount {
		end = totalCount
	}

	return QueryResult{
		Items:      filtered[start:end],
		TotalCount: totalCount,
		TotalPages: totalPages,
		Page:       page,
	}
}

// matches applies the conjunctive filter stages to a single record.
func matches(game Game, params QueryParams) bool {
	if params.Search != "" {
		q := strings.ToLower(params.Search)
		if !strings.Contains(strings.ToLower(game.Title), q) &&
			!strings.Contains(strings.ToLower(game.Category), q) &&
			!strings.Contains(strings.ToLower(game.Seller), q) {
			return false
		}
	}

	if params.Category != "" && params.Category != AllCategories && game.Category != params.Category {
		return false
	}

	if params.Platform != "" && params.Platform != AllPlatforms && !hasPlatform(game, params.Platform) {
		return false
	}

	if params.Condition != "" && params.Condition != AllConditions && game.Condition != params.Condition {
		return false
	}

	if params.PriceRange != "" && params.PriceRange != AllPrices && !inPriceBand(game.Price, params.PriceRange) {
		return false
	}

	return true
}

func hasPlatform(game Game, platform string) bool {
	for _, p := range game.Platforms {
		if p == platform {
			return true
		}
	}
	return false
}

// inPriceBand reproduces the band boundaries exactly; do not normalize them.
func inPriceBand(price float64, band string) bool {
	switch band {
	case PriceUnder20:
		return price < 20
	case Price20To40:
		return price >= 20 && price <= 40
	case Price40To60:
		return price > 40 && price <= 60
	case PriceOver60:
		return price > 60
	default:
		return false
	}
}

func applySort(games []Game, sortBy string) {
	switch sortBy {
	case SortPriceLow:
		sort.SliceStable(games, func(i, j int) bool {
			return games[i].Price < games[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(games, func(i, j int) bool {
			return games[i].Price > games[j].Price
		})
	case SortRating:
		sort.SliceStable(games, func(i, j int) bool {
			return games[i].Rating > games[j].Rating
		})
	case SortNewest:
		sort.SliceStable(games, func(i, j int) bool {
			// When either record lacks a timestamp, newest falls back to the
			// time-derived id.
			if !games[i].HasCreatedAt() || !games[j].HasCreatedAt() {
				return games[i].ID > games[j].ID
			}
			return games[i].CreatedAt.After(games[j].CreatedAt)
		})
	default:
		// featured: keep insertion order
	}
}
