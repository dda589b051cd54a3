package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGame(id int64, title, category string, price float64) Game {
	return Game{
		ID:        id,
		Title:     title,
		Category:  category,
		Price:     price,
		Platforms: []string{"PC"},
		Condition: "Good",
		Seller:    "TestSeller",
	}
}

func TestQueryPriceBandBoundaries(t *testing.T) {
	games := []Game{
		testGame(1, "At 20", "Action", 20),
		testGame(2, "At 40", "Action", 40),
		testGame(3, "At 60", "Action", 60),
	}

	tests := []struct {
		band string
		want []string
	}{
		{PriceUnder20, nil},
		{Price20To40, []string{"At 20", "At 40"}},
		{Price40To60, []string{"At 60"}},
		{PriceOver60, nil},
	}

	for _, tt := range tests {
		t.Run(tt.band, func(t *testing.T) {
			result := Query(games, QueryParams{PriceRange: tt.band})
			var titles []string
			for _, g := range result.Items {
				titles = append(titles, g.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestQuerySentinelsMatchEverything(t *testing.T) {
	games := []Game{
		testGame(1, "A", "Action", 10),
		testGame(2, "B", "RPG", 30),
	}

	result := Query(games, QueryParams{
		Category:   AllCategories,
		Platform:   AllPlatforms,
		Condition:  AllConditions,
		PriceRange: AllPrices,
	})
	assert.Equal(t, 2, result.TotalCount)
}

func TestQuerySearchIsCaseInsensitive(t *testing.T) {
	games := []Game{
		testGame(1, "Elden Ring", "RPG", 40),
		testGame(2, "FIFA 23", "Sports", 13),
	}
	games[1].Seller = "RetroHaven"

	// Title match
	result := Query(games, QueryParams{Search: "elden"})
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Elden Ring", result.Items[0].Title)

	// Category match
	result = Query(games, QueryParams{Search: "rpg"})
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Elden Ring", result.Items[0].Title)

	// Seller match
	result = Query(games, QueryParams{Search: "retrohaven"})
	require.Len(t, result.Items, 1)
	assert.Equal(t, "FIFA 23", result.Items[0].Title)

	// Empty query matches everything
	result = Query(games, QueryParams{})
	assert.Equal(t, 2, result.TotalCount)
}

func TestQueryPlatformMembership(t *testing.T) {
	games := []Game{
		testGame(1, "A", "Action", 10),
		testGame(2, "B", "Action", 10),
	}
	games[0].Platforms = []string{"PS5", "PC"}
	games[1].Platforms = []string{"Switch"}

	result := Query(games, QueryParams{Platform: "PC"})
	require.Len(t, result.Items, 1)
	assert.Equal(t, "A", result.Items[0].Title)
}

func TestQueryCategoryExample(t *testing.T) {
	// Catalog of 10, three of which are RPG: totalCount 3, one page at size 9.
	games := make([]Game, 0, 10)
	for i := int64(1); i <= 10; i++ {
		category := "Action"
		if i <= 3 {
			category = "RPG"
		}
		games = append(games, testGame(i, "Game", category, 25))
	}

	result := Query(games, QueryParams{Category: "RPG", Platform: AllPlatforms})
	assert.Equal(t, 3, result.TotalCount)
	assert.Equal(t, 1, result.TotalPages)
	assert.Len(t, result.Items, 3)
}

func TestQuerySortModes(t *testing.T) {
	games := []Game{
		testGame(1, "Mid", "Action", 30),
		testGame(2, "Cheap", "Action", 10),
		testGame(3, "Pricey", "Action", 50),
	}
	games[0].Rating = 4.0
	games[1].Rating = 4.9
	games[2].Rating = 3.1

	titles := func(r QueryResult) []string {
		out := make([]string, len(r.Items))
		for i, g := range r.Items {
			out[i] = g.Title
		}
		return out
	}

	assert.Equal(t, []string{"Mid", "Cheap", "Pricey"}, titles(Query(games, QueryParams{SortBy: SortFeatured})))
	assert.Equal(t, []string{"Cheap", "Mid", "Pricey"}, titles(Query(games, QueryParams{SortBy: SortPriceLow})))
	assert.Equal(t, []string{"Pricey", "Mid", "Cheap"}, titles(Query(games, QueryParams{SortBy: SortPriceHigh})))
	assert.Equal(t, []string{"Cheap", "Mid", "Pricey"}, titles(Query(games, QueryParams{SortBy: SortRating})))
}

func TestQuerySortNewestFallsBackToID(t *testing.T) {
	older := testGame(100, "Older", "Action", 10)
	older.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := testGame(200, "Newer", "Action", 10)
	newer.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	noStamp := testGame(300, "NoStamp", "Action", 10)

	// Both sides stamped: createdAt wins.
	result := Query([]Game{older, newer}, QueryParams{SortBy: SortNewest})
	assert.Equal(t, "Newer", result.Items[0].Title)

	// One side unstamped: the higher id wins regardless of timestamps.
	result = Query([]Game{newer, noStamp}, QueryParams{SortBy: SortNewest})
	assert.Equal(t, "NoStamp", result.Items[0].Title)
}

func TestQueryPagination(t *testing.T) {
	games := make([]Game, 0, 12)
	for i := int64(1); i <= 12; i++ {
		games = append(games, testGame(i, "Game", "Action", 10))
	}

	page1 := Query(games, QueryParams{Page: 1})
	assert.Len(t, page1.Items, 9)
	assert.Equal(t, 12, page1.TotalCount)
	assert.Equal(t, 2, page1.TotalPages)

	page2 := Query(games, QueryParams{Page: 2})
	assert.Len(t, page2.Items, 3)
	assert.Equal(t, int64(10), page2.Items[0].ID)

	// Page below 1 is treated as page 1.
	assert.Equal(t, page1.Items, Query(games, QueryParams{Page: 0}).Items)

	// Page past the end yields an empty slice, not an error.
	assert.Empty(t, Query(games, QueryParams{Page: 5}).Items)
}

func TestQueryIsIdempotentAndPure(t *testing.T) {
	games := []Game{
		testGame(1, "B", "Action", 30),
		testGame(2, "A", "RPG", 10),
		testGame(3, "C", "Action", 20),
	}
	params := QueryParams{Category: "Action", SortBy: SortPriceLow, Page: 1}

	first := Query(games, params)
	second := Query(games, params)
	assert.Equal(t, first, second)

	// The input slice keeps its original order.
	assert.Equal(t, int64(1), games[0].ID)
	assert.Equal(t, int64(2), games[1].ID)
	assert.Equal(t, int64(3), games[2].ID)
}

func TestQueryFiltersAreConjunctive(t *testing.T) {
	match := testGame(1, "Dark Souls", "RPG", 25)
	match.Condition = "Like New"
	wrongBand := testGame(2, "Dark Souls II", "RPG", 75)
	wrongBand.Condition = "Like New"
	wrongCondition := testGame(3, "Dark Souls III", "RPG", 25)

	result := Query([]Game{match, wrongBand, wrongCondition}, QueryParams{
		Search:     "dark",
		Category:   "RPG",
		Condition:  "Like New",
		PriceRange: Price20To40,
	})
	require.Len(t, result.Items, 1)
	assert.Equal(t, int64(1), result.Items[0].ID)
}

func TestSuggestedDiscount(t *testing.T) {
	assert.Equal(t, 33, SuggestedDiscount(39.99, 59.99))
	assert.Equal(t, 50, SuggestedDiscount(30, 60))
	assert.Equal(t, 0, SuggestedDiscount(60, 30))
	assert.Equal(t, 0, SuggestedDiscount(0, 60))
	assert.Equal(t, 0, SuggestedDiscount(30, 30))
}
