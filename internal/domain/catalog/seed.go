// internal/domain/catalog/seed.go
package catalog

// DefaultGames returns the bundled starter catalog used to seed an empty
// store. Seed timestamps are assigned at seeding time, not here.
func DefaultGames() []Game {
	return []Game{
		{
			ID:            1,
			Title:         "Elden Ring",
			Description:   "Open-world action RPG set in the Lands Between. Complete with map insert and original case.",
			Price:         39.99,
			OriginalPrice: 59.99,
			Discount:      33,
			Category:      "RPG",
			Platforms:     []string{"PS5", "Xbox", "PC"},
			Rating:        4.8,
			ReviewCount:   1243,
			Condition:     "Like New",
			Seller:        "RetroHaven",
		},
		{
			ID:            2,
			Title:         "God of War Ragnarök",
			Description:   "Kratos and Atreus journey through the Nine Realms. Disc only, tested and working.",
			Price:         34.50,
			OriginalPrice: 69.99,
			Discount:      51,
			Category:      "Action",
			Platforms:     []string{"PS5", "PS4"},
			Rating:        4.9,
			ReviewCount:   987,
			Condition:     "Excellent",
			Seller:        "GameSwap Pro",
		},
		{
			ID:            3,
			Title:         "The Legend of Zelda: Tears of the Kingdom",
			Description:   "Explore Hyrule's skies and depths. Cartridge in original case with inserts.",
			Price:         44.99,
			OriginalPrice: 59.99,
			Discount:      25,
			Category:      "Adventure",
			Platforms:     []string{"Switch"},
			Rating:        4.9,
			ReviewCount:   1876,
			Condition:     "Like New",
			Seller:        "PixelTraders",
		},
		{
			ID:            4,
			Title:         "FIFA 23",
			Description:   "The final FIFA-branded entry. Minor scuffs on case, disc in great shape.",
			Price:         12.99,
			OriginalPrice: 69.99,
			Discount:      81,
			Category:      "Sports",
			Platforms:     []string{"PS5", "PS4", "Xbox", "PC"},
			Rating:        4.1,
			ReviewCount:   654,
			Condition:     "Good",
			Seller:        "BudgetGames",
		},
		{
			ID:            5,
			Title:         "Forza Horizon 5",
			Description:   "Open-world racing across Mexico. Code-in-box redeemed copy not accepted; physical disc included.",
			Price:         27.00,
			OriginalPrice: 59.99,
			Discount:      55,
			Category:      "Racing",
			Platforms:     []string{"Xbox", "PC"},
			Rating:        4.7,
			ReviewCount:   812,
			Condition:     "Very Good",
			Seller:        "DriveTime Games",
		},
		{
			ID:            6,
			Title:         "Resident Evil 4 Remake",
			Description:   "Survival horror reimagined. Includes original case and cover art.",
			Price:         38.00,
			OriginalPrice: 59.99,
			Discount:      37,
			Category:      "Horror",
			Platforms:     []string{"PS5", "PS4", "Xbox", "PC"},
			Rating:        4.8,
			ReviewCount:   1102,
			Condition:     "Excellent",
			Seller:        "RetroHaven",
		},
		{
			ID:            7,
			Title:         "Tetris Effect: Connected",
			Description:   "The classic puzzler with a synesthetic twist. Complete in box.",
			Price:         18.50,
			OriginalPrice: 39.99,
			Discount:      54,
			Category:      "Puzzle",
			Platforms:     []string{"Switch", "PS4", "Xbox", "PC"},
			Rating:        4.6,
			ReviewCount:   231,
			Condition:     "Very Good",
			Seller:        "PixelTraders",
		},
		{
			ID:            8,
			Title:         "Civilization VI",
			Description:   "Turn-based strategy classic. Cartridge only, no case.",
			Price:         15.99,
			OriginalPrice: 59.99,
			Discount:      73,
			Category:      "Strategy",
			Platforms:     []string{"Switch", "PC"},
			Rating:        4.5,
			ReviewCount:   498,
			Condition:     "Good",
			Seller:        "BudgetGames",
		},
		{
			ID:            9,
			Title:         "Final Fantasy XVI",
			Description:   "Clive's revenge across Valisthea. Like new, played once.",
			Price:         42.00,
			OriginalPrice: 69.99,
			Discount:      40,
			Category:      "RPG",
			Platforms:     []string{"PS5"},
			Rating:        4.4,
			ReviewCount:   743,
			Condition:     "Like New",
			Seller:        "GameSwap Pro",
		},
		{
			ID:            10,
			Title:         "Hades",
			Description:   "Roguelike dungeon crawler from Supergiant. Physical Switch release with art booklet.",
			Price:         19.99,
			OriginalPrice: 29.99,
			Discount:      33,
			Category:      "Action",
			Platforms:     []string{"Switch", "PS5", "Xbox", "PC"},
			Rating:        4.9,
			ReviewCount:   1567,
			Condition:     "Excellent",
			Seller:        "IndieShelf",
		},
		{
			ID:            11,
			Title:         "Gran Turismo 7",
			Description:   "The real driving simulator. Disc and case, small crack on hinge.",
			Price:         29.99,
			OriginalPrice: 69.99,
			Discount:      57,
			Category:      "Racing",
			Platforms:     []string{"PS5", "PS4"},
			Rating:        4.3,
			ReviewCount:   389,
			Condition:     "Good",
			Seller:        "DriveTime Games",
		},
		{
			ID:            12,
			Title:         "Baldur's Gate 3",
			Description:   "The acclaimed D&D RPG, deluxe physical edition with maps and stickers.",
			Price:         59.99,
			OriginalPrice: 79.99,
			Discount:      25,
			Category:      "RPG",
			Platforms:     []string{"PS5", "PC"},
			Rating:        5.0,
			ReviewCount:   2301,
			Condition:     "Like New",
			Seller:        "IndieShelf",
		},
	}
}
