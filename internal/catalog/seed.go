package catalog

import "github.com/fjod/storefront/internal/domain"

// SeedData returns the built-in demo inventory, used to populate a
// fresh sqlite catalog.
func SeedData() ([]domain.Product, []domain.Review) {
	return seedProducts, seedReviews
}

// Demo inventory for running the store without a database.
var seedProducts = []domain.Product{
	{
		ID:            "1",
		Title:         "Wireless Noise-Cancelling Headphones",
		Description:   "Premium over-ear headphones with active noise cancellation, 30-hour battery life, and superior sound quality.",
		Price:         299.99,
		DiscountPrice: 249.99,
		Category:      "Electronics",
		Rating:        4.8,
		ReviewCount:   1234,
		Stock:         45,
		Brand:         "AudioTech",
		Tags:          []string{"wireless", "noise-cancelling", "bluetooth"},
	},
	{
		ID:          "2",
		Title:       "Smart Fitness Watch Pro",
		Description: "Advanced fitness tracker with heart rate monitoring, GPS, sleep tracking, and 100+ workout modes.",
		Price:       399.99,
		Category:    "Wearables",
		Rating:      4.6,
		ReviewCount: 892,
		Stock:       67,
		Brand:       "FitTech",
		Tags:        []string{"fitness", "smartwatch", "gps"},
	},
	{
		ID:            "3",
		Title:         "Minimalist Leather Backpack",
		Description:   "Handcrafted genuine leather backpack with laptop compartment and ergonomic design.",
		Price:         189.99,
		DiscountPrice: 159.99,
		Category:      "Accessories",
		Rating:        4.9,
		ReviewCount:   567,
		Stock:         23,
		Brand:         "LeatherCraft",
		Tags:          []string{"leather", "backpack", "travel"},
	},
	{
		ID:          "4",
		Title:       "Ultra HD 4K Monitor 32\"",
		Description: "Professional-grade 4K monitor with HDR support, 99% sRGB color accuracy, and USB-C connectivity.",
		Price:       649.99,
		Category:    "Electronics",
		Rating:      4.7,
		ReviewCount: 445,
		Stock:       18,
		Brand:       "ViewPro",
		Tags:        []string{"monitor", "4k", "hdr"},
	},
	{
		ID:            "5",
		Title:         "Mechanical Gaming Keyboard",
		Description:   "RGB backlit mechanical keyboard with hot-swappable switches and aluminum frame.",
		Price:         149.99,
		DiscountPrice: 119.99,
		Category:      "Electronics",
		Rating:        4.5,
		ReviewCount:   1089,
		Stock:         92,
		Brand:         "KeyMaster",
		Tags:          []string{"keyboard", "mechanical", "gaming"},
	},
	{
		ID:          "6",
		Title:       "Insulated Travel Mug",
		Description: "Double-wall vacuum insulated mug keeping drinks hot for 12 hours or cold for 24.",
		Price:       34.99,
		Category:    "Accessories",
		Rating:      4.4,
		ReviewCount: 2310,
		Stock:       150,
		Brand:       "ThermoWare",
		Tags:        []string{"mug", "travel", "insulated"},
	},
	{
		ID:            "7",
		Title:         "Running Shoes CloudStride",
		Description:   "Lightweight running shoes with responsive foam cushioning and breathable mesh upper.",
		Price:         129.99,
		DiscountPrice: 99.99,
		Category:      "Footwear",
		Rating:        4.6,
		ReviewCount:   781,
		Stock:         54,
		Brand:         "StrideFit",
		Tags:          []string{"running", "shoes", "sport"},
	},
	{
		ID:          "8",
		Title:       "Portable Bluetooth Speaker",
		Description: "Waterproof portable speaker with 360° sound, 20-hour battery and built-in microphone.",
		Price:       79.99,
		Category:    "Electronics",
		Rating:      4.3,
		ReviewCount: 1652,
		Stock:       0,
		Brand:       "AudioTech",
		Tags:        []string{"speaker", "bluetooth", "waterproof"},
	},
}

var seedReviews = []domain.Review{
	{ID: "r1", ProductID: "1", UserName: "Sarah M.", Rating: 5, Comment: "Best headphones I've ever owned. The noise cancellation is incredible.", Date: "2026-07-15", Helpful: 45},
	{ID: "r2", ProductID: "1", UserName: "Mike T.", Rating: 4, Comment: "Great sound quality, slightly tight fit after long sessions.", Date: "2026-06-28", Helpful: 23},
	{ID: "r3", ProductID: "2", UserName: "Jessica L.", Rating: 5, Comment: "Accurate GPS and the battery really lasts a week.", Date: "2026-08-02", Helpful: 31},
	{ID: "r4", ProductID: "3", UserName: "David K.", Rating: 5, Comment: "Beautiful craftsmanship, fits a 16 inch laptop with room to spare.", Date: "2026-05-19", Helpful: 18},
	{ID: "r5", ProductID: "5", UserName: "Alex P.", Rating: 4, Comment: "Switches feel great, software could be better.", Date: "2026-07-30", Helpful: 12},
}
