package services

import "pet-boutique/internal/models"

// seedProducts is the fixed starter catalog: 12 products with uniform
// placeholder rating, popularity and features.
func seedProducts() []models.Product {
	base := []struct {
		title    string
		price    float64
		category string
		image    string
	}{
		{"Premium Dog Harness", 999, "Dogs", "https://images.unsplash.com/photo-1548199973-03cce0bbc87b"},
		{"Anti-Slip Dog Boots", 799, "Dogs", "https://images.unsplash.com/photo-1517849845537-4d257902454a"},
		{"Adjustable Pet Leash", 499, "Dogs", "https://images.unsplash.com/photo-1543466835-00a7907e9de1"},
		{"Plush Squeaky Dog Toy", 349, "Dogs", "https://images.unsplash.com/photo-1558944351-c0a8f8f1a3c4"},
		{"Stainless Steel Feeding Bowl", 399, "Accessories", "https://images.unsplash.com/photo-1583336663277-620dc1996580"},
		{"Anti-Tick Dog Shampoo", 299, "Dogs", "https://images.unsplash.com/photo-1610725666532-ef9f2ff1bf4c"},
		{"Parrot Perch Stand", 699, "Birds", "https://images.unsplash.com/photo-1558287324-183109ad1f83"},
		{"Bird Water Dispenser", 249, "Birds", "https://images.unsplash.com/photo-1498534928137-473e2843ebd7"},
		{"Bird Cage Hanging Toys", 399, "Birds", "https://images.unsplash.com/photo-1518791841217-8f162f1e1131"},
		{"Grooming Brush", 449, "Accessories", "https://images.unsplash.com/photo-1508214751196-bcfd4ca60f91"},
		{"Pet Nail Trimmer", 299, "Accessories", "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b"},
		{"Soft Pet Blanket", 599, "Accessories", "https://images.unsplash.com/photo-1517841905240-472988babdf9"},
	}

	products := make([]models.Product, 0, len(base))
	for _, b := range base {
		products = append(products, models.Product{
			Title:      b.title,
			Price:      b.price,
			Category:   b.category,
			Image:      b.image,
			Rating:     4.5,
			Popularity: 100,
			Features:   []string{"Durable", "Pet-safe", "Easy to clean"},
		})
	}
	return products
}
