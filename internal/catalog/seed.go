package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/storebill/storebill/internal/models"
)

// SectionUserDefined is the section that holds user-added custom items.
const SectionUserDefined = "user-defined-items"

// DefaultSections returns the built-in section list.
func DefaultSections() []models.Section {
	return []models.Section{
		{ID: "cool-drinks-juices", Name: "Cool Drinks & Juices"},
		{ID: "chips-chana-chore", Name: "Chips & Chana Chore"},
		{ID: "toffees-bubble-gums", Name: "Toffees & Bubble Gums"},
		{ID: "biscuits", Name: "Biscuits"},
		{ID: "garments", Name: "Garments"},
		{ID: "stationaries", Name: "Stationaries"},
		{ID: SectionUserDefined, Name: "User-Defined Items"},
	}
}

// DefaultProducts returns the built-in seed catalog, used when the bridge
// holds no persisted catalog (first run) or an unparseable one.
func DefaultProducts() []models.Product {
	seed := func(id, name string, price int64, imageTag, sectionID string) models.Product {
		return models.Product{
			ID:        id,
			Name:      name,
			Price:     decimal.NewFromInt(price),
			ImageURL:  "https://picsum.photos/100/100?random=" + imageTag,
			SectionID: sectionID,
		}
	}
	return []models.Product{
		// Cool Drinks & Juices
		seed("coke-300ml", "Coke 300ml", 20, "1", "cool-drinks-juices"),
		seed("sprite-300ml", "Sprite 300ml", 20, "2", "cool-drinks-juices"),
		seed("fanta-300ml", "Fanta 300ml", 20, "3", "cool-drinks-juices"),
		seed("mango-juice-200ml", "Mango Juice 200ml", 30, "4", "cool-drinks-juices"),
		seed("orange-juice-200ml", "Orange Juice 200ml", 30, "5", "cool-drinks-juices"),
		seed("apple-juice-200ml", "Apple Juice 200ml", 30, "6", "cool-drinks-juices"),
		seed("water-bottle-500ml", "Water Bottle 500ml", 15, "7", "cool-drinks-juices"),

		// Chips & Chana Chore
		seed("lays-classic", "Lays Classic", 10, "8", "chips-chana-chore"),
		seed("lays-masala", "Lays Masala", 10, "9", "chips-chana-chore"),
		seed("kurkure-masala", "Kurkure Masala", 10, "10", "chips-chana-chore"),
		seed("cheetos-crunchy", "Cheetos Crunchy", 20, "11", "chips-chana-chore"),
		seed("chana-dal", "Chana Dal", 15, "12", "chips-chana-chore"),
		seed("mixture-namkeen", "Mixture Namkeen", 25, "13", "chips-chana-chore"),

		// Toffees & Bubble Gums
		seed("eclairs-pack", "Eclairs Pack", 50, "14", "toffees-bubble-gums"),
		seed("melody-chocolate", "Melody Chocolate", 5, "15", "toffees-bubble-gums"),
		seed("pulse-candy", "Pulse Candy", 5, "16", "toffees-bubble-gums"),
		seed("boomer-gum", "Boomer Gum", 5, "17", "toffees-bubble-gums"),
		seed("center-fresh-gum", "Center Fresh Gum", 10, "18", "toffees-bubble-gums"),

		// Biscuits
		seed("oreo-cream", "Oreo Cream Biscuit", 30, "19", "biscuits"),
		seed("parle-g", "Parle-G Biscuit", 10, "20", "biscuits"),
		seed("britannia-good-day", "Britannia Good Day", 25, "21", "biscuits"),
		seed("digestive-biscuits", "Digestive Biscuits", 70, "22", "biscuits"),
		seed("jim-jam", "Jim Jam", 30, "23", "biscuits"),

		// Garments
		seed("men-tshirt-m", "Men's T-Shirt (M)", 350, "24", "garments"),
		seed("women-top-s", "Women's Top (S)", 400, "25", "garments"),
		seed("kids-jeans-5y", "Kids Jeans (5Y)", 500, "26", "garments"),
		seed("socks-pair", "Socks (Pair)", 80, "27", "garments"),
		seed("handkerchief", "Handkerchief", 20, "28", "garments"),

		// Stationaries
		seed("ball-pen-blue", "Ball Pen (Blue)", 10, "29", "stationaries"),
		seed("notebook-a4", "Notebook A4", 60, "30", "stationaries"),
		seed("pencil-pack", "Pencil Pack (5)", 30, "31", "stationaries"),
		seed("eraser", "Eraser", 5, "32", "stationaries"),
		seed("sharpener", "Sharpener", 5, "33", "stationaries"),
		seed("geometry-box", "Geometry Box", 120, "34", "stationaries"),
	}
}
