package configs

import (
	"fmt"

	"github.com/cyber3201/foodApp/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seed lookup/status rows.
func SeedLookups() error {
	db := DB()

	for _, name := range []string{
		entity.OrderReceived, entity.OrderPreparing, entity.OrderOnTheWay, entity.OrderDelivered,
	} {
		if err := db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: name}).Error; err != nil {
			return err
		}
	}

	for _, name := range []string{
		entity.PaymentIdle, entity.PaymentProcessing, entity.PaymentSucceeded,
	} {
		if err := db.FirstOrCreate(&entity.PaymentStatus{}, entity.PaymentStatus{StatusName: name}).Error; err != nil {
			return err
		}
	}

	return nil
}

// Legacy icon names from the mobile app, resolved into a closed tag set.
// Anything unmapped falls back to the generic utensils tag.
var categoryIconTags = map[string]string{
	"CookingPot": "cooking-pot",
	"Disc":       "disc",
	"Flame":      "flame",
	"PieChart":   "pie-chart",
	"Sandwich":   "sandwich",
	"Croissant":  "croissant",
	"GlassWater": "glass-water",
}

func iconTag(name string) string {
	if t, ok := categoryIconTags[name]; ok {
		return t
	}
	return "utensils"
}

var restaurantNames = []string{
	"Dar Tajine", "Marrakech Delight", "Snack Amine", "Ocean Délices", "Green Kitchen",
	"Fes Heritage", "Port Side", "Chez Fatima", "Royal Palace", "Atlas Taste",
	"Sweet Atlas", "Berber Tent", "King Table", "Souss Delights", "Dairy Fresh",
	"Medina Soul", "Safi Catch", "Modern Morroco", "Le Grill Marrakech", "Butcher Block",
	"Traditional Grill", "Healthy Grill", "Bistro 212", "Panini Press", "Syrian Corner",
	"Tacos King", "Burger House", "Breakfast Club", "Patisserie Royale", "Café Maure",
	"Mama Kitchen", "Healthy Stop", "Juice Bar", "Store",
}

type categorySeed struct {
	id          uint
	name        string
	description string
	icon        string
}

var categorySeeds = []categorySeed{
	{1, "Tagine", "Traditional clay pot dishes", "CookingPot"},
	{2, "Couscous", "Steamed semolina dishes", "Disc"},
	{3, "Grills", "Charcoal grilled meats", "Flame"},
	{4, "Pastilla", "Savory pies", "PieChart"},
	{5, "Sandwich", "Quick bites", "Sandwich"},
	{6, "Sweets", "Desserts and Tea", "Croissant"},
	{7, "Drinks", "Beverages", "GlassWater"},
}

type productSeed struct {
	id          uint
	restaurant  string
	categoryID  uint
	name        string
	description string
	price       string
	image       string
	rating      float64
	prepTime    string
	calories    int
	ingredients []string
}

var productSeeds = []productSeed{
	// Tagines
	{1, "Dar Tajine", 1, "Royal Chicken Tagine",
		"Slow-cooked chicken with preserved lemons and olives in a traditional clay pot.",
		"75.00", "https://images.unsplash.com/photo-1511690656952-34342d5c2895?q=80&w=800",
		4.9, "35-45 min", 750, []string{"Chicken", "Preserved Lemons", "Green Olives", "Saffron", "Onions"}},
	{2, "Marrakech Delight", 1, "Beef & Prune Tagine",
		"Tender beef shank cooked with sweet prunes and roasted almonds.",
		"85.00", "https://images.unsplash.com/photo-1541518763669-27fef04b14ea?q=80&w=800",
		4.8, "45-55 min", 850, []string{"Beef", "Prunes", "Almonds", "Cinnamon", "Honey"}},
	{3, "Dar Tajine", 1, "Lamb & Artichoke Tagine",
		"Seasonal tagine with tender lamb and fresh artichoke hearts and peas.",
		"90.00", "https://images.unsplash.com/photo-1580554530778-0c2d338f0d9c?q=80&w=800",
		4.7, "40-50 min", 800, []string{"Lamb", "Artichoke", "Peas", "Ginger", "Turmeric"}},
	{4, "Snack Amine", 1, "Kefta & Egg Tagine",
		"Meatballs in rich tomato sauce topped with poached eggs.",
		"60.00", "https://images.unsplash.com/photo-1590412200988-a436970781fa?q=80&w=800",
		4.6, "25-30 min", 650, []string{"Minced Beef", "Tomato Sauce", "Eggs", "Cumin", "Parsley"}},
	{5, "Ocean Délices", 1, "Fish Tagine (Hout)",
		"Fresh white fish marinated in chermoula cooked with carrots and peppers.",
		"80.00", "https://images.unsplash.com/photo-1534939561126-855b8675edd7?q=80&w=800",
		4.8, "30-40 min", 600, []string{"White Fish", "Carrots", "Bell Peppers", "Chermoula", "Tomato"}},
	{6, "Green Kitchen", 1, "Vegetable Tagine",
		"A medley of seasonal vegetables slow-cooked with aromatic spices.",
		"50.00", "https://images.unsplash.com/photo-1604382355076-af4b0eb60143?q=80&w=800",
		4.5, "30-40 min", 450, []string{"Carrots", "Potatoes", "Zucchini", "Turnips", "Olive Oil"}},
	{7, "Fes Heritage", 1, "Rabbit Tagine",
		"Delicate rabbit meat cooked with raisins and caramelized onions.",
		"95.00", "https://images.unsplash.com/photo-1560788939-2d2c770459c3?q=80&w=800",
		4.7, "50-60 min", 700, []string{"Rabbit", "Raisins", "Onions", "Cinnamon", "Butter"}},
	// Couscous
	{13, "Chez Fatima", 2, "Seven Vegetable Couscous",
		"Fluffy steamed semolina topped with tender lamb and seven garden vegetables.",
		"85.00", "https://images.unsplash.com/photo-1585937421612-70a008356f36?q=80&w=800",
		4.8, "40-50 min", 850, []string{"Semolina", "Lamb", "Carrots", "Turnips", "Zucchini", "Pumpkin", "Chickpeas"}},
	{14, "Sweet Atlas", 2, "Couscous Tfaya",
		"Couscous topped with caramelized onions, raisins, and cinnamon.",
		"80.00", "https://images.unsplash.com/photo-1627308595229-7830a5c91f9f?q=80&w=800",
		4.9, "45 min", 900, []string{"Semolina", "Chicken", "Onions", "Raisins", "Cinnamon", "Sugar"}},
	// Grills
	{25, "Le Grill Marrakech", 3, "Mixed Grill Platter",
		"Assortment of kefta, lamb chops, and chicken skewers.",
		"110.00", "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?q=80&w=800",
		4.7, "25-35 min", 950, []string{"Minced Meat", "Lamb Chops", "Chicken Breast", "Spices"}},
	{26, "Le Grill Marrakech", 3, "Lamb Chops",
		"Juicy marinated lamb chops grilled over charcoal.",
		"95.00", "https://images.unsplash.com/photo-1544025162-d76690b67f61?q=80&w=800",
		4.8, "20 min", 800, []string{"Lamb Chops", "Cumin", "Salt", "Paprika"}},
	// Pastilla
	{37, "Ocean Délices", 4, "Seafood Pastilla",
		"Crispy phyllo dough stuffed with a mix of fresh seafood and vermicelli.",
		"90.00", "https://images.unsplash.com/photo-1601004890684-d8cbf643f5f2?q=80&w=800",
		5.0, "45-55 min", 900, []string{"Phyllo Dough", "Shrimp", "Calamari", "White Fish", "Vermicelli"}},
	{38, "Fes Heritage", 4, "Chicken Almond Pastilla",
		"Classic sweet and savory pie with chicken, almonds, and sugar.",
		"85.00", "https://images.unsplash.com/photo-1598515214211-89d3c73ae83b?q=80&w=800",
		4.9, "45 min", 950, []string{"Phyllo Dough", "Chicken", "Almonds", "Sugar", "Cinnamon", "Eggs"}},
	// Sandwich
	{49, "Snack Amine", 5, "Moroccan Sandwich",
		"Baguette filled with tuna, potatoes, olives, and harissa sauce.",
		"35.00", "https://images.unsplash.com/photo-1621800043295-a73fe2f76e2c?q=80&w=800",
		4.6, "15-20 min", 550, []string{"Baguette", "Tuna", "Potato", "Olives", "Harissa"}},
	{50, "Snack Amine", 5, "Bocadillo",
		"Street food classic with marinated chicken, rice, and veggies in bread.",
		"30.00", "https://images.unsplash.com/photo-1553909489-cd47e3b4430f?q=80&w=800",
		4.5, "10 min", 600, []string{"Baguette", "Chicken", "Rice", "Tomato", "Mayo"}},
	// Sweets
	{61, "Patisserie Royale", 6, "Honey Chebakia",
		"Traditional sesame cookies coated in honey and orange blossom water.",
		"30.00", "https://images.unsplash.com/photo-1589119908995-c6837fa14848?q=80&w=800",
		4.9, "10-15 min", 400, []string{"Flour", "Sesame Seeds", "Honey", "Orange Blossom Water"}},
	{62, "Café Maure", 6, "Moroccan Mint Tea Pot",
		"A full pot of traditional gunpowder green tea with fresh mint.",
		"20.00", "https://images.unsplash.com/photo-1576092762791-dd9e2220abd1?q=80&w=800",
		5.0, "5 min", 50, []string{"Green Tea", "Mint", "Sugar", "Water"}},
	// Drinks
	{101, "Store", 7, "Coca Cola",
		"Chilled soda can",
		"10.00", "https://images.unsplash.com/photo-1622483767028-3f66f32aef97?q=80&w=800",
		5.0, "0 min", 140, []string{}},
	{103, "Store", 7, "Moroccan Mint Tea",
		"Hot authentic tea with fresh mint",
		"15.00", "https://images.unsplash.com/photo-1576092762791-dd9e2220abd1?q=80&w=800",
		4.9, "5 min", 50, []string{"Tea leaves", "Fresh Mint", "Sugar"}},
}

// SeedCatalog loads the immutable catalogue: categories, restaurants and
// products with fixed ids (gaps in the product ids are part of the dataset).
// Rows are never written again after boot.
func SeedCatalog() error {
	db := DB()

	for _, c := range categorySeeds {
		row := entity.Category{
			Name:        c.name,
			Description: c.description,
			Icon:        iconTag(c.icon),
		}
		row.ID = c.id
		if err := db.FirstOrCreate(&row, entity.Category{Model: gorm.Model{ID: c.id}}).Error; err != nil {
			return err
		}
	}

	restIDs := make(map[string]uint, len(restaurantNames))
	for i, name := range restaurantNames {
		id := uint(i + 1)
		row := entity.Restaurant{
			Name:        name,
			Description: fmt.Sprintf("Authentic food from %s", name),
			CuisineType: "Moroccan",
			// spread ratings deterministically over 4.50..4.99
			Rating:          4.5 + float64((i*13)%50)/100,
			IsOpen:          true,
			MinDeliveryTime: 20,
			MaxDeliveryTime: 45,
		}
		row.ID = id
		if err := db.FirstOrCreate(&row, entity.Restaurant{Model: gorm.Model{ID: id}}).Error; err != nil {
			return err
		}
		restIDs[name] = id
	}

	for _, p := range productSeeds {
		restID, ok := restIDs[p.restaurant]
		if !ok {
			restID = 1
		}
		row := entity.Product{
			Name:         p.name,
			Description:  p.description,
			Price:        decimal.RequireFromString(p.price),
			IsAvailable:  true,
			Image:        p.image,
			Rating:       p.rating,
			PrepTime:     p.prepTime,
			Calories:     p.calories,
			Ingredients:  p.ingredients,
			RestaurantID: restID,
			CategoryID:   p.categoryID,
		}
		row.ID = p.id
		if err := db.FirstOrCreate(&row, entity.Product{Model: gorm.Model{ID: p.id}}).Error; err != nil {
			return err
		}
	}

	return nil
}
