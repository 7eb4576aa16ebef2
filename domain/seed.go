package domain

// Seed returns the built-in starter catalog used when the durable slot is
// absent or unreadable. IDs here are fixed so a fresh install is stable
// across restarts.
func Seed() Catalog {
	return Catalog{Products: []Product{
		// Bakery
		{ID: "1", Name: "Plain Cake", Category: "Bakery", Stock: 50, Sales: 0, WholesaleRate: 10, OurRate: 15},
		{ID: "2", Name: "Bread", Category: "Bakery", Stock: 100, Sales: 0, WholesaleRate: 20, OurRate: 30},
		{ID: "3", Name: "Veg Puff", Category: "Bakery", Stock: 80, Sales: 0, WholesaleRate: 12, OurRate: 20},
		{ID: "4", Name: "Cookies (pack)", Category: "Bakery", Stock: 60, Sales: 0, WholesaleRate: 40, OurRate: 60},

		// Cigarettes
		{ID: "c1", Name: "Kings", Category: "Cigarettes", Stock: 20, Sales: 0, WholesaleRate: 180, OurRate: 200},
		{ID: "c2", Name: "Lights", Category: "Cigarettes", Stock: 20, Sales: 0, WholesaleRate: 180, OurRate: 200},
		{ID: "c3", Name: "Mini Gold", Category: "Cigarettes", Stock: 20, Sales: 0, WholesaleRate: 90, OurRate: 100},
		{ID: "c4", Name: "Gold Flake", Category: "Cigarettes", Stock: 20, Sales: 0, WholesaleRate: 180, OurRate: 200},
		{ID: "c5", Name: "Ice Buster", Category: "Cigarettes", Stock: 20, Sales: 0, WholesaleRate: 190, OurRate: 210},
		{ID: "c6", Name: "Classic", Category: "Cigarettes", Stock: 20, Sales: 0, WholesaleRate: 185, OurRate: 205},
		{ID: "c7", Name: "Wills", Category: "Cigarettes", Stock: 20, Sales: 0, WholesaleRate: 100, OurRate: 110},
		{ID: "c8", Name: "Scissor", Category: "Cigarettes", Stock: 20, Sales: 0, WholesaleRate: 50, OurRate: 60},
		{ID: "c9", Name: "Marlboro", Category: "Cigarettes", Stock: 20, Sales: 0, WholesaleRate: 190, OurRate: 210},

		// Groceries
		{ID: "g1", Name: "Wheat (1kg)", Category: "Groceries", Stock: 30, Sales: 0, WholesaleRate: 40, OurRate: 50},
		{ID: "g2", Name: "Oil (1L)", Category: "Groceries", Stock: 25, Sales: 0, WholesaleRate: 120, OurRate: 140},
		{ID: "g3", Name: "Sugar (1kg)", Category: "Groceries", Stock: 40, Sales: 0, WholesaleRate: 45, OurRate: 55},
	}}
}
