package catalog

// Foods returns the built-in food table.
func Foods() Catalog[Food] {
	return newCatalog([]Food{
		{ID: "white_rice_cooked", Name: "White Rice, Cooked", Category: Grains, ServingSize: 100,
			Calories: 128, Protein: 2.7, Carbs: 25.8, Fat: 0.3, Fiber: 0.4, Sugar: 0.1, Sodium: 1},
		{ID: "brown_rice_cooked", Name: "Brown Rice, Cooked", Category: Grains, ServingSize: 100,
			Calories: 124, Protein: 2.6, Carbs: 25.0, Fat: 1.0, Fiber: 1.8, Sugar: 0.4, Sodium: 3},
		{ID: "rolled_oats", Name: "Rolled Oats", Category: Grains, ServingSize: 100,
			Calories: 394, Protein: 13.9, Carbs: 67.0, Fat: 8.5, Fiber: 9.1, Sugar: 1.1, Sodium: 3},
		{ID: "french_roll", Name: "French Roll", Category: Grains, ServingSize: 50,
			Calories: 135, Protein: 4.5, Carbs: 26.8, Fat: 1.5, Fiber: 1.5, Sugar: 1.0, Sodium: 193},
		{ID: "wholegrain_bread", Name: "Wholegrain Bread (slice)", Category: Grains, ServingSize: 25,
			Calories: 69, Protein: 3.5, Carbs: 11.6, Fat: 1.4, Fiber: 2.3, Sugar: 1.1, Sodium: 143},
		{ID: "pasta_cooked", Name: "Pasta, Cooked", Category: Grains, ServingSize: 100,
			Calories: 111, Protein: 3.4, Carbs: 22.2, Fat: 0.9, Fiber: 1.4, Sugar: 0.8, Sodium: 1},

		{ID: "grilled_chicken_breast", Name: "Grilled Chicken Breast", Category: Proteins, ServingSize: 100,
			Calories: 195, Protein: 29.8, Carbs: 0, Fat: 7.8, Sodium: 63},
		{ID: "beef_round", Name: "Beef Round", Category: Proteins, ServingSize: 100,
			Calories: 163, Protein: 32.0, Carbs: 0, Fat: 3.2, Sodium: 60},
		{ID: "tilapia_fillet", Name: "Tilapia Fillet", Category: Proteins, ServingSize: 100,
			Calories: 96, Protein: 20.1, Carbs: 0, Fat: 1.7, Sodium: 52},
		{ID: "boiled_egg", Name: "Boiled Egg (whole)", Category: Proteins, ServingSize: 50,
			Calories: 78, Protein: 6.3, Carbs: 0.6, Fat: 5.3, Sugar: 0.6, Sodium: 62},
		{ID: "egg_white", Name: "Egg White", Category: Proteins, ServingSize: 30,
			Calories: 15, Protein: 3.2, Carbs: 0.2, Fat: 0, Sugar: 0.2, Sodium: 50},

		{ID: "skim_milk", Name: "Skim Milk", Category: Dairy, ServingSize: 200,
			Calories: 70, Protein: 6.8, Carbs: 9.0, Fat: 0.4, Sugar: 9.0, Sodium: 100},
		{ID: "plain_yogurt_nonfat", Name: "Plain Nonfat Yogurt", Category: Dairy, ServingSize: 170,
			Calories: 66, Protein: 8.8, Carbs: 9.0, Fat: 0.2, Sugar: 9.0, Sodium: 120},
		{ID: "fresh_white_cheese", Name: "Fresh White Cheese", Category: Dairy, ServingSize: 30,
			Calories: 79, Protein: 5.3, Carbs: 1.0, Fat: 6.0, Sugar: 1.0, Sodium: 105},
		{ID: "light_cream_cheese", Name: "Light Cream Cheese", Category: Dairy, ServingSize: 30,
			Calories: 54, Protein: 3.6, Carbs: 2.4, Fat: 3.6, Sugar: 2.4, Sodium: 165},

		{ID: "banana", Name: "Banana", Category: Fruits, ServingSize: 60,
			Calories: 56, Protein: 0.8, Carbs: 13.9, Fat: 0.1, Fiber: 1.5, Sugar: 8.0},
		{ID: "red_apple", Name: "Red Apple", Category: Fruits, ServingSize: 130,
			Calories: 69, Protein: 0.4, Carbs: 17.3, Fat: 0.4, Fiber: 2.0, Sugar: 13.0, Sodium: 1},
		{ID: "papaya", Name: "Papaya", Category: Fruits, ServingSize: 100,
			Calories: 32, Protein: 0.8, Carbs: 8.3, Fat: 0.1, Fiber: 1.8, Sugar: 5.9, Sodium: 3},
		{ID: "pineapple", Name: "Pineapple (slices)", Category: Fruits, ServingSize: 100,
			Calories: 48, Protein: 0.9, Carbs: 12.3, Fat: 0.1, Fiber: 1.0, Sugar: 9.9, Sodium: 1},

		{ID: "broccoli_cooked", Name: "Broccoli, Cooked", Category: Vegetables, ServingSize: 100,
			Calories: 25, Protein: 3.0, Carbs: 4.0, Fat: 0.4, Fiber: 3.4, Sugar: 1.4, Sodium: 41},
		{ID: "kale", Name: "Kale (leaves)", Category: Vegetables, ServingSize: 100,
			Calories: 27, Protein: 2.9, Carbs: 4.3, Fat: 0.5, Fiber: 3.1, Sugar: 2.3, Sodium: 6},
		{ID: "tomato", Name: "Salad Tomato", Category: Vegetables, ServingSize: 100,
			Calories: 15, Protein: 1.1, Carbs: 3.1, Fat: 0.2, Fiber: 1.2, Sugar: 2.6, Sodium: 1},
		{ID: "iceberg_lettuce", Name: "Iceberg Lettuce", Category: Vegetables, ServingSize: 100,
			Calories: 11, Protein: 1.4, Carbs: 1.8, Fat: 0.2, Fiber: 1.1, Sugar: 1.2, Sodium: 7},
		{ID: "raw_carrot", Name: "Raw Carrot", Category: Vegetables, ServingSize: 100,
			Calories: 34, Protein: 1.3, Carbs: 7.7, Fat: 0.2, Fiber: 3.2, Sugar: 4.7, Sodium: 3},

		{ID: "pinto_beans_cooked", Name: "Pinto Beans, Cooked", Category: Legumes, ServingSize: 100,
			Calories: 76, Protein: 4.8, Carbs: 13.6, Fat: 0.5, Fiber: 8.5, Sugar: 0.3, Sodium: 2},
		{ID: "lentils_cooked", Name: "Lentils, Cooked", Category: Legumes, ServingSize: 100,
			Calories: 93, Protein: 8.0, Carbs: 15.2, Fat: 0.5, Fiber: 7.9, Sugar: 1.8, Sodium: 2},
		{ID: "chickpeas_cooked", Name: "Chickpeas, Cooked", Category: Legumes, ServingSize: 100,
			Calories: 121, Protein: 8.4, Carbs: 18.0, Fat: 2.0, Fiber: 7.6, Sugar: 4.8, Sodium: 7},

		{ID: "extra_virgin_olive_oil", Name: "Extra Virgin Olive Oil", Category: Oils, ServingSize: 10,
			Calories: 90, Protein: 0, Carbs: 0, Fat: 10.0},
		{ID: "coconut_oil", Name: "Coconut Oil", Category: Oils, ServingSize: 10,
			Calories: 90, Protein: 0, Carbs: 0, Fat: 10.0},
		{ID: "avocado", Name: "Avocado", Category: Oils, ServingSize: 100,
			Calories: 96, Protein: 1.2, Carbs: 6.0, Fat: 8.4, Fiber: 6.3, Sugar: 0.7, Sodium: 2},

		{ID: "roasted_peanuts", Name: "Roasted Peanuts", Category: Snacks, ServingSize: 30,
			Calories: 176, Protein: 7.8, Carbs: 5.1, Fat: 15.1, Fiber: 2.4, Sugar: 1.3, Sodium: 2},
		{ID: "brazil_nuts", Name: "Brazil Nuts", Category: Snacks, ServingSize: 30,
			Calories: 208, Protein: 4.3, Carbs: 3.6, Fat: 20.6, Fiber: 2.4, Sugar: 0.7, Sodium: 1},

		{ID: "water", Name: "Water", Category: Beverages, ServingSize: 250,
			Calories: 0, Protein: 0, Carbs: 0, Fat: 0},
		{ID: "drip_coffee", Name: "Drip Coffee (unsweetened)", Category: Beverages, ServingSize: 150,
			Calories: 2, Protein: 0.1, Carbs: 0.5, Fat: 0, Sodium: 2},
		{ID: "green_tea", Name: "Green Tea", Category: Beverages, ServingSize: 200,
			Calories: 2, Protein: 0, Carbs: 0.5, Fat: 0, Sodium: 1},

		{ID: "whey_protein_vanilla", Name: "Whey Protein Vanilla", Brand: "Generic", Category: Supplements,
			ServingSize: 30, Calories: 120, Protein: 24.0, Carbs: 3.0, Fat: 1.5, Fiber: 1.0, Sugar: 2.0, Sodium: 50},
		{ID: "creatine_monohydrate", Name: "Creatine Monohydrate", Brand: "Generic", Category: Supplements,
			ServingSize: 5, Calories: 0, Protein: 0, Carbs: 0, Fat: 0},
	})
}
