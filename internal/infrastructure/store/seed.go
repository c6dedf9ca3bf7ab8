package store

import "chuckle-chow/internal/pkg/common"

// seedRecipes 預定義食譜，只在空庫時寫入一次
var seedRecipes = []common.Recipe{
	{
		TitleEN: "Ginger-Soy Tofu Stir-Fry",
		TitleES: "Tofu Salteado con Jengibre y Soja",
		Ingredients: []common.Ingredient{
			{Name: "tofu", Amount: "1 lb, cubed"},
			{Name: "soy sauce", Amount: "1/4 cup"},
			{Name: "ginger", Amount: "2 tbsp, grated"},
			{Name: "garlic", Amount: "2 cloves, minced"},
			{Name: "bell pepper", Amount: "1, sliced"},
			{Name: "broccoli", Amount: "1 cup, florets"},
		},
		Steps: []string{
			"Heat 2 tbsp olive oil in a wok over medium-high heat.",
			"Add tofu cubes and stir-fry for 5-7 minutes until golden.",
			"Add ginger, garlic, and soy sauce; stir for 1 minute.",
			"Toss in bell pepper and broccoli; cook for 5 minutes until crisp-tender.",
			"Serve over rice with a sprinkle of sesame seeds.",
		},
		Nutrition:   common.Nutrition{Calories: 300, Protein: 20, Fat: 15, ChaosFactor: 5},
		CookingTime: 15,
		Difficulty:  "easy",
		Equipment:   []string{"wok", "spatula"},
		Servings:    4,
		Tips:        "Press tofu for 20 minutes before cooking to remove excess water.",
	},
	{
		TitleEN: "Moonshine Chicken Skillet",
		TitleES: "Pollo a la Sartén con Moonshine",
		Ingredients: []common.Ingredient{
			{Name: "chicken", Amount: "1 lb, cut into strips"},
			{Name: "moonshine", Amount: "1/4 cup"},
			{Name: "onion", Amount: "1 medium, diced"},
			{Name: "paprika", Amount: "1 tsp"},
		},
		Steps: []string{
			"Heat olive oil in a skillet over medium-high heat.",
			"Add chicken strips and sear for 8 minutes until golden.",
			"Splash in moonshine and let it sizzle for 1 minute.",
			"Add diced onion and paprika; cook for 5 minutes until soft.",
			"Serve with cornbread for a hearty meal.",
		},
		Nutrition:   common.Nutrition{Calories: 450, Protein: 35, Fat: 20, ChaosFactor: 7},
		CookingTime: 15,
		Difficulty:  "medium",
		Equipment:   []string{"skillet"},
		Servings:    2,
		Tips:        "Use high-proof moonshine for a bold flavor, but don’t light it on fire!",
	},
	{
		TitleEN: "Shrimp and Grits Hoedown",
		TitleES: "Camarones y Sémola al Estilo Sureño",
		Ingredients: []common.Ingredient{
			{Name: "shrimp", Amount: "1 lb, peeled"},
			{Name: "grits", Amount: "1 cup"},
			{Name: "cheddar cheese", Amount: "1/2 cup, shredded"},
			{Name: "bacon", Amount: "4 strips, chopped"},
			{Name: "green onion", Amount: "2, sliced"},
		},
		Steps: []string{
			"Cook grits according to package, then stir in cheddar cheese.",
			"In a skillet, cook bacon until crispy; remove and set aside.",
			"Sauté shrimp in bacon fat for 3-4 minutes until pink.",
			"Add green onion and bacon back; stir for 1 minute.",
			"Serve shrimp over cheesy grits.",
		},
		Nutrition:   common.Nutrition{Calories: 600, Protein: 40, Fat: 30, ChaosFactor: 8},
		CookingTime: 20,
		Difficulty:  "medium",
		Equipment:   []string{"skillet", "pot"},
		Servings:    4,
		Tips:        "Use stone-ground grits for authentic texture.",
	},
	{
		TitleEN: "Pork and Apple Moonshine Roast",
		TitleES: "Asado de Cerdo y Manzana con Moonshine",
		Ingredients: []common.Ingredient{
			{Name: "pork loin", Amount: "2 lbs"},
			{Name: "apple", Amount: "2, sliced"},
			{Name: "moonshine", Amount: "1/2 cup"},
			{Name: "rosemary", Amount: "1 tbsp"},
			{Name: "garlic", Amount: "3 cloves, minced"},
		},
		Steps: []string{
			"Preheat oven to 375°F.",
			"Rub pork loin with garlic, rosemary, salt, and pepper.",
			"Place apples in a roasting pan, top with pork, and pour moonshine over.",
			"Roast for 60-75 minutes until internal temp is 145°F.",
			"Slice and serve with roasted apples.",
		},
		Nutrition:   common.Nutrition{Calories: 500, Protein: 45, Fat: 25, ChaosFactor: 6},
		CookingTime: 75,
		Difficulty:  "hard",
		Equipment:   []string{"roasting pan"},
		Servings:    6,
		Tips:        "Let pork rest 10 minutes before slicing.",
	},
	{
		TitleEN: "Ground Beef Tequila Tacos",
		TitleES: "Tacos de Carne Molida con Tequila",
		Ingredients: []common.Ingredient{
			{Name: "ground beef", Amount: "1 lb"},
			{Name: "tequila", Amount: "1/4 cup"},
			{Name: "tortilla", Amount: "8, corn"},
			{Name: "chili powder", Amount: "1 tbsp"},
			{Name: "avocado", Amount: "1, diced"},
		},
		Steps: []string{
			"Brown ground beef in a skillet over medium heat, 7-10 minutes.",
			"Add chili powder and tequila; cook 2 minutes until evaporated.",
			"Warm tortillas in a dry skillet.",
			"Fill tortillas with beef and top with avocado.",
			"Serve with lime wedges.",
		},
		Nutrition:   common.Nutrition{Calories: 400, Protein: 25, Fat: 20, ChaosFactor: 7},
		CookingTime: 15,
		Difficulty:  "easy",
		Equipment:   []string{"skillet"},
		Servings:    4,
		Tips:        "Use reposado tequila for a smoother flavor.",
	},
	{
		TitleEN: "Cajun Catfish Po’Boy",
		TitleES: "Sándwich Po’Boy de Bagre Cajún",
		Ingredients: []common.Ingredient{
			{Name: "catfish fillets", Amount: "1 lb"},
			{Name: "cajun seasoning", Amount: "2 tbsp"},
			{Name: "baguette", Amount: "1, cut into 4 pieces"},
			{Name: "lettuce", Amount: "1 cup, shredded"},
			{Name: "remoulade sauce", Amount: "1/4 cup"},
		},
		Steps: []string{
			"Coat catfish with cajun seasoning.",
			"Fry catfish in 2 tbsp oil over medium heat, 3-4 minutes per side.",
			"Toast baguette pieces lightly.",
			"Spread remoulade on baguette, add lettuce and catfish.",
			"Serve with pickles on the side.",
		},
		Nutrition:   common.Nutrition{Calories: 550, Protein: 30, Fat: 25, ChaosFactor: 6},
		CookingTime: 20,
		Difficulty:  "medium",
		Equipment:   []string{"skillet", "toaster"},
		Servings:    4,
		Tips:        "Make your own remoulade with mayo, mustard, and hot sauce.",
	},
	{
		TitleEN: "Spicy Mango Salmon Bowl",
		TitleES: "Tazón de Salmón con Mango Picante",
		Ingredients: []common.Ingredient{
			{Name: "salmon fillets", Amount: "1 lb"},
			{Name: "mango", Amount: "1, diced"},
			{Name: "rice", Amount: "1 cup, cooked"},
			{Name: "sriracha", Amount: "1 tbsp"},
			{Name: "lime", Amount: "1, juiced"},
		},
		Steps: []string{
			"Bake salmon at 400°F for 12-15 minutes.",
			"Mix mango, sriracha, and lime juice for a salsa.",
			"Flake salmon over cooked rice.",
			"Top with mango salsa.",
			"Garnish with cilantro.",
		},
		Nutrition:   common.Nutrition{Calories: 450, Protein: 35, Fat: 15, ChaosFactor: 5},
		CookingTime: 25,
		Difficulty:  "easy",
		Equipment:   []string{"baking sheet", "bowl"},
		Servings:    4,
		Tips:        "Use fresh mango for the best flavor.",
	},
	{
		TitleEN: "BBQ Pork Ribs",
		TitleES: "Costillas de Cerdo a la Barbacoa",
		Ingredients: []common.Ingredient{
			{Name: "pork ribs", Amount: "2 lbs"},
			{Name: "bbq sauce", Amount: "1 cup"},
			{Name: "brown sugar", Amount: "2 tbsp"},
			{Name: "garlic powder", Amount: "1 tsp"},
			{Name: "onion powder", Amount: "1 tsp"},
		},
		Steps: []string{
			"Preheat oven to 300°F.",
			"Rub ribs with brown sugar, garlic powder, and onion powder.",
			"Wrap ribs in foil and bake for 2.5 hours.",
			"Unwrap, brush with BBQ sauce, and broil for 5 minutes.",
			"Serve with coleslaw.",
		},
		Nutrition:   common.Nutrition{Calories: 700, Protein: 40, Fat: 45, ChaosFactor: 8},
		CookingTime: 160,
		Difficulty:  "hard",
		Equipment:   []string{"baking sheet", "foil"},
		Servings:    4,
		Tips:        "Low and slow cooking makes ribs tender.",
	},
	{
		TitleEN: "Lemon Garlic Butter Shrimp Pasta",
		TitleES: "Pasta con Camarones al Limón y Ajo",
		Ingredients: []common.Ingredient{
			{Name: "shrimp", Amount: "1 lb, peeled"},
			{Name: "pasta", Amount: "8 oz"},
			{Name: "butter", Amount: "4 tbsp"},
			{Name: "garlic", Amount: "3 cloves, minced"},
			{Name: "lemon", Amount: "1, juiced and zested"},
		},
		Steps: []string{
			"Cook pasta according to package; drain and set aside.",
			"Melt butter in a skillet over medium heat.",
			"Add garlic and sauté for 1 minute.",
			"Add shrimp and cook for 3-4 minutes until pink.",
			"Toss in pasta, lemon juice, and zest; stir to combine.",
			"Serve with parsley.",
		},
		Nutrition:   common.Nutrition{Calories: 500, Protein: 30, Fat: 20, ChaosFactor: 6},
		CookingTime: 20,
		Difficulty:  "easy",
		Equipment:   []string{"skillet", "pot"},
		Servings:    4,
		Tips:        "Use fresh lemon for a bright flavor.",
	},
	{
		TitleEN: "Vegetarian Chili",
		TitleES: "Chili Vegetariano",
		Ingredients: []common.Ingredient{
			{Name: "black beans", Amount: "1 can, drained"},
			{Name: "kidney beans", Amount: "1 can, drained"},
			{Name: "tomato", Amount: "1 can, diced"},
			{Name: "onion", Amount: "1, diced"},
			{Name: "chili powder", Amount: "2 tbsp"},
		},
		Steps: []string{
			"Sauté onion in 1 tbsp oil over medium heat for 5 minutes.",
			"Add chili powder and stir for 1 minute.",
			"Add beans and tomatoes; bring to a simmer.",
			"Cook for 20 minutes, stirring occasionally.",
			"Serve with cornbread or rice.",
		},
		Nutrition:   common.Nutrition{Calories: 350, Protein: 15, Fat: 5, ChaosFactor: 5},
		CookingTime: 30,
		Difficulty:  "easy",
		Equipment:   []string{"pot"},
		Servings:    4,
		Tips:        "Add a dash of cumin for extra depth.",
	},
	{
		TitleEN: "Chicken Fajita Bowl",
		TitleES: "Tazón de Fajitas de Pollo",
		Ingredients: []common.Ingredient{
			{Name: "chicken", Amount: "1 lb, sliced"},
			{Name: "bell pepper", Amount: "2, sliced"},
			{Name: "onion", Amount: "1, sliced"},
			{Name: "fajita seasoning", Amount: "2 tbsp"},
			{Name: "rice", Amount: "1 cup, cooked"},
		},
		Steps: []string{
			"Heat 2 tbsp oil in a skillet over medium-high heat.",
			"Add chicken and fajita seasoning; cook for 6-8 minutes.",
			"Add peppers and onion; cook for 5 minutes until tender.",
			"Serve over rice with salsa and avocado.",
		},
		Nutrition:   common.Nutrition{Calories: 450, Protein: 35, Fat: 15, ChaosFactor: 6},
		CookingTime: 20,
		Difficulty:  "medium",
		Equipment:   []string{"skillet"},
		Servings:    4,
		Tips:        "Marinate chicken in lime juice for 30 minutes for extra flavor.",
	},
}

// seedFlavorPairs 預定義風味搭配，作為提示詞的補充食材來源
var seedFlavorPairs = common.FlavorPairs{
	"tofu":        {"soy sauce", "ginger", "garlic"},
	"chicken":     {"paprika", "onion", "moonshine", "fajita seasoning"},
	"shrimp":      {"bacon", "cheddar cheese", "green onion", "lemon"},
	"pork":        {"apple", "rosemary", "moonshine", "bbq sauce"},
	"ground beef": {"tequila", "chili powder", "avocado"},
	"catfish":     {"cajun seasoning", "lettuce", "remoulade sauce"},
	"salmon":      {"mango", "sriracha", "lime"},
	"pork ribs":   {"bbq sauce", "brown sugar", "garlic powder"},
	"black beans": {"chili powder", "tomato", "onion"},
}
