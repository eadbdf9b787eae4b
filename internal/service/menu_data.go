package service

import "github.com/miqu3iasg/cmj/internal/dto"

// weeklyMenu 大学食堂每周菜单（周一~周六，周日不开餐）。
// 数据来自校餐厅公示的每周菜谱，菜名保留原文，随版本发布静态更新。
var weeklyMenu = dto.WeeklyMenuResponse{
	Days: []dto.DailyMenuResponse{
		{
			DayIndex: 1,
			DayName:  "Segunda-feira",
			Breakfast: dto.MealResponse{
				Drinks:     "CAFÉ C/ LEITE OU CAFÉ, OU SUCO DE FRUTAS",
				Protein:    "BEBIDA 1 OPÇÃO 300 ML",
				Vegetarian: "OPÇÃO VEGANA 50G",
				Sides:      []string{"MINGAU DE AVEIA"},
				Fruit:      "MELANCIA",
				Bakery:     "1 UND",
				Calories:   "556 Kcal",
			},
			Lunch: dto.MealResponse{
				MainDish:     "FRANGO À PARMEGIANA",
				SecondOption: "ENSOPADO DE CARNE",
				Vegetarian:   "FAROFA DE SOJA",
				Sides:        []string{"FEIJÃO CARIOCA", "ARROZ C/ CENOURA", "CENOURA RALADA COM COUVE", "ALFACE COM TOMATE E CEBOLA"},
				Drink:        "SUCO DE ACEROLA",
				Dessert:      "PÉ DE MOLEQUE",
				Calories:     "1.127,09 Kcal",
			},
			Dinner: dto.MealResponse{
				Drinks:     "CAFÉ C/ LEITE OU CAFÉ, OU SUCO DE FRUTAS",
				Protein:    "BIFE BOVINO COZIDO",
				Sides:      []string{"ARROZ C/CHEIRO VERDE", "SALADA DE CENOURA COM MAÇÃ E UVA PASSAS", "CALDO DE FEIJÃO"},
				Bakery:     "1 UND",
				Vegetarian: "LEGUMES A CHINESA (BRÓCOLIS, CENOURA, ERVILHA EM GRÃO, COUVE FLOR, PIMENTÃO, TOMATE, CEBOLA, MOLHO SHOYU)",
				Calories:   "873,7 Kcal",
			},
		},
		{
			DayIndex: 2,
			DayName:  "Terça-feira",
			Breakfast: dto.MealResponse{
				Drinks:   "CAFÉ C/ LEITE OU CAFÉ, OU SUCO DE MANGA",
				Protein:  "OVOS MEXIDOS",
				Sides:    []string{"BOLO DE CENOURA C/ CALDA DE CHOCOLATE"},
				Fruit:    "BANANA DA PRATA",
				Bakery:   "1 UND",
				Calories: "689 Kcal",
			},
			Lunch: dto.MealResponse{
				MainDish:   "CUBOS DE CARNES GRELHADA (BOVINO, TOSCANA E FRANGO)",
				Vegetarian: "EMPADA DE CENOURA C/ COUVE FLOR",
				Sides:      []string{"FEIJÃO TROPEIRO", "ARROZ C/CENOURA", "SALADA DE COUVE C/ TOMATE CEREJA", "BETERRABA COZIDA COM MAÇÃ"},
				Drink:      "SUCO DE MANGA",
				Dessert:    "MELÃO",
				Calories:   "1119,8 Kcal",
			},
			Dinner: dto.MealResponse{
				Drinks:     "CAFÉ C/ LEITE OU CAFÉ, OU SUCO DE GOIABA",
				Protein:    "FRANGO AO MOLHO BRANCO",
				Sides:      []string{"ARROZ BRANCO", "GRÃO DE BICO COM TOMATE", "MASSA COM CARNE E LEGUMES"},
				Bakery:     "1 UND",
				Vegetarian: "LASANHA VEGANA/ SOPA DE MASSA COM LEGUME",
				Calories:   "905,9 Kcal",
			},
		},
		{
			DayIndex: 3,
			DayName:  "Quarta-feira",
			Breakfast: dto.MealResponse{
				Drinks:     "CAFÉ C/ LEITE OU CAFÉ, OU SUCO DE ACEROLA",
				Protein:    "PÃO C/ QUEIJO E PRESUNTO",
				Vegetarian: "QUEIJO VEGANO",
				Sides:      []string{"CUSCUZ DE TAPIOCA"},
				Fruit:      "MELÃO",
				Bakery:     "1 UND",
				Calories:   "589 Kcal",
			},
			Lunch: dto.MealResponse{
				MainDish:     "COXA E SOBRECOXA ASSADA",
				SecondOption: "PICADINHO DE CARNE",
				Vegetarian:   "ALMÔNDEGAS DE SOJA",
				Sides:        []string{"FEIJÃO CARIOCA", "ARROZ COLORIDO (PASSAS, ERVILHA, CENOURA, CHEIRO VERDE)", "PEPINO, COM CENOURA RALADA, TOMATE, CEBOLA E CHEIRO VERDE", "MIX DE FOLHOSOS (REPOLHO ROXO, REPOLHO VERDE E ACELGA) C/MAÇÃ"},
				Drink:        "SUCO DE CAJU",
				Dessert:      "MELANCIA",
				Calories:     "1.160 Kcal",
			},
			Dinner: dto.MealResponse{
				Drinks:     "CAFÉ C/ LEITE OU CAFÉ, OU SUCO DE ACEROLA",
				Protein:    "ISCA DE CARNE COM CEBOLA CARAMELIZADA",
				Sides:      []string{"ARROZ COZIDO", "SALADA DE ALFACE C/ TOMATE", "LEGUMES C/ FRANGO"},
				Bakery:     "1 UND",
				Vegetarian: "CUSCUZ VEGANO/SOPA DE LEGUMES",
				Calories:   "986 Kcal",
			},
		},
		{
			DayIndex: 4,
			DayName:  "Quinta-feira",
			Breakfast: dto.MealResponse{
				Drinks:     "CAFÉ C/ LEITE OU CAFÉ, OU JENIPAPO",
				Protein:    "IOGURTE",
				Vegetarian: "IOGURTE VEGANO",
				Sides:      []string{"INHAME"},
				Fruit:      "MAMÃO",
				Bakery:     "1 UND",
				Calories:   "569 Kcal",
			},
			Lunch: dto.MealResponse{
				MainDish:     "FILÉ DE FRANGO AO MOLHO",
				SecondOption: "STROGONOFF DE CARNE",
				Vegetarian:   "LEGUMES REFOGADO (BRÓCOLIS, CENOURA E CHUCHU)",
				Sides:        []string{"FEIJÃO CARIOCA", "ARROZ C/ COLORAU", "BETERRABA RALADA COM MAÇÃ", "ALFACE C/ MANGA"},
				Drink:        "SUCO DE UMBU",
				Dessert:      "GELADO DE CEREJA",
				Calories:     "1116,8 Kcal",
			},
			Dinner: dto.MealResponse{
				Drinks:     "CAFÉ C/ LEITE OU CAFÉ, OU SUCO DE CAJU",
				Protein:    "LOMBO SUÍNO AO MOLHO MADEIRA",
				Sides:      []string{"MACARRÃO AO ALHO E ÓLEO", "SALADA DE CENOURA COZIDA, EM CUBOS COM ERVILHA", "CALDO DE FEIJÃO"},
				Bakery:     "1 UND",
				Vegetarian: "LENTILHA REFOGADA",
				Calories:   "857 Kcal",
			},
		},
		{
			DayIndex: 5,
			DayName:  "Sexta-feira",
			Breakfast: dto.MealResponse{
				Drinks:     "CAFÉ C/ LEITE OU CAFÉ, OU SUCO DE TAMARINDO",
				Protein:    "FRANGO DESFIADO",
				Vegetarian: "PASTA DE GRÃO DE BICO (GRÃO DE BICO, AZEITE, ÁGUA, PIMENTA DO REINO, AZEITE E COENTRO)",
				Fruit:      "MAÇÃ",
				Bakery:     "1 UND",
				Calories:   "547 Kcal",
			},
			Lunch: dto.MealResponse{
				MainDish:     "FEIJOADA",
				SecondOption: "FRANGO EM CUBOS AO MOLHO DE CENOURA",
				Vegetarian:   "FEIJOADA VEGANA",
				Sides:        []string{"FEIJÃO PRETO", "ARROZ BRANCO", "PEPINO A VINAGRETE", "COUVE C/ BACON"},
				Drink:        "SUCO DE FRUTAS",
				Dessert:      "LARANJA",
				Calories:     "1.108,75 Kcal",
			},
			Dinner: dto.MealResponse{
				Drinks:     "CAFÉ C/ LEITE OU CAFÉ, OU SUCO DE MANGA",
				Protein:    "FRICASSÊ DE FRANGO",
				Sides:      []string{"ARROZ A GREGA", "SALADA DE CENOURA COZIDA, EM CUBOS COM MILHO", "CALDO DE FEIJÃO"},
				Bakery:     "1 UND",
				Vegetarian: "FRICASSÊ VEGETARIANO DE LEGUMES/ CALDO DE ABÓBORA",
				Calories:   "817,5 Kcal",
			},
		},
		{
			DayIndex: 6,
			DayName:  "Sábado",
			Breakfast: dto.MealResponse{
				Drinks:   "CAFÉ C/ LEITE OU CAFÉ, OU SUCO DE UMBU",
				Protein:  "OVOS C/ ORÉGANO",
				Sides:    []string{"MINGAU DE AMIDO DE MILHO"},
				Fruit:    "MELÃO",
				Bakery:   "1 UND",
				Calories: "532 Kcal",
			},
			Lunch: dto.MealResponse{
				MainDish:     "PEITO DE FRANGO EMPANADO AO MOLHO DE MOSTARDA",
				SecondOption: "ISCA C/ MILHO",
				Vegetarian:   "LENTILHA REFOGADA",
				Sides:        []string{"FEIJÃO CARIOCA", "ARROZ TEMPERADO", "CENOURA RALADA C/ MILHO E ERVILHA", "ACELGA COM UVA PASSAS"},
				Drink:        "SUCO DE ABACAXI (FRUTA)",
				Calories:     "1056,97 Kcal",
			},
			// 周六晚餐餐厅不供应
			Dinner: dto.MealResponse{},
		},
	},
}
