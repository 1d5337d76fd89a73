package extract

import "github.com/hammamikhairi/ottodish/internal/domain"

const borschText = `##БЛЮДО##
НАЗВАНИЕ: Борщ
ОПИСАНИЕ: Насыщенный свекольный суп с кисло-сладким вкусом и мягкой текстурой овощей.
КУХНЯ: Украинская
##ИНГРЕДИЕНТЫ##
- Свекла
- Капуста
- Картофель
- Говядина
##ПРИГОТОВЛЕНИЕ##
1. Сварить бульон из говядины.
2. Добавить нарезанные овощи.
3. Варить до готовности.
СЛОЖНОСТЬ: Средняя
ВРЕМЯ: 120 минут
##ИНФОРМАЦИЯ О ПОРЦИИ##
ВЕС: 300-350 г
КОЛИЧЕСТВО: 1 человек
##ПИЩЕВАЯ ЦЕННОСТЬ##
КАЛОРИИ: 250-300 ккал
БЕЛКИ: 15-20 г
ЖИРЫ: 10-15 г
УГЛЕВОДЫ: 25-30 г
##РЕКОМЕНДАЦИИ##
- Подавать со сметаной и зеленью.
- Хорошо сочетается с чесночными пампушками.
`

func borschRecord() *domain.DishAnalysis {
	return &domain.DishAnalysis{
		Name:        "Борщ",
		Description: "Насыщенный свекольный суп с кисло-сладким вкусом и мягкой текстурой овощей.",
		Kitchen:     "Украинская",
		Ingredients: []string{"Свекла", "Капуста", "Картофель", "Говядина"},
		CookingProcess: domain.CookingProcess{
			Steps: []domain.Step{
				{StepNumber: 1, Description: "Сварить бульон из говядины."},
				{StepNumber: 2, Description: "Добавить нарезанные овощи."},
				{StepNumber: 3, Description: "Варить до готовности."},
			},
			Difficulty: "Средняя",
			Duration:   "120 минут",
		},
		Portion: domain.Portion{Weight: "300-350 г", Quantity: "1 человек"},
		Nutrition: domain.Nutrition{
			Calories:      "250-300 ккал",
			Proteins:      "15-20 г",
			Fats:          "10-15 г",
			Carbohydrates: "25-30 г",
		},
		Recommendations: []string{
			"Подавать со сметаной и зеленью.",
			"Хорошо сочетается с чесночными пампушками.",
		},
	}
}

func extractBytes(payload []byte) (*domain.DishAnalysis, error) {
	return New().Extract(payload)
}
