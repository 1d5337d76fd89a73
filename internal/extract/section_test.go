package extract

import (
	"testing"

	"github.com/hammamikhairi/ottodish/internal/template"
)

func TestSectionExtractorFind(t *testing.T) {
	x := NewSectionExtractor(template.Default())

	tests := []struct {
		name     string
		text     string
		section  Section
		wantBody string
		wantOK   bool
	}{
		{
			name:     "ends at next marker",
			text:     "##ИНГРЕДИЕНТЫ##\n- Рис\n##ПРИГОТОВЛЕНИЕ##\n1. Варить",
			section:  SectionIngredients,
			wantBody: "- Рис",
			wantOK:   true,
		},
		{
			name:     "last section ends at end of input",
			text:     "##ПРИГОТОВЛЕНИЕ##\n1. Варить\n##РЕКОМЕНДАЦИИ##\n  Подавать горячим.  \n\n",
			section:  SectionRecommendations,
			wantBody: "Подавать горячим.",
			wantOK:   true,
		},
		{
			name:     "blank lines stay inside the body",
			text:     "##ИНГРЕДИЕНТЫ##\n- Рис\n\n\n- Соль\n##ПРИГОТОВЛЕНИЕ##",
			section:  SectionIngredients,
			wantBody: "- Рис\n\n\n- Соль",
			wantOK:   true,
		},
		{
			name:     "skipped neighbour ends at the next known marker",
			text:     "##ИНГРЕДИЕНТЫ##\n- Рис\n##ИНФОРМАЦИЯ О ПОРЦИИ##\nВЕС: 200 г",
			section:  SectionIngredients,
			wantBody: "- Рис",
			wantOK:   true,
		},
		{
			name:     "earlier marker does not bound a later section",
			text:     "##РЕКОМЕНДАЦИИ##\nСовет\n##БЛЮДО##\nНАЗВАНИЕ: Плов",
			section:  SectionRecommendations,
			wantBody: "Совет",
			wantOK:   true,
		},
		{
			name:     "first occurrence wins",
			text:     "##ИНГРЕДИЕНТЫ##\n- Рис\n##ИНГРЕДИЕНТЫ##\n- Морковь",
			section:  SectionIngredients,
			wantBody: "- Рис",
			wantOK:   true,
		},
		{
			name:     "marker glued to text",
			text:     "prelude##БЛЮДО##НАЗВАНИЕ: Плов##ИНГРЕДИЕНТЫ##",
			section:  SectionIdentity,
			wantBody: "НАЗВАНИЕ: Плов",
			wantOK:   true,
		},
		{
			name:    "absent marker",
			text:    "##БЛЮДО##\nНАЗВАНИЕ: Плов",
			section: SectionNutrition,
			wantOK:  false,
		},
		{
			name:    "unknown section",
			text:    "##БЛЮДО##",
			section: Section(42),
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, ok := x.Find(tt.text, tt.section)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestSectionString(t *testing.T) {
	want := []string{"identity", "ingredients", "process", "portion", "nutrition", "recommendations"}
	for i, s := range Sections {
		if s.String() != want[i] {
			t.Errorf("Sections[%d] = %s, want %s", i, s, want[i])
		}
	}
	if Section(-1).String() != "unknown" {
		t.Errorf("unexpected name for invalid section")
	}
}
