// Package template holds the versioned marker and label vocabulary shared
// between the extractor and whatever upstream system produces dish
// descriptions, plus the producer prompt rendered from it.
package template

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/ottodish/internal/domain"
)

// Built-in vocabulary names.
const (
	RussianV1 = "ru-v1"
	EnglishV1 = "en-v1"
)

// Vocabulary is one version of the section/label contract.
type Vocabulary struct {
	Version string  `yaml:"version"`
	Markers Markers `yaml:"markers"`
	Labels  Labels  `yaml:"labels"`
	Hints   Hints   `yaml:"hints,omitempty"`
}

// Markers are the literal section headers, in canonical order.
type Markers struct {
	Identity        string `yaml:"identity"`
	Ingredients     string `yaml:"ingredients"`
	Process         string `yaml:"process"`
	Portion         string `yaml:"portion"`
	Nutrition       string `yaml:"nutrition"`
	Recommendations string `yaml:"recommendations"`
}

// Ordered returns the markers in canonical section order.
func (m Markers) Ordered() []string {
	return []string{m.Identity, m.Ingredients, m.Process, m.Portion, m.Nutrition, m.Recommendations}
}

// Labels are the scalar field names, written without the trailing colon.
type Labels struct {
	Name          string `yaml:"name"`
	Description   string `yaml:"description"`
	Kitchen       string `yaml:"kitchen"`
	Difficulty    string `yaml:"difficulty"`
	Duration      string `yaml:"duration"`
	Weight        string `yaml:"weight"`
	Quantity      string `yaml:"quantity"`
	Calories      string `yaml:"calories"`
	Proteins      string `yaml:"proteins"`
	Fats          string `yaml:"fats"`
	Carbohydrates string `yaml:"carbohydrates"`
}

// Identity returns the labels of the identity block in order.
func (l Labels) Identity() []string { return []string{l.Name, l.Description, l.Kitchen} }

// Process returns the trailing scalar labels of the cooking block in order.
func (l Labels) Process() []string { return []string{l.Difficulty, l.Duration} }

// Portion returns the labels of the portion block in order.
func (l Labels) Portion() []string { return []string{l.Weight, l.Quantity} }

// Nutrition returns the labels of the nutrition block in order.
func (l Labels) Nutrition() []string {
	return []string{l.Calories, l.Proteins, l.Fats, l.Carbohydrates}
}

// Hints are the placeholder texts used when rendering the producer prompt.
// They play no part in extraction.
type Hints struct {
	Preamble        string   `yaml:"preamble,omitempty"`
	Closing         string   `yaml:"closing,omitempty"`
	Fields          Labels   `yaml:"fields,omitempty"`
	Ingredients     []string `yaml:"ingredients,omitempty"`
	Steps           []string `yaml:"steps,omitempty"`
	Recommendations string   `yaml:"recommendations,omitempty"`
}

// Default returns the Russian v1 vocabulary, the one the producer prompt
// has always used.
func Default() *Vocabulary {
	return &Vocabulary{
		Version: RussianV1,
		Markers: Markers{
			Identity:        "##БЛЮДО##",
			Ingredients:     "##ИНГРЕДИЕНТЫ##",
			Process:         "##ПРИГОТОВЛЕНИЕ##",
			Portion:         "##ИНФОРМАЦИЯ О ПОРЦИИ##",
			Nutrition:       "##ПИЩЕВАЯ ЦЕННОСТЬ##",
			Recommendations: "##РЕКОМЕНДАЦИИ##",
		},
		Labels: Labels{
			Name:          "НАЗВАНИЕ",
			Description:   "ОПИСАНИЕ",
			Kitchen:       "КУХНЯ",
			Difficulty:    "СЛОЖНОСТЬ",
			Duration:      "ВРЕМЯ",
			Weight:        "ВЕС",
			Quantity:      "КОЛИЧЕСТВО",
			Calories:      "КАЛОРИИ",
			Proteins:      "БЕЛКИ",
			Fats:          "ЖИРЫ",
			Carbohydrates: "УГЛЕВОДЫ",
		},
		Hints: Hints{
			Preamble: "Проанализируй изображение блюда и предоставь точную структурированную информацию по шаблону:",
			Closing: "Отвечай строго по этому шаблону без приветствий и вводного текста. " +
				"Сохраняй форматирование с разделителями ##РАЗДЕЛ##. Все поля обязательны.",
			Fields: Labels{
				Name:          "[короткое название блюда]",
				Description:   "[1 предложение о вкусе, текстуре и основных особенностях]",
				Kitchen:       "[страна/регион происхождения, если определимо]",
				Difficulty:    "[Легкая/Средняя/Высокая]",
				Duration:      "[приблизительное время в минутах]",
				Weight:        "[диапазон в граммах]",
				Quantity:      "[на сколько человек рассчитано]",
				Calories:      "[XX-YY] ккал",
				Proteins:      "[XX-YY] г",
				Fats:          "[XX-YY] г",
				Carbohydrates: "[XX-YY] г",
			},
			Ingredients:     []string{"[основной ингредиент]", "[второй ингредиент]", "[остальные ингредиенты]"},
			Steps:           []string{"[первый шаг приготовления]", "[второй шаг приготовления]", "[дополнительные шаги]"},
			Recommendations: "[1-2 кратких совета по подаче или сочетанию с другими блюдами]",
		},
	}
}

// English returns an English translation of the v1 contract.
func English() *Vocabulary {
	return &Vocabulary{
		Version: EnglishV1,
		Markers: Markers{
			Identity:        "##DISH##",
			Ingredients:     "##INGREDIENTS##",
			Process:         "##PREPARATION##",
			Portion:         "##PORTION INFO##",
			Nutrition:       "##NUTRITION FACTS##",
			Recommendations: "##RECOMMENDATIONS##",
		},
		Labels: Labels{
			Name:          "NAME",
			Description:   "DESCRIPTION",
			Kitchen:       "CUISINE",
			Difficulty:    "DIFFICULTY",
			Duration:      "TIME",
			Weight:        "WEIGHT",
			Quantity:      "SERVES",
			Calories:      "CALORIES",
			Proteins:      "PROTEIN",
			Fats:          "FAT",
			Carbohydrates: "CARBOHYDRATES",
		},
		Hints: Hints{
			Preamble: "Analyze the photo of the dish and give precise structured information using this template:",
			Closing: "Answer strictly in this template with no greeting or introduction. " +
				"Keep the ##SECTION## separators. All fields are required.",
			Fields: Labels{
				Name:          "[short dish name]",
				Description:   "[one sentence on taste, texture and main features]",
				Kitchen:       "[country/region of origin, if identifiable]",
				Difficulty:    "[Easy/Medium/Hard]",
				Duration:      "[approximate time in minutes]",
				Weight:        "[range in grams]",
				Quantity:      "[how many people it serves]",
				Calories:      "[XX-YY] kcal",
				Proteins:      "[XX-YY] g",
				Fats:          "[XX-YY] g",
				Carbohydrates: "[XX-YY] g",
			},
			Ingredients:     []string{"[main ingredient]", "[second ingredient]", "[other ingredients]"},
			Steps:           []string{"[first preparation step]", "[second preparation step]", "[further steps]"},
			Recommendations: "[1-2 short tips on serving or pairing]",
		},
	}
}

var builtins = map[string]func() *Vocabulary{
	RussianV1: Default,
	EnglishV1: English,
}

// Builtin returns a built-in vocabulary by version name.
func Builtin(name string) (*Vocabulary, error) {
	fn, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("template: builtin %q: %w", name, domain.ErrNotFound)
	}
	return fn(), nil
}

// BuiltinNames lists the built-in vocabulary names, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Resolve returns a built-in vocabulary when ref names one, otherwise it
// loads ref as a YAML file. An empty ref yields Default.
func Resolve(ref string) (*Vocabulary, error) {
	if ref == "" {
		return Default(), nil
	}
	if fn, ok := builtins[ref]; ok {
		return fn(), nil
	}
	return Load(ref)
}

// Load reads and validates a YAML vocabulary file.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("template: read %s: %w", path, err)
	}
	v, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("template: %s: %w", path, err)
	}
	return v, nil
}

// Parse decodes a YAML vocabulary and validates it.
func Parse(data []byte) (*Vocabulary, error) {
	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidVocabulary, err)
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// Marshal encodes the vocabulary as YAML.
func (v *Vocabulary) Marshal() ([]byte, error) {
	return yaml.Marshal(v)
}

// Validate checks that the vocabulary can delimit sections unambiguously:
// every marker and label is set, no marker contains another, and within a
// block no "LABEL:" token contains another.
func (v *Vocabulary) Validate() error {
	if strings.TrimSpace(v.Version) == "" {
		return fmt.Errorf("%w: version is empty", domain.ErrInvalidVocabulary)
	}

	markers := v.Markers.Ordered()
	for i, m := range markers {
		if strings.TrimSpace(m) == "" {
			return fmt.Errorf("%w: marker %d is empty", domain.ErrInvalidVocabulary, i+1)
		}
		for j, other := range markers {
			if i != j && strings.Contains(other, m) {
				return fmt.Errorf("%w: marker %q overlaps %q", domain.ErrInvalidVocabulary, m, other)
			}
		}
	}

	blocks := map[string][]string{
		"identity":  v.Labels.Identity(),
		"process":   v.Labels.Process(),
		"portion":   v.Labels.Portion(),
		"nutrition": v.Labels.Nutrition(),
	}
	for name, labels := range blocks {
		if err := validateBlock(labels); err != nil {
			return fmt.Errorf("%w: %s labels: %v", domain.ErrInvalidVocabulary, name, err)
		}
	}
	return nil
}

func validateBlock(labels []string) error {
	for i, l := range labels {
		if strings.TrimSpace(l) == "" {
			return fmt.Errorf("label %d is empty", i+1)
		}
		if strings.HasSuffix(l, ":") {
			return fmt.Errorf("label %q must not include the colon", l)
		}
		for j, other := range labels {
			if i != j && strings.Contains(other+":", l+":") {
				return fmt.Errorf("label %q overlaps %q", l, other)
			}
		}
	}
	return nil
}
