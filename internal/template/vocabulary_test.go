package template

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/ottodish/internal/domain"
)

func TestBuiltinsAreValid(t *testing.T) {
	for _, name := range BuiltinNames() {
		t.Run(name, func(t *testing.T) {
			v, err := Builtin(name)
			require.NoError(t, err)
			assert.Equal(t, name, v.Version)
			assert.NoError(t, v.Validate())
		})
	}
}

func TestBuiltinUnknown(t *testing.T) {
	_, err := Builtin("klingon-v9")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolve(t *testing.T) {
	v, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, RussianV1, v.Version)

	v, err = Resolve(EnglishV1)
	require.NoError(t, err)
	assert.Equal(t, "##DISH##", v.Markers.Identity)

	_, err = Resolve(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestYAMLRoundTrip(t *testing.T) {
	orig := Default()
	data, err := orig.Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "vocab.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, orig, loaded)
}

func TestParseRejectsBrokenYAML(t *testing.T) {
	_, err := Parse([]byte("markers: [unterminated"))
	require.ErrorIs(t, err, domain.ErrInvalidVocabulary)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(v *Vocabulary)
	}{
		{"empty version", func(v *Vocabulary) { v.Version = " " }},
		{"empty marker", func(v *Vocabulary) { v.Markers.Portion = "" }},
		{"duplicate marker", func(v *Vocabulary) { v.Markers.Nutrition = v.Markers.Portion }},
		{"nested marker", func(v *Vocabulary) { v.Markers.Identity = "##A##"; v.Markers.Ingredients = "##A## ##B##" }},
		{"empty label", func(v *Vocabulary) { v.Labels.Fats = "" }},
		{"label with colon", func(v *Vocabulary) { v.Labels.Name = "NAME:" }},
		{"overlapping labels", func(v *Vocabulary) { v.Labels.Weight = "ВЕС"; v.Labels.Quantity = "ОБЩИЙ ВЕС" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Default()
			tt.mutate(v)
			assert.ErrorIs(t, v.Validate(), domain.ErrInvalidVocabulary)
		})
	}
}

func TestLabelsMayRepeatAcrossBlocks(t *testing.T) {
	v := Default()
	v.Labels.Duration = "ВЕС" // same text as the portion weight label, different block
	assert.NoError(t, v.Validate())
}

func TestPromptSkeleton(t *testing.T) {
	p := Prompt(Default())

	// Markers appear in canonical order.
	last := -1
	for _, m := range Default().Markers.Ordered() {
		idx := strings.Index(p, m)
		require.GreaterOrEqual(t, idx, 0, "marker %s missing", m)
		assert.Greater(t, idx, last, "marker %s out of order", m)
		last = idx
	}

	assert.Contains(t, p, "НАЗВАНИЕ: [короткое название блюда]\n")
	assert.Contains(t, p, "- [основной ингредиент]\n")
	assert.Contains(t, p, "2. [второй шаг приготовления]\n")
	assert.Contains(t, p, "КАЛОРИИ: [XX-YY] ккал\n")
	assert.True(t, strings.HasPrefix(p, "Проанализируй изображение блюда"))
}

func TestPromptWithoutHints(t *testing.T) {
	v := English()
	v.Hints = Hints{}
	p := Prompt(v)

	assert.Contains(t, p, "NAME: [...]\n")
	assert.Contains(t, p, "1. [...]\n2. [...]\n3. [...]\n")
	assert.True(t, strings.HasPrefix(p, "##DISH##\n"))
}
