package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyFirstMatchWins(t *testing.T) {
	classifier := NewClassifier([]Rule{
		{Category: "pho", Keywords: []string{"phở", "pho "}},
		{Category: "com", Keywords: []string{"cơm"}},
	})

	tests := []struct {
		name    string
		input   string
		want    string
		wantHit bool
	}{
		{name: "first rule wins", input: "Phở Hòa Pasteur", want: "pho", wantHit: true},
		{name: "second rule reached", input: "Cơm Tấm Ba Ghiền", want: "com", wantHit: true},
		{name: "both rules match, earlier wins", input: "Phở và Cơm Gà", want: "pho", wantHit: true},
		{name: "no match", input: "Secret Garden", wantHit: false},
		{name: "empty name", input: "", wantHit: false},
		{name: "blank name", input: "   ", wantHit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := classifier.Classify(tt.input)
			assert.Equal(t, tt.wantHit, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyAccentInsensitive(t *testing.T) {
	classifier := NewClassifier([]Rule{
		{Category: "pho", Keywords: []string{"phở"}},
	})

	// Accent-bearing and accent-stripped spellings classify identically.
	for _, name := range []string{"Phở 2000", "Pho 2000", "PHỞ 2000", "phở 2000"} {
		got, ok := classifier.Classify(name)
		require.True(t, ok, "name %q", name)
		assert.Equal(t, "pho", got, "name %q", name)
	}
}

func TestClassifyBoundaryAnchors(t *testing.T) {
	classifier := NewClassifier([]Rule{
		{Category: "pho", Keywords: []string{" phở "}},
	})

	_, ok := classifier.Classify("Phong Coffee Roasters")
	assert.False(t, ok, "anchored keyword must not match inside a longer word")

	got, ok := classifier.Classify("Quán Phở Lệ")
	require.True(t, ok)
	assert.Equal(t, "pho", got)

	// Anchors also match at the very start and end of a name.
	_, ok = classifier.Classify("Phở")
	assert.True(t, ok)
}

func TestClassifyEmptyKeywordsNeverMatch(t *testing.T) {
	classifier := NewClassifier([]Rule{
		{Category: "broken", Keywords: []string{"", "   "}},
		{Category: "pho", Keywords: []string{"phở"}},
	})

	got, ok := classifier.Classify("Phở Minh")
	require.True(t, ok)
	assert.Equal(t, "pho", got, "rule with only blank keywords must be skipped")
}

func TestDefaultRulesPrecedence(t *testing.T) {
	classifier := NewClassifier(DefaultRules())

	tests := []struct {
		input string
		want  string
	}{
		{input: "Phở Hòa Pasteur", want: "pho"},
		{input: "Bánh Mì Huỳnh Hoa", want: "banh-mi"},
		{input: "Cơm Tấm Ba Ghiền", want: "com"},
		{input: "Bún Bò Huế Đông Ba", want: "bun"},
		{input: "Ốc Đào", want: "oc-hai-san"},
		{input: "The Coffee House", want: "cafe"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := classifier.Classify(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultRulesCategoriesExist(t *testing.T) {
	known := make(map[string]struct{})
	for _, cat := range DefaultCategories() {
		known[cat.Slug] = struct{}{}
	}

	for _, rule := range DefaultRules() {
		_, ok := known[rule.Category]
		assert.True(t, ok, "rule category %q missing from default categories", rule.Category)
	}
	for _, rule := range PatchRules() {
		_, ok := known[rule.Category]
		assert.True(t, ok, "patch rule category %q missing from default categories", rule.Category)
	}
}
