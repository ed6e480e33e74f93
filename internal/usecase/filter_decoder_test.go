package usecase

import (
	"testing"

	"github.com/kbeaute/backend/internal/domain"
)

func TestDecodeFilters(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   domain.Filters
		wantOK bool
	}{
		{
			name:   "full object",
			raw:    `{"ingredients":["retinol"],"skin_types":["dry"],"concerns":["aging"],"product_types":["cream"]}`,
			want:   domain.Filters{Ingredients: []string{"retinol"}, SkinTypes: []string{"dry"}, Concerns: []string{"aging"}, ProductTypes: []string{"cream"}},
			wantOK: true,
		},
		{
			name:   "markdown code fence",
			raw:    "```json\n{\"ingredients\": [\"niacinamide\"]}\n```",
			want:   domain.Filters{Ingredients: []string{"niacinamide"}},
			wantOK: true,
		},
		{
			name:   "single string instead of array",
			raw:    `{"skin_types": "oily"}`,
			want:   domain.Filters{SkinTypes: []string{"oily"}},
			wantOK: true,
		},
		{
			name:   "missing keys are empty",
			raw:    `{"concerns":["acne"]}`,
			want:   domain.Filters{Concerns: []string{"acne"}},
			wantOK: true,
		},
		{
			name:   "non-string items are dropped",
			raw:    `{"ingredients":[1, "Retinol", null, {"x": 1}]}`,
			want:   domain.Filters{Ingredients: []string{"retinol"}},
			wantOK: true,
		},
		{
			name:   "values are trimmed lower-cased and de-duplicated",
			raw:    `{"ingredients":[" Retinol ", "retinol", "", "  "]}`,
			want:   domain.Filters{Ingredients: []string{"retinol"}},
			wantOK: true,
		},
		{
			name:   "mistyped value is empty",
			raw:    `{"ingredients":{"name":"retinol"}, "concerns": 7}`,
			want:   domain.Filters{},
			wantOK: true,
		},
		{
			name:   "prose reply",
			raw:    "Sure! Here are your filters.",
			want:   domain.Filters{},
			wantOK: false,
		},
		{
			name:   "truncated JSON",
			raw:    `{"ingredients":["retinol"`,
			want:   domain.Filters{},
			wantOK: false,
		},
		{
			name:   "JSON null",
			raw:    "null",
			want:   domain.Filters{},
			wantOK: false,
		},
		{
			name:   "top-level array",
			raw:    `["retinol"]`,
			want:   domain.Filters{},
			wantOK: false,
		},
		{
			name:   "empty reply",
			raw:    "",
			want:   domain.Filters{},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeFilters(tt.raw)

			if ok != tt.wantOK {
				t.Errorf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !equalStrings(got.Ingredients, tt.want.Ingredients) {
				t.Errorf("Ingredients = %v, want %v", got.Ingredients, tt.want.Ingredients)
			}
			if !equalStrings(got.SkinTypes, tt.want.SkinTypes) {
				t.Errorf("SkinTypes = %v, want %v", got.SkinTypes, tt.want.SkinTypes)
			}
			if !equalStrings(got.Concerns, tt.want.Concerns) {
				t.Errorf("Concerns = %v, want %v", got.Concerns, tt.want.Concerns)
			}
			if !equalStrings(got.ProductTypes, tt.want.ProductTypes) {
				t.Errorf("ProductTypes = %v, want %v", got.ProductTypes, tt.want.ProductTypes)
			}
		})
	}
}

func TestDecodeFilters_ListsNeverNil(t *testing.T) {
	got, ok := DecodeFilters(`{}`)
	if !ok {
		t.Fatal("ok = false, want true for empty object")
	}
	if got.Ingredients == nil || got.SkinTypes == nil || got.Concerns == nil || got.ProductTypes == nil {
		t.Errorf("expected non-nil lists, got %+v", got)
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"```json{\"a\":1}```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}

	for _, tt := range tests {
		if got := stripCodeFence(tt.input); got != tt.want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
