package usecase

import (
	"strings"

	"github.com/goccy/go-json"

	"github.com/kbeaute/backend/internal/domain"
)

// Keys of the JSON object the model is asked to return
const (
	filterKeyIngredients  = "ingredients"
	filterKeySkinTypes    = "skin_types"
	filterKeyConcerns     = "concerns"
	filterKeyProductTypes = "product_types"
)

// DecodeFilters parses the model's filter-extraction reply.
// The reply is untrusted: invalid JSON yields empty filters, missing or mistyped
// keys yield empty lists. The second return value reports whether the reply was a
// JSON object at all.
func DecodeFilters(raw string) (domain.Filters, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &fields); err != nil || fields == nil {
		return domain.Filters{}, false
	}

	return domain.Filters{
		Ingredients:  decodeStringList(fields[filterKeyIngredients]),
		SkinTypes:    decodeStringList(fields[filterKeySkinTypes]),
		Concerns:     decodeStringList(fields[filterKeyConcerns]),
		ProductTypes: decodeStringList(fields[filterKeyProductTypes]),
	}, true
}

// decodeStringList accepts an array (non-string items are dropped) or a single
// string. Values are trimmed, lower-cased and de-duplicated.
func decodeStringList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var items []interface{}
	if err := json.Unmarshal(raw, &items); err != nil {
		var single string
		if err := json.Unmarshal(raw, &single); err != nil {
			return []string{}
		}
		items = []interface{}{single}
	}

	out := make([]string, 0, len(items))
	seen := make(map[string]bool)
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// stripCodeFence removes a surrounding markdown code fence such as ```json ... ```
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
