package inventory

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var ErrInvalidItemPayload = errors.New("invalid item payload")

type ItemLine struct {
	Name string
	Qty  int
}

// ItemRequest is the canonical form of a requested or stored item list:
// no duplicate names, every quantity positive, encounter order preserved.
type ItemRequest []ItemLine

// Legacy documents disagree on field names; both spellings of each key
// coexist in stored data.
var (
	nameKeys = []string{"name", "itemName", "title"}
	qtyKeys  = []string{"qty", "quantity"}
)

// NormalizeItems accepts either an ordered sequence of item-like records or
// a name→quantity mapping and returns the canonical ItemRequest. Entries
// that resolve to a zero or negative quantity are dropped; duplicates of one
// canonical name are summed. A payload that is neither shape, or that
// normalizes to zero usable entries, fails with ErrInvalidItemPayload.
func NormalizeItems(raw any) (ItemRequest, error) {
	var lines []ItemLine

	switch v := raw.(type) {
	case []any:
		for _, entry := range v {
			obj, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			name := firstString(obj, nameKeys)
			if name == "" {
				continue
			}
			lines = append(lines, ItemLine{Name: name, Qty: coerceQty(firstValue(obj, qtyKeys))})
		}
	case map[string]any:
		// Maps carry no order of their own; sort names so the canonical
		// form is deterministic.
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			lines = append(lines, ItemLine{Name: name, Qty: coerceQty(v[name])})
		}
	default:
		return nil, ErrInvalidItemPayload
	}

	result := aggregate(lines)
	if len(result) == 0 {
		return nil, ErrInvalidItemPayload
	}
	return result, nil
}

func aggregate(lines []ItemLine) ItemRequest {
	var result ItemRequest
	index := make(map[string]int)

	for _, line := range lines {
		name := CanonicalName(line.Name)
		if name == "" || line.Qty <= 0 {
			continue
		}
		if i, seen := index[name]; seen {
			result[i].Qty += line.Qty
			continue
		}
		index[name] = len(result)
		result = append(result, ItemLine{Name: name, Qty: line.Qty})
	}

	return result
}

func firstString(obj map[string]any, keys []string) string {
	for _, key := range keys {
		if s, ok := obj[key].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

func firstValue(obj map[string]any, keys []string) any {
	for _, key := range keys {
		if v, ok := obj[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

// Spelling variants observed in stored data, keyed by the whitespace-collapsed
// form and mapped to the capacity-table key.
var nameAliases = map[string]string{
	"천막가림막":    "천막 가림막",
	"행사용앰프":    "행사용 앰프",
	"이동용앰프":    "이동용 앰프",
	"리드선50m":   "리드선 50m",
	"리드선30m":   "리드선 30m",
	"운반기대형":    "운반기 대형",
	"운반기소형":    "운반기 소형",
	"운반기L카트":   "운반기 L카트",
	"아이스박스70L": "아이스박스 70L",
	"아이스박스50L": "아이스박스 50L",
	"1인용돗자리":   "1인용 돗자리",
	"줄다리기줄 15m": "줄다리기 줄 15m",
	"줄다리기줄 25m": "줄다리기 줄 25m",
	"중형화이트보드":  "중형 화이트보드",
}

// CanonicalName trims and collapses internal whitespace, then resolves known
// spelling variants to the capacity-table key. Unknown names pass through
// unchanged; the capacity lookup decides their fate.
func CanonicalName(name string) string {
	collapsed := strings.Join(strings.Fields(name), " ")
	if canonical, ok := nameAliases[collapsed]; ok {
		return canonical
	}
	return collapsed
}

var (
	intRe        = regexp.MustCompile(`-?\d+`)
	affirmatives = map[string]bool{"true": true, "yes": true, "y": true, "o": true, "예": true, "네": true}
)

// coerceQty normalizes the quantity encodings found in stored documents:
// numbers (truncated toward zero, floored at 0), booleans, and strings
// carrying a decimal run or an affirmative token.
func coerceQty(raw any) int {
	switch v := raw.(type) {
	case int:
		return max(v, 0)
	case int64:
		return max(int(v), 0)
	case float64:
		return max(int(math.Trunc(v)), 0)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		s := strings.TrimSpace(v)
		if lit := intRe.FindString(s); lit != "" {
			n, err := strconv.Atoi(lit)
			if err != nil {
				return 0
			}
			return max(n, 0)
		}
		if affirmatives[strings.ToLower(s)] {
			return 1
		}
		return 0
	default:
		return 0
	}
}
