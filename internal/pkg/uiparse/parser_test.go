package uiparse

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charole/auto-ux-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	p, err := NewParser()
	require.NoError(t, err)
	return p
}

func TestParse_WellFormedBlock(t *testing.T) {
	p := newTestParser(t)
	raw := `[
	  {"type": "header", "id": "search_header", "title": "검색 결과", "content": "<div>🎈</div>", "style": "padding: 2rem;", "priority": 1, "data": {"query": "5살"}},
	  {"type": "section", "id": "products", "content": "<div>상품</div>", "priority": 2}
	]`

	components, err := p.Parse(raw)
	require.NoError(t, err)
	require.Len(t, components, 2)

	assert.Equal(t, entity.UIComponent{
		Type:     "header",
		ID:       "search_header",
		Title:    "검색 결과",
		Content:  "<div>🎈</div>",
		Style:    "padding: 2rem;",
		Priority: 1,
		Data:     map[string]any{"query": "5살"},
	}, components[0])
	assert.Equal(t, "", components[1].Title)
	assert.Equal(t, map[string]any{}, components[1].Data)
}

func TestParse_DefaultsAppliedPerRecord(t *testing.T) {
	p := newTestParser(t)

	const n = 5
	records := make([]string, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, fmt.Sprintf(`{"content": "item %d"}`, i))
	}
	raw := "여기 결과입니다:\n[" + strings.Join(records, ",") + "]\n감사합니다."

	components, err := p.Parse(raw)
	require.NoError(t, err)
	require.Len(t, components, n)

	for i, c := range components {
		assert.Equal(t, i+1, c.Priority)
		assert.Equal(t, fmt.Sprintf("ai_comp_%d", i), c.ID)
		assert.Equal(t, DefaultComponentType, c.Type)
		assert.Equal(t, "", c.Style)
		assert.NotNil(t, c.Data)
	}
}

func TestParse_CodeFence(t *testing.T) {
	p := newTestParser(t)
	raw := "```json\n[{\"type\": \"card\", \"id\": \"a\", \"content\": \"x\"}]\n```"

	components, err := p.Parse(raw)
	require.NoError(t, err)
	require.Len(t, components, 1)
	assert.Equal(t, "card", components[0].Type)
}

func TestParse_MultipleBlocksTakesFirstBalanced(t *testing.T) {
	p := newTestParser(t)
	// a greedy leftmost/rightmost span would join both arrays and fail to decode
	raw := `첫 번째: [{"id": "one", "content": "a"}] 두 번째: [{"id": "two", "content": "b"}]`

	components, err := p.Parse(raw)
	require.NoError(t, err)
	require.Len(t, components, 1)
	assert.Equal(t, "one", components[0].ID)
}

func TestParse_SkipsNonComponentArrays(t *testing.T) {
	p := newTestParser(t)
	raw := `참고 [1] 그리고 ["a", "b"] 결과: [{"id": "real", "content": "<p>ok</p>", "data": {"items": [1, 2]}}]`

	components, err := p.Parse(raw)
	require.NoError(t, err)
	require.Len(t, components, 1)
	assert.Equal(t, "real", components[0].ID)
}

func TestParse_RecordsWithoutComponentKeys(t *testing.T) {
	p := newTestParser(t)

	components, err := p.Parse(`[{"priority": 2, "style": "x"}, {"data": {"a": 1}}]`)
	require.NoError(t, err)
	require.Len(t, components, 2)
	assert.Equal(t, entity.UIComponent{
		Type:     DefaultComponentType,
		ID:       "ai_comp_0",
		Style:    "x",
		Priority: 2,
		Data:     map[string]any{},
	}, components[0])
	assert.Equal(t, "ai_comp_1", components[1].ID)
	assert.Equal(t, 2, components[1].Priority)
	assert.Equal(t, map[string]any{"a": float64(1)}, components[1].Data)

	components, err = p.Parse(`[{}, {}]`)
	require.NoError(t, err)
	require.Len(t, components, 2)
	for i, c := range components {
		assert.Equal(t, DefaultComponentType, c.Type)
		assert.Equal(t, i+1, c.Priority)
	}
}

func TestParse_PrefersKeyedArrayOverEarlierKeylessOne(t *testing.T) {
	p := newTestParser(t)
	raw := `메타: [{"k": 1}] 결과: [{"id": "real", "content": "<p>ok</p>"}]`

	components, err := p.Parse(raw)
	require.NoError(t, err)
	require.Len(t, components, 1)
	assert.Equal(t, "real", components[0].ID)
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: "   "},
		{name: "no brackets", raw: "죄송합니다. 생성할 수 없습니다."},
		{name: "empty list", raw: "[]"},
		{name: "truncated", raw: `[{"id": "a", "content": "<div>`},
		{name: "object instead of list", raw: `{"id": "a", "content": "x"}`},
		{name: "wrong field type", raw: `[{"id": 7, "content": "x"}]`},
		{name: "priority not integer", raw: `[{"id": "a", "content": "x", "priority": "high"}]`},
		{name: "array of nulls", raw: `[null, null]`},
	}

	p := newTestParser(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components, err := p.Parse(tt.raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, entity.ErrParseFailed))
			assert.Nil(t, components)
		})
	}
}
