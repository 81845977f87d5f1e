package uiparse

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charole/auto-ux-backend/internal/entity"
	"github.com/xeipuuv/gojsonschema"
)

const DefaultComponentType = "div"

var componentKeys = []string{"type", "id", "title", "content"}

type Parser struct {
	schema *gojsonschema.Schema
}

func NewParser() (*Parser, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(componentListSchema))
	if err != nil {
		return nil, fmt.Errorf("compile component schema: %w", err)
	}
	return &Parser{schema: schema}, nil
}

type rawComponent struct {
	Type     *string        `json:"type"`
	ID       *string        `json:"id"`
	Title    *string        `json:"title"`
	Content  *string        `json:"content"`
	Style    *string        `json:"style"`
	Priority *int           `json:"priority"`
	Data     map[string]any `json:"data"`
}

// Parse extracts the first complete component list from raw generator output.
// Every failure wraps entity.ErrParseFailed; no partially decoded records are returned.
func (p *Parser) Parse(raw string) ([]entity.UIComponent, error) {
	text := stripFences(raw)
	if text == "" {
		return nil, fmt.Errorf("%w: empty output", entity.ErrParseFailed)
	}

	block, ok := findBlock(text)
	if !ok {
		return nil, fmt.Errorf("%w: no component list found", entity.ErrParseFailed)
	}

	result, err := p.schema.Validate(gojsonschema.NewStringLoader(block))
	if err != nil {
		return nil, fmt.Errorf("%w: validate: %v", entity.ErrParseFailed, err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("%w: %s", entity.ErrParseFailed, describe(result.Errors()))
	}

	var records []rawComponent
	if err := json.Unmarshal([]byte(block), &records); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", entity.ErrParseFailed, err)
	}

	components := make([]entity.UIComponent, 0, len(records))
	for i, rec := range records {
		components = append(components, toComponent(i, rec))
	}

	return components, nil
}

// findBlock tries every '[' left to right and decodes one balanced JSON value
// there. The first non-empty array of objects wins, except that a later array
// whose records carry component keys is preferred over keyless ones.
func findBlock(text string) (string, bool) {
	var first string
	for i := 0; i < len(text); i++ {
		if text[i] != '[' {
			continue
		}

		dec := json.NewDecoder(strings.NewReader(text[i:]))
		var candidate []map[string]json.RawMessage
		if err := dec.Decode(&candidate); err != nil || len(candidate) == 0 {
			continue
		}

		block := text[i : i+int(dec.InputOffset())]
		if hasComponentKeys(candidate) {
			return block, true
		}
		if first == "" {
			first = block
		}
	}
	return first, first != ""
}

func hasComponentKeys(records []map[string]json.RawMessage) bool {
	for _, rec := range records {
		for _, key := range componentKeys {
			if _, ok := rec[key]; ok {
				return true
			}
		}
	}
	return false
}

func toComponent(i int, rec rawComponent) entity.UIComponent {
	c := entity.UIComponent{
		Type:     DefaultComponentType,
		ID:       fmt.Sprintf("ai_comp_%d", i),
		Title:    deref(rec.Title),
		Content:  deref(rec.Content),
		Style:    deref(rec.Style),
		Priority: i + 1,
		Data:     rec.Data,
	}
	if rec.Type != nil && *rec.Type != "" {
		c.Type = *rec.Type
	}
	if rec.ID != nil && *rec.ID != "" {
		c.ID = *rec.ID
	}
	if rec.Priority != nil {
		c.Priority = *rec.Priority
	}
	if c.Data == nil {
		c.Data = map[string]any{}
	}
	return c
}

func stripFences(raw string) string {
	text := strings.TrimSpace(raw)
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func describe(errs []gojsonschema.ResultError) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.String())
	}
	return strings.Join(msgs, "; ")
}
