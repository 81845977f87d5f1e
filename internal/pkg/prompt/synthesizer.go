package prompt

import (
	"fmt"
	"strings"

	"github.com/charole/auto-ux-backend/internal/entity"
	"github.com/charole/auto-ux-backend/internal/pkg/payload"
)

// Synthesizer fills the page type's instruction template. It performs
// substitution only and accepts truncated payloads as is.
type Synthesizer struct{}

func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

func (s *Synthesizer) Synthesize(
	pageType entity.PageType,
	uc *entity.UserContext,
	bp payload.BoundedPayload,
	freeText string,
) entity.GenerationRequest {
	var body string
	if pageType == entity.PageTypeSearch {
		body = strings.NewReplacer(
			"{user_request}", freeText,
			"{user_context}", uc.Summary(),
			"{data}", bp.Text,
		).Replace(searchTemplate)
	} else {
		body = strings.NewReplacer(
			"{page_type}", pageType.String(),
			"{requirements}", requirements(pageType, freeText),
			"{user_context}", uc.Summary(),
			"{data}", bp.Text,
		).Replace(genericTemplate)
	}

	return entity.GenerationRequest{
		PageType:     pageType,
		SystemPrompt: systemPrompt,
		UserPrompt:   body,
	}
}

func requirements(pageType entity.PageType, freeText string) string {
	if strings.TrimSpace(freeText) != "" {
		return freeText
	}
	return fmt.Sprintf("사용자 친화적이고 매력적인 %s UI", pageType)
}
