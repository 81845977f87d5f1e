package fallback

import (
	"maps"

	"github.com/charole/auto-ux-backend/internal/entity"
)

var fixtures = map[entity.PageType][]entity.UIComponent{
	entity.PageTypeHome: {
		{
			Type:  "section",
			ID:    "hero",
			Title: "보험의 시작, 믿을 수 있는 파트너",
			Content: `<div style="text-align: center; padding: 3rem 2rem; background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; border-radius: 20px;">` +
				`<h1 style="font-size: 2.5rem; font-weight: 900; margin: 0 0 1rem 0;">🛡️ 안전한 미래를 위한 선택</h1>` +
				`<p style="font-size: 1.2rem; line-height: 1.8; margin: 1rem 0;">신뢰할 수 있는 보험 서비스로 가족의 안전을 지켜보세요.</p>` +
				`<div style="margin-top: 2rem;"><span style="background: rgba(255,255,255,0.2); padding: 1rem 2rem; border-radius: 50px; font-size: 1.1rem;">💰 월 2만원부터 시작하는 든든한 보장</span></div>` +
				`</div>`,
			Style:    "margin-bottom: 2rem;",
			Priority: 1,
		},
	},
	entity.PageTypeSearch: {
		{
			Type:  "article",
			ID:    "search_notice",
			Title: "AI 맞춤 검색 서비스",
			Content: `<div style="text-align: center; padding: 3rem 2rem;">` +
				`<div style="font-size: 4rem; margin-bottom: 1rem;">🤖</div>` +
				`<h2 style="color: #2d3748; font-size: 2rem; font-weight: 700; margin: 0 0 1rem 0;">AI 보험 전문가가 분석 중입니다</h2>` +
				`<p style="color: #4a5568; line-height: 1.8; font-size: 1.1rem;">고객님의 요구사항을 분석하여 가장 적합한 보험 상품을 찾고 있습니다.</p>` +
				`</div>`,
			Style:    "background: linear-gradient(135deg, #f7fafc 0%, #e2e8f0 100%); border-radius: 20px;",
			Priority: 1,
		},
	},
	entity.PageTypeProducts: {
		{
			Type:  "section",
			ID:    "products_notice",
			Title: "보험 상품 안내",
			Content: `<div style="text-align: center; padding: 2.5rem 2rem;">` +
				`<div style="font-size: 3rem; margin-bottom: 1rem;">📋</div>` +
				`<p style="color: #4a5568; line-height: 1.8; font-size: 1.1rem;">상품 목록을 준비하고 있습니다. 잠시 후 다시 확인해주세요.</p>` +
				`</div>`,
			Style:    "background: #f8f9fa; border-radius: 12px;",
			Priority: 1,
		},
	},
}

var defaultComponents = []entity.UIComponent{
	{
		Type:     "notice",
		ID:       "default",
		Title:    "서비스 준비 중",
		Content:  "잠시만 기다려주세요.",
		Style:    "padding: 2rem; text-align: center;",
		Priority: 1,
	},
}

var errorComponents = []entity.UIComponent{
	{
		Type:     "notice",
		ID:       "error",
		Title:    "일시적 오류",
		Content:  "서비스 처리 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요.",
		Style:    "padding: 2rem; background: #fff3cd; border: 1px solid #ffeaa7; border-radius: 8px;",
		Priority: 1,
	},
}

// For returns a fresh copy of the page type's fixture. Unknown page types get
// the generic "service being prepared" notice.
func For(pageType entity.PageType) []entity.UIComponent {
	if components, ok := fixtures[pageType]; ok {
		return clone(components)
	}
	return clone(defaultComponents)
}

// Error returns the single "temporary error" component
func Error() []entity.UIComponent {
	return clone(errorComponents)
}

func clone(components []entity.UIComponent) []entity.UIComponent {
	out := make([]entity.UIComponent, len(components))
	for i, c := range components {
		c.Data = maps.Clone(c.Data)
		out[i] = c
	}
	return out
}
