package payload

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/charole/auto-ux-backend/internal/entity"
)

const (
	maxHighlights        = 4
	maxFeatureHighlights = 2
	maxFeatureRunes      = 20

	budgetPriceLimit    = 30_000
	premiumPriceLimit   = 100_000
	highCoverageLimit   = 100_000_000
	enoughCoverageLimit = 50_000_000
)

// FormatPrice renders a monthly premium, "가격 문의" when unknown
func FormatPrice(price int64) string {
	if price <= 0 {
		return "가격 문의"
	}
	return groupThousands(price) + "원/월"
}

// FormatCoverage renders a coverage limit, "보장 한도 문의" when unknown
func FormatCoverage(coverage int64) string {
	if coverage <= 0 {
		return "보장 한도 문의"
	}
	return groupThousands(coverage) + "원"
}

// TargetAgeGroup labels the age range a product is best suited for
func TargetAgeGroup(minAge, maxAge int) string {
	switch {
	case minAge <= 20 && maxAge >= 29:
		return "20대 적합"
	case minAge <= 30 && maxAge >= 39:
		return "30대 적합"
	case minAge <= 40 && maxAge >= 49:
		return "40대 적합"
	case minAge <= 19:
		return "10대-20대 초반 적합"
	case maxAge >= 60:
		return "중장년층 적합"
	default:
		return fmt.Sprintf("%d세-%d세 가입 가능", minAge, maxAge)
	}
}

// Highlights returns at most four ranked tags describing the product
func Highlights(p *entity.InsuranceProduct) []string {
	highlights := make([]string, 0, maxHighlights)

	if p.IsPopular {
		highlights = append(highlights, "인기 상품")
	}
	if p.IsNew {
		highlights = append(highlights, "신상품")
	}

	if p.BasePrice > 0 {
		if p.BasePrice < budgetPriceLimit {
			highlights = append(highlights, "저렴한 보험료")
		} else if p.BasePrice > premiumPriceLimit {
			highlights = append(highlights, "프리미엄 상품")
		}
	}

	if p.MaxCoverage >= highCoverageLimit {
		highlights = append(highlights, "고액 보장")
	} else if p.MaxCoverage >= enoughCoverageLimit {
		highlights = append(highlights, "충분한 보장")
	}

	for i, feature := range p.Features {
		if i >= maxFeatureHighlights {
			break
		}
		if utf8.RuneCountInString(feature) < maxFeatureRunes {
			highlights = append(highlights, feature)
		}
	}

	if len(highlights) > maxHighlights {
		highlights = highlights[:maxHighlights]
	}
	return highlights
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	out := make([]byte, 0, len(s)+len(s)/3)
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	out = append(out, s[:lead]...)
	for i := lead; i < len(s); i += 3 {
		out = append(out, ',')
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
