package intent

// Dimension names one independent rule group
type Dimension string

const (
	DimensionAge           Dimension = "age"
	DimensionSize          Dimension = "size"
	DimensionStyle         Dimension = "style"
	DimensionAnimation     Dimension = "animation"
	DimensionLayout        Dimension = "layout"
	DimensionInsuranceType Dimension = "insurance_type"
	DimensionPrice         Dimension = "price"
	DimensionDetail        Dimension = "detail"
)

// DefaultAgeGroup is reported when no age rule matches
const DefaultAgeGroup = "전연령"

// Rule maps a keyword set to a label. Age and SearchTerm are only meaningful
// for the age and insurance type dimensions respectively.
type Rule struct {
	Label      string
	Keywords   []string
	Age        int
	SearchTerm string
}

// RuleGroup is evaluated against the request independently of other groups.
// Unless MultiMatch is set the first matching rule stops the group.
type RuleGroup struct {
	Dimension  Dimension
	Prefix     string
	MultiMatch bool
	Rules      []Rule
}

// DefaultRules is the evaluation order used by NewDefaultExtractor
var DefaultRules = []RuleGroup{
	{
		Dimension: DimensionAge,
		Prefix:    "연령대",
		Rules: []Rule{
			{Label: "어린이", Age: 5, Keywords: []string{"5살", "5세"}},
			{Label: "어린이", Age: 7, Keywords: []string{"어린이", "아이", "아기", "child", "kid"}},
			{Label: "청소년", Age: 15, Keywords: []string{"10대", "청소년", "teen"}},
			{Label: "20대", Age: 25, Keywords: []string{"20대"}},
			{Label: "30대", Age: 35, Keywords: []string{"30대"}},
			{Label: "40대", Age: 45, Keywords: []string{"40대"}},
			{Label: "50대", Age: 55, Keywords: []string{"50대"}},
			{Label: "60대", Age: 65, Keywords: []string{"60대"}},
		},
	},
	{
		Dimension: DimensionSize,
		Prefix:    "크기 요구",
		Rules: []Rule{
			{Label: "큰 크기 UI", Keywords: []string{"크게", "큰글씨", "큰 글씨", "보기좋게", "보기 좋게"}},
			{Label: "컴팩트한 UI", Keywords: []string{"작게", "간단하게", "간단히", "요약해서", "짧게"}},
			{Label: "요약형 UI", Keywords: []string{"한눈에", "간략히", "한번에", "요약"}},
		},
	},
	{
		Dimension: DimensionStyle,
		Prefix:    "스타일 요구",
		Rules: []Rule{
			{Label: "가독성 중심", Keywords: []string{"가독성", "읽기좋게", "읽기 좋게", "보기편하게", "보기 편하게"}},
			{Label: "귀여운 디자인", Keywords: []string{"귀엽게", "귀여운"}},
			{Label: "시각적 매력", Keywords: []string{"예쁘게", "이쁘게", "아름답게", "멋있게", "멋지게"}},
			{Label: "미니멀 디자인", Keywords: []string{"심플하게", "깔끔하게", "단순하게", "미니멀"}},
			{Label: "화려한 디자인", Keywords: []string{"화려하게", "특별하게", "독특하게"}},
		},
	},
	{
		Dimension: DimensionAnimation,
		Prefix:    "애니메이션",
		Rules: []Rule{
			{Label: "애니메이션 효과", Keywords: []string{"움직이게", "애니메이션", "동적으로", "생동감"}},
			{Label: "부드러운 전환", Keywords: []string{"부드럽게", "자연스럽게", "smooth"}},
			{Label: "팝업 효과", Keywords: []string{"튀어나오게", "팝업", "팝업처럼"}},
		},
	},
	{
		Dimension: DimensionLayout,
		Prefix:    "레이아웃",
		Rules: []Rule{
			{Label: "비교 레이아웃", Keywords: []string{"비교해서", "나란히", "비교", "대비"}},
			{Label: "카드 레이아웃", Keywords: []string{"카드형태", "카드로", "카드형"}},
			{Label: "리스트 레이아웃", Keywords: []string{"리스트로", "목록으로", "목록형"}},
			{Label: "테이블 레이아웃", Keywords: []string{"테이블로", "표로", "표형태"}},
			{Label: "차트/그래프", Keywords: []string{"그래프로", "차트로", "시각적으로"}},
		},
	},
	{
		Dimension:  DimensionInsuranceType,
		Prefix:     "관심 보험",
		MultiMatch: true,
		Rules: []Rule{
			{Label: "암보험", SearchTerm: "암", Keywords: []string{"암보험", "암"}},
			{Label: "건강보험", SearchTerm: "건강", Keywords: []string{"건강보험", "의료보험", "건강"}},
			{Label: "생명보험", SearchTerm: "생명", Keywords: []string{"생명보험"}},
			{Label: "자동차보험", SearchTerm: "자동차", Keywords: []string{"자동차보험", "자동차"}},
			{Label: "실손보험", SearchTerm: "실손", Keywords: []string{"실손보험", "실손"}},
			{Label: "치아보험", SearchTerm: "치아", Keywords: []string{"치아보험", "치아", "이빨"}},
			{Label: "여행보험", SearchTerm: "여행", Keywords: []string{"여행보험", "여행자보험"}},
		},
	},
	{
		Dimension: DimensionPrice,
		Prefix:    "가격 선호",
		Rules: []Rule{
			{Label: "저렴한 상품 선호", Keywords: []string{"저렴", "싼", "가성비"}},
			{Label: "프리미엄 상품 선호", Keywords: []string{"프리미엄", "고급"}},
		},
	},
	{
		Dimension: DimensionDetail,
		Prefix:    "정보 제공",
		Rules: []Rule{
			{Label: "상세한 설명 필요", Keywords: []string{"상세", "자세"}},
			{Label: "핵심 정보만", Keywords: []string{"핵심만", "중요한것만", "중요한 것만"}},
		},
	},
}
