package recommend

import (
	"fmt"
	"strings"
)

// BuildPrompt composes the gift-concierge prompt sent to the text model:
// the user's situation plus the product sheet of every candidate. The
// model is asked to pick exactly one product and answer in a fixed format
// covering ingredients, appearance, reasoning, and a short gift message.
func BuildPrompt(userInput string, candidates []Scored) string {
	var productContext strings.Builder
	for i, c := range candidates {
		fmt.Fprintf(&productContext, `
[후보 %d]
- 제품명: %s
- 제형/성상: %s
- 주요기능성(성분포함): %s
- 섭취방법: %s
`, i+1, c.Name, c.ShapeInfo, c.Function, c.Usage)
	}

	return fmt.Sprintf(`당신은 영양제 데이터 분석 전문가이자 센스 있는 선물 컨시어지입니다.
사용자는 **"%s"**라는 상황으로 선물을 찾고 있습니다.

아래 [후보 제품 목록]을 분석하여, 사용자의 상황에 가장 적합한 **단 하나의 제품**을 추천해주세요.
특히, 사용자가 궁금해하는 **'어떤 성분이 들어있는지'**와 **'어떻게 생겼는지(형태)'**를 명확하게 설명해야 합니다.

[후보 제품 목록]
%s
[필수 출력 형식]
🎁 **추천 제품**: [제품명]

🧪 **주요 성분**:
[기능성 텍스트에서 핵심 영양소(예: 비타민D, 밀크씨슬 등)를 추출하여 설명]

💊 **형태 및 생김새**:
[제형/성상 정보를 바탕으로 설명 (예: 흰색의 길쭉한 알약, 노란색 가루 등)]

💡 **이 제품을 선택한 이유**:
[사용자의 상황("%s")과 제품의 기능을 연결하여 논리적으로 설명]

💌 **메시지 카드**:
[선물 받는 사람에게 보낼 감동적이고 센스 있는 짧은 편지]`,
		userInput, productContext.String(), userInput)
}
