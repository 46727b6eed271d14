package chatbot

import "strings"

// Intent 는 메시지가 표현하는 구조화 명령이다.
type Intent int

const (
	// IntentNone 은 생성형 폴백 경로로 보낸다.
	IntentNone Intent = iota
	// IntentMyPosts 는 내가 쓴 글 목록 조회다.
	IntentMyPosts
	// IntentLikedPosts 는 좋아요 누른 글 목록 조회다.
	IntentLikedPosts
	// IntentSearch 는 키워드 게시글 검색이다.
	IntentSearch
)

type intentSpec struct {
	intent     Intent
	triggers   []string
	confidence float64
}

// personalIntents 의 선언 순서가 곧 판정 우선순위다.
// 두 의도 모두 임계값을 넘는 메시지는 항상 먼저 선언된 내 글 조회로 분류된다.
var personalIntents = []intentSpec{
	{
		intent:     IntentMyPosts,
		triggers:   []string{"내가쓴글", "내가작성한게시물", "내글목록", "내가쓴글보여줘", "내가쓴게시물보여줘"},
		confidence: 0.7,
	},
	{
		intent:     IntentLikedPosts,
		triggers:   []string{"내가좋아요누른글", "좋아요한글", "좋아요목록"},
		confidence: 0.7,
	},
}

// searchTriggers 는 유사도 대신 포함 여부로 검사한다.
var searchTriggers = []string{
	"찾아줘", "검색해줘", "알려줘", "관련글", "대한글", "라는글",
	"라는게시물", "이란게시물", "게시물있어", "게시글", "글",
}

// Classify 는 표준형/원본 메시지로부터 의도와 검색 키워드를 판정한다.
// 키워드는 IntentSearch 에서만 의미가 있으며, 빈 키워드의 IntentSearch 는
// 검색 없이 키워드 재질문으로 이어진다.
func Classify(normalized, original string) (Intent, string) {
	for _, spec := range personalIntents {
		if _, rating := bestMatch(normalized, spec.triggers); rating > spec.confidence {
			return spec.intent, ""
		}
	}

	for _, trigger := range searchTriggers {
		if !strings.Contains(normalized, trigger) {
			continue
		}
		keyword := ExtractKeyword(original)
		if keyword == "" {
			return IntentSearch, ""
		}
		// "글" 같은 트리거 단어 하나만 온 경우를 그 단어에 대한 검색으로 오판하지 않는다.
		if !strings.EqualFold(keyword, trigger) {
			return IntentSearch, keyword
		}
	}

	return IntentNone, ""
}
