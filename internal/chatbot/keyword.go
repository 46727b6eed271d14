package chatbot

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

var quotePattern = regexp.MustCompile(`['"](.+?)['"]`)

// suffixPhrases: 메시지 끝의 대화형 수식어. 긴 구절이 먼저 시도되도록 init에서 정렬한다.
var suffixPhrases = []string{
	"에 대해 찾아줘", "에 대해 알려줘", "에 대한 글", "관련 게시물", "관련 글",
	"검색해줘", "찾아줘", "알려줘", "라는 게시물", "라는 글", "이란 게시물", "이란 글",
	"게시물 있어", "글 있어", "게시글", "글",
}

// bareImperatives: 검색 대상 없이 동사만 있는 발화. 키워드 대신 재질문을 유도한다.
var bareImperatives = map[string]struct{}{
	"너가찾아줘": {},
	"찾아줘":   {},
	"검색해줘":  {},
}

func init() {
	sort.SliceStable(suffixPhrases, func(i, j int) bool {
		return utf8.RuneCountInString(suffixPhrases[i]) > utf8.RuneCountInString(suffixPhrases[j])
	})
}

// ExtractKeyword 는 대화형 문장에서 검색 키워드를 복원한다.
// 따옴표로 감싼 구절이 있으면 그 내용을, 아니면 수식어 접미사를 제거한 본문을 돌려준다.
// 빈 문자열은 "키워드를 되물어야 한다"는 신호다.
func ExtractKeyword(message string) string {
	if m := quotePattern.FindStringSubmatch(message); m != nil {
		return strings.TrimSpace(m[1])
	}

	for _, phrase := range suffixPhrases {
		if len(message) < len(phrase) {
			continue
		}
		// 원본 바이트 경계에서 직접 비교해야 소문자 변환으로 길이가
		// 달라지는 룬이 앞에 있어도 절단 위치가 어긋나지 않는다.
		cut := len(message) - len(phrase)
		if !strings.EqualFold(message[cut:], phrase) {
			continue
		}
		keyword := strings.TrimSpace(message[:cut])
		if keyword != "" {
			return keyword
		}
	}

	if _, ok := bareImperatives[NormalizeMessage(message)]; ok {
		return ""
	}

	return strings.TrimSpace(message)
}

// NormalizeMessage 는 의도 분류용 표준형을 만든다. (공백 제거 + 소문자화)
func NormalizeMessage(message string) string {
	var b strings.Builder
	b.Grow(len(message))
	for _, r := range message {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
