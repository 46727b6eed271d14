package chatbot

import (
	"strings"
	"testing"
)

func TestFormatPostListEmpty(t *testing.T) {
	got := FormatPostList("목록입니다:", nil, "작성하신 게시물이 없습니다.")
	if got != "작성하신 게시물이 없습니다." {
		t.Fatalf("empty list must return the empty message verbatim, got %q", got)
	}
}

func TestFormatPostList(t *testing.T) {
	posts := []PostSummary{
		{ID: 1, Title: "리액트 훅 정리", Content: "useState 사용법", AuthorNickname: "개발자"},
		{ID: 2, Title: "질문", Content: "고루틴이 뭔가요", AuthorNickname: ""},
	}

	got := FormatPostList("검색 결과입니다:", posts, "없음")
	if !strings.HasPrefix(got, "검색 결과입니다:") {
		t.Fatalf("reply must start with the title, got %q", got)
	}
	for _, want := range []string{
		`<a href="/posts/1"`,
		"리액트 훅 정리",
		"작성자: 개발자",
		"작성자: 알 수 없음",
		"내용: useState 사용법",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("reply missing %q:\n%s", want, got)
		}
	}
}

func TestSnippetTruncation(t *testing.T) {
	long := strings.Repeat("가", 60)
	got := snippet(long)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("long content must be truncated with ellipsis, got %q", got)
	}
	if runeCount := len([]rune(got)); runeCount != snippetMaxRune+3 {
		t.Fatalf("expected %d runes, got %d", snippetMaxRune+3, runeCount)
	}

	short := "짧은 내용"
	if snippet(short) != short {
		t.Fatalf("short content must pass through unchanged")
	}
}
