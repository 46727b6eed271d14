package chatbot

import (
	"fmt"
	"strings"
)

const (
	unknownAuthor  = "알 수 없음"
	snippetMaxRune = 50
)

// PostSummary 는 챗봇 응답에 표시되는 게시물 발췌다.
type PostSummary struct {
	ID             int64
	Title          string
	Content        string
	AuthorNickname string
}

// FormatPostList: 게시물 목록을 HTML 블록 응답으로 조립합니다.
// 목록이 비어 있으면 emptyMessage 를 그대로 반환한다.
func FormatPostList(title string, posts []PostSummary, emptyMessage string) string {
	if len(posts) == 0 {
		return emptyMessage
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString(`<div style="margin-top: 12px;">`)
	for _, post := range posts {
		author := post.AuthorNickname
		if author == "" {
			author = unknownAuthor
		}
		fmt.Fprintf(&b,
			`<div style="margin-bottom: 12px; padding: 8px; border: 1px solid #e2e8f0; border-radius: 4px;">`+
				`<p style="font-weight: bold;">`+
				`<a href="/posts/%d" style="color: #3B82F6; text-decoration: underline;">%s</a>`+
				`</p>`+
				`<p style="font-size: 0.9em; color: #4a5568;">작성자: %s</p>`+
				`<p style="font-size: 0.9em; color: #718096;">내용: %s</p>`+
				`</div>`,
			post.ID, post.Title, author, snippet(post.Content))
	}
	b.WriteString(`</div>`)
	return b.String()
}

func snippet(content string) string {
	runes := []rune(content)
	if len(runes) <= snippetMaxRune {
		return content
	}
	return string(runes[:snippetMaxRune]) + "..."
}
