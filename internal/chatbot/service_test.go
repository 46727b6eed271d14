package chatbot

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/gyejin/reactboard-server/internal/gemini"
)

type stubDirectory struct {
	myPosts    []PostSummary
	likedPosts []PostSummary
	found      []PostSummary
	err        error

	myPostsCalls    int
	likedPostsCalls int
	searchKeyword   string
}

func (d *stubDirectory) FindMyPosts(ctx context.Context, userID int64) ([]PostSummary, error) {
	d.myPostsCalls++
	return d.myPosts, d.err
}

func (d *stubDirectory) FindLikedPosts(ctx context.Context, userID int64) ([]PostSummary, error) {
	d.likedPostsCalls++
	return d.likedPosts, d.err
}

func (d *stubDirectory) Search(ctx context.Context, keyword string) ([]PostSummary, error) {
	d.searchKeyword = keyword
	return d.found, d.err
}

type stubGenerator struct {
	result gemini.Result
	prompt string
	calls  int
}

func (g *stubGenerator) Complete(ctx context.Context, prompt string) gemini.Result {
	g.calls++
	g.prompt = prompt
	return g.result
}

func newTestService(directory *stubDirectory, generator *stubGenerator) *Service {
	return NewService(directory, generator, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRespondMyPostsRequiresLogin(t *testing.T) {
	directory := &stubDirectory{}
	generator := &stubGenerator{}
	service := newTestService(directory, generator)

	got := service.Respond(context.Background(), "내가 쓴 글", nil)
	if got != msgLoginRequired {
		t.Fatalf("anonymous personal request must ask for login, got %q", got)
	}
	if directory.myPostsCalls != 0 {
		t.Fatalf("directory must not be queried for anonymous users")
	}
	if generator.calls != 0 {
		t.Fatalf("generator must not run for personal intents")
	}
}

func TestRespondMyPosts(t *testing.T) {
	directory := &stubDirectory{
		myPosts: []PostSummary{{ID: 3, Title: "내 첫 글", Content: "본문", AuthorNickname: "지니"}},
	}
	service := newTestService(directory, &stubGenerator{})

	got := service.Respond(context.Background(), "내가 쓴 글", &Actor{ID: 7, Nickname: "지니"})
	if directory.myPostsCalls != 1 {
		t.Fatalf("expected my-posts lookup")
	}
	if !strings.HasPrefix(got, "지니님이 작성하신 글 목록입니다:") {
		t.Fatalf("unexpected reply prefix: %q", got)
	}
	if !strings.Contains(got, "내 첫 글") {
		t.Fatalf("reply missing post title: %q", got)
	}
}

func TestRespondMyPostsSpokenForm(t *testing.T) {
	directory := &stubDirectory{
		myPosts: []PostSummary{{ID: 1, Title: "첫 번째 글", Content: "길지 않은 본문", AuthorNickname: "kim"}},
	}
	service := newTestService(directory, &stubGenerator{})

	got := service.Respond(context.Background(), "내가 쓴 글 보여줘", &Actor{ID: 1, Nickname: "kim"})
	if directory.myPostsCalls != 1 {
		t.Fatalf("spoken request must reach the my-posts lookup")
	}
	if directory.searchKeyword != "" {
		t.Fatalf("spoken request must not fall through to search, searched %q", directory.searchKeyword)
	}
	if !strings.Contains(got, "첫 번째 글") || !strings.Contains(got, "작성자: kim") {
		t.Fatalf("reply missing title or author: %q", got)
	}
}

func TestRespondMyPostsEmpty(t *testing.T) {
	service := newTestService(&stubDirectory{}, &stubGenerator{})

	got := service.Respond(context.Background(), "내 글 목록", &Actor{ID: 7, Nickname: "지니"})
	if got != emptyMyPosts {
		t.Fatalf("expected %q, got %q", emptyMyPosts, got)
	}
}

func TestRespondLikedPosts(t *testing.T) {
	directory := &stubDirectory{
		likedPosts: []PostSummary{{ID: 9, Title: "좋은 글", Content: "내용", AuthorNickname: "글쓴이"}},
	}
	service := newTestService(directory, &stubGenerator{})

	got := service.Respond(context.Background(), "좋아요 목록", &Actor{ID: 7, Nickname: "지니"})
	if directory.likedPostsCalls != 1 {
		t.Fatalf("expected liked-posts lookup")
	}
	if !strings.HasPrefix(got, "지니님이 좋아요를 누른 게시물 목록입니다:") {
		t.Fatalf("unexpected reply prefix: %q", got)
	}
}

func TestRespondBareSearchAsksForKeyword(t *testing.T) {
	directory := &stubDirectory{}
	generator := &stubGenerator{}
	service := newTestService(directory, generator)

	got := service.Respond(context.Background(), "검색해줘", nil)
	if got != msgAskKeyword {
		t.Fatalf("expected keyword clarification, got %q", got)
	}
	if directory.searchKeyword != "" {
		t.Fatalf("search must not run without a keyword")
	}
	if generator.calls != 0 {
		t.Fatalf("generator must not run for a bare search imperative")
	}
}

func TestRespondSearchFound(t *testing.T) {
	directory := &stubDirectory{
		found: []PostSummary{{ID: 4, Title: "리액트 훅 가이드", Content: "useEffect", AuthorNickname: "멘토"}},
	}
	service := newTestService(directory, &stubGenerator{})

	got := service.Respond(context.Background(), "리액트 훅 찾아줘", nil)
	if directory.searchKeyword != "리액트 훅" {
		t.Fatalf("unexpected search keyword %q", directory.searchKeyword)
	}
	if !strings.HasPrefix(got, "'리액트 훅'에 대한 검색 결과입니다:") {
		t.Fatalf("unexpected reply prefix: %q", got)
	}
}

func TestRespondSearchNotFound(t *testing.T) {
	service := newTestService(&stubDirectory{}, &stubGenerator{})

	got := service.Respond(context.Background(), "양자컴퓨터 찾아줘", nil)
	want := "요청하신 '양자컴퓨터'에 대한 게시물을 찾을 수 없습니다."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRespondGenerativeFallback(t *testing.T) {
	generator := &stubGenerator{result: gemini.Result{Kind: gemini.OutcomeSuccess, Text: "안녕하세요!"}}
	service := newTestService(&stubDirectory{}, generator)

	got := service.Respond(context.Background(), "안녕하세요", nil)
	if got != "안녕하세요!" {
		t.Fatalf("expected generator text, got %q", got)
	}
	if generator.calls != 1 {
		t.Fatalf("expected one generator call, got %d", generator.calls)
	}
	for _, want := range []string{"방문자", "비로그인", `"안녕하세요"`} {
		if !strings.Contains(generator.prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

func TestRespondGenerativePromptForMember(t *testing.T) {
	generator := &stubGenerator{result: gemini.Result{Kind: gemini.OutcomeSuccess, Text: "네."}}
	service := newTestService(&stubDirectory{}, generator)

	service.Respond(context.Background(), "안녕하세요", &Actor{ID: 1, Nickname: "지니"})
	for _, want := range []string{"지니", "로그인"} {
		if !strings.Contains(generator.prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

func TestRespondOutcomeMessages(t *testing.T) {
	cases := []struct {
		kind gemini.OutcomeKind
		want string
	}{
		{kind: gemini.OutcomeDisabled, want: msgAIDisabled},
		{kind: gemini.OutcomeBlocked, want: msgAIBlocked},
		{kind: gemini.OutcomeUnavailable, want: msgAIUnavailable},
		{kind: gemini.OutcomeTimeout, want: msgAITimeout},
		{kind: gemini.OutcomeInvalidKey, want: msgAIInvalidKey},
		{kind: gemini.OutcomeUnknown, want: msgAIUnknown},
	}

	for _, tc := range cases {
		generator := &stubGenerator{result: gemini.Result{Kind: tc.kind, Err: errors.New("boom")}}
		service := newTestService(&stubDirectory{}, generator)
		if got := service.Respond(context.Background(), "안녕하세요", nil); got != tc.want {
			t.Fatalf("outcome %v: expected %q, got %q", tc.kind, got, tc.want)
		}
	}
}

func TestRespondDirectoryFailure(t *testing.T) {
	directory := &stubDirectory{err: errors.New("db down")}
	service := newTestService(directory, &stubGenerator{})

	got := service.Respond(context.Background(), "내 글 목록", &Actor{ID: 7, Nickname: "지니"})
	if got != msgGenericFailure {
		t.Fatalf("expected generic failure message, got %q", got)
	}
}
