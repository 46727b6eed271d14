package chatbot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gyejin/reactboard-server/internal/gemini"
)

// Actor 는 챗봇에 말을 건 로그인 사용자다. 비로그인 요청은 nil 로 전달된다.
type Actor struct {
	ID       int64
	Nickname string
}

// PostDirectory 는 구조화 명령이 조회하는 게시물 저장소다.
type PostDirectory interface {
	FindMyPosts(ctx context.Context, userID int64) ([]PostSummary, error)
	FindLikedPosts(ctx context.Context, userID int64) ([]PostSummary, error)
	Search(ctx context.Context, keyword string) ([]PostSummary, error)
}

// Generator 는 생성형 폴백 응답을 만든다.
type Generator interface {
	Complete(ctx context.Context, prompt string) gemini.Result
}

// Service 는 메시지를 의도 분류하고 명령 실행 또는 생성형 폴백으로 응답한다.
type Service struct {
	directory PostDirectory
	generator Generator
	logger    *slog.Logger
}

// NewService 는 챗봇 서비스를 생성한다.
func NewService(directory PostDirectory, generator Generator, logger *slog.Logger) *Service {
	return &Service{
		directory: directory,
		generator: generator,
		logger:    logger,
	}
}

// Respond 는 메시지 하나에 대한 최종 응답 문자열을 돌려준다.
// 내부 오류는 로그로 남기고 사용자에게는 고정 사과 문구만 내보낸다.
func (s *Service) Respond(ctx context.Context, message string, actor *Actor) string {
	reply, err := s.respond(ctx, message, actor)
	if err != nil {
		s.logger.Error("chatbot_respond_failed", "error", err)
		return msgGenericFailure
	}
	return reply
}

func (s *Service) respond(ctx context.Context, message string, actor *Actor) (string, error) {
	normalized := NormalizeMessage(message)
	intent, keyword := Classify(normalized, message)

	switch intent {
	case IntentMyPosts:
		if actor == nil {
			return msgLoginRequired, nil
		}
		posts, err := s.directory.FindMyPosts(ctx, actor.ID)
		if err != nil {
			return "", fmt.Errorf("find my posts: %w", err)
		}
		return FormatPostList(fmt.Sprintf(titleMyPosts, actor.Nickname), posts, emptyMyPosts), nil

	case IntentLikedPosts:
		if actor == nil {
			return msgLoginRequired, nil
		}
		posts, err := s.directory.FindLikedPosts(ctx, actor.ID)
		if err != nil {
			return "", fmt.Errorf("find liked posts: %w", err)
		}
		return FormatPostList(fmt.Sprintf(titleLikedPosts, actor.Nickname), posts, emptyLikedPosts), nil

	case IntentSearch:
		if keyword == "" {
			return msgAskKeyword, nil
		}
		posts, err := s.directory.Search(ctx, keyword)
		if err != nil {
			return "", fmt.Errorf("search posts: %w", err)
		}
		title := fmt.Sprintf(titleSearch, keyword)
		empty := fmt.Sprintf(emptySearch, keyword)
		return FormatPostList(title, posts, empty), nil
	}

	prompt, err := BuildPrompt(message, actor)
	if err != nil {
		return "", fmt.Errorf("build prompt: %w", err)
	}
	return replyForOutcome(s.generator.Complete(ctx, prompt)), nil
}

// replyForOutcome 는 생성형 결과 분류를 고정 응답 문구로 바꾼다.
func replyForOutcome(result gemini.Result) string {
	switch result.Kind {
	case gemini.OutcomeSuccess:
		return result.Text
	case gemini.OutcomeDisabled:
		return msgAIDisabled
	case gemini.OutcomeBlocked:
		return msgAIBlocked
	case gemini.OutcomeUnavailable:
		return msgAIUnavailable
	case gemini.OutcomeTimeout:
		return msgAITimeout
	case gemini.OutcomeInvalidKey:
		return msgAIInvalidKey
	default:
		return msgAIUnknown
	}
}
