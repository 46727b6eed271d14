package chatbot

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed prompts/*.yml
var promptFiles embed.FS

const (
	assistantPromptFile = "prompts/assistant.yml"
	anonymousName       = "방문자"
	loginStateMember    = "로그인"
	loginStateAnonymous = "비로그인"
)

var (
	assistantTemplateOnce sync.Once
	assistantTemplate     string
	assistantTemplateErr  error
)

// loadAssistantTemplate 는 어시스턴트 프롬프트 YAML 에서 template 키를 읽는다.
func loadAssistantTemplate() (string, error) {
	assistantTemplateOnce.Do(func() {
		data, err := fs.ReadFile(promptFiles, assistantPromptFile)
		if err != nil {
			assistantTemplateErr = fmt.Errorf("read prompt file: %w", err)
			return
		}
		var mapping map[string]string
		if err := yaml.Unmarshal(data, &mapping); err != nil {
			assistantTemplateErr = fmt.Errorf("parse prompt yaml: %w", err)
			return
		}
		template, ok := mapping["template"]
		if !ok || strings.TrimSpace(template) == "" {
			assistantTemplateErr = fmt.Errorf("%s: missing template key", assistantPromptFile)
			return
		}
		assistantTemplate = template
	})
	return assistantTemplate, assistantTemplateErr
}

// BuildPrompt 는 사용자 메시지와 로그인 상태로 생성형 프롬프트를 조립한다.
// actor 가 nil 이면 방문자 문구로 채운다.
func BuildPrompt(message string, actor *Actor) (string, error) {
	template, err := loadAssistantTemplate()
	if err != nil {
		return "", err
	}

	values := map[string]string{
		"userName":   anonymousName,
		"loginState": loginStateAnonymous,
		"message":    message,
	}
	if actor != nil {
		values["userName"] = actor.Nickname
		values["loginState"] = loginStateMember
	}
	return formatTemplate(template, values)
}

// formatTemplate 는 {key} 자리표시자를 값으로 치환한다. {{ 와 }} 는 리터럴 중괄호다.
func formatTemplate(template string, values map[string]string) (string, error) {
	var builder strings.Builder
	builder.Grow(len(template))

	for i := 0; i < len(template); {
		switch template[i] {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				builder.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("invalid template: missing '}'")
			}
			key := template[i+1 : i+1+end]
			value, ok := values[key]
			if !ok {
				return "", fmt.Errorf("missing template value for %q", key)
			}
			builder.WriteString(value)
			i += end + 2
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				builder.WriteByte('}')
				i += 2
				continue
			}
			return "", fmt.Errorf("invalid template: unexpected '}'")
		default:
			builder.WriteByte(template[i])
			i++
		}
	}

	return builder.String(), nil
}
