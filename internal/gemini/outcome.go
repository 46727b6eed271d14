package gemini

// OutcomeKind 는 생성형 호출의 결과 분류다.
// 챗봇 계층은 이 분류만 보고 사용자 문구를 고른다.
type OutcomeKind int

const (
	// OutcomeSuccess 는 모델 텍스트를 받아온 경우다.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeDisabled 는 API 키가 없거나 자리표시자라 AI 기능이 꺼진 경우다.
	OutcomeDisabled
	// OutcomeTimeout 은 응답 마감시간을 넘긴 경우다.
	OutcomeTimeout
	// OutcomeUnavailable 은 상류 서비스가 503 을 반환한 경우다.
	OutcomeUnavailable
	// OutcomeInvalidKey 는 API 키 인증이 거부된 경우다.
	OutcomeInvalidKey
	// OutcomeBlocked 는 후보가 비어 있거나 안전 필터에 걸린 경우다.
	OutcomeBlocked
	// OutcomeUnknown 은 그 밖의 모든 실패다.
	OutcomeUnknown
)

// Result 는 생성형 호출 한 건의 결과다.
type Result struct {
	Kind OutcomeKind
	Text string
	Err  error
}
