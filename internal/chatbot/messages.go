package chatbot

// 아래 문자열들은 클라이언트가 그대로 화면에 띄우는 응답 본문이다.
// 문구를 바꾸면 프런트엔드 노출 텍스트가 바뀌므로 임의로 수정하지 않는다.
const (
	msgLoginRequired  = "로그인하시면 회원님을 위한 맞춤 답변을 드릴 수 있어요."
	msgAskKeyword     = "어떤 키워드로 게시물을 찾아드릴까요?"
	msgGenericFailure = "죄송합니다, 요청을 처리하는 중 문제가 발생했습니다. 잠시 후 다시 시도해주세요."

	msgAIDisabled    = "죄송합니다, 현재 AI 기능을 사용할 수 없습니다. 관리자에게 문의해주세요."
	msgAIBlocked     = "죄송합니다, 해당 주제에 대해서는 답변할 수 없습니다."
	msgAIUnavailable = "죄송합니다, AI 서비스가 현재 불안정하여 응답을 드릴 수 없습니다. 잠시 후 다시 시도해주세요."
	msgAITimeout     = "죄송합니다, AI 서버로부터 응답을 받는 데 시간이 너무 오래 걸립니다. 잠시 후 다시 시도해주세요."
	msgAIInvalidKey  = "죄송합니다. AI 서비스 인증에 문제가 발생했습니다. 관리자가 확인 중입니다."
	msgAIUnknown     = "죄송해요, 지금은 제 머리가 복잡해서 답변을 드리기 어려워요. 잠시 후에 다시 말을 걸어주시겠어요?"

	titleMyPosts    = "%s님이 작성하신 글 목록입니다:"
	emptyMyPosts    = "작성하신 게시물이 없습니다."
	titleLikedPosts = "%s님이 좋아요를 누른 게시물 목록입니다:"
	emptyLikedPosts = "아직 좋아요를 누른 게시물이 없습니다."
	titleSearch     = "'%s'에 대한 검색 결과입니다:"
	emptySearch     = "요청하신 '%s'에 대한 게시물을 찾을 수 없습니다."
)
