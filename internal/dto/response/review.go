package response

// Confirmation messages returned by review mutations.
const (
	MessageReviewCreated = "작성되었습니다."
	MessageReviewUpdated = "수정되었습니다."
	MessageReviewDeleted = "삭제되었습니다."
)

type MessageResponse struct {
	Message string `json:"message"`
}
