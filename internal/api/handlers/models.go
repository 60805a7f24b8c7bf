package handlers

type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VerifyRequest struct {
	Username string `json:"username"`
	Code     string `json:"code"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LikeRequest struct {
	Username string `json:"username"`
}

type CommentRequest struct {
	Username string `json:"username"`
	Text     string `json:"text"`
}

type FollowRequest struct {
	Follower  string `json:"follower"`
	Following string `json:"following"`
}

type PresignRequest struct {
	Key         string `json:"key"`
	ContentType string `json:"contentType"`
}

type DeleteRequest struct {
	Key string `json:"key"`
}

type DetailsRequest struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}
