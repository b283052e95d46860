package shared

type SendVerificationCodeRequest struct {
	Email string `json:"email"`
}

type RegisterRequest struct {
	Username           string `json:"username"`
	Password           string `json:"password"`
	ConfirmPassword    string `json:"confirmPassword"`
	Email              string `json:"email"`
	VerificationCode   string `json:"verificationCode"`
	VerificationAnswer string `json:"verificationAnswer"`
	AgreeTerms         bool   `json:"agreeTerms"`
}

type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionResponse is returned by register and sign-in. Token and User may
// both be absent when the server defers the session (e.g. email confirmation
// required first).
type SessionResponse struct {
	Token string `json:"token,omitempty"`
	User  *User  `json:"user,omitempty"`
}

type CurrentUserResponse struct {
	User *User `json:"user"`
}

type RequestPasswordResetRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

type RefreshTokenResponse struct {
	Token string `json:"token"`
}

type OkResponse struct {
	Ok      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

type ListPostsParams struct {
	Category   string
	SchoolName string
	MajorName  string
	Page       int
	Limit      int
}

type ListPostsResponse struct {
	Posts []*Post `json:"posts"`
}

type SearchParams struct {
	Query      string
	SchoolName string
	MajorName  string
	Category   string
	Page       int
	Limit      int
}

// CreatePostParams is sent as multipart form data. Image entries are file
// paths resolved client-side.
type CreatePostParams struct {
	Title       string
	Content     string
	Category    string
	SubCategory string
	SchoolName  string
	MajorName   string
	ImagePaths  []string
}

type EvaluatePostRequest struct {
	Type EvaluationType `json:"type"`
}

// SubmitVerificationParams is sent as multipart form data. FaceImagePath is
// always required; DocumentImagePath holds whichever document Kind names.
type SubmitVerificationParams struct {
	Kind              VerificationDocumentKind
	StudentId         string
	Name              string
	FaceImagePath     string
	DocumentImagePath string
}
