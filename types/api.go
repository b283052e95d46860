package types

import (
	shared "xiaoyuan-cli/shared"
)

type ApiClient interface {
	SendVerificationCode(email string) (*shared.OkResponse, *shared.ApiError)
	Register(req shared.RegisterRequest) (*shared.SessionResponse, *shared.ApiError)
	SignIn(req shared.SignInRequest) (*shared.SessionResponse, *shared.ApiError)
	GetCurrentUser() (*shared.User, *shared.ApiError)
	VerifyEmail(token string) (*shared.OkResponse, *shared.ApiError)
	RequestPasswordReset(email string) (*shared.OkResponse, *shared.ApiError)
	ResetPassword(req shared.ResetPasswordRequest) (*shared.OkResponse, *shared.ApiError)
	RefreshToken() (*shared.RefreshTokenResponse, *shared.ApiError)

	ListPosts(params shared.ListPostsParams) ([]*shared.Post, *shared.ApiError)
	GetPost(postId string) (*shared.Post, *shared.ApiError)
	CreatePost(params shared.CreatePostParams) (*shared.Post, *shared.ApiError)
	SearchPosts(params shared.SearchParams) ([]*shared.Post, *shared.ApiError)

	EvaluatePost(postId string, evalType shared.EvaluationType) (*shared.OkResponse, *shared.ApiError)
	GetEvaluationStats(postId string) (*shared.EvaluationStats, *shared.ApiError)

	SubmitStudentVerification(params shared.SubmitVerificationParams) (*shared.OkResponse, *shared.ApiError)
}
