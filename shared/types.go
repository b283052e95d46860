package shared

import "time"

type User struct {
	Id             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	IsVerified     bool   `json:"isVerified"`
	Reputation     int    `json:"reputation"`
	ViolationCount int    `json:"violationCount,omitempty"`
}

type PostAuthor struct {
	Id         string `json:"id"`
	Username   string `json:"username"`
	Reputation int    `json:"reputation"`
}

type PostImage struct {
	Id       string `json:"id"`
	ImageUrl string `json:"imageUrl"`
}

type EvaluationStats struct {
	Total        int     `json:"total"`
	Likes        int     `json:"likes"`
	Neutrals     int     `json:"neutrals"`
	Dislikes     int     `json:"dislikes"`
	LikeRatio    float64 `json:"likeRatio"`
	DislikeRatio float64 `json:"dislikeRatio"`
}

type Post struct {
	Id              string           `json:"id"`
	Title           string           `json:"title"`
	Content         string           `json:"content"`
	Category        string           `json:"category"`
	SubCategory     string           `json:"subCategory,omitempty"`
	SchoolName      string           `json:"schoolName"`
	MajorName       string           `json:"majorName,omitempty"`
	Author          PostAuthor       `json:"author"`
	Status          string           `json:"status"`
	Images          []PostImage      `json:"images"`
	EvaluationStats *EvaluationStats `json:"evaluationStats,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}

type EvaluationType string

const (
	EvaluationLike    EvaluationType = "like"
	EvaluationNeutral EvaluationType = "neutral"
	EvaluationDislike EvaluationType = "dislike"
)

func (t EvaluationType) IsValid() bool {
	switch t {
	case EvaluationLike, EvaluationNeutral, EvaluationDislike:
		return true
	}
	return false
}

type VerificationDocumentKind string

// The server accepts either document set for student verification. Which
// one takes precedence when both were submitted is a server-side decision.
const (
	VerificationDocumentIdCard     VerificationDocumentKind = "id_card"
	VerificationDocumentTranscript VerificationDocumentKind = "transcript"
)
