package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		Username:           "alice01",
		Password:           "Password1",
		ConfirmPassword:    "Password1",
		Email:              "alice@example.edu",
		VerificationCode:   "123456",
		VerificationAnswer: "yes",
		AgreeTerms:         true,
	}
}

func TestValidateRegisterRequestHappyPath(t *testing.T) {
	assert.Nil(t, ValidateRegisterRequest(validRegisterRequest()))
}

func TestValidateRegisterRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *RegisterRequest)
	}{
		{"short username", func(r *RegisterRequest) { r.Username = "al" }},
		{"username with spaces", func(r *RegisterRequest) { r.Username = "alice 01" }},
		{"password without uppercase", func(r *RegisterRequest) { r.Password = "password1"; r.ConfirmPassword = "password1" }},
		{"password without digit", func(r *RegisterRequest) { r.Password = "Password"; r.ConfirmPassword = "Password" }},
		{"password mismatch", func(r *RegisterRequest) { r.ConfirmPassword = "Password2" }},
		{"missing confirmation", func(r *RegisterRequest) { r.ConfirmPassword = "" }},
		{"bad email", func(r *RegisterRequest) { r.Email = "alice@nowhere" }},
		{"short code", func(r *RegisterRequest) { r.VerificationCode = "123" }},
		{"non-numeric code", func(r *RegisterRequest) { r.VerificationCode = "12345a" }},
		{"rules not accepted", func(r *RegisterRequest) { r.VerificationAnswer = "no" }},
		{"terms not agreed", func(r *RegisterRequest) { r.AgreeTerms = false }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)

			apiErr := ValidateRegisterRequest(req)
			require.NotNil(t, apiErr)
			assert.Equal(t, ApiErrorTypeValidation, apiErr.Type)
			assert.NotEmpty(t, apiErr.Msg)
		})
	}
}

func TestValidateUsernameAllowsChinese(t *testing.T) {
	assert.Nil(t, ValidateUsername("小明_01"))
}

func TestValidateVerificationAnswerChinese(t *testing.T) {
	req := validRegisterRequest()
	req.VerificationAnswer = "是"
	assert.Nil(t, ValidateRegisterRequest(req))
}

func TestEvaluationTypeValidity(t *testing.T) {
	assert.True(t, EvaluationLike.IsValid())
	assert.True(t, EvaluationNeutral.IsValid())
	assert.True(t, EvaluationDislike.IsValid())
	assert.False(t, EvaluationType("love").IsValid())
	assert.False(t, EvaluationType("").IsValid())
}
