package shared

import (
	"regexp"
	"strings"
	"unicode"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
var codeRegex = regexp.MustCompile(`^\d{6}$`)

func validationError(msg string) *ApiError {
	return &ApiError{Type: ApiErrorTypeValidation, Msg: msg}
}

func ValidateUsername(value string) *ApiError {
	value = strings.TrimSpace(value)
	if value == "" {
		return validationError("username is required")
	}
	if len([]rune(value)) < 3 {
		return validationError("username must be at least 3 characters")
	}
	if len([]rune(value)) > 15 {
		return validationError("username must be at most 15 characters")
	}
	for _, r := range value {
		if r == '_' || unicode.IsDigit(r) || unicode.Is(unicode.Han, r) ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			continue
		}
		return validationError("username may only contain letters, digits, underscores, and Chinese characters")
	}
	return nil
}

func ValidatePassword(value string) *ApiError {
	if strings.TrimSpace(value) == "" {
		return validationError("password is required")
	}
	if len(value) < 6 {
		return validationError("password must be at least 6 characters")
	}
	if len(value) > 20 {
		return validationError("password must be at most 20 characters")
	}
	var hasLower, hasUpper, hasDigit bool
	for _, r := range value {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLower {
		return validationError("password must contain a lowercase letter")
	}
	if !hasUpper {
		return validationError("password must contain an uppercase letter")
	}
	if !hasDigit {
		return validationError("password must contain a digit")
	}
	return nil
}

func ValidateEmail(value string) *ApiError {
	if strings.TrimSpace(value) == "" {
		return validationError("email is required")
	}
	if !emailRegex.MatchString(value) {
		return validationError("please enter a valid email address")
	}
	return nil
}

func ValidateVerificationCode(value string) *ApiError {
	if strings.TrimSpace(value) == "" {
		return validationError("verification code is required")
	}
	if !codeRegex.MatchString(value) {
		return validationError("verification code must be 6 digits")
	}
	return nil
}

// ValidateRegisterRequest runs the whole pre-submission check. A request
// that fails here never reaches the network.
func ValidateRegisterRequest(req RegisterRequest) *ApiError {
	if apiErr := ValidateUsername(req.Username); apiErr != nil {
		return apiErr
	}
	if apiErr := ValidatePassword(req.Password); apiErr != nil {
		return apiErr
	}
	if req.ConfirmPassword == "" {
		return validationError("please confirm your password")
	}
	if req.Password != req.ConfirmPassword {
		return validationError("passwords do not match")
	}
	if apiErr := ValidateEmail(req.Email); apiErr != nil {
		return apiErr
	}
	if apiErr := ValidateVerificationCode(req.VerificationCode); apiErr != nil {
		return apiErr
	}
	if answer := strings.ToLower(strings.TrimSpace(req.VerificationAnswer)); answer != "yes" && answer != "是" {
		return validationError("you must agree to follow the forum rules to register")
	}
	if !req.AgreeTerms {
		return validationError("please agree to the terms of service")
	}
	return nil
}
