package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	shared "xiaoyuan-cli/shared"
)

func (a *Api) SendVerificationCode(email string) (*shared.OkResponse, *shared.ApiError) {
	serverUrl := getApiUrl("/auth/send-verification-code")

	reqBytes, err := json.Marshal(shared.SendVerificationCodeRequest{Email: email})
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	resp, err := unauthenticatedClient.Post(serverUrl, "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, networkErr("sending", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var respBody shared.OkResponse
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &respBody, nil
}

func (a *Api) Register(req shared.RegisterRequest) (*shared.SessionResponse, *shared.ApiError) {
	serverUrl := getApiUrl("/auth/register")

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	resp, err := unauthenticatedClient.Post(serverUrl, "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, networkErr("sending", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var session shared.SessionResponse
	err = json.NewDecoder(resp.Body).Decode(&session)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &session, nil
}

func (a *Api) SignIn(req shared.SignInRequest) (*shared.SessionResponse, *shared.ApiError) {
	serverUrl := getApiUrl("/auth/login")

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	resp, err := unauthenticatedClient.Post(serverUrl, "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, networkErr("sending", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var session shared.SessionResponse
	err = json.NewDecoder(resp.Body).Decode(&session)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &session, nil
}

func (a *Api) GetCurrentUser() (*shared.User, *shared.ApiError) {
	serverUrl := getApiUrl("/auth/me")

	resp, err := authenticatedFastClient.Get(serverUrl)
	if err != nil {
		return nil, networkErr("sending", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		// no token-refresh retry here -- the auth lifecycle owns recovery
		// for this endpoint
		return nil, HandleApiError(resp, errorBody)
	}

	var respBody shared.CurrentUserResponse
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	if respBody.User == nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: "empty user in response"}
	}

	return respBody.User, nil
}

func (a *Api) VerifyEmail(token string) (*shared.OkResponse, *shared.ApiError) {
	serverUrl := getApiUrl("/auth/verify-email") + "?token=" + url.QueryEscape(token)

	resp, err := unauthenticatedClient.Get(serverUrl)
	if err != nil {
		return nil, networkErr("sending", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var respBody shared.OkResponse
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &respBody, nil
}

func (a *Api) RequestPasswordReset(email string) (*shared.OkResponse, *shared.ApiError) {
	serverUrl := getApiUrl("/auth/request-password-reset")

	reqBytes, err := json.Marshal(shared.RequestPasswordResetRequest{Email: email})
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	resp, err := unauthenticatedClient.Post(serverUrl, "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, networkErr("sending", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var respBody shared.OkResponse
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &respBody, nil
}

func (a *Api) ResetPassword(req shared.ResetPasswordRequest) (*shared.OkResponse, *shared.ApiError) {
	serverUrl := getApiUrl("/auth/reset-password")

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	resp, err := unauthenticatedClient.Post(serverUrl, "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, networkErr("sending", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var respBody shared.OkResponse
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &respBody, nil
}

func (a *Api) RefreshToken() (*shared.RefreshTokenResponse, *shared.ApiError) {
	serverUrl := getApiUrl("/auth/refresh-token")

	resp, err := authenticatedFastClient.Post(serverUrl, "application/json", nil)
	if err != nil {
		return nil, networkErr("sending", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var respBody shared.RefreshTokenResponse
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &respBody, nil
}

func (a *Api) ListPosts(params shared.ListPostsParams) ([]*shared.Post, *shared.ApiError) {
	query := url.Values{}
	if params.Category != "" {
		query.Set("category", params.Category)
	}
	if params.SchoolName != "" {
		query.Set("schoolName", params.SchoolName)
	}
	if params.MajorName != "" {
		query.Set("majorName", params.MajorName)
	}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}

	serverUrl := getApiUrl("/posts")
	if len(query) > 0 {
		serverUrl += "?" + query.Encode()
	}

	resp, err := authenticatedFastClient.Get(serverUrl)
	if err != nil {
		return nil, networkErr("sending", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var respBody shared.ListPostsResponse
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return respBody.Posts, nil
}

func (a *Api) GetPost(postId string) (*shared.Post, *shared.ApiError) {
	serverUrl := getApiUrl("/posts/" + url.PathEscape(postId))

	resp, err := authenticatedFastClient.Get(serverUrl)
	if err != nil {
		return nil, networkErr("sending", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var post shared.Post
	err = json.NewDecoder(resp.Body).Decode(&post)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &post, nil
}

func (a *Api) CreatePost(params shared.CreatePostParams) (*shared.Post, *shared.ApiError) {
	serverUrl := getApiUrl("/posts")

	fields := map[string]string{
		"title":      params.Title,
		"content":    params.Content,
		"category":   params.Category,
		"schoolName": params.SchoolName,
	}
	if params.SubCategory != "" {
		fields["subCategory"] = params.SubCategory
	}
	if params.MajorName != "" {
		fields["majorName"] = params.MajorName
	}

	body, contentType, err := multipartBody(fields, "images", params.ImagePaths)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error building request body: %v", err)}
	}

	resp, err := authenticatedUploadClient.Post(serverUrl, contentType, body)
	if err != nil {
		return nil, networkErr("sending", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		apiErr := HandleApiError(resp, errorBody)
		authRefreshed, apiErr := refreshTokenIfNeeded(apiErr)
		if authRefreshed {
			return a.CreatePost(params)
		}
		return nil, apiErr
	}

	var post shared.Post
	err = json.NewDecoder(resp.Body).Decode(&post)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &post, nil
}

func (a *Api) SearchPosts(params shared.SearchParams) ([]*shared.Post, *shared.ApiError) {
	query := url.Values{}
	if params.Query != "" {
		query.Set("q", params.Query)
	}
	if params.SchoolName != "" {
		query.Set("schoolName", params.SchoolName)
	}
	if params.MajorName != "" {
		query.Set("majorName", params.MajorName)
	}
	if params.Category != "" {
		query.Set("category", params.Category)
	}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}

	serverUrl := getApiUrl("/search")
	if len(query) > 0 {
		serverUrl += "?" + query.Encode()
	}

	resp, err := authenticatedFastClient.Get(serverUrl)
	if err != nil {
		return nil, networkErr("sending", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var respBody shared.ListPostsResponse
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return respBody.Posts, nil
}

func (a *Api) EvaluatePost(postId string, evalType shared.EvaluationType) (*shared.OkResponse, *shared.ApiError) {
	serverUrl := getApiUrl("/evaluations/" + url.PathEscape(postId))

	reqBytes, err := json.Marshal(shared.EvaluatePostRequest{Type: evalType})
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	resp, err := authenticatedFastClient.Post(serverUrl, "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, networkErr("sending", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		apiErr := HandleApiError(resp, errorBody)
		authRefreshed, apiErr := refreshTokenIfNeeded(apiErr)
		if authRefreshed {
			return a.EvaluatePost(postId, evalType)
		}
		return nil, apiErr
	}

	var respBody shared.OkResponse
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &respBody, nil
}

func (a *Api) GetEvaluationStats(postId string) (*shared.EvaluationStats, *shared.ApiError) {
	serverUrl := getApiUrl("/evaluations/" + url.PathEscape(postId) + "/stats")

	resp, err := authenticatedFastClient.Get(serverUrl)
	if err != nil {
		return nil, networkErr("sending", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var stats shared.EvaluationStats
	err = json.NewDecoder(resp.Body).Decode(&stats)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &stats, nil
}

func (a *Api) SubmitStudentVerification(params shared.SubmitVerificationParams) (*shared.OkResponse, *shared.ApiError) {
	serverUrl := getApiUrl("/verification/student")

	fields := map[string]string{
		"kind":      string(params.Kind),
		"studentId": params.StudentId,
		"name":      params.Name,
	}

	body, contentType, err := multipartBodyMulti(fields, map[string]string{
		"faceImage":     params.FaceImagePath,
		"documentImage": params.DocumentImagePath,
	})
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error building request body: %v", err)}
	}

	resp, err := authenticatedUploadClient.Post(serverUrl, contentType, body)
	if err != nil {
		return nil, networkErr("sending", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		apiErr := HandleApiError(resp, errorBody)
		authRefreshed, apiErr := refreshTokenIfNeeded(apiErr)
		if authRefreshed {
			return a.SubmitStudentVerification(params)
		}
		return nil, apiErr
	}

	var respBody shared.OkResponse
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &respBody, nil
}

// multipartBody builds a multipart form with string fields plus any number
// of files under a single repeated field name.
func multipartBody(fields map[string]string, fileField string, filePaths []string) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	for key, val := range fields {
		if err := writer.WriteField(key, val); err != nil {
			return nil, "", fmt.Errorf("error writing field %s: %v", key, err)
		}
	}

	for _, path := range filePaths {
		if err := writeFilePart(writer, fileField, path); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("error closing multipart writer: %v", err)
	}

	return buf, writer.FormDataContentType(), nil
}

// multipartBodyMulti is like multipartBody, but with one file per distinct
// field name.
func multipartBodyMulti(fields map[string]string, files map[string]string) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	for key, val := range fields {
		if err := writer.WriteField(key, val); err != nil {
			return nil, "", fmt.Errorf("error writing field %s: %v", key, err)
		}
	}

	for field, path := range files {
		if err := writeFilePart(writer, field, path); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("error closing multipart writer: %v", err)
	}

	return buf, writer.FormDataContentType(), nil
}

func writeFilePart(writer *multipart.Writer, field, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening %s: %v", path, err)
	}
	defer file.Close()

	part, err := writer.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("error creating form file: %v", err)
	}

	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("error copying %s: %v", path, err)
	}

	return nil
}
