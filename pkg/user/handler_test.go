package user

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eventdesk/event-manager/internal/errdef"
	"github.com/eventdesk/event-manager/pkg/model"
	"github.com/eventdesk/event-manager/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandler_RefreshToken(t *testing.T) {
	userService := &mockUserService{}
	user := &model.User{ID: 123}
	userService.
		On("FindById", mock.Anything, uint(123)).
		Return(user, nil)
	tokenService := &mockTokenService{}
	id := uuid.New()
	refreshTokenData := &token.RefreshTokenData{
		SignedToken: "signed-token",
		ID:          id,
		UserId:      123,
	}
	tokenService.
		On("ValidateRefreshToken", mock.Anything, "token").
		Return(refreshTokenData, nil)
	tokens := &token.Tokens{
		AccessToken:  "accessToken",
		TokenType:    "bearer",
		RefreshToken: "refreshToken",
		ExpiresIn:    312,
	}
	tokenService.
		On("GetTokens", user, id.String()).
		Return(tokens, nil)
	handler := NewHandler(userService, tokenService)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = newPost(t, "/refresh", &RefreshTokenRequest{RefreshToken: "token"})

	handler.RefreshToken(c)

	require.Len(t, c.Errors.Errors(), 0)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	var body token.Tokens
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, *tokens, body)
	tokenService.AssertExpectations(t)
	userService.AssertExpectations(t)
}

func TestHandler_RefreshToken_InvalidToken(t *testing.T) {
	userService := &mockUserService{}
	tokenService := &mockTokenService{}
	tokenService.
		On("ValidateRefreshToken", mock.Anything, "token").
		Return(nil, errdef.NewUnauthorized("token expired"))
	handler := NewHandler(userService, tokenService)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = newPost(t, "/refresh", &RefreshTokenRequest{RefreshToken: "token"})

	handler.RefreshToken(c)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	userService.AssertNotCalled(t, "FindById", mock.Anything, mock.Anything)
}

func TestHandler_RefreshToken_UserGone(t *testing.T) {
	userService := &mockUserService{}
	userService.
		On("FindById", mock.Anything, uint(123)).
		Return(nil, errdef.NewNotFound("failed to find user with id 123"))
	tokenService := &mockTokenService{}
	refreshTokenData := &token.RefreshTokenData{
		SignedToken: "signed-token",
		ID:          uuid.New(),
		UserId:      123,
	}
	tokenService.
		On("ValidateRefreshToken", mock.Anything, "token").
		Return(refreshTokenData, nil)
	handler := NewHandler(userService, tokenService)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = newPost(t, "/refresh", &RefreshTokenRequest{RefreshToken: "token"})

	handler.RefreshToken(c)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	tokenService.AssertNotCalled(t, "GetTokens", mock.Anything, mock.Anything)
}

func TestHandler_SignIn(t *testing.T) {
	userService := &mockUserService{}
	user := &model.User{ID: 123}
	tokenService := &mockTokenService{}
	tokens := &token.Tokens{
		AccessToken:  "accessToken",
		TokenType:    "bearer",
		RefreshToken: "refreshToken",
		ExpiresIn:    312,
	}
	tokenService.
		On("GetTokens", user, "").
		Return(tokens, nil)
	handler := NewHandler(userService, tokenService)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Set("user", user)
	c.Request = newPost(t, "/tokens", nil)

	handler.SignIn(c)

	require.Len(t, c.Errors.Errors(), 0)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	tokenService.AssertExpectations(t)
}

func TestHandler_FindById_OtherUser(t *testing.T) {
	userService := &mockUserService{}
	tokenService := &mockTokenService{}
	handler := NewHandler(userService, tokenService)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Set("user", &model.User{ID: 123})
	c.Params = gin.Params{{Key: "id", Value: "999"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/users/999", nil)

	handler.FindById(c)

	require.Len(t, c.Errors.Errors(), 1)
	assert.ErrorContains(t, c.Errors.Last(), "access denied")
	userService.AssertNotCalled(t, "FindById", mock.Anything, mock.Anything)
}

func TestHandler_SignOut(t *testing.T) {
	userService := &mockUserService{}
	tokenService := &mockTokenService{}
	tokenService.
		On("SignOut", uint(123)).
		Return(nil)
	handler := NewHandler(userService, tokenService)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Set("user", &model.User{ID: 123})
	c.Request = httptest.NewRequest(http.MethodDelete, "/users", nil)

	handler.SignOut(c)

	require.Len(t, c.Errors.Errors(), 0)
	assert.Equal(t, http.StatusOK, recorder.Code)
	tokenService.AssertExpectations(t)
}

func TestHandler_Delete(t *testing.T) {
	userService := &mockUserService{}
	userService.
		On("Delete", mock.Anything, uint(123)).
		Return(nil)
	tokenService := &mockTokenService{}
	tokenService.
		On("SignOut", uint(123)).
		Return(nil)
	handler := NewHandler(userService, tokenService)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Set("user", &model.User{ID: 123})
	c.Params = gin.Params{{Key: "id", Value: "123"}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/users/123", nil)

	handler.Delete(c)

	require.Len(t, c.Errors.Errors(), 0)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	userService.AssertExpectations(t)
	tokenService.AssertExpectations(t)
}

func TestHandler_Delete_OtherUser(t *testing.T) {
	userService := &mockUserService{}
	tokenService := &mockTokenService{}
	handler := NewHandler(userService, tokenService)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Set("user", &model.User{ID: 123})
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/users/7", nil)

	handler.Delete(c)

	require.Len(t, c.Errors.Errors(), 1)
	assert.ErrorContains(t, c.Errors.Last(), "access denied")
	userService.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func newPost(t *testing.T, path string, jsonBody any) *http.Request {
	body, err := json.Marshal(jsonBody)
	require.NoError(t, err)
	request, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	require.NoError(t, err)
	request.Header.Set("Content-Type", "application/json")
	return request
}

type mockUserService struct{ mock.Mock }

func (m *mockUserService) SignUp(ctx context.Context, email string, password string) (*model.User, error) {
	called := m.Called(ctx, email, password)
	user, ok := called.Get(0).(*model.User)
	if ok {
		return user, nil
	}
	return nil, called.Error(1)
}

func (m *mockUserService) SignIn(ctx context.Context, email string, password string) (*model.User, error) {
	called := m.Called(ctx, email, password)
	user, ok := called.Get(0).(*model.User)
	if ok {
		return user, nil
	}
	return nil, called.Error(1)
}

func (m *mockUserService) Delete(ctx context.Context, id uint) error {
	called := m.Called(ctx, id)
	return called.Error(0)
}

func (m *mockUserService) FindById(ctx context.Context, id uint) (*model.User, error) {
	called := m.Called(ctx, id)
	user, ok := called.Get(0).(*model.User)
	if ok {
		return user, nil
	}
	return nil, called.Error(1)
}

type mockTokenService struct{ mock.Mock }

func (m *mockTokenService) GetTokens(user *model.User, previousTokenId string) (*token.Tokens, error) {
	called := m.Called(user, previousTokenId)
	tokens, ok := called.Get(0).(*token.Tokens)
	if ok {
		return tokens, nil
	}
	return nil, called.Error(1)
}

func (m *mockTokenService) ValidateRefreshToken(ctx context.Context, tokenString string) (*token.RefreshTokenData, error) {
	called := m.Called(ctx, tokenString)
	data, ok := called.Get(0).(*token.RefreshTokenData)
	if ok {
		return data, nil
	}
	return nil, called.Error(1)
}

func (m *mockTokenService) SignOut(userId uint) error {
	called := m.Called(userId)
	return called.Error(0)
}
