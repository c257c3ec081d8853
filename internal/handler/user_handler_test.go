package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"smartgoals/internal/auth"
	"smartgoals/internal/errors"
	"smartgoals/internal/model"
	"smartgoals/internal/service"
)

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Signup(ctx context.Context, user *model.User) (*model.User, string, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockUserService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, id uuid.UUID, update service.UserUpdate) (*model.User, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func testCookies() *auth.CookieManager {
	return auth.NewCookieManager(true, http.SameSiteNoneMode)
}

func sampleUser() *model.User {
	return &model.User{
		ID:       uuid.New(),
		Name:     "A",
		LastName: "B",
		Username: "ab",
		Email:    "a@b.com",
	}
}

func TestUserHandler_Signup(t *testing.T) {
	const body = `{"user_name":"A","user_lastname":"B","user_username":"ab","user_email":"a@b.com","user_password":"secret1"}`

	t.Run("created", func(t *testing.T) {
		user := sampleUser()
		svc := new(MockUserService)
		svc.On("Signup", mock.Anything, mock.AnythingOfType("*model.User")).
			Return(user, "token-abc", nil)

		h := NewUserHandler(svc, testCookies())
		c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/api/users/signup", body)

		require.NoError(t, h.Signup(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "token-abc", resp.AccessToken)
		assert.Equal(t, user.ID, resp.User.ID)
		assert.NotContains(t, rec.Body.String(), "user_password")
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Signup", mock.Anything, mock.Anything).
			Return(nil, "", errors.ErrEmailTaken)

		h := NewUserHandler(svc, testCookies())
		c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/api/users/signup", body)

		require.NoError(t, h.Signup(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "Email already registered")
	})

	t.Run("validation failure short password", func(t *testing.T) {
		svc := new(MockUserService)
		h := NewUserHandler(svc, testCookies())
		c, _ := newJSONContext(newTestEcho(), http.MethodPost, "/api/users/signup",
			`{"user_name":"A","user_lastname":"B","user_username":"ab","user_email":"a@b.com","user_password":"short"}`)

		err := h.Signup(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		svc.AssertNotCalled(t, "Signup")
	})
}

func TestUserHandler_Login(t *testing.T) {
	t.Run("success sets session cookie", func(t *testing.T) {
		user := sampleUser()
		svc := new(MockUserService)
		svc.On("Login", mock.Anything, "a@b.com", "secret1").
			Return(user, "token-abc", nil)

		h := NewUserHandler(svc, testCookies())
		c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/api/users/login",
			`{"user_email":"a@b.com","user_password":"secret1"}`)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "token-abc")

		var cookie *http.Cookie
		for _, ck := range rec.Result().Cookies() {
			if ck.Name == auth.AccessTokenCookie {
				cookie = ck
			}
		}
		require.NotNil(t, cookie)
		assert.Equal(t, "token-abc", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, 900, cookie.MaxAge)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Login", mock.Anything, "a@b.com", "wrong1").
			Return(nil, "", errors.ErrInvalidCredentials)

		h := NewUserHandler(svc, testCookies())
		c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/api/users/login",
			`{"user_email":"a@b.com","user_password":"wrong1"}`)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid email or password")
	})
}

func TestUserHandler_Logout_ClearsCookie(t *testing.T) {
	svc := new(MockUserService)
	h := NewUserHandler(svc, testCookies())
	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/api/users/logout", "")

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var cookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == auth.AccessTokenCookie {
			cookie = ck
		}
	}
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestUserHandler_DeleteUser_NotFound(t *testing.T) {
	svc := new(MockUserService)
	id := uuid.New()
	svc.On("DeleteUser", mock.Anything, id).Return(errors.ErrUserNotFound)

	h := NewUserHandler(svc, testCookies())
	e := newTestEcho()
	c, rec := newJSONContext(e, http.MethodDelete, "/api/users/deleted/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.DeleteUser(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found")
}

func TestUserHandler_ListUsers_Empty(t *testing.T) {
	svc := new(MockUserService)
	svc.On("ListUsers", mock.Anything).Return(nil, errors.ErrNoUsers)

	h := NewUserHandler(svc, testCookies())
	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/api/users", "")

	require.NoError(t, h.ListUsers(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No users found")
}

func TestUserHandler_UpdateUser_Partial(t *testing.T) {
	user := sampleUser()
	user.Username = "new-handle"
	svc := new(MockUserService)
	svc.On("UpdateUser", mock.Anything, user.ID, mock.MatchedBy(func(u service.UserUpdate) bool {
		return u.Username != nil && *u.Username == "new-handle" &&
			u.Name == nil && u.LastName == nil && u.Email == nil
	})).Return(user, nil)

	h := NewUserHandler(svc, testCookies())
	c, rec := newJSONContext(newTestEcho(), http.MethodPatch, "/api/users/update/"+user.ID.String(),
		`{"user_username":"new-handle"}`)
	c.SetParamNames("id")
	c.SetParamValues(user.ID.String())

	require.NoError(t, h.UpdateUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new-handle")
	svc.AssertExpectations(t)
}
