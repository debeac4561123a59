package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"skillswap/config"
	custommw "skillswap/internal/delivery/http/middleware"
	"skillswap/internal/delivery/http/router"
	"skillswap/internal/delivery/http/router/handler"
	"skillswap/internal/delivery/http/validator"
	"skillswap/internal/domain/entity"
	"skillswap/internal/infra/auth"
	"skillswap/internal/infra/jsonstore"
	"skillswap/internal/infra/upload"
	"skillswap/internal/usecase"
)

// newTestServer wires the full HTTP surface against temp-dir storage, the
// same way main does minus fx.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Path = t.TempDir()
	cfg.Uploads.Dir = t.TempDir()
	cfg.Uploads.PublicURL = "http://localhost:3001"
	cfg.Uploads.MaxBytes = 5 * 1024 * 1024
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"
	cfg.Token.AccessTTL = 15 * time.Minute
	cfg.Token.RefreshTTL = time.Hour
	cfg.Auth.BcryptCost = bcrypt.MinCost

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	store, err := jsonstore.New(cfg, logger)
	require.NoError(t, err)

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	avatarSvc, err := upload.NewAvatarService(cfg, logger)
	require.NoError(t, err)

	users := jsonstore.NewUserRepository(store)
	skills := jsonstore.NewSkillRepository(store)
	categories := jsonstore.NewCategoryRepository(store)
	subcategories := jsonstore.NewSubcategoryRepository(store)
	cities := jsonstore.NewCityRepository(store)
	likes := jsonstore.NewLikeRepository(store)
	refreshTokens := jsonstore.NewRefreshTokenRepository(store)

	require.NoError(t, cities.Create(context.Background(), &entity.City{Name: "Riga"}))
	require.NoError(t, categories.Create(context.Background(), &entity.Category{Name: "Music"}))
	require.NoError(t, subcategories.Create(context.Background(), &entity.Subcategory{CategoryID: 1, Name: "Guitar"}))

	hasher := auth.NewBcryptHasher(cfg)

	authUC := usecase.NewAuthService(users, cities, refreshTokens, hasher, tokenSvc, logger)
	userUC := usecase.NewUserService(users, likes, logger)
	skillUC := usecase.NewSkillService(skills, subcategories, logger)
	categoryUC := usecase.NewCategoryService(categories, logger)
	subcategoryUC := usecase.NewSubcategoryService(subcategories, categories, logger)
	cityUC := usecase.NewCityService(cities, logger)
	likeUC := usecase.NewLikeService(likes, users, logger)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = custommw.NewErrorMiddleware(logger).HandleHTTPError
	e.Use(echomw.Recover())

	router.NewRouter(router.RouterParams{
		AuthHandler:        handler.NewAuthHandler(authUC, avatarSvc, logger),
		UserHandler:        handler.NewUserHandler(userUC, logger),
		SkillHandler:       handler.NewSkillHandler(skillUC, logger),
		CategoryHandler:    handler.NewCategoryHandler(categoryUC, logger),
		SubcategoryHandler: handler.NewSubcategoryHandler(subcategoryUC, logger),
		CityHandler:        handler.NewCityHandler(cityUC, logger),
		LikeHandler:        handler.NewLikeHandler(likeUC, logger),
		AuthMiddleware:     custommw.NewAuthMiddleware(tokenSvc),
	}).RegisterRoutes(e)

	return e
}

func registerBody(t *testing.T, email string) (io.Reader, string) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 240, 240))
	for x := 0; x < 240; x++ {
		for y := 0; y < 240; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	fields := map[string]string{
		"email":       email,
		"password":    "secret123",
		"name":        "anna",
		"firstName":   "Anna",
		"lastName":    "Berzina",
		"dateOfBirth": "1995-04-12",
		"gender":      "F",
		"cityId":      "1",
	}
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	part, err := writer.CreateFormFile("avatar", "avatar.png")
	require.NoError(t, err)
	require.NoError(t, png.Encode(part, img))
	require.NoError(t, writer.Close())

	return &body, writer.FormDataContentType()
}

func doRegister(t *testing.T, e *echo.Echo, email string) map[string]any {
	t.Helper()

	body, contentType := registerBody(t, email)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	return payload
}

func doJSON(e *echo.Echo, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRegisterLoginMeFlow(t *testing.T) {
	e := newTestServer(t)

	registered := doRegister(t, e, "anna@example.com")
	user := registered["user"].(map[string]any)
	assert.Equal(t, float64(1), user["id"])
	assert.NotContains(t, user, "password")
	assert.Contains(t, user["avatarUrl"], "/uploads/avatars/avatar-")
	require.NotEmpty(t, registered["accessToken"])
	require.NotEmpty(t, registered["refreshToken"])

	rec := doJSON(e, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "anna@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var login map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	accessToken := login["accessToken"].(string)

	rec = doJSON(e, http.MethodGet, "/api/auth/me", accessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "anna@example.com")
	assert.NotContains(t, rec.Body.String(), "\"password\"")
}

func TestRegisterValidationFailureHasDetails(t *testing.T) {
	e := newTestServer(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("email", "not-an-email"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "\"details\"")
	assert.Contains(t, rec.Body.String(), "\"field\"")
}

func TestRegisterWithoutAvatarIs400(t *testing.T) {
	e := newTestServer(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range map[string]string{
		"email": "anna@example.com", "password": "secret123", "name": "anna",
		"firstName": "Anna", "lastName": "Berzina", "dateOfBirth": "1995-04-12",
		"gender": "F", "cityId": "1",
	} {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "avatar")
}

func TestLoginFailuresShareOneMessage(t *testing.T) {
	e := newTestServer(t)
	doRegister(t, e, "anna@example.com")

	unknown := doJSON(e, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ghost@example.com", "password": "secret123",
	})
	wrong := doJSON(e, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "anna@example.com", "password": "nope",
	})

	require.Equal(t, http.StatusUnauthorized, unknown.Code)
	require.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, unknown.Body.String(), wrong.Body.String())
}

func TestRefreshAndLogout(t *testing.T) {
	e := newTestServer(t)

	registered := doRegister(t, e, "anna@example.com")
	accessToken := registered["accessToken"].(string)
	refreshToken := registered["refreshToken"].(string)

	rec := doJSON(e, http.MethodPost, "/api/auth/refresh", "", map[string]string{
		"refreshToken": refreshToken,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "accessToken")

	// Missing token is a 400, not a 403.
	rec = doJSON(e, http.MethodPost, "/api/auth/refresh", "", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// An access token in the refresh slot is rejected.
	rec = doJSON(e, http.MethodPost, "/api/auth/refresh", "", map[string]string{
		"refreshToken": accessToken,
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/auth/logout", accessToken, map[string]string{
		"refreshToken": refreshToken,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// The revoked token no longer refreshes.
	rec = doJSON(e, http.MethodPost, "/api/auth/refresh", "", map[string]string{
		"refreshToken": refreshToken,
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Logout again with the same token still succeeds.
	rec = doJSON(e, http.MethodPost, "/api/auth/logout", accessToken, map[string]string{
		"refreshToken": refreshToken,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogoutWithoutTokenIs401(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/auth/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/auth/me", "garbage-token", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateUserAuthorization(t *testing.T) {
	e := newTestServer(t)

	anna := doRegister(t, e, "anna@example.com")
	boris := doRegister(t, e, "boris@example.com")
	annaToken := anna["accessToken"].(string)
	borisToken := boris["accessToken"].(string)

	// Self-update succeeds.
	rec := doJSON(e, http.MethodPut, "/api/users/1", annaToken, map[string]string{"name": "anna2"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "anna2")

	// A foreign id is forbidden even with a valid token.
	rec = doJSON(e, http.MethodPut, "/api/users/1", borisToken, map[string]string{"name": "hacked"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Unknown fields, including password, are rejected outright.
	rec = doJSON(e, http.MethodPut, "/api/users/1", annaToken, map[string]string{"password": "sneaky"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Without a token the update is a 401.
	rec = doJSON(e, http.MethodPut, "/api/users/1", "", map[string]string{"name": "nobody"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUsersListIsPublicAndEnriched(t *testing.T) {
	e := newTestServer(t)

	doRegister(t, e, "anna@example.com")
	boris := doRegister(t, e, "boris@example.com")
	borisToken := boris["accessToken"].(string)

	rec := doJSON(e, http.MethodPost, "/api/likes", borisToken, map[string]any{"toUserId": 1})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/api/users", borisToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var views []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 2)
	assert.Equal(t, float64(1), views[0]["likesCount"])
	assert.Equal(t, true, views[0]["isLikedByCurrentUser"])
	assert.NotContains(t, views[0], "password")

	// Anonymous view still gets counts, never the viewer flag.
	rec = doJSON(e, http.MethodGet, "/api/users", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	assert.Equal(t, false, views[0]["isLikedByCurrentUser"])
}

func TestSkillLifecycle(t *testing.T) {
	e := newTestServer(t)

	anna := doRegister(t, e, "anna@example.com")
	token := anna["accessToken"].(string)

	rec := doJSON(e, http.MethodPost, "/api/skills", token, map[string]any{
		"subcategoryId":    1,
		"title":            "Guitar lessons",
		"description":      "Acoustic and electric",
		"type_of_proposal": "offer",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var skill map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &skill))
	assert.Equal(t, float64(1), skill["userId"], "owner must come from the token")

	// Unknown subcategory is a 400.
	rec = doJSON(e, http.MethodPost, "/api/skills", token, map[string]any{
		"subcategoryId":    42,
		"title":            "Ghost skill",
		"type_of_proposal": "offer",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Creating a skill requires authentication.
	rec = doJSON(e, http.MethodPost, "/api/skills", "", map[string]any{
		"subcategoryId":    1,
		"title":            "Anonymous",
		"type_of_proposal": "offer",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Filtered listing is public.
	rec = doJSON(e, http.MethodGet, "/api/skills?type_of_proposal=offer", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Guitar lessons")

	rec = doJSON(e, http.MethodGet, "/api/skills?type_of_proposal=request", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestLikeEndpoints(t *testing.T) {
	e := newTestServer(t)

	anna := doRegister(t, e, "anna@example.com")
	doRegister(t, e, "boris@example.com")
	token := anna["accessToken"].(string)

	rec := doJSON(e, http.MethodPost, "/api/likes", token, map[string]any{"toUserId": 2})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Duplicate like conflicts.
	rec = doJSON(e, http.MethodPost, "/api/likes", token, map[string]any{"toUserId": 2})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Self-like is rejected.
	rec = doJSON(e, http.MethodPost, "/api/likes", token, map[string]any{"toUserId": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Batch info as the liker.
	rec = doJSON(e, http.MethodPost, "/api/likes/users-info", token, map[string]any{"userIds": []int64{2}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "\"likesCount\":1")
	assert.Contains(t, rec.Body.String(), "\"isLikedByCurrentUser\":true")

	// Single info anonymously.
	rec = doJSON(e, http.MethodGet, "/api/likes/users-info/2", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "\"isLikedByCurrentUser\":false")

	// Delete by target pair.
	rec = doJSON(e, http.MethodDelete, "/api/likes?toUserId=2", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHealthAndInfo(t *testing.T) {
	e := newTestServer(t)

	for _, path := range []string{"/", "/api", "/api/health"} {
		rec := doJSON(e, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}
