package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidrashid-git/shopping-api/auth"
	"github.com/junaidrashid-git/shopping-api/models"
	"github.com/junaidrashid-git/shopping-api/store"
)

func setupRouter() (*gin.Engine, *store.MemoryStore, *auth.TokenIssuer) {
	gin.SetMode(gin.TestMode)
	s := store.NewMemoryStore()
	issuer := auth.NewTokenIssuer("test-secret")

	r := gin.New()
	SetupRoutes(r, s, issuer, auth.BcryptVerifier{})
	return r, s, issuer
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerBody(nickname, email string) gin.H {
	return gin.H{
		"nickname":        nickname,
		"email":           email,
		"password":        "pass1234",
		"confirmPassword": "pass1234",
	}
}

// register + login, returning a valid token for the new user.
func signUpAndLogin(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w := doJSON(r, http.MethodPost, "/api/users", "", registerBody("tester", "tester@example.com"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth", "", gin.H{"email": "tester@example.com", "password": "pass1234"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func seedGoods(t *testing.T, s *store.MemoryStore, id uint, name, category string, age time.Duration) {
	t.Helper()
	require.NoError(t, s.UpsertGoods(context.Background(), &models.Goods{
		GoodsID:  id,
		Name:     name,
		Category: category,
		Price:    1000,
		Date:     time.Now().Add(-age),
	}))
}

func TestRegisterSuccess(t *testing.T) {
	r, s, _ := setupRouter()

	w := doJSON(r, http.MethodPost, "/api/users", "", registerBody("tester", "tester@example.com"))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, "{}", w.Body.String())

	user, err := s.FindUserByEmail(context.Background(), "tester@example.com")
	require.NoError(t, err)
	assert.Equal(t, "tester", user.Nickname)
	// Never stored in the clear
	assert.NotEqual(t, "pass1234", user.PasswordHash)
	assert.NotEmpty(t, user.PasswordHash)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	r, s, _ := setupRouter()

	body := registerBody("tester", "tester@example.com")
	body["confirmPassword"] = "different1"
	w := doJSON(r, http.MethodPost, "/api/users", "", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	_, err := s.FindUserByEmail(context.Background(), "tester@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRegisterInvalidFormat(t *testing.T) {
	r, _, _ := setupRouter()

	// Too-short nickname, bad email, too-short password, non-alphanumeric
	// nickname, missing nickname.
	cases := []gin.H{
		{"nickname": "ab", "email": "a@b.com", "password": "pass1234", "confirmPassword": "pass1234"},
		{"nickname": "tester", "email": "not-an-email", "password": "pass1234", "confirmPassword": "pass1234"},
		{"nickname": "tester", "email": "a@b.com", "password": "abc", "confirmPassword": "abc"},
		{"nickname": "tester!", "email": "a@b.com", "password": "pass1234", "confirmPassword": "pass1234"},
		{"email": "a@b.com", "password": "pass1234", "confirmPassword": "pass1234"},
	}
	for _, body := range cases {
		w := doJSON(r, http.MethodPost, "/api/users", "", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %v", body)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r, _, _ := setupRouter()

	w := doJSON(r, http.MethodPost, "/api/users", "", registerBody("tester", "tester@example.com"))
	require.Equal(t, http.StatusCreated, w.Code)

	// Same email, different nickname
	w = doJSON(r, http.MethodPost, "/api/users", "", registerBody("someone", "tester@example.com"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Same nickname, different email
	w = doJSON(r, http.MethodPost, "/api/users", "", registerBody("tester", "other@example.com"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginIssuesDecodableToken(t *testing.T) {
	r, s, issuer := setupRouter()

	token := signUpAndLogin(t, r)

	userID, err := issuer.Parse(token)
	require.NoError(t, err)

	user, err := s.FindUserByID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "tester@example.com", user.Email)
}

func TestLoginBadCredentials(t *testing.T) {
	r, _, _ := setupRouter()

	w := doJSON(r, http.MethodPost, "/api/users", "", registerBody("tester", "tester@example.com"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth", "", gin.H{"email": "tester@example.com", "password": "wrongpass"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotContains(t, w.Body.String(), "token")

	w = doJSON(r, http.MethodPost, "/api/auth", "", gin.H{"email": "unknown@example.com", "password": "pass1234"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGuardRejectsBadTokens(t *testing.T) {
	r, _, _ := setupRouter()
	token := signUpAndLogin(t, r)

	protected := []struct {
		method, path string
	}{
		{http.MethodGet, "/api/users/me"},
		{http.MethodGet, "/api/goods"},
		{http.MethodGet, "/api/goods/1"},
		{http.MethodGet, "/api/goods/cart"},
		{http.MethodPut, "/api/goods/1/cart"},
		{http.MethodDelete, "/api/goods/1/cart"},
	}
	for _, route := range protected {
		w := doJSON(r, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "no token: %s %s", route.method, route.path)

		w = doJSON(r, route.method, route.path, token+"tampered", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "tampered token: %s %s", route.method, route.path)
	}
}

func TestMe(t *testing.T) {
	r, _, _ := setupRouter()
	token := signUpAndLogin(t, r)

	w := doJSON(r, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User struct {
			ID       string `json:"id"`
			Nickname string `json:"nickname"`
			Email    string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.User.ID)
	assert.Equal(t, "tester", resp.User.Nickname)
	assert.Equal(t, "tester@example.com", resp.User.Email)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestGoodsListAndFilter(t *testing.T) {
	r, s, _ := setupRouter()
	token := signUpAndLogin(t, r)

	seedGoods(t, s, 1, "cola", "drink", 2*time.Hour)
	seedGoods(t, s, 2, "cider", "drink", time.Hour)
	seedGoods(t, s, 3, "chips", "snack", 3*time.Hour)

	w := doJSON(r, http.MethodGet, "/api/goods", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Goods []models.Goods `json:"goods"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Goods, 3)
	assert.Equal(t, uint(2), resp.Goods[0].GoodsID)

	w = doJSON(r, http.MethodGet, "/api/goods?category=snack", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Goods, 1)
	assert.Equal(t, "chips", resp.Goods[0].Name)
}

func TestGoodsDetail(t *testing.T) {
	r, s, _ := setupRouter()
	token := signUpAndLogin(t, r)
	seedGoods(t, s, 7, "cola", "drink", time.Hour)

	w := doJSON(r, http.MethodGet, "/api/goods/7", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Goods models.Goods `json:"goods"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cola", resp.Goods.Name)

	w = doJSON(r, http.MethodGet, "/api/goods/999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, "{}", w.Body.String())
}

type cartResponse struct {
	Cart []struct {
		Quantity int           `json:"quantity"`
		Goods    *models.Goods `json:"goods"`
	} `json:"cart"`
}

func TestCartFlow(t *testing.T) {
	r, s, _ := setupRouter()
	token := signUpAndLogin(t, r)

	seedGoods(t, s, 1, "cola", "drink", 2*time.Hour)
	seedGoods(t, s, 2, "chips", "snack", time.Hour)

	// Empty cart
	w := doJSON(r, http.MethodGet, "/api/goods/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp cartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Cart)

	// Add two lines
	w = doJSON(r, http.MethodPut, "/api/goods/1/cart", token, gin.H{"quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(r, http.MethodPut, "/api/goods/2/cart", token, gin.H{"quantity": 1})
	require.Equal(t, http.StatusOK, w.Code)

	// Repeat add overwrites, never increments
	w = doJSON(r, http.MethodPut, "/api/goods/1/cart", token, gin.H{"quantity": 5})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/goods/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = cartResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Cart, 2)
	assert.Equal(t, 5, resp.Cart[0].Quantity)
	require.NotNil(t, resp.Cart[0].Goods)
	assert.Equal(t, "cola", resp.Cart[0].Goods.Name)
	assert.Equal(t, 1, resp.Cart[1].Quantity)

	// Delete one line; deleting again still succeeds
	w = doJSON(r, http.MethodDelete, "/api/goods/1/cart", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(r, http.MethodDelete, "/api/goods/1/cart", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/goods/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = cartResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Cart, 1)
	assert.Equal(t, uint(2), resp.Cart[0].Goods.GoodsID)
}

func TestCartQuantityValidation(t *testing.T) {
	r, s, _ := setupRouter()
	token := signUpAndLogin(t, r)
	seedGoods(t, s, 1, "cola", "drink", time.Hour)

	for _, quantity := range []int{0, -3} {
		w := doJSON(r, http.MethodPut, "/api/goods/1/cart", token, gin.H{"quantity": quantity})
		assert.Equal(t, http.StatusBadRequest, w.Code, "quantity %d", quantity)
	}

	w := doJSON(r, http.MethodPut, "/api/goods/1/cart", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartLineWithMissingGoods(t *testing.T) {
	r, _, _ := setupRouter()
	token := signUpAndLogin(t, r)

	// Line references a goods id that is not in the catalog
	w := doJSON(r, http.MethodPut, "/api/goods/42/cart", token, gin.H{"quantity": 3})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/goods/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp cartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Cart, 1)
	assert.Equal(t, 3, resp.Cart[0].Quantity)
	assert.Nil(t, resp.Cart[0].Goods)
}

func TestHealth(t *testing.T) {
	r, _, _ := setupRouter()

	w := doJSON(r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
