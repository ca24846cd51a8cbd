package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"newsroom-api/config"
	"newsroom-api/middleware"
	"newsroom-api/models"
)

type APITestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (suite *APITestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:apitest?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		suite.T().Fatal("failed to open test database:", err)
	}
	if err := config.Migrate(db); err != nil {
		suite.T().Fatal("failed to migrate test database:", err)
	}

	suite.db = db
	suite.router = NewRouter(db)
}

func (suite *APITestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM contents")
	suite.db.Exec("DELETE FROM users")
}

func (suite *APITestSuite) request(method, path string, payload interface{}, token string) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		suite.NoError(err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *APITestSuite) register(username, email, password string, role models.UserRole) models.AuthResponse {
	w := suite.request("POST", "/api/register", models.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
		Role:     role,
	}, "")

	suite.Equal(http.StatusCreated, w.Code)

	var resp models.AuthResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.Token)
	return resp
}

func (suite *APITestSuite) createContent(token string, req models.CreateContentRequest) models.Content {
	w := suite.request("POST", "/api/publisher/contents", req, token)
	suite.Equal(http.StatusCreated, w.Code)

	var content models.Content
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &content))
	return content
}

func (suite *APITestSuite) TestRegisterDuplicateEmail() {
	suite.register("alice", "alice@example.com", "password1", models.RoleUser)

	// Other fields differ, email does not
	w := suite.request("POST", "/api/register", models.RegisterRequest{
		Username: "someone-else",
		Email:    "alice@example.com",
		Password: "other-password",
	}, "")

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp map[string]string
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("email already registered", resp["error"])
}

func (suite *APITestSuite) TestLoginWrongPassword() {
	suite.register("alice", "alice@example.com", "password1", models.RoleUser)

	w := suite.request("POST", "/api/login", models.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	}, "")
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.request("POST", "/api/login", models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password1",
	}, "")
	suite.Equal(http.StatusBadRequest, w.Code)

	// Same generic message in both cases
	var resp map[string]string
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("invalid credentials", resp["error"])
}

func (suite *APITestSuite) TestUserRoleForbiddenOnPublisherRoutes() {
	reader := suite.register("reader", "reader@example.com", "password1", models.RoleUser)

	routes := []struct {
		method string
		path   string
	}{
		{"GET", "/api/publisher/contents"},
		{"POST", "/api/publisher/contents"},
		{"PUT", "/api/publisher/contents/1"},
		{"PUT", "/api/publisher/contents/1/publish"},
	}

	for _, route := range routes {
		w := suite.request(route.method, route.path, nil, reader.Token)
		suite.Equal(http.StatusForbidden, w.Code, "%s %s", route.method, route.path)

		var resp map[string]string
		suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		suite.Equal("publisher access required", resp["error"])
	}
}

func (suite *APITestSuite) TestMissingTokenOnProtectedRoutes() {
	w := suite.request("GET", "/api/profile", nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)

	var resp map[string]string
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("access token required", resp["error"])
}

func (suite *APITestSuite) TestDraftNotPubliclyVisible() {
	pub := suite.register("writer", "writer@example.com", "password1", models.RolePublisher)
	content := suite.createContent(pub.Token, models.CreateContentRequest{
		Title:   "Unfinished piece",
		Content: "Still being written.",
		Type:    models.TypeArticle,
	})
	suite.Equal(models.StatusDraft, content.Status)

	// Unauthenticated fetch of a draft is a 404, owner or not
	w := suite.request("GET", fmt.Sprintf("/api/contents/%d", content.ID), nil, "")
	suite.Equal(http.StatusNotFound, w.Code)

	// And it does not appear in the public listing
	w = suite.request("GET", "/api/contents", nil, "")
	suite.Equal(http.StatusOK, w.Code)

	var list struct {
		Contents []models.Content `json:"contents"`
	}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &list))
	suite.Empty(list.Contents)
}

func (suite *APITestSuite) TestViewCounterAccumulates() {
	pub := suite.register("writer", "writer@example.com", "password1", models.RolePublisher)
	content := suite.createContent(pub.Token, models.CreateContentRequest{
		Title:   "Morning edition",
		Content: "All the news.",
		Type:    models.TypeNewspaper,
	})

	w := suite.request("PUT", fmt.Sprintf("/api/publisher/contents/%d/publish", content.ID), nil, pub.Token)
	suite.Equal(http.StatusOK, w.Code)

	for i := 1; i <= 3; i++ {
		w = suite.request("GET", fmt.Sprintf("/api/contents/%d", content.ID), nil, "")
		suite.Equal(http.StatusOK, w.Code)

		var fetched models.Content
		suite.NoError(json.Unmarshal(w.Body.Bytes(), &fetched))
		suite.Equal(i, fetched.Views)
	}

	var stored models.Content
	suite.NoError(suite.db.First(&stored, content.ID).Error)
	suite.Equal(3, stored.Views)
}

func (suite *APITestSuite) TestPublishNotOwned() {
	owner := suite.register("owner", "owner@example.com", "password1", models.RolePublisher)
	other := suite.register("other", "other@example.com", "password1", models.RolePublisher)

	content := suite.createContent(owner.Token, models.CreateContentRequest{
		Title:   "Mine",
		Content: "Owned by owner.",
		Type:    models.TypeJournal,
	})

	// The id exists, but for another publisher: 404, never 200
	w := suite.request("PUT", fmt.Sprintf("/api/publisher/contents/%d/publish", content.ID), nil, other.Token)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.request("PUT", fmt.Sprintf("/api/publisher/contents/%d", content.ID),
		models.UpdateContentRequest{Title: ptr("Hijacked")}, other.Token)
	suite.Equal(http.StatusNotFound, w.Code)

	var stored models.Content
	suite.NoError(suite.db.First(&stored, content.ID).Error)
	suite.Equal(models.StatusDraft, stored.Status)
	suite.Equal("Mine", stored.Title)
}

func (suite *APITestSuite) TestUpdateWhitelist() {
	pub := suite.register("writer", "writer@example.com", "password1", models.RolePublisher)
	content := suite.createContent(pub.Token, models.CreateContentRequest{
		Title:    "Draft title",
		Content:  "Draft body.",
		Type:     models.TypeArticle,
		Category: "politics",
		Tags:     []string{"election"},
	})

	// publisher_id and views in the body are ignored, whitelisted fields apply
	w := suite.request("PUT", fmt.Sprintf("/api/publisher/contents/%d", content.ID), map[string]interface{}{
		"title":        "Final title",
		"read_time":    7,
		"publisher_id": 9999,
		"views":        9999,
	}, pub.Token)
	suite.Equal(http.StatusOK, w.Code)

	var stored models.Content
	suite.NoError(suite.db.First(&stored, content.ID).Error)
	suite.Equal("Final title", stored.Title)
	suite.Equal(7, stored.ReadTime)
	suite.Equal(content.PublisherID, stored.PublisherID)
	suite.Equal(0, stored.Views)
}

func (suite *APITestSuite) TestPublicListFilters() {
	pub := suite.register("writer", "writer@example.com", "password1", models.RolePublisher)

	items := []models.CreateContentRequest{
		{Title: "Daily paper", Content: "x", Type: models.TypeNewspaper, Category: "news"},
		{Title: "Science journal", Content: "x", Type: models.TypeJournal, Category: "science"},
		{Title: "Tech article", Content: "x", Type: models.TypeArticle, Category: "science"},
	}
	for _, item := range items {
		created := suite.createContent(pub.Token, item)
		w := suite.request("PUT", fmt.Sprintf("/api/publisher/contents/%d/publish", created.ID), nil, pub.Token)
		suite.Equal(http.StatusOK, w.Code)
	}

	var list struct {
		Contents []models.Content `json:"contents"`
	}

	w := suite.request("GET", "/api/contents?type=journal", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &list))
	suite.Len(list.Contents, 1)
	suite.Equal("Science journal", list.Contents[0].Title)

	w = suite.request("GET", "/api/contents?category=science", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &list))
	suite.Len(list.Contents, 2)

	w = suite.request("GET", "/api/contents?page=2&limit=2", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &list))
	suite.Len(list.Contents, 1)

	// Publisher identity is joined on public listings
	w = suite.request("GET", "/api/contents", nil, "")
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &list))
	suite.NotNil(list.Contents[0].Publisher)
	suite.Equal("writer", list.Contents[0].Publisher.Username)
}

func (suite *APITestSuite) TestEndToEndPublishFlow() {
	registered := suite.register("ana", "a@x.com", "pw1234", models.RolePublisher)

	// Login with the same credentials yields a token with identical claims
	w := suite.request("POST", "/api/login", models.LoginRequest{
		Email:    "a@x.com",
		Password: "pw1234",
	}, "")
	suite.Equal(http.StatusOK, w.Code)

	var loggedIn models.AuthResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &loggedIn))
	suite.Equal(parseClaims(suite.T(), registered.Token), parseClaims(suite.T(), loggedIn.Token))

	content := suite.createContent(loggedIn.Token, models.CreateContentRequest{
		Title:   "Launch day",
		Content: "We shipped.",
		Type:    models.TypeArticle,
	})
	suite.Equal(models.StatusDraft, content.Status)
	suite.Equal(0, content.Views)

	w = suite.request("PUT", fmt.Sprintf("/api/publisher/contents/%d/publish", content.ID), nil, loggedIn.Token)
	suite.Equal(http.StatusOK, w.Code)

	var published models.Content
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &published))
	suite.Equal(models.StatusPublished, published.Status)

	var list struct {
		Contents []models.Content `json:"contents"`
	}
	w = suite.request("GET", "/api/contents", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &list))
	suite.Len(list.Contents, 1)
	suite.Equal(content.ID, list.Contents[0].ID)

	w = suite.request("GET", fmt.Sprintf("/api/contents/%d", content.ID), nil, "")
	suite.Equal(http.StatusOK, w.Code)

	var fetched models.Content
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &fetched))
	suite.Equal(1, fetched.Views)
}

func (suite *APITestSuite) TestProfile() {
	pub := suite.register("writer", "writer@example.com", "password1", models.RolePublisher)

	w := suite.request("GET", "/api/profile", nil, pub.Token)
	suite.Equal(http.StatusOK, w.Code)

	var user models.User
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &user))
	suite.Equal("writer", user.Username)
	suite.Equal(models.RolePublisher, user.Role)
	suite.NotContains(w.Body.String(), "password")
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func parseClaims(t *testing.T, tokenString string) map[string]interface{} {
	claims := &middleware.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return config.JWTSecret, nil
	})
	if err != nil {
		t.Fatal("failed to parse token:", err)
	}
	return map[string]interface{}{
		"user_id":  claims.UserID,
		"username": claims.Username,
		"role":     claims.Role,
	}
}

func ptr[T any](v T) *T {
	return &v
}
