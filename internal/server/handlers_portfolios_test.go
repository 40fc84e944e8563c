package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-portfolio/internal/db"
)

func doJSON(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, req)
	return w
}

func createTestPortfolio(t *testing.T, s *Server, token, title string) *db.Portfolio {
	t.Helper()

	w := doJSON(t, s, http.MethodPost, "/portfolios", token, CreatePortfolioRequest{
		Title:   title,
		Content: testContent(),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var p db.Portfolio
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	return &p
}

func TestCreateAndGetPortfolio(t *testing.T) {
	s, _, _ := newTestServer(t)
	_, token := authToken(t, s)

	created := createTestPortfolio(t, s, token, "My Portfolio")
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.IsPublished)
	assert.Equal(t, "Data Engineer Turning Raw Logs Into Decisions", created.Hero.Headline)

	w := doJSON(t, s, http.MethodGet, "/portfolios/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched db.Portfolio
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
}

func TestCreatePortfolioRejectsInvalidContent(t *testing.T) {
	s, _, _ := newTestServer(t)
	_, token := authToken(t, s)

	content := testContent()
	content.Hero.Headline = ""
	w := doJSON(t, s, http.MethodPost, "/portfolios", token, CreatePortfolioRequest{
		Title:   "Broken",
		Content: content,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPortfoliosOrdersByUpdate(t *testing.T) {
	s, _, _ := newTestServer(t)
	_, token := authToken(t, s)

	first := createTestPortfolio(t, s, token, "First")
	second := createTestPortfolio(t, s, token, "Second")

	// Touch the first one so it becomes the most recently updated.
	title := "First, renamed"
	w := doJSON(t, s, http.MethodPut, "/portfolios/"+first.ID, token, UpdatePortfolioRequest{Title: &title})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, s, http.MethodGet, "/portfolios", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []db.Portfolio
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}

func TestPortfolioOwnershipIsEnforced(t *testing.T) {
	s, _, _ := newTestServer(t)
	_, ownerToken := authToken(t, s)
	_, otherToken := authToken(t, s)

	p := createTestPortfolio(t, s, ownerToken, "Private")

	// Another user sees 404, not 403, for every operation.
	for _, tc := range []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "/portfolios/" + p.ID, nil},
		{http.MethodPut, "/portfolios/" + p.ID, UpdatePortfolioRequest{}},
		{http.MethodDelete, "/portfolios/" + p.ID, nil},
		{http.MethodPost, "/portfolios/" + p.ID + "/publish", PublishRequest{}},
		{http.MethodPost, "/portfolios/" + p.ID + "/unpublish", nil},
	} {
		w := doJSON(t, s, tc.method, tc.path, otherToken, tc.body)
		assert.Equal(t, http.StatusNotFound, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestUpdatePortfolioMergesContent(t *testing.T) {
	s, _, _ := newTestServer(t)
	_, token := authToken(t, s)

	p := createTestPortfolio(t, s, token, "My Portfolio")

	hero := p.Hero
	hero.Headline = "A Sharper Headline For The Same Engineer"
	w := doJSON(t, s, http.MethodPut, "/portfolios/"+p.ID, token, UpdatePortfolioRequest{Hero: &hero})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated db.Portfolio
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "A Sharper Headline For The Same Engineer", updated.Hero.Headline)
	// Untouched sections survive.
	assert.Equal(t, p.About.Summary, updated.About.Summary)
}

func TestUpdatePortfolioRejectsInvalidMerge(t *testing.T) {
	s, _, _ := newTestServer(t)
	_, token := authToken(t, s)

	p := createTestPortfolio(t, s, token, "My Portfolio")

	hero := p.Hero
	hero.CTAText = ""
	w := doJSON(t, s, http.MethodPut, "/portfolios/"+p.ID, token, UpdatePortfolioRequest{Hero: &hero})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeletePortfolio(t *testing.T) {
	s, _, _ := newTestServer(t)
	_, token := authToken(t, s)

	p := createTestPortfolio(t, s, token, "Doomed")

	w := doJSON(t, s, http.MethodDelete, "/portfolios/"+p.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodGet, "/portfolios/"+p.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublishFlow(t *testing.T) {
	s, _, _ := newTestServer(t)
	_, token := authToken(t, s)

	p := createTestPortfolio(t, s, token, "Jane Doe")

	w := doJSON(t, s, http.MethodPost, "/portfolios/"+p.ID+"/publish", token, PublishRequest{Slug: "Jane Doe!"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var published db.Portfolio
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &published))
	assert.True(t, published.IsPublished)
	assert.Equal(t, "jane-doe-", published.Slug)

	// The public page serves it without a token.
	w = doJSON(t, s, http.MethodGet, "/p/"+published.Slug, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Unpublishing hides the page but keeps the slug.
	w = doJSON(t, s, http.MethodPost, "/portfolios/"+p.ID+"/unpublish", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var unpublished db.Portfolio
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &unpublished))
	assert.False(t, unpublished.IsPublished)
	assert.Equal(t, published.Slug, unpublished.Slug)

	w = doJSON(t, s, http.MethodGet, "/p/"+published.Slug, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublishSlugConflict(t *testing.T) {
	s, _, _ := newTestServer(t)
	_, token := authToken(t, s)

	first := createTestPortfolio(t, s, token, "First")
	second := createTestPortfolio(t, s, token, "Second")

	w := doJSON(t, s, http.MethodPost, "/portfolios/"+first.ID+"/publish", token, PublishRequest{Slug: "shared-slug"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodPost, "/portfolios/"+second.ID+"/publish", token, PublishRequest{Slug: "shared-slug"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Republishing under the same slug is not a conflict with itself.
	w = doJSON(t, s, http.MethodPost, "/portfolios/"+first.ID+"/publish", token, PublishRequest{Slug: "shared-slug"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPublishGeneratesSlugFromTitle(t *testing.T) {
	s, _, _ := newTestServer(t)
	_, token := authToken(t, s)

	p := createTestPortfolio(t, s, token, "Jane Doe Portfolio")

	w := doJSON(t, s, http.MethodPost, "/portfolios/"+p.ID+"/publish", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var published db.Portfolio
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &published))
	assert.Regexp(t, "^jane-doe-portfolio-[a-z0-9]{4}$", published.Slug)
}
