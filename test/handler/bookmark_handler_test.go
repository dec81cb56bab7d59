package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type bookmarkBody struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Ctime       int64  `json:"ctime"`
	Mtime       int64  `json:"mtime"`
}

func createBookmark(t *testing.T, router http.Handler, token string, body map[string]interface{}) bookmarkBody {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/bookmarks", token, body)
	require.Equal(t, http.StatusCreated, resp.Code)
	var bm bookmarkBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &bm))
	return bm
}

func listBookmarks(t *testing.T, router http.Handler, token string) []bookmarkBody {
	t.Helper()
	resp := doJSON(t, router, http.MethodGet, "/bookmarks", token, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var bms []bookmarkBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &bms))
	return bms
}

func TestBookmarkLifecycle(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	token := signupAndSignin(t, router, newTestEmail(), "secret")

	bm := createBookmark(t, router, token, map[string]interface{}{"title": "T", "link": "L"})
	require.NotEmpty(t, bm.ID)
	require.Equal(t, "T", bm.Title)
	require.Equal(t, "L", bm.Link)

	bms := listBookmarks(t, router, token)
	require.Len(t, bms, 1)
	require.Equal(t, bm.ID, bms[0].ID)
	require.Equal(t, "T", bms[0].Title)
	require.Equal(t, "L", bms[0].Link)

	resp := doJSON(t, router, http.MethodDelete, "/bookmarks/"+bm.ID, token, nil)
	require.Equal(t, http.StatusNoContent, resp.Code)
	require.Empty(t, resp.Body.String())

	require.Empty(t, listBookmarks(t, router, token))
}

func TestBookmarkPartialEdit(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	token := signupAndSignin(t, router, newTestEmail(), "secret")
	bm := createBookmark(t, router, token, map[string]interface{}{"title": "old", "link": "https://a", "description": "desc"})

	resp := doJSON(t, router, http.MethodPatch, "/bookmarks/"+bm.ID, token, map[string]interface{}{"title": "new"})
	require.Equal(t, http.StatusOK, resp.Code)
	var updated bookmarkBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &updated))
	require.Equal(t, "new", updated.Title)
	require.Equal(t, "https://a", updated.Link)
	require.Equal(t, "desc", updated.Description)
}

func TestBookmarkEmptyPatchIsIdentity(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	token := signupAndSignin(t, router, newTestEmail(), "secret")
	bm := createBookmark(t, router, token, map[string]interface{}{"title": "T", "link": "L", "description": "D"})

	resp := doJSON(t, router, http.MethodPatch, "/bookmarks/"+bm.ID, token, map[string]interface{}{})
	require.Equal(t, http.StatusOK, resp.Code)
	var unchanged bookmarkBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &unchanged))
	require.Equal(t, bm, unchanged)
}

func TestBookmarkNullPatchRules(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	token := signupAndSignin(t, router, newTestEmail(), "secret")
	bm := createBookmark(t, router, token, map[string]interface{}{"title": "T", "link": "L", "description": "D"})

	// null on a required field is a validation error
	resp := doJSON(t, router, http.MethodPatch, "/bookmarks/"+bm.ID, token, map[string]interface{}{"title": nil})
	require.Equal(t, http.StatusBadRequest, resp.Code)
	resp = doJSON(t, router, http.MethodPatch, "/bookmarks/"+bm.ID, token, map[string]interface{}{"link": ""})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	// null clears the optional description
	resp = doJSON(t, router, http.MethodPatch, "/bookmarks/"+bm.ID, token, map[string]interface{}{"description": nil})
	require.Equal(t, http.StatusOK, resp.Code)
	var updated bookmarkBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &updated))
	require.Equal(t, "", updated.Description)
	require.Equal(t, "T", updated.Title)
}

func TestBookmarkOwnershipIsolation(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	tokenA := signupAndSignin(t, router, newTestEmail(), "secret")
	tokenB := signupAndSignin(t, router, newTestEmail(), "secret")

	bm := createBookmark(t, router, tokenA, map[string]interface{}{"title": "mine", "link": "https://a"})

	require.Empty(t, listBookmarks(t, router, tokenB))

	// another user's id looks exactly like a missing one
	resp := doJSON(t, router, http.MethodGet, "/bookmarks/"+bm.ID, tokenB, nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
	resp = doJSON(t, router, http.MethodPatch, "/bookmarks/"+bm.ID, tokenB, map[string]interface{}{"title": "stolen"})
	require.Equal(t, http.StatusNotFound, resp.Code)
	resp = doJSON(t, router, http.MethodDelete, "/bookmarks/"+bm.ID, tokenB, nil)
	require.Equal(t, http.StatusNotFound, resp.Code)

	// owner still sees it untouched
	resp = doJSON(t, router, http.MethodGet, "/bookmarks/"+bm.ID, tokenA, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var mine bookmarkBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &mine))
	require.Equal(t, "mine", mine.Title)
}

func TestBookmarkMissingID(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	token := signupAndSignin(t, router, newTestEmail(), "secret")

	resp := doJSON(t, router, http.MethodGet, "/bookmarks/does-not-exist", token, nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
	resp = doJSON(t, router, http.MethodPatch, "/bookmarks/does-not-exist", token, map[string]interface{}{"title": "x"})
	require.Equal(t, http.StatusNotFound, resp.Code)
	resp = doJSON(t, router, http.MethodDelete, "/bookmarks/does-not-exist", token, nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestBookmarkValidation(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	token := signupAndSignin(t, router, newTestEmail(), "secret")

	resp := doJSON(t, router, http.MethodPost, "/bookmarks", token, map[string]interface{}{"link": "https://a"})
	require.Equal(t, http.StatusBadRequest, resp.Code)
	resp = doJSON(t, router, http.MethodPost, "/bookmarks", token, map[string]interface{}{"title": "T"})
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestBookmarkListOrder(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	token := signupAndSignin(t, router, newTestEmail(), "secret")
	first := createBookmark(t, router, token, map[string]interface{}{"title": "first", "link": "https://1"})
	second := createBookmark(t, router, token, map[string]interface{}{"title": "second", "link": "https://2"})

	bms := listBookmarks(t, router, token)
	require.Len(t, bms, 2)
	// newest first; id breaks the tie inside one second
	ids := []string{bms[0].ID, bms[1].ID}
	require.ElementsMatch(t, ids, []string{first.ID, second.ID})
	if bms[0].Ctime == bms[1].Ctime {
		require.Greater(t, bms[0].ID, bms[1].ID)
	} else {
		require.Greater(t, bms[0].Ctime, bms[1].Ctime)
	}
}
