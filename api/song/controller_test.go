package song

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"songmanager/api/response"
	songapp "songmanager/application/song"
	"songmanager/domain/song"
	"songmanager/infrastructure/persistence/memory"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenRepository fails every call, standing in for an unreachable database.
type brokenRepository struct{}

var errBroken = errors.New("dial tcp 10.0.0.5:3306: connection refused")

func (brokenRepository) FindAll(context.Context) ([]*song.Song, error) { return nil, errBroken }
func (brokenRepository) FindByID(context.Context, int64) (*song.Song, error) {
	return nil, errBroken
}
func (brokenRepository) FindFirstByTitle(context.Context, string) (*song.Song, error) {
	return nil, errBroken
}
func (brokenRepository) Save(context.Context, *song.Song) (*song.Song, error) {
	return nil, errBroken
}
func (brokenRepository) DeleteByID(context.Context, int64) error         { return errBroken }
func (brokenRepository) ExistsByID(context.Context, int64) (bool, error) { return false, errBroken }
func (brokenRepository) Count(context.Context) (int64, error)            { return 0, errBroken }

func newEngine(repo song.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewController(songapp.NewService(repo)).RegisterRoutes(&engine.RouterGroup)
	return engine
}

func do(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeSong(t *testing.T, rec *httptest.ResponseRecorder) song.Song {
	t.Helper()
	var s song.Song
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	return s
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var r response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	return r
}

func TestCreateSong(t *testing.T) {
	engine := newEngine(memory.NewSongRepository())

	rec := do(engine, http.MethodPost, "/songs", `{"title":"Imagine","artist":"John Lennon","album":"Imagine","year":1971}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeSong(t, rec)
	require.NotNil(t, created.ID)
	assert.EqualValues(t, 1, *created.ID)
	assert.Equal(t, "Imagine", created.Title)
	assert.Equal(t, "John Lennon", created.Artist)
	assert.Equal(t, 1971, created.Year)
}

func TestCreateSongIgnoresClientID(t *testing.T) {
	engine := newEngine(memory.NewSongRepository())

	rec := do(engine, http.MethodPost, "/songs", `{"id":77,"title":"Numb","artist":"Linkin Park","album":"Meteora","year":2003}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.EqualValues(t, 1, *decodeSong(t, rec).ID)

	assert.Equal(t, http.StatusNotFound, do(engine, http.MethodGet, "/songs/77", "").Code)
}

func TestCreateSongMalformedBody(t *testing.T) {
	engine := newEngine(memory.NewSongRepository())

	for name, body := range map[string]string{
		"not json":   `{"title":`,
		"empty":      "",
		"wrong type": `{"title":"A","year":"nineteen"}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := do(engine, http.MethodPost, "/songs", body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "BAD_REQUEST", decodeError(t, rec).Error)
		})
	}
}

func TestListSongs(t *testing.T) {
	engine := newEngine(memory.NewSongRepository())

	rec := do(engine, http.MethodGet, "/songs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	do(engine, http.MethodPost, "/songs", `{"title":"A","artist":"B","album":"C","year":2000}`)
	do(engine, http.MethodPost, "/songs", `{"title":"D","artist":"E","album":"F","year":2001}`)

	rec = do(engine, http.MethodGet, "/songs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var songs []song.Song
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &songs))
	require.Len(t, songs, 2)
	assert.Equal(t, "A", songs[0].Title)
	assert.Equal(t, "D", songs[1].Title)
}

func TestGetSong(t *testing.T) {
	engine := newEngine(memory.NewSongRepository())
	do(engine, http.MethodPost, "/songs", `{"title":"A","artist":"B","album":"C","year":2000}`)

	rec := do(engine, http.MethodGet, "/songs/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"title":"A","artist":"B","album":"C","year":2000}`, rec.Body.String())
}

func TestGetSongNotFound(t *testing.T) {
	engine := newEngine(memory.NewSongRepository())

	rec := do(engine, http.MethodGet, "/songs/999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, "SONG_NOT_FOUND", body.Error)
	assert.Equal(t, "Song not found", body.Message)
	assert.Equal(t, http.StatusNotFound, body.Code)
}

func TestNonIntegerID(t *testing.T) {
	engine := newEngine(memory.NewSongRepository())

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			rec := do(engine, method, "/songs/abc", `{"title":"x"}`)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "BAD_REQUEST", decodeError(t, rec).Error)
		})
	}
}

func TestUpdateSong(t *testing.T) {
	engine := newEngine(memory.NewSongRepository())
	do(engine, http.MethodPost, "/songs", `{"title":"Imagine","artist":"John Lennon","album":"Imagine","year":1971}`)

	rec := do(engine, http.MethodPut, "/songs/1", `{"id":5,"title":"Imagine (Remix)","artist":"John Lennon","album":"Imagine","year":1971}`)
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decodeSong(t, rec)
	assert.EqualValues(t, 1, *updated.ID)
	assert.Equal(t, "Imagine (Remix)", updated.Title)

	rec = do(engine, http.MethodGet, "/songs/1", "")
	assert.Equal(t, "Imagine (Remix)", decodeSong(t, rec).Title)
	assert.Equal(t, http.StatusNotFound, do(engine, http.MethodGet, "/songs/5", "").Code)
}

func TestUpdateSongNotFound(t *testing.T) {
	engine := newEngine(memory.NewSongRepository())

	rec := do(engine, http.MethodPut, "/songs/999", `{"title":"Whatever","artist":"A","album":"B","year":2020}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "SONG_NOT_FOUND", decodeError(t, rec).Error)

	rec = do(engine, http.MethodGet, "/songs", "")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestUpdateSongMalformedBody(t *testing.T) {
	engine := newEngine(memory.NewSongRepository())
	do(engine, http.MethodPost, "/songs", `{"title":"A","artist":"B","album":"C","year":2000}`)

	rec := do(engine, http.MethodPut, "/songs/1", `not-json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteSong(t *testing.T) {
	engine := newEngine(memory.NewSongRepository())
	do(engine, http.MethodPost, "/songs", `{"title":"A","artist":"B","album":"C","year":2000}`)

	rec := do(engine, http.MethodDelete, "/songs/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, http.StatusNotFound, do(engine, http.MethodGet, "/songs/1", "").Code)

	// absent ids are deleted silently
	assert.Equal(t, http.StatusNoContent, do(engine, http.MethodDelete, "/songs/42", "").Code)
}

func TestStorageFailureHidesDetails(t *testing.T) {
	engine := newEngine(brokenRepository{})

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/songs", ""},
		{http.MethodGet, "/songs/1", ""},
		{http.MethodPost, "/songs", `{"title":"A"}`},
		{http.MethodPut, "/songs/1", `{"title":"A"}`},
		{http.MethodDelete, "/songs/1", ""},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := do(engine, tc.method, tc.path, tc.body)
			require.Equal(t, http.StatusInternalServerError, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, "INTERNAL_ERROR", body.Error)
			assert.Equal(t, "internal server error", body.Message)
			assert.False(t, strings.Contains(rec.Body.String(), "10.0.0.5"))
		})
	}
}
