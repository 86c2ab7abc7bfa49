package response

import (
	"encoding/json"
	stdErrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"songmanager/domain/song"
	"songmanager/pkg/errors"
	"songmanager/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newContext(requestID string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/songs/7", nil)
	c.Set(RequestIDKey, requestID)
	return c, rec
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusFor(errors.CodeSongNotFound))
	assert.Equal(t, http.StatusBadRequest, StatusFor(errors.CodeInvalidArgument))
	assert.Equal(t, http.StatusTooManyRequests, StatusFor(errors.CodeTooManyRequest))
	assert.Equal(t, http.StatusInternalServerError, StatusFor("SOMETHING_ELSE"))
}

func TestHandleAppErrorNotFound(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	defer logger.Replace(zap.New(core))()

	c, rec := newContext("req-1")
	HandleAppError(c, song.NewSongNotFoundError(7))

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, Response{
		Success:   false,
		Error:     "SONG_NOT_FOUND",
		Code:      http.StatusNotFound,
		Message:   "Song not found",
		RequestID: "req-1",
	}, body)

	entries := logs.FilterMessage("Song not found").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, "id=7", fields["detail"])
	assert.NotEmpty(t, fields["stack"])
}

func TestHandleAppErrorHidesInternalMessage(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	defer logger.Replace(zap.New(core))()

	c, rec := newContext("req-2")
	HandleAppError(c, stdErrors.New("password=hunter2 rejected"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hunter2")
	assert.Contains(t, rec.Body.String(), `"message":"internal server error"`)
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestHandleError(t *testing.T) {
	c, rec := newContext("req-3")
	HandleError(c, stdErrors.New("strconv.ParseInt: invalid syntax"), "song id must be an integer", http.StatusBadRequest)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"BAD_REQUEST","code":400,"message":"song id must be an integer","request_id":"req-3"}`, rec.Body.String())
}

func TestSuccessHandlers(t *testing.T) {
	c, rec := newContext("")
	HandleCreated(c, song.New("A", "B", "C", 2000))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":null,"title":"A","artist":"B","album":"C","year":2000}`, rec.Body.String())

	c, rec = newContext("")
	HandleNoContent(c)
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
