package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(r *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	if header != nil {
		req.Header = header
	}
	r.ServeHTTP(w, req)
	return w
}

func TestErrorHandlerTaxonomy(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/missing", func(c *gin.Context) { AbortWithError(c, ErrNotFound) })
	r.GET("/creds", func(c *gin.Context) { AbortWithError(c, ErrBadCredentials) })
	r.GET("/token", func(c *gin.Context) { AbortWithError(c, ErrInvalidAuthToken) })
	r.GET("/boom", func(c *gin.Context) { AbortWithError(c, assert.AnError) })

	assert.Equal(t, http.StatusNotFound, perform(r, "GET", "/missing", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, perform(r, "GET", "/creds", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, perform(r, "GET", "/token", nil).Code)

	w := perform(r, "GET", "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// internal detail must not leak
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestRecoveryKeepsProcessAlive(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("handler exploded") })
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "still here") })

	w := perform(r, "GET", "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")

	w = perform(r, "GET", "/ok", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "still here", w.Body.String())
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := perform(r, "GET", "/", nil)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	header := http.Header{}
	header.Set(RequestIDHeader, "abc-123")
	w = perform(r, "GET", "/", header)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
