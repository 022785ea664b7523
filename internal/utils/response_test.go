// internal/utils/response_test.go
package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestContextHelperDefaults(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetUsernameFromContext(c)
	assert.False(t, ok)
	_, ok = GetRoleFromContext(c)
	assert.False(t, ok)
	_, ok = GetOwnerKeyFromContext(c)
	assert.False(t, ok)

	// Non-string values are treated as absent, never panicked on.
	c.Set("username", 42)
	_, ok = GetUsernameFromContext(c)
	assert.False(t, ok)

	c.Set("username", "alice")
	username, ok := GetUsernameFromContext(c)
	assert.True(t, ok)
	assert.Equal(t, "alice", username)
}
