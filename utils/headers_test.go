package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomUserAgentFromPool(t *testing.T) {
	for i := 0; i < 20; i++ {
		assert.Contains(t, userAgents, RandomUserAgent())
	}
}

func TestBrowserHeaders(t *testing.T) {
	headers := BrowserHeaders()

	assert.True(t, strings.HasPrefix(headers["User-Agent"], "Mozilla/5.0"))
	assert.Contains(t, headers["Accept"], "text/html")
	assert.Equal(t, "keep-alive", headers["Connection"])
	// The transport negotiates encoding itself so bodies arrive decoded.
	assert.NotContains(t, headers, "Accept-Encoding")
}
