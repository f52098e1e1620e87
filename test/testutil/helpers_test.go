package testutil

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMustParseTime(t *testing.T) {
	parsed := MustParseTime(t, "2025-06-02T08:00:00Z")
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.June, parsed.Month())
	assert.Equal(t, 8, parsed.Hour())
}

func TestMustParseDate(t *testing.T) {
	parsed := MustParseDate(t, "2025-06-02")
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, 2, parsed.Day())
	assert.Equal(t, 0, parsed.Hour())
}

func TestPtr(t *testing.T) {
	v := Ptr(42)
	assert.NotNil(t, v)
	assert.Equal(t, 42, *v)

	s := Ptr("hello")
	assert.Equal(t, "hello", *s)
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(t, rec, 200, map[string]string{"ok": "yes"})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"ok":"yes"`)
}
