package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func ctxWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParseDefaults(t *testing.T) {
	p := Parse(ctxWithQuery(""), 9)
	require.Equal(t, 1, p.Page)
	require.Equal(t, 9, p.PerPage)
	require.Equal(t, 9, p.Limit())
	require.Equal(t, 0, p.Offset())
}

func TestParseBounds(t *testing.T) {
	p := Parse(ctxWithQuery("page=0&per_page=-3"), 10)
	require.Equal(t, 1, p.Page)
	require.Equal(t, 10, p.PerPage)

	p = Parse(ctxWithQuery("page=3&per_page=500"), 10)
	require.Equal(t, 3, p.Page)
	require.Equal(t, MaxPerPage, p.PerPage)
	require.Equal(t, 2*MaxPerPage, p.Offset())

	p = Parse(ctxWithQuery("page=abc"), 10)
	require.Equal(t, 1, p.Page)
}

func TestBuildMeta(t *testing.T) {
	m := BuildMeta(25, Params{Page: 2, PerPage: 10})
	require.EqualValues(t, 25, m.Total)
	require.Equal(t, 3, m.TotalPages)
	require.True(t, m.HasNext)
	require.True(t, m.HasPrev)

	m = BuildMeta(0, Params{Page: 1, PerPage: 10})
	require.Equal(t, 0, m.TotalPages)
	require.False(t, m.HasNext)
	require.False(t, m.HasPrev)
}
