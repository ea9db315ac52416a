package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// registerStatic serves the built SPA from dir. Unknown paths fall back to
// index.html so client-side routes survive a page reload.
func registerStatic(router *gin.Engine, dir string) {
	index := filepath.Join(dir, "index.html")

	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
			return
		}

		rel := strings.TrimPrefix(filepath.Clean("/"+c.Request.URL.Path), "/")
		path := filepath.Join(dir, rel)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}

		c.File(index)
	})
}
