package server

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripweaver/assets"
)

// SetupAssets configures static asset serving for the Gin router
func SetupAssets(r *gin.Engine) error {
	staticFiles, err := fs.Sub(assets.Assets, "static")
	if err != nil {
		return err
	}
	r.StaticFS("/assets", http.FS(staticFiles))
	r.GET("/", func(c *gin.Context) {
		// Serving "/" lets the file server resolve index.html without
		// tripping its canonical-path redirect.
		c.FileFromFS("/", http.FS(staticFiles))
	})
	return nil
}
