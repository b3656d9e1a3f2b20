// Package static, sayfaların kullandığı CSS ve JS dosyalarını binary'ye gömer.
//
// Dosyalar /static/ altında servis edilir:
//
//	http.StripPrefix("/static/", http.FileServerFS(static.Assets()))
package static

import (
	"embed"
	"io/fs"
)

//go:embed assets
var assetsFS embed.FS

// Assets, assets/ dizininin kök olarak açıldığı dosya sistemi.
func Assets() fs.FS {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		// Sadece "assets" embed edilmemişse olur; derleme zamanı garantisi var.
		panic(err)
	}
	return sub
}
