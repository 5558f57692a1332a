package resources

import (
	"embed"

	"fyne.io/fyne/v2"
)

//go:embed icons/app.svg
var iconData []byte

func GetAppIcon() fyne.Resource {
	return &fyne.StaticResource{
		StaticName:    "app.svg",
		StaticContent: iconData,
	}
}

//go:embed catalog/*.yaml
var CatalogFiles embed.FS
