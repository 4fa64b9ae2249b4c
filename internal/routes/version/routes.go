package version

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
)

type VersionResponse struct {
	Revision  string `json:"revision"`
	GoVersion string `json:"go_version"`
}

var Version VersionResponse

func init() {
	Version.Revision = "unknown"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	Version.GoVersion = info.GoVersion
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			Version.Revision = setting.Value
		}
	}
}

func SetupRoutes(app *fiber.App) {
	versionGroup := app.Group("/version")
	versionGroup.Get("/", versionHandler)
}

func versionHandler(c *fiber.Ctx) error {
	return c.JSON(Version)
}
