package bootstrap

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	app "github.com/mhkarimi/prospect-import/internal/application/prospect"
	"github.com/mhkarimi/prospect-import/internal/infrastructure/blob"
	"github.com/mhkarimi/prospect-import/internal/infrastructure/repository"
	httpecho "github.com/mhkarimi/prospect-import/internal/interfaces/http/echo"
	"gorm.io/gorm"
)

func NewHTTPServer(db *gorm.DB, blobs *blob.LocalStore, intakeCfg app.IntakeConfig) *echo.Echo {
	server := echo.New()
	server.HideBanner = true

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	server.Use(middleware.BodyLimit(requestBodyLimit(intakeCfg.MaxFileSize)))

	fileRepo := repository.NewProspectFileRepository(db)
	importFile := app.NewImportProspectFile(fileRepo, blobs, intakeCfg)
	trackProgress := app.NewTrackImportProgress(fileRepo)
	fileHandler := httpecho.NewProspectFileHandler(importFile, trackProgress)

	queryRepo := repository.NewProspectQueryRepository(db)
	listProspects := app.NewListProspects(queryRepo)
	prospectHandler := httpecho.NewProspectHandler(listProspects)

	userRepo := repository.NewUserRepository(db)

	httpecho.RegisterRoutes(server, fileHandler, prospectHandler, httpecho.TokenAuth(userRepo))

	server.GET("/healthz", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	return server
}

// requestBodyLimit leaves room above the upload cap for the multipart
// framing and the form fields, so an oversize file is rejected by the
// intake with its error envelope rather than by the middleware.
func requestBodyLimit(maxFileSize int64) string {
	if maxFileSize <= 0 {
		maxFileSize = app.DefaultMaxFileSize
	}
	return fmt.Sprintf("%d", maxFileSize+1<<20)
}
