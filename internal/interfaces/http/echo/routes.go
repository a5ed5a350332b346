package echo

import e "github.com/labstack/echo/v4"

func RegisterRoutes(server *e.Echo, files *ProspectFileHandler, prospects *ProspectHandler, auth e.MiddlewareFunc) {
	api := server.Group("/api", auth)
	api.POST("/prospect_files/import", files.ImportProspectFile)
	api.GET("/prospect_files/:request_id/progress", files.TrackProgress)
	api.GET("/prospects", prospects.ListProspects)
}
