package internal

import (
	"net/http"

	"schultafel/internal/controllers"
	"schultafel/internal/providers"
	"schultafel/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/timetable", http.HandlerFunc(apiController.GetTimetable))
	routers.Get("/current", http.HandlerFunc(apiController.GetCurrent))
	return routers
}
