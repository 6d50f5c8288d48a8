package routes

import (
	"fleet_survey/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCertificates = "/certificates"
	PathShips        = "/ships"
	PathCompanies    = "/companies"
)

func addCertificateRoutes(rg *gin.RouterGroup, certificateHandler *handlers.CertificateHandler, surveyHandler *handlers.SurveyHandler) {
	certificates := rg.Group(PathCertificates)
	{
		certificates.POST("", certificateHandler.CreateCertificate)
		certificates.GET("/upcoming-surveys", surveyHandler.UpcomingSurveys)
		certificates.GET("/:id", certificateHandler.GetCertificate)
		certificates.PUT("/:id", certificateHandler.UpdateCertificate)
		// :id is the ship id here; the recompute covers every certificate of the ship.
		certificates.POST("/:id/update-next-survey", surveyHandler.UpdateNextSurvey)
	}
}

func addFleetRoutes(rg *gin.RouterGroup, fleetHandler *handlers.FleetHandler, certificateHandler *handlers.CertificateHandler) {
	ships := rg.Group(PathShips)
	{
		ships.POST("", fleetHandler.CreateShip)
		ships.GET("/:id", fleetHandler.GetShip)
		ships.GET("/:id/certificates", certificateHandler.ListShipCertificates)
	}

	companies := rg.Group(PathCompanies)
	{
		companies.POST("", fleetHandler.CreateCompany)
		companies.GET("/:id", fleetHandler.GetCompany)
	}
}
