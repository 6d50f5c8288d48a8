package routes

import (
	_ "fleet_survey/docs"
	"fleet_survey/internal/adapter/http/handlers"
	"fleet_survey/internal/adapter/persistence/repository"
	"fleet_survey/internal/infrastructure/database"
	"fleet_survey/internal/usecase"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultPort = "8080"

// Run will start the server
func Run() {
	router := NewRouter(database.ConnectDynamoDB())

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	log.Printf("[routes] listening port=%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter wires repositories, use cases and handlers on top of ddb.
func NewRouter(ddb repository.DynamoAPI) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	certificateRepo := repository.NewCertificateDynamoRepository(ddb)
	shipRepo := repository.NewShipDynamoRepository(ddb)
	companyRepo := repository.NewCompanyDynamoRepository(ddb)

	certificateUseCase := usecase.NewCertificateUseCase(certificateRepo, shipRepo)
	shipUseCase := usecase.NewShipUseCase(shipRepo)
	companyUseCase := usecase.NewCompanyUseCase(companyRepo)
	surveyUseCase := usecase.NewSurveyUseCase(certificateRepo, shipRepo, companyRepo)

	certificateHandler := handlers.NewCertificateHandler(certificateUseCase)
	surveyHandler := handlers.NewSurveyHandler(surveyUseCase)
	fleetHandler := handlers.NewFleetHandler(shipUseCase, companyUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCertificateRoutes(v1, certificateHandler, surveyHandler)
	addFleetRoutes(v1, fleetHandler, certificateHandler)

	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
