package routes

import (
	"log"
	"strconv"

	_ "rpa_chamados/docs" // This will be auto-generated
	"rpa_chamados/internal/adapter/http/handlers"
	repository2 "rpa_chamados/internal/adapter/persistence/repository"
	"rpa_chamados/internal/infrastructure/database"
	"rpa_chamados/internal/infrastructure/identity"
	"rpa_chamados/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	demandRepo := repository2.NewDemandDynamoRepository(ddb)
	trackingRepo := repository2.NewTrackingDynamoRepository(ddb)
	clientRepo := repository2.NewClientDynamoRepository(ddb)
	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	robotRepo := repository2.NewRobotDynamoRepository(ddb)
	submitterRepo := repository2.NewSubmitterDynamoRepository(ddb)
	requestRepo := repository2.NewRequestDynamoRepository(ddb)
	dpRepo := repository2.NewDpDynamoRepository(ddb)

	verifier, err := identity.NewAzureADVerifier()
	if err != nil {
		log.Fatalf("Failed to configure the identity verifier: %v", err)
	}
	policy := identity.NewSubmitterAccessPolicy(submitterRepo)

	demandUseCase := usecase.NewDemandUseCase(demandRepo, projectRepo, submitterRepo, robotRepo, policy)
	trackingUseCase := usecase.NewTrackingUseCase(trackingRepo, demandRepo, submitterRepo, demandUseCase, policy)
	clientUseCase := usecase.NewClientUseCase(clientRepo, policy)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, clientRepo, policy)
	robotUseCase := usecase.NewRobotUseCase(robotRepo, policy)
	submitterUseCase := usecase.NewSubmitterUseCase(submitterRepo, policy)
	requestUseCase := usecase.NewRequestUseCase(requestRepo, submitterUseCase, policy)
	dpUseCase := usecase.NewDpUseCase(dpRepo)

	demandHandler := handlers.NewDemandHandler(demandUseCase)
	trackingHandler := handlers.NewTrackingHandler(trackingUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	projectHandler := handlers.NewProjectHandler(projectUseCase)
	robotHandler := handlers.NewRobotHandler(robotUseCase)
	submitterHandler := handlers.NewSubmitterHandler(submitterUseCase)
	requestHandler := handlers.NewServiceRequestHandler(requestUseCase)
	dpHandler := handlers.NewDpHandler(dpUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Rotas autenticadas
	authed := router.Group("/v1", handlers.AuthRequired(verifier))
	addDemandRoutes(authed, demandHandler, trackingHandler)
	addReferenceRoutes(authed, clientHandler, projectHandler, robotHandler, submitterHandler)
	addRequestRoutes(authed, requestHandler, dpHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
