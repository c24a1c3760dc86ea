package routes

import (
	"rpa_chamados/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDemands    = "/demands"
	PathTrackings  = "/trackings"
	PathClients    = "/clients"
	PathProjects   = "/projects"
	PathRobots     = "/robots"
	PathSubmitters = "/submitters"
	PathRequests   = "/requests"
	PathDp         = "/dp"
)

func addDemandRoutes(rg *gin.RouterGroup, demandHandler *handlers.DemandHandler, trackingHandler *handlers.TrackingHandler) {
	demands := rg.Group(PathDemands)
	{
		demands.POST("", demandHandler.CreateDemand)
		demands.GET("", demandHandler.GetDemands)
		demands.GET("/:id", demandHandler.GetDemandByID)
		demands.PUT("/:id", demandHandler.UpdateDemand)
		demands.DELETE("/:id", demandHandler.DeleteDemand)

		demands.GET("/status/:status", demandHandler.GetDemandsByStatus)
		demands.GET("/type/:type", demandHandler.GetDemandsByType)
		demands.GET("/analyst/:analystId", demandHandler.GetDemandsByAnalystID)
		demands.GET("/focal-point/:focalPointId", demandHandler.GetDemandsByFocalPointID)
		demands.GET("/project/:projectId", demandHandler.GetDemandsByProjectID)
		demands.GET("/robot/:robotId", demandHandler.GetDemandsByRobotID)
		demands.GET("/client-field/:client", demandHandler.GetDemandsByClient)
		demands.GET("/service/:service", demandHandler.GetDemandsByService)
	}

	trackings := rg.Group(PathTrackings)
	{
		trackings.POST("", trackingHandler.CreateTracking)
		trackings.GET("", trackingHandler.GetTrackings)
		trackings.GET("/:id", trackingHandler.GetTrackingByID)
		trackings.PUT("/:id", trackingHandler.UpdateTracking)
		trackings.DELETE("/:id", trackingHandler.DeleteTracking)

		trackings.GET("/submitter/:submitterId", trackingHandler.GetTrackingsBySubmitterID)
		trackings.GET("/nature/:nature", trackingHandler.GetTrackingsByNature)
		trackings.GET("/demand/:demandId", trackingHandler.GetTrackingsByDemandID)
		trackings.GET("/demand/:demandId/total-hours", trackingHandler.GetTotalHoursByDemandID)
		trackings.GET("/demand/:demandId/total-hours/:nature", trackingHandler.GetTotalHoursByDemandIDAndNature)
	}
}

func addReferenceRoutes(
	rg *gin.RouterGroup,
	clientHandler *handlers.ClientHandler,
	projectHandler *handlers.ProjectHandler,
	robotHandler *handlers.RobotHandler,
	submitterHandler *handlers.SubmitterHandler,
) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.GetClients)
		clients.GET("/:id", clientHandler.GetClientByID)
		clients.PUT("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
	}

	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("", projectHandler.GetProjects)
		projects.GET("/:id", projectHandler.GetProjectByID)
		projects.PUT("/:id", projectHandler.UpdateProject)
		projects.DELETE("/:id", projectHandler.DeleteProject)
	}

	robots := rg.Group(PathRobots)
	{
		robots.POST("", robotHandler.CreateRobot)
		robots.GET("", robotHandler.GetRobots)
		robots.GET("/:id", robotHandler.GetRobotByID)
		robots.PUT("/:id", robotHandler.UpdateRobot)
		robots.DELETE("/:id", robotHandler.DeleteRobot)
	}

	submitters := rg.Group(PathSubmitters)
	{
		submitters.GET("", submitterHandler.GetSubmitters)
		submitters.GET("/:id", submitterHandler.GetSubmitterByID)
		submitters.PATCH("/:id/status", submitterHandler.UpdateSubmitterStatus)
	}
}

func addRequestRoutes(rg *gin.RouterGroup, requestHandler *handlers.ServiceRequestHandler, dpHandler *handlers.DpHandler) {
	requests := rg.Group(PathRequests)
	{
		requests.POST("", requestHandler.CreateRequest)
		requests.GET("", requestHandler.GetRequests)
		requests.GET("/:id", requestHandler.GetRequestByID)
		requests.DELETE("/:id", requestHandler.DeleteRequest)
	}

	dp := rg.Group(PathDp)
	{
		dp.GET("/cells", dpHandler.GetCells)
		dp.GET("/cells/:cellId/clients", dpHandler.GetClientsByCell)
		dp.GET("/cells/:cellId/clients/:clientId/services", dpHandler.GetServicesByCellAndClient)
	}
}
