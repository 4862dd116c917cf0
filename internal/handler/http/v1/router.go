package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))

	// Инциденты и передача OpCen
	incidents := protected.Group("/incidents")
	{
		incidents.PUT("/:id", h.upsertIncident)
		incidents.GET("/:id", h.getIncident)
		incidents.GET("/:id/events", h.listHandoffEvents)
		incidents.POST("/:id/connect", h.requestConnect)
		incidents.POST("/:id/rejoin", h.rejoin)
		incidents.GET("/:id/handoff", h.getHandoff)
		incidents.DELETE("/:id/handoff", h.closeHandoff)
		incidents.POST("/:id/watch", h.watchHandoff)
		incidents.DELETE("/:id/watch", h.unwatchHandoff)
		incidents.POST("/:id/accept", h.acceptIncident)
		incidents.POST("/:id/decline", h.declineIncident)
		incidents.POST("/:id/responders", h.assignResponder)
	}

	protected.GET("/handoffs", h.listHandoffs)
	protected.PUT("/opcen/availability", h.setAvailability)

	// Звонки
	calls := protected.Group("/calls")
	{
		calls.POST("", h.ringCall)
		calls.GET("", h.listCalls)
		calls.POST("/:id/accept", h.acceptCall)
		calls.POST("/:id/decline", h.declineCall)
		calls.GET("/:id/participants", h.participants)
	}

	protected.GET("/presence", h.getPresence)
}
