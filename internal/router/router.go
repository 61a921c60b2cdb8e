// File: internal/router/router.go
package router

import (
	"net/http"

	"freelance-hub/internal/cache"
	"freelance-hub/internal/handler"
	"freelance-hub/internal/handler/auth"
	"freelance-hub/internal/handler/participations"
	"freelance-hub/internal/handler/projects"
	"freelance-hub/internal/middleware"

	"github.com/labstack/echo/v4"
)

// Service 是 handler 需要的全部 service 方法，*service.Service 實作
type Service interface {
	auth.AccountService
	projects.ProjectService
	participations.ParticipationService
}

// Deps 路由需要的相依
type Deps struct {
	DB       handler.Pinger
	Cache    cache.Cache
	Service  Service
	Verifier middleware.TokenVerifier
	// Metrics 為 nil 時不掛 /metrics
	Metrics http.Handler
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	requireAuth := middleware.RequireAuth(d.Verifier)

	if d.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(d.Metrics))
	}

	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(d.DB, d.Cache))

	// 註冊與登入
	apiAuth := api.Group("/Auth")
	apiAuth.POST("/register", auth.RegisterHandler(d.Service))
	apiAuth.POST("/login", auth.LoginHandler(d.Service))

	// 案件
	api.GET("/Projects/public", projects.ListPublicProjectsHandler(d.Service))
	apiProjects := api.Group("/Projects", requireAuth)
	apiProjects.POST("", projects.CreateProjectHandler(d.Service))
	apiProjects.GET("/user/:userId", projects.ListUserProjectsHandler(d.Service))
	apiProjects.GET("/details/:projectId", projects.GetProjectDetailsHandler(d.Service))
	apiProjects.PUT("/:projectId", projects.UpdateProjectHandler(d.Service))
	apiProjects.DELETE("/:projectId", projects.DeleteProjectHandler(d.Service))

	// 參與
	api.GET("/ProjectParticipations/public/:projectId", participations.ListPublicParticipantsHandler(d.Service))
	apiParts := api.Group("/ProjectParticipations", requireAuth)
	apiParts.POST("", participations.JoinHandler(d.Service))
	apiParts.POST("/simpleJoin", participations.JoinHandler(d.Service))
	apiParts.POST("/join/:projectId", participations.JoinByPathHandler(d.Service))
	apiParts.GET("/user/:userId", participations.ListUserParticipationsHandler(d.Service)).Name = "participations.user"
	apiParts.GET("/project/:projectId", participations.ListProjectParticipantsHandler(d.Service))
	apiParts.DELETE("/project/:projectId", participations.LeaveHandler(d.Service))
	apiParts.DELETE("/leave/:projectId", participations.LeaveHandler(d.Service))
	apiParts.DELETE("/leave/:projectId/:userId", participations.RemoveParticipantHandler(d.Service))
	apiParts.GET("/opportunities", participations.OpportunitiesHandler(d.Service))
}
