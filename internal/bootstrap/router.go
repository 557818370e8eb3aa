package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/testboard/webapi-backend/config"
	httpapi "github.com/testboard/webapi-backend/internal/api/http"
	"github.com/testboard/webapi-backend/internal/api/http/middleware"
	"github.com/testboard/webapi-backend/internal/report"
	"github.com/testboard/webapi-backend/internal/storage/postgres"
	tphttp "github.com/testboard/webapi-backend/internal/testprojects/http"
	"github.com/testboard/webapi-backend/internal/testprojects/repository"
)

type RouterDeps struct {
	Config *config.Config
	Log    *zap.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()

	// Fault handler goes first so it observes every unhandled fault.
	reporter := report.NewReporter(dep.Config.Reporting, dep.Log)
	r.Use(reporter.Middleware())
	r.Use(middleware.RequestID(dep.Log))

	// Frontends are served from arbitrary origins (GitHub Pages deployments).
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))

	statusHandler := httpapi.NewStatusHandler(dep.Config.App.ServiceName, dep.Config.App.Version)
	statusHandler.RegisterRoutes(r)

	conn := postgres.NewConnector(dep.Config.Database.URL)
	repo := repository.New(conn)

	testGroup := r.Group("/api/test")
	tphttp.NewHandler(repo).Register(testGroup)

	return r
}
