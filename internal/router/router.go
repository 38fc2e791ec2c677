package router

import (
	"errors"
	"net/http"
	"net/url"
	"os"
	"strings"

	docs "github.com/cashfy/backend/api"
	"github.com/cashfy/backend/internal/controllers/healthz"
	v1 "github.com/cashfy/backend/internal/controllers/v1"
	"github.com/cashfy/backend/internal/httputil"
	"github.com/cashfy/backend/internal/models"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

var errMethodNotAllowed = errors.New("this HTTP method is not allowed for the endpoint you called")

// Config creates the router with all middlewares.
//
// The collectors are registered with Prometheus together with the request
// metrics. The returned function unregisters them again.
func Config(url *url.URL, collectors ...prometheus.Collector) (*gin.Engine, func(), error) {
	collectors = append(append([]prometheus.Collector{}, metrics...), collectors...)
	err := registerPrometheusMetrics(collectors)
	if err != nil {
		return nil, func() {}, err
	}

	teardown := func() {
		unregisterPrometheusMetrics(collectors)
	}

	r := gin.New()
	r.ForwardedByClientIP = false
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(url))
	r.Use(MetricsMiddleware())
	r.NoMethod(func(c *gin.Context) {
		httputil.NewError(c, http.StatusMethodNotAllowed, errMethodNotAllowed)
	})
	r.Use(RequestLogger())

	if origins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS"); ok {
		r.Use(CORSMiddleware(strings.Fields(origins)))
	}

	// Route printing clutters the test output
	gin.DebugPrintRouteFunc = func(_, _, _ string, _ int) {}

	// Client IPs are never used
	_ = r.SetTrustedProxies(nil)

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", version).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "Cashfy"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for Cashfy, a personal finance app that rewards good financial habits with XP and badges."

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
func AttachRoutes(co v1.Controller, group *gin.RouterGroup) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	healthz.RegisterRoutes(group.Group("/healthz"))

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1Group := group.Group("/v1")
	{
		v1Group.GET("", GetV1)
		v1Group.OPTIONS("", OptionsV1)
	}

	co.RegisterRoutes(v1Group)
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"` // Swagger API documentation
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"`      // Healthz endpoint
	Version string `json:"version" example:"https://example.com/api/version"`      // Endpoint returning the version of the backend
	Metrics string `json:"metrics" example:"https://example.com/api/metrics"`      // Endpoint returning Prometheus metrics
	V1      string `json:"v1" example:"https://example.com/api/v1"`                // List endpoint for all v1 endpoints
}

// GetRoot returns the link list for the API root
//
//	@Summary		API root
//	@Description	Entrypoint for the API, listing all endpoints
//	@Tags			General
//	@Success		200	{object}	RootResponse
//	@Router			/ [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    url + "/docs/index.html",
			Healthz: url + "/healthz",
			Version: url + "/version",
			Metrics: url + "/metrics",
			V1:      url + "/v1",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"` // Data object for the version endpoint
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"` // the running version of the Cashfy backend
}

// GetVersion returns the API version object
//
//	@Summary		API version
//	@Description	Returns the software version of the API
//	@Tags			General
//	@Success		200	{object}	VersionResponse
//	@Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsVersion returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"` // Links for the v1 API
}

type V1Links struct {
	Register      string `json:"register" example:"https://example.com/api/v1/auth/register"`           // Create a user
	Login         string `json:"login" example:"https://example.com/api/v1/auth/login"`                 // Get a token
	Transactions  string `json:"transactions" example:"https://example.com/api/v1/transactions"`        // URL of transaction list endpoint
	Goals         string `json:"goals" example:"https://example.com/api/v1/goals"`                      // URL of goal list endpoint
	IncomeSources string `json:"incomeSources" example:"https://example.com/api/v1/income-sources"`     // URL of income source list endpoint
	Projects      string `json:"projects" example:"https://example.com/api/v1/projects"`                // URL of project list endpoint
	CategoryRules string `json:"categoryRules" example:"https://example.com/api/v1/category-rules"`     // URL of category rule list endpoint
	Gamification  string `json:"gamification" example:"https://example.com/api/v1/gamification"`        // XP, level and badges
	Notifications string `json:"notifications" example:"https://example.com/api/v1/notifications"`      // Notification feed
	Lessons       string `json:"lessons" example:"https://example.com/api/v1/lessons"`                  // Financial education lessons
	ShoppingList  string `json:"shoppingList" example:"https://example.com/api/v1/shopping-list"`       // The shopping list
	Summary       string `json:"summary" example:"https://example.com/api/v1/summary"`                  // Monthly summary
	Calculators   string `json:"calculators" example:"https://example.com/api/v1/calculators"`          // Projections
	Rates         string `json:"rates" example:"https://example.com/api/v1/rates"`                      // Exchange rates
	Advisor       string `json:"advisor" example:"https://example.com/api/v1/advisor/analysis"`         // Financial analysis
}

// GetV1 returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	V1Response
//	@Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL)) + "/v1"

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Register:      url + "/auth/register",
			Login:         url + "/auth/login",
			Transactions:  url + "/transactions",
			Goals:         url + "/goals",
			IncomeSources: url + "/income-sources",
			Projects:      url + "/projects",
			CategoryRules: url + "/category-rules",
			Gamification:  url + "/gamification",
			Notifications: url + "/notifications",
			Lessons:       url + "/lessons",
			ShoppingList:  url + "/shopping-list",
			Summary:       url + "/summary",
			Calculators:   url + "/calculators",
			Rates:         url + "/rates",
			Advisor:       url + "/advisor/analysis",
		},
	})
}

// OptionsV1 returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
