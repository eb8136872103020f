package api

import (
	"net/http"                          // HTTP handler adapters
	"planetary_api/internal/mail"       // Notification gateway
	"planetary_api/internal/middleware" // Request middleware
	"planetary_api/internal/store"      // Data access layer
	"planetary_api/internal/utils"      // Cache helpers
	"time"                              // Token lifetime

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Dependencies are the collaborators injected into the handlers
type Dependencies struct {
	Users          store.UserStore     // User accounts
	Planets        store.PlanetStore   // Planet records
	Cache          *utils.Cache        // Optional planet cache, nil disables it
	Mailer         mail.Sender         // Password reset delivery
	Metrics        *middleware.Metrics // Request metrics, nil disables them
	MetricsHandler http.Handler        // Exposition handler mounted at /metrics
	JWTSecret      string              // Token signing secret
	TokenTTL       time.Duration       // Token lifetime
	Logger         logrus.FieldLogger  // Access log destination
}

// NewRouter builds the gin engine with every route registered
func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Handler())
	}
	r.Use(middleware.IdentifyBearer(deps.JWTSecret))
	if deps.Logger != nil {
		r.Use(middleware.RequestLogger(deps.Logger))
	}

	// Sample routes
	r.GET("/", HelloHandler())
	r.GET("/data", DataHandler())
	r.GET("/not_found", NotFoundHandler())
	r.GET("/params", QueryParamsHandler())
	r.GET("/params/:name/:age", PathParamsHandler())

	// Planet routes
	r.GET("/planets", ListPlanetsHandler(deps.Planets, deps.Cache))
	r.GET("/planet_details/:planet_id", PlanetDetailsHandler(deps.Planets, deps.Cache))
	r.POST("/add_planet", AddPlanetHandler(deps.Planets, deps.Cache))

	// Account routes
	r.POST("/register", RegisterHandler(deps.Users))
	r.POST("/login", LoginHandler(deps.Users, deps.JWTSecret, deps.TokenTTL))
	r.GET("/reset_password/:email", ResetPasswordHandler(deps.Users, deps.Mailer))

	if deps.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(deps.MetricsHandler))
	}
	return r
}
