package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"healthcard/internal/api/controllers"
	"healthcard/internal/infra"
	"healthcard/internal/models/db_models"
	"healthcard/pkg/middleware"
)

type RouterParams struct {
	fx.In

	Config        infra.Config
	Log           *zap.Logger
	Metrics       *infra.Metrics
	Cards         *controllers.CardController
	Beneficiaries *controllers.BeneficiaryController
}

func NewRouter(p RouterParams) *gin.Engine {
	if p.Config.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Log, p.Metrics.HTTPRequests))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Metrics.Registry, promhttp.HandlerOpts{})))

	RegisterRoutes(r, []byte(p.Config.JWTSecret), p.Cards, p.Beneficiaries)

	return r
}

func RegisterRoutes(r *gin.Engine,
	secret []byte,
	cardController *controllers.CardController,
	beneficiaryController *controllers.BeneficiaryController) {

	auth := middleware.JWTAuthMiddleware(secret)
	staff := middleware.RequireRoles(db_models.RoleAdmin, db_models.RoleOfficeAgent)
	adminOnly := middleware.RequireRoles(db_models.RoleAdmin)

	cardsGroup := r.Group("/api/cards")
	cardsGroup.GET("/public/search", cardController.SearchPublicCard)
	cardsGroup.GET("/public/:cardNumber", cardController.GetPublicCard)
	cardsGroup.GET("/lookup", auth, cardController.LookupCards)
	cardsGroup.POST("", auth, staff, cardController.CreateCard)
	cardsGroup.GET("", auth, staff, cardController.ListCards)
	cardsGroup.GET("/:id", auth, staff, cardController.GetCard)
	cardsGroup.PUT("/:id", auth, staff, cardController.UpdateCard)
	cardsGroup.DELETE("/:id", auth, staff, cardController.DeleteCard)

	beneficiariesGroup := r.Group("/api/beneficiaries", auth)
	beneficiariesGroup.POST("", beneficiaryController.CreateBeneficiary)
	beneficiariesGroup.GET("", beneficiaryController.ListBeneficiaries)
	beneficiariesGroup.GET("/:id", beneficiaryController.GetBeneficiary)
	beneficiariesGroup.PUT("/:id", beneficiaryController.UpdateBeneficiary)
	beneficiariesGroup.DELETE("/:id", adminOnly, beneficiaryController.DeleteBeneficiary)
}
