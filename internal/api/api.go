package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/ptcharoen/agrirot/internal/api/controller"
	"github.com/ptcharoen/agrirot/internal/pkg/logger"
	"github.com/ptcharoen/agrirot/internal/pkg/store"
	"github.com/ptcharoen/agrirot/internal/service/catalog"
	"github.com/ptcharoen/agrirot/internal/service/rotation"
	"github.com/ptcharoen/agrirot/internal/service/treatment"
)

type APIService struct {
	router *echo.Echo

	treatmentService *treatment.Service
	rotationService  *rotation.Service
	catalogService   *catalog.Service
}

func (svc *APIService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

// Router is exposed for handler tests.
func (svc *APIService) Router() *echo.Echo {
	return svc.router
}

func NewAPIService(store store.Store, policy rotation.Policy) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = NewSonicSerializer()
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Logger())
	svc.router.Use(RequestIDMiddleware)
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	svc.treatmentService = treatment.NewService(store)
	svc.rotationService = rotation.NewService(store, policy)
	svc.catalogService = catalog.NewService(store)

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(svc.treatmentService, svc.rotationService, svc.catalogService)

	treatments := api.Group("/treatments")
	treatments.POST("", cntrl.RecordTreatment)

	plantings := api.Group("/plantings")
	plantings.GET("/:id/rotation/check", cntrl.CheckRotation)
	plantings.GET("/:id/rotation/history", cntrl.UsageHistory)
	plantings.GET("/:id/rotation/recommendations", cntrl.Recommendations)

	cat := api.Group("/catalog")
	cat.GET("/moa/groups", cntrl.ListMoAGroups)
	cat.GET("/moa/groups/system/:system", cntrl.ListMoAGroupsBySystem)
	cat.GET("/targets/:id/products", cntrl.ProductsForTarget)
	cat.POST("/moa/backfill", cntrl.BackfillMoAGroups, svc.AdminMiddleware)

	return svc, nil
}
