package router

import (
	"time"

	"hotelier/internal/config"
	"hotelier/internal/handler"
	"hotelier/internal/middleware"
	"hotelier/internal/model"
	"hotelier/internal/repository"
	"hotelier/internal/service"
	"hotelier/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	clientRepo := repository.NewClientRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	roomTypeRepo := repository.NewLookupRepository[model.RoomType](db)
	roomStatusRepo := repository.NewLookupRepository[model.RoomStatus](db)
	reservationStatusRepo := repository.NewLookupRepository[model.ReservationStatus](db)
	userTypeRepo := repository.NewLookupRepository[model.UserType](db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, tokenRepo, userTypeRepo, cfg)
	clientSvc := service.NewClientService(clientRepo)
	roomSvc := service.NewRoomService(roomRepo, roomTypeRepo, roomStatusRepo)
	reservationSvc := service.NewReservationService(reservationRepo, roomRepo, clientRepo, reservationStatusRepo, dispatcher)
	dashboardSvc := service.NewDashboardService(dashboardRepo, roomRepo, rdb, cfg.ReportStoragePath)

	roomTypeSvc := service.NewLookupService[model.RoomType](roomTypeRepo, "room type")
	roomStatusSvc := service.NewLookupService[model.RoomStatus](roomStatusRepo, "room status")
	reservationStatusSvc := service.NewLookupService[model.ReservationStatus](reservationStatusRepo, "reservation status")
	userTypeSvc := service.NewLookupService[model.UserType](userTypeRepo, "user type")

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	clientsH := handler.NewClientsHandler(clientSvc)
	roomsH := handler.NewRoomsHandler(roomSvc)
	reservationsH := handler.NewReservationsHandler(reservationSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	roomTypesH := handler.NewLookupHandler(roomTypeSvc)
	roomStatusesH := handler.NewLookupHandler(roomStatusSvc)
	reservationStatusesH := handler.NewLookupHandler(reservationStatusSvc)
	userTypesH := handler.NewLookupHandler(userTypeSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	api := r.Group("/api")

	api.POST("/login", middleware.LoginRateLimiter(), authH.Login)

	// Reference tables are readable without auth so registration forms
	// and booking widgets can populate their dropdowns.
	lookupReads := map[string]*handler.LookupHandler{
		"/room-types":           roomTypesH,
		"/room-statuses":        roomStatusesH,
		"/reservation-statuses": reservationStatusesH,
		"/user-types":           userTypesH,
	}
	for path, h := range lookupReads {
		api.GET(path, h.List)
		api.GET(path+"/:id", h.GetByID)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret, tokenRepo, userRepo)
	authed := api.Group("", jwtMW)
	{
		authed.POST("/logout", authH.Logout)

		// User management — administrators only
		users := authed.Group("/users", middleware.RequireRole("administrator"))
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.GET("/:id", usersH.GetByID)
			users.PUT("/:id", usersH.Update)
			users.PATCH("/:id/status", usersH.UpdateStatus)
		}

		clients := authed.Group("/clients")
		{
			clients.POST("", clientsH.Create)
			clients.GET("", clientsH.List)
			clients.GET("/:id", clientsH.GetByID)
			clients.PUT("/:id", clientsH.Update)
			clients.PATCH("/:id/status", clientsH.UpdateStatus)
		}

		rooms := authed.Group("/rooms")
		{
			rooms.POST("", roomsH.Create)
			rooms.GET("", roomsH.List)
			rooms.GET("/:id", roomsH.GetByID)
			rooms.PUT("/:id", roomsH.Update)
			rooms.PATCH("/:id/status", roomsH.UpdateStatus)
		}

		reservations := authed.Group("/reservations")
		{
			reservations.POST("", reservationsH.Create)
			reservations.GET("", reservationsH.List)
			reservations.GET("/:id", reservationsH.GetByID)
			reservations.PUT("/:id", reservationsH.Update)
			reservations.DELETE("/:id", reservationsH.Delete)
		}

		authed.GET("/dashboard", dashboardH.Stats)
		authed.GET("/dashboard/pdf", dashboardH.ExportPDF)

		// Lookup writes — administrators only
		lookupWrites := map[string]*handler.LookupHandler{
			"/room-types":           roomTypesH,
			"/room-statuses":        roomStatusesH,
			"/reservation-statuses": reservationStatusesH,
			"/user-types":           userTypesH,
		}
		adminOnly := middleware.RequireRole("administrator")
		for path, h := range lookupWrites {
			g := authed.Group(path, adminOnly)
			g.POST("", h.Create)
			g.PUT("/:id", h.Update)
			g.DELETE("/:id", h.Delete)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
