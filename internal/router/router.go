package router

import (
	"time"

	"assetdesk/internal/config"
	"assetdesk/internal/handler"
	"assetdesk/internal/middleware"
	"assetdesk/internal/repository"
	"assetdesk/internal/service"
	"assetdesk/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
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
	companyRepo := repository.NewCompanyRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	userRepo := repository.NewUserRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	dispatcher := worker.NewDispatcher(rdb)

	authSvc := service.NewAuthService(userRepo, cfg)
	companySvc := service.NewCompanyService(companyRepo)
	employeeSvc := service.NewEmployeeService(employeeRepo, companyRepo)
	assetSvc := service.NewAssetService(assetRepo)
	assignmentSvc := service.NewAssignmentService(assignmentRepo, assetRepo, employeeRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	companiesH := handler.NewCompaniesHandler(companySvc)
	employeesH := handler.NewEmployeesHandler(employeeSvc)
	assetsH := handler.NewAssetsHandler(assetSvc)
	assignmentsH := handler.NewAssignmentsHandler(assignmentSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes — operators can read, admins can write
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	read := middleware.RequireRole("admin", "operator")
	write := middleware.RequireRole("admin")

	companies := r.Group("/companies", jwtMW)
	{
		companies.POST("", write, companiesH.Create)
		companies.GET("", read, companiesH.List)
		companies.GET("/:id", read, companiesH.GetByID)
		companies.PATCH("/:id", write, companiesH.Update)
		companies.DELETE("/:id", write, companiesH.Delete)
	}

	employees := r.Group("/employees", jwtMW)
	{
		employees.POST("", write, employeesH.Create)
		employees.GET("", read, employeesH.List)
		employees.GET("/company/:companyId", read, employeesH.ListByCompany)
		employees.GET("/:id", read, employeesH.GetByID)
		employees.PATCH("/:id", write, employeesH.Update)
		employees.DELETE("/:id", write, employeesH.Delete)
	}

	assets := r.Group("/assets", jwtMW)
	{
		assets.POST("", write, assetsH.Create)
		assets.GET("", read, assetsH.List)
		assets.GET("/:id", read, assetsH.GetByID)
		assets.PATCH("/:id", write, assetsH.Update)
		assets.DELETE("/:id", write, assetsH.Delete)
	}

	assignments := r.Group("/asset-assignments", jwtMW)
	{
		assignments.POST("/assign", write, assignmentsH.Assign)
		assignments.DELETE("/unassign", write, assignmentsH.Unassign)
		assignments.GET("/employee/:employeeId/assets", read, assignmentsH.AssetsByEmployee)
	}

	users := r.Group("/users", jwtMW, write)
	{
		users.POST("", usersH.Create)
		users.GET("", usersH.List)
		users.DELETE("/:id", usersH.Deactivate)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
