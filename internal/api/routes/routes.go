package routes

import (
	"time"

	"roster-backend/internal/api/handlers"
	"roster-backend/internal/api/middleware"
	"roster-backend/internal/cache"
	"roster-backend/internal/config"
	"roster-backend/internal/repository"
	"roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "roster-backend/docs"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cacheClient *cache.Client, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.RateLimit(cacheClient, cfg.RateLimitRequests, time.Duration(cfg.RateLimitWindowSec)*time.Second))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	shiftRepo := repository.NewShiftAssignmentRepository(db)
	timeClockRepo := repository.NewTimeClockRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	leaveRepo := repository.NewLeaveRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	shiftDefRepo := repository.NewShiftDefinitionRepository(db)

	// Initialize services
	shiftService := service.NewShiftService(shiftRepo, validator)
	timeClockService := service.NewTimeClockService(timeClockRepo, validator)
	staffService := service.NewStaffService(staffRepo, leaveRepo)
	leaveService := service.NewLeaveService(leaveRepo, validator)
	scheduleService := service.NewScheduleService(
		scheduleRepo, shiftRepo, shiftDefRepo,
		cacheClient, time.Duration(cfg.ScheduleCacheTTLSec)*time.Second,
	)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, cacheClient)
	shiftHandler := handlers.NewShiftHandler(shiftService)
	timeClockHandler := handlers.NewTimeClockHandler(timeClockService)
	staffHandler := handlers.NewStaffHandler(staffService)
	leaveHandler := handlers.NewLeaveHandler(leaveService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		shifts := v1.Group("/shifts")
		{
			shifts.POST("", shiftHandler.SubmitShift)
			shifts.PUT("", shiftHandler.ReviseShift)
			shifts.GET("/:staffCode", shiftHandler.ListShifts)
			shifts.GET("/:staffCode/calendar", scheduleHandler.StaffCalendar)
		}

		machineTimes := v1.Group("/machine-times")
		{
			machineTimes.GET("", timeClockHandler.ListPunches)
			machineTimes.POST("", timeClockHandler.RecordPunch)
			machineTimes.PUT("", timeClockHandler.AmendPunch)
			machineTimes.DELETE("", timeClockHandler.RemovePunch)
		}

		staff := v1.Group("/staff")
		{
			staff.GET("/:code", staffHandler.GetStaff)
			staff.GET("/:code/leave", staffHandler.GetLeaveProfile)
		}

		leave := v1.Group("/leave")
		{
			leave.POST("", leaveHandler.CreateLeave)
			leave.PUT("", leaveHandler.UpdateLeave)
			leave.DELETE("", leaveHandler.DeleteLeave)
		}

		schedules := v1.Group("/schedules")
		{
			schedules.GET("", scheduleHandler.ListSchedules)
			schedules.GET("/export", scheduleHandler.ExportSchedules)
		}
	}

	return router
}
