package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"menu-digital/controllers"
	"menu-digital/middlewares"
	"menu-digital/monitoring"
	"menu-digital/services"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())

	// Satu TableService di-share semua controller supaya lock per meja
	// benar-benar satu titik serialisasi.
	tableSvc := services.NewTableService(db)

	userCtrl := controllers.NewUserController(db)
	tableCtrl := controllers.NewTableController(tableSvc)
	sessionCtrl := controllers.NewSessionController(tableSvc)
	reservationCtrl := controllers.NewReservationController(tableSvc)
	orderCtrl := controllers.NewOrderController(db, tableSvc)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(monitoring.Handler()))

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Snapshot yang sama untuk dashboard staff dan layar customer
	r.GET("/tables", tableCtrl.GetAllTables)
	r.GET("/tables/scan/:code", tableCtrl.ScanTable)

	// Order dibuat tanpa login (layar customer / kitchen)
	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/profile", userCtrl.GetProfile)
	auth.POST("/logout", userCtrl.Logout)

	staff := auth.Group("/")
	staff.Use(middlewares.RequireRole("staff"))
	{
		// TABLE REGISTRY
		staff.GET("/tables", tableCtrl.GetAllTables)
		staff.POST("/tables", tableCtrl.CreateTable)
		staff.PATCH("/tables/:table_id", tableCtrl.UpdateTable)
		staff.DELETE("/tables/:table_id", tableCtrl.DeleteTable)

		// OCCUPANCY
		staff.POST("/tables/:table_id/occupy", sessionCtrl.OccupyTable)
		staff.POST("/tables/:table_id/release", sessionCtrl.ReleaseTable)

		// RESERVATIONS
		staff.POST("/tables/:table_id/reserve", reservationCtrl.ReserveTable)
		staff.GET("/reservations", reservationCtrl.GetUpcomingReservations)
	}

	// WebSocket untuk update realtime (opsional, polling tetap jalan)
	wsGroup := r.Group("/ws")
	wsGroup.Use(middlewares.WebSocketAuthMiddleware())
	{
		wsGroup.GET("/:role", controllers.EventsHandler)
	}

	return r
}
