package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/example/platterflow/pkg/config"
	"github.com/example/platterflow/pkg/service"
)

// Server is the HTTP surface over the restaurant services.
type Server struct {
	config *config.Config
	logger *zap.Logger
	router *gin.Engine
	orders *service.OrderService
	tables *service.TableService
	menu   *service.MenuService
	auth   *service.AuthService
	audit  service.Auditor
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	orders *service.OrderService,
	tables *service.TableService,
	menu *service.MenuService,
	auth *service.AuthService,
	audit service.Auditor,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(loggerMiddleware(logger))

	return &Server{
		config: cfg,
		logger: logger,
		router: router,
		orders: orders,
		tables: tables,
		menu:   menu,
		auth:   auth,
		audit:  audit,
	}
}

func (s *Server) SetupRoutes() {
	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", s.login)
			auth.POST("/register", s.register)
		}

		users := api.Group("/users")
		{
			users.GET("", s.listUsers)
			users.PUT("/:id", s.updateUser)
		}

		menu := api.Group("/menu")
		{
			menu.GET("", s.listMenuItems)
			menu.POST("", s.createMenuItem)
			menu.GET("/:id", s.getMenuItem)
			menu.PUT("/:id", s.updateMenuItem)
			menu.DELETE("/:id", s.deleteMenuItem)
		}

		tables := api.Group("/tables")
		{
			tables.GET("", s.listTables)
			tables.POST("", s.createTable)
			tables.GET("/:id", s.getTable)
			tables.PUT("/:id", s.updateTable)
			tables.DELETE("/:id", s.deleteTable)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", s.listOrders)
			orders.POST("", s.createOrder)
			orders.GET("/status/:status", s.listOrdersByStatus)
			orders.GET("/:id", s.getOrder)
			orders.PUT("/:id", s.updateOrder)
			orders.DELETE("/:id", s.deleteOrder)
		}

		api.GET("/audit/:entity", s.listAuditEntries)
	}

	// Swagger
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.logger.Info("API server starting", zap.String("address", addr))
	return s.router.Run(addr)
}

// Router exposes the configured engine, mainly for handler tests.
func (s *Server) Router() http.Handler {
	return s.router
}
