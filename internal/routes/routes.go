package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/NowSalonApp/now-salon-web/internal/backend"
	"github.com/NowSalonApp/now-salon-web/internal/config"
	"github.com/NowSalonApp/now-salon-web/internal/gate"
	"github.com/NowSalonApp/now-salon-web/internal/handlers"
	"github.com/NowSalonApp/now-salon-web/internal/session"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	api := backend.New(cfg.APIBaseURL)
	resolver := session.NewResolver(api, log)
	g := gate.New(resolver)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(api, resolver, g, log)
	customerHandler := handlers.NewCustomerHandler(api, g, log)
	employeeHandler := handlers.NewEmployeeHandler(api, g, log)
	serviceHandler := handlers.NewServiceHandler(api, g, log)
	scheduleHandler := handlers.NewScheduleHandler(api, g, log)
	salonHandler := handlers.NewSalonHandler(api, g, log)

	// ======================================================
	// ÁREA DO CLIENTE
	// ======================================================
	r.GET("/", authHandler.HomePage)
	r.GET("/logout", authHandler.Logout)

	public := r.Group("/")
	public.Use(g.CustomerArea())
	{
		public.GET("/login", authHandler.LoginPage)
		public.POST("/login", authHandler.LoginSubmit)
		public.GET("/signup", authHandler.SignUpPage)
		public.POST("/signup", authHandler.SignUpSubmit)
		public.GET("/portal", authHandler.PortalPage)
		public.POST("/portal", authHandler.PortalSubmit)
	}

	// ======================================================
	// ÁREA DO FUNCIONÁRIO
	// ======================================================
	employee := r.Group("/employee")
	employee.Use(g.EmployeeArea())
	{
		employee.GET("", employeeHandler.Dashboard)
	}

	// ======================================================
	// GERENCIAMENTO (SOMENTE ADMIN)
	// ======================================================
	admin := r.Group("/employee")
	admin.Use(g.AdminArea())
	{
		admin.GET("/salon", salonHandler.Page)
		admin.POST("/salon", salonHandler.Submit)

		admin.GET("/customer", customerHandler.List)
		admin.POST("/customer/action", customerHandler.Action)
		admin.GET("/customer/register", customerHandler.RegisterPage)
		admin.POST("/customer/register", customerHandler.RegisterSubmit)
		admin.GET("/customer/edit/:id", customerHandler.EditPage)
		admin.POST("/customer/edit/:id", customerHandler.EditSubmit)

		admin.GET("/employee", employeeHandler.List)
		admin.POST("/employee/action", employeeHandler.Action)
		admin.GET("/employee/register", employeeHandler.RegisterPage)
		admin.POST("/employee/register", employeeHandler.RegisterSubmit)
		admin.GET("/employee/edit/:id", employeeHandler.EditPage)
		admin.POST("/employee/edit/:id", employeeHandler.EditSubmit)

		admin.GET("/service", serviceHandler.List)
		admin.POST("/service/action", serviceHandler.Action)
		admin.GET("/service/register", serviceHandler.RegisterPage)
		admin.POST("/service/register", serviceHandler.RegisterSubmit)
		admin.GET("/service/edit/:id", serviceHandler.EditPage)
		admin.POST("/service/edit/:id", serviceHandler.EditSubmit)

		admin.GET("/schedule", scheduleHandler.List)
		admin.POST("/schedule/action", scheduleHandler.Action)
		admin.GET("/schedule/selectcustomer", scheduleHandler.SelectCustomer)
		admin.POST("/schedule/selectcustomer", scheduleHandler.SelectCustomerAction)
		admin.GET("/schedule/register/:id", scheduleHandler.RegisterPage)
		admin.POST("/schedule/register/:id", scheduleHandler.RegisterSubmit)
		admin.GET("/schedule/edit/:id", scheduleHandler.EditPage)
		admin.POST("/schedule/edit/:id", scheduleHandler.EditSubmit)
	}
}
