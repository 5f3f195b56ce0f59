package http

import (
	"time"

	"github.com/labstack/echo/v4"

	"charity-connect.com/charity-connect/internal/auth"
	middleware "charity-connect.com/charity-connect/internal/http/middlewares"
)

func Register(
	e *echo.Echo,
	h *Handler,
	tokens *auth.TokenIssuer,
	roles auth.RoleDirectory,
	rateLimitPerMinute int,
) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.POST("/signup", h.Signup)
	e.POST("/login", h.Login)

	api := e.Group("", middleware.Auth(tokens, roles))
	api.POST("/benefactors", h.RegisterBenefactor)
	api.POST("/charities", h.RegisterCharity)
	api.GET("/tasks", h.ListTasks)
	api.POST("/tasks", h.CreateTask)
	api.GET("/tasks/:id", h.GetTask)
	api.POST("/tasks/:id/request", h.RequestTask)
	api.POST("/tasks/:id/response", h.RespondTask)
	api.POST("/tasks/:id/done", h.DoneTask)
}
