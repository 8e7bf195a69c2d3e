package routes

import (
	"github.com/labstack/echo/v4"

	"asset-system/internal/controllers"
)

func runAuthRouter(public *echo.Group, secure *echo.Group, ctrl *controllers.AuthController) {
	public.POST("/auth/login", ctrl.Login)
	secure.GET("/auth/me", ctrl.Me)
}
