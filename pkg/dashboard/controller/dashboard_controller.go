package controller

import "github.com/labstack/echo/v4"

type DashboardController interface {
	Overview(c echo.Context) error
	Stats(c echo.Context) error
	States(c echo.Context) error
	Crops(c echo.Context) error
	LandUse(c echo.Context) error
	Export(c echo.Context) error
}
