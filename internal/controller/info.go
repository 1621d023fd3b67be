package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type InfoController interface {
	Info(c echo.Context) error
}

type infoController struct {
}

func newInfoController() InfoController {
	return &infoController{}
}

func (ic *infoController) Info(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"service": "fanadium-backend",
		"status":  "ok",
	})
}
