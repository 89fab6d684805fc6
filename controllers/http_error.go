package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nikhilpktcr/dietPlanner/services"
	"github.com/nikhilpktcr/dietPlanner/utils"
)

// respondError maps service sentinels onto HTTP statuses and echoes the
// message in the envelope. Anything unrecognized is a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.SendError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrProfileNotFound),
		errors.Is(err, services.ErrBMILogNotFound),
		errors.Is(err, services.ErrMealNotFound),
		errors.Is(err, services.ErrDietPlanNotFound),
		errors.Is(err, services.ErrDietLogNotFound):
		utils.SendError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrDuplicateProfile),
		errors.Is(err, services.ErrDuplicateTitle):
		utils.SendError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidReference):
		utils.SendError(c, http.StatusBadRequest, err.Error())
	default:
		utils.SendError(c, http.StatusInternalServerError, err.Error())
	}
}

// uintParam parses a positive integer path parameter. On failure it writes
// the 400 itself and returns ok=false.
func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		utils.SendError(c, http.StatusBadRequest, "invalid "+name+" format")
		return 0, false
	}
	return uint(v), true
}
