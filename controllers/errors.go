package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"menu-digital/services"
	"menu-digital/utils"
)

// respondServiceError memetakan error domain ke status HTTP:
// ValidationError 400, NotFoundError 404, ConflictError 409. Sisanya
// dianggap error infrastruktur (boleh di-retry caller) dan tidak
// membocorkan detail internal.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError
	var conflictErr *services.ConflictError

	switch {
	case errors.As(err, &validationErr):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.As(err, &notFoundErr):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.As(err, &conflictErr):
		utils.RespondError(c, http.StatusConflict, err)
	default:
		utils.ErrorLogger.Printf("Internal error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("internal error, please retry"))
	}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid "+name))
		return 0, false
	}
	return uint(id), true
}
