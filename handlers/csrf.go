package handlers

import (
	"net/http"

	"webnest/utils"

	"github.com/gin-gonic/gin"
)

// CSRFHandler issues the one-time anti-forgery tokens the forms
// require. The UI fetches a fresh token on view-open.
type CSRFHandler struct {
	Store *utils.CSRFStore
}

func NewCSRFHandler(store *utils.CSRFStore) *CSRFHandler {
	return &CSRFHandler{Store: store}
}

func (h *CSRFHandler) CSRFTokenHandler(c *gin.Context) {
	token, err := h.Store.Issue(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"csrfToken": token})
}
