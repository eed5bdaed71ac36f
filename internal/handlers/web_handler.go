package handlers

import "github.com/gin-gonic/gin"

// WebHandler serves the customer and owner pages. The pages are plain
// static files; all dynamic behavior goes through the JSON API.
type WebHandler struct {
	publicDir string
}

func NewWebHandler(publicDir string) *WebHandler {
	if publicDir == "" {
		publicDir = "./public"
	}
	return &WebHandler{publicDir: publicDir}
}

func (h *WebHandler) BookingPage(c *gin.Context) {
	c.File(h.publicDir + "/index.html")
}

func (h *WebHandler) OwnerPage(c *gin.Context) {
	c.File(h.publicDir + "/owner.html")
}
