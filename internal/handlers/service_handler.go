package handlers

import (
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/hairday/salon-booking/internal/httpresp"
)

// ServiceHandler exposes the static service catalog so clients do not have
// to hard-code the duration rule.
type ServiceHandler struct {
	services map[string]int
}

func NewServiceHandler(services map[string]int) *ServiceHandler {
	return &ServiceHandler{services: services}
}

type ServiceDTO struct {
	Name        string `json:"name"`
	DurationMin int    `json:"duration_min"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	out := make([]ServiceDTO, 0, len(h.services))
	for name, duration := range h.services {
		out = append(out, ServiceDTO{Name: name, DurationMin: duration})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	httpresp.List(c, out)
}
