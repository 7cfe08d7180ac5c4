package handlers

import (
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/IbuprofenLover/brewing-stand/application/commands"
	"github.com/IbuprofenLover/brewing-stand/application/queries"
	"github.com/IbuprofenLover/brewing-stand/application/services"
	"github.com/IbuprofenLover/brewing-stand/domain/core/entities"
	"github.com/IbuprofenLover/brewing-stand/domain/core/validators"
	"github.com/IbuprofenLover/brewing-stand/pkg/errors"
	"github.com/IbuprofenLover/brewing-stand/pkg/utils"
)

// CoffeeHandler handles coffee-related HTTP requests
type CoffeeHandler struct {
	base
	service *services.CoffeeService
}

// NewCoffeeHandler creates a new coffee handler
func NewCoffeeHandler(service *services.CoffeeService, errorHandler *errors.ErrorHandler, logger *zap.Logger) *CoffeeHandler {
	return &CoffeeHandler{
		base:    base{errHandler: errorHandler, logger: logger},
		service: service,
	}
}

// CreateCoffeeRequest represents the request body for creating a coffee
type CreateCoffeeRequest struct {
	Name      string `json:"name" validate:"notblank"`
	Origin    string `json:"origin" validate:"notblank"`
	Intensity *int   `json:"intensity" validate:"required"`
	Aroma     string `json:"aroma,omitempty"`
	Type      string `json:"type,omitempty"`
}

// UpdateCoffeeRequest represents the request body for updating a coffee.
// Omitted fields keep their value.
type UpdateCoffeeRequest struct {
	Origin    *string `json:"origin,omitempty"`
	Intensity *int    `json:"intensity,omitempty"`
	Aroma     *string `json:"aroma,omitempty"`
	Type      *string `json:"type,omitempty"`
}

// ListCoffees handles GET /coffees
func (h *CoffeeHandler) ListCoffees(w http.ResponseWriter, r *http.Request) {
	filter := entities.CoffeeFilter{
		Origin: optionalQuery(r, "origin"),
		Aroma:  optionalQuery(r, "aroma"),
		Type:   optionalQuery(r, "type"),
	}
	if raw := optionalQuery(r, "intensity"); raw != nil {
		intensity, err := validators.ParseIntensity(*raw)
		if err != nil {
			h.respondError(w, r, err)
			return
		}
		filter.Intensity = &intensity
	}

	result, err := h.service.ListCoffees(queries.ListCoffeesQuery{
		Filter:      filter,
		IfNoneMatch: r.Header.Get("If-None-Match"),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondConditional(h.base, w, result)
}

// GetCoffee handles GET /coffees/{name}
func (h *CoffeeHandler) GetCoffee(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetCoffee(queries.GetCoffeeQuery{
		Name:        pathParam(r, "name"),
		IfNoneMatch: r.Header.Get("If-None-Match"),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondConditional(h.base, w, result)
}

// CreateCoffee handles POST /coffees
func (h *CoffeeHandler) CreateCoffee(w http.ResponseWriter, r *http.Request) {
	var req CreateCoffeeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.respondError(w, r, err)
		return
	}

	coffee, err := h.service.CreateCoffee(commands.CreateCoffeeCommand{
		Name:      req.Name,
		Origin:    req.Origin,
		Intensity: *req.Intensity,
		Aroma:     req.Aroma,
		Type:      req.Type,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/coffees/"+url.PathEscape(coffee.Name))
	h.respondJSON(w, http.StatusCreated, coffee)
}

// UpdateCoffee handles PUT /coffees/{name}
func (h *CoffeeHandler) UpdateCoffee(w http.ResponseWriter, r *http.Request) {
	var req UpdateCoffeeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	coffee, err := h.service.UpdateCoffee(commands.UpdateCoffeeCommand{
		Name: pathParam(r, "name"),
		Patch: entities.CoffeePatch{
			Origin:    req.Origin,
			Intensity: req.Intensity,
			Aroma:     req.Aroma,
			Type:      req.Type,
		},
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, coffee)
}

// DeleteCoffee handles DELETE /coffees/{name}
func (h *CoffeeHandler) DeleteCoffee(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCoffee(commands.DeleteCoffeeCommand{Name: pathParam(r, "name")}); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
