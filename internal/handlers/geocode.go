package handlers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/smartcleaners/SMART-CLEANERS/internal/services"
)

// GeocodeHandler exposes best-effort address lookups for the checkout form.
// Lookup failures return an empty result so manual entry stays available.
type GeocodeHandler struct {
	geocode *services.GeocodeService
}

// NewGeocodeHandler constructs GeocodeHandler.
func NewGeocodeHandler(geocode *services.GeocodeService) *GeocodeHandler {
	return &GeocodeHandler{geocode: geocode}
}

// Reverse resolves lat/lng query params into a normalized address.
func (h *GeocodeHandler) Reverse(c *fiber.Ctx) error {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		return fiber.NewError(fiber.StatusBadRequest, "lat and lng are required")
	}

	address, err := h.geocode.Reverse(c.UserContext(), lat, lng)
	if err != nil {
		log.Printf("[Geocode] reverse lookup failed: %v", err)
		return c.JSON(fiber.Map{"success": false, "data": nil})
	}

	return c.JSON(fiber.Map{"success": true, "data": address})
}

// Search returns ranked place suggestions for a free-text query.
func (h *GeocodeHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return fiber.NewError(fiber.StatusBadRequest, "q is required")
	}

	limit, _ := strconv.Atoi(c.Query("limit", "5"))

	addresses, err := h.geocode.Search(c.UserContext(), query, limit)
	if err != nil {
		log.Printf("[Geocode] search failed: %v", err)
		return c.JSON(fiber.Map{"success": false, "data": []services.Address{}})
	}

	return c.JSON(fiber.Map{"success": true, "data": addresses})
}
