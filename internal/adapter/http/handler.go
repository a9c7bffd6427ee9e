package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/ray66rus/amadeus-searcher/internal/adapter/http/response"
	"github.com/ray66rus/amadeus-searcher/internal/domain"
	"github.com/ray66rus/amadeus-searcher/internal/usecase"
)

// SearchHandler handles HTTP requests for the two search endpoints.
type SearchHandler struct {
	api usecase.FlightAPI
}

// NewSearchHandler creates a SearchHandler backed by the given API client.
func NewSearchHandler(api usecase.FlightAPI) *SearchHandler {
	return &SearchHandler{api: api}
}

// SearchOffers handles POST /api/v1/search/offers.
func (h *SearchHandler) SearchOffers(c echo.Context) error {
	return h.search(c, h.api.SearchOffers)
}

// SearchCheapestDates handles POST /api/v1/search/cheapest-dates.
func (h *SearchHandler) SearchCheapestDates(c echo.Context) error {
	return h.search(c, h.api.SearchCheapestDates)
}

type searchFunc func(ctx context.Context, req *domain.SearchRequest) ([]domain.Offer, error)

func (h *SearchHandler) search(c echo.Context, fn searchFunc) error {
	var dto SearchRequestDTO
	if err := c.Bind(&dto); err != nil {
		return response.InvalidRequestBody(c)
	}

	req := ToDomainRequest(&dto)
	if err := req.Validate(); err != nil {
		return response.BadRequest(c, err.Error())
	}

	offers, err := fn(c.Request().Context(), req)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, ToSearchResponseDTO(req, offers))
}

// handleError maps search errors to HTTP responses. A mixed batch is a
// caller mistake; API failures surface as bad gateway.
func (h *SearchHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrMixedTripTypes):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return response.GatewayTimeout(c)
	}

	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return response.UpstreamError(c, apiErr.Error())
	}
	return response.InternalServerError(c)
}

// RegisterRoutes wires the search endpoints and health check into e.
func RegisterRoutes(e *echo.Echo, h *SearchHandler) {
	e.GET("/health", response.Health)

	api := e.Group("/api/v1")
	api.POST("/search/offers", h.SearchOffers)
	api.POST("/search/cheapest-dates", h.SearchCheapestDates)
}
