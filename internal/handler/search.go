package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nvarma/skyfinder/internal/history"
	"github.com/nvarma/skyfinder/internal/models"
	"github.com/nvarma/skyfinder/internal/results"
	"github.com/nvarma/skyfinder/internal/search"
	"github.com/nvarma/skyfinder/pkg/labels"
)

// SearchHandler exposes the results store to the display layer over HTTP.
// Search/provider failures land in the view's error field rather than a
// non-200 status: the display decides how to render them.
type SearchHandler struct {
	store      *results.Store
	autoSearch *search.AutoSearcher
	locations  *search.LocationService
	history    *history.Store
}

func NewSearchHandler(store *results.Store, auto *search.AutoSearcher, locations *search.LocationService, h *history.Store) *SearchHandler {
	return &SearchHandler{
		store:      store,
		autoSearch: auto,
		locations:  locations,
		history:    h,
	}
}

type resultsResponse struct {
	models.ResultsView
	Page models.PageView `json:"page"`
}

func (h *SearchHandler) Search(c echo.Context) error {
	var req models.SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	// Error (if any) is surfaced in the snapshot's error field.
	_ = h.store.Search(c.Request().Context(), req)

	return h.respond(c)
}

// AutoSearch queues a debounced search for changed form parameters. The call
// returns immediately with the current view; the search fires after the
// debounce window unless superseded, and is skipped entirely when the
// parameters match the last fetched search.
func (h *SearchHandler) AutoSearch(c echo.Context) error {
	var req models.SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	h.autoSearch.Queue(req)
	return h.respond(c)
}

// Results serves the current view, reconstructing the search from deep-link
// query parameters when no in-memory search state exists yet.
func (h *SearchHandler) Results(c echo.Context) error {
	origin := c.QueryParam("origin")
	destination := c.QueryParam("destination")
	departureDate := c.QueryParam("departureDate")

	if !h.store.HasSearch() && origin != "" && destination != "" && departureDate != "" {
		adults, err := strconv.Atoi(c.QueryParam("adults"))
		if err != nil || adults < 1 {
			adults = 1
		}
		travelClass := models.TravelClass(c.QueryParam("travelClass"))
		if travelClass == "" {
			travelClass = models.ClassEconomy
		}

		req := models.SearchRequest{
			Origin:           origin,
			Destination:      destination,
			OriginLabel:      c.QueryParam("originLabel"),
			DestinationLabel: c.QueryParam("destinationLabel"),
			DepartureDate:    departureDate,
			ReturnDate:       c.QueryParam("returnDate"),
			Passengers:       models.Passengers{Adults: adults},
			TravelClass:      travelClass,
		}
		if req.OriginLabel == "" {
			req.OriginLabel = labels.AirportLabel(req.Origin)
		}
		if req.DestinationLabel == "" {
			req.DestinationLabel = labels.AirportLabel(req.Destination)
		}

		if err := req.Validate(); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "validation_error",
				Message: err.Error(),
				Code:    http.StatusBadRequest,
			})
		}

		_ = h.store.Search(c.Request().Context(), req)
	}

	return h.respond(c)
}

func (h *SearchHandler) UpdateFilters(c echo.Context) error {
	var update models.FilterUpdate
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse filter update: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	h.store.UpdateFilters(update)
	return h.respond(c)
}

type sortRequest struct {
	Mode models.SortMode `json:"mode"`
}

func (h *SearchHandler) SetSort(c echo.Context) error {
	var req sortRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse sort request: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if err := h.store.SetSortMode(req.Mode); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}
	return h.respond(c)
}

func (h *SearchHandler) Retry(c echo.Context) error {
	if err := h.store.Retry(c.Request().Context()); err != nil {
		if errors.Is(err, results.ErrNoSearch) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "no_search",
				Message: err.Error(),
				Code:    http.StatusBadRequest,
			})
		}
		// Provider failure: surfaced via the snapshot's error field.
	}
	return h.respond(c)
}

func (h *SearchHandler) Locations(c echo.Context) error {
	options := h.locations.Lookup(c.Request().Context(), c.QueryParam("keyword"))
	if options == nil {
		options = []models.LocationOption{}
	}
	return c.JSON(http.StatusOK, options)
}

func (h *SearchHandler) Recent(c echo.Context) error {
	entries := h.history.List(c.Request().Context())
	if entries == nil {
		entries = []models.SearchRequest{}
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *SearchHandler) respond(c echo.Context) error {
	pageSize, err := strconv.Atoi(c.QueryParam("pageSize"))
	if err != nil {
		pageSize = results.DefaultPageSize
	}
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		page = 1
	}

	return c.JSON(http.StatusOK, resultsResponse{
		ResultsView: h.store.Snapshot(),
		Page:        h.store.Page(pageSize, page),
	})
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
