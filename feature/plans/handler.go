package plans

import (
	"errors"

	"floor-plan/core/floorplan"
	"floor-plan/core/logger"
	"floor-plan/core/utils"
	"floor-plan/feature/plans/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for floor plans.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the floor plan routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/floorplans")
	group.Get("/", h.HandleListPlans)
	group.Post("/parse", h.HandleParsePlan)
	group.Get("/*", h.HandleParseStoredPlan)
}

// HandleParsePlan parses the plan sent as the request body.
// @Summary Parse Floor Plan
// @Description Parses an ASCII floor plan sent as plain text and counts chairs per room.
// @Tags floorplans
// @Accept plain
// @Produce json
// @Param chair_types query string false "Comma-separated chair characters (e.g. 'C,S,P,W')"
// @Param separators query string false "Comma-separated wall characters"
// @Param plan body string true "Floor plan text"
// @Success 200 {object} models.Report "Chair counts"
// @Failure 400 {object} models.ErrorResponse "Invalid legend or plan encoding"
// @Failure 422 {object} models.ErrorResponse "Empty plan"
// @Router /floorplans/parse [post]
func (h *Handler) HandleParsePlan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	legend, err := h.legendFor(c)
	if err != nil {
		return h.fail(c, l, err)
	}

	report, err := h.service.AnalyzeText("request", c.Body(), legend)
	if errors.Is(err, floorplan.ErrLoad) {
		// The only load failure for a request body is an undecodable plan.
		return h.failWith(c, l, fiber.StatusBadRequest, err)
	}
	if err != nil {
		return h.fail(c, l, err)
	}

	l.Info("Parsed floor plan", zap.Int("rooms", len(report.Rooms)))
	return c.JSON(report)
}

// HandleParseStoredPlan parses a plan held in object storage.
// @Summary Parse Stored Floor Plan
// @Description Downloads a plan from the configured bucket and counts chairs per room.
// @Tags floorplans
// @Produce json
// @Param key path string true "Object key (e.g. 'plans/office.txt')"
// @Param chair_types query string false "Comma-separated chair characters"
// @Param separators query string false "Comma-separated wall characters"
// @Success 200 {object} models.Report "Chair counts"
// @Failure 404 {object} models.ErrorResponse "Plan not found"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /floorplans/{key} [get]
func (h *Handler) HandleParseStoredPlan(c *fiber.Ctx) error {
	key := c.Params("*")
	l := logger.WithRayID(h.service.logger, c).With(zap.String("key", key))

	legend, err := h.legendFor(c)
	if err != nil {
		return h.fail(c, l, err)
	}

	report, err := h.service.AnalyzeObject(c.Context(), key, legend)
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(report)
}

// HandleListPlans lists the plans stored under a prefix.
// @Summary List Floor Plans
// @Description Lists plan keys in the configured bucket.
// @Tags floorplans
// @Produce json
// @Param prefix query string false "Key prefix (defaults to the configured prefix)"
// @Success 200 {object} models.PlanList "Plan keys"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /floorplans [get]
func (h *Handler) HandleListPlans(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	prefix := c.Query("prefix", h.service.Prefix())

	keys, err := h.service.ListPlans(c.Context(), prefix)
	if err != nil {
		return h.fail(c, l, err)
	}
	if keys == nil {
		keys = []string{}
	}
	return c.JSON(models.PlanList{Bucket: h.service.Bucket(), Prefix: prefix, Keys: keys})
}

// legendFor applies the chair_types and separators query overrides to the configured legend.
func (h *Handler) legendFor(c *fiber.Ctx) (floorplan.Legend, error) {
	chairs, separators := c.Query("chair_types"), c.Query("separators")
	if chairs == "" && separators == "" {
		return h.service.Legend(), nil
	}
	if chairs == "" {
		chairs = utils.JoinRunes(h.service.Legend().Chairs(), ",")
	}
	if separators == "" {
		separators = utils.JoinRunes(h.service.Legend().Separators(), ",")
	}
	return floorplan.ParseLegend(chairs, separators)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	return h.failWith(c, l, statusFor(err), err)
}

func (h *Handler) failWith(c *fiber.Ctx, l *zap.Logger, status int, err error) error {
	if status >= fiber.StatusInternalServerError {
		l.Error("Floor plan request failed", zap.Error(err))
	} else {
		l.Warn("Floor plan request rejected", zap.Int("status", status), zap.Error(err))
	}
	return c.Status(status).JSON(models.ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, floorplan.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, floorplan.ErrInvalidConfiguration):
		return fiber.StatusBadRequest
	case errors.Is(err, floorplan.ErrEmptyPlan):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ErrStorageDisabled):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
