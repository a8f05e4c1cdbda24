package webhook

import (
	"encoding/json"

	"unbound-webhook/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"sigs.k8s.io/external-dns/endpoint"
	"sigs.k8s.io/external-dns/plan"
)

// Handler handles the external-dns webhook requests.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the webhook routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleNegotiate)
	app.Get("/healthz", h.HandleHealth)
	app.Get("/records", h.HandleGetRecords)
	app.Post("/records", h.HandleApplyChanges)
	app.Post("/adjustendpoints", h.HandleAdjustEndpoints)
}

// HandleNegotiate returns the domain filters of this provider.
// @Summary Negotiate
// @Description Returns the configured domain filters.
// @Tags webhook
// @Produce json
// @Success 200 {object} NegotiateResponse "Domain filters"
// @Router / [get]
func (h *Handler) HandleNegotiate(c *fiber.Ctx) error {
	return c.JSON(h.service.Negotiate(), MediaType)
}

// HandleHealth reports liveness.
// @Summary Health
// @Tags webhook
// @Success 200
// @Router /healthz [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}

// HandleGetRecords lists the enabled in-scope records.
// @Summary List records
// @Description Lists the backend, refreshes the record cache and returns enabled records.
// @Tags webhook
// @Produce json
// @Success 200 {array} endpoint.Endpoint "Records"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /records [get]
func (h *Handler) HandleGetRecords(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	records, err := h.service.Records(c.Context())
	if err != nil {
		l.Error("Failed to list records", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(records, MediaType)
}

// HandleApplyChanges applies a change-set.
// @Summary Apply changes
// @Description Creates, updates and deletes host overrides. Partial application is possible on failure.
// @Tags webhook
// @Accept json
// @Param changes body plan.Changes true "Change-set"
// @Success 204
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /records [post]
func (h *Handler) HandleApplyChanges(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var changes plan.Changes
	if err := json.Unmarshal(c.Body(), &changes); err != nil {
		l.Warn("Invalid change-set body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	l.Info("Applying changes",
		zap.Int("create", len(changes.Create)),
		zap.Int("update", len(changes.UpdateNew)),
		zap.Int("delete", len(changes.Delete)),
	)

	if err := h.service.ApplyChanges(c.Context(), &changes); err != nil {
		l.Error("Failed to apply changes", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleAdjustEndpoints normalizes a desired-state list.
// @Summary Adjust endpoints
// @Description Keeps A and AAAA records with a single target and no TTL.
// @Tags webhook
// @Accept json
// @Produce json
// @Param endpoints body []endpoint.Endpoint true "Endpoints"
// @Success 200 {array} endpoint.Endpoint "Adjusted endpoints"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /adjustendpoints [post]
func (h *Handler) HandleAdjustEndpoints(c *fiber.Ctx) error {
	var endpoints []*endpoint.Endpoint
	if err := json.Unmarshal(c.Body(), &endpoints); err != nil {
		logger.WithRayID(h.service.logger, c).Warn("Invalid endpoints body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(h.service.AdjustEndpoints(endpoints), MediaType)
}
