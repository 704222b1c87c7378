package handler

import (
	"studybyte/internal/domain"
	"studybyte/internal/dto"
	"studybyte/internal/middleware"
	"studybyte/internal/service"
	"studybyte/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AnalysisHandler serves document analysis
type AnalysisHandler struct {
	service   service.AnalysisService
	validator *validation.Validator
}

func NewAnalysisHandler(service service.AnalysisService, validator *validation.Validator) *AnalysisHandler {
	return &AnalysisHandler{
		service:   service,
		validator: validator,
	}
}

// Analyze godoc
// @Summary Analyze a document
// @Description Returns a structured analysis. The external model is used when configured, the templates otherwise.
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeRequest true "Document"
// @Success 200 {object} dto.AnalysisResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /analysis [post]
func (h *AnalysisHandler) Analyze(c *fiber.Ctx) error {
	req, err := h.parse(c)
	if err != nil {
		return err
	}

	result := h.service.Analyze(c.UserContext(), req.Filename, req.Content)
	return c.JSON(dto.AnalysisResponse{
		Success:     true,
		Analysis:    result.Analysis,
		GeneratedBy: result.GeneratedBy,
	})
}

// AnalyzeSection godoc
// @Summary Analyze one section of a document
// @Description Returns topics, concepts, objectives or recommendations for a document
// @Tags analysis
// @Accept json
// @Produce json
// @Param section path string true "Section" Enums(topics, concepts, objectives, recommendations)
// @Param request body dto.AnalyzeRequest true "Document"
// @Success 200 {object} dto.SectionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /analysis/{section} [post]
func (h *AnalysisHandler) AnalyzeSection(c *fiber.Ctx) error {
	section, ok := c.Locals(middleware.LocalSection).(domain.Section)
	if !ok {
		var errs domain.ValidationErrors
		section, errs = h.validator.ValidateSection(c.Params("section"))
		if len(errs) > 0 {
			return errs
		}
	}

	req, err := h.parse(c)
	if err != nil {
		return err
	}

	result := h.service.AnalyzeSection(c.UserContext(), section, req.Filename, req.Content)
	return c.JSON(dto.SectionResponse{
		Success:     true,
		Section:     string(result.Section),
		Items:       result.Items,
		GeneratedBy: result.GeneratedBy,
	})
}

func (h *AnalysisHandler) parse(c *fiber.Ctx) (*dto.AnalyzeRequest, error) {
	var req dto.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateAnalyzeRequest(&req); len(errs) > 0 {
		return nil, errs
	}
	return &req, nil
}
