package handler

import (
	"io"

	"studybyte/internal/domain"
	"studybyte/internal/dto"
	"studybyte/internal/middleware"
	"studybyte/internal/service"
	"studybyte/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MaterialHandler handles material uploads and lookups
type MaterialHandler struct {
	service   service.MaterialService
	validator *validation.Validator
	maxBytes  int
	logger    *zap.Logger
}

func NewMaterialHandler(service service.MaterialService, validator *validation.Validator, maxBytes int, logger *zap.Logger) *MaterialHandler {
	return &MaterialHandler{
		service:   service,
		validator: validator,
		maxBytes:  maxBytes,
		logger:    logger,
	}
}

// CreateMaterial godoc
// @Summary Upload material as JSON
// @Description Analyzes inline document content and stores it when a database is configured
// @Tags materials
// @Accept json
// @Produce json
// @Param request body dto.UploadMaterialRequest true "Material"
// @Success 200 {object} dto.UploadMaterialResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 413 {object} middleware.ErrorResponse
// @Router /materials [post]
func (h *MaterialHandler) CreateMaterial(c *fiber.Ctx) error {
	var req dto.UploadMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateUploadRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.Upload(c.UserContext(), service.UploadInput{
		Filename: req.Filename,
		Content:  req.Content,
		UserID:   req.UserID,
	})
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UploadMaterial godoc
// @Summary Upload a material file
// @Description Accepts a PDF or text file as multipart form data
// @Tags materials
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document"
// @Param user_id formData string false "Owner"
// @Success 200 {object} dto.UploadMaterialResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 413 {object} middleware.ErrorResponse
// @Router /materials/upload [post]
func (h *MaterialHandler) UploadMaterial(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domain.NewInvalidInputError("No file uploaded")
	}
	if fileHeader.Size > int64(h.maxBytes) {
		return domain.NewContentTooLargeError(int(fileHeader.Size), h.maxBytes)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return domain.NewInternalError("Failed to open uploaded file", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return domain.NewInternalError("Failed to read uploaded file", err)
	}

	h.logger.Debug("Material file received",
		zap.String("filename", fileHeader.Filename),
		zap.Int64("size", fileHeader.Size),
		zap.String("request_id", middleware.RequestID(c)))

	resp, err := h.service.Upload(c.UserContext(), service.UploadInput{
		Filename: fileHeader.Filename,
		Data:     data,
		UserID:   c.FormValue("user_id"),
	})
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetMaterial godoc
// @Summary Get a stored material
// @Tags materials
// @Produce json
// @Param id path string true "Material ID (ULID)"
// @Success 200 {object} dto.MaterialResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /materials/{id} [get]
func (h *MaterialHandler) GetMaterial(c *fiber.Ctx) error {
	id, ok := c.Locals(middleware.LocalMaterialID).(string)
	if !ok {
		id = c.Params("id")
		if errs := h.validator.ValidateMaterialID(id); len(errs) > 0 {
			return errs
		}
	}

	material, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToMaterialResponse(material))
}

// SearchMaterials godoc
// @Summary Search stored materials
// @Description Lists stored materials newest first, filtered by owner, text, subject and difficulty
// @Tags materials
// @Produce json
// @Param user_id query string false "Owner"
// @Param search query string false "Case-insensitive substring of the filename or content"
// @Param subject query string false "Analysis subject category"
// @Param difficulty query string false "Analysis difficulty level" Enums(beginner, intermediate, advanced)
// @Param limit query int false "Page size (1-100, default 20)"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} dto.SearchMaterialsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /materials [get]
func (h *MaterialHandler) SearchMaterials(c *fiber.Ctx) error {
	var req dto.SearchMaterialsRequest
	if err := c.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}
	filter, errs := h.validator.ValidateSearchRequest(&req)
	if len(errs) > 0 {
		return errs
	}

	resp, err := h.service.Search(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
