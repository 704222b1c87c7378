package handler

import (
	"studybyte/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups everything mounted under /api
type Handlers struct {
	Quiz       *QuizHandler
	Analysis   *AnalysisHandler
	Material   *MaterialHandler
	Status     *StatusHandler
	Validation *middleware.ValidationMiddleware
}

// RegisterRoutes mounts the API on router
func RegisterRoutes(router fiber.Router, h Handlers) {
	apiGroup := router.Group("/api")

	apiGroup.Get("/status", h.Status.GetStatus)

	apiGroup.Post("/quiz/generate", h.Quiz.GenerateQuiz)

	apiGroup.Post("/analysis", h.Analysis.Analyze)
	apiGroup.Post("/analysis/:section", h.Validation.ValidateSection(), h.Analysis.AnalyzeSection)

	materialGroup := apiGroup.Group("/materials")
	materialGroup.Get("/", h.Material.SearchMaterials)
	materialGroup.Post("/", h.Material.CreateMaterial)
	materialGroup.Post("/upload", h.Material.UploadMaterial)
	materialGroup.Get("/:id", h.Validation.ValidateMaterialID(), h.Material.GetMaterial)
}
