package controller

import (
	"clinical-notes-be/internal/dto"
	"clinical-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IGenerationController interface {
	RegisterRoutes(r fiber.Router)
	GenerateAssessment(ctx *fiber.Ctx) error
	GeneratePlan(ctx *fiber.Ctx) error
	GenerateSummary(ctx *fiber.Ctx) error
}

// generationController reads the current note right before each call, and
// never writes the generated text back.
type generationController struct {
	noteService       service.INoteService
	generationService service.IGenerationService
}

func NewGenerationController(noteService service.INoteService, generationService service.IGenerationService) IGenerationController {
	return &generationController{
		noteService:       noteService,
		generationService: generationService,
	}
}

func (c *generationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/api")
	h.Get("/generate_assessment/:note_id", c.GenerateAssessment)
	h.Get("/generate_plan/:note_id", c.GeneratePlan)
	h.Get("/generate_summary/:note_id", c.GenerateSummary)
}

func (c *generationController) loadNote(ctx *fiber.Ctx) (*dto.NoteResponse, error) {
	id, err := noteIDParam(ctx)
	if err != nil {
		return nil, err
	}
	return c.noteService.Show(ctx.UserContext(), id)
}

func (c *generationController) GenerateAssessment(ctx *fiber.Ctx) error {
	note, err := c.loadNote(ctx)
	if err != nil {
		return err
	}

	text, err := c.generationService.GenerateAssessment(ctx.UserContext(), note.SubjectiveText, note.ObjectiveText)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.GenerateAssessmentResponse{AssessmentText: text})
}

func (c *generationController) GeneratePlan(ctx *fiber.Ctx) error {
	note, err := c.loadNote(ctx)
	if err != nil {
		return err
	}

	text, err := c.generationService.GeneratePlan(ctx.UserContext(), note.SubjectiveText, note.ObjectiveText, note.AssessmentText)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.GeneratePlanResponse{PlanText: text})
}

func (c *generationController) GenerateSummary(ctx *fiber.Ctx) error {
	note, err := c.loadNote(ctx)
	if err != nil {
		return err
	}

	text, err := c.generationService.GenerateSummary(ctx.UserContext(), note.SubjectiveText, note.ObjectiveText, note.AssessmentText, note.PlanText)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.GenerateSummaryResponse{SummaryText: text})
}
