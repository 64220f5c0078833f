package controller

import (
	"fmt"

	"clinical-notes-be/internal/dto"
	"clinical-notes-be/internal/entity"
	"clinical-notes-be/internal/pkg/serverutils"
	"clinical-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	UpdateSubjective(ctx *fiber.Ctx) error
	UpdateObjective(ctx *fiber.Ctx) error
	UpdateAssessment(ctx *fiber.Ctx) error
	UpdatePlan(ctx *fiber.Ctx) error
	UpdateSummary(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	r.Post("/create_note_session", c.CreateSession)
	r.Get("/get_note_data/:note_id", c.Show)

	r.Post("/update_note_subjective", c.UpdateSubjective)
	r.Post("/update_note_objective", c.UpdateObjective)
	r.Post("/update_note_assessment", c.UpdateAssessment)
	r.Post("/update_note_plan", c.UpdatePlan)
	r.Post("/update_note_summary", c.UpdateSummary)
	r.Post("/update_note", c.Update)
}

func (c *noteController) CreateSession(ctx *fiber.Ctx) error {
	res, err := c.noteService.CreateSession(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	id, err := noteIDParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.noteService.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *noteController) UpdateSubjective(ctx *fiber.Ctx) error {
	var req dto.UpdateSubjectiveRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	return c.updateField(ctx, req.NoteId, entity.NoteFieldSubjective, *req.SubjectiveText, "Subjective")
}

func (c *noteController) UpdateObjective(ctx *fiber.Ctx) error {
	var req dto.UpdateObjectiveRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	return c.updateField(ctx, req.NoteId, entity.NoteFieldObjective, *req.ObjectiveText, "Objective")
}

func (c *noteController) UpdateAssessment(ctx *fiber.Ctx) error {
	var req dto.UpdateAssessmentRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	return c.updateField(ctx, req.NoteId, entity.NoteFieldAssessment, *req.AssessmentText, "Assessment")
}

func (c *noteController) UpdatePlan(ctx *fiber.Ctx) error {
	var req dto.UpdatePlanRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	return c.updateField(ctx, req.NoteId, entity.NoteFieldPlan, *req.PlanText, "Plan")
}

func (c *noteController) UpdateSummary(ctx *fiber.Ctx) error {
	var req dto.UpdateSummaryRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	return c.updateField(ctx, req.NoteId, entity.NoteFieldSummary, *req.SummaryText, "Summary")
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateNoteRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	values := map[entity.NoteField]string{}
	set := func(field entity.NoteField, v *string) {
		if v != nil {
			values[field] = *v
		}
	}
	set(entity.NoteFieldSubjective, req.SubjectiveText)
	set(entity.NoteFieldObjective, req.ObjectiveText)
	set(entity.NoteFieldAssessment, req.AssessmentText)
	set(entity.NoteFieldPlan, req.PlanText)
	set(entity.NoteFieldSummary, req.SummaryText)

	if err := c.noteService.UpdateFields(ctx.UserContext(), req.NoteId, values); err != nil {
		return err
	}

	return ctx.JSON(dto.MessageResponse{
		Message: fmt.Sprintf("Note ID %d updated successfully.", req.NoteId),
	})
}

func (c *noteController) updateField(ctx *fiber.Ctx, id int64, field entity.NoteField, value, label string) error {
	if err := c.noteService.UpdateField(ctx.UserContext(), id, field, value); err != nil {
		return err
	}

	return ctx.JSON(dto.MessageResponse{
		Message: fmt.Sprintf("%s text for Note ID %d updated successfully.", label, id),
	})
}

func noteIDParam(ctx *fiber.Ctx) (int64, error) {
	id, err := ctx.ParamsInt("note_id")
	if err != nil {
		return 0, fmt.Errorf("%w: note_id must be an integer", service.ErrInvalidInput)
	}
	return int64(id), nil
}
