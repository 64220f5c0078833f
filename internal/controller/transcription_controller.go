package controller

import (
	"fmt"

	"clinical-notes-be/internal/dto"
	"clinical-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITranscriptionController interface {
	RegisterRoutes(r fiber.Router)
	Transcribe(ctx *fiber.Ctx) error
}

type transcriptionController struct {
	transcriptionService service.ITranscriptionService
}

func NewTranscriptionController(transcriptionService service.ITranscriptionService) ITranscriptionController {
	return &transcriptionController{
		transcriptionService: transcriptionService,
	}
}

func (c *transcriptionController) RegisterRoutes(r fiber.Router) {
	r.Post("/transcribe", c.Transcribe)
}

func (c *transcriptionController) Transcribe(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fmt.Errorf("%w: no file provided", service.ErrInvalidInput)
	}
	if fileHeader.Filename == "" {
		return fmt.Errorf("%w: empty filename", service.ErrInvalidInput)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("open uploaded file: %w", err)
	}
	defer file.Close()

	text, err := c.transcriptionService.Transcribe(
		ctx.UserContext(),
		file,
		fileHeader.Size,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.TranscriptionResponse{Text: text})
}
