package bootstrap

import (
	"clinical-notes-be/internal/config"
	"clinical-notes-be/internal/controller"
	"clinical-notes-be/internal/pkg/logger"
	"clinical-notes-be/internal/repository/unitofwork"
	"clinical-notes-be/internal/service"
	"clinical-notes-be/pkg/events"
	"clinical-notes-be/pkg/speech"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	NoteController          controller.INoteController
	TranscriptionController controller.ITranscriptionController
	GenerationController    controller.IGenerationController

	// Background Services (Exposed for main.go to run)
	EventRelay *service.EventRelay
	Bus        *events.Bus
	Logger     logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config, gw *Gateways, sysLogger logger.ILogger) *Container {
	uowFactory := unitofwork.NewRepositoryFactory(db)

	bus := events.NewBus(cfg.Events.Topic)
	eventRelay := service.NewEventRelay(bus, gw.Forward, sysLogger)

	noteService := service.NewNoteService(uowFactory, bus, sysLogger)
	transcriptionService := service.NewTranscriptionService(gw.Store, gw.Recognizer, bus, sysLogger, service.TranscriptionOptions{
		ObjectPrefix: cfg.Storage.ObjectPrefix,
		Speech: speech.Config{
			LanguageCode:               cfg.Speech.LanguageCode,
			Model:                      cfg.Speech.Model,
			EnableAutomaticPunctuation: true,
			AudioChannelCount:          cfg.Speech.AudioChannels,
		},
		Timeout: cfg.Speech.Timeout,
	})
	generationService := service.NewGenerationService(gw.LLM, bus, sysLogger)

	return &Container{
		NoteController:          controller.NewNoteController(noteService),
		TranscriptionController: controller.NewTranscriptionController(transcriptionService),
		GenerationController:    controller.NewGenerationController(noteService, generationService),

		EventRelay: eventRelay,
		Bus:        bus,
		Logger:     sysLogger,
	}
}
