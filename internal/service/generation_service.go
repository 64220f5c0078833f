package service

import (
	"context"
	"errors"
	"strings"

	"clinical-notes-be/internal/pkg/logger"
	"clinical-notes-be/pkg/events"
	"clinical-notes-be/pkg/llm"
	"clinical-notes-be/pkg/soap"
)

const (
	SectionAssessment = "assessment"
	SectionPlan       = "plan"
	SectionSummary    = "summary"
)

// IGenerationService drafts the derived sections of a note. Callers pass the
// current stored values; nothing is read or written here.
type IGenerationService interface {
	GenerateAssessment(ctx context.Context, subjective, objective string) (string, error)
	GeneratePlan(ctx context.Context, subjective, objective, assessment string) (string, error)
	GenerateSummary(ctx context.Context, subjective, objective, assessment, plan string) (string, error)
}

type generationService struct {
	provider  llm.LLMProvider
	publisher events.Publisher
	logger    logger.ILogger
}

// NewGenerationService accepts a nil provider. Every call then fails with
// ErrBackendUnavailable once its inputs are present.
func NewGenerationService(provider llm.LLMProvider, publisher events.Publisher, logger logger.ILogger) IGenerationService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &generationService{
		provider:  provider,
		publisher: publisher,
		logger:    logger,
	}
}

type namedInput struct {
	name  string
	value string
}

func missingInputs(section string, inputs ...namedInput) error {
	var missing []string
	for _, in := range inputs {
		if strings.TrimSpace(in.value) == "" {
			missing = append(missing, in.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &MissingInputError{Section: section, Fields: missing}
}

func (s *generationService) GenerateAssessment(ctx context.Context, subjective, objective string) (string, error) {
	if err := missingInputs(SectionAssessment,
		namedInput{"Subjective", subjective},
		namedInput{"Objective", objective},
	); err != nil {
		return "", err
	}

	text, err := s.generate(ctx, SectionAssessment, soap.AssessmentPrompt(subjective, objective))
	if err != nil {
		return "", err
	}
	if !soap.LooksLikeAssessment(text) {
		s.logger.Warn("GENERATE", "Response did not contain a valid assessment structure", map[string]interface{}{"preview": preview(text)})
		return "", &GenerationError{Section: SectionAssessment, Err: ErrMalformedResponse}
	}

	s.published(ctx, SectionAssessment, text)
	return text, nil
}

func (s *generationService) GeneratePlan(ctx context.Context, subjective, objective, assessment string) (string, error) {
	if err := missingInputs(SectionPlan,
		namedInput{"Subjective", subjective},
		namedInput{"Objective", objective},
		namedInput{"Assessment", assessment},
	); err != nil {
		return "", err
	}

	text, err := s.generate(ctx, SectionPlan, soap.PlanPrompt(subjective, objective, assessment))
	if err != nil {
		return "", err
	}
	if !soap.LooksLikePlan(text) {
		s.logger.Warn("GENERATE", "Response might not be a valid plan", map[string]interface{}{"preview": preview(text)})
	}

	s.published(ctx, SectionPlan, text)
	return text, nil
}

func (s *generationService) GenerateSummary(ctx context.Context, subjective, objective, assessment, plan string) (string, error) {
	if err := missingInputs(SectionSummary,
		namedInput{"Subjective", subjective},
		namedInput{"Objective", objective},
		namedInput{"Assessment", assessment},
		namedInput{"Plan", plan},
	); err != nil {
		return "", err
	}

	text, err := s.generate(ctx, SectionSummary, soap.SummaryPrompt(subjective, objective, assessment, plan))
	if err != nil {
		return "", err
	}

	s.published(ctx, SectionSummary, text)
	return text, nil
}

// generate makes exactly one backend call.
func (s *generationService) generate(ctx context.Context, section, prompt string) (string, error) {
	if s.provider == nil {
		return "", ErrBackendUnavailable
	}

	s.logger.Info("GENERATE", "Sending prompt", map[string]interface{}{"section": section, "prompt_chars": len(prompt)})

	text, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("GENERATE", "Backend call failed", map[string]interface{}{"section": section, "error": err.Error()})
		if errors.Is(err, llm.ErrEmptyResponse) {
			return "", ErrEmptyResponse
		}
		return "", &GenerationError{Section: section, Err: err}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func (s *generationService) published(ctx context.Context, section, text string) {
	err := s.publisher.Publish(ctx, events.New(events.NoteSectionGenerated, map[string]interface{}{
		"section": section,
		"chars":   len(text),
	}))
	if err != nil {
		s.logger.Warn("EVENTS", "Failed to publish event", map[string]interface{}{"type": events.NoteSectionGenerated, "error": err.Error()})
	}
}

func preview(text string) string {
	if len(text) > 200 {
		return text[:200] + "..."
	}
	return text
}
