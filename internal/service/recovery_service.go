package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"aeron/internal/cache"
	"aeron/internal/model"
	"aeron/internal/repository"
)

// ErrDisruptionNotFound is returned when the referenced disruption does not
// exist. Terminal: the caller reports it, nothing is retried.
var ErrDisruptionNotFound = errors.New("disruption not found")

// Event types published on the ops hub.
const (
	EventRecoveryGenerated = "recovery_generated"
	EventRecoveryFailed    = "recovery_failed"
	EventProviderSwitched  = "provider_switched"
)

// PersistenceSummary distinguishes generated counts from persisted counts.
// Individual save failures never roll back the rest of the batch.
type PersistenceSummary struct {
	OptionsGenerated int `json:"optionsGenerated"`
	OptionsSaved     int `json:"optionsSaved"`
	StepsGenerated   int `json:"stepsGenerated"`
	StepsSaved       int `json:"stepsSaved"`
}

// GenerationOutcome is what the transport layer renders for one generation
// request.
type GenerationOutcome struct {
	Flight      *model.FlightDisruption  `json:"flight"`
	Options     []model.RecoveryOption   `json:"options"`
	Steps       []model.RecoveryStep     `json:"steps"`
	Metadata    model.GenerationMetadata `json:"metadata"`
	Generator   string                   `json:"generator"`
	FromCache   bool                     `json:"fromCache"`
	Persistence PersistenceSummary       `json:"persistence"`
	Error       string                   `json:"error,omitempty"`
}

// RecoveryService orchestrates recovery-option generation: it loads the
// disruption, dispatches to the requested generator, persists the drafts and
// publishes ops events.
type RecoveryService struct {
	disruptions repository.DisruptionRepo
	categories  repository.CategoryRepo
	recovery    repository.RecoveryRepo
	cache       cache.RecoveryCache
	generator   *GeneratorService
	ai          *AIService
	broadcaster Broadcaster
}

func NewRecoveryService(
	disruptions repository.DisruptionRepo,
	categories repository.CategoryRepo,
	recovery repository.RecoveryRepo,
	recoveryCache cache.RecoveryCache,
	generator *GeneratorService,
	ai *AIService,
) *RecoveryService {
	return &RecoveryService{
		disruptions: disruptions,
		categories:  categories,
		recovery:    recovery,
		cache:       recoveryCache,
		generator:   generator,
		ai:          ai,
	}
}

// SetBroadcaster injects the ops hub after construction.
func (s *RecoveryService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// GenerateAndPersist runs one generation request. Unknown generator kinds
// fall back to the template generator. Unless forceRegenerate is set,
// previously generated options are returned instead of regenerating. The AI
// generator produces one option per completion, so count repeats the call;
// the template generator ignores it.
func (s *RecoveryService) GenerateAndPersist(ctx context.Context, identifier, generatorKind string, forceRegenerate bool, count int) (*GenerationOutcome, error) {
	disruption, err := s.disruptions.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("loading disruption %s: %w", identifier, err)
	}
	if disruption == nil {
		return nil, ErrDisruptionNotFound
	}

	kind := generatorKind
	if kind != "ai" {
		kind = "standard"
	}

	if !forceRegenerate {
		if outcome := s.existingOutcome(ctx, disruption, kind); outcome != nil {
			return outcome, nil
		}
	} else {
		if err := s.recovery.DeleteByDisruption(ctx, disruption.ID); err != nil {
			log.Printf("recovery clear failed disruption=%s err=%v", disruption.ID, err)
		}
		if err := s.cache.Invalidate(ctx, disruption.ID); err != nil {
			log.Printf("recovery cache invalidate failed disruption=%s err=%v", disruption.ID, err)
		}
	}

	category := s.loadCategory(ctx, disruption)

	if count < 1 {
		count = 1
	}

	var result *model.GenerationResult
	if kind == "ai" {
		result = s.ai.Generate(ctx, disruption, category)
		// The step plan is per disruption, so later calls only contribute
		// options.
		for i := 1; i < count && result.Error == ""; i++ {
			next := s.ai.Generate(ctx, disruption, category)
			if next.Error != "" {
				break
			}
			result.Options = append(result.Options, next.Options...)
			result.Metadata.TokensUsed += next.Metadata.TokensUsed
		}
	} else {
		result = s.generator.Generate(disruption, category)
	}

	outcome := &GenerationOutcome{
		Flight:    disruption,
		Options:   result.Options,
		Steps:     result.Steps,
		Metadata:  result.Metadata,
		Generator: kind,
		Error:     result.Error,
	}
	outcome.Persistence.OptionsGenerated = len(result.Options)
	outcome.Persistence.StepsGenerated = len(result.Steps)

	if result.Error != "" {
		s.publish(disruption.ID, EventRecoveryFailed, map[string]string{
			"disruptionId": disruption.ID,
			"flightNumber": disruption.FlightNumber,
			"error":        result.Error,
		})
		return outcome, nil
	}

	s.persist(ctx, disruption, result, outcome)
	return outcome, nil
}

// GetRecoveryOptions returns the persisted options and steps for a disruption.
func (s *RecoveryService) GetRecoveryOptions(ctx context.Context, identifier string) (*GenerationOutcome, error) {
	disruption, err := s.disruptions.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("loading disruption %s: %w", identifier, err)
	}
	if disruption == nil {
		return nil, ErrDisruptionNotFound
	}

	options, err := s.recovery.OptionsByDisruption(ctx, disruption.ID)
	if err != nil {
		return nil, err
	}
	steps, err := s.recovery.StepsByDisruption(ctx, disruption.ID)
	if err != nil {
		return nil, err
	}

	return &GenerationOutcome{
		Flight:  disruption,
		Options: options,
		Steps:   steps,
	}, nil
}

// existingOutcome serves repeat requests from the cache or the store.
func (s *RecoveryService) existingOutcome(ctx context.Context, disruption *model.FlightDisruption, kind string) *GenerationOutcome {
	cached, err := s.cache.Get(ctx, disruption.ID)
	if err != nil {
		log.Printf("recovery cache read failed disruption=%s err=%v", disruption.ID, err)
	}
	if cached != nil {
		return &GenerationOutcome{
			Flight:    disruption,
			Options:   cached.Options,
			Steps:     cached.Steps,
			Metadata:  cached.Metadata,
			Generator: kind,
			FromCache: true,
		}
	}

	count, err := s.recovery.CountOptions(ctx, disruption.ID)
	if err != nil || count == 0 {
		return nil
	}

	options, err := s.recovery.OptionsByDisruption(ctx, disruption.ID)
	if err != nil {
		return nil
	}
	steps, err := s.recovery.StepsByDisruption(ctx, disruption.ID)
	if err != nil {
		return nil
	}

	return &GenerationOutcome{
		Flight:    disruption,
		Options:   options,
		Steps:     steps,
		Generator: kind,
		FromCache: true,
	}
}

func (s *RecoveryService) loadCategory(ctx context.Context, disruption *model.FlightDisruption) *model.DisruptionCategory {
	if disruption.CategoryCode == "" {
		return nil
	}
	category, err := s.categories.GetByCode(ctx, disruption.CategoryCode)
	if err != nil {
		log.Printf("category lookup failed code=%s err=%v", disruption.CategoryCode, err)
		return nil
	}
	return category
}

// persist saves drafts best-effort: an individual failure is counted and
// logged, never aborts the batch.
func (s *RecoveryService) persist(ctx context.Context, disruption *model.FlightDisruption, result *model.GenerationResult, outcome *GenerationOutcome) {
	for i := range result.Steps {
		if err := s.recovery.InsertStep(ctx, &result.Steps[i]); err != nil {
			log.Printf("recovery step save failed disruption=%s step=%d err=%v", disruption.ID, result.Steps[i].StepNumber, err)
			continue
		}
		outcome.Persistence.StepsSaved++
	}

	for i := range result.Options {
		if err := s.recovery.InsertOption(ctx, &result.Options[i]); err != nil {
			log.Printf("recovery option save failed disruption=%s title=%q err=%v", disruption.ID, result.Options[i].Title, err)
			continue
		}
		outcome.Persistence.OptionsSaved++
	}

	if outcome.Persistence.OptionsSaved > 0 {
		if err := s.disruptions.UpdateRecoveryStatus(ctx, disruption.ID, "Options Available"); err != nil {
			log.Printf("recovery status update failed disruption=%s err=%v", disruption.ID, err)
		}
	}

	if err := s.cache.Set(ctx, disruption.ID, &cache.CachedGeneration{
		Options:  result.Options,
		Steps:    result.Steps,
		Metadata: result.Metadata,
	}); err != nil {
		log.Printf("recovery cache write failed disruption=%s err=%v", disruption.ID, err)
	}

	s.publish(disruption.ID, EventRecoveryGenerated, map[string]any{
		"disruptionId": disruption.ID,
		"flightNumber": disruption.FlightNumber,
		"generator":    outcome.Generator,
		"optionsSaved": outcome.Persistence.OptionsSaved,
		"stepsSaved":   outcome.Persistence.StepsSaved,
	})
}

func (s *RecoveryService) publish(disruptionID, msgType string, payload interface{}) {
	if s.broadcaster == nil {
		return
	}
	s.broadcaster.BroadcastToWatchers(disruptionID, msgType, payload)
	s.broadcaster.BroadcastToAll(msgType, payload)
}
