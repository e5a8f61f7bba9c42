package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"najdimajstra/internal/bank"
	"najdimajstra/internal/model"
)

// Dispatcher routes turns to the classifier of the conversation's category.
// It keeps no state between calls.
type Dispatcher struct {
	classifiers   map[model.Category]*Classifier
	bank          *bank.Bank
	thinkingDelay time.Duration
	logger        *zap.Logger
}

// DispatcherOptions configures NewDispatcher
type DispatcherOptions struct {
	Lookup         CandidateLookup
	LookupTimeout  time.Duration
	CandidateLimit int
	// ThinkingDelay pauses before answering so replies do not appear instantly
	ThinkingDelay time.Duration
	Logger        *zap.Logger
}

// NewDispatcher wires the extractor, bank, bounded lookup and the three
// classifiers together
func NewDispatcher(b *bank.Bank, opts DispatcherOptions) *Dispatcher {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var lookup CandidateLookup
	if opts.Lookup != nil {
		lookup = NewBoundedLookup(opts.Lookup, opts.LookupTimeout)
	}

	assembler := NewAssembler(NewExtractor(), b, lookup, opts.CandidateLimit, logger)

	d := &Dispatcher{
		classifiers:   make(map[model.Category]*Classifier, 3),
		bank:          b,
		thinkingDelay: opts.ThinkingDelay,
		logger:        logger,
	}
	for _, c := range []*Classifier{
		NewUrgentClassifier(b, assembler),
		NewRegularClassifier(b, assembler),
		NewRealizationClassifier(b, assembler),
	} {
		d.classifiers[c.Category()] = c
	}
	return d
}

// Greeting returns the opening message of a category dialog. Unknown
// categories get the generic greeting.
func (d *Dispatcher) Greeting(category model.Category, language model.Language) string {
	if c, ok := d.classifiers[category]; ok {
		if text := c.InitialMessage(language); text != "" {
			return text
		}
	}
	return d.bank.Text(language, bank.NoCategory, bank.KindGenericGreeting)
}

// ProcessTurn answers one user turn. It never fails: an unknown category or
// a cancelled context yields the generic apology without candidates.
func (d *Dispatcher) ProcessTurn(ctx context.Context, text string, category model.Category, history []model.Turn, language model.Language) model.AIResponse {
	c, ok := d.classifiers[category]
	if !ok {
		d.logger.Info("turn for unknown category", zap.String("category", string(category)))
		return d.apology(language)
	}

	if !d.think(ctx) {
		return d.apology(language)
	}

	return c.ProcessMessage(ctx, text, history, language)
}

func (d *Dispatcher) apology(language model.Language) model.AIResponse {
	return model.AIResponse{
		Text: d.bank.Text(language, bank.NoCategory, bank.KindGenericApology),
	}
}

// think waits out the configured delay; false means ctx ended first
func (d *Dispatcher) think(ctx context.Context) bool {
	if d.thinkingDelay <= 0 {
		return true
	}
	timer := time.NewTimer(d.thinkingDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
