package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"najdimajstra/internal/bank"
	"najdimajstra/internal/model"
)

// blockSeparator separates the parts of an assembled reply
const blockSeparator = "\n\n"

// Policy is what distinguishes one category classifier from another
type Policy struct {
	Category model.Category
	// SafetyFirst puts hazard instructions ahead of everything else
	SafetyFirst bool
	// Domains lists the domains this category has guidance for
	Domains []model.Domain
}

func (p Policy) guides(d model.Domain) bool {
	for _, domain := range p.Domains {
		if domain == d {
			return true
		}
	}
	return false
}

var allDomains = []model.Domain{
	model.DomainElectrical,
	model.DomainWater,
	model.DomainGasHeating,
	model.DomainClimate,
}

// UrgentPolicy handles emergencies
func UrgentPolicy() Policy {
	return Policy{Category: model.CategoryUrgent, SafetyFirst: true, Domains: allDomains}
}

// RegularPolicy handles routine repairs and maintenance
func RegularPolicy() Policy {
	return Policy{Category: model.CategoryRegular, Domains: allDomains}
}

// RealizationPolicy handles construction and renovation projects
func RealizationPolicy() Policy {
	return Policy{Category: model.CategoryRealization, Domains: allDomains}
}

// Assembler builds classifier replies. It is shared by all categories and
// holds no per-conversation state.
type Assembler struct {
	extractor *Extractor
	bank      *bank.Bank
	lookup    CandidateLookup
	limit     int
	logger    *zap.Logger
}

// NewAssembler creates an assembler. A nil lookup disables candidate search.
func NewAssembler(extractor *Extractor, b *bank.Bank, lookup CandidateLookup, limit int, logger *zap.Logger) *Assembler {
	if limit <= 0 {
		limit = DefaultCandidateLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{
		extractor: extractor,
		bank:      b,
		lookup:    lookup,
		limit:     limit,
		logger:    logger,
	}
}

// Assemble processes one user turn under the given policy. Blocks are joined
// in the order safety, domain guidance, general advice, candidate summary.
func (a *Assembler) Assemble(ctx context.Context, policy Policy, text string, history []model.Turn, language model.Language) model.AIResponse {
	signals := a.extractor.Extract(text, model.UserText(history))

	blocks := make([]string, 0, 4)

	if policy.SafetyFirst && signals.HazardDetected {
		if block := a.safetyBlock(language, policy.Category, signals.Hazards); block != "" {
			blocks = append(blocks, block)
		}
	}

	if signals.Domain != "" && policy.guides(signals.Domain) {
		if kind, ok := bank.GuidanceKind(signals.Domain); ok {
			if block := a.bank.Text(language, policy.Category, kind); block != "" {
				blocks = append(blocks, block)
			}
		}
	}

	if block := a.bank.Text(language, policy.Category, bank.KindGeneral); block != "" {
		blocks = append(blocks, block)
	}

	candidates := a.findCandidates(ctx, policy.Category, signals)

	response := model.AIResponse{Signals: signals}
	if len(candidates) > 0 {
		response.Candidates = candidates
		response.CandidateIDs = make([]string, len(candidates))
		for i, c := range candidates {
			response.CandidateIDs[i] = c.ID
		}
		blocks = append(blocks, a.bank.Found(language, policy.Category, len(candidates)))
	} else {
		blocks = append(blocks, a.bank.Text(language, policy.Category, bank.KindSpecifyMore))
	}

	response.Text = joinBlocks(blocks)
	if response.Text == "" {
		response.Text = a.bank.Text(language, policy.Category, bank.KindGenericApology)
	}
	return response
}

func (a *Assembler) safetyBlock(language model.Language, category model.Category, hazards []model.Hazard) string {
	lines := []string{a.bank.Text(language, category, bank.KindSafetyHeader)}
	for _, h := range hazards {
		kind, ok := bank.SafetyKind(h)
		if !ok {
			continue
		}
		lines = append(lines, a.bank.Text(language, category, kind))
	}
	return joinNonEmpty(lines, "\n")
}

// findCandidates never fails: lookup errors and timeouts are logged and
// reported as "nothing found"
func (a *Assembler) findCandidates(ctx context.Context, category model.Category, signals model.SignalSet) []model.Candidate {
	if a.lookup == nil || !signals.HasLookupSignals() {
		return nil
	}

	query := model.LookupQuery{
		Category:   category,
		City:       signals.City,
		Profession: signals.Profession,
		Domain:     signals.Domain,
	}
	candidates, err := a.lookup.Search(ctx, query, a.limit)
	if err != nil {
		a.logger.Warn("candidate lookup failed",
			zap.String("category", string(category)),
			zap.Any("query", query),
			zap.Error(err),
		)
		return nil
	}
	if len(candidates) > a.limit {
		candidates = candidates[:a.limit]
	}
	return candidates
}

func joinBlocks(blocks []string) string {
	return joinNonEmpty(blocks, blockSeparator)
}

func joinNonEmpty(parts []string, sep string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
