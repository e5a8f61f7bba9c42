// Package bank holds the localized canned texts the triage classifiers
// assemble their replies from.
//
// Lookups never fail. A missing (language, category, kind) entry falls back
// to the category-neutral entry of the same language, then to the same two
// entries in the default language (Slovak). Missing reports every entry that
// would need such a fallback so tests can keep the table complete.
package bank

import (
	"fmt"

	"najdimajstra/internal/model"
)

// Kind identifies a template block
type Kind string

const (
	KindGreeting    Kind = "greeting"
	KindGeneral     Kind = "general"
	KindSpecifyMore Kind = "specify_more"

	KindGuidanceElectrical Kind = "guidance_electrical"
	KindGuidanceWater      Kind = "guidance_water"
	KindGuidanceGasHeating Kind = "guidance_gas_heating"
	KindGuidanceClimate    Kind = "guidance_climate"

	KindSafetyHeader       Kind = "safety_header"
	KindSafetyGas          Kind = "safety_gas"
	KindSafetySmoke        Kind = "safety_smoke"
	KindSafetySparks       Kind = "safety_sparks"
	KindSafetyFlooding     Kind = "safety_flooding"
	KindSafetyShortCircuit Kind = "safety_short_circuit"

	KindFoundOne  Kind = "found_one"
	KindFoundMany Kind = "found_many" // takes the count as %d

	KindGenericGreeting Kind = "generic_greeting"
	KindGenericApology  Kind = "generic_apology"
)

// NoCategory addresses category-neutral entries
const NoCategory model.Category = ""

// categoryKinds must exist for every category
var categoryKinds = []Kind{
	KindGreeting,
	KindGeneral,
	KindSpecifyMore,
	KindGuidanceElectrical,
	KindGuidanceWater,
	KindGuidanceGasHeating,
	KindGuidanceClimate,
}

// neutralKinds must exist without a category
var neutralKinds = []Kind{
	KindSafetyHeader,
	KindSafetyGas,
	KindSafetySmoke,
	KindSafetySparks,
	KindSafetyFlooding,
	KindSafetyShortCircuit,
	KindFoundOne,
	KindFoundMany,
	KindGenericGreeting,
	KindGenericApology,
}

// GuidanceKind maps a domain to its guidance block
func GuidanceKind(d model.Domain) (Kind, bool) {
	switch d {
	case model.DomainElectrical:
		return KindGuidanceElectrical, true
	case model.DomainWater:
		return KindGuidanceWater, true
	case model.DomainGasHeating:
		return KindGuidanceGasHeating, true
	case model.DomainClimate:
		return KindGuidanceClimate, true
	}
	return "", false
}

// SafetyKind maps a hazard to its safety instructions
func SafetyKind(h model.Hazard) (Kind, bool) {
	switch h {
	case model.HazardGas:
		return KindSafetyGas, true
	case model.HazardSmoke:
		return KindSafetySmoke, true
	case model.HazardSparks:
		return KindSafetySparks, true
	case model.HazardFlooding:
		return KindSafetyFlooding, true
	case model.HazardShortCircuit:
		return KindSafetyShortCircuit, true
	}
	return "", false
}

// Key addresses one entry of the bank
type Key struct {
	Language model.Language
	Category model.Category
	Kind     Kind
}

func (k Key) String() string {
	cat := string(k.Category)
	if cat == "" {
		cat = "*"
	}
	return fmt.Sprintf("%s/%s/%s", k.Language, cat, k.Kind)
}

// Bank is a read-only keyed text table, safe for concurrent use
type Bank struct {
	entries  map[Key]string
	fallback model.Language
}

// New returns the bank with the built-in texts
func New() *Bank {
	return NewWithEntries(defaultEntries(), model.DefaultLanguage)
}

// NewWithEntries builds a bank over custom entries
func NewWithEntries(entries map[Key]string, fallback model.Language) *Bank {
	copied := make(map[Key]string, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	return &Bank{entries: copied, fallback: fallback}
}

// Text returns the block for (language, category, kind), applying the
// fallback chain. The result is empty only if no language has the kind.
func (b *Bank) Text(language model.Language, category model.Category, kind Kind) string {
	for _, lang := range []model.Language{language, b.fallback} {
		if v, ok := b.entries[Key{lang, category, kind}]; ok && v != "" {
			return v
		}
		if v, ok := b.entries[Key{lang, NoCategory, kind}]; ok && v != "" {
			return v
		}
	}
	return ""
}

// Found returns the "found N specialists" sentence
func (b *Bank) Found(language model.Language, category model.Category, n int) string {
	if n == 1 {
		return b.Text(language, category, KindFoundOne)
	}
	tmpl := b.Text(language, category, KindFoundMany)
	if tmpl == "" {
		return ""
	}
	return fmt.Sprintf(tmpl, n)
}

// Missing lists every required entry that is only reachable through a
// fallback
func (b *Bank) Missing() []Key {
	var missing []Key
	has := func(lang model.Language, cat model.Category, kind Kind) bool {
		if v := b.entries[Key{lang, cat, kind}]; v != "" {
			return true
		}
		return b.entries[Key{lang, NoCategory, kind}] != ""
	}
	for _, lang := range model.Languages {
		for _, cat := range model.Categories {
			for _, kind := range categoryKinds {
				if !has(lang, cat, kind) {
					missing = append(missing, Key{lang, cat, kind})
				}
			}
		}
		for _, kind := range neutralKinds {
			if !has(lang, NoCategory, kind) {
				missing = append(missing, Key{lang, NoCategory, kind})
			}
		}
	}
	return missing
}
