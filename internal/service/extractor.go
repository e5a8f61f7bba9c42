package service

import (
	"najdimajstra/internal/model"
	"najdimajstra/internal/utils"
)

// hazardRule fires on any of its keywords, or when the turn names one of the
// subjects together with one of the cues ("plyn" and "smrdí", in any order).
type hazardRule struct {
	hazard   model.Hazard
	keywords []string
	subjects []string
	cues     []string
}

func (r hazardRule) matches(text string) bool {
	if utils.ContainsAny(text, r.keywords) {
		return true
	}
	return utils.ContainsAny(text, r.subjects) && utils.ContainsAny(text, r.cues)
}

type domainRule struct {
	domain   model.Domain
	keywords []string
}

type professionRule struct {
	profession model.Profession
	keywords   []string
}

// City is a gazetteer entry. Stems are folded prefixes that also match the
// declined forms ("v Žiline", "v Bratislave").
type City struct {
	Name  string
	Stems []string
}

// Keyword tables hold folded (lowercase, diacritic-free) Slovak and English
// substrings. Text is reduced to space-separated words padded on both sides
// before matching, so a leading or trailing space in a keyword anchors it to a
// word boundary. Order matters: earlier entries win ties.
var hazardTable = []hazardRule{
	{
		hazard:   model.HazardGas,
		keywords: []string{"gas leak", "leaking gas"},
		subjects: []string{" plyn ", " plynu ", " plynom ", " plynov", " gas "},
		cues: []string{
			" cit", " smrd", " smrad", " zapach", " pach", " unik", " vonia", " ucit",
			" smell", " leak", " odour", " odor", " stink",
		},
	},
	{hazard: model.HazardSmoke, keywords: []string{
		" dym", " ohen", " ohn", " hori ", " horia ", " horim", " zhorel", " poziar", "spalenin",
		" smoke", " fire ", " fires ", " burning",
	}},
	{hazard: model.HazardSparks, keywords: []string{" iskr", " spark"}},
	{hazard: model.HazardFlooding, keywords: []string{
		"zaplav", " topime sa", " tecie zo strop", " prasknut",
		" flood", " burst pipe", " burst a pipe",
	}},
	{hazard: model.HazardShortCircuit, keywords: []string{" skrat", " short circuit"}},
}

var domainTable = []domainRule{
	{model.DomainElectrical, []string{
		"elektr", " zasuvk", " istic", " prud ", " prudu", " prudov", " svetl", " kabel", " vypinac",
		"electric", " socket", " outlet", " breaker", " wiring", " power cut", " power outage",
	}},
	{model.DomainWater, []string{
		" voda ", " vody ", " vodu ", " vodou ", "vodovod", " potrubi", " kohutik", " kvapk", " sprch", " drez",
		" odpad", " kanaliz", " wc ", " zachod",
		" water", " pipe", " drain", " toilet", " faucet", " tap ", " leaking tap", " drip",
	}},
	{model.DomainGasHeating, []string{
		" plyn ", " plynu ", " plynom ", " plynov", " kotl", " kotol", " kuren", " vykur", " radiator", " bojler", " ohrievac",
		" gas ", " boiler", " heating", " furnace",
	}},
	{model.DomainClimate, []string{
		" klima", " vetran", " rekuperac", " tepelne cerpadl", " tepelneho cerpadl",
		" air condition", " hvac", " ventilat", " heat pump",
	}},
}

var professionTable = []professionRule{
	{model.ProfessionElectrician, []string{"elektrikar", "elektroinstal", "electrician"}},
	{model.ProfessionPlumber, []string{"instalater", "vodar", "plumber"}},
	{model.ProfessionGasTechnician, []string{"plynar", "kurenar", "gas technician", "gas engineer", "heating engineer"}},
	{model.ProfessionBuilder, []string{"stavbar", "murar", "stavebn", "builder", "bricklayer", "contractor"}},
}

// gazetteer lists Slovak cities, larger ones first
var gazetteer = []City{
	{"Bratislava", []string{"bratislav"}},
	{"Košice", []string{"kosic"}},
	{"Prešov", []string{"presov"}},
	{"Žilina", []string{"zilin"}},
	{"Banská Bystrica", []string{"banska bystric", "banskej bystric"}},
	{"Nitra", []string{"nitra", "nitre", "nitry", "nitru"}},
	{"Trnava", []string{"trnav"}},
	{"Trenčín", []string{"trencin", "trencian"}},
	{"Martin", []string{"martin"}},
	{"Poprad", []string{"poprad"}},
	{"Prievidza", []string{"prievidz"}},
	{"Zvolen", []string{"zvolen"}},
	{"Považská Bystrica", []string{"povazska bystric", "povazskej bystric"}},
	{"Michalovce", []string{"michalov"}},
	{"Nové Zámky", []string{"nove zamky", "novych zamko"}},
	{"Spišská Nová Ves", []string{"spisska nova ves", "spisskej novej vsi"}},
	{"Komárno", []string{"komarn"}},
	{"Levice", []string{"levic"}},
	{"Humenné", []string{"humenn"}},
	{"Bardejov", []string{"bardejov"}},
	{"Liptovský Mikuláš", []string{"liptovsky mikulas", "liptovskom mikulasi"}},
	{"Ružomberok", []string{"ruzomber"}},
	{"Piešťany", []string{"piestan"}},
	{"Lučenec", []string{"lucen"}},
	{"Topoľčany", []string{"topolcan"}},
	{"Dunajská Streda", []string{"dunajska streda", "dunajskej stred"}},
	{"Pezinok", []string{"pezin"}},
	{"Senec", []string{"senec", "senci"}},
}

// Extractor pulls hazard, domain, city and profession signals out of free
// text by keyword matching. It holds no mutable state and is safe for
// concurrent use.
type Extractor struct {
	hazards     []hazardRule
	domains     []domainRule
	professions []professionRule
	cities      []City
}

// NewExtractor creates an extractor over the built-in vocabulary
func NewExtractor() *Extractor {
	return &Extractor{
		hazards:     hazardTable,
		domains:     domainTable,
		professions: professionTable,
		cities:      gazetteer,
	}
}

// Extract computes the signal set of one turn. Hazards and the domain come
// from the turn text alone; city and profession fall back to the accumulated
// conversation text when the turn itself does not name them. A turn without
// any words yields an empty set, whatever the history holds.
func (e *Extractor) Extract(text, accumulated string) model.SignalSet {
	var signals model.SignalSet

	current := utils.Words(text)
	if current == "" {
		return signals
	}
	history := utils.Words(accumulated)

	for _, rule := range e.hazards {
		if rule.matches(current) {
			signals.Hazards = append(signals.Hazards, rule.hazard)
		}
	}
	signals.HazardDetected = len(signals.Hazards) > 0

	signals.Domain = e.matchDomain(current)

	signals.City = e.matchCity(current)
	if signals.City == "" {
		signals.City = e.matchCity(history)
	}

	signals.Profession = e.matchProfession(current)
	if signals.Profession == "" {
		signals.Profession = e.matchProfession(history)
	}

	return signals
}

func (e *Extractor) matchDomain(text string) model.Domain {
	for _, rule := range e.domains {
		if utils.ContainsAny(text, rule.keywords) {
			return rule.domain
		}
	}
	return ""
}

func (e *Extractor) matchCity(text string) string {
	for _, city := range e.cities {
		if utils.ContainsAny(text, city.Stems) {
			return city.Name
		}
	}
	return ""
}

func (e *Extractor) matchProfession(text string) model.Profession {
	for _, rule := range e.professions {
		if utils.ContainsAny(text, rule.keywords) {
			return rule.profession
		}
	}
	return ""
}
