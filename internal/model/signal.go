package model

// Hazard is a kind of dangerous situation detected in user text
type Hazard string

const (
	HazardGas          Hazard = "gas"
	HazardSmoke        Hazard = "smoke"
	HazardSparks       Hazard = "sparks"
	HazardFlooding     Hazard = "flooding"
	HazardShortCircuit Hazard = "short_circuit"
)

// Domain is the technical area a request belongs to
type Domain string

const (
	DomainElectrical Domain = "electrical"
	DomainWater      Domain = "water"
	DomainGasHeating Domain = "gas_heating"
	DomainClimate    Domain = "climate"
)

// Profession is the kind of master a request asks for
type Profession string

const (
	ProfessionElectrician   Profession = "electrician"
	ProfessionPlumber       Profession = "plumber"
	ProfessionGasTechnician Profession = "gas_technician"
	ProfessionBuilder       Profession = "builder"
)

// SignalSet holds the structured facts extracted from one turn. It is
// recomputed for every turn and never stored.
type SignalSet struct {
	HazardDetected bool       `json:"hazard_detected"`
	Hazards        []Hazard   `json:"hazards,omitempty"`
	Domain         Domain     `json:"domain,omitempty"`
	City           string     `json:"city,omitempty"`
	Profession     Profession `json:"profession,omitempty"`
}

// Empty reports whether nothing was extracted
func (s SignalSet) Empty() bool {
	return !s.HazardDetected && !s.HasLookupSignals()
}

// HasLookupSignals reports whether the set is specific enough to search for
// candidates
func (s SignalSet) HasLookupSignals() bool {
	return s.Domain != "" || s.City != "" || s.Profession != ""
}

// LookupQuery is what a candidate lookup receives
type LookupQuery struct {
	Category   Category   `json:"category"`
	City       string     `json:"city,omitempty"`
	Profession Profession `json:"profession,omitempty"`
	Domain     Domain     `json:"domain,omitempty"`
}

// Candidate is a master summary returned by a candidate lookup
type Candidate struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Profession     string   `json:"profession"`
	Location       string   `json:"location"`
	Rating         float64  `json:"rating"`
	ReviewCount    int      `json:"review_count"`
	Available      bool     `json:"available"`
	Score          float64  `json:"score,omitempty"`
	MatchedReasons []string `json:"matched_reasons,omitempty"`
}

// AIResponse is the outcome of processing one user turn
type AIResponse struct {
	Text         string      `json:"response_text"`
	CandidateIDs []string    `json:"candidate_ids,omitempty"`
	Candidates   []Candidate `json:"candidates,omitempty"`
	Signals      SignalSet   `json:"signals"`
}
