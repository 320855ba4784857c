package scoring

import "strconv"

// ─── REPORT STRUCTURE ────────────────────────────────────────────────────────

// Report is the full assembled assessment document, serialized as-is into the
// assessments table and returned by the report endpoint.
type Report struct {
	// RiskScore is the raw additive evidence scale (the uncapped unmodifiable
	// total) rendered as a string. Categorization is governed by
	// totalHealthScore, not by this value; both are exposed because readers
	// of older reports rely on seeing the raw scale.
	RiskScore       string       `json:"riskScore"`
	RiskCategory    RiskCategory `json:"riskCategory"`
	UserProfile     UserProfile  `json:"userProfile"`
	RiskFactors     []string     `json:"riskFactors"`
	Recommendations []string     `json:"recommendations"`
	DailyPlan       DailyPlan    `json:"dailyPlan"`
	ReportData      ReportData   `json:"reportData"`
}

// ReportData groups the detailed analysis sections.
type ReportData struct {
	Summary           ReportSummary    `json:"summary"`
	SectionAnalysis   SectionAnalysis  `json:"sectionAnalysis"`
	EvidenceBasedRisk EvidenceSection  `json:"evidenceBasedRisk"`
	PersonalizedPlan  PersonalizedPlan `json:"personalizedPlan"`
	Insights          Insights         `json:"insights"`

	// NarrativeSummary is set only when an AI narrative has been applied.
	NarrativeSummary string `json:"narrativeSummary,omitempty"`
}

// ReportSummary is the headline score block.
type ReportSummary struct {
	TotalHealthScore          int          `json:"totalHealthScore"`
	ControllableHealthScore   int          `json:"controllableHealthScore"`
	UncontrollableHealthScore int          `json:"uncontrollableHealthScore"`
	OverallRiskCategory       RiskCategory `json:"overallRiskCategory"`
	UserProfile               UserProfile  `json:"userProfile"`
}

// SectionScore is the per-domain entry in sectionScores.
type SectionScore struct {
	Score   int      `json:"score"`
	Factors []string `json:"factors"`
}

// SectionDetail is one row of the ordered sectionBreakdown.
type SectionDetail struct {
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Score     int       `json:"score"`
	RiskLevel RiskLevel `json:"riskLevel"`
	Factors   []string  `json:"factors"`
}

// SectionAnalysis carries the per-domain scores, narratives, and the ordered
// breakdown used for rendering.
type SectionAnalysis struct {
	SectionScores    map[string]SectionScore `json:"sectionScores"`
	SectionSummaries map[string]string       `json:"sectionSummaries"`
	SectionBreakdown []SectionDetail         `json:"sectionBreakdown"`
}

// evidenceFactors nests the two factor maps under reportData.evidenceBasedRisk.
type evidenceFactors struct {
	Unmodifiable map[string]RiskFactorDetail `json:"unmodifiable"`
	Modifiable   map[string]RiskFactorDetail `json:"modifiable"`
}

// EvidenceSection is the report-shaped view of EvidenceBasedRisk.
type EvidenceSection struct {
	RiskFactors         evidenceFactors `json:"riskFactors"`
	LifetimeRisk        string          `json:"lifetimeRisk"`
	ModifiableReduction int             `json:"modifiableReduction"`
	UnmodifiableRisk    int             `json:"unmodifiableRisk"`
}

// PersonalizedPlan bundles the daily plan with coaching themes and the
// follow-up schedule.
type PersonalizedPlan struct {
	DailyPlan        DailyPlan         `json:"dailyPlan"`
	CoachingFocus    []string          `json:"coachingFocus"`
	FollowUpTimeline map[string]string `json:"followUpTimeline"`
}

// Narrative is an optional externally-generated narrative overlay. The engine
// never requires one: when absent, the template section summaries stand.
type Narrative struct {
	Summary  string            `json:"summary,omitempty"`
	Sections map[string]string `json:"sections,omitempty"` // domain key → narrative text
}

// ─── ASSESSMENT ──────────────────────────────────────────────────────────────

// Assessment is the complete evaluated result for one normalized answer set.
type Assessment struct {
	Domains   DomainScores
	Composite CompositeReport
	Evidence  EvidenceBasedRisk
	Insights  Insights
	Report    Report
}

// Evaluate runs the full scoring pipeline over a normalized answer set. It is
// a pure function: no I/O, no shared state, identical output for identical
// input. Callers must Normalize first.
func Evaluate(a AnswerSet) Assessment {
	domains := ScoreDomains(a)
	composite := Aggregate(domains, a)
	evidence := ModelEvidence(a)
	insights := SelectInsights(a)

	return Assessment{
		Domains:   domains,
		Composite: composite,
		Evidence:  evidence,
		Insights:  insights,
		Report:    AssembleReport(domains, composite, evidence, insights),
	}
}

// AssembleReport merges the four analysis outputs into the final report
// document. It is side-effect-free; persistence belongs to the caller.
func AssembleReport(domains DomainScores, composite CompositeReport, evidence EvidenceBasedRisk, insights Insights) Report {
	all := domains.All()

	sectionScores := make(map[string]SectionScore, len(all))
	sectionSummaries := make(map[string]string, len(all))
	breakdown := make([]SectionDetail, 0, len(all))
	riskFactors := []string{}

	for _, s := range all {
		key := string(s.Domain)
		sectionScores[key] = SectionScore{Score: s.Score, Factors: s.RiskFactors}
		sectionSummaries[key] = SummarizeSection(s)
		breakdown = append(breakdown, SectionDetail{
			Name:      key,
			Title:     DomainTitle(s.Domain),
			Score:     s.Score,
			RiskLevel: s.RiskLevel,
			Factors:   s.RiskFactors,
		})
		riskFactors = append(riskFactors, s.RiskFactors...)
	}

	plan := BuildDailyPlan(composite.UserProfile, insights.Findings)

	return Report{
		RiskScore:       strconv.Itoa(evidence.UnmodifiableRiskTotal),
		RiskCategory:    composite.RiskCategory,
		UserProfile:     composite.UserProfile,
		RiskFactors:     riskFactors,
		Recommendations: BuildRecommendations(insights.Findings, composite.UserProfile),
		DailyPlan:       plan,
		ReportData: ReportData{
			Summary: ReportSummary{
				TotalHealthScore:          composite.TotalHealthScore,
				ControllableHealthScore:   composite.ControllableScore,
				UncontrollableHealthScore: composite.UncontrollableScore,
				OverallRiskCategory:       composite.RiskCategory,
				UserProfile:               composite.UserProfile,
			},
			SectionAnalysis: SectionAnalysis{
				SectionScores:    sectionScores,
				SectionSummaries: sectionSummaries,
				SectionBreakdown: breakdown,
			},
			EvidenceBasedRisk: EvidenceSection{
				RiskFactors: evidenceFactors{
					Unmodifiable: evidence.Unmodifiable,
					Modifiable:   evidence.Modifiable,
				},
				LifetimeRisk:        evidence.LifetimeRisk,
				ModifiableReduction: evidence.ModifiableReductionPotential,
				UnmodifiableRisk:    evidence.UnmodifiableRiskTotal,
			},
			PersonalizedPlan: PersonalizedPlan{
				DailyPlan:        plan,
				CoachingFocus:    BuildCoachingFocus(insights.Findings),
				FollowUpTimeline: BuildFollowUpTimeline(composite.RiskCategory, insights.HasUrgentIssues),
			},
			Insights: insights,
		},
	}
}

// ApplyNarrative overlays an AI-generated narrative onto a report in place.
// Only non-empty section entries replace the template summaries; anything
// missing keeps its template text, so a partial narrative never degrades the
// report below its deterministic baseline.
func ApplyNarrative(r *Report, n *Narrative) {
	if n == nil {
		return
	}
	if n.Summary != "" {
		r.ReportData.NarrativeSummary = n.Summary
	}
	for key, text := range n.Sections {
		if text == "" {
			continue
		}
		if _, ok := r.ReportData.SectionAnalysis.SectionSummaries[key]; ok {
			r.ReportData.SectionAnalysis.SectionSummaries[key] = text
		}
	}
}
