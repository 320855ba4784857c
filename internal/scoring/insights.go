package scoring

// ─── FINDING CODES ────────────────────────────────────────────────────────────

// FindingCode identifies one detected risk pattern. Codes select static
// evidence and coaching content; they are stable identifiers, not display
// strings.
type FindingCode string

const (
	FindingOverdueScreening FindingCode = "OVERDUE_SCREENING"
	FindingFamilyHistory    FindingCode = "FAMILY_HISTORY"
	FindingDenseBreast      FindingCode = "DENSE_BREAST"
	FindingAlcoholHigh      FindingCode = "ALCOHOL_HIGH"
	FindingLowExercise      FindingCode = "LOW_EXERCISE"
	FindingPoorDiet         FindingCode = "POOR_DIET"
	FindingHighStress       FindingCode = "HIGH_STRESS"
	FindingPoorSleep        FindingCode = "POOR_SLEEP"
)

// findingOrder is the fixed priority order. Detection, badge selection, and
// pain-point selection all walk this slice so output ordering is stable no
// matter how the answers arrived.
var findingOrder = []FindingCode{
	FindingOverdueScreening,
	FindingFamilyHistory,
	FindingDenseBreast,
	FindingAlcoholHigh,
	FindingLowExercise,
	FindingPoorDiet,
	FindingHighStress,
	FindingPoorSleep,
}

// findingMatchers maps each code to its detection predicate over normalized
// answers. An absent answer never activates a finding; overdue screening in
// particular requires an explicit "Never" or "more than 2 years" answer, not
// merely a skipped question.
var findingMatchers = map[FindingCode]func(a AnswerSet) bool{
	FindingOverdueScreening: func(a AnswerSet) bool {
		if Age(a) < 40 {
			return false
		}
		return answerIs(a, KeyLastMammogram, "Never") ||
			answerHas(a, KeyLastMammogram, "more than 2 years")
	},
	FindingFamilyHistory: func(a AnswerSet) bool { return answerYes(a, KeyFamilyHistory) },
	FindingDenseBreast:   func(a AnswerSet) bool { return answerYes(a, KeyDenseBreast) },
	FindingAlcoholHigh:   func(a AnswerSet) bool { return answerHas(a, KeyAlcohol, "2 or more") },
	FindingLowExercise:   func(a AnswerSet) bool { return answerHas(a, KeyExercise, "little or no") },
	FindingPoorDiet: func(a AnswerSet) bool {
		return answerHas(a, KeyDiet, "western") || answerHas(a, KeyDiet, "processed")
	},
	FindingHighStress: func(a AnswerSet) bool { return answerHas(a, KeyStress, "high") },
	FindingPoorSleep:  func(a AnswerSet) bool { return answerHas(a, KeySleep, "less than 6") },
}

// ─── STATIC CONTENT ───────────────────────────────────────────────────────────

// EvidenceBadge is the study-backed context card shown for a finding.
type EvidenceBadge struct {
	Label    string `json:"label"`
	Evidence string `json:"evidence"`
	Source   string `json:"source"`
	Strength string `json:"strength"`
	Meaning  string `json:"meaning"`
	Hope     string `json:"hope"`
}

// PainPoint pairs the everyday friction behind a finding with one small
// concrete action and a sentence the user can say to their doctor.
type PainPoint struct {
	PainPoint   string `json:"painPoint"`
	MicroAction string `json:"microAction"`
	TalkTrack   string `json:"talkTrack"`
}

type findingContent struct {
	badge      EvidenceBadge
	pain       *PainPoint
	categories []string // curated expert-content categories this finding maps to
}

var findingCatalog = map[FindingCode]findingContent{
	FindingOverdueScreening: {
		badge: EvidenceBadge{
			Label:    "Screening is overdue",
			Evidence: "Regular mammography reduces breast cancer mortality by about 20% in women over 40.",
			Source:   "Independent UK Panel on Breast Cancer Screening, 2012",
			Strength: "strong",
			Meaning:  "Tumours found on schedule are smaller and far more treatable.",
			Hope:     "Booking one appointment closes this gap completely.",
		},
		pain: &PainPoint{
			PainPoint:   "It has been a while since your last mammogram, and booking keeps sliding.",
			MicroAction: "Call your clinic today and take the first available slot, even if it is weeks out.",
			TalkTrack:   "I'm overdue for screening and would like the earliest available mammogram.",
		},
		categories: []string{"screening", "early-detection"},
	},
	FindingFamilyHistory: {
		badge: EvidenceBadge{
			Label:    "Family history present",
			Evidence: "A first-degree relative with breast cancer roughly doubles lifetime risk.",
			Source:   "Collaborative Group on Hormonal Factors in Breast Cancer, Lancet 2001",
			Strength: "strong",
			Meaning:  "Your screening conversation should start earlier and may include MRI.",
			Hope:     "Most women with family history never develop breast cancer.",
		},
		pain: &PainPoint{
			PainPoint:   "Family history can feel like a verdict rather than information.",
			MicroAction: "Write down which relatives were diagnosed and at what age, ready for your next visit.",
			TalkTrack:   "Given my family history, should I start screening earlier or consider genetic counselling?",
		},
		categories: []string{"genetics", "screening"},
	},
	FindingDenseBreast: {
		badge: EvidenceBadge{
			Label:    "Dense breast tissue",
			Evidence: "Dense tissue both raises risk up to two-fold and lowers mammogram sensitivity.",
			Source:   "Boyd et al., NEJM 2007",
			Strength: "strong",
			Meaning:  "Supplemental ultrasound or MRI may be worth discussing.",
			Hope:     "Knowing your density lets you choose the right imaging, not more worry.",
		},
		pain: &PainPoint{
			PainPoint:   "Density reports are confusing and rarely explained.",
			MicroAction: "Find your last imaging report and note the BI-RADS density category.",
			TalkTrack:   "My breasts are dense — does supplemental ultrasound or MRI make sense for me?",
		},
		categories: []string{"screening", "imaging"},
	},
	FindingAlcoholHigh: {
		badge: EvidenceBadge{
			Label:    "Alcohol above guideline",
			Evidence: "Each daily drink raises breast cancer risk by roughly 7-10%.",
			Source:   "World Cancer Research Fund Continuous Update Project",
			Strength: "strong",
			Meaning:  "This is one of the clearest dose-response relationships in prevention.",
			Hope:     "Risk declines after cutting back — the curve works in both directions.",
		},
		pain: &PainPoint{
			PainPoint:   "Evening drinks have become routine and cutting back feels like losing a ritual.",
			MicroAction: "Swap one regular drink this week for a zero-alcohol version of the same ritual.",
			TalkTrack:   "I average two drinks a day — what would halving that do for my risk profile?",
		},
		categories: []string{"nutrition", "habits"},
	},
	FindingLowExercise: {
		badge: EvidenceBadge{
			Label:    "Low physical activity",
			Evidence: "150 minutes of moderate weekly activity is associated with 10-25% lower risk.",
			Source:   "American Cancer Society guideline, 2020",
			Strength: "strong",
			Meaning:  "Movement is the single most leveraged habit in your controllable score.",
			Hope:     "Benefits begin at the first regular session, not at marathon fitness.",
		},
		pain: &PainPoint{
			PainPoint:   "Exercise keeps losing to everything else on the calendar.",
			MicroAction: "Schedule two 20-minute walks this week as fixed calendar events.",
			TalkTrack:   "What intensity of exercise is safe and useful for me to start with?",
		},
		categories: []string{"movement", "habits"},
	},
	FindingPoorDiet: {
		badge: EvidenceBadge{
			Label:    "Western diet pattern",
			Evidence: "Mediterranean-style diets show up to 30% lower incidence in trial settings.",
			Source:   "PREDIMED trial, JAMA Internal Medicine 2015",
			Strength: "moderate",
			Meaning:  "Diet shifts compound with weight and inflammation benefits.",
			Hope:     "Single swaps — olive oil, fish, vegetables — move the needle without an overhaul.",
		},
		pain: &PainPoint{
			PainPoint:   "Processed food is the default when the week gets busy.",
			MicroAction: "Add one vegetable-forward meal and one fish meal to this week's plan.",
			TalkTrack:   "Could a referral to a dietitian help me restructure my eating pattern?",
		},
		categories: []string{"nutrition"},
	},
	FindingHighStress: {
		badge: EvidenceBadge{
			Label:    "Chronic high stress",
			Evidence: "Sustained stress alters cortisol rhythms and immune surveillance.",
			Source:   "Chida et al., Nature Clinical Practice Oncology 2008",
			Strength: "moderate",
			Meaning:  "Stress also erodes the sleep, diet, and exercise habits that protect you.",
			Hope:     "Ten minutes of daily downregulation measurably shifts cortisol patterns.",
		},
		pain: nil,
		categories: []string{"mind-body", "habits"},
	},
	FindingPoorSleep: {
		badge: EvidenceBadge{
			Label:    "Short sleep",
			Evidence: "Regularly sleeping under 6 hours disrupts melatonin, a hormone with protective effects.",
			Source:   "IARC shift-work monograph, 2019",
			Strength: "moderate",
			Meaning:  "Sleep is upstream of stress, appetite, and recovery.",
			Hope:     "A consistent wind-down window restores most of the benefit.",
		},
		pain: nil,
		categories: []string{"sleep", "mind-body"},
	},
}

// ─── SELECTION ────────────────────────────────────────────────────────────────

const (
	maxEvidenceBadges = 3
	maxPainPoints     = 2

	urgencyThreshold        = 50
	maxImprovementPotential = 35
)

// urgencyWeights are the additive contributions to the urgency score.
var urgencyWeights = struct {
	overdueScreening int
	familyHistory    int
	manyFindings     int // three or more active findings
	ageOver45        int
}{40, 30, 20, 10}

// improvementWeights are the per-finding contributions to the improvement
// potential estimate, capped at maxImprovementPotential.
var improvementWeights = map[FindingCode]int{
	FindingLowExercise: 15,
	FindingPoorDiet:    12,
	FindingHighStress:  10,
	FindingAlcoholHigh: 8,
}

// Insights is the output of the selector: active findings in priority order
// plus the capped, deterministically chosen content for the report.
type Insights struct {
	Findings             []FindingCode   `json:"findings"`
	EvidenceBadges       []EvidenceBadge `json:"evidenceBadges"`
	PainPoints           []PainPoint     `json:"painPoints"`
	ContentCategories    []string        `json:"contentCategories"`
	UrgencyScore         int             `json:"urgencyScore"`
	HasUrgentIssues      bool            `json:"hasUrgentIssues"`
	ImprovementPotential int             `json:"improvementPotential"`
}

// SelectInsights detects active findings and assembles the capped content
// selection. Identical answers always produce identical insights: detection
// and selection both follow findingOrder, never map iteration order.
func SelectInsights(a AnswerSet) Insights {
	ins := Insights{
		Findings:          []FindingCode{},
		EvidenceBadges:    []EvidenceBadge{},
		PainPoints:        []PainPoint{},
		ContentCategories: []string{},
	}

	for _, code := range findingOrder {
		if findingMatchers[code](a) {
			ins.Findings = append(ins.Findings, code)
		}
	}

	seenCategory := map[string]bool{}
	for _, code := range ins.Findings {
		content := findingCatalog[code]

		if len(ins.EvidenceBadges) < maxEvidenceBadges {
			ins.EvidenceBadges = append(ins.EvidenceBadges, content.badge)
		}
		if content.pain != nil && len(ins.PainPoints) < maxPainPoints {
			ins.PainPoints = append(ins.PainPoints, *content.pain)
		}
		for _, cat := range content.categories {
			if !seenCategory[cat] {
				seenCategory[cat] = true
				ins.ContentCategories = append(ins.ContentCategories, cat)
			}
		}
	}

	ins.UrgencyScore = urgencyScore(ins.Findings, Age(a))
	ins.HasUrgentIssues = ins.UrgencyScore > urgencyThreshold
	ins.ImprovementPotential = improvementPotential(ins.Findings)

	return ins
}

func urgencyScore(findings []FindingCode, age int) int {
	score := 0
	for _, f := range findings {
		switch f {
		case FindingOverdueScreening:
			score += urgencyWeights.overdueScreening
		case FindingFamilyHistory:
			score += urgencyWeights.familyHistory
		}
	}
	if len(findings) >= 3 {
		score += urgencyWeights.manyFindings
	}
	if age > 45 {
		score += urgencyWeights.ageOver45
	}
	return score
}

func improvementPotential(findings []FindingCode) int {
	total := 0
	for _, f := range findings {
		total += improvementWeights[f]
	}
	if total > maxImprovementPotential {
		total = maxImprovementPotential
	}
	return total
}
