package scoring

// RiskCategory is the overall three-bucket classification of the assessment.
type RiskCategory string

const (
	RiskLow      RiskCategory = "low"
	RiskModerate RiskCategory = "moderate"
	RiskHigh     RiskCategory = "high"
)

// UserProfile buckets the subject into one of five life-stage profiles used
// to select plan and narrative content.
type UserProfile string

const (
	ProfileTeenager       UserProfile = "teenager"
	ProfilePremenopausal  UserProfile = "premenopausal"
	ProfilePostmenopausal UserProfile = "postmenopausal"
	ProfileCurrentPatient UserProfile = "current_patient"
	ProfileSurvivor       UserProfile = "survivor"
)

// CompositeReport is the two-tier aggregate over the six domain scores.
//
// controllableScore averages the domains the subject can influence
// (Lifestyle, Hormonal, Physical); uncontrollableScore averages the fixed
// ones (Demographics, Family History, Medical History); totalHealthScore is
// the mean of the two composites.
type CompositeReport struct {
	ControllableScore   int          `json:"controllableScore"`
	UncontrollableScore int          `json:"uncontrollableScore"`
	TotalHealthScore    int          `json:"totalHealthScore"`
	RiskCategory        RiskCategory `json:"riskCategory"`
	UserProfile         UserProfile  `json:"userProfile"`
}

// Aggregate computes the composite report from the six domain scores and the
// normalized answers (answers are needed only for the profile bucket).
func Aggregate(scores DomainScores, a AnswerSet) CompositeReport {
	controllable := roundedMean(scores.Lifestyle.Score, scores.Hormonal.Score, scores.Physical.Score)
	uncontrollable := roundedMean(scores.Demographics.Score, scores.FamilyHistory.Score, scores.Medical.Score)
	total := roundedMean(controllable, uncontrollable)

	return CompositeReport{
		ControllableScore:   controllable,
		UncontrollableScore: uncontrollable,
		TotalHealthScore:    total,
		RiskCategory:        CategoryForScore(total),
		UserProfile:         Profile(a),
	}
}

// CategoryForScore maps a total health score to the overall risk category.
// The top two bands currently classify identically; they are kept as written
// because downstream consumers depend on the observable thresholds.
func CategoryForScore(score int) RiskCategory {
	switch {
	case score < 20:
		return RiskLow
	case score < 40:
		return RiskModerate
	case score < 60:
		return RiskHigh
	default:
		return RiskHigh // same bucket as the 40-59 band
	}
}

// Profile buckets the subject. Treatment status dominates, then survivorship,
// then age / menopause stage.
func Profile(a AnswerSet) UserProfile {
	switch {
	case answerYes(a, KeyTreatment):
		return ProfileCurrentPatient
	case answerYes(a, KeyCancerHistory):
		return ProfileSurvivor
	case Age(a) < 20:
		return ProfileTeenager
	case hasMenopauseIndicator(a):
		return ProfilePostmenopausal
	default:
		return ProfilePremenopausal
	}
}

func hasMenopauseIndicator(a AnswerSet) bool {
	if v, ok := a[KeyMenopauseAge]; ok && v != "" {
		return true
	}
	return Age(a) >= 55
}

// roundedMean returns the arithmetic mean rounded to the nearest integer.
func roundedMean(vals ...int) int {
	if len(vals) == 0 {
		return 0
	}
	total := 0
	for _, v := range vals {
		total += v
	}
	return int(float64(total)/float64(len(vals)) + 0.5)
}
