// Package scoring implements the deterministic risk assessment engine:
// answer normalization, the six domain rule evaluators, the composite
// aggregator, the evidence-based risk model, the insight selector, and the
// report assembler. It is intentionally dependency-free: it imports nothing
// from internal/ and can be tested without a database.
package scoring

import (
	"strconv"
	"strings"
)

// AnswerSet maps a question key to its raw answer value. Values are string
// enum labels or numeric strings; missing keys are legal and every rule
// treats an absent field as "does not match".
type AnswerSet map[string]string

// Question keys. The vocabulary is fixed and versioned with the rule set —
// renaming a key is a breaking change to the content hash.
const (
	KeyAge            = "age"
	KeyEthnicity      = "ethnicity"
	KeyFamilyHistory  = "family_history"
	KeyGeneticTesting = "genetic_testing"
	KeyRelativeUnder50 = "relative_diagnosed_under_50"
	KeyMaleRelative   = "male_relative_bc"
	KeySmoke          = "smoke"
	KeyAlcohol        = "alcohol"
	KeyExercise       = "exercise"
	KeyDiet           = "diet"
	KeyStress         = "stress"
	KeySleep          = "sleep"
	KeyTreatment      = "current_treatment"
	KeyCancerHistory  = "cancer_history"
	KeyBenignCondition = "benign_condition"
	KeyChestRadiation = "chest_radiation"
	KeyBiopsy         = "biopsy"
	KeyHormoneTherapy = "hormone_therapy"
	KeyBirthControl   = "birth_control"
	KeyMenopauseAge   = "menopause_age"
	KeyMenarcheAge    = "menarche_age"
	KeyFirstPregnancy = "first_pregnancy_age"
	KeyBreastfeeding  = "breastfeeding"
	KeyDenseBreast    = "dense_breast"
	KeyBodyType       = "body_type"
	KeyWeight         = "weight" // kilograms
	KeyHeight         = "height" // centimetres
	KeyBMI            = "bmi"
	KeyObesity        = "obesity"
	KeyLastMammogram  = "last_mammogram"
)

const defaultAge = 30

// Normalize returns a copy of raw with derived fields computed once:
//
//   - age is parsed and rewritten as a plain integer string, defaulting to 30
//     when absent or unparseable
//   - bmi is computed from weight/height when both are present and bmi is
//     not already supplied; it is never defaulted
//   - obesity is set to "Yes" iff the computed BMI is >= 30
//
// The caller's map is never mutated. Normalize is deterministic: identical
// input always yields an identical normalized set.
func Normalize(raw AnswerSet) AnswerSet {
	norm := make(AnswerSet, len(raw)+2)
	for k, v := range raw {
		norm[k] = strings.TrimSpace(v)
	}

	norm[KeyAge] = strconv.Itoa(parseAge(norm[KeyAge]))

	if _, ok := norm[KeyBMI]; !ok {
		if bmi, ok := computeBMI(norm[KeyWeight], norm[KeyHeight]); ok {
			norm[KeyBMI] = strconv.FormatFloat(bmi, 'f', 1, 64)
		}
	}
	if bmi, ok := BMI(norm); ok && bmi >= 30 {
		norm[KeyObesity] = "Yes"
	}

	return norm
}

// Age returns the subject's age from a normalized set. It tolerates raw
// (un-normalized) input by falling back to the default of 30.
func Age(a AnswerSet) int {
	return parseAge(a[KeyAge])
}

// BMI returns the body-mass index and whether one is available. BMI is only
// ever computed or caller-supplied, never defaulted.
func BMI(a AnswerSet) (float64, bool) {
	v, ok := a[KeyBMI]
	if !ok || v == "" {
		return 0, false
	}
	bmi, err := strconv.ParseFloat(v, 64)
	if err != nil || bmi <= 0 {
		return 0, false
	}
	return bmi, true
}

func parseAge(v string) int {
	age, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || age <= 0 || age > 120 {
		return defaultAge
	}
	return age
}

func computeBMI(weight, height string) (float64, bool) {
	w, errW := strconv.ParseFloat(strings.TrimSpace(weight), 64)
	h, errH := strconv.ParseFloat(strings.TrimSpace(height), 64)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, false
	}
	m := h / 100 // answers carry height in centimetres
	return w / (m * m), true
}

// answerIs reports whether the answer for key equals want, ignoring case and
// surrounding whitespace. Absent keys never match.
func answerIs(a AnswerSet, key, want string) bool {
	v, ok := a[key]
	if !ok {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(v), want)
}

// answerHas reports whether the answer for key contains the substring,
// case-insensitively. Absent keys never match.
func answerHas(a AnswerSet, key, substr string) bool {
	v, ok := a[key]
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(v), strings.ToLower(substr))
}

// answerYes reports whether the answer for key starts with "Yes".
func answerYes(a AnswerSet, key string) bool {
	v, ok := a[key]
	if !ok {
		return false
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(v)), "yes")
}

// answerInt parses the answer for key as an integer. Returns ok=false when
// the key is absent or not numeric.
func answerInt(a AnswerSet, key string) (int, bool) {
	v, ok := a[key]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}
