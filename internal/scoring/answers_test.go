package scoring

import "testing"

func TestNormalize_DefaultsAge(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"absent", "", "30"},
		{"non-numeric", "forty", "30"},
		{"zero", "0", "30"},
		{"negative", "-5", "30"},
		{"over range", "130", "30"},
		{"valid", "47", "47"},
		{"whitespace", " 47 ", "47"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := AnswerSet{}
			if tt.in != "" {
				raw[KeyAge] = tt.in
			}
			norm := Normalize(raw)
			if got := norm[KeyAge]; got != tt.want {
				t.Errorf("age = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalize_DoesNotMutateCaller(t *testing.T) {
	raw := AnswerSet{KeyWeight: "70", KeyHeight: "170"}
	Normalize(raw)

	if len(raw) != 2 {
		t.Errorf("caller map grew to %d entries: %v", len(raw), raw)
	}
	if _, ok := raw[KeyAge]; ok {
		t.Error("caller map gained an age key")
	}
	if _, ok := raw[KeyBMI]; ok {
		t.Error("caller map gained a bmi key")
	}
}

func TestNormalize_ComputesBMI(t *testing.T) {
	norm := Normalize(AnswerSet{KeyWeight: "70", KeyHeight: "170"})

	if got := norm[KeyBMI]; got != "24.2" {
		t.Errorf("bmi = %q, want %q", got, "24.2")
	}
	if _, ok := norm[KeyObesity]; ok {
		t.Error("obesity set for BMI under 30")
	}
}

func TestNormalize_SetsObesityAtBMI30(t *testing.T) {
	norm := Normalize(AnswerSet{KeyWeight: "90", KeyHeight: "160"})

	if got := norm[KeyBMI]; got != "35.2" {
		t.Errorf("bmi = %q, want %q", got, "35.2")
	}
	if got := norm[KeyObesity]; got != "Yes" {
		t.Errorf("obesity = %q, want %q", got, "Yes")
	}
}

func TestNormalize_KeepsSuppliedBMI(t *testing.T) {
	norm := Normalize(AnswerSet{KeyBMI: "22.0", KeyWeight: "90", KeyHeight: "160"})

	if got := norm[KeyBMI]; got != "22.0" {
		t.Errorf("bmi = %q, want caller-supplied %q", got, "22.0")
	}
}

func TestNormalize_NeverDefaultsBMI(t *testing.T) {
	norm := Normalize(AnswerSet{KeyWeight: "70"}) // height missing

	if v, ok := norm[KeyBMI]; ok {
		t.Errorf("bmi = %q, want absent", v)
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	raw := AnswerSet{
		KeyAge:    "52",
		KeyWeight: "80",
		KeyHeight: "165",
		KeySmoke:  "Yes",
	}

	a := Normalize(raw)
	b := Normalize(raw)

	if len(a) != len(b) {
		t.Fatalf("sizes differ: %d vs %d", len(a), len(b))
	}
	for k, v := range a {
		if b[k] != v {
			t.Errorf("key %q: %q vs %q", k, v, b[k])
		}
	}
}

func TestAnswerHelpers(t *testing.T) {
	a := AnswerSet{
		KeySmoke:         "Yes, currently",
		KeyAlcohol:       "2 or more drinks per day",
		KeyEthnicity:     "  White ",
		KeyMenopauseAge:  "56",
		KeyFamilyHistory: "No",
	}

	if !answerYes(a, KeySmoke) {
		t.Error(`answerYes("Yes, currently") = false`)
	}
	if answerYes(a, KeyFamilyHistory) {
		t.Error(`answerYes("No") = true`)
	}
	if answerYes(a, KeyTreatment) {
		t.Error("answerYes on absent key = true")
	}
	if !answerHas(a, KeyAlcohol, "2 or more") {
		t.Error("answerHas substring match failed")
	}
	if answerHas(a, KeyDiet, "western") {
		t.Error("answerHas on absent key = true")
	}
	if !answerIs(a, KeyEthnicity, "white") {
		t.Error("answerIs should ignore case and whitespace")
	}
	if n, ok := answerInt(a, KeyMenopauseAge); !ok || n != 56 {
		t.Errorf("answerInt = %d, %v; want 56, true", n, ok)
	}
	if _, ok := answerInt(a, KeyFamilyHistory); ok {
		t.Error("answerInt on non-numeric answer = ok")
	}
}
