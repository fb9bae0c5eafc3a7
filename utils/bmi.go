package utils

// BMI is the body mass index derived from a user's profile.
type BMI struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
}

// BodyMassIndex returns nil when height or weight is unknown or outside a
// plausible adult range (50-250 cm, 10-400 kg).
func BodyMassIndex(heightCm, weightKg *float64) *BMI {
	if heightCm == nil || weightKg == nil {
		return nil
	}
	h, w := *heightCm, *weightKg
	if h < 50 || h > 250 || w < 10 || w > 400 {
		return nil
	}
	m := h / 100.0
	v := w / (m * m)
	return &BMI{Value: v, Category: bmiCategory(v)}
}

func bmiCategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "underweight"
	case bmi < 25.0:
		return "normal"
	case bmi < 30.0:
		return "overweight"
	default:
		return "obese"
	}
}
