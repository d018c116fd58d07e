package password

type Level struct {
	Label string `json:"label"`
	Class string `json:"class"`
}

var (
	LevelWeak   = Level{Label: "Weak", Class: "strength-weak"}
	LevelMedium = Level{Label: "Medium", Class: "strength-medium"}
	LevelStrong = Level{Label: "Strong", Class: "strength-strong"}
)

// Classify maps a strength score to the level shown by the indicator.
func Classify(score int) Level {
	switch {
	case score < minimumScore:
		return LevelWeak
	case score < strongScore:
		return LevelMedium
	default:
		return LevelStrong
	}
}

// Text is the indicator text, e.g. "Medium Password".
func (l Level) Text() string {
	return l.Label + " Password"
}

// Report bundles everything the strength indicator needs for one password.
type Report struct {
	Score       int     `json:"score"`
	Level       Level   `json:"level"`
	EntropyBits float64 `json:"entropy_bits"`
}

func NewReport(password string) Report {
	score := Strength(password)
	return Report{
		Score:       score,
		Level:       Classify(score),
		EntropyBits: Entropy(password),
	}
}
