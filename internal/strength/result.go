package strength

import "fmt"

// Category is the coarse strength classification of a password.
type Category int

const (
	Weak Category = iota
	Medium
	Strong
)

// String returns the display label of the category.
func (c Category) String() string {
	switch c {
	case Weak:
		return "Weak"
	case Medium:
		return "Medium"
	case Strong:
		return "Strong"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the category as its label.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a category label.
func (c *Category) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Weak":
		*c = Weak
	case "Medium":
		*c = Medium
	case "Strong":
		*c = Strong
	default:
		return fmt.Errorf("unknown strength category %q", text)
	}
	return nil
}

// categorize maps a clamped score to its category.
func categorize(score int) Category {
	switch {
	case score >= 75:
		return Strong
	case score >= 50:
		return Medium
	default:
		return Weak
	}
}

// FeedbackKind tags a feedback line.
type FeedbackKind int

const (
	Pass FeedbackKind = iota
	Fail
	Warning
)

func (k FeedbackKind) String() string {
	switch k {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

func (k FeedbackKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *FeedbackKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "pass":
		*k = Pass
	case "fail":
		*k = Fail
	case "warning":
		*k = Warning
	default:
		return fmt.Errorf("unknown feedback kind %q", text)
	}
	return nil
}

// Feedback is one human-readable finding about a password.
type Feedback struct {
	Kind    FeedbackKind `json:"kind"`
	Message string       `json:"message"`
}

// Criteria reports which baseline requirements a password satisfies.
// Length is met at 8 characters, below the top scoring tier.
type Criteria struct {
	Length    bool `json:"length"`
	Lowercase bool `json:"lowercase"`
	Uppercase bool `json:"uppercase"`
	Numbers   bool `json:"numbers"`
	Special   bool `json:"special"`
}

// Result is the outcome of analyzing one password.
type Result struct {
	Score     int        `json:"score"`
	Strength  Category   `json:"strength"`
	Feedback  []Feedback `json:"feedback"`
	Criteria  Criteria   `json:"criteria"`
	Entropy   float64    `json:"entropy"`
	CrackTime string     `json:"crack_time"`
}
