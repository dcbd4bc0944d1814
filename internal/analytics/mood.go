// Package analytics derives mood statistics from journal entries.
//
// Everything here is a pure function of its inputs: no package state is
// written, so every function is safe to call from concurrent requests.
// Dates are compared at calendar-day granularity (see journal.Civil).
package analytics

// Category is a coarse emotional bucket derived from a mood emoji.
type Category string

const (
	Happy   Category = "happy"
	Sad     Category = "sad"
	Angry   Category = "angry"
	Love    Category = "love"
	Neutral Category = "neutral"
)

var categories = [...]Category{Happy, Sad, Angry, Love, Neutral}

var moodCategories = map[string]Category{
	"😊": Happy,
	"😌": Happy,
	"😎": Happy,
	"😍": Love,
	"🥰": Love,
	"😢": Sad,
	"😞": Sad,
	"😡": Angry,
	"😴": Neutral,
	"🤔": Neutral,
}

// Categories returns every category in enumeration order, which is also
// the tie-break order used by Distribution.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories[:])
	return out
}

// Classify maps a mood emoji to its category. Unknown input is Neutral.
func Classify(mood string) Category {
	if c, ok := moodCategories[mood]; ok {
		return c
	}
	return Neutral
}

// Label is the display name of c.
func (c Category) Label() string {
	switch c {
	case Happy:
		return "Happy"
	case Sad:
		return "Sad"
	case Angry:
		return "Angry"
	case Love:
		return "Love"
	case Neutral:
		return "Neutral"
	default:
		return string(c)
	}
}

// RepresentativeEmoji picks the emoji used for c in legends. The neutral
// legend is 😌, which Classify files under happy.
func RepresentativeEmoji(c Category) string {
	switch c {
	case Happy:
		return "😊"
	case Sad:
		return "😢"
	case Angry:
		return "😡"
	case Love:
		return "😍"
	case Neutral:
		return "😌"
	default:
		return ""
	}
}

func (c Category) order() int {
	for i, x := range categories {
		if x == c {
			return i
		}
	}
	return len(categories)
}
