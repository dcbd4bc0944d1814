package journal

const twemojiBase = "https://cdn.jsdelivr.net/gh/twitter/twemoji@14.0.2/assets/svg/"

var moodEmojis = [...]string{
	"😊", "😍", "😌", "🥰", "😎",
	"😢", "😞", "😡", "😴", "🤔",
}

// MoodEmojis returns the moods an entry can be recorded with, in picker order.
func MoodEmojis() []string {
	out := make([]string, len(moodEmojis))
	copy(out, moodEmojis[:])
	return out
}

// IsMoodEmoji reports whether s is one of the supported moods.
func IsMoodEmoji(s string) bool {
	for _, m := range moodEmojis {
		if m == s {
			return true
		}
	}
	return false
}

// StickerDef is a catalog sticker before it is placed on a page.
type StickerDef struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	ImageURL string `json:"imageUrl"`
}

// StickerCategoryAll selects every category in Stickers.
const StickerCategoryAll = "all"

var stickerCategories = [...]string{"animals", "flowers", "food", "weather", "objects"}

var stickerCatalog = map[string][]StickerDef{
	"animals": {
		{ID: "dog", Type: "animals", ImageURL: twemojiBase + "1f436.svg"},
		{ID: "cat", Type: "animals", ImageURL: twemojiBase + "1f431.svg"},
		{ID: "bear", Type: "animals", ImageURL: twemojiBase + "1f43b.svg"},
		{ID: "rabbit", Type: "animals", ImageURL: twemojiBase + "1f430.svg"},
		{ID: "fox", Type: "animals", ImageURL: twemojiBase + "1f98a.svg"},
		{ID: "deer", Type: "animals", ImageURL: twemojiBase + "1f98c.svg"},
		{ID: "panda", Type: "animals", ImageURL: twemojiBase + "1f43c.svg"},
		{ID: "penguin", Type: "animals", ImageURL: twemojiBase + "1f427.svg"},
	},
	"flowers": {
		{ID: "sunflower", Type: "flowers", ImageURL: twemojiBase + "1f33b.svg"},
		{ID: "rose", Type: "flowers", ImageURL: twemojiBase + "1f339.svg"},
		{ID: "tulip", Type: "flowers", ImageURL: twemojiBase + "1f337.svg"},
		{ID: "blossom", Type: "flowers", ImageURL: twemojiBase + "1f338.svg"},
		{ID: "hibiscus", Type: "flowers", ImageURL: twemojiBase + "1f33a.svg"},
		{ID: "daisy", Type: "flowers", ImageURL: twemojiBase + "1f33c.svg"},
	},
	"food": {
		{ID: "strawberry", Type: "food", ImageURL: twemojiBase + "1f353.svg"},
		{ID: "cake", Type: "food", ImageURL: twemojiBase + "1f370.svg"},
		{ID: "cookie", Type: "food", ImageURL: twemojiBase + "1f36a.svg"},
		{ID: "candy", Type: "food", ImageURL: twemojiBase + "1f36c.svg"},
	},
	"weather": {
		{ID: "rainbow", Type: "weather", ImageURL: twemojiBase + "1f308.svg"},
		{ID: "sun", Type: "weather", ImageURL: twemojiBase + "2600.svg"},
		{ID: "cloud", Type: "weather", ImageURL: twemojiBase + "2601.svg"},
		{ID: "moon", Type: "weather", ImageURL: twemojiBase + "1f319.svg"},
	},
	"objects": {
		{ID: "heart", Type: "objects", ImageURL: twemojiBase + "2764.svg"},
		{ID: "star", Type: "objects", ImageURL: twemojiBase + "2b50.svg"},
		{ID: "sparkles", Type: "objects", ImageURL: twemojiBase + "2728.svg"},
		{ID: "balloon", Type: "objects", ImageURL: twemojiBase + "1f388.svg"},
	},
}

// StickerCategories lists the catalog categories, "all" first.
func StickerCategories() []string {
	return append([]string{StickerCategoryAll}, stickerCategories[:]...)
}

// IsStickerCategory reports whether t names a concrete catalog category.
func IsStickerCategory(t string) bool {
	_, ok := stickerCatalog[t]
	return ok
}

// Stickers returns the catalog for one category, or every sticker for "all"
// (or an empty category). ok is false for unknown categories.
func Stickers(category string) (defs []StickerDef, ok bool) {
	if category == "" || category == StickerCategoryAll {
		for _, c := range stickerCategories {
			defs = append(defs, stickerCatalog[c]...)
		}
		return defs, true
	}
	src, ok := stickerCatalog[category]
	if !ok {
		return nil, false
	}
	return append([]StickerDef(nil), src...), true
}

// Playlist is a music recommendation shown next to an entry.
type Playlist struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	YouTubeURL  string `json:"youtubeUrl,omitempty"`
}

var moodPlaylists = map[string][]Playlist{
	"😊": {
		{"Happy Hits", "Upbeat and cheerful songs to maintain your happy mood", twemojiBase + "1f3b6.svg", "https://www.youtube.com/watch?v=I140iNpx1xM"},
		{"Good Vibes", "Feel-good tunes for a positive day", twemojiBase + "1f3b5.svg", "https://www.youtube.com/watch?v=Ln4KSN0rchI"},
		{"Sunshine Pop", "Bright and sunny melodies to brighten your day", twemojiBase + "1f31e.svg", "https://www.youtube.com/watch?v=HyHNuVaZJ-k&list=PLhd1HyMTk3f5PzRjJzmzH7kkxjfkz9rOZ"},
	},
	"😍": {
		{"Love Songs", "Romantic tunes for when you're feeling love", twemojiBase + "1f3b6.svg", ""},
		{"Dreamy Romance", "Soft and tender melodies for those loving moments", twemojiBase + "1f3b5.svg", ""},
		{"Sweet Serenades", "Beautiful ballads that speak to the heart", twemojiBase + "1f498.svg", ""},
	},
	"😌": {
		{"Peaceful Calm", "Gentle melodies for your relaxed state of mind", twemojiBase + "1f3b6.svg", ""},
		{"Tranquil Moments", "Serene sounds to enhance your contentment", twemojiBase + "1f3b5.svg", ""},
		{"Gentle Flow", "Easy listening that moves at your pace", twemojiBase + "1f30a.svg", ""},
	},
	"🥰": {
		{"Heartfelt Hits", "Warm songs for an affectionate day", twemojiBase + "1f3b6.svg", ""},
		{"Warm & Cozy", "Comforting tracks to wrap yourself in", twemojiBase + "1f3b5.svg", ""},
		{"Sweet Melodies", "Tender tunes for a full heart", twemojiBase + "1f496.svg", ""},
	},
	"😎": {
		{"Confidence Boost", "Bold tracks for when you own the day", twemojiBase + "1f3b6.svg", ""},
		{"Swagger Sounds", "Cool beats with attitude", twemojiBase + "1f3b5.svg", ""},
		{"Smooth Grooves", "Laid-back rhythms for a relaxed cool", twemojiBase + "1f3b8.svg", ""},
	},
	"😢": {
		{"Melancholy Melodies", "Songs that understand how you feel", twemojiBase + "1f3b6.svg", "https://www.youtube.com/watch?v=60ItHLz5WEA&list=PLw-VjHDlEOgvWPpRBs9FRGgJcKpDimTqf"},
		{"Healing Tunes", "Gentle music to help you heal", twemojiBase + "1f3b5.svg", "https://www.youtube.com/watch?v=6Ejga4kJUts&list=PLCVGGn6GhhDtYomlFrJ-cUxdpC5e2gNiP"},
		{"Rainy Day Reflections", "Quiet songs for a reflective mood", twemojiBase + "1f327.svg", "https://www.youtube.com/watch?v=M_nGCIASWHA&list=PL-xO__JU8YNTDb5x3sRsWmEuJZW9vJZ0U"},
	},
	"😞": {
		{"Blue Mood", "Songs for when you're feeling down", twemojiBase + "1f3b6.svg", ""},
		{"Uplift Your Spirit", "Encouraging music to lift you up", twemojiBase + "1f3b5.svg", ""},
		{"Tomorrow Is New", "Hopeful songs for a fresh start", twemojiBase + "1f305.svg", ""},
	},
	"😡": {
		{"Release The Tension", "High-energy tracks to let it out", twemojiBase + "1f3b6.svg", ""},
		{"Calm The Storm", "Soothing music to cool down", twemojiBase + "1f3b5.svg", ""},
		{"Power Through", "Driving beats to channel the energy", twemojiBase + "26a1.svg", ""},
	},
	"😴": {
		{"Sleep Sounds", "Soft sounds to help you drift off", twemojiBase + "1f3b6.svg", ""},
		{"Dream Journey", "Ambient music for a restful mind", twemojiBase + "1f3b5.svg", ""},
		{"Night Whispers", "Quiet melodies for late hours", twemojiBase + "1f319.svg", ""},
	},
	"🤔": {
		{"Focus Flow", "Instrumental music for deep thinking", twemojiBase + "1f3b6.svg", ""},
		{"Deep Thoughts", "Contemplative tracks for reflection", twemojiBase + "1f3b5.svg", ""},
		{"Mind Expansion", "Music to open new perspectives", twemojiBase + "1f9e0.svg", ""},
	},
}

var defaultPlaylists = []Playlist{
	{"Mood Mix", "A balanced mix of songs for any mood", twemojiBase + "1f3b6.svg", "https://www.youtube.com/watch?v=kTJczUoc26U&list=PLfOG5qRn-NH5sTwG5_XQWlRKWUZnqYN6f"},
	{"Daily Discovery", "New music to discover regardless of your mood", twemojiBase + "1f3b5.svg", "https://www.youtube.com/watch?v=CvUK-YWYcaE&list=PLO2MyApnT0PKMeBKzPz0y43QHwSnXSvxD"},
	{"Timeless Classics", "Songs that never go out of style", twemojiBase + "1f3b8.svg", "https://www.youtube.com/watch?v=C4p_Oyez1JI&list=PLf8_TFoQQLQqsOQR02EgMTJqpLqDJN9vS"},
}

// PlaylistsFor returns recommendations for a mood, falling back to a
// general mix for moods without a curated list.
func PlaylistsFor(mood string) []Playlist {
	if p, ok := moodPlaylists[mood]; ok {
		return append([]Playlist(nil), p...)
	}
	return append([]Playlist(nil), defaultPlaylists...)
}
