package transform

// Scale is a pitch-class set (semitone offsets from a root, 0..11).
type Scale struct {
	Name         string
	PitchClasses []int
}

// Catalog of named scales, grounded on the reference sequencer's scale
// table. PitchClasses are ascending offsets within one octave.
var Catalog = map[string]Scale{
	"acoustic":          {"acoustic", []int{0, 2, 4, 6, 7, 9, 10}},
	"altered":           {"altered", []int{0, 1, 3, 4, 6, 8, 10}},
	"augmented":         {"augmented", []int{0, 3, 4, 7, 8, 11}},
	"bebop":             {"bebop", []int{0, 2, 4, 5, 7, 9, 10, 11}},
	"blues":             {"blues", []int{0, 3, 5, 6, 7, 10}},
	"chromatic":         {"chromatic", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
	"dorian":            {"dorian", []int{0, 2, 3, 5, 7, 9, 10}},
	"double_harm":       {"double_harm", []int{0, 1, 4, 5, 7, 8, 11}},
	"enigmatic":         {"enigmatic", []int{0, 1, 4, 6, 8, 10, 11}},
	"flamenco":          {"flamenco", []int{0, 1, 4, 5, 7, 8, 11}},
	"gypsy":             {"gypsy", []int{0, 2, 3, 6, 7, 8, 10}},
	"half_diminished":   {"half_diminished", []int{0, 2, 3, 5, 6, 8, 10}},
	"hirajoshi":         {"hirajoshi", []int{0, 4, 6, 7, 11}},
	"insen":             {"insen", []int{0, 1, 5, 7, 10}},
	"ionian":            {"ionian", []int{0, 2, 4, 5, 7, 9, 11}},
	"iwato":             {"iwato", []int{0, 1, 5, 6, 10}},
	"locrian":           {"locrian", []int{0, 1, 3, 5, 6, 8, 10}},
	"locrian_sharp6":    {"locrian_sharp6", []int{0, 1, 3, 5, 6, 9, 10}},
	"lydian":            {"lydian", []int{0, 2, 4, 6, 7, 9, 11}},
	"lydian_augmented":  {"lydian_augmented", []int{0, 2, 4, 6, 8, 9, 11}},
	"lydian_diminished": {"lydian_diminished", []int{0, 2, 3, 6, 7, 9, 11}},
	"maj":               {"maj", []int{0, 2, 4, 5, 7, 9, 11}},
	"maj_harm":          {"maj_harm", []int{0, 2, 4, 5, 7, 8, 11}},
	"maj_hungarian":     {"maj_hungarian", []int{0, 3, 4, 6, 7, 9, 10}},
	"maj_locrian":       {"maj_locrian", []int{0, 2, 4, 5, 6, 8, 10}},
	"maj_neapolitan":    {"maj_neapolitan", []int{0, 1, 3, 5, 7, 9, 11}},
	"maj_pent":          {"maj_pent", []int{0, 2, 4, 7, 9}},
	"min_harm":          {"min_harm", []int{0, 2, 3, 5, 7, 8, 11}},
	"min_hungarian":     {"min_hungarian", []int{0, 2, 3, 6, 7, 8, 11}},
	"min_melodic":       {"min_melodic", []int{0, 2, 3, 5, 7, 9, 11}},
	"min_nat":           {"min_nat", []int{0, 2, 3, 5, 7, 8, 10}},
	"min_neapolitan":    {"min_neapolitan", []int{0, 1, 3, 5, 7, 8, 11}},
	"min_pent":          {"min_pent", []int{0, 3, 5, 7, 10}},
	"mixolydian":        {"mixolydian", []int{0, 2, 4, 5, 7, 9, 10}},
	"octatonic":         {"octatonic", []int{0, 2, 3, 5, 6, 8, 9, 11}},
	"persian":           {"persian", []int{0, 1, 4, 5, 6, 8, 11}},
	"phrygian":          {"phrygian", []int{0, 1, 3, 5, 7, 8, 10}},
	"phrygian_dominant": {"phrygian_dominant", []int{0, 1, 4, 5, 7, 8, 10}},
	"prometheus":        {"prometheus", []int{0, 2, 4, 6, 9, 10}},
	"tritone":           {"tritone", []int{0, 1, 4, 6, 7, 10}},
	"tritone_semi2":     {"tritone_semi2", []int{0, 1, 2, 6, 7, 8}},
	"ukrainian_dorian":  {"ukrainian_dorian", []int{0, 2, 3, 6, 7, 9, 10}},
	"whole_tone":        {"whole_tone", []int{0, 2, 4, 6, 8, 10}},
	"yo":                {"yo", []int{0, 2, 5, 7, 9}},
}
