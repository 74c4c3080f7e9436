package narrative

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownVariant is returned by Lookup for an unrecognised key.
var ErrUnknownVariant = errors.New("narrative: unknown variant")

var yeXian = &Variant{
	Key:              "ye-xian",
	Name:             "Ye Xian",
	Origin:           "Tang Dynasty, China",
	Year:             850,
	Circa:            true,
	Figure:           1,
	Title:            "Figure 1. Ye Xian (c. 850 CE): Recognition Through Sacred Reciprocity",
	FileName:         "figure1_ye_xian",
	MediumColor:      "2c5aa0",
	HeavyColor:       "8B0000",
	CompareColor:     "8B0000",
	AnnotationOffset: 2.5,
	scores:           yeXianScores,
	segments:         yeXianSegments,
	annotations: []Annotation{
		{Clause: 9, Sentiment: -5, Label: "Father dies", Gloss: "父卒"},
		{Clause: 19, Sentiment: 5, Label: "Fish pillows head", Gloss: "魚必露首枕岸"},
		{Clause: 30, Sentiment: -5, Label: "Fish murdered", Gloss: "斫殺之"},
		{Clause: 51, Sentiment: 5, Label: "Bones respond", Gloss: "金璣衣食"},
		{Clause: 92, Sentiment: 5, Label: "Celestial beauty", Gloss: "色若天人"},
		{Clause: 112, Sentiment: -4, Label: "Bones stop", Gloss: "不復應"},
	},
}

var perrault = &Variant{
	Key:              "perrault",
	Name:             "Perrault",
	Origin:           "France, Cendrillon",
	Year:             1697,
	Figure:           2,
	Title:            "Figure 2. Perrault's Cendrillon (1697): Linguistic Violence and Material Escape",
	FileName:         "figure2_perrault",
	MediumColor:      "228B22",
	HeavyColor:       "006400",
	CompareColor:     "228B22",
	AnnotationOffset: 2,
	scores:           perraultScores,
	segments:         perraultSegments,
	annotations: []Annotation{
		{Clause: 27, Sentiment: -4, Label: "Culcendron"},
		{Clause: 60, Sentiment: -5, Label: "on rirait bien"},
		{Clause: 82, Sentiment: 4, Label: "Fairy godmother"},
		{Clause: 120, Sentiment: 5, Label: "Dress transformation"},
		{Clause: 148, Sentiment: 5, Label: "Contemplation"},
		{Clause: 182, Sentiment: -5, Label: "vilain Culcendron"},
		{Clause: 250, Sentiment: 5, Label: "Forgiveness"},
	},
}

var grimm1812 = &Variant{
	Key:              "grimm-1812",
	Name:             "Grimm",
	Origin:           "Germany, Aschenputtel, first edition",
	Year:             1812,
	Figure:           3,
	Title:            "Figure 3. Grimm's Aschenputtel (1812): Triadic Ascension Through Productive Suffering",
	FileName:         "figure3_grimm_1812",
	MediumColor:      "4169E1",
	HeavyColor:       "8B4513",
	CompareColor:     "4169E1",
	AnnotationOffset: 2,
	scores:           grimm1812Scores,
	segments:         grimm1812Segments,
	annotations: []Annotation{
		{Clause: 14, Sentiment: -5, Label: "Mother dies", Gloss: "verschied"},
		{Clause: 91, Sentiment: 4, Label: "Doves help", Gloss: "Tauben"},
		{Clause: 140, Sentiment: 4, Label: "Silver dress"},
		{Clause: 184, Sentiment: 5, Label: "Golden dress", Gloss: "ganz golden"},
		{Clause: 197, Sentiment: 5, Label: "Prince dances"},
		{Clause: 234, Sentiment: -4, Label: "Blood in shoe", Gloss: "Blut im Schuck"},
		{Clause: 269, Sentiment: 5, Label: "Recognition", Gloss: "erkannte er"},
	},
}

var grimm1857 = &Variant{
	Key:              "grimm-1857",
	Name:             "Grimm",
	Origin:           "Germany, Aschenputtel, seventh edition",
	Year:             1857,
	Figure:           4,
	Title:            "Figure 4. Grimm's Aschenputtel (1857): Christianization and Divine Retribution",
	FileName:         "figure4_grimm_1857",
	MediumColor:      "9932CC",
	HeavyColor:       "4B0082",
	CompareColor:     "9932CC",
	AnnotationOffset: 2,
	scores:           grimm1857Scores,
	segments:         grimm1857Segments,
	annotations: []Annotation{
		{Clause: 5, Sentiment: 3, Label: "God invoked", Gloss: "der liebe Gott"},
		{Clause: 8, Sentiment: -5, Label: "Mother dies", Gloss: "verschied"},
		{Clause: 57, Sentiment: 3, Label: "Tree grows", Gloss: "schöner Baum"},
		{Clause: 139, Sentiment: 5, Label: "Dancing", Gloss: "tanzte mit ihm"},
		{Clause: 197, Sentiment: 5, Label: "Golden shoes", Gloss: "ganz golden"},
		{Clause: 276, Sentiment: 5, Label: "Recognition", Gloss: "erkannte er"},
		{Clause: 302, Sentiment: -4, Label: "Eyes pecked", Gloss: "Auge aus"},
	},
}

var all = []*Variant{yeXian, perrault, grimm1812, grimm1857}

// YeXian returns the Tang Dynasty tale recorded by Duan Chengshi (112 clauses).
func YeXian() *Variant { return yeXian }

// Perrault returns Perrault's Cendrillon (257 clauses).
func Perrault() *Variant { return perrault }

// Grimm1812 returns the first-edition Aschenputtel (275 clauses).
func Grimm1812() *Variant { return grimm1812 }

// Grimm1857 returns the seventh-edition Aschenputtel (315 clauses).
func Grimm1857() *Variant { return grimm1857 }

// All returns the variants in publication order.
func All() []*Variant {
	out := make([]*Variant, len(all))
	copy(out, all)
	return out
}

// Keys returns the lookup keys in publication order.
func Keys() []string {
	keys := make([]string, len(all))
	for i, v := range all {
		keys[i] = v.Key
	}
	return keys
}

// Lookup finds a variant by key, ignoring case and surrounding space.
func Lookup(key string) (*Variant, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	for _, v := range all {
		if v.Key == k {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownVariant, key, strings.Join(Keys(), ", "))
}
