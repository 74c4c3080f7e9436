package narrative

import (
	"strconv"

	"github.com/cwbudde/cinderella-arcs/dsp/filter/savgol"
	"github.com/cwbudde/cinderella-arcs/dsp/interp"
	"github.com/cwbudde/cinderella-arcs/stats/series"
)

// Score bounds of the coding scheme.
const (
	MinScore = -5
	MaxScore = 5
)

// Segment is a named, inclusive range of clauses.
type Segment struct {
	Name string
	From int
	To   int
	// Added marks an episode absent from the earlier edition of the tale.
	Added bool
}

// Len returns the number of clauses in the segment.
func (s Segment) Len() int { return s.To - s.From + 1 }

// Annotation marks a key event on a figure.
type Annotation struct {
	Clause    int
	Sentiment int
	// Label is the caption drawn on the chart.
	Label string
	// Gloss is the original-language phrase, if any.
	Gloss string
}

// Variant is one retelling with its scores and figure metadata.
type Variant struct {
	Key    string
	Name   string
	Origin string
	// Year of composition or publication; approximate when Circa is set.
	Year  int
	Circa bool

	Figure   int
	Title    string
	FileName string

	// Hex colours of the medium and heavy smoothing curves and of the
	// variant's curve on the comparative figure.
	MediumColor  string
	HeavyColor   string
	CompareColor string
	// AnnotationOffset is the vertical distance between an annotated point
	// and its caption.
	AnnotationOffset float64

	scores      []int
	segments    []Segment
	annotations []Annotation
}

// Len returns the number of clauses.
func (v *Variant) Len() int { return len(v.scores) }

// Scores returns a copy of the clause scores.
func (v *Variant) Scores() []int {
	out := make([]int, len(v.scores))
	copy(out, v.scores)
	return out
}

// Values returns the clause scores as float64 samples.
func (v *Variant) Values() []float64 { return series.Ints(v.scores) }

// Segments returns a copy of the named segments in clause order.
func (v *Variant) Segments() []Segment {
	out := make([]Segment, len(v.segments))
	copy(out, v.segments)
	return out
}

// Annotations returns a copy of the figure annotations.
func (v *Variant) Annotations() []Annotation {
	out := make([]Annotation, len(v.annotations))
	copy(out, v.annotations)
	return out
}

// Label returns the display label used on the comparative figure,
// e.g. "Perrault (1697)" or "Ye Xian (c. 850 CE)".
func (v *Variant) Label() string {
	if v.Circa {
		return v.Name + " (c. " + strconv.Itoa(v.Year) + " CE)"
	}
	return v.Name + " (" + strconv.Itoa(v.Year) + ")"
}

// Smoothed returns the scores smoothed with the given window.
func (v *Variant) Smoothed(window int, opts ...savgol.Option) []float64 {
	return savgol.Smooth(v.Values(), window, opts...)
}

// Progression resamples the scores onto points evenly spaced over 0-100 %
// of the narrative and smooths the result with the given window.
func (v *Variant) Progression(points, window int, opts ...savgol.Option) []float64 {
	return savgol.Smooth(interp.Resample(v.Values(), points, interp.ModeLinear), window, opts...)
}

// SegmentAt returns the segment containing the 1-based clause.
func (v *Variant) SegmentAt(clause int) (Segment, bool) {
	for _, s := range v.segments {
		if clause >= s.From && clause <= s.To {
			return s, true
		}
	}
	return Segment{}, false
}

// SegmentScores returns the scores of one segment.
func (v *Variant) SegmentScores(s Segment) []int {
	if s.From < 1 || s.To > len(v.scores) || s.From > s.To {
		return nil
	}
	out := make([]int, s.Len())
	copy(out, v.scores[s.From-1:s.To])
	return out
}
