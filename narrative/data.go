package narrative

// Clause-level scores, one per clause, in [-5, 5].

var yeXianScores = []int{
	0, 0, 0, -3, 1, 3, 2, 4, -5, -4, -4,
	2, 3, 2, 2, 0, 1, 3, 5, 4,
	-2, -3, 2, -3, -2, -3, -2, -4,
	-4, -5, -3, -2, -5, 1, -4, -3, -3,
	0, -4, -5,
	1, 3, 2, 2, -3, -2, 3, 4, 4,
	2, 5,
	2, 0, -3, 1, 2, 4, 4, -2, -3, -3, -2, -1, 0,
	0, 1, 1,
	0, 0, 2, 2, 0, 1, 0, -1, 0, -1, 3, 3,
	-2, -3, -1, 0, -1, -2,
	0, 0, 2, 3, 4, 3, 5, 2, 4,
	-3, 1, 0, -1, 1, 2,
	2, 5, -3, -2, 3, -4, 1, 2, 2, -3, -2, -4,
}

var yeXianSegments = []Segment{
	{Name: "Opening", From: 1, To: 11},
	{Name: "Fish friendship", From: 12, To: 20},
	{Name: "Discovery", From: 21, To: 28},
	{Name: "Murder", From: 29, To: 37},
	{Name: "Grief", From: 38, To: 40},
	{Name: "Divine intervention", From: 41, To: 49},
	{Name: "Magic works", From: 50, To: 51},
	{Name: "Festival", From: 52, To: 64},
	{Name: "Return", From: 65, To: 67},
	{Name: "Shoe journey", From: 68, To: 79},
	{Name: "Investigation", From: 80, To: 85},
	{Name: "Recognition", From: 86, To: 94},
	{Name: "Stepfamily fate", From: 95, To: 100},
	{Name: "Marriage & decline", From: 101, To: 112},
}

var perraultScores = []int{
	0, -3, -2, -2, 0, 4, 4,
	0, -3, -4, -4, -4, -3, -3, -3, -4, -2, -2, -1,
	-3, -3, -3, -4,
	0, -2, -3, -4, -1, -1, 1, 4, 3,
	3, 3, 2, 2, 3, 2, -3, -3, -2,
	1, 2, 2, 0, 3, 3,
	2, 2, 1, 3, 3, 2, 0,
	0, -1, -3, -2, -3, -5, 2, 3, 3,
	-1, 2, -1, -1, 0,
	3, 0, -2,
	-1, -3, 0, 1, -2, -3,
	2, 2, -1, 3, 4,
	1, 1, 2, 0, 0,
	0, 0, 2, 5,
	0, 0, 1, 3, 4, 4, 3,
	0, 1, 1, 2, 0, 2, 3, 3,
	1, 0, 0, 3, 3, 4, 3,
	3, 3, -1, -3,
	3, 5, 5, 5, 5,
	4, 1, -1, -2, -2, -2, -3, 2,
	5, 3, 3, 4, 3,
	2, 2, 1, 4, 4, 5,
	3, 2, 2, 2,
	4, 4, 5, 5,
	2, 3, 4, 2,
	0, 2, -1,
	2, 3, 3,
	2, 0, 1, 0, 1, 1, 2,
	1, 2, 4, 3, 3,
	4, 0, 0, 3,
	2, 1, -1, -1, -2, -3, -5, -4, 1, 2, 2,
	2, 3, 5, 4, -2, -3, -2, -1,
	0, -1, 2, -2, -2, -3, -2, 1, 1,
	0, -1, -2, -3,
	0, 1, 0, 1, -1, 1, 3, 2, 3,
	0, 3, 4,
	2, 1, -1, 0, -2, -2,
	0, 2, 3, -3, 0, 1, 3, 3, 3, 2, 2, 4, 4, 2, 4, 4,
	3, 4, 5,
	3, 1, 2, 3, 4, 5, 5,
	4, 5, 4, 4, 5, 4,
}

var perraultSegments = []Segment{
	{Name: "Opening", From: 1, To: 7},
	{Name: "Mistreatment", From: 8, To: 19},
	{Name: "Father's powerlessness", From: 20, To: 23},
	{Name: "Naming", From: 24, To: 32},
	{Name: "Ball invitation", From: 33, To: 41},
	{Name: "Preparations", From: 42, To: 47},
	{Name: "Getting ready", From: 48, To: 54},
	{Name: "Cruel mockery", From: 55, To: 63},
	{Name: "Final preparations", From: 64, To: 68},
	{Name: "Departure", From: 69, To: 71},
	{Name: "Cinderella's tears", From: 72, To: 77},
	{Name: "Fairy godmother", From: 78, To: 82},
	{Name: "Transformation begins", From: 83, To: 87},
	{Name: "Pumpkin to coach", From: 88, To: 91},
	{Name: "Mice to horses", From: 92, To: 98},
	{Name: "Rat to coachman", From: 99, To: 106},
	{Name: "Lizards to footmen", From: 107, To: 113},
	{Name: "Key question", From: 114, To: 117},
	{Name: "Dress transformation peak", From: 118, To: 122},
	{Name: "Warning", From: 123, To: 130},
	{Name: "Arrival at ball", From: 131, To: 135},
	{Name: "The sensation", From: 136, To: 141},
	{Name: "Effect on others", From: 142, To: 145},
	{Name: "Dancing with prince", From: 146, To: 149},
	{Name: "Kindness to sisters", From: 150, To: 153},
	{Name: "First departure", From: 154, To: 156},
	{Name: "Return home", From: 157, To: 159},
	{Name: "Sisters return", From: 160, To: 166},
	{Name: "Sisters tell about ball", From: 167, To: 171},
	{Name: "Cinderella's questions", From: 172, To: 175},
	{Name: "Request for dress", From: 176, To: 186},
	{Name: "Second ball", From: 187, To: 194},
	{Name: "Chase and slipper", From: 195, To: 203},
	{Name: "Guards' report", From: 204, To: 207},
	{Name: "Sisters report", From: 208, To: 216},
	{Name: "Proclamation", From: 217, To: 219},
	{Name: "The search", From: 220, To: 225},
	{Name: "Recognition", From: 226, To: 241},
	{Name: "Final transformation", From: 242, To: 244},
	{Name: "Recognition and forgiveness", From: 245, To: 251},
	{Name: "Happy ending", From: 252, To: 257},
}

var grimm1812Scores = []int{
	0, 3, 2, -3, -4, -1, -4, 2, 1, 3, 3, 3, 1, -5, -4, 2, 0, 1,
	0, 0, 1, -2, -1, 0, 1, -3, -1, -2, -4,
	-3, -2, -3, -2, -3, -3, -2, -2, -3, -2, -3, -2, -2, -4, -3, -3, -3, -3, -3, -2, -2, -2,
	2, 3, 2, 1, -1, -2, -2, 0, -1, 0, -3, -2, -2, -3, -2, -2, -3, -3, -2, -1, -2, -2, -3,
	-1, -2, -2, -3, -1, -3, -3, -3, -2, -3, -1, 0, 3, 2, 2, 4, 3, 2, 3, 3, 3, 4, 4, 3,
	1, 0, 1, 1, 0, 2, -1, 2, 0, 0, -3, -2,
	-1, -2, -1, 0, 1, 0, -2, -3, -2, -1, -2, -3, -2, -3, -2,
	3, 2, 4, 3, 2, 3, 3, 3, 4, 1, 2, 3, 4, 4, 3, 4, 4, 3, 2, 1,
	3, 4, 4, 3, 4, 3, 2, 3, 3, 2, 1, 0, 0, -1, -2,
	-1, -2, -2, -3, -2, -3, -2, -1, -2, -3, -2, -3, -2, -2, -1,
	3, 2, 4, 3, 2, 3, 3, 4, 5, 5, 4, 5, 5, 4, 3, 4, 4, 3, 2, 3,
	4, 5, 5, 4, 3, 3, 2, 1, 0, -2, -3, -2, -1, 1, 2, 1, 0, -1, -2, -1,
	2, 3, 2, 1, 0, -1, -2, -1, 0, 1, 2, 1, 0, -1, -2,
	-2, -3, -3, -4, -3, -4, -3, -2, -1, 0, 1, -2, -4, -3, -2,
	-2, -3, -3, -4, -4, -4, -3, -2, -1, 0, 1, -2, -4, -3, -2,
	-1, 0, 1, 2, 3, 2, 3, 4, 5, 5, 4, 5, 4, 3, 5,
}

var grimm1812Segments = []Segment{
	{Name: "Opening & death", From: 1, To: 18},
	{Name: "Stepfamily", From: 19, To: 29},
	{Name: "Abuse", From: 30, To: 51},
	{Name: "Ball prep", From: 52, To: 74},
	{Name: "First help", From: 75, To: 98},
	{Name: "Untitled", From: 99, To: 110},
	{Name: "Second prep", From: 111, To: 125},
	{Name: "Second help", From: 126, To: 145},
	{Name: "Second ball", From: 146, To: 160},
	{Name: "Third prep", From: 161, To: 175},
	{Name: "Golden dress", From: 176, To: 195},
	{Name: "Ball & shoe", From: 196, To: 215},
	{Name: "Shoe search", From: 216, To: 230},
	{Name: "First sister", From: 231, To: 245},
	{Name: "Second sister", From: 246, To: 260},
	{Name: "Recognition", From: 261, To: 275},
}

var grimm1857Scores = []int{
	-2, -3, -2, 1, 3, 2, 2, -5, -2, -3, 1, 0, 1, -2,
	-1, 1, -3, -4, -3, -2, -3, -3, -2, -2, -3, -3, -2, -3, -2, -2, -4, -3, -3, -3, -2, -3, -3, -2, -2,
	0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 1, 0, 2, 1, 0, 2, 1, 3, 1, 0, 3, 2, 4,
	2, 2, 1, 2, 1, 1, -1, -2, -2, 0, -1, -3, -3, -2, -3, -2, -3, -2, -1, -2, -2, 1,
	0, 2, 2, 2, 1, 3, 3, 4, 2, 2, 3, 3, 4, 1, 2, 3, 3, -3, -3, -3,
	-3, -3, -3, 1, -2, 0, 2, 2, 2, 1, 3, 3, 4, 2, 2, 3, 3, 4, 1, -3,
	1, 1, 2, 3, 4, 4, 3, 3, 4, 4, 4, 3, 4, 4, 5, 4, 4, 4,
	3, 2, 1, 0, -1, 1, 2, 1, 0, -1, -2, -1, 0, 1, 1, 0, -1, -1,
	0, 1, 1, 2, 3, 4, 4, 3, 3, 4, 5, 4, 4, 4, 4,
	3, 2, 1, 0, -1, 1, 2, 1, 0, -1, -2, -1, 0, 1, 0,
	0, 1, 1, 2, 3, 4, 5, 5, 4, 4, 5, 5, 4, 4, 4,
	3, 2, 1, 0, -1, -2, -1, 2, 3, 2, 1, 0, -1, -1, 0,
	2, 3, 2, 1, 2, 1, 0, -1, -2, -3, -4, -3, -2, -1, 0,
	-2, -3, -3, -4, -3, -2, -1, 0, 1, -1, -4, -3, -2, -1, 0,
	-2, -3, -3, -4, -4, -3, -2, -1, 0, 1, -1, -4, -3, -2, 0,
	-1, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 4, 4, 5, 3, 2, 3, 4, 4,
	3, 4, 4, 3, 3, 2, 3, 3, 4, 4,
	2, 1, 0, -1, -2, -3, -4, -3, -2, -3, -4, -3, -2, -1, 0,
	-2, -3, -2, -1, 0,
}

var grimm1857Segments = []Segment{
	{Name: "Opening & death", From: 1, To: 14},
	{Name: "Abuse", From: 15, To: 39},
	{Name: "Hazel branch", From: 40, To: 62, Added: true},
	{Name: "Ball prep", From: 63, To: 84},
	{Name: "First help", From: 85, To: 104},
	{Name: "Second task", From: 105, To: 124},
	{Name: "First ball", From: 125, To: 142},
	{Name: "Escape", From: 143, To: 160},
	{Name: "Second ball", From: 161, To: 175},
	{Name: "Second escape", From: 176, To: 190},
	{Name: "Third ball", From: 191, To: 205},
	{Name: "Escape with shoe", From: 206, To: 220},
	{Name: "Shoe test", From: 221, To: 235},
	{Name: "First sister", From: 236, To: 250},
	{Name: "Second sister", From: 251, To: 265},
	{Name: "Recognition", From: 266, To: 285},
	{Name: "Wedding", From: 286, To: 295},
	{Name: "Eye pecking", From: 296, To: 310, Added: true},
	{Name: "Final", From: 311, To: 315},
}
