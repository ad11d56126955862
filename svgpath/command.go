package svgpath

// Command identifies an SVG path command, regardless
// of its absolute or relative form.
type Command uint8

const (
	MoveTo Command = iota
	LineTo
	HorizontalLineTo
	VerticalLineTo
	CubicTo
	SmoothCubicTo
	QuadraticTo
	SmoothQuadraticTo
	ArcTo
	ClosePath
)

var commandLetters = [...]byte{
	MoveTo:            'M',
	LineTo:            'L',
	HorizontalLineTo:  'H',
	VerticalLineTo:    'V',
	CubicTo:           'C',
	SmoothCubicTo:     'S',
	QuadraticTo:       'Q',
	SmoothQuadraticTo: 'T',
	ArcTo:             'A',
	ClosePath:         'Z',
}

func (c Command) String() string {
	if int(c) < len(commandLetters) {
		return string(commandLetters[c])
	}
	return "<invalid Command>"
}

// arity is the number of arguments of one group
func (c Command) arity() int {
	switch c {
	case HorizontalLineTo, VerticalLineTo:
		return 1
	case MoveTo, LineTo, SmoothQuadraticTo:
		return 2
	case SmoothCubicTo, QuadraticTo:
		return 4
	case CubicTo:
		return 6
	case ArcTo:
		return 7
	default:
		return 0
	}
}

// lookupCommand resolves a command letter. Lower case
// letters are the relative forms.
func lookupCommand(letter byte) (cmd Command, relative, ok bool) {
	relative = 'a' <= letter && letter <= 'z'
	if relative {
		letter -= 'a' - 'A'
	}
	for c, l := range commandLetters {
		if l == letter {
			return Command(c), relative, true
		}
	}
	return 0, false, false
}
