// Package keys defines the closed set of named keypad/function keys the
// terminal interpreter knows how to encode, and the tables used to turn
// one into an outbound byte sequence.
package keys

// Code identifies one key in the closed keypad/function-key enumeration.
// Values start at 0x100, above the ASCII range, so an ASCII code point
// converted to Code never collides with a named key; code points from
// 0x100 up share values with the named keys.
type Code int

const (
	Space Code = 0x100 + iota
	Tab
	Enter
	PF1
	PF2
	PF3
	PF4
	Home
	Left
	Up
	Right
	Down
	Prior
	PageUp
	Next
	PageDown
	End
	Begin
	Insert
	Equal
	Multiply
	Add
	Separator
	Subtract
	Decimal
	Divide
	Digit0
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
	F16
	F17
	F18
	F19
	F20
)

// toChar holds the plain-character mapping used when the terminal is NOT
// in application-numpad mode: most keys have no plain-character form (0).
var toChar = [...]byte{
	Space - Space:     0,
	Tab - Space:       '\t',
	Enter - Space:     '\r',
	PF1 - Space:       0,
	PF2 - Space:       0,
	PF3 - Space:       0,
	PF4 - Space:       0,
	Home - Space:      0,
	Left - Space:      0,
	Up - Space:        0,
	Right - Space:     0,
	Down - Space:      0,
	Prior - Space:     0,
	PageUp - Space:    0,
	Next - Space:      0,
	PageDown - Space:  0,
	End - Space:       0,
	Begin - Space:     0,
	Insert - Space:    0,
	Equal - Space:     0,
	Multiply - Space:  '*',
	Add - Space:       '+',
	Separator - Space: ',',
	Subtract - Space:  '-',
	Decimal - Space:   '.',
	Divide - Space:    '/',
	Digit0 - Space:    '0',
	Digit1 - Space:    '1',
	Digit2 - Space:    '2',
	Digit3 - Space:    '3',
	Digit4 - Space:    '4',
	Digit5 - Space:    '5',
	Digit6 - Space:    '6',
	Digit7 - Space:    '7',
	Digit8 - Space:    '8',
	Digit9 - Space:    '9',
}

// appSeqLast holds, for each key, the byte that terminates its SS3/CSI
// application sequence: an ASCII letter used directly, or a small integer
// encoded as a decimal CSI parameter before the '~' final byte (1-6 for
// the editing keys and keypad digits, 11-34 for F1-F20).
var appSeqLast = map[Code]byte{
	Space:     ' ',
	Tab:       'I',
	Enter:     'M',
	PF1:       'P',
	PF2:       'Q',
	PF3:       'R',
	PF4:       'S',
	Home:      1,
	Left:      'D',
	Up:        'A',
	Right:     'C',
	Down:      'B',
	Prior:     5,
	PageUp:    5,
	Next:      6,
	PageDown:  6,
	End:       4,
	Begin:     'E',
	Insert:    2,
	Equal:     'X',
	Multiply:  'j',
	Add:       'k',
	Separator: 'l',
	Subtract:  'm',
	Decimal:   0,
	Divide:    'o',
	Digit0:    2,
	Digit1:    4,
	Digit2:    'B',
	Digit3:    6,
	Digit4:    'D',
	Digit5:    'E',
	Digit6:    'C',
	Digit7:    1,
	Digit8:    'A',
	Digit9:    5,
	F1:        11,
	F2:        12,
	F3:        13,
	F4:        14,
	F5:        15,
	F6:        17,
	F7:        18,
	F8:        19,
	F9:        20,
	F10:       21,
	F11:       23,
	F12:       24,
	F13:       25,
	F14:       26,
	F15:       28,
	F16:       29,
	F17:       31,
	F18:       32,
	F19:       33,
	F20:       34,
}

// ToChar returns the plain-character encoding of code, or 0 if code has
// none (it must be encoded via ToAppSequence instead).
func ToChar(code Code) byte {
	i := int(code - Space)
	if i < 0 || i >= len(toChar) {
		return 0
	}
	return toChar[i]
}

// ToAppSequence encodes code as an SS3 (ESC O) or CSI (ESC [) application
// sequence appropriate for application-numpad/cursor-key mode. normCursor
// selects SS3 for the arrow keys too (DECCKM normal-cursor-keys mode).
// Returns nil if code has no application sequence.
func ToAppSequence(code Code, normCursor bool) []byte {
	last, ok := appSeqLast[code]
	if !ok || last == 0 {
		return nil
	}
	isSS3 := (code >= Space && code <= PF4) ||
		(code >= Multiply && code <= Divide) ||
		(normCursor && code >= Left && code <= Down)

	lead := byte('[')
	if isSS3 {
		lead = 'O'
	}

	switch {
	case last > 0 && last <= 9:
		return []byte{'\033', lead, '0' + last, '~'}
	case code >= F1 && code <= F20:
		return []byte{'\033', lead, '0' + last/10, '0' + last%10, '~'}
	default:
		return []byte{'\033', lead, last}
	}
}
