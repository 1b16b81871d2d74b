package sys

import (
	"fmt"
	"unicode"
)

// Key is a printable character or a control code.
type Key int32

const (
	// KeyNone is the "nothing pending" code of the integer ABI. Keyboards
	// never deliver it as a key: NUL input (^@, ^Space) is dropped.
	KeyNone      Key = 0
	KeyInterrupt Key = 0x03 // ^C
	KeyCtrlQ     Key = 0x11 // ^Q
	KeyEscape    Key = 0x1b
	KeyDelete    Key = 0x7f
)

func (k Key) String() string {
	switch {
	case k == KeyNone:
		return `NUL`
	case k == KeyEscape:
		return `ESC`
	case k == KeyDelete:
		return `DEL`
	case k > 0 && k < 0x20:
		return `^` + string(rune('@'+k))
	case k < 0 || k > unicode.MaxRune:
		return fmt.Sprintf(`key(%d)`, int32(k))
	case unicode.IsPrint(rune(k)):
		return fmt.Sprintf(`%q`, rune(k))
	}
	return fmt.Sprintf(`%U`, rune(k))
}

// IsControl reports whether k is a C0 control code or DEL.
func (k Key) IsControl() bool { return (k >= 0 && k < 0x20) || k == KeyDelete }
