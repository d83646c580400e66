package dispatch

import "spot/internal/keys"

func isCtrl(ev keys.KeyEvent, letter byte) bool {
	return ev.Ctrl && ev.Key == keys.Char && ev.Byte == letter
}

func isCtrlSpace(ev keys.KeyEvent) bool {
	return ev.Ctrl && ev.Key == keys.Char && ev.Byte == ' '
}

// hexVal reports the nibble value of a plain hex-digit keystroke.
func hexVal(ev keys.KeyEvent) (byte, bool) {
	if ev.Key != keys.Char || ev.Ctrl {
		return 0, false
	}
	switch {
	case ev.Byte >= '0' && ev.Byte <= '9':
		return ev.Byte - '0', true
	case ev.Byte >= 'a' && ev.Byte <= 'f':
		return ev.Byte - 'a' + 10, true
	case ev.Byte >= 'A' && ev.Byte <= 'F':
		return ev.Byte - 'A' + 10, true
	default:
		return 0, false
	}
}
