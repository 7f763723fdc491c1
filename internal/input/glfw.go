package input

// GLFW key and mouse button values. They are part of the GLFW ABI and do not
// change between releases, so the table does not need the GLFW package.
const (
	glfwKeySpace        = 32
	glfwKeyApostrophe   = 39
	glfwKeyComma        = 44
	glfwKeyMinus        = 45
	glfwKeyPeriod       = 46
	glfwKeySlash        = 47
	glfwKey0            = 48
	glfwKey9            = 57
	glfwKeySemicolon    = 59
	glfwKeyEqual        = 61
	glfwKeyA            = 65
	glfwKeyZ            = 90
	glfwKeyLeftBracket  = 91
	glfwKeyBackslash    = 92
	glfwKeyRightBracket = 93
	glfwKeyGraveAccent  = 96
	glfwKeyWorld1       = 161
	glfwKeyEscape       = 256
	glfwKeyEnter        = 257
	glfwKeyTab          = 258
	glfwKeyBackspace    = 259
	glfwKeyInsert       = 260
	glfwKeyDelete       = 261
	glfwKeyRight        = 262
	glfwKeyLeft         = 263
	glfwKeyDown         = 264
	glfwKeyUp           = 265
	glfwKeyPageUp       = 266
	glfwKeyPageDown     = 267
	glfwKeyHome         = 268
	glfwKeyEnd          = 269
	glfwKeyCapsLock     = 280
	glfwKeyScrollLock   = 281
	glfwKeyNumLock      = 282
	glfwKeyPrintScreen  = 283
	glfwKeyPause        = 284
	glfwKeyF1           = 290
	glfwKeyF24          = 313
	glfwKeyKP0          = 320
	glfwKeyKP9          = 329
	glfwKeyKPDecimal    = 330
	glfwKeyKPDivide     = 331
	glfwKeyKPMultiply   = 332
	glfwKeyKPSubtract   = 333
	glfwKeyKPAdd        = 334
	glfwKeyKPEnter      = 335
	glfwKeyLeftShift    = 340
	glfwKeyLeftControl  = 341
	glfwKeyLeftAlt      = 342
	glfwKeyLeftSuper    = 343
	glfwKeyRightShift   = 344
	glfwKeyRightControl = 345
	glfwKeyRightAlt     = 346
	glfwKeyRightSuper   = 347
	glfwKeyMenu         = 348

	glfwMouseButtonLeft   = 0
	glfwMouseButtonRight  = 1
	glfwMouseButtonMiddle = 2
	glfwMouseButton4      = 3
	glfwMouseButton5      = 4
)

var glfwKeys = map[int]Key{
	glfwKeySpace:        KeySpaceBar,
	glfwKeyApostrophe:   KeyOEMQuote,
	glfwKeyComma:        KeyOEMComma,
	glfwKeyMinus:        KeyOEMMinus,
	glfwKeyPeriod:       KeyOEMPeriod,
	glfwKeySlash:        KeyOEMForwardSlash,
	glfwKeySemicolon:    KeyOEMSemicolon,
	glfwKeyEqual:        KeyOEMPlus,
	glfwKeyLeftBracket:  KeyOEMOpenBracket,
	glfwKeyBackslash:    KeyOEMBackslash,
	glfwKeyRightBracket: KeyOEMCloseBracket,
	glfwKeyGraveAccent:  KeyOEMTilde,
	glfwKeyWorld1:       KeyOEM102,
	glfwKeyEscape:       KeyEscape,
	glfwKeyEnter:        KeyEnter,
	glfwKeyTab:          KeyTab,
	glfwKeyBackspace:    KeyBackspace,
	glfwKeyInsert:       KeyInsert,
	glfwKeyDelete:       KeyDelete,
	glfwKeyRight:        KeyRightArrow,
	glfwKeyLeft:         KeyLeftArrow,
	glfwKeyDown:         KeyDownArrow,
	glfwKeyUp:           KeyUpArrow,
	glfwKeyPageUp:       KeyPageUp,
	glfwKeyPageDown:     KeyPageDown,
	glfwKeyHome:         KeyHome,
	glfwKeyEnd:          KeyEnd,
	glfwKeyCapsLock:     KeyCapsLock,
	glfwKeyScrollLock:   KeyScrollLock,
	glfwKeyNumLock:      KeyNumLock,
	glfwKeyPrintScreen:  KeyPrintScreen,
	glfwKeyPause:        KeyPause,
	glfwKeyKPDecimal:    KeyDecimal,
	glfwKeyKPDivide:     KeyDivide,
	glfwKeyKPMultiply:   KeyMultiply,
	glfwKeyKPSubtract:   KeySubtract,
	glfwKeyKPAdd:        KeyAdd,
	glfwKeyKPEnter:      KeyEnter,
	glfwKeyLeftShift:    KeyLeftShift,
	glfwKeyLeftControl:  KeyLeftControl,
	glfwKeyLeftAlt:      KeyLeftMenu,
	glfwKeyLeftSuper:    KeyLeftWindow,
	glfwKeyRightShift:   KeyRightShift,
	glfwKeyRightControl: KeyRightControl,
	glfwKeyRightAlt:     KeyRightMenu,
	glfwKeyRightSuper:   KeyRightWindow,
	glfwKeyMenu:         KeyApplications,
}

var glfwButtons = map[int]Button{
	glfwMouseButtonLeft:   ButtonLeft,
	glfwMouseButtonRight:  ButtonRight,
	glfwMouseButtonMiddle: ButtonMiddle,
	glfwMouseButton4:      ButtonX1,
	glfwMouseButton5:      ButtonX2,
}

// nativeKeys is the inverse of the contiguous ranges plus glfwKeys. KeyEnter
// maps back to the main Enter key rather than keypad Enter.
var nativeKeys = func() map[Key]int {
	m := make(map[Key]int, len(glfwKeys))
	for native, key := range glfwKeys {
		if native == glfwKeyKPEnter {
			continue
		}
		m[key] = native
	}
	return m
}()

// KeyFromGLFW translates a GLFW key code. Unmapped codes yield KeyUnknown.
func KeyFromGLFW(native int) Key {
	switch {
	case native >= glfwKeyA && native <= glfwKeyZ:
		return KeyA + Key(native-glfwKeyA)
	case native >= glfwKey0 && native <= glfwKey9:
		return Key0 + Key(native-glfwKey0)
	case native >= glfwKeyF1 && native <= glfwKeyF24:
		return KeyF1 + Key(native-glfwKeyF1)
	case native >= glfwKeyKP0 && native <= glfwKeyKP9:
		return KeyNumPad0 + Key(native-glfwKeyKP0)
	}
	if key, ok := glfwKeys[native]; ok {
		return key
	}
	return KeyUnknown
}

// GLFWFromKey returns the GLFW key code for key, or -1 if GLFW has none.
func GLFWFromKey(key Key) int {
	switch {
	case key >= KeyA && key <= KeyZ:
		return glfwKeyA + int(key-KeyA)
	case key >= Key0 && key <= Key9:
		return glfwKey0 + int(key-Key0)
	case key >= KeyF1 && key <= KeyF24:
		return glfwKeyF1 + int(key-KeyF1)
	case key >= KeyNumPad0 && key <= KeyNumPad9:
		return glfwKeyKP0 + int(key-KeyNumPad0)
	}
	if native, ok := nativeKeys[key]; ok {
		return native
	}
	return -1
}

// ButtonFromGLFW translates a GLFW mouse button. Unmapped codes yield ButtonUnknown.
func ButtonFromGLFW(native int) Button {
	if b, ok := glfwButtons[native]; ok {
		return b
	}
	return ButtonUnknown
}

// GLFWFromButton returns the GLFW mouse button for b, or -1 if GLFW has none.
func GLFWFromButton(b Button) int {
	for native, button := range glfwButtons {
		if button == b {
			return native
		}
	}
	return -1
}
