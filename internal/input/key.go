package input

import "fmt"

// Key represents a keyboard key.
//
// Values follow the Windows virtual-key table so that ordinals are stable
// across platforms and can be used directly as indices into a KeyboardState.
// See https://learn.microsoft.com/windows/win32/inputdev/virtual-key-codes.
type Key int

const (
	KeyControlBreak Key = 0x03

	KeyBackspace Key = 0x08
	KeyTab       Key = 0x09
	KeyClear     Key = 0x0c
	KeyEnter     Key = 0x0d
	KeyShift     Key = 0x10
	KeyCtrl      Key = 0x11
	KeyAlt       Key = 0x12
	KeyPause     Key = 0x13
	KeyCapsLock  Key = 0x14

	KeyIMEKanaMode   Key = 0x15
	KeyIMEHangulMode Key = 0x15
	KeyIMEHanjaMode  Key = 0x19
	KeyIMEKanjiMode  Key = 0x19

	KeyEscape Key = 0x1b

	KeyIMEConvert           Key = 0x1c
	KeyIMENonConvert        Key = 0x1d
	KeyIMEAccept            Key = 0x1e
	KeyIMEModeChangeRequest Key = 0x1f

	KeySpaceBar Key = 0x20
	KeyPageUp   Key = 0x21
	KeyPageDown Key = 0x22
	KeyEnd      Key = 0x23
	KeyHome     Key = 0x24

	KeyLeftArrow  Key = 0x25
	KeyUpArrow    Key = 0x26
	KeyRightArrow Key = 0x27
	KeyDownArrow  Key = 0x28

	KeySelect      Key = 0x29
	KeyPrint       Key = 0x2a
	KeyExecute     Key = 0x2b
	KeyPrintScreen Key = 0x2c
	KeyInsert      Key = 0x2d
	KeyDelete      Key = 0x2e
	KeyHelp        Key = 0x2f

	Key0 Key = 0x30
	Key1 Key = 0x31
	Key2 Key = 0x32
	Key3 Key = 0x33
	Key4 Key = 0x34
	Key5 Key = 0x35
	Key6 Key = 0x36
	Key7 Key = 0x37
	Key8 Key = 0x38
	Key9 Key = 0x39

	KeyA Key = 0x41
	KeyB Key = 0x42
	KeyC Key = 0x43
	KeyD Key = 0x44
	KeyE Key = 0x45
	KeyF Key = 0x46
	KeyG Key = 0x47
	KeyH Key = 0x48
	KeyI Key = 0x49
	KeyJ Key = 0x4a
	KeyK Key = 0x4b
	KeyL Key = 0x4c
	KeyM Key = 0x4d
	KeyN Key = 0x4e
	KeyO Key = 0x4f
	KeyP Key = 0x50
	KeyQ Key = 0x51
	KeyR Key = 0x52
	KeyS Key = 0x53
	KeyT Key = 0x54
	KeyU Key = 0x55
	KeyV Key = 0x56
	KeyW Key = 0x57
	KeyX Key = 0x58
	KeyY Key = 0x59
	KeyZ Key = 0x5a

	KeyLeftWindow   Key = 0x5b
	KeyRightWindow  Key = 0x5c
	KeyApplications Key = 0x5d
	KeyPowerSleep   Key = 0x5f

	KeyNumPad0 Key = 0x60
	KeyNumPad1 Key = 0x61
	KeyNumPad2 Key = 0x62
	KeyNumPad3 Key = 0x63
	KeyNumPad4 Key = 0x64
	KeyNumPad5 Key = 0x65
	KeyNumPad6 Key = 0x66
	KeyNumPad7 Key = 0x67
	KeyNumPad8 Key = 0x68
	KeyNumPad9 Key = 0x69

	KeyMultiply  Key = 0x6a
	KeyAdd       Key = 0x6b
	KeySeparator Key = 0x6c
	KeySubtract  Key = 0x6d
	KeyDecimal   Key = 0x6e
	KeyDivide    Key = 0x6f

	KeyF1  Key = 0x70
	KeyF2  Key = 0x71
	KeyF3  Key = 0x72
	KeyF4  Key = 0x73
	KeyF5  Key = 0x74
	KeyF6  Key = 0x75
	KeyF7  Key = 0x76
	KeyF8  Key = 0x77
	KeyF9  Key = 0x78
	KeyF10 Key = 0x79
	KeyF11 Key = 0x7a
	KeyF12 Key = 0x7b
	KeyF13 Key = 0x7c
	KeyF14 Key = 0x7d
	KeyF15 Key = 0x7e
	KeyF16 Key = 0x7f
	KeyF17 Key = 0x80
	KeyF18 Key = 0x81
	KeyF19 Key = 0x82
	KeyF20 Key = 0x83
	KeyF21 Key = 0x84
	KeyF22 Key = 0x85
	KeyF23 Key = 0x86
	KeyF24 Key = 0x87

	KeyNumLock    Key = 0x90
	KeyScrollLock Key = 0x91

	KeyLeftShift    Key = 0xa0
	KeyRightShift   Key = 0xa1
	KeyLeftControl  Key = 0xa2
	KeyRightControl Key = 0xa3
	// Menu is the Windows name for Alt.
	KeyLeftMenu  Key = 0xa4
	KeyRightMenu Key = 0xa5

	KeyBrowserBack      Key = 0xa6
	KeyBrowserForward   Key = 0xa7
	KeyBrowserRefresh   Key = 0xa8
	KeyBrowserStop      Key = 0xa9
	KeyBrowserSearch    Key = 0xaa
	KeyBrowserFavorites Key = 0xab
	KeyBrowserHome      Key = 0xac

	KeyVolumeMute Key = 0xad
	KeyVolumeDown Key = 0xae
	KeyVolumeUp   Key = 0xaf

	KeyMediaNextTrack     Key = 0xb0
	KeyMediaPreviousTrack Key = 0xb1
	KeyMediaStop          Key = 0xb2
	KeyMediaPlayPause     Key = 0xb3

	KeyLaunchMail        Key = 0xb4
	KeyLaunchMediaSelect Key = 0xb5
	KeyLaunchApp1        Key = 0xb6
	KeyLaunchApp2        Key = 0xb7

	// The OEM keys vary by layout; comments give the US standard.
	KeyOEMSemicolon    Key = 0xba // ;:
	KeyOEMPlus         Key = 0xbb // =+
	KeyOEMComma        Key = 0xbc // ,<
	KeyOEMMinus        Key = 0xbd // -_
	KeyOEMPeriod       Key = 0xbe // .>
	KeyOEMForwardSlash Key = 0xbf // /?
	KeyOEMTilde        Key = 0xc0 // `~
	KeyOEMOpenBracket  Key = 0xdb // [{
	KeyOEMBackslash    Key = 0xdc // \|
	KeyOEMCloseBracket Key = 0xdd // ]}
	KeyOEMQuote        Key = 0xde // '"
	KeyOEMMisc         Key = 0xdf
	KeyOEM102          Key = 0xe2

	KeyProcess Key = 0xe5
	KeyPacket  Key = 0xe7

	KeyAttn     Key = 0xf6
	KeyCrSel    Key = 0xf7
	KeyExSel    Key = 0xf8
	KeyEraseEOF Key = 0xf9
	KeyPlay     Key = 0xfa
	KeyZoom     Key = 0xfb
	KeyPA1      Key = 0xfd
	KeyOEMClear Key = 0xfe

	KeyUnknown Key = 0xff
	// KeyCount is the number of slots in a KeyboardState.
	KeyCount Key = 0x100
	// KeyAny matches any key in a Keyboard query.
	KeyAny Key = 0x101
)

// Valid reports whether k indexes a KeyboardState slot.
func (k Key) Valid() bool {
	return k >= 0 && k < KeyCount
}

var keyNames = map[Key]string{
	KeyControlBreak:    "ControlBreak",
	KeyBackspace:       "Backspace",
	KeyTab:             "Tab",
	KeyClear:           "Clear",
	KeyEnter:           "Enter",
	KeyShift:           "Shift",
	KeyCtrl:            "Ctrl",
	KeyAlt:             "Alt",
	KeyPause:           "Pause",
	KeyCapsLock:        "CapsLock",
	KeyEscape:          "Escape",
	KeySpaceBar:        "SpaceBar",
	KeyPageUp:          "PageUp",
	KeyPageDown:        "PageDown",
	KeyEnd:             "End",
	KeyHome:            "Home",
	KeyLeftArrow:       "LeftArrow",
	KeyUpArrow:         "UpArrow",
	KeyRightArrow:      "RightArrow",
	KeyDownArrow:       "DownArrow",
	KeyPrintScreen:     "PrintScreen",
	KeyInsert:          "Insert",
	KeyDelete:          "Delete",
	KeyLeftWindow:      "LeftWindow",
	KeyRightWindow:     "RightWindow",
	KeyApplications:    "Applications",
	KeyMultiply:        "Multiply",
	KeyAdd:             "Add",
	KeySeparator:       "Separator",
	KeySubtract:        "Subtract",
	KeyDecimal:         "Decimal",
	KeyDivide:          "Divide",
	KeyNumLock:         "NumLock",
	KeyScrollLock:      "ScrollLock",
	KeyLeftShift:       "LeftShift",
	KeyRightShift:      "RightShift",
	KeyLeftControl:     "LeftControl",
	KeyRightControl:    "RightControl",
	KeyLeftMenu:        "LeftMenu",
	KeyRightMenu:       "RightMenu",
	KeyOEMSemicolon:    "OEMSemicolon",
	KeyOEMPlus:         "OEMPlus",
	KeyOEMComma:        "OEMComma",
	KeyOEMMinus:        "OEMMinus",
	KeyOEMPeriod:       "OEMPeriod",
	KeyOEMForwardSlash: "OEMForwardSlash",
	KeyOEMTilde:        "OEMTilde",
	KeyOEMOpenBracket:  "OEMOpenBracket",
	KeyOEMBackslash:    "OEMBackslash",
	KeyOEMCloseBracket: "OEMCloseBracket",
	KeyOEMQuote:        "OEMQuote",
	KeyOEM102:          "OEM102",
	KeyUnknown:         "Unknown",
	KeyCount:           "Count",
	KeyAny:             "Any",
}

func (k Key) String() string {
	switch {
	case k >= Key0 && k <= Key9:
		return string(rune('0' + (k - Key0)))
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + (k - KeyA)))
	case k >= KeyNumPad0 && k <= KeyNumPad9:
		return fmt.Sprintf("NumPad%d", k-KeyNumPad0)
	case k >= KeyF1 && k <= KeyF24:
		return fmt.Sprintf("F%d", k-KeyF1+1)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%#x)", int(k))
}
