//go:build darwin

package vcode

// macOS virtual keycodes, as defined in Carbon's HIToolbox/Events.h
// (kVK_* constants). Apple never renumbered these across OS releases, so
// they're safe to hardcode the way the original project hardcodes VK_* and
// X11 keysyms for the other two platforms.
const (
	kVKANSIA = 0x00
	kVKANSIS = 0x01
	kVKANSID = 0x02
	kVKANSIF = 0x03
	kVKANSIH = 0x04
	kVKANSIG = 0x05
	kVKANSIZ = 0x06
	kVKANSIX = 0x07
	kVKANSIC = 0x08
	kVKANSIV = 0x09
	kVKANSIB = 0x0B
	kVKANSIQ = 0x0C
	kVKANSIW = 0x0D
	kVKANSIE = 0x0E
	kVKANSIR = 0x0F
	kVKANSIY = 0x10
	kVKANSIT = 0x11
	kVKANSI1 = 0x12
	kVKANSI2 = 0x13
	kVKANSI3 = 0x14
	kVKANSI4 = 0x15
	kVKANSI6 = 0x16
	kVKANSI5 = 0x17
	kVKANSIEqual = 0x18
	kVKANSI9 = 0x19
	kVKANSI7 = 0x1A
	kVKANSIMinus = 0x1B
	kVKANSI8 = 0x1C
	kVKANSI0 = 0x1D
	kVKANSIRightBracket = 0x1E
	kVKANSIO = 0x1F
	kVKANSIU = 0x20
	kVKANSILeftBracket = 0x21
	kVKANSII = 0x22
	kVKANSIP = 0x23
	kVKReturn = 0x24
	kVKANSIL = 0x25
	kVKANSIJ = 0x26
	kVKANSIQuote = 0x27
	kVKANSIK = 0x28
	kVKANSISemicolon = 0x29
	kVKANSIBackslash = 0x2A
	kVKANSIComma = 0x2B
	kVKANSISlash = 0x2C
	kVKANSIN = 0x2D
	kVKANSIM = 0x2E
	kVKANSIPeriod = 0x2F
	kVKTab = 0x30
	kVKSpace = 0x31
	kVKANSIGrave = 0x32
	kVKDelete = 0x33
	kVKEscape = 0x35
	kVKCommandR = 0x36
	kVKCommandL = 0x37
	kVKShiftL = 0x38
	kVKCapsLock = 0x39
	kVKOptionL = 0x3A
	kVKControlL = 0x3B
	kVKShiftR = 0x3C
	kVKOptionR = 0x3D
	kVKControlR = 0x3E
	kVKFunction = 0x3F

	kVKF17 = 0x40
	kVKANSIKeypadDecimal = 0x41
	kVKANSIKeypadMultiply = 0x43
	kVKANSIKeypadPlus = 0x45
	kVKANSIKeypadClear = 0x47
	kVKVolumeUp = 0x48
	kVKVolumeDown = 0x49
	kVKMute = 0x4A
	kVKANSIKeypadDivide = 0x4B
	kVKANSIKeypadEnter = 0x4C
	kVKANSIKeypadMinus = 0x4E
	kVKF18 = 0x4F
	kVKF19 = 0x50
	kVKANSIKeypadEquals = 0x51
	kVKANSIKeypad0 = 0x52
	kVKANSIKeypad1 = 0x53
	kVKANSIKeypad2 = 0x54
	kVKANSIKeypad3 = 0x55
	kVKANSIKeypad4 = 0x56
	kVKANSIKeypad5 = 0x57
	kVKANSIKeypad6 = 0x58
	kVKANSIKeypad7 = 0x59
	kVKF20 = 0x5A
	kVKANSIKeypad8 = 0x5B
	kVKANSIKeypad9 = 0x5C
	kVKF5 = 0x60
	kVKF6 = 0x61
	kVKF7 = 0x62
	kVKF3 = 0x63
	kVKF8 = 0x64
	kVKF9 = 0x65
	kVKF11 = 0x67
	kVKF13 = 0x69
	kVKF16 = 0x6A
	kVKF14 = 0x6B
	kVKF10 = 0x6D
	kVKF12 = 0x6F
	kVKF15 = 0x71
	kVKHelp = 0x72
	kVKHome = 0x73
	kVKPageUp = 0x74
	kVKForwardDelete = 0x75
	kVKF4 = 0x76
	kVKEnd = 0x77
	kVKF2 = 0x78
	kVKPageDown = 0x79
	kVKF1 = 0x7A
	kVKLeftArrow = 0x7B
	kVKRightArrow = 0x7C
	kVKDownArrow = 0x7D
	kVKUpArrow = 0x7E
)

type darwinTable struct{}

// NewTable returns the macOS virtual-code table, translating Carbon
// kVK_ANSI_* keycodes.
func NewTable() Table { return darwinTable{} }

var darwinPairs = []keysymPair{
	{VCA, kVKANSIA}, {VCS, kVKANSIS}, {VCD, kVKANSID}, {VCF, kVKANSIF},
	{VCH, kVKANSIH}, {VCG, kVKANSIG}, {VCZ, kVKANSIZ}, {VCX, kVKANSIX},
	{VCC, kVKANSIC}, {VCV, kVKANSIV}, {VCB, kVKANSIB}, {VCQ, kVKANSIQ},
	{VCW, kVKANSIW}, {VCE, kVKANSIE}, {VCR, kVKANSIR}, {VCY, kVKANSIY},
	{VCT, kVKANSIT}, {VC1, kVKANSI1}, {VC2, kVKANSI2}, {VC3, kVKANSI3},
	{VC4, kVKANSI4}, {VC6, kVKANSI6}, {VC5, kVKANSI5},
	{VCEquals, kVKANSIEqual}, {VC9, kVKANSI9}, {VC7, kVKANSI7},
	{VCMinus, kVKANSIMinus}, {VC8, kVKANSI8}, {VC0, kVKANSI0},
	{VCCloseBracket, kVKANSIRightBracket}, {VCO, kVKANSIO}, {VCU, kVKANSIU},
	{VCOpenBracket, kVKANSILeftBracket}, {VCI, kVKANSII}, {VCP, kVKANSIP},
	{VCEnter, kVKReturn}, {VCL, kVKANSIL}, {VCJ, kVKANSIJ},
	{VCQuote, kVKANSIQuote}, {VCK, kVKANSIK}, {VCSemicolon, kVKANSISemicolon},
	{VCBackslash, kVKANSIBackslash}, {VCComma, kVKANSIComma},
	{VCSlash, kVKANSISlash}, {VCN, kVKANSIN}, {VCM, kVKANSIM},
	{VCPeriod, kVKANSIPeriod}, {VCTab, kVKTab}, {VCSpace, kVKSpace},
	{VCBackquote, kVKANSIGrave}, {VCBackspace, kVKDelete}, {VCEscape, kVKEscape},
	{VCMetaR, kVKCommandR}, {VCMetaL, kVKCommandL}, {VCShiftL, kVKShiftL},
	{VCCapsLock, kVKCapsLock}, {VCAltL, kVKOptionL}, {VCControlL, kVKControlL},
	{VCShiftR, kVKShiftR}, {VCAltR, kVKOptionR}, {VCControlR, kVKControlR},

	{VCKPDivide, kVKANSIKeypadDivide}, {VCKPMultiply, kVKANSIKeypadMultiply},
	{VCKPSubtract, kVKANSIKeypadMinus}, {VCKPAdd, kVKANSIKeypadPlus},
	{VCKPEnter, kVKANSIKeypadEnter}, {VCPeriod, kVKANSIKeypadDecimal},
	{VCEquals, kVKANSIKeypadEquals}, {VCClear, kVKANSIKeypadClear},
	{VCKP0, kVKANSIKeypad0}, {VCKP1, kVKANSIKeypad1}, {VCKP2, kVKANSIKeypad2},
	{VCKP3, kVKANSIKeypad3}, {VCKP4, kVKANSIKeypad4}, {VCKP5, kVKANSIKeypad5},
	{VCKP6, kVKANSIKeypad6}, {VCKP7, kVKANSIKeypad7}, {VCKP8, kVKANSIKeypad8},
	{VCKP9, kVKANSIKeypad9},

	{VCF1, kVKF1}, {VCF2, kVKF2}, {VCF3, kVKF3}, {VCF4, kVKF4}, {VCF5, kVKF5},
	{VCF6, kVKF6}, {VCF7, kVKF7}, {VCF8, kVKF8}, {VCF9, kVKF9}, {VCF10, kVKF10},
	{VCF11, kVKF11}, {VCF12, kVKF12}, {VCF13, kVKF13}, {VCF14, kVKF14},
	{VCF15, kVKF15}, {VCF16, kVKF16}, {VCF17, kVKF17}, {VCF18, kVKF18},
	{VCF19, kVKF19}, {VCF20, kVKF20},

	{VCHome, kVKHome}, {VCPageUp, kVKPageUp}, {VCDelete, kVKForwardDelete},
	{VCEnd, kVKEnd}, {VCPageDn, kVKPageDown},
	{VCLeft, kVKLeftArrow}, {VCRight, kVKRightArrow},
	{VCDown, kVKDownArrow}, {VCUp, kVKUpArrow},

	{VCVolumeUp, kVKVolumeUp}, {VCVolumeDown, kVKVolumeDown}, {VCVolumeMute, kVKMute},
}

func (darwinTable) NativeToVirtual(native uint32, numLock bool) uint16 {
	for _, p := range darwinPairs {
		if p.keysym == native {
			vc := p.vc
			if !numLock && keypadDisambiguateDarwin[vc] {
				vc |= KeypadMask
			}
			return vc
		}
	}
	return VCUndefined
}

func (darwinTable) VirtualToNative(vc uint16) (uint32, bool) {
	vc &^= KeypadMask
	for _, p := range darwinPairs {
		if p.vc == vc {
			return p.keysym, true
		}
	}
	return 0, false
}

var keypadDisambiguateDarwin = map[uint16]bool{
	VCKP1: true, VCKP2: true, VCKP3: true, VCKP4: true, VCKP5: true,
	VCKP6: true, VCKP7: true, VCKP8: true, VCKP9: true, VCKP0: true,
}
