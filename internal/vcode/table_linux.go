//go:build linux

package vcode

// X11 keysym values, named the way X11/keysymdef.h names them. Only the
// subset exercised by pairs is declared; add more as needed
// rather than importing the full keysymdef header.
const (
	xkEscape       = 0xff1b
	xkTab          = 0xff09
	xkReturn       = 0xff0d
	xkLinefeed     = 0xff0a
	xkBackSpace    = 0xff08
	xkSpace        = 0x0020
	xkDelete       = 0xffff

	xkF1  = 0xffbe
	xkF2  = 0xffbf
	xkF3  = 0xffc0
	xkF4  = 0xffc1
	xkF5  = 0xffc2
	xkF6  = 0xffc3
	xkF7  = 0xffc4
	xkF8  = 0xffc5
	xkF9  = 0xffc6
	xkF10 = 0xffc7
	xkF11 = 0xffc8
	xkF12 = 0xffc9
	xkF13 = 0xffca
	xkF14 = 0xffcb
	xkF15 = 0xffcc
	xkF16 = 0xffcd
	xkF17 = 0xffce
	xkF18 = 0xffcf
	xkF19 = 0xffd0
	xkF20 = 0xffd1
	xkF21 = 0xffd2
	xkF22 = 0xffd3
	xkF23 = 0xffd4
	xkF24 = 0xffd5
	xkSunF36 = 0x1005ff10 // aliases F11 on Sun keyboards
	xkSunF37 = 0x1005ff11 // aliases F12 on Sun keyboards

	xkGrave  = 0x0060
	xk1      = 0x0031
	xk2      = 0x0032
	xk3      = 0x0033
	xk4      = 0x0034
	xk5      = 0x0035
	xk6      = 0x0036
	xk7      = 0x0037
	xk8      = 0x0038
	xk9      = 0x0039
	xk0      = 0x0030
	xkMinus  = 0x002d
	xkEqual  = 0x003d

	xkA = 0x0061
	xkB = 0x0062
	xkC = 0x0063
	xkD = 0x0064
	xkE = 0x0065
	xkF = 0x0066
	xkG = 0x0067
	xkH = 0x0068
	xkI = 0x0069
	xkJ = 0x006a
	xkK = 0x006b
	xkL = 0x006c
	xkM = 0x006d
	xkN = 0x006e
	xkO = 0x006f
	xkP = 0x0070
	xkQ = 0x0071
	xkR = 0x0072
	xkS = 0x0073
	xkT = 0x0074
	xkU = 0x0075
	xkV = 0x0076
	xkW = 0x0077
	xkX = 0x0078
	xkY = 0x0079
	xkZ = 0x007a

	xkBracketLeft  = 0x005b
	xkBracketRight = 0x005d
	xkBackslash    = 0x005c
	xkSemicolon    = 0x003b
	xkApostrophe   = 0x0027
	xkComma        = 0x002c
	xkPeriod       = 0x002e
	xkSlash        = 0x002f

	xkCapsLock    = 0xffe5
	xkPrint       = 0xff61
	xkScrollLock  = 0xff14
	xkPause       = 0xff13
	xkInsert      = 0xff63
	xkHome        = 0xff50
	xkEnd         = 0xff57
	xkPageUp      = 0xff55
	xkPageDown    = 0xff56
	xkOSFPageUp   = 0x1004ff55
	xkOSFPageDown = 0x1004ff56

	xkUp    = 0xff52
	xkLeft  = 0xff51
	xkRight = 0xff53
	xkDown  = 0xff54

	xkNumLock   = 0xff7f
	xkKPDivide   = 0xffaf
	xkKPMultiply = 0xffaa
	xkKPSubtract = 0xffad
	xkKPAdd      = 0xffab
	xkKPEnter    = 0xff8d
	xkKPSeparator = 0xffac
	xkKPEqual    = 0xffbd
	xkKPDecimal  = 0xffae
	xkKPDelete   = 0xff9f
	xkKP0 = 0xffb0
	xkKP1 = 0xffb1
	xkKP2 = 0xffb2
	xkKP3 = 0xffb3
	xkKP4 = 0xffb4
	xkKP5 = 0xffb5
	xkKP6 = 0xffb6
	xkKP7 = 0xffb7
	xkKP8 = 0xffb8
	xkKP9 = 0xffb9
	xkKPEnd      = 0xff9c
	xkKPDown     = 0xff99
	xkKPPageDown = 0xff9b
	xkKPLeft     = 0xff96
	xkKPBegin    = 0xff9d
	xkKPRight    = 0xff98
	xkKPHome     = 0xff95
	xkKPUp       = 0xff97
	xkKPPageUp   = 0xff9a
	xkKPInsert   = 0xff9e

	xkShiftL   = 0xffe1
	xkShiftR   = 0xffe2
	xkControlL = 0xffe3
	xkControlR = 0xffe4
	xkAltL     = 0xffe9
	xkAltR     = 0xffea
	xkISOLevel3Shift = 0xfe03 // AltGr on many layouts
	xkMetaL    = 0xffe7
	xkMetaR    = 0xffe8
	xkSuperL   = 0xffeb
	xkSuperR   = 0xffec
	xkMenu     = 0xff67

	xkAudioMute       = 0x1008ff12
	xkAudioLowerVolume = 0x1008ff11
	xkAudioRaiseVolume = 0x1008ff13
	xkAudioPlay       = 0x1008ff14
	xkAudioStop       = 0x1008ff15
	xkAudioPrev       = 0x1008ff16
	xkAudioNext       = 0x1008ff17
)

// pairs mirrors libuiohook's uiocode_keysym_table. Function/alpha/numeric/
// edit/cursor/keypad/modifier/media zones are represented; the exhaustive
// vendor dead-key and Sun/HP/DEC aliasing zones from the original table are
// not reproduced in full, but the lookup/fallback shape (linear scan,
// first match wins, reverse scan for the opposite direction) is identical.
var pairs = []keysymPair{
	{VCEscape, xkEscape},

	{VCF1, xkF1}, {VCF2, xkF2}, {VCF3, xkF3}, {VCF4, xkF4},
	{VCF5, xkF5}, {VCF6, xkF6}, {VCF7, xkF7}, {VCF8, xkF8},
	{VCF9, xkF9}, {VCF10, xkF10}, {VCF11, xkF11}, {VCF12, xkF12},
	{VCF13, xkF13}, {VCF14, xkF14}, {VCF15, xkF15}, {VCF16, xkF16},
	{VCF17, xkF17}, {VCF18, xkF18}, {VCF19, xkF19}, {VCF20, xkF20},
	{VCF21, xkF21}, {VCF22, xkF22}, {VCF23, xkF23}, {VCF24, xkF24},
	{VCF11, xkSunF36}, {VCF12, xkSunF37},

	{VCBackquote, xkGrave},
	{VC1, xk1}, {VC2, xk2}, {VC3, xk3}, {VC4, xk4}, {VC5, xk5},
	{VC6, xk6}, {VC7, xk7}, {VC8, xk8}, {VC9, xk9}, {VC0, xk0},
	{VCMinus, xkMinus}, {VCEquals, xkEqual}, {VCBackspace, xkBackSpace},

	{VCTab, xkTab}, {VCCapsLock, xkCapsLock},
	{VCA, xkA}, {VCB, xkB}, {VCC, xkC}, {VCD, xkD}, {VCE, xkE},
	{VCF, xkF}, {VCG, xkG}, {VCH, xkH}, {VCI, xkI}, {VCJ, xkJ},
	{VCK, xkK}, {VCL, xkL}, {VCM, xkM}, {VCN, xkN}, {VCO, xkO},
	{VCP, xkP}, {VCQ, xkQ}, {VCR, xkR}, {VCS, xkS}, {VCT, xkT},
	{VCU, xkU}, {VCV, xkV}, {VCW, xkW}, {VCX, xkX}, {VCY, xkY}, {VCZ, xkZ},
	{VCOpenBracket, xkBracketLeft}, {VCCloseBracket, xkBracketRight},
	{VCBackslash, xkBackslash}, {VCSemicolon, xkSemicolon},
	{VCQuote, xkApostrophe}, {VCEnter, xkReturn}, {VCEnter, xkLinefeed},
	{VCComma, xkComma}, {VCPeriod, xkPeriod}, {VCSlash, xkSlash},
	{VCSpace, xkSpace},

	{VCPrintScreen, xkPrint}, {VCScrollLock, xkScrollLock}, {VCPause, xkPause},
	{VCInsert, xkInsert}, {VCDelete, xkDelete},
	{VCHome, xkHome}, {VCEnd, xkEnd},
	{VCPageUp, xkPageUp}, {VCPageUp, xkOSFPageUp},
	{VCPageDn, xkPageDown}, {VCPageDn, xkOSFPageDown},
	{VCUp, xkUp}, {VCLeft, xkLeft}, {VCRight, xkRight}, {VCDown, xkDown},

	{VCNumLock, xkNumLock},
	{VCKPDivide, xkKPDivide}, {VCKPMultiply, xkKPMultiply},
	{VCKPSubtract, xkKPSubtract}, {VCEquals, xkKPEqual}, {VCKPAdd, xkKPAdd},
	{VCKPEnter, xkKPEnter}, {VCKPSeparator, xkKPSeparator},
	{VCPeriod, xkKPDecimal}, {VCDelete, xkKPDelete},
	{VCKP0, xkKP0}, {VCKP1, xkKP1}, {VCKP2, xkKP2}, {VCKP3, xkKP3},
	{VCKP4, xkKP4}, {VCKP5, xkKP5}, {VCKP6, xkKP6}, {VCKP7, xkKP7},
	{VCKP8, xkKP8}, {VCKP9, xkKP9},
	{VCEnd, xkKPEnd}, {VCDown, xkKPDown}, {VCPageDn, xkKPPageDown},
	{VCLeft, xkKPLeft}, {VCClear, xkKPBegin}, {VCRight, xkKPRight},
	{VCHome, xkKPHome}, {VCUp, xkKPUp}, {VCPageUp, xkKPPageUp},
	{VCInsert, xkKPInsert},

	{VCShiftL, xkShiftL}, {VCShiftR, xkShiftR},
	{VCControlL, xkControlL}, {VCControlR, xkControlR},
	{VCAltL, xkAltL}, {VCAltR, xkAltR}, {VCAltR, xkISOLevel3Shift},
	{VCMetaL, xkMetaL}, {VCMetaR, xkMetaR},
	{VCMetaL, xkSuperL}, {VCMetaR, xkSuperR},
	{VCContextMenu, xkMenu},

	{VCVolumeMute, xkAudioMute}, {VCVolumeDown, xkAudioLowerVolume},
	{VCVolumeUp, xkAudioRaiseVolume}, {VCMediaPlay, xkAudioPlay},
	{VCMediaStop, xkAudioStop}, {VCMediaPrev, xkAudioPrev},
	{VCMediaNext, xkAudioNext},
}

// keypadDisambiguate lists the VCs that fold onto the 0xEE00-tagged range
// when NumLock is off, matching keysym_to_uiocode's post-lookup switch.
var keypadDisambiguate = map[uint16]bool{
	VCKPSeparator: true,
	VCKP1: true, VCKP2: true, VCKP3: true, VCKP4: true, VCKP5: true,
	VCKP6: true, VCKP7: true, VCKP8: true, VCKP9: true, VCKP0: true,
}

type linuxTable struct{}

// NewTable returns the Linux/X11 virtual-code table.
func NewTable() Table { return linuxTable{} }

func (linuxTable) NativeToVirtual(native uint32, numLock bool) uint16 {
	for _, p := range pairs {
		if p.keysym == native {
			vc := p.vc
			if !numLock && keypadDisambiguate[vc] {
				vc |= KeypadMask
			}
			return vc
		}
	}
	return VCUndefined
}

func (linuxTable) VirtualToNative(vc uint16) (uint32, bool) {
	vc &^= KeypadMask
	for _, p := range pairs {
		if p.vc == vc {
			return p.keysym, true
		}
	}
	return 0, false
}
