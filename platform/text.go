package platform

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// CodePageUTF8 is the ANSI code page of systems set to "Use Unicode UTF-8"
const CodePageUTF8 = 65001

var ansiEncodings = map[uint32]encoding.Encoding{
	874:  charmap.Windows874,
	932:  japanese.ShiftJIS,
	936:  simplifiedchinese.GBK,
	949:  korean.EUCKR,
	950:  traditionalchinese.Big5,
	1250: charmap.Windows1250,
	1251: charmap.Windows1251,
	1252: charmap.Windows1252,
	1253: charmap.Windows1253,
	1254: charmap.Windows1254,
	1255: charmap.Windows1255,
	1256: charmap.Windows1256,
	1257: charmap.Windows1257,
	1258: charmap.Windows1258,
}

// ANSIText encodes text for the legacy CF_TEXT clipboard format in the given
// ANSI code page (GetACP on Windows). Unknown code pages fall back to
// Windows-1252. Runes the code page cannot represent become the encoder's
// replacement byte. The result is not NUL-terminated.
func ANSIText(text string, codePage uint32) ([]byte, error) {
	if codePage == CodePageUTF8 {
		return []byte(text), nil
	}
	e, ok := ansiEncodings[codePage]
	if !ok {
		e = charmap.Windows1252
	}
	return encoding.ReplaceUnsupported(e.NewEncoder()).Bytes([]byte(text))
}
