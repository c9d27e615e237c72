// Package tables holds the two static character-translation maps the ABC
// v2.1 standard (plus abcm2ps and jcabc2ps extensions) defines for
// diacritic mnemonics and HTML-style named entities in text fields.
// Transcribed verbatim from the generator that produced them; not
// consulted by canonify, since expanding mnemonics and entities inside
// text fields is out of scope for a music-code-line canonifier and
// belongs to whatever renders those fields downstream.
package tables

// Mnemonics maps a two-character diacritic mnemonic (e.g. "AA" for a
// ring, "^E" for a circumflex) to the Unicode character it stands for.
var Mnemonics = map[string]rune{
	"\"A": 'Ä',
	"'A": 'Á',
	"AA": 'Å',
	"^A": 'Â',
	"`A": 'À',
	"uA": 'Ă',
	"~A": 'Ã',
	"cC": 'Ç',
	"\"E": 'Ë',
	"'E": 'É',
	"AE": 'Æ',
	"OE": 'Œ',
	"^E": 'Ê',
	"`E": 'È',
	"uE": 'Ĕ',
	"DH": 'Ð',
	"TH": 'Þ',
	"\"I": 'Ï',
	"'I": 'Í',
	"^I": 'Î',
	"`I": 'Ì',
	"~N": 'Ñ',
	"\"O": 'Ö',
	"'O": 'Ó',
	"/O": 'Ø',
	"HO": 'Ő',
	"^O": 'Ô',
	"`O": 'Ò',
	"~O": 'Õ',
	"vS": 'Š',
	"\"U": 'Ü',
	"'U": 'Ú',
	"HU": 'Ű',
	"^U": 'Û',
	"`U": 'Ù',
	"\"Y": 'Ÿ',
	"'Y": 'Ý',
	"^Y": 'Ŷ',
	"vZ": 'Ž',
	"\"a": 'ä',
	"'a": 'á',
	"^a": 'â',
	"`a": 'à',
	"aa": 'å',
	"ua": 'ă',
	"~a": 'ã',
	"cc": 'ç',
	"\"e": 'ë',
	"'e": 'é',
	"^e": 'ê',
	"`e": 'è',
	"ae": 'æ',
	"oe": 'œ',
	"ue": 'ĕ',
	"dh": 'ð',
	"th": 'þ',
	"\"i": 'ï',
	"'i": 'í',
	"^i": 'î',
	"`i": 'ì',
	"~n": 'ñ',
	"\"o": 'ö',
	"'o": 'ó',
	"/o": 'ø',
	"Ho": 'ő',
	"^o": 'ô',
	"`o": 'ò',
	"~o": 'õ',
	"ss": 'ß',
	"vs": 'š',
	"\"u": 'ü',
	"'u": 'ú',
	"Hu": 'ű',
	"^u": 'û',
	"`u": 'ù',
	"\"y": 'ÿ',
	"'y": 'ý',
	"^y": 'ŷ',
	"vz": 'ž',
	";A": 'Ą',
	"=A": 'Ā',
	"oA": 'Å',
	"'C": 'Ć',
	",C": 'Ç',
	".C": 'Ċ',
	"^C": 'Ĉ',
	"vC": 'Č',
	"/D": 'Đ',
	"=D": 'Đ',
	"vD": 'Ď',
	".E": 'Ė',
	";E": 'Ę',
	"=E": 'Ē',
	"vE": 'Ě',
	",G": 'Ģ',
	".G": 'Ġ',
	"^G": 'Ĝ',
	"uG": 'Ğ',
	"=H": 'Ħ',
	"^H": 'Ĥ',
	".I": 'İ',
	";I": 'Į',
	"=I": 'Ī',
	"uI": 'Ĭ',
	"~I": 'Ĩ',
	"^J": 'Ĵ',
	",K": 'Ķ',
	"'L": 'Ĺ',
	",L": 'Ļ',
	"/L": 'Ł',
	"vL": 'Ľ',
	"'N": 'Ń',
	",N": 'Ņ',
	"vN": 'Ň',
	":O": 'Ő',
	"=O": 'Ō',
	"uO": 'Ŏ',
	"'R": 'Ŕ',
	",R": 'Ŗ',
	"vR": 'Ř',
	"'S": 'Ś',
	",S": 'Ş',
	"^S": 'Ŝ',
	",T": 'Ţ',
	"=T": 'Ŧ',
	"vT": 'Ť',
	":U": 'Ű',
	";U": 'Ų',
	"=U": 'Ū',
	"oU": 'Ů',
	"uU": 'Ŭ',
	"~U": 'Ũ',
	"'Z": 'Ź',
	".Z": 'Ż',
	";a": 'ą',
	"=a": 'ā',
	"oa": 'å',
	"'c": 'ć',
	",c": 'ç',
	".c": 'ċ',
	"^c": 'ĉ',
	"vc": 'č',
	"/d": 'đ',
	"=d": 'đ',
	"vd": 'ď',
	".e": 'ė',
	";e": 'ę',
	"=e": 'ē',
	"ve": 'ě',
	",g": 'ģ',
	".g": 'ġ',
	"^g": 'ĝ',
	"ng": 'ŋ',
	"ug": 'ğ',
	"=h": 'ħ',
	"^h": 'ĥ',
	".i": 'ı',
	";i": 'į',
	"=i": 'ī',
	"ui": 'ĭ',
	"~i": 'ĩ',
	"^j": 'ĵ',
	",k": 'ķ',
	"'l": 'ĺ',
	",l": 'ļ',
	"/l": 'ł',
	"vl": 'ľ',
	"'n": 'ń',
	",n": 'ņ',
	"vn": 'ň',
	":o": 'ő',
	"=o": 'ō',
	"uo": 'ŏ',
	"'r": 'ŕ',
	",r": 'ŗ',
	"vr": 'ř',
	"'s": 'ś',
	",s": 'ş',
	"^s": 'ŝ',
	",t": 'ţ',
	"=t": 'ŧ',
	"vt": 'ť',
	":u": 'ű',
	";u": 'ų',
	"=u": 'ū',
	"ou": 'ů',
	"uu": 'ŭ',
	"~u": 'ũ',
	"'z": 'ź',
	".z": 'ż',
	"-A": 'Ā',
	"-D": 'Đ',
	"-E": 'Ē',
	"-H": 'Ħ',
	"-I": 'Ī',
	"IJ": 'Ĳ',
	".L": 'Ŀ',
	"-O": 'Ō',
	"-T": 'Ŧ',
	"-U": 'Ū',
	"^W": 'Ŵ',
	"^Z": 'Ẑ',
	"-a": 'ā',
	"-d": 'đ',
	"-e": 'ē',
	"Ae": 'æ',
	"Oe": 'œ',
	"-h": 'ħ',
	"-i": 'ī',
	"Ij": 'ĳ',
	"ij": 'ĳ',
	".l": 'ŀ',
	"-u": 'ū',
	"^w": 'ŵ',
	"^z": 'ẑ',
}
