// Package tables (see mnemonics.go) also holds the named-entity table.
package tables

// Entities maps an HTML/ABC named entity (without the surrounding "&;",
// e.g. "eacute", "hellip") to the Unicode character it stands for.
var Entities = map[string]rune{
	"AElig": 'Æ',
	"Aacute": 'Á',
	"Abreve": 'Ă',
	"Acirc": 'Â',
	"Agrave": 'À',
	"Aring": 'Å',
	"Atilde": 'Ã',
	"Auml": 'Ä',
	"Ccedil": 'Ç',
	"ETH": 'Ð',
	"Eacute": 'É',
	"Ecirc": 'Ê',
	"Egrave": 'È',
	"Euml": 'Ë',
	"Iacute": 'Í',
	"Icirc": 'Î',
	"Igrave": 'Ì',
	"Iuml": 'Ï',
	"Ntilde": 'Ñ',
	"OElig": 'Œ',
	"Oacute": 'Ó',
	"Ocirc": 'Ô',
	"Ograve": 'Ò',
	"Oslash": 'Ø',
	"Otilde": 'Õ',
	"Ouml": 'Ö',
	"Scaron": 'Š',
	"THORN": 'Þ',
	"Uacute": 'Ú',
	"Ucirc": 'Û',
	"Ugrave": 'Ù',
	"Uuml": 'Ü',
	"Yacute": 'Ý',
	"Ycirc": 'Ŷ',
	"Yuml": 'Ÿ',
	"Zcaron": 'Ž',
	"aacute": 'á',
	"abreve": 'ă',
	"acirc": 'â',
	"aelig": 'æ',
	"agrave": 'à',
	"aring": 'å',
	"atilde": 'ã',
	"auml": 'ä',
	"ccedil": 'ç',
	"eacute": 'é',
	"ecirc": 'ê',
	"egrave": 'è',
	"eth": 'ð',
	"euml": 'ë',
	"iacute": 'í',
	"icirc": 'î',
	"igrave": 'ì',
	"iuml": 'ï',
	"ntilde": 'ñ',
	"oacute": 'ó',
	"ocirc": 'ô',
	"oelig": 'œ',
	"ograve": 'ò',
	"oslash": 'ø',
	"otilde": 'õ',
	"ouml": 'ö',
	"scaron": 'š',
	"szlig": 'ß',
	"thorn": 'þ',
	"uacute": 'ú',
	"ucirc": 'û',
	"ugrave": 'ù',
	"uuml": 'ü',
	"yacute": 'ý',
	"ycirc": 'ŷ',
	"yuml": 'ÿ',
	"zcaron": 'ž',
	"Alpha": 'Α',
	"Beta": 'Β',
	"Chi": 'Χ',
	"Dagger": '‡',
	"Delta": 'Δ',
	"Epsilon": 'Ε',
	"Eta": 'Η',
	"Gamma": 'Γ',
	"Iota": 'Ι',
	"Kappa": 'Κ',
	"Lambda": 'Λ',
	"Mu": 'Μ',
	"Nu": 'Ν',
	"Omega": 'Ω',
	"Omicron": 'Ο',
	"Phi": 'Φ',
	"Pi": 'Π',
	"Prime": '″',
	"Psi": 'Ψ',
	"Rho": 'Ρ',
	"Sigma": 'Σ',
	"Tau": 'Τ',
	"Theta": 'Θ',
	"Upsilon": 'Υ',
	"Xi": 'Ξ',
	"Zeta": 'Ζ',
	"acute": '´',
	"alefsym": 'ℵ',
	"alpha": 'α',
	"amp": '&',
	"and": '⊥',
	"ang": '∠',
	"asymp": '≈',
	"bdquo": '„',
	"beta": 'β',
	"brvbar": '¦',
	"bull": '•',
	"cap": '∩',
	"cedil": '¸',
	"cent": '¢',
	"chi": 'χ',
	"circ": 'ˆ',
	"clubs": '♣',
	"cong": '≅',
	"copy": '©',
	"crarr": '↵',
	"cup": '∪',
	"curren": '¤',
	"dArr": '⇓',
	"dagger": '†',
	"darr": '↓',
	"deg": '°',
	"delta": 'δ',
	"diams": '♦',
	"divide": '÷',
	"empty": '∅',
	"emsp": ' ',
	"ensp": ' ',
	"epsilon": 'ε',
	"equiv": '≡',
	"eta": 'η',
	"exist": '∃',
	"fnof": 'ƒ',
	"forall": '∀',
	"frac12": '½',
	"frac14": '¼',
	"frac34": '¾',
	"frasl": '⁄',
	"gamma": 'γ',
	"ge": '≥',
	"gt": '>',
	"hArr": '⇔',
	"harr": '↔',
	"hearts": '♥',
	"hellip": '…',
	"iexcl": '¡',
	"image": 'ℑ',
	"infin": '∞',
	"int": '∫',
	"iota": 'ι',
	"iquest": '¿',
	"isin": '∈',
	"kappa": 'κ',
	"lArr": '⇐',
	"lambda": 'λ',
	"lang": '〈',
	"laquo": '«',
	"larr": '←',
	"lceil": '⌈',
	"ldquo": '“',
	"le": '≤',
	"lfloor": '⌊',
	"lowast": '∗',
	"loz": '◊',
	"lsaquo": '‹',
	"lsquo": '‘',
	"lt": '<',
	"macr": '¯',
	"mdash": '—',
	"micro": 'µ',
	"middot": '·',
	"minus": '−',
	"mu": 'μ',
	"nabla": '∇',
	"nbsp": ' ',
	"ndash": '–',
	"ne": '≠',
	"ni": '∋',
	"not": '¬',
	"notin": '∉',
	"nsub": '⊄',
	"nu": 'ν',
	"oline": '‾',
	"omega": 'ω',
	"omicron": 'ο',
	"oplus": '⊕',
	"or": '⊦',
	"ordf": 'ª',
	"ordm": 'º',
	"otimes": '⊗',
	"para": '¶',
	"part": '∂',
	"permil": '‰',
	"perp": '⊥',
	"phi": 'φ',
	"pi": 'π',
	"piv": 'ϖ',
	"plusmn": '±',
	"pound": '£',
	"prime": '′',
	"prod": '∏',
	"prop": '∝',
	"psi": 'ψ',
	"quot": '"',
	"rArr": '⇒',
	"radic": '√',
	"rang": '〉',
	"raquo": '»',
	"rarr": '→',
	"rceil": '⌉',
	"rdquo": '”',
	"real": 'ℜ',
	"reg": '®',
	"rfloor": '⌋',
	"rho": 'ρ',
	"rsaquo": '›',
	"rsquo": '’',
	"sbquo": '‚',
	"sdot": '⋅',
	"sect": '§',
	"sigma": 'σ',
	"sigmaf": 'ς',
	"sim": '∼',
	"spades": '♠',
	"sub": '⊂',
	"sube": '⊆',
	"sum": '∑',
	"sup1": '¹',
	"sup2": '²',
	"sup3": '³',
	"sup": '⊃',
	"supe": '⊇',
	"tau": 'τ',
	"there4": '∴',
	"theta": 'θ',
	"thetasym": 'ϑ',
	"thinsp": ' ',
	"tilde": '˜',
	"times": '×',
	"trade": '™',
	"uArr": '⇑',
	"uarr": '↑',
	"uml": '¨',
	"upsih": 'ϒ',
	"upsilon": 'υ',
	"weierp": '℘',
	"xi": 'ξ',
	"yen": '¥',
	"zeta": 'ζ',
}
