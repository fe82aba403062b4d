package language

// Abbreviations are stored without their trailing dot. Dotted forms such as
// "e.g." and single-letter initials are recognized structurally.

var englishAbbreviations = []string{
	"mr", "mrs", "ms", "dr", "prof", "sr", "jr", "st", "mt", "vs", "etc", "inc", "ltd", "co",
	"corp", "dept", "est", "fig", "gen", "gov", "lt", "col", "capt", "sgt", "rev", "hon",
	"vol", "approx", "jan", "feb", "mar", "apr", "jun", "jul", "aug", "sep", "sept", "oct", "nov",
	"dec", "ave", "blvd", "rd",
}

var frenchAbbreviations = []string{
	"m", "mm", "mme", "mmes", "mlle", "mlles", "dr", "pr", "me", "st", "ste", "etc", "cf", "env",
	"p", "av", "bd", "janv", "févr", "avr", "juil", "sept", "oct", "nov", "déc",
}

var germanAbbreviations = []string{
	"hr", "fr", "dr", "prof", "bzw", "ca", "usw", "vgl", "evtl", "ggf", "inkl", "nr", "str",
	"jh", "geb", "gest", "abs", "bsp", "jan", "feb", "märz", "apr", "aug", "sept", "okt", "nov",
	"dez",
}

var spanishAbbreviations = []string{
	"sr", "sra", "srta", "dr", "dra", "ud", "uds", "lic", "ing", "prof", "etc", "pág", "núm",
	"av", "ene", "feb", "abr", "jun", "jul", "ago", "sept", "oct", "nov", "dic",
}

var italianAbbreviations = []string{
	"sig", "sigg", "sig.ra", "dott", "dr", "prof", "ing", "avv", "ecc", "pag", "n", "gen",
	"feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic",
}

var portugueseAbbreviations = []string{
	"sr", "sra", "srta", "dr", "dra", "prof", "profa", "eng", "av", "etc", "pág", "nº", "jan",
	"fev", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez",
}

var dutchAbbreviations = []string{
	"dhr", "mevr", "mw", "dr", "prof", "ir", "mr", "drs", "ing", "bijv", "enz", "ca", "nl",
	"blz", "nr", "jan", "feb", "mrt", "apr", "jun", "jul", "aug", "sep", "okt", "nov", "dec",
}

var russianAbbreviations = []string{
	"г", "гг", "т", "д", "др", "пр", "см", "стр", "ул", "им", "руб", "коп", "тыс", "млн",
	"млрд", "проф", "акад", "янв", "февр", "авг", "сент", "окт", "нояб", "дек",
}
