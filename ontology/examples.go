package ontology

import "github.com/c360studio/nluentities/language"

// Examples returns illustrative inputs for the kind in the given language.
// The returned slice may be empty: a language can be supported while its
// engine does not yet ship curated examples (Japanese currently only has
// examples for Number).
func (k BuiltinEntityKind) Examples(l language.Language) []string {
	switch l {
	case language.DE:
		return deExamples[k]
	case language.EN:
		return enExamples[k]
	case language.ES:
		return esExamples[k]
	case language.FR:
		return frExamples[k]
	case language.JA:
		return jaExamples[k]
	case language.KO:
		return koExamples[k]
	}
	return nil
}

var deExamples = map[BuiltinEntityKind][]string{
	AmountOfMoney: {
		"10$",
		"ungefähr 5€",
		"zwei tausend Dollar",
	},
	Duration: {
		"2stdn",
		"drei monate",
		"ein halbe Stunde",
		"8 Jahre und zwei Tage",
	},
	Number: {
		"2001",
		"einundzwanzig",
		"zwei tausend",
		"zwei tausend und drei",
	},
	Ordinal: {
		"Erste",
		"der zweite",
		"zwei und zwanzigster",
	},
	Temperature: {
		"70K",
		"3°C",
		"Dreiundzwanzig Grad",
		"zweiunddreißig Grad Fahrenheit",
	},
	Time: {
		"Heute",
		"16.30 Uhr",
		"in 1 Stunde",
		"dritter Dienstag im Juni",
	},
	Percentage: {
		"25%",
		"zwanzig Prozent",
		"zwei tausend und fünfzig Prozent",
	},
}

var enExamples = map[BuiltinEntityKind][]string{
	AmountOfMoney: {
		"10$",
		"around 5€",
		"ten dollars and five cents",
	},
	Duration: {
		"1h",
		"3 months",
		"half an hour",
		"8 years and two days",
	},
	Number: {
		"2001",
		"twenty one",
		"three hundred and four",
	},
	Ordinal: {
		"1st",
		"the second",
		"the twenty third",
	},
	Temperature: {
		"70K",
		"3°C",
		"Twenty three degrees",
		"one hundred degrees fahrenheit",
	},
	Time: {
		"Today",
		"4:30 pm",
		"in 1 hour",
		"3rd tuesday of June",
	},
	Percentage: {
		"25%",
		"twenty percent",
		"two hundred and fifty percents",
	},
}

// Spanish examples are reduced: the bundled engine does not yet recognize
// the longer compound forms.
var esExamples = map[BuiltinEntityKind][]string{
	AmountOfMoney: {
		"10$",
		"cinco euros",
		"diez dólares y cinco centavos",
	},
	Duration: {
		"1h",
		"3 meses",
	},
	Number: {
		"2001",
		"diez y ocho",
	},
	Ordinal: {
		"primer",
	},
	Temperature: {
		"70K",
		"3°C",
		"veintitrés grados",
	},
	Time: {
		"hoy",
		"esta noche",
		"a la 1:30",
		"el primer jueves de junio",
	},
	Percentage: {
		"25%",
		"quince porcientos",
		"20 por ciento",
	},
}

var frExamples = map[BuiltinEntityKind][]string{
	AmountOfMoney: {
		"10$",
		"environ 5€",
		"dix dollars et cinq centimes",
	},
	Duration: {
		"1h",
		"3 mois",
		"une demi heure",
		"8 ans et deux jours",
	},
	Number: {
		"2001",
		"vingt deux",
		"deux cent trois",
		"quatre vingt dix neuf",
	},
	Ordinal: {
		"1er",
		"le deuxième",
		"vingt et unieme",
	},
	Temperature: {
		"70K",
		"3°C",
		"vingt trois degrés",
		"deux cent degrés Fahrenheit",
	},
	Time: {
		"Aujourd'hui",
		"à 14:30",
		"dans 1 heure",
		"le premier jeudi de Juin",
	},
	Percentage: {
		"25%",
		"20 pourcents",
		"quatre vingt dix pourcents",
	},
}

var jaExamples = map[BuiltinEntityKind][]string{
	AmountOfMoney: {},
	Duration:      {},
	Number: {
		"十二",
		"二千五",
		"四千三百二",
	},
	Ordinal:     {},
	Temperature: {},
	Time:        {},
	Percentage:  {},
}

var koExamples = map[BuiltinEntityKind][]string{
	AmountOfMoney: {
		"10$",
		"약 5 유로",
		"10 달러 5 센트",
	},
	Duration: {
		"양일",
		"1시간",
		"3 개월",
	},
	Number: {
		"2001",
		"삼천",
		"스물 둘",
		"천 아흔 아홉",
	},
	Ordinal: {
		"첫",
		"첫번째",
	},
	Temperature: {
		"5도",
		"섭씨 20도",
		"화씨 백 도",
	},
	Time: {
		"오늘",
		"14시 30 분에",
		"5 월 첫째 목요일",
	},
	Percentage: {},
}
