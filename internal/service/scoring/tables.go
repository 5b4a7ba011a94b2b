package scoring

import (
	"github.com/maplecrest/canscore/internal/domain"
)

// Rule tables below encode regulatory point values and must stay in exact
// agreement with the published program grids; tests assert the constants
// verbatim. None of the maps are mutated after init.

const (
	secondLanguageBonus = 4
	spouseLanguageBonus = 5

	canadianEducationAward = 5
	canadianWorkAward      = 10
	spouseWorkAward        = 5
	spouseEducationAward   = 5
	relativesInCanadaAward = 5

	// Six additional awards can sum well past this; the cap is applied once,
	// on the sum, never per category.
	additionalFactorsCap = 10
)

// Canadian work experience bucket that qualifies for the fixed award.
const canadianWorkQualifyingBucket = "1-year-or-more"

type skillTable struct {
	speaking  map[string]int
	listening map[string]int
	reading   map[string]int
	writing   map[string]int
}

type skillSets struct {
	speaking  map[string]bool
	listening map[string]bool
	reading   map[string]bool
	writing   map[string]bool
}

func tokens(list ...string) map[string]bool {
	set := make(map[string]bool, len(list))
	for _, t := range list {
		set[t] = true
	}
	return set
}

// First-language points per skill, keyed by the raw score token the form
// submits. Tokens outside the table score zero.
var firstLanguagePoints = map[domain.LanguageTest]skillTable{
	domain.LanguageTestIELTS: {
		speaking: map[string]int{
			"7.0": 6, "7.5": 6, "8.0": 6, "8.5": 6, "9.0": 6,
			"6.5": 5,
			"6.0": 4,
		},
		listening: map[string]int{
			"8.0": 6, "8.5": 6, "9.0": 6,
			"7.5": 5,
			"6.0": 4, "6.5": 4, "7.0": 4,
		},
		reading: map[string]int{
			"7.0": 6, "7.5": 6, "8.0": 6, "8.5": 6, "9.0": 6,
			"6.5": 5,
			"6.0": 4,
		},
		writing: map[string]int{
			"7.0": 6, "7.5": 6, "8.0": 6, "8.5": 6, "9.0": 6,
			"6.5": 5,
			"6.0": 4,
		},
	},
	domain.LanguageTestCELPIP: {
		speaking: map[string]int{
			"9": 6, "10": 6, "11": 6, "12": 6, "10-12": 6,
			"8": 5,
			"7": 4,
		},
		listening: map[string]int{
			"9": 6, "10": 6, "11": 6, "12": 6, "10-12": 6,
			"8": 5,
			"7": 4,
		},
		reading: map[string]int{
			"9": 6, "10": 6, "11": 6, "12": 6, "10-12": 6,
			"8": 5,
			"7": 4,
		},
		writing: map[string]int{
			"9": 6, "10": 6, "11": 6, "12": 6, "10-12": 6,
			"8": 5,
			"7": 4,
		},
	},
}

// Tokens qualifying at CLB 5 or better, per skill. The second-language bonus
// requires all four skills to be members of their set.
var clb5Tokens = map[domain.LanguageTest]skillSets{
	domain.LanguageTestIELTS: {
		speaking:  tokens("5.0", "5.5", "6.0", "6.5", "7.0", "7.5", "8.0", "8.5", "9.0"),
		listening: tokens("5.0", "5.5", "6.0", "6.5", "7.0", "7.5", "8.0", "8.5", "9.0"),
		reading:   tokens("4.0", "4.5", "5.0", "5.5", "6.0", "6.5", "7.0", "7.5", "8.0", "8.5", "9.0"),
		writing:   tokens("5.0", "5.5", "6.0", "6.5", "7.0", "7.5", "8.0", "8.5", "9.0"),
	},
	domain.LanguageTestCELPIP: {
		speaking:  tokens("5", "6", "7", "8", "9", "10", "11", "12", "10-12"),
		listening: tokens("5", "6", "7", "8", "9", "10", "11", "12", "10-12"),
		reading:   tokens("5", "6", "7", "8", "9", "10", "11", "12", "10-12"),
		writing:   tokens("5", "6", "7", "8", "9", "10", "11", "12", "10-12"),
	},
}

// Tokens qualifying at CLB 4 or better; the spouse-language award uses this
// lower threshold.
var clb4Tokens = map[domain.LanguageTest]skillSets{
	domain.LanguageTestIELTS: {
		speaking:  tokens("4.0", "4.5", "5.0", "5.5", "6.0", "6.5", "7.0", "7.5", "8.0", "8.5", "9.0"),
		listening: tokens("4.5", "5.0", "5.5", "6.0", "6.5", "7.0", "7.5", "8.0", "8.5", "9.0"),
		reading:   tokens("3.5", "4.0", "4.5", "5.0", "5.5", "6.0", "6.5", "7.0", "7.5", "8.0", "8.5", "9.0"),
		writing:   tokens("4.0", "4.5", "5.0", "5.5", "6.0", "6.5", "7.0", "7.5", "8.0", "8.5", "9.0"),
	},
	domain.LanguageTestCELPIP: {
		speaking:  tokens("4", "5", "6", "7", "8", "9", "10", "11", "12", "10-12"),
		listening: tokens("4", "5", "6", "7", "8", "9", "10", "11", "12", "10-12"),
		reading:   tokens("4", "5", "6", "7", "8", "9", "10", "11", "12", "10-12"),
		writing:   tokens("4", "5", "6", "7", "8", "9", "10", "11", "12", "10-12"),
	},
}

var educationPoints = map[string]int{
	"phd":                 25,
	"masters":             23,
	"professional-degree": 23,
	"two-or-more-degrees": 22,
	"bachelors":           21,
	"two-year-diploma":    19,
	"one-year-diploma":    15,
	"secondary":           5,
}

var workExperiencePoints = map[string]int{
	"1-year":          9,
	"2-3-years":       11,
	"4-5-years":       13,
	"6-or-more-years": 15,
}

var agePoints = map[int]int{
	17: 0,
	18: 12, 19: 12, 20: 12, 21: 12, 22: 12, 23: 12,
	24: 12, 25: 12, 26: 12, 27: 12, 28: 12, 29: 12,
	30: 12, 31: 12, 32: 12, 33: 12, 34: 12, 35: 12,
	36: 11,
	37: 10,
	38: 9,
	39: 8,
	40: 7,
	41: 6,
	42: 5,
	43: 4,
	44: 3,
	45: 2,
}
