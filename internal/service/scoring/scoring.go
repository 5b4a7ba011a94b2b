// Package scoring maps an applicant profile onto the federal points grid.
// Every lookup is total: unknown enum values and missing fields resolve to
// zero points rather than errors, so a half-filled multi-step form still
// scores. Nothing here performs I/O and all arithmetic is integer.
package scoring

import (
	"github.com/maplecrest/canscore/internal/domain"
)

// ScoreLanguage itemizes first-language points per skill for the given test.
func ScoreLanguage(test domain.LanguageTest, skills domain.LanguageSkills) domain.LanguageScore {
	table, ok := firstLanguagePoints[test]
	if !ok {
		return domain.LanguageScore{}
	}

	score := domain.LanguageScore{
		Speaking:  table.speaking[skills.Speaking],
		Listening: table.listening[skills.Listening],
		Reading:   table.reading[skills.Reading],
		Writing:   table.writing[skills.Writing],
	}
	score.Total = score.Speaking + score.Listening + score.Reading + score.Writing

	return score
}

// ScoreSecondLanguage awards the fixed bonus only when all four skills
// qualify at CLB 5; there is no partial credit.
func ScoreSecondLanguage(test domain.LanguageTest, skills domain.LanguageSkills) int {
	if meetsThreshold(clb5Tokens, test, skills) {
		return secondLanguageBonus
	}
	return 0
}

func ScoreEducation(level string) int {
	return educationPoints[level]
}

func ScoreWorkExperience(bucket string) int {
	return workExperiencePoints[bucket]
}

func ScoreAge(age int) int {
	return agePoints[age]
}

// ScoreJobOffer always returns zero: arranged-employment points were removed
// by ministerial instruction and the line is kept as an explicit constant so
// the breakdown still itemizes it.
func ScoreJobOffer(_ bool) int {
	return 0
}

func ScoreCanadianFactors(profile *domain.ApplicantProfile) domain.CanadianFactors {
	factors := domain.CanadianFactors{}
	if profile.CanadianEducation {
		factors.Education = canadianEducationAward
	}
	if profile.CanadianWorkExperience == canadianWorkQualifyingBucket {
		factors.WorkExperience = canadianWorkAward
	}
	return factors
}

// ScoreSpouseFactors gates every spouse award behind the eligibility triple:
// married or common-law, spouse not a citizen, spouse accompanying.
func ScoreSpouseFactors(profile *domain.ApplicantProfile) domain.SpouseFactors {
	factors := domain.SpouseFactors{}
	if !profile.HasEligibleSpouse() {
		return factors
	}

	if profile.Spouse.CanadianWorkExperience {
		factors.WorkExperience = spouseWorkAward
	}
	if profile.Spouse.CanadianEducation {
		factors.Education = spouseEducationAward
	}
	if meetsThreshold(clb4Tokens, profile.Spouse.LanguageTest, profile.Spouse.LanguageSkills) {
		factors.Language = spouseLanguageBonus
	}

	return factors
}

// ScoreAdaptability sums the applicant-side adaptability awards. No cap is
// applied here; capping happens once at the additional-factors aggregation.
func ScoreAdaptability(profile *domain.ApplicantProfile) int {
	points := 0
	if profile.CanadianEducation {
		points += canadianEducationAward
	}
	if profile.CanadianWorkExperience == canadianWorkQualifyingBucket {
		points += canadianWorkAward
	}
	if profile.RelativesInCanada {
		points += relativesInCanadaAward
	}
	return points
}

// ComputeTotal composes the full breakdown. Core is language + second
// language + education + experience + age; the six additional awards are
// summed and capped once; total is always core + capped additional.
func ComputeTotal(profile *domain.ApplicantProfile) *domain.ScoreBreakdown {
	language := ScoreLanguage(profile.LanguageTest, profile.LanguageSkills)
	canadian := ScoreCanadianFactors(profile)
	spouse := ScoreSpouseFactors(profile)

	breakdown := &domain.ScoreBreakdown{
		Language:                language,
		SecondLanguage:          ScoreSecondLanguage(profile.SecondLanguageTest, profile.SecondLanguageSkills),
		Education:               ScoreEducation(profile.Education),
		WorkExperience:          ScoreWorkExperience(profile.WorkExperience),
		Age:                     ScoreAge(profile.Age),
		JobOffer:                ScoreJobOffer(profile.HasJobOffer),
		CanadianEducation:       canadian.Education,
		CanadianWorkExperience:  canadian.WorkExperience,
		SpouseWorkExperience:    spouse.WorkExperience,
		SpouseCanadianEducation: spouse.Education,
		SpouseLanguage:          spouse.Language,
		Adaptability:            ScoreAdaptability(profile),
	}

	breakdown.Core = breakdown.Language.Total +
		breakdown.SecondLanguage +
		breakdown.Education +
		breakdown.WorkExperience +
		breakdown.Age

	additionalRaw := breakdown.JobOffer +
		breakdown.CanadianEducation +
		breakdown.CanadianWorkExperience +
		breakdown.SpouseWorkExperience +
		breakdown.SpouseCanadianEducation +
		breakdown.SpouseLanguage

	breakdown.Additional = additionalRaw
	if breakdown.Additional > additionalFactorsCap {
		breakdown.Additional = additionalFactorsCap
	}

	breakdown.Total = breakdown.Core + breakdown.Additional

	return breakdown
}

func meetsThreshold(sets map[domain.LanguageTest]skillSets, test domain.LanguageTest, skills domain.LanguageSkills) bool {
	set, ok := sets[test]
	if !ok {
		return false
	}
	return set.speaking[skills.Speaking] &&
		set.listening[skills.Listening] &&
		set.reading[skills.Reading] &&
		set.writing[skills.Writing]
}
