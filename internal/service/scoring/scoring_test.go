package scoring

import (
	"testing"

	"github.com/maplecrest/canscore/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestScoreAge(t *testing.T) {
	for age, want := range agePoints {
		assert.Equalf(t, want, ScoreAge(age), "age %d", age)
	}

	for _, age := range []int{-3, 0, 16, 46, 47, 99} {
		assert.Zerof(t, ScoreAge(age), "age %d outside the table must score zero", age)
	}
}

func TestScoreLanguage(t *testing.T) {
	score := ScoreLanguage(domain.LanguageTestIELTS, domain.LanguageSkills{
		Speaking:  "7.5",
		Listening: "8.0",
		Reading:   "6.5",
		Writing:   "6.0",
	})

	assert.Equal(t, 6, score.Speaking)
	assert.Equal(t, 6, score.Listening)
	assert.Equal(t, 5, score.Reading)
	assert.Equal(t, 4, score.Writing)
	assert.Equal(t, 21, score.Total)
}

func TestScoreLanguageUnknownTokens(t *testing.T) {
	score := ScoreLanguage(domain.LanguageTestIELTS, domain.LanguageSkills{
		Speaking:  "banana",
		Listening: "10-12",
		Reading:   "",
		Writing:   "5.5",
	})
	assert.Equal(t, domain.LanguageScore{}, score)

	score = ScoreLanguage("tef", domain.LanguageSkills{Speaking: "7.5"})
	assert.Equal(t, domain.LanguageScore{}, score, "unknown test kind must score zero, not error")
}

func TestScoreSecondLanguage(t *testing.T) {
	qualifying := domain.LanguageSkills{
		Speaking:  "5.0",
		Listening: "5.0",
		Reading:   "4.0",
		Writing:   "5.0",
	}
	assert.Equal(t, 4, ScoreSecondLanguage(domain.LanguageTestIELTS, qualifying))

	// One skill below threshold kills the whole bonus.
	oneShort := qualifying
	oneShort.Reading = "3.5"
	assert.Equal(t, 0, ScoreSecondLanguage(domain.LanguageTestIELTS, oneShort))

	assert.Equal(t, 0, ScoreSecondLanguage("", qualifying))
	assert.Equal(t, 0, ScoreSecondLanguage(domain.LanguageTestIELTS, domain.LanguageSkills{}))

	assert.Equal(t, 4, ScoreSecondLanguage(domain.LanguageTestCELPIP, domain.LanguageSkills{
		Speaking:  "5",
		Listening: "6",
		Reading:   "10-12",
		Writing:   "7",
	}))
}

func TestScoreJobOffer(t *testing.T) {
	assert.Zero(t, ScoreJobOffer(true))
	assert.Zero(t, ScoreJobOffer(false))
}

func TestScoreSpouseFactorsGating(t *testing.T) {
	spouse := domain.SpouseProfile{
		IsAccompanying:         true,
		CanadianEducation:      true,
		CanadianWorkExperience: true,
		LanguageTest:           domain.LanguageTestCELPIP,
		LanguageSkills: domain.LanguageSkills{
			Speaking: "4", Listening: "4", Reading: "4", Writing: "4",
		},
	}

	single := &domain.ApplicantProfile{
		MaritalStatus: domain.MaritalStatusSingle,
		Spouse:        spouse,
	}
	assert.Equal(t, domain.SpouseFactors{}, ScoreSpouseFactors(single),
		"single applicants score no spouse points no matter what spouse fields hold")

	notAccompanying := &domain.ApplicantProfile{
		MaritalStatus: domain.MaritalStatusMarried,
		Spouse:        spouse,
	}
	notAccompanying.Spouse.IsAccompanying = false
	assert.Equal(t, domain.SpouseFactors{}, ScoreSpouseFactors(notAccompanying))

	citizenSpouse := &domain.ApplicantProfile{
		MaritalStatus: domain.MaritalStatusMarried,
		Spouse:        spouse,
	}
	citizenSpouse.Spouse.IsCitizen = true
	assert.Equal(t, domain.SpouseFactors{}, ScoreSpouseFactors(citizenSpouse))

	eligible := &domain.ApplicantProfile{
		MaritalStatus: domain.MaritalStatusCommonLaw,
		Spouse:        spouse,
	}
	assert.Equal(t, domain.SpouseFactors{
		WorkExperience: 5,
		Education:      5,
		Language:       5,
	}, ScoreSpouseFactors(eligible))
}

func TestScoreSpouseLanguageThreshold(t *testing.T) {
	profile := &domain.ApplicantProfile{
		MaritalStatus: domain.MaritalStatusMarried,
		Spouse: domain.SpouseProfile{
			IsAccompanying: true,
			LanguageTest:   domain.LanguageTestIELTS,
			LanguageSkills: domain.LanguageSkills{
				Speaking: "4.0", Listening: "4.5", Reading: "3.5", Writing: "4.0",
			},
		},
	}
	assert.Equal(t, 5, ScoreSpouseFactors(profile).Language)

	profile.Spouse.LanguageSkills.Listening = "4.0"
	assert.Equal(t, 0, ScoreSpouseFactors(profile).Language,
		"spouse bonus is all four skills or nothing")
}

func TestComputeTotalAdditionalCap(t *testing.T) {
	profile := &domain.ApplicantProfile{
		MaritalStatus:          domain.MaritalStatusMarried,
		CanadianEducation:      true,
		CanadianWorkExperience: "1-year-or-more",
		Spouse: domain.SpouseProfile{
			IsAccompanying: true,
			LanguageTest:   domain.LanguageTestCELPIP,
			LanguageSkills: domain.LanguageSkills{
				Speaking: "4", Listening: "4", Reading: "4", Writing: "4",
			},
		},
	}

	breakdown := ComputeTotal(profile)

	raw := breakdown.JobOffer +
		breakdown.CanadianEducation +
		breakdown.CanadianWorkExperience +
		breakdown.SpouseWorkExperience +
		breakdown.SpouseCanadianEducation +
		breakdown.SpouseLanguage
	assert.Equal(t, 20, raw)
	assert.Equal(t, 10, breakdown.Additional, "additional factors never exceed the cap")
	assert.Equal(t, breakdown.Core+breakdown.Additional, breakdown.Total)
}

func TestComputeTotalIdentity(t *testing.T) {
	profiles := []*domain.ApplicantProfile{
		{},
		{Age: 29, Education: "masters", WorkExperience: "4-5-years"},
		{
			Age:           35,
			MaritalStatus: domain.MaritalStatusMarried,
			Education:     "phd",
			LanguageTest:  domain.LanguageTestIELTS,
			LanguageSkills: domain.LanguageSkills{
				Speaking: "7.0", Listening: "8.0", Reading: "7.0", Writing: "7.0",
			},
			SecondLanguageTest: domain.LanguageTestCELPIP,
			SecondLanguageSkills: domain.LanguageSkills{
				Speaking: "5", Listening: "5", Reading: "5", Writing: "5",
			},
			WorkExperience:         "6-or-more-years",
			CanadianWorkExperience: "1-year-or-more",
			CanadianEducation:      true,
			RelativesInCanada:      true,
			Spouse: domain.SpouseProfile{
				IsAccompanying:         true,
				CanadianWorkExperience: true,
			},
		},
	}

	for _, profile := range profiles {
		breakdown := ComputeTotal(profile)
		assert.Equal(t, breakdown.Core+breakdown.Additional, breakdown.Total)
		assert.LessOrEqual(t, breakdown.Additional, 10)
	}
}

func TestComputeTotalEmptyProfile(t *testing.T) {
	breakdown := ComputeTotal(&domain.ApplicantProfile{})

	assert.Zero(t, breakdown.Total, "an empty form scores zero, it does not error")
	assert.Zero(t, breakdown.Core)
	assert.Zero(t, breakdown.Additional)
}

func TestComputeTotalFullProfile(t *testing.T) {
	profile := &domain.ApplicantProfile{
		Age:           30,
		MaritalStatus: domain.MaritalStatusSingle,
		Education:     "bachelors",
		LanguageTest:  domain.LanguageTestIELTS,
		LanguageSkills: domain.LanguageSkills{
			Speaking: "6.5", Listening: "7.5", Reading: "6.5", Writing: "6.5",
		},
		WorkExperience:    "2-3-years",
		RelativesInCanada: true,
	}

	breakdown := ComputeTotal(profile)

	assert.Equal(t, 20, breakdown.Language.Total)
	assert.Equal(t, 21, breakdown.Education)
	assert.Equal(t, 11, breakdown.WorkExperience)
	assert.Equal(t, 12, breakdown.Age)
	assert.Equal(t, 64, breakdown.Core)
	assert.Equal(t, 0, breakdown.Additional)
	assert.Equal(t, 5, breakdown.Adaptability, "relatives award shows in the breakdown line")
	assert.Equal(t, 64, breakdown.Total)
}
