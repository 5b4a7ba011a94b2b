package domain

type MaritalStatus = string

const (
	MaritalStatusSingle    MaritalStatus = "single"
	MaritalStatusMarried   MaritalStatus = "married"
	MaritalStatusCommonLaw MaritalStatus = "common-law"
)

type LanguageTest = string

const (
	LanguageTestIELTS  LanguageTest = "ielts"
	LanguageTestCELPIP LanguageTest = "celpip"
)

// LanguageSkills holds the four raw score tokens exactly as the applicant
// selected them, e.g. "7.5" for IELTS or "10-12" for CELPIP.
type LanguageSkills struct {
	Speaking  string `json:"speaking,omitempty"`
	Listening string `json:"listening,omitempty"`
	Reading   string `json:"reading,omitempty"`
	Writing   string `json:"writing,omitempty"`
}

type SpouseProfile struct {
	IsCitizen              bool           `json:"is_citizen,omitempty"`
	IsAccompanying         bool           `json:"is_accompanying,omitempty"`
	CanadianEducation      bool           `json:"canadian_education,omitempty"`
	CanadianWorkExperience bool           `json:"canadian_work_experience,omitempty"`
	LanguageTest           LanguageTest   `json:"language_test,omitempty"`
	LanguageSkills         LanguageSkills `json:"language_skills,omitempty"`
}

// ApplicantProfile is the scoring input. Every field is optional so that a
// partially filled multi-step form still produces a score; missing or
// unrecognized values resolve to zero points, never to an error.
type ApplicantProfile struct {
	Age           int           `json:"age,omitempty"`
	MaritalStatus MaritalStatus `json:"marital_status,omitempty"`

	Education string `json:"education,omitempty"`

	LanguageTest         LanguageTest   `json:"language_test,omitempty"`
	LanguageSkills       LanguageSkills `json:"language_skills,omitempty"`
	SecondLanguageTest   LanguageTest   `json:"second_language_test,omitempty"`
	SecondLanguageSkills LanguageSkills `json:"second_language_skills,omitempty"`

	WorkExperience         string `json:"work_experience,omitempty"`
	CanadianWorkExperience string `json:"canadian_work_experience,omitempty"`
	CanadianEducation      bool   `json:"canadian_education,omitempty"`

	HasJobOffer       bool `json:"has_job_offer,omitempty"`
	ProvincialNominee bool `json:"provincial_nominee,omitempty"`
	RelativesInCanada bool `json:"relatives_in_canada,omitempty"`

	Spouse SpouseProfile `json:"spouse,omitempty"`
}

// HasEligibleSpouse reports whether spouse factors may contribute points:
// married or common-law, spouse not a citizen, and spouse accompanying.
func (p *ApplicantProfile) HasEligibleSpouse() bool {
	if p.MaritalStatus != MaritalStatusMarried && p.MaritalStatus != MaritalStatusCommonLaw {
		return false
	}
	return !p.Spouse.IsCitizen && p.Spouse.IsAccompanying
}
