package domain

// LanguageScore itemizes first-language points per skill.
type LanguageScore struct {
	Speaking  int `json:"speaking"`
	Listening int `json:"listening"`
	Reading   int `json:"reading"`
	Writing   int `json:"writing"`
	Total     int `json:"total"`
}

type CanadianFactors struct {
	Education      int `json:"education"`
	WorkExperience int `json:"work_experience"`
}

type SpouseFactors struct {
	WorkExperience int `json:"work_experience"`
	Education      int `json:"education"`
	Language       int `json:"language"`
}

// ScoreBreakdown is the itemized scoring output. Core sums language,
// second language, education, experience and age; Additional is the six
// remaining awards with a single cap applied to their sum; Total is
// always Core + Additional.
type ScoreBreakdown struct {
	Language                LanguageScore `json:"language"`
	SecondLanguage          int           `json:"second_language"`
	Education               int           `json:"education"`
	WorkExperience          int           `json:"work_experience"`
	Age                     int           `json:"age"`
	JobOffer                int           `json:"job_offer"`
	CanadianEducation       int           `json:"canadian_education"`
	CanadianWorkExperience  int           `json:"canadian_work_experience"`
	SpouseWorkExperience    int           `json:"spouse_work_experience"`
	SpouseCanadianEducation int           `json:"spouse_canadian_education"`
	SpouseLanguage          int           `json:"spouse_language"`
	Adaptability            int           `json:"adaptability"`

	Core       int `json:"core"`
	Additional int `json:"additional"`
	Total      int `json:"total"`
}

type ScoreResponse struct {
	Total     int             `json:"total"`
	Breakdown *ScoreBreakdown `json:"breakdown"`
}
