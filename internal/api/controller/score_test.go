package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/maplecrest/canscore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postScore(t *testing.T, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/score/calculate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := NewController(nil, nil)
	return rec, c.CalculateScore(e.NewContext(req, rec))
}

func TestCalculateScore(t *testing.T) {
	body := `{
		"age": 30,
		"marital_status": "single",
		"education": "masters",
		"language_test": "ielts",
		"language_skills": {"speaking": "7.5", "listening": "8.0", "reading": "6.5", "writing": "6.0"},
		"work_experience": "4-5-years",
		"canadian_work_experience": "1-year-or-more",
		"canadian_education": true
	}`

	rec, err := postScore(t, body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.ScoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// Core: language 21 + education 23 + experience 13 + age 12 = 69.
	assert.Equal(t, 69, resp.Breakdown.Core)
	// Additional: canadian education 5 + canadian work 10 = 15, capped at 10.
	assert.Equal(t, 10, resp.Breakdown.Additional)
	assert.Equal(t, 79, resp.Total)
	assert.Equal(t, resp.Breakdown.Total, resp.Total)
}

func TestCalculateScoreEmptyProfile(t *testing.T) {
	rec, err := postScore(t, `{}`)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.ScoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Zero(t, resp.Total)
}
