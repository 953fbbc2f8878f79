package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"

	"golfclub/client"

	"github.com/stretchr/testify/assert"
)

type fakeAnalyzer struct {
	text   string
	err    error
	prompt string
}

func (f *fakeAnalyzer) AnalyzeImage(ctx context.Context, imageData []byte, mimeType string, prompt string) (string, error) {
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

const scorecardJson = `{"date": "2024-01-10", "course": "Pine Valley", "results": [{"name": "Kim", "score": 90, "frontScore": 44, "backScore": 46}, {"name": "Choi", "score": 85}]}`

func testImage() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("not really a png"))
}

func TestExtractJsonObject(t *testing.T) {
	extracted, err := ExtractJsonObject(scorecardJson)
	assert.Nil(t, err)
	assert.Equal(t, scorecardJson, extracted)

	fenced := "Here is the data you asked for:\n```json\n" + scorecardJson + "\n```\nLet me know if you need more."
	extracted, err = ExtractJsonObject(fenced)
	assert.Nil(t, err)
	assert.Equal(t, scorecardJson, extracted)

	_, err = ExtractJsonObject("I could not read the image, sorry.")
	assert.NotNil(t, err)
	parseError, ok := err.(*ParseError)
	assert.True(t, ok)
	assert.Contains(t, parseError.Error(), "no JSON object")
}

func TestAnalyzeScoreImage(t *testing.T) {
	defer TearDown()
	member := createMember(t, "Kim Minjun")

	analyzer := &fakeAnalyzer{text: "```json\n" + scorecardJson + "\n```"}
	scorecardService := NewScorecardServiceWithAnalyzer(db, analyzer)

	data, err := scorecardService.AnalyzeScoreImage(context.Background(), testImage())
	assert.Nil(t, err)
	assert.Equal(t, "2024-01-10", data.Date)
	assert.Equal(t, "Pine Valley", data.Course)
	assert.Len(t, data.Results, 2)

	// "Kim Minjun" contains the extracted "Kim"
	assert.NotNil(t, data.Results[0].MemberId)
	assert.Equal(t, member.Id, *data.Results[0].MemberId)
	assert.Equal(t, 44, *data.Results[0].FrontScore)
	assert.Equal(t, 46, *data.Results[0].BackScore)

	// "Choi" is unknown and stays a placeholder
	assert.Nil(t, data.Results[1].MemberId)
	assert.Equal(t, "Choi", data.Results[1].Name)

	assert.Contains(t, analyzer.prompt, "YYYY-MM-DD")
}

func TestAnalyzeScoreImageDefaultsMimeType(t *testing.T) {
	defer TearDown()
	analyzer := &fakeAnalyzer{text: scorecardJson}
	scorecardService := NewScorecardServiceWithAnalyzer(db, analyzer)

	bare := base64.StdEncoding.EncodeToString([]byte("raw jpeg bytes"))
	_, err := scorecardService.AnalyzeScoreImage(context.Background(), bare)
	assert.Nil(t, err)
}

func TestAnalyzeScoreImageMalformedJson(t *testing.T) {
	defer TearDown()
	analyzer := &fakeAnalyzer{text: `{"date": "2024-01-10", "results": [`}
	scorecardService := NewScorecardServiceWithAnalyzer(db, analyzer)

	_, err := scorecardService.AnalyzeScoreImage(context.Background(), testImage())
	assert.NotNil(t, err)
	_, ok := err.(*ParseError)
	assert.True(t, ok)
}

func TestAnalyzeScoreImagePassesServiceErrorsThrough(t *testing.T) {
	defer TearDown()
	quotaError := client.ClassifyServiceError("429 quota exceeded for model")
	analyzer := &fakeAnalyzer{err: quotaError}
	scorecardService := NewScorecardServiceWithAnalyzer(db, analyzer)

	_, err := scorecardService.AnalyzeScoreImage(context.Background(), testImage())
	assert.Equal(t, quotaError, err)
}

func TestMatchMember(t *testing.T) {
	defer TearDown()
	createMember(t, "Kim Minjun")
	createMember(t, "Lee")
	members, err := NewMemberService(db).GetAllMembers()
	assert.Nil(t, err)

	// extracted name contained in member name
	match := MatchMember(members, "Kim")
	assert.NotNil(t, match)
	assert.Equal(t, "Kim Minjun", match.Name)

	// member name contained in extracted name
	match = MatchMember(members, "Lee Seoyun")
	assert.NotNil(t, match)
	assert.Equal(t, "Lee", match.Name)

	assert.Nil(t, MatchMember(members, "Park"))
	assert.Nil(t, MatchMember(members, ""))
}

func TestClassifyServiceError(t *testing.T) {
	cases := []struct {
		message string
		kind    client.ServiceErrorKind
	}{
		{"404 model gemini-x not found", client.ServiceErrorModelNotFound},
		{"429 resource exhausted", client.ServiceErrorQuotaExceeded},
		{"quota exceeded, please retry", client.ServiceErrorQuotaExceeded},
		{"connection reset by peer", client.ServiceErrorGeneric},
	}
	for _, c := range cases {
		err := client.ClassifyServiceError(c.message)
		assert.Equal(t, c.kind, err.Kind, fmt.Sprintf("message: %s", c.message))
	}
}
