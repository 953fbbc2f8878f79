package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"golfclub/client"
	"golfclub/config"
	"golfclub/metrics"
	"golfclub/repository"

	"gorm.io/gorm"
)

// ScorecardAnalyzer abstracts the multimodal model call so that the
// extraction and reconciliation logic can be tested with a fake returning
// fixed text.
type ScorecardAnalyzer interface {
	AnalyzeImage(ctx context.Context, imageData []byte, mimeType string, prompt string) (string, error)
}

// ParseError is returned when the model response contains no parseable JSON
// object. It is distinct from service errors so the caller can prompt for
// manual entry instead of retrying.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("the model did not return valid scorecard data: %s", e.Reason)
}

type ScorecardResult struct {
	Name       string `json:"name"`
	MemberId   *int   `json:"memberId,omitempty"`
	Score      int    `json:"score"`
	FrontScore *int   `json:"frontScore,omitempty"`
	BackScore  *int   `json:"backScore,omitempty"`
}

type ScorecardData struct {
	Date    string            `json:"date"`
	Course  string            `json:"course"`
	Results []ScorecardResult `json:"results"`
}

type ScorecardService struct {
	analyzer         ScorecardAnalyzer
	memberRepository *repository.MemberRepository
}

func NewScorecardService(db *gorm.DB) *ScorecardService {
	cfg := config.Env()
	return NewScorecardServiceWithAnalyzer(db, client.NewGeminiClient(cfg.GeminiApiKey, cfg.GeminiModel))
}

func NewScorecardServiceWithAnalyzer(db *gorm.DB, analyzer ScorecardAnalyzer) *ScorecardService {
	return &ScorecardService{
		analyzer:         analyzer,
		memberRepository: repository.NewMemberRepository(db),
	}
}

var dataUrlPattern = regexp.MustCompile(`^data:([^;]+);base64,(.+)$`)

// first top-level { to the last }, tolerating prose and markdown fences
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractJsonObject pulls the first top-level JSON object out of raw model
// text, which may wrap it in explanations or a fenced code block.
func ExtractJsonObject(text string) (string, error) {
	match := jsonObjectPattern.FindString(text)
	if match == "" {
		return "", &ParseError{Reason: "no JSON object found in the response"}
	}
	return match, nil
}

// AnalyzeScoreImage runs the full extraction workflow: decode the image,
// call the model with the fixed prompt contract, parse the constrained JSON
// response and reconcile extracted names against known members. No retry is
// performed here; the caller decides based on the error kind.
func (s *ScorecardService) AnalyzeScoreImage(ctx context.Context, base64Image string) (*ScorecardData, error) {
	mimeType := "image/jpeg"
	data := base64Image
	if match := dataUrlPattern.FindStringSubmatch(base64Image); match != nil {
		mimeType = match[1]
		data = match[2]
	}
	imageData, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, &ParseError{Reason: "image is not valid base64"}
	}

	text, err := s.analyzer.AnalyzeImage(ctx, imageData, mimeType, scorecardPrompt(time.Now()))
	if err != nil {
		metrics.ScorecardAnalysisCounter.WithLabelValues("service_error").Inc()
		return nil, err
	}

	jsonText, err := ExtractJsonObject(text)
	if err != nil {
		metrics.ScorecardAnalysisCounter.WithLabelValues("parse_error").Inc()
		return nil, err
	}
	var parsed ScorecardData
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		metrics.ScorecardAnalysisCounter.WithLabelValues("parse_error").Inc()
		return nil, &ParseError{Reason: "response JSON is malformed"}
	}

	members, err := s.memberRepository.GetAllMembers()
	if err != nil {
		return nil, err
	}
	for i := range parsed.Results {
		if member := MatchMember(members, parsed.Results[i].Name); member != nil {
			id := member.Id
			parsed.Results[i].MemberId = &id
		}
	}
	metrics.ScorecardAnalysisCounter.WithLabelValues("success").Inc()
	return &parsed, nil
}

// MatchMember reconciles an extracted name against known members by
// bidirectional substring containment; the first match in name order wins.
// Unmatched names stay id-less placeholders that only become members if the
// round is actually saved.
func MatchMember(members []*repository.Member, name string) *repository.Member {
	if name == "" {
		return nil
	}
	for _, member := range members {
		if strings.Contains(member.Name, name) || strings.Contains(name, member.Name) {
			return member
		}
	}
	return nil
}

func scorecardPrompt(today time.Time) string {
	return fmt.Sprintf(`This image is a golf scorecard or a group scoreboard.
Extract the name and score of every participant visible in the image.
Respond with nothing but a JSON object in this exact shape:

{
  "date": "YYYY-MM-DD",
  "course": "course name",
  "results": [
    { "name": "player name", "score": total(number), "frontScore": front nine(number, optional), "backScore": back nine(number, optional) }
  ]
}

- If the image shows no date, default to today, "%s".
- The score is the number labelled 'Total', 'Sum' or similar.
- For a group list, include every person on the list.`, today.Format("2006-01-02"))
}
