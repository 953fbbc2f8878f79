package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var GeminiRequestCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "gemini_request_total",
	Help: "The total number of requests by model to the Gemini API",
}, []string{"model"})

var GeminiResponseCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "gemini_response_total",
	Help: "The total number of responses by status code from the Gemini API",
}, []string{"status_code"})

var ScorecardAnalysisCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "scorecard_analysis_total",
	Help: "The total number of scorecard image analyses by outcome",
}, []string{"outcome"})

var RoundMutationCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "round_mutation_total",
	Help: "The total number of round create/update/delete operations",
}, []string{"operation"})
