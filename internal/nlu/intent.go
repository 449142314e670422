// Package nlu turns free-text utterances into a classified intent and a
// set of extracted entities, using fixed keyword vocabularies.
package nlu

import "strings"

// Intent is the classified purpose of an utterance. The set is closed;
// dispatch over it is exhaustive.
type Intent int

const (
	IntentUnknown Intent = iota
	IntentGreeting
	IntentFileOpen
	IntentDataAnalysis
	IntentExcelWork
	IntentChartCreate
	IntentReportGenerate
	IntentHelpRequest
	IntentFileSave
	IntentDataClean
	IntentSearchFile
	IntentCompareData
	IntentTrendAnalysis
	IntentProblemSolve
)

var intentNames = map[Intent]string{
	IntentUnknown:        "unknown",
	IntentGreeting:       "greeting",
	IntentFileOpen:       "file_open",
	IntentDataAnalysis:   "data_analysis",
	IntentExcelWork:      "excel_work",
	IntentChartCreate:    "chart_create",
	IntentReportGenerate: "report_generate",
	IntentHelpRequest:    "help_request",
	IntentFileSave:       "file_save",
	IntentDataClean:      "data_clean",
	IntentSearchFile:     "search_file",
	IntentCompareData:    "compare_data",
	IntentTrendAnalysis:  "trend_analysis",
	IntentProblemSolve:   "problem_solve",
}

func (i Intent) String() string {
	if s, ok := intentNames[i]; ok {
		return s
	}
	return "unknown"
}

// Result pairs the winning intent with its coverage-ratio confidence.
type Result struct {
	Intent     Intent
	Confidence float64
}

// Normalize lowercases and trims an utterance. All matching runs against
// the normalized form.
func Normalize(utterance string) string {
	return strings.ToLower(strings.TrimSpace(utterance))
}
