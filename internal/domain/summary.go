package domain

import (
	"strconv"
	"strings"
	"time"
)

// Section identifies which part of a model response is currently being read.
type Section int

const (
	SectionNone Section = iota
	SectionAbstract
	SectionKeyPoints
	SectionKeywords
	SectionDifficulty
	SectionSentiment
)

// String returns the JSON field name of the section.
func (s Section) String() string {
	switch s {
	case SectionAbstract:
		return "abstract"
	case SectionKeyPoints:
		return "key_points"
	case SectionKeywords:
		return "keywords"
	case SectionDifficulty:
		return "difficulty"
	case SectionSentiment:
		return "sentiment"
	default:
		return "none"
	}
}

// IsList reports whether the section collects hyphen bullets.
func (s Section) IsList() bool {
	return s == SectionKeyPoints || s == SectionKeywords
}

// SectionMarker pairs a literal header with the section it opens.
type SectionMarker struct {
	Header  string
	Section Section
}

// SectionMarkers lists the response headers in match priority order.
var SectionMarkers = []SectionMarker{
	{Header: "ABSTRACT-LEVEL SUMMARY", Section: SectionAbstract},
	{Header: "10 KEY POINTS", Section: SectionKeyPoints},
	{Header: "KEYWORDS", Section: SectionKeywords},
	{Header: "TECHNICAL DIFFICULTY", Section: SectionDifficulty},
	{Header: "SENTIMENT", Section: SectionSentiment},
}

// Summary is the structured record parsed out of a model response.
// Every field may be empty; the parser never fails.
type Summary struct {
	Abstract   string   `json:"abstract"`
	KeyPoints  []string `json:"key_points"`
	Keywords   []string `json:"keywords"`
	Difficulty string   `json:"difficulty"`
	Sentiment  string   `json:"sentiment"`
}

// IsComplete reports whether the summary has an abstract. A summary
// without one is treated as a failed run.
func (s *Summary) IsComplete() bool {
	return s != nil && !isBlank(s.Abstract)
}

// DifficultyLevel parses the difficulty rating. ok is false unless the
// field holds an integer between 1 and 10.
func (s *Summary) DifficultyLevel() (level int, ok bool) {
	if s == nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(s.Difficulty))
	if err != nil || n < 1 || n > 10 {
		return 0, false
	}
	return n, true
}

// SummaryMode selects how the summarizer talks to the model.
type SummaryMode string

const (
	SummaryModeAuto    SummaryMode = "auto"
	SummaryModeDirect  SummaryMode = "direct"
	SummaryModeChunked SummaryMode = "chunked"
)

// ParseSummaryMode maps a config string to a mode, defaulting to auto.
func ParseSummaryMode(s string) SummaryMode {
	switch SummaryMode(strings.ToLower(strings.TrimSpace(s))) {
	case SummaryModeDirect:
		return SummaryModeDirect
	case SummaryModeChunked:
		return SummaryModeChunked
	default:
		return SummaryModeAuto
	}
}

// SummaryResult is the raw outcome of a summarization call.
type SummaryResult struct {
	Response     string      `json:"-"`
	Mode         SummaryMode `json:"mode"`
	ChunkCount   int         `json:"chunk_count"`
	BackendCalls int         `json:"backend_calls"`
}

// SummaryRun is returned to API clients after a run completes.
type SummaryRun struct {
	RunID        string           `json:"run_id"`
	FileHash     string           `json:"file_hash"`
	Filename     string           `json:"filename,omitempty"`
	WordCount    int              `json:"word_count"`
	Mode         SummaryMode      `json:"mode"`
	ChunkCount   int              `json:"chunk_count"`
	BackendCalls int              `json:"backend_calls"`
	CacheHit     bool             `json:"cache_hit"`
	Metadata     DocumentMetadata `json:"metadata"`
	Summary      Summary          `json:"summary"`
	Difficulty   int              `json:"difficulty_level,omitempty"`
	RawResponse  string           `json:"raw_response,omitempty"`
	CompletedAt  time.Time        `json:"completed_at"`
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
