package service

import (
	"reflect"
	"testing"

	"paper-summarizer/internal/domain"
)

const sampleResponse = "ABSTRACT-LEVEL SUMMARY:\nHello world.\n\n10 KEY POINTS:\n- a\n- b\n\nKEYWORDS:\n- x\n\nTECHNICAL DIFFICULTY:\n7\n\nSENTIMENT:\npositive\nBecause good."

func TestParseSummary_Sample(t *testing.T) {
	got := ParseSummary(sampleResponse)

	want := domain.Summary{
		Abstract:   "Hello world.",
		KeyPoints:  []string{"a", "b"},
		Keywords:   []string{"x"},
		Difficulty: "7",
		Sentiment:  "positive Because good.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestParseSummary(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.Summary
	}{
		{
			name:  "no markers",
			input: "Sorry, I cannot help with that.\n- not a point\n",
			want:  domain.Summary{},
		},
		{
			name:  "empty",
			input: "",
			want:  domain.Summary{},
		},
		{
			name:  "preamble is dropped",
			input: "Here is your summary.\nABSTRACT-LEVEL SUMMARY:\nBody.",
			want:  domain.Summary{Abstract: "Body."},
		},
		{
			name:  "headers matched by prefix with trailing text",
			input: "ABSTRACT-LEVEL SUMMARY (6-8 sentences)\nOne.\nTwo.\nTECHNICAL DIFFICULTY (1-10):\n8",
			want:  domain.Summary{Abstract: "One. Two.", Difficulty: "8"},
		},
		{
			name:  "indented headers and bullets",
			input: "   ABSTRACT-LEVEL SUMMARY:\n   Indented.\n   10 KEY POINTS:\n     -   first  \n",
			want:  domain.Summary{Abstract: "Indented.", KeyPoints: []string{"first"}},
		},
		{
			name:  "markdown headers are not markers",
			input: "### ABSTRACT-LEVEL SUMMARY\nLost.",
			want:  domain.Summary{},
		},
		{
			name:  "non hyphen lines in list sections are dropped",
			input: "10 KEY POINTS:\n1. numbered\n* starred\n- kept\nKEYWORDS:\nalpha, beta\n- gamma",
			want:  domain.Summary{KeyPoints: []string{"kept"}, Keywords: []string{"gamma"}},
		},
		{
			name:  "repeated section appends",
			input: "SENTIMENT:\nneutral\nKEYWORDS:\n- k\nSENTIMENT:\nbecause reasons",
			want:  domain.Summary{Keywords: []string{"k"}, Sentiment: "neutral because reasons"},
		},
		{
			name:  "crlf line endings",
			input: "ABSTRACT-LEVEL SUMMARY:\r\nWindows.\r\nKEYWORDS:\r\n- w\r\n",
			want:  domain.Summary{Abstract: "Windows.", Keywords: []string{"w"}},
		},
		{
			name:  "bare hyphen keeps an empty entry",
			input: "KEYWORDS:\n-\n- real",
			want:  domain.Summary{Keywords: []string{"", "real"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSummary(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestParseSummary_KeywordsMarkerInsideKeyPoints(t *testing.T) {
	// A key point line that itself begins with a header switches sections.
	got := ParseSummary("10 KEY POINTS:\n- one\nKEYWORDS are listed below\n- kw")

	if !reflect.DeepEqual(got.KeyPoints, []string{"one"}) {
		t.Fatalf("unexpected key points: %v", got.KeyPoints)
	}
	if !reflect.DeepEqual(got.Keywords, []string{"kw"}) {
		t.Fatalf("unexpected keywords: %v", got.Keywords)
	}
}

func TestFormatSummary_RoundTrip(t *testing.T) {
	inputs := []string{
		sampleResponse,
		"ABSTRACT-LEVEL SUMMARY:\nA long\nmulti line\nabstract.\n10 KEY POINTS:\n- p1\n- p2\n- p3\nKEYWORDS:\n- go\n- pdf\nTECHNICAL DIFFICULTY:\n4\nSENTIMENT:\ncritical\nThe method is weak.",
		"ABSTRACT-LEVEL SUMMARY:\nOnly an abstract.",
		"",
	}

	for _, in := range inputs {
		first := ParseSummary(in)
		second := ParseSummary(FormatSummary(first))
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("round trip mismatch:\nfirst:  %+v\nsecond: %+v", first, second)
		}
	}
}

func TestBuildDownloadText(t *testing.T) {
	got := BuildDownloadText(ParseSummary(sampleResponse))

	want := "ABSTRACT-LEVEL SUMMARY:\n\nHello world.\n\n\n" +
		"10 KEY POINTS:\n\n1. a\n2. b\n\n\n" +
		"KEYWORDS:\n\nx\n\n\n" +
		"TECHNICAL DIFFICULTY:\n\n7\n\n\n" +
		"SENTIMENT:\n\npositive Because good.\n"
	if got != want {
		t.Fatalf("unexpected download text:\n%q\nwant:\n%q", got, want)
	}
}

func TestBuildDownloadText_ReparseKeepsProse(t *testing.T) {
	original := ParseSummary(sampleResponse)
	reparsed := ParseSummary(BuildDownloadText(original))

	if reparsed.Abstract != original.Abstract {
		t.Fatalf("abstract changed: %q", reparsed.Abstract)
	}
	if reparsed.Difficulty != original.Difficulty {
		t.Fatalf("difficulty changed: %q", reparsed.Difficulty)
	}
	if reparsed.Sentiment != original.Sentiment {
		t.Fatalf("sentiment changed: %q", reparsed.Sentiment)
	}
	// numbered and comma-joined lists carry no hyphen bullets
	if len(reparsed.KeyPoints) != 0 || len(reparsed.Keywords) != 0 {
		t.Fatalf("expected list sections to be dropped, got %+v", reparsed)
	}
}
