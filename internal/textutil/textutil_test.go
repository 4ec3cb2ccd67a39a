package textutil

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"lowercases", "Customer FEEDBACK", "customer feedback"},
		{"strips punctuation", "slow, very slow!", "slow very slow"},
		{"collapses whitespace", "  too   many\t spaces \n", "too many spaces"},
		{"keeps digits", "response time is 4 hours", "response time is 4 hours"},
		{"keeps extended letters", "Khách hàng không hài lòng", "khách hàng không hài lòng"},
		{"only punctuation", "!!! ???", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	in := "Support agents are OVERWHELMED, response time: 4 hours!"
	once := Normalize(in)
	twice := Normalize(once)
	if once != twice {
		t.Errorf("Normalize not idempotent: %q != %q", once, twice)
	}
}

func TestExtractKeywords(t *testing.T) {
	got := ExtractKeywords("The support team is overwhelmed by repetitive support questions", 3)
	want := []string{"support", "team", "overwhelmed", "repetitive", "questions"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractKeywords = %v, want %v", got, want)
	}
}

func TestExtractKeywordsEmpty(t *testing.T) {
	if got := ExtractKeywords("", 3); len(got) != 0 {
		t.Errorf("ExtractKeywords(\"\") = %v, want empty", got)
	}
}

func TestExtractKeywordsExcludesStopWords(t *testing.T) {
	for _, kw := range ExtractKeywords("this should have been the answer for those customers", 3) {
		if IsStopWord(kw) {
			t.Errorf("stop word %q leaked into keywords", kw)
		}
	}
}

func TestExtractKeywordsMinLength(t *testing.T) {
	got := ExtractKeywords("we go to ai hub now", 3)
	for _, kw := range got {
		if len([]rune(kw)) < 3 {
			t.Errorf("keyword %q shorter than min length", kw)
		}
	}
}

func TestExtractKeywordsDeduplicatesPreservingOrder(t *testing.T) {
	got := ExtractKeywords("survey feedback survey response feedback", 3)
	want := []string{"survey", "feedback", "response"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractKeywords = %v, want %v", got, want)
	}
}

func TestExtractKeywordsIdempotentUnderRenormalization(t *testing.T) {
	in := "Feedback, SURVEYS & response-rates!!"
	first := ExtractKeywords(in, 3)
	second := ExtractKeywords(Normalize(in), 3)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("keyword extraction changed after re-normalization: %v vs %v", first, second)
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name   string
		a, b   string
		want   float64
		approx bool
	}{
		{"identical", "customer feedback survey", "customer feedback survey", 1.0, false},
		{"disjoint", "customer feedback", "network latency", 0.0, false},
		{"empty left", "", "customer feedback", 0.0, false},
		{"partial", "customer feedback survey", "customer feedback analysis", 0.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			if tt.approx {
				if got <= 0 || got >= 1 {
					t.Errorf("Similarity = %v, want value in (0,1)", got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Similarity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate = %q, want unchanged", got)
	}
	if got := Truncate("a very long description", 10); got != "a very ..." {
		t.Errorf("Truncate = %q", got)
	}
	if len(Truncate("a very long description", 10)) != 10 {
		t.Error("Truncate exceeded max length")
	}
}

func TestTruncateKeepsRunesIntact(t *testing.T) {
	long := strings.Repeat("khách hàng phản hồi chậm và đội ngũ quá tải ", 15)
	got := Truncate(long, 200)
	if !utf8.ValidString(got) {
		t.Fatalf("Truncate produced invalid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 200 {
		t.Errorf("Truncate rune count = %d, want 200", n)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Truncate = %q, want ellipsis suffix", got)
	}
}
