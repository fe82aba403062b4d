package summarizer

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"slices"
	"strings"
	"sync"
	"testing"

	"summary/internal/domain"
	"summary/internal/language"
)

const spot = "See Spot. See Spot run. Run Spot, run!"

const article = `The city council met on Monday to discuss the new park. ` +
	`Residents asked the council to keep the park open late. ` +
	`A local bakery announced a new bread. ` +
	`The council agreed that the park would stay open until ten. ` +
	`Weather was mild.`

func newEnglish(t *testing.T, opts ...Option) *Summarizer {
	t.Helper()
	s, err := New(language.English, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func TestSummarizeSentences(t *testing.T) {
	s := newEnglish(t)
	tests := []struct {
		name string
		text string
		n    int
		want []string
	}{
		{"spot", spot, 2, []string{"See Spot run.", "Run Spot, run!"}},
		{"best single", spot, 1, []string{"Run Spot, run!"}},
		{"n exceeds count", spot, 10, []string{"See Spot.", "See Spot run.", "Run Spot, run!"}},
		{"single sentence", "Only one sentence here", 3, []string{"Only one sentence here"}},
		{"empty", "", 3, []string{}},
		{"whitespace", " \n\t ", 3, []string{}},
		{"decimal ends sentence", "The rate was 2.5. The rate fell.", 5, []string{"The rate was 2.5.", "The rate fell."}},
		{"stop words only", "It is. Dogs bark loudly. Dogs bark.", 1, []string{"Dogs bark."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.SummarizeSentences(tt.text, tt.n)
			if err != nil {
				t.Fatalf("SummarizeSentences() error = %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("SummarizeSentences() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummarizeSentences_InvalidLength(t *testing.T) {
	s := newEnglish(t)
	for _, n := range []int{0, -1} {
		_, err := s.SummarizeSentences(spot, n)
		if !errors.Is(err, domain.ErrInvalidSummaryLength) {
			t.Errorf("SummarizeSentences(n=%d) error = %v, want ErrInvalidSummaryLength", n, err)
		}
	}
}

func TestSummarizeSentences_Properties(t *testing.T) {
	documents := []struct {
		name  string
		text  string
		count int
	}{
		{"article", article, 5},
		{"decimals", "Inflation rose to 3.5. Prices of bread rose. Bread prices rose 2.5. Wages did not.", 4},
	}
	strategies := []Strategy{StrategyFrequency, StrategyCentrality}

	for _, strategy := range strategies {
		for _, doc := range documents {
			t.Run(strategy.String()+"/"+doc.name, func(t *testing.T) {
				s := newEnglish(t, WithStrategy(strategy))
				if got := len(s.Sentences(doc.text)); got != doc.count {
					t.Fatalf("Sentences() = %d, want %d", got, doc.count)
				}
				checkProperties(t, s, doc.text, doc.count)
			})
		}
	}
}

func checkProperties(t *testing.T, s *Summarizer, text string, count int) {
	t.Helper()
	var prev []string
	for n := 1; n <= count+2; n++ {
		got, err := s.SummarizeSentences(text, n)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if want := min(n, count); len(got) != want {
			t.Errorf("n=%d: got %d sentences, want %d", n, len(got), want)
		}

		// Each sentence is a verbatim substring, in document order.
		pos := 0
		for _, sentence := range got {
			i := strings.Index(text[pos:], sentence)
			if i < 0 {
				t.Errorf("n=%d: %q not found in order", n, sentence)
				break
			}
			pos += i + len(sentence)
		}

		// A longer summary contains every sentence of a shorter one.
		for _, sentence := range prev {
			if !slices.Contains(got, sentence) {
				t.Errorf("n=%d: dropped %q", n, sentence)
			}
		}
		prev = got

		again, _ := s.SummarizeSentences(text, n)
		if !slices.Equal(got, again) {
			t.Errorf("n=%d: results differ between calls", n)
		}

		// Summarizing a summary with the same n returns it unchanged.
		resummarized, err := s.SummarizeSentences(strings.Join(got, " "), n)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if !slices.Equal(resummarized, got) {
			t.Errorf("n=%d: summary of summary = %q, want %q", n, resummarized, got)
		}
	}
}

func TestSummarizeSentences_TrimsWhitespace(t *testing.T) {
	s := newEnglish(t)
	got, err := s.SummarizeSentences("  Cats purr.\n\nCats purr loudly.  ", 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Cats purr.", "Cats purr loudly."}
	if !slices.Equal(got, want) {
		t.Errorf("SummarizeSentences() = %q, want %q", got, want)
	}
}

func TestNew_UnsupportedLanguage(t *testing.T) {
	if _, err := New(language.Language(42)); !errors.Is(err, domain.ErrUnsupportedLanguage) {
		t.Errorf("New(42) error = %v, want ErrUnsupportedLanguage", err)
	}
	if _, err := New(language.English, WithStrategy(Strategy(9))); err == nil {
		t.Error("New() with unknown strategy error = nil")
	}
}

func TestSummarizeSentences_Languages(t *testing.T) {
	tests := []struct {
		lang language.Language
		text string
		want string
	}{
		{language.German, "Der Hund schläft. Der Hund bellt laut. Die Katze bellt nie.", "Der Hund bellt laut."},
		{language.French, "Le chat dort. Le chat mange le poisson. Il pleut.", "Le chat dort."},
		{language.Russian, "Идёт дождь. Кот ест рыбу и спит. Кот спит.", "Кот спит."},
	}

	for _, tt := range tests {
		t.Run(tt.lang.String(), func(t *testing.T) {
			s, err := New(tt.lang)
			if err != nil {
				t.Fatal(err)
			}
			got, err := s.SummarizeSentences(tt.text, 1)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("SummarizeSentences() = %q, want [%q]", got, tt.want)
			}
		})
	}
}

func TestSummarizeRatio(t *testing.T) {
	s := newEnglish(t)
	tests := []struct {
		name  string
		text  string
		ratio float64
		want  []string
	}{
		{"zero keeps best", spot, 0, []string{"Run Spot, run!"}},
		// Costs are 15, 14 and 10 in rank order; each includes one separator byte.
		{"everything", spot + "\n", 1, []string{"See Spot.", "See Spot run.", "Run Spot, run!"}},
		{"separator overflows", spot, 1, []string{"See Spot run.", "Run Spot, run!"}},
		{"two fit", spot, 0.8, []string{"See Spot run.", "Run Spot, run!"}},
		{"one fits", spot, 0.7, []string{"Run Spot, run!"}},
		{"empty", "", 0.5, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.SummarizeRatio(tt.text, tt.ratio)
			if err != nil {
				t.Fatalf("SummarizeRatio() error = %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("SummarizeRatio(%v) = %q, want %q", tt.ratio, got, tt.want)
			}
		})
	}
}

func TestSummarizeRatio_Invalid(t *testing.T) {
	s := newEnglish(t)
	for _, r := range []float64{-0.1, 1.01, math.NaN(), math.Inf(1)} {
		if _, err := s.SummarizeRatio(spot, r); !errors.Is(err, domain.ErrInvalidRatio) {
			t.Errorf("SummarizeRatio(%v) error = %v, want ErrInvalidRatio", r, err)
		}
	}
}

func TestCentralityStrategy(t *testing.T) {
	s := newEnglish(t, WithStrategy(StrategyCentrality))
	if s.Strategy() != StrategyCentrality {
		t.Fatalf("Strategy() = %v", s.Strategy())
	}
	// The third sentence is closest to the whole document and shares "cats"
	// with the first and "dogs" with the second.
	text := "Cats purr. Dogs bark. Cats and dogs play. Stocks fell."
	got, err := s.SummarizeSentences(text, 2)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"Cats purr.", "Cats and dogs play."}; !slices.Equal(got, want) {
		t.Errorf("SummarizeSentences() = %q, want %q", got, want)
	}
}

func TestLanguageAgnostic(t *testing.T) {
	s := NewLanguageAgnostic()
	if s.Language() != 0 {
		t.Errorf("Language() = %v, want 0", s.Language())
	}
	got, err := s.SummarizeSentences(spot, 2)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"See Spot run.", "Run Spot, run!"}; !slices.Equal(got, want) {
		t.Errorf("SummarizeSentences() = %q, want %q", got, want)
	}
}

func TestSentences(t *testing.T) {
	got := newEnglish(t).Sentences(spot)
	if len(got) != 3 {
		t.Fatalf("Sentences() = %d, want 3", len(got))
	}
	if want := []string{"run", "spot", "run"}; !slices.Equal(got[2].Tokens, want) {
		t.Errorf("Tokens = %q, want %q", got[2].Tokens, want)
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := newEnglish(t, WithLogger(logger), WithLogger(nil))
	if _, err := s.SummarizeSentences(spot, 1); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "sentences selected") {
		t.Errorf("log output = %q, want selection trace", buf.String())
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{"", StrategyFrequency, false},
		{"Frequency", StrategyFrequency, false},
		{"centrality", StrategyCentrality, false},
		{"random", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseStrategy(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseStrategy(%q) = %v, %v", tt.in, got, err)
		}
		if err == nil && got.String() == "" {
			t.Errorf("%v has no name", got)
		}
	}
}

func TestConcurrentUse(t *testing.T) {
	s := newEnglish(t)
	want, err := s.SummarizeSentences(article, 2)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := s.SummarizeSentences(article, 2)
			if err != nil || !slices.Equal(got, want) {
				t.Errorf("concurrent SummarizeSentences() = %q, %v", got, err)
			}
		}()
	}
	wg.Wait()
}
