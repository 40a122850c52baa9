package research

import (
	"context"
	"strings"
	"testing"
)

// countingClassifier records how many times it was consulted.
type countingClassifier struct {
	category string
	calls    int
}

func (c *countingClassifier) ClassifyQuestion(ctx context.Context, text string) (string, error) {
	c.calls++
	return c.category, nil
}

func TestClassifyQuestionConfidence(t *testing.T) {
	o := NewDefaultOrchestrator()

	got, err := o.ClassifyQuestion(context.Background(), "My landlord wants to evict me")
	if err != nil {
		t.Fatalf("ClassifyQuestion failed: %v", err)
	}
	if got.Category != CategoryHousing {
		t.Errorf("Expected category housing, got %s", got.Category)
	}
	if got.Confidence != ConfidenceSpecific {
		t.Errorf("Expected confidence %v, got %v", ConfidenceSpecific, got.Confidence)
	}

	got, err = o.ClassifyQuestion(context.Background(), "What are my options here?")
	if err != nil {
		t.Fatalf("ClassifyQuestion failed: %v", err)
	}
	if got.Category != CategoryGeneral {
		t.Errorf("Expected category general, got %s", got.Category)
	}
	if got.Confidence != ConfidenceGeneral {
		t.Errorf("Expected confidence %v, got %v", ConfidenceGeneral, got.Confidence)
	}
}

func TestSearchLegislation(t *testing.T) {
	o := NewDefaultOrchestrator()

	report, err := o.SearchLegislation(context.Background(), "Can my employer dismiss me without notice?")
	if err != nil {
		t.Fatalf("SearchLegislation failed: %v", err)
	}
	if len(report.Keywords) == 0 {
		t.Fatal("Expected extracted keywords")
	}
	if len(report.Results) == 0 {
		t.Fatal("Expected legislation results")
	}
	if report.Results[0].Title != "Employment Rights Act 1996" {
		t.Errorf("Expected Employment Rights Act 1996 first, got %s", report.Results[0].Title)
	}
}

func TestSearchCaseLawClassifiesOnceWhenCategoryOmitted(t *testing.T) {
	classifier := &countingClassifier{category: CategoryEmployment}
	o := NewOrchestrator(NewStopwordExtractor(), classifier, DefaultLegislationCorpus(), DefaultCaseLawCorpus())

	report, err := o.SearchCaseLaw(context.Background(), "unfair dismissal from my job", "")
	if err != nil {
		t.Fatalf("SearchCaseLaw failed: %v", err)
	}
	if classifier.calls != 1 {
		t.Errorf("Expected exactly one classification, got %d", classifier.calls)
	}
	if report.Category != CategoryEmployment {
		t.Errorf("Expected category employment, got %s", report.Category)
	}
}

func TestSearchCaseLawSkipsClassificationWhenCategorySupplied(t *testing.T) {
	classifier := &countingClassifier{category: CategoryEmployment}
	o := NewOrchestrator(NewStopwordExtractor(), classifier, DefaultLegislationCorpus(), DefaultCaseLawCorpus())

	report, err := o.SearchCaseLaw(context.Background(), "deposit not protected by landlord", CategoryHousing)
	if err != nil {
		t.Fatalf("SearchCaseLaw failed: %v", err)
	}
	if classifier.calls != 0 {
		t.Errorf("Expected no classification calls, got %d", classifier.calls)
	}
	if report.Category != CategoryHousing {
		t.Errorf("Expected category housing, got %s", report.Category)
	}
	for _, doc := range report.Results {
		if doc.Category != CategoryHousing && doc.Category != CategoryGeneral {
			t.Errorf("Result %s has category %s, want housing or general", doc.Title, doc.Category)
		}
	}
}

func TestSearchAll(t *testing.T) {
	o := NewDefaultOrchestrator()

	report, err := o.SearchAll(context.Background(), "landlord refusing to return my tenancy deposit")
	if err != nil {
		t.Fatalf("SearchAll failed: %v", err)
	}
	if len(report.Legislation) == 0 {
		t.Error("Expected legislation results")
	}
	if len(report.CaseLaw) == 0 {
		t.Error("Expected case law results")
	}
	for _, doc := range report.Legislation {
		if doc.Source != "legislation" {
			t.Errorf("Legislation result %s has source %s", doc.Title, doc.Source)
		}
	}
	for _, doc := range report.CaseLaw {
		if doc.Source != "case_law" {
			t.Errorf("Case law result %s has source %s", doc.Title, doc.Source)
		}
	}
}

func TestExtractKeywords(t *testing.T) {
	e := NewStopwordExtractor()

	kw, err := e.ExtractKeywords(context.Background(), "What should I do if my landlord will not repair the boiler?")
	if err != nil {
		t.Fatalf("ExtractKeywords failed: %v", err)
	}
	joined := strings.Join(kw.All, " ")
	for _, want := range []string{"landlord", "repair", "boiler"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Expected keyword %q in %v", want, kw.All)
		}
	}
	for _, stop := range []string{"what", "should", "the", "my"} {
		if strings.Contains(" "+joined+" ", " "+stop+" ") {
			t.Errorf("Stopword %q survived extraction: %v", stop, kw.All)
		}
	}
}

func TestExtractKeywordsDeduplicates(t *testing.T) {
	e := NewStopwordExtractor()

	kw, err := e.ExtractKeywords(context.Background(), "dismissal dismissal DISMISSAL")
	if err != nil {
		t.Fatalf("ExtractKeywords failed: %v", err)
	}
	if len(kw.All) != 1 || kw.All[0] != "dismissal" {
		t.Errorf("Expected single keyword dismissal, got %v", kw.All)
	}
}

func TestRuleClassifierFirstMatchWins(t *testing.T) {
	c := NewRuleClassifier()

	// Mentions both discrimination and employment; discrimination rules
	// run first.
	got, err := c.ClassifyQuestion(context.Background(), "My employer discriminated against me")
	if err != nil {
		t.Fatalf("ClassifyQuestion failed: %v", err)
	}
	if got != CategoryDiscrimination {
		t.Errorf("Expected discrimination, got %s", got)
	}
}

func TestCorpusRanksByMatchCount(t *testing.T) {
	c := NewCorpus([]Document{
		{Title: "One", Summary: "tenancy"},
		{Title: "Two", Summary: "tenancy deposit eviction"},
	})

	results, err := c.SearchLegislation(context.Background(), []string{"tenancy", "deposit", "eviction"})
	if err != nil {
		t.Fatalf("SearchLegislation failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Title != "Two" {
		t.Errorf("Expected Two ranked first, got %s", results[0].Title)
	}
	if results[0].Matches != 3 || results[1].Matches != 1 {
		t.Errorf("Expected match counts 3 and 1, got %d and %d", results[0].Matches, results[1].Matches)
	}
}

func TestCorpusPrefixMatch(t *testing.T) {
	c := NewCorpus([]Document{
		{Title: "Housing Act 1988", Summary: "assured shorthold tenancies"},
	})

	results, err := c.SearchLegislation(context.Background(), []string{"tenan"})
	if err != nil {
		t.Fatalf("SearchLegislation failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected prefix match, got %d results", len(results))
	}
}

func TestParseCategory(t *testing.T) {
	if got, err := ParseCategory("Housing"); err != nil || got != CategoryHousing {
		t.Errorf("ParseCategory(Housing) = %q, %v", got, err)
	}
	if _, err := ParseCategory("maritime"); err == nil {
		t.Error("Expected error for unknown category")
	}
}
