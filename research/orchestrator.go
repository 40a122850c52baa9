// Legal-research orchestrator.
//
// Composes keyword extraction, question classification, and corpus
// search: extract -> (classify) -> search. The combined SearchAll runs
// both corpora in parallel and merges the reports.

package research

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Classification confidence values. These reproduce the classifier's own
// confidence heuristic: a specific category is trusted, the "general"
// fallback is not. Downstream consumers depend on the exact constants.
const (
	ConfidenceSpecific = 0.9
	ConfidenceGeneral  = 0.3
)

// Classification is the category assigned to a question plus the
// heuristic confidence in it.
type Classification struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// Report is the outcome of one corpus search.
type Report struct {
	Keywords []string   `json:"keywords"`
	Category string     `json:"category,omitempty"` // case-law searches only
	Results  []Document `json:"results"`
}

// CombinedReport merges the legislation and case-law searches for one
// query.
type CombinedReport struct {
	Keywords    []string   `json:"keywords"`
	Legislation []Document `json:"legislation"`
	CaseLaw     []Document `json:"case_law"`
}

// Orchestrator sequences the pluggable research services.
type Orchestrator struct {
	extractor   KeywordExtractor
	classifier  Classifier
	legislation LegislationSearcher
	caseLaw     CaseLawSearcher
}

// NewOrchestrator creates an orchestrator over explicit services.
func NewOrchestrator(extractor KeywordExtractor, classifier Classifier, legislation LegislationSearcher, caseLaw CaseLawSearcher) *Orchestrator {
	return &Orchestrator{
		extractor:   extractor,
		classifier:  classifier,
		legislation: legislation,
		caseLaw:     caseLaw,
	}
}

// NewDefaultOrchestrator wires the bundled local services.
func NewDefaultOrchestrator() *Orchestrator {
	return NewOrchestrator(
		NewStopwordExtractor(),
		NewRuleClassifier(),
		DefaultLegislationCorpus(),
		DefaultCaseLawCorpus(),
	)
}

// ClassifyQuestion classifies a question and attaches the confidence
// heuristic: 0.9 for any specific category, 0.3 for the "general"
// fallback.
func (o *Orchestrator) ClassifyQuestion(ctx context.Context, question string) (Classification, error) {
	category, err := o.classifier.ClassifyQuestion(ctx, question)
	if err != nil {
		return Classification{}, fmt.Errorf("classification failed: %w", err)
	}

	confidence := ConfidenceSpecific
	if category == CategoryGeneral {
		confidence = ConfidenceGeneral
	}
	return Classification{Category: category, Confidence: confidence}, nil
}

// SearchLegislation extracts keywords from the raw query and searches
// the legislation corpus.
func (o *Orchestrator) SearchLegislation(ctx context.Context, query string) (Report, error) {
	keywords, err := o.extractor.ExtractKeywords(ctx, query)
	if err != nil {
		return Report{}, fmt.Errorf("keyword extraction failed: %w", err)
	}

	results, err := o.legislation.SearchLegislation(ctx, keywords.All)
	if err != nil {
		return Report{}, fmt.Errorf("legislation search failed: %w", err)
	}

	return Report{Keywords: keywords.All, Results: results}, nil
}

// SearchCaseLaw extracts keywords and searches the case-law corpus.
// When no category is supplied the query is classified first and the
// resulting category used for the search.
func (o *Orchestrator) SearchCaseLaw(ctx context.Context, query, category string) (Report, error) {
	keywords, err := o.extractor.ExtractKeywords(ctx, query)
	if err != nil {
		return Report{}, fmt.Errorf("keyword extraction failed: %w", err)
	}

	if category == "" {
		classification, err := o.ClassifyQuestion(ctx, query)
		if err != nil {
			return Report{}, err
		}
		category = classification.Category
	}

	results, err := o.caseLaw.SearchCaseLaw(ctx, keywords.All, category)
	if err != nil {
		return Report{}, fmt.Errorf("case law search failed: %w", err)
	}

	return Report{Keywords: keywords.All, Category: category, Results: results}, nil
}

// SearchAll runs the legislation and case-law searches for one query in
// parallel and merges the reports.
func (o *Orchestrator) SearchAll(ctx context.Context, query string) (CombinedReport, error) {
	keywords, err := o.extractor.ExtractKeywords(ctx, query)
	if err != nil {
		return CombinedReport{}, fmt.Errorf("keyword extraction failed: %w", err)
	}

	classification, err := o.ClassifyQuestion(ctx, query)
	if err != nil {
		return CombinedReport{}, err
	}

	var legislation, caseLaw []Document
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		legislation, err = o.legislation.SearchLegislation(gctx, keywords.All)
		return err
	})
	g.Go(func() error {
		var err error
		caseLaw, err = o.caseLaw.SearchCaseLaw(gctx, keywords.All, classification.Category)
		return err
	})
	if err := g.Wait(); err != nil {
		return CombinedReport{}, fmt.Errorf("corpus search failed: %w", err)
	}

	return CombinedReport{
		Keywords:    keywords.All,
		Legislation: legislation,
		CaseLaw:     caseLaw,
	}, nil
}
