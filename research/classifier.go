// Default question classifier.
//
// First-match keyword rules per category; falls back to "general" when
// no rule fires. The orchestrator derives its confidence score from
// whether the fallback was taken, so the fallback category must stay
// exactly "general".

package research

import (
	"context"
	"strings"
)

// rule maps trigger terms to one category. Rules are checked in order;
// the first hit wins.
type rule struct {
	category string
	terms    []string
}

var defaultRules = []rule{
	{CategoryDiscrimination, []string{"discriminat", "harass", "equality", "protected characteristic", "victimis"}},
	{CategoryEmployment, []string{"dismiss", "employer", "employment", "redundan", "wages", "workplace", "notice period", "contract of employment"}},
	{CategoryHousing, []string{"landlord", "tenant", "tenancy", "evict", "rent", "deposit", "repair", "housing"}},
	{CategoryFamily, []string{"divorce", "custody", "child arrangement", "marriage", "separation", "domestic"}},
	{CategoryConsumer, []string{"refund", "faulty", "consumer", "goods", "warranty", "trader", "purchase"}},
	{CategoryCriminal, []string{"arrest", "police", "criminal", "charge", "bail", "caution", "offence"}},
	{CategoryCivil, []string{"negligence", "injury", "damages", "claim", "liability", "small claims"}},
}

// RuleClassifier is the default Classifier.
type RuleClassifier struct {
	rules []rule
}

// NewRuleClassifier creates the default rule-based classifier.
func NewRuleClassifier() *RuleClassifier {
	return &RuleClassifier{rules: defaultRules}
}

// ClassifyQuestion assigns a question to the first category whose
// trigger terms appear in it, or "general" when none do.
func (c *RuleClassifier) ClassifyQuestion(ctx context.Context, text string) (string, error) {
	lowered := strings.ToLower(text)
	for _, r := range c.rules {
		for _, term := range r.terms {
			if strings.Contains(lowered, term) {
				return r.category, nil
			}
		}
	}
	return CategoryGeneral, nil
}

// Verify RuleClassifier implements Classifier
var _ Classifier = (*RuleClassifier)(nil)
