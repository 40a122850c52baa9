// In-memory corpus with a radix-tree keyword index.
//
// Information Hiding:
// - Index structure hidden behind the searcher interfaces
// - Thread-safe for concurrent searches once built
//
// Documents are indexed term by term; a search unions the posting lists
// of every query keyword (exact and prefix matches) and ranks results by
// how many keywords they matched.

package research

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"github.com/lexkeep/lexkeep/internal/textindex"
)

// Corpus is an in-memory document set for one source (legislation or
// case law). Immutable after construction, so searches need no locking.
type Corpus struct {
	docs  []Document
	index *textindex.Trie[[]int]
}

// NewCorpus builds a corpus and its keyword index from documents.
func NewCorpus(docs []Document) *Corpus {
	index := textindex.NewTrie[[]int]()
	for i, doc := range docs {
		text := strings.ToLower(doc.Title + " " + doc.Citation + " " + doc.Summary)
		terms := strings.FieldsFunc(text, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		seen := map[string]struct{}{}
		for _, term := range terms {
			if len(term) < minKeywordLen {
				continue
			}
			if _, dup := seen[term]; dup {
				continue
			}
			seen[term] = struct{}{}
			postings, _ := index.Get(term)
			index.Insert(term, append(postings, i))
		}
	}
	return &Corpus{docs: docs, index: index}
}

// search unions posting lists for every keyword, counting how many
// distinct keywords each document matched, and returns documents ranked
// by match count.
func (c *Corpus) search(keywords []string) []Document {
	matches := map[int]int{}
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		docsForKeyword := map[int]struct{}{}
		// Exact term plus prefix expansion: "tenan" finds "tenancy".
		c.index.WalkPrefix(kw, func(term string, postings []int) bool {
			for _, docID := range postings {
				docsForKeyword[docID] = struct{}{}
			}
			return false
		})
		for docID := range docsForKeyword {
			matches[docID]++
		}
	}

	results := make([]Document, 0, len(matches))
	for docID, count := range matches {
		doc := c.docs[docID]
		doc.Matches = count
		results = append(results, doc)
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Matches != results[j].Matches {
			return results[i].Matches > results[j].Matches
		}
		return results[i].Title < results[j].Title
	})
	return results
}

// SearchLegislation implements LegislationSearcher.
func (c *Corpus) SearchLegislation(ctx context.Context, keywords []string) ([]Document, error) {
	return c.search(keywords), nil
}

// SearchCaseLaw implements CaseLawSearcher. Documents tagged "general"
// are eligible for every category; a "general" search sees everything.
func (c *Corpus) SearchCaseLaw(ctx context.Context, keywords []string, category string) ([]Document, error) {
	results := c.search(keywords)
	if category == "" || category == CategoryGeneral {
		return results, nil
	}
	filtered := []Document{}
	for _, doc := range results {
		if doc.Category == category || doc.Category == CategoryGeneral {
			filtered = append(filtered, doc)
		}
	}
	return filtered, nil
}

// Verify Corpus implements both searcher interfaces
var (
	_ LegislationSearcher = (*Corpus)(nil)
	_ CaseLawSearcher     = (*Corpus)(nil)
)

// DefaultLegislationCorpus returns the bundled legislation stand-in set.
func DefaultLegislationCorpus() *Corpus {
	return NewCorpus([]Document{
		{Title: "Employment Rights Act 1996", Citation: "1996 c. 18",
			Summary: "Unfair dismissal, redundancy payments, written particulars of employment, and notice periods for employees.",
			Category: CategoryEmployment, Source: "legislation"},
		{Title: "Equality Act 2010", Citation: "2010 c. 15",
			Summary: "Discrimination and harassment because of protected characteristics in work, housing, and services.",
			Category: CategoryDiscrimination, Source: "legislation"},
		{Title: "Housing Act 1988", Citation: "1988 c. 50",
			Summary: "Assured and assured shorthold tenancies, grounds for possession, and eviction notice requirements for landlords.",
			Category: CategoryHousing, Source: "legislation"},
		{Title: "Landlord and Tenant Act 1985", Citation: "1985 c. 70",
			Summary: "Landlord repairing obligations and fitness of rented dwellings for habitation.",
			Category: CategoryHousing, Source: "legislation"},
		{Title: "Consumer Rights Act 2015", Citation: "2015 c. 15",
			Summary: "Goods to be of satisfactory quality, refunds and remedies for faulty goods, and unfair contract terms.",
			Category: CategoryConsumer, Source: "legislation"},
		{Title: "Children Act 1989", Citation: "1989 c. 41",
			Summary: "Child arrangement orders, parental responsibility, and welfare of children in family proceedings.",
			Category: CategoryFamily, Source: "legislation"},
		{Title: "Matrimonial Causes Act 1973", Citation: "1973 c. 18",
			Summary: "Divorce, separation, and financial provision between spouses.",
			Category: CategoryFamily, Source: "legislation"},
		{Title: "Consumer Credit Act 1974", Citation: "1974 c. 39",
			Summary: "Regulated credit agreements, default notices, and debtor protections for consumer debt.",
			Category: CategoryConsumer, Source: "legislation"},
		{Title: "Police and Criminal Evidence Act 1984", Citation: "1984 c. 60",
			Summary: "Arrest, detention, and questioning by police; rights of suspects in criminal investigations.",
			Category: CategoryCriminal, Source: "legislation"},
		{Title: "Limitation Act 1980", Citation: "1980 c. 58",
			Summary: "Time limits for bringing civil claims including negligence, personal injury, and contract.",
			Category: CategoryCivil, Source: "legislation"},
	})
}

// DefaultCaseLawCorpus returns the bundled case-law stand-in set.
func DefaultCaseLawCorpus() *Corpus {
	return NewCorpus([]Document{
		{Title: "Polkey v A E Dayton Services Ltd", Citation: "[1987] UKHL 8",
			Summary: "Procedural fairness in dismissal; compensation reduced where dismissal would have occurred anyway.",
			Category: CategoryEmployment, Source: "case_law"},
		{Title: "Uber BV v Aslam", Citation: "[2021] UKSC 5",
			Summary: "Drivers were workers, not independent contractors; employment status and minimum wage entitlement.",
			Category: CategoryEmployment, Source: "case_law"},
		{Title: "Essop v Home Office", Citation: "[2017] UKSC 27",
			Summary: "Indirect discrimination does not require proof of why a provision disadvantages the protected group.",
			Category: CategoryDiscrimination, Source: "case_law"},
		{Title: "Street v Mountford", Citation: "[1985] UKHL 4",
			Summary: "Exclusive possession for a term at a rent creates a tenancy regardless of labels used by the landlord.",
			Category: CategoryHousing, Source: "case_law"},
		{Title: "Superstrike Ltd v Rodrigues", Citation: "[2013] EWCA Civ 669",
			Summary: "Tenancy deposit protection obligations on renewal of an assured shorthold tenancy.",
			Category: CategoryHousing, Source: "case_law"},
		{Title: "White v White", Citation: "[2000] UKHL 54",
			Summary: "Equal division yardstick for financial provision on divorce.",
			Category: CategoryFamily, Source: "case_law"},
		{Title: "Rogers v Parish (Scarborough) Ltd", Citation: "[1987] QB 933",
			Summary: "Satisfactory quality of goods; a new car with defects was not of merchantable quality.",
			Category: CategoryConsumer, Source: "case_law"},
		{Title: "Donoghue v Stevenson", Citation: "[1932] UKHL 100",
			Summary: "Foundation of negligence; duty of care owed to persons closely and directly affected.",
			Category: CategoryCivil, Source: "case_law"},
		{Title: "Christie v Leachinsky", Citation: "[1947] UKHL 2",
			Summary: "A person must be told the reason for their arrest for it to be lawful.",
			Category: CategoryCriminal, Source: "case_law"},
		{Title: "Pepper v Hart", Citation: "[1992] UKHL 3",
			Summary: "Courts may consult parliamentary material when interpreting ambiguous legislation.",
			Category: CategoryGeneral, Source: "case_law"},
	})
}
