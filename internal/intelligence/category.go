package intelligence

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vfg2006/inventory-intelligence-api/internal/domain"
)

type keywordMatch struct {
	category string
	keyword  string
	score    float64
}

// ClassifyCategories sugere a categoria cuja palavra-chave cobre a maior fração do nome
// do produto. Apenas o nome é considerado, nunca os dados de venda.
func ClassifyCategories(products []*domain.Product, cfg *Config) []domain.CategorySuggestion {
	suggestions := make([]domain.CategorySuggestion, 0)

	for _, product := range domain.ActiveProducts(products) {
		match, found := bestKeywordMatch(product.Name, cfg.CategoryKeywords)
		if !found || match.category == product.Category {
			continue
		}

		confidence := int(roundHalfUp(float64(cfg.Category.BaseConfidence) + match.score*100))
		if confidence > cfg.Category.MaxConfidence {
			confidence = cfg.Category.MaxConfidence
		}

		suggestions = append(suggestions, domain.CategorySuggestion{
			ProductID:         product.ID,
			ProductName:       product.Name,
			CurrentCategory:   product.Category,
			SuggestedCategory: match.category,
			MatchedKeyword:    match.keyword,
			Confidence:        domain.ClampConfidence(confidence),
			Reason:            fmt.Sprintf("Name contains %q, which usually belongs to %s", match.keyword, match.category),
		})
	}

	return suggestions
}

// bestKeywordMatch percorre a tabela em ordem; só um score estritamente maior substitui
// o melhor atual, então empates ficam com o primeiro encontrado
func bestKeywordMatch(productName string, table []domain.CategoryKeywords) (keywordMatch, bool) {
	name := strings.ToLower(productName)
	nameLength := utf8.RuneCountInString(name)
	if nameLength == 0 {
		return keywordMatch{}, false
	}

	best := keywordMatch{score: math.Inf(-1)}
	found := false

	for _, rule := range table {
		for _, keyword := range rule.Keywords {
			keyword = strings.ToLower(keyword)
			if keyword == "" || !strings.Contains(name, keyword) {
				continue
			}

			score := float64(utf8.RuneCountInString(keyword)) / float64(nameLength)
			if score > best.score {
				best = keywordMatch{category: rule.Category, keyword: keyword, score: score}
				found = true
			}
		}
	}

	return best, found
}
