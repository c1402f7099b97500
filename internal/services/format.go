package services

import (
	"fmt"
	"strings"

	"configurator-service/internal/models"
)

// formatAmount renders a monetary amount with thousands separators, e.g.
// 1250000 -> "1,250,000". Fractions are dropped for whole amounts.
func formatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimSuffix(s, ".00")

	intPart := s
	fracPart := ""
	if i := strings.Index(s, "."); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	n := len(intPart)
	for i, r := range intPart {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String() + fracPart
}

// formatZMW renders a kwacha amount, e.g. "K15,000".
func formatZMW(v float64) string {
	return "K" + formatAmount(v)
}

// formatSpecZMW renders a PriceSpec in kwacha, e.g. "K15,000-22,500".
func formatSpecZMW(spec models.PriceSpec) string {
	if spec.Fixed != nil {
		return formatZMW(*spec.Fixed)
	}
	if spec.Min != nil && spec.Max != nil {
		return fmt.Sprintf("%s-%s", formatZMW(*spec.Min), formatAmount(*spec.Max))
	}
	return "K0"
}

// featureLabel turns a feature or add-on id into a display label, e.g.
// "ai-chatbot" -> "Ai Chatbot".
func featureLabel(id string) string {
	words := strings.Split(id, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
