package utils

import "time"

var asOfLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseAsOf interpreta a data de referência recebida em query string.
// Aceita RFC3339 ou YYYY-MM-DD; vazio retorna o tempo zero.
// Datas sem hora são levadas ao fim do dia em UTC.
func ParseAsOf(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	var lastErr error
	for _, layout := range asOfLayouts {
		parsed, err := time.Parse(layout, value)
		if err != nil {
			lastErr = err
			continue
		}
		if layout == "2006-01-02" {
			parsed = parsed.Add(24*time.Hour - time.Nanosecond)
		}
		return parsed.UTC(), nil
	}

	return time.Time{}, lastErr
}
