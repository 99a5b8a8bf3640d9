package intelligence

import (
	"crypto/sha256"
	"encoding/hex"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/inventory-intelligence-api/internal/domain"
)

// canonicalJSON ordena as chaves dos mapas para que o hash não dependa da ordem de iteração
var canonicalJSON = jsoniter.Config{
	SortMapKeys:            true,
	EscapeHTML:             false,
	ValidateJsonRawMessage: true,
}.Froze()

type fingerprintInput struct {
	Products []*domain.Product     `json:"products"`
	Orders   []*domain.OrderRecord `json:"orders"`
	Config   *Config               `json:"config"`
}

// Fingerprint gera um hash estável do conteúdo de (products, orders, cfg), usado como
// chave de memoização pelo chamador
func Fingerprint(products []*domain.Product, orders []*domain.OrderRecord, cfg *Config) (string, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	payload, err := canonicalJSON.Marshal(fingerprintInput{
		Products: products,
		Orders:   orders,
		Config:   cfg,
	})
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
