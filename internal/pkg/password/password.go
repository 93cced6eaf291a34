package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword é retornado quando uma senha vazia é enviada para hashing.
var ErrEmptyPassword = errors.New("a senha não pode ser vazia")

// Hasher encapsula o hashing de senhas com bcrypt.
// O custo (work factor) é uma constante de configuração definida na construção,
// não derivada por chamada.
type Hasher struct {
	cost int
}

// NewHasher cria um novo Hasher com o custo informado.
// Custos fora dos limites do bcrypt caem no custo padrão da biblioteca.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash aplica a transformação unidirecional do bcrypt sobre a senha.
// O salt é aleatório por chamada: duas chamadas com a mesma senha produzem
// hashes diferentes, ambos verificáveis por Verify.
func (h *Hasher) Hash(secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify compara uma senha em texto puro com um hash armazenado.
// O salt e o custo são extraídos do próprio hash; a comparação do bcrypt é
// resistente a side channels de tempo. Senha incorreta é um `false` normal,
// nunca um erro.
func (h *Hasher) Verify(secret string, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(secret)) == nil
}
