package user

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUsernameObrigatorio = errors.New("o nome de usuário é obrigatório")
	ErrEmailInvalido       = errors.New("o email é inválido")
	ErrSenhaCurta          = errors.New("a senha deve ter no mínimo 6 caracteres")
)

var emailRegex = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// User representa um jogador cadastrado. Username é o nome exibido nas sessões.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Oculta o hash da senha no JSON
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewUser cria uma nova instância de User com validações.
func NewUser(username, email, password string) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" {
		return nil, ErrUsernameObrigatorio
	}
	if !emailRegex.MatchString(email) {
		return nil, ErrEmailInvalido
	}
	if len(password) < 6 {
		return nil, ErrSenhaCurta
	}

	return &User{
		ID:        uuid.NewString(),
		Username:  username,
		Email:     email,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		// PasswordHash deve ser definido externamente via serviço de hash
	}, nil
}

// SetPassword define o hash da senha.
func (u *User) SetPassword(hash string) {
	u.PasswordHash = hash
}
