package usecases

import (
	"context"
	"errors"
	"strings"

	"quizarena/internal/domain/user"
	"quizarena/internal/infra/logger"
	"quizarena/internal/ports"
)

var (
	ErrEmailDuplicado       = errors.New("email já cadastrado")
	ErrUsernameDuplicado    = errors.New("nome de usuário já em uso")
	ErrCredenciaisInvalidas = errors.New("login ou senha inválidos")
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
)

// AuthUseCases cadastra jogadores e emite os tokens usados na API e no WebSocket.
type AuthUseCases struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
}

func NewAuthUseCases(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService) *AuthUseCases {
	return &AuthUseCases{users: users, hasher: hasher, tokens: tokens}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register cria a conta. Email e nome de usuário são únicos sem diferenciar maiúsculas.
func (uc *AuthUseCases) Register(ctx context.Context, in RegisterInput) (*user.User, error) {
	u, err := user.NewUser(in.Username, in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	if taken, err := uc.users.FindByEmail(ctx, u.Email); err != nil {
		return nil, err
	} else if taken != nil {
		return nil, ErrEmailDuplicado
	}
	if taken, err := uc.users.FindByUsername(ctx, u.Username); err != nil {
		return nil, err
	} else if taken != nil {
		return nil, ErrUsernameDuplicado
	}

	hash, err := uc.hasher.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u.SetPassword(hash)

	if err := uc.users.Create(ctx, u); err != nil {
		return nil, err
	}
	logger.Info("Jogador cadastrado", "usuario", u.ID)
	return u, nil
}

// AccessToken é o token JWT e sua validade em segundos.
type AccessToken struct {
	Token     string
	ExpiresIn int64
}

// Login aceita email ou nome de usuário em login.
func (uc *AuthUseCases) Login(ctx context.Context, login, password string) (*AccessToken, error) {
	login = strings.TrimSpace(login)

	var u *user.User
	var err error
	if strings.Contains(login, "@") {
		u, err = uc.users.FindByEmail(ctx, strings.ToLower(login))
	} else {
		u, err = uc.users.FindByUsername(ctx, login)
	}
	if err != nil {
		return nil, err
	}
	if u == nil || uc.hasher.ComparePassword(u.PasswordHash, password) != nil {
		return nil, ErrCredenciaisInvalidas
	}

	token, expiresIn, err := uc.tokens.GenerateToken(u.ID)
	if err != nil {
		return nil, err
	}
	return &AccessToken{Token: token, ExpiresIn: expiresIn}, nil
}

func (uc *AuthUseCases) Me(ctx context.Context, userID string) (*user.User, error) {
	u, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUsuarioNaoEncontrado
	}
	return u, nil
}
