package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "github.com/dropDatabas3/passcode/internal/http/dto/auth"
	jwtx "github.com/dropDatabas3/passcode/internal/jwt"
	"github.com/dropDatabas3/passcode/internal/store/memory"
)

func newTestServices(t *testing.T) Services {
	t.Helper()
	return NewServices(Deps{
		Users:  memory.New().Users(),
		Issuer: jwtx.NewIssuer("unit-test-secret", time.Hour),
	})
}

func TestRegister_HappyPath(t *testing.T) {
	t.Parallel()
	svcs := newTestServices(t)
	ctx := context.Background()

	res, err := svcs.Register.Register(ctx, dto.RegisterRequest{
		Username: "alice",
		Email:    "Alice@Example.COM",
		Password: "s3cretpass",
	})
	require.NoError(t, err)
	require.True(t, res.Success)
	require.NotEmpty(t, res.Token)
	assert.Equal(t, "alice", res.User.Username)
	// email normalizado a minúsculas
	assert.Equal(t, "alice@example.com", res.User.Email)
	assert.NotEmpty(t, res.User.ID)
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()
	svcs := newTestServices(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.RegisterRequest
	}{
		{"no username", dto.RegisterRequest{Email: "a@b.com", Password: "x12345"}},
		{"no password", dto.RegisterRequest{Username: "alice", Email: "a@b.com"}},
		{"no contact", dto.RegisterRequest{Username: "alice", Password: "x12345"}},
		{"bad email", dto.RegisterRequest{Username: "alice", Email: "no-arroba", Password: "x12345"}},
		{"bad phone", dto.RegisterRequest{Username: "alice", Phone: "abc", Password: "x12345"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svcs.Register.Register(ctx, tc.in)
			assert.ErrorIs(t, err, ErrRegisterValidation)
		})
	}
}

// Cualquier username no vacío vale: no hay política de largo ni de
// caracteres en el alta.
func TestRegister_AnyNonEmptyUsername(t *testing.T) {
	t.Parallel()
	svcs := newTestServices(t)
	ctx := context.Background()

	for i, username := range []string{"ab", "x", "al ice", "名前"} {
		res, err := svcs.Register.Register(ctx, dto.RegisterRequest{
			Username: username,
			Email:    fmt.Sprintf("u%d@example.com", i),
			Password: "pw1",
		})
		require.NoError(t, err, "username %q", username)
		assert.Equal(t, username, res.User.Username)
		assert.NotEmpty(t, res.Token)
	}
}

func TestRegister_Conflict(t *testing.T) {
	t.Parallel()
	svcs := newTestServices(t)
	ctx := context.Background()

	_, err := svcs.Register.Register(ctx, dto.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "s3cretpass",
	})
	require.NoError(t, err)

	_, err = svcs.Register.Register(ctx, dto.RegisterRequest{
		Username: "alice", Email: "other@example.com", Password: "s3cretpass",
	})
	assert.ErrorIs(t, err, ErrRegisterConflict)

	_, err = svcs.Register.Register(ctx, dto.RegisterRequest{
		Username: "alice2", Email: "alice@example.com", Password: "s3cretpass",
	})
	assert.ErrorIs(t, err, ErrRegisterConflict)
}

func TestLogin_ByEachIdentifier(t *testing.T) {
	t.Parallel()
	svcs := newTestServices(t)
	ctx := context.Background()

	_, err := svcs.Register.Register(ctx, dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Phone:    "+5491155550000",
		Password: "s3cretpass",
	})
	require.NoError(t, err)

	for _, ident := range []string{"alice", "alice@example.com", "+5491155550000"} {
		res, err := svcs.Login.Login(ctx, dto.LoginRequest{Identifier: ident, Password: "s3cretpass"})
		require.NoError(t, err, "identifier %q", ident)
		assert.True(t, res.Success)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, "alice", res.User.Username)
	}
}

func TestLogin_UniformFailure(t *testing.T) {
	t.Parallel()
	svcs := newTestServices(t)
	ctx := context.Background()

	_, err := svcs.Register.Register(ctx, dto.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "s3cretpass",
	})
	require.NoError(t, err)

	// usuario inexistente y password incorrecta: mismo error sentinel
	_, errGhost := svcs.Login.Login(ctx, dto.LoginRequest{Identifier: "ghost", Password: "whatever1"})
	_, errWrong := svcs.Login.Login(ctx, dto.LoginRequest{Identifier: "alice", Password: "wrongpass"})

	assert.ErrorIs(t, errGhost, ErrLoginInvalid)
	assert.ErrorIs(t, errWrong, ErrLoginInvalid)
	assert.Equal(t, errGhost, errWrong)
}

func TestLogin_Validation(t *testing.T) {
	t.Parallel()
	svcs := newTestServices(t)
	ctx := context.Background()

	_, err := svcs.Login.Login(ctx, dto.LoginRequest{Identifier: "", Password: "x"})
	assert.ErrorIs(t, err, ErrLoginValidation)
	_, err = svcs.Login.Login(ctx, dto.LoginRequest{Identifier: "alice", Password: ""})
	assert.ErrorIs(t, err, ErrLoginValidation)
}

func TestMe(t *testing.T) {
	t.Parallel()
	svcs := newTestServices(t)
	ctx := context.Background()

	reg, err := svcs.Register.Register(ctx, dto.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "s3cretpass",
	})
	require.NoError(t, err)

	res, err := svcs.Me.CurrentUser(ctx, reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", res.User.Username)

	_, err = svcs.Me.CurrentUser(ctx, "missing-id")
	assert.ErrorIs(t, err, ErrMeNotFound)
}
