// Package jwt emite y valida bearer tokens HS256 con la clave simétrica
// del proceso.
package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid es el único error que sale de Parse. Firma rota, token
// malformado o expirado colapsan en el mismo resultado para no filtrar
// detalles de validación al caller.
var ErrTokenInvalid = errors.New("invalid_jwt")

// DefaultAccessTTL es la vida útil de los tokens emitidos en register/login.
const DefaultAccessTTL = 24 * time.Hour

// Claims es el payload de identidad del token. Efímero: se reconstruye
// en cada request desde el token, nunca se persiste.
type Claims struct {
	SubjectID string
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Issuer firma tokens con una clave simétrica que solo conoce el proceso.
type Issuer struct {
	secret    []byte
	AccessTTL time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultAccessTTL
	}
	return &Issuer{secret: []byte(secret), AccessTTL: ttl}
}

// Issue emite un token firmado con sub/username y exp = now + AccessTTL.
func (i *Issuer) Issue(subjectID, username string) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(i.AccessTTL)

	claims := jwtv5.MapClaims{
		"sub":      subjectID,
		"username": username,
		"iat":      now.Unix(),
		"exp":      exp.Unix(),
	}
	tk := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	tk.Header["typ"] = "JWT"

	signed, err := tk.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Parse valida firma HS256 y expiración. Cualquier fallo devuelve ErrTokenInvalid.
func (i *Issuer) Parse(token string) (*Claims, error) {
	tok, err := jwtv5.Parse(token,
		func(t *jwtv5.Token) (any, error) { return i.secret, nil },
		jwtv5.WithValidMethods([]string{"HS256"}),
		jwtv5.WithExpirationRequired(),
	)
	if err != nil || !tok.Valid {
		return nil, ErrTokenInvalid
	}

	mc, ok := tok.Claims.(jwtv5.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}
	sub, _ := mc["sub"].(string)
	if sub == "" {
		return nil, ErrTokenInvalid
	}

	c := &Claims{SubjectID: sub}
	if v, ok := mc["username"].(string); ok {
		c.Username = v
	}
	if v, ok := mc["iat"].(float64); ok {
		c.IssuedAt = time.Unix(int64(v), 0).UTC()
	}
	if v, ok := mc["exp"].(float64); ok {
		c.ExpiresAt = time.Unix(int64(v), 0).UTC()
	}
	return c, nil
}
