package auth

import (
	"net/mail"
	"regexp"
	"strings"
)

// phoneDigitsRE valida el número ya sin separadores: dígitos, 7 a 15,
// opcionalmente precedidos por "+".
var phoneDigitsRE = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	// mail.ParseAddress acepta "Nombre <a@b>"; acá solo la dirección pelada.
	return err == nil && addr.Address == s && strings.Contains(s, ".")
}

func validPhone(s string) bool {
	stripped := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "").Replace(s)
	return phoneDigitsRE.MatchString(stripped)
}
