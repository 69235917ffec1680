package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type client struct {
	BaseURL   string
	Token     string
	OutFormat string // "json" | "text"
	HTTP      *http.Client
}

func (c *client) do(method, path string, body []byte) (int, []byte, error) {
	url := strings.TrimRight(c.BaseURL, "/") + path
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b, nil
}

func (c *client) print(status int, body []byte) {
	if c.OutFormat == "json" {
		var v any
		if json.Unmarshal(body, &v) == nil {
			p, _ := json.MarshalIndent(v, "", "  ")
			fmt.Println(string(p))
			return
		}
	}
	if len(body) > 0 {
		fmt.Println(string(body))
	} else {
		fmt.Printf("status=%d\n", status)
	}
}

func main() {
	var (
		baseURL = envOr("PASSCODE_URL", "http://localhost:8080")
		token   = envOr("PASSCODE_TOKEN", "")
		out     = envOr("PASSCODE_OUT", "text")
		timeout = 30 * time.Second
	)

	root := &cobra.Command{
		Use:   "passctl",
		Short: "Cliente CLI del API passcode",
	}

	root.PersistentFlags().StringVar(&baseURL, "url", baseURL, "URL base del API (env PASSCODE_URL)")
	root.PersistentFlags().StringVar(&token, "token", token, "Bearer token (env PASSCODE_TOKEN)")
	root.PersistentFlags().StringVar(&out, "out", out, "Formato de salida: json|text")

	cl := &client{HTTP: &http.Client{Timeout: timeout}}
	// Los flags se resuelven recién al ejecutar el comando.
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cl.BaseURL = baseURL
		cl.Token = token
		cl.OutFormat = out
	}

	requireToken := func(cmd *cobra.Command, args []string) error {
		if token == "" {
			return fmt.Errorf("falta token (flag --token o env PASSCODE_TOKEN)")
		}
		return nil
	}

	// register
	var regUsername, regEmail, regPhone, regPassword string
	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Registrar un usuario nuevo",
		RunE: func(cmd *cobra.Command, args []string) error {
			if regUsername == "" || regPassword == "" {
				return fmt.Errorf("--username y --password son requeridos")
			}
			b, _ := json.Marshal(map[string]string{
				"username": regUsername,
				"email":    regEmail,
				"phone":    regPhone,
				"password": regPassword,
			})
			status, body, err := cl.do("POST", "/api/auth/register", b)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("register fallo: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}
	registerCmd.Flags().StringVar(&regUsername, "username", "", "Nombre de usuario")
	registerCmd.Flags().StringVar(&regEmail, "email", "", "Email (opcional si hay phone)")
	registerCmd.Flags().StringVar(&regPhone, "phone", "", "Teléfono (opcional si hay email)")
	registerCmd.Flags().StringVar(&regPassword, "password", "", "Password")

	// login
	var loginID, loginPassword string
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Login por username, email o phone",
		RunE: func(cmd *cobra.Command, args []string) error {
			if loginID == "" || loginPassword == "" {
				return fmt.Errorf("--identifier y --password son requeridos")
			}
			b, _ := json.Marshal(map[string]string{
				"identifier": loginID,
				"password":   loginPassword,
			})
			status, body, err := cl.do("POST", "/api/auth/login", b)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("login fallo: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}
	loginCmd.Flags().StringVar(&loginID, "identifier", "", "Username, email o phone")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password")

	// me
	meCmd := &cobra.Command{
		Use:     "me",
		Short:   "Perfil del usuario autenticado",
		PreRunE: requireToken,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.do("GET", "/api/auth/me", nil)
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}

	// list
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "Listar credenciales propias",
		PreRunE: requireToken,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.do("GET", "/api/credentials", nil)
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}

	// add
	var addSite, addLink, addUsername, addSecret string
	addCmd := &cobra.Command{
		Use:     "add",
		Short:   "Guardar una credencial",
		PreRunE: requireToken,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addSite == "" || addSecret == "" {
				return fmt.Errorf("--site y --secret son requeridos")
			}
			b, _ := json.Marshal(map[string]string{
				"site":     addSite,
				"link":     addLink,
				"username": addUsername,
				"secret":   addSecret,
			})
			status, body, err := cl.do("POST", "/api/credentials", b)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("add fallo: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}
	addCmd.Flags().StringVar(&addSite, "site", "", "Nombre del sitio")
	addCmd.Flags().StringVar(&addLink, "link", "", "URL del sitio (opcional)")
	addCmd.Flags().StringVar(&addUsername, "username", "", "Usuario en el sitio (opcional)")
	addCmd.Flags().StringVar(&addSecret, "secret", "", "Secreto a guardar")

	// rm
	rmCmd := &cobra.Command{
		Use:     "rm <id>",
		Short:   "Borrar una credencial por id",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireToken,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.do("DELETE", "/api/credentials/"+args[0], nil)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("rm fallo: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}

	root.AddCommand(registerCmd, loginCmd, meCmd, listCmd, addCmd, rmCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
