package cli

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPasswordCmd prints a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
type HashPasswordCmd struct {
	Password string `arg:"" help:"Password to hash."`
}

func (c *HashPasswordCmd) Run(app *Context) error {
	if len(c.Password) < 5 {
		return fmt.Errorf("password must be at least 5 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	fmt.Fprintln(app.Out, string(hash))
	return nil
}
