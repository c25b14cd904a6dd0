package figma

import (
	"errors"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultAPIRoot is the public Figma REST API root.
const DefaultAPIRoot = "https://api.figma.com"

// Config holds everything needed to fetch a project's files.
// All three fields are required.
type Config struct {
	APIRoot     string // e.g. https://api.figma.com, without the /v1 suffix
	AccessToken string // Figma personal access token
	ProjectID   uint64
}

// Validate reports a ConfigError if any field is blank or the API root is not
// an absolute http(s) URL.
func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.APIRoot, validation.Required, validation.By(checkAPIRoot)),
		validation.Field(&c.AccessToken, validation.Required, validation.By(checkToken)),
		validation.Field(&c.ProjectID, validation.Required),
	)
	if err != nil {
		return newError(ConfigError, "validate config", err)
	}
	return nil
}

func checkAPIRoot(value any) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("must use the http or https scheme")
	}
	if u.Host == "" {
		return errors.New("must include a host")
	}
	return nil
}

func checkToken(value any) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}

// MaskToken returns a printable form of an access token that keeps only its
// last four characters.
func MaskToken(token string) string {
	if len(token) <= 4 {
		return strings.Repeat("*", len(token))
	}
	return strings.Repeat("*", len(token)-4) + token[len(token)-4:]
}
