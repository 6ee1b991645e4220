package auth

import (
	"context"
	"fmt"

	"github.com/viant/scy"
	"github.com/viant/scy/cred"
)

// Credentials identify the user against all three challenge protocols: the
// form login, the token realm exchange and the basic-auth fallback.
type Credentials struct {
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password,omitempty"`
}

// Load reads basic credentials from a scy secret resource. The secretURL
// addresses any storage scy supports; key optionally names the decryption
// key (e.g. blowfish://default).
func Load(ctx context.Context, secretURL, key string) (*Credentials, error) {
	secrets := scy.New()
	resource := scy.NewResource(cred.Basic{}, secretURL, key)
	secret, err := secrets.Load(ctx, resource)
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials from %q: %w", secretURL, err)
	}
	basic, ok := secret.Target.(*cred.Basic)
	if !ok {
		return nil, fmt.Errorf("unexpected secret type %T for %q", secret.Target, secretURL)
	}
	return &Credentials{Username: basic.Username, Password: basic.Password}, nil
}
