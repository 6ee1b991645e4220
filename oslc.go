package oslc

import (
	"context"
	"fmt"
	"time"

	"github.com/viant/afs"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/viant/oslc/client"
	"github.com/viant/oslc/client/auth"
	"github.com/viant/oslc/client/auth/transport"
)

// ClientOptions defines options for configuring an OSLC client.
type ClientOptions struct {
	// ConfigContext is sent as the tenant/workspace context header.
	ConfigContext string `yaml:"configContext,omitempty" json:"configContext,omitempty"`

	// TimeoutSeconds bounds each request; defaults to 60.
	TimeoutSeconds int `yaml:"timeoutSeconds,omitempty" json:"timeoutSeconds,omitempty"`

	// CookieJarPath, when set, persists session cookies across client
	// instances so established form-login sessions are reused.
	CookieJarPath string `yaml:"cookieJarPath,omitempty" json:"cookieJarPath,omitempty"`

	// NameCacheSize caps the name-resolution cache (default 1024).
	NameCacheSize int `yaml:"nameCacheSize,omitempty" json:"nameCacheSize,omitempty"`

	Auth *ClientAuth `yaml:"auth,omitempty" json:"auth,omitempty"`
}

// ClientAuth defines authentication options. Inline credentials and a scy
// secret URL are mutually exclusive; the secret wins when both are set.
type ClientAuth struct {
	Username      string `yaml:"username,omitempty" json:"username,omitempty"`
	Password      string `yaml:"password,omitempty" json:"password,omitempty"`
	SecretURL     string `yaml:"secretURL,omitempty" json:"secretURL,omitempty"`
	EncryptionKey string `yaml:"encryptionKey,omitempty" json:"encryptionKey,omitempty"`
}

// Init applies defaults.
func (o *ClientOptions) Init() {
	if o.TimeoutSeconds <= 0 {
		o.TimeoutSeconds = 60
	}
}

// LoadOptions reads YAML client options from any URL-addressable storage.
func LoadOptions(ctx context.Context, URL string) (*ClientOptions, error) {
	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load client options from %q: %w", URL, err)
	}
	options := &ClientOptions{}
	if err := yaml.Unmarshal(data, options); err != nil {
		return nil, fmt.Errorf("failed to parse client options from %q: %w", URL, err)
	}
	options.Init()
	return options, nil
}

// NewClient creates an OSLC client with the auth-negotiating transport
// configured from options. Additional client options are applied last.
func NewClient(ctx context.Context, options *ClientOptions, logger *zap.Logger, clientOptions ...client.Option) (*client.Client, error) {
	if options == nil {
		options = &ClientOptions{}
	}
	options.Init()
	if logger == nil {
		logger = zap.NewNop()
	}

	credentials, err := options.credentials(ctx)
	if err != nil {
		return nil, err
	}
	transportOptions := []transport.Option{transport.WithLogger(logger)}
	if credentials != nil {
		transportOptions = append(transportOptions, transport.WithCredentials(credentials))
	}
	if options.ConfigContext != "" {
		transportOptions = append(transportOptions, transport.WithConfigContext(options.ConfigContext))
	}
	if options.CookieJarPath != "" {
		jar, err := transport.NewFileJar(options.CookieJarPath)
		if err != nil {
			return nil, err
		}
		transportOptions = append(transportOptions, transport.WithCookieJar(jar))
	}
	negotiator, err := transport.New(transportOptions...)
	if err != nil {
		return nil, err
	}

	opts := []client.Option{
		client.WithNegotiator(negotiator),
		client.WithLogger(logger),
		client.WithTimeout(time.Duration(options.TimeoutSeconds) * time.Second),
	}
	if options.NameCacheSize != 0 {
		opts = append(opts, client.WithNameCacheSize(options.NameCacheSize))
	}
	opts = append(opts, clientOptions...)
	return client.New(opts...)
}

func (o *ClientOptions) credentials(ctx context.Context) (*auth.Credentials, error) {
	if o.Auth == nil {
		return nil, nil
	}
	if o.Auth.SecretURL != "" {
		return auth.Load(ctx, o.Auth.SecretURL, o.Auth.EncryptionKey)
	}
	if o.Auth.Username == "" {
		return nil, nil
	}
	return &auth.Credentials{Username: o.Auth.Username, Password: o.Auth.Password}, nil
}
