// Package sdkurl resolves the Wepin service endpoints an SDK instance talks to,
// based on the environment encoded in its application key.
package sdkurl

import (
	"fmt"
	"net/url"

	"github.com/wepin/wepin-common-go/pkg/domain"
	"github.com/wepin/wepin-common-go/pkg/werrors"
)

// Keys of the map returned by GetWepinSdkURL and Resolver.ResolveMap.
const (
	KeyWebview    = "wepinWebview"
	KeySDKBackend = "sdkBackend"
	KeyWallet     = "wallet"
)

// URLs is the base-URL set for one environment.
type URLs struct {
	Webview    string `yaml:"wepin_webview" json:"wepinWebview"`
	SDKBackend string `yaml:"sdk_backend" json:"sdkBackend"`
	Wallet     string `yaml:"wallet" json:"wallet"`
}

// Map returns a fresh map keyed by KeyWebview, KeySDKBackend and KeyWallet.
func (u URLs) Map() map[string]string {
	return map[string]string{
		KeyWebview:    u.Webview,
		KeySDKBackend: u.SDKBackend,
		KeyWallet:     u.Wallet,
	}
}

// Merge returns u with every non-empty field of override applied.
func (u URLs) Merge(override URLs) URLs {
	if override.Webview != "" {
		u.Webview = override.Webview
	}
	if override.SDKBackend != "" {
		u.SDKBackend = override.SDKBackend
	}
	if override.Wallet != "" {
		u.Wallet = override.Wallet
	}
	return u
}

// Validate checks that every non-empty field is an absolute http(s) URL.
func (u URLs) Validate() error {
	for key, raw := range u.Map() {
		if raw == "" {
			continue
		}
		if err := checkBaseURL(raw); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func checkBaseURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("url %q must use http or https", raw)
	}
	if parsed.Host == "" {
		return fmt.Errorf("url %q has no host", raw)
	}
	return nil
}

var defaultTable = map[domain.KeyType]URLs{
	domain.KeyTypeDev: {
		Webview:    "https://dev-v1-widget.wepin.io/",
		SDKBackend: "https://dev-sdk.wepin.io/v1/",
		Wallet:     "https://dev-app.wepin.io/",
	},
	domain.KeyTypeStage: {
		Webview:    "https://stage-v1-widget.wepin.io/",
		SDKBackend: "https://stage-sdk.wepin.io/v1/",
		Wallet:     "https://stage-app.wepin.io/",
	},
	domain.KeyTypeProd: {
		Webview:    "https://v1-widget.wepin.io/",
		SDKBackend: "https://sdk.wepin.io/v1/",
		Wallet:     "https://app.wepin.io/",
	},
}

// DefaultURLs returns the built-in URL set of an environment.
func DefaultURLs(k domain.KeyType) (URLs, bool) {
	u, ok := defaultTable[k]
	return u, ok
}

// Logger is a minimal logging interface for the resolver.
// *zap.SugaredLogger satisfies it.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// Resolver maps application keys to URL sets. It is immutable after
// construction and safe for concurrent use.
type Resolver struct {
	table     map[domain.KeyType]URLs
	overrides map[domain.KeyType]URLs
	logger    Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the resolver logger.
func WithLogger(l Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithOverride replaces the non-empty fields of one environment's URL set.
func WithOverride(k domain.KeyType, u URLs) Option {
	return func(r *Resolver) {
		r.overrides[k] = r.overrides[k].Merge(u)
	}
}

// NewResolver creates a resolver over the built-in table.
func NewResolver(opts ...Option) (*Resolver, error) {
	r := &Resolver{
		table:     make(map[domain.KeyType]URLs, len(defaultTable)),
		overrides: make(map[domain.KeyType]URLs),
		logger:    NopLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}

	for k, u := range defaultTable {
		r.table[k] = u
	}
	for k, o := range r.overrides {
		if _, ok := r.table[k]; !ok {
			return nil, fmt.Errorf("override for unknown key type %s", k)
		}
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("override for %s: %w", k, err)
		}
		r.table[k] = r.table[k].Merge(o)
		r.logger.Infof("using url override for %s environment", k)
	}
	return r, nil
}

// KeyType classifies appKey, failing with werrors.CodeInvalidAppKey.
func (r *Resolver) KeyType(appKey string) (domain.KeyType, error) {
	k, ok := domain.KeyTypeFromAppKey(appKey)
	if !ok {
		r.logger.Warnf("rejected app key %s", maskAppKey(appKey))
		return 0, werrors.New(werrors.CodeInvalidAppKey)
	}
	return k, nil
}

// Resolve returns the URL set for appKey.
func (r *Resolver) Resolve(appKey string) (URLs, error) {
	k, err := r.KeyType(appKey)
	if err != nil {
		return URLs{}, err
	}
	r.logger.Debugf("resolved app key %s to %s environment", maskAppKey(appKey), k)
	return r.table[k], nil
}

// ResolveMap is Resolve in map form. On error the map is nil.
func (r *Resolver) ResolveMap(appKey string) (map[string]string, error) {
	u, err := r.Resolve(appKey)
	if err != nil {
		return nil, err
	}
	return u.Map(), nil
}

var defaultResolver = &Resolver{table: defaultTable, logger: NopLogger{}}

// GetWepinSdkURL resolves the built-in URL set for appKey. It returns either a
// map with the keys wepinWebview, sdkBackend and wallet, or an error carrying
// werrors.CodeInvalidAppKey.
func GetWepinSdkURL(appKey string) (map[string]string, error) {
	return defaultResolver.ResolveMap(appKey)
}

// maskAppKey shows only the environment prefix of a key. Unrecognized keys
// are reduced to their length.
func maskAppKey(appKey string) string {
	if k, ok := domain.KeyTypeFromAppKey(appKey); ok {
		return fmt.Sprintf("%q", k.Prefix()+"...")
	}
	return fmt.Sprintf("<%d bytes>", len(appKey))
}
