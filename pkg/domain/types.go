package domain

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Default widget attribute values
const (
	DefaultLanguage = "en"
	DefaultCurrency = "USD"
)

// Attribute holds the display defaults passed to the widget
type Attribute struct {
	DefaultLanguage string `yaml:"default_language" json:"defaultLanguage"`
	DefaultCurrency string `yaml:"default_currency" json:"defaultCurrency"`
}

// NewAttribute returns an Attribute populated with the SDK defaults
func NewAttribute() Attribute {
	return Attribute{DefaultLanguage: DefaultLanguage, DefaultCurrency: DefaultCurrency}
}

// WithDefaults fills empty fields with the SDK defaults
func (a Attribute) WithDefaults() Attribute {
	if a.DefaultLanguage == "" {
		a.DefaultLanguage = DefaultLanguage
	}
	if a.DefaultCurrency == "" {
		a.DefaultCurrency = DefaultCurrency
	}
	return a
}

// AttributeWithProviders extends Attribute with the enabled login providers
type AttributeWithProviders struct {
	DefaultLanguage string   `yaml:"default_language" json:"defaultLanguage"`
	DefaultCurrency string   `yaml:"default_currency" json:"defaultCurrency"`
	LoginProviders  []string `yaml:"login_providers" json:"loginProviders"`
}

// NewAttributeWithProviders builds the widget attribute set; LoginProviders is never nil
func NewAttributeWithProviders(attr Attribute, providers []string) AttributeWithProviders {
	attr = attr.WithDefaults()
	if providers == nil {
		providers = []string{}
	}
	return AttributeWithProviders{
		DefaultLanguage: attr.DefaultLanguage,
		DefaultCurrency: attr.DefaultCurrency,
		LoginProviders:  providers,
	}
}

// LifeCycle is the SDK initialization/login state
type LifeCycle string

const (
	LifeCycleNotInitialized      LifeCycle = "notInitialized"
	LifeCycleInitializing        LifeCycle = "initializing"
	LifeCycleInitialized         LifeCycle = "initialized"
	LifeCycleLogin               LifeCycle = "login"
	LifeCycleBeforeLogin         LifeCycle = "beforeLogin"
	LifeCycleLoginBeforeRegister LifeCycle = "loginBeforeRegister"
)

// LoginStatus is the post-login state reported by the backend
type LoginStatus string

const (
	LoginStatusComplete         LoginStatus = "complete"
	LoginStatusPinRequired      LoginStatus = "pinRequired"
	LoginStatusRegisterRequired LoginStatus = "registerRequired"
)

// Valid reports whether s is a known login status
func (s LoginStatus) Valid() bool {
	switch s {
	case LoginStatusComplete, LoginStatusPinRequired, LoginStatusRegisterRequired:
		return true
	}
	return false
}

// UnmarshalJSON rejects unknown login statuses
func (s *LoginStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if !LoginStatus(raw).Valid() {
		return fmt.Errorf("unknown login status %q", raw)
	}
	*s = LoginStatus(raw)
	return nil
}

// LoginProvider identifies an authentication provider
type LoginProvider string

const (
	LoginProviderGoogle        LoginProvider = "google"
	LoginProviderApple         LoginProvider = "apple"
	LoginProviderNaver         LoginProvider = "naver"
	LoginProviderDiscord       LoginProvider = "discord"
	LoginProviderFacebook      LoginProvider = "facebook"
	LoginProviderLine          LoginProvider = "line"
	LoginProviderKakao         LoginProvider = "kakao"
	LoginProviderEmail         LoginProvider = "email"
	LoginProviderExternalToken LoginProvider = "external_token"
)

var loginProviders = []LoginProvider{
	LoginProviderGoogle, LoginProviderApple, LoginProviderNaver, LoginProviderDiscord,
	LoginProviderFacebook, LoginProviderLine, LoginProviderKakao, LoginProviderEmail,
	LoginProviderExternalToken,
}

// LoginProviders returns every supported provider
func LoginProviders() []LoginProvider {
	return append([]LoginProvider(nil), loginProviders...)
}

// ParseLoginProvider validates a provider name
func ParseLoginProvider(s string) (LoginProvider, error) {
	for _, p := range loginProviders {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown login provider %q", s)
}

// UnmarshalJSON rejects unknown providers
func (p *LoginProvider) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseLoginProvider(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// UnmarshalYAML rejects unknown providers
func (p *LoginProvider) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseLoginProvider(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// User is the login result shared between SDK modules
type User struct {
	Status     string      `yaml:"status" json:"status"`
	UserInfo   *UserInfo   `yaml:"user_info,omitempty" json:"userInfo,omitempty"`
	WalletID   *string     `yaml:"wallet_id,omitempty" json:"walletId,omitempty"`
	UserStatus *UserStatus `yaml:"user_status,omitempty" json:"userStatus,omitempty"`
	Token      *Token      `yaml:"token,omitempty" json:"token,omitempty"`
}

// UserInfo identifies the logged-in user
type UserInfo struct {
	UserID   string        `yaml:"user_id" json:"userId"`
	Email    string        `yaml:"email" json:"email"`
	Provider LoginProvider `yaml:"provider" json:"provider"`
	Use2FA   bool          `yaml:"use_2fa" json:"use2FA"`
}

// Token is an access/refresh token pair
type Token struct {
	Access  string `yaml:"access" json:"access"`
	Refresh string `yaml:"refresh" json:"refresh"`
}

// UserStatus reports what the user still has to do after login
type UserStatus struct {
	LoginStatus LoginStatus `yaml:"login_status" json:"loginStatus"`
	PinRequired *bool       `yaml:"pin_required,omitempty" json:"pinRequired,omitempty"`
}

// IsLoggedIn reports whether the user finished login without pending steps
func (u *User) IsLoggedIn() bool {
	return u != nil && u.UserStatus != nil && u.UserStatus.LoginStatus == LoginStatusComplete
}
