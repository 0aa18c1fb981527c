package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultIdentityToolkitURL = "https://identitytoolkit.googleapis.com/v1"

// FirebaseProvider talks to the Firebase Identity Toolkit REST API.
// Session tokens are minted locally (HS256) so that token verification
// does not require a round trip to Google on every request.
type FirebaseProvider struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	tokenSecret []byte
	tokenTTL    time.Duration
	log         *zap.Logger
}

type FirebaseConfig struct {
	APIKey      string
	BaseURL     string // override for tests, defaults to the Google endpoint
	TokenSecret string
	TokenTTL    time.Duration
}

func NewFirebaseProvider(cfg FirebaseConfig, log *zap.Logger) *FirebaseProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultIdentityToolkitURL
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &FirebaseProvider{
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		apiKey:      cfg.APIKey,
		tokenSecret: []byte(cfg.TokenSecret),
		tokenTTL:    ttl,
		log:         log,
	}
}

// ---------- wire types ----------

type firebaseAccountPayload struct {
	LocalID          string `json:"localId,omitempty"`
	Email            string `json:"email,omitempty"`
	Password         string `json:"password,omitempty"`
	DisplayName      string `json:"displayName,omitempty"`
	CustomAttributes string `json:"customAttributes,omitempty"`
	ReturnSecureTkn  bool   `json:"returnSecureToken,omitempty"`
}

type firebaseAccountResult struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

type firebaseLookupResult struct {
	Users []struct {
		LocalID          string `json:"localId"`
		Email            string `json:"email"`
		DisplayName      string `json:"displayName"`
		CustomAttributes string `json:"customAttributes"`
	} `json:"users"`
}

type firebaseError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ---------- Provider implementation ----------

func (p *FirebaseProvider) CreateAccount(ctx context.Context, email, password string) (*Account, error) {
	var result firebaseAccountResult
	err := p.post(ctx, "accounts:signUp", firebaseAccountPayload{
		Email:           email,
		Password:        password,
		ReturnSecureTkn: true,
	}, &result)
	if err != nil {
		return nil, err
	}

	return &Account{UID: result.LocalID, Email: result.Email}, nil
}

func (p *FirebaseProvider) SignIn(ctx context.Context, email, password string) (*Account, error) {
	var result firebaseAccountResult
	err := p.post(ctx, "accounts:signInWithPassword", firebaseAccountPayload{
		Email:           email,
		Password:        password,
		ReturnSecureTkn: true,
	}, &result)
	if err != nil {
		return nil, err
	}

	return &Account{
		UID:         result.LocalID,
		Email:       result.Email,
		DisplayName: result.DisplayName,
	}, nil
}

func (p *FirebaseProvider) IssueToken(ctx context.Context, uid string) (string, error) {
	claims, err := p.lookupClaims(ctx, uid)
	if err != nil {
		return "", err
	}
	return signSessionToken(p.tokenSecret, uid, claims.Admin, p.tokenTTL)
}

func (p *FirebaseProvider) VerifyToken(_ context.Context, token string) (string, error) {
	claims, err := parseSessionToken(p.tokenSecret, token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func (p *FirebaseProvider) SetPrivilegeClaims(ctx context.Context, uid string, claims Claims) error {
	current, err := p.lookupClaims(ctx, uid)
	if err != nil {
		return err
	}
	if current == claims {
		// Already asserted, nothing to push.
		return nil
	}

	attrs, err := json.Marshal(map[string]bool{"admin": claims.Admin})
	if err != nil {
		return fmt.Errorf("marshal custom attributes: %w", err)
	}

	return p.post(ctx, "accounts:update", firebaseAccountPayload{
		LocalID:          uid,
		CustomAttributes: string(attrs),
	}, nil)
}

func (p *FirebaseProvider) UpdateDisplayName(ctx context.Context, uid, name string) error {
	return p.post(ctx, "accounts:update", firebaseAccountPayload{
		LocalID:     uid,
		DisplayName: name,
	}, nil)
}

// ---------- helpers ----------

func (p *FirebaseProvider) lookupClaims(ctx context.Context, uid string) (Claims, error) {
	var result firebaseLookupResult
	err := p.post(ctx, "accounts:lookup", map[string][]string{"localId": {uid}}, &result)
	if err != nil {
		return Claims{}, err
	}
	if len(result.Users) == 0 {
		return Claims{}, ErrAccountNotFound
	}

	var claims Claims
	if attrs := result.Users[0].CustomAttributes; attrs != "" {
		var parsed map[string]bool
		if err := json.Unmarshal([]byte(attrs), &parsed); err == nil {
			claims.Admin = parsed["admin"]
		}
	}
	return claims, nil
}

func (p *FirebaseProvider) post(ctx context.Context, endpoint string, payload, result any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", endpoint, err)
	}

	url := fmt.Sprintf("%s/%s?key=%s", p.baseURL, endpoint, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.Error("Identity toolkit request failed",
			zap.Error(err),
			zap.String("endpoint", endpoint),
		)
		return fmt.Errorf("call %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", endpoint, err)
	}

	if resp.StatusCode != http.StatusOK {
		return p.mapError(endpoint, resp.StatusCode, raw)
	}

	if result != nil {
		if err := json.Unmarshal(raw, result); err != nil {
			return fmt.Errorf("decode %s response: %w", endpoint, err)
		}
	}
	return nil
}

// mapError converts identity toolkit error codes to the adapter's sentinel
// errors. Unknown codes pass through with the raw message as diagnostic.
func (p *FirebaseProvider) mapError(endpoint string, status int, raw []byte) error {
	var fbErr firebaseError
	_ = json.Unmarshal(raw, &fbErr)
	code := fbErr.Error.Message

	p.log.Warn("Identity toolkit error",
		zap.String("endpoint", endpoint),
		zap.Int("status", status),
		zap.String("code", code),
	)

	switch {
	case code == "EMAIL_EXISTS":
		return ErrAccountExists
	case code == "INVALID_EMAIL",
		code == "MISSING_PASSWORD",
		strings.HasPrefix(code, "WEAK_PASSWORD"):
		return ErrInvalidCredentialFormat
	case code == "EMAIL_NOT_FOUND",
		code == "INVALID_PASSWORD",
		code == "INVALID_LOGIN_CREDENTIALS",
		code == "USER_DISABLED":
		return ErrInvalidCredentials
	case code == "USER_NOT_FOUND":
		return ErrAccountNotFound
	default:
		return fmt.Errorf("%s failed with status %d: %s", endpoint, status, code)
	}
}
