package identity

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"rpa_chamados/internal/domain/entities"
	"rpa_chamados/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

const (
	azureADIssuerPrefix   = "https://login.microsoftonline.com/"
	azureADIssuerV1Suffix = "/"
	azureADIssuerV2Suffix = "/v2.0"
	azureADStsIssuer      = "https://sts.windows.net/"
)

// AzureADVerifier validates Azure AD bearer tokens against the tenant's JWKS
// endpoint and extracts the caller identity from the claims.
//
// Env vars:
//   - AZURE_TENANT_ID (required)
//   - AZURE_CLIENT_ID (optional; enables audience validation when set)

type AzureADVerifier struct {
	tenantID string
	clientID string
	jwksURL  string
	client   *http.Client

	mu   sync.RWMutex
	keys map[string]*rsa.PublicKey
}

var _ interfaces.IIdentityVerifier = (*AzureADVerifier)(nil)

func NewAzureADVerifier() (*AzureADVerifier, error) {
	tenantID := strings.TrimSpace(os.Getenv("AZURE_TENANT_ID"))
	if tenantID == "" {
		return nil, fmt.Errorf("AZURE_TENANT_ID not set")
	}
	return &AzureADVerifier{
		tenantID: tenantID,
		clientID: strings.TrimSpace(os.Getenv("AZURE_CLIENT_ID")),
		jwksURL:  azureADIssuerPrefix + tenantID + "/discovery/v2.0/keys",
		client:   &http.Client{Timeout: 10 * time.Second},
		keys:     map[string]*rsa.PublicKey{},
	}, nil
}

func (v *AzureADVerifier) Verify(ctx context.Context, bearerToken string) (entities.Identity, error) {
	bearerToken = strings.TrimSpace(bearerToken)
	if bearerToken == "" {
		return entities.Identity{}, interfaces.ErrInvalidToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithExpirationRequired(),
	}
	if v.clientID != "" {
		opts = append(opts, jwt.WithAudience(v.clientID))
	}

	token, err := jwt.Parse(bearerToken, func(t *jwt.Token) (interface{}, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("token has no kid header")
		}
		return v.keyForKid(ctx, kid)
	}, opts...)
	if err != nil {
		return entities.Identity{}, fmt.Errorf("%w: %v", interfaces.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entities.Identity{}, interfaces.ErrInvalidToken
	}

	if err := v.checkIssuer(claims); err != nil {
		return entities.Identity{}, err
	}

	id := entities.Identity{
		SubjectID:   claimString(claims, "sub"),
		Email:       extractEmail(claims),
		DisplayName: extractName(claims),
	}
	if id.Email == "" {
		return entities.Identity{}, fmt.Errorf("%w: token carries no email claim", interfaces.ErrInvalidToken)
	}
	return id, nil
}

// checkIssuer accepts v1 and v2 Azure AD issuer formats for the tenant.
func (v *AzureADVerifier) checkIssuer(claims jwt.MapClaims) error {
	iss := claimString(claims, "iss")
	accepted := []string{
		azureADIssuerPrefix + v.tenantID + azureADIssuerV2Suffix,
		azureADIssuerPrefix + v.tenantID + azureADIssuerV1Suffix,
		azureADStsIssuer + v.tenantID + "/",
	}
	for _, a := range accepted {
		if iss == a {
			return nil
		}
	}
	return fmt.Errorf("%w: unexpected issuer %q", interfaces.ErrInvalidToken, iss)
}

func (v *AzureADVerifier) keyForKid(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	v.mu.RLock()
	key, ok := v.keys[kid]
	v.mu.RUnlock()
	if ok {
		return key, nil
	}

	if err := v.refreshKeys(ctx); err != nil {
		return nil, err
	}

	v.mu.RLock()
	key, ok = v.keys[kid]
	v.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("signing key %q not found in tenant JWKS", kid)
	}
	return key, nil
}

func (v *AzureADVerifier) refreshKeys(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.jwksURL, nil)
	if err != nil {
		return err
	}
	resp, err := v.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("jwks fetch failed with status %d", resp.StatusCode)
	}

	var doc struct {
		Keys []struct {
			Kid string `json:"kid"`
			N   string `json:"n"`
			E   string `json:"e"`
		} `json:"keys"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return err
	}

	fresh := make(map[string]*rsa.PublicKey, len(doc.Keys))
	for _, k := range doc.Keys {
		pub, err := rsaKeyFromJWK(k.N, k.E)
		if err != nil {
			continue
		}
		fresh[k.Kid] = pub
	}

	v.mu.Lock()
	v.keys = fresh
	v.mu.Unlock()
	return nil
}

func rsaKeyFromJWK(n, e string) (*rsa.PublicKey, error) {
	nb, err := base64.RawURLEncoding.DecodeString(n)
	if err != nil {
		return nil, err
	}
	eb, err := base64.RawURLEncoding.DecodeString(e)
	if err != nil {
		return nil, err
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nb),
		E: int(new(big.Int).SetBytes(eb).Int64()),
	}, nil
}

// extractEmail tries the claims Azure AD may carry the address in, in order:
// email, preferred_username, unique_name.
func extractEmail(claims jwt.MapClaims) string {
	for _, c := range []string{"email", "preferred_username", "unique_name"} {
		if v := claimString(claims, c); strings.Contains(v, "@") {
			return strings.ToLower(v)
		}
	}
	return ""
}

func extractName(claims jwt.MapClaims) string {
	if v := claimString(claims, "name"); v != "" {
		return v
	}
	given := claimString(claims, "given_name")
	family := claimString(claims, "family_name")
	return strings.TrimSpace(given + " " + family)
}

func claimString(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}
