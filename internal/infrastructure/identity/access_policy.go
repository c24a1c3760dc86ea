package identity

import (
	"context"
	"fmt"
	"os"
	"strings"

	"rpa_chamados/internal/domain/entities"
	"rpa_chamados/internal/usecase/interfaces"
)

// SubmitterAccessPolicy resolves the caller's role from the submitter record
// matching the identity's email. Addresses listed in ADMIN_EMAILS
// (comma-separated) are treated as ADMIN regardless of the stored role.
type SubmitterAccessPolicy struct {
	submitters  interfaces.ISubmitterRepository
	adminEmails map[string]struct{}
}

var _ interfaces.IAccessPolicy = (*SubmitterAccessPolicy)(nil)

func NewSubmitterAccessPolicy(submitters interfaces.ISubmitterRepository) *SubmitterAccessPolicy {
	admins := map[string]struct{}{}
	for _, e := range strings.Split(os.Getenv("ADMIN_EMAILS"), ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			admins[e] = struct{}{}
		}
	}
	return &SubmitterAccessPolicy{submitters: submitters, adminEmails: admins}
}

func (p *SubmitterAccessPolicy) Authorize(ctx context.Context, caller entities.Identity, requiredRoles ...entities.UserRole) error {
	if caller.Email == "" {
		return interfaces.ErrInvalidToken
	}
	if len(requiredRoles) == 0 {
		return nil
	}

	role, err := p.resolveRole(ctx, caller)
	if err != nil {
		return err
	}
	for _, r := range requiredRoles {
		if role == r {
			return nil
		}
	}
	return fmt.Errorf("%w: role %s", interfaces.ErrInsufficientRole, role)
}

func (p *SubmitterAccessPolicy) resolveRole(ctx context.Context, caller entities.Identity) (entities.UserRole, error) {
	email := strings.ToLower(caller.Email)
	if _, ok := p.adminEmails[email]; ok {
		return entities.UserRoleAdmin, nil
	}
	sub, err := p.submitters.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if sub.ID == "" || sub.UserRole == "" {
		return entities.UserRoleDefault, nil
	}
	return sub.UserRole, nil
}
