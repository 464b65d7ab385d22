package registration

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"churchfeed-app/internal/domain/admins"
	"churchfeed-app/internal/domain/churches"
	"churchfeed-app/internal/domain/plans"
)

// Input is the church registration form as submitted before payment.
type Input struct {
	ChurchName    string     `json:"churchName"`
	ChurchAddress string     `json:"churchAddress"`
	IsHq          bool       `json:"isHq"`
	HqChurchCode  string     `json:"hqChurchCode,omitempty"`
	AdminName     string     `json:"adminName"`
	AdminRole     string     `json:"adminRole"`
	AdminPhone    string     `json:"adminPhone"`
	AdminEmail    string     `json:"adminEmail"`
	AdminPassword string     `json:"adminPassword"`
	MemberCount   plans.Tier `json:"memberCountTier"`
	WantsTrial    bool       `json:"wantsTrial"`
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Validate checks that the form is well-formed. HqChurchCode must be present
// exactly when the church is a branch (IsHq == false).
func (in *Input) Validate() error {
	if strings.TrimSpace(in.ChurchName) == "" {
		return errors.New("church name is required")
	}
	if strings.TrimSpace(in.AdminName) == "" {
		return errors.New("admin name is required")
	}
	if !admins.ValidRole(in.AdminRole) {
		return fmt.Errorf("invalid admin role %q", in.AdminRole)
	}
	if !emailPattern.MatchString(in.AdminEmail) {
		return errors.New("invalid admin email")
	}
	if in.AdminPassword == "" {
		return errors.New("admin password is required")
	}
	if !plans.Valid(in.MemberCount) {
		return fmt.Errorf("invalid member count tier %q", in.MemberCount)
	}
	if in.IsHq && in.HqChurchCode != "" {
		return errors.New("hq churches must not carry a parent church code")
	}
	if !in.IsHq {
		if in.HqChurchCode == "" {
			return errors.New("branch churches require a parent church code")
		}
		if !churches.ValidCode(in.HqChurchCode) {
			return fmt.Errorf("malformed parent church code %q", in.HqChurchCode)
		}
	}
	return nil
}

// Pending is the single registration parked locally between checkout start
// and completion. Never mutated in place; consumed on success.
type Pending struct {
	RegistrationData Input      `json:"registrationData"`
	SelectedTier     plans.Tier `json:"selectedTier"`
	CreatedAt        int64      `json:"createdAtEpochMillis"`
}
