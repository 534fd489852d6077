package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/fincalc/internal/riskprofile"
	"github.com/rgehrsitz/fincalc/internal/tax"
	"gopkg.in/yaml.v3"
)

// Policy is the on-disk policy document. Either section may be omitted, in
// which case the built-in default is used for it.
type Policy struct {
	Tax         *tax.Policy                `yaml:"tax,omitempty" json:"tax,omitempty"`
	RiskProfile *riskprofile.Questionnaire `yaml:"risk_profile,omitempty" json:"riskProfile,omitempty"`
}

// DefaultPolicy returns the built-in tax policy and questionnaire.
func DefaultPolicy() *Policy {
	return &Policy{
		Tax:         tax.DefaultPolicy(),
		RiskProfile: riskprofile.DefaultQuestionnaire(),
	}
}

// PolicyParser loads policy documents.
type PolicyParser struct{}

// NewPolicyParser creates a new policy parser
func NewPolicyParser() *PolicyParser {
	return &PolicyParser{}
}

// LoadFromFile loads a policy from a YAML file. An empty filename yields the
// defaults.
func (pp *PolicyParser) LoadFromFile(filename string) (*Policy, error) {
	if filename == "" {
		return DefaultPolicy(), nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	p, err := pp.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return p, nil
}

// Parse decodes and validates a YAML policy document.
func (pp *PolicyParser) Parse(data []byte) (*Policy, error) {
	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if p.Tax == nil {
		p.Tax = tax.DefaultPolicy()
	}
	if p.RiskProfile == nil {
		p.RiskProfile = riskprofile.DefaultQuestionnaire()
	}

	if err := pp.Validate(&p); err != nil {
		return nil, fmt.Errorf("policy validation failed: %w", err)
	}
	return &p, nil
}

// Validate validates both sections of the policy
func (pp *PolicyParser) Validate(p *Policy) error {
	if err := p.Tax.Validate(); err != nil {
		return fmt.Errorf("tax: %w", err)
	}
	if err := p.RiskProfile.Validate(); err != nil {
		return fmt.Errorf("risk_profile: %w", err)
	}
	return nil
}

// Marshal renders the policy as YAML, the same shape Parse accepts.
func (pp *PolicyParser) Marshal(p *Policy) ([]byte, error) {
	out, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal policy: %w", err)
	}
	return out, nil
}
