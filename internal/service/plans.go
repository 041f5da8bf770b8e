package service

import (
	_ "embed"
	"fmt"
	"os"

	apperrors "psicomapa-backend/internal/errors"

	"gopkg.in/yaml.v3"
)

//go:embed plans.yaml
var plansYAML []byte

// Plan is a subscription tier. Zero limits mean unlimited.
type Plan struct {
	ID                   string   `yaml:"id" json:"id"`
	Name                 string   `yaml:"name" json:"name"`
	Description          string   `yaml:"description" json:"description"`
	PriceCents           int64    `yaml:"price_cents" json:"price_cents"`
	Currency             string   `yaml:"currency" json:"currency"`
	StripePriceID        string   `yaml:"stripe_price_id" json:"-"`
	MaxActiveAssessments int      `yaml:"max_active_assessments" json:"max_active_assessments"`
	MaxRespondents       int      `yaml:"max_respondents" json:"max_respondents"`
	Features             []string `yaml:"features" json:"features"`
}

// AllowsActiveAssessments reports whether another assessment may be active
func (p *Plan) AllowsActiveAssessments(active int64) bool {
	return p.MaxActiveAssessments <= 0 || active < int64(p.MaxActiveAssessments)
}

// AllowsRespondents reports whether another response may be stored
func (p *Plan) AllowsRespondents(current int64) bool {
	return p.MaxRespondents <= 0 || current < int64(p.MaxRespondents)
}

// PlanCatalog is the ordered list of plans
type PlanCatalog struct {
	plans []Plan
}

// LoadPlans parses the embedded catalogue, expanding ${VAR} references from the environment
func LoadPlans() (*PlanCatalog, error) {
	return ParsePlans(plansYAML, os.Getenv)
}

// ParsePlans parses a plan catalogue document
func ParsePlans(raw []byte, getenv func(string) string) (*PlanCatalog, error) {
	var doc struct {
		Plans []Plan `yaml:"plans"`
	}
	if err := yaml.Unmarshal([]byte(os.Expand(string(raw), getenv)), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse plans: %w", err)
	}
	seen := make(map[string]bool)
	for _, p := range doc.Plans {
		if p.ID == "" || seen[p.ID] {
			return nil, fmt.Errorf("invalid or duplicate plan id %q", p.ID)
		}
		seen[p.ID] = true
	}
	return &PlanCatalog{plans: doc.Plans}, nil
}

// All returns the plans in catalogue order
func (c *PlanCatalog) All() []Plan {
	out := make([]Plan, len(c.plans))
	copy(out, c.plans)
	return out
}

// Get returns the plan with id
func (c *PlanCatalog) Get(id string) (*Plan, error) {
	for i := range c.plans {
		if c.plans[i].ID == id {
			p := c.plans[i]
			return &p, nil
		}
	}
	return nil, apperrors.ErrPlanNotFound
}

// ByStripePrice finds the plan sold under a Stripe price id
func (c *PlanCatalog) ByStripePrice(priceID string) (*Plan, bool) {
	if priceID == "" {
		return nil, false
	}
	for i := range c.plans {
		if c.plans[i].StripePriceID == priceID {
			p := c.plans[i]
			return &p, true
		}
	}
	return nil, false
}
