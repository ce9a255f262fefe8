// Package domain contains core concepts of the campaign system.
// This file defines the immutable campaign content loaded once per session.
// No runtime, network, or storage logic should be added here.
package domain

import (
	"campaign-lab/errors"
	"fmt"

	"github.com/samber/lo"
)

type Campaign struct {
	ID          string `json:"campaignId" validate:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// Step is one node of the campaign graph.
type Step struct {
	ID          string `json:"stepId" validate:"required"`
	CampaignID  string `json:"campaignId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsStarting  bool   `json:"isStarting"`
}

// StatRequirement gates an option on a stat of the player's current sheet.
// Value is kept as authored and parsed at evaluation time.
type StatRequirement struct {
	Stat     string `json:"stat,omitempty"`
	Operator string `json:"operator,omitempty"`
	Value    string `json:"value,omitempty"`
}

func (r StatRequirement) IsZero() bool {
	return r.Stat == "" || r.Value == ""
}

// Option is an outward choice from SourceStepID.
// An empty TargetStepID ends the campaign for the player choosing it.
type Option struct {
	ID               string          `json:"optionId" validate:"required"`
	SourceStepID     string          `json:"sourceStepId" validate:"required"`
	TargetStepID     string          `json:"targetStepId,omitempty"`
	Text             string          `json:"text"`
	Requirement      StatRequirement `json:"requirement"`
	RequiredItemID   string          `json:"requiredItemId,omitempty"`
	MaxUsesPerPlayer int             `json:"maxUsesPerPlayer,omitempty" validate:"gte=0"`
}

type OutcomeKind string

const (
	ChangeStat OutcomeKind = "CHANGE_STAT"
	GainItem   OutcomeKind = "GAIN_ITEM"
	LoseItem   OutcomeKind = "LOSE_ITEM"
)

// Outcome is a declared effect triggered by choosing TriggerOptionID.
type Outcome struct {
	ID              string      `json:"outcomeId" validate:"required"`
	TriggerOptionID string      `json:"triggerOptionId" validate:"required"`
	Kind            OutcomeKind `json:"kind" validate:"required"`
	Target          string      `json:"target"`
	Value           int         `json:"value"`
	Description     string      `json:"description"`
}

// ContentSnapshot is the read-only dataset of one campaign.
// Lookup tables are built once and never mutated afterward.
type ContentSnapshot struct {
	campaign     Campaign
	steps        map[string]Step
	stepOrder    []string
	options      map[string]Option
	optionOrder  []string
	outcomes     map[string]Outcome
	outcomeOrder []string
}

// NewContentSnapshot indexes the given rows and checks referential integrity:
// every option source/target must be a known step and every outcome trigger
// a known option.
func NewContentSnapshot(campaign Campaign, steps []Step, options []Option, outcomes []Outcome) (ContentSnapshot, error) {
	c := ContentSnapshot{
		campaign: campaign,
		steps:    make(map[string]Step, len(steps)),
		options:  make(map[string]Option, len(options)),
		outcomes: make(map[string]Outcome, len(outcomes)),
	}
	for _, s := range steps {
		if _, ok := c.steps[s.ID]; ok {
			return ContentSnapshot{}, fmt.Errorf("%w: duplicate step %q", errors.ErrInvalidContent, s.ID)
		}
		c.steps[s.ID] = s
		c.stepOrder = append(c.stepOrder, s.ID)
	}
	for _, o := range options {
		if _, ok := c.options[o.ID]; ok {
			return ContentSnapshot{}, fmt.Errorf("%w: duplicate option %q", errors.ErrInvalidContent, o.ID)
		}
		if _, ok := c.steps[o.SourceStepID]; !ok {
			return ContentSnapshot{}, fmt.Errorf("%w: option %q has unknown source step %q",
				errors.ErrInvalidContent, o.ID, o.SourceStepID)
		}
		if o.TargetStepID != "" {
			if _, ok := c.steps[o.TargetStepID]; !ok {
				return ContentSnapshot{}, fmt.Errorf("%w: option %q has unknown target step %q",
					errors.ErrInvalidContent, o.ID, o.TargetStepID)
			}
		}
		c.options[o.ID] = o
		c.optionOrder = append(c.optionOrder, o.ID)
	}
	for _, o := range outcomes {
		if _, ok := c.outcomes[o.ID]; ok {
			return ContentSnapshot{}, fmt.Errorf("%w: duplicate outcome %q", errors.ErrInvalidContent, o.ID)
		}
		if _, ok := c.options[o.TriggerOptionID]; !ok {
			return ContentSnapshot{}, fmt.Errorf("%w: outcome %q has unknown trigger option %q",
				errors.ErrInvalidContent, o.ID, o.TriggerOptionID)
		}
		c.outcomes[o.ID] = o
		c.outcomeOrder = append(c.outcomeOrder, o.ID)
	}
	return c, nil
}

func (c ContentSnapshot) Campaign() Campaign {
	return c.campaign
}

func (c ContentSnapshot) CampaignID() string {
	return c.campaign.ID
}

func (c ContentSnapshot) Step(id string) (Step, bool) {
	s, ok := c.steps[id]
	return s, ok
}

func (c ContentSnapshot) Option(id string) (Option, bool) {
	o, ok := c.options[id]
	return o, ok
}

// OptionsFrom returns the options leaving stepID in authoring order.
func (c ContentSnapshot) OptionsFrom(stepID string) []Option {
	var res []Option
	for _, id := range c.optionOrder {
		if o := c.options[id]; o.SourceStepID == stepID {
			res = append(res, o)
		}
	}
	return res
}

// OutcomesFor returns every outcome triggered by optionID in authoring order.
func (c ContentSnapshot) OutcomesFor(optionID string) []Outcome {
	return lo.FilterMap(c.outcomeOrder, func(id string, _ int) (Outcome, bool) {
		o := c.outcomes[id]
		return o, o.TriggerOptionID == optionID
	})
}

// StartingStep returns the first step flagged as starting.
func (c ContentSnapshot) StartingStep() (Step, error) {
	for _, id := range c.stepOrder {
		if s := c.steps[id]; s.IsStarting {
			return s, nil
		}
	}
	return Step{}, errors.ErrNoStartingStep
}

// Counts reports the number of steps, options and outcomes loaded.
func (c ContentSnapshot) Counts() (steps, options, outcomes int) {
	return len(c.steps), len(c.options), len(c.outcomes)
}

// CampaignContent is the authored form of a campaign, as seeded and stored.
type CampaignContent struct {
	Campaign Campaign  `json:"campaign" validate:"required"`
	Steps    []Step    `json:"steps" validate:"required,min=1,dive"`
	Options  []Option  `json:"options" validate:"dive"`
	Outcomes []Outcome `json:"outcomes" validate:"dive"`
}

// Snapshot builds the lookup tables of c.
func (c CampaignContent) Snapshot() (ContentSnapshot, error) {
	return NewContentSnapshot(c.Campaign, c.Steps, c.Options, c.Outcomes)
}
