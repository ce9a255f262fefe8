package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsAvailable_StatOperators(t *testing.T) {
	tests := []struct {
		name     string
		operator string
		value    string
		stat     string
		expected bool
	}{
		{"greater fails at boundary", ">", "50", "50", false},
		{"greater passes above boundary", ">", "50", "51", true},
		{"greater or equal at boundary", ">=", "50", "50", true},
		{"lower fails at boundary", "<", "50", "50", false},
		{"lower passes below boundary", "<", "50", "49", true},
		{"lower or equal at boundary", "<=", "50", "50", true},
		{"single equal", "=", "7", "7", true},
		{"double equal mismatch", "==", "7", "8", false},
		{"unknown operator passes", "~", "100", "1", true},
		{"non numeric value is skipped", ">", "lots", "1", true},
		{"missing stat reads as zero", ">", "0", "", false},
		{"decimal stat is truncated", ">=", "12", "12.9", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			option := Option{ID: "O1", Requirement: StatRequirement{Stat: "INT", Operator: tt.operator, Value: tt.value}}
			player := PlayerState{Stats: map[string]string{}}
			if tt.stat != "" {
				player.Stats["INT"] = tt.stat
			}

			req.Equal(tt.expected, IsAvailable(option, player, nil))
		})
	}
}

func TestIsAvailable_NoOperatorIsSkipped(t *testing.T) {
	req := require.New(t)

	// Given a requirement without operator
	option := Option{ID: "O1", Requirement: StatRequirement{Stat: "INT", Value: "99"}}

	// Then it is ignored
	req.True(IsAvailable(option, PlayerState{}, nil))
}

func TestIsAvailable_UsageCap(t *testing.T) {
	req := require.New(t)
	option := Option{ID: "O1", MaxUsesPerPlayer: 2}
	player := PlayerState{}

	// When the option was chosen fewer times than the cap
	player.Choices = []Choice{{OptionID: "O1"}, {OptionID: "O2"}}
	req.True(IsAvailable(option, player, nil))

	// When it reaches the cap
	player.Choices = append(player.Choices, Choice{OptionID: "O1"})

	// Then the next check fails
	req.False(IsAvailable(option, player, nil))
}

func TestIsAvailable_ItemRequirement(t *testing.T) {
	req := require.New(t)
	option := Option{ID: "O1", RequiredItemID: "key"}

	req.False(IsAvailable(option, PlayerState{}, nil))
	req.False(IsAvailable(option, PlayerState{}, NewInventory("rope")))
	req.True(IsAvailable(option, PlayerState{}, NewInventory("rope", "key")))
}

func TestIsAvailable_AllChecksMustPass(t *testing.T) {
	req := require.New(t)
	option := Option{
		ID:             "O1",
		Requirement:    StatRequirement{Stat: "STR", Operator: ">=", Value: "10"},
		RequiredItemID: "sword",
	}
	strong := PlayerState{Stats: map[string]string{"STR": "10"}}
	weak := PlayerState{Stats: map[string]string{"STR": "9"}}

	req.True(IsAvailable(option, strong, NewInventory("sword")))
	req.False(IsAvailable(option, strong, nil))
	req.False(IsAvailable(option, weak, NewInventory("sword")))
}

func TestIsAvailable_IsIdempotent(t *testing.T) {
	req := require.New(t)
	option := Option{ID: "O1", MaxUsesPerPlayer: 1, Requirement: StatRequirement{Stat: "INT", Operator: ">", Value: "50"}}
	player := PlayerState{Stats: map[string]string{"INT": "51"}}
	inventory := NewInventory()

	// When the same inputs are evaluated repeatedly
	first := IsAvailable(option, player, inventory)

	// Then the answer never changes
	for range 10 {
		req.Equal(first, IsAvailable(option, player, inventory))
	}
	req.Empty(player.Choices)
}

func TestAvailableOptions_NoCurrentStep(t *testing.T) {
	req := require.New(t)
	content, err := NewContentSnapshot(Campaign{ID: "c"},
		[]Step{{ID: "S0", IsStarting: true}},
		[]Option{{ID: "O1", SourceStepID: "S0"}}, nil)
	req.NoError(err)

	// When the player has finished the campaign
	options := AvailableOptions(content, PlayerState{Completed: true}, nil)

	// Then an empty list is returned
	req.NotNil(options)
	req.Empty(options)
}
