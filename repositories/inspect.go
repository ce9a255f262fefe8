package repositories

import (
	"campaign-lab/domain"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mama165/sdk-go/database"
)

// InspectMapper renders campaign rows for the badger web inspector.
func InspectMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	kind, _, _ := strings.Cut(key, ":")
	row.Type = strings.ToUpper(kind)

	detail, err := describe(kind, val)
	if err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}
	if detail != "" {
		row.Detail = detail
	}
	return row
}

func describe(kind string, val []byte) (string, error) {
	switch kind {
	case "progress":
		var p domain.Progress
		if err := json.Unmarshal(val, &p); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s v%d %s %.0f%%", p.CurrentStepID, p.Version, p.Status, p.CompletionRate*100), nil
	case "character":
		var c domain.Character
		if err := json.Unmarshal(val, &c); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %v", c.Name, c.Stats), nil
	case "choice":
		var c domain.ChoiceRow
		if err := json.Unmarshal(val, &c); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s -> %s: %s", c.StepID, c.OptionID, c.Result), nil
	case "session":
		var r domain.SessionRecord
		if err := json.Unmarshal(val, &r); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s players=%d actions=%d", r.Reason, r.Players, r.Actions), nil
	}
	return "", nil
}
