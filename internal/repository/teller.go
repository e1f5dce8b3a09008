package repository

import (
	"strings"

	"github.com/pankajredekar/pos/internal/model"
	"github.com/pankajredekar/pos/internal/store"
)

// TellerRepository manages the teller table
type TellerRepository = Repository[model.Teller, model.TellerPatch]

var tellerEntity = Entity[model.Teller, model.TellerPatch]{
	Kind: "teller",
	ID:   func(t model.Teller) int32 { return t.ID },
	WithID: func(t model.Teller, id int32) model.Teller {
		t.ID = id
		return t
	},
	Fields: func(t model.Teller) []string {
		return []string{t.FirstName, t.MiddleName, t.LastName}
	},
	Apply: func(t model.Teller, patch model.TellerPatch) (model.Teller, error) {
		t.FirstName = keep(t.FirstName, patch.FirstName)
		t.MiddleName = keep(t.MiddleName, patch.MiddleName)
		t.LastName = keep(t.LastName, patch.LastName)
		return t, nil
	},
	Normalize: func(t model.Teller) model.Teller {
		t.FirstName = strings.TrimSpace(t.FirstName)
		t.MiddleName = strings.TrimSpace(t.MiddleName)
		t.LastName = strings.TrimSpace(t.LastName)
		return t
	},
	Validate: validateTeller,
}

// NewTellerRepository creates a teller repository over table
func NewTellerRepository(table *store.Table[model.Teller]) *TellerRepository {
	return New(table, tellerEntity)
}

func validateTeller(t model.Teller) error {
	if strings.TrimSpace(t.FirstName) == "" && strings.TrimSpace(t.LastName) == "" {
		return model.Invalid(model.RuleRequired, "teller needs a first or last name")
	}
	return checkLength("teller", map[string]string{
		"first name":  t.FirstName,
		"middle name": t.MiddleName,
		"last name":   t.LastName,
	})
}
