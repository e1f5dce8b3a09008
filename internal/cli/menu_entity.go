package cli

import (
	"io"

	"github.com/pankajredekar/pos/internal/console"
	"github.com/pankajredekar/pos/internal/model"
	"github.com/pankajredekar/pos/internal/repository"
	"github.com/pankajredekar/pos/internal/utils"
)

// entityMenu drives the add/display/search/update/delete screens for one
// record type.
type entityMenu[T any, P any] struct {
	title        string
	kind         string
	repo         *repository.Repository[T, P]
	print        func(io.Writer, []T)
	collect      func(*console.Prompter) (T, error)
	collectPatch func(*console.Prompter) (P, error)
}

// mutation steps
type step int

const (
	stepSelect step = iota
	stepConfirm
	stepPersist
	stepReport
)

func (m *entityMenu[T, P]) run(p *console.Prompter) error {
	for {
		p.Printf("\n=== %s ===\n", m.title)
		p.Printf("[1] Add\n[2] Display all\n[3] Search\n[4] Update\n[5] Delete\n[0] Back\n")
		k, err := p.Key("Choice: ")
		if err != nil {
			return err
		}

		var flowErr error
		switch k {
		case '1':
			flowErr = m.add(p)
		case '2':
			flowErr = m.list(p)
		case '3':
			flowErr = m.search(p)
		case '4':
			flowErr = m.mutate(p, "Update", m.persistUpdate)
		case '5':
			flowErr = m.mutate(p, "Delete", m.persistDelete)
		case '0', 'q', 'Q':
			return nil
		default:
			utils.PrintWarning("Unknown choice %q", k)
			continue
		}
		if err := report(flowErr); err != nil {
			return err
		}
	}
}

func (m *entityMenu[T, P]) add(p *console.Prompter) error {
	for {
		candidate, err := m.collect(p)
		if err != nil {
			return err
		}
		stored, err := m.repo.Add(candidate)
		if model.RuleOf(err) != "" {
			utils.PrintError("%s", describe(err))
			continue
		}
		if err != nil {
			return err
		}
		utils.PrintSuccess("Added %s %d", m.kind, m.repo.ID(stored))
		return nil
	}
}

func (m *entityMenu[T, P]) list(p *console.Prompter) error {
	records, err := m.repo.List()
	if err != nil {
		return err
	}
	m.print(p.Out(), records)
	return nil
}

func (m *entityMenu[T, P]) search(p *console.Prompter) error {
	k, err := p.Key("Search by [1] ID [2] Name: ")
	if err != nil {
		return err
	}
	if k == '1' {
		id, err := askInt(p, "ID: ", model.RuleIDNumeric)
		if err != nil {
			return err
		}
		rec, err := m.repo.FindByID(id)
		if err != nil {
			return err
		}
		m.print(p.Out(), []T{rec})
		return nil
	}
	text, err := p.Line("Name contains: ")
	if err != nil {
		return err
	}
	records, err := m.repo.Search(text)
	if err != nil {
		return err
	}
	utils.PrintInfo("Found %d %s(s)", len(records), m.kind)
	m.print(p.Out(), records)
	return nil
}

// selectTarget picks one record by id or by name. When a name search
// matches several records the user chooses an id from the matches, and the
// matches are returned so the mutation can be restricted to them.
func (m *entityMenu[T, P]) selectTarget(p *console.Prompter) (T, []T, error) {
	var zero T
	k, err := p.Key("Select by [1] ID [2] Name: ")
	if err != nil {
		return zero, nil, err
	}
	if k == '1' {
		id, err := askInt(p, "ID: ", model.RuleIDNumeric)
		if err != nil {
			return zero, nil, err
		}
		rec, err := m.repo.FindByID(id)
		return rec, nil, err
	}

	text, err := p.Line("Name contains: ")
	if err != nil {
		return zero, nil, err
	}
	matches, err := m.repo.Search(text)
	if err != nil {
		return zero, nil, err
	}
	switch len(matches) {
	case 0:
		return zero, nil, model.ErrNotFound
	case 1:
		return matches[0], matches, nil
	}

	m.print(p.Out(), matches)
	for {
		id, err := askInt(p, "Several matches, enter the ID: ", model.RuleIDNumeric)
		if err != nil {
			return zero, nil, err
		}
		rec, err := m.repo.Pick(matches, id)
		if err == nil {
			return rec, matches, nil
		}
		utils.PrintWarning("ID %d is not one of the matches", id)
	}
}

// mutate runs SelectTarget, ConfirmAction, Persist and Report for one record
func (m *entityMenu[T, P]) mutate(p *console.Prompter, action string, persist func(*console.Prompter, T, []T) (T, error)) error {
	var (
		rec     T
		matches []T
		st      = stepSelect
	)
	for {
		switch st {
		case stepSelect:
			r, ms, err := m.selectTarget(p)
			if err != nil {
				return err
			}
			rec, matches, st = r, ms, stepConfirm
		case stepConfirm:
			m.print(p.Out(), []T{rec})
			ok, err := p.Confirm(action + " this " + m.kind + "?")
			if err != nil {
				return err
			}
			if !ok {
				return errAborted
			}
			st = stepPersist
		case stepPersist:
			r, err := persist(p, rec, matches)
			if err != nil {
				return err
			}
			rec, st = r, stepReport
		case stepReport:
			utils.PrintSuccess("%s %s %d done", action, m.kind, m.repo.ID(rec))
			return nil
		}
	}
}

func (m *entityMenu[T, P]) persistUpdate(p *console.Prompter, rec T, matches []T) (T, error) {
	p.Printf("Leave a field blank to keep its current value.\n")
	for {
		patch, err := m.collectPatch(p)
		if err != nil {
			return rec, err
		}
		var updated T
		if matches != nil {
			updated, err = m.repo.UpdateAmong(matches, m.repo.ID(rec), patch)
		} else {
			updated, err = m.repo.Update(m.repo.ID(rec), patch)
		}
		if model.RuleOf(err) != "" {
			utils.PrintError("%s", describe(err))
			continue
		}
		if err != nil {
			return rec, err
		}
		m.print(p.Out(), []T{updated})
		return updated, nil
	}
}

func (m *entityMenu[T, P]) persistDelete(p *console.Prompter, rec T, matches []T) (T, error) {
	if matches != nil {
		return rec, m.repo.DeleteAmong(matches, m.repo.ID(rec))
	}
	return rec, m.repo.Delete(m.repo.ID(rec))
}

// askInt re-prompts until a whole number is entered
func askInt(p *console.Prompter, prompt, rule string) (int32, error) {
	for {
		v, err := p.Int(prompt, rule)
		if model.RuleOf(err) != "" {
			utils.PrintError("%s", describe(err))
			continue
		}
		return v, err
	}
}

func productMenu(a *app) *entityMenu[model.Product, model.ProductPatch] {
	return &entityMenu[model.Product, model.ProductPatch]{
		title: "PRODUCTS",
		kind:  "product",
		repo:  a.products,
		print: console.PrintProducts,
		collect: func(p *console.Prompter) (model.Product, error) {
			var prod model.Product
			fields := []struct {
				prompt string
				dst    *string
			}{
				{"Name: ", &prod.Name},
				{"Description: ", &prod.Description},
				{"Category: ", &prod.Category},
				{"Unit (piece/kilo): ", &prod.Unit},
			}
			for _, f := range fields {
				v, err := p.Line(f.prompt)
				if err != nil {
					return prod, err
				}
				*f.dst = v
			}
			for {
				text, err := p.Line("Unit price: ")
				if err != nil {
					return prod, err
				}
				price, err := console.ParsePrice(text)
				if err == nil && price == nil {
					err = model.Invalid(model.RulePriceNumeric, "unit price is required")
				}
				if err != nil {
					utils.PrintError("%s", describe(err))
					continue
				}
				prod.UnitPrice = *price
				return prod, nil
			}
		},
		collectPatch: func(p *console.Prompter) (model.ProductPatch, error) {
			var patch model.ProductPatch
			fields := []struct {
				prompt string
				dst    *string
			}{
				{"New name: ", &patch.Name},
				{"New description: ", &patch.Description},
				{"New category: ", &patch.Category},
				{"New unit: ", &patch.Unit},
			}
			for _, f := range fields {
				v, err := p.Line(f.prompt)
				if err != nil {
					return patch, err
				}
				*f.dst = v
			}
			for {
				text, err := p.Line("New unit price: ")
				if err != nil {
					return patch, err
				}
				price, err := console.ParsePrice(text)
				if err != nil {
					utils.PrintError("%s", describe(err))
					continue
				}
				patch.UnitPrice = price
				return patch, nil
			}
		},
	}
}

func tellerMenu(a *app) *entityMenu[model.Teller, model.TellerPatch] {
	names := func(p *console.Prompter, prefix string, first, middle, last *string) error {
		for _, f := range []struct {
			prompt string
			dst    *string
		}{
			{prefix + "first name: ", first},
			{prefix + "middle name: ", middle},
			{prefix + "last name: ", last},
		} {
			v, err := p.Line(f.prompt)
			if err != nil {
				return err
			}
			*f.dst = v
		}
		return nil
	}
	return &entityMenu[model.Teller, model.TellerPatch]{
		title: "TELLERS",
		kind:  "teller",
		repo:  a.tellers,
		print: console.PrintTellers,
		collect: func(p *console.Prompter) (model.Teller, error) {
			var t model.Teller
			err := names(p, "Teller ", &t.FirstName, &t.MiddleName, &t.LastName)
			return t, err
		},
		collectPatch: func(p *console.Prompter) (model.TellerPatch, error) {
			var patch model.TellerPatch
			err := names(p, "New ", &patch.FirstName, &patch.MiddleName, &patch.LastName)
			return patch, err
		},
	}
}
