// Package pets renders the pet catalog: unlock progress, point
// purchases, and renaming.
package pets

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/akshad/studyquest/internal/rewards"
	"github.com/akshad/studyquest/internal/router"
	"github.com/akshad/studyquest/internal/services"
	"github.com/akshad/studyquest/internal/ui/components"
	"github.com/akshad/studyquest/internal/ui/layout"
	"github.com/akshad/studyquest/internal/ui/theme"
)

// PetsScreen lists the catalog with the active bank's unlock state.
type PetsScreen struct {
	svc    *services.Bundle
	errMsg string

	pets     []rewards.Pet
	cursor   int
	renaming bool
	input    components.TextInput
	status   string

	points            int
	streak            int
	sessions          int
	highestQuizStreak int
	unlocked          map[string]bool
	names             map[string]string
}

var _ router.Screen = (*PetsScreen)(nil)
var _ router.KeyHintProvider = (*PetsScreen)(nil)

// New creates the pets screen over the active bank.
func New(svc *services.Bundle) *PetsScreen {
	s := &PetsScreen{svc: svc, pets: svc.Reconciler.Pets()}
	s.reload()
	return s
}

func (s *PetsScreen) reload() {
	p, err := s.svc.LoadProfile(context.Background())
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	b, err := p.Active()
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.errMsg = ""
	s.points = b.Points
	s.streak = b.Streak
	s.sessions = b.CompletedSessions
	s.highestQuizStreak = b.HighestQuizStreak
	s.unlocked = b.UnlockedPets
	s.names = b.PetNames
}

func (s *PetsScreen) Init() tea.Cmd {
	return nil
}

func (s *PetsScreen) Title() string {
	return "Pets"
}

func (s *PetsScreen) KeyHints() []layout.KeyHint {
	if s.renaming {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save name"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{{Key: "↑/↓", Description: "Navigate"}}
	if len(s.pets) > 0 {
		pet := s.pets[s.cursor]
		if s.unlocked[pet.ID] {
			hints = append(hints, layout.KeyHint{Key: "N", Description: "Name pet"})
		} else if pet.Predicate == rewards.PredicatePurchase {
			hints = append(hints, layout.KeyHint{Key: "B", Description: "Buy"})
		}
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *PetsScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if s.renaming {
		return s.updateRename(msg)
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopMsg{} }
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.pets)-1 {
			s.cursor++
		}
	case "b":
		s.purchase()
	case "n":
		if len(s.pets) > 0 && s.unlocked[s.pets[s.cursor].ID] {
			s.renaming = true
			s.input = components.NewTextInput("Pet name", 20)
			return s, s.input.Init()
		}
	}
	return s, nil
}

func (s *PetsScreen) updateRename(msg tea.Msg) (router.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			s.renaming = false
			return s, nil
		case "enter":
			s.renaming = false
			s.rename(s.input.Value())
			return s, nil
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *PetsScreen) purchase() {
	if len(s.pets) == 0 {
		return
	}
	pet := s.pets[s.cursor]
	if s.unlocked[pet.ID] || pet.Predicate != rewards.PredicatePurchase {
		return
	}

	ctx := context.Background()
	p, err := s.svc.LoadProfile(ctx)
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	notice, err := s.svc.Reconciler.Purchase(p, p.ActiveBank, pet.ID)
	if err != nil {
		s.status = err.Error()
		return
	}
	if err := s.svc.SaveProfile(ctx, p); err != nil {
		s.errMsg = err.Error()
		return
	}
	s.status = notice.Message
	s.reload()
}

func (s *PetsScreen) rename(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	pet := s.pets[s.cursor]

	ctx := context.Background()
	p, err := s.svc.LoadProfile(ctx)
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	if err := s.svc.Reconciler.RenamePet(p, p.ActiveBank, pet.ID, name); err != nil {
		s.status = err.Error()
		return
	}
	if err := s.svc.SaveProfile(ctx, p); err != nil {
		s.errMsg = err.Error()
		return
	}
	s.status = fmt.Sprintf("%s is now called %s", pet.Name, name)
	s.reload()
}

func (s *PetsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return theme.ErrorText.Render("  " + s.errMsg)
	}

	var sections []string
	sections = append(sections, theme.Body.Render(fmt.Sprintf("  Points to spend: %d", s.points)))

	barWidth := width - 40
	if barWidth > 30 {
		barWidth = 30
	}
	if barWidth < 10 {
		barWidth = 10
	}

	var rows []string
	for i, pet := range s.pets {
		rows = append(rows, s.renderPet(pet, i == s.cursor, barWidth))
	}
	sections = append(sections, strings.Join(rows, "\n"))

	if s.renaming {
		sections = append(sections, theme.Card.Render(
			theme.Body.Render("New name for "+s.displayName(s.pets[s.cursor]))+"\n"+s.input.View()))
	} else if s.status != "" {
		sections = append(sections, theme.Subtitle.Render("  "+s.status))
	}

	return strings.Join(sections, "\n\n")
}

func (s *PetsScreen) renderPet(pet rewards.Pet, selected bool, barWidth int) string {
	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	name := s.displayName(pet)
	var line string
	if s.unlocked[pet.ID] {
		line = fmt.Sprintf("%s%s  ·  unlocked", cursor, name)
	} else if pet.Predicate == rewards.PredicatePurchase {
		line = fmt.Sprintf("%s%s  ·  %d pts  ·  %s", cursor, name, pet.Cost, pet.Description)
	} else {
		counter := pet.CounterFor(s.streak, s.sessions, s.highestQuizStreak)
		pct := 0.0
		if pet.Threshold > 0 {
			pct = float64(counter) / float64(pet.Threshold)
		}
		if pct > 1 {
			pct = 1
		}
		bar := components.NewProgressBar("", pct, false, barWidth).View()
		line = fmt.Sprintf("%s%s  %s %d/%d  ·  %s",
			cursor, name, bar, counter, pet.Threshold, pet.Description)
	}

	switch {
	case selected:
		return theme.Selected.Render(line)
	case s.unlocked[pet.ID]:
		return theme.Body.Render(line)
	default:
		return theme.Unselected.Render(line)
	}
}

func (s *PetsScreen) displayName(pet rewards.Pet) string {
	if custom, ok := s.names[pet.ID]; ok && custom != "" {
		return fmt.Sprintf("%s (%s)", custom, pet.Name)
	}
	return pet.Name
}
