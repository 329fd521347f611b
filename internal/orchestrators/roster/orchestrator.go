// Package roster implements the roster orchestrator: session rosters, character intents
// and the one-shot save
package roster

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/character-sheet/internal/clients/gateway"
	"github.com/KirkDiggler/character-sheet/internal/engine"
	"github.com/KirkDiggler/character-sheet/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/character-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/character-sheet/internal/errors"
	"github.com/KirkDiggler/character-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/character-sheet/internal/pkg/idgen"
	rosterrepo "github.com/KirkDiggler/character-sheet/internal/repositories/roster"
)

// SaveSucceededMessage is shown to the user after a successful save
const SaveSucceededMessage = "Characters saved successfully!"

// Config holds the dependencies for the roster orchestrator
type Config struct {
	Repository   rosterrepo.Repository
	Engine       engine.Engine
	Checker      SkillChecker
	Gateway      gateway.Client
	EventBus     events.EventBus
	RosterIDs    idgen.Generator
	CharacterIDs idgen.Generator
	Clock        clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Checker == nil {
		vb.RequiredField("Checker")
	}
	if c.Gateway == nil {
		vb.RequiredField("Gateway")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.RosterIDs == nil {
		vb.RequiredField("RosterIDs")
	}
	if c.CharacterIDs == nil {
		vb.RequiredField("CharacterIDs")
	}

	return vb.Build()
}

// Orchestrator implements the Service interface
type Orchestrator struct {
	repo         rosterrepo.Repository
	engine       engine.Engine
	checker      SkillChecker
	gateway      gateway.Client
	eventBus     events.EventBus
	rosterIDs    idgen.Generator
	characterIDs idgen.Generator
	clock        clock.Clock

	// one mutex per roster serializes load, apply and store
	locks *keyedLocks
}

// New creates a new roster orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &Orchestrator{
		repo:         cfg.Repository,
		engine:       cfg.Engine,
		checker:      cfg.Checker,
		gateway:      cfg.Gateway,
		eventBus:     cfg.EventBus,
		rosterIDs:    cfg.RosterIDs,
		characterIDs: cfg.CharacterIDs,
		clock:        c,
		locks:        newKeyedLocks(),
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ Service = (*Orchestrator)(nil)

func (o *Orchestrator) lock(rosterID string) func() {
	return o.locks.lock(rosterID)
}

func (o *Orchestrator) newCharacter() sheet.Character {
	c := o.engine.NewCharacter()
	c.ID = o.characterIDs.Generate()
	return c
}

func (o *Orchestrator) load(ctx context.Context, rosterID string) (*sheet.Roster, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("rosterID", rosterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.repo.Get(ctx, rosterrepo.GetInput{ID: rosterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get roster %s", rosterID)
	}
	return out.Roster, nil
}

// Roster lifecycle

// CreateRoster starts a new roster session
func (o *Orchestrator) CreateRoster(ctx context.Context, input *CreateRosterInput) (*CreateRosterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	now := o.clock.Now().Unix()
	roster := &sheet.Roster{
		ID:         o.rosterIDs.Generate(),
		Characters: []sheet.Character{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if !input.Empty {
		roster.Characters = append(roster.Characters, o.newCharacter())
	}

	out, err := o.repo.Create(ctx, rosterrepo.CreateInput{Roster: roster})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create roster")
	}

	slog.InfoContext(ctx, "roster created",
		"roster_id", roster.ID,
		"characters", roster.Len())

	for i := range out.Roster.Characters {
		o.publish(ctx, EventCharacterAdded, rpgtoolkit.WrapCharacter(&out.Roster.Characters[i]))
	}

	return &CreateRosterOutput{Roster: out.Roster}, nil
}

// GetRoster returns the current state of a roster
func (o *Orchestrator) GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	roster, err := o.load(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}
	return &GetRosterOutput{Roster: roster}, nil
}

// DeleteRoster ends a roster session
func (o *Orchestrator) DeleteRoster(ctx context.Context, input *DeleteRosterInput) (*DeleteRosterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("rosterID", input.RosterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	unlock := o.lock(input.RosterID)
	defer unlock()

	if _, err := o.repo.Delete(ctx, rosterrepo.DeleteInput{ID: input.RosterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete roster")
	}

	slog.InfoContext(ctx, "roster deleted", "roster_id", input.RosterID)
	return &DeleteRosterOutput{}, nil
}

// AddCharacter appends a default character to the roster
func (o *Orchestrator) AddCharacter(ctx context.Context, input *AddCharacterInput) (*AddCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	unlock := o.lock(input.RosterID)
	defer unlock()

	roster, err := o.load(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}

	roster.Characters = append(roster.Characters, o.newCharacter())
	roster.UpdatedAt = o.clock.Now().Unix()
	index := roster.Len() - 1

	out, err := o.repo.Update(ctx, rosterrepo.UpdateInput{Roster: roster})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update roster")
	}

	o.publish(ctx, EventCharacterAdded, rpgtoolkit.WrapCharacter(&out.Roster.Characters[index]))

	return &AddCharacterOutput{Roster: out.Roster, Index: index}, nil
}

// Character intents

type mutation func(c sheet.Character) (sheet.Character, error)

// apply runs one engine operation against the indexed character and stores the result.
// A rejected intent stores nothing.
func (o *Orchestrator) apply(
	ctx context.Context,
	intent, rosterID string,
	index int,
	name string,
	fn mutation,
) (*UpdateCharacterOutput, error) {
	unlock := o.lock(rosterID)
	defer unlock()

	roster, err := o.load(ctx, rosterID)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= roster.Len() {
		return nil, errors.InvalidArgumentf("character index %d out of range, roster has %d characters",
			index, roster.Len())
	}

	current := roster.Characters[index]
	updated, err := fn(current)
	if err != nil {
		if errors.IsRejection(err) {
			slog.InfoContext(ctx, "character intent rejected",
				"roster_id", rosterID,
				"index", index,
				"intent", intent,
				"name", name,
				"reason", errors.GetReason(err).String())
			o.publish(ctx, EventIntentRejected, rpgtoolkit.WrapCharacter(&current))
		}
		return nil, err
	}

	roster.Characters[index] = updated
	roster.UpdatedAt = o.clock.Now().Unix()

	out, err := o.repo.Update(ctx, rosterrepo.UpdateInput{Roster: roster})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update roster")
	}

	o.publish(ctx, EventCharacterUpdated, rpgtoolkit.WrapCharacter(&updated))

	return &UpdateCharacterOutput{
		Roster:    out.Roster,
		Index:     index,
		Character: updated,
	}, nil
}

// IncrementAttribute raises an attribute by one if the pool allows it
func (o *Orchestrator) IncrementAttribute(
	ctx context.Context,
	input *IncrementAttributeInput,
) (*UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.apply(ctx, "increment_attribute", input.RosterID, input.Index, input.Attribute,
		func(c sheet.Character) (sheet.Character, error) {
			return o.engine.IncrementAttribute(c, input.Attribute)
		})
}

// DecrementAttribute lowers an attribute by one, stopping at zero
func (o *Orchestrator) DecrementAttribute(
	ctx context.Context,
	input *DecrementAttributeInput,
) (*UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.apply(ctx, "decrement_attribute", input.RosterID, input.Index, input.Attribute,
		func(c sheet.Character) (sheet.Character, error) {
			return o.engine.DecrementAttribute(c, input.Attribute)
		})
}

// IncrementSkill invests one skill point
func (o *Orchestrator) IncrementSkill(ctx context.Context, input *IncrementSkillInput) (*UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.apply(ctx, "increment_skill", input.RosterID, input.Index, input.Skill,
		func(c sheet.Character) (sheet.Character, error) {
			return o.engine.IncrementSkill(c, input.Skill)
		})
}

// DecrementSkill removes one invested skill point
func (o *Orchestrator) DecrementSkill(ctx context.Context, input *DecrementSkillInput) (*UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.apply(ctx, "decrement_skill", input.RosterID, input.Index, input.Skill,
		func(c sheet.Character) (sheet.Character, error) {
			return o.engine.DecrementSkill(c, input.Skill)
		})
}

// SelectClass picks a class the character currently qualifies for
func (o *Orchestrator) SelectClass(ctx context.Context, input *SelectClassInput) (*UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.apply(ctx, "select_class", input.RosterID, input.Index, input.Class,
		func(c sheet.Character) (sheet.Character, error) {
			return o.engine.SelectClass(c, input.Class)
		})
}

// Read-only actions

// CheckSkill rolls a d20 skill check for the indexed character
func (o *Orchestrator) CheckSkill(ctx context.Context, input *CheckSkillInput) (*CheckSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	roster, err := o.load(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}

	if input.Index < 0 || input.Index >= roster.Len() {
		return nil, errors.InvalidArgumentf("character index %d out of range, roster has %d characters",
			input.Index, roster.Len())
	}

	result, err := o.checker.CheckSkill(roster.Characters[input.Index], input.Skill)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "skill check rolled",
		"roster_id", input.RosterID,
		"index", input.Index,
		"skill", result.Skill,
		"roll", result.Roll,
		"total", result.Total)

	return &CheckSkillOutput{Result: result}, nil
}

// Persistence

// SaveRoster posts the whole roster once. The roster lock is released before the request
// goes out, so intents keep working while a save is in flight. A failed save leaves the
// roster untouched and may be retried by the user.
func (o *Orchestrator) SaveRoster(ctx context.Context, input *SaveRosterInput) (*SaveRosterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	unlock := o.lock(input.RosterID)
	roster, err := o.load(ctx, input.RosterID)
	if err != nil {
		unlock()
		return nil, err
	}
	snapshot := roster.Clone()
	unlock()

	out, err := o.gateway.Save(ctx, &gateway.SaveInput{Characters: snapshot.Characters})
	if err != nil {
		slog.ErrorContext(ctx, "roster save failed",
			"roster_id", snapshot.ID,
			"characters", snapshot.Len(),
			"error", err.Error())
		o.publish(ctx, EventRosterSaveFailed, rpgtoolkit.WrapRoster(&snapshot))

		if errors.IsRejection(err) {
			return nil, err
		}
		return nil, errors.PersistenceFailure(err)
	}

	slog.InfoContext(ctx, "roster saved",
		"roster_id", snapshot.ID,
		"characters", snapshot.Len(),
		"status_code", out.StatusCode)
	o.publish(ctx, EventRosterSaved, rpgtoolkit.WrapRoster(&snapshot))

	return &SaveRosterOutput{
		Saved:      snapshot.Len(),
		StatusCode: out.StatusCode,
		Message:    SaveSucceededMessage,
	}, nil
}
