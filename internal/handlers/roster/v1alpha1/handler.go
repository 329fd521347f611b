// Package v1alpha1 handles the grpc service interface
package v1alpha1

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/character-sheet/internal/engine"
	"github.com/KirkDiggler/character-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/character-sheet/internal/errors"
	"github.com/KirkDiggler/character-sheet/internal/orchestrators/roster"
	"github.com/KirkDiggler/character-sheet/internal/render"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	RosterService roster.Service
	Engine        engine.Engine
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.RosterService == nil {
		vb.RequiredField("RosterService")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	return vb.Build()
}

// Handler implements the roster gRPC service
type Handler struct {
	UnimplementedRosterServiceServer
	rosterService roster.Service
	engine        engine.Engine
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		rosterService: cfg.RosterService,
		engine:        cfg.Engine,
	}, nil
}

// CreateRoster starts a roster session
func (h *Handler) CreateRoster(ctx context.Context, req *CreateRosterRequest) (*RosterResponse, error) {
	output, err := h.rosterService.CreateRoster(ctx, &roster.CreateRosterInput{
		Empty: req.Empty,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "CreateRoster", err)
	}

	return h.rosterResponse(output.Roster), nil
}

// GetRoster returns every character card of a roster
func (h *Handler) GetRoster(ctx context.Context, req *GetRosterRequest) (*RosterResponse, error) {
	if req.RosterID == "" {
		return nil, status.Error(codes.InvalidArgument, "roster_id is required")
	}

	output, err := h.rosterService.GetRoster(ctx, &roster.GetRosterInput{
		RosterID: req.RosterID,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "GetRoster", err)
	}

	return h.rosterResponse(output.Roster), nil
}

// DeleteRoster ends a roster session
func (h *Handler) DeleteRoster(ctx context.Context, req *DeleteRosterRequest) (*DeleteRosterResponse, error) {
	if req.RosterID == "" {
		return nil, status.Error(codes.InvalidArgument, "roster_id is required")
	}

	if _, err := h.rosterService.DeleteRoster(ctx, &roster.DeleteRosterInput{
		RosterID: req.RosterID,
	}); err != nil {
		return nil, h.toStatus(ctx, "DeleteRoster", err)
	}

	return &DeleteRosterResponse{}, nil
}

// AddCharacter appends a default character to the roster
func (h *Handler) AddCharacter(ctx context.Context, req *AddCharacterRequest) (*CharacterResponse, error) {
	if req.RosterID == "" {
		return nil, status.Error(codes.InvalidArgument, "roster_id is required")
	}

	output, err := h.rosterService.AddCharacter(ctx, &roster.AddCharacterInput{
		RosterID: req.RosterID,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "AddCharacter", err)
	}

	return &CharacterResponse{
		RosterID: output.Roster.ID,
		Card:     render.Card(h.engine, output.Index, output.Roster.Characters[output.Index]),
	}, nil
}

// IncrementAttribute raises one attribute of a character
func (h *Handler) IncrementAttribute(ctx context.Context, req *IntentRequest) (*CharacterResponse, error) {
	if err := validateIntent(req); err != nil {
		return nil, err
	}

	output, err := h.rosterService.IncrementAttribute(ctx, &roster.IncrementAttributeInput{
		RosterID:  req.RosterID,
		Index:     req.Index,
		Attribute: req.Name,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "IncrementAttribute", err)
	}

	return h.characterResponse(output), nil
}

// DecrementAttribute lowers one attribute of a character
func (h *Handler) DecrementAttribute(ctx context.Context, req *IntentRequest) (*CharacterResponse, error) {
	if err := validateIntent(req); err != nil {
		return nil, err
	}

	output, err := h.rosterService.DecrementAttribute(ctx, &roster.DecrementAttributeInput{
		RosterID:  req.RosterID,
		Index:     req.Index,
		Attribute: req.Name,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "DecrementAttribute", err)
	}

	return h.characterResponse(output), nil
}

// IncrementSkill invests one skill point
func (h *Handler) IncrementSkill(ctx context.Context, req *IntentRequest) (*CharacterResponse, error) {
	if err := validateIntent(req); err != nil {
		return nil, err
	}

	output, err := h.rosterService.IncrementSkill(ctx, &roster.IncrementSkillInput{
		RosterID: req.RosterID,
		Index:    req.Index,
		Skill:    req.Name,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "IncrementSkill", err)
	}

	return h.characterResponse(output), nil
}

// DecrementSkill refunds one skill point
func (h *Handler) DecrementSkill(ctx context.Context, req *IntentRequest) (*CharacterResponse, error) {
	if err := validateIntent(req); err != nil {
		return nil, err
	}

	output, err := h.rosterService.DecrementSkill(ctx, &roster.DecrementSkillInput{
		RosterID: req.RosterID,
		Index:    req.Index,
		Skill:    req.Name,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "DecrementSkill", err)
	}

	return h.characterResponse(output), nil
}

// SelectClass chooses the character's class
func (h *Handler) SelectClass(ctx context.Context, req *IntentRequest) (*CharacterResponse, error) {
	if err := validateIntent(req); err != nil {
		return nil, err
	}

	output, err := h.rosterService.SelectClass(ctx, &roster.SelectClassInput{
		RosterID: req.RosterID,
		Index:    req.Index,
		Class:    req.Name,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "SelectClass", err)
	}

	return h.characterResponse(output), nil
}

// CheckSkill rolls a skill check for a character
func (h *Handler) CheckSkill(ctx context.Context, req *CheckSkillRequest) (*CheckSkillResponse, error) {
	if req.RosterID == "" {
		return nil, status.Error(codes.InvalidArgument, "roster_id is required")
	}
	if req.Skill == "" {
		return nil, status.Error(codes.InvalidArgument, "skill is required")
	}

	output, err := h.rosterService.CheckSkill(ctx, &roster.CheckSkillInput{
		RosterID: req.RosterID,
		Index:    req.Index,
		Skill:    req.Skill,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "CheckSkill", err)
	}

	return &CheckSkillResponse{
		Skill:    output.Result.Skill,
		Roll:     output.Result.Roll,
		Modifier: output.Result.Modifier,
		Total:    output.Result.Total,
	}, nil
}

// SaveRoster posts the roster to the character API
func (h *Handler) SaveRoster(ctx context.Context, req *SaveRosterRequest) (*SaveRosterResponse, error) {
	if req.RosterID == "" {
		return nil, status.Error(codes.InvalidArgument, "roster_id is required")
	}

	output, err := h.rosterService.SaveRoster(ctx, &roster.SaveRosterInput{
		RosterID: req.RosterID,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "SaveRoster", err)
	}

	return &SaveRosterResponse{
		Saved:      output.Saved,
		StatusCode: output.StatusCode,
		Message:    output.Message,
	}, nil
}

func validateIntent(req *IntentRequest) error {
	if req.RosterID == "" {
		return status.Error(codes.InvalidArgument, "roster_id is required")
	}
	if req.Name == "" {
		return status.Error(codes.InvalidArgument, "name is required")
	}
	return nil
}

func (h *Handler) rosterResponse(r *sheet.Roster) *RosterResponse {
	return &RosterResponse{
		RosterID:  r.ID,
		Cards:     render.Cards(h.engine, *r),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (h *Handler) characterResponse(output *roster.UpdateCharacterOutput) *CharacterResponse {
	return &CharacterResponse{
		RosterID: output.Roster.ID,
		Card:     render.Card(h.engine, output.Index, output.Character),
	}
}

// toStatus converts an orchestrator error to a grpc status; rejections are
// expected outcomes and are not logged as failures
func (h *Handler) toStatus(ctx context.Context, method string, err error) error {
	if !errors.IsRejection(err) {
		slog.ErrorContext(ctx, "roster request failed",
			"method", method,
			"error", err.Error())
	}
	return errors.ToGRPCError(err)
}
