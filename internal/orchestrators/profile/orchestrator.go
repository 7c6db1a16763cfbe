// Package profile implements the profile orchestrator: creation with the
// starter kit grant, the profile view with derived values, and the
// two-step deletion flow.
package profile

//go:generate mockgen -destination=mock/mock_service.go -package=profilemock github.com/tavernkeep/guild-api/internal/orchestrators/profile Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/tavernkeep/guild-api/internal/entities"
	"github.com/tavernkeep/guild-api/internal/errors"
	"github.com/tavernkeep/guild-api/internal/repositories/catalog"
	"github.com/tavernkeep/guild-api/internal/repositories/confirmation"
	"github.com/tavernkeep/guild-api/internal/repositories/cooldown"
	"github.com/tavernkeep/guild-api/internal/repositories/ownership"
	profilerepo "github.com/tavernkeep/guild-api/internal/repositories/profile"
	"github.com/tavernkeep/guild-api/internal/rules"
)

const (
	// ActionViewProfile is the cooldown key for the profile view
	ActionViewProfile = "profile"
	// ActionDeleteProfile is the confirmation key for the deletion flow
	ActionDeleteProfile = "delete_profile"

	// ViewCooldownWindow throttles repeated profile views
	ViewCooldownWindow = 3 * time.Second
)

// defaultStarterKit is granted to every newly created profile. The names
// must exist in the seeded catalog.
var defaultStarterKit = []string{
	"Iron Sword",
	"Leather Cap",
	"Worn Boots",
}

// Service defines the interface for profile operations
type Service interface {
	// CreateProfile creates a profile and grants the starter kit
	CreateProfile(ctx context.Context, input *CreateProfileInput) (*CreateProfileOutput, error)

	// GetProfile returns the profile view with power and equipped slots
	GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error)

	// RequestDelete starts the two-step deletion flow
	RequestDelete(ctx context.Context, input *RequestDeleteInput) (*RequestDeleteOutput, error)

	// ConfirmDelete carries out a pending deletion
	ConfirmDelete(ctx context.Context, input *ConfirmDeleteInput) (*ConfirmDeleteOutput, error)

	// CancelDelete abandons a pending deletion
	CancelDelete(ctx context.Context, input *CancelDeleteInput) (*CancelDeleteOutput, error)
}

// Config holds the dependencies for the profile orchestrator
type Config struct {
	ProfileRepo      profilerepo.Repository
	OwnershipRepo    ownership.Repository
	CatalogRepo      catalog.Repository
	CooldownRepo     cooldown.Repository
	ConfirmationRepo confirmation.Repository

	// StarterItems overrides the default starter kit when non-empty
	StarterItems []string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ProfileRepo == nil {
		vb.RequiredField("ProfileRepo")
	}
	if c.OwnershipRepo == nil {
		vb.RequiredField("OwnershipRepo")
	}
	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}
	if c.CooldownRepo == nil {
		vb.RequiredField("CooldownRepo")
	}
	if c.ConfirmationRepo == nil {
		vb.RequiredField("ConfirmationRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	profileRepo      profilerepo.Repository
	ownershipRepo    ownership.Repository
	catalogRepo      catalog.Repository
	cooldownRepo     cooldown.Repository
	confirmationRepo confirmation.Repository
	starterItems     []string
}

// NewOrchestrator creates a new profile orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	starter := cfg.StarterItems
	if len(starter) == 0 {
		starter = defaultStarterKit
	}

	return &orchestrator{
		profileRepo:      cfg.ProfileRepo,
		ownershipRepo:    cfg.OwnershipRepo,
		catalogRepo:      cfg.CatalogRepo,
		cooldownRepo:     cfg.CooldownRepo,
		confirmationRepo: cfg.ConfirmationRepo,
		starterItems:     starter,
	}, nil
}

func (o *orchestrator) CreateProfile(ctx context.Context, input *CreateProfileInput) (*CreateProfileOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	createOutput, err := o.profileRepo.Create(ctx, profilerepo.CreateInput{
		Profile: &entities.Profile{
			UserID: input.UserID,
			Level:  1,
		},
	})
	if err != nil {
		return nil, err
	}

	if _, err := o.ownershipRepo.Insert(ctx, ownership.InsertInput{
		UserID:    input.UserID,
		ItemNames: o.starterItems,
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to grant starter kit to user %s", input.UserID)
	}

	slog.InfoContext(ctx, "profile created",
		"user_id", input.UserID,
		"starter_items", len(o.starterItems))

	return &CreateProfileOutput{
		Profile:      createOutput.Profile,
		StarterItems: o.starterItems,
	}, nil
}

func (o *orchestrator) GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	if err := checkCooldown(ctx, o.cooldownRepo, input.UserID, ActionViewProfile, ViewCooldownWindow); err != nil {
		return nil, err
	}

	getOutput, err := o.profileRepo.Get(ctx, profilerepo.GetInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}
	prof := getOutput.Profile

	// Fold any unapplied experience into levels and persist the corrected
	// pair, so later reads and reward math start from normalized state.
	level, exp := rules.Normalize(prof.Level, prof.Exp)
	if level != prof.Level || exp != prof.Exp {
		prof.Level = level
		prof.Exp = exp
		updateOutput, err := o.profileRepo.Update(ctx, profilerepo.UpdateInput{Profile: prof})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to persist normalized level for user %s", input.UserID)
		}
		prof = updateOutput.Profile
	}

	equipped, items, err := o.equippedItems(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetProfileOutput{
		Profile:  prof,
		MaxExp:   rules.MaxExp(prof.Level),
		Power:    rules.Power(items, prof.Level),
		Equipped: equipped,
	}, nil
}

// equippedItems resolves the user's equipped records against the catalog,
// returning the slot map and the item definitions for the power sum.
func (o *orchestrator) equippedItems(ctx context.Context, userID string) (map[entities.Slot]string, []entities.Item, error) {
	listOutput, err := o.ownershipRepo.ListForUser(ctx, ownership.ListForUserInput{UserID: userID})
	if err != nil {
		return nil, nil, err
	}

	var equippedNames []string
	for _, record := range listOutput.Records {
		if record.IsEquipped {
			equippedNames = append(equippedNames, record.ItemName)
		}
	}
	if len(equippedNames) == 0 {
		return map[entities.Slot]string{}, nil, nil
	}

	findOutput, err := o.catalogRepo.FindByNames(ctx, catalog.FindByNamesInput{Names: equippedNames})
	if err != nil {
		return nil, nil, err
	}

	byName := make(map[string]*entities.Item, len(findOutput.Items))
	for _, item := range findOutput.Items {
		byName[item.Name] = item
	}

	slots := make(map[entities.Slot]string, len(equippedNames))
	items := make([]entities.Item, 0, len(equippedNames))
	for _, name := range equippedNames {
		item, ok := byName[name]
		if !ok {
			// Equipped record points at a name the catalog no longer has.
			// Skip it rather than failing the whole view.
			slog.WarnContext(ctx, "equipped item missing from catalog",
				"user_id", userID,
				"item_name", name)
			continue
		}
		slots[item.Slot] = item.Name
		items = append(items, *item)
	}

	return slots, items, nil
}

func (o *orchestrator) RequestDelete(ctx context.Context, input *RequestDeleteInput) (*RequestDeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	// The flow only makes sense for an existing profile.
	if _, err := o.profileRepo.Get(ctx, profilerepo.GetInput{UserID: input.UserID}); err != nil {
		return nil, err
	}

	createOutput, err := o.confirmationRepo.Create(ctx, confirmation.CreateInput{
		UserID: input.UserID,
		Action: ActionDeleteProfile,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to start deletion confirmation for user %s", input.UserID)
	}

	return &RequestDeleteOutput{ExpiresAt: createOutput.Session.ExpiresAt}, nil
}

func (o *orchestrator) ConfirmDelete(ctx context.Context, input *ConfirmDeleteInput) (*ConfirmDeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	_, err := o.confirmationRepo.Consume(ctx, confirmation.ConsumeInput{
		UserID: input.UserID,
		Action: ActionDeleteProfile,
	})
	if err != nil {
		if errors.IsNotFound(err) {
			return &ConfirmDeleteOutput{Outcome: OutcomeTimedOut}, nil
		}
		return nil, err
	}

	// Ownership first. If the profile delete below fails, the profile is
	// still present and the flow can be requested again.
	deleteOutput, err := o.ownershipRepo.DeleteForUser(ctx, ownership.DeleteForUserInput{UserID: input.UserID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete ownership records for user %s", input.UserID)
	}

	if _, err := o.profileRepo.Delete(ctx, profilerepo.DeleteInput{UserID: input.UserID}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "profile deleted",
		"user_id", input.UserID,
		"ownership_records_deleted", deleteOutput.Deleted)

	return &ConfirmDeleteOutput{
		Outcome:      OutcomeConfirmed,
		ItemsDeleted: deleteOutput.Deleted,
	}, nil
}

func (o *orchestrator) CancelDelete(ctx context.Context, input *CancelDeleteInput) (*CancelDeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	_, err := o.confirmationRepo.Cancel(ctx, confirmation.ConsumeInput{
		UserID: input.UserID,
		Action: ActionDeleteProfile,
	})
	if err != nil {
		if errors.IsNotFound(err) {
			return &CancelDeleteOutput{Outcome: OutcomeTimedOut}, nil
		}
		return nil, err
	}

	return &CancelDeleteOutput{Outcome: OutcomeCanceled}, nil
}

// checkCooldown starts a throttle window for the action or reports the
// active one as a resource-exhausted error carrying the remaining seconds.
func checkCooldown(ctx context.Context, repo cooldown.Repository, userID, action string, window time.Duration) error {
	checkOutput, err := repo.Check(ctx, cooldown.CheckInput{
		UserID: userID,
		Action: action,
		Window: window,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to check %s cooldown", action)
	}
	if checkOutput.SecondsRemaining > 0 {
		return errors.ResourceExhaustedf("%s is on cooldown for %d more seconds", action, checkOutput.SecondsRemaining).
			WithMeta("seconds_remaining", checkOutput.SecondsRemaining)
	}
	return nil
}
