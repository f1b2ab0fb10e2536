// Package seed populates the store at process start: the five default
// scoring criteria, a default admin account and, when enabled, a set of
// demo features with comments. Seeding is idempotent so a restart against
// a persistent backend does not duplicate rows.
package seed

import (
	"context"
	"fmt"
	"log"

	"github.com/prioboard/prioboard/internal/model"
	"github.com/prioboard/prioboard/internal/repository"
	"github.com/prioboard/prioboard/internal/utils"
)

const (
	defaultUsername = "admin"
	defaultPassword = "admin"
)

var defaultCriteria = []model.CriteriaInput{
	{Name: "Revenue Impact", Description: "Potential revenue generation or retention", Weight: 30, Order: 1},
	{Name: "Strategic Alignment", Description: "Fit with company roadmap and goals", Weight: 25, Order: 2},
	{Name: "Implementation Effort", Description: "Development and deployment resources required", Weight: 20, Order: 3},
	{Name: "Customer Demand", Description: "Volume and tier of customer requests", Weight: 15, Order: 4},
	{Name: "Technical Debt", Description: "Impact on maintainability and architecture", Weight: 10, Order: 5},
}

// EnsureDefaults creates the default scoring criteria (when none exist)
// and the default admin user (when missing). Intended for development; a
// real deployment registers its own accounts.
func EnsureDefaults(ctx context.Context, store repository.Store, bcryptCost int) error {
	existing, err := store.ListCriteria(ctx)
	if err != nil {
		return fmt.Errorf("list criteria: %w", err)
	}
	if len(existing) == 0 {
		for _, in := range defaultCriteria {
			if _, err := store.CreateCriteria(ctx, in); err != nil {
				return fmt.Errorf("seed criteria %q: %w", in.Name, err)
			}
		}
	}

	if _, err := store.GetUserByUsername(ctx, defaultUsername); err == nil {
		return nil
	}
	hash, err := utils.HashPassword(defaultPassword, bcryptCost)
	if err != nil {
		return fmt.Errorf("hash default password: %w", err)
	}
	if _, err := store.CreateUser(ctx, model.UserInput{
		Username: defaultUsername,
		Password: hash,
		Name:     "Administrator",
		Role:     "admin",
	}); err != nil {
		return fmt.Errorf("seed default user: %w", err)
	}
	log.Printf("seed: default user %q created", defaultUsername)
	return nil
}
