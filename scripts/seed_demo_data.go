package main

import (
	"fmt"
	"log"
	"time"

	"synthex-backend/internal/config"
	"synthex-backend/internal/database"
	"synthex-backend/internal/database/models"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// Seeds a demo organization with a workspace, contacts, and a draft
// campaign. Intended for local development only; safe to run twice,
// existing rows are left alone.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := seed(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Demo data seeded")
}

func seed(db *gorm.DB) error {
	user := &models.User{
		Email:    "demo@synthex.dev",
		Name:     "Demo User",
		GoogleID: "demo-google-id",
	}
	if err := firstOrCreate(db, user, "email = ?", user.Email); err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	trialEnd := time.Now().AddDate(0, 0, 14)
	org := &models.Organization{
		Name:        "demo-org",
		DisplayName: "Demo Organization",
		PlanTier:    models.PlanFree,
		TrialEndsAt: &trialEnd,
	}
	if err := firstOrCreate(db, org, "name = ?", org.Name); err != nil {
		return fmt.Errorf("seed organization: %w", err)
	}

	member := &models.OrganizationMember{
		OrganizationID: org.ID,
		UserID:         user.ID,
		Role:           models.RoleOwner,
	}
	if err := firstOrCreate(db, member, "organization_id = ? AND user_id = ?", org.ID, user.ID); err != nil {
		return fmt.Errorf("seed membership: %w", err)
	}

	workspace := &models.Workspace{
		OrganizationID: org.ID,
		Name:           "Main Workspace",
		Slug:           "main",
		Timezone:       "UTC",
	}
	if err := firstOrCreate(db, workspace, "organization_id = ? AND slug = ?", org.ID, workspace.Slug); err != nil {
		return fmt.Errorf("seed workspace: %w", err)
	}

	contacts := []models.Contact{
		{WorkspaceID: workspace.ID, Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace", Company: "Analytical Engines", Status: models.ContactActive, LeadScore: 80},
		{WorkspaceID: workspace.ID, Email: "grace@example.com", FirstName: "Grace", LastName: "Hopper", Company: "Compilers Inc", Status: models.ContactActive, LeadScore: 65},
		{WorkspaceID: workspace.ID, Email: "alan@example.com", FirstName: "Alan", LastName: "Turing", Company: "Enigma Labs", Status: models.ContactUnsubscribed},
	}
	for i := range contacts {
		c := &contacts[i]
		if err := firstOrCreate(db, c, "workspace_id = ? AND email = ?", workspace.ID, c.Email); err != nil {
			return fmt.Errorf("seed contact %s: %w", c.Email, err)
		}
	}

	campaign := &models.Campaign{
		WorkspaceID:  workspace.ID,
		Name:         "Welcome Sequence",
		Subject:      "Welcome, {{first_name}}!",
		BodyTemplate: "<p>Hi {{first_name}},</p><p>Thanks for joining us at {{company}}.</p>",
		FromEmail:    "hello@synthex.dev",
		Status:       models.CampaignDraft,
	}
	if err := firstOrCreate(db, campaign, "workspace_id = ? AND name = ?", workspace.ID, campaign.Name); err != nil {
		return fmt.Errorf("seed campaign: %w", err)
	}

	return nil
}

func firstOrCreate(db *gorm.DB, dest interface{}, query string, args ...interface{}) error {
	return db.Where(query, args...).FirstOrCreate(dest).Error
}
