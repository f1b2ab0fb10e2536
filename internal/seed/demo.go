package seed

import (
	"context"
	"fmt"
	"log"

	"github.com/prioboard/prioboard/internal/model"
	"github.com/prioboard/prioboard/internal/repository"
)

var demoFeatures = []model.FeatureInput{
	{
		Title:         "AI-Powered Lead Qualification",
		Description:   "Automatically qualify leads based on fit, intent, and engagement data. Should integrate with existing CRM data.",
		ImpactScore:   90,
		EffortScore:   70,
		Status:        "planning",
		CustomerType:  "enterprise",
		CustomerCount: 15,
		Category:      "ai-feature",
		Tags:          []string{"ai", "lead-qualification", "automation"},
	},
	{
		Title:         "Multi-Channel Outreach Automation",
		Description:   "Execute personalized outreach across email, LinkedIn, phone, and SMS based on prospect preferences and engagement patterns.",
		ImpactScore:   85,
		EffortScore:   65,
		Status:        "research",
		CustomerType:  "enterprise",
		CustomerCount: 12,
		Category:      "communication",
		Tags:          []string{"multi-channel", "personalization", "automation"},
	},
	{
		Title:         "Sentiment Analysis for Prospect Responses",
		Description:   "Use NLP to analyze prospect responses and determine sentiment, interest level, and objections to inform follow-up strategy.",
		ImpactScore:   75,
		EffortScore:   45,
		Status:        "pending",
		CustomerType:  "mid-market",
		CustomerCount: 8,
		Category:      "ai-feature",
		Tags:          []string{"nlp", "sentiment-analysis", "response-handling"},
	},
	{
		Title:         "AI Meeting Scheduler with Contextual Awareness",
		Description:   "Schedule meetings automatically by analyzing calendar availability, communication history, and conversation context.",
		ImpactScore:   80,
		EffortScore:   40,
		Status:        "development",
		CustomerType:  "all",
		CustomerCount: 25,
		Category:      "productivity",
		Tags:          []string{"meeting-scheduler", "calendar-integration", "ai-assistant"},
	},
	{
		Title:         "Automated Competitive Intelligence",
		Description:   "Monitor prospect engagement with competitors and automatically surface relevant competitive intelligence to SDRs.",
		ImpactScore:   70,
		EffortScore:   80,
		Status:        "research",
		CustomerType:  "enterprise",
		CustomerCount: 7,
		Category:      "market-intelligence",
		Tags:          []string{"competitive-intel", "market-monitoring", "sales-enablement"},
	},
	{
		Title:         "Personalized Outreach Content Generator",
		Description:   "Generate personalized outreach messages based on prospect data, company news, and historical engagement patterns.",
		ImpactScore:   95,
		EffortScore:   60,
		Status:        "planning",
		CustomerType:  "all",
		CustomerCount: 30,
		Category:      "content",
		Tags:          []string{"content-generation", "personalization", "outreach"},
	},
	{
		Title:         "Predictive Lead Scoring",
		Description:   "Predict the likelihood of conversion for each lead based on historical data and current engagement.",
		ImpactScore:   85,
		EffortScore:   75,
		Status:        "pending",
		CustomerType:  "enterprise",
		CustomerCount: 10,
		Category:      "ai-feature",
		Tags:          []string{"predictive-analytics", "lead-scoring", "ml"},
	},
	{
		Title:         "Voice Analytics for SDR Calls",
		Description:   "Real-time voice analysis for SDR calls with coaching on tone, pace, and effectiveness plus improvement recommendations.",
		ImpactScore:   65,
		EffortScore:   85,
		Status:        "backlog",
		CustomerType:  "mid-market",
		CustomerCount: 5,
		Category:      "training",
		Tags:          []string{"voice-analytics", "coaching", "call-analysis"},
	},
	{
		Title:         "Account-Based Intelligence Dashboard",
		Description:   "Centralized dashboard aggregating all available intelligence on target accounts: key contacts, recent news, engagement history.",
		ImpactScore:   75,
		EffortScore:   55,
		Status:        "development",
		CustomerType:  "enterprise",
		CustomerCount: 18,
		Category:      "dashboard",
		Tags:          []string{"abi", "account-intelligence", "dashboard"},
	},
	{
		Title:         "Automated Objection Handling Assistant",
		Description:   "Suggest responses to common objections in real time during prospect conversations, based on successful past interactions.",
		ImpactScore:   80,
		EffortScore:   50,
		Status:        "planning",
		CustomerType:  "all",
		CustomerCount: 22,
		Category:      "sales-enablement",
		Tags:          []string{"objection-handling", "real-time-assistance", "conversation-intelligence"},
	},
}

// demoComments attach to the Nth created demo feature (1-based index).
var demoComments = []struct {
	feature int
	content string
}{
	{1, "This could significantly increase our conversion rates. Enterprise customers particularly mentioned this in the last advisory board."},
	{1, "We should integrate this with our existing lead scoring system to avoid creating a parallel workflow."},
	{2, "Multi-channel orchestration will be a key differentiator. Let's prioritize this for Q2."},
	{6, "The content generation capability should leverage our existing messaging library to maintain brand consistency."},
	{7, "We'll need to coordinate with the data science team for this. Initial models show promising accuracy."},
}

// Demo loads the sample feature set, attributed to the given user. It
// skips itself when any features already exist.
func Demo(ctx context.Context, store repository.Store, userID uint64) error {
	existing, err := store.ListFeatures(ctx)
	if err != nil {
		return fmt.Errorf("list features: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	created := make([]model.Feature, 0, len(demoFeatures))
	for _, in := range demoFeatures {
		in.CreatedByID = userID
		f, err := store.CreateFeature(ctx, in)
		if err != nil {
			return fmt.Errorf("seed feature %q: %w", in.Title, err)
		}
		created = append(created, f)
	}
	for _, dc := range demoComments {
		if dc.feature < 1 || dc.feature > len(created) {
			continue
		}
		if _, err := store.CreateComment(ctx, model.CommentInput{
			FeatureID: created[dc.feature-1].ID,
			UserID:    userID,
			Content:   dc.content,
		}); err != nil {
			return fmt.Errorf("seed comment: %w", err)
		}
	}
	log.Printf("seed: %d demo features loaded", len(created))
	return nil
}
