// internal/app/router.go
package app

import (
	authHandler "crmdesk-console/internal/handlers/auth"
	catalogHandler "crmdesk-console/internal/handlers/catalog"
	consoleHandler "crmdesk-console/internal/handlers/console"
	contractHandler "crmdesk-console/internal/handlers/contract"
	dealHandler "crmdesk-console/internal/handlers/deal"
	interviewHandler "crmdesk-console/internal/handlers/interview"
	leadHandler "crmdesk-console/internal/handlers/lead"
	noteHandler "crmdesk-console/internal/handlers/note"
	"crmdesk-console/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	AuthHandler       *authHandler.AuthHandler
	ConsoleHandler    *consoleHandler.ConsoleHandler
	LeadHandler       *leadHandler.LeadHandler
	DealHandler       *dealHandler.DealHandler
	ContractHandler   *contractHandler.ContractHandler
	CatalogHandler    *catalogHandler.CatalogHandler
	InterviewHandler  *interviewHandler.InterviewHandler
	NoteHandler       *noteHandler.NoteHandler
	SessionMiddleware *middleware.SessionMiddleware
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== Navigation Guard ====================
	// The browser shell resolves every route through here before rendering.
	r.GET("/console/*path", h.ConsoleHandler.Resolve)

	// ==================== Public Auth Routes ====================
	authPublic := api.Group("/auth")
	{
		authPublic.POST("/register", h.AuthHandler.Register)
		authPublic.POST("/login", h.AuthHandler.Login)
		authPublic.DELETE("/error", h.AuthHandler.ClearError)
		authPublic.DELETE("/registration-state", h.AuthHandler.ClearRegistrationState)
	}

	// ==================== Authenticated Auth Routes ====================
	authProtected := api.Group("/auth")
	authProtected.Use(h.SessionMiddleware.RequireSession())
	{
		authProtected.POST("/logout", h.AuthHandler.Logout)
		authProtected.GET("/me", h.AuthHandler.Me)
		authProtected.PUT("/profile", h.AuthHandler.UpdateProfile)
		authProtected.POST("/refresh", h.AuthHandler.RefreshProfile)
	}

	// ==================== Console Preferences ====================
	prefs := api.Group("/preferences")
	prefs.Use(h.SessionMiddleware.RequireSession())
	{
		prefs.GET("/sidebar", h.ConsoleHandler.GetSidebar)
		prefs.PUT("/sidebar", h.ConsoleHandler.SetSidebar)
	}

	// ==================== Leads ====================
	leads := api.Group("/leads")
	leads.Use(h.SessionMiddleware.RequireSession())
	{
		leads.GET("", h.LeadHandler.ListLeads)
		leads.GET("/stats", h.LeadHandler.GetLeadStats)
		leads.GET("/:id", h.LeadHandler.GetLead)
		leads.POST("", h.LeadHandler.CreateLead)
		leads.PUT("/:id", h.LeadHandler.UpdateLead)
		leads.DELETE("/:id", h.LeadHandler.DeleteLead)

		// Follow-ups
		leads.GET("/:id/followups", h.LeadHandler.ListFollowUps)
		leads.POST("/:id/followups", h.LeadHandler.CreateFollowUp)
		leads.PUT("/:id/followups/:followup_id", h.LeadHandler.UpdateFollowUp)
		leads.DELETE("/:id/followups/:followup_id", h.LeadHandler.DeleteFollowUp)
	}

	// ==================== Deals ====================
	deals := api.Group("/deals")
	deals.Use(h.SessionMiddleware.RequireSession())
	{
		deals.GET("", h.DealHandler.ListDeals)
		deals.GET("/stats", h.DealHandler.GetDealStats)
		deals.GET("/:id", h.DealHandler.GetDeal)
		deals.POST("", h.DealHandler.CreateDeal)
		deals.PUT("/:id", h.DealHandler.UpdateDeal)
		deals.DELETE("/:id", h.DealHandler.DeleteDeal)

		// Follow-ups
		deals.GET("/:id/followups", h.DealHandler.ListFollowUps)
		deals.POST("/:id/followups", h.DealHandler.CreateFollowUp)
		deals.PUT("/:id/followups/:followup_id", h.DealHandler.UpdateFollowUp)
		deals.DELETE("/:id/followups/:followup_id", h.DealHandler.DeleteFollowUp)
	}

	// ==================== Contracts ====================
	contracts := api.Group("/contracts")
	contracts.Use(h.SessionMiddleware.RequireSession())
	{
		contracts.GET("", h.ContractHandler.ListContracts)
		contracts.GET("/:id", h.ContractHandler.GetContract)
		contracts.POST("", h.ContractHandler.CreateContract)
		contracts.PUT("/:id", h.ContractHandler.UpdateContract)
		contracts.DELETE("/:id", h.ContractHandler.DeleteContract)
	}

	// Contract types are catalog data; writes are admin-only.
	contractTypes := api.Group("/contract-types")
	contractTypes.Use(h.SessionMiddleware.RequireSession())
	{
		contractTypes.GET("", h.ContractHandler.ListContractTypes)

		admin := contractTypes.Group("")
		admin.Use(h.SessionMiddleware.RequireSuperAdmin())
		{
			admin.POST("", h.ContractHandler.CreateContractType)
			admin.PUT("/:id", h.ContractHandler.UpdateContractType)
			admin.DELETE("/:id", h.ContractHandler.DeleteContractType)
		}
	}

	// ==================== Catalog (labels & sources) ====================
	labels := api.Group("/labels")
	labels.Use(h.SessionMiddleware.RequireSession())
	{
		labels.GET("", h.CatalogHandler.ListLabels)

		admin := labels.Group("")
		admin.Use(h.SessionMiddleware.RequireSuperAdmin())
		{
			admin.POST("", h.CatalogHandler.CreateLabel)
			admin.PUT("/:id", h.CatalogHandler.UpdateLabel)
			admin.DELETE("/:id", h.CatalogHandler.DeleteLabel)
		}
	}

	sources := api.Group("/sources")
	sources.Use(h.SessionMiddleware.RequireSession())
	{
		sources.GET("", h.CatalogHandler.ListSources)

		admin := sources.Group("")
		admin.Use(h.SessionMiddleware.RequireSuperAdmin())
		{
			admin.POST("", h.CatalogHandler.CreateSource)
			admin.PUT("/:id", h.CatalogHandler.UpdateSource)
			admin.DELETE("/:id", h.CatalogHandler.DeleteSource)
		}
	}

	// ==================== Interviews ====================
	interviews := api.Group("/interviews")
	interviews.Use(h.SessionMiddleware.RequireSession())
	{
		interviews.GET("", h.InterviewHandler.ListInterviews)
		interviews.GET("/calendar", h.InterviewHandler.GetCalendar)
		interviews.GET("/:id", h.InterviewHandler.GetInterview)
		interviews.POST("", h.InterviewHandler.CreateInterview)
		interviews.PUT("/:id", h.InterviewHandler.UpdateInterview)
		interviews.DELETE("/:id", h.InterviewHandler.DeleteInterview)
	}

	// ==================== Notes ====================
	notes := api.Group("/notes")
	notes.Use(h.SessionMiddleware.RequireSession())
	{
		notes.GET("", h.NoteHandler.ListNotes)
		notes.GET("/:id", h.NoteHandler.GetNote)
		notes.POST("", h.NoteHandler.CreateNote)
		notes.PUT("/:id", h.NoteHandler.UpdateNote)
		notes.DELETE("/:id", h.NoteHandler.DeleteNote)
	}
}
