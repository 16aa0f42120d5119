package providers

import (
	"time"

	"github.com/jonathan/opportunity-scout/internal/types"
)

// Built-in catalog sources. Income figures are conservative marketplace
// medians, not promises.

// NewFreelanceMarketplace models a general freelance gig marketplace.
func NewFreelanceMarketplace(memoTTL time.Duration) *CatalogAdapter {
	families := map[string][]template{
		"javascript": {{
			title:       "Freelance {skill} development",
			description: "Take on contract {skill} work for agencies and startups. Most clients need ongoing maintenance after the initial build, which turns one-off projects into retainers. Portfolio quality matters more than certifications here.",
			oppType:     types.TypeFreelance,
			required:    []string{"{skill}"},
			niceToHave:  []string{"react", "typescript"},
			income:      types.IncomeRange{Min: 40, Max: 90, Timeframe: types.TimeframeHourly},
			cost:        types.CostRange{Min: 0, Max: 100},
			timeReq:     types.TimeCommitment{Min: 10, Max: 30, Unit: types.TimeUnitHoursPerWeek},
			location:    types.LocationRemote,
			barrier:     types.LevelLow,
			competition: types.LevelHigh,
			steps:       []string{"Build a three-project portfolio", "Create a marketplace profile", "Bid on small fixed-scope jobs first"},
		}},
		"writing": {{
			title:       "Freelance {skill} for B2B clients",
			description: "Business clients pay steadily for case studies, white papers, and long-form content. Specializing in one industry raises rates quickly compared to generalist content mills.",
			oppType:     types.TypeFreelance,
			required:    []string{"{skill}"},
			niceToHave:  []string{"seo", "editing"},
			income:      types.IncomeRange{Min: 30, Max: 70, Timeframe: types.TimeframeHourly},
			cost:        types.CostRange{Min: 0, Max: 50},
			timeReq:     types.TimeCommitment{Min: 8, Max: 25, Unit: types.TimeUnitHoursPerWeek},
			location:    types.LocationRemote,
			barrier:     types.LevelLow,
			competition: types.LevelHigh,
			steps:       []string{"Pick a niche industry", "Write three samples", "Pitch ten prospects a week"},
		}},
		"design": {{
			title:       "Contract {skill} projects",
			description: "Brand refreshes, landing pages, and product design sprints for small companies that cannot justify a full-time designer.",
			oppType:     types.TypeFreelance,
			required:    []string{"{skill}"},
			niceToHave:  []string{"figma", "branding"},
			income:      types.IncomeRange{Min: 1500, Max: 6000, Timeframe: types.TimeframePerProject},
			cost:        types.CostRange{Min: 100, Max: 400},
			timeReq:     types.TimeCommitment{Min: 10, Max: 25, Unit: types.TimeUnitHoursPerWeek},
			location:    types.LocationRemote,
			barrier:     types.LevelMedium,
			competition: types.LevelHigh,
			steps:       []string{"Assemble a case-study portfolio", "List on design marketplaces", "Offer a fixed-price starter package"},
		}},
	}
	generic := []template{{
		title:       "Freelance {skill} services",
		description: "Offer {skill} work to small businesses through freelance marketplaces. Early reviews matter most, so underprice the first few jobs and raise rates with each completed contract.",
		oppType:     types.TypeFreelance,
		required:    []string{"{skill}"},
		income:      types.IncomeRange{Min: 25, Max: 60, Timeframe: types.TimeframeHourly},
		cost:        types.CostRange{Min: 0, Max: 100},
		timeReq:     types.TimeCommitment{Min: 5, Max: 20, Unit: types.TimeUnitHoursPerWeek},
		location:    types.LocationRemote,
		barrier:     types.LevelLow,
		competition: types.LevelMedium,
		steps:       []string{"Define a clear service offer", "Create a marketplace profile", "Collect testimonials from the first clients"},
	}}
	return NewCatalogAdapter("upcraft", families, generic, memoTTL)
}

// NewDigitalProductStudio models a digital-goods storefront platform.
func NewDigitalProductStudio(memoTTL time.Duration) *CatalogAdapter {
	families := map[string][]template{
		"javascript": {{
			title:       "Sell {skill} component libraries and templates",
			description: "Package reusable {skill} templates, starter kits, or component libraries and sell them on digital storefronts. Built once, sold repeatedly; marketing is the real ongoing work.",
			oppType:     types.TypeDigitalProduct,
			required:    []string{"{skill}"},
			niceToHave:  []string{"marketing"},
			income:      types.IncomeRange{Min: 200, Max: 2500, Timeframe: types.TimeframeMonthly},
			cost:        types.CostRange{Min: 0, Max: 300},
			timeReq:     types.TimeCommitment{Min: 60, Max: 120, Unit: types.TimeUnitTotalHours},
			location:    types.LocationRemote,
			barrier:     types.LevelMedium,
			competition: types.LevelMedium,
			steps:       []string{"Identify a recurring pain point", "Build and document the product", "Launch on a storefront with launch pricing"},
		}},
		"design": {{
			title:       "Sell {skill} asset packs",
			description: "Icon sets, UI kits, and social templates sell steadily to freelancers and small teams. A catalog of ten small packs outperforms one large one.",
			oppType:     types.TypeDigitalProduct,
			required:    []string{"{skill}"},
			income:      types.IncomeRange{Min: 100, Max: 1500, Timeframe: types.TimeframeMonthly},
			cost:        types.CostRange{Min: 0, Max: 200},
			timeReq:     types.TimeCommitment{Min: 40, Max: 80, Unit: types.TimeUnitTotalHours},
			location:    types.LocationRemote,
			barrier:     types.LevelLow,
			competition: types.LevelHigh,
			steps:       []string{"Research best-selling asset categories", "Produce a first pack", "Cross-promote on a portfolio site"},
		}},
	}
	generic := []template{{
		title:       "Create a digital product around {skill}",
		description: "Turn {skill} know-how into a downloadable product: worksheets, templates, or toolkits. Margins are high once the upfront build is done.",
		oppType:     types.TypeDigitalProduct,
		required:    []string{"{skill}"},
		income:      types.IncomeRange{Min: 100, Max: 1200, Timeframe: types.TimeframeMonthly},
		cost:        types.CostRange{Min: 0, Max: 250},
		timeReq:     types.TimeCommitment{Min: 40, Max: 100, Unit: types.TimeUnitTotalHours},
		location:    types.LocationRemote,
		barrier:     types.LevelMedium,
		competition: types.LevelMedium,
		steps:       []string{"Validate demand with a landing page", "Build the minimum product", "Iterate on buyer feedback"},
	}}
	return NewCatalogAdapter("makerbay", families, generic, memoTTL)
}

// NewServiceMarketplace models a local/remote services marketplace.
func NewServiceMarketplace(memoTTL time.Duration) *CatalogAdapter {
	families := map[string][]template{
		"marketing": {{
			title:       "Local {skill} consulting for small businesses",
			description: "Restaurants, gyms, and trade businesses need someone to run their online presence. Monthly retainers are standard once trust is built.",
			oppType:     types.TypeService,
			required:    []string{"{skill}"},
			niceToHave:  []string{"social media"},
			income:      types.IncomeRange{Min: 500, Max: 2000, Timeframe: types.TimeframeMonthly},
			cost:        types.CostRange{Min: 50, Max: 300},
			timeReq:     types.TimeCommitment{Min: 5, Max: 15, Unit: types.TimeUnitHoursPerWeek},
			location:    types.LocationBoth,
			barrier:     types.LevelLow,
			competition: types.LevelMedium,
			steps:       []string{"Audit three local businesses for free", "Convert one audit into a retainer", "Ask for referrals"},
		}},
		"photography": {{
			title:       "Event and product {skill} services",
			description: "Local events, real-estate listings, and product catalogs provide repeat work. Equipment is the main upfront cost.",
			oppType:     types.TypeService,
			required:    []string{"{skill}"},
			income:      types.IncomeRange{Min: 150, Max: 500, Timeframe: types.TimeframeDaily},
			cost:        types.CostRange{Min: 800, Max: 2500},
			timeReq:     types.TimeCommitment{Min: 8, Max: 20, Unit: types.TimeUnitHoursPerWeek},
			location:    types.LocationLocal,
			barrier:     types.LevelMedium,
			competition: types.LevelMedium,
			steps:       []string{"Build a local portfolio", "List on booking marketplaces", "Partner with event venues"},
		}},
	}
	generic := []template{{
		title:       "Offer {skill} as a local service",
		description: "Package {skill} into a clearly scoped service for people nearby. Word of mouth compounds faster locally than online.",
		oppType:     types.TypeService,
		required:    []string{"{skill}"},
		income:      types.IncomeRange{Min: 20, Max: 50, Timeframe: types.TimeframeHourly},
		cost:        types.CostRange{Min: 50, Max: 400},
		timeReq:     types.TimeCommitment{Min: 5, Max: 15, Unit: types.TimeUnitHoursPerWeek},
		location:    types.LocationLocal,
		barrier:     types.LevelLow,
		competition: types.LevelLow,
		steps:       []string{"Define the service and price", "List on local marketplaces", "Collect reviews early"},
	}}
	return NewCatalogAdapter("taskhive", families, generic, memoTTL)
}

// NewPassiveIncomeLab models a passive-income idea catalog.
func NewPassiveIncomeLab(memoTTL time.Duration) *CatalogAdapter {
	families := map[string][]template{
		"writing": {{
			title:       "Niche site built on {skill}",
			description: "A focused content site monetized with affiliate links and ads. Slow to start, but articles keep earning after publication. Expect six months before meaningful traffic.",
			oppType:     types.TypePassiveIncome,
			required:    []string{"{skill}", "seo"},
			income:      types.IncomeRange{Min: 0, Max: 3000, Timeframe: types.TimeframeMonthly},
			cost:        types.CostRange{Min: 100, Max: 500},
			timeReq:     types.TimeCommitment{Min: 5, Max: 15, Unit: types.TimeUnitHoursPerWeek},
			location:    types.LocationRemote,
			barrier:     types.LevelMedium,
			competition: types.LevelHigh,
			steps:       []string{"Pick a narrow niche", "Publish thirty cornerstone articles", "Apply to affiliate programs"},
		}},
		"javascript": {{
			title:       "Micro-SaaS with {skill}",
			description: "A small subscription tool solving one problem for one audience. The hard part is distribution, not code. Revenue compounds with retention.",
			oppType:     types.TypePassiveIncome,
			required:    []string{"{skill}", "marketing"},
			income:      types.IncomeRange{Min: 0, Max: 8000, Timeframe: types.TimeframeMonthly},
			cost:        types.CostRange{Min: 100, Max: 1000},
			timeReq:     types.TimeCommitment{Min: 10, Max: 25, Unit: types.TimeUnitHoursPerWeek},
			location:    types.LocationRemote,
			barrier:     types.LevelHigh,
			competition: types.LevelMedium,
			steps:       []string{"Interview twenty potential users", "Ship a paid beta", "Automate onboarding and support"},
		}},
	}
	generic := []template{{
		title:       "Licensing {skill} work for recurring royalties",
		description: "Stock platforms and licensing marketplaces pay small recurring royalties for {skill} assets. Volume and consistency beat individual quality outliers.",
		oppType:     types.TypePassiveIncome,
		required:    []string{"{skill}"},
		income:      types.IncomeRange{Min: 50, Max: 800, Timeframe: types.TimeframeMonthly},
		cost:        types.CostRange{Min: 0, Max: 200},
		timeReq:     types.TimeCommitment{Min: 3, Max: 10, Unit: types.TimeUnitHoursPerWeek},
		location:    types.LocationRemote,
		barrier:     types.LevelLow,
		competition: types.LevelHigh,
		steps:       []string{"Study top sellers in the category", "Upload a first batch", "Track which assets earn and double down"},
	}}
	return NewCatalogAdapter("cashflowlab", families, generic, memoTTL)
}

// NewCoursePlatform models an online-course publishing platform.
func NewCoursePlatform(memoTTL time.Duration) *CatalogAdapter {
	families := map[string][]template{
		"javascript": {{
			title:       "Teach a project-based {skill} course",
			description: "Beginner-to-job courses with a concrete capstone project sell best. Recording is a one-time effort; updates keep the course ranking.",
			oppType:     types.TypeInfoProduct,
			required:    []string{"{skill}", "teaching"},
			income:      types.IncomeRange{Min: 200, Max: 4000, Timeframe: types.TimeframeMonthly},
			cost:        types.CostRange{Min: 100, Max: 600},
			timeReq:     types.TimeCommitment{Min: 80, Max: 160, Unit: types.TimeUnitTotalHours},
			location:    types.LocationRemote,
			barrier:     types.LevelMedium,
			competition: types.LevelHigh,
			steps:       []string{"Outline the course around one outcome", "Record a free mini-course as a funnel", "Launch on a course marketplace"},
		}},
	}
	generic := []template{{
		title:       "Publish a {skill} course",
		description: "Package {skill} experience into a structured online course. Course platforms handle hosting and payments for a revenue share.",
		oppType:     types.TypeInfoProduct,
		required:    []string{"{skill}"},
		niceToHave:  []string{"video editing"},
		income:      types.IncomeRange{Min: 100, Max: 2000, Timeframe: types.TimeframeMonthly},
		cost:        types.CostRange{Min: 50, Max: 500},
		timeReq:     types.TimeCommitment{Min: 60, Max: 120, Unit: types.TimeUnitTotalHours},
		location:    types.LocationRemote,
		barrier:     types.LevelMedium,
		competition: types.LevelMedium,
		steps:       []string{"Validate the topic with a webinar", "Record and edit the modules", "Gather reviews from early students"},
	}}
	return NewCatalogAdapter("courseforge", families, generic, memoTTL)
}
