package benchmark

import "github.com/ledgerline/finhealth/internal/model"

// ActionTemplate is one canned recommendation for a (category,
// severity) cell. ImpactFactor is the fraction of the category's
// gap-to-100 the action is expected to close.
type ActionTemplate struct {
	Title        string           `yaml:"title"`
	Description  string           `yaml:"description"`
	Priority     int              `yaml:"priority"`
	Difficulty   model.Difficulty `yaml:"difficulty"`
	Timeframe    model.Timeframe  `yaml:"timeframe"`
	ImpactFactor float64          `yaml:"impact_factor"`
}

func defaultTemplates() map[model.Category]map[Severity][]ActionTemplate {
	return map[model.Category]map[Severity][]ActionTemplate{
		model.CategoryProfitability: {
			SeverityCritical: {
				{
					Title:        "Stop the losses on unprofitable lines",
					Description:  "Rank every product and service by contribution margin and discontinue or reprice anything trading below direct cost within 30 days.",
					Priority:     1,
					Difficulty:   model.DifficultyMedium,
					Timeframe:    model.TimeframeShort,
					ImpactFactor: 0.35,
				},
				{
					Title:        "Emergency overhead review",
					Description:  "Freeze discretionary spending and renegotiate the five largest recurring expenses; target a 10-15% reduction in fixed costs.",
					Priority:     1,
					Difficulty:   model.DifficultyMedium,
					Timeframe:    model.TimeframeShort,
					ImpactFactor: 0.25,
				},
			},
			SeveritySevere: {
				{
					Title:        "Introduce margin reporting by product",
					Description:  "Set up monthly gross-margin reporting by product and customer so pricing decisions are made on data rather than turnover.",
					Priority:     2,
					Difficulty:   model.DifficultyEasy,
					Timeframe:    model.TimeframeShort,
					ImpactFactor: 0.25,
				},
				{
					Title:        "Targeted price increases",
					Description:  "Lift prices 3-5% on low-elasticity lines and monitor churn weekly; most SMBs underprice relative to their industry benchmark.",
					Priority:     2,
					Difficulty:   model.DifficultyMedium,
					Timeframe:    model.TimeframeMedium,
					ImpactFactor: 0.30,
				},
			},
			SeverityModerate: {
				{
					Title:        "Shift sales mix to higher-margin work",
					Description:  "Direct marketing spend and sales incentives toward the top-quartile margin offerings identified in margin reporting.",
					Priority:     3,
					Difficulty:   model.DifficultyMedium,
					Timeframe:    model.TimeframeMedium,
					ImpactFactor: 0.20,
				},
				{
					Title:        "Renegotiate key supplier agreements",
					Description:  "Tender the top five input-cost categories; a 2-3% COGS reduction flows straight through to net margin.",
					Priority:     3,
					Difficulty:   model.DifficultyMedium,
					Timeframe:    model.TimeframeMedium,
					ImpactFactor: 0.15,
				},
			},
			SeverityMinor: {
				{
					Title:        "Annual price indexation",
					Description:  "Build CPI-plus indexation into standard terms so margin is protected without ad hoc renegotiation.",
					Priority:     4,
					Difficulty:   model.DifficultyEasy,
					Timeframe:    model.TimeframeLong,
					ImpactFactor: 0.10,
				},
			},
			SeverityGood: {
				{
					Title:        "Document the margin playbook",
					Description:  "Capture pricing rules, supplier terms and mix targets so current profitability survives staff changes.",
					Priority:     5,
					Difficulty:   model.DifficultyEasy,
					Timeframe:    model.TimeframeLong,
					ImpactFactor: 0.05,
				},
			},
		},
		model.CategoryLiquidity: {
			SeverityCritical: {
				{
					Title:        "Build a 13-week cash-flow forecast",
					Description:  "Model weekly cash in and out for the next quarter and review it every Monday; this is the minimum control for a business near its cash floor.",
					Priority:     1,
					Difficulty:   model.DifficultyEasy,
					Timeframe:    model.TimeframeShort,
					ImpactFactor: 0.30,
				},
				{
					Title:        "Negotiate creditor payment plans",
					Description:  "Approach the ATO and major suppliers before missing a payment; documented plans preserve supply and avoid default listings.",
					Priority:     1,
					Difficulty:   model.DifficultyMedium,
					Timeframe:    model.TimeframeShort,
					ImpactFactor: 0.25,
				},
			},
			SeveritySevere: {
				{
					Title:        "Tighten debtor terms",
					Description:  "Move standard terms from 30 to 14 days for new work, invoice on delivery, and automate reminders at 7, 14 and 21 days.",
					Priority:     2,
					Difficulty:   model.DifficultyEasy,
					Timeframe:    model.TimeframeShort,
					ImpactFactor: 0.25,
				},
				{
					Title:        "Arrange standby working capital",
					Description:  "Secure an overdraft or invoice-finance facility while the balance sheet still supports it; facilities are cheapest when not urgently needed.",
					Priority:     2,
					Difficulty:   model.DifficultyMedium,
					Timeframe:    model.TimeframeMedium,
					ImpactFactor: 0.20,
				},
			},
			SeverityModerate: {
				{
					Title:        "Reduce inventory to the industry turn rate",
					Description:  "Cut slow-moving stock and introduce reorder points; every dollar released from stock lands in the current ratio.",
					Priority:     3,
					Difficulty:   model.DifficultyMedium,
					Timeframe:    model.TimeframeMedium,
					ImpactFactor: 0.20,
				},
				{
					Title:        "Smooth the payment cycle",
					Description:  "Align supplier payment runs with debtor receipts and negotiate matching terms with the two largest suppliers.",
					Priority:     3,
					Difficulty:   model.DifficultyEasy,
					Timeframe:    model.TimeframeMedium,
					ImpactFactor: 0.15,
				},
			},
			SeverityMinor: {
				{
					Title:        "Ladder surplus cash",
					Description:  "Place cash above the operating buffer on laddered term deposits so it earns without compromising availability.",
					Priority:     4,
					Difficulty:   model.DifficultyEasy,
					Timeframe:    model.TimeframeLong,
					ImpactFactor: 0.08,
				},
			},
			SeverityGood: {
				{
					Title:        "Set a deployment policy for excess cash",
					Description:  "Decide in advance what liquidity above target funds: growth, debt reduction or distributions.",
					Priority:     5,
					Difficulty:   model.DifficultyEasy,
					Timeframe:    model.TimeframeLong,
					ImpactFactor: 0.05,
				},
			},
		},
		model.CategoryLeverage: {
			SeverityCritical: {
				{
					Title:        "Open restructuring talks with lenders",
					Description:  "Engage lenders before a covenant breach; extended maturities and interest-only periods are available to borrowers who move early.",
					Priority:     1,
					Difficulty:   model.DifficultyHard,
					Timeframe:    model.TimeframeShort,
					ImpactFactor: 0.30,
				},
				{
					Title:        "Sell non-core assets to retire debt",
					Description:  "Dispose of idle or underperforming assets and apply proceeds to the highest-rate facilities first.",
					Priority:     1,
					Difficulty:   model.DifficultyHard,
					Timeframe:    model.TimeframeMedium,
					ImpactFactor: 0.25,
				},
			},
			SeveritySevere: {
				{
					Title:        "Refinance short-term debt",
					Description:  "Consolidate short-maturity and high-rate borrowings into a longer facility to cut repayments and restore coverage headroom.",
					Priority:     2,
					Difficulty:   model.DifficultyMedium,
					Timeframe:    model.TimeframeMedium,
					ImpactFactor: 0.25,
				},
				{
					Title:        "Commit free cash flow to principal",
					Description:  "Set a fixed percentage of monthly free cash flow against principal and report the gearing trend to owners quarterly.",
					Priority:     2,
					Difficulty:   model.DifficultyEasy,
					Timeframe:    model.TimeframeMedium,
					ImpactFactor: 0.20,
				},
			},
			SeverityModerate: {
				{
					Title:        "Stop borrowing for depreciating assets",
					Description:  "Fund vehicles and equipment from operating cash or leases sized to asset life rather than adding term debt.",
					Priority:     3,
					Difficulty:   model.DifficultyEasy,
					Timeframe:    model.TimeframeLong,
					ImpactFactor: 0.15,
				},
				{
					Title:        "Schedule early repayment of dearest facility",
					Description:  "Target the facility with the highest effective rate for early retirement while maintaining the liquidity buffer.",
					Priority:     3,
					Difficulty:   model.DifficultyMedium,
					Timeframe:    model.TimeframeMedium,
					ImpactFactor: 0.15,
				},
			},
			SeverityMinor: {
				{
					Title:        "Review gearing against growth plans",
					Description:  "Check annually whether conservative gearing is leaving cheap growth capital unused.",
					Priority:     4,
					Difficulty:   model.DifficultyEasy,
					Timeframe:    model.TimeframeLong,
					ImpactFactor: 0.08,
				},
			},
			SeverityGood: {
				{
					Title:        "Maintain covenant headroom monitoring",
					Description:  "Track coverage and gearing quarterly even when comfortably inside covenants.",
					Priority:     5,
					Difficulty:   model.DifficultyEasy,
					Timeframe:    model.TimeframeLong,
					ImpactFactor: 0.04,
				},
			},
		},
		model.CategoryEfficiency: {
			SeverityCritical: {
				{
					Title:        "Clear dead stock and aged debtors",
					Description:  "Write off or discount inventory older than one turn cycle and put every receivable past 60 days into active collection this week.",
					Priority:     1,
					Difficulty:   model.DifficultyMedium,
					Timeframe:    model.TimeframeShort,
					ImpactFactor: 0.30,
				},
				{
					Title:        "Dispose of idle plant",
					Description:  "Sell equipment that has not earned revenue in six months; idle assets drag both turnover ratios and insurance costs.",
					Priority:     1,
					Difficulty:   model.DifficultyMedium,
					Timeframe:    model.TimeframeMedium,
					ImpactFactor: 0.20,
				},
			},
			SeveritySevere: {
				{
					Title:        "Automate invoicing and reminders",
					Description:  "Invoice on delivery with automated follow-ups; debtor days fall 20-30% for most SMBs that implement this alone.",
					Priority:     2,
					Difficulty:   model.DifficultyEasy,
					Timeframe:    model.TimeframeShort,
					ImpactFactor: 0.25,
				},
				{
					Title:        "Introduce stock reorder points",
					Description:  "Set minimum/maximum levels per SKU so purchasing follows demand rather than habit.",
					Priority:     2,
					Difficulty:   model.DifficultyMedium,
					Timeframe:    model.TimeframeMedium,
					ImpactFactor: 0.20,
				},
			},
			SeverityModerate: {
				{
					Title:        "Benchmark stock turns quarterly",
					Description:  "Compare inventory turnover against the industry rate each quarter and act on any two consecutive declines.",
					Priority:     3,
					Difficulty:   model.DifficultyEasy,
					Timeframe:    model.TimeframeMedium,
					ImpactFactor: 0.15,
				},
				{
					Title:        "Early-payment discounts for large debtors",
					Description:  "Offer 1-2% settlement discounts to the top decile of debtors; the margin cost is usually below the working-capital cost it releases.",
					Priority:     3,
					Difficulty:   model.DifficultyEasy,
					Timeframe:    model.TimeframeShort,
					ImpactFactor: 0.12,
				},
			},
			SeverityMinor: {
				{
					Title:        "Hold debtor-days discipline through growth",
					Description:  "Keep collection cadence and credit checks unchanged as revenue scales; efficiency usually slips first during growth.",
					Priority:     4,
					Difficulty:   model.DifficultyEasy,
					Timeframe:    model.TimeframeLong,
					ImpactFactor: 0.08,
				},
			},
			SeverityGood: {
				{
					Title:        "Codify working-capital routines",
					Description:  "Write down the stock and collections routines so they transfer to new sites or acquisitions intact.",
					Priority:     5,
					Difficulty:   model.DifficultyEasy,
					Timeframe:    model.TimeframeLong,
					ImpactFactor: 0.04,
				},
			},
		},
	}
}
