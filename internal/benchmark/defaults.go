package benchmark

import "github.com/ledgerline/finhealth/internal/model"

// Industry keys follow ANZSIC division names as the product's intake
// forms submit them.
const (
	IndustryRetail        = "Retail Trade"
	IndustryConstruction  = "Construction"
	IndustryManufacturing = "Manufacturing"
	IndustryProfessional  = "Professional Services"
	IndustryHospitality   = "Accommodation and Food Services"
	IndustryHealthcare    = "Healthcare and Social Assistance"
	IndustryTransport     = "Transport and Warehousing"
	IndustryAgriculture   = "Agriculture"
)

func tiers(small, medium, large float64) map[model.SizeTier]float64 {
	return map[model.SizeTier]float64{
		model.SizeSmall:  small,
		model.SizeMedium: medium,
		model.SizeLarge:  large,
	}
}

// Default returns the compiled-in catalog. Callers must not mutate the
// result; Load returns a fresh copy when an override file is applied.
func Default() *Catalog {
	c := &Catalog{
		Ratios: map[string]RatioDefinition{
			"Gross Profit Margin": {
				Name:           "Gross Profit Margin",
				Description:    "Revenue retained after direct cost of goods sold",
				Formula:        "(Revenue - COGS) / Revenue * 100",
				Category:       model.CategoryProfitability,
				Unit:           UnitPercent,
				HigherIsBetter: true,
				Benchmarks: map[string]map[model.SizeTier]float64{
					IndustryDefault:       tiers(35, 38, 40),
					IndustryRetail:        tiers(28, 30, 33),
					IndustryConstruction:  tiers(22, 24, 26),
					IndustryManufacturing: tiers(30, 32, 35),
					IndustryProfessional:  tiers(55, 58, 60),
					IndustryHospitality:   tiers(62, 64, 66),
					IndustryHealthcare:    tiers(45, 48, 50),
					IndustryTransport:     tiers(25, 27, 30),
					IndustryAgriculture:   tiers(24, 26, 28),
				},
				Warnings: map[string]float64{
					IndustryDefault:       20,
					IndustryRetail:        18,
					IndustryConstruction:  14,
					IndustryManufacturing: 20,
					IndustryProfessional:  40,
					IndustryHospitality:   50,
					IndustryHealthcare:    32,
					IndustryTransport:     16,
					IndustryAgriculture:   15,
				},
				Interpretation: "Higher margins indicate pricing power and cost control over direct inputs.",
			},
			"Net Profit Margin": {
				Name:           "Net Profit Margin",
				Description:    "Profit remaining after all expenses and tax",
				Formula:        "Net Profit / Revenue * 100",
				Category:       model.CategoryProfitability,
				Unit:           UnitPercent,
				HigherIsBetter: true,
				Benchmarks: map[string]map[model.SizeTier]float64{
					IndustryDefault:       tiers(8, 9, 10),
					IndustryRetail:        tiers(4, 5, 6),
					IndustryConstruction:  tiers(6, 7, 8),
					IndustryManufacturing: tiers(7, 8, 9),
					IndustryProfessional:  tiers(15, 17, 18),
					IndustryHospitality:   tiers(5, 6, 8),
					IndustryHealthcare:    tiers(10, 12, 13),
					IndustryTransport:     tiers(5, 6, 7),
					IndustryAgriculture:   tiers(9, 10, 12),
				},
				Warnings: map[string]float64{
					IndustryDefault:       2,
					IndustryRetail:        1.5,
					IndustryConstruction:  2,
					IndustryManufacturing: 2.5,
					IndustryProfessional:  6,
					IndustryHospitality:   1.5,
					IndustryHealthcare:    4,
					IndustryTransport:     1.5,
					IndustryAgriculture:   3,
				},
				Interpretation: "The bottom-line test of whether the business model works after every cost.",
			},
			"Return on Assets": {
				Name:           "Return on Assets",
				Description:    "Profit generated per dollar of assets employed",
				Formula:        "Net Profit / Total Assets * 100",
				Category:       model.CategoryProfitability,
				Unit:           UnitPercent,
				HigherIsBetter: true,
				Benchmarks: map[string]map[model.SizeTier]float64{
					IndustryDefault:       tiers(8, 9, 10),
					IndustryRetail:        tiers(9, 10, 11),
					IndustryConstruction:  tiers(10, 11, 12),
					IndustryManufacturing: tiers(7, 8, 9),
					IndustryProfessional:  tiers(14, 15, 16),
					IndustryHospitality:   tiers(6, 7, 8),
					IndustryHealthcare:    tiers(9, 10, 12),
					IndustryTransport:     tiers(5, 6, 7),
					IndustryAgriculture:   tiers(4, 5, 6),
				},
				Warnings: map[string]float64{
					IndustryDefault:       3,
					IndustryRetail:        4,
					IndustryConstruction:  4,
					IndustryManufacturing: 3,
					IndustryProfessional:  6,
					IndustryHospitality:   2,
					IndustryHealthcare:    4,
					IndustryTransport:     2,
					IndustryAgriculture:   1.5,
				},
				Interpretation: "Measures how productively the asset base is being used.",
			},
			"Return on Equity": {
				Name:           "Return on Equity",
				Description:    "Profit generated per dollar of owner equity",
				Formula:        "Net Profit / Shareholder Equity * 100",
				Category:       model.CategoryProfitability,
				Unit:           UnitPercent,
				HigherIsBetter: true,
				Benchmarks: map[string]map[model.SizeTier]float64{
					IndustryDefault:       tiers(15, 16, 18),
					IndustryRetail:        tiers(16, 17, 18),
					IndustryConstruction:  tiers(18, 19, 20),
					IndustryManufacturing: tiers(14, 15, 16),
					IndustryProfessional:  tiers(22, 24, 25),
					IndustryHospitality:   tiers(12, 13, 15),
					IndustryHealthcare:    tiers(16, 18, 20),
					IndustryTransport:     tiers(12, 13, 14),
					IndustryAgriculture:   tiers(8, 9, 10),
				},
				Warnings: map[string]float64{
					IndustryDefault:       6,
					IndustryRetail:        7,
					IndustryConstruction:  8,
					IndustryManufacturing: 6,
					IndustryProfessional:  10,
					IndustryHospitality:   5,
					IndustryHealthcare:    7,
					IndustryTransport:     5,
					IndustryAgriculture:   3,
				},
				Interpretation: "What the owners earn on their stake compared with alternative uses of capital.",
			},
			"Current Ratio": {
				Name:           "Current Ratio",
				Description:    "Ability to cover short-term obligations with current assets",
				Formula:        "Current Assets / Current Liabilities",
				Category:       model.CategoryLiquidity,
				Unit:           UnitRatio,
				HigherIsBetter: true,
				Benchmarks: map[string]map[model.SizeTier]float64{
					IndustryDefault:       tiers(1.5, 1.6, 1.7),
					IndustryRetail:        tiers(1.8, 1.9, 2.0),
					IndustryConstruction:  tiers(1.4, 1.5, 1.6),
					IndustryManufacturing: tiers(1.7, 1.8, 1.9),
					IndustryProfessional:  tiers(1.6, 1.7, 1.8),
					IndustryHospitality:   tiers(1.0, 1.1, 1.2),
					IndustryHealthcare:    tiers(1.5, 1.6, 1.7),
					IndustryTransport:     tiers(1.3, 1.4, 1.5),
					IndustryAgriculture:   tiers(1.6, 1.7, 1.8),
				},
				Warnings: map[string]float64{
					IndustryDefault:       1.0,
					IndustryRetail:        1.2,
					IndustryConstruction:  1.0,
					IndustryManufacturing: 1.1,
					IndustryProfessional:  1.1,
					IndustryHospitality:   0.7,
					IndustryHealthcare:    1.0,
					IndustryTransport:     0.9,
					IndustryAgriculture:   1.0,
				},
				Interpretation: "Below 1.0 the business cannot pay its bills from current assets alone.",
			},
			"Quick Ratio": {
				Name:           "Quick Ratio",
				Description:    "Liquidity excluding inventory, the least liquid current asset",
				Formula:        "(Current Assets - Inventory) / Current Liabilities",
				Category:       model.CategoryLiquidity,
				Unit:           UnitRatio,
				HigherIsBetter: true,
				Benchmarks: map[string]map[model.SizeTier]float64{
					IndustryDefault:       tiers(1.0, 1.1, 1.2),
					IndustryRetail:        tiers(0.8, 0.9, 1.0),
					IndustryConstruction:  tiers(1.1, 1.2, 1.3),
					IndustryManufacturing: tiers(1.0, 1.1, 1.2),
					IndustryProfessional:  tiers(1.4, 1.5, 1.6),
					IndustryHospitality:   tiers(0.7, 0.8, 0.9),
					IndustryHealthcare:    tiers(1.2, 1.3, 1.4),
					IndustryTransport:     tiers(1.0, 1.1, 1.2),
					IndustryAgriculture:   tiers(0.9, 1.0, 1.1),
				},
				Warnings: map[string]float64{
					IndustryDefault:       0.6,
					IndustryRetail:        0.5,
					IndustryConstruction:  0.7,
					IndustryManufacturing: 0.6,
					IndustryProfessional:  0.9,
					IndustryHospitality:   0.4,
					IndustryHealthcare:    0.8,
					IndustryTransport:     0.6,
					IndustryAgriculture:   0.5,
				},
				Interpretation: "Stress-tests liquidity for businesses whose stock moves slowly.",
			},
			"Cash Ratio": {
				Name:           "Cash Ratio",
				Description:    "Immediate liquidity from cash and equivalents only",
				Formula:        "Cash and Equivalents / Current Liabilities",
				Category:       model.CategoryLiquidity,
				Unit:           UnitRatio,
				HigherIsBetter: true,
				Benchmarks: map[string]map[model.SizeTier]float64{
					IndustryDefault:      tiers(0.4, 0.45, 0.5),
					IndustryRetail:       tiers(0.3, 0.35, 0.4),
					IndustryHospitality:  tiers(0.25, 0.3, 0.35),
					IndustryProfessional: tiers(0.6, 0.65, 0.7),
				},
				Warnings: map[string]float64{
					IndustryDefault:      0.15,
					IndustryRetail:       0.1,
					IndustryHospitality:  0.1,
					IndustryProfessional: 0.25,
				},
				Interpretation: "The last line of defence when receivables slow down.",
			},
			"Debt-to-Equity Ratio": {
				Name:           "Debt-to-Equity Ratio",
				Description:    "Borrowed funds relative to owner funds",
				Formula:        "Total Liabilities / Shareholder Equity",
				Category:       model.CategoryLeverage,
				Unit:           UnitRatio,
				HigherIsBetter: false,
				Benchmarks: map[string]map[model.SizeTier]float64{
					IndustryDefault:       tiers(1.0, 1.1, 1.2),
					IndustryRetail:        tiers(0.9, 1.0, 1.1),
					IndustryConstruction:  tiers(1.3, 1.4, 1.5),
					IndustryManufacturing: tiers(1.1, 1.2, 1.3),
					IndustryProfessional:  tiers(0.6, 0.7, 0.8),
					IndustryHospitality:   tiers(1.4, 1.5, 1.6),
					IndustryHealthcare:    tiers(0.8, 0.9, 1.0),
					IndustryTransport:     tiers(1.5, 1.6, 1.7),
					IndustryAgriculture:   tiers(0.7, 0.8, 0.9),
				},
				Warnings: map[string]float64{
					IndustryDefault:       2.0,
					IndustryRetail:        1.8,
					IndustryConstruction:  2.5,
					IndustryManufacturing: 2.2,
					IndustryProfessional:  1.5,
					IndustryHospitality:   2.8,
					IndustryHealthcare:    1.8,
					IndustryTransport:     3.0,
					IndustryAgriculture:   1.6,
				},
				Interpretation: "Lower is better; heavy gearing magnifies downturns.",
			},
			"Debt Ratio": {
				Name:           "Debt Ratio",
				Description:    "Share of assets funded by debt",
				Formula:        "Total Liabilities / Total Assets",
				Category:       model.CategoryLeverage,
				Unit:           UnitRatio,
				HigherIsBetter: false,
				Benchmarks: map[string]map[model.SizeTier]float64{
					IndustryDefault:      tiers(0.5, 0.52, 0.55),
					IndustryRetail:       tiers(0.45, 0.48, 0.5),
					IndustryConstruction: tiers(0.55, 0.58, 0.6),
					IndustryProfessional: tiers(0.35, 0.38, 0.4),
					IndustryTransport:    tiers(0.6, 0.62, 0.65),
				},
				Warnings: map[string]float64{
					IndustryDefault:      0.75,
					IndustryRetail:       0.7,
					IndustryConstruction: 0.8,
					IndustryProfessional: 0.6,
					IndustryTransport:    0.85,
				},
				Interpretation: "Lower is better; above the warning level the balance sheet is fragile.",
			},
			"Interest Coverage Ratio": {
				Name:           "Interest Coverage Ratio",
				Description:    "Ability to service interest from operating earnings",
				Formula:        "EBIT / Interest Expense",
				Category:       model.CategoryLeverage,
				Unit:           UnitRatio,
				HigherIsBetter: true,
				Benchmarks: map[string]map[model.SizeTier]float64{
					IndustryDefault:      tiers(4.0, 4.5, 5.0),
					IndustryRetail:       tiers(4.5, 5.0, 5.5),
					IndustryConstruction: tiers(3.5, 4.0, 4.5),
					IndustryProfessional: tiers(6.0, 6.5, 7.0),
					IndustryTransport:    tiers(3.0, 3.5, 4.0),
				},
				Warnings: map[string]float64{
					IndustryDefault:      1.5,
					IndustryRetail:       1.8,
					IndustryConstruction: 1.5,
					IndustryProfessional: 2.5,
					IndustryTransport:    1.2,
				},
				Interpretation: "Below 1.5 a single soft quarter can trigger covenant breaches.",
			},
			"Asset Turnover": {
				Name:           "Asset Turnover",
				Description:    "Revenue generated per dollar of assets",
				Formula:        "Revenue / Total Assets",
				Category:       model.CategoryEfficiency,
				Unit:           UnitRatio,
				HigherIsBetter: true,
				Benchmarks: map[string]map[model.SizeTier]float64{
					IndustryDefault:       tiers(1.2, 1.3, 1.4),
					IndustryRetail:        tiers(2.2, 2.3, 2.4),
					IndustryConstruction:  tiers(1.6, 1.7, 1.8),
					IndustryManufacturing: tiers(1.0, 1.1, 1.2),
					IndustryProfessional:  tiers(1.4, 1.5, 1.6),
					IndustryHospitality:   tiers(1.8, 1.9, 2.0),
					IndustryHealthcare:    tiers(1.1, 1.2, 1.3),
					IndustryTransport:     tiers(0.9, 1.0, 1.1),
					IndustryAgriculture:   tiers(0.5, 0.55, 0.6),
				},
				Warnings: map[string]float64{
					IndustryDefault:       0.6,
					IndustryRetail:        1.2,
					IndustryConstruction:  0.9,
					IndustryManufacturing: 0.5,
					IndustryProfessional:  0.7,
					IndustryHospitality:   1.0,
					IndustryHealthcare:    0.6,
					IndustryTransport:     0.5,
					IndustryAgriculture:   0.25,
				},
				Interpretation: "Low turnover means capital is parked in assets that are not earning.",
			},
			"Inventory Turnover": {
				Name:           "Inventory Turnover",
				Description:    "How many times stock is sold through per year",
				Formula:        "COGS / Average Inventory",
				Category:       model.CategoryEfficiency,
				Unit:           UnitRatio,
				HigherIsBetter: true,
				Benchmarks: map[string]map[model.SizeTier]float64{
					IndustryDefault:       tiers(6, 6.5, 7),
					IndustryRetail:        tiers(8, 8.5, 9),
					IndustryManufacturing: tiers(5, 5.5, 6),
					IndustryHospitality:   tiers(20, 22, 24),
					IndustryAgriculture:   tiers(4, 4.5, 5),
				},
				Warnings: map[string]float64{
					IndustryDefault:       3,
					IndustryRetail:        4,
					IndustryManufacturing: 2.5,
					IndustryHospitality:   10,
					IndustryAgriculture:   2,
				},
				Interpretation: "Slow turnover ties up cash and risks obsolete stock write-downs.",
			},
			"Receivables Turnover": {
				Name:           "Receivables Turnover",
				Description:    "How quickly customers pay their invoices",
				Formula:        "Revenue / Average Accounts Receivable",
				Category:       model.CategoryEfficiency,
				Unit:           UnitRatio,
				HigherIsBetter: true,
				Benchmarks: map[string]map[model.SizeTier]float64{
					IndustryDefault:      tiers(9, 9.5, 10),
					IndustryRetail:       tiers(30, 32, 35),
					IndustryConstruction: tiers(6, 6.5, 7),
					IndustryProfessional: tiers(7, 7.5, 8),
					IndustryTransport:    tiers(8, 8.5, 9),
				},
				Warnings: map[string]float64{
					IndustryDefault:      5,
					IndustryRetail:       15,
					IndustryConstruction: 3.5,
					IndustryProfessional: 4,
					IndustryTransport:    4.5,
				},
				Interpretation: "Falling turnover usually precedes a cash-flow squeeze by a quarter or two.",
			},
		},

		CategoryWeights: map[model.Category]float64{
			model.CategoryProfitability: 0.35,
			model.CategoryLiquidity:     0.25,
			model.CategoryLeverage:      0.20,
			model.CategoryEfficiency:    0.20,
		},

		MetricWeights: map[string]float64{
			"Gross Profit Margin": 0.25,
			"Net Profit Margin":   0.35,
			"Return on Assets":    0.20,
			"Return on Equity":    0.20,

			"Current Ratio": 0.50,
			"Quick Ratio":   0.30,
			"Cash Ratio":    0.20,

			"Debt-to-Equity Ratio":    0.40,
			"Debt Ratio":              0.30,
			"Interest Coverage Ratio": 0.30,

			"Asset Turnover":       0.40,
			"Inventory Turnover":   0.30,
			"Receivables Turnover": 0.30,
		},

		OverallBands: []ScoreBand{
			{Low: 0, High: 30, Text: "Critical financial position. Multiple indicators are well below industry warning levels and immediate corrective action is needed."},
			{Low: 30, High: 50, Text: "Weak financial health. The business is under strain and several ratios sit below industry warning thresholds."},
			{Low: 50, High: 70, Text: "Adequate financial health. The business is stable but trails industry benchmarks in places."},
			{Low: 70, High: 85, Text: "Good financial health. Most indicators meet or exceed industry benchmarks."},
			{Low: 85, High: 100, Text: "Excellent financial health. The business outperforms its industry benchmarks across the board."},
		},

		CategoryBands:      defaultCategoryBands(),
		Templates:          defaultTemplates(),
		IndustryDifficulty: map[string]float64{
			IndustryRetail:        1.05,
			IndustryConstruction:  1.10,
			IndustryManufacturing: 1.00,
			IndustryProfessional:  0.90,
			IndustryHospitality:   1.15,
			IndustryHealthcare:    0.95,
			IndustryTransport:     1.10,
			IndustryAgriculture:   1.20,
		},
		MetricVolatility: map[string]float64{
			"Gross Profit Margin":     1.00,
			"Net Profit Margin":       1.20,
			"Return on Assets":        1.10,
			"Return on Equity":        1.25,
			"Current Ratio":           1.00,
			"Quick Ratio":             1.05,
			"Cash Ratio":              1.30,
			"Debt-to-Equity Ratio":    1.10,
			"Debt Ratio":              1.00,
			"Interest Coverage Ratio": 1.35,
			"Asset Turnover":          1.00,
			"Inventory Turnover":      1.15,
			"Receivables Turnover":    1.10,
		},
		IndustryMedians: map[string]float64{
			IndustryRetail:        61.0,
			IndustryConstruction:  60.0,
			IndustryManufacturing: 62.5,
			IndustryProfessional:  66.0,
			IndustryHospitality:   58.0,
			IndustryHealthcare:    64.0,
			IndustryTransport:     59.5,
			IndustryAgriculture:   57.0,
		},
		DefaultMedian: 62.5,

		Heuristics: ImpactHeuristics{
			RatioBumpMin:  0.05,
			RatioBumpMax:  0.15,
			MarginBumpMin: 1,
			MarginBumpMax: 6,
		},
	}
	return c
}

func defaultCategoryBands() map[model.Category][]ScoreBand {
	return map[model.Category][]ScoreBand{
		model.CategoryProfitability: {
			{Low: 0, High: 30, Text: "Profitability is critically low; the business is likely trading at or near a loss.",
				Suggestions: []string{
					"Reprice loss-making products or discontinue them",
					"Review supplier contracts and cost of goods line by line",
					"Cut discretionary overhead before it forces distressed decisions",
				}},
			{Low: 30, High: 50, Text: "Profitability is weak relative to industry peers.",
				Suggestions: []string{
					"Introduce margin reporting by product and customer",
					"Lift prices on inelastic lines and track churn",
					"Renegotiate top-five supplier agreements",
				}},
			{Low: 50, High: 70, Text: "Profitability is adequate but below the benchmark for the industry.",
				Suggestions: []string{
					"Shift sales mix toward higher-margin offerings",
					"Automate the highest-cost manual processes",
				}},
			{Low: 70, High: 85, Text: "Profitability is good and close to or above industry benchmarks.",
				Suggestions: []string{
					"Protect margin with annual price indexation",
					"Reinvest surplus into the highest-return category",
				}},
			{Low: 85, High: 100, Text: "Profitability is excellent for the industry.",
				Suggestions: []string{
					"Document the margin playbook so it survives staff turnover",
				}},
		},
		model.CategoryLiquidity: {
			{Low: 0, High: 30, Text: "Liquidity is critical; the business may be unable to meet obligations as they fall due.",
				Suggestions: []string{
					"Prepare a 13-week cash-flow forecast immediately",
					"Negotiate payment plans with the ATO and major creditors",
					"Convert slow stock and aged receivables to cash at a discount if needed",
				}},
			{Low: 30, High: 50, Text: "Liquidity is strained and leaves little buffer for shocks.",
				Suggestions: []string{
					"Tighten debtor terms and enforce them",
					"Arrange a working-capital facility before it is needed",
					"Stagger supplier payments to smooth the cash cycle",
				}},
			{Low: 50, High: 70, Text: "Liquidity is workable but below the comfort level for the industry.",
				Suggestions: []string{
					"Target a current ratio at or above the industry benchmark",
					"Reduce inventory holdings toward the industry turn rate",
				}},
			{Low: 70, High: 85, Text: "Liquidity is sound with a reasonable buffer.",
				Suggestions: []string{
					"Put surplus cash on term deposit laddered to obligations",
				}},
			{Low: 85, High: 100, Text: "Liquidity is excellent; short-term obligations are comfortably covered.",
				Suggestions: []string{
					"Consider whether excess cash should fund growth or be returned to owners",
				}},
		},
		model.CategoryLeverage: {
			{Low: 0, High: 30, Text: "Leverage is dangerous; debt service is consuming the business.",
				Suggestions: []string{
					"Open restructuring discussions with lenders early",
					"Sell non-core assets to retire the most expensive debt",
					"Suspend owner drawings until coverage recovers",
				}},
			{Low: 30, High: 50, Text: "Leverage is high and the balance sheet has limited headroom.",
				Suggestions: []string{
					"Refinance short-term debt into longer maturities",
					"Set a debt-reduction target tied to free cash flow",
				}},
			{Low: 50, High: 70, Text: "Leverage is manageable but above the comfortable range.",
				Suggestions: []string{
					"Direct a fixed share of profit to principal reduction",
					"Avoid new borrowings for depreciating assets",
				}},
			{Low: 70, High: 85, Text: "Leverage is conservative and debt service is well covered.",
				Suggestions: []string{
					"Review whether cheap debt could fund expansion at current coverage",
				}},
			{Low: 85, High: 100, Text: "Leverage is minimal; the balance sheet is very strong.",
				Suggestions: []string{
					"Ensure the capital structure is not overly conservative for growth plans",
				}},
		},
		model.CategoryEfficiency: {
			{Low: 0, High: 30, Text: "Asset and working-capital efficiency is critically poor.",
				Suggestions: []string{
					"Run a full stock-take and write off dead inventory",
					"Chase receivables older than 60 days this week",
					"Dispose of idle plant and equipment",
				}},
			{Low: 30, High: 50, Text: "Efficiency is weak; capital is tied up unproductively.",
				Suggestions: []string{
					"Move to invoice-on-delivery and automated payment reminders",
					"Introduce reorder points to cap stock holdings",
				}},
			{Low: 50, High: 70, Text: "Efficiency is below the industry benchmark but functional.",
				Suggestions: []string{
					"Benchmark stock turns quarterly against the industry rate",
					"Offer small early-payment discounts to large debtors",
				}},
			{Low: 70, High: 85, Text: "Efficiency is good; assets are working close to industry best practice.",
				Suggestions: []string{
					"Hold the debtor-days discipline as the business scales",
				}},
			{Low: 85, High: 100, Text: "Efficiency is excellent across inventory, receivables and assets.",
				Suggestions: []string{
					"Share the working-capital routines with any newly acquired units",
				}},
		},
	}
}
