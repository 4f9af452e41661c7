// Package accounting holds the pure aggregation logic shared by services:
// signed-amount arithmetic, balance accumulation and the per-cycle groupings
// behind the summary dashboard. Everything here operates on already-fetched
// data and keeps all arithmetic in fixed-point decimals; rounding for display
// happens only where a series value is emitted.
package accounting

import (
	"sort"
	"time"

	"github.com/SscSPs/household_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount applies the sign convention to a transaction's stored positive
// amount: positive for income categories, negative otherwise. A transaction
// whose category cannot be resolved counts as an expense.
func SignedAmount(txn domain.Transaction, categories map[string]domain.Category) decimal.Decimal {
	if cat, ok := categories[txn.CategoryID]; ok && cat.Type == domain.CategoryTypeIncome {
		return txn.Amount
	}
	return txn.Amount.Neg()
}

// Totals partitions transactions by category type and sums each partition.
// The invariant Balance == Income - Expense holds exactly.
func Totals(txns []domain.Transaction, categories map[string]domain.Category) domain.CycleTotals {
	income, expense := decimal.Zero, decimal.Zero
	for _, txn := range txns {
		if cat, ok := categories[txn.CategoryID]; ok && cat.Type == domain.CategoryTypeIncome {
			income = income.Add(txn.Amount)
		} else {
			expense = expense.Add(txn.Amount)
		}
	}
	return domain.CycleTotals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

// AccountBalances computes the current balance of every account: initial
// balance plus the signed sum of all its transactions. The transaction slice
// must span the full history, not just one cycle. Results follow the order
// of the accounts slice.
func AccountBalances(accounts []domain.Account, txns []domain.Transaction, categories map[string]domain.Category) []domain.AccountBalance {
	sums := make(map[string]decimal.Decimal, len(accounts))
	for _, txn := range txns {
		sums[txn.AccountID] = sums[txn.AccountID].Add(SignedAmount(txn, categories))
	}

	balances := make([]domain.AccountBalance, len(accounts))
	for i, acc := range accounts {
		balances[i] = domain.AccountBalance{
			Account: acc,
			Balance: acc.InitialBalance.Add(sums[acc.AccountID]),
		}
	}
	return balances
}

// CategoryTotals groups transactions by (category name, type) and sums the
// stored amounts. Transactions with an unresolvable category bucket under
// the sentinel name as expenses. Rows are ordered by name, income first on
// equal names, so repeated runs over the same data are identical.
func CategoryTotals(txns []domain.Transaction, categories map[string]domain.Category) []domain.CategoryTotal {
	type key struct {
		name string
		typ  domain.CategoryType
	}
	totals := make(map[key]decimal.Decimal)
	for _, txn := range txns {
		k := key{name: domain.UncategorizedName, typ: domain.CategoryTypeExpense}
		if cat, ok := categories[txn.CategoryID]; ok {
			k = key{name: cat.Name, typ: cat.Type}
		}
		totals[k] = totals[k].Add(txn.Amount)
	}

	rows := make([]domain.CategoryTotal, 0, len(totals))
	for k, total := range totals {
		rows = append(rows, domain.CategoryTotal{Name: k.name, Type: k.typ, Total: total})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Name != rows[j].Name {
			return rows[i].Name < rows[j].Name
		}
		return rows[i].Type == domain.CategoryTypeIncome && rows[j].Type != domain.CategoryTypeIncome
	})
	return rows
}

// ExpenseRanking groups expense transactions by category and sorts the sums
// in descending order. Equal totals fall back to name order so the ranking
// is stable across recomputations.
func ExpenseRanking(txns []domain.Transaction, categories map[string]domain.Category) []domain.CategoryAmount {
	totals := spentByCategory(txns, categories)

	ranking := make([]domain.CategoryAmount, 0, len(totals))
	for categoryID, total := range totals {
		ranking = append(ranking, domain.CategoryAmount{
			CategoryID: categoryID,
			Name:       categories[categoryID].Name,
			Total:      total,
		})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if !ranking[i].Total.Equal(ranking[j].Total) {
			return ranking[i].Total.GreaterThan(ranking[j].Total)
		}
		return ranking[i].Name < ranking[j].Name
	})
	return ranking
}

// BudgetVsActual pairs planned amounts from a cycle's budget lines with the
// actual spend per category in the same cycle. Only expense categories carry
// plans; the reported set is the union of categories having either a plan or
// a spend, ordered by category name.
func BudgetVsActual(lines []domain.BudgetLine, txns []domain.Transaction, categories map[string]domain.Category) []domain.BudgetComparison {
	planned := make(map[string]decimal.Decimal, len(lines))
	for _, line := range lines {
		if cat, ok := categories[line.CategoryID]; ok && cat.Type == domain.CategoryTypeExpense {
			planned[line.CategoryID] = line.Amount
		}
	}
	actual := spentByCategory(txns, categories)

	seen := make(map[string]bool, len(planned)+len(actual))
	rows := make([]domain.BudgetComparison, 0, len(planned)+len(actual))
	for categoryID := range planned {
		seen[categoryID] = true
		rows = append(rows, domain.BudgetComparison{
			CategoryID: categoryID,
			Name:       categories[categoryID].Name,
			Planned:    planned[categoryID],
			Actual:     actual[categoryID],
		})
	}
	for categoryID, spent := range actual {
		if seen[categoryID] {
			continue
		}
		rows = append(rows, domain.BudgetComparison{
			CategoryID: categoryID,
			Name:       categories[categoryID].Name,
			Planned:    decimal.Zero,
			Actual:     spent,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

// DailySeries produces one point per day of [start, end): that day's income
// and expense sums plus the running cumulative totals. Every emitted value is
// rounded to two decimal places; the accumulation itself stays in decimals so
// the cumulative series never drifts.
func DailySeries(start, end time.Time, txns []domain.Transaction, categories map[string]domain.Category) []domain.DailyPoint {
	days := int(end.Sub(start).Hours() / 24)
	income := make([]decimal.Decimal, days)
	expense := make([]decimal.Decimal, days)
	for _, txn := range txns {
		idx := int(txn.Date.Sub(start).Hours() / 24)
		if idx < 0 || idx >= days {
			continue
		}
		if cat, ok := categories[txn.CategoryID]; ok && cat.Type == domain.CategoryTypeIncome {
			income[idx] = income[idx].Add(txn.Amount)
		} else {
			expense[idx] = expense[idx].Add(txn.Amount)
		}
	}

	series := make([]domain.DailyPoint, days)
	cumIncome, cumExpense := decimal.Zero, decimal.Zero
	for i := 0; i < days; i++ {
		cumIncome = cumIncome.Add(income[i])
		cumExpense = cumExpense.Add(expense[i])
		series[i] = domain.DailyPoint{
			Date:              start.AddDate(0, 0, i),
			Income:            income[i].Round(2),
			Expense:           expense[i].Round(2),
			CumulativeIncome:  cumIncome.Round(2),
			CumulativeExpense: cumExpense.Round(2),
		}
	}
	return series
}

// spentByCategory sums expense transactions per category ID.
func spentByCategory(txns []domain.Transaction, categories map[string]domain.Category) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, txn := range txns {
		if cat, ok := categories[txn.CategoryID]; ok && cat.Type == domain.CategoryTypeExpense {
			totals[txn.CategoryID] = totals[txn.CategoryID].Add(txn.Amount)
		}
	}
	return totals
}
