package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/rodrigordgfs/CashWise-API/internal/domain/transaction"
	appErrors "github.com/rodrigordgfs/CashWise-API/internal/errors"
	"github.com/rodrigordgfs/CashWise-API/internal/pkg"
)

// monthShort são as abreviações de mês em pt-BR usadas nos rótulos de
// relatório.
var monthShort = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

func monthLabel(month time.Month, year int) string {
	return fmt.Sprintf("%s/%d", monthShort[month-1], year)
}

type monthKey struct {
	year  int
	month time.Month
}

// buildMonthly agrupa as transações por mês/ano e soma receitas e despesas
// separadamente. Os buckets saem em ordem cronológica, independente da ordem
// de entrada. Uma transação com data zerada indica dado corrompido e falha a
// operação inteira.
func buildMonthly(transactions []*transaction.Transaction) ([]*MonthlyReport, error) {
	type bucket struct {
		income  float64
		expense float64
	}
	buckets := make(map[monthKey]*bucket)

	for _, t := range transactions {
		if t.Date.IsZero() {
			return nil, appErrors.ErrDataIntegrity
		}
		key := monthKey{year: t.Date.Year(), month: t.Date.Month()}
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		switch t.Type {
		case transaction.Income:
			b.income += t.Amount
		case transaction.Expense:
			b.expense += t.Amount
		}
	}

	keys := make([]monthKey, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	reports := make([]*MonthlyReport, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		reports = append(reports, &MonthlyReport{
			Name:    monthLabel(key.month, key.year),
			Income:  pkg.Round2(b.income),
			Expense: pkg.Round2(b.expense),
		})
	}
	return reports, nil
}

// buildBalance agrupa por mês do calendário descartando o ano: transações de
// anos diferentes no mesmo mês colidem no mesmo bucket. Limitação conhecida,
// herdada do formato do gráfico de saldo. A saída segue a ordem fixa
// Jan..Dez, apenas com os meses presentes.
func buildBalance(transactions []*transaction.Transaction) ([]*BalanceReport, error) {
	balances := make(map[time.Month]float64)
	present := make(map[time.Month]bool)

	for _, t := range transactions {
		if t.Date.IsZero() {
			return nil, appErrors.ErrDataIntegrity
		}
		month := t.Date.Month()
		present[month] = true
		switch t.Type {
		case transaction.Income:
			balances[month] += t.Amount
		case transaction.Expense:
			balances[month] -= t.Amount
		}
	}

	reports := make([]*BalanceReport, 0, len(present))
	for month := time.January; month <= time.December; month++ {
		if !present[month] {
			continue
		}
		reports = append(reports, &BalanceReport{
			Name:    monthShort[month-1],
			Balance: pkg.Round2(balances[month]),
		})
	}
	return reports, nil
}

// buildSummary reduz o intervalo inteiro a um único agregado. O saldo é
// calculado sobre os totais já arredondados, mantendo income − expense ==
// balance em duas casas.
func buildSummary(transactions []*transaction.Transaction) (*SummaryReport, error) {
	var income, expense float64
	for _, t := range transactions {
		if t.Date.IsZero() {
			return nil, appErrors.ErrDataIntegrity
		}
		switch t.Type {
		case transaction.Income:
			income += t.Amount
		case transaction.Expense:
			expense += t.Amount
		}
	}

	summary := &SummaryReport{
		Income:  pkg.Round2(income),
		Expense: pkg.Round2(expense),
	}
	summary.Balance = pkg.Round2(summary.Income - summary.Expense)
	return summary, nil
}

// buildCategories agrega o gasto por categoria somando apenas as despesas;
// receitas na mesma categoria são ignoradas. Categorias sem gasto são
// descartadas. A saída ordena por valor decrescente (nome como desempate) e
// trunca em limit quando limit > 0.
func buildCategories(groups []*CategoryTransactions, limit int) ([]*CategoryReport, error) {
	reports := make([]*CategoryReport, 0, len(groups))

	for _, group := range groups {
		var spent float64
		for _, t := range group.Transactions {
			if t.Date.IsZero() {
				return nil, appErrors.ErrDataIntegrity
			}
			if t.Type == transaction.Expense {
				spent += t.Amount
			}
		}

		value := pkg.Round2(spent)
		if value <= 0 {
			continue
		}
		reports = append(reports, &CategoryReport{
			Name:  group.Name,
			Value: value,
			Fill:  group.Color,
		})
	}

	sort.Slice(reports, func(i, j int) bool {
		if reports[i].Value != reports[j].Value {
			return reports[i].Value > reports[j].Value
		}
		return reports[i].Name < reports[j].Name
	})

	if limit > 0 && len(reports) > limit {
		reports = reports[:limit]
	}
	return reports, nil
}
