package domain

// DefaultChart is the seeded chart of accounts. Codes follow the plan
// contable general; labels keep the names the business side uses.
var DefaultChart = []Account{
	// Assets (1xx, 2xx)
	{Code: "101", Label: "Caja y Bancos", Classification: ClassAsset},
	{Code: "121", Label: "Cuentas por Cobrar", Classification: ClassAsset},
	{Code: "167", Label: "IGV Crédito Fiscal", Classification: ClassAsset},
	{Code: "201", Label: "Mercaderías", Classification: ClassAsset},

	// Liabilities (4xx)
	{Code: "401", Label: "IGV por Pagar", Classification: ClassLiability},
	{Code: "421", Label: "Cuentas por Pagar", Classification: ClassLiability},
	{Code: "451", Label: "Préstamos Bancarios", Classification: ClassLiability},

	// Equity (5xx)
	{Code: "501", Label: "Capital Social", Classification: ClassEquity},
	{Code: "591", Label: "Resultados Acumulados", Classification: ClassEquity},

	// Income (7xx)
	{Code: "701", Label: "Ventas", Classification: ClassIncome},
	{Code: "759", Label: "Otros Ingresos", Classification: ClassIncome},

	// Expenses (6xx)
	{Code: "601", Label: "Compras", Classification: ClassExpense},
	{Code: "621", Label: "Gastos de Personal", Classification: ClassExpense},
	{Code: "636", Label: "Servicios Básicos", Classification: ClassExpense},
}

// DefaultRegistry returns a registry over DefaultChart.
func DefaultRegistry() *Registry {
	return NewRegistry(DefaultChart)
}
