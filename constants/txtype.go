package constants

// TxType is the canonical transaction direction.
type TxType string

// Stable values (store these exact strings in DB).
const (
	TxTypeExpense TxType = "expense"
	TxTypeIncome  TxType = "income"
)
