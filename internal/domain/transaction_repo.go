package domain

type TransactionRepository interface {
	CreateTransaction(trx *Transaction) error
	GetTransactionByRefID(refID string) (*Transaction, error)
	UpdateTransactionStatus(refID string, update StatusUpdate) error
}
