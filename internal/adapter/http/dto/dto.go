// Package dto defines the HTTP request and response shapes.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"agenin-transaction/internal/core/domain"
	"agenin-transaction/internal/core/ports"
)

// InquiryRequest is the body of POST /api/v1/transaction/mock-open-bank-account.
type InquiryRequest struct {
	CustomerName           string `json:"customerName" binding:"required,max=255"`
	CustomerIdentityNumber string `json:"customerIdentityNumber" binding:"required,max=32"`
	CustomerPhoneNumber    string `json:"customerPhoneNumber" binding:"required,max=20"`
	CustomerEmail          string `json:"customerEmail" binding:"required,email"`
	CustomerAddress        string `json:"customerAddress" binding:"required,max=500"`
}

// ToPort converts the request body to the service-layer shape.
func (r InquiryRequest) ToPort() ports.InquiryRequest {
	return ports.InquiryRequest{
		CustomerName:           r.CustomerName,
		CustomerIdentityNumber: r.CustomerIdentityNumber,
		CustomerPhoneNumber:    r.CustomerPhoneNumber,
		CustomerEmail:          r.CustomerEmail,
		CustomerAddress:        r.CustomerAddress,
	}
}

// TransferRequest is the body of PATCH /api/v1/transaction/transfer-to-wallet.
type TransferRequest struct {
	AmountToWallet decimal.Decimal `json:"amountToWallet" binding:"required"`
	PIN            string          `json:"pin" binding:"required,min=6,max=6"`
}

// TransactionResponse is the wire form of a persisted transaction.
type TransactionResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"transactionCode"`
	ProductName  string          `json:"productName"`
	ProductPrice decimal.Decimal `json:"productPrice"`
	Date         time.Time       `json:"transactionDate"`
	Status       string          `json:"status"`
}

// BankAccountResponse is the wire form of captured customer details.
type BankAccountResponse struct {
	CustomerName           string `json:"customerName"`
	CustomerIdentityNumber string `json:"customerIdentityNumber"`
	CustomerPhoneNumber    string `json:"customerPhoneNumber"`
	CustomerEmail          string `json:"customerEmail"`
	CustomerAddress        string `json:"customerAddress"`
}

// InquiryResponse pairs the transaction with the bank account detail.
type InquiryResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	BankAccount BankAccountResponse `json:"bankAccount"`
}

// CustomerResponse is one row of GET /api/v1/transaction/customers.
type CustomerResponse struct {
	Transaction TransactionResponse  `json:"transaction"`
	BankAccount *BankAccountResponse `json:"bankAccount,omitempty"`
}

// ProductResponse is one row of GET /api/v1/transaction/products.
type ProductResponse struct {
	ID              string          `json:"id"`
	Code            string          `json:"productCode"`
	Name            string          `json:"productName"`
	Price           decimal.Decimal `json:"productPrice"`
	CommissionValue decimal.Decimal `json:"commissionValue"`
}

// TransferResponse reports the ledger state around a transfer.
type TransferResponse struct {
	BalanceBefore decimal.Decimal `json:"balanceBefore"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`
	WalletBefore  decimal.Decimal `json:"walletBefore"`
	WalletAfter   decimal.Decimal `json:"walletAfter"`
}

// BalanceAndWalletResponse is the combined funds view.
type BalanceAndWalletResponse struct {
	BalanceAmount decimal.Decimal `json:"balanceAmount"`
	WalletAmount  decimal.Decimal `json:"walletAmount"`
}

// FromTransaction converts a domain transaction.
func FromTransaction(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           txn.ID.String(),
		Code:         txn.Code,
		ProductName:  txn.ProductName,
		ProductPrice: txn.ProductPrice,
		Date:         txn.Date,
		Status:       string(txn.Status),
	}
}

// FromBankAccount converts a domain bank account detail.
func FromBankAccount(detail domain.BankAccountDetail) BankAccountResponse {
	return BankAccountResponse{
		CustomerName:           detail.CustomerName,
		CustomerIdentityNumber: detail.CustomerIdentityNumber,
		CustomerPhoneNumber:    detail.CustomerPhoneNumber,
		CustomerEmail:          detail.CustomerEmail,
		CustomerAddress:        detail.CustomerAddress,
	}
}

// FromInquiryResult converts the service-layer inquiry result.
func FromInquiryResult(result ports.InquiryResult) InquiryResponse {
	return InquiryResponse{
		Transaction: FromTransaction(result.Transaction),
		BankAccount: FromBankAccount(result.BankAccount),
	}
}

// FromTransactionDetails converts the customer listing.
func FromTransactionDetails(details []ports.TransactionDetail) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(details))
	for _, d := range details {
		row := CustomerResponse{Transaction: FromTransaction(d.Transaction)}
		if d.BankAccount != nil {
			account := FromBankAccount(*d.BankAccount)
			row.BankAccount = &account
		}
		out = append(out, row)
	}
	return out
}

// FromProductListings converts the catalog listing.
func FromProductListings(listings []ports.ProductListing) []ProductResponse {
	out := make([]ProductResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, ProductResponse{
			ID:              l.Product.ID.String(),
			Code:            l.Product.Code,
			Name:            l.Product.Name,
			Price:           l.Product.Price,
			CommissionValue: l.CommissionValue,
		})
	}
	return out
}
