package service

import (
	"errors"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"schoolku_backend/internals/features/finance/fees/model"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans must be called at bootstrap.
// useProduction=true for Production, false for Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

/* =========================================================
   Payer details for the checkout page
========================================================= */

type PayerInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

/* =========================================================
   Generate Snap Token
========================================================= */

// GenerateSnapToken creates a Snap transaction for a fee. The fee's
// external id doubles as the Midtrans OrderID, so the webhook can map
// notifications back to the fee.
func GenerateSnapToken(f model.FeeModel, payer PayerInput) (string, string, error) {
	if f.FeeAmountIDR <= 0 {
		return "", "", errors.New("invalid fee_amount_idr")
	}
	if f.FeeExternalID == nil || *f.FeeExternalID == "" {
		return "", "", errors.New("fee_external_id is required (used as OrderID)")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  *f.FeeExternalID,
			GrossAmt: int64(f.FeeAmountIDR),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: payer.FirstName,
			LName: payer.LastName,
			Email: payer.Email,
			Phone: payer.Phone,
		},
		CreditCard: &snap.CreditCardDetails{Secure: true},
	}

	req.Items = &[]midtrans.ItemDetails{
		{
			ID:       *f.FeeExternalID,
			Price:    int64(f.FeeAmountIDR),
			Qty:      1,
			Name:     truncate(f.FeeTitle, 50),
			Category: "School Fee",
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
