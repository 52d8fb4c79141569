package rest

import (
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/adapters/remote"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/api"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application/services"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/domain"
)

func ToAPICheckout(c *domain.Checkout) api.Checkout {
	return api.Checkout{
		Token:       c.Token,
		OrderID:     c.OrderID,
		Amount:      c.Amount,
		Currency:    c.Currency,
		OrderStatus: c.OrderStatus,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func ToAPIReceipt(r *domain.Receipt) *api.Receipt {
	if r == nil {
		return nil
	}
	return &api.Receipt{
		MaskedCard:    r.MaskedCard,
		CardBin:       r.CardBin,
		Amount:        r.Amount,
		PaymentID:     r.PaymentID,
		Currency:      r.Currency,
		OrderStatus:   r.OrderStatus,
		TranType:      r.TransactionType,
		RRN:           r.RRN,
		ApprovalCode:  r.ApprovalCode,
		ResponseCode:  r.ResponseCode,
		PaymentSystem: r.PaymentSystem,
		ResponseURL:   r.ResponseURL,
	}
}

func ToAPIAttempt(a *domain.Attempt) api.Attempt {
	return api.Attempt{
		ID:            a.ID,
		Token:         a.Token,
		PaymentSystem: a.PaymentSystem,
		Status:        string(a.Status),
		FailureReason: a.FailureReason,
		ChallengeHost: a.ChallengeHost,
		Receipt:       ToAPIReceipt(a.Receipt),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
		ChallengedAt:  a.ChallengedAt,
		CompletedAt:   a.CompletedAt,
	}
}

// ToAPIPayment renders what the mobile client has to do next. Payment data
// from the wallet never leaves the server.
func ToAPIPayment(v remote.View) api.Payment {
	p := api.Payment{
		AttemptID: v.ID,
		Stage:     string(v.Stage),
	}
	if v.WalletRequest != nil {
		p.WalletRequest = &api.WalletRequest{
			Environment:   string(v.WalletRequest.Environment),
			PaymentSystem: v.WalletRequest.PaymentSystem,
			Payload:       v.WalletRequest.Payload,
		}
	}
	if v.Page != nil {
		p.Page = &api.AuthenticationPage{
			HTML:        v.Page.HTML,
			ContentType: v.Page.ContentType,
			BaseURL:     v.Page.BaseURL,
			Cookie:      v.Page.Cookie,
		}
	}
	if v.Outcome != nil {
		p.Outcome = &api.Outcome{
			Success: v.Outcome.Success,
			Reason:  v.Outcome.Reason,
			Receipt: ToAPIReceipt(v.Outcome.Receipt),
		}
	}
	return p
}

func ToCreateOrderCommand(req api.CreateOrderRequest) services.CreateOrderCommand {
	return services.CreateOrderCommand{
		Amount:            req.Amount,
		Currency:          req.Currency,
		OrderID:           req.OrderID,
		Description:       req.OrderDesc,
		Email:             req.SenderEmail,
		ProductID:         req.ProductID,
		PaymentSystems:    req.PaymentSystems,
		Lifetime:          req.Lifetime,
		MerchantData:      req.MerchantData,
		Preauth:           req.Preauth,
		RequiredRecToken:  req.RequiredRecToken,
		Verification:      req.Verification,
		Language:          req.Lang,
		ServerCallbackURL: req.ServerCallbackURL,
		ReservationData:   req.ReservationData,
		Arguments:         req.Arguments,
	}
}

func ToWalletResult(req api.WalletResult) application.WalletResult {
	return application.WalletResult{
		Status:      application.WalletStatus(req.Status),
		PaymentData: req.PaymentData,
		Email:       req.Email,
		Reason:      req.Reason,
	}
}
